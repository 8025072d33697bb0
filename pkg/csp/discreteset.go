package csp

import (
	"fmt"
	"reflect"
	"sort"
	"strings"

	"github.com/samber/lo"
)

// DiscreteSet is a finite set of comparable values, or the symbolic
// universe flag representing "all values of this type". The universe
// flag and a non-empty element set are mutually exclusive
// representations; a universe set is never iterable and never a
// difference's minuend.
type DiscreteSet struct {
	universe bool
	elems    map[Value]struct{}
}

// NewDiscreteSet builds a finite DiscreteSet from the given values. It
// returns ErrNotHashable if any value's dynamic type is not comparable.
func NewDiscreteSet(values ...Value) (DiscreteSet, error) {
	elems := make(map[Value]struct{}, len(values))
	for _, v := range values {
		if !isComparable(v) {
			return DiscreteSet{}, wrap(ErrNotHashable, "value %v of type %T cannot be stored in a DiscreteSet", v, v)
		}
		elems[v] = struct{}{}
	}
	return DiscreteSet{elems: elems}, nil
}

// MustDiscreteSet is like NewDiscreteSet but panics on error; intended for
// literal sets built from known-comparable values (string/int/etc.) at
// call sites that would otherwise thread an error through a constructor
// chain for no benefit.
func MustDiscreteSet(values ...Value) DiscreteSet {
	s, err := NewDiscreteSet(values...)
	if err != nil {
		panic(err)
	}
	return s
}

// UniverseSet returns the symbolic "everything" discrete set.
func UniverseSet() DiscreteSet {
	return DiscreteSet{universe: true}
}

func isComparable(v Value) bool {
	if v == nil {
		return true
	}
	k := reflect.TypeOf(v).Kind()
	switch k {
	case reflect.Slice, reflect.Map, reflect.Func:
		return false
	default:
		return true
	}
}

// IsUniverse reports whether this set is the symbolic universe.
func (s DiscreteSet) IsUniverse() bool { return s.universe }

// IsEmpty reports whether the set has no members. The universe is never
// empty.
func (s DiscreteSet) IsEmpty() bool {
	if s.universe {
		return false
	}
	return len(s.elems) == 0
}

// IsDiscrete always returns true for a finite DiscreteSet and false for
// the universe, matching IntervalSet.IsDiscrete's "enumerable" meaning.
func (s DiscreteSet) IsDiscrete() bool { return !s.universe }

// Contains reports whether element is in the set. The universe contains
// everything without needing to enumerate it.
func (s DiscreteSet) Contains(element Value) bool {
	if s.universe {
		return true
	}
	_, ok := s.elems[element]
	return ok
}

// Intersection computes s ∩ other. everything ∩ X = X without
// materializing the universe.
func (s DiscreteSet) Intersection(other DiscreteSet) DiscreteSet {
	switch {
	case s.universe && other.universe:
		return UniverseSet()
	case s.universe:
		return other.clone()
	case other.universe:
		return s.clone()
	default:
		out := make(map[Value]struct{})
		for v := range s.elems {
			if _, ok := other.elems[v]; ok {
				out[v] = struct{}{}
			}
		}
		return DiscreteSet{elems: out}
	}
}

// Union computes s ∪ other. everything ∪ X = everything.
func (s DiscreteSet) Union(other DiscreteSet) DiscreteSet {
	if s.universe || other.universe {
		return UniverseSet()
	}
	out := make(map[Value]struct{}, len(s.elems)+len(other.elems))
	for v := range s.elems {
		out[v] = struct{}{}
	}
	for v := range other.elems {
		out[v] = struct{}{}
	}
	return DiscreteSet{elems: out}
}

// Difference computes s \ other. Subtracting from the universe is an
// unbounded operation and is rejected; subtracting the universe from a
// concrete set always yields the empty set.
func (s DiscreteSet) Difference(other DiscreteSet) (DiscreteSet, error) {
	if s.universe {
		return DiscreteSet{}, wrap(ErrUnboundedOperation, "cannot subtract from the universe set")
	}
	if other.universe {
		return DiscreteSet{elems: map[Value]struct{}{}}, nil
	}
	out := make(map[Value]struct{})
	for v := range s.elems {
		if _, ok := other.elems[v]; !ok {
			out[v] = struct{}{}
		}
	}
	return DiscreteSet{elems: out}, nil
}

// IterMembers returns the set's elements in a stable order: sorted by
// each value's type name and printed form (so 10 sorts before 2), which
// is the same on every call for the same set. It returns
// ErrUnboundedOperation for the universe.
func (s DiscreteSet) IterMembers() ([]Value, error) {
	if s.universe {
		return nil, wrap(ErrUnboundedOperation, "cannot iterate the universe set")
	}
	out := lo.Keys(s.elems)
	sort.Slice(out, func(i, j int) bool {
		return fmt.Sprintf("%T:%v", out[i], out[i]) < fmt.Sprintf("%T:%v", out[j], out[j])
	})
	return out, nil
}

func (s DiscreteSet) clone() DiscreteSet {
	if s.universe {
		return UniverseSet()
	}
	out := make(map[Value]struct{}, len(s.elems))
	for v := range s.elems {
		out[v] = struct{}{}
	}
	return DiscreteSet{elems: out}
}

// String renders the set as "{a,b,c}", "<universe>", or "<empty>".
func (s DiscreteSet) String() string {
	if s.universe {
		return "<universe>"
	}
	if s.IsEmpty() {
		return "<empty>"
	}
	members, _ := s.IterMembers()
	parts := make([]string, 0, len(members))
	for _, v := range members {
		parts = append(parts, fmt.Sprintf("%v", v))
	}
	return fmt.Sprintf("{%s}", strings.Join(parts, ","))
}
