package csp

import (
	"sort"
	"strings"

	"github.com/samber/lo"
)

// IntervalSet is an ordered sequence of non-empty, pairwise-disjoint
// intervals sorted by lower bound. Every constructor and public operation
// returns a freshly normalized IntervalSet: empties are dropped, members
// are sorted, and any two intervals whose union would itself be an
// interval are merged.
type IntervalSet struct {
	ivs []Interval
}

// NewIntervalSet normalizes the given intervals into an IntervalSet,
// merging touching or overlapping members.
func NewIntervalSet(ivs ...Interval) IntervalSet {
	kept := lo.Filter(ivs, func(iv Interval, _ int) bool { return !iv.IsEmpty() })
	sort.Slice(kept, func(i, j int) bool { return kept[i].Lo < kept[j].Lo })

	merged := make([]Interval, 0, len(kept))
	for _, iv := range kept {
		if n := len(merged); n > 0 && shouldMerge(merged[n-1], iv) {
			merged[n-1] = mergeTouching(merged[n-1], iv)
			continue
		}
		merged = append(merged, iv)
	}

	return IntervalSet{ivs: merged}
}

// shouldMerge reports whether two intervals, sorted so that a.Lo <= b.Lo,
// overlap or touch in a way that makes their union a single interval: an
// exact touch only merges if at least one side includes the shared
// point, otherwise the union has a one-point gap and must stay split.
func shouldMerge(a, b Interval) bool {
	if b.Lo < a.Hi {
		return true
	}
	if b.Lo == a.Hi {
		return a.HiIncl || b.LoIncl
	}
	return false
}

// mergeTouching unions two non-disjoint (or adjacent) intervals into one,
// assuming a.Lo <= b.Lo.
func mergeTouching(a, b Interval) Interval {
	lo, loIncl := a.Lo, a.LoIncl
	if a.Lo == b.Lo {
		loIncl = a.LoIncl || b.LoIncl
	}
	var hi float64
	var hiIncl bool
	switch {
	case a.Hi > b.Hi:
		hi, hiIncl = a.Hi, a.HiIncl
	case a.Hi < b.Hi:
		hi, hiIncl = b.Hi, b.HiIncl
	default:
		hi, hiIncl = a.Hi, a.HiIncl || b.HiIncl
	}
	return Interval{Lo: lo, Hi: hi, LoIncl: loIncl, HiIncl: hiIncl}
}

// EverythingSet returns the IntervalSet containing the single interval
// (-Inf, +Inf).
func EverythingSet() IntervalSet {
	return IntervalSet{ivs: []Interval{Everything()}}
}

// EmptyIntervalSet returns the empty IntervalSet.
func EmptyIntervalSet() IntervalSet {
	return IntervalSet{}
}

// IntervalSetFromValues builds a discrete IntervalSet containing exactly
// the given points.
func IntervalSetFromValues(values ...float64) IntervalSet {
	ivs := lo.Map(values, func(v float64, _ int) Interval { return PointInterval(v) })
	return NewIntervalSet(ivs...)
}

// IsEmpty reports whether the set has no members.
func (s IntervalSet) IsEmpty() bool { return len(s.ivs) == 0 }

// IsDiscrete reports whether every member interval is a single point.
func (s IntervalSet) IsDiscrete() bool {
	for _, iv := range s.ivs {
		if !iv.IsDiscrete() {
			return false
		}
	}
	return true
}

// Contains reports whether x lies in any member interval.
func (s IntervalSet) Contains(x float64) bool {
	for _, iv := range s.ivs {
		if iv.Contains(x) {
			return true
		}
	}
	return false
}

// Members returns the member intervals in sorted order. The slice is a
// defensive copy; callers may not mutate the receiver through it.
func (s IntervalSet) Members() []Interval {
	out := make([]Interval, len(s.ivs))
	copy(out, s.ivs)
	return out
}

// IterMembers yields each discrete point once, in ascending order. It
// returns ErrNotDiscrete if the set is not discrete.
func (s IntervalSet) IterMembers() ([]float64, error) {
	if !s.IsDiscrete() {
		return nil, wrap(ErrNotDiscrete, "IntervalSet is not discrete")
	}
	out := make([]float64, len(s.ivs))
	for i, iv := range s.ivs {
		out[i] = iv.Point()
	}
	return out, nil
}

// Intersection pairwise-intersects every member of s with every member of
// other, dropping empties.
func (s IntervalSet) Intersection(other IntervalSet) IntervalSet {
	res := make([]Interval, 0, len(s.ivs)*len(other.ivs))
	for _, a := range s.ivs {
		for _, b := range other.ivs {
			res = append(res, a.Intersection(b))
		}
	}
	return NewIntervalSet(res...)
}

// Difference removes every point of other from s. It folds through each
// interval of other, computing self's difference against that interval
// alone and intersecting the running result down: since other's members
// are disjoint, (s\j1) ∩ (s\j2) ∩ ... equals s \ (j1 ∪ j2 ∪ ...), which
// keeps the running set canonical without a separate merge pass. An
// empty other leaves s unchanged.
func (s IntervalSet) Difference(other IntervalSet) IntervalSet {
	if len(other.ivs) == 0 {
		return s
	}
	res := EverythingSet()
	for _, j := range other.ivs {
		var tmp []Interval
		for _, i := range s.ivs {
			tmp = append(tmp, i.Difference(j)...)
		}
		res = res.Intersection(NewIntervalSet(tmp...))
	}
	return res
}

// Union concatenates and merges overlapping or adjacent members.
func (s IntervalSet) Union(other IntervalSet) IntervalSet {
	all := make([]Interval, 0, len(s.ivs)+len(other.ivs))
	all = append(all, s.ivs...)
	all = append(all, other.ivs...)
	return NewIntervalSet(all...)
}

// String renders the set as its members joined by " u ", or "<empty>".
func (s IntervalSet) String() string {
	if s.IsEmpty() {
		return "<empty>"
	}
	parts := lo.Map(s.ivs, func(iv Interval, _ int) string { return iv.String() })
	return strings.Join(parts, " u ")
}
