package csp

import (
	"fmt"
	"strings"

	radix "github.com/armon/go-radix"
	"github.com/sirupsen/logrus"
)

// Space is the working context a solver operates on: the variable
// registry, the current (possibly reduced) domains, and the constraint
// list. Domains shrink monotonically through AC-3; they never grow.
// Variables and constraints are immutable and may be freely aliased;
// Domains is mutable and owned by one enumerator at a time (see
// Space.Clone for the copy AC-lookahead needs).
type Space struct {
	Variables   map[string]*Variable
	Order       []string // insertion order, used for the default search ordering
	Domains     map[string]Domain
	Constraints []Constraint

	registry *radix.Tree // name -> *Variable, for sorted diagnostic traversal
	log      *logrus.Logger
}

// disabledLogger is shared by every Space built without an explicit
// logger so Debug calls are cheap no-ops rather than nil checks
// scattered through the reducers.
var disabledLogger = func() *logrus.Logger {
	l := logrus.New()
	l.SetLevel(logrus.PanicLevel)
	return l
}()

// NewSpace snapshots each variable's initial domain into Domains and
// builds the sorted variable registry. Order preserves the order variables
// were passed in, which is the default variable ordering for search.
func NewSpace(variables []*Variable, constraints []Constraint) *Space {
	s := &Space{
		Variables:   make(map[string]*Variable, len(variables)),
		Order:       make([]string, 0, len(variables)),
		Domains:     make(map[string]Domain, len(variables)),
		Constraints: constraints,
		registry:    radix.New(),
		log:         disabledLogger,
	}
	for _, v := range variables {
		s.Variables[v.Name] = v
		s.Domains[v.Name] = v.Initial
		s.Order = append(s.Order, v.Name)
		s.registry.Insert(v.Name, v)
	}
	return s
}

// WithLogger attaches a structured logger used to trace AC-3 propagation
// (including the propagation AC-lookahead search runs) at Debug level.
// Passing nil restores the disabled default.
func (s *Space) WithLogger(l *logrus.Logger) *Space {
	if l == nil {
		l = disabledLogger
	}
	s.log = l
	return s
}

// IsDiscrete reports whether every current domain is discrete (a concrete
// DiscreteSet, or an IntervalSet all of whose members are single points).
func (s *Space) IsDiscrete() bool {
	for _, d := range s.Domains {
		if !d.IsDiscrete() {
			return false
		}
	}
	return true
}

// Consistent reports whether lab shows no evidence of violating any
// constraint yet (the conjunction of each constraint's Consistent).
func (s *Space) Consistent(lab Labeling) bool {
	for _, c := range s.Constraints {
		if !c.Consistent(lab) {
			return false
		}
	}
	return true
}

// Satisfied reports whether lab satisfies every constraint.
func (s *Space) Satisfied(lab Labeling) bool {
	for _, c := range s.Constraints {
		if !c.Satisfied(lab) {
			return false
		}
	}
	return true
}

// Clone returns a new Space sharing Variables and Constraints by
// reference (both immutable) but with an independently mutable, deep
// copy of Domains and the given extra constraints appended. This is the
// per-node scratch space AC-lookahead builds so the parent space's
// domains are never mutated.
func (s *Space) Clone(extra ...Constraint) *Space {
	domains := make(map[string]Domain, len(s.Domains))
	for k, v := range s.Domains {
		domains[k] = v
	}
	constraints := make([]Constraint, len(s.Constraints), len(s.Constraints)+len(extra))
	copy(constraints, s.Constraints)
	constraints = append(constraints, extra...)

	return &Space{
		Variables:   s.Variables,
		Order:       s.Order,
		Domains:     domains,
		Constraints: constraints,
		registry:    s.registry,
		log:         s.log,
	}
}

// Dump renders each variable's current domain in sorted-name order,
// using the radix registry rather than Order or Go's randomized map
// iteration, so repeated calls produce byte-identical diagnostic output.
func (s *Space) Dump() string {
	var b strings.Builder
	s.registry.Walk(func(name string, _ interface{}) bool {
		fmt.Fprintf(&b, "%s: %s\n", name, s.Domains[name])
		return false
	})
	return b.String()
}
