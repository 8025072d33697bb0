package csp

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSpaceCloneIsolatesDomains(t *testing.T) {
	x := discreteVar("x", 1, 2, 3)
	space := NewSpace([]*Variable{x}, nil)

	fv, err := NewFixedValue(x, 2)
	require.NoError(t, err)
	clone := space.Clone(fv)

	require.Len(t, clone.Constraints, 1)
	require.Empty(t, space.Constraints)

	clone.Domains["x"] = DiscreteDomain(MustDiscreteSet(2))
	orig, err := space.Domains["x"].IterMembers()
	require.NoError(t, err)
	require.ElementsMatch(t, []Value{1, 2, 3}, orig)
}

func TestSpaceConsistentAndSatisfied(t *testing.T) {
	x := discreteVar("x", 1, 2, 3)
	z := discreteVar("z", 1, 2, 3)
	eq, err := NewEqual(x, z)
	require.NoError(t, err)
	space := NewSpace([]*Variable{x, z}, []Constraint{eq})

	require.True(t, space.Consistent(Labeling{"x": 1}))
	require.False(t, space.Satisfied(Labeling{"x": 1}))
	require.True(t, space.Satisfied(Labeling{"x": 1, "z": 1}))
	require.False(t, space.Consistent(Labeling{"x": 1, "z": 2}))
}

func TestSpaceIsDiscrete(t *testing.T) {
	discreteV := discreteVar("x", 1, 2)
	contV := NewContinuousVariable("y", NewIntervalSet(Closed(0, 1)), "")

	discreteSpace := NewSpace([]*Variable{discreteV}, nil)
	mixedSpace := NewSpace([]*Variable{discreteV, contV}, nil)

	require.True(t, discreteSpace.IsDiscrete())
	require.False(t, mixedSpace.IsDiscrete())
}

func TestSpaceDumpIsSortedByName(t *testing.T) {
	b := discreteVar("b", 1)
	a := discreteVar("a", 2)
	space := NewSpace([]*Variable{b, a}, nil)

	dump := space.Dump()
	require.Less(t, indexOf(dump, "a:"), indexOf(dump, "b:"))
}

func indexOf(s, sub string) int {
	for i := 0; i+len(sub) <= len(s); i++ {
		if s[i:i+len(sub)] == sub {
			return i
		}
	}
	return -1
}
