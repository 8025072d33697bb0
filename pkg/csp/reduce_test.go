package csp

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestReduceNodeConsistencyShrinksToProjection(t *testing.T) {
	x := discreteVar("x", 1, 2, 3, 4, 5)
	space := NewSpace([]*Variable{x}, []Constraint{
		NewDomainConstraint(x, DiscreteDomain(MustDiscreteSet(2, 3, 4))),
	})

	require.NoError(t, ReduceNodeConsistency(space))

	members, err := space.Domains["x"].IterMembers()
	require.NoError(t, err)
	require.ElementsMatch(t, []Value{2, 3, 4}, members)
}

func TestReduceNodeConsistencyIgnoresUnrelatedConstraint(t *testing.T) {
	x := discreteVar("x", 1, 2, 3)
	y := discreteVar("y", "a", "b")
	space := NewSpace([]*Variable{x, y}, []Constraint{
		NewDomainConstraint(y, DiscreteDomain(MustDiscreteSet("a"))),
	})

	require.NoError(t, ReduceNodeConsistency(space))

	members, err := space.Domains["x"].IterMembers()
	require.NoError(t, err)
	require.ElementsMatch(t, []Value{1, 2, 3}, members)
}
