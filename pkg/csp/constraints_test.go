package csp

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func discreteVar(name string, values ...Value) *Variable {
	return NewDiscreteVariable(name, MustDiscreteSet(values...), "")
}

func TestFixedValueRejectsOutOfDomain(t *testing.T) {
	v := discreteVar("x", 1, 2, 3)
	_, err := NewFixedValue(v, 99)
	require.ErrorIs(t, err, ErrDomainMismatch)

	c, err := NewFixedValue(v, 2)
	require.NoError(t, err)
	require.True(t, c.Satisfied(Labeling{"x": 2}))
	require.False(t, c.Satisfied(Labeling{"x": 3}))
	require.True(t, c.Consistent(Labeling{}))
}

func TestDomainConstraint(t *testing.T) {
	v := discreteVar("x", 1, 2, 3, 5)
	c := NewDomainConstraint(v, DiscreteDomain(MustDiscreteSet(1, 3, 6)))

	require.True(t, c.Consistent(Labeling{"x": 1}))
	require.False(t, c.Consistent(Labeling{"x": 2}))
	require.True(t, c.Satisfied(Labeling{"x": 3}))
	require.False(t, c.Satisfied(Labeling{"x": 2}))
}

func TestAllDifferentUnrelatedTypes(t *testing.T) {
	x := discreteVar("x", 1, 2, 3, 5)
	y := discreteVar("y", "a", "b", "c")
	c := NewAllDifferent(x, y)

	// values of different dynamic types are never equal
	require.True(t, c.Satisfied(Labeling{"x": 1, "y": "a"}))
	require.True(t, c.Consistent(Labeling{"x": 1, "y": "a"}))
}

func TestEqualRelation(t *testing.T) {
	x := discreteVar("x", 1, 2, 3, 5)
	z := discreteVar("z", 1, 2, 3, 5)
	c, err := NewEqual(x, z)
	require.NoError(t, err)

	require.True(t, c.Satisfied(Labeling{"x": 2, "z": 2}))
	require.False(t, c.Satisfied(Labeling{"x": 2, "z": 3}))
	require.True(t, c.Consistent(Labeling{"x": 2}))
}

func TestLessRelation(t *testing.T) {
	x := discreteVar("x", 1, 2, 3, 5)
	z := discreteVar("z", 1, 2, 3, 5)
	c, err := NewLess(x, z)
	require.NoError(t, err)

	require.True(t, c.Satisfied(Labeling{"x": 1, "z": 2}))
	require.False(t, c.Satisfied(Labeling{"x": 2, "z": 1}))
}

func TestDiscreteBinaryRelation(t *testing.T) {
	idx := discreteVar("idx", 1, 2, 3)
	name := discreteVar("name", "a", "b", "c")

	c, err := NewDiscreteBinaryRelation(idx, name, [][2]Value{{1, "a"}, {2, "b"}})
	require.NoError(t, err)

	require.True(t, c.Satisfied(Labeling{"idx": 1, "name": "a"}))
	require.False(t, c.Satisfied(Labeling{"idx": 1, "name": "b"}))
	require.True(t, c.Consistent(Labeling{"idx": 1}))
	require.False(t, c.Consistent(Labeling{"idx": 3}))
}
