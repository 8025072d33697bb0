package csp

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDiscreteSetBasics(t *testing.T) {
	s := MustDiscreteSet(1, 2, 3)
	require.True(t, s.Contains(1))
	require.False(t, s.Contains(4))
	require.False(t, s.IsEmpty())
	require.True(t, s.IsDiscrete())
}

func TestDiscreteSetUniverseShortCircuits(t *testing.T) {
	x := MustDiscreteSet("a", "b")
	u := UniverseSet()

	require.Equal(t, x, u.Intersection(x))
	require.True(t, u.Union(x).IsUniverse())
	require.True(t, u.Contains("anything"))

	_, err := u.Difference(x)
	require.ErrorIs(t, err, ErrUnboundedOperation)

	diff, err := x.Difference(u)
	require.NoError(t, err)
	require.True(t, diff.IsEmpty())

	_, err = u.IterMembers()
	require.ErrorIs(t, err, ErrUnboundedOperation)
}

func TestDiscreteSetAlgebra(t *testing.T) {
	a := MustDiscreteSet(1, 2, 3)
	b := MustDiscreteSet(2, 3, 4)

	inter := a.Intersection(b)
	union := a.Union(b)
	diff, err := a.Difference(b)
	require.NoError(t, err)

	for _, x := range []int{1, 2, 3, 4, 5} {
		require.Equal(t, a.Contains(x) && b.Contains(x), inter.Contains(x))
		require.Equal(t, a.Contains(x) || b.Contains(x), union.Contains(x))
		require.Equal(t, a.Contains(x) && !b.Contains(x), diff.Contains(x))
	}
}

func TestDiscreteSetRejectsUnhashable(t *testing.T) {
	_, err := NewDiscreteSet([]int{1, 2})
	require.ErrorIs(t, err, ErrNotHashable)
}
