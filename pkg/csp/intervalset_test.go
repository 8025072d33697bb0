package csp

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIntervalSetNormalizationS7(t *testing.T) {
	s := NewIntervalSet(
		Open(0, 2),
		Closed(1, 4),
		RightOpen(3, 6),
		PointInterval(2.1),
		PointInterval(2.3),
	)

	members := s.Members()
	require.Len(t, members, 1)
	require.Equal(t, 0.0, members[0].Lo)
	require.Equal(t, 6.0, members[0].Hi)
	require.False(t, members[0].LoIncl)
	require.False(t, members[0].HiIncl)
}

func TestIntervalSetIntersectionIdempotence(t *testing.T) {
	a := NewIntervalSet(Closed(1, 5), Closed(10, 20))
	require.Equal(t, a, a.Intersection(a))
	require.Equal(t, a, a.Intersection(EverythingSet()))
}

func TestIntervalSetDifferenceAnnihilation(t *testing.T) {
	a := NewIntervalSet(Closed(1, 5))
	require.True(t, a.Difference(a).IsEmpty())
	require.Equal(t, a, a.Difference(EmptyIntervalSet()))

	diff := a.Difference(NewIntervalSet(Closed(2, 3)))
	for _, m := range diff.Members() {
		require.False(t, m.Contains(2.5))
	}
}

func TestIntervalSetMembership(t *testing.T) {
	a := NewIntervalSet(Closed(0, 2))
	b := NewIntervalSet(Closed(1, 3))

	inter := a.Intersection(b)
	union := a.Union(b)
	diff := a.Difference(b)

	for _, x := range []float64{0.5, 1.5, 2.5} {
		require.Equal(t, a.Contains(x) && b.Contains(x), inter.Contains(x), "x=%v", x)
		require.Equal(t, a.Contains(x) || b.Contains(x), union.Contains(x), "x=%v", x)
		require.Equal(t, a.Contains(x) && !b.Contains(x), diff.Contains(x), "x=%v", x)
	}
}

func TestIntervalSetIterMembers(t *testing.T) {
	discrete := IntervalSetFromValues(1, 2, 3, 5)
	require.True(t, discrete.IsDiscrete())
	pts, err := discrete.IterMembers()
	require.NoError(t, err)
	require.Equal(t, []float64{1, 2, 3, 5}, pts)

	cont := NewIntervalSet(Closed(0, 1))
	_, err = cont.IterMembers()
	require.ErrorIs(t, err, ErrNotDiscrete)
}

func TestEverythingSetShortCircuitsIntersection(t *testing.T) {
	a := NewIntervalSet(Closed(1, 5))
	require.Equal(t, a, EverythingSet().Intersection(a))
}
