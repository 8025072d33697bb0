package csp

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIntervalContains(t *testing.T) {
	closed := Closed(1, 4)
	require.True(t, closed.Contains(1))
	require.True(t, closed.Contains(4))
	require.True(t, closed.Contains(2.5))
	require.False(t, closed.Contains(0.9))
	require.False(t, closed.Contains(4.1))

	open := Open(1, 4)
	require.False(t, open.Contains(1))
	require.False(t, open.Contains(4))
	require.True(t, open.Contains(2))

	require.False(t, emptyInterval().Contains(0))
}

func TestIntervalIsEmpty(t *testing.T) {
	require.True(t, emptyInterval().IsEmpty())
	require.True(t, Open(1, 1).IsEmpty())
	require.True(t, LeftOpen(1, 1).IsEmpty())
	require.False(t, Closed(1, 1).IsEmpty())
	require.True(t, Closed(2, 1).IsEmpty())
}

func TestIntervalIsDiscrete(t *testing.T) {
	require.True(t, PointInterval(3).IsDiscrete())
	require.False(t, Closed(1, 4).IsDiscrete())
}

func TestIntervalIsDisjoint(t *testing.T) {
	require.True(t, Closed(1, 2).IsDisjoint(Closed(3, 4)))
	require.False(t, Closed(1, 2).IsDisjoint(Closed(2, 4)))
	require.True(t, RightOpen(1, 2).IsDisjoint(Closed(2, 4)))
	require.False(t, RightOpen(1, 2).IsDisjoint(LeftOpen(0, 2)))

	// coincident lower bounds, one a single excluded point
	a := PointInterval(1)
	b := Open(1, 3)
	require.True(t, a.IsDisjoint(b))
}

func TestIntervalIntersection(t *testing.T) {
	got := Closed(0, 4).Intersection(Closed(2, 6))
	require.Equal(t, Closed(2, 4), got)

	disjoint := Closed(0, 1).Intersection(Closed(2, 3))
	require.True(t, disjoint.IsEmpty())

	// idempotence
	a := Closed(1, 5)
	require.Equal(t, a, a.Intersection(a))

	everything := Everything()
	require.Equal(t, a, a.Intersection(everything))
}

func TestIntervalDifference(t *testing.T) {
	self := Closed(0, 10)

	// both bounds strictly inside -> two flanking intervals
	res := self.Difference(Open(3, 7))
	require.Len(t, res, 2)
	require.Equal(t, Closed(0, 3), res[0])
	require.Equal(t, Closed(7, 10), res[1])

	// one bound inside -> single flanking interval
	res = self.Difference(Closed(5, 15))
	require.Len(t, res, 1)
	require.Equal(t, RightOpen(0, 5), res[0])

	// disjoint -> unchanged
	res = self.Difference(Closed(20, 30))
	require.Len(t, res, 1)
	require.Equal(t, self, res[0])

	// other strictly contains self -> empty
	res = self.Difference(Closed(-5, 15))
	require.Len(t, res, 0)

	// self empty -> empty
	require.Empty(t, emptyInterval().Difference(Closed(0, 1)))
}
