package csp

import (
	"fmt"
	"math"
)

// Interval is a closed/open interval on the extended real line. The zero
// value is not meaningful; use NewInterval or one of the constructors
// below.
//
// Invariants: Lo <= Hi for non-empty intervals; when Lo == Hi the
// interval is non-empty only if both ends are included (a single-point
// interval). An interval is discrete iff Lo == Hi with both ends
// included. An interval is empty iff Hi < Lo, or Lo == Hi with at least
// one end excluded.
type Interval struct {
	Lo, Hi         float64
	LoIncl, HiIncl bool
}

// NewInterval builds an interval with explicit bounds and inclusion flags.
func NewInterval(lo, hi float64, loIncl, hiIncl bool) Interval {
	return Interval{Lo: lo, Hi: hi, LoIncl: loIncl, HiIncl: hiIncl}
}

// Everything returns the interval (-Inf, +Inf) with both ends included.
func Everything() Interval {
	return Interval{Lo: math.Inf(-1), Hi: math.Inf(1), LoIncl: true, HiIncl: true}
}

// PointInterval returns the single-point closed interval [v, v].
func PointInterval(v float64) Interval {
	return Interval{Lo: v, Hi: v, LoIncl: true, HiIncl: true}
}

// Open returns the open interval (a, b).
func Open(a, b float64) Interval { return Interval{Lo: a, Hi: b, LoIncl: false, HiIncl: false} }

// Closed returns the closed interval [a, b].
func Closed(a, b float64) Interval { return Interval{Lo: a, Hi: b, LoIncl: true, HiIncl: true} }

// LeftOpen returns the interval (a, b].
func LeftOpen(a, b float64) Interval { return Interval{Lo: a, Hi: b, LoIncl: false, HiIncl: true} }

// RightOpen returns the interval [a, b).
func RightOpen(a, b float64) Interval { return Interval{Lo: a, Hi: b, LoIncl: true, HiIncl: false} }

// emptyInterval is the canonical representation used wherever an
// operation yields no points: (1, 0), which is empty because Hi < Lo
// whatever its inclusion flags say.
func emptyInterval() Interval {
	return Interval{Lo: 1, Hi: 0, LoIncl: true, HiIncl: true}
}

// IsEmpty reports whether the interval contains no points.
func (iv Interval) IsEmpty() bool {
	if iv.Hi < iv.Lo {
		return true
	}
	if iv.Hi == iv.Lo {
		return !(iv.LoIncl && iv.HiIncl)
	}
	return false
}

// IsDiscrete reports whether the interval is a single included point.
func (iv Interval) IsDiscrete() bool {
	return iv.Lo == iv.Hi && iv.LoIncl && iv.HiIncl
}

// Point returns the single value of a discrete interval. It panics if the
// interval is not discrete; callers should check IsDiscrete first (this
// mirrors the host's ValueError on a malformed call, but interval
// arithmetic never calls it on a non-discrete interval internally).
func (iv Interval) Point() float64 {
	if !iv.IsDiscrete() {
		panic("csp: Interval.Point called on a non-discrete interval")
	}
	return iv.Lo
}

// Contains reports whether x lies within the interval, honouring all four
// bound-inclusion combinations. An empty interval contains nothing.
func (iv Interval) Contains(x float64) bool {
	if iv.IsEmpty() {
		return false
	}
	if iv.LoIncl {
		if !(x >= iv.Lo) {
			return false
		}
	} else {
		if !(x > iv.Lo) {
			return false
		}
	}
	if iv.HiIncl {
		if !(x <= iv.Hi) {
			return false
		}
	} else {
		if !(x < iv.Hi) {
			return false
		}
	}
	return true
}

// IsDisjoint reports whether the two intervals share no point. Coincident
// lower bounds are tie-broken: if either interval is a single point
// excluded at that shared bound, they are disjoint; if both include the
// common bound, they are not.
func (iv Interval) IsDisjoint(other Interval) bool {
	if iv.IsEmpty() || other.IsEmpty() {
		return true
	}

	var i1, i2 Interval
	switch {
	case iv.Lo < other.Lo:
		i1, i2 = iv, other
	case iv.Lo > other.Lo:
		i1, i2 = other, iv
	default:
		if iv.IsDiscrete() && !other.LoIncl {
			return true
		}
		if other.IsDiscrete() && !iv.LoIncl {
			return true
		}
		return false
	}

	if !i1.Contains(i2.Lo) {
		return true
	}
	// i1 ends exactly where i2 starts and i2 excludes that point.
	return !i2.LoIncl && i2.Lo == i1.Hi
}

// Intersection returns the componentwise max of lower bounds and min of
// upper bounds, with inclusion the logical AND of the selected ends. It
// returns the canonical empty interval when the two are disjoint.
func (iv Interval) Intersection(other Interval) Interval {
	if iv.IsDisjoint(other) {
		return emptyInterval()
	}

	var i1, i2 Interval
	if iv.Lo < other.Lo {
		i1, i2 = iv, other
	} else {
		i1, i2 = other, iv
	}

	lo, loIncl := i2.Lo, i2.LoIncl
	if i1.Lo == i2.Lo {
		loIncl = i1.LoIncl && i2.LoIncl
	}

	var hi float64
	var hiIncl bool
	if i1.Contains(i2.Hi) {
		hi, hiIncl = i2.Hi, i2.HiIncl
	} else {
		hi, hiIncl = i1.Hi, i1.HiIncl
	}

	return Interval{Lo: lo, Hi: hi, LoIncl: loIncl, HiIncl: hiIncl}
}

// Difference returns self minus other as 0, 1, or 2 intervals. Two
// intervals arise when both of other's bounds lie inside self (one of
// them is then empty if other shares a bound with self); one when
// exactly one does; the original singleton when other is empty or the
// two are disjoint.
func (iv Interval) Difference(other Interval) []Interval {
	if iv.IsEmpty() {
		return nil
	}
	if other.IsEmpty() || iv.IsDisjoint(other) {
		return []Interval{iv}
	}

	left := Interval{Lo: iv.Lo, Hi: other.Lo, LoIncl: iv.LoIncl, HiIncl: !other.LoIncl}
	right := Interval{Lo: other.Hi, Hi: iv.Hi, LoIncl: !other.HiIncl, HiIncl: iv.HiIncl}

	otherLoInside := iv.Contains(other.Lo)
	otherHiInside := iv.Contains(other.Hi)

	switch {
	case otherLoInside && otherHiInside:
		return []Interval{left, right}
	case otherLoInside:
		return []Interval{left}
	case otherHiInside:
		return []Interval{right}
	default:
		// other strictly contains self.
		return nil
	}
}

// String renders the interval using standard bracket notation, e.g.
// "[1,4)" or "<empty>".
func (iv Interval) String() string {
	if iv.IsEmpty() {
		return "<empty>"
	}
	lb, rb := "(", ")"
	if iv.LoIncl {
		lb = "["
	}
	if iv.HiIncl {
		rb = "]"
	}
	return fmt.Sprintf("%s%s,%s%s", lb, formatBound(iv.Lo), formatBound(iv.Hi), rb)
}

func formatBound(v float64) string {
	if math.IsInf(v, -1) {
		return "-Inf"
	}
	if math.IsInf(v, 1) {
		return "+Inf"
	}
	return fmt.Sprintf("%g", v)
}
