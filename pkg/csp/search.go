package csp

import "context"

// Method names accepted by Solve.
const (
	MethodBacktrack   = "backtrack"
	MethodACLookahead = "ac-lookahead"
)

// frame is one choice point in the backtracking tree: the variable at
// this frame's level still has choices left to try. It owns its own
// slice index rather than a channel/goroutine, so Solutions.Next can
// suspend and resume the walk across calls without any concurrency.
type frame struct {
	level   int
	label   Labeling
	space   *Space // domains to draw this level's choices from
	choices []Value
	idx     int
}

// propagateFunc produces the space the next level should draw its
// choices and consistency checks from, given the space the current
// level used and the value just assigned.
type propagateFunc func(cur *Space, vname string, val Value) (*Space, error)

// Solutions is a pull-based iterator over every labeling that satisfies
// a space's constraints. It owns the recursion stack explicitly (an
// iterative choice-point stack, mirroring the teacher's trail/snapshot
// backtracking loop) so that dropping the iterator mid-walk requires no
// goroutine cleanup, matching spec.md §5's cancellation model.
//
// Solutions is not safe for concurrent use.
type Solutions struct {
	root      *Space
	ordering  []string
	propagate propagateFunc
	stack     []*frame
	zeroDone  bool
}

// Solve returns a lazily-evaluated iterator over every labeling that
// satisfies space's constraints, enumerated by chronological
// backtracking (method MethodBacktrack) or by backtracking interleaved
// with AC-3 lookahead at each assignment (method MethodACLookahead). A
// nil ordering defaults to space's insertion order. Solve returns
// ErrNotDiscrete if space's current domains are not all discrete, and
// ErrUnknownMethod for any other method string.
func Solve(space *Space, method string, ordering []string) (*Solutions, error) {
	if !space.IsDiscrete() {
		return nil, wrap(ErrNotDiscrete, "search requires every current domain to be enumerable")
	}

	var propagate propagateFunc
	switch method {
	case MethodBacktrack:
		propagate = func(cur *Space, _ string, _ Value) (*Space, error) { return cur, nil }
	case MethodACLookahead:
		propagate = func(cur *Space, vname string, val Value) (*Space, error) {
			fv, err := NewFixedValue(cur.Variables[vname], val)
			if err != nil {
				return nil, err
			}
			child := cur.Clone(fv)
			if err := ReduceAC3(child); err != nil {
				return nil, err
			}
			return child, nil
		}
	default:
		return nil, wrap(ErrUnknownMethod, "unrecognized solver method %q", method)
	}

	if ordering == nil {
		ordering = space.Order
	}

	s := &Solutions{root: space, ordering: ordering, propagate: propagate}

	if len(ordering) == 0 {
		return s, nil
	}

	choices, err := space.Domains[ordering[0]].IterMembers()
	if err != nil {
		return nil, err
	}
	s.stack = []*frame{{level: 0, label: Labeling{}, space: space, choices: choices}}
	return s, nil
}

// Next advances the search and returns the next solution. The second
// return value is false once the search is exhausted, at which point the
// labeling is nil and the error is nil. ctx is checked between decision
// points so a caller can cancel a long enumeration; there is no
// mid-propagation cancellation primitive (spec.md §5).
func (it *Solutions) Next(ctx context.Context) (Labeling, bool, error) {
	if len(it.ordering) == 0 {
		if it.zeroDone {
			return nil, false, nil
		}
		it.zeroDone = true
		if it.root.Satisfied(Labeling{}) {
			return Labeling{}, true, nil
		}
		return nil, false, nil
	}

	for len(it.stack) > 0 {
		if err := ctx.Err(); err != nil {
			return nil, false, err
		}

		top := it.stack[len(it.stack)-1]
		if top.idx >= len(top.choices) {
			it.stack = it.stack[:len(it.stack)-1]
			continue
		}

		vname := it.ordering[top.level]
		val := top.choices[top.idx]
		top.idx++

		newLabel := top.label.Clone()
		newLabel[vname] = val

		childSpace, err := it.propagate(top.space, vname, val)
		if err != nil {
			return nil, false, err
		}

		newLevel := top.level + 1
		if newLevel == len(it.ordering) {
			if childSpace.Satisfied(newLabel) {
				return newLabel, true, nil
			}
			continue
		}

		if !childSpace.Consistent(newLabel) {
			continue
		}

		nextName := it.ordering[newLevel]
		choices, err := childSpace.Domains[nextName].IterMembers()
		if err != nil {
			return nil, false, err
		}
		it.stack = append(it.stack, &frame{level: newLevel, label: newLabel, space: childSpace, choices: choices})
	}

	return nil, false, nil
}

// All drains the iterator into a slice, for callers who don't need lazy
// pulling. It stops at the first error.
func (it *Solutions) All(ctx context.Context) ([]Labeling, error) {
	var out []Labeling
	for {
		lab, ok, err := it.Next(ctx)
		if err != nil {
			return out, err
		}
		if !ok {
			return out, nil
		}
		out = append(out, lab)
	}
}
