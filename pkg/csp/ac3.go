package csp

// arc is a directed pair (to, support): a pending obligation to revise
// domains[to] using the constraints relating it to support.
type arc struct {
	to, support string
}

// ReduceAC3 propagates arc consistency over the constraint graph to a
// fixed point. It first applies node consistency to every variable
// against every constraint that mentions it, then repeatedly revises
// arcs until none remain.
//
// ReduceAC3 is defined only for variables whose current domain is
// enumerable (discrete, or a discrete IntervalSet); it returns
// ErrNotDiscrete if that precondition does not hold.
func ReduceAC3(space *Space) error {
	if !space.IsDiscrete() {
		return wrap(ErrNotDiscrete, "AC-3 requires every current domain to be enumerable")
	}

	neighbors := buildNeighbors(space)

	if err := ReduceNodeConsistency(space); err != nil {
		return err
	}

	queue := newArcQueue()
	for _, v1 := range space.Order {
		for _, v2 := range space.Order {
			if v1 == v2 {
				continue
			}
			changed, err := reviseArc(space, v1, v2)
			if err != nil {
				return err
			}
			if changed {
				space.log.WithField("variable", v1).Debug("ac3: initial revision shrank domain")
				for _, w := range neighbors[v1] {
					queue.push(arc{to: w, support: v1})
				}
			}
		}
	}

	for {
		a, ok := queue.pop()
		if !ok {
			break
		}
		changed, err := reviseArc(space, a.to, a.support)
		if err != nil {
			return err
		}
		if changed {
			space.log.WithField("variable", a.to).Debug("ac3: worklist revision shrank domain")
			for _, w := range neighbors[a.to] {
				queue.push(arc{to: w, support: a.to})
			}
		}
	}

	return nil
}

// buildNeighbors maps each variable name to the set of other variables it
// shares at least one constraint with. This treats every constraint as
// pessimistically coupling all of its variables pairwise, matching
// spec.md §4.7's arc construction.
func buildNeighbors(space *Space) map[string][]string {
	sets := make(map[string]map[string]struct{}, len(space.Order))
	for _, name := range space.Order {
		sets[name] = map[string]struct{}{}
	}
	for _, c := range space.Constraints {
		names := c.VNames()
		for _, a := range names {
			for _, b := range names {
				if a != b {
					sets[a][b] = struct{}{}
				}
			}
		}
	}
	out := make(map[string][]string, len(sets))
	for name, set := range sets {
		for n := range set {
			out[name] = append(out[name], n)
		}
	}
	return out
}

// reviseArc reduces domains[to] to be arc-consistent with domains[support]
// under every constraint mentioning both: each candidate value of to
// without a supporting witness in the current domain of support is
// removed. It returns true iff anything was removed.
func reviseArc(space *Space, to, support string) (bool, error) {
	removed := false
	for _, c := range space.Constraints {
		names := c.VNames()
		if !(containsName(names, to) && containsName(names, support)) {
			continue
		}
		changed, err := reviseArcUnderConstraint(space, c, to, support)
		if err != nil {
			return false, err
		}
		if changed {
			removed = true
		}
	}
	return removed, nil
}

func reviseArcUnderConstraint(space *Space, c Constraint, to, support string) (bool, error) {
	toMembers, err := space.Domains[to].IterMembers()
	if err != nil {
		return false, err
	}
	supportMembers, err := space.Domains[support].IterMembers()
	if err != nil {
		return false, err
	}

	var toRemove []Value
	for _, x := range toMembers {
		supported := false
		for _, y := range supportMembers {
			if c.Consistent(Labeling{to: x, support: y}) {
				supported = true
				break
			}
		}
		if !supported {
			toRemove = append(toRemove, x)
		}
	}

	if len(toRemove) == 0 {
		return false, nil
	}

	removalDomain, err := domainFromValues(space.Variables[to].Kind, toRemove)
	if err != nil {
		return false, err
	}
	reduced, err := space.Domains[to].Difference(removalDomain)
	if err != nil {
		return false, err
	}
	space.Domains[to] = reduced
	return true, nil
}

// domainFromValues wraps a set of removed values into a Domain of the
// given kind, so it can be subtracted from a variable's current domain.
func domainFromValues(kind Kind, values []Value) (Domain, error) {
	if kind == KindDiscrete {
		d, err := NewDiscreteSet(values...)
		if err != nil {
			return Domain{}, err
		}
		return DiscreteDomain(d), nil
	}
	floats := make([]float64, len(values))
	for i, v := range values {
		floats[i] = v.(float64)
	}
	return ContinuousDomain(IntervalSetFromValues(floats...)), nil
}

func containsName(names []string, target string) bool {
	for _, n := range names {
		if n == target {
			return true
		}
	}
	return false
}

// arcQueue is a FIFO of pending arcs with set-based deduplication, so an
// arc already queued is not queued twice (the worklist is bounded by
// #arcs x #values as spec.md §4.7 requires for termination).
type arcQueue struct {
	items []arc
	queued map[arc]struct{}
}

func newArcQueue() *arcQueue {
	return &arcQueue{queued: make(map[arc]struct{})}
}

func (q *arcQueue) push(a arc) {
	if _, ok := q.queued[a]; ok {
		return
	}
	q.queued[a] = struct{}{}
	q.items = append(q.items, a)
}

func (q *arcQueue) pop() (arc, bool) {
	if len(q.items) == 0 {
		return arc{}, false
	}
	a := q.items[0]
	q.items = q.items[1:]
	delete(q.queued, a)
	return a, true
}
