package csp

// reduceNode applies node consistency: if variable is among c's
// referenced variables, replace space.Domains[variable] with its
// intersection with c's projected domain for that variable. It
// returns an error only if the intersection itself fails (mismatched
// kinds between the current domain and the projection, which would
// indicate a malformed constraint rather than a normal runtime
// condition).
func reduceNode(space *Space, c Constraint, variable string) (bool, error) {
	proj, ok := c.Projected()[variable]
	if !ok {
		return false, nil
	}
	current := space.Domains[variable]
	reduced, err := current.Intersect(proj)
	if err != nil {
		return false, err
	}
	space.Domains[variable] = reduced
	return true, nil
}

// ReduceNodeConsistency applies reduceNode for every (constraint,
// variable) pair where the constraint references the variable. This is
// the standalone unary reducer described in spec.md §4.6; AC-3 also
// performs this as its first pass.
func ReduceNodeConsistency(space *Space) error {
	for _, name := range space.Order {
		for _, c := range space.Constraints {
			if _, err := reduceNode(space, c, name); err != nil {
				return err
			}
		}
	}
	return nil
}
