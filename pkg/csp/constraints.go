package csp

import "fmt"

// FixedValue constrains a single variable to a specific value: v = c. It
// is rejected at construction if c is not a member of v's declared
// domain.
type FixedValue struct {
	name  string
	value Value
	proj  map[string]Domain
}

// NewFixedValue builds a FixedValue constraint, returning ErrDomainMismatch
// if value is outside v.Initial.
func NewFixedValue(v *Variable, value Value) (*FixedValue, error) {
	if !v.Initial.Contains(value) {
		return nil, wrap(ErrDomainMismatch, "value %v is incompatible with domain of %s", value, v.Name)
	}

	var proj Domain
	if v.Kind == KindDiscrete {
		proj = DiscreteDomain(MustDiscreteSet(value))
	} else {
		f := value.(float64)
		proj = ContinuousDomain(IntervalSetFromValues(f))
	}

	return &FixedValue{name: v.Name, value: value, proj: map[string]Domain{v.Name: proj}}, nil
}

func (c *FixedValue) VNames() []string          { return []string{c.name} }
func (c *FixedValue) Projected() map[string]Domain { return c.proj }

func (c *FixedValue) Satisfied(lab Labeling) bool {
	v, ok := lab[c.name]
	if !ok {
		return false
	}
	return v == c.value
}

func (c *FixedValue) Consistent(lab Labeling) bool {
	if v, ok := lab[c.name]; ok {
		return v == c.value
	}
	return true
}

func (c *FixedValue) String() string { return fmt.Sprintf("%s = %v", c.name, c.value) }

// DomainConstraint constrains a single variable to a given domain: v ∈ D.
type DomainConstraint struct {
	name string
	proj map[string]Domain
}

// NewDomainConstraint builds a Domain constraint for v over d.
func NewDomainConstraint(v *Variable, d Domain) *DomainConstraint {
	return &DomainConstraint{name: v.Name, proj: map[string]Domain{v.Name: d}}
}

func (c *DomainConstraint) VNames() []string          { return []string{c.name} }
func (c *DomainConstraint) Projected() map[string]Domain { return c.proj }

func (c *DomainConstraint) Satisfied(lab Labeling) bool {
	v, ok := lab[c.name]
	if !ok {
		return false
	}
	return c.proj[c.name].Contains(v)
}

func (c *DomainConstraint) Consistent(lab Labeling) bool {
	v, ok := lab[c.name]
	if !ok {
		return true
	}
	return c.proj[c.name].Contains(v)
}

func (c *DomainConstraint) String() string { return fmt.Sprintf("%s in %s", c.name, c.proj[c.name]) }

// AllDifferent constrains a set of variables to pairwise-unequal values.
// Its node-consistency projection is each variable's own full domain: it
// carries no unary information by itself.
type AllDifferent struct {
	names []string
	proj  map[string]Domain
}

// NewAllDifferent builds an AllDifferent constraint over vars.
func NewAllDifferent(vars ...*Variable) *AllDifferent {
	names := make([]string, len(vars))
	proj := make(map[string]Domain, len(vars))
	for i, v := range vars {
		names[i] = v.Name
		proj[v.Name] = v.Initial
	}
	return &AllDifferent{names: names, proj: proj}
}

func (c *AllDifferent) VNames() []string          { return c.names }
func (c *AllDifferent) Projected() map[string]Domain { return c.proj }

func (c *AllDifferent) Satisfied(lab Labeling) bool {
	for _, v1 := range c.names {
		for _, v2 := range c.names {
			if _, ok := lab[v1]; !ok {
				return false
			}
			if _, ok := lab[v2]; !ok {
				return false
			}
			if v1 == v2 {
				continue
			}
			if lab[v1] == lab[v2] {
				return false
			}
		}
	}
	return true
}

func (c *AllDifferent) Consistent(lab Labeling) bool {
	for _, v1 := range c.names {
		for _, v2 := range c.names {
			if v1 == v2 {
				continue
			}
			val1, ok1 := lab[v1]
			val2, ok2 := lab[v2]
			if !ok1 || !ok2 {
				continue
			}
			if val1 == val2 {
				return false
			}
		}
	}
	return true
}

func (c *AllDifferent) String() string { return fmt.Sprintf("AllDifferent(%v)", c.names) }

// relationKind names the six binary relations the catalog supports.
type relationKind int

const (
	relEqual relationKind = iota
	relNonEqual
	relLess
	relLessEqual
	relGreater
	relGreaterEqual
)

var relationSymbols = map[relationKind]string{
	relEqual:        "=",
	relNonEqual:     "!=",
	relLess:         "<",
	relLessEqual:    "<=",
	relGreater:      ">",
	relGreaterEqual: ">=",
}

// BinaryRelation is a binary constraint between two variables drawn from
// the six relations in spec.md §4.4 (Equal, NonEqual, Less, LessEqual,
// Greater, GreaterEqual). Equal additionally projects the intersection of
// both variables' domains onto each; the others project each variable's
// full domain unchanged.
type BinaryRelation struct {
	v1, v2 string
	kind   relationKind
	proj   map[string]Domain
}

func newBinaryRelation(var1, var2 *Variable, kind relationKind) (*BinaryRelation, error) {
	proj := map[string]Domain{var1.Name: var1.Initial, var2.Name: var2.Initial}

	if kind == relEqual {
		d, err := var1.Initial.Intersect(var2.Initial)
		if err != nil {
			return nil, err
		}
		proj[var1.Name] = d
		proj[var2.Name] = d
	}

	return &BinaryRelation{v1: var1.Name, v2: var2.Name, kind: kind, proj: proj}, nil
}

// NewEqual builds the constraint var1 = var2.
func NewEqual(var1, var2 *Variable) (*BinaryRelation, error) { return newBinaryRelation(var1, var2, relEqual) }

// NewNonEqual builds the constraint var1 != var2.
func NewNonEqual(var1, var2 *Variable) (*BinaryRelation, error) {
	return newBinaryRelation(var1, var2, relNonEqual)
}

// NewLess builds the constraint var1 < var2.
func NewLess(var1, var2 *Variable) (*BinaryRelation, error) { return newBinaryRelation(var1, var2, relLess) }

// NewLessEqual builds the constraint var1 <= var2.
func NewLessEqual(var1, var2 *Variable) (*BinaryRelation, error) {
	return newBinaryRelation(var1, var2, relLessEqual)
}

// NewGreater builds the constraint var1 > var2.
func NewGreater(var1, var2 *Variable) (*BinaryRelation, error) {
	return newBinaryRelation(var1, var2, relGreater)
}

// NewGreaterEqual builds the constraint var1 >= var2.
func NewGreaterEqual(var1, var2 *Variable) (*BinaryRelation, error) {
	return newBinaryRelation(var1, var2, relGreaterEqual)
}

func (c *BinaryRelation) VNames() []string          { return []string{c.v1, c.v2} }
func (c *BinaryRelation) Projected() map[string]Domain { return c.proj }

func (c *BinaryRelation) relation(a, b Value) bool {
	switch c.kind {
	case relEqual:
		return a == b
	case relNonEqual:
		return a != b
	case relLess:
		cmp, ok := compare(a, b)
		return ok && cmp < 0
	case relLessEqual:
		cmp, ok := compare(a, b)
		return ok && cmp <= 0
	case relGreater:
		cmp, ok := compare(a, b)
		return ok && cmp > 0
	case relGreaterEqual:
		cmp, ok := compare(a, b)
		return ok && cmp >= 0
	default:
		return false
	}
}

func (c *BinaryRelation) Satisfied(lab Labeling) bool {
	a, ok1 := lab[c.v1]
	b, ok2 := lab[c.v2]
	if !ok1 || !ok2 {
		return false
	}
	if !c.proj[c.v1].Contains(a) || !c.proj[c.v2].Contains(b) {
		return false
	}
	return c.relation(a, b)
}

func (c *BinaryRelation) Consistent(lab Labeling) bool {
	a, ok1 := lab[c.v1]
	b, ok2 := lab[c.v2]
	if ok1 && !c.proj[c.v1].Contains(a) {
		return false
	}
	if ok2 && !c.proj[c.v2].Contains(b) {
		return false
	}
	if !ok1 || !ok2 {
		return true
	}
	return c.relation(a, b)
}

func (c *BinaryRelation) String() string {
	return fmt.Sprintf("%s %s %s", c.v1, relationSymbols[c.kind], c.v2)
}

// compare orders two values of the same underlying numeric or string
// type. It returns ok=false for types the catalog's ordering relations
// do not support (e.g. comparing a string to a float64).
func compare(a, b Value) (int, bool) {
	switch av := a.(type) {
	case float64:
		bv, ok := b.(float64)
		if !ok {
			return 0, false
		}
		switch {
		case av < bv:
			return -1, true
		case av > bv:
			return 1, true
		default:
			return 0, true
		}
	case int:
		bv, ok := b.(int)
		if !ok {
			return 0, false
		}
		switch {
		case av < bv:
			return -1, true
		case av > bv:
			return 1, true
		default:
			return 0, true
		}
	case int64:
		bv, ok := b.(int64)
		if !ok {
			return 0, false
		}
		switch {
		case av < bv:
			return -1, true
		case av > bv:
			return 1, true
		default:
			return 0, true
		}
	case string:
		bv, ok := b.(string)
		if !ok {
			return 0, false
		}
		switch {
		case av < bv:
			return -1, true
		case av > bv:
			return 1, true
		default:
			return 0, true
		}
	default:
		return 0, false
	}
}

// DiscreteBinaryRelation constrains the pair (a, b) to lie within an
// explicit relation given as a list of tuples. Its projection onto each
// coordinate is the set of values that appear in that position.
type DiscreteBinaryRelation struct {
	v1, v2 string
	tuples map[[2]Value]struct{}
	proj   map[string]Domain
}

// NewDiscreteBinaryRelation builds a relation constraint over (var1, var2)
// admitting exactly the given tuples.
func NewDiscreteBinaryRelation(var1, var2 *Variable, tuples [][2]Value) (*DiscreteBinaryRelation, error) {
	set := make(map[[2]Value]struct{}, len(tuples))
	col1 := make([]Value, 0, len(tuples))
	col2 := make([]Value, 0, len(tuples))
	for _, t := range tuples {
		set[t] = struct{}{}
		col1 = append(col1, t[0])
		col2 = append(col2, t[1])
	}

	d1, err := NewDiscreteSet(col1...)
	if err != nil {
		return nil, err
	}
	d2, err := NewDiscreteSet(col2...)
	if err != nil {
		return nil, err
	}

	return &DiscreteBinaryRelation{
		v1: var1.Name, v2: var2.Name,
		tuples: set,
		proj:   map[string]Domain{var1.Name: DiscreteDomain(d1), var2.Name: DiscreteDomain(d2)},
	}, nil
}

func (c *DiscreteBinaryRelation) VNames() []string          { return []string{c.v1, c.v2} }
func (c *DiscreteBinaryRelation) Projected() map[string]Domain { return c.proj }

func (c *DiscreteBinaryRelation) Satisfied(lab Labeling) bool {
	a, ok1 := lab[c.v1]
	b, ok2 := lab[c.v2]
	if !ok1 || !ok2 {
		return false
	}
	_, ok := c.tuples[[2]Value{a, b}]
	return ok
}

func (c *DiscreteBinaryRelation) Consistent(lab Labeling) bool {
	a, ok1 := lab[c.v1]
	b, ok2 := lab[c.v2]
	if ok1 && !c.proj[c.v1].Contains(a) {
		return false
	}
	if ok2 && !c.proj[c.v2].Contains(b) {
		return false
	}
	if !ok1 || !ok2 {
		return true
	}
	_, ok := c.tuples[[2]Value{a, b}]
	return ok
}

func (c *DiscreteBinaryRelation) String() string {
	return fmt.Sprintf("(%s,%s) in T(%d tuples)", c.v1, c.v2, len(c.tuples))
}
