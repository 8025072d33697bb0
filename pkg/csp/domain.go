package csp

// Value is a concrete value bound to a variable: a comparable Go value
// for discrete variables, or a float64 for continuous ones.
type Value = any

// Kind distinguishes a variable's domain kind. A variable's kind is fixed
// at creation and never changes; operations that would require mixing
// kinds return ErrKindMismatch.
type Kind int

const (
	// KindDiscrete marks a variable whose domain is a DiscreteSet.
	KindDiscrete Kind = iota
	// KindContinuous marks a variable whose domain is an IntervalSet.
	KindContinuous
)

// String renders the kind as "discrete" or "continuous".
func (k Kind) String() string {
	if k == KindDiscrete {
		return "discrete"
	}
	return "continuous"
}

// Domain is the tagged union Discrete(DiscreteSet) | Continuous(IntervalSet).
type Domain struct {
	Kind     Kind
	discrete DiscreteSet
	cont     IntervalSet
}

// DiscreteDomain wraps a DiscreteSet as a Domain.
func DiscreteDomain(s DiscreteSet) Domain {
	return Domain{Kind: KindDiscrete, discrete: s}
}

// ContinuousDomain wraps an IntervalSet as a Domain.
func ContinuousDomain(s IntervalSet) Domain {
	return Domain{Kind: KindContinuous, cont: s}
}

// AsDiscrete returns the domain's DiscreteSet. It panics if Kind is not
// KindDiscrete; callers that don't already know the kind should check it
// first, exactly as a variable's kind is fixed at construction and never
// inspected speculatively in this engine.
func (d Domain) AsDiscrete() DiscreteSet {
	if d.Kind != KindDiscrete {
		panic("csp: Domain.AsDiscrete called on a continuous domain")
	}
	return d.discrete
}

// AsContinuous returns the domain's IntervalSet. It panics if Kind is not
// KindContinuous.
func (d Domain) AsContinuous() IntervalSet {
	if d.Kind != KindContinuous {
		panic("csp: Domain.AsContinuous called on a discrete domain")
	}
	return d.cont
}

// IsEmpty reports whether the domain has no members.
func (d Domain) IsEmpty() bool {
	if d.Kind == KindDiscrete {
		return d.discrete.IsEmpty()
	}
	return d.cont.IsEmpty()
}

// IsDiscrete reports whether the domain is currently enumerable: a
// concrete DiscreteSet, or an IntervalSet whose every member is a single
// point.
func (d Domain) IsDiscrete() bool {
	if d.Kind == KindDiscrete {
		return d.discrete.IsDiscrete()
	}
	return d.cont.IsDiscrete()
}

// Contains reports whether x is a member of the domain. x must be a
// Value compatible with the domain's kind (a float64 for continuous
// domains); a mismatched type simply never matches.
func (d Domain) Contains(x Value) bool {
	if d.Kind == KindDiscrete {
		return d.discrete.Contains(x)
	}
	f, ok := x.(float64)
	if !ok {
		return false
	}
	return d.cont.Contains(f)
}

// Intersect computes d ∩ other. It returns ErrKindMismatch if the two
// domains have different kinds.
func (d Domain) Intersect(other Domain) (Domain, error) {
	if d.Kind != other.Kind {
		return Domain{}, wrap(ErrKindMismatch, "cannot intersect %s domain with %s domain", d.Kind, other.Kind)
	}
	if d.Kind == KindDiscrete {
		return DiscreteDomain(d.discrete.Intersection(other.discrete)), nil
	}
	return ContinuousDomain(d.cont.Intersection(other.cont)), nil
}

// Difference computes d \ other. It returns ErrKindMismatch on mismatched
// kinds and propagates ErrUnboundedOperation from a discrete universe
// subtraction.
func (d Domain) Difference(other Domain) (Domain, error) {
	if d.Kind != other.Kind {
		return Domain{}, wrap(ErrKindMismatch, "cannot subtract %s domain from %s domain", other.Kind, d.Kind)
	}
	if d.Kind == KindDiscrete {
		res, err := d.discrete.Difference(other.discrete)
		if err != nil {
			return Domain{}, err
		}
		return DiscreteDomain(res), nil
	}
	return ContinuousDomain(d.cont.Difference(other.cont)), nil
}

// IterMembers enumerates the domain's members as Values (the underlying
// comparable value for discrete domains, float64 for continuous ones).
// It returns ErrNotDiscrete/ErrUnboundedOperation when the domain cannot
// be enumerated.
func (d Domain) IterMembers() ([]Value, error) {
	if d.Kind == KindDiscrete {
		return d.discrete.IterMembers()
	}
	pts, err := d.cont.IterMembers()
	if err != nil {
		return nil, err
	}
	out := make([]Value, len(pts))
	for i, p := range pts {
		out[i] = p
	}
	return out, nil
}

// String renders the wrapped set's representation.
func (d Domain) String() string {
	if d.Kind == KindDiscrete {
		return d.discrete.String()
	}
	return d.cont.String()
}
