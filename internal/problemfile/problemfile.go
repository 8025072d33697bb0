// Package problemfile loads a CSP problem description from a TOML
// document into pkg/csp constructors. It is a thin external collaborator
// in the sense of spec.md §1: it never reaches into csp's internals, it
// only calls the public constructors, and it has no bearing on the
// solving algorithms themselves.
package problemfile

import (
	"fmt"

	"github.com/pelletier/go-toml"

	"github.com/gitrdm/csp/pkg/csp"
)

// Document is the TOML shape a problem file decodes into.
type Document struct {
	Variable   []variableDoc   `toml:"variable"`
	Constraint []constraintDoc `toml:"constraint"`
}

type variableDoc struct {
	Name        string    `toml:"name"`
	Kind        string    `toml:"kind"` // "discrete" or "continuous"
	Description string    `toml:"description"`
	Values      []any     `toml:"values"`    // discrete domain literal
	Intervals   [][]any   `toml:"intervals"` // continuous domain literal: [lo, hi, loIncl, hiIncl]
}

type constraintDoc struct {
	Kind      string     `toml:"kind"`
	Variables []string   `toml:"variables"`
	Value     any        `toml:"value"`
	Values    []any      `toml:"values"`
	Tuples    [][2]any   `toml:"tuples"`
}

// Problem is the fully constructed result: variables and constraints
// ready to hand to csp.NewSpace.
type Problem struct {
	Variables   []*csp.Variable
	Constraints []csp.Constraint
}

// Load decodes a TOML document's bytes into a Problem.
func Load(data []byte) (*Problem, error) {
	var doc Document
	if err := toml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("problemfile: decode: %w", err)
	}
	return build(&doc)
}

func build(doc *Document) (*Problem, error) {
	byName := make(map[string]*csp.Variable, len(doc.Variable))
	vars := make([]*csp.Variable, 0, len(doc.Variable))

	for _, vd := range doc.Variable {
		v, err := buildVariable(vd)
		if err != nil {
			return nil, fmt.Errorf("problemfile: variable %q: %w", vd.Name, err)
		}
		byName[vd.Name] = v
		vars = append(vars, v)
	}

	constraints := make([]csp.Constraint, 0, len(doc.Constraint))
	for i, cd := range doc.Constraint {
		c, err := buildConstraint(cd, byName)
		if err != nil {
			return nil, fmt.Errorf("problemfile: constraint[%d] (%s): %w", i, cd.Kind, err)
		}
		constraints = append(constraints, c)
	}

	return &Problem{Variables: vars, Constraints: constraints}, nil
}

func buildVariable(vd variableDoc) (*csp.Variable, error) {
	switch vd.Kind {
	case "discrete", "":
		set, err := csp.NewDiscreteSet(vd.Values...)
		if err != nil {
			return nil, err
		}
		return csp.NewDiscreteVariable(vd.Name, set, vd.Description), nil
	case "continuous":
		ivs := make([]csp.Interval, 0, len(vd.Intervals))
		for _, raw := range vd.Intervals {
			if len(raw) != 4 {
				return nil, fmt.Errorf("interval literal needs [lo, hi, loIncl, hiIncl], got %v", raw)
			}
			lo, loOK := toFloat(raw[0])
			hi, hiOK := toFloat(raw[1])
			loIncl, loInclOK := raw[2].(bool)
			hiIncl, hiInclOK := raw[3].(bool)
			if !(loOK && hiOK && loInclOK && hiInclOK) {
				return nil, fmt.Errorf("malformed interval literal %v", raw)
			}
			ivs = append(ivs, csp.NewInterval(lo, hi, loIncl, hiIncl))
		}
		return csp.NewContinuousVariable(vd.Name, csp.NewIntervalSet(ivs...), vd.Description), nil
	default:
		return nil, fmt.Errorf("unknown variable kind %q", vd.Kind)
	}
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int64:
		return float64(n), true
	case int:
		return float64(n), true
	default:
		return 0, false
	}
}

func buildConstraint(cd constraintDoc, byName map[string]*csp.Variable) (csp.Constraint, error) {
	lookup := func(name string) (*csp.Variable, error) {
		v, ok := byName[name]
		if !ok {
			return nil, fmt.Errorf("unknown variable %q", name)
		}
		return v, nil
	}

	switch cd.Kind {
	case "fixed":
		v, err := lookup(cd.Variables[0])
		if err != nil {
			return nil, err
		}
		return csp.NewFixedValue(v, cd.Value)
	case "alldifferent":
		vars := make([]*csp.Variable, 0, len(cd.Variables))
		for _, name := range cd.Variables {
			v, err := lookup(name)
			if err != nil {
				return nil, err
			}
			vars = append(vars, v)
		}
		return csp.NewAllDifferent(vars...), nil
	case "equal", "nonequal", "less", "lessequal", "greater", "greaterequal":
		if len(cd.Variables) != 2 {
			return nil, fmt.Errorf("%s requires exactly two variables", cd.Kind)
		}
		v1, err := lookup(cd.Variables[0])
		if err != nil {
			return nil, err
		}
		v2, err := lookup(cd.Variables[1])
		if err != nil {
			return nil, err
		}
		switch cd.Kind {
		case "equal":
			return csp.NewEqual(v1, v2)
		case "nonequal":
			return csp.NewNonEqual(v1, v2)
		case "less":
			return csp.NewLess(v1, v2)
		case "lessequal":
			return csp.NewLessEqual(v1, v2)
		case "greater":
			return csp.NewGreater(v1, v2)
		default:
			return csp.NewGreaterEqual(v1, v2)
		}
	case "relation":
		if len(cd.Variables) != 2 {
			return nil, fmt.Errorf("relation requires exactly two variables")
		}
		v1, err := lookup(cd.Variables[0])
		if err != nil {
			return nil, err
		}
		v2, err := lookup(cd.Variables[1])
		if err != nil {
			return nil, err
		}
		tuples := make([][2]any, len(cd.Tuples))
		copy(tuples, cd.Tuples)
		return csp.NewDiscreteBinaryRelation(v1, v2, tuples)
	default:
		return nil, fmt.Errorf("unknown constraint kind %q", cd.Kind)
	}
}
