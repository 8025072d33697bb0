// Command cspsolve loads a CSP problem description from a TOML file and
// enumerates its solutions. It is a thin wrapper around pkg/csp: the
// CLI/file-format layer spec.md §1 names as an external collaborator,
// kept out of the solving core proper.
package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/go-errors/errors"
	"github.com/integrii/flaggy"
	"github.com/sirupsen/logrus"

	"github.com/gitrdm/csp/internal/problemfile"
	"github.com/gitrdm/csp/pkg/csp"
)

var (
	problemPath = ""
	method      = csp.MethodBacktrack
	orderRaw    = ""
	reduce      = false
	verbose     = false
)

func main() {
	flaggy.SetName("cspsolve")
	flaggy.SetDescription("Enumerate solutions to a TOML-described constraint satisfaction problem")
	flaggy.DefaultParser.AdditionalHelpPrepend = "https://github.com/gitrdm/csp"

	flaggy.String(&problemPath, "p", "problem", "Path to a TOML problem file")
	flaggy.String(&method, "m", "method", "Solver method: backtrack or ac-lookahead")
	flaggy.String(&orderRaw, "o", "order", "Comma-separated variable ordering (default: file order)")
	flaggy.Bool(&reduce, "r", "reduce", "Run AC-3 once before search")
	flaggy.Bool(&verbose, "v", "verbose", "Log AC-3 propagation at debug level")

	flaggy.Parse()

	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "cspsolve:", err)
		if wrapped, ok := err.(*errors.Error); ok {
			fmt.Fprintln(os.Stderr, wrapped.ErrorStack())
		}
		os.Exit(1)
	}
}

func run() error {
	if problemPath == "" {
		return fmt.Errorf("missing -problem")
	}

	data, err := os.ReadFile(problemPath)
	if err != nil {
		return fmt.Errorf("reading %s: %w", problemPath, err)
	}

	problem, err := problemfile.Load(data)
	if err != nil {
		return err
	}

	space := csp.NewSpace(problem.Variables, problem.Constraints)

	if verbose {
		log := logrus.New()
		log.SetLevel(logrus.DebugLevel)
		space.WithLogger(log)
	}

	if reduce {
		if err := csp.ReduceAC3(space); err != nil {
			return fmt.Errorf("reducing: %w", err)
		}
	}

	var ordering []string
	if orderRaw != "" {
		ordering = strings.Split(orderRaw, ",")
	}

	solutions, err := csp.Solve(space, method, ordering)
	if err != nil {
		return fmt.Errorf("solving: %w", err)
	}

	ctx := context.Background()
	count := 0
	for {
		lab, ok, err := solutions.Next(ctx)
		if err != nil {
			return fmt.Errorf("search: %w", err)
		}
		if !ok {
			break
		}
		count++
		fmt.Println(formatLabeling(space, lab))
	}

	fmt.Fprintf(os.Stderr, "%d solution(s)\n", count)
	return nil
}

func formatLabeling(space *csp.Space, lab csp.Labeling) string {
	parts := make([]string, 0, len(space.Order))
	for _, name := range space.Order {
		parts = append(parts, fmt.Sprintf("%s=%v", name, lab[name]))
	}
	return strings.Join(parts, " ")
}
