package main

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/kbtool/builder"
	"github.com/katalvlaran/kbtool/triple"
)

// runSynth implements `kbtool synth`.
func runSynth(args []string, s streams) error {
	fset := newFlagSet("synth", "[flags]", s.stderr)
	shape := fset.String("shape", "random", "topology: cycle, path, star, complete, random")
	n := fset.Int("n", 10, "number of entities")
	p := fset.Float64("p", 0.2, "edge probability for -shape random")
	seed := fset.Int64("seed", envInt64(envSeed, 0), "random seed (env "+envSeed+")")
	rels := fset.String("relations", builder.DefaultRelation, "comma-separated relation labels")
	ids := fset.String("ids", "decimal", "entity labels: decimal (0,1,..), symbol (A..Z), column (A..Z,AA,..)")
	prefix := fset.String("prefix", "", "prefix for decimal entity labels")
	if err := fset.Parse(args); err != nil {
		return fmt.Errorf("%w: %v", errUsage, err)
	}
	if fset.NArg() != 0 {
		fset.Usage()
		return errUsage
	}

	var ctor builder.Constructor
	switch *shape {
	case "cycle":
		ctor = builder.Cycle(*n)
	case "path":
		ctor = builder.Path(*n)
	case "star":
		ctor = builder.Star(*n)
	case "complete":
		ctor = builder.Complete(*n)
	case "random":
		ctor = builder.RandomSparse(*n, *p)
	default:
		return fmt.Errorf("%w: unknown -shape %q", errUsage, *shape)
	}

	names := strings.Split(*rels, ",")
	for i := range names {
		names[i] = strings.TrimSpace(names[i])
		if names[i] == "" {
			return fmt.Errorf("%w: empty label in -relations %q", errUsage, *rels)
		}
	}
	scheme, err := idScheme(*ids, *prefix, *n)
	if err != nil {
		return err
	}
	opts := []builder.BuilderOption{builder.WithSeed(*seed), builder.WithRelations(names...), scheme}

	ts, err := builder.Build(opts, ctor)
	if err != nil {
		return err
	}
	s.logger.Info("synthesized", "shape", *shape, "n", *n, "triples", len(ts))
	return triple.Write(s.stdout, ts)
}

// idScheme maps the -ids and -prefix flags to a builder label option.
func idScheme(name, prefix string, n int) (builder.BuilderOption, error) {
	if prefix != "" && name != "decimal" {
		return nil, fmt.Errorf("%w: -prefix needs -ids decimal, got %q", errUsage, name)
	}
	switch name {
	case "decimal":
		if prefix != "" {
			return builder.WithPrefixIDs(prefix), nil
		}
		return builder.WithDefaultIDs(), nil
	case "symbol":
		if n > 26 {
			return nil, fmt.Errorf("%w: -ids symbol covers at most 26 entities, got -n %d", errUsage, n)
		}
		return builder.WithSymbolIDs(), nil
	case "column":
		return builder.WithExcelColumnIDs(), nil
	}
	return nil, fmt.Errorf("%w: unknown -ids %q", errUsage, name)
}
