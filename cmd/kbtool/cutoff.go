package main

import (
	"fmt"

	"github.com/katalvlaran/kbtool/triple"
	"github.com/katalvlaran/kbtool/vocab"
)

// runCutoff implements `kbtool cutoff`.
func runCutoff(args []string, s streams) error {
	fset := newFlagSet("cutoff", "[flags] FILE", s.stderr)
	outdir := fset.String("outdir", ".", "directory to store data")
	minEnt := fset.Int("min-ent", 1, "minimum count of entities")
	minRel := fset.Int("min-rel", 1, "minimum count of relations")
	before := fset.Bool("dedup-before-count", false, "drop duplicated triples before counting")
	after := fset.Bool("dedup-after-count", false, "drop duplicated triples after counting")
	order := fset.String("order", triple.HRT.String(), "field order of FILE: hrt or htr")
	if err := fset.Parse(args); err != nil {
		return fmt.Errorf("%w: %v", errUsage, err)
	}
	if fset.NArg() != 1 {
		fset.Usage()
		return errUsage
	}

	ord, err := triple.ParseOrder(*order)
	if err != nil {
		return err
	}
	ts, err := triple.ReadFile(fset.Arg(0), ord)
	if err != nil {
		return err
	}

	res, err := vocab.Cutoff(ts, vocab.Options{
		MinEntity:        *minEnt,
		MinRelation:      *minRel,
		DedupBeforeCount: *before,
		DedupAfterCount:  *after,
	})
	if err != nil {
		return err
	}
	if err := vocab.WriteDir(*outdir, res); err != nil {
		return err
	}

	s.logger.Info("cutoff written",
		"dir", *outdir,
		"input", len(ts),
		"entities", len(res.Entities),
		"relations", len(res.Relations),
		"triples", len(res.Triples))
	return nil
}
