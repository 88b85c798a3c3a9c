package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/emirpasic/gods/sets/treeset"
	"github.com/emirpasic/gods/utils"

	"github.com/katalvlaran/kbtool/sampler"
	"github.com/katalvlaran/kbtool/triple"
)

// runSamplePath implements `kbtool sample-path`.
func runSamplePath(args []string, s streams) error {
	fset := newFlagSet("sample-path", "[flags] FILE", s.stderr)
	pathLen := fset.Int("path-len", 2, "length of a path")
	size := fset.Int("sample-size", 1000, "maximum sample size")
	dedup := fset.Bool("dedup", false, "drop duplicated paths")
	seed := fset.Int64("seed", envInt64(envSeed, sampler.DefaultSeed), "random seed (env "+envSeed+")")
	neg := fset.String("negative", sampler.PolicyNone, "negative policy: none, exact, uniform, near-miss, traced")
	workers := fset.Int("workers", defaultWorkers(), "parallel workers (env "+envWorkers+")")
	order := fset.String("order", triple.HRT.String(), "field order of FILE: hrt or htr")
	if err := fset.Parse(args); err != nil {
		return fmt.Errorf("%w: %v", errUsage, err)
	}
	if fset.NArg() != 1 {
		fset.Usage()
		return errUsage
	}
	if *pathLen < 0 || *size < 0 {
		return fmt.Errorf("%w: -path-len and -sample-size must be ≥ 0", errUsage)
	}

	ord, err := triple.ParseOrder(*order)
	if err != nil {
		return err
	}
	smp, err := sampler.Open(fset.Arg(0),
		sampler.WithOrder(ord),
		sampler.WithSeed(*seed),
		sampler.WithFixedPathLen(*pathLen),
		sampler.WithPolicy(*neg),
		sampler.WithLogger(s.logger),
	)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	recs, err := smp.Batch(ctx, *size, *workers)
	if err != nil {
		return err
	}

	lines := make([]string, len(recs))
	for i, r := range recs {
		lines[i] = r.String()
	}
	if *dedup {
		lines = dedupLines(lines)
		s.logger.Debug("deduplicated", "before", len(recs), "after", len(lines))
	}

	bw := bufio.NewWriter(s.stdout)
	for _, l := range lines {
		if _, err := fmt.Fprintln(bw, l); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// dedupLines returns the distinct lines in ascending order.
func dedupLines(lines []string) []string {
	set := treeset.NewWith(utils.StringComparator)
	for _, l := range lines {
		set.Add(l)
	}
	out := make([]string, 0, set.Size())
	for _, v := range set.Values() {
		out = append(out, v.(string))
	}
	return out
}
