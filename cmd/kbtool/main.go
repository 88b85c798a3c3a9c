// Command kbtool prepares relational-path training data from knowledge-graph
// triples.
//
//	kbtool [-log-level info] <command> [flags] [args]
//
// Commands:
//
//	cutoff       frequency cut-off; writes entity.vocab, relation.vocab, train.txt
//	sample-path  random walks (and optional negatives), one per line on stdout
//	synth        synthetic triples on stdout
//	py           run a Python script with kb_tool importable (REPL without args)
//
// Defaults are read from the environment, after loading ./.env if present:
// KBTOOL_SEED, KBTOOL_WORKERS, KBTOOL_LOG_LEVEL.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
)

var errUsage = errors.New("usage")

// streams bundles what a subcommand writes to.
type streams struct {
	stdout io.Writer
	stderr io.Writer
	logger *log.Logger
}

type command struct {
	name  string
	short string
	run   func(args []string, s streams) error
}

var commands = []command{
	{"cutoff", "cut off at frequencies of entities and relations", runCutoff},
	{"sample-path", "sample paths", runSamplePath},
	{"synth", "generate synthetic triples", runSynth},
	{"py", "run a Python script with kb_tool importable", runPy},
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run dispatches to a subcommand and returns the process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	envErr := loadEnv()

	fset := flag.NewFlagSet("kbtool", flag.ContinueOnError)
	fset.SetOutput(stderr)
	level := fset.String("log-level", envString(envLogLevel, "info"), "log level: debug, info, warn, error")
	fset.Usage = func() {
		fmt.Fprintf(stderr, "Usage:\n  kbtool [-log-level LEVEL] <command> [flags] [args]\n\nCommands:\n")
		for _, c := range commands {
			fmt.Fprintf(stderr, "  %-12s %s\n", c.name, c.short)
		}
		fmt.Fprintf(stderr, "\nGlobal flags:\n")
		fset.PrintDefaults()
	}
	if err := fset.Parse(args); err != nil {
		return 2
	}

	logger, err := newLogger(stderr, *level)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 2
	}
	if envErr != nil {
		logger.Debug("no .env file found, using process environment")
	}

	if fset.NArg() == 0 {
		fset.Usage()
		return 2
	}
	name, rest := fset.Arg(0), fset.Args()[1:]
	for _, c := range commands {
		if c.name != name {
			continue
		}
		if err := c.run(rest, streams{stdout: stdout, stderr: stderr, logger: logger}); err != nil {
			if errors.Is(err, errUsage) || errors.Is(err, flag.ErrHelp) {
				return 2
			}
			logger.Error(c.name+" failed", "err", err)
			return 1
		}
		return 0
	}

	fmt.Fprintf(stderr, "Error: unknown command %q\n\n", name)
	fset.Usage()
	return 2
}

func newLogger(w io.Writer, level string) (*log.Logger, error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("-log-level: %w", err)
	}
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "kbtool",
		Level:           lvl,
	}), nil
}

// newFlagSet returns a subcommand flag set printing its usage to w.
func newFlagSet(name, usage string, w io.Writer) *flag.FlagSet {
	fset := flag.NewFlagSet(name, flag.ContinueOnError)
	fset.SetOutput(w)
	fset.Usage = func() {
		fmt.Fprintf(w, "Usage:\n  kbtool %s %s\n\nFlags:\n", name, usage)
		fset.PrintDefaults()
	}
	return fset
}
