package main

import (
	"fmt"

	"github.com/katalvlaran/kbtool/pybind"
)

// runPy implements `kbtool py [SCRIPT]`.
func runPy(args []string, s streams) error {
	fset := newFlagSet("py", "[SCRIPT]", s.stderr)
	if err := fset.Parse(args); err != nil {
		return fmt.Errorf("%w: %v", errUsage, err)
	}
	if fset.NArg() > 1 {
		fset.Usage()
		return errUsage
	}
	script := fset.Arg(0)
	if script != "" {
		s.logger.Info("running script", "path", script)
	}
	return pybind.Run(script)
}
