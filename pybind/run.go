package pybind

import (
	"fmt"
	"path/filepath"

	"github.com/go-python/gpython/py"
	"github.com/go-python/gpython/repl"
	"github.com/go-python/gpython/repl/cli"

	_ "github.com/go-python/gpython/stdlib"
)

// Run executes the Python script at pathname with kb_tool importable.
// An empty pathname starts an interactive REPL on the terminal.
// A Python exception is dumped as a traceback and returned.
//
// gpython resolves a script against its search path ("."), which mangles
// absolute names, so the script is passed as a base name relative to CurDir.
func Run(pathname string) error {
	var dir, name string
	if pathname != "" {
		abs, err := filepath.Abs(pathname)
		if err != nil {
			return fmt.Errorf("Run(%q): %w", pathname, err)
		}
		dir, name = filepath.Split(abs)
	}

	ctx := py.NewContext(py.DefaultContextOpts())

	var err error
	if name == "" {
		cli.RunREPL(repl.New(ctx))
	} else {
		_, err = py.RunFile(ctx, name, py.CompileOpts{CurDir: dir}, nil)
	}

	ctx.Close()
	<-ctx.Done()

	if err != nil {
		py.TracebackDump(err)
	}
	return err
}
