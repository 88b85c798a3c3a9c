package vocab

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/katalvlaran/kbtool/triple"
)

// File names written by WriteDir.
const (
	EntityFile   = "entity.vocab"
	RelationFile = "relation.vocab"
	TrainFile    = "train.txt"
)

// WriteEntries writes one "key\tcount" line per entry, count with one decimal.
func WriteEntries(w io.Writer, es []Entry) error {
	bw := bufio.NewWriter(w)
	for _, e := range es {
		if _, err := fmt.Fprintf(bw, "%s\t%.1f\n", e.Key, float64(e.Count)); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// WriteDir writes the three output files of res into dir, creating dir if needed.
func WriteDir(dir string, res *Result) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("WriteDir: %w", err)
	}
	if err := writeFile(filepath.Join(dir, EntityFile), func(w io.Writer) error {
		return WriteEntries(w, res.Entities)
	}); err != nil {
		return err
	}
	if err := writeFile(filepath.Join(dir, RelationFile), func(w io.Writer) error {
		return WriteEntries(w, res.Relations)
	}); err != nil {
		return err
	}
	return writeFile(filepath.Join(dir, TrainFile), func(w io.Writer) error {
		return triple.Write(w, res.Triples)
	})
}

func writeFile(path string, fill func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("WriteDir: %w", err)
	}
	if err := fill(f); err != nil {
		f.Close()
		return fmt.Errorf("WriteDir: %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("WriteDir: %s: %w", path, err)
	}
	return nil
}
