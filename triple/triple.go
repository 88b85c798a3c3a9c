// SPDX-License-Identifier: MIT
// Package: kbtool/triple
//
// triple.go - the (head, relation, tail) value type, its text form and ordering.
//
// Contract:
//   • Lines are tab-separated; field order is configurable (HRT / HTR).
//   • Every field must be non-empty; malformed lines surface as ErrMalformedLine.
//   • Blank lines are skipped, every other line yields exactly one Triple.
//   • Read preserves input order (graph ids depend on it).

package triple

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// ErrMalformedLine indicates a line that does not carry three non-empty fields.
var ErrMalformedLine = errors.New("triple: malformed line")

// ErrUnknownOrder indicates an unrecognized field-order name.
var ErrUnknownOrder = errors.New("triple: unknown field order")

// fieldSep separates the fields of a triple line.
const fieldSep = "\t"

// Triple is a single (head, relation, tail) fact.
type Triple struct {
	Head     string
	Relation string
	Tail     string
}

// New returns the Triple (head, relation, tail).
func New(head, relation, tail string) Triple {
	return Triple{Head: head, Relation: relation, Tail: tail}
}

// String renders t in HRT line form without the trailing newline.
func (t Triple) String() string {
	return t.Head + fieldSep + t.Relation + fieldSep + t.Tail
}

// Order names the column layout of a triple file.
type Order int

const (
	// HRT is head, relation, tail.
	HRT Order = iota
	// HTR is head, tail, relation.
	HTR
)

// ParseOrder resolves "hrt" / "htr" (case-insensitive).
func ParseOrder(name string) (Order, error) {
	switch strings.ToLower(name) {
	case "hrt", "":
		return HRT, nil
	case "htr":
		return HTR, nil
	}
	return HRT, fmt.Errorf("ParseOrder(%q): %w", name, ErrUnknownOrder)
}

// String returns the lower-case order name.
func (o Order) String() string {
	if o == HTR {
		return "htr"
	}
	return "hrt"
}

// Parse splits one line into a Triple according to order.
// Fields beyond the third are ignored, as are trailing CR characters.
func Parse(line string, order Order) (Triple, error) {
	line = strings.TrimRight(line, "\r")
	v := strings.Split(line, fieldSep)
	if len(v) < 3 {
		return Triple{}, fmt.Errorf("%d fields: %w", len(v), ErrMalformedLine)
	}
	var t Triple
	if order == HTR {
		t = New(v[0], v[2], v[1])
	} else {
		t = New(v[0], v[1], v[2])
	}
	if t.Head == "" || t.Relation == "" || t.Tail == "" {
		return Triple{}, fmt.Errorf("empty field: %w", ErrMalformedLine)
	}
	return t, nil
}

// Read parses every non-blank line of r in order.
// The first malformed line aborts the read; the error carries its 1-based number.
func Read(r io.Reader, order Order) ([]Triple, error) {
	var (
		out  []Triple
		n    int
		scan = bufio.NewScanner(r)
	)
	scan.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	for scan.Scan() {
		n++
		line := scan.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		t, err := Parse(line, order)
		if err != nil {
			return nil, fmt.Errorf("Read: line %d: %w", n, err)
		}
		out = append(out, t)
	}
	if err := scan.Err(); err != nil {
		return nil, fmt.Errorf("Read: %w", err)
	}
	return out, nil
}

// ReadFile opens path and delegates to Read.
func ReadFile(path string, order Order) ([]Triple, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("ReadFile: %w", err)
	}
	defer f.Close()

	return Read(f, order)
}

// Write emits ts to w in HRT line form, one triple per line.
func Write(w io.Writer, ts []Triple) error {
	bw := bufio.NewWriter(w)
	for _, t := range ts {
		if _, err := bw.WriteString(t.String() + "\n"); err != nil {
			return fmt.Errorf("Write: %w", err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("Write: %w", err)
	}
	return nil
}
