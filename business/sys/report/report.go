// Package report renders evaluation reports and the model description for
// people and for other programs.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/ardanlabs/blocksizing/business/core/blocksize"
)

// Set of supported output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Write renders the report in the specified format.
func Write(w io.Writer, format string, r blocksize.Report) error {
	switch strings.ToLower(format) {
	case FormatText, "":
		return Text(w, r)
	case FormatJSON:
		return JSON(w, r)
	}

	return fmt.Errorf("format %q is not supported", format)
}

// Text writes one line per constraint followed by any notes.
func Text(w io.Writer, r blocksize.Report) error {
	ew := errWriter{w: w}

	for _, o := range r.Outcomes {
		switch {
		case !o.Evaluated:
			ew.printf("Condition %d: (%s): not evaluated\n", o.ID, o.Label)

		case o.Kind == blocksize.KindInteger && o.Integer != nil:
			ew.printf("Condition %d: %s = %d\n", o.ID, o.Label, *o.Integer)

		case o.Kind == blocksize.KindValue || o.Kind == blocksize.KindInteger:
			ew.printf("Condition %d: %s = %s\n", o.ID, o.Label, number(o.Value))

		case o.Kind == blocksize.KindValues:
			ew.printf("Condition %d: %s = %s\n", o.ID, o.Label, numbers(o.Values))

		case o.Kind == blocksize.KindPredicates && !summary(o.ID):
			ew.printf("Condition %d: (%s): %s\n", o.ID, o.Label, bools(o.Each))

		default:
			ew.printf("Condition %d: (%s): %t\n", o.ID, o.Label, o.Holds)
		}
	}

	if len(r.Notes) > 0 {
		ew.printf("\n")
		for _, note := range r.Notes {
			ew.printf("Note: %s\n", note)
		}
	}

	return ew.err
}

// JSON writes the report as indented JSON.
func JSON(w io.Writer, r blocksize.Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(r)
}

// Describe writes the parameters, decision variables and constraints of
// the model.
func Describe(w io.Writer) error {
	ew := errWriter{w: w}

	ew.printf("Table 1: Models Parameters/Variables and Their Description\n\n")
	ew.printf("Parameters:\n")
	for _, e := range blocksize.Parameters() {
		ew.printf("%s: %s\n", e.Symbol, e.Description)
	}

	ew.printf("\nDecision Variables:\n")
	for _, e := range blocksize.DecisionVariables() {
		ew.printf("%s: %s\n", e.Symbol, e.Description)
	}

	cs := blocksize.Constraints()
	ew.printf("\nConstraints and Equations (1 to %d)\n", len(cs))
	for _, c := range cs {
		ew.printf("(%d): %s\n", c.ID, c.Description)
	}

	return ew.err
}

// =============================================================================

// errWriter keeps the first write error so a sequence of prints can be
// checked once.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) printf(format string, args ...any) {
	if ew.err != nil {
		return
	}
	_, ew.err = fmt.Fprintf(ew.w, format, args...)
}

// summary reports whether a per index constraint is printed as one boolean.
func summary(id int) bool {
	c, _ := blocksize.LookupConstraint(id)
	return c.Summary
}

func number(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func numbers(vs []float64) string {
	s := make([]string, len(vs))
	for i, v := range vs {
		s[i] = number(v)
	}
	return "[" + strings.Join(s, ", ") + "]"
}

func bools(bs []bool) string {
	s := make([]string, len(bs))
	for i, b := range bs {
		s[i] = strconv.FormatBool(b)
	}
	return "[" + strings.Join(s, ", ") + "]"
}
