package dot

import (
	"io"
	"strings"
)

// tab is one indentation level.
const tab = "    "

// Indenter writes lines to an io.Writer at a variable indentation level.
// The first write error is kept and returned by every later call.
type Indenter struct {
	w     io.Writer
	level int
	err   error
}

// NewIndenter returns an Indenter over w at level 0.
func NewIndenter(w io.Writer) *Indenter {
	return &Indenter{w: w}
}

// Indent increases the indentation level.
func (in *Indenter) Indent() { in.level++ }

// Dedent decreases the indentation level, but not below 0.
func (in *Indenter) Dedent() {
	if in.level > 0 {
		in.level--
	}
}

// Level returns the current indentation level.
func (in *Indenter) Level() int { return in.level }

// WriteLine writes line at the current level followed by a newline. An
// empty line is written as a bare newline without indentation.
func (in *Indenter) WriteLine(line string) error {
	if in.err != nil {
		return in.err
	}
	var b strings.Builder
	if line != "" {
		b.WriteString(strings.Repeat(tab, in.level))
		b.WriteString(line)
	}
	b.WriteByte('\n')
	_, in.err = io.WriteString(in.w, b.String())

	return in.err
}

// Err returns the first write error, if any.
func (in *Indenter) Err() error { return in.err }
