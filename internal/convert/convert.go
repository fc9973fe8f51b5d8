// Package convert rewrites the leading whitespace and line terminators of a
// text buffer. Only the leading whitespace run and the terminator of each
// line are touched; content bytes pass through untouched.
package convert

import (
	"bytes"

	"github.com/PhilLockett/tfc/internal/scan"
)

// IndentTarget selects the leading-whitespace rewrite.
type IndentTarget int

const (
	// IndentKeep leaves leading whitespace unchanged.
	IndentKeep IndentTarget = iota
	// IndentSpaces expands the leading run to spaces.
	IndentSpaces
	// IndentTabs collapses the leading run to tabs plus a space remainder.
	IndentTabs
)

// EOLTarget selects the terminator rewrite.
type EOLTarget int

const (
	// EOLKeep preserves the original terminator bytes verbatim.
	EOLKeep EOLTarget = iota
	// EOLDos rewrites every terminator to CR-LF.
	EOLDos
	// EOLUnix rewrites every terminator to LF.
	EOLUnix
)

// DefaultTabWidth is the tab width used when no width is selected.
const DefaultTabWidth = 4

// Options holds the per-invocation conversion settings. The zero value
// requests no rewrite at all.
type Options struct {
	Indent IndentTarget
	Width  int // tab width; 0 selects DefaultTabWidth
	EOL    EOLTarget
}

// Active reports whether any rewrite is requested.
func (o Options) Active() bool {
	return o.Indent != IndentKeep || o.EOL != EOLKeep
}

// TabWidth returns the effective tab width.
func (o Options) TabWidth() int {
	if o.Width == 0 {
		return DefaultTabWidth
	}
	return o.Width
}

var (
	dosTerminator  = []byte("\r\n")
	unixTerminator = []byte("\n")
)

// Apply rewrites src per opts and returns the converted buffer together
// with the classification summary of the source. The same input and options
// always produce the same output.
func Apply(src []byte, opts Options) ([]byte, scan.Summary) {
	var sum scan.Summary
	var out bytes.Buffer
	out.Grow(len(src) + len(src)/8)

	for _, line := range scan.Split(src) {
		sum.Add(line)

		run := line.LeadingRun()
		out.Write(Leading(run, opts.Indent, opts.TabWidth()))
		out.Write(line.Content[len(run):])

		switch opts.EOL {
		case EOLDos:
			out.Write(dosTerminator)
		case EOLUnix:
			out.Write(unixTerminator)
		default:
			out.Write(line.Terminator)
		}
	}
	return out.Bytes(), sum
}

// Leading rewrites a leading whitespace run. The rewrite is column based: a
// space advances one column and a tab advances to the next multiple of
// width, so runs that mix spaces and tabs normalise to the same display
// column. For IndentSpaces the run becomes one space per column; for
// IndentTabs it becomes one tab per full width of columns with the
// remainder kept as literal spaces.
func Leading(run []byte, target IndentTarget, width int) []byte {
	if target == IndentKeep || len(run) == 0 {
		return run
	}

	col := column(run, width)
	switch target {
	case IndentSpaces:
		return bytes.Repeat([]byte{' '}, col)
	default:
		rewritten := bytes.Repeat([]byte{'\t'}, col/width)
		return append(rewritten, bytes.Repeat([]byte{' '}, col%width)...)
	}
}

// column computes the display column reached by a whitespace run with tab
// stops every width columns.
func column(run []byte, width int) int {
	col := 0
	for _, b := range run {
		if b == '\t' {
			col += width - col%width
		} else {
			col++
		}
	}
	return col
}
