package convert

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLeadingToTabs(t *testing.T) {
	tests := []struct {
		name  string
		run   string
		width int
		want  string
	}{
		{"four spaces at width 4", "    ", 4, "\t"},
		{"four spaces at width 2", "    ", 2, "\t\t"},
		{"four spaces at width 8 below threshold", "    ", 8, "    "},
		{"remainder kept as spaces", "      ", 4, "\t  "},
		{"nine spaces at width 2", "         ", 2, "\t\t\t\t "},
		{"nine spaces at width 8", "         ", 8, "\t "},
		{"space then tab folds to one tab", " \t", 4, "\t"},
		{"space tab space space", " \t  ", 4, "\t  "},
		{"tab then space unchanged", "\t ", 4, "\t "},
		{"pure tab run unchanged", "\t\t", 4, "\t\t"},
		{"empty run", "", 4, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Leading([]byte(tt.run), IndentTabs, tt.width)
			assert.Equal(t, tt.want, string(got))
		})
	}
}

func TestLeadingToSpaces(t *testing.T) {
	tests := []struct {
		name  string
		run   string
		width int
		want  string
	}{
		{"single tab at width 2", "\t", 2, "  "},
		{"single tab at width 4", "\t", 4, "    "},
		{"single tab at width 8", "\t", 8, "        "},
		{"tab advances to next stop", " \t", 4, "    "},
		{"three spaces then tab at width 4", "   \t", 4, "    "},
		{"four spaces then tab at width 4", "    \t", 4, "        "},
		{"tab space space", "\t  ", 4, "      "},
		{"spaces pass through", "   ", 4, "   "},
		{"empty run", "", 4, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Leading([]byte(tt.run), IndentSpaces, tt.width)
			assert.Equal(t, tt.want, string(got))
		})
	}
}

// The ladder of 0..9 leading spaces converted to tabs at each width,
// matching the reference conversion tables.
func TestApplySpacesToTabsLadder(t *testing.T) {
	input := "0\n 1\n  2\n   3\n    4\n     5\n      6\n       7\n        8\n         9\n"

	tests := []struct {
		width int
		want  string
	}{
		{2, "0\n 1\n\t2\n\t 3\n\t\t4\n\t\t 5\n\t\t\t6\n\t\t\t 7\n\t\t\t\t8\n\t\t\t\t 9\n"},
		{4, "0\n 1\n  2\n   3\n\t4\n\t 5\n\t  6\n\t   7\n\t\t8\n\t\t 9\n"},
		{8, "0\n 1\n  2\n   3\n    4\n     5\n      6\n       7\n\t8\n\t 9\n"},
	}

	for _, tt := range tests {
		out, _ := Apply([]byte(input), Options{Indent: IndentTabs, Width: tt.width})
		assert.Equal(t, tt.want, string(out), "width %d", tt.width)
	}
}

// The ladder of 0..9 leading spaces before a tab, expanded to spaces at
// each width: every run lands exactly on a tab stop.
func TestApplyTabsToSpacesLadder(t *testing.T) {
	input := "\t0\n \t1\n  \t2\n   \t3\n    \t4\n     \t5\n      \t6\n       \t7\n        \t8\n         \t9\n"

	tests := []struct {
		width int
		want  string
	}{
		{2, "  0\n  1\n    2\n    3\n      4\n      5\n        6\n        7\n          8\n          9\n"},
		{4, "    0\n    1\n    2\n    3\n        4\n        5\n        6\n        7\n            8\n            9\n"},
		{8, "        0\n        1\n        2\n        3\n        4\n        5\n        6\n        7\n                8\n                9\n"},
	}

	for _, tt := range tests {
		out, _ := Apply([]byte(input), Options{Indent: IndentSpaces, Width: tt.width})
		assert.Equal(t, tt.want, string(out), "width %d", tt.width)
	}
}

func TestApplyMixedLeadingDefaultWidth(t *testing.T) {
	// Mixed space/tab leading runs with DOS terminators throughout.
	input := "\t  Sub 1\r\n \t  CRLF.m\r\n \t\r\n\t \r\n\tH\ti\r\n H\ti\r\nH\ti\r\nH i\r\n\r\n"

	t.Run("to spaces", func(t *testing.T) {
		want := "      Sub 1\r\n      CRLF.m\r\n    \r\n     \r\n    H\ti\r\n H\ti\r\nH\ti\r\nH i\r\n\r\n"
		out, _ := Apply([]byte(input), Options{Indent: IndentSpaces})
		assert.Equal(t, want, string(out))
	})

	t.Run("to tabs", func(t *testing.T) {
		want := "\t  Sub 1\r\n\t  CRLF.m\r\n\t\r\n\t \r\n\tH\ti\r\n H\ti\r\nH\ti\r\nH i\r\n\r\n"
		out, _ := Apply([]byte(input), Options{Indent: IndentTabs})
		assert.Equal(t, want, string(out))
	})
}

func TestApplyTerminators(t *testing.T) {
	tests := []struct {
		name  string
		input string
		opts  Options
		want  string
	}{
		{
			name:  "unix to dos",
			input: "a\nb\n\n",
			opts:  Options{EOL: EOLDos},
			want:  "a\r\nb\r\n\r\n",
		},
		{
			name:  "dos to unix",
			input: "a\r\nb\r\n\r\n",
			opts:  Options{EOL: EOLUnix},
			want:  "a\nb\n\n",
		},
		{
			name:  "malformed to dos",
			input: "a\n\rb\n\r",
			opts:  Options{EOL: EOLDos},
			want:  "a\r\nb\r\n",
		},
		{
			name:  "malformed to unix",
			input: "a\n\rb\n\r",
			opts:  Options{EOL: EOLUnix},
			want:  "a\nb\n",
		},
		{
			name:  "keep preserves malformed bytes",
			input: "a\n\rb\r",
			opts:  Options{},
			want:  "a\n\rb\r",
		},
		{
			name:  "missing final terminator appended on conversion",
			input: "a\nb",
			opts:  Options{EOL: EOLUnix},
			want:  "a\nb\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, _ := Apply([]byte(tt.input), tt.opts)
			assert.Equal(t, tt.want, string(out))
		})
	}
}

func TestApplyIndentAndTerminatorOrthogonal(t *testing.T) {
	input := "\t  Sub 1\n\r \t  LFCR.m\n\r \t\n\r\t \n\r\tH\ti\n\r H\ti\n\rH\ti\n\rH i\n\r\n\r"

	// Indent-only conversion keeps the malformed terminators verbatim.
	out, sum := Apply([]byte(input), Options{Indent: IndentTabs})
	assert.Equal(t, "\t  Sub 1\n\r\t  LFCR.m\n\r\t\n\r\t \n\r\tH\ti\n\r H\ti\n\rH\ti\n\rH i\n\r\n\r", string(out))
	assert.Equal(t, "9 1 1 3 4 0 0 9", sum.Counts())

	// Both axes at once.
	out, _ = Apply([]byte(input), Options{Indent: IndentSpaces, EOL: EOLDos})
	assert.Equal(t, "      Sub 1\r\n      LFCR.m\r\n    \r\n     \r\n    H\ti\r\n H\ti\r\nH\ti\r\nH i\r\n\r\n", string(out))
}

func TestApplyIdempotent(t *testing.T) {
	inputs := []string{
		"\t  Sub 1\r\n \t  CRLF.m\r\n \t\r\n\t \r\n\tH\ti\r\n H\ti\r\nH\ti\r\nH i\r\n\r\n",
		"0\n 1\n  2\n   3\n    4\n     5\n      6\n       7\n        8\n         9\n",
	}
	opts := []Options{
		{Indent: IndentSpaces, Width: 4},
		{Indent: IndentTabs, Width: 2},
		{Indent: IndentTabs, Width: 8, EOL: EOLDos},
		{EOL: EOLUnix},
	}

	for _, input := range inputs {
		for _, o := range opts {
			once, _ := Apply([]byte(input), o)
			twice, _ := Apply(once, o)
			require.Equal(t, string(once), string(twice),
				"conversion %+v must be idempotent", o)
		}
	}
}

func TestRoundTripAtExactMultiples(t *testing.T) {
	// Space runs at exact multiples of the width survive the tab round trip.
	for _, width := range []int{2, 4, 8} {
		input := strings.Repeat(" ", width*3) + "x\n"
		tabs, _ := Apply([]byte(input), Options{Indent: IndentTabs, Width: width})
		back, _ := Apply(tabs, Options{Indent: IndentSpaces, Width: width})
		assert.Equal(t, input, string(back), "width %d", width)
	}

	// A partial remainder is preserved as spaces and so survives too, but
	// the intermediate form is not a pure tab run.
	tabs, _ := Apply([]byte("     x\n"), Options{Indent: IndentTabs, Width: 4})
	assert.Equal(t, "\t x\n", string(tabs))
}

func TestOptionsActive(t *testing.T) {
	assert.False(t, Options{}.Active())
	assert.True(t, Options{Indent: IndentTabs}.Active())
	assert.True(t, Options{EOL: EOLDos}.Active())
	assert.Equal(t, DefaultTabWidth, Options{}.TabWidth())
	assert.Equal(t, 8, Options{Width: 8}.TabWidth())
}
