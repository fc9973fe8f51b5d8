// Package scan splits a text buffer into lines and classifies each line's
// leading whitespace and terminator. Classification is total: every byte
// sequence maps to exactly one kind per axis.
package scan

// TerminatorKind classifies the byte sequence that ends a line.
type TerminatorKind int

const (
	// Dos is a carriage return followed by a line feed.
	Dos TerminatorKind = iota
	// Unix is a lone line feed.
	Unix
	// Malformed is any other sequence, including reversed order, a lone
	// carriage return, and a missing terminator on the final line.
	Malformed
)

func (k TerminatorKind) String() string {
	switch k {
	case Dos:
		return "dos"
	case Unix:
		return "unix"
	default:
		return "malformed"
	}
}

// LeadingKind classifies the leading whitespace run of a line.
type LeadingKind int

const (
	// Neither means the line has no leading whitespace.
	Neither LeadingKind = iota
	// SpaceOnly means the run is non-empty and contains only spaces.
	SpaceOnly
	// TabOnly means the run is non-empty and contains only tabs.
	TabOnly
	// Both means the run mixes at least one space and one tab, in any order.
	Both
)

func (k LeadingKind) String() string {
	switch k {
	case SpaceOnly:
		return "space"
	case TabOnly:
		return "tab"
	case Both:
		return "both"
	default:
		return "neither"
	}
}

// Line is one scanned line. Content excludes the terminator; Terminator
// holds the raw terminator bytes and is empty for an unterminated final line.
// Both slices alias the scanned buffer and must not be mutated.
type Line struct {
	Content    []byte
	Terminator []byte
}

// TerminatorKind classifies the line's raw terminator bytes.
func (l Line) TerminatorKind() TerminatorKind {
	t := l.Terminator
	switch {
	case len(t) == 2 && t[0] == '\r' && t[1] == '\n':
		return Dos
	case len(t) == 1 && t[0] == '\n':
		return Unix
	default:
		return Malformed
	}
}

// LeadingRun returns the maximal prefix of the content consisting only of
// spaces and tabs.
func (l Line) LeadingRun() []byte {
	i := 0
	for i < len(l.Content) && (l.Content[i] == ' ' || l.Content[i] == '\t') {
		i++
	}
	return l.Content[:i]
}

// LeadingKind classifies the line's leading whitespace run.
func (l Line) LeadingKind() LeadingKind {
	var hasSpace, hasTab bool
	for _, b := range l.LeadingRun() {
		if b == ' ' {
			hasSpace = true
		} else {
			hasTab = true
		}
	}
	switch {
	case hasSpace && hasTab:
		return Both
	case hasSpace:
		return SpaceOnly
	case hasTab:
		return TabOnly
	default:
		return Neither
	}
}

// Split scans a buffer into lines. Terminators are consumed greedily, left
// to right: "\r\n" is one DOS terminator, "\n\r" is one malformed
// terminator, a lone "\n" is Unix and a lone "\r" is malformed. Trailing
// content without a terminator forms a final line with an empty terminator.
// An empty buffer yields no lines.
func Split(src []byte) []Line {
	var lines []Line
	start := 0
	for i := 0; i < len(src); i++ {
		b := src[i]
		if b != '\r' && b != '\n' {
			continue
		}
		end := i + 1
		if i+1 < len(src) {
			next := src[i+1]
			if (b == '\r' && next == '\n') || (b == '\n' && next == '\r') {
				end = i + 2
			}
		}
		lines = append(lines, Line{
			Content:    src[start:i],
			Terminator: src[i:end],
		})
		start = end
		i = end - 1
	}
	if start < len(src) {
		lines = append(lines, Line{
			Content:    src[start:],
			Terminator: src[len(src):],
		})
	}
	return lines
}
