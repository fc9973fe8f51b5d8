package scan

import "fmt"

// Summary aggregates per-line classifications across one full pass of a
// file. Lines always equals the sum of the four leading-kind counts and the
// sum of the three terminator-kind counts.
type Summary struct {
	Lines     int
	SpaceOnly int
	TabOnly   int
	Neither   int
	Both      int
	Dos       int
	Unix      int
	Malformed int
}

// Add records one line's classifications.
func (s *Summary) Add(l Line) {
	s.Lines++
	switch l.LeadingKind() {
	case SpaceOnly:
		s.SpaceOnly++
	case TabOnly:
		s.TabOnly++
	case Both:
		s.Both++
	default:
		s.Neither++
	}
	switch l.TerminatorKind() {
	case Dos:
		s.Dos++
	case Unix:
		s.Unix++
	default:
		s.Malformed++
	}
}

// Summarize classifies every line in src in a single pass.
func Summarize(src []byte) Summary {
	var s Summary
	for _, l := range Split(src) {
		s.Add(l)
	}
	return s
}

// Counts returns the eight space-separated totals in the fixed order
// "total space-only tab-only neither both dos unix malformed".
func (s Summary) Counts() string {
	return fmt.Sprintf("%d %d %d %d %d %d %d %d",
		s.Lines, s.SpaceOnly, s.TabOnly, s.Neither, s.Both,
		s.Dos, s.Unix, s.Malformed)
}
