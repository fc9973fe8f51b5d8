// Package report formats conversion summaries, both as the plain two line
// artifact written to files and as the styled block shown on a terminal.
package report

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/PhilLockett/tfc/internal/scan"
)

var (
	headingStyle = lipgloss.NewStyle().Bold(true)
	labelStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	countStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	dimStyle     = lipgloss.NewStyle().Faint(true)
)

// Artifact returns the machine readable summary: the input path on the first
// line and the eight counts on the second, both newline terminated.
func Artifact(path string, s scan.Summary) []byte {
	return []byte(fmt.Sprintf("%s\n%s\n", path, s.Counts()))
}

// Render returns the human readable summary block for path.
func Render(path string, s scan.Summary) string {
	var b strings.Builder

	b.WriteString(headingStyle.Render(path) + "\n")
	b.WriteString(fmt.Sprintf("%s %s\n",
		labelStyle.Render("Total Lines:"),
		countStyle.Render(fmt.Sprintf("%d", s.Lines))))

	b.WriteString(labelStyle.Render("Line beginning:") + "\n")
	b.WriteString(countRow("space only", s.SpaceOnly))
	b.WriteString(countRow("tab only", s.TabOnly))
	b.WriteString(countRow("neither", s.Neither))
	b.WriteString(countRow("both", s.Both))

	b.WriteString(labelStyle.Render("Line ending:") + "\n")
	b.WriteString(countRow("dos", s.Dos))
	b.WriteString(countRow("unix", s.Unix))
	b.WriteString(countRow("malformed", s.Malformed))

	return b.String()
}

func countRow(label string, n int) string {
	return fmt.Sprintf("  %s %s\n",
		dimStyle.Render(label+":"),
		countStyle.Render(fmt.Sprintf("%d", n)))
}
