// Package ui implements the interactive browser: a file list over a
// directory tree with a per-file summary detail view.
package ui

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/PhilLockett/tfc/internal/config"
	"github.com/PhilLockett/tfc/internal/fsutil"
	"github.com/PhilLockett/tfc/internal/scan"
)

var detailFrameStyle = lipgloss.NewStyle().Padding(1, 2)

// Summarizer produces the line summary for one file.
type Summarizer func(path string) (scan.Summary, error)

// fileItem is one entry in the browser list.
type fileItem struct {
	rel  string
	path string
}

func (i fileItem) Title() string       { return i.rel }
func (i fileItem) Description() string { return i.path }
func (i fileItem) FilterValue() string { return i.rel }

// Model is the Bubble Tea model for the browser.
type Model struct {
	list      list.Model
	renderer  MarkdownRenderer
	summarize Summarizer

	showDetail bool
	detail     string
	width      int
	height     int
}

// newModel creates a browser over the given files.
func newModel(files []fileItem, renderer MarkdownRenderer, summarize Summarizer) Model {
	items := make([]list.Item, len(files))
	for i, f := range files {
		items[i] = f
	}

	l := list.New(items, list.NewDefaultDelegate(), 0, 0)
	l.Title = "tfc browser"

	return Model{
		list:      l,
		renderer:  renderer,
		summarize: summarize,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.list.SetSize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC:
			return m, tea.Quit
		case tea.KeyEsc:
			if m.showDetail {
				m.showDetail = false
				return m, nil
			}
		case tea.KeyEnter:
			if !m.showDetail {
				return m.openDetail(), nil
			}
		}
		if msg.Type == tea.KeyRunes && len(msg.Runes) == 1 && msg.Runes[0] == 'q' && !m.list.SettingFilter() {
			return m, tea.Quit
		}
	}

	if m.showDetail {
		return m, nil
	}
	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

// View implements tea.Model.
func (m Model) View() string {
	if m.showDetail {
		return detailFrameStyle.Render(m.detail)
	}
	return m.list.View()
}

func (m Model) openDetail() Model {
	item, ok := m.list.SelectedItem().(fileItem)
	if !ok {
		return m
	}

	summary, err := m.summarize(item.path)
	if err != nil {
		m.detail = fmt.Sprintf("failed to summarize %s: %v", item.rel, err)
		m.showDetail = true
		return m
	}

	md := summaryMarkdown(item.rel, summary)
	width := m.width
	if width == 0 {
		width = 80
	}

	rendered, err := m.renderer.Render(md, width)
	if err != nil {
		// Fall back to the raw markdown if styling fails.
		rendered = md
	}
	m.detail = rendered
	m.showDetail = true
	return m
}

// summaryMarkdown formats one file summary as markdown for the detail pane.
func summaryMarkdown(name string, s scan.Summary) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n\n", name)
	fmt.Fprintf(&b, "Total lines: **%d**\n\n", s.Lines)
	b.WriteString("| Line beginning | Count |\n|---|---|\n")
	fmt.Fprintf(&b, "| space only | %d |\n", s.SpaceOnly)
	fmt.Fprintf(&b, "| tab only | %d |\n", s.TabOnly)
	fmt.Fprintf(&b, "| neither | %d |\n", s.Neither)
	fmt.Fprintf(&b, "| both | %d |\n\n", s.Both)
	b.WriteString("| Line ending | Count |\n|---|---|\n")
	fmt.Fprintf(&b, "| dos | %d |\n", s.Dos)
	fmt.Fprintf(&b, "| unix | %d |\n", s.Unix)
	fmt.Fprintf(&b, "| malformed | %d |\n", s.Malformed)

	return b.String()
}

// collectFiles lists the text files under root, skipping .git and binary
// content, bounded by maxFileSize.
func collectFiles(root string, osFS *fsutil.OSFileSystem, detector *fsutil.BinaryDetector, maxFileSize int64) ([]fileItem, error) {
	var files []fileItem

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if d.Name() == ".git" {
				return filepath.SkipDir
			}
			return nil
		}
		if !d.Type().IsRegular() {
			return nil
		}

		info, err := d.Info()
		if err != nil || info.Size() > maxFileSize {
			return nil
		}
		content, err := osFS.ReadFile(path)
		if err != nil || detector.IsBinaryContent(content) {
			return nil
		}

		rel, err := filepath.Rel(root, path)
		if err != nil {
			rel = path
		}
		files = append(files, fileItem{rel: filepath.ToSlash(rel), path: path})
		return nil
	})
	if err != nil {
		return nil, err
	}

	return files, nil
}

// Run starts the browser rooted at a directory and blocks until it exits.
func Run(root string, cfg *config.Config) error {
	osFS := fsutil.NewOSFileSystem()
	detector := fsutil.NewBinaryDetector(cfg.BinarySampleSize)

	files, err := collectFiles(root, osFS, detector, cfg.MaxFileSize)
	if err != nil {
		return err
	}

	summarize := func(path string) (scan.Summary, error) {
		content, err := osFS.ReadFile(path)
		if err != nil {
			return scan.Summary{}, err
		}
		return scan.Summarize(content), nil
	}

	model := newModel(files, NewGlamourRenderer(), summarize)
	_, err = tea.NewProgram(model, tea.WithAltScreen()).Run()
	return err
}
