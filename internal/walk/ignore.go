package walk

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/go-git/go-git/v5/plumbing/format/gitignore"

	"github.com/PhilLockett/tfc/internal/scan"
)

// IgnoreReadError is returned when .gitignore cannot be read.
type IgnoreReadError struct {
	Path  string
	Cause error
}

func (e *IgnoreReadError) Error() string {
	return fmt.Sprintf("failed to read .gitignore at %s: %v", e.Path, e.Cause)
}
func (e *IgnoreReadError) Unwrap() error { return e.Cause }

// IgnoreMatcher decides whether a path relative to the walk root should be
// skipped. isDir distinguishes directories so patterns like "vendor/" work.
type IgnoreMatcher interface {
	ShouldIgnore(relativePath string, isDir bool) bool
}

// IgnoreService matches paths against the root .gitignore using go-git's
// gitignore matcher.
type IgnoreService struct {
	matcher gitignore.Matcher
}

// NewIgnoreService loads .gitignore from root. A missing .gitignore yields a
// service that never ignores; a present but unreadable one is an error.
func NewIgnoreService(root string, fs FileSystem) (*IgnoreService, error) {
	path := filepath.Join(root, ".gitignore")

	if _, err := fs.Stat(path); err != nil {
		return &IgnoreService{matcher: nil}, nil
	}

	content, err := fs.ReadFile(path)
	if err != nil {
		return nil, &IgnoreReadError{Path: path, Cause: err}
	}

	// The dotfile itself may carry DOS terminators, so split it with the
	// same scanner used for conversion input.
	var patterns []gitignore.Pattern
	for _, line := range scan.Split(content) {
		text := string(line.Content)
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		if pattern := gitignore.ParsePattern(text, nil); pattern != nil {
			patterns = append(patterns, pattern)
		}
	}

	return &IgnoreService{matcher: gitignore.NewMatcher(patterns)}, nil
}

// ShouldIgnore checks a relative path against the loaded patterns.
// Returns false if no .gitignore was loaded.
func (g *IgnoreService) ShouldIgnore(relativePath string, isDir bool) bool {
	if g.matcher == nil {
		return false
	}
	return g.matcher.Match(splitPath(relativePath), isDir)
}

// splitPath splits a path into segments for gitignore matching, normalizing
// separators and dropping empty and "." segments.
func splitPath(path string) []string {
	if path == "" {
		return []string{}
	}

	var segments []string
	for _, part := range strings.Split(filepath.ToSlash(path), "/") {
		if part != "" && part != "." {
			segments = append(segments, part)
		}
	}
	return segments
}

// NoOpIgnore never ignores any path.
type NoOpIgnore struct{}

func (NoOpIgnore) ShouldIgnore(relativePath string, isDir bool) bool { return false }
