// Package job runs a single conversion: read one text file, apply the
// requested indent and terminator conversions, and write the result or a
// summary artifact.
package job

import (
	"fmt"
	"os"

	"github.com/PhilLockett/tfc/internal/convert"
	"github.com/PhilLockett/tfc/internal/fsutil"
	"github.com/PhilLockett/tfc/internal/report"
	"github.com/PhilLockett/tfc/internal/scan"
)

// FileSystem is the filesystem surface the runner needs.
type FileSystem interface {
	Stat(path string) (os.FileInfo, error)
	ReadFile(path string) ([]byte, error)
	WriteFileAtomic(path string, content []byte, perm os.FileMode) error
}

// Job describes one unit of work.
type Job struct {
	InputPath  string
	OutputPath string // equals InputPath for in-place replacement
	// SummaryOnly produces the two line summary artifact instead of a
	// converted file. OutputPath may be empty, in which case the artifact
	// is returned in the Result for the caller to print.
	SummaryOnly bool
	Options     convert.Options
}

// Result reports what a run did.
type Result struct {
	Summary scan.Summary
	// Artifact holds the summary artifact bytes when SummaryOnly is set.
	Artifact []byte
	// Changed is true when the converted content differs from the input.
	Changed      bool
	BytesWritten int
}

// Runner executes jobs against an injected filesystem.
type Runner struct {
	fs          FileSystem
	maxFileSize int64
}

// NewRunner creates a Runner. maxFileSize bounds the input files accepted.
func NewRunner(fs FileSystem, maxFileSize int64) *Runner {
	return &Runner{fs: fs, maxFileSize: maxFileSize}
}

// Run executes a single job.
func (r *Runner) Run(j Job) (*Result, error) {
	if j.InputPath == "" {
		return nil, ErrInputRequired
	}

	info, err := r.fs.Stat(j.InputPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrInputMissing, j.InputPath)
		}
		return nil, &ReadError{Path: j.InputPath, Err: err}
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrIsDirectory, j.InputPath)
	}
	if info.Size() > r.maxFileSize {
		return nil, fmt.Errorf("%w: %s (%d bytes)", ErrFileTooLarge, j.InputPath, info.Size())
	}

	src, err := r.fs.ReadFile(j.InputPath)
	if err != nil {
		return nil, &ReadError{Path: j.InputPath, Err: err}
	}

	if j.SummaryOnly {
		return r.runSummary(j, src)
	}

	out, summary := convert.Apply(src, j.Options)
	result := &Result{
		Summary: summary,
		Changed: fsutil.Digest(out) != fsutil.Digest(src),
	}

	// In-place replacement of identical content is a no-op.
	if !result.Changed && j.OutputPath == j.InputPath {
		return result, nil
	}

	if err := r.fs.WriteFileAtomic(j.OutputPath, out, info.Mode().Perm()); err != nil {
		return nil, &WriteError{Path: j.OutputPath, Err: err}
	}
	result.BytesWritten = len(out)

	return result, nil
}

func (r *Runner) runSummary(j Job, src []byte) (*Result, error) {
	summary := scan.Summarize(src)
	artifact := report.Artifact(j.InputPath, summary)

	result := &Result{Summary: summary, Artifact: artifact}

	if j.OutputPath != "" {
		if err := r.fs.WriteFileAtomic(j.OutputPath, artifact, 0o644); err != nil {
			return nil, &WriteError{Path: j.OutputPath, Err: err}
		}
		result.BytesWritten = len(artifact)
	}

	return result, nil
}
