// Package walk applies a conversion to every text file under a directory
// tree, honouring .gitignore and skipping binary and oversized files.
package walk

import (
	"io/fs"
	"os"
	"path/filepath"

	"github.com/PhilLockett/tfc/internal/convert"
	"github.com/PhilLockett/tfc/internal/job"
)

// Outcome classifies what happened to one file during a walk.
type Outcome int

const (
	OutcomeConverted Outcome = iota
	OutcomeUnchanged
	OutcomeSkippedIgnored
	OutcomeSkippedBinary
	OutcomeSkippedLarge
	OutcomeFailed
)

func (o Outcome) String() string {
	switch o {
	case OutcomeConverted:
		return "converted"
	case OutcomeUnchanged:
		return "unchanged"
	case OutcomeSkippedIgnored:
		return "ignored"
	case OutcomeSkippedBinary:
		return "binary"
	case OutcomeSkippedLarge:
		return "too large"
	case OutcomeFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// FileResult records the outcome for one file, with the path relative to the
// walk root.
type FileResult struct {
	Path    string
	Outcome Outcome
	Err     error
}

// Report aggregates a whole walk.
type Report struct {
	Files []FileResult
}

// Count returns how many files ended with the given outcome.
func (r *Report) Count(o Outcome) int {
	n := 0
	for _, f := range r.Files {
		if f.Outcome == o {
			n++
		}
	}
	return n
}

// Failed reports whether any file failed.
func (r *Report) Failed() bool { return r.Count(OutcomeFailed) > 0 }

// FileSystem is the filesystem surface the walker needs.
type FileSystem interface {
	Stat(path string) (os.FileInfo, error)
	ReadFile(path string) ([]byte, error)
}

// BinaryDetector decides whether file content is binary.
type BinaryDetector interface {
	IsBinaryContent(content []byte) bool
}

// Runner converts a single file.
type Runner interface {
	Run(j job.Job) (*job.Result, error)
}

// Walker converts every eligible file under a root in place.
type Walker struct {
	fs          FileSystem
	runner      Runner
	detector    BinaryDetector
	ignore      IgnoreMatcher
	maxFileSize int64
}

// NewWalker creates a Walker. The ignore matcher may be NoOpIgnore to
// disable .gitignore handling.
func NewWalker(fs FileSystem, runner Runner, detector BinaryDetector, ignore IgnoreMatcher, maxFileSize int64) *Walker {
	return &Walker{
		fs:          fs,
		runner:      runner,
		detector:    detector,
		ignore:      ignore,
		maxFileSize: maxFileSize,
	}
}

// Run walks root and applies opts to every eligible file in place. Per file
// failures are recorded in the report rather than aborting the walk; only a
// failure to traverse the tree itself is returned as an error.
func (w *Walker) Run(root string, opts convert.Options) (*Report, error) {
	report := &Report{}

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		rel, relErr := filepath.Rel(root, path)
		if relErr != nil {
			rel = path
		}

		if d.IsDir() {
			if d.Name() == ".git" {
				return filepath.SkipDir
			}
			if rel != "." && w.ignore.ShouldIgnore(rel, true) {
				return filepath.SkipDir
			}
			return nil
		}
		if !d.Type().IsRegular() {
			return nil
		}

		report.Files = append(report.Files, w.convertFile(path, rel, opts))
		return nil
	})
	if err != nil {
		return nil, err
	}

	return report, nil
}

func (w *Walker) convertFile(path, rel string, opts convert.Options) FileResult {
	if w.ignore.ShouldIgnore(rel, false) {
		return FileResult{Path: rel, Outcome: OutcomeSkippedIgnored}
	}

	info, err := w.fs.Stat(path)
	if err != nil {
		return FileResult{Path: rel, Outcome: OutcomeFailed, Err: err}
	}
	if info.Size() > w.maxFileSize {
		return FileResult{Path: rel, Outcome: OutcomeSkippedLarge}
	}

	content, err := w.fs.ReadFile(path)
	if err != nil {
		return FileResult{Path: rel, Outcome: OutcomeFailed, Err: err}
	}
	if w.detector.IsBinaryContent(content) {
		return FileResult{Path: rel, Outcome: OutcomeSkippedBinary}
	}

	result, err := w.runner.Run(job.Job{
		InputPath:  path,
		OutputPath: path,
		Options:    opts,
	})
	if err != nil {
		return FileResult{Path: rel, Outcome: OutcomeFailed, Err: err}
	}
	if !result.Changed {
		return FileResult{Path: rel, Outcome: OutcomeUnchanged}
	}
	return FileResult{Path: rel, Outcome: OutcomeConverted}
}
