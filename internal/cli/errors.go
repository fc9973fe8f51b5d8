package cli

import (
	"errors"
)

// -- Sentinels --

var (
	ErrIndentConflict         = errors.New("--space and --tab are mutually exclusive")
	ErrEOLConflict            = errors.New("--dos and --unix are mutually exclusive")
	ErrWidthConflict          = errors.New("only one of -2, -4 and -8 may be given")
	ErrWidthWithoutIndent     = errors.New("a tab width requires --space or --tab")
	ErrSummaryWithConversion  = errors.New("--summary cannot be combined with conversion flags")
	ErrSummaryWithReplace     = errors.New("--summary cannot be combined with --replace")
	ErrReplaceWithPaths       = errors.New("--replace cannot be combined with --input or --output")
	ErrReplaceNeedsConversion = errors.New("--replace requires at least one conversion flag")
	ErrRecursiveNeedsReplace  = errors.New("--recursive requires --replace")
	ErrBrowseConflict         = errors.New("--browse cannot be combined with conversion or summary flags")
	ErrInputRequired          = errors.New("an input file is required")
	ErrOutputRequired         = errors.New("an output file is required")
	ErrSamePath               = errors.New("input and output are the same file")
	ErrNothingToDo            = errors.New("no conversion or summary requested")
)
