// Package cli wires the command line surface: flag parsing, validation and
// dispatch to the conversion runner, the tree walker or the browser.
package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/PhilLockett/tfc/internal/config"
	"github.com/PhilLockett/tfc/internal/convert"
	"github.com/PhilLockett/tfc/internal/fsutil"
	"github.com/PhilLockett/tfc/internal/job"
	"github.com/PhilLockett/tfc/internal/report"
	"github.com/PhilLockett/tfc/internal/walk"
)

// Version is the release version reported by --version.
const Version = "1.0.0"

// Runner converts or summarizes a single file.
type Runner interface {
	Run(j job.Job) (*job.Result, error)
}

// Dependencies holds the components the command dispatches to.
type Dependencies struct {
	Config *config.Config
	FS     *fsutil.OSFileSystem
	Runner Runner
	// Browse starts the interactive browser rooted at a directory. Injected
	// so tests can run the command without a terminal.
	Browse func(root string, cfg *config.Config) error
}

// options mirrors the command line flags before resolution.
type options struct {
	input   string
	output  string
	replace string
	profile string

	space   bool
	tab     bool
	dos     bool
	unix    bool
	summary bool

	width2 bool
	width4 bool
	width8 bool

	recursive bool
	browse    bool
}

// NewRootCommand builds the tfc command.
func NewRootCommand(deps Dependencies) *cobra.Command {
	o := &options{}

	cmd := &cobra.Command{
		Use:     "tfc",
		Short:   "Normalize leading whitespace and line endings of text files",
		Long: `tfc converts the leading whitespace of text files between spaces and
tabs, converts line endings between DOS (CR LF) and Unix (LF), and
reports per-file summaries of what it finds.`,
		Version:       Version,
		Args:          cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, deps, o, args)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	f := cmd.Flags()
	f.StringVarP(&o.input, "input", "i", "", "input file to read")
	f.StringVarP(&o.output, "output", "o", "", "output file to write")
	f.StringVarP(&o.replace, "replace", "r", "", "file (or directory with --recursive) to convert in place")
	f.BoolVarP(&o.space, "space", "s", false, "convert leading whitespace to spaces")
	f.BoolVarP(&o.tab, "tab", "t", false, "convert leading whitespace to tabs")
	f.BoolVarP(&o.dos, "dos", "d", false, "convert line endings to DOS (CR LF)")
	f.BoolVarP(&o.unix, "unix", "u", false, "convert line endings to Unix (LF)")
	f.BoolVarP(&o.summary, "summary", "x", false, "report a summary instead of converting")
	f.BoolVarP(&o.width2, "2", "2", false, "tab stops every 2 columns")
	f.BoolVarP(&o.width4, "4", "4", false, "tab stops every 4 columns")
	f.BoolVarP(&o.width8, "8", "8", false, "tab stops every 8 columns")
	f.StringVar(&o.profile, "profile", "", "apply a named profile from the config file")
	f.BoolVarP(&o.recursive, "recursive", "R", false, "recurse into the directory given with --replace")
	f.BoolVarP(&o.browse, "browse", "b", false, "browse file summaries interactively (optional DIR argument)")

	// Register the shorthand so cobra's generated version flag answers to -v.
	f.BoolP("version", "v", false, "version for tfc")

	return cmd
}

func run(cmd *cobra.Command, deps Dependencies, o *options, args []string) error {
	if o.browse {
		return runBrowse(deps, o, args)
	}
	// The only positional argument is the optional browse directory.
	if len(args) > 0 {
		return fmt.Errorf("unexpected argument %q", args[0])
	}

	opts, err := resolveOptions(deps.Config, o)
	if err != nil {
		return err
	}
	if err := validate(o, opts); err != nil {
		return err
	}

	switch {
	case o.summary:
		return runSummary(cmd.OutOrStdout(), deps, o)
	case o.recursive:
		return runRecursive(cmd.OutOrStdout(), deps, o, opts)
	case o.replace != "":
		_, err := deps.Runner.Run(job.Job{
			InputPath:  o.replace,
			OutputPath: o.replace,
			Options:    opts,
		})
		return err
	default:
		_, err := deps.Runner.Run(job.Job{
			InputPath:  o.input,
			OutputPath: o.output,
			Options:    opts,
		})
		return err
	}
}

// resolveOptions merges flags over the selected profile over config defaults.
// Flags can only add to a profile, never switch parts of it off.
func resolveOptions(cfg *config.Config, o *options) (convert.Options, error) {
	space, tab, dos, unix := o.space, o.tab, o.dos, o.unix
	width, err := widthFlag(o)
	if err != nil {
		return convert.Options{}, err
	}

	if o.profile != "" {
		p, err := cfg.ResolveProfile(o.profile)
		if err != nil {
			return convert.Options{}, err
		}
		space = space || p.Space
		tab = tab || p.Tab
		dos = dos || p.Dos
		unix = unix || p.Unix
		if width == 0 {
			width = p.Width
		}
	}

	opts := convert.Options{Width: width}
	switch {
	case space && tab:
		return convert.Options{}, ErrIndentConflict
	case space:
		opts.Indent = convert.IndentSpaces
	case tab:
		opts.Indent = convert.IndentTabs
	}
	switch {
	case dos && unix:
		return convert.Options{}, ErrEOLConflict
	case dos:
		opts.EOL = convert.EOLDos
	case unix:
		opts.EOL = convert.EOLUnix
	}

	if opts.Indent != convert.IndentKeep && opts.Width == 0 {
		opts.Width = cfg.TabWidth
	}

	return opts, nil
}

func widthFlag(o *options) (int, error) {
	width, n := 0, 0
	if o.width2 {
		width, n = 2, n+1
	}
	if o.width4 {
		width, n = 4, n+1
	}
	if o.width8 {
		width, n = 8, n+1
	}
	if n > 1 {
		return 0, ErrWidthConflict
	}
	return width, nil
}

func validate(o *options, opts convert.Options) error {
	if opts.Width != 0 && opts.Indent == convert.IndentKeep {
		return ErrWidthWithoutIndent
	}

	if o.summary {
		if opts.Active() {
			return ErrSummaryWithConversion
		}
		if o.replace != "" {
			return ErrSummaryWithReplace
		}
		if o.input == "" {
			return ErrInputRequired
		}
		if o.output != "" && o.input == o.output {
			return ErrSamePath
		}
		return nil
	}

	if o.replace != "" {
		if o.input != "" || o.output != "" {
			return ErrReplaceWithPaths
		}
		if !opts.Active() {
			return ErrReplaceNeedsConversion
		}
		return nil
	}

	if o.recursive {
		return ErrRecursiveNeedsReplace
	}
	if o.input == "" {
		return ErrInputRequired
	}
	if !opts.Active() {
		return ErrNothingToDo
	}
	if o.output == "" {
		return ErrOutputRequired
	}
	if o.input == o.output {
		return ErrSamePath
	}
	return nil
}

func runSummary(out io.Writer, deps Dependencies, o *options) error {
	result, err := deps.Runner.Run(job.Job{
		InputPath:   o.input,
		OutputPath:  o.output,
		SummaryOnly: true,
	})
	if err != nil {
		return err
	}

	if o.output == "" {
		fmt.Fprint(out, string(result.Artifact))
		fmt.Fprint(out, report.Render(o.input, result.Summary))
	}
	return nil
}

func runRecursive(out io.Writer, deps Dependencies, o *options, opts convert.Options) error {
	ignore, err := walk.NewIgnoreService(o.replace, deps.FS)
	if err != nil {
		return err
	}

	detector := fsutil.NewBinaryDetector(deps.Config.BinarySampleSize)
	walker := walk.NewWalker(deps.FS, deps.Runner, detector, ignore, deps.Config.MaxFileSize)

	rep, err := walker.Run(o.replace, opts)
	if err != nil {
		return err
	}

	for _, f := range rep.Files {
		if f.Err != nil {
			fmt.Fprintf(out, "%s: %s (%v)\n", f.Outcome, f.Path, f.Err)
		} else {
			fmt.Fprintf(out, "%s: %s\n", f.Outcome, f.Path)
		}
	}
	fmt.Fprintf(out, "%d converted, %d unchanged, %d skipped, %d failed\n",
		rep.Count(walk.OutcomeConverted),
		rep.Count(walk.OutcomeUnchanged),
		rep.Count(walk.OutcomeSkippedIgnored)+rep.Count(walk.OutcomeSkippedBinary)+rep.Count(walk.OutcomeSkippedLarge),
		rep.Count(walk.OutcomeFailed))

	if rep.Failed() {
		return fmt.Errorf("%d files failed to convert", rep.Count(walk.OutcomeFailed))
	}
	return nil
}

func runBrowse(deps Dependencies, o *options, args []string) error {
	if o.summary || o.space || o.tab || o.dos || o.unix || o.input != "" || o.output != "" {
		return ErrBrowseConflict
	}

	root := "."
	switch {
	case len(args) > 0:
		root = args[0]
	case o.replace != "":
		root = o.replace
	}
	return deps.Browse(root, deps.Config)
}
