package cli

import (
	"context"
	"fmt"
	"slices"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/charmbracelet/fang"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/idelchi/dirsum/internal/config"
)

// Output formats accepted by --output.
const (
	OutputText = "text"
	OutputJSON = "json"
	OutputYAML = "yaml"
)

//nolint:gochecknoglobals // Config constant
var allowedOutputs = []string{OutputText, OutputJSON, OutputYAML}

// CLI represents the command-line interface.
type CLI struct {
	version string
	fs      afero.Fs
}

// New creates a new CLI instance with the given version.
// The filesystem is opened read-only.
func New(version string) CLI {
	return CLI{
		version: version,
		fs:      afero.NewReadOnlyFs(afero.NewOsFs()),
	}
}

// options holds the parsed flags.
type options struct {
	recursive bool
	depth     uint
	limited   bool
	quiet     bool
	ignore    []string
	only      []string
	humanUnit bool
	output    string
	debug     bool
}

// config converts the flags into traversal options for path.
// Structured output formats never print per-entry lines.
func (o options) config(path string) config.Options {
	depth := config.Unlimited()
	if o.limited {
		depth = config.Limit(o.depth)
	}

	return config.Options{
		Path:             path,
		Recursive:        o.recursive,
		Depth:            depth,
		Quiet:            o.quiet || o.output != OutputText,
		IgnoreExtensions: o.ignore,
		OnlyExtensions:   o.only,
		HumanUnit:        o.humanUnit,
	}
}

// Command builds the root command.
func (c CLI) Command() *cobra.Command {
	var opts options

	cmd := &cobra.Command{
		Use:   "dirsum [flags] <path>",
		Short: "Count files and directories and sum up their sizes",
		Long: heredoc.Doc(`
			dirsum walks a directory and reports how many files and directories it holds,
			their total size and the biggest file found.

			Every counted entry is printed as it is found, indented by depth, unless
			--quiet is given. Entries that cannot be read are reported and skipped.

			Only the top level is counted unless --recursive is set. --depth limits how
			far the walk descends; the path itself is depth 0.

			--only-extension takes precedence over --ignore-extension: when set, the
			ignore list has no effect.
		`),
		Example: heredoc.Doc(`
			dirsum -r ~/projects
			dirsum -r -d 2 -q --human-unit /var/log
			dirsum -r -o go -o mod .
			dirsum -r -i log,tmp --output json .
		`),
		Version:      c.version,
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !slices.Contains(allowedOutputs, opts.output) {
				return fmt.Errorf("invalid output format %q: must be one of %v", opts.output, allowedOutputs)
			}

			opts.limited = cmd.Flags().Changed("depth")

			return logic(cmd, c.fs, args[0], opts)
		},
	}

	flags := cmd.Flags()
	flags.SortFlags = false

	flags.BoolVarP(&opts.recursive, "recursive", "r", false, "Include every directory within the path")
	flags.UintVarP(&opts.depth, "depth", "d", 0, "Maximum traversal depth (unlimited if not set)")
	flags.BoolVarP(&opts.quiet, "quiet", "q", false, "Print only the summary")
	flags.StringSliceVarP(&opts.ignore, "ignore-extension", "i", nil, "File extensions to ignore (e.g. log,tmp)")
	flags.StringSliceVarP(
		&opts.only,
		"only-extension",
		"o",
		nil,
		"Only count files with these extensions, overriding --ignore-extension",
	)
	flags.BoolVar(&opts.humanUnit, "human-unit", false, "Print sizes in human-readable units")
	flags.StringVar(&opts.output, "output", OutputText, "Output format: text, json or yaml")
	flags.BoolVar(&opts.debug, "debug", false, "Enable debug output")

	return cmd
}

// Execute runs the CLI with the process arguments.
func (c CLI) Execute(ctx context.Context) error {
	return fang.Execute(
		ctx,
		c.Command(),
		fang.WithVersion(c.version),
		fang.WithoutCompletions(),
		fang.WithoutManpage(),
	)
}
