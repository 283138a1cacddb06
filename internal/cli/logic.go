package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/mattn/go-isatty"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/idelchi/dirsum/internal/config"
	"github.com/idelchi/dirsum/internal/dirstat"
	"github.com/idelchi/dirsum/internal/logging"
)

func logic(cmd *cobra.Command, fsys afero.Fs, path string, opts options) error {
	stdout := cmd.OutOrStdout()
	stderr := cmd.ErrOrStderr()

	log := logging.New(stderr, opts.debug)

	cfg, err := config.New(fsys, opts.config(path))
	if err != nil {
		return err
	}

	log.WithField("root", cfg.Root()).
		WithField("recursive", cfg.Recursive()).
		WithField("depth", cfg.Depth().String()).
		WithField("ignore", len(cfg.IgnoreExtensions())).
		WithField("only", len(cfg.OnlyExtensions())).
		Debug("starting walk")

	hooks := dirstat.Hooks{
		Logger: log,
		Event: func(event dirstat.Event) {
			if err := PrintEntry(event, cfg.HumanUnit(), stdout); err != nil {
				log.WithField("entry", event.Name).WithError(err).Debug("could not print entry")
			}
		},
	}

	// Progress would interleave with entry lines, so only show it when they are off.
	file, isFile := stderr.(*os.File)
	enableProgress := opts.output == OutputText &&
		opts.quiet &&
		!opts.debug &&
		isFile && isatty.IsTerminal(file.Fd())

	if enableProgress {
		// Hide cursor for in-place updates; restore on exit.
		fmt.Fprint(stderr, "\033[?25l")
		defer fmt.Fprint(stderr, "\033[?25h")

		hooks.Progress = func(files, bytes int64) {
			msg := fmt.Sprintf("Scanning… %d files, %s",
				files, humanize.IBytes(uint64(bytes))) //nolint:gosec // Bytes is always positive
			fmt.Fprintf(stderr, "\r\033[2K%s\r", msg)
		}
	}

	start := time.Now()
	result := dirstat.Traverse(fsys, cfg, hooks)

	// Clear the status line
	if enableProgress {
		fmt.Fprint(stderr, "\r\033[2K\r")
	}

	report := Report{
		Root:      cfg.Root(),
		Recursive: cfg.Recursive(),
		Depth:     cfg.Depth().String(),
		Result:    result,
		Elapsed:   time.Since(start).String(),
	}

	log.WithField("elapsed", report.Elapsed).Debug("walk finished")

	switch opts.output {
	case OutputJSON:
		return PrintJSON(report, stdout)
	case OutputYAML:
		return PrintYAML(report, stdout)
	default:
		return PrintText(report, cfg.HumanUnit(), stdout)
	}
}
