package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"optimize-img/internal/codec"
	"optimize-img/internal/optimizer"
	"optimize-img/internal/ui"
)

// errReported marks failures whose messages were already printed in the
// exact form the CLI contract pins down; Execute only sets the exit code
// for these.
var errReported = errors.New("already reported")

var rootCmd = &cobra.Command{
	Use:   "optimize-img [options] [image_files...]",
	Short: "Batch-optimize PNG, JPEG, and WebP images",
	// The contract pins an exact left-to-right argument scan, exact
	// unknown-option messages, and a help short-circuit that must run
	// before the dependency check, so flags are scanned by hand.
	DisableFlagParsing: true,
	SilenceUsage:       true,
	SilenceErrors:      true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return run(cmd, args)
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		if !errors.Is(err, errReported) {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	stdout := cmd.OutOrStdout()
	stderr := cmd.ErrOrStderr()

	// -h/--help as the first argument bypasses everything, including the
	// dependency check.
	if len(args) > 0 && (args[0] == "-h" || args[0] == "--help") {
		printUsage(stdout)
		return nil
	}

	toolchain, missing := codec.Locate()
	if len(missing) > 0 {
		pkgs := make([]string, 0, len(missing))
		for _, m := range missing {
			fmt.Fprintf(stderr, "Error: %s is not installed (required for %s).\n", m.Tool, m.Purpose)
			pkgs = append(pkgs, m.Package)
		}
		fmt.Fprintf(stderr, "Error: Missing dependencies. Please install the following with Homebrew: brew install %s\n",
			strings.Join(pkgs, " "))
		return errReported
	}

	cfg, err := parseArgs(args)
	if err != nil {
		var unknown *unknownOptionError
		if errors.As(err, &unknown) {
			fmt.Fprintf(stderr, "Unknown option: %s\n", unknown.opt)
			fmt.Fprintln(stderr, "Use -h or --help for usage information.")
			return errReported
		}
		return err
	}
	if cfg.ShowHelp {
		printUsage(stdout)
		return nil
	}

	tasks, fromListing, err := optimizer.Resolve(cfg.Files)
	if err != nil {
		return err
	}
	if fromListing && len(tasks) == 0 {
		fmt.Fprintln(stdout, "No image files found in current directory.")
		return nil
	}

	proc := optimizer.New(
		optimizer.Codecs{Png: toolchain, Jpeg: toolchain, Webp: toolchain},
		optimizer.Options{NoBackup: cfg.NoBackup, ConvertWebp: cfg.ConvertWebp},
		stdout,
	)
	summary := proc.Process(cmd.Context(), tasks)

	fmt.Fprintln(stdout, ui.RenderSummary(summaryRows(summary)))
	fmt.Fprintln(stdout, "Done!")

	if summary.Errors > 0 {
		return errReported
	}
	return nil
}

func summaryRows(s optimizer.Summary) []ui.SummaryRow {
	rows := []ui.SummaryRow{
		{Label: "Files processed", Value: fmt.Sprintf("%d", s.Processed)},
		{Label: "Optimized", Value: fmt.Sprintf("%d", s.Optimized)},
		{Label: "Converted to WebP", Value: fmt.Sprintf("%d", s.Converted)},
		{Label: "Backups created", Value: fmt.Sprintf("%d", s.Backups)},
		{Label: "Metadata tags stripped", Value: fmt.Sprintf("%d", s.TagsStripped)},
		{Label: "Space saved", Value: humanBytes(s.BytesSaved), Highlight: true},
	}
	if s.Errors > 0 {
		rows = append(rows, ui.SummaryRow{Label: "Errors", Value: fmt.Sprintf("%d", s.Errors)})
	}
	return rows
}

func humanBytes(n int64) string {
	if n < 0 {
		n = 0
	}
	return humanize.Bytes(uint64(n))
}
