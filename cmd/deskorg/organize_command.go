package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"deskorg/internal/classify"
	"deskorg/internal/config"
	"deskorg/internal/desktop"
	"deskorg/internal/extract"
	"deskorg/internal/organizer"
	"deskorg/internal/preflight"
	"deskorg/internal/rules"
	"deskorg/internal/textutil"
)

func newOrganizeCommand(ctx *commandContext) *cobra.Command {
	var apply bool
	var root string

	cmd := &cobra.Command{
		Use:   "organize",
		Short: "Classify desktop files and move them into category folders",
		Long: `Classify every file directly inside the desktop directory.

Without --apply nothing is moved; each file is listed with the folder it
would go to. Per-file failures are reported and do not stop the run.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger, err := ctx.ensureLogger()
			if err != nil {
				return err
			}

			target, err := resolveRoot(cfg, root)
			if err != nil {
				return err
			}
			tables, err := rules.FromConfig(cfg)
			if err != nil {
				return fmt.Errorf("build rules: %w", err)
			}

			fs := afero.NewOsFs()
			content := extract.NewFromConfig(fs, cfg.Extraction, logger)
			classifier := classify.New(tables, content, logger)
			run := organizer.New(fs, classifier, organizer.NewMover(fs, logger), logger,
				organizer.WithLocker(organizer.FileLocker),
				organizer.WithChecker(func(fs afero.Fs, root string, apply bool) []preflight.Result {
					return preflight.RunAll(fs, cfg, root, apply)
				}),
			)

			report, err := run.Run(cmd.Context(), organizer.Options{Root: target, Apply: apply})
			if report != nil {
				out := cmd.OutOrStdout()
				printReport(out, report, shouldColorize(out))
			}
			return err
		},
	}

	cmd.Flags().BoolVar(&apply, "apply", false, "Move files (default is a dry run)")
	cmd.Flags().StringVar(&root, "root", "", "Directory to organize (defaults to the detected desktop)")
	return cmd
}

// resolveRoot picks the directory to organize: the flag, then paths.root,
// then the desktop resolver.
func resolveRoot(cfg *config.Config, flagValue string) (string, error) {
	override := strings.TrimSpace(flagValue)
	if override != "" {
		expanded, err := config.ExpandPath(override)
		if err != nil {
			return "", fmt.Errorf("resolve --root: %w", err)
		}
		override = expanded
	} else {
		override = cfg.Paths.Root
	}
	resolver, err := desktop.NewDefaultResolver(cfg.Paths.CustomDesktopPaths)
	if err != nil {
		return "", err
	}
	return resolver.Resolve(override)
}

func printReport(out io.Writer, report *organizer.Report, colorize bool) {
	mode := textutil.Ternary(report.DryRun, "dry run", "apply")
	for _, line := range renderSectionHeader(fmt.Sprintf("%s (%s)", report.Root, mode), colorize) {
		fmt.Fprintln(out, line)
	}
	for _, check := range report.Checks {
		fmt.Fprintln(out, renderCheckLine(check, colorize))
	}
	if len(report.Checks) > 0 {
		fmt.Fprintln(out)
	}

	for _, d := range report.Decisions {
		verb := textutil.Ternary(d.Moved, "moved", "would move")
		fmt.Fprintf(out, "%s%s -> %s (%s %s)\n", statusIndent, d.Name, d.Result.Display(), verb, d.FinalPath)
	}
	for _, fe := range report.Errors {
		fmt.Fprintln(out, renderStatusLine("Failed", statusError, fe.Error(), colorize))
	}
	if len(report.Decisions) > 0 || len(report.Errors) > 0 {
		fmt.Fprintln(out)
	}

	if counts := report.SortedCounts(); len(counts) > 0 {
		rows := make([][]string, 0, len(counts))
		for _, row := range counts {
			rows = append(rows, []string{row.Category, strconv.Itoa(row.Files)})
		}
		footer := []string{"total", strconv.Itoa(report.Processed())}
		fmt.Fprintln(out, renderTable([]string{"Category", "Files"}, rows, footer, []columnAlignment{alignLeft, alignRight}))
	}

	fmt.Fprintln(out, summaryLine(report, colorize))
}

func summaryLine(report *organizer.Report, colorize bool) string {
	switch {
	case report.Canceled:
		return renderStatusLine("Result", statusWarn, fmt.Sprintf("canceled after %d files", report.Processed()), colorize)
	case len(report.Errors) > 0:
		return renderStatusLine("Result", statusWarn,
			fmt.Sprintf("%d organized, %d failed", report.Processed(), len(report.Errors)), colorize)
	case report.Processed() == 0:
		return renderStatusLine("Result", statusInfo, "nothing to organize", colorize)
	case report.DryRun:
		return renderStatusLine("Result", statusInfo,
			fmt.Sprintf("%d files planned; pass --apply to move them", report.Processed()), colorize)
	default:
		return renderStatusLine("Result", statusOK, fmt.Sprintf("%d files moved", report.Moved()), colorize)
	}
}
