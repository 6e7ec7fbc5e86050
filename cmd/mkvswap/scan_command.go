package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"mkvswap/internal/scanner"
)

func newScanCommand(ctx *commandContext) *cobra.Command {
	var dryRun bool
	var targetLanguage string

	cmd := &cobra.Command{
		Use:   "scan <directory>",
		Short: "Scan a library and promote the English audio track in eligible files",
		Long: `Scan walks the directory tree, probes every media candidate, and remuxes
each MKV whose sole English audio track is not the default. Files that
cannot be handled safely are recorded as warnings instead of being touched.

Examples:
  mkvswap scan /mnt/media            # Fix defaults across the library
  mkvswap scan --dry-run /mnt/media  # Report what would change
  mkvswap scan --language fra ~/tv   # Promote French instead of English`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return fmt.Errorf("load configuration: %w", err)
			}
			if dryRun {
				cfg.Scan.DryRun = true
			}
			if tag := strings.TrimSpace(targetLanguage); tag != "" {
				cfg.Scan.TargetLanguage = tag
			}

			logFile, err := os.OpenFile(filepath.Join(cfg.Paths.LogDir, "mkvswap.log"),
				os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
			if err != nil {
				return fmt.Errorf("open log file: %w", err)
			}
			defer logFile.Close()

			logger, err := ctx.newLoggerTo(cfg, io.MultiWriter(cmd.ErrOrStderr(), logFile))
			if err != nil {
				return fmt.Errorf("setup logging: %w", err)
			}

			store, err := ctx.openHistory(cfg)
			if err != nil {
				return fmt.Errorf("open history: %w", err)
			}
			if store != nil {
				defer store.Close()
			}

			summary, err := scanner.New(cfg, logger, store).Run(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			printScanSummary(cmd, summary)
			return nil
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Report eligible files without remuxing")
	cmd.Flags().StringVar(&targetLanguage, "language", "", "Audio language to promote (default: configured target_language)")

	return cmd
}

func printScanSummary(cmd *cobra.Command, summary *scanner.Summary) {
	out := cmd.OutOrStdout()
	colorize := shouldColorize(out)

	title := "Scan Summary"
	if summary.DryRun {
		title = "Scan Summary (dry run)"
	}
	for _, line := range renderSectionHeader(title, colorize) {
		fmt.Fprintln(out, line)
	}

	warnKind := statusOK
	if summary.Warnings > 0 {
		warnKind = statusWarn
	}

	fmt.Fprintln(out, renderStatusLine("Run ID", statusInfo, summary.RunID, colorize))
	fmt.Fprintln(out, renderStatusLine("Root", statusInfo, summary.Root, colorize))
	fmt.Fprintln(out, renderStatusLine("Files scanned", statusInfo, strconv.Itoa(summary.FilesSeen), colorize))
	fmt.Fprintln(out, renderStatusLine("Remuxed", statusOK, strconv.Itoa(summary.Successes), colorize))
	fmt.Fprintln(out, renderStatusLine("Warnings", warnKind, strconv.Itoa(summary.Warnings), colorize))
	fmt.Fprintln(out, renderStatusLine("Duration", statusInfo, summary.Duration.Round(timeRounding).String(), colorize))
	fmt.Fprintln(out, renderStatusLine("Success report", statusInfo, summary.SuccessReport, colorize))
	fmt.Fprintln(out, renderStatusLine("Warnings report", statusInfo, summary.WarningsReport, colorize))
}
