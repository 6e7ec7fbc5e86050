package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"mkvswap/internal/classify"
	"mkvswap/internal/language"
	"mkvswap/internal/media/ffprobe"
)

func newInspectCommand(ctx *commandContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inspect <file> [file...]",
		Short: "Show audio streams and the scan verdict for individual files",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return fmt.Errorf("load configuration: %w", err)
			}

			out := cmd.OutOrStdout()
			colorize := shouldColorize(out)
			target := cfg.Scan.TargetLanguage

			for i, path := range args {
				if i > 0 {
					fmt.Fprintln(out)
				}
				for _, line := range renderSectionHeader(path, colorize) {
					fmt.Fprintln(out, line)
				}

				result, err := ffprobe.Inspect(cmd.Context(), cfg.Tools.FFprobe, path)
				if err != nil {
					fmt.Fprintln(out, renderStatusLine("Probe", statusError, err.Error(), colorize))
					continue
				}

				tracks := make([]classify.Track, 0, len(result.Streams))
				rows := make([][]string, 0, len(result.Streams))
				for position, stream := range result.Streams {
					tracks = append(tracks, classify.Track{
						Position: position,
						Language: stream.Language(),
						Default:  stream.IsDefault(),
					})
					rows = append(rows, []string{
						strconv.Itoa(position),
						stream.CodecName,
						strconv.Itoa(stream.Channels),
						language.DisplayName(stream.Language()),
						yesNo(stream.IsDefault()),
					})
				}

				if len(rows) > 0 {
					fmt.Fprintln(out, renderTable(
						[]string{"#", "Codec", "Channels", "Language", "Default"},
						rows,
						[]columnAlignment{alignRight, alignLeft, alignRight, alignLeft, alignLeft},
					))
				}

				decision := classify.Classify(path, tracks, target)
				if decision.Outcome == classify.OutcomeEligible {
					message := fmt.Sprintf("would promote %s track at position %d",
						language.DisplayName(target), decision.Position)
					fmt.Fprintln(out, renderStatusLine("Verdict", statusOK, message, colorize))
				} else {
					fmt.Fprintln(out, renderStatusLine("Verdict", statusWarn, decision.Reason, colorize))
				}
			}
			return nil
		},
	}

	return cmd
}
