package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"faultline/internal/observ"
	"faultline/internal/report"
	"faultline/internal/reportfmt"
	"faultline/internal/version"
)

type outputOptions struct {
	format       string
	showMatches  bool
	showSolution bool
	jsonMax      int
}

func resolveUseColor(cmd *cobra.Command) (bool, error) {
	colorFlag, err := cmd.Root().PersistentFlags().GetString("color")
	if err != nil {
		return false, err
	}
	return colorFlag == "on" || (colorFlag == "auto" && isTerminal(os.Stdout)), nil
}

func renderReports(cmd *cobra.Command, reports []*report.Report, opts outputOptions) error {
	useColor, err := resolveUseColor(cmd)
	if err != nil {
		return err
	}

	switch opts.format {
	case "pretty":
		reportfmt.Pretty(os.Stdout, reports, reportfmt.PrettyOpts{
			Color:         useColor,
			ShowMatches:   opts.showMatches,
			ShowSolutions: opts.showSolution,
			ShowContext:   true,
			ShowCauses:    true,
		})
	case "short":
		reportfmt.Short(os.Stdout, reports)
	case "json":
		if err := reportfmt.JSON(os.Stdout, reports, reportfmt.JSONOpts{
			Indent:         true,
			IncludeMatches: opts.showMatches,
			Max:            opts.jsonMax,
		}); err != nil {
			return fmt.Errorf("failed to format reports: %w", err)
		}
	case "sarif":
		meta := reportfmt.SarifRunMeta{
			ToolName:    "faultline",
			ToolVersion: version.Version,
		}
		if err := reportfmt.Sarif(os.Stdout, reports, meta); err != nil {
			return fmt.Errorf("failed to format reports: %w", err)
		}
	case "msgpack":
		if err := reportfmt.Msgpack(os.Stdout, reports); err != nil {
			return fmt.Errorf("failed to format reports: %w", err)
		}
	default:
		return fmt.Errorf("unknown format: %s", opts.format)
	}
	return nil
}

func printStageTimings(out io.Writer, label string, timing *observ.Report) {
	if out == nil || timing == nil {
		return
	}
	fmt.Fprintf(out, "%s: total %.1f ms\n", label, timing.TotalMS)
	for _, ph := range timing.Phases {
		line := fmt.Sprintf("  %s %.1f ms", ph.Name, ph.DurationMS)
		if ph.Note != "" {
			line += fmt.Sprintf(" (%s)", ph.Note)
		}
		fmt.Fprintln(out, line)
	}
}
