package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"faultline/internal/pipeline"
	"faultline/internal/report"
)

var batchCmd = &cobra.Command{
	Use:   "batch [flags] <directory>",
	Short: "Analyze a directory of request files",
	Long:  `Batch reads every .json request file in a directory ({"code", "error_message", "language"}), analyzes them in parallel and prints one report per request`,
	Args:  cobra.ExactArgs(1),
	RunE:  runBatch,
}

func init() {
	batchCmd.Flags().String("format", "short", "output format (pretty|short|json|sarif|msgpack)")
	batchCmd.Flags().Bool("solutions", false, "include fix suggestions in output")
	batchCmd.Flags().Bool("matches", false, "include raw pattern matches in output")
	batchCmd.Flags().Int("context-lines", 0, "lines of code context around the failing line (0=default)")
	batchCmd.Flags().Int("max-solutions", 0, "maximum fix suggestions per report (0=default)")
	batchCmd.Flags().Int("jobs", 0, "max parallel workers (0=auto)")
	batchCmd.Flags().String("ui", "auto", "progress UI mode (auto|on|off)")
}

// runBatch executes the "batch" command: it loads all request files from
// the directory argument, runs them through the pipeline in parallel
// (optionally behind a progress UI) and renders the reports.
func runBatch(cmd *cobra.Command, args []string) error {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	showSolutions, err := cmd.Flags().GetBool("solutions")
	if err != nil {
		return fmt.Errorf("failed to get solutions flag: %w", err)
	}
	showMatches, err := cmd.Flags().GetBool("matches")
	if err != nil {
		return fmt.Errorf("failed to get matches flag: %w", err)
	}
	contextLines, err := cmd.Flags().GetInt("context-lines")
	if err != nil {
		return fmt.Errorf("failed to get context-lines flag: %w", err)
	}
	maxSolutions, err := cmd.Flags().GetInt("max-solutions")
	if err != nil {
		return fmt.Errorf("failed to get max-solutions flag: %w", err)
	}
	jobs, err := cmd.Flags().GetInt("jobs")
	if err != nil {
		return fmt.Errorf("failed to get jobs flag: %w", err)
	}
	uiFlag, err := cmd.Flags().GetString("ui")
	if err != nil {
		return fmt.Errorf("failed to get ui flag: %w", err)
	}
	showTimings, err := cmd.Root().PersistentFlags().GetBool("timings")
	if err != nil {
		return fmt.Errorf("failed to get timings flag: %w", err)
	}
	verbose, err := cmd.Root().PersistentFlags().GetBool("verbose")
	if err != nil {
		return fmt.Errorf("failed to get verbose flag: %w", err)
	}
	quiet, err := cmd.Root().PersistentFlags().GetBool("quiet")
	if err != nil {
		return fmt.Errorf("failed to get quiet flag: %w", err)
	}

	mode, err := readUIMode(uiFlag)
	if err != nil {
		return err
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if contextLines == 0 {
		contextLines = cfg.Defaults.ContextLines
	}
	if maxSolutions == 0 {
		maxSolutions = cfg.Defaults.MaxSolutions
	}
	if jobs == 0 {
		jobs = cfg.Defaults.Jobs
	}

	reqs, err := pipeline.ReadRequestDir(args[0])
	if err != nil {
		return err
	}
	if len(reqs) == 0 {
		if !quiet {
			fmt.Fprintf(os.Stderr, "no .json request files in %s\n", args[0])
		}
		return nil
	}

	p := pipeline.New(pipeline.Options{
		Language:      cfg.Defaults.Language,
		ContextLines:  contextLines,
		MaxSolutions:  maxSolutions,
		EnableTimings: showTimings,
		Verbose:       verbose,
	})

	var results []*pipeline.Result
	if shouldUseTUI(mode) && !quiet {
		results, err = runBatchWithUI(cmd.Context(), p, reqs, jobs)
	} else {
		results, err = p.RunBatch(cmd.Context(), reqs, jobs, nil)
	}
	if err != nil {
		return err
	}

	reports := make([]*report.Report, 0, len(results))
	for _, res := range results {
		if res != nil {
			reports = append(reports, res.Report)
		}
	}

	if err := renderReports(cmd, reports, outputOptions{
		format:       format,
		showMatches:  showMatches,
		showSolution: showSolutions,
	}); err != nil {
		return err
	}

	if showTimings {
		for _, res := range results {
			if res != nil && res.Timing != nil {
				printStageTimings(os.Stderr, res.Report.Path, res.Timing)
			}
		}
	}
	return nil
}
