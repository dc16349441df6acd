package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"faultline/internal/examples"
	"faultline/internal/pipeline"
	"faultline/internal/report"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze [flags] [file]",
	Short: "Analyze one code snippet and its error message",
	Long:  `Analyze reads code from a file or stdin together with the error message it produced, classifies the error and prints the root cause, an explanation and fix suggestions`,
	Args:  cobra.MaximumNArgs(1),
	RunE:  runAnalyze,
}

func init() {
	analyzeCmd.Flags().StringP("message", "m", "", "the error message the code produced")
	analyzeCmd.Flags().String("message-file", "", "read the error message from a file")
	analyzeCmd.Flags().StringP("language", "l", "", "source language (detected when empty)")
	analyzeCmd.Flags().String("format", "pretty", "output format (pretty|short|json|sarif|msgpack)")
	analyzeCmd.Flags().Bool("solutions", true, "include fix suggestions in output")
	analyzeCmd.Flags().Bool("matches", false, "include raw pattern matches in output")
	analyzeCmd.Flags().Int("context-lines", 0, "lines of code context around the failing line (0=default)")
	analyzeCmd.Flags().Int("max-solutions", 0, "maximum fix suggestions per report (0=default)")
	analyzeCmd.Flags().String("example", "", "analyze a bundled example instead of reading input")
}

// runAnalyze executes the "analyze" command: it assembles one request from
// flags, a file argument, stdin or a bundled example, runs the pipeline and
// renders the report in the chosen format.
func runAnalyze(cmd *cobra.Command, args []string) error {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	message, err := cmd.Flags().GetString("message")
	if err != nil {
		return fmt.Errorf("failed to get message flag: %w", err)
	}
	messageFile, err := cmd.Flags().GetString("message-file")
	if err != nil {
		return fmt.Errorf("failed to get message-file flag: %w", err)
	}
	language, err := cmd.Flags().GetString("language")
	if err != nil {
		return fmt.Errorf("failed to get language flag: %w", err)
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
	exampleID, err := cmd.Flags().GetString("example")
	if err != nil {
		return fmt.Errorf("failed to get example flag: %w", err)
	}
	showTimings, err := cmd.Root().PersistentFlags().GetBool("timings")
	if err != nil {
		return fmt.Errorf("failed to get timings flag: %w", err)
	}
	verbose, err := cmd.Root().PersistentFlags().GetBool("verbose")
	if err != nil {
		return fmt.Errorf("failed to get verbose flag: %w", err)
	}

	if message != "" && messageFile != "" {
		return fmt.Errorf("message and message-file flags cannot be used together")
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if language == "" {
		language = cfg.Defaults.Language
	}
	if contextLines == 0 {
		contextLines = cfg.Defaults.ContextLines
	}
	if maxSolutions == 0 {
		maxSolutions = cfg.Defaults.MaxSolutions
	}
	if !cmd.Flags().Changed("format") && cfg.Defaults.Format != "" {
		format = cfg.Defaults.Format
	}

	req, err := buildRequest(args, message, messageFile, language, exampleID)
	if err != nil {
		return err
	}

	p := pipeline.New(pipeline.Options{
		Language:      language,
		ContextLines:  contextLines,
		MaxSolutions:  maxSolutions,
		EnableTimings: showTimings,
		Verbose:       verbose,
	})
	res, err := p.Run(cmd.Context(), req)
	if err != nil {
		return fmt.Errorf("analysis failed: %w", err)
	}

	if err := renderReports(cmd, []*report.Report{res.Report}, outputOptions{
		format:       format,
		showMatches:  showMatches,
		showSolution: showSolutions,
	}); err != nil {
		return err
	}

	if showTimings {
		printStageTimings(os.Stderr, requestLabel(req), res.Timing)
	}
	return nil
}

func requestLabel(req pipeline.Request) string {
	if req.Path != "" {
		return req.Path
	}
	return "<stdin>"
}

// buildRequest assembles the analyze request from an example ID, a file
// argument or stdin, plus the error message flags.
func buildRequest(args []string, message, messageFile, language, exampleID string) (pipeline.Request, error) {
	if exampleID != "" {
		if len(args) > 0 {
			return pipeline.Request{}, fmt.Errorf("example flag cannot be combined with a file argument")
		}
		ex, err := examples.Get(exampleID)
		if err != nil {
			return pipeline.Request{}, err
		}
		return pipeline.Request{
			Path:         "example:" + ex.ID,
			Code:         ex.Code,
			ErrorMessage: ex.ErrorMessage,
			Language:     ex.Language,
		}, nil
	}

	var (
		code string
		path string
	)
	if len(args) == 1 && args[0] != "-" {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return pipeline.Request{}, fmt.Errorf("failed to read code: %w", err)
		}
		code = string(data)
		path = args[0]
	} else {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return pipeline.Request{}, fmt.Errorf("failed to read stdin: %w", err)
		}
		code = string(data)
	}

	if messageFile != "" {
		data, err := os.ReadFile(messageFile)
		if err != nil {
			return pipeline.Request{}, fmt.Errorf("failed to read message file: %w", err)
		}
		message = strings.TrimSpace(string(data))
	}

	return pipeline.Request{
		Path:         path,
		Code:         code,
		ErrorMessage: message,
		Language:     language,
	}, nil
}
