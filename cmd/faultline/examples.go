package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"faultline/internal/examples"
)

var examplesCmd = &cobra.Command{
	Use:   "examples [id]",
	Short: "List bundled examples or show one snippet",
	Long:  `Examples lists the bundled broken-code snippets. With an ID argument it prints that snippet and its error message, ready to pipe back into analyze`,
	Args:  cobra.MaximumNArgs(1),
	RunE:  runExamples,
}

func init() {
	examplesCmd.Flags().Bool("code-only", false, "print only the snippet code (for piping)")
}

func runExamples(cmd *cobra.Command, args []string) error {
	codeOnly, err := cmd.Flags().GetBool("code-only")
	if err != nil {
		return fmt.Errorf("failed to get code-only flag: %w", err)
	}

	out := cmd.OutOrStdout()

	if len(args) == 0 {
		all, err := examples.List()
		if err != nil {
			return err
		}
		for _, ex := range all {
			fmt.Fprintf(out, "%-22s %-10s %s\n", ex.ID, ex.Language, ex.Description)
		}
		return nil
	}

	ex, err := examples.Get(args[0])
	if err != nil {
		return err
	}
	if codeOnly {
		fmt.Fprintln(out, ex.Code)
		return nil
	}
	fmt.Fprintf(out, "id:       %s\n", ex.ID)
	fmt.Fprintf(out, "language: %s\n", ex.Language)
	fmt.Fprintf(out, "error:    %s\n", ex.ErrorMessage)
	fmt.Fprintf(out, "about:    %s\n\n", ex.Description)
	fmt.Fprintln(out, ex.Code)
	return nil
}
