package reportfmt

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/fatih/color"

	"faultline/internal/report"
)

var (
	headerColor  = color.New(color.FgRed, color.Bold)
	sectionColor = color.New(color.FgCyan)
	causeColor   = color.New(color.FgYellow)
	lineColor    = color.New(color.FgWhite, color.Faint)
)

// Pretty formats reports for humans. For each report it prints a
// <path>: <error_type> header, the root cause and explanation, then the
// optional sections enabled in opts.
func Pretty(w io.Writer, reports []*report.Report, opts PrettyOpts) {
	paint := func(c *color.Color, s string) string {
		if !opts.Color {
			return s
		}
		return c.Sprint(s)
	}

	for i, r := range reports {
		if i > 0 {
			fmt.Fprintln(w)
		}

		path := r.Path
		if path == "" {
			path = "<stdin>"
		}
		header := fmt.Sprintf("%s: %s", path, r.Analysis.ErrorType)
		if r.Analysis.LineNumber > 0 {
			header += fmt.Sprintf(" at line %d", r.Analysis.LineNumber)
		}
		fmt.Fprintln(w, paint(headerColor, header))

		fmt.Fprintf(w, "  %s %s\n", paint(sectionColor, "root cause:"), paint(causeColor, r.Analysis.RootCause))
		fmt.Fprintf(w, "  %s %s\n", paint(sectionColor, "explanation:"), r.Analysis.Explanation)

		if opts.ShowContext && r.CodeContext != "" {
			fmt.Fprintf(w, "  %s\n", paint(sectionColor, "context:"))
			for _, line := range strings.Split(strings.TrimRight(r.CodeContext, "\n"), "\n") {
				fmt.Fprintf(w, "    %s\n", paint(lineColor, line))
			}
		}

		if opts.ShowCauses && len(r.CommonCauses) > 0 {
			fmt.Fprintf(w, "  %s\n", paint(sectionColor, "common causes:"))
			for _, cause := range r.CommonCauses {
				fmt.Fprintf(w, "    - %s\n", cause)
			}
		}

		if opts.ShowMatches {
			writeMatches(w, r.Analysis.Matches, paint)
		}

		if opts.ShowSolutions && len(r.Solutions) > 0 {
			fmt.Fprintf(w, "  %s\n", paint(sectionColor, "solutions:"))
			for j, s := range r.Solutions {
				fmt.Fprintf(w, "    %d. %s\n", j+1, s.Title)
				if s.Snippet != "" {
					for _, line := range strings.Split(strings.TrimRight(s.Snippet, "\n"), "\n") {
						fmt.Fprintf(w, "       %s\n", paint(lineColor, line))
					}
				}
			}
		}
	}
}

func writeMatches(w io.Writer, matches report.MatchSet, paint func(*color.Color, string) string) {
	names := make([]string, 0, len(matches))
	for name := range matches {
		if len(matches[name]) > 0 {
			names = append(names, name)
		}
	}
	if len(names) == 0 {
		return
	}
	sort.Strings(names)
	fmt.Fprintf(w, "  %s\n", paint(sectionColor, "matches:"))
	for _, name := range names {
		fmt.Fprintf(w, "    %s: %s\n", name, strings.Join(matches[name], ", "))
	}
}

// Short prints one line per report, suitable for grep and golden files.
func Short(w io.Writer, reports []*report.Report) {
	if out := report.FormatGolden(reports); out != "" {
		fmt.Fprintln(w, out)
	}
}
