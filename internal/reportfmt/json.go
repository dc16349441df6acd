package reportfmt

import (
	"encoding/json"
	"io"

	"faultline/internal/report"
)

// AnalysisJSON mirrors report.Analysis for serialization.
type AnalysisJSON struct {
	ErrorType   string              `json:"error_type"`
	RootCause   string              `json:"root_cause"`
	Explanation string              `json:"explanation"`
	LineNumber  int                 `json:"line_number,omitempty"`
	Matches     map[string][]string `json:"matches,omitempty"`
}

// SolutionJSON is one fix suggestion in JSON output.
type SolutionJSON struct {
	Description string `json:"description"`
	Code        string `json:"code,omitempty"`
}

// ReportJSON is one analyzed request in JSON output.
type ReportJSON struct {
	Path         string         `json:"path,omitempty"`
	Language     string         `json:"language"`
	ErrorMessage string         `json:"error_message"`
	CodeContext  string         `json:"code_context,omitempty"`
	Description  string         `json:"description,omitempty"`
	CommonCauses []string       `json:"common_causes,omitempty"`
	Analysis     AnalysisJSON   `json:"analysis"`
	Solutions    []SolutionJSON `json:"solutions,omitempty"`
}

// ReportsOutput is the root structure of JSON output.
type ReportsOutput struct {
	Reports []ReportJSON `json:"reports"`
	Count   int          `json:"count"`
}

// BuildReportsOutput builds the JSON output structure without serializing.
func BuildReportsOutput(reports []*report.Report, opts JSONOpts) ReportsOutput {
	maxItems := len(reports)
	if opts.Max > 0 && opts.Max < maxItems {
		maxItems = opts.Max
	}

	out := ReportsOutput{
		Reports: make([]ReportJSON, 0, maxItems),
		Count:   len(reports),
	}
	for i := 0; i < maxItems; i++ {
		r := reports[i]
		rj := ReportJSON{
			Path:         r.Path,
			Language:     r.Language,
			ErrorMessage: r.ErrorMessage,
			CodeContext:  r.CodeContext,
			Description:  r.Description,
			CommonCauses: r.CommonCauses,
			Analysis: AnalysisJSON{
				ErrorType:   string(r.Analysis.ErrorType),
				RootCause:   r.Analysis.RootCause,
				Explanation: r.Analysis.Explanation,
				LineNumber:  r.Analysis.LineNumber,
			},
		}
		if opts.IncludeMatches {
			rj.Analysis.Matches = r.Analysis.Matches
		}
		for _, s := range r.Solutions {
			rj.Solutions = append(rj.Solutions, SolutionJSON{
				Description: s.Title,
				Code:        s.Snippet,
			})
		}
		out.Reports = append(out.Reports, rj)
	}
	return out
}

// JSON writes reports to w as a single JSON document.
func JSON(w io.Writer, reports []*report.Report, opts JSONOpts) error {
	out := BuildReportsOutput(reports, opts)
	enc := json.NewEncoder(w)
	if opts.Indent {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(out)
}
