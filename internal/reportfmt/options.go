package reportfmt

// PrettyOpts configures pretty-printing of reports.
type PrettyOpts struct {
	Color         bool
	ShowMatches   bool
	ShowSolutions bool
	ShowContext   bool
	ShowCauses    bool
}

// JSONOpts configures JSON output of reports.
type JSONOpts struct {
	Indent         bool
	IncludeMatches bool
	Max            int // truncates the output, not the input
}

// SarifRunMeta provides metadata for SARIF output.
type SarifRunMeta struct {
	ToolName       string
	ToolVersion    string
	InvocationArgs []string
}
