package report

// ErrorType is the classification label assigned by the classifier.
// The closed set below is what the analyzer has pattern tables for;
// any other string is tolerated and handled through generic fallbacks.
type ErrorType string

const (
	SyntaxError    ErrorType = "syntax_error"
	TypeError      ErrorType = "type_error"
	NameError      ErrorType = "name_error"
	IndexError     ErrorType = "index_error"
	KeyError       ErrorType = "key_error"
	DivisionByZero ErrorType = "division_by_zero"
	AttributeError ErrorType = "attribute_error"
)

// knownTypes is the closed set in a stable order.
var knownTypes = []ErrorType{
	SyntaxError,
	TypeError,
	NameError,
	IndexError,
	KeyError,
	DivisionByZero,
	AttributeError,
}

// KnownTypes returns the closed error type set in a stable order.
// Callers must not modify the returned slice.
func KnownTypes() []ErrorType {
	return knownTypes
}

// Known reports whether t belongs to the closed error type set.
func (t ErrorType) Known() bool {
	for _, k := range knownTypes {
		if t == k {
			return true
		}
	}
	return false
}

func (t ErrorType) String() string {
	return string(t)
}

// MatchSet maps a pattern name to the ordered matches it produced for one
// analysis request. Patterns that did not match are present with an empty
// slice, so renderers can distinguish "pattern ran" from "pattern unknown".
type MatchSet map[string][]string

// Has reports whether the named pattern produced at least one match.
func (m MatchSet) Has(name string) bool {
	return len(m[name]) > 0
}

// First returns the first match for the named pattern, or "".
func (m MatchSet) First(name string) string {
	if vals := m[name]; len(vals) > 0 {
		return vals[0]
	}
	return ""
}

// Analysis is the context analyzer's verdict for a single request.
// It is newly constructed per call and owned by the caller.
type Analysis struct {
	ErrorType   ErrorType `json:"error_type"`
	RootCause   string    `json:"root_cause"`
	Explanation string    `json:"explanation"`
	Matches     MatchSet  `json:"matches"`
	LineNumber  int       `json:"line_number,omitempty"`
}

// Solution is one templated fix suggestion.
type Solution struct {
	Title   string `json:"description"`
	Snippet string `json:"code"`
}

// Report bundles everything the pipeline produced for one request.
// Renderers in internal/reportfmt consume it; nothing mutates it afterwards.
type Report struct {
	Path         string     `json:"path,omitempty"`
	Language     string     `json:"language"`
	ErrorMessage string     `json:"error_message"`
	CodeContext  string     `json:"code_context"`
	Description  string     `json:"description,omitempty"`
	CommonCauses []string   `json:"common_causes,omitempty"`
	Analysis     Analysis   `json:"analysis"`
	Solutions    []Solution `json:"solutions,omitempty"`
}
