// Package solution turns an analysis verdict into templated fix
// suggestions. Selection is two-step: the root cause sentence names an
// issue, the issue picks its templates, and placeholders are filled from
// identifiers extracted out of the match set.
package solution

import (
	"regexp"
	"strings"

	"faultline/internal/report"
)

var (
	listIndexRe = regexp.MustCompile(`(\w+)\s*\[\s*(\d+)\s*\]`)
	dictKeyRe   = regexp.MustCompile(`(\w+)\s*\[\s*["'](\w+)["']\s*\]`)
	divisionRe  = regexp.MustCompile(`\s*(\w+)\s*/\s*(\w+)`)
	attributeRe = regexp.MustCompile(`(\w+)\s*\.\s*(\w+)`)
)

// issueRule maps a lowered root-cause fragment to an issue name. Checked
// in order; both fragments of a pair must be present when two are given.
type issueRule struct {
	fragments []string
	issue     string
}

var issueRules = []issueRule{
	{[]string{"missing or unmatched parenthesis"}, "missing_parenthesis"},
	{[]string{"missing or unmatched bracket"}, "missing_bracket"},
	{[]string{"missing or unmatched brace"}, "missing_brace"},
	{[]string{"missing colon"}, "missing_colon"},
	{[]string{"indentation"}, "invalid_indentation"},
	{[]string{"string as a number"}, "string_as_number"},
	{[]string{"operation on none"}, "none_operation"},
	{[]string{"incorrect arguments"}, "wrong_function_args"},
	{[]string{"non-iterable"}, "non_iterable"},
	{[]string{"variable that is not defined"}, "undefined_variable"},
	{[]string{"misspelling"}, "misspelled_variable"},
	{[]string{"scope"}, "wrong_scope"},
	{[]string{"out of range"}, "out_of_bounds"},
	{[]string{"empty list"}, "empty_list"},
	{[]string{"loop"}, "wrong_loop_condition"},
	{[]string{"key", "exist"}, "missing_key"},
	{[]string{"key", "type"}, "wrong_key_type"},
	{[]string{"dividing a number by zero"}, "explicit_zero_division"},
	{[]string{"dividing by zero"}, "explicit_zero_division"},
	{[]string{"variable", "zero"}, "variable_zero_division"},
	{[]string{"attribute", "exist"}, "undefined_attribute"},
	{[]string{"attribute", "none"}, "none_attribute"},
}

// Generate renders suggestions for the analysis. It always returns at
// least one generic suggestion; maxSolutions <= 0 means no cap.
func Generate(analysis report.Analysis, maxSolutions int) []report.Solution {
	perType, ok := issueTemplates[analysis.ErrorType]

	var templates []template
	if ok {
		issue := issueFromRootCause(analysis.RootCause)
		templates = perType[issue]
		if templates == nil {
			templates = perType["default"]
		}
	}
	if templates == nil {
		templates = defaultTemplates
	}

	vars := extractVariables(analysis)

	out := make([]report.Solution, 0, len(templates))
	for _, tpl := range templates {
		out = append(out, report.Solution{
			Title:   tpl.Title,
			Snippet: substitute(tpl.Snippet, vars),
		})
		if maxSolutions > 0 && len(out) >= maxSolutions {
			break
		}
	}
	return out
}

// issueFromRootCause recovers the issue name from the root cause
// sentence. Sentences are canonical, so substring checks are enough.
func issueFromRootCause(rootCause string) string {
	rc := strings.ToLower(rootCause)
	for _, r := range issueRules {
		hit := true
		for _, f := range r.fragments {
			if !strings.Contains(rc, f) {
				hit = false
				break
			}
		}
		if hit {
			return r.issue
		}
	}
	return "default"
}

// extractVariables pulls identifiers out of the first relevant match so
// snippets can name the caller's own variables.
func extractVariables(analysis report.Analysis) map[string]string {
	vars := make(map[string]string)

	switch analysis.ErrorType {
	case report.SyntaxError:
		if snippet := analysis.Matches.First("missing_parenthesis"); snippet != "" {
			vars["code_snippet"] = snippet
			if strings.HasSuffix(snippet, "(") {
				vars["fixed_code"] = snippet + ")"
			} else if strings.HasPrefix(snippet, ")") {
				vars["fixed_code"] = "(" + snippet
			}
		}
		for _, name := range []string{"missing_bracket", "missing_brace", "missing_colon"} {
			if snippet := analysis.Matches.First(name); snippet != "" && vars["code_snippet"] == "" {
				vars["code_snippet"] = snippet
			}
		}
	case report.TypeError:
		if m := analysis.Matches.First("wrong_function_args"); m != "" {
			if idx := strings.IndexByte(m, '('); idx > 0 {
				vars["function_name"] = m[:idx]
			}
		}
		if m := analysis.Matches.First("non_iterable"); m != "" {
			vars["variable"] = m
		}
	case report.NameError:
		if m := analysis.Matches.First("undefined_variable"); m != "" {
			vars["variable_name"] = m
		}
	case report.IndexError:
		if m := analysis.Matches.First("out_of_bounds"); m != "" {
			if sub := listIndexRe.FindStringSubmatch(m); sub != nil {
				vars["list_name"] = sub[1]
				vars["index"] = sub[2]
			}
		}
	case report.KeyError:
		if m := analysis.Matches.First("missing_key"); m != "" {
			if sub := dictKeyRe.FindStringSubmatch(m); sub != nil {
				vars["dict_name"] = sub[1]
				vars["key"] = sub[2]
			}
		}
	case report.DivisionByZero:
		if m := analysis.Matches.First("variable_zero_division"); m != "" {
			if sub := divisionRe.FindStringSubmatch(m); sub != nil {
				vars["dividend"] = sub[1]
				vars["divisor"] = sub[2]
			}
		}
	case report.AttributeError:
		if m := analysis.Matches.First("undefined_attribute"); m != "" {
			if sub := attributeRe.FindStringSubmatch(m); sub != nil {
				vars["object"] = sub[1]
				vars["attribute"] = sub[2]
			}
		}
	}
	return vars
}

func substitute(snippet string, vars map[string]string) string {
	for name, value := range vars {
		if value == "" {
			continue
		}
		snippet = strings.ReplaceAll(snippet, "{"+name+"}", value)
	}
	return snippet
}
