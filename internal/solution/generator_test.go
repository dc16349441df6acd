package solution

import (
	"strings"
	"testing"

	"faultline/internal/report"
)

func TestGenerateMissingKeySuggestions(t *testing.T) {
	analysis := report.Analysis{
		ErrorType: report.KeyError,
		RootCause: "Trying to access a dictionary key that doesn't exist",
		Matches: report.MatchSet{
			"missing_key": {`my_dict["d"]`},
		},
	}

	sols := Generate(analysis, 0)
	if len(sols) != 2 {
		t.Fatalf("want 2 suggestions, got %d: %+v", len(sols), sols)
	}
	if !strings.Contains(sols[0].Snippet, `"d" in my_dict`) {
		t.Fatalf("key/dict not substituted: %s", sols[0].Snippet)
	}
	if !strings.Contains(sols[1].Snippet, `my_dict.get("d", default_value)`) {
		t.Fatalf("get() suggestion not substituted: %s", sols[1].Snippet)
	}
}

func TestGenerateMaxSolutionsCap(t *testing.T) {
	analysis := report.Analysis{
		ErrorType: report.KeyError,
		RootCause: "Trying to access a dictionary key that doesn't exist",
		Matches:   report.MatchSet{"missing_key": {`cfg["host"]`}},
	}
	if got := len(Generate(analysis, 1)); got != 1 {
		t.Fatalf("cap ignored, got %d suggestions", got)
	}
}

func TestGenerateOutOfBounds(t *testing.T) {
	analysis := report.Analysis{
		ErrorType: report.IndexError,
		RootCause: "Accessing an index that is out of range",
		Matches:   report.MatchSet{"out_of_bounds": {"my_list[5]"}},
	}
	sols := Generate(analysis, 0)
	if len(sols) == 0 {
		t.Fatal("no suggestions")
	}
	if !strings.Contains(sols[0].Snippet, "0 <= 5 < len(my_list)") {
		t.Fatalf("index/list not substituted: %s", sols[0].Snippet)
	}
}

func TestGenerateAttributeOnNone(t *testing.T) {
	analysis := report.Analysis{
		ErrorType: report.AttributeError,
		RootCause: "Trying to access an attribute on None",
		Matches: report.MatchSet{
			"undefined_attribute": {"person.age"},
			"none_attribute":      {"None.age"},
		},
	}
	sols := Generate(analysis, 0)
	if len(sols) == 0 {
		t.Fatal("no suggestions")
	}
	if !strings.Contains(sols[0].Snippet, "if person is not None:") {
		t.Fatalf("object not substituted: %s", sols[0].Snippet)
	}
}

func TestGenerateZeroDivision(t *testing.T) {
	analysis := report.Analysis{
		ErrorType: report.DivisionByZero,
		RootCause: "Dividing a number by zero",
		Matches:   report.MatchSet{"explicit_zero_division": {"/ 0"}},
	}
	sols := Generate(analysis, 0)
	if len(sols) != 1 || sols[0].Title != "Avoid dividing by zero" {
		t.Fatalf("unexpected suggestions: %+v", sols)
	}
}

func TestGenerateUnknownTypeUsesDefault(t *testing.T) {
	analysis := report.Analysis{
		ErrorType: "martian_error",
		RootCause: "An error of type 'martian_error' occurred in the code",
		Matches:   report.MatchSet{},
	}
	sols := Generate(analysis, 0)
	if len(sols) != 1 || sols[0].Title != defaultTemplates[0].Title {
		t.Fatalf("unexpected default suggestions: %+v", sols)
	}
}

func TestIssueFromRootCauseTable(t *testing.T) {
	cases := map[string]string{
		"Missing or unmatched parenthesis in the code":        "missing_parenthesis",
		"Missing colon after a control statement":             "missing_colon",
		"Using a key of the wrong type":                       "wrong_key_type",
		"Dividing by a variable that has a value of zero":     "variable_zero_division",
		"Accessing an attribute that doesn't exist":           "undefined_attribute",
		"Trying to access an attribute on None":               "none_attribute",
		"Something entirely unmapped":                         "default",
	}
	for rc, want := range cases {
		if got := issueFromRootCause(rc); got != want {
			t.Fatalf("issueFromRootCause(%q): want %s, got %s", rc, want, got)
		}
	}
}
