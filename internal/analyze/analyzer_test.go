package analyze

import (
	"reflect"
	"strings"
	"testing"

	"faultline/internal/report"
)

func TestAnalyzeTopPriorityPatterns(t *testing.T) {
	cases := []struct {
		name        string
		errorType   report.ErrorType
		codeContext string
		wantPattern string
		wantCause   string
	}{
		{
			name:        "syntax missing parenthesis",
			errorType:   report.SyntaxError,
			codeContext: "result = calculate_sum(5, 10\nprint(result)\n",
			wantPattern: "missing_parenthesis",
			wantCause:   "Missing or unmatched parenthesis in the code",
		},
		{
			name:        "type string as number",
			errorType:   report.TypeError,
			codeContext: "total = \"40\" + 1\n",
			wantPattern: "string_as_number",
			wantCause:   "Attempting to use a string as a number without conversion",
		},
		{
			name:        "name undefined variable",
			errorType:   report.NameError,
			codeContext: "area = pi * radius\n",
			wantPattern: "undefined_variable",
			wantCause:   "Using a variable that is not defined",
		},
		{
			name:        "index out of bounds",
			errorType:   report.IndexError,
			codeContext: "value = my_list[5]\n",
			wantPattern: "out_of_bounds",
			wantCause:   "Accessing an index that is out of range",
		},
		{
			name:        "key missing",
			errorType:   report.KeyError,
			codeContext: "value = my_dict[\"d\"]\n",
			wantPattern: "missing_key",
			wantCause:   "Trying to access a dictionary key that doesn't exist",
		},
		{
			name:        "division by literal zero",
			errorType:   report.DivisionByZero,
			codeContext: "result = 10 / 0\n",
			wantPattern: "explicit_zero_division",
			wantCause:   "Dividing a number by zero",
		},
		{
			name:        "attribute access",
			errorType:   report.AttributeError,
			codeContext: "print(person.age)\n",
			wantPattern: "undefined_attribute",
			wantCause:   "Accessing an attribute that doesn't exist",
		},
	}

	a := New()
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			res := a.Analyze(Input{CodeContext: tc.codeContext}, tc.errorType)
			if !res.Matches.Has(tc.wantPattern) {
				t.Fatalf("expected pattern %q to match, matches: %v", tc.wantPattern, res.Matches)
			}
			if res.RootCause != tc.wantCause {
				t.Fatalf("root cause mismatch:\nwant: %s\ngot:  %s", tc.wantCause, res.RootCause)
			}
			if res.ErrorType != tc.errorType {
				t.Fatalf("error type mismatch: want %s, got %s", tc.errorType, res.ErrorType)
			}
		})
	}
}

func TestAnalyzeZeroDivisorArgument(t *testing.T) {
	a := New()
	res := a.Analyze(Input{CodeContext: "result = divide(10, 0)\n"}, report.DivisionByZero)
	if got := res.RootCause; got != "Dividing a number by zero" {
		t.Fatalf("unexpected root cause: %s", got)
	}
	if !res.Matches.Has("explicit_zero_division") {
		t.Fatalf("expected explicit_zero_division to match, got %v", res.Matches)
	}
}

func TestAnalyzePriorityOrder(t *testing.T) {
	// Matches both missing_parenthesis and missing_colon; the higher
	// priority pattern must decide.
	a := New()
	res := a.Analyze(Input{CodeContext: "if (x > 5\n    print(x)\n"}, report.SyntaxError)

	if !res.Matches.Has("missing_parenthesis") || !res.Matches.Has("missing_colon") {
		t.Fatalf("fixture should trip both patterns, matches: %v", res.Matches)
	}
	if res.RootCause != "Missing or unmatched parenthesis in the code" {
		t.Fatalf("priority violated, got root cause: %s", res.RootCause)
	}
}

func TestAnalyzeUnknownErrorType(t *testing.T) {
	a := New()
	res := a.Analyze(Input{CodeContext: "whatever\n"}, "borked_error")

	want := "An error of type 'borked_error' occurred in the code"
	if res.RootCause != want {
		t.Fatalf("root cause mismatch:\nwant: %s\ngot:  %s", want, res.RootCause)
	}
	if !strings.HasPrefix(res.Explanation, want) {
		t.Fatalf("explanation should start with the generic sentence, got: %s", res.Explanation)
	}
	if len(res.Matches) != 0 {
		t.Fatalf("unknown type must produce an empty match set, got %v", res.Matches)
	}
}

func TestAnalyzeEmptyContextFallsBack(t *testing.T) {
	a := New()
	for _, et := range report.KnownTypes() {
		res := a.Analyze(Input{}, et)
		for name, vals := range res.Matches {
			if len(vals) != 0 {
				t.Fatalf("%s: pattern %q matched empty context: %v", et, name, vals)
			}
		}
		want := rootCauseTemplates[et][0]
		if res.RootCause != want {
			t.Fatalf("%s fallback mismatch:\nwant: %s\ngot:  %s", et, want, res.RootCause)
		}
	}
}

func TestAnalyzeExplanationAugmentation(t *testing.T) {
	a := New()

	res := a.Analyze(Input{CodeContext: "area = pi * radius\n"}, report.NameError)
	if got := res.Matches.First("undefined_variable"); got != "pi" {
		t.Fatalf("expected first undefined variable to be pi, got %q (all: %v)", got, res.Matches["undefined_variable"])
	}
	if !strings.Contains(res.Explanation, "The variable 'pi' might be undefined or misspelled.") {
		t.Fatalf("missing augmentation sentence in: %s", res.Explanation)
	}
	if !strings.HasPrefix(res.Explanation, explanationTemplates[report.NameError].Primary) {
		t.Fatalf("augmentation must not replace the base explanation: %s", res.Explanation)
	}

	res = a.Analyze(Input{CodeContext: "value = my_dict[\"d\"]\n"}, report.KeyError)
	if !strings.Contains(res.Explanation, "might not exist in the dictionary.") {
		t.Fatalf("missing key augmentation in: %s", res.Explanation)
	}
}

func TestAnalyzeDeterministic(t *testing.T) {
	a := New()
	in := Input{ErrorMessage: "NameError: name 'pi' is not defined", CodeContext: "area = pi * radius\n", LineNumber: 2}

	first := a.Analyze(in, report.NameError)
	second := a.Analyze(in, report.NameError)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("analyze is not deterministic:\nfirst:  %+v\nsecond: %+v", first, second)
	}
}

func TestTableCompleteness(t *testing.T) {
	for _, et := range report.KnownTypes() {
		patterns, ok := patternTable[et]
		if !ok || len(patterns) == 0 {
			t.Fatalf("%s: no pattern sub-table", et)
		}
		if _, ok := rootCauseTemplates[et]; !ok {
			t.Fatalf("%s: no root cause templates", et)
		}
		if _, ok := explanationTemplates[et]; !ok {
			t.Fatalf("%s: no explanation templates", et)
		}
		for _, p := range patterns {
			if _, ok := rootCauses[p.name]; !ok {
				t.Fatalf("%s: pattern %q has no root cause sentence", et, p.name)
			}
			if p.re == nil && p.fn == nil {
				t.Fatalf("%s: pattern %q has no matcher", et, p.name)
			}
		}
	}
}
