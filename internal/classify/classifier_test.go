package classify

import (
	"testing"

	"faultline/internal/report"
)

func TestClassifyDirectNames(t *testing.T) {
	cases := []struct {
		message string
		want    report.ErrorType
	}{
		{"SyntaxError: expected ':' at line 1", report.SyntaxError},
		{"TypeError: unsupported operand type(s) for +: 'int' and 'str'", report.TypeError},
		{"KeyError: 'd' at line 2", report.KeyError},
		{"IndexError: list index out of range", report.IndexError},
		{"NameError: name 'pi' is not defined", report.NameError},
		{"ZeroDivisionError: division by zero", report.DivisionByZero},
		{"AttributeError: 'Person' object has no attribute 'age'", report.AttributeError},
		{"ReferenceError: message is not defined", ReferenceErr},
	}
	for _, tc := range cases {
		if got := Classify(tc.message, ""); got != tc.want {
			t.Fatalf("Classify(%q): want %s, got %s", tc.message, tc.want, got)
		}
	}
}

func TestClassifyEmptyMessage(t *testing.T) {
	if got := Classify("", "some = code\n"); got != Unknown {
		t.Fatalf("want %s, got %s", Unknown, got)
	}
}

func TestClassifyKeywords(t *testing.T) {
	cases := []struct {
		message string
		want    report.ErrorType
	}{
		{"compile failed: invalid syntax near token", report.SyntaxError},
		{"cannot convert string to int", report.TypeError},
		{"no such key in the dictionary", report.KeyError},
	}
	for _, tc := range cases {
		if got := Classify(tc.message, ""); got != tc.want {
			t.Fatalf("Classify(%q): want %s, got %s", tc.message, tc.want, got)
		}
	}
}

func TestClassifyPatternTable(t *testing.T) {
	cases := []struct {
		message string
		want    report.ErrorType
	}{
		{"process ran into a null pointer dereference", "null_pointer"},
		{"request timeout while waiting for upstream", "timeout_error"},
		{"module not found: numpy", "import_error"},
		{"assertion failed: balance >= 0", "logic_error"},
	}
	for _, tc := range cases {
		if got := Classify(tc.message, ""); got != tc.want {
			t.Fatalf("Classify(%q): want %s, got %s", tc.message, tc.want, got)
		}
	}
}

func TestClassifyFallsBackToUnknownError(t *testing.T) {
	if got := Classify("weird gibberish with no signal", ""); got != UnknownError {
		t.Fatalf("want %s, got %s", UnknownError, got)
	}
}

func TestDetailsForUnknownType(t *testing.T) {
	d := DetailsFor("martian_error")
	if d.Description != genericDetails.Description {
		t.Fatalf("unexpected description: %s", d.Description)
	}
	for _, et := range report.KnownTypes() {
		if DetailsFor(et).Description == "" {
			t.Fatalf("%s: empty details", et)
		}
	}
}
