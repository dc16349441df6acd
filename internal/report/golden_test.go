package report

import "testing"

func TestFormatGoldenSortsAndNormalizes(t *testing.T) {
	reports := []*Report{
		{
			Path: ".\\scripts\\b.py",
			Analysis: Analysis{
				ErrorType:  KeyError,
				RootCause:  "Trying to access a dictionary key\nthat doesn't exist",
				LineNumber: 4,
			},
		},
		nil,
		{
			Path: "./scripts/a.py",
			Analysis: Analysis{
				ErrorType:  NameError,
				RootCause:  "Using a variable that is not defined",
				LineNumber: 2,
			},
		},
		{
			Analysis: Analysis{
				ErrorType:  DivisionByZero,
				RootCause:  "Dividing a number by zero",
				LineNumber: -5,
			},
		},
	}

	got := FormatGolden(reports)
	want := "<stdin>:0 division_by_zero Dividing a number by zero\n" +
		"scripts/a.py:2 name_error Using a variable that is not defined\n" +
		"scripts/b.py:4 key_error Trying to access a dictionary key that doesn't exist"
	if got != want {
		t.Fatalf("FormatGolden() mismatch:\ngot:\n%s\nwant:\n%s", got, want)
	}
}

func TestFormatGoldenEmpty(t *testing.T) {
	if got := FormatGolden(nil); got != "" {
		t.Fatalf("FormatGolden(nil) = %q, want empty", got)
	}
}
