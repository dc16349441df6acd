package classify

import "faultline/internal/report"

// Details describes an error type for human consumption.
type Details struct {
	Description  string
	CommonCauses []string
}

var detailsTable = map[report.ErrorType]Details{
	report.SyntaxError: {
		Description: "Error in the syntax or structure of the code",
		CommonCauses: []string{
			"Missing parentheses, brackets, or braces",
			"Incorrect indentation",
			"Missing colons in Python",
			"Invalid operators or expressions",
		},
	},
	report.TypeError: {
		Description: "Operation applied to an object of inappropriate type",
		CommonCauses: []string{
			"Trying to perform operations on incompatible types",
			"Passing wrong type of argument to a function",
			"Using a non-callable object as a function",
			"Accessing a non-subscriptable object with an index",
		},
	},
	report.NameError: {
		Description: "Attempt to access a variable or function that does not exist",
		CommonCauses: []string{
			"Using a variable before it is defined",
			"Misspelling a variable or function name",
			"Using a variable outside its scope",
			"Forgetting to import a module",
		},
	},
	report.IndexError: {
		Description: "Attempt to access an index that is outside the bounds of a list or array",
		CommonCauses: []string{
			"Using an index that is negative or too large",
			"Off-by-one errors in loops",
			"Empty lists or arrays",
			"Incorrect loop termination conditions",
		},
	},
	report.KeyError: {
		Description: "Attempt to access a dictionary with a key that does not exist",
		CommonCauses: []string{
			"Using a key that does not exist in the dictionary",
			"Misspelling a key name",
			"Case sensitivity issues with keys",
			"Assuming a key exists without checking",
		},
	},
	report.DivisionByZero: {
		Description: "Attempt to divide by a zero denominator",
		CommonCauses: []string{
			"Dividing by a literal zero",
			"Dividing by a variable that holds zero",
			"Missing a zero check before division",
		},
	},
	report.AttributeError: {
		Description: "Attempt to access an attribute or method that does not exist",
		CommonCauses: []string{
			"Accessing an attribute on None",
			"Misspelling an attribute name",
			"Using an object of the wrong type",
		},
	},
}

var genericDetails = Details{
	Description:  "An error occurred in the code",
	CommonCauses: []string{"Various issues in the code logic or syntax"},
}

// DetailsFor returns the description and common causes for an error type,
// degrading to a generic entry for unknown labels.
func DetailsFor(et report.ErrorType) Details {
	if d, ok := detailsTable[et]; ok {
		return d
	}
	return genericDetails
}
