package analyze

import (
	"regexp"

	"faultline/internal/report"
)

// pattern is one named symptom detector. Most patterns are plain RE2
// expressions compiled with (?m) so ^/$ anchor at line boundaries; the two
// that needed lookahead in their original form are matcher functions with
// the same semantics (RE2 has no lookahead).
type pattern struct {
	name string
	re   *regexp.Regexp
	fn   func(string) []string
}

func rePattern(name, expr string) pattern {
	return pattern{name: name, re: regexp.MustCompile("(?m)" + expr)}
}

func fnPattern(name string, fn func(string) []string) pattern {
	return pattern{name: name, fn: fn}
}

// patternTable maps an error type to its symptom patterns. Slice order IS
// the resolution priority: the first pattern with a non-empty match set
// decides the root cause. Built once at init, never mutated afterwards.
var patternTable = map[report.ErrorType][]pattern{
	report.SyntaxError: {
		rePattern("missing_parenthesis", `\(\s*[^()]*$|^[^()]*\s*\)`),
		rePattern("missing_bracket", `\[\s*[^\[\]]*$|^[^\[\]]*\s*\]`),
		rePattern("missing_brace", `\{\s*[^{}]*$|^[^{}]*\s*\}`),
		rePattern("missing_colon", `(if|else|elif|for|while|def|class)\s+[^:]*$`),
		fnPattern("invalid_indentation", matchInvalidIndentation),
	},
	report.TypeError: {
		rePattern("string_as_number", `["']\d+["']\s*[+\-*/]`),
		rePattern("none_operation", `None\s*[+\-*/\[\]]`),
		rePattern("wrong_function_args", `\w+\([^)]*\)\s*\.`),
		rePattern("non_iterable", `for\s+\w+\s+in\s+(\d+|True|False|None)`),
	},
	report.NameError: {
		fnPattern("undefined_variable", matchUndefinedVariable),
		rePattern("misspelled_variable", `\b\w{3,}\b`),
		rePattern("wrong_scope", `def\s+\w+\([^)]*\):\s*[^\n]*\n(?:\s+[^\n]*\n)*\s+return\s+\w+`),
	},
	report.IndexError: {
		rePattern("out_of_bounds", `\w+\s*\[\s*\d+\s*\]`),
		rePattern("empty_list", `\[\s*\]\s*\[`),
		rePattern("wrong_loop_condition", `for\s+\w+\s+in\s+range\(.*\):\s*[^\n]*\n(?:\s+[^\n]*\n)*\s+\w+\[\w+\]`),
	},
	report.KeyError: {
		rePattern("missing_key", `\w+\s*\[\s*["']\w+["']\s*\]`),
		rePattern("wrong_key_type", `\w+\s*\[\s*\w+\s*\]`),
	},
	report.DivisionByZero: {
		// Catches "/ 0" and a literal zero passed as the divisor argument,
		// e.g. divide(10, 0).
		rePattern("explicit_zero_division", `/\s*0\b|,\s*0\s*\)`),
		rePattern("variable_zero_division", `/\s*\w+`),
	},
	report.AttributeError: {
		rePattern("undefined_attribute", `\w+\s*\.\s*\w+`),
		rePattern("none_attribute", `None\s*\.\s*\w+`),
	},
}

// rootCauses maps a pattern name to its canonical root cause sentence.
var rootCauses = map[string]string{
	"missing_parenthesis":    "Missing or unmatched parenthesis in the code",
	"missing_bracket":        "Missing or unmatched bracket in the code",
	"missing_brace":          "Missing or unmatched brace in the code",
	"missing_colon":          "Missing colon after a control statement",
	"invalid_indentation":    "Invalid indentation in the code",
	"string_as_number":       "Attempting to use a string as a number without conversion",
	"none_operation":         "Performing an operation on None",
	"wrong_function_args":    "Passing incorrect arguments to a function",
	"non_iterable":           "Trying to iterate over a non-iterable object",
	"undefined_variable":     "Using a variable that is not defined",
	"misspelled_variable":    "Possible misspelling of a variable name",
	"wrong_scope":            "Using a variable outside its scope",
	"out_of_bounds":          "Accessing an index that is out of range",
	"empty_list":             "Trying to access an element from an empty list",
	"wrong_loop_condition":   "Incorrect loop termination condition",
	"missing_key":            "Trying to access a dictionary key that doesn't exist",
	"wrong_key_type":         "Using a key of the wrong type",
	"explicit_zero_division": "Dividing a number by zero",
	"variable_zero_division": "Dividing by a variable that has a value of zero",
	"undefined_attribute":    "Accessing an attribute that doesn't exist",
	"none_attribute":         "Trying to access an attribute on None",
}

// rootCauseTemplates lists generic candidate root causes per error type.
// The first entry is the fallback when no pattern matched.
var rootCauseTemplates = map[report.ErrorType][]string{
	report.SyntaxError: {
		"Missing or unmatched parenthesis, bracket, or brace",
		"Missing colon after control statement",
		"Invalid indentation",
		"Invalid syntax in the code structure",
	},
	report.TypeError: {
		"Operation between incompatible types",
		"Attempting to use None in an operation",
		"Passing wrong type of argument to a function",
		"Trying to iterate over a non-iterable object",
	},
	report.NameError: {
		"Using a variable that is not defined",
		"Misspelling a variable name",
		"Using a variable outside its scope",
		"Forgetting to import a required module",
	},
	report.IndexError: {
		"Accessing an index that is out of range",
		"Trying to access an element from an empty list",
		"Off-by-one error in a loop",
		"Using an incorrect loop termination condition",
	},
	report.KeyError: {
		"Trying to access a dictionary key that doesn't exist",
		"Misspelling a dictionary key",
		"Using a key of the wrong type",
		"Assuming a key exists without checking first",
	},
	report.DivisionByZero: {
		"Dividing by zero explicitly",
		"Dividing by a variable that has a value of zero",
		"Not checking for zero before division",
		"Logic error leading to a zero denominator",
	},
	report.AttributeError: {
		"Accessing an attribute that doesn't exist",
		"Trying to access an attribute on None",
		"Misspelling an attribute name",
		"Using an attribute before it's defined",
	},
}

// explanationPair holds the canonical long-form explanation for an error
// type plus an alternative phrasing kept for renderers that want both.
type explanationPair struct {
	Primary   string
	Secondary string
}

var explanationTemplates = map[report.ErrorType]explanationPair{
	report.SyntaxError: {
		Primary:   "Your code has a syntax error. This means the structure of your code doesn't follow the rules of the programming language. Check for missing or mismatched parentheses, brackets, braces, or colons.",
		Secondary: "Syntax errors occur when the code doesn't conform to the language's grammar rules. Look for incorrect indentation, missing punctuation, or invalid statements.",
	},
	report.TypeError: {
		Primary:   "A type error occurs when you try to perform an operation on a value of the wrong type. For example, trying to add a string and a number without conversion, or calling a method on an object that doesn't support it.",
		Secondary: "Your code is trying to use a value in a way that's not compatible with its type. Check that variables have the expected types before operations.",
	},
	report.NameError: {
		Primary:   "A name error happens when you try to use a variable or function that hasn't been defined yet. Make sure all variables are defined before use and check for typos in variable names.",
		Secondary: "Your code references a name that isn't recognized. This could be because the variable isn't defined, is misspelled, or is used outside its scope.",
	},
	report.IndexError: {
		Primary:   "An index error occurs when you try to access an element at an index that doesn't exist in a list or array. Remember that indices start at 0 and the valid range is 0 to length-1.",
		Secondary: "Your code is trying to access an element at a position that's outside the bounds of the list or array. Check your loop conditions and make sure you're not trying to access elements beyond the end of the collection.",
	},
	report.KeyError: {
		Primary:   "A key error happens when you try to access a dictionary using a key that doesn't exist. Make sure the key exists before trying to access it, or use methods like .get() that handle missing keys gracefully.",
		Secondary: "Your code is trying to access a dictionary with a key that isn't present. Consider using the 'in' operator to check if a key exists before accessing it.",
	},
	report.DivisionByZero: {
		Primary:   "Division by zero is a mathematical error that occurs when you try to divide a number by zero. Always check that your denominator is not zero before performing division.",
		Secondary: "Your code is attempting to divide by zero, which is mathematically undefined. Add a condition to check if the divisor is zero before performing the division operation.",
	},
	report.AttributeError: {
		Primary:   "An attribute error occurs when you try to access an attribute or method that doesn't exist on an object. Check that the object is of the expected type and that the attribute name is spelled correctly.",
		Secondary: "Your code is trying to access a property or method that doesn't exist on the object. This could be because the object is None, is of the wrong type, or the attribute name is misspelled.",
	},
}

// augmentations are the extra clarifying sentences appended to an
// explanation when the named pattern produced at least one match. The
// format verb receives the first match.
var augmentations = map[string]string{
	"undefined_variable": " The variable '%s' might be undefined or misspelled.",
	"out_of_bounds":      " The index in '%s' might be out of range.",
	"missing_key":        " The key in '%s' might not exist in the dictionary.",
}
