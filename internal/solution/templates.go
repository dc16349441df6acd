package solution

import "faultline/internal/report"

// template is one canned suggestion; the snippet may carry {placeholders}
// substituted from variables extracted out of the match set.
type template struct {
	Title   string
	Snippet string
}

// issueTemplates maps error type → issue name → suggestions. "default"
// holds the per-type fallback; the package-level defaultTemplates cover
// error types with no table at all.
var issueTemplates = map[report.ErrorType]map[string][]template{
	report.SyntaxError: {
		"missing_parenthesis": {
			{Title: "Add the missing parenthesis", Snippet: "Replace {code_snippet} with {fixed_code}"},
		},
		"missing_bracket": {
			{Title: "Add the missing bracket", Snippet: "Replace {code_snippet} with {fixed_code}"},
		},
		"missing_brace": {
			{Title: "Add the missing brace", Snippet: "Replace {code_snippet} with {fixed_code}"},
		},
		"missing_colon": {
			{Title: "Add a colon after the control statement", Snippet: "Replace {code_snippet} with {code_snippet}:"},
		},
		"invalid_indentation": {
			{Title: "Fix the indentation", Snippet: "Ensure consistent indentation throughout your code"},
		},
		"default": {
			{Title: "Check for missing punctuation or incorrect syntax", Snippet: "Review your code for syntax errors"},
		},
	},
	report.TypeError: {
		"string_as_number": {
			{Title: "Convert the string to a number before performing arithmetic", Snippet: "Replace {code_snippet} with int({code_snippet}) or float({code_snippet})"},
		},
		"none_operation": {
			{Title: "Check if the variable is None before performing operations", Snippet: "if {variable} is not None:\n    # Perform operation with {variable}"},
		},
		"wrong_function_args": {
			{Title: "Check the function documentation for the correct arguments", Snippet: "Ensure the arguments passed to {function_name} are of the correct type"},
		},
		"non_iterable": {
			{Title: "Ensure the object is iterable before using it in a loop", Snippet: "Make sure {variable} is a list, tuple, or other iterable type"},
		},
		"default": {
			{Title: "Check the types of your variables before operations", Snippet: "Use type() to check variable types and convert if necessary"},
		},
	},
	report.NameError: {
		"undefined_variable": {
			{Title: "Define the variable before using it", Snippet: "{variable_name} = value  # Define the variable first"},
		},
		"misspelled_variable": {
			{Title: "Check for typos in variable names", Snippet: "# Correct the spelling of the variable name"},
		},
		"wrong_scope": {
			{Title: "Make sure the variable is accessible in the current scope", Snippet: "# Define the variable in the appropriate scope or pass it as a parameter"},
		},
		"default": {
			{Title: "Define all variables before using them", Snippet: "# Ensure all variables are defined before use"},
		},
	},
	report.IndexError: {
		"out_of_bounds": {
			{Title: "Check that the index is within the valid range", Snippet: "if 0 <= {index} < len({list_name}):\n    # Access {list_name}[{index}]"},
		},
		"empty_list": {
			{Title: "Check if the list is empty before accessing elements", Snippet: "if {list_name}:\n    # Access elements of {list_name}"},
		},
		"wrong_loop_condition": {
			{Title: "Fix the loop condition to prevent out-of-bounds access", Snippet: "for i in range(len({list_name})):\n    # Access {list_name}[i]"},
		},
		"default": {
			{Title: "Ensure indices are within the valid range", Snippet: "# Check list length before accessing elements"},
		},
	},
	report.KeyError: {
		"missing_key": {
			{Title: "Check if the key exists before accessing it", Snippet: "if \"{key}\" in {dict_name}:\n    # Access {dict_name}[\"{key}\"]"},
			{Title: "Use the .get() method to provide a default value", Snippet: "value = {dict_name}.get(\"{key}\", default_value)"},
		},
		"wrong_key_type": {
			{Title: "Ensure the key is of the correct type", Snippet: "# Convert the key to the appropriate type"},
		},
		"default": {
			{Title: "Check if keys exist before accessing them", Snippet: "# Use the \"in\" operator or .get() method for safe dictionary access"},
		},
	},
	report.DivisionByZero: {
		"explicit_zero_division": {
			{Title: "Avoid dividing by zero", Snippet: "# Replace the zero divisor with a non-zero value"},
		},
		"variable_zero_division": {
			{Title: "Check if the divisor is zero before dividing", Snippet: "if {divisor} != 0:\n    result = {dividend} / {divisor}\nelse:\n    # Handle the zero divisor case"},
		},
		"default": {
			{Title: "Always check for zero before division", Snippet: "# Add a condition to check for zero divisor"},
		},
	},
	report.AttributeError: {
		"undefined_attribute": {
			{Title: "Check if the attribute exists on the object", Snippet: "if hasattr({object}, \"{attribute}\"):\n    # Access {object}.{attribute}"},
		},
		"none_attribute": {
			{Title: "Check if the object is None before accessing attributes", Snippet: "if {object} is not None:\n    # Access {object}.{attribute}"},
		},
		"default": {
			{Title: "Ensure the object has the attribute you're trying to access", Snippet: "# Check object type and available attributes"},
		},
	},
}

var defaultTemplates = []template{
	{Title: "Review your code for logical errors", Snippet: "# Debug your code to identify the issue"},
}
