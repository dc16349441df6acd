package preprocess

import "regexp"

// extractRule pairs an error kind label with the message pattern that
// detects it. Rules are ordered: the first hit wins, so the more specific
// runtime names must come before loose fallbacks.
type extractRule struct {
	kind string
	re   *regexp.Regexp
}

func rule(kind, expr string) extractRule {
	return extractRule{kind: kind, re: regexp.MustCompile(expr)}
}

// messageRules holds the per-language error message tables. Loaded once at
// init, read-only afterwards.
var messageRules = map[string][]extractRule{
	"python": {
		rule("syntax_error", `SyntaxError:\s*(.+)`),
		rule("type_error", `TypeError:\s*(.+)`),
		rule("name_error", `NameError:\s*(.+)`),
		rule("index_error", `IndexError:\s*(.+)`),
		rule("key_error", `KeyError:\s*(.+)`),
		rule("attribute_error", `AttributeError:\s*(.+)`),
		rule("zero_division_error", `ZeroDivisionError:\s*(.+)`),
		rule("import_error", `ImportError:\s*(.+)`),
		rule("value_error", `ValueError:\s*(.+)`),
		rule("indentation_error", `IndentationError:\s*(.+)`),
	},
	"javascript": {
		rule("syntax_error", `SyntaxError:\s*(.+)`),
		rule("type_error", `TypeError:\s*(.+)`),
		rule("reference_error", `ReferenceError:\s*(.+)`),
		rule("range_error", `RangeError:\s*(.+)`),
		rule("uri_error", `URIError:\s*(.+)`),
		rule("eval_error", `EvalError:\s*(.+)`),
		rule("internal_error", `InternalError:\s*(.+)`),
	},
	"java": {
		rule("null_pointer", `NullPointerException`),
		rule("class_not_found", `ClassNotFoundException`),
		rule("index_out_of_bounds", `IndexOutOfBoundsException`),
		rule("arithmetic_exception", `ArithmeticException`),
		rule("illegal_argument", `IllegalArgumentException`),
		rule("io_exception", `IOException`),
	},
	"cpp": {
		rule("segmentation_fault", `Segmentation fault`),
		rule("undefined_reference", `undefined reference to`),
		rule("bad_alloc", `std::bad_alloc`),
		rule("null_pointer", `nullptr`),
		rule("out_of_range", `out of range`),
	},
}

// lineNumberRe extracts "line N" references; every supported language
// reports line numbers in this shape.
var lineNumberRe = regexp.MustCompile(`line\s+(\d+)`)

// SupportedLanguages lists the languages with extraction tables, sorted.
func SupportedLanguages() []string {
	return []string{"cpp", "java", "javascript", "python"}
}
