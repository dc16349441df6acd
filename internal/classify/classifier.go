// Package classify maps error message text to an error type label.
// Rule layering mirrors how real messages degrade: exact runtime names
// first, then loose keywords, then a regex table over message + context.
package classify

import (
	"regexp"
	"strings"

	"faultline/internal/report"
)

// Unknown is returned for an empty message, UnknownError when every rule
// missed. Both are outside the closed set and flow through the analyzer's
// generic fallback path.
const (
	Unknown      report.ErrorType = "unknown"
	UnknownError report.ErrorType = "unknown_error"
	ReferenceErr report.ErrorType = "reference_error"
)

// directRule matches an exact runtime error name in its original case.
type directRule struct {
	needle string
	et     report.ErrorType
}

var directRules = []directRule{
	{"SyntaxError", report.SyntaxError},
	{"TypeError", report.TypeError},
	{"KeyError", report.KeyError},
	{"IndexError", report.IndexError},
	{"NameError", report.NameError},
	{"ZeroDivisionError", report.DivisionByZero},
	{"AttributeError", report.AttributeError},
	{"ReferenceError", ReferenceErr},
}

type keywordRule struct {
	needles []string
	et      report.ErrorType
}

var keywordRules = []keywordRule{
	{[]string{"syntax", "invalid syntax", "unexpected"}, report.SyntaxError},
	{[]string{"type", "cannot convert", "not iterable"}, report.TypeError},
	{[]string{"key", "dictionary"}, report.KeyError},
}

// typePatterns is the broad regex table over combined lowered
// message+context. Order matters: the first matching entry wins.
type typePatterns struct {
	et       report.ErrorType
	patterns []*regexp.Regexp
}

func compilePatterns(et report.ErrorType, exprs ...string) typePatterns {
	tp := typePatterns{et: et, patterns: make([]*regexp.Regexp, 0, len(exprs))}
	for _, e := range exprs {
		tp.patterns = append(tp.patterns, regexp.MustCompile(`(?i)`+e))
	}
	return tp
}

var patternRules = []typePatterns{
	compilePatterns(report.SyntaxError,
		`syntax\s+error`, `invalid\s+syntax`, `unexpected`, `token\s+error`, `parsing\s+error`, `SyntaxError`, `expected`),
	compilePatterns(report.TypeError,
		`type\s+error`, `cannot\s+convert`, `not\s+iterable`, `not\s+callable`, `not\s+subscriptable`, `NoneType`, `TypeError`, `unsupported\s+operand`, `object\s+is\s+not`, `must\s+be`),
	compilePatterns(report.NameError,
		`name\s+error`, `undefined`, `not\s+defined`, `unknown\s+variable`, `unknown\s+identifier`, `NameError`),
	compilePatterns(report.IndexError,
		`index\s+error`, `out\s+of\s+range`, `index\s+out\s+of\s+bounds`, `array\s+index\s+out`, `list\s+index\s+out`, `IndexError`),
	compilePatterns(report.KeyError,
		`key\s+error`, `no\s+such\s+key`, `key\s+not\s+found`, `invalid\s+key`, `missing\s+key`, `KeyError`, `dictionary`),
	compilePatterns("value_error",
		`value\s+error`, `invalid\s+value`, `invalid\s+literal`, `invalid\s+argument`, `invalid\s+parameter`),
	compilePatterns(report.AttributeError,
		`attribute\s+error`, `no\s+attribute`, `has\s+no\s+attribute`, `undefined\s+property`, `unknown\s+property`),
	compilePatterns("import_error",
		`import\s+error`, `no\s+module`, `cannot\s+find\s+module`, `module\s+not\s+found`, `package\s+not\s+found`),
	compilePatterns("io_error",
		`io\s+error`, `file\s+not\s+found`, `no\s+such\s+file`, `permission\s+denied`, `access\s+denied`),
	compilePatterns("memory_error",
		`memory\s+error`, `out\s+of\s+memory`, `memory\s+allocation`, `stack\s+overflow`, `heap\s+overflow`),
	compilePatterns("runtime_error",
		`runtime\s+error`, `exception\s+occurred`, `unexpected\s+error`, `fatal\s+error`, `critical\s+error`),
	compilePatterns("logic_error",
		`logic\s+error`, `assertion\s+error`, `assertion\s+failed`, `condition\s+failed`, `invariant\s+violated`),
	compilePatterns("null_pointer",
		`null\s+pointer`, `null\s+reference`, `NullPointerException`, `dereferencing\s+null`, `null\s+object`),
	compilePatterns(report.DivisionByZero,
		`division\s+by\s+zero`, `divide\s+by\s+zero`, `zero\s+division`, `divided\s+by\s+zero`, `modulo\s+by\s+zero`),
	compilePatterns("overflow_error",
		`overflow`, `integer\s+overflow`, `arithmetic\s+overflow`, `buffer\s+overflow`, `stack\s+overflow`),
	compilePatterns("timeout_error",
		`timeout`, `time\s+limit`, `execution\s+time`, `deadline\s+exceeded`, `request\s+timeout`),
	compilePatterns("connection_error",
		`connection\s+error`, `network\s+error`, `socket\s+error`, `connection\s+refused`, `connection\s+timeout`),
	compilePatterns("permission_error",
		`permission\s+error`, `access\s+denied`, `forbidden`, `unauthorized`, `not\s+allowed`),
	compilePatterns("dependency_error",
		`dependency\s+error`, `version\s+conflict`, `incompatible`, `missing\s+dependency`, `library\s+conflict`),
}

// Classify returns the error type for the given message and code context.
// It never fails: unmatched input classifies as UnknownError and an empty
// message as Unknown.
func Classify(errorMessage, codeContext string) report.ErrorType {
	for _, r := range directRules {
		if strings.Contains(errorMessage, r.needle) {
			return r.et
		}
	}

	if errorMessage == "" {
		return Unknown
	}

	lowered := strings.ToLower(errorMessage)
	for _, r := range keywordRules {
		for _, n := range r.needles {
			if strings.Contains(lowered, n) {
				return r.et
			}
		}
	}

	combined := strings.ToLower(errorMessage + " " + codeContext)
	for _, tp := range patternRules {
		for _, re := range tp.patterns {
			if re.MatchString(combined) {
				return tp.et
			}
		}
	}

	return UnknownError
}
