// Package preprocess normalizes raw code and error text before
// classification and analysis: canonical line endings and Unicode form,
// per-language error info extraction, and the numbered context window
// around the failing line.
package preprocess

import (
	"fmt"
	"strconv"
	"strings"

	"fortio.org/safecast"
	"golang.org/x/text/unicode/norm"
)

// DefaultLanguage is assumed when neither the caller nor detection
// provides one.
const DefaultLanguage = "python"

// DefaultContextLines is how many lines are kept on each side of the
// error line when building the context window.
const DefaultContextLines = 3

// Preprocessed is the normalized view of one request, handed to the
// classifier and the analyzer.
type Preprocessed struct {
	NormalizedCode string
	ErrorMessage   string
	ErrorKind      string // per-language message label, "" when unmatched
	ErrorDetails   string // detail capture from the message, may be ""
	LineNumber     int    // 1-based, 0 when unknown
	CodeContext    string
	Language       string
}

// Options tunes preprocessing. The zero value means defaults.
type Options struct {
	// ContextLines overrides the window size; <= 0 means default.
	ContextLines int
}

// Preprocess normalizes the code, extracts error info from the message
// with the language's table, and cuts the context window. An empty
// language triggers content detection. It never fails on string inputs;
// the error return is reserved for future callers and is always nil today.
func Preprocess(code, errorMessage, language string, opts Options) (Preprocessed, error) {
	lang := NormalizeLanguage(language)
	if lang == "" {
		lang = DetectLanguage(code)
	}

	normalized := NormalizeCode(code)
	kind, details := extractErrorInfo(errorMessage, lang)
	line := extractLineNumber(errorMessage)

	contextLines := opts.ContextLines
	if contextLines <= 0 {
		contextLines = DefaultContextLines
	}

	return Preprocessed{
		NormalizedCode: normalized,
		ErrorMessage:   errorMessage,
		ErrorKind:      kind,
		ErrorDetails:   details,
		LineNumber:     line,
		CodeContext:    ContextWindow(normalized, line, contextLines),
		Language:       lang,
	}, nil
}

// NormalizeCode standardizes line endings to \n, strips trailing
// whitespace from every line, and applies Unicode NFC so the regex
// engine sees one canonical spelling of each character.
func NormalizeCode(code string) string {
	code = norm.NFC.String(code)
	code = strings.ReplaceAll(code, "\r\n", "\n")
	code = strings.ReplaceAll(code, "\r", "\n")

	lines := strings.Split(code, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " \t")
	}
	return strings.Join(lines, "\n")
}

func extractErrorInfo(errorMessage, language string) (kind, details string) {
	for _, r := range messageRules[language] {
		m := r.re.FindStringSubmatch(errorMessage)
		if m == nil {
			continue
		}
		if len(m) > 1 {
			return r.kind, m[1]
		}
		return r.kind, ""
	}
	return "", ""
}

func extractLineNumber(errorMessage string) int {
	m := lineNumberRe.FindStringSubmatch(errorMessage)
	if m == nil {
		return 0
	}
	n, err := strconv.Atoi(m[1])
	if err != nil || n < 1 {
		return 0
	}
	return n
}

// ContextWindow returns the numbered lines around the 1-based error line,
// the error line marked with "> ". Without a line number the whole code
// is the context, matching the behavior callers rely on for short
// snippets pasted without a traceback.
func ContextWindow(code string, lineNumber, contextLines int) string {
	if lineNumber < 1 {
		return code
	}

	lines := strings.Split(code, "\n")
	idx := lineNumber - 1

	start := max(idx-contextLines, 0)
	end := min(idx+contextLines+1, len(lines))
	if start >= len(lines) {
		return code
	}

	numbered := make([]string, 0, end-start)
	for i := start; i < end; i++ {
		display, err := safecast.Conv[uint32](i + 1)
		if err != nil {
			continue
		}
		prefix := "  "
		if i == idx {
			prefix = "> "
		}
		numbered = append(numbered, fmt.Sprintf("%s%d: %s", prefix, display, lines[i]))
	}
	return strings.Join(numbered, "\n")
}
