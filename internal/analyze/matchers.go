package analyze

import "regexp"

var (
	identRe     = regexp.MustCompile(`\w+`)
	flushLineRe = regexp.MustCompile(`(?m)^[ \t]*\S[^\n]*\n[^\s]`)
)

// findAll mirrors Python's re.findall: when the expression has a capture
// group the group content is collected, otherwise the whole match is.
func findAll(re *regexp.Regexp, text string) []string {
	out := make([]string, 0, 4)
	if re.NumSubexp() == 0 {
		return append(out, re.FindAllString(text, -1)...)
	}
	for _, m := range re.FindAllStringSubmatch(text, -1) {
		out = append(out, m[1])
	}
	return out
}

// matchUndefinedVariable collects every identifier that is not followed,
// after optional whitespace, by one of "=:([{". Those suffixes mean the
// identifier is being assigned, annotated, called, or indexed rather than
// read, so it cannot be the undefined name.
func matchUndefinedVariable(text string) []string {
	out := make([]string, 0, 4)
	for _, loc := range identRe.FindAllStringIndex(text, -1) {
		i := loc[1]
		for i < len(text) && isSpace(text[i]) {
			i++
		}
		if i < len(text) {
			switch text[i] {
			case '=', ':', '(', '[', '{':
				continue
			}
		}
		out = append(out, text[loc[0]:loc[1]])
	}
	return out
}

// matchInvalidIndentation reports spots where a populated line is followed
// by a line starting with a non-whitespace character, the shape that shows
// up when a block body lost its indentation.
func matchInvalidIndentation(text string) []string {
	out := make([]string, 0, 2)
	for _, m := range flushLineRe.FindAllString(text, -1) {
		out = append(out, m)
	}
	return out
}

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	}
	return false
}
