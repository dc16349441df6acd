package preprocess

import (
	"strings"

	"github.com/go-enry/go-enry/v2"
)

// enryAliases maps go-enry language names to the extraction table keys.
var enryAliases = map[string]string{
	"python":     "python",
	"javascript": "javascript",
	"typescript": "javascript",
	"java":       "java",
	"c++":        "cpp",
	"c":          "cpp",
}

// DetectLanguage guesses the snippet's language with go-enry. It returns
// one of the supported table keys, defaulting to python when detection
// is inconclusive.
func DetectLanguage(code string) string {
	if strings.TrimSpace(code) == "" {
		return DefaultLanguage
	}
	detected := enry.GetLanguage("snippet", []byte(code))
	if alias, ok := enryAliases[strings.ToLower(detected)]; ok {
		return alias
	}
	return DefaultLanguage
}

// NormalizeLanguage lowercases a caller-supplied language label and maps
// the common aliases onto table keys. Unknown labels pass through
// unchanged: they simply select an empty extraction table downstream.
func NormalizeLanguage(language string) string {
	l := strings.ToLower(strings.TrimSpace(language))
	switch l {
	case "":
		return ""
	case "py", "python3":
		return "python"
	case "js", "node":
		return "javascript"
	case "c++", "cxx", "cc":
		return "cpp"
	}
	return l
}
