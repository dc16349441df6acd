package report

import (
	"fmt"
	"sort"
	"strings"

	"fortio.org/safecast"
)

type goldenLine struct {
	Path      string
	Line      uint32
	ErrorType string
	RootCause string
}

// FormatGolden renders reports into a stable, single-line-per-entry
// representation suitable for golden files and the CLI short format.
// Entries are sorted deterministically and returned as a single string
// (empty when there is nothing to render).
func FormatGolden(reports []*Report) string {
	rendered := make([]goldenLine, 0, len(reports))
	for _, r := range reports {
		if r == nil {
			continue
		}
		line, err := safecast.Conv[uint32](max(r.Analysis.LineNumber, 0))
		if err != nil {
			line = 0
		}
		rendered = append(rendered, goldenLine{
			Path:      normalizePath(r.Path),
			Line:      line,
			ErrorType: string(r.Analysis.ErrorType),
			RootCause: sanitizeMessage(r.Analysis.RootCause),
		})
	}

	sort.SliceStable(rendered, func(i, j int) bool {
		li, lj := rendered[i], rendered[j]
		if li.Path != lj.Path {
			return li.Path < lj.Path
		}
		if li.Line != lj.Line {
			return li.Line < lj.Line
		}
		if li.ErrorType != lj.ErrorType {
			return li.ErrorType < lj.ErrorType
		}
		return li.RootCause < lj.RootCause
	})

	var b strings.Builder
	for i, l := range rendered {
		path := l.Path
		if path == "" {
			path = "<stdin>"
		}
		fmt.Fprintf(&b, "%s:%d %s %s", path, l.Line, l.ErrorType, l.RootCause)
		if i < len(rendered)-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

func normalizePath(path string) string {
	p := strings.ReplaceAll(path, "\\", "/")
	for strings.HasPrefix(p, "./") {
		p = strings.TrimPrefix(p, "./")
	}
	return p
}

func sanitizeMessage(msg string) string {
	msg = strings.ReplaceAll(msg, "\r\n", "\n")
	msg = strings.ReplaceAll(msg, "\r", "\n")
	msg = strings.ReplaceAll(msg, "\n", " ")
	return strings.TrimSpace(msg)
}
