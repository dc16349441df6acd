// Package analyze is the root-cause engine: it inspects the code context
// around a classified error with a static pattern table and turns the
// matches into a root cause sentence plus a human-readable explanation.
//
// All tables are built at init and never mutated, so a single Analyzer is
// safe to share across goroutines. Analyze is deterministic and never
// fails on well-formed string inputs: an unknown error type or an empty
// context degrades to generic output instead of an error.
package analyze

import (
	"fmt"

	"faultline/internal/report"
)

// Input carries the preprocessed request fields the analyzer needs.
type Input struct {
	ErrorMessage string
	CodeContext  string
	LineNumber   int
}

// Analyzer maps (error type, code context) to a structured verdict.
// The zero value is not usable; construct with New.
type Analyzer struct {
	patterns map[report.ErrorType][]pattern
}

// New returns an Analyzer backed by the static pattern tables.
func New() *Analyzer {
	return &Analyzer{patterns: patternTable}
}

// Analyze runs every pattern for the error type over the code context,
// resolves the root cause by the type's fixed priority order, and renders
// the explanation. Unknown error types fall through to generic output.
func (a *Analyzer) Analyze(in Input, errorType report.ErrorType) report.Analysis {
	patterns := a.patterns[errorType]

	matches := make(report.MatchSet, len(patterns))
	for _, p := range patterns {
		if p.fn != nil {
			matches[p.name] = p.fn(in.CodeContext)
			continue
		}
		matches[p.name] = findAll(p.re, in.CodeContext)
	}

	rootCause := a.resolveRootCause(errorType, patterns, matches)
	explanation := a.renderExplanation(errorType, rootCause, patterns, matches)

	return report.Analysis{
		ErrorType:   errorType,
		RootCause:   rootCause,
		Explanation: explanation,
		Matches:     matches,
		LineNumber:  in.LineNumber,
	}
}

// resolveRootCause walks the patterns in priority order; the first one
// with a non-empty match set wins. With no winner, the first generic
// template for the type applies, and an unrecognized type gets the
// catch-all sentence.
func (a *Analyzer) resolveRootCause(errorType report.ErrorType, patterns []pattern, matches report.MatchSet) string {
	for _, p := range patterns {
		if !matches.Has(p.name) {
			continue
		}
		if cause, ok := rootCauses[p.name]; ok {
			return cause
		}
	}
	if templates := rootCauseTemplates[errorType]; len(templates) > 0 {
		return templates[0]
	}
	return genericSentence(errorType)
}

// renderExplanation starts from the canonical long-form template for the
// type and appends a clarifying sentence for every matched pattern that
// has one registered. Augmentations are additive and follow the type's
// priority order so output stays deterministic.
func (a *Analyzer) renderExplanation(errorType report.ErrorType, rootCause string, patterns []pattern, matches report.MatchSet) string {
	explanation := ""
	if pair, ok := explanationTemplates[errorType]; ok {
		explanation = pair.Primary
	} else {
		explanation = genericSentence(errorType) + ". The root cause appears to be: " + rootCause + "."
	}

	for _, p := range patterns {
		extra, ok := augmentations[p.name]
		if !ok || !matches.Has(p.name) {
			continue
		}
		first := matches.First(p.name)
		if first == "" {
			continue
		}
		explanation += fmt.Sprintf(extra, first)
	}
	return explanation
}

func genericSentence(errorType report.ErrorType) string {
	return fmt.Sprintf("An error of type '%s' occurred in the code", errorType)
}
