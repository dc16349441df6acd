// Package pipeline wires preprocessing, classification, analysis and
// solution generation into a single run over one code/error pair.
package pipeline

import (
	"context"

	"github.com/sirupsen/logrus"

	"faultline/internal/analyze"
	"faultline/internal/classify"
	"faultline/internal/observ"
	"faultline/internal/preprocess"
	"faultline/internal/report"
	"faultline/internal/solution"
)

const (
	// DefaultMaxSolutions caps how many suggestions a single run returns.
	DefaultMaxSolutions = 3

	// DefaultMaxContextBytes caps how much code a single run will scan.
	DefaultMaxContextBytes = 64 * 1024
)

// Options configure a Pipeline. The zero value is usable.
type Options struct {
	Language        string // overrides detection when set
	ContextLines    int    // lines shown around the failing line
	MaxSolutions    int
	MaxContextBytes int
	EnableTimings   bool
	Verbose         bool
}

// Request is one code/error pair to analyze.
type Request struct {
	Path         string `json:"path,omitempty"`
	Code         string `json:"code"`
	ErrorMessage string `json:"error_message"`
	Language     string `json:"language,omitempty"`
}

// Result carries the report for one request plus optional stage timings.
type Result struct {
	Report *report.Report
	Timing *observ.Report
}

// Pipeline runs the full analysis for requests. Safe for concurrent use.
type Pipeline struct {
	opts     Options
	analyzer *analyze.Analyzer
	log      *logrus.Logger
}

func New(opts Options) *Pipeline {
	if opts.MaxSolutions <= 0 {
		opts.MaxSolutions = DefaultMaxSolutions
	}
	if opts.MaxContextBytes <= 0 {
		opts.MaxContextBytes = DefaultMaxContextBytes
	}
	log := logrus.New()
	if opts.Verbose {
		log.SetLevel(logrus.DebugLevel)
	} else {
		log.SetLevel(logrus.WarnLevel)
	}
	return &Pipeline{
		opts:     opts,
		analyzer: analyze.New(),
		log:      log,
	}
}

// Run analyzes one request. It never fails on malformed input: unknown
// error types and empty code still produce a report.
func (p *Pipeline) Run(ctx context.Context, req Request) (*Result, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	var timer *observ.Timer
	if p.opts.EnableTimings {
		timer = observ.NewTimer()
	}
	begin := func(name string) int {
		if timer == nil {
			return -1
		}
		return timer.Begin(name)
	}
	end := func(idx int, note string) {
		if timer != nil && idx >= 0 {
			timer.End(idx, note)
		}
	}

	code := req.Code
	if len(code) > p.opts.MaxContextBytes {
		code = code[:p.opts.MaxContextBytes]
		p.log.WithField("path", req.Path).Debug("code truncated to context byte limit")
	}

	language := req.Language
	if language == "" {
		language = p.opts.Language
	}

	preIdx := begin("preprocess")
	pre, err := preprocess.Preprocess(code, req.ErrorMessage, language, preprocess.Options{
		ContextLines: p.opts.ContextLines,
	})
	end(preIdx, pre.Language)
	if err != nil {
		return nil, err
	}
	p.log.WithFields(logrus.Fields{
		"language": pre.Language,
		"line":     pre.LineNumber,
	}).Debug("preprocessed input")

	classifyIdx := begin("classify")
	errorType := classify.Classify(pre.ErrorMessage, pre.NormalizedCode)
	end(classifyIdx, string(errorType))
	p.log.WithField("error_type", errorType).Debug("classified error")

	analyzeIdx := begin("analyze")
	analysis := p.analyzer.Analyze(analyze.Input{
		ErrorMessage: pre.ErrorMessage,
		CodeContext:  pre.NormalizedCode,
		LineNumber:   pre.LineNumber,
	}, errorType)
	end(analyzeIdx, "")

	solveIdx := begin("solutions")
	solutions := solution.Generate(analysis, p.opts.MaxSolutions)
	end(solveIdx, "")

	details := classify.DetailsFor(errorType)
	res := &Result{
		Report: &report.Report{
			Path:         req.Path,
			Language:     pre.Language,
			ErrorMessage: pre.ErrorMessage,
			CodeContext:  pre.CodeContext,
			Description:  details.Description,
			CommonCauses: details.CommonCauses,
			Analysis:     analysis,
			Solutions:    solutions,
		},
	}
	if timer != nil {
		rep := timer.Report()
		res.Timing = &rep
	}
	return res, nil
}
