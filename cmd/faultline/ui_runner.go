package main

import (
	"context"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"faultline/internal/pipeline"
	"faultline/internal/ui"
)

type batchOutcome struct {
	results []*pipeline.Result
	err     error
}

// runBatchWithUI runs the batch behind a Bubble Tea progress view. The
// pipeline runs in a goroutine and streams events into the model.
func runBatchWithUI(ctx context.Context, p *pipeline.Pipeline, reqs []pipeline.Request, jobs int) ([]*pipeline.Result, error) {
	events := make(chan pipeline.Event, 256)
	outcomeCh := make(chan batchOutcome, 1)

	paths := make([]string, 0, len(reqs))
	for _, req := range reqs {
		path := req.Path
		if path == "" {
			path = "<stdin>"
		}
		paths = append(paths, path)
	}

	go func() {
		results, err := p.RunBatch(ctx, reqs, jobs, pipeline.ChannelSink{Ch: events})
		outcomeCh <- batchOutcome{results: results, err: err}
		close(events)
	}()

	model := ui.NewProgressModel("analyzing requests", paths, events)
	program := tea.NewProgram(model, tea.WithOutput(os.Stdout))
	_, uiErr := program.Run()
	outcome := <-outcomeCh
	if uiErr != nil {
		return outcome.results, uiErr
	}
	return outcome.results, outcome.err
}
