package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"
)

// Status of a single request in a batch run.
type Status string

const (
	StatusQueued    Status = "queued"
	StatusAnalyzing Status = "analyzing"
	StatusDone      Status = "done"
	StatusError     Status = "error"
)

// Event reports a status change for one request path.
type Event struct {
	Path   string
	Status Status
	Err    error
}

// ProgressSink consumes progress events. Events may arrive from multiple
// goroutines.
type ProgressSink interface {
	OnEvent(Event)
}

// ChannelSink forwards events into a channel.
type ChannelSink struct {
	Ch chan<- Event
}

func (s ChannelSink) OnEvent(evt Event) {
	if s.Ch != nil {
		s.Ch <- evt
	}
}

func emit(sink ProgressSink, path string, status Status, err error) {
	if sink != nil {
		sink.OnEvent(Event{Path: path, Status: status, Err: err})
	}
}

// RunBatch analyzes all requests with up to jobs workers. Results keep the
// order of the input slice.
func (p *Pipeline) RunBatch(ctx context.Context, reqs []Request, jobs int, sink ProgressSink) ([]*Result, error) {
	if len(reqs) == 0 {
		return nil, nil
	}
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	for _, req := range reqs {
		emit(sink, requestLabel(req), StatusQueued, nil)
	}

	results := make([]*Result, len(reqs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(reqs)))

	for i, req := range reqs {
		i, req := i, req
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}
			label := requestLabel(req)
			emit(sink, label, StatusAnalyzing, nil)
			res, err := p.Run(gctx, req)
			if err != nil {
				emit(sink, label, StatusError, err)
				return fmt.Errorf("analyze %s: %w", label, err)
			}
			results[i] = res
			emit(sink, label, StatusDone, nil)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return results, err
	}
	return results, nil
}

func requestLabel(req Request) string {
	if req.Path != "" {
		return req.Path
	}
	return "<stdin>"
}

// ReadRequestDir loads every .json request file under dir, sorted by path.
// Each file holds one Request object; Path is filled from the file name.
func ReadRequestDir(dir string) ([]Request, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read request dir: %w", err)
	}

	var paths []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".json") {
			continue
		}
		paths = append(paths, filepath.Join(dir, e.Name()))
	}
	sort.Strings(paths)

	reqs := make([]Request, 0, len(paths))
	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read request %s: %w", path, err)
		}
		var req Request
		if err := json.Unmarshal(data, &req); err != nil {
			return nil, fmt.Errorf("parse request %s: %w", path, err)
		}
		if req.Path == "" {
			req.Path = path
		}
		reqs = append(reqs, req)
	}
	return reqs, nil
}
