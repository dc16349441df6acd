package pipeline

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"faultline/internal/report"
)

type recordingSink struct {
	mu     sync.Mutex
	events []Event
}

func (s *recordingSink) OnEvent(evt Event) {
	s.mu.Lock()
	s.events = append(s.events, evt)
	s.mu.Unlock()
}

func (s *recordingSink) count(status Status) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, evt := range s.events {
		if evt.Status == status {
			n++
		}
	}
	return n
}

func TestRunDivisionByZero(t *testing.T) {
	p := New(Options{})
	res, err := p.Run(context.Background(), Request{
		Code:         "def divide(a, b):\n    return a / b\n\nresult = divide(10, 0)\nprint(result)\n",
		ErrorMessage: "ZeroDivisionError: division by zero at line 2",
		Language:     "python",
	})
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}
	rep := res.Report
	if rep.Analysis.ErrorType != report.DivisionByZero {
		t.Fatalf("ErrorType = %q, want %q", rep.Analysis.ErrorType, report.DivisionByZero)
	}
	if rep.Analysis.RootCause != "Dividing a number by zero" {
		t.Errorf("RootCause = %q", rep.Analysis.RootCause)
	}
	if rep.Analysis.LineNumber != 2 {
		t.Errorf("LineNumber = %d, want 2", rep.Analysis.LineNumber)
	}
	if len(rep.Solutions) == 0 {
		t.Error("expected at least one solution")
	}
	if !strings.Contains(rep.CodeContext, "> 2:") {
		t.Errorf("CodeContext missing error line marker:\n%s", rep.CodeContext)
	}
}

func TestRunLanguageDetection(t *testing.T) {
	p := New(Options{})
	res, err := p.Run(context.Background(), Request{
		Code:         "function displayMessage() {\n  console.log(message);\n}\n",
		ErrorMessage: "ReferenceError: message is not defined at line 2",
		Language:     "js",
	})
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}
	if res.Report.Language != "javascript" {
		t.Errorf("Language = %q, want %q", res.Report.Language, "javascript")
	}
}

func TestRunTimings(t *testing.T) {
	p := New(Options{EnableTimings: true})
	res, err := p.Run(context.Background(), Request{
		Code:         "x = y + 1\n",
		ErrorMessage: "NameError: name 'y' is not defined",
	})
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}
	if res.Timing == nil {
		t.Fatal("expected timing report")
	}
	want := []string{"preprocess", "classify", "analyze", "solutions"}
	if len(res.Timing.Phases) != len(want) {
		t.Fatalf("got %d phases, want %d", len(res.Timing.Phases), len(want))
	}
	for i, ph := range res.Timing.Phases {
		if ph.Name != want[i] {
			t.Errorf("phase[%d] = %q, want %q", i, ph.Name, want[i])
		}
	}
}

func TestRunTruncatesOversizedCode(t *testing.T) {
	p := New(Options{MaxContextBytes: 32})
	res, err := p.Run(context.Background(), Request{
		Code:         strings.Repeat("x = 1\n", 100),
		ErrorMessage: "SyntaxError: invalid syntax",
	})
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}
	if res.Report == nil {
		t.Fatal("expected a report")
	}
}

func TestRunCancelledContext(t *testing.T) {
	p := New(Options{})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := p.Run(ctx, Request{Code: "x = 1\n"}); err == nil {
		t.Fatal("Run() with cancelled context should fail")
	}
}

func TestRunBatchKeepsOrder(t *testing.T) {
	p := New(Options{})
	reqs := []Request{
		{Path: "a.json", Code: "d = {}\nprint(d['k'])\n", ErrorMessage: "KeyError: 'k' at line 2"},
		{Path: "b.json", Code: "x = [1]\nprint(x[5])\n", ErrorMessage: "IndexError: list index out of range at line 2"},
		{Path: "c.json", Code: "print(undefined_name)\n", ErrorMessage: "NameError: name 'undefined_name' is not defined"},
	}

	sink := &recordingSink{}
	results, err := p.RunBatch(context.Background(), reqs, 2, sink)
	if err != nil {
		t.Fatalf("RunBatch() error: %v", err)
	}
	if got := sink.count(StatusQueued); got != len(reqs) {
		t.Errorf("queued events = %d, want %d", got, len(reqs))
	}
	if got := sink.count(StatusDone); got != len(reqs) {
		t.Errorf("done events = %d, want %d", got, len(reqs))
	}
	if got := sink.count(StatusError); got != 0 {
		t.Errorf("error events = %d, want 0", got)
	}

	wantTypes := []report.ErrorType{report.KeyError, report.IndexError, report.NameError}
	for i, res := range results {
		if res == nil {
			t.Fatalf("results[%d] is nil", i)
		}
		if res.Report.Path != reqs[i].Path {
			t.Errorf("results[%d].Path = %q, want %q", i, res.Report.Path, reqs[i].Path)
		}
		if res.Report.Analysis.ErrorType != wantTypes[i] {
			t.Errorf("results[%d].ErrorType = %q, want %q", i, res.Report.Analysis.ErrorType, wantTypes[i])
		}
	}
}

func TestRunBatchEmpty(t *testing.T) {
	p := New(Options{})
	results, err := p.RunBatch(context.Background(), nil, 4, nil)
	if err != nil {
		t.Fatalf("RunBatch() error: %v", err)
	}
	if results != nil {
		t.Fatalf("expected nil results, got %d", len(results))
	}
}

func TestReadRequestDir(t *testing.T) {
	dir := t.TempDir()
	write := func(name string, req Request) {
		data, err := json.Marshal(req)
		if err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(filepath.Join(dir, name), data, 0o644); err != nil {
			t.Fatal(err)
		}
	}
	write("b.json", Request{Code: "y = 2\n", ErrorMessage: "TypeError: bad"})
	write("a.json", Request{Code: "x = 1\n", ErrorMessage: "NameError: name 'x' is not defined"})
	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("skip me"), 0o644); err != nil {
		t.Fatal(err)
	}

	reqs, err := ReadRequestDir(dir)
	if err != nil {
		t.Fatalf("ReadRequestDir() error: %v", err)
	}
	if len(reqs) != 2 {
		t.Fatalf("got %d requests, want 2", len(reqs))
	}
	if filepath.Base(reqs[0].Path) != "a.json" || filepath.Base(reqs[1].Path) != "b.json" {
		t.Errorf("requests out of order: %q, %q", reqs[0].Path, reqs[1].Path)
	}
}

func TestReadRequestDirBadJSON(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "bad.json"), []byte("{"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := ReadRequestDir(dir); err == nil {
		t.Fatal("expected parse error")
	}
}
