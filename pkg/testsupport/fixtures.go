package testsupport

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/go-logr/logr"
	"github.com/go-logr/logr/funcr"
	"github.com/google/go-cmp/cmp"
	"golang.org/x/net/html"

	"github.com/goliatone/go-formbuilder/pkg/dom"
)

// FormPage is a minimal host page with a single #form container.
const FormPage = `<!DOCTYPE html><html><head></head><body><div id="form"></div></body></html>`

// MustDocument parses markup into a host document.
func MustDocument(t *testing.T, markup string) *dom.Document {
	t.Helper()

	doc, err := dom.ParseString(markup)
	if err != nil {
		t.Fatalf("parse document: %v", err)
	}
	return doc
}

// MustQuery resolves selector and fails the test when nothing matches.
func MustQuery(t *testing.T, doc *dom.Document, selector string) *html.Node {
	t.Helper()

	node, err := doc.Query(selector)
	if err != nil {
		t.Fatalf("query %q: %v", selector, err)
	}
	if node == nil {
		t.Fatalf("query %q: no match", selector)
	}
	return node
}

// FieldNames returns, for every element child of container, the name of the
// input or select it wraps. Empty wrappers contribute "".
func FieldNames(container *html.Node) []string {
	var names []string
	for _, wrapper := range dom.Elements(container) {
		control := dom.Find(wrapper, "input")
		if control == nil {
			control = dom.Find(wrapper, "select")
		}
		name, _ := dom.Attr(control, "name")
		names = append(names, name)
	}
	return names
}

// LogSink captures formatted log lines.
type LogSink struct {
	mu    sync.Mutex
	lines []string
}

// Logger returns a logr.Logger writing into the sink at the given verbosity.
func (s *LogSink) Logger(verbosity int) logr.Logger {
	return funcr.New(func(prefix, args string) {
		s.mu.Lock()
		defer s.mu.Unlock()
		s.lines = append(s.lines, strings.TrimSpace(prefix+" "+args))
	}, funcr.Options{Verbosity: verbosity})
}

// Lines returns the captured lines.
func (s *LogSink) Lines() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.lines...)
}

// Contains reports whether any captured line contains substr.
func (s *LogSink) Contains(substr string) bool {
	for _, line := range s.Lines() {
		if strings.Contains(line, substr) {
			return true
		}
	}
	return false
}

// CompareGolden returns a diff string if the values differ.
func CompareGolden(want, got any) string {
	return cmp.Diff(want, got)
}

// MustReadGolden reads a golden file and returns its raw bytes.
func MustReadGolden(t *testing.T, path string) []byte {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read golden: %v", err)
	}
	return data
}

// MustReadGoldenString reads a golden file and returns its string content.
func MustReadGoldenString(t *testing.T, path string) string {
	t.Helper()
	return string(MustReadGolden(t, path))
}

// WriteMaybeGolden updates a golden file when UPDATE_GOLDENS is set. Returns
// true if the golden was written (test should exit early).
func WriteMaybeGolden(t *testing.T, path string, data []byte) bool {
	t.Helper()
	if os.Getenv("UPDATE_GOLDENS") == "" {
		return false
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir golden dir: %v", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write golden: %v", err)
	}
	return true
}

// Context returns a background context for tests.
func Context() context.Context {
	return context.Background()
}
