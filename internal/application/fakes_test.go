package application

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"didact/internal/domain"
	"didact/internal/ports"
)

type invocation struct {
	id   string
	args []any
}

// fakeCommands is an in-memory command registry recording every call
type fakeCommands struct {
	mu       sync.Mutex
	ids      []string
	failures map[string]error
	calls    []invocation
}

func newFakeCommands(ids ...string) *fakeCommands {
	return &fakeCommands{ids: ids, failures: make(map[string]error)}
}

func (f *fakeCommands) ListCommands(ctx context.Context) ([]string, error) {
	return append([]string(nil), f.ids...), nil
}

func (f *fakeCommands) Invoke(ctx context.Context, id string, args ...any) (any, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, invocation{id: id, args: args})
	known := false
	for _, existing := range f.ids {
		if existing == id {
			known = true
		}
	}
	if !known {
		return nil, fmt.Errorf("command %q not found", id)
	}
	if err := f.failures[id]; err != nil {
		return nil, err
	}
	return "ok", nil
}

type fakeWorkspace struct {
	root       string
	extensions map[string]string
}

func (f *fakeWorkspace) WorkspaceRoot() (string, bool) {
	return f.root, f.root != ""
}

func (f *fakeWorkspace) ExtensionRoot(id string) (string, bool) {
	root, ok := f.extensions[id]
	return root, ok
}

// fakePrompter answers prompts from a script; running out of answers cancels
type fakePrompter struct {
	answers []string
	labels  []string
}

func (f *fakePrompter) RequestInput(ctx context.Context, label string) (string, error) {
	f.labels = append(f.labels, label)
	if len(f.answers) == 0 {
		return "", nil
	}
	answer := f.answers[0]
	f.answers = f.answers[1:]
	return answer, nil
}

type fakeNotifier struct {
	infos  []string
	errors []string
}

func (f *fakeNotifier) Info(msg string)  { f.infos = append(f.infos, msg) }
func (f *fakeNotifier) Error(msg string) { f.errors = append(f.errors, msg) }

type fakeSettings struct {
	disabled bool
	reads    int
}

func (f *fakeSettings) DefaultNotificationsDisabled() bool {
	f.reads++
	return f.disabled
}

// memStore is a map-backed persistent store
type memStore struct {
	mu      sync.Mutex
	data    map[string][]byte
	failSet error
}

func newMemStore() *memStore {
	return &memStore{data: make(map[string][]byte)}
}

func (m *memStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.data[key]
	return v, ok, nil
}

func (m *memStore) Set(ctx context.Context, key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failSet != nil {
		return m.failSet
	}
	m.data[key] = append([]byte(nil), value...)
	return nil
}

// fakeDocuments serves pre-rendered HTML keyed by URI and scans headings
// written as "<h2 time=N>Label</h2>" with a tiny line parser
type fakeDocuments struct {
	mu      sync.Mutex
	html    map[string]string
	fetches int
}

func (f *fakeDocuments) Fetch(ctx context.Context, uri string) (*ports.Document, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.fetches++
	html, ok := f.html[uri]
	if !ok {
		return nil, errors.New("no such document")
	}
	return &ports.Document{URI: uri, Name: "doc.md", Source: []byte(html)}, nil
}

func (f *fakeDocuments) Render(ctx context.Context, doc *ports.Document) (string, error) {
	return string(doc.Source), nil
}

func (f *fakeDocuments) FindHeadingsWithTimeAnnotation(html string) ([]domain.HeadingAnnotation, error) {
	var result []domain.HeadingAnnotation
	for _, line := range strings.Split(html, "\n") {
		line = strings.TrimSpace(line)
		if !strings.HasPrefix(line, "<h2 time=") {
			continue
		}
		rest := strings.TrimPrefix(line, "<h2 time=")
		value, tail, _ := strings.Cut(rest, ">")
		label := strings.TrimSuffix(tail, "</h2>")
		result = append(result, domain.HeadingAnnotation{Label: label, RawAnnotation: value})
	}
	return result, nil
}

// fakeSource is a TutorialSource with categories that may have no tutorials
type fakeSource struct {
	categories []string
	tutorials  []domain.TutorialDescriptor
}

func (f *fakeSource) ListCategories(ctx context.Context) ([]string, error) {
	return f.categories, nil
}

func (f *fakeSource) TutorialsIn(ctx context.Context, category string) ([]domain.TutorialDescriptor, error) {
	var result []domain.TutorialDescriptor
	for _, t := range f.tutorials {
		if t.Category == category {
			result = append(result, t)
		}
	}
	return result, nil
}
