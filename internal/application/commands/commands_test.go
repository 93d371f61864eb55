package commands

import (
	"context"
	"errors"
	"reflect"
	"strings"
	"sync"
	"testing"

	"didact/internal/application"
	"didact/internal/domain"
)

type memStore struct {
	mu   sync.Mutex
	data map[string][]byte
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
	if m.data == nil {
		m.data = make(map[string][]byte)
	}
	m.data[key] = value
	return nil
}

type stubCommands struct {
	ids   []string
	calls []string
}

func (s *stubCommands) ListCommands(ctx context.Context) ([]string, error) { return s.ids, nil }

func (s *stubCommands) Invoke(ctx context.Context, id string, args ...any) (any, error) {
	s.calls = append(s.calls, id)
	return nil, nil
}

type recordingNotifier struct{ infos, errors []string }

func (r *recordingNotifier) Info(msg string)  { r.infos = append(r.infos, msg) }
func (r *recordingNotifier) Error(msg string) { r.errors = append(r.errors, msg) }

func newRegistry() *application.TutorialRegistry {
	return application.NewTutorialRegistry(&application.Host{Store: &memStore{}})
}

func TestRegisterTutorialCommand_Validate(t *testing.T) {
	tests := []struct {
		name     string
		tutorial string
		uri      string
		category string
		errMsg   string
	}{
		{name: "valid", tutorial: "Demo", uri: "file:///demo.md", category: "Didact"},
		{name: "empty name", tutorial: "", uri: "file:///demo.md", category: "Didact", errMsg: "name is required"},
		{name: "whitespace uri", tutorial: "Demo", uri: "  ", category: "Didact", errMsg: "source URI is required"},
		{name: "empty category", tutorial: "Demo", uri: "file:///demo.md", category: "", errMsg: "category is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewRegisterTutorialCommand(nil, tt.tutorial, tt.uri, tt.category).Validate()
			if tt.errMsg == "" {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
				return
			}
			var valErr *application.ValidationError
			if !errors.As(err, &valErr) {
				t.Fatalf("expected ValidationError, got %v", err)
			}
			if valErr.Message != tt.errMsg {
				t.Errorf("message = %q, want %q", valErr.Message, tt.errMsg)
			}
		})
	}
}

func TestRegisterAndUnregister(t *testing.T) {
	ctx := context.Background()
	registry := newRegistry()

	result, err := NewRegisterTutorialCommand(registry, "Demo", "file:///demo.md", "Didact").Execute(ctx)
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if result.Message != "Registered tutorial: Demo (Didact)" {
		t.Errorf("message = %q", result.Message)
	}

	_, err = NewRegisterTutorialCommand(registry, "Demo", "file:///other.md", "Didact").Execute(ctx)
	if !errors.Is(err, application.ErrDuplicateEntry) {
		t.Errorf("expected ErrDuplicateEntry, got %v", err)
	}

	if _, err := NewUnregisterTutorialCommand(registry, "Demo", "Didact").Execute(ctx); err != nil {
		t.Fatalf("unregister: %v", err)
	}
	if _, err := NewUnregisterTutorialCommand(registry, "Demo", "Didact").Execute(ctx); !errors.Is(err, application.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestListCommands(t *testing.T) {
	ctx := context.Background()
	registry := newRegistry()
	_ = registry.Register(ctx, "a", "u1", "One")
	_ = registry.Register(ctx, "b", "u2", "Two")
	_ = registry.Register(ctx, "c", "u3", "One")

	categories, err := NewListCategoriesCommand(registry).Execute(ctx)
	if err != nil || !reflect.DeepEqual(categories, []string{"One", "Two"}) {
		t.Errorf("categories = %v, %v", categories, err)
	}

	one, _ := NewListTutorialsCommand(registry, "One").Execute(ctx)
	all, _ := NewListTutorialsCommand(registry, "").Execute(ctx)
	if len(one) != 2 || len(all) != 3 {
		t.Errorf("len(one)=%d len(all)=%d", len(one), len(all))
	}

	if _, err := NewUnregisterAllCommand(registry).Execute(ctx); err != nil {
		t.Fatal(err)
	}
	all, _ = NewListTutorialsCommand(registry, "").Execute(ctx)
	if len(all) != 0 {
		t.Errorf("expected empty registry, got %v", all)
	}
}

func TestSeedDefaultsCommand_SkipsExisting(t *testing.T) {
	ctx := context.Background()
	registry := newRegistry()

	added, err := NewSeedDefaultsCommand(registry, "/opt/didact").Execute(ctx)
	if err != nil {
		t.Fatalf("seed: %v", err)
	}
	if len(added) != len(DefaultTutorials) {
		t.Errorf("added = %v", added)
	}
	uri, ok, _ := registry.ResolveURI(ctx, DefaultTutorials[0].Name, DefaultCategory)
	if !ok || !strings.HasPrefix(uri, "file://") || !strings.HasSuffix(uri, DefaultTutorials[0].RelativePath) {
		t.Errorf("seeded uri = %q", uri)
	}

	added, err = NewSeedDefaultsCommand(registry, "/opt/didact").Execute(ctx)
	if err != nil || len(added) != 0 {
		t.Errorf("second seed added %v, %v", added, err)
	}
}

func TestRunLinkCommand(t *testing.T) {
	commands := &stubCommands{ids: []string{"test"}}
	notifier := &recordingNotifier{}
	handler := application.NewLinkHandler(&application.Host{Commands: commands, Notifier: notifier})

	if _, err := NewRunLinkCommand(handler, "https://example.com").Execute(context.Background()); err == nil {
		t.Error("expected validation error for a non-didact link")
	}

	outcome, err := NewRunLinkCommand(handler, "didact://?commandId=test").Execute(context.Background())
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if !outcome.Succeeded() || !reflect.DeepEqual(commands.calls, []string{"test"}) {
		t.Errorf("outcome = %+v, calls = %v", outcome, commands.calls)
	}
}

func TestParseLinkCommand(t *testing.T) {
	inv, err := NewParseLinkCommand("  didact://?commandId=c&text=a$$b ").Execute(context.Background())
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if inv.CommandID != "c" || !reflect.DeepEqual(inv.Text, []string{"a", "b"}) {
		t.Errorf("inv = %+v", inv)
	}

	_, err = NewParseLinkCommand("didact://?text=a").Execute(context.Background())
	if !errors.Is(err, domain.ErrMissingCommandID) {
		t.Errorf("expected ErrMissingCommandID, got %v", err)
	}
}

func TestCompleteCommand(t *testing.T) {
	engine := application.NewCompletionEngine(&application.Host{Commands: &stubCommands{}})

	if _, err := NewCompleteCommand(engine, "notes.txt", "(", -1).Execute(context.Background()); err == nil {
		t.Error("expected error for an unsupported document type")
	}

	result, err := NewCompleteCommand(engine, "demo.didact.md", "(didact://?c", -1).Execute(context.Background())
	if err != nil {
		t.Fatalf("complete: %v", err)
	}
	if result.Format != domain.FormatMarkdown || len(result.Candidates) != 1 {
		t.Fatalf("result = %+v", result)
	}
	if got := result.Candidates[0].Apply("(didact://?c", 12); got != "(didact://?commandId=" {
		t.Errorf("applied = %q", got)
	}
}
