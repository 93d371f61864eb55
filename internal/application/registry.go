package application

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"didact/internal/domain"
	"didact/internal/ports"
)

// RegistryKey is the store key holding the registered tutorials
const RegistryKey = "didact.registry"

// TutorialRegistry is the persisted (category, name) -> source URI mapping.
// Mutations are serialized through one mutex so read-modify-write cycles
// never interleave within the process.
type TutorialRegistry struct {
	store ports.PersistentStore

	mu        sync.Mutex
	listeners []func()
}

// NewTutorialRegistry creates a registry persisted in the host store
func NewTutorialRegistry(h *Host) *TutorialRegistry {
	return &TutorialRegistry{store: h.Store}
}

// OnChange registers fn to run after every committed mutation
func (r *TutorialRegistry) OnChange(fn func()) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.listeners = append(r.listeners, fn)
}

// Register adds a tutorial. An existing (name, category) pair is rejected
// with a *DuplicateEntryError, never overwritten.
func (r *TutorialRegistry) Register(ctx context.Context, name, sourceURI, category string) error {
	r.mu.Lock()
	tutorials, err := r.load(ctx)
	if err != nil {
		r.mu.Unlock()
		return err
	}
	for _, t := range tutorials {
		if t.Matches(name, category) {
			r.mu.Unlock()
			return &DuplicateEntryError{Name: name, Category: category}
		}
	}
	tutorials = append(tutorials, domain.TutorialDescriptor{
		ID:        uuid.NewString(),
		Category:  category,
		Name:      name,
		SourceURI: sourceURI,
	})
	err = r.save(ctx, tutorials)
	r.mu.Unlock()

	if err != nil {
		return err
	}
	r.notify()
	return nil
}

// Unregister removes one tutorial. Missing entries return ErrNotFound.
func (r *TutorialRegistry) Unregister(ctx context.Context, name, category string) error {
	r.mu.Lock()
	tutorials, err := r.load(ctx)
	if err != nil {
		r.mu.Unlock()
		return err
	}
	kept := tutorials[:0]
	found := false
	for _, t := range tutorials {
		if t.Matches(name, category) {
			found = true
			continue
		}
		kept = append(kept, t)
	}
	if !found {
		r.mu.Unlock()
		return fmt.Errorf("tutorial %q in category %q: %w", name, category, ErrNotFound)
	}
	err = r.save(ctx, kept)
	r.mu.Unlock()

	if err != nil {
		return err
	}
	r.notify()
	return nil
}

// UnregisterAll clears the entire registry
func (r *TutorialRegistry) UnregisterAll(ctx context.Context) error {
	r.mu.Lock()
	err := r.save(ctx, []domain.TutorialDescriptor{})
	r.mu.Unlock()

	if err != nil {
		return err
	}
	r.notify()
	return nil
}

// Tutorials returns every descriptor in registration order
func (r *TutorialRegistry) Tutorials(ctx context.Context) ([]domain.TutorialDescriptor, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.load(ctx)
}

// ListCategories returns the distinct categories in first-registration order
func (r *TutorialRegistry) ListCategories(ctx context.Context) ([]string, error) {
	tutorials, err := r.Tutorials(ctx)
	if err != nil {
		return nil, err
	}
	seen := make(map[string]bool)
	var categories []string
	for _, t := range tutorials {
		if seen[t.Category] {
			continue
		}
		seen[t.Category] = true
		categories = append(categories, t.Category)
	}
	return categories, nil
}

// ListTutorials returns the names registered under category, in registration order
func (r *TutorialRegistry) ListTutorials(ctx context.Context, category string) ([]string, error) {
	descriptors, err := r.TutorialsIn(ctx, category)
	if err != nil {
		return nil, err
	}
	names := make([]string, len(descriptors))
	for i, t := range descriptors {
		names[i] = t.Name
	}
	return names, nil
}

// TutorialsIn returns the descriptors registered under category
func (r *TutorialRegistry) TutorialsIn(ctx context.Context, category string) ([]domain.TutorialDescriptor, error) {
	tutorials, err := r.Tutorials(ctx)
	if err != nil {
		return nil, err
	}
	var result []domain.TutorialDescriptor
	for _, t := range tutorials {
		if t.Category == category {
			result = append(result, t)
		}
	}
	return result, nil
}

// ResolveURI looks up the source URI of an exact (name, category) match
func (r *TutorialRegistry) ResolveURI(ctx context.Context, name, category string) (string, bool, error) {
	tutorials, err := r.Tutorials(ctx)
	if err != nil {
		return "", false, err
	}
	for _, t := range tutorials {
		if t.Matches(name, category) {
			return t.SourceURI, true, nil
		}
	}
	return "", false, nil
}

func (r *TutorialRegistry) load(ctx context.Context) ([]domain.TutorialDescriptor, error) {
	if r.store == nil {
		return nil, fmt.Errorf("no persistent store")
	}
	raw, ok, err := r.store.Get(ctx, RegistryKey)
	if err != nil {
		return nil, fmt.Errorf("failed to read registry: %w", err)
	}
	if !ok || len(raw) == 0 {
		return nil, nil
	}
	var tutorials []domain.TutorialDescriptor
	if err := json.Unmarshal(raw, &tutorials); err != nil {
		return nil, fmt.Errorf("failed to decode registry: %w", err)
	}
	return tutorials, nil
}

func (r *TutorialRegistry) save(ctx context.Context, tutorials []domain.TutorialDescriptor) error {
	if r.store == nil {
		return fmt.Errorf("no persistent store")
	}
	raw, err := json.Marshal(tutorials)
	if err != nil {
		return fmt.Errorf("failed to encode registry: %w", err)
	}
	if err := r.store.Set(ctx, RegistryKey, raw); err != nil {
		return fmt.Errorf("failed to write registry: %w", err)
	}
	return nil
}

func (r *TutorialRegistry) notify() {
	r.mu.Lock()
	listeners := append([]func(){}, r.listeners...)
	r.mu.Unlock()
	for _, fn := range listeners {
		fn()
	}
}
