package application

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"didact/internal/domain"
	"didact/internal/ports"
)

// maxConcurrentScans bounds document scans when a category is expanded
const maxConcurrentScans = 4

// TutorialSource is the read side of the tutorial registry the outline is built from
type TutorialSource interface {
	ListCategories(ctx context.Context) ([]string, error)
	TutorialsIn(ctx context.Context, category string) ([]domain.TutorialDescriptor, error)
}

// OutlineProvider serves the category -> tutorial -> heading tree to the UI
// through the lazy expansion protocol (Children, Parent, TreeItem).
//
// Only the root categories are kept between requests; tutorial and heading
// nodes are computed on every expansion.
type OutlineProvider struct {
	source   TutorialSource
	fetcher  ports.DocumentFetcher
	renderer ports.DocumentRenderer
	scanner  ports.HeadingScanner
	logger   *zap.Logger

	mu        sync.Mutex
	roots     []domain.OutlineNode
	stale     bool
	listeners []func()
}

// NewOutlineProvider creates a provider over source. When source is a
// *TutorialRegistry the provider invalidates itself on every registry mutation.
func NewOutlineProvider(h *Host, source TutorialSource) *OutlineProvider {
	p := &OutlineProvider{
		source:   source,
		fetcher:  h.Fetcher,
		renderer: h.Renderer,
		scanner:  h.Scanner,
		logger:   h.logger(),
		stale:    true,
	}
	if registry, ok := source.(*TutorialRegistry); ok {
		registry.OnChange(p.Invalidate)
	}
	return p
}

// OnDidChange registers fn to run whenever the tree must be redrawn
func (p *OutlineProvider) OnDidChange(fn func()) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.listeners = append(p.listeners, fn)
}

// Invalidate discards the current node set; categories are regenerated on
// the next root request
func (p *OutlineProvider) Invalidate() {
	p.mu.Lock()
	p.roots = nil
	p.stale = true
	p.mu.Unlock()
	p.fire()
}

// Refresh rebuilds the root categories from the registry and notifies listeners
func (p *OutlineProvider) Refresh(ctx context.Context) error {
	roots, err := p.loadRoots(ctx)
	if err != nil {
		return err
	}
	p.mu.Lock()
	p.roots = roots
	p.stale = false
	p.mu.Unlock()
	p.fire()
	return nil
}

// Children returns the children of parent; nil requests the root categories
func (p *OutlineProvider) Children(ctx context.Context, parent *domain.OutlineNode) ([]domain.OutlineNode, error) {
	if parent == nil {
		return p.rootNodes(ctx)
	}
	switch parent.Kind {
	case domain.NodeCategory:
		return p.tutorialNodes(ctx, parent.Label)
	case domain.NodeTutorial:
		return p.headingNodes(ctx, parent.Category, parent.SourceURI)
	default:
		return nil, nil
	}
}

// Parent returns the parent of node, or nil for root categories
func (p *OutlineProvider) Parent(ctx context.Context, node domain.OutlineNode) (*domain.OutlineNode, error) {
	switch node.Kind {
	case domain.NodeTutorial:
		parent := domain.NewCategoryNode(node.Category)
		return &parent, nil
	case domain.NodeHeading:
		descriptors, err := p.source.TutorialsIn(ctx, node.Category)
		if err != nil {
			return nil, err
		}
		for _, d := range descriptors {
			if d.SourceURI == node.SourceURI {
				parent := p.tutorialNode(ctx, d)
				return &parent, nil
			}
		}
		return nil, nil
	default:
		return nil, nil
	}
}

// TreeItem returns the presentation of node
func (p *OutlineProvider) TreeItem(node domain.OutlineNode) domain.TreeItem {
	return node.TreeItem()
}

func (p *OutlineProvider) rootNodes(ctx context.Context) ([]domain.OutlineNode, error) {
	p.mu.Lock()
	if !p.stale {
		roots := append([]domain.OutlineNode(nil), p.roots...)
		p.mu.Unlock()
		return roots, nil
	}
	p.mu.Unlock()

	roots, err := p.loadRoots(ctx)
	if err != nil {
		return nil, err
	}
	p.mu.Lock()
	p.roots = roots
	p.stale = false
	p.mu.Unlock()
	return append([]domain.OutlineNode(nil), roots...), nil
}

func (p *OutlineProvider) loadRoots(ctx context.Context) ([]domain.OutlineNode, error) {
	categories, err := p.source.ListCategories(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	nodes := make([]domain.OutlineNode, 0, len(categories))
	for _, c := range categories {
		nodes = append(nodes, domain.NewCategoryNode(c))
	}
	return domain.DedupByLabel(nodes), nil
}

func (p *OutlineProvider) tutorialNodes(ctx context.Context, category string) ([]domain.OutlineNode, error) {
	descriptors, err := p.source.TutorialsIn(ctx, category)
	if err != nil {
		return nil, fmt.Errorf("failed to list tutorials in %q: %w", category, err)
	}

	nodes := make([]domain.OutlineNode, len(descriptors))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentScans)
	for i, d := range descriptors {
		g.Go(func() error {
			nodes[i] = p.tutorialNode(gctx, d)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return domain.DedupByLabel(nodes), nil
}

// tutorialNode builds the node for d, annotated with the number of timed
// headings when the document can be scanned and has at least one
func (p *OutlineProvider) tutorialNode(ctx context.Context, d domain.TutorialDescriptor) domain.OutlineNode {
	node := domain.OutlineNode{
		Kind:      domain.NodeTutorial,
		Category:  d.Category,
		Label:     d.Name,
		SourceURI: d.SourceURI,
	}
	headings, err := p.scanHeadings(ctx, d.Category, d.SourceURI)
	if err != nil {
		p.logger.Warn("cannot scan tutorial",
			zap.String("tutorial", d.Name),
			zap.String("uri", d.SourceURI),
			zap.Error(err))
		return node
	}
	if len(headings) > 0 {
		node.EstimatedMinutes = float64(len(headings))
		node.HasEstimate = true
	}
	return node
}

func (p *OutlineProvider) headingNodes(ctx context.Context, category, sourceURI string) ([]domain.OutlineNode, error) {
	headings, err := p.scanHeadings(ctx, category, sourceURI)
	if err != nil {
		return nil, err
	}
	return domain.DedupByLabel(headings), nil
}

// scanHeadings fetches, renders and scans a tutorial. Headings whose time
// annotation is not a number are logged and dropped.
func (p *OutlineProvider) scanHeadings(ctx context.Context, category, sourceURI string) ([]domain.OutlineNode, error) {
	if p.fetcher == nil || p.renderer == nil || p.scanner == nil {
		return nil, fmt.Errorf("document pipeline not configured")
	}
	doc, err := p.fetcher.Fetch(ctx, sourceURI)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s: %w", sourceURI, err)
	}
	html, err := p.renderer.Render(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("failed to render %s: %w", sourceURI, err)
	}
	annotations, err := p.scanner.FindHeadingsWithTimeAnnotation(html)
	if err != nil {
		return nil, fmt.Errorf("failed to scan %s: %w", sourceURI, err)
	}

	var nodes []domain.OutlineNode
	for _, a := range annotations {
		minutes, err := strconv.ParseFloat(strings.TrimSpace(a.RawAnnotation), 64)
		if err != nil {
			p.logger.Warn("dropping heading with invalid time annotation",
				zap.String("heading", a.Label),
				zap.String("time", a.RawAnnotation),
				zap.String("uri", sourceURI))
			continue
		}
		nodes = append(nodes, domain.OutlineNode{
			Kind:             domain.NodeHeading,
			Category:         category,
			Label:            a.Label,
			SourceURI:        sourceURI,
			EstimatedMinutes: minutes,
			HasEstimate:      true,
		})
	}
	return nodes, nil
}

func (p *OutlineProvider) fire() {
	p.mu.Lock()
	listeners := append([]func(){}, p.listeners...)
	p.mu.Unlock()
	for _, fn := range listeners {
		fn()
	}
}
