package views

import (
	"github.com/charmbracelet/bubbles/paginator"
	"github.com/charmbracelet/lipgloss"

	"didact/internal/adapters/tui/styles"
)

// Paginator keeps a cursor over a result list and the page that holds it
type Paginator struct {
	pages  paginator.Model
	cursor int
	total  int
}

// NewPaginator creates a paginator showing pageSize items per page
func NewPaginator(pageSize int) *Paginator {
	if pageSize <= 0 {
		pageSize = 10
	}
	pages := paginator.New()
	pages.Type = paginator.Dots
	pages.PerPage = pageSize
	pages.ActiveDot = lipgloss.NewStyle().Foreground(styles.Accent).Render("•")
	pages.InactiveDot = lipgloss.NewStyle().Foreground(styles.Muted).Render("•")
	return &Paginator{pages: pages}
}

// SetTotal sets the number of items, keeping the cursor in range
func (p *Paginator) SetTotal(total int) {
	p.total = total
	if total < 1 {
		p.pages.TotalPages = 1
	} else {
		p.pages.SetTotalPages(total)
	}
	p.cursor = max(0, min(p.cursor, total-1))
	p.follow()
}

// Cursor returns the absolute index under the cursor
func (p *Paginator) Cursor() int {
	return p.cursor
}

// CursorUp moves the cursor up by one
func (p *Paginator) CursorUp() bool {
	if p.cursor == 0 {
		return false
	}
	p.cursor--
	p.follow()
	return true
}

// CursorDown moves the cursor down by one
func (p *Paginator) CursorDown() bool {
	if p.cursor >= p.total-1 {
		return false
	}
	p.cursor++
	p.follow()
	return true
}

// VisibleRange returns the bounds of the current page
func (p *Paginator) VisibleRange() (start, end int) {
	return p.pages.GetSliceBounds(p.total)
}

// TotalPages returns the number of pages, at least one
func (p *Paginator) TotalPages() int {
	return p.pages.TotalPages
}

// CurrentPage returns the current page number (1-based)
func (p *Paginator) CurrentPage() int {
	return p.pages.Page + 1
}

// NextPage moves to the first item of the next page
func (p *Paginator) NextPage() bool {
	if p.pages.OnLastPage() {
		return false
	}
	p.pages.NextPage()
	p.cursor = p.pages.Page * p.pages.PerPage
	return true
}

// PrevPage moves to the first item of the previous page
func (p *Paginator) PrevPage() bool {
	if p.pages.OnFirstPage() {
		return false
	}
	p.pages.PrevPage()
	p.cursor = p.pages.Page * p.pages.PerPage
	return true
}

// Reset clears the cursor, page and item count
func (p *Paginator) Reset() {
	p.cursor = 0
	p.total = 0
	p.pages.Page = 0
	p.pages.TotalPages = 1
}

// View renders the page dots; empty when everything fits on one page
func (p *Paginator) View() string {
	if p.pages.TotalPages <= 1 {
		return ""
	}
	return p.pages.View()
}

func (p *Paginator) follow() {
	p.pages.Page = p.cursor / p.pages.PerPage
}
