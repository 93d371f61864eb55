package domain

import (
	"fmt"
	"strconv"
)

// NodeKind represents the level of an outline node
type NodeKind int

const (
	NodeCategory NodeKind = iota
	NodeTutorial
	NodeHeading
)

func (k NodeKind) String() string {
	switch k {
	case NodeCategory:
		return "category"
	case NodeTutorial:
		return "tutorial"
	case NodeHeading:
		return "heading"
	default:
		return "unknown"
	}
}

// OutlineNode is one node of the tutorial outline.
// Nodes are view values rebuilt on every refresh; they are compared by Key,
// never by identity.
//
// For tutorial nodes EstimatedMinutes is the number of time-annotated
// headings in the document; for heading nodes it is the heading's own annotation.
type OutlineNode struct {
	Kind             NodeKind
	Category         string
	Label            string
	SourceURI        string
	EstimatedMinutes float64
	HasEstimate      bool
}

// NewCategoryNode creates a root-level category node
func NewCategoryNode(category string) OutlineNode {
	return OutlineNode{Kind: NodeCategory, Category: category, Label: category}
}

// Key returns the composite key identifying the node across rebuilds
func (n OutlineNode) Key() string {
	switch n.Kind {
	case NodeCategory:
		return "category:" + n.Label
	case NodeTutorial:
		return "tutorial:" + n.Category + "\x00" + n.SourceURI
	default:
		return "heading:" + n.Category + "\x00" + n.SourceURI + "\x00" + n.Label
	}
}

// IsLeaf reports whether the node can never have children
func (n OutlineNode) IsLeaf() bool {
	return n.Kind == NodeHeading
}

// DurationLabel formats the estimate for display, or "" when there is none
func (n OutlineNode) DurationLabel() string {
	if !n.HasEstimate {
		return ""
	}
	minutes := strconv.FormatFloat(n.EstimatedMinutes, 'f', -1, 64)
	if n.Kind == NodeHeading {
		return fmt.Sprintf("(~%s mins)", minutes)
	}
	return fmt.Sprintf("~%s mins", minutes)
}

// TreeItem is the presentation of a node handed to the UI layer
type TreeItem struct {
	Label       string
	Description string
	Tooltip     string
	Collapsible bool
	ContextKey  string
}

// TreeItem builds the presentation of the node
func (n OutlineNode) TreeItem() TreeItem {
	item := TreeItem{
		Label:       n.Label,
		Description: n.DurationLabel(),
		Collapsible: !n.IsLeaf(),
		ContextKey:  n.Kind.String(),
	}
	if n.SourceURI != "" {
		item.Tooltip = n.SourceURI
	}
	return item
}

// DedupByLabel drops nodes whose label was already seen, keeping order
func DedupByLabel(nodes []OutlineNode) []OutlineNode {
	seen := make(map[string]bool, len(nodes))
	result := make([]OutlineNode, 0, len(nodes))
	for _, n := range nodes {
		if seen[n.Label] {
			continue
		}
		seen[n.Label] = true
		result = append(result, n)
	}
	return result
}
