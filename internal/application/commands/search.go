package commands

import (
	"context"
	"sort"
	"strings"

	"didact/internal/application"
	"didact/internal/domain"
)

// minQueryLength is the shortest query worth scoring
const minQueryLength = 2

// TutorialMatch is a registered tutorial with its relevance to a query
type TutorialMatch struct {
	domain.TutorialDescriptor
	Score int
}

// SearchTutorialsCommand finds registered tutorials by fuzzy name or category
type SearchTutorialsCommand struct {
	registry *application.TutorialRegistry
	Query    string
}

// NewSearchTutorialsCommand creates a new SearchTutorialsCommand
func NewSearchTutorialsCommand(registry *application.TutorialRegistry, query string) *SearchTutorialsCommand {
	return &SearchTutorialsCommand{
		registry: registry,
		Query:    query,
	}
}

// Execute returns the matching tutorials, best first
func (c *SearchTutorialsCommand) Execute(ctx context.Context) ([]TutorialMatch, error) {
	query := strings.TrimSpace(c.Query)
	if len(query) < minQueryLength {
		return nil, nil
	}
	tutorials, err := c.registry.Tutorials(ctx)
	if err != nil {
		return nil, err
	}
	return RankTutorials(tutorials, query), nil
}

// FuzzyScore rates how well target matches query; 0 means no match.
// A substring hit always outranks a scattered subsequence hit.
func FuzzyScore(target, query string) int {
	target = strings.ToLower(target)
	query = strings.ToLower(query)
	if query == "" {
		return 0
	}

	if idx := strings.Index(target, query); idx >= 0 {
		if idx == 0 {
			return 150
		}
		return 100
	}

	score, qi, prev := 0, 0, -2
	for i := 0; i < len(target) && qi < len(query); i++ {
		if target[i] != query[qi] {
			continue
		}
		score++
		switch {
		case i == 0:
			score += 15
		case prev == i-1:
			score += 10
		case strings.IndexByte(" .-/_", target[i-1]) >= 0:
			score += 10
		}
		prev = i
		qi++
	}
	if qi < len(query) {
		return 0
	}
	// subsequence matches stay below any substring match
	return min(score, 99)
}

// RankTutorials scores tutorials by name, category and source URI and
// returns the matching ones sorted by score, stable on registration order
func RankTutorials(tutorials []domain.TutorialDescriptor, query string) []TutorialMatch {
	matches := make([]TutorialMatch, 0, len(tutorials))
	for _, t := range tutorials {
		best := max(
			FuzzyScore(t.Name, query),
			FuzzyScore(t.Category, query),
			FuzzyScore(t.SourceURI, query)/2,
		)
		if best > 0 {
			matches = append(matches, TutorialMatch{TutorialDescriptor: t, Score: best})
		}
	}
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Score > matches[j].Score
	})
	return matches
}
