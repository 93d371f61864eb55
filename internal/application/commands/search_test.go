package commands

import (
	"context"
	"testing"

	"didact/internal/domain"
)

func TestFuzzyScore(t *testing.T) {
	tests := []struct {
		name      string
		target    string
		query     string
		wantScore int
		wantMin   int // relative comparison when the exact value does not matter
	}{
		{
			name:      "exact match",
			target:    "Quarkus",
			query:     "Quarkus",
			wantScore: 150,
		},
		{
			name:      "prefix match",
			target:    "Quarkus Getting Started",
			query:     "quarkus",
			wantScore: 150,
		},
		{
			name:      "substring match",
			target:    "Intro to Quarkus",
			query:     "Quarkus",
			wantScore: 100,
		},
		{
			name:    "subsequence match",
			target:  "Didact Demo",
			query:   "ddemo",
			wantMin: 1,
		},
		{
			name:      "no match",
			target:    "Didact Demo",
			query:     "xyz",
			wantScore: 0,
		},
		{
			name:      "empty query",
			target:    "Didact Demo",
			query:     "",
			wantScore: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			score := FuzzyScore(tt.target, tt.query)
			switch {
			case tt.wantMin > 0:
				if score < tt.wantMin {
					t.Errorf("expected score >= %d, got %d", tt.wantMin, score)
				}
			default:
				if score != tt.wantScore {
					t.Errorf("expected score %d, got %d", tt.wantScore, score)
				}
			}
		})
	}
}

func TestFuzzyScore_SubstringBeatsSubsequence(t *testing.T) {
	contains := FuzzyScore("my demo", "demo")
	scattered := FuzzyScore("d.e.m.o", "demo")
	if scattered == 0 {
		t.Fatal("expected a subsequence match")
	}
	if contains <= scattered {
		t.Errorf("substring should outrank subsequence: %d <= %d", contains, scattered)
	}
}

func TestRankTutorials(t *testing.T) {
	tutorials := []domain.TutorialDescriptor{
		{Name: "Random", Category: "Other", SourceURI: "file:///random.md"},
		{Name: "Intro to Camel", Category: "Integration", SourceURI: "file:///camel.md"},
		{Name: "Camel K", Category: "Integration", SourceURI: "file:///camelk.md"},
		{Name: "Cooking", Category: "Other", SourceURI: "file:///cooking.md"},
	}

	ranked := RankTutorials(tutorials, "camel")
	if len(ranked) != 2 {
		t.Fatalf("expected 2 matches, got %d: %+v", len(ranked), ranked)
	}
	if ranked[0].Name != "Camel K" || ranked[1].Name != "Intro to Camel" {
		t.Errorf("unexpected order: %s, %s", ranked[0].Name, ranked[1].Name)
	}

	byCategory := RankTutorials(tutorials, "integration")
	if len(byCategory) != 2 || byCategory[0].Name != "Intro to Camel" {
		t.Errorf("category matches should keep registration order: %+v", byCategory)
	}
}

func TestSearchTutorialsCommand_ShortQuery(t *testing.T) {
	matches, err := NewSearchTutorialsCommand(nil, " a ").Execute(context.Background())
	if err != nil || matches != nil {
		t.Errorf("short query should return nothing, got %v, %v", matches, err)
	}
}
