package application

import (
	"context"
	"reflect"
	"strings"
	"testing"

	"didact/internal/domain"
)

func TestCompletionEngine_LinkOpening(t *testing.T) {
	engine := NewCompletionEngine(&Host{Commands: newFakeCommands("test")})

	tests := []struct {
		name   string
		format domain.DocumentFormat
		line   string
		want   string
	}{
		{"markdown partial scheme", domain.FormatMarkdown, "(didact://?c", "(didact://?commandId="},
		{"markdown bare paren", domain.FormatMarkdown, "[Run](", "[Run](didact://?commandId="},
		{"markdown partial protocol", domain.FormatMarkdown, "see [x](didact:", "see [x](didact://?commandId="},
		{"asciidoc link macro", domain.FormatAsciiDoc, "link:didact://", "link:didact://?commandId="},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			candidates, err := engine.Complete(context.Background(), tt.format, tt.line, len(tt.line))
			if err != nil {
				t.Fatalf("Complete: %v", err)
			}
			if len(candidates) != 1 {
				t.Fatalf("expected exactly one candidate, got %d", len(candidates))
			}
			c := candidates[0]
			if !c.RetriggerSuggest {
				t.Error("expected the suggestion list to be re-triggered")
			}
			if got := c.Apply(tt.line, len(tt.line)); got != tt.want {
				t.Errorf("applied line = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestCompletionEngine_CommandIDs(t *testing.T) {
	engine := NewCompletionEngine(&Host{Commands: newFakeCommands(
		domain.CommandRequirementCheck,
		"workbench.action.files.save",
		domain.CommandSendNamedTerminalString,
		"Didact.upper",
	)})

	line := "[check](didact://?commandId=didact."
	candidates, err := engine.Complete(context.Background(), domain.FormatMarkdown, line, len(line))
	if err != nil {
		t.Fatalf("Complete: %v", err)
	}

	var ids []string
	for _, c := range candidates {
		ids = append(ids, c.Label)
	}
	want := []string{domain.CommandRequirementCheck, domain.CommandSendNamedTerminalString}
	if !reflect.DeepEqual(ids, want) {
		t.Fatalf("ids = %v, want %v", ids, want)
	}

	check := candidates[0]
	if check.DocumentationText == "" {
		t.Error("cataloged command should carry a description")
	}
	if !strings.HasPrefix(check.InsertTextTemplate, domain.CommandRequirementCheck+"&text=${1:") {
		t.Errorf("template = %q", check.InsertTextTemplate)
	}
	applied := check.Apply(line, len(line))
	if !strings.HasPrefix(applied, "[check](didact://?commandId="+domain.CommandRequirementCheck+"&text=") {
		t.Errorf("applied line = %q", applied)
	}
}

func TestCompletionEngine_UncatalogedCommandHasPlainTemplate(t *testing.T) {
	engine := NewCompletionEngine(&Host{Commands: newFakeCommands("workbench.action.files.save")})

	line := "(didact://?commandId=save"
	candidates, err := engine.Complete(context.Background(), domain.FormatMarkdown, line, len(line))
	if err != nil {
		t.Fatalf("Complete: %v", err)
	}
	if len(candidates) != 1 {
		t.Fatalf("expected one candidate, got %d", len(candidates))
	}
	if candidates[0].InsertTextTemplate != "workbench.action.files.save" || candidates[0].DocumentationText != "" {
		t.Errorf("candidate = %+v", candidates[0])
	}
}

func TestCompletionEngine_Snippets(t *testing.T) {
	engine := NewCompletionEngine(&Host{Commands: newFakeCommands()})

	tests := []struct {
		name   string
		format domain.DocumentFormat
		line   string
		want   int
	}{
		{"markdown plain text", domain.FormatMarkdown, "Some text ", len(domain.MarkdownSnippets)},
		{"asciidoc plain text", domain.FormatAsciiDoc, "Some text ", len(domain.AsciiDocSnippets)},
		{"after a closed link", domain.FormatMarkdown, "[a](didact://?commandId=x) then ", len(domain.MarkdownSnippets)},
		{"inside an open link", domain.FormatMarkdown, "[a](didact://?commandId=x&text=abc", 0},
		{"unknown format", domain.FormatUnknown, "Some text ", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			candidates, err := engine.Complete(context.Background(), tt.format, tt.line, len(tt.line))
			if err != nil {
				t.Fatalf("Complete: %v", err)
			}
			if len(candidates) != tt.want {
				t.Errorf("got %d candidates, want %d", len(candidates), tt.want)
			}
		})
	}

	if len(domain.MarkdownSnippets) != 4 || len(domain.AsciiDocSnippets) != 6 {
		t.Errorf("snippet catalogs: markdown=%d asciidoc=%d", len(domain.MarkdownSnippets), len(domain.AsciiDocSnippets))
	}
}

func TestCompletionEngine_ProvideCompletionItems(t *testing.T) {
	engine := NewCompletionEngine(&Host{Commands: newFakeCommands("test")})
	doc := TextDocument{FileName: "tutorial.didact.md", Text: "# Title\r\n(didact://?c\r\n"}

	candidates, err := engine.ProvideCompletionItems(context.Background(), doc, Position{Line: 1, Character: 12})
	if err != nil {
		t.Fatalf("ProvideCompletionItems: %v", err)
	}
	if len(candidates) != 1 || candidates[0].Label != "didact://?commandId=" {
		t.Errorf("candidates = %+v", candidates)
	}

	if _, err := engine.ProvideCompletionItems(context.Background(), doc, Position{Line: 9}); err == nil {
		t.Error("expected error for a line out of range")
	}
}
