package domain

import "testing"

func TestFormatForPath(t *testing.T) {
	tests := map[string]DocumentFormat{
		"intro.didact.md": FormatMarkdown,
		"README.MARKDOWN": FormatMarkdown,
		"guide.adoc":      FormatAsciiDoc,
		"guide.asciidoc":  FormatAsciiDoc,
		"notes.txt":       FormatUnknown,
		"no-extension":    FormatUnknown,
	}
	for path, want := range tests {
		if got := FormatForPath(path); got != want {
			t.Errorf("FormatForPath(%q) = %v, want %v", path, got, want)
		}
	}
}

func TestExpandSnippet(t *testing.T) {
	tests := []struct {
		template string
		want     string
	}{
		{"plain", "plain"},
		{"&text=${1:Requirement}$$${2:Command}", "&text=Requirement$$Command"},
		{"cursor$0here", "cursorhere"},
		{"${1:}", ""},
	}
	for _, tt := range tests {
		if got := ExpandSnippet(tt.template); got != tt.want {
			t.Errorf("ExpandSnippet(%q) = %q, want %q", tt.template, got, tt.want)
		}
	}
}

func TestCompletionCandidate_Apply(t *testing.T) {
	replace := CompletionCandidate{
		InsertTextTemplate: "didact://?commandId=",
		ReplaceRange:       &TextRange{Start: 1, End: 12},
	}
	if got := replace.Apply("(didact://?c", 12); got != "(didact://?commandId=" {
		t.Errorf("Apply with range = %q", got)
	}

	insert := CompletionCandidate{InsertTextTemplate: "[${1:label}]"}
	if got := insert.Apply("ab", 1); got != "a[label]b" {
		t.Errorf("Apply at cursor = %q", got)
	}
}

func TestCommandDescriptor_ParamSnippet(t *testing.T) {
	d, ok := LookupCommand(CommandCLICommandSuccessful)
	if !ok {
		t.Fatal("cliCommandSuccessful missing from catalog")
	}
	if got := d.ParamSnippet(); got != "&text=${1:Requirement}$$${2:Command}" {
		t.Errorf("ParamSnippet = %q", got)
	}
	if got := (CommandDescriptor{ID: "x"}).ParamSnippet(); got != "" {
		t.Errorf("ParamSnippet without params = %q", got)
	}
	if _, ok := LookupCommand("not.cataloged"); ok {
		t.Error("unexpected catalog hit")
	}
}
