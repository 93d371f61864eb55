package application

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"didact/internal/domain"
	"didact/internal/ports"
)

// commandPrefixTemplate is inserted when the author starts typing a link
const commandPrefixTemplate = domain.LinkPrefix + domain.ParamCommandID + "="

var commandIDPattern = regexp.MustCompile(domain.ParamCommandID + `=([^&\s()\[\]]*)$`)

// formatProfile is the per-format capability table of the completion engine
type formatProfile struct {
	linkOpener  string // text that opens a link target
	linkClosers string // characters that end a link target
	snippets    []domain.AuthoringSnippet
}

var formatProfiles = map[domain.DocumentFormat]formatProfile{
	domain.FormatMarkdown: {
		linkOpener:  "(",
		linkClosers: ") \t",
		snippets:    domain.MarkdownSnippets,
	},
	domain.FormatAsciiDoc: {
		linkOpener:  "link:",
		linkClosers: "[ \t",
		snippets:    domain.AsciiDocSnippets,
	},
}

// TextDocument is the editor buffer completion runs against
type TextDocument struct {
	FileName string
	Text     string
}

// Position is a zero-based line and byte offset within that line
type Position struct {
	Line      int
	Character int
}

// CompletionEngine proposes link and command-id completions while authoring
type CompletionEngine struct {
	commands ports.CommandRegistry
}

// NewCompletionEngine creates an engine validating against the host registry
func NewCompletionEngine(h *Host) *CompletionEngine {
	return &CompletionEngine{commands: h.Commands}
}

// ProvideCompletionItems completes at pos in doc; the format follows the file name
func (e *CompletionEngine) ProvideCompletionItems(ctx context.Context, doc TextDocument, pos Position) ([]domain.CompletionCandidate, error) {
	lines := strings.Split(doc.Text, "\n")
	if pos.Line < 0 || pos.Line >= len(lines) {
		return nil, fmt.Errorf("line %d out of range", pos.Line)
	}
	line := strings.TrimSuffix(lines[pos.Line], "\r")
	return e.Complete(ctx, domain.FormatForPath(doc.FileName), line, pos.Character)
}

// Complete returns the candidates for the cursor position in line.
// The matchers are tried in order: link opening, command id, outside any link.
func (e *CompletionEngine) Complete(ctx context.Context, format domain.DocumentFormat, line string, cursor int) ([]domain.CompletionCandidate, error) {
	profile, ok := formatProfiles[format]
	if !ok {
		return nil, nil
	}
	if cursor < 0 || cursor > len(line) {
		cursor = len(line)
	}
	prefix := line[:cursor]

	if candidate, ok := matchLinkOpening(profile, line, prefix); ok {
		return []domain.CompletionCandidate{candidate}, nil
	}
	if m := commandIDPattern.FindStringSubmatchIndex(prefix); m != nil {
		return e.commandCandidates(ctx, prefix[m[2]:m[3]], m[2], cursor)
	}
	if outsideLink(profile, prefix) {
		return snippetCandidates(profile), nil
	}
	return nil, nil
}

// matchLinkOpening detects an opener followed by a partial "didact://?commandId="
// on a line that has no commandId= yet
func matchLinkOpening(profile formatProfile, line, prefix string) (domain.CompletionCandidate, bool) {
	if strings.Contains(line, domain.ParamCommandID+"=") {
		return domain.CompletionCandidate{}, false
	}
	idx := strings.LastIndex(prefix, profile.linkOpener)
	if idx < 0 {
		return domain.CompletionCandidate{}, false
	}
	start := idx + len(profile.linkOpener)
	fragment := prefix[start:]
	if !strings.HasPrefix(commandPrefixTemplate, fragment) {
		return domain.CompletionCandidate{}, false
	}
	return domain.CompletionCandidate{
		Label:              commandPrefixTemplate,
		InsertTextTemplate: commandPrefixTemplate,
		DocumentationText:  "Start a Didact link that runs a command.",
		ReplaceRange:       &domain.TextRange{Start: start, End: len(prefix)},
		RetriggerSuggest:   true,
	}, true
}

// commandCandidates offers every registered command containing partial
func (e *CompletionEngine) commandCandidates(ctx context.Context, partial string, start, end int) ([]domain.CompletionCandidate, error) {
	if e.commands == nil {
		return nil, nil
	}
	ids, err := e.commands.ListCommands(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list commands: %w", err)
	}

	var candidates []domain.CompletionCandidate
	for _, id := range ids {
		if !strings.Contains(id, partial) {
			continue
		}
		candidate := domain.CompletionCandidate{
			Label:              id,
			InsertTextTemplate: id,
			ReplaceRange:       &domain.TextRange{Start: start, End: end},
		}
		if d, ok := domain.LookupCommand(id); ok {
			candidate.DocumentationText = d.Description
			candidate.InsertTextTemplate = id + d.ParamSnippet()
		}
		candidates = append(candidates, candidate)
	}
	return candidates, nil
}

// outsideLink reports whether the cursor is not inside an unterminated didact link
func outsideLink(profile formatProfile, prefix string) bool {
	idx := strings.LastIndex(prefix, "didact:")
	if idx < 0 {
		return true
	}
	return strings.ContainsAny(prefix[idx:], profile.linkClosers)
}

func snippetCandidates(profile formatProfile) []domain.CompletionCandidate {
	candidates := make([]domain.CompletionCandidate, 0, len(profile.snippets))
	for _, s := range profile.snippets {
		candidates = append(candidates, domain.CompletionCandidate{
			Label:              s.Label,
			InsertTextTemplate: s.Template,
			DocumentationText:  s.Documentation,
		})
	}
	return candidates
}
