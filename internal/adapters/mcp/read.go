package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"didact/internal/application"
	"didact/internal/application/commands"
	"didact/internal/domain"
)

// RegisterReadTools adds the tools that never change the registry or run commands.
func RegisterReadTools(s *server.MCPServer, registry *application.TutorialRegistry, outline *application.OutlineProvider, engine *application.CompletionEngine) {
	s.AddTool(parseLinkTool(), parseLinkHandler())
	s.AddTool(listTutorialsTool(), listTutorialsHandler(registry))
	s.AddTool(searchTutorialsTool(), searchTutorialsHandler(registry))
	s.AddTool(outlineTool(), outlineHandler(outline))
	s.AddTool(completeTool(), completeHandler(engine))
}

// --- parse_link ---

func parseLinkTool() mcp.Tool {
	return mcp.NewTool("parse_link",
		mcp.WithDescription("Parse a didact:// link and show the command it invokes, its path field and its decoded arguments."),
		mcp.WithString("link",
			mcp.Description("Link to parse (didact://?commandId=...)"),
			mcp.Required(),
		),
	)
}

func parseLinkHandler() server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		inv, err := commands.NewParseLinkCommand(req.GetString("link", "")).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(formatInvocation(inv)), nil
	}
}

func formatInvocation(inv *domain.LinkInvocation) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "commandId: %s\n", inv.CommandID)
	if inv.HasPath() {
		fmt.Fprintf(&sb, "%s: %s\n", inv.PathKind, inv.Path)
	}
	for i, t := range inv.Text {
		fmt.Fprintf(&sb, "text[%d]: %s\n", i, t)
	}
	for i, u := range inv.User {
		fmt.Fprintf(&sb, "user[%d]: %s\n", i, u)
	}
	if inv.Number != "" {
		fmt.Fprintf(&sb, "number: %s\n", inv.Number)
	}
	if inv.JSON != "" {
		fmt.Fprintf(&sb, "json: %s\n", inv.JSON)
	}
	if inv.CompletionMessage != "" {
		fmt.Fprintf(&sb, "completion: %s\n", inv.CompletionMessage)
	}
	if inv.ErrorMessage != "" {
		fmt.Fprintf(&sb, "error: %s\n", inv.ErrorMessage)
	}
	return sb.String()
}

// --- list_tutorials ---

func listTutorialsTool() mcp.Tool {
	return mcp.NewTool("list_tutorials",
		mcp.WithDescription("List registered tutorials. Without a category lists every tutorial in registration order."),
		mcp.WithString("category",
			mcp.Description("Category to list. Omit to list all."),
		),
	)
}

func listTutorialsHandler(registry *application.TutorialRegistry) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		tutorials, err := commands.NewListTutorialsCommand(registry, req.GetString("category", "")).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return formatEntities(tutorials, formatTutorial)
	}
}

// --- search_tutorials ---

func searchTutorialsTool() mcp.Tool {
	return mcp.NewTool("search_tutorials",
		mcp.WithDescription("Fuzzy search registered tutorials by name, category or source URI."),
		mcp.WithString("query",
			mcp.Description("Search query (at least 2 characters)"),
			mcp.Required(),
		),
	)
}

func searchTutorialsHandler(registry *application.TutorialRegistry) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		query := req.GetString("query", "")
		if query == "" {
			return toolError(fmt.Errorf("query is required"))
		}
		matches, err := commands.NewSearchTutorialsCommand(registry, query).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		if len(matches) == 0 {
			return mcp.NewToolResultText("No results found."), nil
		}
		var sb strings.Builder
		for _, m := range matches {
			fmt.Fprintf(&sb, "%s\n", formatTutorial(m.TutorialDescriptor))
		}
		return mcp.NewToolResultText(sb.String()), nil
	}
}

// --- outline ---

func outlineTool() mcp.Tool {
	return mcp.NewTool("outline",
		mcp.WithDescription("Show the tutorial outline: categories, tutorials with time estimates, and time-annotated headings."),
	)
}

func outlineHandler(outline *application.OutlineProvider) server.ToolHandlerFunc {
	return func(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		trees, err := commands.NewBuildOutlineCommand(outline).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		if len(trees) == 0 {
			return mcp.NewToolResultText("No tutorials registered."), nil
		}
		var sb strings.Builder
		for _, t := range trees {
			renderOutline(&sb, t, "")
		}
		return mcp.NewToolResultText(sb.String()), nil
	}
}

func renderOutline(sb *strings.Builder, tree *commands.OutlineTree, prefix string) {
	item := tree.Node.TreeItem()
	if item.Description != "" {
		fmt.Fprintf(sb, "%s%s %s\n", prefix, item.Label, item.Description)
	} else {
		fmt.Fprintf(sb, "%s%s\n", prefix, item.Label)
	}
	for _, child := range tree.Children {
		renderOutline(sb, child, prefix+"  ")
	}
}

// --- complete ---

func completeTool() mcp.Tool {
	return mcp.NewTool("complete",
		mcp.WithDescription("Suggest didact link completions for a line of a tutorial source (.md or .adoc)."),
		mcp.WithString("file_name",
			mcp.Description("Tutorial file name; its extension selects the document format"),
			mcp.Required(),
		),
		mcp.WithString("line",
			mcp.Description("Text of the line being edited"),
			mcp.Required(),
		),
		mcp.WithNumber("cursor",
			mcp.Description("Byte offset of the cursor in the line. Omit for end of line."),
		),
	)
}

func completeHandler(engine *application.CompletionEngine) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		line := req.GetString("line", "")
		cursor := req.GetInt("cursor", -1)
		if cursor < 0 || cursor > len(line) {
			cursor = len(line)
		}

		result, err := commands.NewCompleteCommand(engine, req.GetString("file_name", ""), line, cursor).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		if len(result.Candidates) == 0 {
			return mcp.NewToolResultText("No completions."), nil
		}
		var sb strings.Builder
		for _, c := range result.Candidates {
			fmt.Fprintf(&sb, "%s\n  %s\n", c.Label, c.Apply(line, cursor))
		}
		return mcp.NewToolResultText(sb.String()), nil
	}
}

// --- helpers ---

func toolError(err error) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultError(err.Error()), nil
}

func formatEntities[T any](entities []T, format func(T) string) (*mcp.CallToolResult, error) {
	if len(entities) == 0 {
		return mcp.NewToolResultText("No results."), nil
	}
	var sb strings.Builder
	for _, e := range entities {
		sb.WriteString(format(e))
		sb.WriteByte('\n')
	}
	return mcp.NewToolResultText(sb.String()), nil
}

func formatTutorial(t domain.TutorialDescriptor) string {
	return fmt.Sprintf("%s  %s  %s", t.Category, t.Name, t.SourceURI)
}
