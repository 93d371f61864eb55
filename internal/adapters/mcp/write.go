package mcp

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"didact/internal/application"
	"didact/internal/application/commands"
)

// RegisterWriteTools adds the tools that change the registry or run commands.
func RegisterWriteTools(s *server.MCPServer, registry *application.TutorialRegistry, links *application.LinkHandler) {
	s.AddTool(runLinkTool(), runLinkHandler(links))
	s.AddTool(registerTool(), registerHandler(registry))
	s.AddTool(unregisterTool(), unregisterHandler(registry))
	s.AddTool(unregisterAllTool(), unregisterAllHandler(registry))
}

// --- run_link ---

func runLinkTool() mcp.Tool {
	return mcp.NewTool("run_link",
		mcp.WithDescription("Run a didact:// link: resolve its path, collect its arguments and invoke its command. Links that prompt for user input are cancelled."),
		mcp.WithString("link",
			mcp.Description("Link to run (didact://?commandId=...)"),
			mcp.Required(),
		),
	)
}

func runLinkHandler(links *application.LinkHandler) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		outcome, err := commands.NewRunLinkCommand(links, req.GetString("link", "")).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		if !outcome.Succeeded() {
			return toolError(outcome.Err)
		}
		if outcome.Result != nil {
			return mcp.NewToolResultText(fmt.Sprintf("Executed %s: %v", outcome.CommandID, outcome.Result)), nil
		}
		return mcp.NewToolResultText(fmt.Sprintf("Executed %s", outcome.CommandID)), nil
	}
}

// --- register_tutorial ---

func registerTool() mcp.Tool {
	return mcp.NewTool("register_tutorial",
		mcp.WithDescription("Register a tutorial under a category. Fails when the name is already registered in that category."),
		mcp.WithString("name",
			mcp.Description("Tutorial name"),
			mcp.Required(),
		),
		mcp.WithString("source_uri",
			mcp.Description("URI of the tutorial source (file:///... or a path)"),
			mcp.Required(),
		),
		mcp.WithString("category",
			mcp.Description("Category the tutorial is listed under"),
			mcp.Required(),
		),
	)
}

func registerHandler(registry *application.TutorialRegistry) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		cmd := commands.NewRegisterTutorialCommand(registry,
			req.GetString("name", ""),
			req.GetString("source_uri", ""),
			req.GetString("category", ""),
		)
		result, err := cmd.Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(result.Message), nil
	}
}

// --- unregister_tutorial ---

func unregisterTool() mcp.Tool {
	return mcp.NewTool("unregister_tutorial",
		mcp.WithDescription("Remove one tutorial from the registry."),
		mcp.WithString("name",
			mcp.Description("Tutorial name"),
			mcp.Required(),
		),
		mcp.WithString("category",
			mcp.Description("Category of the tutorial"),
			mcp.Required(),
		),
	)
}

func unregisterHandler(registry *application.TutorialRegistry) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		msg, err := commands.NewUnregisterTutorialCommand(registry,
			req.GetString("name", ""),
			req.GetString("category", ""),
		).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(msg), nil
	}
}

// --- unregister_all ---

func unregisterAllTool() mcp.Tool {
	return mcp.NewTool("unregister_all",
		mcp.WithDescription("Clear every registered tutorial."),
	)
}

func unregisterAllHandler(registry *application.TutorialRegistry) server.ToolHandlerFunc {
	return func(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		msg, err := commands.NewUnregisterAllCommand(registry).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(msg), nil
	}
}
