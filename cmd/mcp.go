package cmd

import (
	"context"
	"encoding/json"
	"fmt"

	"apilens/internal/catalog"
	"apilens/internal/index"
	"apilens/internal/query"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start an MCP server exposing API introspection tools",
	RunE:  runMCP,
}

func runMCP(cmd *cobra.Command, args []string) error {
	engine, err := buildEngine()
	if err != nil {
		return fmt.Errorf("build index: %w", err)
	}

	s := mcpserver.NewMCPServer("apilens", "1.0.0", mcpserver.WithToolCapabilities(false))

	s.AddTool(listFunctionsTool(), makeListFunctionsHandler(engine))
	s.AddTool(listClassesTool(), makeListClassesHandler(engine))
	s.AddTool(searchAPITool(), makeSearchHandler(engine))
	s.AddTool(overviewTool(), makeOverviewHandler(engine))
	s.AddTool(functionDetailsTool(), makeFunctionDetailsHandler(engine))
	s.AddTool(refreshIndexTool(), makeRefreshHandler(engine))

	return mcpserver.ServeStdio(s)
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}

// --- Tool schema builders ---

var readOnlyAnnotation = mcp.ToolAnnotation{
	ReadOnlyHint:    mcp.ToBoolPtr(true),
	DestructiveHint: mcp.ToBoolPtr(false),
	IdempotentHint:  mcp.ToBoolPtr(true),
	OpenWorldHint:   mcp.ToBoolPtr(false),
}

var refreshAnnotation = mcp.ToolAnnotation{
	ReadOnlyHint:    mcp.ToBoolPtr(false),
	DestructiveHint: mcp.ToBoolPtr(false),
	IdempotentHint:  mcp.ToBoolPtr(true),
	OpenWorldHint:   mcp.ToBoolPtr(false),
}

func listFunctionsTool() mcp.Tool {
	return mcp.NewTool("list_library_functions",
		mcp.WithDescription("List all public functions and methods in the openreview-py library with their signatures and docstrings. Returns JSON records."),
		mcp.WithToolAnnotation(readOnlyAnnotation),
		mcp.WithString("filter_by_module",
			mcp.Description("Optional module path to filter by (e.g. 'openreview.api'). Submodules are included."),
		),
	)
}

func listClassesTool() mcp.Tool {
	return mcp.NewTool("list_library_classes",
		mcp.WithDescription("List all public classes in the openreview-py library with their docstrings. Returns JSON records."),
		mcp.WithToolAnnotation(readOnlyAnnotation),
		mcp.WithBoolean("include_methods",
			mcp.Description("Include each class's method paths in the output (default false)"),
		),
	)
}

func searchAPITool() mcp.Tool {
	return mcp.NewTool("search_library_api",
		mcp.WithDescription("Search the openreview-py API by keyword. Matches function and class names first, then docstrings. Returns JSON results in relevance order."),
		mcp.WithToolAnnotation(readOnlyAnnotation),
		mcp.WithString("query",
			mcp.Required(),
			mcp.Description("Keyword or phrase to search for (e.g. 'get notes', 'profile')"),
		),
	)
}

func overviewTool() mcp.Tool {
	return mcp.NewTool("get_library_overview",
		mcp.WithDescription("Get a high-level overview of the openreview-py library: total function and class counts, broken down per module."),
		mcp.WithToolAnnotation(readOnlyAnnotation),
	)
}

func functionDetailsTool() mcp.Tool {
	return mcp.NewTool("get_function_details",
		mcp.WithDescription("Get the full signature and docstring of a function or method by its short name (e.g. 'get_notes'). Returns every record sharing the name, disambiguated by module path."),
		mcp.WithToolAnnotation(readOnlyAnnotation),
		mcp.WithString("function_name",
			mcp.Required(),
			mcp.Description("Short function name, without module or class qualifier"),
		),
	)
}

func refreshIndexTool() mcp.Tool {
	return mcp.NewTool("refresh_index",
		mcp.WithDescription("Rebuild the API index from scratch and swap it in atomically. In-flight queries keep the generation they started with."),
		mcp.WithToolAnnotation(refreshAnnotation),
	)
}

// --- Handler factories ---

func makeListFunctionsHandler(engine *query.Engine) mcpserver.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		filter := req.GetString("filter_by_module", "")
		return jsonResult(engine.ListFunctions(filter))
	}
}

func makeListClassesHandler(engine *query.Engine) mcpserver.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		includeMethods := req.GetBool("include_methods", false)
		return jsonResult(engine.ListClasses(includeMethods))
	}
}

func makeSearchHandler(engine *query.Engine) mcpserver.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		q := req.GetString("query", "")
		matches, err := engine.Search(q)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return jsonResult(matches)
	}
}

func makeOverviewHandler(engine *query.Engine) mcpserver.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return jsonResult(engine.Overview())
	}
}

func makeFunctionDetailsHandler(engine *query.Engine) mcpserver.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		name := req.GetString("function_name", "")
		if name == "" {
			return mcp.NewToolResultError("function_name is required"), nil
		}
		details, err := engine.FunctionDetails(name)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return jsonResult(details)
	}
}

func makeRefreshHandler(engine *query.Engine) mcpserver.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		err := engine.Refresh(func() (*index.Index, error) {
			return index.FromLibrary(catalog.OpenReview())
		})
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("refresh failed: %v", err)), nil
		}
		stats := engine.Stats()
		return mcp.NewToolResultText(fmt.Sprintf(
			"Index refreshed: %d modules, %d functions, %d classes (%d skips, %d rejects)",
			stats.Modules, stats.Functions, stats.Classes, stats.Skips, stats.Rejects)), nil
	}
}

func jsonResult(v any) (*mcp.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("encode result: %v", err)), nil
	}
	return mcp.NewToolResultText(string(data)), nil
}
