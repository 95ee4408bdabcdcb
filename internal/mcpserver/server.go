package mcpserver

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/pylens-dev/pylens/internal/analyzer"
	"github.com/pylens-dev/pylens/internal/annotation"
	"github.com/pylens-dev/pylens/internal/config"
	"github.com/pylens-dev/pylens/internal/outline"
)

// Server exposes analysis to host editors over MCP (JSON-RPC on stdio).
// This is the integration surface a host plugs into instead of linking the
// analyzer directly.
type Server struct {
	version string
	cfg     *config.Config
}

// NewServer creates an MCP server instance.
func NewServer(version string, cfg *config.Config) *Server {
	return &Server{version: version, cfg: cfg}
}

// AnalyzeInput is the input schema for the analyze_python tool.
type AnalyzeInput struct {
	Path string `json:"path" jsonschema:"Path to the Python file to analyze"`
}

// OutlineInput is the input schema for the outline_python tool.
type OutlineInput struct {
	Path   string `json:"path" jsonschema:"Path to the Python file to outline"`
	Filter string `json:"filter,omitempty" jsonschema:"Substring filter on node names (optional)"`
}

// Run serves MCP over stdio until the context is canceled or the client
// disconnects.
func (s *Server) Run(ctx context.Context) error {
	server := sdkmcp.NewServer(&sdkmcp.Implementation{
		Name:    "pylens",
		Version: s.version,
	}, nil)

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "analyze_python",
		Description: "Run pycodestyle/pyflakes (or flake8 when configured) over a Python file and return per-line annotations.",
	}, func(ctx context.Context, req *sdkmcp.CallToolRequest, input AnalyzeInput) (*sdkmcp.CallToolResult, map[string]any, error) {
		result, err := s.handleAnalyze(ctx, input)
		if err != nil {
			return &sdkmcp.CallToolResult{IsError: true}, nil, err
		}
		return nil, result, nil
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "outline_python",
		Description: "Return the outline of a Python file: classes, functions, and TODO/FIXME markers with line numbers.",
	}, func(ctx context.Context, req *sdkmcp.CallToolRequest, input OutlineInput) (*sdkmcp.CallToolResult, map[string]any, error) {
		result, err := s.handleOutline(input)
		if err != nil {
			return &sdkmcp.CallToolResult{IsError: true}, nil, err
		}
		return nil, result, nil
	})

	fmt.Fprintln(os.Stderr, "pylens MCP server started (stdio mode)")
	fmt.Fprintln(os.Stderr, "Available tools: analyze_python, outline_python")

	return server.Run(ctx, &sdkmcp.StdioTransport{})
}

// handleAnalyze runs one analysis pass and shapes the grouped annotations
// for the host.
func (s *Server) handleAnalyze(ctx context.Context, input AnalyzeInput) (map[string]any, error) {
	if input.Path == "" {
		return nil, fmt.Errorf("path is required")
	}

	anns, err := analyzer.New(s.cfg).AnalyzeFile(ctx, input.Path)
	if err != nil {
		return nil, err
	}

	groups := annotation.GroupByLine(anns)
	items := make([]map[string]any, 0, len(groups))
	for i, g := range groups {
		items = append(items, map[string]any{
			"line":     g.Line,
			"style":    string(g.Style),
			"messages": g.Texts,
			"scroll":   i == 0,
		})
	}

	return map[string]any{
		"file":        input.Path,
		"clean":       len(groups) == 0,
		"annotations": items,
	}, nil
}

// handleOutline parses the file into outline nodes.
func (s *Server) handleOutline(input OutlineInput) (map[string]any, error) {
	if input.Path == "" {
		return nil, fmt.Errorf("path is required")
	}

	data, err := os.ReadFile(input.Path)
	if err != nil {
		return nil, err
	}

	nodes := outline.Parse(string(data), filepath.Base(input.Path))
	nodes, suggestions := outline.Filter(nodes, input.Filter)

	items := make([]map[string]any, 0, len(nodes))
	for _, n := range nodes {
		items = append(items, map[string]any{
			"kind":       string(n.Kind),
			"name":       n.Name,
			"line":       n.Line,
			"level":      n.Level,
			"breadcrumb": n.Breadcrumb,
		})
	}

	result := map[string]any{
		"file":  input.Path,
		"nodes": items,
	}
	if len(suggestions) > 0 {
		result["suggestions"] = suggestions
	}
	return result, nil
}
