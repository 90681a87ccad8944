// Package mcp provides the Model Context Protocol (MCP) server implementation.
package mcp

import (
	"context"

	"github.com/huangsam/dashviz/core"
	"github.com/huangsam/dashviz/internal/contract"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/sirupsen/logrus"
)

// NewMCPServer initializes and configures the dashviz MCP server without starting it.
// This is exposed for unit testing.
func NewMCPServer(baseCfg *contract.Config, logger logrus.FieldLogger, opts ...core.PlannerOption) *server.MCPServer {
	s := server.NewMCPServer(
		"Dashviz Render Plan Server",
		"1.0.0",
		server.WithLogging(),
	)

	h := &toolHandler{
		baseCfg:     baseCfg,
		logger:      logger,
		plannerOpts: opts,
	}

	// --- 1. Tool: build_render_plan ---
	s.AddTool(mcp.NewTool("build_render_plan",
		mcp.WithDescription("Build the radar chart and word cloud render plan from raw dashboard attribute values."),
		mcp.WithString("role_scores", mcp.Description("JSON text of the role-score mapping, e.g. {\"data_analyst\": 72}. Defaults to {}.")),
		mcp.WithString("keywords", mcp.Description("JSON text of the keyword list, e.g. [\"ai\",\"cloud\"]. Defaults to [].")),
		mcp.WithBoolean("chart_available", mcp.Description("Whether the charting library is loaded. Defaults to true.")),
		mcp.WithBoolean("wordcloud_available", mcp.Description("Whether the word-cloud library is loaded. Defaults to true.")),
	), h.handleBuildRenderPlan)

	// --- 2. Tool: render_page ---
	s.AddTool(mcp.NewTool("render_page",
		mcp.WithDescription("Apply the render plan to a dashboard HTML page and return the rewritten page."),
		mcp.WithString("html", mcp.Description("The dashboard page HTML."), mcp.Required()),
		mcp.WithString("chart", mcp.Description("Chart library mode (auto, yes, no). Defaults to auto."), mcp.Enum("auto", "yes", "no")),
		mcp.WithString("wordcloud", mcp.Description("Word cloud library mode (auto, yes, no). Defaults to auto."), mcp.Enum("auto", "yes", "no")),
	), h.handleRenderPage)

	// --- 3. Tool: derive_role_label ---
	s.AddTool(mcp.NewTool("derive_role_label",
		mcp.WithDescription("Derive the radar axis label for a role identifier, e.g. ui_ux_designer -> Ui Ux Designer."),
		mcp.WithString("key", mcp.Description("The role identifier."), mcp.Required()),
	), h.handleDeriveRoleLabel)

	return s
}

// StartMCPServer starts the dashviz MCP server on stdio.
func StartMCPServer(_ context.Context, baseCfg *contract.Config, logger logrus.FieldLogger) error {
	s := NewMCPServer(baseCfg, logger)
	return server.ServeStdio(s)
}
