package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/huangsam/dashviz/core"
	"github.com/huangsam/dashviz/internal/contract"
	"github.com/huangsam/dashviz/internal/page"
	"github.com/huangsam/dashviz/schema"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/sirupsen/logrus"
)

// toolHandler holds common dependencies for MCP tool handlers.
type toolHandler struct {
	baseCfg     *contract.Config
	logger      logrus.FieldLogger
	plannerOpts []core.PlannerOption
}

func (h *toolHandler) planner(tool string) (*core.Planner, logrus.FieldLogger) {
	logger := h.logger.WithField("tool", tool)
	opts := append([]core.PlannerOption{core.WithLogger(logger)}, h.plannerOpts...)
	return core.NewPlanner(opts...), logger
}

func (h *toolHandler) handleBuildRenderPlan(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	data := schema.PageData{
		Radar:     schema.HostData{Present: true, Attr: request.GetString("role_scores", "")},
		WordCloud: schema.HostData{Present: true, Attr: request.GetString("keywords", "")},
	}
	caps := schema.Capabilities{
		Chart:     request.GetBool("chart_available", true),
		WordCloud: request.GetBool("wordcloud_available", true),
	}

	p, _ := h.planner("build_render_plan")
	plan := p.Plan(data, caps)

	jsonData, err := json.MarshalIndent(plan, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("cannot encode plan: %v", err)), nil
	}
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleRenderPage(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg := h.baseCfg.Clone()
	html := request.GetString("html", "")
	if strings.TrimSpace(html) == "" {
		return mcp.NewToolResultError("html is required"), nil
	}

	chartMode, err := contract.ParseLibraryMode(request.GetString("chart", ""))
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid chart mode: %v", err)), nil
	}
	wcMode, err := contract.ParseLibraryMode(request.GetString("wordcloud", ""))
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid wordcloud mode: %v", err)), nil
	}

	doc, err := page.ParseString(html)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("cannot parse page: %v", err)), nil
	}

	caps := contract.ResolveCapabilities(doc.DetectCapabilities(cfg.Patterns), chartMode, wcMode)
	p, logger := h.planner("render_page")
	core.ExecutePlan(doc, p.Plan(doc.PageData(), caps), logger)

	var sb strings.Builder
	if err := doc.Render(&sb); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("cannot render page: %v", err)), nil
	}
	return mcp.NewToolResultText(sb.String()), nil
}

func (h *toolHandler) handleDeriveRoleLabel(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	key, err := request.RequireString("key")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(core.RoleLabel(key)), nil
}
