// Package core has core logic for turning dashboard data into render plans.
package core

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/huangsam/dashviz/internal/contract"
	"github.com/huangsam/dashviz/internal/outwriter"
	"github.com/huangsam/dashviz/internal/page"
	"github.com/huangsam/dashviz/schema"
	"github.com/sirupsen/logrus"
)

// stdinPath makes a command read the page from standard input.
const stdinPath = "-"

// ExecutorFunc defines the function signature for executing the CLI commands.
type ExecutorFunc func(ctx context.Context, cfg *contract.Config, logger logrus.FieldLogger) error

// ExecutePlanCommand builds the plan for a page (or inline data) and prints it.
// It serves as the main entry point for the 'plan' command.
func ExecutePlanCommand(_ context.Context, cfg *contract.Config, logger logrus.FieldLogger) error {
	start := time.Now()
	_, data, caps, err := LoadPage(cfg)
	if err != nil {
		return err
	}
	plan := NewPlanner(WithLogger(logger)).Plan(data, caps)
	return outwriter.PrintPlan(plan, cfg, time.Since(start))
}

// ExecuteRenderCommand applies the plan to the page and writes the rewritten HTML.
// It serves as the main entry point for the 'render' command.
func ExecuteRenderCommand(_ context.Context, cfg *contract.Config, logger logrus.FieldLogger) error {
	if cfg.InputFile == "" {
		return fmt.Errorf("render requires an input page")
	}
	doc, data, caps, err := LoadPage(cfg)
	if err != nil {
		return err
	}
	plan := NewPlanner(WithLogger(logger)).Plan(data, caps)
	applied := ExecutePlan(doc, plan, logger)
	logger.WithField("applied", applied).Debug("Render plan executed")

	file, err := contract.SelectOutputFile(cfg.OutputFile)
	if err != nil {
		return fmt.Errorf("cannot open output file: %w", err)
	}
	if file != os.Stdout {
		defer func() { _ = file.Close() }()
	}
	return doc.Render(file)
}

// LoadPage collects page data and effective capabilities for the configured input.
// Without an input file both hosts are treated as present with the inline data, and
// auto-detected libraries count as loaded. The returned document is nil in that case.
func LoadPage(cfg *contract.Config) (*page.Document, schema.PageData, schema.Capabilities, error) {
	if cfg.InputFile == "" {
		data := schema.PageData{
			Radar:     schema.HostData{Present: true, Attr: cfg.Scores},
			WordCloud: schema.HostData{Present: true, Attr: cfg.Keywords},
		}
		detected := schema.Capabilities{Chart: true, WordCloud: true}
		return nil, data, contract.ResolveCapabilities(detected, cfg.ChartLib, cfg.WordCloudLib), nil
	}

	doc, err := readDocument(cfg.InputFile)
	if err != nil {
		return nil, schema.PageData{}, schema.Capabilities{}, err
	}
	detected := doc.DetectCapabilities(cfg.Patterns)
	caps := contract.ResolveCapabilities(detected, cfg.ChartLib, cfg.WordCloudLib)
	return doc, doc.PageData(), caps, nil
}

func readDocument(path string) (*page.Document, error) {
	var r io.Reader = os.Stdin
	if path != stdinPath {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("cannot open page: %w", err)
		}
		defer func() { _ = f.Close() }()
		r = f
	}
	return page.Parse(r)
}
