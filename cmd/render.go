package cmd

import (
	"github.com/huangsam/dashviz/core"
	"github.com/huangsam/dashviz/internal/contract"
	"github.com/spf13/cobra"
)

// renderCmd applies the render plan to a page.
var renderCmd = &cobra.Command{
	Use:   "render <page.html>",
	Short: "Apply the render plan to a page and write the resulting HTML.",
	Long: `Plan the page, then rewrite it: mounted hosts get their chart or word cloud config
and a bootstrap script, fallback hosts get their status message.

Examples:
  # Rewrite a page to stdout
  dashviz render dashboard.html

  # Rewrite into a new file
  dashviz render dashboard.html --output-file dashboard.rendered.html`,
	Args:    cobra.ExactArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteRenderCommand(rootCtx, cfg, logger); err != nil {
			contract.LogFatal("Cannot render page", err)
		}
	},
}
