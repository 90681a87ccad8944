package cmd

import (
	"github.com/huangsam/dashviz/core"
	"github.com/huangsam/dashviz/internal/contract"
	"github.com/spf13/cobra"
)

// planCmd prints the render plan for a page or for inline data.
var planCmd = &cobra.Command{
	Use:   "plan [page.html]",
	Short: "Show what each visualization host of a page will display.",
	Long: `Read the role-score and keyword attributes of a dashboard page and print the render plan.

Without a page, both hosts are treated as present and the --scores and --keywords
values stand in for their attributes. Use "-" to read the page from stdin.

Examples:
  # Plan a saved dashboard page
  dashviz plan dashboard.html

  # Plan inline data
  dashviz plan --scores '{"data_analyst": 72, "pm": 0}' --keywords '["ai","cloud"]'

  # Simulate a page where the word cloud library failed to load
  dashviz plan dashboard.html --wordcloud-lib no

  # Export plotted items for analysis
  dashviz plan dashboard.html --output parquet --output-file plan.parquet`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecutePlanCommand(rootCtx, cfg, logger); err != nil {
			contract.LogFatal("Cannot build render plan", err)
		}
	},
}
