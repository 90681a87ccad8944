package cmd

import (
	"fmt"

	"github.com/huangsam/dashviz/core"
	"github.com/spf13/cobra"
)

// labelCmd prints radar axis labels for role identifiers.
var labelCmd = &cobra.Command{
	Use:   "label <key>...",
	Short: "Print the radar axis label of each role identifier.",
	Long: `Derive display labels the same way the radar chart does: split on "_",
capitalize the first character of each token, and join with spaces.

Examples:
  dashviz label ui_ux_designer backend`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		for _, key := range args {
			fmt.Fprintln(cmd.OutOrStdout(), core.RoleLabel(key))
		}
	},
}
