// Package cmd defines the command-line interface for dashviz.
package cmd

import (
	"github.com/huangsam/dashviz/internal/contract"
	"github.com/huangsam/dashviz/schema"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	// Call initConfig on Cobra's initialization
	cobra.OnInitialize(initConfig)

	// Add primary subcommands to the root command
	rootCmd.AddCommand(planCmd)
	rootCmd.AddCommand(renderCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(mcpCmd)
	rootCmd.AddCommand(labelCmd)
	rootCmd.AddCommand(versionCmd)

	// Bind all persistent flags of rootCmd to Viper
	rootCmd.PersistentFlags().String("output", string(schema.TextOut), "Output format: text or csv or json or parquet")
	rootCmd.PersistentFlags().String("output-file", "", "Optional path to write output to")
	rootCmd.PersistentFlags().Int("precision", contract.DefaultPrecision, "Decimal precision for numeric columns")
	rootCmd.PersistentFlags().Int("width", 0, "Terminal width override (0 = auto-detect)")
	rootCmd.PersistentFlags().String("color", "yes", "Enable colored labels in output (yes/no/true/false/1/0)")
	rootCmd.PersistentFlags().String("log-level", contract.DefaultLogLevel, "Log level: trace or debug or info or warn or error")
	rootCmd.PersistentFlags().String("log-format", contract.DefaultLogFormat, "Log format: text or json")
	rootCmd.PersistentFlags().String("chart-lib", string(schema.AutoLibrary), "Chart library availability: auto or yes or no")
	rootCmd.PersistentFlags().String("wordcloud-lib", string(schema.AutoLibrary), "Word cloud library availability: auto or yes or no")
	rootCmd.PersistentFlags().String("chart-script-pattern", "", "Regex matched against <script src> to detect the chart library")
	rootCmd.PersistentFlags().String("wordcloud-script-pattern", "", "Regex matched against <script src> to detect the word cloud library")
	rootCmd.PersistentFlags().String("config", "", "Path to config file")
	if err := viper.BindPFlags(rootCmd.PersistentFlags()); err != nil {
		contract.LogFatal("Error binding root flags", err)
	}

	// Bind all flags of planCmd to Viper
	planCmd.Flags().String("scores", "", "Inline role-score JSON used when no page is given")
	planCmd.Flags().String("keywords", "", "Inline keyword JSON used when no page is given")
	if err := viper.BindPFlags(planCmd.Flags()); err != nil {
		contract.LogFatal("Error binding plan flags", err)
	}

	// Bind all flags of serveCmd to Viper
	serveCmd.Flags().String("addr", contract.DefaultAddr, "Address to listen on")
	serveCmd.Flags().String("cors-origins", "", "Comma-separated list of allowed CORS origins (default: any)")
	if err := viper.BindPFlags(serveCmd.Flags()); err != nil {
		contract.LogFatal("Error binding serve flags", err)
	}
}
