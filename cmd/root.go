package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/huangsam/dashviz/internal/contract"
	"github.com/huangsam/dashviz/schema"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Release metadata, injected with -ldflags at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// rootCtx is shared by every subcommand.
var rootCtx = context.Background()

// cfg is the validated configuration every subcommand reads.
var cfg = &contract.Config{}

// input collects flags, DASHVIZ_* env vars and .dashviz.yaml before validation.
var input = &contract.ConfigRawInput{}

// logger is the error channel shared by all commands. It always writes to stderr
// so stdout stays clean for plans, pages and the MCP protocol.
var logger = logrus.New()

// rootCmd is the dashviz entrypoint.
var rootCmd = &cobra.Command{
	Use:   "dashviz",
	Short: "Turn dashboard role scores and keywords into radar chart and word cloud render plans.",
	Long: `Dashviz reads the role-score and keyword data attributes of a dashboard page and
decides what each visualization host shows: a radar chart, a word cloud, a fallback
message, or nothing at all.`,
	Version:            version,
	SilenceErrors:      true,
	SilenceUsage:       true,
	DisableSuggestions: true,
	Run: func(cmd *cobra.Command, _ []string) {
		_ = cmd.Help()
	},
}

// initConfig points viper at the config file, env vars and defaults.
func initConfig() {
	if configFile := viper.GetString("config"); configFile != "" {
		viper.SetConfigFile(configFile)
	} else {
		viper.SetConfigName(".dashviz")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
		viper.AddConfigPath("$HOME")
	}

	viper.SetEnvPrefix("DASHVIZ")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	viper.SetDefault("precision", contract.DefaultPrecision)
	viper.SetDefault("output", string(schema.TextOut))
	viper.SetDefault("color", "yes")
	viper.SetDefault("chart-lib", string(schema.AutoLibrary))
	viper.SetDefault("wordcloud-lib", string(schema.AutoLibrary))
	viper.SetDefault("log-level", contract.DefaultLogLevel)
	viper.SetDefault("log-format", contract.DefaultLogFormat)
	viper.SetDefault("addr", contract.DefaultAddr)
}

// sharedSetup resolves and validates the configuration, then builds the logger.
func sharedSetup(_ context.Context, _ *cobra.Command, args []string) error {
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return fmt.Errorf("error reading config file: %w", err)
		}
		// No config file: defaults, env and flags still apply.
	}

	if err := viper.Unmarshal(input); err != nil {
		return fmt.Errorf("unable to unmarshal config: %w", err)
	}

	// The page path is positional, so viper never sees it.
	input.InputFile = ""
	if len(args) == 1 {
		input.InputFile = args[0]
	}

	if err := contract.ProcessAndValidate(cfg, input); err != nil {
		return err
	}

	logger = contract.NewLogger(os.Stderr, cfg.LogLevel, cfg.LogFormat)
	return nil
}

// sharedSetupWrapper adapts sharedSetup to cobra's PreRunE signature.
func sharedSetupWrapper(cmd *cobra.Command, args []string) error {
	return sharedSetup(rootCtx, cmd, args)
}

// Execute runs the CLI.
func Execute() error {
	return rootCmd.Execute()
}
