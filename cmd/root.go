package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/hanjaplatform/hanja-api/internal/observability/logging"
	"github.com/hanjaplatform/hanja-api/pkg/config"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "hanja-api",
	Short: "Hanja Platform API server",
	Long: `Hanja Platform API - annotation and translation services for classical Chinese texts

The server sits between the web front-end and the model backends. It
restores punctuation, recognizes named entities, streams translations
and keeps a history of each user's work.

Features:
  • IOB tag decoding and entity markup
  • Interactive span editing
  • Streaming translation over server-sent events and WebSocket
  • History records with JSON and spreadsheet export
  • Character glossary lookups`,
	SilenceUsage:      true,
	PersistentPreRunE: setupLogging,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

// NewRootCmd creates a new root command (exported for testing)
func NewRootCmd() *cobra.Command {
	return rootCmd
}

func init() {
	// Add persistent flags for logging configuration
	rootCmd.PersistentFlags().String("log-level", "info", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().Bool("json-logs", false, "enable JSON formatted logs")
}

// setupLogging installs the default logger from the persistent flags.
func setupLogging(cmd *cobra.Command, _ []string) error {
	level, _ := cmd.Flags().GetString("log-level")
	jsonLogs, _ := cmd.Flags().GetBool("json-logs")
	logging.Setup(logging.Options{Level: level, JSON: jsonLogs, Output: cmd.ErrOrStderr()})
	return nil
}

// applyLoggingConfig lets the config file decide the log settings the
// command line left alone.
func applyLoggingConfig(cmd *cobra.Command, cfg *config.Config) {
	level, _ := cmd.Flags().GetString("log-level")
	jsonLogs, _ := cmd.Flags().GetBool("json-logs")
	if !cmd.Flags().Changed("log-level") && cfg.Logging.Level != "" {
		level = cfg.Logging.Level
	}
	if !cmd.Flags().Changed("json-logs") {
		jsonLogs = jsonLogs || cfg.Logging.Format == "json"
	}
	logging.Setup(logging.Options{Level: level, JSON: jsonLogs, Output: cmd.ErrOrStderr()})
}

// loadConfig loads the configuration for commands that need it
func loadConfig() (*config.Config, error) {
	if err := config.Init(); err != nil {
		return nil, fmt.Errorf("initializing config: %w", err)
	}
	cfg, err := config.GetConfig()
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	return cfg, nil
}
