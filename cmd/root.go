package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var (
	// Used for flags
	envFile  string
	logLevel string

	cfg    Config
	logger = defaultLogger()
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "retailops",
	Short: "Retail purchasing, delivery and inventory service",
	Long: `retailops tracks purchase orders, deliveries and the stock ledger for a small
retail business, with role based access and an audit log of every change.`,
	SilenceUsage: true,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		loaded, err := LoadConfig(envFile)
		if err != nil {
			return err
		}
		if logLevel != "" {
			loaded.LogLevel = logLevel
		}
		cfg = loaded
		logger = newLogger(os.Stderr, cfg.LogLevel)
		return nil
	},
}

// Execute adds all child commands to the root command and runs it.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "dotenv file loaded before reading RETAILOPS_* variables")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (debug, info, warn, error); overrides RETAILOPS_LOG_LEVEL")
}
