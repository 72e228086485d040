// Root command wiring for the kompo CLI.
package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const version = "v0.1.0"

// Global flag values.
var (
	flagConfigDir string
	flagDebug     bool
)

// logger is built by PersistentPreRunE so all subcommands can use it.
var logger = zap.NewNop()

var rootCmd = &cobra.Command{
	Use:     "kompo",
	Short:   "kompo demonstrates object-composition idioms",
	Version: version,
	Long: `kompo is a CLI walkthrough of the composition idiom packages:
encapsulated baskets, parameterized vehicle initializers, a
discriminator-driven factory, and a singleton-guarded SQLite ledger.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		zcfg := zap.NewProductionConfig()
		if flagDebug {
			zcfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		l, err := zcfg.Build()
		if err != nil {
			return err
		}
		logger = l

		return loadConfig(flagConfigDir)
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfigDir, "config-dir", "", "configuration directory (default: $(CWD)/.kompo)")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "enable debug logging")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(basketCmd)
	rootCmd.AddCommand(vehicleCmd)
	rootCmd.AddCommand(buildCmd)
	rootCmd.AddCommand(ledgerCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Println("kompo " + version)
	},
}
