// Root command for the drmd CLI.
package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// version is the CLI release version.
const version = "0.1.0"

// Exit codes: 1 for user errors, 2 for system errors.
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

// Global flag values.
var (
	flagConfigDir string
	flagDataDir   string
	flagSession   string
	flagJSON      bool
	flagVerbose   bool
)

// Values loaded from config.yaml by PersistentPreRunE so all
// subcommands can use them.
var (
	configDataDir        string
	configSession        string
	configSchemaPath     string
	configStylesheetPath string
	configUnitsPath      string
)

// logger is the process-wide logger, built by PersistentPreRunE.
var logger = zap.NewNop()

var rootCmd = &cobra.Command{
	Use:     "drmd",
	Short:   "drmd edits digital reference material documents",
	Version: version,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		configDir, err := resolveConfigDir()
		if err != nil {
			return err
		}

		cfg, err := loadConfig(configDir)
		if err != nil {
			return err
		}

		configDataDir = cfg.GetString(cfgKeyDataDir)
		configSession = cfg.GetString(cfgKeySession)
		configSchemaPath = cfg.GetString(cfgKeySchemaPath)
		configStylesheetPath = cfg.GetString(cfgKeyStylesheetPath)
		configUnitsPath = cfg.GetString(cfgKeyUnitsPath)

		logger, err = newLogger(flagVerbose)
		if err != nil {
			return err
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		logger.Sync() //nolint:errcheck // stderr sync failure is harmless
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfigDir, "config-dir", "", "configuration directory (default: platform config dir)")
	rootCmd.PersistentFlags().StringVar(&flagDataDir, "data-dir", "", "data directory (default: $(CWD)/.drmd)")
	rootCmd.PersistentFlags().StringVar(&flagSession, "session", "", "session name (default: from config, else \"default\")")
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "output as JSON")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "log import and export diagnostics")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(newCmd)
	rootCmd.AddCommand(loadCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(renderCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(setCmd)
	rootCmd.AddCommand(producerCmd)
	rootCmd.AddCommand(personCmd)
	rootCmd.AddCommand(materialCmd)
	rootCmd.AddCommand(propsetCmd)
	rootCmd.AddCommand(statementCmd)
	rootCmd.AddCommand(attachCmd)
	rootCmd.AddCommand(detachCmd)
	rootCmd.AddCommand(signCmd)
	rootCmd.AddCommand(unitsCmd)
	rootCmd.AddCommand(sessionsCmd)
}
