package cli

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
)

const version = "0.1.0"

// Exit codes
const (
	ExitSuccess      = 0
	ExitNotFound     = 1
	ExitUsageError   = 2
	ExitRuntimeError = 4
)

// Global flags
var (
	flagVerbose   bool
	flagTempExt   string
	flagBackupExt string
	flagNoBackup  bool
	flagWriter    string
)

// logger is replaced before every command runs.
var logger = slog.Default()

var rootCmd = &cobra.Command{
	Use:          "confstore",
	Short:        "Read and edit hierarchical configuration files",
	Long:         "Confstore reads INI and JSON configuration files, edits values by section and key, and saves them with a temp-file, backup and rename protocol.",
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := slog.LevelWarn
		if flagVerbose {
			level = slog.LevelDebug
		}
		logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
	},
}

// Run executes the root command and returns an exit code.
func Run() int {
	if err := rootCmd.Execute(); err != nil {
		// Cobra already prints the error
		return ExitUsageError
	}

	return exitCode
}

// exitCode is set by command handlers to control the process exit code.
var exitCode = ExitSuccess

// runtimeError reports err and sets the runtime exit code. Handlers return
// its result so cobra does not treat the failure as a usage error.
func runtimeError(cmd *cobra.Command, err error) error {
	fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
	exitCode = ExitRuntimeError
	return nil
}

func notFound(cmd *cobra.Command, sec, key string) error {
	fmt.Fprintf(cmd.ErrOrStderr(), "%s/%s: not found\n", sec, key)
	exitCode = ExitNotFound
	return nil
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print confstore version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "confstore version %s\n", version)
	},
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.BoolVarP(&flagVerbose, "verbose", "v", false, "Log debug details to stderr")
	pf.StringVar(&flagTempExt, "temp-ext", "", "Temp file extension used while saving")
	pf.StringVar(&flagBackupExt, "backup-ext", "", "Backup file extension used while saving")
	pf.BoolVar(&flagNoBackup, "no-backup", false, "Replace files without keeping a backup")
	pf.StringVar(&flagWriter, "writer", "", "File format written on save (json, ini)")

	rootCmd.AddCommand(getCmd)
	rootCmd.AddCommand(setCmd)
	rootCmd.AddCommand(unsetCmd)
	rootCmd.AddCommand(sectionsCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(versionCmd)
}
