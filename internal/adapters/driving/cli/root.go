// Package cli wires the radix commands. Commands register themselves on
// the root in their init functions; main injects the config and the
// history store before Execute.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/radix-labs/radix-cli/internal/adapters/driven/config/file"
	"github.com/radix-labs/radix-cli/internal/core/ports/driven"
	"github.com/radix-labs/radix-cli/internal/logger"
)

// version is set at build time via ldflags.
var version = "dev"

var (
	// cfg holds the loaded configuration defaults.
	cfg = file.Default()

	// historyStore records conversions; nil disables history.
	historyStore driven.HistoryStore

	verboseFlag bool
)

var rootCmd = &cobra.Command{
	Use:   "radix",
	Short: "Convert rational numbers between arbitrary bases",
	Long: `radix converts rational numbers between positive integer bases.

Integer parts convert exactly at any magnitude. Fractional parts convert
through exact rational arithmetic with recurring digit cycles detected
and bracketed, e.g. 0.1 in base 3 is 0.[3] in base 10.`,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verboseFlag)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "enable verbose output")
}

// SetConfig injects the loaded configuration defaults.
func SetConfig(c *file.Config) {
	if c != nil {
		cfg = c
	}
}

// SetHistoryStore injects the history store. A nil store disables
// history recording and the history command reports it.
func SetHistoryStore(s driven.HistoryStore) {
	historyStore = s
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
