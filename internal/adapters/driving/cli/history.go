package cli

import (
	"errors"

	"github.com/spf13/cobra"
)

var (
	historyLimit int
	historyClear bool
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recent conversions",
	Long: `Lists recently recorded conversions, newest first.

Recording can be disabled with "history = false" in ~/.radix/config.toml.`,
	Args: cobra.NoArgs,
	RunE: runHistory,
}

func init() {
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 20, "maximum number of entries")
	historyCmd.Flags().BoolVar(&historyClear, "clear", false, "delete all recorded conversions")
	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, _ []string) error {
	if historyStore == nil {
		return errors.New("history store not configured")
	}

	ctx := cmd.Context()
	if historyClear {
		if err := historyStore.Clear(ctx); err != nil {
			return err
		}
		cmd.Println("History cleared.")
		return nil
	}

	entries, err := historyStore.Recent(ctx, historyLimit)
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		cmd.Println("No conversions recorded.")
		return nil
	}

	for _, e := range entries {
		cmd.Printf("%s  %s (base %d) -> %s (base %d)\n",
			e.CreatedAt.Local().Format("2006-01-02 15:04"),
			e.Input, e.InputBase, e.Output, e.OutputBase)
	}
	return nil
}
