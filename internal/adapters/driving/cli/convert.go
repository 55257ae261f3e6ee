package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/radix-labs/radix-cli/internal/core/convert"
	"github.com/radix-labs/radix-cli/internal/core/domain"
	"github.com/radix-labs/radix-cli/internal/logger"
)

var (
	convertInputBase  int
	convertOutputBase int
	convertMaxDepth   int
	convertExact      bool
	convertRecurring  bool
)

var convertCmd = &cobra.Command{
	Use:   "convert [number]",
	Short: "Convert a number between bases",
	Long: `Converts a rational number from the input base to the output base.

The number is taken from the argument, or from standard input when piped:

  radix convert FF0.8 -i 16 -o 10
  echo 3.1415926 | radix convert -i 10 -o 16 -d 3`,
	Args: cobra.MaximumNArgs(1),
	RunE: runConvert,
}

func init() {
	convertCmd.Flags().IntVarP(&convertInputBase, "input-base", "i", 0, "base to convert from (default from config)")
	convertCmd.Flags().IntVarP(&convertOutputBase, "output-base", "o", 0, "base to convert to (default from config)")
	convertCmd.Flags().IntVarP(&convertMaxDepth, "max-depth", "d", 0, "maximum fractional digits, 0 for exact mode (default from config)")
	convertCmd.Flags().BoolVar(&convertExact, "exact", false, "expand fractions until they terminate or repeat")
	convertCmd.Flags().BoolVar(&convertRecurring, "recurring", true, "bracket recurring digit cycles")
	rootCmd.AddCommand(convertCmd)
}

func runConvert(cmd *cobra.Command, args []string) error {
	number, err := inputNumber(cmd, args)
	if err != nil {
		return err
	}

	inBase, outBase := cfg.InputBase, cfg.OutputBase
	if cmd.Flags().Changed("input-base") {
		inBase = convertInputBase
	}
	if cmd.Flags().Changed("output-base") {
		outBase = convertOutputBase
	}

	opts := cfg.Options()
	if cmd.Flags().Changed("max-depth") {
		opts.MaxDepth = convertMaxDepth
	}
	if cmd.Flags().Changed("exact") {
		opts.Exact = convertExact
	}
	if cmd.Flags().Changed("recurring") {
		opts.Recurring = convertRecurring
	}

	logger.Debug("converting %q from base %d to base %d (depth %d)", number, inBase, outBase, opts.Bound())

	result, err := convert.String(number, inBase, outBase, opts)
	if err != nil {
		return fmt.Errorf("converting %q: %w", number, err)
	}
	cmd.Println(result)

	recordConversion(cmd.Context(), domain.Conversion{
		Input:      number,
		InputBase:  inBase,
		OutputBase: outBase,
		Output:     result,
	})
	return nil
}

// inputNumber takes the number from the argument, or from stdin when it
// is piped rather than a terminal.
func inputNumber(cmd *cobra.Command, args []string) (string, error) {
	if len(args) == 1 {
		return args[0], nil
	}
	if term.IsTerminal(int(os.Stdin.Fd())) {
		return "", errors.New("no number given: pass an argument or pipe standard input")
	}

	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", fmt.Errorf("reading standard input: %w", err)
	}
	number := strings.TrimSpace(string(data))
	if number == "" {
		return "", errors.New("standard input was empty")
	}
	return number, nil
}

// recordConversion stores the result when history is enabled. Failures
// only warn; a broken history store must not fail a valid conversion.
func recordConversion(ctx context.Context, c domain.Conversion) {
	if historyStore == nil || !cfg.History {
		return
	}
	if ctx == nil {
		ctx = context.Background()
	}
	if err := historyStore.Record(ctx, c); err != nil {
		logger.Warn("recording history: %v", err)
	}
}
