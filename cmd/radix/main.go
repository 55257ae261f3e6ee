// Command radix converts rational numbers between arbitrary bases.
package main

import (
	"fmt"
	"os"

	"github.com/radix-labs/radix-cli/internal/adapters/driven/config/file"
	"github.com/radix-labs/radix-cli/internal/adapters/driven/history/sqlite"
	"github.com/radix-labs/radix-cli/internal/adapters/driving/cli"
)

func main() {
	cfg, err := file.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "loading config: %v\n", err)
		os.Exit(1)
	}
	cli.SetConfig(cfg)

	if cfg.History {
		store, err := sqlite.NewStore("")
		if err != nil {
			// a broken history store must not block conversions
			fmt.Fprintf(os.Stderr, "history unavailable: %v\n", err)
		} else {
			cli.SetHistoryStore(store)
			defer store.Close()
		}
	}

	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
