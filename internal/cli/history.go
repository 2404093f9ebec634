package cli

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matthewnyc2/LLM/internal/engine"
)

var historyLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show logged operations",
	Long:  `Display the operation log, oldest first: selections, deploys, renders and inits.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, err := newEngine()
		if err != nil {
			return err
		}

		ctx := context.Background()
		result, err := eng.History(ctx, &engine.HistoryRequest{Limit: historyLimit})
		if err != nil {
			return err
		}

		if jsonOutput {
			return outputJSON(result)
		}

		if len(result.Entries) == 0 {
			PrintEmptyState("No history recorded")
			return nil
		}

		for _, entry := range result.Entries {
			keys := make([]string, 0, len(entry.Details))
			for k := range entry.Details {
				keys = append(keys, k)
			}
			sort.Strings(keys)
			parts := make([]string, 0, len(keys))
			for _, k := range keys {
				parts = append(parts, k+"="+entry.Details[k])
			}

			_, _ = dimColor.Printf("%s  ", entry.Timestamp)
			_, _ = labelColor.Printf("%-10s", entry.Event)
			fmt.Printf(" %s\n", strings.Join(parts, " "))
		}
		return nil
	},
}

func init() {
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 0, "Show only the last n entries (0 = all)")
}
