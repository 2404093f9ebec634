package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matthewnyc2/LLM/internal/engine"
)

var clearCmd = &cobra.Command{
	Use:   "clear <target>",
	Short: "Clear a target's selection",
	Long: `Remove every server from the named target's selection.

Already-deployed config files are not touched; run deploy afterwards to
empty the managed server entries in the target's files too.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, err := newEngine()
		if err != nil {
			return err
		}

		ctx := context.Background()
		result, err := eng.ClearSelection(ctx, &engine.ClearRequest{Target: args[0]})
		if err != nil {
			return err
		}

		if jsonOutput {
			return outputJSON(result)
		}

		if len(result.Cleared) == 0 {
			PrintInfo(fmt.Sprintf("Nothing selected for %s", result.Target))
			return nil
		}
		PrintSuccess(fmt.Sprintf("Cleared %s for %s", PrintCount(len(result.Cleared), "server", "servers"), result.Target))
		return nil
	},
}
