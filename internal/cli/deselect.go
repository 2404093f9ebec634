package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matthewnyc2/LLM/internal/engine"
)

var deselectCmd = &cobra.Command{
	Use:   "deselect <target> <server>...",
	Short: "Remove servers from a target's selection",
	Long: `Remove servers from the named target's selection.

Names not currently selected are reported and skipped. The servers stay in
the catalog and can be selected again later.`,
	Args: cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, err := newEngine()
		if err != nil {
			return err
		}

		ctx := context.Background()
		req := &engine.DeselectRequest{
			Target:  args[0],
			Servers: args[1:],
		}

		result, err := eng.Deselect(ctx, req)
		if err != nil {
			return err
		}

		if jsonOutput {
			return outputJSON(result)
		}

		for _, name := range result.Skipped {
			PrintWarning(fmt.Sprintf("%q was not selected", name))
		}
		if len(result.Removed) > 0 {
			PrintSuccess(fmt.Sprintf("Removed %s from %s", PrintCount(len(result.Removed), "server", "servers"), result.Target))
		} else {
			PrintInfo("Selection unchanged")
		}
		if len(result.Selected) > 0 {
			PrintLabelValue("Selected", strings.Join(result.Selected, ", "))
		} else {
			PrintEmptyState("No servers selected")
		}
		return nil
	},
}
