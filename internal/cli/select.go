package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matthewnyc2/LLM/internal/engine"
)

var selectReplace bool

var selectCmd = &cobra.Command{
	Use:   "select <target> <server>...",
	Short: "Add servers to a target's selection",
	Long: `Add catalog servers to the named target's selection.

Names not present in the catalog are reported and skipped. With --replace
the given servers become the entire selection instead of merging into it.`,
	Args: cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, err := newEngine()
		if err != nil {
			return err
		}

		ctx := context.Background()
		req := &engine.SelectRequest{
			Target:  args[0],
			Servers: args[1:],
			Replace: selectReplace,
		}

		result, err := eng.Select(ctx, req)
		if err != nil {
			return err
		}

		if jsonOutput {
			return outputJSON(result)
		}

		for _, name := range result.Skipped {
			PrintWarning(fmt.Sprintf("unknown server %q skipped", name))
		}
		if len(result.Added) > 0 {
			PrintSuccess(fmt.Sprintf("Added %s to %s", PrintCount(len(result.Added), "server", "servers"), result.Target))
		} else {
			PrintInfo("Selection unchanged")
		}
		if len(result.Selected) > 0 {
			PrintLabelValue("Selected", strings.Join(result.Selected, ", "))
		}
		return nil
	},
}

func init() {
	selectCmd.Flags().BoolVar(&selectReplace, "replace", false, "Replace the selection instead of merging into it")
}
