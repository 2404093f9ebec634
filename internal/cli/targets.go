package cli

import (
	"context"
	"strconv"

	"github.com/spf13/cobra"
)

var targetsCmd = &cobra.Command{
	Use:   "targets",
	Short: "List configured target tools",
	Long: `List every target tool llm can deploy to, with its config format and
how many servers are currently selected for it.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, err := newEngine()
		if err != nil {
			return err
		}

		ctx := context.Background()
		targetList, err := eng.ListTargets(ctx)
		if err != nil {
			return err
		}

		if jsonOutput {
			return outputJSON(targetList)
		}

		if len(targetList) == 0 {
			PrintSection("Targets")
			PrintEmptyState("No targets configured")
			return nil
		}

		PrintSection("Targets")
		rows := make([][]string, 0, len(targetList))
		for _, tgt := range targetList {
			rows = append(rows, []string{tgt.Name, tgt.DisplayName, tgt.Format, strconv.Itoa(tgt.SelectedCount)})
		}
		PrintTable([]string{"Name", "Display Name", "Format", "Selected"}, rows)
		return nil
	},
}
