package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/matthewnyc2/LLM/internal/engine"
)

var serversCmd = &cobra.Command{
	Use:   "servers [target]",
	Short: "List catalog servers by category",
	Long: `List every server in the catalog grouped by category.

With a target argument, servers currently selected for that target are
marked with *.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, err := newEngine()
		if err != nil {
			return err
		}

		ctx := context.Background()
		req := &engine.ListServersRequest{}
		if len(args) > 0 {
			req.Target = args[0]
		}

		categories, err := eng.ListServers(ctx, req)
		if err != nil {
			return err
		}

		if jsonOutput {
			return outputJSON(categories)
		}

		if len(categories) == 0 {
			PrintSection("Servers")
			PrintEmptyState("Catalog is empty")
			return nil
		}

		for _, cat := range categories {
			PrintSection(cat.Name)
			rows := make([][]string, 0, len(cat.Servers))
			for _, srv := range cat.Servers {
				key := "  " + srv.Key
				if srv.Selected {
					key = "* " + srv.Key
				}
				rows = append(rows, []string{key, srv.Description})
			}
			PrintTable([]string{"Server", "Description"}, rows)
		}
		return nil
	},
}
