package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var infoCmd = &cobra.Command{
	Use:   "info <server>",
	Short: "Show one catalog server's definition",
	Long:  `Display a catalog server's metadata and the config block a deploy would write for it.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, err := newEngine()
		if err != nil {
			return err
		}

		ctx := context.Background()
		result, err := eng.DescribeServer(ctx, args[0])
		if err != nil {
			return err
		}

		if jsonOutput {
			return outputJSON(result)
		}

		PrintSection(result.Name)
		PrintLabelValue("Key", result.Key)
		PrintLabelValue("Category", result.Category)
		if result.Description != "" {
			PrintLabelValue("Description", result.Description)
		}
		if result.Repo != "" {
			PrintLabelValue("Repo", result.Repo)
		}

		fmt.Println()
		PrintSubsection("Config:")
		PrintInfo(result.Config)
		return nil
	},
}
