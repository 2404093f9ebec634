package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize the llm data directory",
	Long: `Create the llm data directory (~/.llm, or $LLM_ROOT) with a template
skeleton for every target plus commented catalog.yaml and targets.yaml
seeds. Files that already exist are left alone.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, err := newEngine()
		if err != nil {
			return err
		}

		ctx := context.Background()
		result, err := eng.Init(ctx)
		if err != nil {
			return err
		}

		if jsonOutput {
			return outputJSON(result)
		}

		if len(result.Created) == 0 {
			PrintInfo(fmt.Sprintf("Already initialized at %s", result.Root))
			return nil
		}
		PrintSuccess(fmt.Sprintf("Initialized %s", result.Root))
		PrintList(result.Created, 1)
		return nil
	},
}
