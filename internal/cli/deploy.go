package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/matthewnyc2/LLM/internal/deploy"
	"github.com/matthewnyc2/LLM/internal/engine"
)

var (
	deployClasses []string
	deployDryRun  bool
)

var deployCmd = &cobra.Command{
	Use:   "deploy <target>",
	Short: "Write the selection into a target's config files",
	Long: `Merge the target's selected servers into every config file the target
reads. Existing settings in those files are preserved; only the managed
server entries change.

By default the host platform's classes are written (windows or unix, plus
project). Use --class to deploy a subset. A destination that fails leaves
its file untouched and never blocks the other destinations.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, err := newEngine()
		if err != nil {
			return err
		}

		ctx := context.Background()
		cwd, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("failed to get current directory: %w", err)
		}

		req := &engine.DeployRequest{
			Target:  args[0],
			Classes: deployClasses,
			DryRun:  deployDryRun,
			CWD:     cwd,
		}

		result, err := eng.Deploy(ctx, req)
		if err != nil {
			return err
		}

		if jsonOutput {
			return outputJSON(result)
		}

		if result.DryRun {
			PrintSection("Dry Run")
		} else {
			PrintSection(fmt.Sprintf("Deploy %s", result.Target))
		}
		for _, res := range result.Results {
			printDeployResult(res)
		}

		fmt.Println()
		summary := fmt.Sprintf("%d written, %d unchanged, %d failed", result.Written(), result.Unchanged(), result.Failed())
		if result.DryRun {
			summary = fmt.Sprintf("%d would be written, %d unchanged, %d failed", result.Written(), result.Unchanged(), result.Failed())
		}
		if result.Failed() > 0 {
			PrintWarning(summary)
		} else {
			PrintSuccess(summary)
		}
		return nil
	},
}

// printDeployResult prints exactly one line per destination:
// ✓ written, − unchanged, ✗ failed.
func printDeployResult(res deploy.Result) {
	switch {
	case res.Err != nil:
		_, _ = errorColor.Printf("✗ %s: %v\n", res.Path, res.Err)
	case res.Unchanged:
		_, _ = dimColor.Printf("− %s (unchanged)\n", res.Path)
	case res.Created:
		_, _ = successColor.Printf("✓ %s (created)\n", res.Path)
	default:
		_, _ = successColor.Printf("✓ %s\n", res.Path)
	}
}

func init() {
	deployCmd.Flags().StringSliceVar(&deployClasses, "class", nil, "Deployment class to write (windows, unix, project); repeatable")
	deployCmd.Flags().BoolVar(&deployDryRun, "dry-run", false, "Show what would be written without writing")
}
