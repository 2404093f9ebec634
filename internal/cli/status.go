package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matthewnyc2/LLM/internal/engine"
)

var statusCmd = &cobra.Command{
	Use:   "status <target>",
	Short: "Show a target's selection and destinations",
	Long: `Display the servers selected for a target and the destination paths
a deploy would write, including any path that cannot be resolved.`,
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

		req := &engine.StatusRequest{
			Target: args[0],
			CWD:    cwd,
		}

		result, err := eng.Status(ctx, req)
		if err != nil {
			return err
		}

		if jsonOutput {
			return outputJSON(result)
		}

		PrintSection(result.DisplayName)
		PrintLabelValue("Target", result.Target)
		if result.LaunchCommand != "" {
			PrintLabelValue("Launch", result.LaunchCommand)
		}
		if len(result.Servers) > 0 {
			PrintLabelValue("Servers", strings.Join(result.Servers, ", "))
		} else {
			PrintLabelValue("Servers", "none")
		}
		if result.UpdatedAt != "" {
			PrintLabelValue("Updated", result.UpdatedAt)
		}

		fmt.Println()
		PrintSubsection("Destinations:")
		if len(result.Destinations) == 0 {
			PrintEmptyState("No destinations for this platform")
			return nil
		}
		rows := make([][]string, 0, len(result.Destinations))
		for _, dest := range result.Destinations {
			state := "missing"
			switch {
			case dest.Problem != "":
				state = dest.Problem
			case dest.Exists:
				state = "exists"
			}
			rows = append(rows, []string{dest.Class, dest.Path, state})
		}
		PrintTable([]string{"Class", "Path", "State"}, rows)
		return nil
	},
}
