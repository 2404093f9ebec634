package cli

import (
	"context"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matthewnyc2/LLM/internal/engine"
)

var generateCmd = &cobra.Command{
	Use:   "generate <target>",
	Short: "Render a target's config to the preview directory",
	Long: `Render the target's template merged with its selection and write the
result under the generated/ directory instead of the live config paths.
Useful for inspecting the exact output before a deploy.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, err := newEngine()
		if err != nil {
			return err
		}

		ctx := context.Background()
		result, err := eng.Generate(ctx, &engine.GenerateRequest{Target: args[0]})
		if err != nil {
			return err
		}

		if jsonOutput {
			return outputJSON(result)
		}

		PrintSuccess("Rendered " + result.OutputPath)
		if result.TemplatePath != "" {
			PrintLabelValue("Template", result.TemplatePath)
		}
		if len(result.Servers) > 0 {
			PrintLabelValue("Servers", strings.Join(result.Servers, ", "))
		} else {
			PrintLabelValue("Servers", "none")
		}
		return nil
	},
}
