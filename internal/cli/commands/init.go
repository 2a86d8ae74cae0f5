package commands

import (
	"fmt"
	"os"

	"github.com/AlecAivazis/survey/v2"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	initYes    bool
	initForce  bool
	initSchema string
	initOutput string
)

const configFileName = "gqlweave.yml"

// NewInitCommand creates the init command
func NewInitCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create a gqlweave.yml in the current directory",
		Long: `Create a gqlweave.yml configuration file. Without --yes the command
prompts for the schema, documents, and output paths.`,
		Example: `  # Interactive setup
  gqlweave init

  # Accept the defaults without prompting
  gqlweave init --yes

  # Non-interactive with a custom schema path
  gqlweave init --yes --schema schema/api.graphql`,
		RunE: runInit,
	}

	cmd.Flags().BoolVarP(&initYes, "yes", "y", false, "Accept defaults without prompting")
	cmd.Flags().BoolVarP(&initForce, "force", "f", false, "Overwrite an existing gqlweave.yml")
	cmd.Flags().StringVar(&initSchema, "schema", "schema.graphql", "Schema file or directory")
	cmd.Flags().StringVar(&initOutput, "output", "generated/context.json", "Output path for the context JSON")

	return cmd
}

func runInit(cmd *cobra.Command, args []string) error {
	successColor := color.New(color.FgGreen, color.Bold)

	if _, err := os.Stat(configFileName); err == nil && !initForce {
		return fmt.Errorf("%s already exists (use --force to overwrite)", configFileName)
	}

	schemaPath := initSchema
	documentsPath := ""
	outputPath := initOutput

	if !initYes {
		prompt := &survey.Input{
			Message: "Schema file or directory:",
			Default: schemaPath,
		}
		if err := survey.AskOne(prompt, &schemaPath, survey.WithValidator(survey.Required)); err != nil {
			return err
		}

		prompt = &survey.Input{
			Message: "Operation documents directory (empty for none):",
		}
		if err := survey.AskOne(prompt, &documentsPath); err != nil {
			return err
		}

		prompt = &survey.Input{
			Message: "Context output path:",
			Default: outputPath,
		}
		if err := survey.AskOne(prompt, &outputPath, survey.WithValidator(survey.Required)); err != nil {
			return err
		}
	}

	content := fmt.Sprintf("schema:\n  - %s\n", schemaPath)
	if documentsPath != "" {
		content += fmt.Sprintf("documents:\n  - %s\n", documentsPath)
	}
	content += fmt.Sprintf("output: %s\n", outputPath)

	if err := os.WriteFile(configFileName, []byte(content), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", configFileName, err)
	}

	successColor.Printf("✓ Created %s\n", configFileName)
	return nil
}
