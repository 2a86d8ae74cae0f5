package commands

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/gqlweave/gqlweave/internal/cli/config"
	"github.com/gqlweave/gqlweave/internal/cli/ui"
)

var (
	validateSchema    []string
	validateDocuments []string
)

// NewValidateCommand creates the validate command
func NewValidateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Check that the schema and documents load cleanly",
		Long: `Load the configured schema and operation documents and report any
parse or validation errors without generating anything.`,
		Example: `  # Validate the configured project
  gqlweave validate

  # Validate specific files
  gqlweave validate --schema schema/api.graphql --documents queries`,
		RunE: runValidate,
	}

	cmd.Flags().StringSliceVar(&validateSchema, "schema", nil, "Schema files or directories (default: from gqlweave.yml)")
	cmd.Flags().StringSliceVar(&validateDocuments, "documents", nil, "Operation document files or directories")

	return cmd
}

func runValidate(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		cfg = &config.Config{Schema: []string{"schema.graphql"}}
	}
	schemaPaths := cfg.Schema
	if len(validateSchema) > 0 {
		schemaPaths = validateSchema
	}
	documentPaths := cfg.Documents
	if len(validateDocuments) > 0 {
		documentPaths = validateDocuments
	}

	schema, err := loadSchema(schemaPaths)
	if err != nil {
		fmt.Fprint(cmd.ErrOrStderr(), ui.SchemaLoadError(strings.Join(schemaPaths, ", "), err, color.NoColor))
		return err
	}
	ui.WriteSuccess(cmd.OutOrStdout(), fmt.Sprintf("Schema loaded (%d types)", len(schema.Types)), color.NoColor)

	docs, err := loadDocuments(schema, documentPaths)
	if err != nil {
		fmt.Fprint(cmd.ErrOrStderr(), ui.DocumentLoadError(strings.Join(documentPaths, ", "), err, color.NoColor))
		return err
	}
	if len(documentPaths) > 0 {
		operations := 0
		for _, doc := range docs {
			operations += len(doc.Operations)
		}
		ui.WriteSuccess(cmd.OutOrStdout(), fmt.Sprintf("%d document(s) validated (%d operations)", len(docs), operations), color.NoColor)
	}

	return nil
}
