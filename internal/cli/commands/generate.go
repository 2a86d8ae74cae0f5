package commands

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/gqlweave/gqlweave/internal/cli/config"
	"github.com/gqlweave/gqlweave/internal/cli/ui"
	"github.com/gqlweave/gqlweave/internal/codegen"
	cgerrors "github.com/gqlweave/gqlweave/internal/codegen/errors"
	"github.com/gqlweave/gqlweave/internal/codegen/tmplctx"
)

var (
	generateSchema    []string
	generateDocuments []string
	generateOutput    string
	generateJSON      bool
	generateVerbose   bool
)

// NewGenerateCommand creates the generate command
func NewGenerateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Normalize the schema into a template context",
		Long: `Load the configured GraphQL schema and optional operation documents,
normalize them into the canonical template context, and write it as JSON.

The pipeline:
  1. Registry      - extract the name→type map in declaration order
  2. Introspection - collect introspection enums the documents reach
  3. Filtering     - drop built-in scalars and reserved types
  4. Classification - route each type to its per-kind transformer
  5. Assembly      - aggregate per-kind lists and presence flags`,
		Example: `  # Generate with settings from gqlweave.yml
  gqlweave generate

  # Override the schema and output paths
  gqlweave generate --schema schema/api.graphql --output build/context.json

  # Include operation documents so queried introspection enums survive
  gqlweave generate --documents queries

  # Machine-readable errors for editor integrations
  gqlweave generate --json`,
		RunE: runGenerate,
	}

	cmd.Flags().StringSliceVar(&generateSchema, "schema", nil, "Schema files or directories (default: from gqlweave.yml)")
	cmd.Flags().StringSliceVar(&generateDocuments, "documents", nil, "Operation document files or directories")
	cmd.Flags().StringVarP(&generateOutput, "output", "o", "", "Output path for the context JSON")
	cmd.Flags().BoolVar(&generateJSON, "json", false, "Output errors in JSON format")
	cmd.Flags().BoolVarP(&generateVerbose, "verbose", "v", false, "Show detailed pipeline output")

	return cmd
}

func runGenerate(cmd *cobra.Command, args []string) error {
	startTime := time.Now()

	successColor := color.New(color.FgGreen, color.Bold)
	infoColor := color.New(color.FgCyan)
	warningColor := color.New(color.FgYellow)

	// Load config, then apply flag overrides
	cfg, err := config.Load()
	if err != nil {
		if generateVerbose {
			warningColor.Printf("Warning: %v\n", err)
		}
		cfg = &config.Config{Schema: []string{"schema.graphql"}, Output: "generated/context.json"}
	}
	schemaPaths := cfg.Schema
	if len(generateSchema) > 0 {
		schemaPaths = generateSchema
	}
	documentPaths := cfg.Documents
	if len(generateDocuments) > 0 {
		documentPaths = generateDocuments
	}
	outputPath := cfg.Output
	if generateOutput != "" {
		outputPath = generateOutput
	}

	if generateVerbose {
		infoColor.Printf("Loading schema from %v...\n", schemaPaths)
	}
	schema, err := loadSchema(schemaPaths)
	if err != nil {
		return reportGenerateError(cmd, "schema", strings.Join(schemaPaths, ", "), err)
	}

	docs, err := loadDocuments(schema, documentPaths)
	if err != nil {
		return reportGenerateError(cmd, "documents", strings.Join(documentPaths, ", "), err)
	}
	if generateVerbose && len(docs) > 0 {
		infoColor.Printf("Loaded %d operation document(s)\n", len(docs))
	}

	logger := zap.NewNop()
	if generateVerbose {
		if dev, err := zap.NewDevelopment(); err == nil {
			logger = dev
		}
	}

	ctx, err := codegen.NewBuilder(codegen.WithLogger(logger)).Build(schema, docs)
	if err != nil {
		return reportGenerateError(cmd, "context", "", err)
	}

	if err := writeContext(ctx, outputPath); err != nil {
		return reportGenerateError(cmd, "output", outputPath, err)
	}

	if generateVerbose {
		summary := ui.NewTable(cmd.OutOrStdout(), []string{"Kind", "Count"}, nil)
		summary.AddRow("types", strconv.Itoa(len(ctx.Types)))
		summary.AddRow("inputTypes", strconv.Itoa(len(ctx.InputTypes)))
		summary.AddRow("enums", strconv.Itoa(len(ctx.Enums)))
		summary.AddRow("unions", strconv.Itoa(len(ctx.Unions)))
		summary.AddRow("interfaces", strconv.Itoa(len(ctx.Interfaces)))
		summary.AddRow("scalars", strconv.Itoa(len(ctx.Scalars)))
		summary.AddRow("directives", strconv.Itoa(len(ctx.Directives)))
		summary.Render()
	}

	successColor.Printf("✓ Context written to %s (%s)\n", outputPath, time.Since(startTime).Round(time.Millisecond))
	return nil
}

func writeContext(ctx *tmplctx.TemplateContext, outputPath string) error {
	data, err := json.MarshalIndent(ctx, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal context: %w", err)
	}
	if dir := filepath.Dir(outputPath); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}
	if err := os.WriteFile(outputPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write context: %w", err)
	}
	return nil
}

func reportGenerateError(cmd *cobra.Command, stage, subject string, err error) error {
	if generateJSON {
		if perr, ok := err.(*cgerrors.PipelineError); ok {
			if out, jerr := perr.ToJSON(); jerr == nil {
				fmt.Fprintln(cmd.ErrOrStderr(), out)
				return err
			}
		}
		payload, _ := json.Marshal(map[string]string{"stage": stage, "error": err.Error()})
		fmt.Fprintln(cmd.ErrOrStderr(), string(payload))
		return err
	}

	switch stage {
	case "schema":
		fmt.Fprint(cmd.ErrOrStderr(), ui.SchemaLoadError(subject, err, color.NoColor))
	case "documents":
		fmt.Fprint(cmd.ErrOrStderr(), ui.DocumentLoadError(subject, err, color.NoColor))
	default:
		ui.WriteError(cmd.ErrOrStderr(), ui.ErrorOptions{
			Level:   ui.ErrorLevelError,
			Context: "GENERATE FAILED",
			Problem: err.Error(),
			NoColor: color.NoColor,
		})
	}
	return err
}
