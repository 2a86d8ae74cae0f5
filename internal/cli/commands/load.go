package commands

import (
	"fmt"
	"os"

	"github.com/vektah/gqlparser/v2"
	"github.com/vektah/gqlparser/v2/ast"

	"github.com/gqlweave/gqlweave/internal/utils"
)

// loadSchema reads every GraphQL file under the given paths and loads them
// as one schema. Path order is preserved so declaration order is stable.
func loadSchema(paths []string) (*ast.Schema, error) {
	files, err := utils.ExpandPaths(paths)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no schema files found in %v", paths)
	}

	sources := make([]*ast.Source, 0, len(files))
	for _, file := range files {
		data, err := os.ReadFile(file)
		if err != nil {
			return nil, err
		}
		sources = append(sources, &ast.Source{Name: file, Input: string(data)})
	}

	schema, err := gqlparser.LoadSchema(sources...)
	if err != nil {
		return nil, err
	}
	return schema, nil
}

// loadDocuments parses and validates each operation-document file against
// the schema. Returns one document per file, in path order.
func loadDocuments(schema *ast.Schema, paths []string) ([]*ast.QueryDocument, error) {
	if len(paths) == 0 {
		return nil, nil
	}

	files, err := utils.ExpandPaths(paths)
	if err != nil {
		return nil, err
	}

	documents := make([]*ast.QueryDocument, 0, len(files))
	for _, file := range files {
		data, err := os.ReadFile(file)
		if err != nil {
			return nil, err
		}
		doc, errs := gqlparser.LoadQuery(schema, string(data))
		if len(errs) > 0 {
			return nil, fmt.Errorf("%s: %w", file, errs)
		}
		documents = append(documents, doc)
	}
	return documents, nil
}
