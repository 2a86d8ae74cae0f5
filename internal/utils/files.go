package utils

import (
	"io/fs"
	"os"
	"path/filepath"
	"sort"
)

// graphqlExtensions are the file extensions treated as GraphQL sources
var graphqlExtensions = map[string]struct{}{
	".graphql":  {},
	".graphqls": {},
	".gql":      {},
}

// FindGraphQLFiles recursively finds all GraphQL files in the specified
// directory, sorted by path for deterministic load order
func FindGraphQLFiles(dir string) ([]string, error) {
	var files []string

	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		// Skip directories
		if d.IsDir() {
			return nil
		}

		if _, ok := graphqlExtensions[filepath.Ext(path)]; ok {
			files = append(files, path)
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	sort.Strings(files)
	return files, nil
}

// ExpandPaths resolves each entry to a list of GraphQL files: directories
// are walked recursively, plain files are taken as-is
func ExpandPaths(paths []string) ([]string, error) {
	var files []string

	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			return nil, err
		}
		if info.IsDir() {
			found, err := FindGraphQLFiles(path)
			if err != nil {
				return nil, err
			}
			files = append(files, found...)
			continue
		}
		files = append(files, path)
	}

	return files, nil
}
