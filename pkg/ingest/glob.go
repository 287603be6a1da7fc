package ingest

import (
	"strings"

	"github.com/spf13/afero"
)

// ExpandPaths expands glob patterns into file paths while keeping the order
// in which patterns were given. Matches of a single pattern are returned in
// lexical order. A name that exists as given is never expanded, even if it
// contains glob characters. Plain paths, patterns that match nothing and
// malformed patterns are passed through unchanged so the open failure can be
// reported against the name the user typed. Duplicates are kept: a file named
// twice is read twice.
func ExpandPaths(fs afero.Fs, patterns []string) []string {
	result := make([]string, 0, len(patterns))

	for _, pattern := range patterns {
		if !hasMeta(pattern) || exists(fs, pattern) {
			result = append(result, pattern)
			continue
		}

		matches, err := afero.Glob(fs, pattern)
		if err != nil || len(matches) == 0 {
			result = append(result, pattern)
			continue
		}

		result = append(result, matches...)
	}

	return result
}

func hasMeta(path string) bool {
	return strings.ContainsAny(path, `*?[\`)
}

func exists(fs afero.Fs, path string) bool {
	_, err := fs.Stat(path)
	return err == nil
}
