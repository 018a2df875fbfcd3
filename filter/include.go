// Package filter implements the one-line include/exclude path-prefix
// predicate used to keep or drop a Compilation based on where its
// source file lives.
package filter

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/rizsotto/Bear/compilation"
)

// Predicate reports whether a Compilation's source should survive into
// the final database.
type Predicate func(compilation.Compilation) bool

// New builds a Predicate from lists of include and exclude directories
// or files (absolute, or relative to the current working directory).
// A source is kept when it falls under some include entry (or there are
// no include entries at all) and is not under any exclude entry.
func New(includes, excludes []string) Predicate {
	includeDirs := absolutize(includes)
	excludeDirs := absolutize(excludes)

	return func(c compilation.Compilation) bool {
		needed := len(includeDirs) == 0
		for _, dir := range includeDirs {
			if contains(dir, c.Source) {
				needed = true
				break
			}
		}
		for _, dir := range excludeDirs {
			if contains(dir, c.Source) {
				return false
			}
		}
		return needed
	}
}

func absolutize(dirs []string) []string {
	result := make([]string, len(dirs))
	for i, dir := range dirs {
		if filepath.IsAbs(dir) {
			result[i] = dir
			continue
		}
		cwd, err := os.Getwd()
		if err != nil {
			result[i] = dir
			continue
		}
		result[i] = filepath.Clean(filepath.Join(cwd, dir))
	}
	return result
}

func contains(container, path string) bool {
	return strings.HasPrefix(path, container)
}
