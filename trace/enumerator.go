package trace

import (
	"os"
	"path/filepath"
	"sort"
)

// FilePrefix is the constant contract between the injected interception
// library and this decoder: every trace file's basename begins with it.
const FilePrefix = "execution."

// Enumerate lists the regular files in dir whose basename begins with
// FilePrefix, sorted ascending by file creation time. Non-regular
// entries and files lacking the prefix are skipped silently.
func Enumerate(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	type candidate struct {
		path  string
		ctime int64
	}
	var candidates []candidate
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if len(name) < len(FilePrefix) || name[:len(FilePrefix)] != FilePrefix {
			continue
		}
		info, err := entry.Info()
		if err != nil || !info.Mode().IsRegular() {
			continue
		}
		path := filepath.Join(dir, name)
		candidates = append(candidates, candidate{path: path, ctime: ctime(info)})
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].ctime < candidates[j].ctime
	})

	files := make([]string, len(candidates))
	for i, c := range candidates {
		files[i] = c.path
	}
	return files, nil
}
