package repository

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

const sourceExt = ".rs"

// testDirs hold integration tests and benchmarks, excluded when tests are skipped
var testDirs = map[string]bool{"tests": true, "benches": true}

// SourceFiles returns every Rust source under root in lexicographic order.
// Build output and hidden directories are never visited.
func SourceFiles(root string, skipTests bool) ([]string, error) {
	var files []string
	if err := readSourcesRecursively(root, skipTests, &files); err != nil {
		return nil, err
	}
	sort.Strings(files)
	return files, nil
}

func readSourcesRecursively(dir string, skipTests bool, files *[]string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("failed to read directory %s: %w", dir, err)
	}
	for _, entry := range entries {
		name := entry.Name()
		if strings.HasPrefix(name, ".") {
			continue
		}
		path := filepath.Join(dir, name)
		if entry.IsDir() {
			if name == "target" || (skipTests && testDirs[name]) {
				continue
			}
			if err = readSourcesRecursively(path, skipTests, files); err != nil {
				return err
			}
			continue
		}
		if filepath.Ext(name) != sourceExt {
			continue
		}
		if skipTests && (name == "tests.rs" || strings.HasSuffix(name, "_test.rs")) {
			continue
		}
		*files = append(*files, path)
	}
	return nil
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
