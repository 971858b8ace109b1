// SPDX-License-Identifier: MPL-2.0

package lake

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const sampleManifest = `{
  "version": "1.1.0",
  "packagesDir": ".lake/packages",
  "packages": [
    {"url": "https://github.com/leanprover-community/batteries",
     "type": "git",
     "subDir": null,
     "scope": "leanprover-community",
     "rev": "0123456789abcdef",
     "name": "batteries",
     "manifestFile": "lake-manifest.json",
     "inputRev": "main",
     "inherited": true,
     "configFile": "lakefile.toml"},
    {"type": "path", "scope": "", "name": "import-graph", "manifestFile": "lake-manifest.json", "inherited": false, "dir": "../import-graph"}
  ],
  "name": "demo",
  "lakeDir": ".lake"
}`

func TestParseManifest(t *testing.T) {
	t.Parallel()

	m, err := ParseManifest([]byte(sampleManifest))
	if err != nil {
		t.Fatalf("ParseManifest() unexpected error: %v", err)
	}
	if len(m.Packages) != 2 {
		t.Fatalf("got %d packages, want 2", len(m.Packages))
	}
	if m.Packages[0].Name != "batteries" || m.Packages[1].Name != "import-graph" {
		t.Errorf("package order not preserved: %+v", m.Packages)
	}
	if !m.Packages[0].Inherited || m.Packages[0].Type != "git" || m.Packages[1].Dir != "../import-graph" {
		t.Errorf("informational fields not decoded: %+v", m.Packages)
	}
	if m.Name != "demo" || string(m.Version) != `"1.1.0"` {
		t.Errorf("top-level fields not decoded: name=%q version=%s", m.Name, m.Version)
	}
}

func TestParseManifest_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
		wantErr error
	}{
		{name: "missing packages", content: `{"version": 7}`, wantErr: ErrMissingPackages},
		{name: "null packages", content: `{"packages": null}`, wantErr: ErrMissingPackages},
		{name: "unnamed package", content: `{"packages": [{"name": "a"}, {"type": "git"}]}`, wantErr: ErrUnnamedPackage},
		{name: "not json", content: `packages = []`},
		{name: "wrong shape", content: `{"packages": {"name": "a"}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := ParseManifest([]byte(tt.content))
			if err == nil {
				t.Fatal("ParseManifest() expected error")
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Errorf("ParseManifest() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestParseManifest_EmptyPackages(t *testing.T) {
	t.Parallel()

	m, err := ParseManifest([]byte(`{"version": 7, "packages": []}`))
	if err != nil {
		t.Fatalf("ParseManifest() unexpected error: %v", err)
	}
	if len(m.Packages) != 0 {
		t.Errorf("got %d packages, want 0", len(m.Packages))
	}
}

func TestReadManifest_Missing(t *testing.T) {
	t.Parallel()

	_, err := ReadManifest(filepath.Join(t.TempDir(), ManifestFile))
	if err == nil {
		t.Fatal("ReadManifest() expected error for a missing file")
	}
	for _, want := range []string{"Could not find `lake-manifest.json`", "Hint: run `lake update`"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error missing %q:\n%s", want, err)
		}
	}
}

func TestReadManifest_Malformed(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), ManifestFile)
	if err := os.WriteFile(path, []byte(`{"packages": [`), 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := ReadManifest(path)
	if err == nil || !strings.HasPrefix(err.Error(), "Could not parse `lake-manifest.json`.") {
		t.Errorf("unexpected error: %v", err)
	}
}
