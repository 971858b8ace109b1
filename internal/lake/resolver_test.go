// SPDX-License-Identifier: MPL-2.0

package lake

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/lean-docgen/docgen-action/internal/issue"

	"github.com/charmbracelet/log"
	"github.com/google/go-cmp/cmp"
)

func writePackage(t *testing.T, lakefile, manifest string) string {
	t.Helper()

	dir := t.TempDir()
	if lakefile != "" {
		if err := os.WriteFile(filepath.Join(dir, DescriptorFile), []byte(lakefile), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	if manifest != "" {
		if err := os.WriteFile(filepath.Join(dir, ManifestFile), []byte(manifest), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	return dir
}

func TestResolver_Resolve(t *testing.T) {
	t.Parallel()

	dir := writePackage(t,
		"name = \"demo\"\ndefaultTargets = [\"Demo\"]\n",
		`{"version": 7, "packages": [{"name": "batteries", "type": "git"}]}`)

	var logs bytes.Buffer
	out, err := NewResolver(log.New(&logs)).Resolve(context.Background(), dir)
	if err != nil {
		t.Fatalf("Resolve() unexpected error: %v", err)
	}

	if out.Name != "demo" {
		t.Errorf("Name = %q, want %q", out.Name, "demo")
	}
	if got := out.DefaultTargetsJSON(); got != `["Demo"]` {
		t.Errorf("DefaultTargetsJSON() = %q", got)
	}
	if got := out.DocsFacets(); got != "Demo:docs" {
		t.Errorf("DocsFacets() = %q", got)
	}
	want := []string{
		"docbuild/.lake/build/doc/Batteries",
		"docbuild/.lake/build/doc/Init",
		"docbuild/.lake/build/doc/Lake",
		"docbuild/.lake/build/doc/Lean",
		"docbuild/.lake/build/doc/Std",
		"docbuild/.lake/build/doc-data",
	}
	if diff := cmp.Diff(want, out.CachePaths); diff != "" {
		t.Errorf("CachePaths mismatch (-want +got):\n%s", diff)
	}
	if !strings.Contains(logs.String(), "batteries") {
		t.Errorf("expected a guess warning for batteries, got:\n%s", logs.String())
	}
}

func TestResolver_ResolveErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		lakefile string
		manifest string
		want     string
	}{
		{name: "missing lakefile", manifest: `{"packages": []}`, want: "Could not find `lakefile.toml`"},
		{name: "missing manifest", lakefile: "name = \"demo\"\ndefaultTargets = []\n", want: "Could not find `lake-manifest.json`"},
		{name: "malformed lakefile", lakefile: "name = ", manifest: `{"packages": []}`, want: "Could not parse `lakefile.toml`"},
		{name: "malformed manifest", lakefile: "name = \"demo\"\ndefaultTargets = []\n", manifest: "{", want: "Could not parse `lake-manifest.json`"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			dir := writePackage(t, tt.lakefile, tt.manifest)
			out, err := NewResolver(nil).Resolve(context.Background(), dir)
			if err == nil {
				t.Fatal("Resolve() expected error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error = %q, want it to contain %q", err, tt.want)
			}
			var ae *issue.ActionableError
			if !errors.As(err, &ae) || len(ae.Hints) == 0 {
				t.Errorf("error should be an actionable error with a hint: %v", err)
			}
			if out.Name != "" || out.CachePaths != nil {
				t.Errorf("Resolve() returned partial outputs on error: %+v", out)
			}
		})
	}
}

func TestResolver_ResolveCanceled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewResolver(nil).Resolve(ctx, t.TempDir())
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Resolve() error = %v, want context.Canceled", err)
	}
}
