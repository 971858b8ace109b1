// SPDX-License-Identifier: MPL-2.0

package lake

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// Output keys published to the pipeline.
const (
	OutputName                       = "name"
	OutputDefaultTargets             = "default_targets"
	OutputDocsFacets                 = "docs_facets"
	OutputCachedDocbuildDependencies = "cached_docbuild_dependencies"
)

const docsFacetSuffix = ":docs"

type (
	// Outputs is the complete set of values the resolver publishes. It is only
	// ever built whole, so publishing it is all-or-nothing.
	Outputs struct {
		Name           string
		DefaultTargets []string
		CachePaths     []string

		defaultTargetsJSON string
	}

	// Output is one published key/value pair.
	Output struct {
		Key   string
		Value string
	}
)

// BuildOutputs formats the descriptor and the derived cache paths.
func BuildOutputs(d *Descriptor, cachePaths []string) (Outputs, error) {
	targets := d.DefaultTargets
	if targets == nil {
		targets = []string{}
	}

	encoded, err := marshalCompact(targets)
	if err != nil {
		return Outputs{}, fmt.Errorf("encoding default targets: %w", err)
	}

	return Outputs{
		Name:               d.Name,
		DefaultTargets:     append([]string(nil), targets...),
		CachePaths:         append([]string(nil), cachePaths...),
		defaultTargetsJSON: encoded,
	}, nil
}

// DefaultTargetsJSON returns the default targets as a compact JSON array.
func (o Outputs) DefaultTargetsJSON() string {
	return o.defaultTargetsJSON
}

// DocsFacets returns "<target>:docs" for every default target, space separated.
func (o Outputs) DocsFacets() string {
	facets := make([]string, len(o.DefaultTargets))
	for i, target := range o.DefaultTargets {
		facets[i] = target + docsFacetSuffix
	}
	return strings.Join(facets, " ")
}

// CachedDocbuildDependencies returns the cache paths, newline separated.
func (o Outputs) CachedDocbuildDependencies() string {
	return strings.Join(o.CachePaths, "\n")
}

// Entries returns the four published outputs in a fixed order.
func (o Outputs) Entries() []Output {
	return []Output{
		{Key: OutputName, Value: o.Name},
		{Key: OutputDefaultTargets, Value: o.DefaultTargetsJSON()},
		{Key: OutputDocsFacets, Value: o.DocsFacets()},
		{Key: OutputCachedDocbuildDependencies, Value: o.CachedDocbuildDependencies()},
	}
}

// Markdown renders the outputs as a step summary.
func (o Outputs) Markdown() string {
	var b strings.Builder

	fmt.Fprintf(&b, "### Lake package `%s`\n\n", o.Name)
	b.WriteString("| Output | Value |\n|---|---|\n")
	fmt.Fprintf(&b, "| `%s` | `%s` |\n", OutputName, o.Name)
	fmt.Fprintf(&b, "| `%s` | `%s` |\n", OutputDefaultTargets, o.DefaultTargetsJSON())
	fmt.Fprintf(&b, "| `%s` | `%s` |\n", OutputDocsFacets, o.DocsFacets())

	fmt.Fprintf(&b, "\n#### Cached documentation paths (%d)\n\n", len(o.CachePaths))
	for _, p := range o.CachePaths {
		fmt.Fprintf(&b, "- `%s`\n", p)
	}
	return b.String()
}

// marshalCompact encodes v without HTML escaping or a trailing newline, matching
// what JSON consumers in the workflow expression language expect.
func marshalCompact(v any) (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return "", err
	}
	return strings.TrimSuffix(buf.String(), "\n"), nil
}
