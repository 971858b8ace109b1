// SPDX-License-Identifier: MPL-2.0

// Package lake reads a Lake package's descriptor (lakefile.toml) and resolved
// dependency manifest (lake-manifest.json) and derives the values a documentation
// build pipeline needs: the package name, its default targets, the docs facets to
// build, and the per-module documentation directories worth caching between runs.
//
// Every derivation is deterministic: the consuming cache layer treats the cache path
// list as part of its key, so identical inputs always yield identical, identically
// ordered outputs.
package lake
