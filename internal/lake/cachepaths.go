// SPDX-License-Identifier: MPL-2.0

package lake

import (
	"io"

	"github.com/charmbracelet/log"
)

const (
	// CacheRoot is the directory, relative to the workspace, under which the
	// documentation build writes one subdirectory per documented module.
	CacheRoot = "docbuild/.lake/build/doc"
	// SearchDataPath holds the cross-module search index. It belongs to no
	// single dependency and is always cached.
	SearchDataPath = "docbuild/.lake/build/doc-data"
)

// implicitModules ship with the Lean toolchain and never appear in a manifest.
var implicitModules = []string{"Init", "Lake", "Lean", "Std"}

// ModulePath returns the cache path of a module's documentation directory.
func ModulePath(module string) string {
	return CacheRoot + "/" + module
}

// DeriveCachePaths returns the documentation directories to cache for m: the
// modules of every manifest package in manifest order, then the implicit
// toolchain modules, then SearchDataPath. Each package whose modules had to be
// guessed is reported on logger so a wrong guess can be added to the known table.
func DeriveCachePaths(m *Manifest, logger *log.Logger) []string {
	if logger == nil {
		logger = log.New(io.Discard)
	}

	var paths []string
	if m != nil {
		paths = make([]string, 0, len(m.Packages)+len(implicitModules)+1)
		for _, pkg := range m.Packages {
			modules, guessed := MapPackageToModules(pkg.Name)
			if guessed {
				logger.Warn("unknown package, guessing its documentation module; add it to the known module table if the guess is wrong",
					"package", pkg.Name, "module", modules[0])
			}
			for _, module := range modules {
				paths = append(paths, ModulePath(module))
			}
		}
	}

	for _, module := range implicitModules {
		paths = append(paths, ModulePath(module))
	}
	return append(paths, SearchDataPath)
}
