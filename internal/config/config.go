// SPDX-License-Identifier: MPL-2.0

package config

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"
)

// DeprecationMessage is the warning emitted when a legacy input name is used.
func DeprecationMessage(oldName, newName string) string {
	return fmt.Sprintf("The input parameter '%s' is deprecated and will be removed in a future version. Please use '%s' instead.", oldName, newName)
}

// ResolveInput returns the value of an input that was renamed from oldName to
// newName. A non-empty legacy value always wins and reports deprecated; otherwise
// the new value is used, and def applies when both are empty.
func ResolveInput(src InputSource, newName, oldName, def string) (value string, deprecated bool) {
	if old := src.Input(oldName); old != "" {
		return old, true
	}
	if v := src.Input(newName); v != "" {
		return v, false
	}
	return def, false
}

// Resolve resolves every renamed input. Legacy names are reported on logger;
// values that later steps will not be able to interpret are reported too.
// Resolution itself never fails.
func Resolve(src InputSource, logger *log.Logger) Inputs {
	if logger == nil {
		logger = log.New(io.Discard)
	}

	var in Inputs
	for _, r := range RenamedInputs() {
		value, deprecated := ResolveInput(src, r.Name, r.Legacy, r.Default)
		if deprecated {
			logger.Warn(DeprecationMessage(r.Legacy, r.Name))
		}
		*r.field(&in) = value
	}

	if _, err := in.APIDocsEnabled(); err != nil {
		logger.Warn("api-docs is not a boolean; later steps may reject it", "value", in.APIDocs)
	}
	if argv, err := in.BuildArgv(); err != nil {
		logger.Warn("build-args cannot be split into arguments", "err", err)
	} else {
		logger.Debug("resolved build arguments", "argv", argv)
	}

	return in
}
