// SPDX-License-Identifier: MPL-2.0

package ghaction

import "errors"

// ErrEmptyName is returned when an entry has no name.
var ErrEmptyName = errors.New("entry name must not be empty")

type (
	// Entry is one published name/value pair.
	Entry struct {
		Name  string
		Value string
	}

	// Publisher delivers values to the pipeline. Each call publishes its whole
	// batch or, on error, as little of it as the medium allows.
	Publisher interface {
		// SetOutputs publishes step outputs.
		SetOutputs(entries ...Entry) error
		// ExportVariables publishes variables visible to later steps of the job.
		ExportVariables(entries ...Entry) error
	}
)

func validateEntries(entries []Entry) error {
	for _, e := range entries {
		if e.Name == "" {
			return ErrEmptyName
		}
	}
	return nil
}
