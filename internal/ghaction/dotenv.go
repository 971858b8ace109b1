// SPDX-License-Identifier: MPL-2.0

package ghaction

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

// DotenvFile publishes into a dotenv file, merging with any values already in
// it. Outputs and variables share the file; a later value replaces an earlier
// one with the same name.
type DotenvFile struct {
	Path string
}

// SetOutputs implements Publisher.
func (d *DotenvFile) SetOutputs(entries ...Entry) error {
	return d.merge(entries)
}

// ExportVariables implements Publisher.
func (d *DotenvFile) ExportVariables(entries ...Entry) error {
	return d.merge(entries)
}

// Read returns the values currently stored in the file.
func (d *DotenvFile) Read() (map[string]string, error) {
	values, err := godotenv.Read(d.Path)
	if errors.Is(err, fs.ErrNotExist) {
		return map[string]string{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read dotenv file %s: %w", d.Path, err)
	}
	return values, nil
}

func (d *DotenvFile) merge(entries []Entry) error {
	if err := validateEntries(entries); err != nil {
		return err
	}

	values, err := d.Read()
	if err != nil {
		return err
	}
	for _, e := range entries {
		values[e.Name] = e.Value
	}

	if dir := filepath.Dir(d.Path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create directory for %s: %w", d.Path, err)
		}
	}
	if err := godotenv.Write(values, d.Path); err != nil {
		return fmt.Errorf("write dotenv file %s: %w", d.Path, err)
	}
	return nil
}
