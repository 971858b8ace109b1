// SPDX-License-Identifier: MPL-2.0

package types

import (
	"errors"
	"fmt"
	"strconv"
)

// ExitCode is the process status docgen-action terminates with. POSIX limits
// it to 0-255.
type ExitCode int

const (
	// ExitSuccess is returned when every output was published.
	ExitSuccess ExitCode = 0
	// ExitFailure is returned when the package description could not be read or derived.
	ExitFailure ExitCode = 1
)

// ErrInvalidExitCode is wrapped by Validate for codes outside 0-255.
var ErrInvalidExitCode = errors.New("invalid exit code")

// Validate reports whether c can be passed to os.Exit unchanged.
func (c ExitCode) Validate() error {
	if c < 0 || c > 255 {
		return fmt.Errorf("%w %d (must be in range 0-255)", ErrInvalidExitCode, c)
	}
	return nil
}

func (c ExitCode) String() string { return strconv.Itoa(int(c)) }
