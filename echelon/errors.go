// SPDX-License-Identifier: MIT

package echelon

import (
	"errors"
	"fmt"
)

// ErrUnknownMode is returned when a Mode other than REF or RREF is requested.
var ErrUnknownMode = errors.New("echelon: unknown reduction mode")

// engineErrorf wraps err with the operation tag of the running reduction
// ("ToREF: ..." / "ToRREF: ..."), keeping the sentinel matchable with errors.Is.
func engineErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
