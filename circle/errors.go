// SPDX-License-Identifier: Unlicense OR MIT

package circle

import "errors"

// ErrInvalidArgument is wrapped by errors of mutators rejecting a value.
var ErrInvalidArgument = errors.New("invalid argument")
