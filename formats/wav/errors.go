// SPDX-License-Identifier: EPL-2.0

package wav

import "errors"

var (
	ErrInvalidFormat = errors.New("sample rate and channel count must be positive")
)
