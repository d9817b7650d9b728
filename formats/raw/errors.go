// SPDX-License-Identifier: EPL-2.0

package raw

import "errors"

var (
	ErrInvalidSampleRate = errors.New("sample rate must be positive")
)
