// SPDX-License-Identifier: EPL-2.0

package aifc

import "errors"

var (
	// ErrNotAifcFile indicates the input is not an AIFF or AIFF-C file
	ErrNotAifcFile = errors.New("not an AIFF-C file")

	// ErrUnsupportedCompression indicates a compression type other than MAC3 or MAC6
	ErrUnsupportedCompression = errors.New("unsupported AIFF-C compression")

	// ErrUnsupportedChannels indicates a channel count MACE cannot carry
	ErrUnsupportedChannels = errors.New("MACE supports mono or stereo only")

	// ErrNoSoundData indicates the file has no SSND chunk
	ErrNoSoundData = errors.New("no SSND chunk")

	// ErrBadChunk indicates a malformed or truncated chunk header
	ErrBadChunk = errors.New("malformed AIFF chunk")
)
