// SPDX-License-Identifier: EPL-2.0

package mace

import "errors"

var (
	// ErrDataStarvation reports that input ran out before the output buffer was
	// filled. Supply more input and call again.
	ErrDataStarvation = errors.New("mace: input exhausted before output was filled")

	// ErrBufferTooSmall reports that the output buffer filled before all input
	// was consumed. Drain the output and call again with the remaining input.
	ErrBufferTooSmall = errors.New("mace: output buffer full before input was consumed")

	// ErrUnsupportedCodec indicates a codec other than MACE3 or MACE6.
	ErrUnsupportedCodec = errors.New("mace: unsupported codec")

	// ErrChannelCount indicates a channel count other than 1 or 2.
	ErrChannelCount = errors.New("mace: channel count must be 1 or 2")

	// ErrPartialPacket indicates the compressed stream ended inside a packet.
	ErrPartialPacket = errors.New("mace: stream ended inside a packet")
)
