// SPDX-License-Identifier: EPL-2.0

package mace

import "fmt"

// DecodeAll decodes a complete compressed buffer in one call.
//
// The result holds codec.DecodedLength(len(src)) bytes of unsigned 8-bit PCM,
// interleaved when channels is 2. If src ends inside a packet the decoded
// prefix is returned together with ErrPartialPacket.
func DecodeAll(codec Codec, channels int, src []byte) ([]byte, error) {
	dec, err := NewDecompressor(codec, channels)
	if err != nil {
		return nil, err
	}

	frame := dec.inputGranularity()
	whole := len(src) / frame * frame
	pcm := make([]byte, codec.DecodedLength(whole))

	if _, err := dec.Process(pcm, src[:whole]); err != nil {
		return nil, fmt.Errorf("decoding %v: %w", codec, err)
	}

	if whole != len(src) {
		return pcm, fmt.Errorf("%w: %d trailing byte(s)", ErrPartialPacket, len(src)-whole)
	}

	return pcm, nil
}
