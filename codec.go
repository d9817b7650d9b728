// SPDX-License-Identifier: EPL-2.0

package mace

import "fmt"

// Codec identifies one of the two MACE compression ratios.
type Codec uint8

const (
	// MACE3 packs 6 samples into 2 bytes (3:1).
	MACE3 Codec = 3
	// MACE6 packs 6 samples into 1 byte (6:1).
	MACE6 Codec = 6
)

// SamplesPerPacket is the number of output bytes one packet expands to, per channel.
const SamplesPerPacket = 6

// PacketSize returns the number of compressed bytes in one packet of one channel.
func (c Codec) PacketSize() int {
	switch c {
	case MACE3:
		return 2
	case MACE6:
		return 1
	default:
		return 0
	}
}

// Ratio returns the compression ratio (3 or 6), or 0 for an unknown codec.
func (c Codec) Ratio() int {
	if !c.Valid() {
		return 0
	}
	return int(c)
}

// Valid reports whether c is MACE3 or MACE6.
func (c Codec) Valid() bool {
	return c == MACE3 || c == MACE6
}

// FourCC returns the AIFF-C compression type tag.
func (c Codec) FourCC() [4]byte {
	switch c {
	case MACE3:
		return [4]byte{'M', 'A', 'C', '3'}
	case MACE6:
		return [4]byte{'M', 'A', 'C', '6'}
	default:
		return [4]byte{}
	}
}

func (c Codec) String() string {
	switch c {
	case MACE3:
		return "MACE 3:1"
	case MACE6:
		return "MACE 6:1"
	default:
		return fmt.Sprintf("Codec(%d)", uint8(c))
	}
}

// DecodedLength returns how many PCM bytes compressed bytes of c expand to.
// A trailing partial packet does not count.
func (c Codec) DecodedLength(compressed int) int {
	size := c.PacketSize()
	if size == 0 || compressed <= 0 {
		return 0
	}
	return compressed / size * SamplesPerPacket
}

// CodecFromFourCC maps an AIFF-C compression type to a Codec.
func CodecFromFourCC(tag [4]byte) (Codec, error) {
	switch tag {
	case MACE3.FourCC():
		return MACE3, nil
	case MACE6.FourCC():
		return MACE6, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnsupportedCodec, tag[:])
	}
}
