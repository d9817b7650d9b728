// SPDX-License-Identifier: EPL-2.0

package audiotest

import "math/rand/v2"

// Pattern returns n bytes of the deterministic sequence (i*37 + 11) mod 256.
// The golden codec vectors are captured against this sequence.
func Pattern(n int) []byte {
	out := make([]byte, n)
	for i := range out {
		out[i] = byte(i*37 + 11)
	}
	return out
}

// Noise returns n pseudo-random bytes from a fixed seed.
func Noise(seed uint64, n int) []byte {
	rng := rand.New(rand.NewPCG(seed, seed^0x9E3779B97F4A7C15))
	out := make([]byte, n)
	for i := range out {
		out[i] = byte(rng.Uint32())
	}
	return out
}

// Interleave merges equally sized per-channel packet streams into one stream
// with packetSize bytes per channel per frame.
func Interleave(packetSize int, channels ...[]byte) []byte {
	if len(channels) == 0 {
		return nil
	}

	frames := len(channels[0]) / packetSize
	out := make([]byte, 0, frames*packetSize*len(channels))
	for f := range frames {
		for _, ch := range channels {
			out = append(out, ch[f*packetSize:(f+1)*packetSize]...)
		}
	}
	return out
}
