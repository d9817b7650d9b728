// SPDX-License-Identifier: EPL-2.0

// Package raw decodes headerless MACE streams, such as sound resources
// extracted from classic Mac OS resource forks.
//
// With no container there is nothing to describe the stream, so the Decoder
// struct carries the codec, channel count and sample rate:
//
//	dec := raw.Decoder{Codec: mace.MACE3, Channels: 2, SampleRate: 22254}
//	src, err := dec.Decode(file)
//
// Stereo input must interleave whole packets: 1 byte per channel for MACE6,
// 2 bytes per channel for MACE3.
package raw
