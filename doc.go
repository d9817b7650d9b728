// SPDX-License-Identifier: EPL-2.0

// Package mace decodes MACE (Macintosh Audio Compression/Expansion) audio.
//
// MACE comes in two ratios. MACE3 packs six 8-bit samples into 2 bytes and
// MACE6 packs them into 1 byte. Both use a table-driven adaptive delta
// predictor; output is unsigned 8-bit PCM centered at 0x80. Only decoding is
// provided.
//
// # Quick Start
//
// Decode a whole buffer in one call:
//
//	pcm, err := mace.DecodeAll(mace.MACE6, 1, compressed)
//
// Stream from any io.Reader:
//
//	r, _ := mace.NewReader(file, mace.MACE3, 2)
//	io.Copy(out, r) // interleaved stereo PCM
//
// # Streaming Sessions
//
// A Decompressor accepts input and output buffers of any size. Partial
// packets and partially delivered output are cached between calls, so
// splitting a stream into arbitrary pieces yields byte-identical output:
//
//	dec, _ := mace.NewDecompressor(mace.MACE6, 1)
//	stats, err := dec.Process(dst, src)
//	switch {
//	case errors.Is(err, mace.ErrDataStarvation):
//	    // dst[:stats.OutputProduced] is valid; feed more input
//	case errors.Is(err, mace.ErrBufferTooSmall):
//	    // src[stats.InputConsumed:] is still pending; drain dst
//	}
//
// Both errors are steady-state signals, not failures. Every byte value is a
// valid packet, so there is no corrupt-data error.
//
// A Decompressor is single-writer: calls to Process on one session must not
// run concurrently. Separate sessions are independent.
//
// # Block Decoders
//
// DecodeBlock3to1 and DecodeBlock6to1 expose the per-channel block routines.
// They read one channel out of an interleaved packet stream and update a
// PredictorState in place:
//
//	var left, right mace.PredictorState
//	mace.DecodeBlock6to1(l, src, n, &left, 2, 0)
//	mace.DecodeBlock6to1(r, src, n, &right, 2, 1)
//
// # Containers
//
// formats/aifc reads MAC3/MAC6 AIFF-C files, formats/raw wraps headerless
// streams, and formats/wav writes the decoded PCM.
package mace
