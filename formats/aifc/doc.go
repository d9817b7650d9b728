// SPDX-License-Identifier: EPL-2.0

// Package aifc reads MACE-compressed AIFF-C files.
//
// Classic Macintosh sound files store MACE audio in an AIFF-C container whose
// COMM chunk names the compression type: 'MAC3' for 3:1 and 'MAC6' for 6:1.
// This package uses github.com/go-audio/aiff to validate the container and
// read the COMM chunk, then streams the SSND payload through the mace codec.
//
// # Opening a File
//
//	f, _ := os.Open("beep.aifc")
//	stream, err := aifc.Open(f)
//	if err != nil {
//	    // errors.Is(err, aifc.ErrUnsupportedCompression) for non-MACE files
//	}
//	fmt.Println(stream.Codec, stream.Channels, stream.SampleRate)
//
// Stream is an io.Reader of unsigned 8-bit PCM (center 0x80). Stereo files
// decode to interleaved left/right bytes. DecodedLength reports the expected
// PCM size: 3x the sound data for MAC3, 6x for MAC6.
//
// # go-audio Buffers
//
// FullPCMBuffer decodes everything into a *audio.IntBuffer of signed 16-bit
// samples, ready for github.com/go-audio/wav or the formats/wav helpers.
//
// # Pipelines
//
// Decoder implements audio.Decoder and yields float32 samples:
//
//	src, _ := aifc.Decoder{}.Decode(f)
//	mono := audio.NewMonoMixer(src)
//
// Non-seekable readers are buffered in memory first.
//
// # Errors
//
//   - ErrNotAifcFile: not a FORM/AIFF or FORM/AIFC file
//   - ErrUnsupportedCompression: COMM compression is not MAC3 or MAC6
//   - ErrUnsupportedChannels: more than two channels
//   - ErrNoSoundData: no SSND chunk
//   - ErrBadChunk: truncated or inconsistent chunk headers
package aifc
