// SPDX-License-Identifier: EPL-2.0

// Package audio provides the sample pipeline shared by the MACE format decoders.
//
// This package contains the building blocks around the codec:
//   - Source interface for decoded audio
//   - Decoder interface and a Registry keyed by format
//   - NewPCM8Source for unsigned 8-bit PCM streams
//   - MonoMixer for channel downmixing
//   - CopyStereoInterleaved for merging two mono byte buffers
//
// # Source Interface
//
// Every decoder yields a Source:
//
//	type Source interface {
//	    SampleRate() int
//	    Channels() int
//	    ReadSamples(dst []float32) (int, error)
//	    BufSize() int
//	    Close() error
//	}
//
// Samples are float32 in [-1, 1). MACE produces unsigned 8-bit PCM, so a
// byte b maps to (b-128)/128.
//
// # Format Registry
//
//	registry := audio.NewRegistry()
//	registry.Register("aifc", aifc.Decoder{})
//	registry.Register("mac6", raw.Decoder{Codec: mace.MACE6})
//	src, err := registry.Decode("aifc", file)
//
// Keys are case-insensitive and a leading dot is ignored, so file extensions
// can be passed straight from filepath.Ext.
//
// # Stereo
//
// MACE decodes one channel at a time. CopyStereoInterleaved merges the two
// mono outputs into left/right pairs:
//
//	audio.CopyStereoInterleaved(dst, left, right, len(left))
//
// # Error Handling
//
// ReadSamples returns io.EOF when no more data is available:
//
//	for {
//	    n, err := source.ReadSamples(buf)
//	    // use buf[:n]
//	    if err == io.EOF {
//	        break
//	    }
//	    if err != nil {
//	        return err
//	    }
//	}
package audio
