// SPDX-License-Identifier: EPL-2.0

// Package wav writes decoded MACE audio as PCM WAV files.
//
// Encoding goes through github.com/go-audio/wav. Because the encoder rewrites
// the RIFF and data sizes when it closes, every writer takes an
// io.WriteSeeker such as *os.File.
//
// # Writers
//
//   - WritePCM8: unsigned 8-bit samples straight from the MACE decoder
//   - WriteWAV16: signed 16-bit samples
//   - WriteIntBuffer: any *audio.IntBuffer, e.g. from aifc.Stream.FullPCMBuffer
//
// Example:
//
//	pcm, _ := mace.DecodeAll(mace.MACE6, 1, compressed)
//	out, _ := os.Create("out.wav")
//	defer out.Close()
//	err := wav.WritePCM8(out, 22254, 1, pcm)
//
// 8-bit WAV stores samples unsigned with 0x80 as silence, exactly the MACE
// output convention, so no conversion is involved.
package wav
