// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

const pcmFormat = 1

// WriteIntBuffer encodes buf as a PCM WAV file at bitDepth bits per sample.
// The encoder patches the RIFF sizes on close, hence the io.WriteSeeker.
func WriteIntBuffer(w io.WriteSeeker, buf *goaudio.IntBuffer, bitDepth int) error {
	if buf == nil || buf.Format == nil || buf.Format.SampleRate <= 0 || buf.Format.NumChannels <= 0 {
		return ErrInvalidFormat
	}

	enc := wav.NewEncoder(w, buf.Format.SampleRate, bitDepth, buf.Format.NumChannels, pcmFormat)
	if err := enc.Write(buf); err != nil {
		return fmt.Errorf("writing wav samples: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("finalising wav: %w", err)
	}
	return nil
}

// WritePCM8 writes interleaved unsigned 8-bit samples, the format MACE decodes to.
func WritePCM8(w io.WriteSeeker, sampleRate, channels int, pcm []byte) error {
	data := make([]int, len(pcm))
	for i, b := range pcm {
		data[i] = int(b)
	}

	return WriteIntBuffer(w, &goaudio.IntBuffer{
		Format:         &goaudio.Format{NumChannels: channels, SampleRate: sampleRate},
		Data:           data,
		SourceBitDepth: 8,
	}, 8)
}

// WriteWAV16 writes interleaved signed 16-bit samples.
func WriteWAV16(w io.WriteSeeker, sampleRate, channels int, samples []int16) error {
	data := make([]int, len(samples))
	for i, s := range samples {
		data[i] = int(s)
	}

	return WriteIntBuffer(w, &goaudio.IntBuffer{
		Format:         &goaudio.Format{NumChannels: channels, SampleRate: sampleRate},
		Data:           data,
		SourceBitDepth: 16,
	}, 16)
}
