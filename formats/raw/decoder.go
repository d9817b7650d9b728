// SPDX-License-Identifier: EPL-2.0

package raw

import (
	"fmt"
	"io"

	"github.com/ik5/mace"
	"github.com/ik5/mace/audio"
)

// DefaultSampleRate is the classic Macintosh output rate, truncated to whole Hz.
const DefaultSampleRate = 22254

// Decoder decodes a headerless MACE stream. Zero fields fall back to MACE6,
// mono and DefaultSampleRate.
type Decoder struct {
	Codec      mace.Codec
	Channels   int
	SampleRate int
}

func (d Decoder) withDefaults() Decoder {
	if d.Codec == 0 {
		d.Codec = mace.MACE6
	}
	if d.Channels == 0 {
		d.Channels = 1
	}
	if d.SampleRate == 0 {
		d.SampleRate = DefaultSampleRate
	}
	return d
}

// NewReader returns the unsigned 8-bit PCM reader for r under d's settings.
func (d Decoder) NewReader(r io.Reader) (*mace.Reader, error) {
	d = d.withDefaults()
	if d.SampleRate < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSampleRate, d.SampleRate)
	}

	pcm, err := mace.NewReader(r, d.Codec, d.Channels)
	if err != nil {
		return nil, fmt.Errorf("raw %v stream: %w", d.Codec, err)
	}
	return pcm, nil
}

func (d Decoder) Decode(r io.Reader) (audio.Source, error) {
	pcm, err := d.NewReader(r)
	if err != nil {
		return nil, err
	}

	d = d.withDefaults()
	return audio.NewPCM8Source(pcm, d.SampleRate, d.Channels), nil
}
