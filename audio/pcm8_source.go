// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"fmt"
	"io"

	"github.com/ik5/mace/utils"
)

// pcm8Source adapts a stream of unsigned 8-bit PCM bytes (center 0x80) to Source.
type pcm8Source struct {
	r          io.Reader
	sampleRate int
	channels   int
	buf        []byte
	done       bool
}

// NewPCM8Source wraps r, which yields interleaved unsigned 8-bit samples, as a
// Source. Close closes r when it implements io.Closer.
func NewPCM8Source(r io.Reader, sampleRate, channels int) Source {
	return &pcm8Source{
		r:          r,
		sampleRate: sampleRate,
		channels:   max(channels, 1),
		buf:        make([]byte, 4096),
	}
}

func (s *pcm8Source) SampleRate() int { return s.sampleRate }
func (s *pcm8Source) Channels() int   { return s.channels }
func (s *pcm8Source) BufSize() int    { return cap(s.buf) }

func (s *pcm8Source) Close() error {
	c, ok := s.r.(io.Closer)
	if !ok {
		return nil
	}
	if err := c.Close(); err != nil {
		return fmt.Errorf("closing pcm reader: %w", err)
	}
	return nil
}

func (s *pcm8Source) ReadSamples(dst []float32) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}
	if len(dst)%s.channels != 0 {
		return 0, ErrInvalidDstSize
	}
	if s.done {
		return 0, io.EOF
	}

	if cap(s.buf) < len(dst) {
		s.buf = make([]byte, len(dst))
	}
	buf := s.buf[:len(dst)]

	n, err := io.ReadFull(s.r, buf)
	for i, b := range buf[:n] {
		dst[i] = utils.Unsigned8ToFloat32(b)
	}

	switch {
	case err == nil:
		return n, nil
	case errors.Is(err, io.EOF), errors.Is(err, io.ErrUnexpectedEOF):
		s.done = true
		return n, io.EOF
	default:
		return n, fmt.Errorf("reading pcm: %w", err)
	}
}
