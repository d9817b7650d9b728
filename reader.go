// SPDX-License-Identifier: EPL-2.0

package mace

import (
	"errors"
	"fmt"
	"io"
)

const readerBufSize = 4096

// Reader decodes a compressed MACE byte stream into unsigned 8-bit PCM.
// Stereo output is interleaved left/right.
type Reader struct {
	src   io.Reader
	dec   *Decompressor
	buf   []byte
	start int
	end   int
	eof   bool
}

// NewReader returns a Reader decoding r with the given codec and channel count.
func NewReader(r io.Reader, codec Codec, channels int) (*Reader, error) {
	dec, err := NewDecompressor(codec, channels)
	if err != nil {
		return nil, err
	}

	return &Reader{
		src: r,
		dec: dec,
		buf: make([]byte, readerBufSize),
	}, nil
}

// Decompressor exposes the underlying session, mainly for its byte totals.
func (r *Reader) Decompressor() *Decompressor { return r.dec }

// Read fills p with decoded PCM. At the end of the compressed stream it
// returns io.EOF, or ErrPartialPacket if the stream stopped inside a packet.
func (r *Reader) Read(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}

	n := 0
	for n < len(p) {
		if r.start == r.end && !r.eof {
			if err := r.fill(); err != nil {
				return n, err
			}
		}

		stats, err := r.dec.Process(p[n:], r.buf[r.start:r.end])
		r.start += stats.InputConsumed
		n += stats.OutputProduced

		if !errors.Is(err, ErrDataStarvation) {
			// Either p is full, or it is full and input is left over.
			break
		}

		if r.eof && r.start == r.end {
			if n > 0 {
				return n, nil
			}
			if r.dec.PendingInput() > 0 {
				return 0, fmt.Errorf("%w: %d byte(s) cached", ErrPartialPacket, r.dec.PendingInput())
			}
			return 0, io.EOF
		}
	}

	return n, nil
}

func (r *Reader) fill() error {
	m, err := r.src.Read(r.buf)
	r.start, r.end = 0, m

	if err == io.EOF {
		r.eof = true
		return nil
	}
	if err != nil {
		return fmt.Errorf("reading mace stream: %w", err)
	}
	return nil
}
