// SPDX-License-Identifier: EPL-2.0

package mace

import (
	"bytes"
	"errors"
	"io"
	"testing"
	"testing/iotest"

	"github.com/ik5/mace/internal/audiotest"
)

func TestReader_MatchesDecodeAll(t *testing.T) {
	t.Parallel()

	wrappers := []struct {
		name string
		wrap func(io.Reader) io.Reader
	}{
		{"plain", func(r io.Reader) io.Reader { return r }},
		{"one byte", iotest.OneByteReader},
		{"half", iotest.HalfReader},
		{"data with EOF", iotest.DataErrReader},
	}

	for _, tc := range streamCases {
		for _, w := range wrappers {
			t.Run(tc.name+"/"+w.name, func(t *testing.T) {
				t.Parallel()

				frame := tc.codec.PacketSize() * tc.channels
				src := audiotest.Noise(13, 2500*frame)
				want := blockReference(tc.codec, tc.channels, src)

				r, err := NewReader(w.wrap(bytes.NewReader(src)), tc.codec, tc.channels)
				if err != nil {
					t.Fatalf("NewReader() error = %v", err)
				}

				got, err := io.ReadAll(r)
				if err != nil {
					t.Fatalf("ReadAll() error = %v", err)
				}
				if !bytes.Equal(got, want) {
					t.Errorf("decoded %d bytes, want %d matching bytes", len(got), len(want))
				}

				in, out := r.Decompressor().TotalBytesProcessed()
				if in != uint64(len(src)) || out != uint64(len(want)) {
					t.Errorf("totals = %d/%d, want %d/%d", in, out, len(src), len(want))
				}
			})
		}
	}
}

func TestReader_SmallReads(t *testing.T) {
	t.Parallel()

	src := audiotest.Noise(17, 300)
	want := blockReference(MACE3, 2, src)

	r, err := NewReader(bytes.NewReader(src), MACE3, 2)
	if err != nil {
		t.Fatalf("NewReader() error = %v", err)
	}

	var got []byte
	buf := make([]byte, 5)
	for {
		n, err := r.Read(buf)
		got = append(got, buf[:n]...)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			t.Fatalf("Read() error = %v", err)
		}
	}

	if !bytes.Equal(got, want) {
		t.Errorf("5-byte reads produced different output")
	}
}

func TestReader_Iotest(t *testing.T) {
	t.Parallel()

	src := audiotest.Noise(19, 64)
	want := blockReference(MACE6, 1, src)

	r, err := NewReader(bytes.NewReader(src), MACE6, 1)
	if err != nil {
		t.Fatalf("NewReader() error = %v", err)
	}

	if err := iotest.TestReader(r, want); err != nil {
		t.Error(err)
	}
}

func TestReader_PartialPacket(t *testing.T) {
	t.Parallel()

	src := audiotest.Noise(23, 9) // 2 stereo MACE3 frames plus 1 byte
	r, err := NewReader(bytes.NewReader(src), MACE3, 2)
	if err != nil {
		t.Fatalf("NewReader() error = %v", err)
	}

	got, err := io.ReadAll(r)
	if !errors.Is(err, ErrPartialPacket) {
		t.Fatalf("ReadAll() error = %v, want %v", err, ErrPartialPacket)
	}
	if want := blockReference(MACE3, 2, src[:8]); !bytes.Equal(got, want) {
		t.Errorf("decoded prefix = %x, want %x", got, want)
	}
}

func TestReader_EmptyStream(t *testing.T) {
	t.Parallel()

	r, err := NewReader(bytes.NewReader(nil), MACE6, 2)
	if err != nil {
		t.Fatalf("NewReader() error = %v", err)
	}

	n, err := r.Read(make([]byte, 16))
	if n != 0 || !errors.Is(err, io.EOF) {
		t.Errorf("Read() = %d, %v; want 0, EOF", n, err)
	}

	if n, err := r.Read(nil); n != 0 || err != nil {
		t.Errorf("Read(nil) = %d, %v; want 0, nil", n, err)
	}
}

func TestReader_SourceError(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")
	r, err := NewReader(iotest.ErrReader(boom), MACE6, 1)
	if err != nil {
		t.Fatalf("NewReader() error = %v", err)
	}

	if _, err := r.Read(make([]byte, 6)); !errors.Is(err, boom) {
		t.Errorf("Read() error = %v, want %v", err, boom)
	}
}

func TestNewReader_Validation(t *testing.T) {
	t.Parallel()

	if _, err := NewReader(bytes.NewReader(nil), Codec(1), 1); !errors.Is(err, ErrUnsupportedCodec) {
		t.Errorf("unknown codec error = %v", err)
	}
	if _, err := NewReader(bytes.NewReader(nil), MACE6, 4); !errors.Is(err, ErrChannelCount) {
		t.Errorf("bad channel count error = %v", err)
	}
}
