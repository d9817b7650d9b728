// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"io"
	"math"
	"testing"
)

func TestMonoMixer_MonoPassthrough(t *testing.T) {
	t.Parallel()

	src := newConstantSource(22254, 1, 100, 0.5)
	mixer := NewMonoMixer(src)

	if mixer.Channels() != 1 || mixer.SampleRate() != 22254 {
		t.Errorf("got %d channels at %d Hz", mixer.Channels(), mixer.SampleRate())
	}

	buf := make([]float32, 10)
	n, err := mixer.ReadSamples(buf)
	if err != nil {
		t.Fatalf("ReadSamples() error = %v", err)
	}
	if n != 10 {
		t.Errorf("ReadSamples() n = %d, want 10", n)
	}
	for i := range n {
		if buf[i] != 0.5 {
			t.Errorf("buf[%d] = %v, want 0.5", i, buf[i])
		}
	}
}

func TestMonoMixer_StereoToMono(t *testing.T) {
	t.Parallel()

	src := newMockSource(22254, 2, 100, func(_ int, channel int) float32 {
		if channel == 0 {
			return 0.4
		}
		return 0.6
	})

	buf := make([]float32, 10)
	n, err := NewMonoMixer(src).ReadSamples(buf)
	if err != nil {
		t.Fatalf("ReadSamples() error = %v", err)
	}
	if n != 10 {
		t.Errorf("ReadSamples() n = %d, want 10", n)
	}
	for i := range n {
		if math.Abs(float64(buf[i]-0.5)) > 0.001 {
			t.Errorf("buf[%d] = %v, want 0.5", i, buf[i])
		}
	}
}

func TestMonoMixer_MultiChannel(t *testing.T) {
	t.Parallel()

	src := newMockSource(8000, 4, 100, func(_ int, channel int) float32 {
		return float32(channel) / 10
	})

	buf := make([]float32, 5000)
	n, err := NewMonoMixer(src).ReadSamples(buf)
	if !errors.Is(err, io.EOF) {
		t.Fatalf("ReadSamples() error = %v, want EOF", err)
	}
	if n != 100 {
		t.Errorf("ReadSamples() n = %d, want 100", n)
	}
	for i := range n {
		if math.Abs(float64(buf[i]-0.15)) > 0.001 {
			t.Errorf("buf[%d] = %v, want 0.15", i, buf[i])
		}
	}
}

func TestMonoMixer_EOF(t *testing.T) {
	t.Parallel()

	mixer := NewMonoMixer(newConstantSource(8000, 2, 5, 0))

	buf := make([]float32, 10)
	n, err := mixer.ReadSamples(buf)
	if !errors.Is(err, io.EOF) || n != 5 {
		t.Fatalf("ReadSamples() = %d, %v; want 5, EOF", n, err)
	}

	if n, err := mixer.ReadSamples(buf); n != 0 || !errors.Is(err, io.EOF) {
		t.Errorf("ReadSamples() after EOF = %d, %v", n, err)
	}
}

func TestMonoMixer_EmptyDst(t *testing.T) {
	t.Parallel()

	src := newConstantSource(8000, 2, 5, 0)
	if n, err := NewMonoMixer(src).ReadSamples(nil); n != 0 || err != nil {
		t.Errorf("ReadSamples(nil) = %d, %v", n, err)
	}
	if src.generated != 0 {
		t.Error("empty read consumed source frames")
	}
}

func TestMonoMixer_Close(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")
	src := newConstantSource(8000, 2, 5, 0)
	src.closeErr = boom

	if err := NewMonoMixer(src).Close(); !errors.Is(err, boom) {
		t.Errorf("Close() error = %v, want %v", err, boom)
	}
	if !src.closed {
		t.Error("Close() did not reach the source")
	}
}

func TestMonoMixer_FromPCM8(t *testing.T) {
	t.Parallel()

	src := NewPCM8Source(bytesReader(0xC0, 0x40, 0xFF, 0x01), 22254, 2)
	buf := make([]float32, 4)

	n, err := NewMonoMixer(src).ReadSamples(buf)
	if n != 2 || (err != nil && !errors.Is(err, io.EOF)) {
		t.Fatalf("ReadSamples() = %d, %v", n, err)
	}
	if buf[0] != 0 || buf[1] != 0 {
		t.Errorf("mixed = %v, want two zero frames", buf[:n])
	}
}
