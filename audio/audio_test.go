// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"
	"testing"
)

func TestRegistry_RegisterAndGet(t *testing.T) {
	t.Parallel()

	registry := NewRegistry()
	decoder := &mockDecoder{}

	registry.Register("aifc", decoder)

	got, ok := registry.Get("aifc")
	if !ok {
		t.Fatal("Registry.Get() failed to retrieve registered decoder")
	}
	if got != decoder {
		t.Error("Registry.Get() returned different decoder instance")
	}
}

func TestRegistry_KeysAreNormalised(t *testing.T) {
	t.Parallel()

	registry := NewRegistry()
	decoder := &mockDecoder{}
	registry.Register(".MAC6", decoder)

	for _, key := range []string{"mac6", "MAC6", ".mac6", ".Mac6"} {
		if got, ok := registry.Get(key); !ok || got != decoder {
			t.Errorf("Registry.Get(%q) = %v, %v", key, got, ok)
		}
	}

	if _, ok := registry.Get("mac3"); ok {
		t.Error("Registry.Get() found an unregistered format")
	}
}

func TestRegistry_Overwrite(t *testing.T) {
	t.Parallel()

	registry := NewRegistry()
	first := &mockDecoder{}
	second := &mockDecoder{}

	registry.Register("aiff", first)
	registry.Register("AIFF", second)

	if got, _ := registry.Get("aiff"); got != second {
		t.Error("later registration did not replace the earlier one")
	}
	if n := len(registry.Formats()); n != 1 {
		t.Errorf("Formats() has %d entries, want 1", n)
	}
}

func TestRegistry_Decode(t *testing.T) {
	t.Parallel()

	src := newConstantSource(22254, 1, 10, 0)
	boom := errors.New("boom")

	registry := NewRegistry()
	registry.Register("mac3", &mockDecoder{src: src})
	registry.Register("mac6", &mockDecoder{err: boom})

	got, err := registry.Decode(".MAC3", strings.NewReader(""))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if got != src {
		t.Error("Decode() returned a different source")
	}

	if _, err := registry.Decode("mac6", strings.NewReader("")); !errors.Is(err, boom) {
		t.Errorf("Decode() error = %v, want wrapped %v", err, boom)
	} else if !strings.Contains(err.Error(), "mac6") {
		t.Errorf("Decode() error %q does not name the format", err)
	}

	if _, err := registry.Decode("flac", strings.NewReader("")); !errors.Is(err, ErrUnknownFormat) {
		t.Errorf("Decode() error = %v, want %v", err, ErrUnknownFormat)
	}
}

func TestRegistry_Formats(t *testing.T) {
	t.Parallel()

	registry := NewRegistry()
	if got := registry.Formats(); len(got) != 0 {
		t.Errorf("empty registry Formats() = %v", got)
	}

	for _, f := range []string{"mac6", "AIFC", "aif", "mac3"} {
		registry.Register(f, &mockDecoder{})
	}

	want := []string{"aif", "aifc", "mac3", "mac6"}
	if got := registry.Formats(); !slices.Equal(got, want) {
		t.Errorf("Formats() = %v, want %v", got, want)
	}
}

func TestRegistry_Concurrent(t *testing.T) {
	t.Parallel()

	registry := NewRegistry()

	var wg sync.WaitGroup
	for i := range 16 {
		wg.Add(1)
		go func() {
			defer wg.Done()

			key := fmt.Sprintf("fmt%d", i%4)
			registry.Register(key, &mockDecoder{})
			registry.Get(key)
			registry.Formats()
		}()
	}
	wg.Wait()

	if n := len(registry.Formats()); n != 4 {
		t.Errorf("Formats() has %d entries, want 4", n)
	}
}
