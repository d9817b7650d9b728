// SPDX-License-Identifier: EPL-2.0

package aifc

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"github.com/go-audio/aiff"
	goaudio "github.com/go-audio/audio"
	"github.com/ik5/mace"
	"github.com/ik5/mace/audio"
	"github.com/ik5/mace/utils"
)

const (
	formHeaderSize  = 12 // "FORM" + size + form type
	chunkHeaderSize = 8  // id + size
	ssndHeaderSize  = 8  // offset + block size
)

// Info describes the MACE payload of an AIFF-C file.
type Info struct {
	Codec      mace.Codec
	Channels   int
	SampleRate int
	// CompressedLength is the size of the sound data in bytes.
	CompressedLength int64
	// DecodedLength is the size of the unsigned 8-bit PCM it expands to.
	DecodedLength int64
}

// Stream decodes the sound data of an opened file. Read yields unsigned 8-bit
// PCM, interleaved for stereo files.
type Stream struct {
	Info

	pcm *mace.Reader
}

// Open parses the container headers of r and positions it at the sound data.
func Open(r io.ReadSeeker) (*Stream, error) {
	// IsValidFile rejects any encoding other than NONE and sowt, so the
	// header is validated through ReadInfo alone.
	dec := aiff.NewDecoder(r)
	dec.ReadInfo()
	if err := dec.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNotAifcFile, err)
	}

	format := dec.Format()
	if format == nil {
		return nil, ErrNotAifcFile
	}

	codec, err := mace.CodecFromFourCC(dec.Encoding)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedCompression, dec.Encoding[:])
	}

	if format.NumChannels != 1 && format.NumChannels != 2 {
		return nil, fmt.Errorf("%w: %d channels", ErrUnsupportedChannels, format.NumChannels)
	}

	// go-audio/aiff only exposes SSND as integer PCM at the declared bit
	// depth, so the compressed bytes are located directly.
	size, err := seekSoundData(r)
	if err != nil {
		return nil, err
	}

	pcm, err := mace.NewReader(io.LimitReader(r, size), codec, format.NumChannels)
	if err != nil {
		return nil, fmt.Errorf("creating %v reader: %w", codec, err)
	}

	return &Stream{
		Info: Info{
			Codec:            codec,
			Channels:         format.NumChannels,
			SampleRate:       format.SampleRate,
			CompressedLength: size,
			DecodedLength:    int64(codec.DecodedLength(int(size))),
		},
		pcm: pcm,
	}, nil
}

// seekSoundData walks the chunk list of r and leaves it at the first byte of
// sound data, returning the number of sound bytes.
func seekSoundData(r io.ReadSeeker) (int64, error) {
	if _, err := r.Seek(formHeaderSize, io.SeekStart); err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBadChunk, err)
	}

	var hdr [chunkHeaderSize]byte
	for {
		if _, err := io.ReadFull(r, hdr[:]); err != nil {
			if errors.Is(err, io.EOF) {
				return 0, ErrNoSoundData
			}
			return 0, fmt.Errorf("%w: %w", ErrBadChunk, err)
		}

		size := int64(binary.BigEndian.Uint32(hdr[4:]))

		if string(hdr[:4]) != "SSND" {
			// Chunks are padded to even length.
			if _, err := r.Seek(size+size&1, io.SeekCurrent); err != nil {
				return 0, fmt.Errorf("%w: %w", ErrBadChunk, err)
			}
			continue
		}

		if size < ssndHeaderSize {
			return 0, fmt.Errorf("%w: SSND size %d", ErrBadChunk, size)
		}

		var ssnd [ssndHeaderSize]byte
		if _, err := io.ReadFull(r, ssnd[:]); err != nil {
			return 0, fmt.Errorf("%w: %w", ErrBadChunk, err)
		}

		offset := int64(binary.BigEndian.Uint32(ssnd[:4]))
		if offset > size-ssndHeaderSize {
			return 0, fmt.Errorf("%w: SSND offset %d beyond chunk", ErrBadChunk, offset)
		}
		if _, err := r.Seek(offset, io.SeekCurrent); err != nil {
			return 0, fmt.Errorf("%w: %w", ErrBadChunk, err)
		}

		return size - ssndHeaderSize - offset, nil
	}
}

// Read yields decoded PCM; a file whose sound data stops inside a packet ends
// with mace.ErrPartialPacket instead of io.EOF.
func (s *Stream) Read(p []byte) (int, error) {
	return s.pcm.Read(p)
}

// FullPCMBuffer decodes the remaining sound data into a go-audio buffer of
// signed 16-bit samples.
func (s *Stream) FullPCMBuffer() (*goaudio.IntBuffer, error) {
	pcm, err := io.ReadAll(s)
	if err != nil {
		return nil, fmt.Errorf("decoding %v: %w", s.Codec, err)
	}

	data := make([]int, len(pcm))
	for i, b := range pcm {
		data[i] = int(utils.Unsigned8ToInt16(b))
	}

	return &goaudio.IntBuffer{
		Format: &goaudio.Format{
			NumChannels: s.Channels,
			SampleRate:  s.SampleRate,
		},
		Data:           data,
		SourceBitDepth: 16,
	}, nil
}

// Source returns the stream as a float32 audio.Source.
func (s *Stream) Source() audio.Source {
	return audio.NewPCM8Source(s, s.SampleRate, s.Channels)
}

// Decoder adapts Open to the audio.Decoder interface.
type Decoder struct{}

// Decode opens r as a MACE AIFF-C file and returns its samples as float32.
func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	// go-audio requires io.ReadSeeker
	rs, ok := r.(io.ReadSeeker)
	if !ok {
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, fmt.Errorf("reading aifc data: %w", err)
		}
		rs = bytes.NewReader(data)
	}

	s, err := Open(rs)
	if err != nil {
		return nil, err
	}
	return s.Source(), nil
}
