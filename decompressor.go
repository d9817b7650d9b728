// SPDX-License-Identifier: EPL-2.0

package mace

import (
	"fmt"

	"github.com/ik5/mace/audio"
)

// maxChunkPackets bounds how many stereo packets are decoded per pass through
// the per-channel scratch buffers.
const maxChunkPackets = 512

type streamState uint8

const (
	stateInit streamState = iota
	stateFillingCache
	stateProcessCache
	stateCacheFull
)

// DecodeStats reports the bytes consumed and produced by one Process call.
type DecodeStats struct {
	InputConsumed  int
	OutputProduced int
}

// Decompressor is a streaming MACE decoder session. It accepts input and
// output buffers of any size and carries partial packets and partially
// delivered output across calls.
//
// A Decompressor has a single writer: Process mutates the predictor states and
// caches in place, so concurrent calls on the same session must be serialised
// by the caller. Independent sessions share nothing but read-only tables.
type Decompressor struct {
	codec    Codec
	channels int

	state       streamState
	cacheSize   int
	inputCache  [4]byte
	outputCache [2 * SamplesPerPacket]byte

	left  PredictorState
	right PredictorState

	totalIn  uint64
	totalOut uint64
	last     DecodeStats

	leftBuf  [maxChunkPackets * SamplesPerPacket]byte
	rightBuf [maxChunkPackets * SamplesPerPacket]byte
}

// NewDecompressor returns a reset session for codec with 1 (mono) or 2
// (interleaved stereo) channels.
func NewDecompressor(codec Codec, channels int) (*Decompressor, error) {
	if !codec.Valid() {
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedCodec, codec)
	}
	if channels != 1 && channels != 2 {
		return nil, fmt.Errorf("%w: got %d", ErrChannelCount, channels)
	}

	return &Decompressor{codec: codec, channels: channels}, nil
}

// Codec returns the codec the session was created for.
func (d *Decompressor) Codec() Codec { return d.codec }

// Channels returns 1 for mono or 2 for interleaved stereo.
func (d *Decompressor) Channels() int { return d.channels }

// Reset clears both predictor states, the caches and the running totals.
func (d *Decompressor) Reset() {
	d.left.Reset()
	d.right.Reset()
	d.state = stateInit
	d.cacheSize = 0
	d.totalIn = 0
	d.totalOut = 0
	d.last = DecodeStats{}
}

// TotalBytesProcessed returns the input and output byte totals since the last Reset.
func (d *Decompressor) TotalBytesProcessed() (uint64, uint64) {
	return d.totalIn, d.totalOut
}

// LastStats returns the counts of the most recent Process call.
func (d *Decompressor) LastStats() DecodeStats {
	return d.last
}

// PendingInput returns how many bytes of an incomplete packet are cached.
func (d *Decompressor) PendingInput() int {
	if d.state != stateFillingCache {
		return 0
	}
	return d.cacheSize
}

func (d *Decompressor) inputGranularity() int {
	return d.codec.PacketSize() * d.channels
}

func (d *Decompressor) outputGranularity() int {
	return SamplesPerPacket * d.channels
}

// Process decodes as much of src into dst as possible.
//
// The returned stats are always valid. The error is nil when all of src was
// consumed and dst was filled exactly, ErrDataStarvation when dst has room
// left because src ran out, and ErrBufferTooSmall when src has bytes left
// because dst filled up. Neither error is fatal; the session stays usable.
//
// An empty dst consumes nothing; it reports ErrBufferTooSmall when src is
// not empty.
func (d *Decompressor) Process(dst, src []byte) (DecodeStats, error) {
	if len(dst) == 0 {
		d.last = DecodeStats{}
		if len(src) > 0 {
			return d.last, ErrBufferTooSmall
		}
		return d.last, nil
	}

	in, out := d.run(dst, src)

	d.last = DecodeStats{InputConsumed: in, OutputProduced: out}
	d.totalIn += uint64(in)
	d.totalOut += uint64(out)

	switch {
	case out < len(dst):
		return d.last, ErrDataStarvation
	case in < len(src):
		return d.last, ErrBufferTooSmall
	default:
		return d.last, nil
	}
}

// run drives the cache state machine until no state can make progress and
// returns the bytes consumed from src and written to dst.
func (d *Decompressor) run(dst, src []byte) (int, int) {
	inGran := d.inputGranularity()
	outGran := d.outputGranularity()
	in, out := 0, 0

	for {
		switch d.state {
		case stateInit:
			packets := min((len(src)-in)/inGran, (len(dst)-out)/outGran)
			if packets > 0 {
				d.decodePackets(dst[out:], src[in:], packets)
				in += packets * inGran
				out += packets * outGran
			}
			if in == len(src) {
				return in, out
			}
			d.cacheSize = 0
			d.state = stateFillingCache

		case stateFillingCache:
			if in == len(src) {
				return in, out
			}
			n := copy(d.inputCache[d.cacheSize:inGran], src[in:])
			in += n
			d.cacheSize += n
			if d.cacheSize < inGran {
				return in, out
			}
			d.state = stateProcessCache

		case stateProcessCache:
			d.decodePackets(d.outputCache[:outGran], d.inputCache[:inGran], 1)
			d.cacheSize = outGran
			d.state = stateCacheFull

		case stateCacheFull:
			if out == len(dst) {
				return in, out
			}
			n := copy(dst[out:], d.outputCache[outGran-d.cacheSize:outGran])
			out += n
			d.cacheSize -= n
			if d.cacheSize > 0 {
				return in, out
			}
			d.state = stateInit
		}
	}
}

// decodePackets decodes whole packets of all channels from src into dst.
func (d *Decompressor) decodePackets(dst, src []byte, packets int) {
	if d.channels == 1 {
		d.decodeBlock(dst, src, packets, &d.left, 1, 0)
		return
	}

	inGran := d.inputGranularity()
	outGran := d.outputGranularity()

	for packets > 0 {
		chunk := min(packets, maxChunkPackets)
		size := chunk * SamplesPerPacket

		d.decodeBlock(d.leftBuf[:size], src, chunk, &d.left, 2, 0)
		d.decodeBlock(d.rightBuf[:size], src, chunk, &d.right, 2, 1)
		audio.CopyStereoInterleaved(dst, d.leftBuf[:size], d.rightBuf[:size], size)

		src = src[chunk*inGran:]
		dst = dst[chunk*outGran:]
		packets -= chunk
	}
}

func (d *Decompressor) decodeBlock(dst, src []byte, packets int, state *PredictorState, channels, channel int) {
	if d.codec == MACE3 {
		DecodeBlock3to1(dst, src, packets, state, channels, channel)
		return
	}
	DecodeBlock6to1(dst, src, packets, state, channels, channel)
}
