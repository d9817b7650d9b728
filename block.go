// SPDX-License-Identifier: EPL-2.0

package mace

// DecodeBlock6to1 expands packets MACE6 packets of one channel into dst.
//
// src holds interleaved packets for channels channels (1 byte per packet per
// channel); channel is the zero-based channel to decode. dst must hold
// 6*packets bytes of unsigned 8-bit PCM. state is updated in place; a nil
// state decodes from a zero state that is then discarded.
func DecodeBlock6to1(dst, src []byte, packets int, state *PredictorState, channels, channel int) {
	if state == nil {
		state = &PredictorState{}
	}
	if packets <= 0 {
		return
	}

	m := mixer6{state: state, newer: state.Sample1, older: state.Sample2}
	in := channel
	out := dst[:packets*SamplesPerPacket]

	for range packets {
		b := uint32(src[in])

		m.emit(out[0:2], b>>5, true)
		m.emit(out[2:4], (b>>3)&3, false)
		m.emit(out[4:6], b&7, true)

		out = out[SamplesPerPacket:]
		in += channels
	}

	state.Sample1 = m.newer
	state.Sample2 = m.older
}

// mixer6 blends each predicted delta with the two previous deltas.
type mixer6 struct {
	state *PredictorState
	newer int32
	older int32
}

func (m *mixer6) emit(dst []byte, code uint32, threeBits bool) {
	v := m.state.Step(code, threeBits)
	half := m.newer >> 1

	dst[0] = toPCM8(clampSample((v >> 3) + ((m.older * 3) >> 3) + half))
	dst[1] = toPCM8(clampSample((m.older >> 3) + ((v * 3) >> 3) + half))

	m.older = m.newer
	m.newer = v
}

// DecodeBlock3to1 expands packets MACE3 packets of one channel into dst.
//
// src holds interleaved packets for channels channels (2 bytes per packet per
// channel); channel is the zero-based channel to decode. dst must hold
// 6*packets bytes of unsigned 8-bit PCM. Only Sample1 and Sample2 of state
// carry information for this codec; a nil state decodes from zero.
func DecodeBlock3to1(dst, src []byte, packets int, state *PredictorState, channels, channel int) {
	if state == nil {
		state = &PredictorState{}
	}
	if packets <= 0 {
		return
	}

	m := mixer3{index: state.Sample1, sample: state.Sample2}
	in := channel * 2
	stride := channels * 2
	out := dst[:packets*SamplesPerPacket]

	for range packets {
		for i, b := range src[in : in+2] {
			code := uint32(b)
			o := out[i*3 : i*3+3]

			o[0] = m.emit(code&7, true)
			o[1] = m.emit((code>>3)&3, false)
			o[2] = m.emit(code>>5, true)
		}

		out = out[SamplesPerPacket:]
		in += stride
	}

	state.Sample1 = m.index
	state.Sample2 = m.sample
}

// mixer3 runs the MACE3 predictor: index selects the table row, sample is the
// decaying running value the delta is added to.
type mixer3 struct {
	index  int32
	sample int32
}

func (m *mixer3) emit(code uint32, threeBits bool) byte {
	var delta int32
	if threeBits {
		delta = int32(table8Big[((m.index>>1)&0x3F8)+int32(code)])
		m.index += int32(table8Small[code]) - (m.index >> 5)
	} else {
		delta = int32(table4Big[((m.index>>2)&0x1FC)+int32(code)])
		m.index += int32(table4Small[code]) - (m.index >> 5)
	}
	m.index = max(m.index, 0)

	v := clampSample(delta + m.sample)
	m.sample = v - (v >> 3)

	return toPCM8(v)
}
