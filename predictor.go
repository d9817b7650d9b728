// SPDX-License-Identifier: EPL-2.0

package mace

const (
	maxSample = 0x7FFF

	// Slope adjustments applied when consecutive deltas keep or flip direction.
	slopeRise = 506
	slopeFall = 314
)

// PredictorState is the adaptive state carried between packets for one channel.
//
// The zero value is a freshly reset state. MACE6 uses every field; MACE3 only
// carries Sample1 (its table index) and Sample2 (its running sample) between
// packets.
type PredictorState struct {
	TableIndex    int32
	LastStep      int32
	LastAmplitude int32
	LastSlope     int32
	Sample1       int32
	Sample2       int32
}

// Reset clears the state back to its zero value.
func (s *PredictorState) Reset() {
	*s = PredictorState{}
}

// Step decodes one 2-bit or 3-bit code and returns the reconstructed delta.
//
// code must fit in 3 bits when threeBits is set and in 2 bits otherwise.
// All arithmetic is 32-bit two's complement with explicit saturation.
func (s *PredictorState) Step(code uint32, threeBits bool) int32 {
	var delta int32

	index := s.TableIndex
	if threeBits {
		delta = int32(table8Big[((index>>1)&0x3F8)+int32(code)])
		index += int32(table8Small[code]) - (index >> 5)
	} else {
		delta = int32(table4Big[((index>>2)&0x1FC)+int32(code)])
		index += int32(table4Small[code]) - (index >> 5)
	}
	s.TableIndex = max(index, 0)

	// Only bit 15 of the xor matters: did the delta flip sign?
	flipped := (delta^s.LastStep)&0x8000 != 0

	sample := clampSample(delta + s.LastAmplitude)

	if flipped {
		s.LastSlope = max(s.LastSlope-slopeFall, -maxSample)
	} else {
		s.LastSlope = min(s.LastSlope+slopeRise, maxSample)
	}

	s.LastStep = sample
	s.LastAmplitude = (sample * sample) >> 15

	return sample
}

func clampSample(v int32) int32 {
	if v > maxSample {
		return maxSample
	}
	if v < -maxSample {
		return -maxSample
	}
	return v
}

// toPCM8 converts a signed 16-bit intermediate into an unsigned 8-bit sample.
func toPCM8(v int32) byte {
	return byte((v >> 8) ^ 0x80)
}
