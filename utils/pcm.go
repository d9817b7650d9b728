// SPDX-License-Identifier: EPL-2.0

package utils

// Unsigned8ToFloat32 maps an unsigned 8-bit sample (center 0x80) into [-1, 1).
func Unsigned8ToFloat32(b byte) float32 {
	return float32(int(b)-0x80) / 128.0
}

// Unsigned8ToInt16 widens an unsigned 8-bit sample to signed 16-bit PCM.
func Unsigned8ToInt16(b byte) int16 {
	return int16(b^0x80) << 8
}

// Int16ToUnsigned8 keeps the top byte of a 16-bit sample, re-centered at 0x80.
func Int16ToUnsigned8(v int16) byte {
	return byte(v>>8) ^ 0x80
}

func Float32ToInt16(x float32) int16 {
	// Clamp and scale
	if x > 1 {
		x = 1
	} else if x < -1 {
		x = -1
	}

	// Use 32767 for positive max to avoid overflow
	return int16(x * 32767.0)
}
