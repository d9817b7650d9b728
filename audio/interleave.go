// SPDX-License-Identifier: EPL-2.0

package audio

// CopyStereoInterleaved merges two mono 8-bit buffers into one stereo buffer.
// The first n bytes of left and right are written as left/right pairs, so dst
// must hold 2*n bytes.
func CopyStereoInterleaved(dst, left, right []byte, n int) {
	if n <= 0 {
		return
	}

	dst = dst[:2*n]
	left = left[:n]
	right = right[:n]

	for i := range n {
		dst[2*i] = left[i]
		dst[2*i+1] = right[i]
	}
}
