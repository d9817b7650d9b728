// SPDX-License-Identifier: EPL-2.0

package audiotest

import (
	"bytes"
	"encoding/binary"
	"math/bits"
)

// AIFC describes a synthetic AIFF-C file.
type AIFC struct {
	Compression     [4]byte
	CompressionName string
	Channels        int
	SampleRate      int
	SampleFrames    uint32
	// SoundOffset inserts padding bytes before the sound data, as recorded in
	// the SSND offset field.
	SoundOffset int
	Data        []byte
	// Extra chunks are written between COMM and SSND.
	Extra []Chunk
}

// Chunk is a raw IFF chunk.
type Chunk struct {
	ID   string
	Data []byte
}

// Bytes serialises the file. Only COMM, any extra chunks and SSND are emitted.
func (a AIFC) Bytes() []byte {
	var body bytes.Buffer
	body.WriteString("AIFC")

	var comm bytes.Buffer
	_ = binary.Write(&comm, binary.BigEndian, int16(a.Channels))
	_ = binary.Write(&comm, binary.BigEndian, a.SampleFrames)
	_ = binary.Write(&comm, binary.BigEndian, int16(8))
	comm.Write(Extended(a.SampleRate))
	comm.Write(a.Compression[:])
	comm.WriteByte(byte(len(a.CompressionName)))
	comm.WriteString(a.CompressionName)
	if (1+len(a.CompressionName))%2 != 0 {
		comm.WriteByte(0)
	}
	writeChunk(&body, "COMM", comm.Bytes())

	for _, c := range a.Extra {
		writeChunk(&body, c.ID, c.Data)
	}

	var ssnd bytes.Buffer
	_ = binary.Write(&ssnd, binary.BigEndian, uint32(a.SoundOffset))
	_ = binary.Write(&ssnd, binary.BigEndian, uint32(0))
	ssnd.Write(make([]byte, a.SoundOffset))
	ssnd.Write(a.Data)
	writeChunk(&body, "SSND", ssnd.Bytes())

	var out bytes.Buffer
	out.WriteString("FORM")
	_ = binary.Write(&out, binary.BigEndian, uint32(body.Len()))
	out.Write(body.Bytes())
	return out.Bytes()
}

func writeChunk(w *bytes.Buffer, id string, payload []byte) {
	w.WriteString(id)
	_ = binary.Write(w, binary.BigEndian, uint32(len(payload)))
	w.Write(payload)
	if len(payload)%2 != 0 {
		w.WriteByte(0)
	}
}

// Extended encodes a non-negative integer as an 80-bit IEEE 754 extended float.
func Extended(v int) []byte {
	out := make([]byte, 10)
	if v <= 0 {
		return out
	}

	n := bits.Len64(uint64(v))
	binary.BigEndian.PutUint16(out[0:2], uint16(16383+n-1))
	binary.BigEndian.PutUint64(out[2:10], uint64(v)<<(64-n))
	return out
}
