/*------------------------------------------------------------------------------
* stream.go : bit and byte stream adapters over byte buffers
*
* notes  : all accessors return a success flag instead of aborting. a failed
*          access leaves the cursor unchanged
*-----------------------------------------------------------------------------*/
package gnsscore

import "encoding/binary"

/* input/output bit stream. Len and Offset are counted in bits */
type BitStream struct {
	Data   []uint8
	Len    uint32 /* capacity (bits) */
	Offset uint32 /* cursor (bits) */
}

/* initialize a bit stream over the first len bits of data ----------------------*/
func NewBitStream(data []uint8, len uint32) *BitStream {
	return &BitStream{Data: data, Len: len}
}

func (b *BitStream) WouldOverflow(pos, len uint32) bool {
	return b.Offset+pos+len > b.Len
}

func (b *BitStream) GetBitU(out *uint32, pos, len uint32) bool {
	if b.WouldOverflow(pos, len) {
		return false
	}
	*out = GetBitU(b.Data, int(b.Offset+pos), int(len))
	return true
}

func (b *BitStream) GetBits(out *int32, pos, len uint32) bool {
	if b.WouldOverflow(pos, len) {
		return false
	}
	*out = GetBits(b.Data, int(b.Offset+pos), int(len))
	return true
}

func (b *BitStream) GetBitUL(out *uint64, pos, len uint32) bool {
	if b.WouldOverflow(pos, len) {
		return false
	}
	*out = GetBitUL(b.Data, int(b.Offset+pos), int(len))
	return true
}

func (b *BitStream) GetBitsL(out *int64, pos, len uint32) bool {
	if b.WouldOverflow(pos, len) {
		return false
	}
	*out = GetBitsL(b.Data, int(b.Offset+pos), int(len))
	return true
}

/* write len bits of data at the cursor and advance ------------------------------*/
func (b *BitStream) SetBitU(pos, len uint32, data uint32) bool {
	if b.WouldOverflow(pos, len) {
		return false
	}
	SetBitU(b.Data, int(b.Offset+pos), int(len), data)
	return true
}

func (b *BitStream) SetBits(pos, len uint32, data int32) bool {
	if b.WouldOverflow(pos, len) {
		return false
	}
	SetBits(b.Data, int(b.Offset+pos), int(len), data)
	return true
}

/* advance the cursor by len bits -------------------------------------------------*/
func (b *BitStream) Remove(len uint32) {
	b.Offset += len
}

/* remaining bits after the cursor -------------------------------------------------*/
func (b *BitStream) Remaining() uint32 {
	if b.Offset > b.Len {
		return 0
	}
	return b.Len - b.Offset
}

/* byte order selector for ByteStream */
type Endianess int

const (
	LittleEndian Endianess = iota
	BigEndian
)

/* input byte stream. Len and Offset are counted in bytes */
type ByteStream struct {
	Data      []uint8
	Len       uint32
	Offset    uint32
	Endianess Endianess
}

func NewByteStream(data []uint8, endianess Endianess) *ByteStream {
	return &ByteStream{Data: data, Len: uint32(len(data)), Endianess: endianess}
}

func (b *ByteStream) WouldOverflow(index, len uint32) bool {
	return b.Offset+index+len > b.Len
}

/* copy len bytes at cursor+index into dest without advancing ---------------------*/
func (b *ByteStream) GetBytes(index, len uint32, dest []uint8) bool {
	if b.WouldOverflow(index, len) {
		return false
	}
	copy(dest, b.Data[b.Offset+index:b.Offset+index+len])
	return true
}

func (b *ByteStream) Remove(len uint32) {
	b.Offset += len
}

func (b *ByteStream) Remaining() uint32 {
	if b.Offset > b.Len {
		return 0
	}
	return b.Len - b.Offset
}

func (b *ByteStream) DecodeU8(dest *uint8) bool {
	var v [1]uint8
	if !b.GetBytes(0, 1, v[:]) {
		return false
	}
	b.Remove(1)
	*dest = v[0]
	return true
}

func (b *ByteStream) DecodeS8(dest *int8) bool {
	var v uint8
	if !b.DecodeU8(&v) {
		return false
	}
	*dest = int8(v)
	return true
}

func (b *ByteStream) DecodeU16(dest *uint16) bool {
	var v [2]uint8
	if !b.GetBytes(0, 2, v[:]) {
		return false
	}
	b.Remove(2)
	if b.Endianess == BigEndian {
		*dest = binary.BigEndian.Uint16(v[:])
	} else {
		*dest = binary.LittleEndian.Uint16(v[:])
	}
	return true
}

func (b *ByteStream) DecodeS16(dest *int16) bool {
	var v uint16
	if !b.DecodeU16(&v) {
		return false
	}
	*dest = int16(v)
	return true
}

func (b *ByteStream) DecodeU32(dest *uint32) bool {
	var v [4]uint8
	if !b.GetBytes(0, 4, v[:]) {
		return false
	}
	b.Remove(4)
	if b.Endianess == BigEndian {
		*dest = binary.BigEndian.Uint32(v[:])
	} else {
		*dest = binary.LittleEndian.Uint32(v[:])
	}
	return true
}

func (b *ByteStream) DecodeS32(dest *int32) bool {
	var v uint32
	if !b.DecodeU32(&v) {
		return false
	}
	*dest = int32(v)
	return true
}

func (b *ByteStream) DecodeU64(dest *uint64) bool {
	var v [8]uint8
	if !b.GetBytes(0, 8, v[:]) {
		return false
	}
	b.Remove(8)
	if b.Endianess == BigEndian {
		*dest = binary.BigEndian.Uint64(v[:])
	} else {
		*dest = binary.LittleEndian.Uint64(v[:])
	}
	return true
}

func (b *ByteStream) DecodeS64(dest *int64) bool {
	var v uint64
	if !b.DecodeU64(&v) {
		return false
	}
	*dest = int64(v)
	return true
}
