/*------------------------------------------------------------------------------
* bits.go : bit field packing, unpacking and utility functions
*
* notes  : all bit fields are big-endian, MSB first within a byte. bit
*          positions are zero based offsets from the start of the buffer
*-----------------------------------------------------------------------------*/
package gnsscore

import "math/bits"

/* extract unsigned bits -------------------------------------------------------
* extract unsigned bits from byte data
* args   : uint8_t *buff    I   byte data
*          int    pos       I   bit position from start of data (bits)
*          int    len       I   bit length (bits) (len<=32)
* return : extracted unsigned bits
*-----------------------------------------------------------------------------*/
func GetBitU(buff []uint8, pos, len int) uint32 {
	var bits uint32

	for i := pos; i < pos+len; i++ {
		bits = (bits << 1) + uint32((buff[i/8]>>(7-i%8))&1)
	}
	return bits
}

/* extract signed bits with sign extension (len<=32) ---------------------------*/
func GetBits(buff []uint8, pos, len int) int32 {
	bits := GetBitU(buff, pos, len)
	m := uint32(1) << (len - 1)
	return int32((bits^m)-m) /* extend sign */
}

/* extract unsigned bits, long form (len<=64) -----------------------------------*/
func GetBitUL(buff []uint8, pos, len int) uint64 {
	var bits uint64

	for i := pos; i < pos+len; i++ {
		bits = (bits << 1) + uint64((buff[i/8]>>(7-i%8))&1)
	}
	return bits
}

/* extract signed bits with sign extension, long form (len<=64) -----------------*/
func GetBitsL(buff []uint8, pos, len int) int64 {
	bits := GetBitUL(buff, pos, len)
	m := uint64(1) << (len - 1)
	return int64((bits ^ m) - m)
}

/* set unsigned bits -------------------------------------------------------------
* set unsigned bits to byte data. bits of data above len are ignored
* args   : uint8_t *buff IO  byte data
*          int    pos       I   bit position from start of data (bits)
*          int    len       I   bit length (bits) (len<=32)
*          uint32_t data    I   unsigned data
* return : none
*-----------------------------------------------------------------------------*/
func SetBitU(buff []uint8, pos, len int, data uint32) {
	if len <= 0 || 32 < len {
		return
	}
	var mask uint32 = 1 << (len - 1)
	for i := pos; i < pos+len; i, mask = i+1, mask>>1 {
		if data&mask > 0 {
			buff[i/8] |= 1 << (7 - i%8)
		} else {
			buff[i/8] &= ^(uint8(1) << (7 - i%8))
		}
	}
}

func SetBits(buff []uint8, pos, len int, data int32) {
	SetBitU(buff, pos, len, uint32(data))
}

/* set unsigned bits, long form (len<=64) ------------------------------------------*/
func SetBitUL(buff []uint8, pos, len int, data uint64) {
	if len <= 0 || 64 < len {
		return
	}
	var mask uint64 = 1 << (len - 1)
	for i := pos; i < pos+len; i, mask = i+1, mask>>1 {
		if data&mask > 0 {
			buff[i/8] |= 1 << (7 - i%8)
		} else {
			buff[i/8] &= ^(uint8(1) << (7 - i%8))
		}
	}
}

func SetBitsL(buff []uint8, pos, len int, data int64) {
	SetBitUL(buff, pos, len, uint64(data))
}

/* shift bit buffer left ---------------------------------------------------------
* shift MSB-first bit buffer contents left in place. shifts larger than the
* buffer zero it
* args   : uint8_t *buff IO  byte data
*          int    shift     I   number of bits to shift
* return : none
*-----------------------------------------------------------------------------*/
func BitShl(buff []uint8, shift int) {
	size := len(buff)
	if shift > size*8 {
		for i := range buff {
			buff[i] = 0
		}
		return
	}
	src := shift / 8
	copyBits := size*8 - shift
	byteShift := copyBits % 8
	fullBytes := copyBits / 8

	if byteShift == 0 {
		copy(buff, buff[src:src+fullBytes])
		for i := fullBytes; i < size; i++ {
			buff[i] = 0
		}
		return
	}
	acc := uint32(buff[src])
	src++
	dst := 0
	for i := 0; i < fullBytes; i++ {
		acc = (acc << 8) | uint32(buff[src])
		src++
		buff[dst] = uint8(acc >> byteShift)
		dst++
	}
	buff[dst] = uint8(acc << 8 >> byteShift)
	dst++
	for i := dst; i < size; i++ {
		buff[i] = 0
	}
}

/* copy bit field ------------------------------------------------------------------
* copy count bits from src at bit index si to dst at bit index di
*-----------------------------------------------------------------------------*/
func BitCopy(dst []uint8, di int, src []uint8, si int, count int) {
	for ; count >= 32; count -= 32 {
		SetBitU(dst, di, 32, GetBitU(src, si, 32))
		si += 32
		di += 32
	}
	if count > 0 {
		SetBitU(dst, di, count, GetBitU(src, si, count))
	}
}

/* count bits set in a 64 bit word ------------------------------------------------*/
func CountBitsU64(v uint64, bv uint8) uint8 {
	r := uint8(bits.OnesCount64(v))
	if bv == 1 {
		return r
	}
	return 64 - r
}

/* count bits set in a 32 bit word ------------------------------------------------*/
func CountBitsU32(v uint32, bv uint8) uint8 {
	r := uint8(bits.OnesCount32(v))
	if bv == 1 {
		return r
	}
	return 32 - r
}

/* count bits set in a 16 bit word ------------------------------------------------*/
func CountBitsU16(v uint16, bv uint8) uint8 {
	r := uint8(bits.OnesCount16(v))
	if bv == 1 {
		return r
	}
	return 16 - r
}

/* count bits set in a 8 bit word -------------------------------------------------*/
func CountBitsU8(v uint8, bv uint8) uint8 {
	r := uint8(bits.OnesCount8(v))
	if bv == 1 {
		return r
	}
	return 8 - r
}

/* parity of a 32 bit word ----------------------------------------------------------
* return : 1 if an odd number of bits are set, 0 otherwise
*-----------------------------------------------------------------------------*/
func Parity32(x uint32) uint8 {
	x ^= x >> 16
	x ^= x >> 8
	x ^= x >> 4
	x &= 0xF
	return uint8((uint32(0x6996) >> x) & 1)
}
