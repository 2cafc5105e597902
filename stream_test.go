/*------------------------------------------------------------------------------
* stream_test.go : gnsscore unit test driver : bit and byte stream adapters
*-----------------------------------------------------------------------------*/
package gnsscore_test

import (
	"gnsscore"
	"testing"

	"github.com/stretchr/testify/assert"
)

var streamTestData = []uint8{0x01, 0x23, 0x45, 0x67, 0x89, 0xAB, 0xCD, 0xEF}

func Test_bitstream_get(t *testing.T) {
	assert := assert.New(t)

	bs := gnsscore.NewBitStream(streamTestData, 64)

	var u uint32
	assert.True(bs.GetBitU(&u, 0, 8))
	assert.Equal(uint32(0x01), u)
	assert.True(bs.GetBitU(&u, 4, 8))
	assert.Equal(uint32(0x12), u)
	assert.True(bs.GetBitU(&u, 0, 16))
	assert.Equal(uint32(0x0123), u)

	var s int32
	assert.True(bs.GetBits(&s, 24, 8))
	assert.Equal(int32(0x67), s)
	assert.True(bs.GetBits(&s, 32, 8))
	assert.Equal(int32(-119), s) /* 0x89 sign extended */

	var ul uint64
	assert.True(bs.GetBitUL(&ul, 0, 64))
	assert.Equal(uint64(0x0123456789ABCDEF), ul)

	var sl int64
	assert.True(bs.GetBitsL(&sl, 32, 32))
	assert.Equal(int64(-1985229329), sl) /* 0x89ABCDEF sign extended */
}

func Test_bitstream_cursor(t *testing.T) {
	assert := assert.New(t)

	bs := gnsscore.NewBitStream(streamTestData, 64)
	assert.Equal(uint32(64), bs.Remaining())

	var u uint32
	bs.Remove(8)
	assert.Equal(uint32(56), bs.Remaining())
	assert.True(bs.GetBitU(&u, 0, 8))
	assert.Equal(uint32(0x23), u)

	/* reads are relative to the cursor, which they do not advance */
	assert.True(bs.GetBitU(&u, 0, 8))
	assert.Equal(uint32(0x23), u)

	bs.Remove(52)
	assert.Equal(uint32(4), bs.Remaining())
	assert.True(bs.GetBitU(&u, 0, 4))
	assert.Equal(uint32(0xF), u)

	bs.Remove(10)
	assert.Equal(uint32(0), bs.Remaining())
}

func Test_bitstream_overflow(t *testing.T) {
	assert := assert.New(t)

	bs := gnsscore.NewBitStream(streamTestData, 64)
	bs.Remove(60)

	/* a failed access leaves the output untouched */
	u := uint32(0xdeadbeef)
	assert.True(bs.WouldOverflow(0, 8))
	assert.False(bs.GetBitU(&u, 0, 8))
	assert.Equal(uint32(0xdeadbeef), u)

	s := int32(-1)
	assert.False(bs.GetBits(&s, 0, 8))
	assert.Equal(int32(-1), s)

	var ul uint64
	assert.False(bs.GetBitUL(&ul, 4, 1))

	/* capacity below the buffer size is honored */
	short := gnsscore.NewBitStream(streamTestData, 12)
	assert.False(short.GetBitU(&u, 8, 8))
	assert.True(short.GetBitU(&u, 8, 4))
	assert.Equal(uint32(0x2), u)
}

func Test_bitstream_set(t *testing.T) {
	assert := assert.New(t)

	buff := make([]uint8, 4)
	bs := gnsscore.NewBitStream(buff, 32)
	bs.Remove(8)

	assert.True(bs.SetBitU(0, 8, 0xAB))
	assert.True(bs.SetBits(8, 8, -1))
	assert.Equal([]uint8{0x00, 0xAB, 0xFF, 0x00}, buff)

	assert.False(bs.SetBitU(20, 8, 0xCD))
	assert.Equal([]uint8{0x00, 0xAB, 0xFF, 0x00}, buff)
}

func Test_bytestream_decode_le(t *testing.T) {
	assert := assert.New(t)

	bs := gnsscore.NewByteStream(streamTestData, gnsscore.LittleEndian)
	assert.Equal(uint32(8), bs.Remaining())

	var u8v uint8
	assert.True(bs.DecodeU8(&u8v))
	assert.Equal(uint8(0x01), u8v)

	var u16v uint16
	assert.True(bs.DecodeU16(&u16v))
	assert.Equal(uint16(0x4523), u16v)

	var u32v uint32
	assert.True(bs.DecodeU32(&u32v))
	assert.Equal(uint32(0xCDAB8967), u32v)

	assert.Equal(uint32(1), bs.Remaining())

	var s8v int8
	assert.True(bs.DecodeS8(&s8v))
	assert.Equal(int8(-17), s8v) /* 0xEF */

	assert.False(bs.DecodeU8(&u8v))
}

func Test_bytestream_decode_be(t *testing.T) {
	assert := assert.New(t)

	bs := gnsscore.NewByteStream(streamTestData, gnsscore.BigEndian)

	var u64v uint64
	assert.True(bs.DecodeU64(&u64v))
	assert.Equal(uint64(0x0123456789ABCDEF), u64v)
	assert.Equal(uint32(0), bs.Remaining())

	bs = gnsscore.NewByteStream(streamTestData[4:6], gnsscore.BigEndian)
	var s16v int16
	assert.True(bs.DecodeS16(&s16v))
	assert.Equal(int16(-30293), s16v) /* 0x89AB */

	bs = gnsscore.NewByteStream(streamTestData[4:], gnsscore.BigEndian)
	var s32v int32
	assert.True(bs.DecodeS32(&s32v))
	assert.Equal(int32(-1985229329), s32v) /* 0x89ABCDEF */
}

func Test_bytestream_get_bytes(t *testing.T) {
	assert := assert.New(t)

	bs := gnsscore.NewByteStream(streamTestData, gnsscore.LittleEndian)
	bs.Remove(2)

	/* GetBytes peeks relative to the cursor without advancing */
	dest := make([]uint8, 3)
	assert.True(bs.GetBytes(1, 3, dest))
	assert.Equal([]uint8{0x67, 0x89, 0xAB}, dest)
	assert.Equal(uint32(6), bs.Remaining())

	assert.True(bs.WouldOverflow(4, 3))
	assert.False(bs.GetBytes(4, 3, dest))
	assert.Equal([]uint8{0x67, 0x89, 0xAB}, dest)

	/* a failed multi-byte decode leaves the cursor in place */
	bs.Remove(4)
	var u32v uint32
	assert.False(bs.DecodeU32(&u32v))
	assert.Equal(uint32(2), bs.Remaining())
}
