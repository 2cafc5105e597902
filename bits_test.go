/*------------------------------------------------------------------------------
* gnsscore unit test driver : bit field utilities
*-----------------------------------------------------------------------------*/

package gnsscore_test

import (
	"math/rand"
	"testing"

	"gnsscore"

	"github.com/stretchr/testify/assert"
)

func Test_parity(t *testing.T) {
	assert := assert.New(t)

	for _, v := range []uint32{0x00000000, 0xFFFFFFFF, 0x01010101,
		0x10101010, 0x10A010A0} {
		assert.EqualValues(0, gnsscore.Parity32(v), "0x%08X", v)
	}
	for _, v := range []uint32{0x10000000, 0x00000001, 0x70707000,
		0x0B0B0B00, 0x00E00000} {
		assert.EqualValues(1, gnsscore.Parity32(v), "0x%08X", v)
	}
}

func Test_getbitu(t *testing.T) {
	assert := assert.New(t)

	testData := []uint8{0x01, 0x23, 0x45, 0x67, 0x89, 0xAB, 0xCD, 0xEF}

	assert.EqualValues(0x01, gnsscore.GetBitU(testData, 0, 8))
	assert.EqualValues(0x12, gnsscore.GetBitU(testData, 4, 8))
	assert.EqualValues(0x789A, gnsscore.GetBitU(testData, 28, 16))
	assert.EqualValues(0x3456789A, gnsscore.GetBitU(testData, 12, 32))
	assert.EqualValues(0x4, gnsscore.GetBitU(testData, 10, 3))
	assert.EqualValues(0x11A2, gnsscore.GetBitU(testData, 10, 13))
}

func Test_getbits(t *testing.T) {
	assert := assert.New(t)

	testData := []uint8{0x00, 0x03, 0x80, 0xFF, 0xFF, 0xFF, 0xFF}

	assert.EqualValues(0, gnsscore.GetBits(testData, 0, 8))
	assert.EqualValues(3, gnsscore.GetBits(testData, 13, 3))
	assert.EqualValues(-1, gnsscore.GetBits(testData, 14, 3))
	assert.EqualValues(-2, gnsscore.GetBits(testData, 14, 4))
	assert.EqualValues(-1, gnsscore.GetBits(testData, 24, 32))
}

/* random set/get roundtrips over all lengths and byte phases */
func Test_setbitu(t *testing.T) {
	assert := assert.New(t)

	testData := make([]uint8, 10)
	zeroes := make([]uint8, 10)
	rng := rand.New(rand.NewSource(1))

	for length := 1; length <= 32; length++ {
		for pos := 0; pos < 48; pos++ {
			data := rng.Uint32()

			gnsscore.SetBitU(testData, pos, length, data)
			if length < 32 {
				data &= (1 << length) - 1
			}
			assert.Equal(data, gnsscore.GetBitU(testData, pos, length),
				"len %d pos %d", length, pos)

			/* clearing must not leave stray bits behind */
			gnsscore.SetBitU(testData, pos, length, 0)
			assert.Equal(zeroes, testData, "len %d pos %d", length, pos)
		}
	}
}

func Test_setbitul(t *testing.T) {
	assert := assert.New(t)

	testData := make([]uint8, 64)
	zeroes := make([]uint8, 64)
	rng := rand.New(rand.NewSource(1))

	for length := 1; length <= 64; length++ {
		for pos := 0; pos <= 64; pos++ {
			data := rng.Uint64()

			gnsscore.SetBitUL(testData, pos, length, data)
			if length < 64 {
				data &= (uint64(1) << length) - 1
			}
			assert.Equal(data, gnsscore.GetBitUL(testData, pos, length),
				"len %d pos %d", length, pos)

			gnsscore.SetBitUL(testData, pos, length, 0)
			assert.Equal(zeroes, testData, "len %d pos %d", length, pos)
		}
	}
}

func Test_setbits(t *testing.T) {
	assert := assert.New(t)

	testData := make([]uint8, 10)

	gnsscore.SetBits(testData, 14, 3, -1)
	assert.EqualValues(-1, gnsscore.GetBits(testData, 14, 3))

	gnsscore.SetBits(testData, 14, 8, 22)
	assert.EqualValues(22, gnsscore.GetBits(testData, 14, 8))

	gnsscore.SetBits(testData, 24, 32, -1)
	assert.EqualValues(-1, gnsscore.GetBits(testData, 24, 32))
}

func Test_setbitsl(t *testing.T) {
	assert := assert.New(t)

	testData := make([]uint8, 64)

	input := int64(-0x8000000000000000)
	gnsscore.SetBitsL(testData, 0, 64, input)
	assert.Equal(input, gnsscore.GetBitsL(testData, 0, 64))

	testData = make([]uint8, 64)
	gnsscore.SetBitsL(testData, 32, 8, 0xABCD)
	assert.EqualValues(int8(0xCD-0x100), gnsscore.GetBitsL(testData, 32, 8))

	testData = make([]uint8, 64)
	gnsscore.SetBitsL(testData, 56, 32, 0xABCD)
	assert.EqualValues(0xABCD, gnsscore.GetBitsL(testData, 56, 32))
}

func Test_bitshl(t *testing.T) {
	assert := assert.New(t)

	src := []uint8{0xDE, 0xAD, 0xBE, 0xEF}
	gnsscore.BitShl(src, 16)
	assert.Equal([]uint8{0xBE, 0xEF, 0x00, 0x00}, src, "byte shift")

	src = []uint8{0xDE, 0xAD, 0xBE, 0xEF}
	gnsscore.BitShl(src, 4)
	assert.Equal([]uint8{0xEA, 0xDB, 0xEE, 0xF0}, src, "4-bit shift")

	src = []uint8{0xDE, 0xAD, 0xBE, 0xEF}
	gnsscore.BitShl(src, 12)
	assert.Equal([]uint8{0xDB, 0xEE, 0xF0, 0x00}, src, "12-bit shift")

	src = []uint8{0xDE, 0xAD, 0xBE, 0xEF}
	gnsscore.BitShl(src, 10)
	assert.Equal([]uint8{0xB6, 0xFB, 0xBC, 0x00}, src, "10-bit shift")
}

func Test_bitcopy(t *testing.T) {
	assert := assert.New(t)

	src := []uint8{0xDE, 0xAD, 0xBE, 0xEF}
	gnsscore.BitCopy(src, 0, src, 16, 16)
	assert.Equal([]uint8{0xBE, 0xEF, 0xBE, 0xEF}, src, "16-bit copy")

	src = []uint8{0xDE, 0xAD, 0xBE, 0xEF}
	gnsscore.BitCopy(src, 0, src, 4, 28)
	assert.Equal([]uint8{0xEA, 0xDB, 0xEE, 0xFF}, src, "28-bit copy")

	src = []uint8{0xDE, 0xAD, 0xBE, 0xEF, 0xDE, 0xAD, 0xBE, 0xEF, 0xDE, 0xAD}
	gnsscore.BitCopy(src, 0, src, 8, 72)
	assert.Equal([]uint8{0xAD, 0xBE, 0xEF, 0xDE, 0xAD, 0xBE, 0xEF, 0xDE,
		0xAD, 0xAD}, src, "72-bit copy")
}

func Test_count_bits(t *testing.T) {
	assert := assert.New(t)

	src8 := []uint8{0xDE, 0xAD, 0x12, 0xEF}
	res8 := []uint8{6, 5, 2, 7}
	for i := range src8 {
		assert.Equal(res8[i], gnsscore.CountBitsU8(src8[i], 1))
		assert.Equal(8-res8[i], gnsscore.CountBitsU8(src8[i], 0))
	}

	src16 := []uint16{0xDE05, 0xADF6, 0xBE32, 0xEF45}
	res16 := []uint8{8, 11, 9, 10}
	for i := range src16 {
		assert.Equal(res16[i], gnsscore.CountBitsU16(src16[i], 1))
		assert.Equal(16-res16[i], gnsscore.CountBitsU16(src16[i], 0))
	}

	src32 := []uint32{0xDE051234, 0x00000000, 0x00329300, 0x1F45A6C8}
	res32 := []uint8{13, 0, 7, 15}
	for i := range src32 {
		assert.Equal(res32[i], gnsscore.CountBitsU32(src32[i], 1))
		assert.Equal(32-res32[i], gnsscore.CountBitsU32(src32[i], 0))
	}

	src64 := []uint64{0xDE051234432150ED, 0x0000000080000000,
		0x0032930000392300, 0x10F14350A060C080}
	res64 := []uint8{26, 1, 14, 18}
	for i := range src64 {
		assert.Equal(res64[i], gnsscore.CountBitsU64(src64[i], 1))
		assert.Equal(64-res64[i], gnsscore.CountBitsU64(src64[i], 0))
	}
}

func Test_sign_extension(t *testing.T) {
	assert := assert.New(t)

	buff := make([]uint8, 8)
	gnsscore.SetBitU(buff, 0, 5, 0x1F)
	assert.EqualValues(-1, gnsscore.GetBits(buff, 0, 5))
	gnsscore.SetBitU(buff, 0, 5, 0x10)
	assert.EqualValues(-16, gnsscore.GetBits(buff, 0, 5))
	gnsscore.SetBitU(buff, 0, 5, 15)
	assert.EqualValues(15, gnsscore.GetBits(buff, 0, 5))

	gnsscore.SetBitUL(buff, 0, 33, 0x1FFFFFFFF)
	assert.EqualValues(-1, gnsscore.GetBitsL(buff, 0, 33))
	gnsscore.SetBitUL(buff, 0, 33, 0x100000000)
	assert.EqualValues(-0x100000000, gnsscore.GetBitsL(buff, 0, 33))
	gnsscore.SetBitUL(buff, 0, 33, 0xFFFFFFFF)
	assert.EqualValues(0xFFFFFFFF, gnsscore.GetBitsL(buff, 0, 33))
}
