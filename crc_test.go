/*------------------------------------------------------------------------------
* gnsscore unit test driver : crc-24q error detection
*-----------------------------------------------------------------------------*/

package gnsscore_test

import (
	"testing"

	"gnsscore"

	"github.com/stretchr/testify/assert"
)

func Test_crc24q(t *testing.T) {
	assert := assert.New(t)

	data := []uint8("123456789")

	assert.EqualValues(0, gnsscore.CRC24q(data, 0, 0),
		"crc of empty buffer with starting value 0")
	assert.EqualValues(22, gnsscore.CRC24q(data, 0, 22),
		"crc of empty buffer with starting value 22")

	/* check value from the crcmod predefined polynomial list */
	assert.EqualValues(0x21CF02, gnsscore.CRC24q(data, 9, 0xB704CE))
}

func Test_crc24q_bits(t *testing.T) {
	assert := assert.New(t)

	data := []uint8("123456789")

	/* byte aligned lengths agree with the bytewise routine */
	for n := 0; n <= 9; n++ {
		assert.Equal(gnsscore.CRC24q(data, n, 0xB704CE),
			gnsscore.CRC24qBits(0xB704CE, data, n*8, false), "length %v bytes", n)
	}

	/* inversion flips every parity bit */
	crc := gnsscore.CRC24qBits(0, data, 9*8, false)
	assert.Equal(crc^0xFFFFFF, gnsscore.CRC24qBits(0, data, 9*8, true))

	/* partial trailing byte: a single one bit folds the polynomial in */
	full := gnsscore.CRC24q([]uint8{0x80}, 1, 0)
	partial := gnsscore.CRC24qBits(0, []uint8{0x80}, 1, false)
	assert.NotEqual(full, partial)
	assert.EqualValues(0x864CFB, partial)
}
