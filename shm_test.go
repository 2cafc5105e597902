/*------------------------------------------------------------------------------
* gnsscore unit test driver : satellite health monitoring
*-----------------------------------------------------------------------------*/

package gnsscore_test

import (
	"testing"

	"gnsscore"

	"github.com/stretchr/testify/assert"
)

func Test_shm_gps_decode_shi_ephemeris(t *testing.T) {
	assert := assert.New(t)

	/* subframe 1 word 3 with SV health 0x2c in bits 17-22 */
	assert.Equal(uint8(0x2c), gnsscore.ShmGpsDecodeShiEphemeris(0x3f122c34))
}

func Test_check_nav_dhi(t *testing.T) {
	assert := assert.New(t)

	for dhi := uint8(0); dhi < 8; dhi++ {
		for ignored := 0; ignored <= 255; ignored++ {
			res := gnsscore.CheckNavDhi(dhi<<5, uint8(ignored))
			expected := dhi == gnsscore.NAV_DHI_OK || ignored&(1<<dhi) != 0
			assert.Equal(expected, res, "dhi %d ignored %d", dhi, ignored)
		}
	}
}
