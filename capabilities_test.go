/*------------------------------------------------------------------------------
* capabilities_test.go : gnsscore unit test driver : constellation capability masks
*-----------------------------------------------------------------------------*/
package gnsscore_test

import (
	"gnsscore"
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_bds_is_geo(t *testing.T) {
	assert := assert.New(t)

	/* the C01..C05 GEO satellites broadcast D2 */
	for prn := uint16(gnsscore.BDS_FIRST_PRN); prn <= 5; prn++ {
		sid := gnsscore.Sid{Sat: prn, Code: gnsscore.CODE_BDS2_B1}
		assert.True(gnsscore.BdsIsGeo(sid), "PRN %d", prn)
	}
	for prn := uint16(6); prn < gnsscore.BDS_FIRST_PRN+gnsscore.NUM_SATS_BDS; prn++ {
		sid := gnsscore.Sid{Sat: prn, Code: gnsscore.CODE_BDS2_B1}
		assert.False(gnsscore.BdsIsGeo(sid), "PRN %d", prn)
	}

	/* other constellations never qualify */
	assert.False(gnsscore.BdsIsGeo(gnsscore.Sid{Sat: 1, Code: gnsscore.CODE_GPS_L1CA}))
	assert.False(gnsscore.BdsIsGeo(gnsscore.Sid{Sat: 1, Code: gnsscore.CODE_GAL_E1B}))
}

func Test_bds_capability_masks(t *testing.T) {
	assert := assert.New(t)

	/* every mask addresses a valid BDS PRN */
	limit := uint64(1) << gnsscore.NUM_SATS_BDS
	assert.Less(gnsscore.GNSS_CAPB_BDS_ACTIVE, limit)
	assert.Less(gnsscore.GNSS_CAPB_BDS_D2NAV, limit)
	assert.Less(gnsscore.GNSS_CAPB_BDS_B2, limit)
	assert.Less(gnsscore.GNSS_CAPB_BDS_B2A, limit)

	/* GEO satellites are held out of the active set */
	assert.Zero(gnsscore.GNSS_CAPB_BDS_ACTIVE & gnsscore.GNSS_CAPB_BDS_D2NAV)

	/* a satellite carries B2I or B2a, never both */
	assert.Zero(gnsscore.GNSS_CAPB_BDS_B2 & gnsscore.GNSS_CAPB_BDS_B2A)

	/* every B2a capable satellite is operational */
	assert.Equal(gnsscore.GNSS_CAPB_BDS_B2A,
		gnsscore.GNSS_CAPB_BDS_B2A&gnsscore.GNSS_CAPB_BDS_ACTIVE)
}
