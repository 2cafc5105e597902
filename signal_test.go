/*------------------------------------------------------------------------------
* gnsscore unit test driver : signal identifiers
*-----------------------------------------------------------------------------*/

package gnsscore_test

import (
	"sort"
	"testing"

	"gnsscore"

	"github.com/stretchr/testify/assert"
)

func Test_signal_aggregates(t *testing.T) {
	assert := assert.New(t)

	/* every code belongs to one valid constellation */
	codeCounts := make(map[gnsscore.Constellation]int)
	for code := gnsscore.Code(0); code < gnsscore.CODE_COUNT; code++ {
		cons := gnsscore.CodeToConstellation(code)
		assert.True(gnsscore.ConstellationValid(cons), "code %v", code)
		assert.Greater(gnsscore.CodeToSigCount(code), uint16(0), "code %v", code)
		assert.Equal(gnsscore.ConstellationToSatCount(cons),
			gnsscore.CodeToSigCount(code), "code %v", code)
		codeCounts[cons]++
	}

	assert.Equal(13, codeCounts[gnsscore.CONSTELLATION_GPS])
	assert.Equal(5, codeCounts[gnsscore.CONSTELLATION_SBAS])
	assert.Equal(4, codeCounts[gnsscore.CONSTELLATION_GLO])
	assert.Equal(15, codeCounts[gnsscore.CONSTELLATION_BDS])
	assert.Equal(11, codeCounts[gnsscore.CONSTELLATION_QZS])
	assert.Equal(16, codeCounts[gnsscore.CONSTELLATION_GAL])

	assert.False(gnsscore.CodeValid(gnsscore.CODE_INVALID))
	assert.False(gnsscore.CodeValid(gnsscore.CODE_COUNT))
	assert.False(gnsscore.ConstellationValid(gnsscore.CONSTELLATION_INVALID))
	assert.False(gnsscore.ConstellationValid(gnsscore.CONSTELLATION_COUNT))
}

func Test_signal_from_index(t *testing.T) {
	assert := assert.New(t)

	for code := gnsscore.Code(0); code < gnsscore.CODE_COUNT; code++ {
		for index := uint16(0); index < gnsscore.CodeToSigCount(code); index++ {
			sid := gnsscore.SidFromCodeIndex(code, index)
			assert.True(gnsscore.SidValid(sid), "code %v index %v", code, index)
			assert.Equal(int(index), gnsscore.SidToCodeIndex(sid),
				"code %v index %v", code, index)
		}
	}

	assert.Equal(-1, gnsscore.SidToCodeIndex(gnsscore.SID_UNKNOWN))
}

func Test_signal_properties(t *testing.T) {
	assert := assert.New(t)

	cases := []struct {
		sid   gnsscore.Sid
		valid bool
		str   string
	}{
		{gnsscore.Sid{Sat: 0, Code: gnsscore.CODE_INVALID}, false, ""},
		{gnsscore.Sid{Sat: 0, Code: gnsscore.CODE_COUNT}, false, ""},
		{gnsscore.Sid{Sat: 1, Code: gnsscore.CODE_INVALID}, false, ""},
		{gnsscore.Sid{Sat: 0, Code: gnsscore.CODE_GPS_L1CA}, false, ""},
		{gnsscore.Sid{Sat: 1, Code: gnsscore.CODE_GPS_L1CA}, true, "GPS L1CA 1"},
		{gnsscore.Sid{Sat: 1, Code: gnsscore.CODE_GPS_L2CM}, true, "GPS L2CM 1"},
		{gnsscore.Sid{Sat: 1, Code: gnsscore.CODE_SBAS_L1CA}, false, ""},
		{gnsscore.Sid{Sat: 32, Code: gnsscore.CODE_GPS_L1CA}, true, "GPS L1CA 32"},
		{gnsscore.Sid{Sat: 33, Code: gnsscore.CODE_GPS_L1CA}, false, ""},
		{gnsscore.Sid{Sat: 0, Code: gnsscore.CODE_SBAS_L1CA}, false, ""},
		{gnsscore.Sid{Sat: 119, Code: gnsscore.CODE_SBAS_L1CA}, false, ""},
		{gnsscore.Sid{Sat: 120, Code: gnsscore.CODE_SBAS_L1CA}, true, "SBAS L1 120"},
		{gnsscore.Sid{Sat: 120, Code: gnsscore.CODE_GPS_L1CA}, false, ""},
		{gnsscore.Sid{Sat: 138, Code: gnsscore.CODE_SBAS_L1CA}, true, "SBAS L1 138"},
		{gnsscore.Sid{Sat: 139, Code: gnsscore.CODE_SBAS_L1CA}, false, ""},
		{gnsscore.Sid{Sat: 0, Code: gnsscore.CODE_GLO_L1OF}, false, ""},
		{gnsscore.Sid{Sat: 1, Code: gnsscore.CODE_GLO_L1OF}, true, "GLO L1OF 1"},
		{gnsscore.Sid{Sat: 28, Code: gnsscore.CODE_GLO_L1OF}, true, "GLO L1OF 28"},
		{gnsscore.Sid{Sat: 29, Code: gnsscore.CODE_GLO_L1OF}, false, ""},
		{gnsscore.Sid{Sat: 0, Code: gnsscore.CODE_GLO_L2OF}, false, ""},
		{gnsscore.Sid{Sat: 1, Code: gnsscore.CODE_GLO_L2OF}, true, "GLO L2OF 1"},
		{gnsscore.Sid{Sat: 28, Code: gnsscore.CODE_GLO_L2OF}, true, "GLO L2OF 28"},
		{gnsscore.Sid{Sat: 29, Code: gnsscore.CODE_GLO_L2OF}, false, ""},
		{gnsscore.Sid{Sat: 0, Code: gnsscore.CODE_GPS_L1P}, false, ""},
		{gnsscore.Sid{Sat: 1, Code: gnsscore.CODE_GPS_L1P}, true, "GPS L1P 1"},
		{gnsscore.Sid{Sat: 24, Code: gnsscore.CODE_GPS_L1P}, true, "GPS L1P 24"},
		{gnsscore.Sid{Sat: 0, Code: gnsscore.CODE_GPS_L2P}, false, ""},
		{gnsscore.Sid{Sat: 1, Code: gnsscore.CODE_GPS_L2P}, true, "GPS L2P 1"},
		{gnsscore.Sid{Sat: 24, Code: gnsscore.CODE_GPS_L2P}, true, "GPS L2P 24"},
		{gnsscore.Sid{Sat: 193, Code: gnsscore.CODE_QZS_L1CA}, true, "QZS L1CA 193"},
		{gnsscore.Sid{Sat: 203, Code: gnsscore.CODE_QZS_L1CA}, false, ""},
	}
	for i, c := range cases {
		assert.Equal(c.valid, gnsscore.SidValid(c.sid), "case %v validity", i)
		if !c.valid {
			continue
		}
		roundtrip := gnsscore.SidFromCodeIndex(c.sid.Code,
			uint16(gnsscore.SidToCodeIndex(c.sid)))
		assert.True(gnsscore.SidIsEqual(c.sid, roundtrip), "case %v roundtrip", i)
		assert.Equal(c.str, c.sid.String(), "case %v string", i)
		assert.True(gnsscore.ConstellationValid(gnsscore.SidToConstellation(c.sid)))
	}
}

func Test_signal_compare(t *testing.T) {
	assert := assert.New(t)

	var sids []gnsscore.Sid
	for code := gnsscore.Code(0); code < gnsscore.CODE_COUNT; code++ {
		for index := uint16(0); index < gnsscore.CodeToSigCount(code); index++ {
			sids = append(sids, gnsscore.SidFromCodeIndex(code, index))
		}
	}
	sort.Slice(sids, func(i, j int) bool {
		return gnsscore.SidCompare(sids[i], sids[j]) < 0
	})

	for i := 1; i < len(sids); i++ {
		assert.False(gnsscore.SidIsEqual(sids[i], sids[i-1]),
			"signal %v not unique", i)
		assert.GreaterOrEqual(gnsscore.SidCompare(sids[i], sids[i-1]), 0,
			"signal %v not in order", i)
	}
}

func Test_code_equivalence(t *testing.T) {
	assert := assert.New(t)

	cases := []struct {
		a, b  gnsscore.Code
		equiv bool
	}{
		{gnsscore.CODE_GPS_L2P, gnsscore.CODE_GPS_L2P, true},
		{gnsscore.CODE_GPS_L1P, gnsscore.CODE_GPS_L1P, true},
		{gnsscore.CODE_GPS_L2P, gnsscore.CODE_GPS_L2CM, true},
		{gnsscore.CODE_GPS_L2CM, gnsscore.CODE_GPS_L2P, true},
		{gnsscore.CODE_GPS_L1P, gnsscore.CODE_GPS_L1CA, true},
		{gnsscore.CODE_GPS_L1CA, gnsscore.CODE_GPS_L1P, true},
		{gnsscore.CODE_GPS_L1P, gnsscore.CODE_GPS_L2CM, false},
		{gnsscore.CODE_GPS_L2P, gnsscore.CODE_GPS_L1CA, false},
		{gnsscore.CODE_GLO_L1OF, gnsscore.CODE_GPS_L1CA, false},
	}
	for i, c := range cases {
		assert.Equal(c.equiv, gnsscore.CodeEquiv(c.a, c.b), "case %v", i)
	}
}

func Test_sid_to_carr_freq(t *testing.T) {
	assert := assert.New(t)

	gnsscore.DefaultGloMap.ClearAll()
	defer gnsscore.DefaultGloMap.ClearAll()

	sid := gnsscore.Sid{Sat: gnsscore.GPS_FIRST_PRN, Code: gnsscore.CODE_GPS_L2CM}
	assert.Equal(gnsscore.FREQ_GPS_L2, gnsscore.SidToCarrFreq(sid))

	sid = gnsscore.Sid{Sat: gnsscore.GPS_FIRST_PRN, Code: gnsscore.CODE_GPS_L1CA}
	assert.Equal(gnsscore.FREQ_GPS_L1, gnsscore.SidToCarrFreq(sid))

	/* GLONASS FDMA signals need the slot to FCN map */
	sid = gnsscore.Sid{Sat: 1, Code: gnsscore.CODE_GLO_L1OF}
	assert.Equal(gnsscore.FREQ_GLO_L1, gnsscore.SidToCarrFreq(sid),
		"unknown FCN falls back to the band center")

	for sat := uint16(gnsscore.GLO_FIRST_PRN); sat <= gnsscore.NUM_GLO_ORBIT_SLOTS; sat++ {
		for fcn := uint16(gnsscore.GLO_MIN_FCN); fcn <= gnsscore.GLO_MAX_FCN; fcn++ {
			assert.True(gnsscore.DefaultGloMap.SetFcn(sat, fcn))

			delta := float64(int(fcn) - gnsscore.GLO_FCN_OFFSET)
			sid = gnsscore.Sid{Sat: sat, Code: gnsscore.CODE_GLO_L2OF}
			assert.Equal(gnsscore.FREQ_GLO_L2+delta*gnsscore.DFRQ_GLO_L2,
				gnsscore.SidToCarrFreq(sid))

			sid = gnsscore.Sid{Sat: sat, Code: gnsscore.CODE_GLO_L1OF}
			assert.Equal(gnsscore.FREQ_GLO_L1+delta*gnsscore.DFRQ_GLO_L1,
				gnsscore.SidToCarrFreq(sid))
		}
	}
}

func Test_sid_to_lambda(t *testing.T) {
	assert := assert.New(t)

	gnsscore.DefaultGloMap.ClearAll()
	defer gnsscore.DefaultGloMap.ClearAll()

	sid := gnsscore.Sid{Sat: 22, Code: gnsscore.CODE_GPS_L1CA}
	assert.InDelta(gnsscore.CLIGHT/gnsscore.FREQ_GPS_L1,
		gnsscore.SidToLambda(sid), 1e-15)

	for fcn := uint16(gnsscore.GLO_MIN_FCN); fcn <= gnsscore.GLO_MAX_FCN; fcn++ {
		assert.True(gnsscore.DefaultGloMap.SetFcn(3, fcn))
		delta := float64(int(fcn) - gnsscore.GLO_FCN_OFFSET)

		sid = gnsscore.Sid{Sat: 3, Code: gnsscore.CODE_GLO_L1OF}
		assert.InDelta(gnsscore.CLIGHT/(gnsscore.FREQ_GLO_L1+delta*gnsscore.DFRQ_GLO_L1),
			gnsscore.SidToLambda(sid), 1e-15)

		sid = gnsscore.Sid{Sat: 3, Code: gnsscore.CODE_GLO_L2OF}
		assert.InDelta(gnsscore.CLIGHT/(gnsscore.FREQ_GLO_L2+delta*gnsscore.DFRQ_GLO_L2),
			gnsscore.SidToLambda(sid), 1e-15)
	}
}

func Test_constellation_strings(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("GPS", gnsscore.ConstellationToString(gnsscore.CONSTELLATION_GPS))
	assert.Equal("SBAS", gnsscore.ConstellationToString(gnsscore.CONSTELLATION_SBAS))
	assert.Equal("GLO", gnsscore.ConstellationToString(gnsscore.CONSTELLATION_GLO))
	assert.Equal("BDS", gnsscore.ConstellationToString(gnsscore.CONSTELLATION_BDS))
	assert.Equal("QZS", gnsscore.ConstellationToString(gnsscore.CONSTELLATION_QZS))
	assert.Equal("GAL", gnsscore.ConstellationToString(gnsscore.CONSTELLATION_GAL))
	assert.Equal("?", gnsscore.ConstellationToString(gnsscore.CONSTELLATION_INVALID))
	assert.Equal("?", gnsscore.CodeToString(gnsscore.CODE_INVALID))
}
