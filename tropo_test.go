/*------------------------------------------------------------------------------
* gnsscore unit test driver : tropospheric delay model
*-----------------------------------------------------------------------------*/

package gnsscore_test

import (
	"math"
	"testing"

	"gnsscore"

	"github.com/stretchr/testify/assert"
)

func Test_calc_troposphere(t *testing.T) {
	assert := assert.New(t)
	const tropoTol = 1e-4

	/* reference values computed with UNB3M.f
	 * http://www2.unb.ca/gge/Personnel/Santos/UNB_pack.pdf */
	assert.InDelta(2.8567,
		gnsscore.CalcTroposphereDoy(32.5, 40*gnsscore.D2R, 1300.0, 45*gnsscore.D2R), tropoTol)
	assert.InDelta(7.4942,
		gnsscore.CalcTroposphereDoy(180.5, -10*gnsscore.D2R, 0.0, 20*gnsscore.D2R), tropoTol)
	assert.InDelta(12.90073,
		gnsscore.CalcTroposphereDoy(50.5, 75*gnsscore.D2R, 0.0, 10*gnsscore.D2R), tropoTol)
}

func Test_calc_troposphere_altitude_sanity(t *testing.T) {
	assert := assert.New(t)
	const maxTropoCorrection = 30.0

	lat := 75 * gnsscore.D2R
	el := 10 * gnsscore.D2R
	for _, h := range []float64{-5000.0, 12000.0} {
		d := gnsscore.CalcTroposphereDoy(50.5, lat, h, el)
		assert.Less(math.Abs(d), maxTropoCorrection, "altitude %v", h)
	}
}

func Test_calc_troposphere_elevation_sanity(t *testing.T) {
	assert := assert.New(t)
	const maxTropoCorrection = 100.0

	lat := 75 * gnsscore.D2R
	for _, el := range []float64{1e-3, 1e-4, 1e-5, 0, -1e3, -0.1} {
		d := gnsscore.CalcTroposphereDoy(50.5, lat, 100.0, el)
		assert.Less(math.Abs(d), maxTropoCorrection, "elevation %v", el)
	}
}
