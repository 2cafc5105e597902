/*------------------------------------------------------------------------------
* gnsscore unit test driver : coordinate transforms
*-----------------------------------------------------------------------------*/

package gnsscore_test

import (
	"math"
	"testing"

	"gnsscore"

	"github.com/stretchr/testify/assert"
)

func Test_vector_helpers(t *testing.T) {
	assert := assert.New(t)

	a := []float64{1.0, 2.0, 3.0}
	b := []float64{4.0, -5.0, 6.0}
	assert.InDelta(12.0, gnsscore.Dot(a, b, 3), 1e-12)
	assert.InDelta(math.Sqrt(14.0), gnsscore.Norm(a, 3), 1e-12)

	var c [3]float64
	gnsscore.Cross3(a, b, c[:])
	assert.InDelta(27.0, c[0], 1e-12)
	assert.InDelta(6.0, c[1], 1e-12)
	assert.InDelta(-13.0, c[2], 1e-12)
	/* cross product is orthogonal to both inputs */
	assert.InDelta(0.0, gnsscore.Dot(a, c[:], 3), 1e-9)
	assert.InDelta(0.0, gnsscore.Dot(b, c[:], 3), 1e-9)

	var u [3]float64
	assert.True(gnsscore.NormV3(a, u[:]))
	assert.InDelta(1.0, gnsscore.Norm(u[:], 3), 1e-12)
	assert.False(gnsscore.NormV3([]float64{0, 0, 0}, u[:]))
}

func Test_llh2ecef(t *testing.T) {
	assert := assert.New(t)

	semiMinor := gnsscore.RE_WGS84 * (1.0 - gnsscore.FE_WGS84)
	var ecef [3]float64

	/* on the equator at the prime meridian */
	gnsscore.Llh2Ecef([]float64{0, 0, 0}, ecef[:])
	assert.InDelta(gnsscore.RE_WGS84, ecef[0], 1e-6)
	assert.InDelta(0.0, ecef[1], 1e-6)
	assert.InDelta(0.0, ecef[2], 1e-6)

	/* north pole */
	gnsscore.Llh2Ecef([]float64{gnsscore.PI / 2, 0, 0}, ecef[:])
	assert.InDelta(0.0, ecef[0], 1e-6)
	assert.InDelta(0.0, ecef[1], 1e-6)
	assert.InDelta(semiMinor, ecef[2], 1e-6)

	/* equator at 90 degrees east, 22 m up */
	gnsscore.Llh2Ecef([]float64{0, gnsscore.PI / 2, 22.0}, ecef[:])
	assert.InDelta(0.0, ecef[0], 1e-6)
	assert.InDelta(gnsscore.RE_WGS84+22.0, ecef[1], 1e-6)
	assert.InDelta(0.0, ecef[2], 1e-6)
}

func Test_ecef2llh_poles(t *testing.T) {
	assert := assert.New(t)

	semiMinor := gnsscore.RE_WGS84 * (1.0 - gnsscore.FE_WGS84)
	var llh [3]float64

	gnsscore.Ecef2Llh([]float64{0, 0, semiMinor + 100.0}, llh[:])
	assert.InDelta(gnsscore.PI/2, llh[0], 1e-12)
	assert.InDelta(0.0, llh[1], 1e-12)
	assert.InDelta(100.0, llh[2], 1e-6)

	gnsscore.Ecef2Llh([]float64{0, 0, -(semiMinor + 100.0)}, llh[:])
	assert.InDelta(-gnsscore.PI/2, llh[0], 1e-12)
	assert.InDelta(100.0, llh[2], 1e-6)
}

func Test_llh_ecef_roundtrip(t *testing.T) {
	assert := assert.New(t)

	llhs := [][3]float64{
		{0.0, 0.0, 0.0},
		{37.7749 * gnsscore.D2R, -122.4194 * gnsscore.D2R, 60.0},
		{-35.3 * gnsscore.D2R, 149.1 * gnsscore.D2R, 554.0},
		{89.9 * gnsscore.D2R, 45.0 * gnsscore.D2R, 1000.0},
		{-89.9 * gnsscore.D2R, -135.0 * gnsscore.D2R, -50.0},
		{0.5, -3.0, 22.0},
		{60.0 * gnsscore.D2R, 10.0 * gnsscore.D2R, 20200000.0},
	}
	for _, llh := range llhs {
		var ecef, back [3]float64
		gnsscore.Llh2Ecef(llh[:], ecef[:])
		gnsscore.Ecef2Llh(ecef[:], back[:])
		assert.InDelta(llh[0], back[0], 1e-10, "lat for %v", llh)
		assert.InDelta(llh[1], back[1], 1e-10, "lon for %v", llh)
		assert.InDelta(llh[2], back[2], 1e-5, "height for %v", llh)
	}
}

func Test_llh_deg_rad(t *testing.T) {
	assert := assert.New(t)

	deg := []float64{37.7749, -122.4194, 60.0}
	var rad, back [3]float64
	gnsscore.LlhDeg2Rad(deg, rad[:])
	assert.InDelta(deg[0]*gnsscore.D2R, rad[0], 1e-15)
	assert.InDelta(deg[1]*gnsscore.D2R, rad[1], 1e-15)
	assert.Equal(60.0, rad[2])

	gnsscore.LlhRad2Deg(rad[:], back[:])
	assert.InDelta(deg[0], back[0], 1e-12)
	assert.InDelta(deg[1], back[1], 1e-12)
	assert.Equal(60.0, back[2])
}

func Test_ecef2ned(t *testing.T) {
	assert := assert.New(t)

	/* at lat=0, lon=0 the NED axes line up with {z, y, -x} */
	refLlh := []float64{0, 0, 0}
	var ned [3]float64
	gnsscore.Ecef2Ned([]float64{1, 2, 3}, refLlh, ned[:])
	assert.InDelta(3.0, ned[0], 1e-12)
	assert.InDelta(2.0, ned[1], 1e-12)
	assert.InDelta(-1.0, ned[2], 1e-12)
}

func Test_ned_ecef_roundtrip(t *testing.T) {
	assert := assert.New(t)

	refLlh := []float64{37.7749 * gnsscore.D2R, -122.4194 * gnsscore.D2R, 60.0}
	var refEcef [3]float64
	gnsscore.Llh2Ecef(refLlh, refEcef[:])

	neds := [][3]float64{
		{100.0, -200.0, 30.0},
		{0.0, 0.0, 0.0},
		{-12345.6, 7890.1, -432.1},
	}
	for _, ned := range neds {
		var ecef, back [3]float64
		gnsscore.Ned2EcefD(ned[:], refEcef[:], ecef[:])
		gnsscore.Ecef2NedD(ecef[:], refEcef[:], back[:])
		for i := 0; i < 3; i++ {
			assert.InDelta(ned[i], back[i], 1e-6, "ned[%v] for %v", i, ned)
		}
	}

	/* plain vector rotation roundtrip */
	v := []float64{1.0, -2.0, 3.0}
	var ned, back [3]float64
	gnsscore.Ecef2Ned(v, refLlh, ned[:])
	gnsscore.Ned2Ecef(ned[:], refLlh, back[:])
	for i := 0; i < 3; i++ {
		assert.InDelta(v[i], back[i], 1e-12)
	}
}

func Test_ecef2azel(t *testing.T) {
	assert := assert.New(t)

	refLlh := []float64{0, 0, 0}
	var refEcef [3]float64
	gnsscore.Llh2Ecef(refLlh, refEcef[:])

	/* straight up from the receiver */
	sat := []float64{refEcef[0] + 2.0e7, refEcef[1], refEcef[2]}
	_, el := gnsscore.Ecef2AzEl(sat, refEcef[:])
	assert.InDelta(gnsscore.PI/2, el, 1e-9)

	/* due north on the horizon */
	sat = []float64{refEcef[0], refEcef[1], refEcef[2] + 1000.0}
	az, el := gnsscore.Ecef2AzEl(sat, refEcef[:])
	assert.InDelta(0.0, az, 1e-6)
	assert.InDelta(0.0, el, 1e-4)

	/* due east on the horizon */
	sat = []float64{refEcef[0], refEcef[1] + 1000.0, refEcef[2]}
	az, el = gnsscore.Ecef2AzEl(sat, refEcef[:])
	assert.InDelta(gnsscore.PI/2, az, 1e-6)
	assert.InDelta(0.0, el, 1e-4)

	/* due south below the horizon */
	sat = []float64{refEcef[0] - 10.0, refEcef[1], refEcef[2] - 1000.0}
	az, el = gnsscore.Ecef2AzEl(sat, refEcef[:])
	assert.InDelta(gnsscore.PI, az, 1e-2)
	assert.Less(el, 0.0)
}
