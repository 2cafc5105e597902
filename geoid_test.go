/*------------------------------------------------------------------------------
* gnsscore unit test driver : geoid offset lookup
*-----------------------------------------------------------------------------*/

package gnsscore_test

import (
	"math"
	"testing"

	"gnsscore"

	"github.com/stretchr/testify/assert"
)

/* whole-globe model on a coarse grid whose samples follow
 * f(lat,lon) = 2*lat + 0.5*lon (deg). Catmull-Rom and bilinear interpolation
 * both reproduce linear data exactly */
func linearTestModel() *gnsscore.GeoidModel {
	const (
		latStep = 30.0
		lonStep = 60.0
		nLat    = 7
		nLon    = 7
	)
	data := make([]float32, nLat*nLon)
	for x := 0; x < nLon; x++ {
		for y := 0; y < nLat; y++ {
			lat := -90.0 + latStep*float64(y)
			lon := lonStep * float64(x)
			data[x*nLat+y] = float32(2.0*lat + 0.5*lon)
		}
	}
	return &gnsscore.GeoidModel{
		Data:       data,
		LatSpacing: latStep,
		LonSpacing: lonStep,
		NLat:       nLat,
		NLon:       nLon,
	}
}

func Test_geoid_model_interpolation(t *testing.T) {
	assert := assert.New(t)

	m := linearTestModel()
	cases := []struct {
		latDeg, lonDeg float64
	}{
		{-20.0, 150.0}, /* interior, bicubic */
		{5.0, 200.0},   /* interior, bicubic */
		{40.0, 150.0},  /* next to the north pole row flip */
		{-80.0, 90.0},  /* south edge row, bilinear */
		{75.0, 30.0},   /* north edge row, bilinear */
		{-90.0, 120.0}, /* exactly on the south pole row */
		{0.0, 180.0},   /* exact grid point */
	}
	for _, c := range cases {
		want := 2.0*c.latDeg + 0.5*c.lonDeg
		got := m.Offset(c.latDeg*gnsscore.D2R, c.lonDeg*gnsscore.D2R)
		assert.InDelta(want, got, 1e-9, "lat %v lon %v", c.latDeg, c.lonDeg)
	}

	/* lat +90 reads the top row sample directly; real grids store one
	 * height for the whole pole row, so the longitude must not matter */
	for x := 0; x < m.NLon; x++ {
		m.Data[x*m.NLat+m.NLat-1] = 13.25
	}
	for _, lonDeg := range []float64{0.0, 90.0, 120.0, 359.5} {
		assert.InDelta(13.25,
			m.Offset(90.0*gnsscore.D2R, lonDeg*gnsscore.D2R), 1e-9,
			"lon %v", lonDeg)
	}
}

func Test_geoid_model_constant(t *testing.T) {
	assert := assert.New(t)

	m := linearTestModel()
	for i := range m.Data {
		m.Data[i] = -31.5
	}
	/* longitude wrap included */
	for _, lon := range []float64{0.0, 42.0, 180.0, 359.5, -10.0} {
		for _, lat := range []float64{-90.0, -45.5, 0.0, 33.3, 90.0} {
			assert.InDelta(-31.5, m.Offset(lat*gnsscore.D2R, lon*gnsscore.D2R), 1e-9)
		}
	}
}

func Test_get_geoid_offset(t *testing.T) {
	assert := assert.New(t)

	/* geoid undulations stay within about -110..90 m of the ellipsoid */
	for lat := -90.0; lat <= 90.0; lat += 7.5 {
		for lon := 0.0; lon < 360.0; lon += 7.5 {
			off := gnsscore.GetGeoidOffset(lat*gnsscore.D2R, lon*gnsscore.D2R)
			assert.GreaterOrEqual(off, -120.0, "lat %v lon %v", lat, lon)
			assert.LessOrEqual(off, 100.0, "lat %v lon %v", lat, lon)
		}
	}

	/* negative longitudes alias onto 0..360 */
	assert.Equal(gnsscore.GetGeoidOffset(40.0*gnsscore.D2R, -70.0*gnsscore.D2R),
		gnsscore.GetGeoidOffset(40.0*gnsscore.D2R, 290.0*gnsscore.D2R))

	/* out of range latitude */
	assert.Equal(0.0, gnsscore.GetGeoidOffset(91.0*gnsscore.D2R, 0.0))
	assert.Equal(0.0, gnsscore.GetGeoidOffset(-91.0*gnsscore.D2R, 0.0))
}

func Test_get_geoid_offset_continuity(t *testing.T) {
	assert := assert.New(t)

	/* interpolated surface moves smoothly between grid nodes */
	for _, lat := range []float64{-60.0, -12.3, 0.0, 37.7, 64.0} {
		for lon := 10.0; lon < 350.0; lon += 33.3 {
			base := gnsscore.GetGeoidOffset(lat*gnsscore.D2R, lon*gnsscore.D2R)
			stepLat := gnsscore.GetGeoidOffset((lat+0.1)*gnsscore.D2R, lon*gnsscore.D2R)
			stepLon := gnsscore.GetGeoidOffset(lat*gnsscore.D2R, (lon+0.1)*gnsscore.D2R)
			assert.Less(math.Abs(stepLat-base), 5.0, "lat %v lon %v", lat, lon)
			assert.Less(math.Abs(stepLon-base), 5.0, "lat %v lon %v", lat, lon)
		}
	}
}
