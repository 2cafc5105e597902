/*------------------------------------------------------------------------------
* gnsscore unit test driver : almanac
*-----------------------------------------------------------------------------*/

package gnsscore_test

import (
	"testing"

	"gnsscore"

	"github.com/stretchr/testify/assert"
)

func Test_almanac_equal(t *testing.T) {
	assert := assert.New(t)

	var b gnsscore.Almanac
	assert.True(gnsscore.AlmanacEqual(&b, &b))

	/* every field difference must break the equality, with the orbit
	   variant selected by the signal code */
	mutations := []struct {
		name string
		mut  func(a *gnsscore.Almanac)
	}{
		{"valid", func(a *gnsscore.Almanac) { a.Valid = 1 }},
		{"health_bits", func(a *gnsscore.Almanac) { a.HealthBits = 0x3f }},
		{"sid.sat", func(a *gnsscore.Almanac) { a.Sid.Sat = 1 }},
		{"sid.code", func(a *gnsscore.Almanac) { a.Sid.Code = 1 }},
		{"toa.wn", func(a *gnsscore.Almanac) { a.Toa.Wn = 1 }},
		{"toa.tow", func(a *gnsscore.Almanac) { a.Toa.Tow = 1 }},
		{"ura", func(a *gnsscore.Almanac) { a.Ura = 1 }},
		{"fit_interval", func(a *gnsscore.Almanac) { a.FitInterval = 1 }},

		{"kepler.m0", func(a *gnsscore.Almanac) {
			a.Sid.Code = gnsscore.CODE_GPS_L1CA
			a.Kepler.M0 = 1
		}},
		{"kepler.ecc", func(a *gnsscore.Almanac) {
			a.Sid.Code = gnsscore.CODE_GPS_L1CA
			a.Kepler.Ecc = 1
		}},
		{"kepler.sqrta", func(a *gnsscore.Almanac) {
			a.Sid.Code = gnsscore.CODE_GPS_L1CA
			a.Kepler.Sqrta = 1
		}},
		{"kepler.omega0", func(a *gnsscore.Almanac) {
			a.Sid.Code = gnsscore.CODE_GPS_L1CA
			a.Kepler.Omega0 = 1
		}},
		{"kepler.omegadot", func(a *gnsscore.Almanac) {
			a.Sid.Code = gnsscore.CODE_GPS_L1CA
			a.Kepler.Omegadot = 1
		}},
		{"kepler.w", func(a *gnsscore.Almanac) {
			a.Sid.Code = gnsscore.CODE_GPS_L1CA
			a.Kepler.W = 1
		}},
		{"kepler.inc", func(a *gnsscore.Almanac) {
			a.Sid.Code = gnsscore.CODE_GPS_L1CA
			a.Kepler.Inc = 1
		}},
		{"kepler.af0", func(a *gnsscore.Almanac) {
			a.Sid.Code = gnsscore.CODE_GPS_L1CA
			a.Kepler.Af0 = 1
		}},
		{"kepler.af1", func(a *gnsscore.Almanac) {
			a.Sid.Code = gnsscore.CODE_GPS_L1CA
			a.Kepler.Af1 = 1
		}},

		{"xyz.pos[0]", func(a *gnsscore.Almanac) {
			a.Sid.Code = gnsscore.CODE_SBAS_L1CA
			a.Xyz.Pos[0] = 1
		}},
		{"xyz.pos[2]", func(a *gnsscore.Almanac) {
			a.Sid.Code = gnsscore.CODE_SBAS_L1CA
			a.Xyz.Pos[2] = 1
		}},
		{"xyz.vel[1]", func(a *gnsscore.Almanac) {
			a.Sid.Code = gnsscore.CODE_SBAS_L1CA
			a.Xyz.Vel[1] = 1
		}},
		{"xyz.acc[2]", func(a *gnsscore.Almanac) {
			a.Sid.Code = gnsscore.CODE_SBAS_L1CA
			a.Xyz.Acc[2] = 1
		}},

		{"glo.lambda", func(a *gnsscore.Almanac) {
			a.Sid.Code = gnsscore.CODE_GLO_L1OF
			a.Glo.Lambda = 1
		}},
		{"glo.t_lambda", func(a *gnsscore.Almanac) {
			a.Sid.Code = gnsscore.CODE_GLO_L1OF
			a.Glo.TLambda = 1
		}},
		{"glo.i", func(a *gnsscore.Almanac) {
			a.Sid.Code = gnsscore.CODE_GLO_L1OF
			a.Glo.I = 1
		}},
		{"glo.t", func(a *gnsscore.Almanac) {
			a.Sid.Code = gnsscore.CODE_GLO_L1OF
			a.Glo.T = 1
		}},
		{"glo.t_dot", func(a *gnsscore.Almanac) {
			a.Sid.Code = gnsscore.CODE_GLO_L1OF
			a.Glo.TDot = 1
		}},
		{"glo.epsilon", func(a *gnsscore.Almanac) {
			a.Sid.Code = gnsscore.CODE_GLO_L1OF
			a.Glo.Epsilon = 1
		}},
		{"glo.omega", func(a *gnsscore.Almanac) {
			a.Sid.Code = gnsscore.CODE_GLO_L1OF
			a.Glo.Omega = 1
		}},
	}
	for _, tc := range mutations {
		var a gnsscore.Almanac
		tc.mut(&a)
		assert.False(gnsscore.AlmanacEqual(&a, &b), tc.name)
	}
}

func Test_almanac_validity(t *testing.T) {
	assert := assert.New(t)

	a := gpsAlm
	atToa := a.Toa
	assert.True(gnsscore.AlmanacValid(&a, atToa))

	nearEnd := a.Toa
	gnsscore.AddSecs(&nearEnd, float64(a.FitInterval)/2-1)
	assert.True(gnsscore.AlmanacValid(&a, nearEnd))

	tooLate := a.Toa
	gnsscore.AddSecs(&tooLate, float64(a.FitInterval)/2+1)
	assert.False(gnsscore.AlmanacValid(&a, tooLate))

	a.Valid = 0
	assert.False(gnsscore.AlmanacValid(&a, atToa))
}

func Test_almanac_health(t *testing.T) {
	assert := assert.New(t)

	a := gpsAlm
	assert.True(gnsscore.AlmanacHealthy(&a))

	a.HealthBits = 0x3f
	assert.False(gnsscore.AlmanacHealthy(&a))
}
