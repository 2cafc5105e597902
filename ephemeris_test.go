/*------------------------------------------------------------------------------
* gnsscore unit test driver : broadcast ephemeris
*-----------------------------------------------------------------------------*/

package gnsscore_test

import (
	"math"
	"testing"

	"gnsscore"

	"github.com/stretchr/testify/assert"
)

/* GPS ephemeris and almanac collected from the same epoch, so the evaluated
   positions agree to within the almanac accuracy */
var gpsEph = gnsscore.Ephemeris{
	Sid:         gnsscore.Sid{Sat: 1, Code: gnsscore.CODE_GPS_L1CA},
	Toe:         gnsscore.GpsTime{Tow: 14400, Wn: 1916},
	Ura:         2.0,
	FitInterval: 14400,
	Valid:       1,
	HealthBits:  0,
	Kepler: gnsscore.EphemerisKepler{
		Tgd:      [2]float32{5.122274160385132e-9, 0},
		Crc:      198.9375,
		Crs:      10.28125,
		Cuc:      5.327165126800537e-7,
		Cus:      9.521842002868652e-6,
		Cic:      -2.3655593395233154e-7,
		Cis:      -3.91155481338501e-8,
		Dn:       4.5637615275575705e-9,
		M0:       2.167759779416001,
		Ecc:      0.005649387603625655,
		Sqrta:    5153.644334793091,
		Omega0:   1.8718410336467348,
		Omegadot: -7.896400345341237e-9,
		W:        0.4837085715349947,
		Inc:      0.9649728717477063,
		IncDot:   6.078824636017362e-10,
		Af0:      2.5494489818811417e-5,
		Af1:      1.2505552149377763e-12,
		Af2:      0.0,
		Toc:      gnsscore.GpsTime{Tow: 14400, Wn: 1916},
		Iodc:     2,
		Iode:     2,
	},
}

var gpsAlm = gnsscore.Almanac{
	Sid:         gnsscore.Sid{Sat: 1, Code: gnsscore.CODE_GPS_L1CA},
	Toa:         gnsscore.GpsTime{Tow: 53248, Wn: 1916},
	Ura:         900,
	FitInterval: 504000,
	Valid:       1,
	HealthBits:  0,
	Kepler: gnsscore.AlmanacKepler{
		M0:       1.5509826579560628,
		Ecc:      0.005649566650390625,
		Sqrta:    5153.64453125,
		Omega0:   1.8715344586823712,
		Omegadot: -7.897471818543825e-9,
		W:        0.4837084091510879,
		Inc:      0.964996154674105,
		Af0:      2.574920654296875e-5,
		Af1:      0.0,
	},
}

func distance3(a, b []float64) float64 {
	var d [3]float64
	for i := 0; i < 3; i++ {
		d[i] = a[i] - b[i]
	}
	return gnsscore.Norm(d[:], 3)
}

/* a slightly diverged ephemeris must still agree with the almanac and the
   original ephemeris to within loose thresholds over the fit interval */
func Test_ephemeris_almanac_divergence(t *testing.T) {
	const validAlmAccuracy = 500000.0
	const validEphAccuracy = 500000.0

	assert := assert.New(t)

	diverged := gpsEph
	assert.True(gnsscore.EphemerisEqual(&gpsEph, &diverged))

	diverged.Kepler.Dn = 10.4154338446262e-9
	diverged.Kepler.M0 = 2.16970122385066
	assert.False(gnsscore.EphemerisEqual(&gpsEph, &diverged))

	tt := gpsEph.Toe
	gnsscore.AddSecs(&tt, -float64(gpsEph.FitInterval)/2.0)

	for i := 0; i < 3; i++ {
		var almPos, ephPos, divPos [3]float64
		var vel, acc [3]float64
		var clockErr, clockRateErr float64
		var iodc uint16
		var iode uint8

		assert.Equal(0, gnsscore.CalcSatStateAlmanac(&gpsAlm, tt,
			almPos[:], vel[:], acc[:], &clockErr, &clockRateErr))
		assert.Equal(0, gnsscore.CalcSatStateN(&gpsEph, tt,
			ephPos[:], vel[:], acc[:], &clockErr, &clockRateErr, &iodc, &iode))
		assert.Equal(0, gnsscore.CalcSatStateN(&diverged, tt,
			divPos[:], vel[:], acc[:], &clockErr, &clockRateErr, &iodc, &iode))

		assert.True(distance3(almPos[:], divPos[:]) <= validAlmAccuracy)
		assert.True(distance3(ephPos[:], divPos[:]) <= validEphAccuracy)

		gnsscore.AddSecs(&tt, float64(gpsEph.FitInterval)/2.0)
	}
}

/* the evaluated state must be continuous and the clock error close to af0
   near toc */
func Test_ephemeris_sat_state(t *testing.T) {
	assert := assert.New(t)

	tt := gpsEph.Toe
	var pos, vel, acc [3]float64
	var clockErr, clockRateErr float64
	var iodc uint16
	var iode uint8

	assert.Equal(0, gnsscore.CalcSatState(&gpsEph, tt, pos[:], vel[:], acc[:],
		&clockErr, &clockRateErr, &iodc, &iode))

	/* orbital radius within 200 km of the nominal GPS semi-major axis */
	r := gnsscore.Norm(pos[:], 3)
	a := gpsEph.Kepler.Sqrta * gpsEph.Kepler.Sqrta
	assert.True(math.Abs(r-a) < 2.0e5)

	/* clock error dominated by af0 minus the group delay */
	assert.True(math.Abs(clockErr-gpsEph.Kepler.Af0) < 1e-7)
	assert.Equal(uint16(2), iodc)
	assert.Equal(uint8(2), iode)

	/* velocity matches the central difference of position; the broadcast
	 * acceleration terms are approximate, so they only get a coarse check */
	const dt = 0.5
	tBefore := tt
	gnsscore.AddSecs(&tBefore, -dt)
	tAfter := tt
	gnsscore.AddSecs(&tAfter, dt)
	var posBefore, posAfter, velBefore, velAfter [3]float64
	assert.Equal(0, gnsscore.CalcSatState(&gpsEph, tBefore, posBefore[:],
		velBefore[:], acc[:], &clockErr, &clockRateErr, &iodc, &iode))
	assert.Equal(0, gnsscore.CalcSatState(&gpsEph, tAfter, posAfter[:],
		velAfter[:], acc[:], &clockErr, &clockRateErr, &iodc, &iode))
	assert.Equal(0, gnsscore.CalcSatState(&gpsEph, tt, pos[:], vel[:], acc[:],
		&clockErr, &clockRateErr, &iodc, &iode))
	for i := 0; i < 3; i++ {
		numVel := (posAfter[i] - posBefore[i]) / (2 * dt)
		assert.True(math.Abs(numVel-vel[i]) < 1e-4, "vel %d", i)

		numAcc := (velAfter[i] - velBefore[i]) / (2 * dt)
		assert.True(math.Abs(numAcc-acc[i]) < 1e-2, "acc %d", i)
	}
}

func Test_ephemeris_equal(t *testing.T) {
	assert := assert.New(t)

	var a, b gnsscore.Ephemeris
	assert.True(gnsscore.EphemerisEqual(&a, &b))

	a = gnsscore.Ephemeris{}
	a.Valid = 1
	assert.False(gnsscore.EphemerisEqual(&a, &b))

	a = gnsscore.Ephemeris{}
	a.HealthBits = 1
	assert.False(gnsscore.EphemerisEqual(&a, &b))

	a = gnsscore.Ephemeris{}
	a.Sid.Sat = 1
	assert.False(gnsscore.EphemerisEqual(&a, &b))

	a = gnsscore.Ephemeris{}
	a.Toe.Wn = 1
	assert.False(gnsscore.EphemerisEqual(&a, &b))

	a = gnsscore.Ephemeris{}
	a.Toe.Tow = 1
	assert.False(gnsscore.EphemerisEqual(&a, &b))

	a = gnsscore.Ephemeris{}
	a.Ura = 1
	assert.False(gnsscore.EphemerisEqual(&a, &b))

	a = gnsscore.Ephemeris{}
	a.FitInterval = 1
	assert.False(gnsscore.EphemerisEqual(&a, &b))

	a = gnsscore.Ephemeris{}
	a.Kepler.Tgd[0] = 1
	assert.False(gnsscore.EphemerisEqual(&a, &b))

	a = gnsscore.Ephemeris{}
	a.Kepler.Dn = 1
	assert.False(gnsscore.EphemerisEqual(&a, &b))

	a = gnsscore.Ephemeris{}
	a.Kepler.Toc.Tow = 1
	assert.False(gnsscore.EphemerisEqual(&a, &b))

	a = gnsscore.Ephemeris{}
	a.Sid.Code = gnsscore.CODE_SBAS_L1CA
	b.Sid.Code = gnsscore.CODE_SBAS_L1CA
	a.Xyz.Pos[0] = 1
	assert.False(gnsscore.EphemerisEqual(&a, &b))

	a = gnsscore.Ephemeris{Sid: gnsscore.Sid{Code: gnsscore.CODE_SBAS_L1CA}}
	a.Xyz.AGf0 = 1
	assert.False(gnsscore.EphemerisEqual(&a, &b))
	b.Sid.Code = gnsscore.CODE_GPS_L1CA

	a = gnsscore.Ephemeris{Sid: gnsscore.Sid{Code: gnsscore.CODE_GLO_L1OF}}
	b.Sid.Code = gnsscore.CODE_GLO_L1OF
	a.Glo.Gamma = 1
	assert.False(gnsscore.EphemerisEqual(&a, &b))

	a = gnsscore.Ephemeris{Sid: gnsscore.Sid{Code: gnsscore.CODE_GLO_L1OF}}
	a.Glo.DTau = 1
	assert.False(gnsscore.EphemerisEqual(&a, &b))

	a = gnsscore.Ephemeris{Sid: gnsscore.Sid{Code: gnsscore.CODE_GLO_L1OF}}
	a.Glo.Fcn = 1
	assert.False(gnsscore.EphemerisEqual(&a, &b))

	a = gnsscore.Ephemeris{Sid: gnsscore.Sid{Code: gnsscore.CODE_GLO_L1OF}}
	a.Glo.Pos[2] = 1
	assert.False(gnsscore.EphemerisEqual(&a, &b))
}

func Test_ephemeris_health(t *testing.T) {
	cases := []struct {
		sat        uint16
		code       gnsscore.Code
		healthBits uint8
		ura        float32
		valid      uint8
		healthy    bool
	}{
		{1, gnsscore.CODE_GPS_L1CA, 0, 2.0, 1, true},
		{1, gnsscore.CODE_GPS_L1CA, 0, 200.0, 0, true}, /* invalid presumed healthy */
		{32, gnsscore.CODE_GPS_L2CM, 0, 2000.0, 1, true},
		{1, gnsscore.CODE_GPS_L1CA, 0, 33333.0, 1, false},
		{1, gnsscore.CODE_GPS_L1CA, 0, gnsscore.INVALID_URA_VALUE, 1, false},
		{1, gnsscore.CODE_GPS_L1CA, 0, -100.0, 1, false},
		{11, gnsscore.CODE_GPS_L1CA, 0x3F, 1.0, 1, false},
		{12, gnsscore.CODE_GPS_L1CA, 0x2A, 1.0, 1, false},
		{13, gnsscore.CODE_GPS_L2CM, 0x2E, 4000.0, 1, false},
		{1, gnsscore.CODE_GPS_L2CM, 0x2A, 4000.0, 1, true},
		{22, gnsscore.CODE_GPS_L1CA, 0x2E, 10.0, 1, false},
	}

	assert := assert.New(t)
	for i, c := range cases {
		e := gnsscore.Ephemeris{
			Sid:        gnsscore.Sid{Sat: c.sat, Code: c.code},
			Ura:        c.ura,
			Valid:      c.valid,
			HealthBits: c.healthBits,
		}
		assert.Equal(c.healthy, gnsscore.EphemerisHealthy(&e, c.code),
			"case %d", i)
	}
}

func Test_6bit_health_word(t *testing.T) {
	cases := []struct {
		healthBits uint8
		code       gnsscore.Code
		result     bool
	}{
		{0, gnsscore.CODE_GPS_L1CA, true},
		{0, gnsscore.CODE_GPS_L2CM, true},
		{0x2B, gnsscore.CODE_GPS_L1CA, false},
		{0x2B, gnsscore.CODE_GPS_L2CM, true},
		{0x0B, gnsscore.CODE_GPS_L1CA, false},
		{0x0B, gnsscore.CODE_GPS_L2CM, true},
		{0x2E, gnsscore.CODE_GPS_L1CA, false},
		{0x2E, gnsscore.CODE_GPS_L2CM, false},
		{0x0E, gnsscore.CODE_GPS_L1CA, true},
		{0x0E, gnsscore.CODE_GPS_L2CM, false},
		{0x04, gnsscore.CODE_GPS_L1P, false},
		{0x07, gnsscore.CODE_GPS_L2P, false},
		{0x20, gnsscore.CODE_GPS_L1P, false},
		{0x01, gnsscore.CODE_GPS_L2P, false},
		{0, gnsscore.CODE_GPS_L5I, true},
	}

	assert := assert.New(t)
	for i, c := range cases {
		assert.Equal(c.result,
			gnsscore.Check6bitHealthWord(c.healthBits, c.code), "case %d", i)
	}
}

/* reference value computed with the BNC broadcast encoder */
func Test_bds_iodcrc(t *testing.T) {
	assert := assert.New(t)

	bdsEph := gpsEph
	bdsEph.Sid.Code = gnsscore.CODE_BDS2_B1
	assert.Equal(uint32(14700972), gnsscore.GetEphemerisIodOrIodcrc(&bdsEph))

	/* non-BDS falls back to the IODE */
	assert.Equal(uint32(2), gnsscore.GetEphemerisIodOrIodcrc(&gpsEph))
}

func Test_ura_encoding(t *testing.T) {
	assert := assert.New(t)

	assert.InDelta(2.0, float64(gnsscore.DecodeUraIndex(0)), 1e-9)
	assert.InDelta(2.8, float64(gnsscore.DecodeUraIndex(1)), 1e-9)
	assert.InDelta(6144.0, float64(gnsscore.DecodeUraIndex(15)), 1e-9)
	assert.Equal(float32(gnsscore.INVALID_URA_VALUE),
		gnsscore.DecodeUraIndex(gnsscore.INVALID_GPS_URA_INDEX))

	assert.Equal(uint8(0), gnsscore.EncodeUra(2.0))
	assert.Equal(uint8(1), gnsscore.EncodeUra(2.4))
	assert.Equal(uint8(15), gnsscore.EncodeUra(4100.0))
	assert.Equal(uint8(gnsscore.INVALID_GPS_URA_INDEX), gnsscore.EncodeUra(-1.0))

	/* decode(encode(x)) never understates the accuracy */
	for _, ura := range []float32{0.1, 1.9, 2.0, 57.0, 900.0, 6144.0} {
		idx := gnsscore.EncodeUra(ura)
		assert.True(gnsscore.DecodeUraIndex(idx) >= ura)
	}
}

func Test_ephemeris_validity(t *testing.T) {
	assert := assert.New(t)

	e := gpsEph
	tt := e.Toe

	assert.True(gnsscore.EphemerisValid(&e, tt))
	assert.Equal(gnsscore.EPH_VALID, gnsscore.EphemerisValidDetailed(&e, tt))

	/* just inside the fit interval */
	tEdge := e.Toe
	gnsscore.AddSecs(&tEdge, float64(e.FitInterval)/2.0-1.0)
	assert.True(gnsscore.EphemerisValid(&e, tEdge))

	/* beyond the fit interval */
	tOld := e.Toe
	gnsscore.AddSecs(&tOld, float64(e.FitInterval)/2.0+1.0)
	assert.False(gnsscore.EphemerisValid(&e, tOld))
	assert.Equal(gnsscore.EPH_TOO_OLD, gnsscore.EphemerisValidDetailed(&e, tOld))

	e = gpsEph
	e.Valid = 0
	assert.Equal(gnsscore.EPH_INVALID, gnsscore.EphemerisValidDetailed(&e, tt))

	e = gpsEph
	e.FitInterval = 0
	assert.Equal(gnsscore.EPH_FIT_INTERVAL_EQ_0,
		gnsscore.EphemerisValidDetailed(&e, tt))

	e = gpsEph
	e.Toe.Wn = 0
	e.Kepler.Toc.Wn = 0
	assert.Equal(gnsscore.EPH_WN_EQ_0, gnsscore.EphemerisValidDetailed(&e, tt))

	e = gpsEph
	e.HealthBits = 0x3F
	assert.Equal(gnsscore.EPH_UNHEALTHY, gnsscore.EphemerisValidDetailed(&e, tt))

	assert.Equal(gnsscore.EPH_NULL, gnsscore.EphemerisValidDetailed(nil, tt))
}

func Test_tgd_correction(t *testing.T) {
	assert := assert.New(t)

	tgd, ok := gnsscore.GetTgdCorrection(&gpsEph,
		gnsscore.Sid{Sat: 1, Code: gnsscore.CODE_GPS_L1CA})
	assert.True(ok)
	assert.InDelta(5.122274160385132e-9, float64(tgd), 1e-15)

	/* L2 group delay scales with the squared frequency ratio */
	tgdL2, ok := gnsscore.GetTgdCorrection(&gpsEph,
		gnsscore.Sid{Sat: 1, Code: gnsscore.CODE_GPS_L2CM})
	assert.True(ok)
	gamma := (gnsscore.FREQ_GPS_L1 / gnsscore.FREQ_GPS_L2) *
		(gnsscore.FREQ_GPS_L1 / gnsscore.FREQ_GPS_L2)
	assert.InDelta(float64(tgd)*gamma, float64(tgdL2), 1e-15)
}
