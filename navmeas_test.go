/*------------------------------------------------------------------------------
* gnsscore unit test driver : navigation measurements
*-----------------------------------------------------------------------------*/

package gnsscore_test

import (
	"math"
	"testing"

	"gnsscore"

	"github.com/stretchr/testify/assert"
)

func Test_encode_lock_time(t *testing.T) {
	assert := assert.New(t)

	cases := []struct {
		lockTime float64
		code     uint8
	}{
		{0, 0}, {0.05, 1}, {0.1, 2}, {0.2, 3}, {0.5, 4},
		{1.0, 5}, {2.0, 6}, {4.0, 7}, {5.0, 8}, {10.0, 9},
		{20.0, 10}, {50.0, 11}, {100.0, 12}, {200.0, 13},
		{500.0, 14}, {1000.0, 15}, {math.MaxFloat64, 15},
	}
	for _, c := range cases {
		assert.Equal(c.code, gnsscore.EncodeLockTime(c.lockTime),
			"lock time %v", c.lockTime)
	}
}

func Test_decode_lock_time(t *testing.T) {
	assert := assert.New(t)

	cases := []struct {
		code     uint8
		lockTime float64
	}{
		{0, 0.0}, {0xF0, 0.0}, /* upper nibble reserved */
		{1, 0.032}, {2, 0.064}, {3, 0.128}, {4, 0.256}, {5, 0.512},
		{6, 1.024}, {7, 2.048}, {8, 4.096}, {9, 8.192}, {10, 16.384},
		{11, 32.768}, {12, 65.536}, {13, 131.072}, {14, 262.144},
		{15, 524.288},
	}
	for _, c := range cases {
		assert.Equal(c.lockTime, gnsscore.DecodeLockTime(c.code),
			"lock time code %v", c.code)
	}
}

func Test_roundtrip_lock_time(t *testing.T) {
	assert := assert.New(t)

	lockTime := 260.0
	code := gnsscore.EncodeLockTime(lockTime)
	decoded := gnsscore.DecodeLockTime(code)

	assert.Equal(uint8(13), code)
	assert.Equal(131.072, decoded)
	assert.Less(decoded, lockTime)
}

func Test_nav_meas_flags_valid(t *testing.T) {
	assert := assert.New(t)

	assert.True(gnsscore.NavMeasFlagsValid(0))
	assert.True(gnsscore.NavMeasFlagsValid(
		gnsscore.NAV_MEAS_FLAG_CODE_VALID | gnsscore.NAV_MEAS_FLAG_PHASE_VALID))
	assert.True(gnsscore.NavMeasFlagsValid(
		gnsscore.NAV_MEAS_FLAG_CODE_VALID | gnsscore.NAV_MEAS_FLAG_PHASE_VALID |
			gnsscore.NAV_MEAS_FLAG_MEAS_DOPPLER_VALID |
			gnsscore.NAV_MEAS_FLAG_COMP_DOPPLER_VALID |
			gnsscore.NAV_MEAS_FLAG_HALF_CYCLE_KNOWN |
			gnsscore.NAV_MEAS_FLAG_CN0_VALID |
			gnsscore.NAV_MEAS_FLAG_RAIM_EXCLUSION))
	assert.False(gnsscore.NavMeasFlagsValid(1 << 7))
	assert.False(gnsscore.NavMeasFlagsValid(
		gnsscore.NAV_MEAS_FLAG_CODE_VALID | 1<<15))
}

func Test_pseudorange_valid(t *testing.T) {
	assert := assert.New(t)

	var meas gnsscore.NavigationMeasurement
	assert.False(gnsscore.PseudorangeValid(&meas))

	meas.Flags = gnsscore.NAV_MEAS_FLAG_CODE_VALID
	assert.True(gnsscore.PseudorangeValid(&meas))

	meas.Flags |= gnsscore.NAV_MEAS_FLAG_RAIM_EXCLUSION
	assert.False(gnsscore.PseudorangeValid(&meas))

	meas.Flags = gnsscore.NAV_MEAS_FLAG_PHASE_VALID
	assert.False(gnsscore.PseudorangeValid(&meas))
}

func Test_sort_measurements(t *testing.T) {
	assert := assert.New(t)

	meas := []gnsscore.NavigationMeasurement{
		{Sid: gnsscore.Sid{Sat: 3, Code: gnsscore.CODE_GPS_L2CM}, Pseudorange: 3.0},
		{Sid: gnsscore.Sid{Sat: 2, Code: gnsscore.CODE_GLO_L1OF}, Pseudorange: 5.0},
		{Sid: gnsscore.Sid{Sat: 8, Code: gnsscore.CODE_GPS_L1CA}, Pseudorange: 2.0},
		{Sid: gnsscore.Sid{Sat: 1, Code: gnsscore.CODE_GPS_L1CA}, Pseudorange: 1.0},
		{Sid: gnsscore.Sid{Sat: 1, Code: gnsscore.CODE_GLO_L1OF}, Pseudorange: 4.0},
	}
	gnsscore.SortMeasurements(meas)

	for i := 0; i+1 < len(meas); i++ {
		assert.LessOrEqual(gnsscore.SidCompare(meas[i].Sid, meas[i+1].Sid), 0)
	}
	/* pseudoranges were assigned in sorted order */
	for i, m := range meas {
		assert.Equal(float64(i+1), m.Pseudorange)
	}
}

func Test_nav_meas_equal(t *testing.T) {
	assert := assert.New(t)

	a := gnsscore.NavigationMeasurement{
		RawPseudorange:  22932174.156858064,
		Pseudorange:     22932178.109882373,
		CarrierPhase:    -120518222.31762992,
		MeasuredDoppler: -2385.7025,
		Cn0:             44.25,
		LockTime:        154.5,
		Tot:             gnsscore.GpsTime{Tow: 479820.0, Wn: 1875},
		Sid:             gnsscore.Sid{Sat: 25, Code: gnsscore.CODE_GPS_L1CA},
		Flags: gnsscore.NAV_MEAS_FLAG_CODE_VALID |
			gnsscore.NAV_MEAS_FLAG_PHASE_VALID |
			gnsscore.NAV_MEAS_FLAG_CN0_VALID,
	}
	b := a
	assert.True(gnsscore.NavMeasEqual(&a, &b))

	/* differences below the tolerance do not break equality */
	b.Pseudorange += 0.5 * gnsscore.NAV_MEAS_EQUALITY_EPS
	assert.True(gnsscore.NavMeasEqual(&a, &b))

	b = a
	b.Pseudorange += 1.0e-6
	assert.False(gnsscore.NavMeasEqual(&a, &b))

	b = a
	b.Cn0 += 0.25
	assert.False(gnsscore.NavMeasEqual(&a, &b))

	b = a
	b.Tot.Wn++
	assert.False(gnsscore.NavMeasEqual(&a, &b))

	b = a
	b.Sid.Sat = 26
	assert.False(gnsscore.NavMeasEqual(&a, &b))

	b = a
	b.Flags |= gnsscore.NAV_MEAS_FLAG_HALF_CYCLE_KNOWN
	assert.False(gnsscore.NavMeasEqual(&a, &b))
}

func Test_measurement_std_equal(t *testing.T) {
	assert := assert.New(t)

	a := gnsscore.MeasurementStd{
		Sid:      gnsscore.Sid{Sat: 25, Code: gnsscore.CODE_GPS_L1CA},
		IonoStd:  1.2,
		TropoStd: 0.7,
		RangeStd: 2.5,
	}
	b := a
	assert.True(gnsscore.MeasurementStdEqual(&a, &b))

	b.RangeStd += 1.0e-3
	assert.False(gnsscore.MeasurementStdEqual(&a, &b))

	b = a
	b.Sid.Code = gnsscore.CODE_GPS_L2CM
	assert.False(gnsscore.MeasurementStdEqual(&a, &b))
}
