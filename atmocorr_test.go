/*------------------------------------------------------------------------------
* atmocorr_test.go : gnsscore unit test driver : measurement atmospheric corrections
*-----------------------------------------------------------------------------*/
package gnsscore_test

import (
	"gnsscore"
	"testing"

	"github.com/stretchr/testify/assert"
)

const (
	atmoTestWn  = 1939
	atmoTestTow = 42.0
)

/* receiver position for the scenario below, San Francisco area at altitude */
var atmoTestPos = []float64{-2715898.028, -4266139.598, 3891352.859}

/* one epoch of L1CA observations, stationary satellites */
func atmoTestMeas() []gnsscore.NavigationMeasurement {
	type obs struct {
		sat uint16
		pr  float64
		pos [3]float64
	}
	set := []obs{
		{9, 23946993.888943646, [3]float64{-19477278.087422125, -7649508.9457812719, 16674633.163554827}},
		{1, 22932174.156858064, [3]float64{-9680013.5408340245, -15286326.354385279, 19429449.383770257}},
		{2, 24373231.648055989, [3]float64{-19858593.085281931, -3109845.8288993631, 17180320.439503901}},
		{3, 24779663.252316438, [3]float64{6682497.8716542246, -14006962.389166718, 21410456.275678463}},
		{4, 26948717.022331879, [3]float64{7415370.9916331079, -24974079.044485383, -3836019.0262199985}},
		{5, 23327405.435463827, [3]float64{-2833466.1648670658, -22755197.793894723, 13160322.082875408}},
		{6, 27371419.016328193, [3]float64{14881660.383624561, -5825253.4316490609, 21204679.68313824}},
		{7, 26294221.697782904, [3]float64{12246530.477279386, -22184711.955107089, 7739084.2855069181}},
		{8, 25781999.479948733, [3]float64{-25360766.249484103, -1659033.490658124, 7821492.0398916304}},
	}
	meas := make([]gnsscore.NavigationMeasurement, len(set))
	for i, o := range set {
		meas[i] = gnsscore.NavigationMeasurement{
			RawPseudorange: o.pr,
			SatPos:         o.pos,
			Cn0:            40.0,
			LockTime:       5.0,
			Tot:            gnsscore.GpsTime{Tow: atmoTestTow - 0.077, Wn: atmoTestWn},
			Sid:            gnsscore.Sid{Sat: o.sat, Code: gnsscore.CODE_GPS_L1CA},
			Flags: gnsscore.NAV_MEAS_FLAG_CODE_VALID |
				gnsscore.NAV_MEAS_FLAG_MEAS_DOPPLER_VALID |
				gnsscore.NAV_MEAS_FLAG_PHASE_VALID,
		}
	}
	return meas
}

func Test_correct_iono(t *testing.T) {
	assert := assert.New(t)

	/* all-zero broadcast coefficients: the Klobuchar delay reduces to the
	 * 5 ns floor scaled by the obliquity factor */
	ionoParams := &gnsscore.IonoParams{Toa: gnsscore.GPS_TIME_UNKNOWN}

	orig := atmoTestMeas()
	meas := atmoTestMeas()
	gnsscore.CorrectIono(atmoTestPos, ionoParams, meas)

	expectedPrDeltas := []float64{
		-1.797691397369,
		-1.521543189883,
		-2.111414518207,
		-2.330238319933,
		-3.942552670836,
		-1.669149085879,
		-4.086640629917,
		-3.286862179637,
		-2.850360091776,
	}

	for i := range meas {
		prDelta := meas[i].RawPseudorange - orig[i].RawPseudorange
		assert.InDelta(expectedPrDeltas[i], prDelta, 0.001)

		cpDelta := meas[i].RawCarrierPhase - orig[i].RawCarrierPhase
		freq := gnsscore.SidToCarrFreq(meas[i].Sid)
		assert.InDelta(expectedPrDeltas[i]*(freq/gnsscore.CLIGHT), cpDelta, 0.001)

		/* stationary satellites: the finite difference rate is exactly zero */
		assert.Equal(orig[i].RawMeasuredDoppler, meas[i].RawMeasuredDoppler)
		assert.Equal(orig[i].RawComputedDoppler, meas[i].RawComputedDoppler)
	}
}

func Test_correct_iono_no_params(t *testing.T) {
	assert := assert.New(t)

	orig := atmoTestMeas()
	meas := atmoTestMeas()
	gnsscore.CorrectIono(atmoTestPos, nil, meas)
	assert.Equal(orig, meas)
}

func Test_correct_tropo(t *testing.T) {
	assert := assert.New(t)

	orig := atmoTestMeas()
	meas := atmoTestMeas()
	gnsscore.CorrectTropo(atmoTestPos, meas)

	expectedPrDeltas := []float64{
		-0.643832463771,
		-0.531037796289,
		-0.768872588873,
		-0.866686545312,
		-2.582971405238,
		-0.594299942255,
		-2.985528819263,
		-1.532460253686,
		-1.163043931127,
	}

	for i := range meas {
		prDelta := meas[i].RawPseudorange - orig[i].RawPseudorange
		assert.InDelta(expectedPrDeltas[i], prDelta, 0.001)

		/* carrier phase correction carries the opposite sign */
		cpDelta := meas[i].RawCarrierPhase - orig[i].RawCarrierPhase
		freq := gnsscore.SidToCarrFreq(meas[i].Sid)
		assert.InDelta(-expectedPrDeltas[i]*(freq/gnsscore.CLIGHT), cpDelta, 0.001)

		assert.Equal(orig[i].RawMeasuredDoppler, meas[i].RawMeasuredDoppler)
		assert.Equal(orig[i].RawComputedDoppler, meas[i].RawComputedDoppler)
	}
}

func Test_correct_iono_doppler_rate(t *testing.T) {
	assert := assert.New(t)

	/* a moving satellite sees a non-zero correction rate and the doppler
	 * adjustment carries the opposite sign of the pseudorange correction */
	meas := atmoTestMeas()[:1]
	meas[0].SatVel = [3]float64{-2000.0, 1500.0, 800.0}

	ionoParams := &gnsscore.IonoParams{
		Toa: gnsscore.GPS_TIME_UNKNOWN,
		A0:  0.1583e-7, A1: -0.7451e-8, A2: -0.5960e-7, A3: 0.1192e-6,
		B0: 0.1290e6, B1: -0.2130e6, B2: 0.6554e5, B3: 0.3277e6,
	}

	before := meas[0]
	gnsscore.CorrectIono(atmoTestPos, ionoParams, meas)

	assert.NotEqual(before.RawMeasuredDoppler, meas[0].RawMeasuredDoppler)
	assert.Equal(meas[0].RawMeasuredDoppler-before.RawMeasuredDoppler,
		meas[0].RawComputedDoppler-before.RawComputedDoppler)
}
