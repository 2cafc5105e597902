/*------------------------------------------------------------------------------
* navmeas.go : navigation measurement container and lock time encoding
*-----------------------------------------------------------------------------*/
package gnsscore

import (
	"math"

	"golang.org/x/exp/slices"
)

/* measurement validity flags */
type NavMeasFlags uint16

const (
	NAV_MEAS_FLAG_CODE_VALID         NavMeasFlags = 1 << 0 /* pseudorange fields valid */
	NAV_MEAS_FLAG_PHASE_VALID        NavMeasFlags = 1 << 1 /* carrier phase fields valid */
	NAV_MEAS_FLAG_MEAS_DOPPLER_VALID NavMeasFlags = 1 << 2 /* measured doppler fields valid */
	NAV_MEAS_FLAG_COMP_DOPPLER_VALID NavMeasFlags = 1 << 3 /* computed doppler fields valid */
	NAV_MEAS_FLAG_HALF_CYCLE_KNOWN   NavMeasFlags = 1 << 4 /* half cycle ambiguity resolved */
	NAV_MEAS_FLAG_CN0_VALID          NavMeasFlags = 1 << 5 /* cn0 field valid */
	NAV_MEAS_FLAG_RAIM_EXCLUSION     NavMeasFlags = 1 << 6 /* excluded by SPP RAIM */
)

/* one channel's measurement set at one epoch */
type NavigationMeasurement struct {
	RawPseudorange     float64 /* time of flight times speed of light (m) */
	Pseudorange        float64 /* corrected pseudorange (m) */
	RawCarrierPhase    float64 /* raw carrier phase (cycle) */
	CarrierPhase       float64 /* corrected carrier phase (cycle) */
	RawMeasuredDoppler float64 /* raw doppler from the tracker (Hz) */
	MeasuredDoppler    float64 /* corrected doppler from the tracker (Hz) */
	RawComputedDoppler float64 /* raw doppler from phase time difference (Hz) */
	ComputedDoppler    float64 /* corrected computed doppler (Hz) */
	ComputedDopplerDt  float64 /* time difference for computed doppler (s) */
	SatPos             [3]float64
	SatVel             [3]float64
	SatAcc             [3]float64
	IODE               uint8
	SatClockErr        float64 /* SV clock error (s) */
	SatClockErrRate    float64 /* SV clock error rate (s/s) */
	IODC               uint16
	Cn0                float64 /* carrier to noise ratio (dB-Hz) */
	LockTime           float64 /* PLL lock time (s) */
	Elevation          float64 /* approximate satellite elevation (deg) */
	Tot                GpsTime /* time of transmit */
	Sid                Sid
	Flags              NavMeasFlags
}

/* per observation error model standard deviations */
type MeasurementStd struct {
	Sid      Sid
	IonoStd  float64 /* ionospheric delay std (m) */
	TropoStd float64 /* tropospheric delay std (m) */
	RangeStd float64 /* orbit/clock delay std (m) */
	Flags    uint8
}

/* ordering for sorting measurement sets, by signal id --------------------------*/
func NavMeasCmp(a, b *NavigationMeasurement) int {
	return SidCompare(a.Sid, b.Sid)
}

/* reject flag words with undefined bits set -------------------------------------*/
func NavMeasFlagsValid(flags NavMeasFlags) bool {
	const allValid = NAV_MEAS_FLAG_CODE_VALID | NAV_MEAS_FLAG_PHASE_VALID |
		NAV_MEAS_FLAG_MEAS_DOPPLER_VALID | NAV_MEAS_FLAG_COMP_DOPPLER_VALID |
		NAV_MEAS_FLAG_HALF_CYCLE_KNOWN | NAV_MEAS_FLAG_CN0_VALID |
		NAV_MEAS_FLAG_RAIM_EXCLUSION
	return flags&^allValid == 0
}

/* order a measurement set by signal id ---------------------------------------------*/
func SortMeasurements(meas []NavigationMeasurement) {
	slices.SortFunc(meas, func(a, b NavigationMeasurement) int {
		return SidCompare(a.Sid, b.Sid)
	})
}

/* default tolerance for comparing measurement doubles */
const NAV_MEAS_EQUALITY_EPS = 1e-9

/* field by field equality, doubles within NAV_MEAS_EQUALITY_EPS ---------------------*/
func NavMeasEqual(a, b *NavigationMeasurement) bool {
	doubles := [...][2]float64{
		{a.RawPseudorange, b.RawPseudorange},
		{a.Pseudorange, b.Pseudorange},
		{a.RawCarrierPhase, b.RawCarrierPhase},
		{a.CarrierPhase, b.CarrierPhase},
		{a.RawMeasuredDoppler, b.RawMeasuredDoppler},
		{a.MeasuredDoppler, b.MeasuredDoppler},
		{a.RawComputedDoppler, b.RawComputedDoppler},
		{a.ComputedDoppler, b.ComputedDoppler},
		{a.ComputedDopplerDt, b.ComputedDopplerDt},
		{a.SatPos[0], b.SatPos[0]},
		{a.SatPos[1], b.SatPos[1]},
		{a.SatPos[2], b.SatPos[2]},
		{a.SatVel[0], b.SatVel[0]},
		{a.SatVel[1], b.SatVel[1]},
		{a.SatVel[2], b.SatVel[2]},
		{a.SatAcc[0], b.SatAcc[0]},
		{a.SatAcc[1], b.SatAcc[1]},
		{a.SatAcc[2], b.SatAcc[2]},
		{a.SatClockErr, b.SatClockErr},
		{a.SatClockErrRate, b.SatClockErrRate},
		{a.Cn0, b.Cn0},
		{a.LockTime, b.LockTime},
		{a.Elevation, b.Elevation},
		{a.Tot.Tow, b.Tot.Tow},
	}
	for _, d := range doubles {
		if math.Abs(d[0]-d[1]) >= NAV_MEAS_EQUALITY_EPS {
			return false
		}
	}
	return a.IODE == b.IODE && a.IODC == b.IODC &&
		a.Tot.Wn == b.Tot.Wn &&
		SidIsEqual(a.Sid, b.Sid) && a.Flags == b.Flags
}

/* equality for the error model standard deviations ---------------------------------*/
func MeasurementStdEqual(a, b *MeasurementStd) bool {
	return SidIsEqual(a.Sid, b.Sid) && a.Flags == b.Flags &&
		math.Abs(a.IonoStd-b.IonoStd) < NAV_MEAS_EQUALITY_EPS &&
		math.Abs(a.TropoStd-b.TropoStd) < NAV_MEAS_EQUALITY_EPS &&
		math.Abs(a.RangeStd-b.RangeStd) < NAV_MEAS_EQUALITY_EPS
}

/* usable pseudorange: code valid and not excluded by RAIM --------------------------*/
func PseudorangeValid(meas *NavigationMeasurement) bool {
	return meas.Flags&NAV_MEAS_FLAG_CODE_VALID != 0 &&
		meas.Flags&NAV_MEAS_FLAG_RAIM_EXCLUSION == 0
}

/* encode a lock time to the 4-bit RTCM DF402 representation --------------------------
* args   : float64 lockTime  I  phase lock time (s), non-negative
* return : code 0..15, the largest code whose threshold the lock time meets
* notes  : RTCM 10403.2 amendment 2, DF402
*-----------------------------------------------------------------------------*/
func EncodeLockTime(lockTime float64) uint8 {
	if lockTime < 0 {
		return 0
	}

	var msLockTime uint32
	if lockTime < math.MaxUint32 {
		msLockTime = uint32(lockTime * 1000)
	} else {
		msLockTime = math.MaxUint32
	}

	if msLockTime < 32 {
		return 0
	}
	for i := uint8(0); i < 16; i++ {
		if msLockTime > 1<<(i+5) {
			continue
		}
		return i
	}
	return 15
}

/* decode a DF402 lock time code to the lower bound of its interval --------------------
* args   : uint8 code  I  4-bit lock time code, high nibble reserved
* return : minimum possible lock time (s)
*-----------------------------------------------------------------------------*/
func DecodeLockTime(code uint8) float64 {
	code &= 0x0F

	var msLockTime uint32
	if code != 0 {
		msLockTime = 1 << (code + 4)
	}
	return float64(msLockTime) / 1000
}
