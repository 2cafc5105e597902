/*------------------------------------------------------------------------------
* almanac.go : almanac types, decoding and satellite state from almanac
*
* reference :
*     [1] IS-GPS-200D, Navstar GPS Space Segment/Navigation User Interfaces,
*         section 20.3.3.5 and Table 20-VI
*-----------------------------------------------------------------------------*/
package gnsscore

import "math"

const GPS_LNAV_ALM_MAX_TOA = 602112 /* largest encodable t_oa (s) */

/* GPS LNAV almanac scale factors, ref [1] Table 20-VI */
const (
	GPS_LNAV_ALM_SF_TOA      = 4096.0
	GPS_LNAV_ALM_SF_ECC      = P2_21
	GPS_LNAV_ALM_SF_INC      = P2_19
	GPS_LNAV_ALM_OFF_INC     = 0.30 /* semi-circles */
	GPS_LNAV_ALM_SF_OMEGADOT = P2_38
	GPS_LNAV_ALM_SF_SQRTA    = P2_11
	GPS_LNAV_ALM_SF_OMEGA0   = P2_23
	GPS_LNAV_ALM_SF_W        = P2_23
	GPS_LNAV_ALM_SF_M0       = P2_23
	GPS_LNAV_ALM_SF_AF0      = P2_20
	GPS_LNAV_ALM_SF_AF1      = P2_38
)

// AlmanacKepler is the reduced-precision Keplerian subset broadcast in the
// GPS almanac pages.
type AlmanacKepler struct {
	M0       float64 /* mean anomaly at reference time (rad) */
	Ecc      float64 /* eccentricity */
	Sqrta    float64 /* sqrt of semi-major axis (m^.5) */
	Omega0   float64 /* longitude of ascending node (rad) */
	Omegadot float64 /* rate of right ascension (rad/s) */
	W        float64 /* argument of perigee (rad) */
	Inc      float64 /* inclination (rad) */
	Af0, Af1 float64 /* clock bias (s) and drift (s/s) */
}

// AlmanacXyz is the SBAS almanac state vector.
type AlmanacXyz struct {
	Pos [3]float64 /* position (ecef) (m) */
	Vel [3]float64 /* velocity (ecef) (m/s) */
	Acc [3]float64 /* acceleration (ecef) (m/s^2) */
}

// AlmanacGlo is the GLONASS almanac orbit parameterization.
type AlmanacGlo struct {
	Lambda  float64 /* longitude of the first ascending node (rad) */
	TLambda float64 /* time of the first ascending node passage (s) */
	I       float64 /* inclination (rad) */
	T       float64 /* draconian period (s) */
	TDot    float64 /* rate of change of the period (s/s) */
	Epsilon float64 /* eccentricity */
	Omega   float64 /* argument of perigee (rad) */
}

// Almanac is a decoded almanac for a single satellite. Exactly one of
// Kepler, Xyz and Glo is populated, chosen by the constellation of Sid.
type Almanac struct {
	Sid         Sid
	Toa         GpsTime /* reference time of almanac */
	Ura         float32 /* user range accuracy (m) */
	FitInterval uint32  /* suggested validity period (s) */
	Valid       uint8
	HealthBits  uint8
	Kepler      AlmanacKepler
	Xyz         AlmanacXyz
	Glo         AlmanacGlo
}

// AlmanacRefWeek is the almanac reference week from subframe 5 page 25.
type AlmanacRefWeek struct {
	Toa float64 /* reference time of almanac (s) */
	Wna int16   /* reference week, adjusted to the full cycle */
}

// AlmanacHealth collects the per-SV health words of subframes 4/5 page 25.
type AlmanacHealth struct {
	HealthBits      [NUM_SATS_GPS]uint8
	HealthBitsValid uint32 /* bit i set if HealthBits[i] was decoded */
}

func signExtend11(arg uint32) int32 { return int32(arg<<21) >> 21 }

// calcSatStateXyzAlmanac evaluates an SBAS almanac through the polynomial
// ephemeris evaluator.
func calcSatStateXyzAlmanac(a *Almanac, t GpsTime, pos, vel, acc []float64,
	clockErr, clockRateErr *float64) int {
	var e Ephemeris
	e.Sid = a.Sid
	e.Toe = a.Toa
	e.Ura = a.Ura
	e.FitInterval = a.FitInterval
	e.Valid = a.Valid
	e.HealthBits = a.HealthBits
	e.Xyz.Pos = a.Xyz.Pos
	e.Xyz.Vel = a.Xyz.Vel
	e.Xyz.Acc = a.Xyz.Acc

	var iodc uint16
	var iode uint8
	return CalcSatState(&e, t, pos, vel, acc, clockErr, clockRateErr,
		&iodc, &iode)
}

// calcSatStateKeplerAlmanac evaluates a GPS almanac through the Keplerian
// ephemeris evaluator (ref [1] 20.3.3.5.2.1).
func calcSatStateKeplerAlmanac(a *Almanac, t GpsTime, pos, vel, acc []float64,
	clockErr, clockRateErr *float64) int {
	var e Ephemeris
	e.Sid = a.Sid
	e.Toe = a.Toa
	e.Ura = a.Ura
	e.FitInterval = a.FitInterval
	e.Valid = a.Valid
	e.HealthBits = a.HealthBits
	e.Kepler.M0 = a.Kepler.M0
	e.Kepler.Ecc = a.Kepler.Ecc
	e.Kepler.Sqrta = a.Kepler.Sqrta
	e.Kepler.Omega0 = a.Kepler.Omega0
	e.Kepler.Omegadot = a.Kepler.Omegadot
	e.Kepler.W = a.Kepler.W
	e.Kepler.Inc = a.Kepler.Inc
	e.Kepler.Af0 = a.Kepler.Af0
	e.Kepler.Af1 = a.Kepler.Af1
	e.Kepler.Toc = a.Toa

	var iodc uint16
	var iode uint8
	return CalcSatState(&e, t, pos, vel, acc, clockErr, clockRateErr,
		&iodc, &iode)
}

/* CalcSatStateAlmanac ----------------------------------------------------------
* compute satellite position, velocity, acceleration and clock offset from
* almanac, dispatching on the constellation
* args   : *Almanac  a       I   almanac
*          GpsTime   t       I   GPS time to evaluate at
*          []float64 pos     O   satellite position (ecef) (m)
*          []float64 vel     O   satellite velocity (ecef) (m/s)
*          []float64 acc     O   satellite acceleration (ecef) (m/s^2)
*          *float64  clockErr     O  satellite clock error (s)
*          *float64  clockRateErr O  satellite clock error rate (s/s)
* return : status (0:ok,-1:invalid almanac)
*-----------------------------------------------------------------------------*/
func CalcSatStateAlmanac(a *Almanac, t GpsTime, pos, vel, acc []float64,
	clockErr, clockRateErr *float64) int {
	switch SidToConstellation(a.Sid) {
	case CONSTELLATION_GPS:
		return calcSatStateKeplerAlmanac(a, t, pos, vel, acc, clockErr, clockRateErr)
	case CONSTELLATION_SBAS:
		return calcSatStateXyzAlmanac(a, t, pos, vel, acc, clockErr, clockRateErr)
	default:
		Trace(2, "CalcSatStateAlmanac: unsupported constellation %d\n",
			SidToConstellation(a.Sid))
		return -1
	}
}

/* CalcSatAzElAlmanac -----------------------------------------------------------
* compute the azimuth and elevation of a satellite from almanac
* args   : *Almanac  a       I   almanac
*          GpsTime   t       I   GPS time to evaluate at
*          []float64 ref     I   reference position (ecef) (m)
*          *float64  az,el   O   azimuth/elevation angles (rad)
* return : status (0:ok,-1:invalid almanac)
*-----------------------------------------------------------------------------*/
func CalcSatAzElAlmanac(a *Almanac, t GpsTime, ref []float64, az, el *float64) int {
	var (
		satPos, satVel, satAcc [3]float64
		clockErr, clockRateErr float64
	)
	ret := CalcSatStateAlmanac(a, t, satPos[:], satVel[:], satAcc[:],
		&clockErr, &clockRateErr)
	if ret != 0 {
		return ret
	}
	*az, *el = Ecef2AzEl(satPos[:], ref)
	return 0
}

/* CalcSatDopplerAlmanac ----------------------------------------------------------
* compute the Doppler shift of a satellite from almanac as observed at a
* reference position
* args   : *Almanac  a       I   almanac
*          GpsTime   t       I   GPS time to evaluate at
*          []float64 ref     I   reference position (ecef) (m)
*          *float64  doppler O   Doppler shift (Hz)
* return : status (0:ok,-1:invalid almanac)
*-----------------------------------------------------------------------------*/
func CalcSatDopplerAlmanac(a *Almanac, t GpsTime, ref []float64,
	doppler *float64) int {
	var (
		satPos, satVel, satAcc [3]float64
		clockErr, clockRateErr float64
	)
	ret := CalcSatStateAlmanac(a, t, satPos[:], satVel[:], satAcc[:],
		&clockErr, &clockRateErr)
	if ret != 0 {
		return ret
	}

	var vecRefSat [3]float64
	for i := 0; i < 3; i++ {
		vecRefSat[i] = satPos[i] - ref[i]
	}
	radialVel := Dot(vecRefSat[:], satVel[:], 3) / Norm(vecRefSat[:], 3)

	*doppler = SidToCarrFreq(a.Sid) * radialVel / CLIGHT
	return 0
}

/* AlmanacValid -----------------------------------------------------------------
* check whether an almanac is usable at time t
* args   : *Almanac a        I   almanac
*          GpsTime  t        I   GPS time
* return : true if the almanac is valid and not too old
*-----------------------------------------------------------------------------*/
func AlmanacValid(a *Almanac, t GpsTime) bool {
	if a.Valid == 0 {
		return false
	}
	if !AlmanacHealthy(a) {
		return false
	}
	if a.FitInterval == 0 {
		Trace(2, "AlmanacValid: zero fit interval\n")
		return false
	}
	if a.Toa.Wn == 0 {
		/* almanac did not get timestamped when it was received */
		return false
	}

	dt := GpsDiffTime(&t, &a.Toa)
	return math.Abs(dt) <= float64(a.FitInterval)/2
}

/* AlmanacHealthy ---------------------------------------------------------------
* check almanac health from its 8-bit health word. TLM/HOW, Z-count and
* subframe 1-3 errors do not affect the almanac content and are ignored
* args   : *Almanac a        I   almanac
* return : true if healthy
*-----------------------------------------------------------------------------*/
func AlmanacHealthy(a *Almanac) bool {
	ignore := uint8(1<<NAV_DHI_TLM_HOW | 1<<NAV_DHI_SUB123 | 1<<NAV_DHI_ZCOUNT)
	if !CheckNavDhi(a.HealthBits, ignore) {
		return false
	}
	return Check6bitHealthWord(a.HealthBits&0x1F, a.Sid.Code)
}

/* AlmanacEqual -----------------------------------------------------------------
* compare two almanacs for equality
* args   : *Almanac a,b      I   almanacs to compare
* return : true if they are identical
*-----------------------------------------------------------------------------*/
func AlmanacEqual(a, b *Almanac) bool {
	if !SidIsEqual(a.Sid, b.Sid) || a.Ura != b.Ura ||
		a.FitInterval != b.FitInterval || a.Valid != b.Valid ||
		a.HealthBits != b.HealthBits || a.Toa.Wn != b.Toa.Wn ||
		a.Toa.Tow != b.Toa.Tow {
		return false
	}

	switch SidToConstellation(a.Sid) {
	case CONSTELLATION_GPS:
		return a.Kepler == b.Kepler
	case CONSTELLATION_SBAS:
		return a.Xyz == b.Xyz
	case CONSTELLATION_GLO:
		return a.Glo == b.Glo
	default:
		return false
	}
}

/* AlmanacDecodeWeek ------------------------------------------------------------
* decode the almanac reference week from subframe 5 page 25
* args   : []uint32        words   I   words 3-10, 30 LSBs of each uint32
*          *AlmanacRefWeek refWeek O   decoded reference week and t_oa
* return : true if the page carried the reference week
*-----------------------------------------------------------------------------*/
func AlmanacDecodeWeek(words []uint32, refWeek *AlmanacRefWeek) bool {
	*refWeek = AlmanacRefWeek{}

	/* word 3 bits 1-2: data ID, bits 3-8: SV ID */
	dataId := words[3-3] >> (30 - 2) & 0x3
	svId := words[3-3] >> (30 - 8) & 0x3F

	if dataId != GPS_LNAV_ALM_DATA_ID_BLOCK_II || svId != GPS_LNAV_ALM_SVID_WEEK {
		return false
	}

	/* ref [1] 20.3.3.5.1.5: word 3 bits 17-24 WN_a (modulo 256),
	 * bits 9-16 the t_oa referenced by WN_a */
	wn := uint16(words[3-3] >> (30 - 24) & 0xFF)
	toa := words[3-3] >> (30 - 16) & 0xFF

	refWeek.Toa = float64(toa) * GPS_LNAV_ALM_SF_TOA
	refWeek.Wna = int16(GpsAdjustWeekCycle256(wn, GPS_WEEK_REFERENCE))

	return true
}

/* AlmanacDecodeHealth ----------------------------------------------------------
* decode the per-SV health words of subframe 4 page 25 (SVs 25-32) or
* subframe 5 page 25 (SVs 1-24)
* args   : []uint32       words     I   words 3-10, 30 LSBs of each uint32
*          *AlmanacHealth almHealth O   decoded health words and valid mask
* return : true if the page carried health data
*-----------------------------------------------------------------------------*/
func AlmanacDecodeHealth(words []uint32, almHealth *AlmanacHealth) bool {
	*almHealth = AlmanacHealth{}

	dataId := words[3-3] >> (30 - 2) & 0x3
	svId := words[3-3] >> (30 - 8) & 0x3F

	if dataId != GPS_LNAV_ALM_DATA_ID_BLOCK_II {
		return false
	}

	switch svId {
	case GPS_LNAV_ALM_SVID_HEALTH_4:
		/* subframe 4 page 25: word 8 bits 19-24 SV 25, word 9 four 6-bit
		 * words SV 26-29, word 10 three 6-bit words SV 30-32 */
		almHealth.HealthBits[25-1] = uint8(words[8-3] >> (30 - 24) & 0x3F)
		svIdx := 26 - 1
		for shift := 30 - 6; shift >= 30-24; shift -= 6 {
			almHealth.HealthBits[svIdx] = uint8(words[9-3] >> shift & 0x3F)
			svIdx++
		}
		svIdx = 30 - 1
		for shift := 30 - 6; shift >= 30-18; shift -= 6 {
			almHealth.HealthBits[svIdx] = uint8(words[10-3] >> shift & 0x3F)
			svIdx++
		}
		almHealth.HealthBitsValid |= 0xFF000000
		return true
	case GPS_LNAV_ALM_SVID_HEALTH_5:
		/* subframe 5 page 25: words 4-9, four 6-bit words each, SV 1-24 */
		svIdx := 0
		for word := 4 - 3; word <= 9-3; word++ {
			for shift := 30 - 6; shift >= 30-24; shift -= 6 {
				almHealth.HealthBits[svIdx] = uint8(words[word] >> shift & 0x3F)
				svIdx++
			}
		}
		almHealth.HealthBitsValid |= 0x00FFFFFF
		return true
	}

	return false
}

/* AlmanacDecode ----------------------------------------------------------------
* decode a GPS almanac from LNAV subframe 4 pages 2-5, 7-10 or subframe 5
* pages 1-24
* args   : []uint32 words    I   words 3-10, 30 LSBs of each uint32
*          *Almanac a        O   decoded almanac (Toa.Wn left unknown)
* return : true if an almanac was decoded
*-----------------------------------------------------------------------------*/
func AlmanacDecode(words []uint32, a *Almanac) bool {
	*a = Almanac{}

	dataId := words[3-3] >> (30 - 2) & 0x3
	svId := words[3-3] >> (30 - 8) & 0x3F

	if dataId != GPS_LNAV_ALM_DATA_ID_BLOCK_II ||
		svId < GPS_LNAV_ALM_MIN_PRN || svId > GPS_LNAV_ALM_MAX_PRN {
		return false
	}

	a.Valid = 1
	a.Sid = Sid{Sat: uint16(svId), Code: CODE_GPS_L1CA}

	/* fit interval for almanacs is at least 140 hours */
	a.FitInterval = SECS_HOUR * 70 * 2

	/* normal operation almanac URE, ref IS-GPS-200H 20.3.3.5.2.1 */
	a.Ura = 900

	a.Toa.Wn = WN_UNKNOWN

	/* word 4 bits 1-8: t_oa */
	a.Toa.Tow = float64(words[4-3]>>(30-8)&0xFF) * GPS_LNAV_ALM_SF_TOA

	/* word 5 bits 17-24: SV health */
	a.HealthBits = uint8(words[5-3] >> (30 - 24) & 0xFF)

	k := &a.Kepler

	/* word 3 bits 9-24 */
	k.Ecc = float64(words[3-3]>>(30-24)&0xFFFF) * GPS_LNAV_ALM_SF_ECC
	/* word 4 bits 9-24 */
	k.Inc = float64(int16(words[4-3]>>(30-24)&0xFFFF))*(GPS_LNAV_ALM_SF_INC*PI) +
		GPS_LNAV_ALM_OFF_INC*PI
	/* word 5 bits 1-16 */
	k.Omegadot = float64(int16(words[5-3]>>(30-16)&0xFFFF)) *
		(GPS_LNAV_ALM_SF_OMEGADOT * PI)
	/* word 6 bits 1-24 */
	k.Sqrta = float64(words[6-3]>>(30-24)&0xFFFFFF) * GPS_LNAV_ALM_SF_SQRTA
	/* word 7 bits 1-24 */
	k.Omega0 = float64(signExtend24(words[7-3]>>(30-24)&0xFFFFFF)) *
		(GPS_LNAV_ALM_SF_OMEGA0 * PI)
	/* word 8 bits 1-24 */
	k.W = float64(signExtend24(words[8-3]>>(30-24)&0xFFFFFF)) *
		(GPS_LNAV_ALM_SF_W * PI)
	/* word 9 bits 1-24 */
	k.M0 = float64(signExtend24(words[9-3]>>(30-24)&0xFFFFFF)) *
		(GPS_LNAV_ALM_SF_M0 * PI)
	/* word 10: af0 in bits 1-8 (MSBs) and 20-22 (LSBs), af1 in bits 9-19 */
	k.Af0 = float64(signExtend11(words[10-3]>>(30-8-3)&0x7F8|
		words[10-3]>>(30-22)&0x7)) * GPS_LNAV_ALM_SF_AF0
	k.Af1 = float64(signExtend11(words[10-3]>>(30-19)&0x7FF)) *
		GPS_LNAV_ALM_SF_AF1

	return true
}
