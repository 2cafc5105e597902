/*------------------------------------------------------------------------------
* ephemeris.go : broadcast ephemeris types and satellite state computation
*
* reference :
*     [1] IS-GPS-200H, Navstar GPS Space Segment/Navigation User Interfaces,
*         section 20.3.3.3.3.1 and Table 20-IV
*     [2] GLONASS ICD v5.1, 2008, Appendix A.3.1.2 (with corrections from
*         RTCM 3.2 p.186)
*     [3] WAAS Specification FAA-E-2892b 4.4.11
*     [4] Korvenoja, Piche, Efficient Satellite Orbit Approximation, ION GPS
*         2000 (acceleration terms)
*-----------------------------------------------------------------------------*/
package gnsscore

import "math"

const (
	INVALID_IODE            = 0xFF  /* IODE outside broadcast range */
	INVALID_IODC            = 0x3FF /* IODC outside broadcast range */
	INVALID_GPS_URA_INDEX   = 0xFF
	MAX_ALLOWED_GPS_URA_IDX = 15
	INVALID_GAL_SISA_INDEX  = 0xFF

	GPS_LNAV_EPH_TOC_MAX = 604784 /* largest encodable toc/toe (s) */
	GPS_LNAV_EPH_TOE_MAX = 604784

	/* GLONASS Runge-Kutta integrator limits */
	gloMaxStepLength = 30.0 /* s */
	gloMaxStepNum    = 30
)

/* GPS LNAV ephemeris scale factors, IS-GPS-200H Table 20-I/20-III */
const (
	GPS_LNAV_EPH_SF_TGD      = P2_31
	GPS_LNAV_EPH_SF_TOC      = 16.0
	GPS_LNAV_EPH_SF_AF2      = P2_55
	GPS_LNAV_EPH_SF_AF1      = P2_43
	GPS_LNAV_EPH_SF_AF0      = P2_31
	GPS_LNAV_EPH_SF_CRS      = P2_5
	GPS_LNAV_EPH_SF_DN       = P2_43
	GPS_LNAV_EPH_SF_M0       = P2_31
	GPS_LNAV_EPH_SF_CUC      = P2_29
	GPS_LNAV_EPH_SF_ECC      = P2_33
	GPS_LNAV_EPH_SF_CUS      = P2_29
	GPS_LNAV_EPH_SF_SQRTA    = P2_19
	GPS_LNAV_EPH_SF_TOE      = 16.0
	GPS_LNAV_EPH_SF_CIC      = P2_29
	GPS_LNAV_EPH_SF_OMEGA0   = P2_31
	GPS_LNAV_EPH_SF_CIS      = P2_29
	GPS_LNAV_EPH_SF_I0       = P2_31
	GPS_LNAV_EPH_SF_CRC      = P2_5
	GPS_LNAV_EPH_SF_W        = P2_31
	GPS_LNAV_EPH_SF_OMEGADOT = P2_43
	GPS_LNAV_EPH_SF_IDOT     = P2_43
)

// EphemerisStatus classifies why an ephemeris is or is not usable.
type EphemerisStatus int

const (
	EPH_NULL EphemerisStatus = iota
	EPH_INVALID
	EPH_WN_EQ_0
	EPH_FIT_INTERVAL_EQ_0
	EPH_UNHEALTHY
	EPH_TOO_OLD
	EPH_VALID
)

// EphemerisKepler holds the Keplerian orbit parameterization broadcast by
// GPS, QZSS, BDS and Galileo.
//
// Tgd carries the broadcast group delays. For GPS/QZSS index 0 is the L1/L2
// TGD and index 1 the L1/L5 combination filled from CNAV; for BDS index 0/1
// are TGD1/TGD2; for Galileo index 0/1 are BGD (E1,E5a)/(E1,E5b).
type EphemerisKepler struct {
	Tgd                [2]float32
	Crc, Crs           float64 /* radius corrections (m) */
	Cuc, Cus           float64 /* latitude argument corrections (rad) */
	Cic, Cis           float64 /* inclination corrections (rad) */
	Dn                 float64 /* mean motion difference (rad/s) */
	M0                 float64 /* mean anomaly at reference time (rad) */
	Ecc                float64 /* eccentricity */
	Sqrta              float64 /* sqrt of semi-major axis (m^.5) */
	Omega0             float64 /* longitude of ascending node (rad) */
	Omegadot           float64 /* rate of right ascension (rad/s) */
	W                  float64 /* argument of perigee (rad) */
	Inc                float64 /* inclination (rad) */
	IncDot             float64 /* inclination rate (rad/s) */
	Af0, Af1, Af2      float64 /* clock bias (s), drift (s/s), drift rate (s/s^2) */
	Toc                GpsTime /* clock reference time */
	Iodc               uint16
	Iode               uint16
}

// EphemerisXyz holds the SBAS position/velocity/acceleration message.
type EphemerisXyz struct {
	Pos  [3]float64 /* position (ecef) (m) */
	Vel  [3]float64 /* velocity (ecef) (m/s) */
	Acc  [3]float64 /* acceleration (ecef) (m/s^2) */
	AGf0 float64    /* time offset (s) */
	AGf1 float64    /* time drift (s/s) */
}

// EphemerisGlo holds the GLONASS state-vector ephemeris.
type EphemerisGlo struct {
	Gamma float64    /* relative frequency offset */
	Tau   float64    /* clock correction (s) */
	DTau  float64    /* L1/L2 group delay difference (s) */
	Pos   [3]float64 /* position (ecef) (m) */
	Vel   [3]float64 /* velocity (ecef) (m/s) */
	Acc   [3]float64 /* luni-solar acceleration (eci) (m/s^2) */
	Fcn   uint16     /* frequency slot 1..14 */
	Iod   uint8      /* tb (interval number) modulo 128 */
}

// Ephemeris is a broadcast ephemeris for a single satellite. Exactly one of
// Kepler, Xyz and Glo is populated, chosen by the constellation of Sid.
type Ephemeris struct {
	Sid         Sid
	Toe         GpsTime /* reference time of ephemeris */
	Ura         float32 /* user range accuracy (m) */
	FitInterval uint32  /* curve fit interval (s) */
	Valid       uint8
	HealthBits  uint8
	Kepler      EphemerisKepler
	Xyz         EphemerisXyz
	Glo         EphemerisGlo
}

func signExtend14(arg uint32) int32 { return int32(arg<<18) >> 18 }
func signExtend22(arg uint32) int32 { return int32(arg<<10) >> 10 }
func signExtend24(arg uint32) int32 { return int32(arg<<8) >> 8 }

// calcSatStateXyz evaluates the SBAS polynomial ephemeris (ref [3]).
func calcSatStateXyz(e *Ephemeris, t GpsTime, pos, vel, acc []float64,
	clockErr, clockRateErr *float64, iodc *uint16, iode *uint8) int {
	ex := &e.Xyz

	dt := GpsDiffTime(&t, &e.Toe)

	*clockErr = ex.AGf0 + dt*ex.AGf1
	*clockRateErr = ex.AGf1

	dt -= *clockErr

	for i := 0; i < 3; i++ {
		vel[i] = ex.Vel[i] + ex.Acc[i]*dt
		pos[i] = ex.Pos[i] + ex.Vel[i]*dt + 0.5*ex.Acc[i]*dt*dt
		acc[i] = ex.Acc[i]
	}

	/* SBAS carries no issue-of-data */
	*iodc = 0
	*iode = 0

	return 0
}

// calcEcefVelAcc recomputes the ECEF acceleration from an ECEF position and
// velocity plus the broadcast luni-solar acceleration (ECI) (ref [2]).
// velAcc gets the concatenated velocity and acceleration.
func calcEcefVelAcc(velAcc []float64, pos, vel, acc []float64) {
	r := math.Sqrt(pos[0]*pos[0] + pos[1]*pos[1] + pos[2]*pos[2])

	mR3 := MU_GLO / (r * r * r)
	invR2 := 1.0 / (r * r)

	gTerm := 3.0 / 2.0 * J2_GLO * mR3 * RE_GLO * RE_GLO * invR2
	lgTerm := 1.0 - 5.0*pos[2]*pos[2]*invR2
	omegaSqr := OMGE_GLO * OMGE_GLO

	velAcc[0] = vel[0]
	velAcc[1] = vel[1]
	velAcc[2] = vel[2]

	velAcc[3] = -mR3*pos[0] - gTerm*pos[0]*lgTerm + omegaSqr*pos[0] +
		2.0*OMGE_GLO*vel[1] + acc[0]
	velAcc[4] = -mR3*pos[1] - gTerm*pos[1]*lgTerm + omegaSqr*pos[1] -
		2.0*OMGE_GLO*vel[0] + acc[1]
	velAcc[5] = -mR3*pos[2] - gTerm*pos[2]*(2.0+lgTerm) + acc[2]
}

// calcSatStateGlo integrates the GLONASS equations of motion with a 4th
// order Runge-Kutta from toe to t (ref [2]).
func calcSatStateGlo(e *Ephemeris, t GpsTime, pos, vel, acc []float64,
	clockErr, clockRateErr *float64, iodc *uint16, iode *uint8) int {
	/* toe has been converted to GPS time when the ephemeris was decoded */
	dt := GpsDiffTime(&t, &e.Toe)

	tgd, ok := GetTgdCorrection(e, e.Sid)
	if !ok {
		return -1
	}

	*clockErr = -e.Glo.Tau + e.Glo.Gamma*dt - float64(tgd)
	*clockRateErr = e.Glo.Gamma

	dt -= *clockErr

	numSteps := int(math.Ceil(math.Abs(dt) / gloMaxStepLength))
	if numSteps > gloMaxStepNum {
		numSteps = gloMaxStepNum
	}

	var ecefVelAcc [6]float64
	if numSteps > 0 {
		h := dt / float64(numSteps)

		var y [6]float64
		calcEcefVelAcc(ecefVelAcc[:], e.Glo.Pos[:], e.Glo.Vel[:], e.Glo.Acc[:])
		copy(y[0:3], e.Glo.Pos[:])
		copy(y[3:6], e.Glo.Vel[:])

		for i := 0; i < numSteps; i++ {
			var k1, k2, k3, k4, yTmp [6]float64

			copy(k1[:], ecefVelAcc[:])
			for j := 0; j < 6; j++ {
				yTmp[j] = y[j] + h/2*k1[j]
			}
			calcEcefVelAcc(k2[:], yTmp[0:3], yTmp[3:6], e.Glo.Acc[:])

			for j := 0; j < 6; j++ {
				yTmp[j] = y[j] + h/2*k2[j]
			}
			calcEcefVelAcc(k3[:], yTmp[0:3], yTmp[3:6], e.Glo.Acc[:])

			for j := 0; j < 6; j++ {
				yTmp[j] = y[j] + h*k3[j]
			}
			calcEcefVelAcc(k4[:], yTmp[0:3], yTmp[3:6], e.Glo.Acc[:])

			for j := 0; j < 6; j++ {
				y[j] += h / 6 * (k1[j] + 2*k2[j] + 2*k3[j] + k4[j])
			}
			calcEcefVelAcc(ecefVelAcc[:], y[0:3], y[3:6], e.Glo.Acc[:])
		}
		copy(pos, y[0:3])
		copy(vel, y[3:6])
	} else {
		copy(pos, e.Glo.Pos[:])
		copy(vel, e.Glo.Vel[:])
	}
	calcEcefVelAcc(ecefVelAcc[:], pos, vel, e.Glo.Acc[:])
	copy(acc, ecefVelAcc[3:6])

	*iodc = uint16(e.Glo.Iod)
	*iode = e.Glo.Iod

	return 0
}

// calcSatStateKepler evaluates a Keplerian ephemeris with analytic velocity
// and acceleration terms (refs [1],[4]).
func calcSatStateKepler(e *Ephemeris, t GpsTime, pos, vel, acc []float64,
	clockErr, clockRateErr *float64, iodc *uint16, iode *uint8) int {
	k := &e.Kepler

	/* seconds from clock data reference time (toc) */
	dt := GpsDiffTime(&t, &k.Toc)

	tgd, ok := GetTgdCorrection(e, e.Sid)
	if !ok {
		return -1
	}

	/* the broadcast clock is the iono-free combination, so the single
	 * frequency clock errors take the group delay into account */
	*clockErr = k.Af0 + dt*(k.Af1+dt*k.Af2) - float64(tgd)
	*clockRateErr = k.Af1 + 2.0*dt*k.Af2
	*iodc = k.Iodc

	/* seconds from the ephemeris reference epoch (toe) */
	dt = GpsDiffTime(&t, &e.Toe) - *clockErr

	var gm float64
	switch SidToConstellation(e.Sid) {
	case CONSTELLATION_GPS, CONSTELLATION_QZS:
		gm = MU_GPS
	case CONSTELLATION_BDS:
		gm = MU_BDS
	case CONSTELLATION_GAL:
		gm = MU_GAL
	default:
		Trace(2, "calcSatStateKepler: unsupported constellation %d\n",
			SidToConstellation(e.Sid))
		return -1
	}

	/* semi-major axis (m) */
	a := k.Sqrta * k.Sqrta
	/* corrected mean motion (rad/s) */
	maDot := math.Sqrt(gm/(a*a*a)) + k.Dn
	/* corrected mean anomaly (rad) */
	ma := k.M0 + maDot*dt

	/* solve Kepler's equation for the eccentric anomaly */
	ecc := k.Ecc
	ea := ma
	var eaOld, temp float64
	for i := 0; ; i++ {
		eaOld = ea
		temp = 1.0 - ecc*math.Cos(eaOld)
		ea += (ma - eaOld + ecc*math.Sin(eaOld)) / temp
		if math.Abs(ea-eaOld) <= RTOL_KEPLER || i >= MAX_ITER_KEPLER {
			break
		}
	}

	eaDot := maDot / temp
	eaAcc := eaDot * eaDot * ecc * math.Sin(ea) / temp

	/* argument of latitude = true anomaly + argument of perigee */
	temp2 := math.Sqrt(1.0 - ecc*ecc)
	al := math.Atan2(temp2*math.Sin(ea), math.Cos(ea)-ecc) + k.W
	alDot := temp2 * eaDot / temp
	alAcc := 2 * alDot * eaAcc / eaDot
	alDotSqr := alDot * alDot

	sin2al := math.Sin(2.0 * al)
	cos2al := math.Cos(2.0 * al)

	/* argument of latitude correction */
	dal := k.Cus*sin2al + k.Cuc*cos2al
	dalDot := 2 * alDot * (k.Cus*cos2al - k.Cuc*sin2al)
	dalAcc := -4*alDotSqr*dal + alAcc/alDot*dalDot

	cal := al + dal
	calDot := alDot + dalDot
	calAcc := alAcc + dalAcc

	/* radius correction */
	dr := k.Crs*sin2al + k.Crc*cos2al
	drDot := 2 * alDot * (k.Crs*cos2al - k.Crc*sin2al)
	drAcc := 4*alDotSqr*dr + alAcc/alDot*drDot

	r := a*temp + k.Crc*cos2al + k.Crs*sin2al
	rDot := a*ecc*math.Sin(ea)*eaDot +
		2.0*alDot*(k.Crs*cos2al-k.Crc*sin2al)
	rAcc := a*ecc*eaDot*eaDot*math.Cos(ea) + a*ecc*eaAcc*math.Sin(ea) + drAcc

	/* relativistic clock correction using x.v = r * rdot */
	einstein := -2.0 * r * rDot / CLIGHT / CLIGHT
	*clockErr += einstein

	/* inclination correction */
	dinc := k.Cis*sin2al + k.Cic*cos2al
	dincDot := 2 * alDot * (k.Cis*cos2al - k.Cic*sin2al)
	dincAcc := -4*alDotSqr*dinc + alAcc/alDot*dincDot

	inc := k.Inc + k.IncDot*dt + k.Cic*cos2al + k.Cis*sin2al
	incDot := k.IncDot + 2.0*alDot*(k.Cis*cos2al-k.Cic*sin2al)
	incAcc := dincAcc

	/* position and velocity in the orbital plane */
	x := r * math.Cos(cal)
	y := r * math.Sin(cal)
	xDot := rDot*math.Cos(cal) - y*calDot
	yDot := rDot*math.Sin(cal) + x*calDot
	calDotSqr := calDot * calDot
	xAcc := -calDotSqr*x - calAcc*y -
		2*calDot*rDot*math.Sin(cal) + rAcc*math.Cos(cal)
	yAcc := -calDotSqr*y + calAcc*x +
		2*calDot*rDot*math.Cos(cal) + rAcc*math.Sin(cal)

	/* corrected longitude of ascending node */
	var om, omDot float64
	switch SidToConstellation(e.Sid) {
	case CONSTELLATION_GPS, CONSTELLATION_QZS, CONSTELLATION_GAL:
		omDot = k.Omegadot - OMGE
		om = k.Omega0 + dt*omDot - OMGE*e.Toe.Tow
	case CONSTELLATION_BDS:
		if BdsIsGeo(e.Sid) {
			/* GEO elements are referenced to a frame that does not rotate
			 * with the earth over dt; the rotation is applied afterwards */
			omDot = k.Omegadot
			om = k.Omega0 + dt*omDot -
				OMGE_BDS*(e.Toe.Tow-BDS_SECOND_TO_GPS_SECOND)
		} else {
			omDot = k.Omegadot - OMGE_BDS
			om = k.Omega0 + dt*omDot -
				OMGE_BDS*(e.Toe.Tow-BDS_SECOND_TO_GPS_SECOND)
		}
	default:
		Trace(2, "calcSatStateKepler: unsupported constellation %d\n",
			SidToConstellation(e.Sid))
		return -1
	}

	pos[0] = x*math.Cos(om) - y*math.Cos(inc)*math.Sin(om)
	pos[1] = x*math.Sin(om) + y*math.Cos(inc)*math.Cos(om)
	pos[2] = y * math.Sin(inc)

	temp = yDot*math.Cos(inc) - y*math.Sin(inc)*incDot
	vel[0] = -omDot*pos[1] + xDot*math.Cos(om) - temp*math.Sin(om)
	vel[1] = omDot*pos[0] + xDot*math.Sin(om) + temp*math.Cos(om)
	vel[2] = y*math.Cos(inc)*incDot + yDot*math.Sin(inc)

	/* acceleration per ref [4] with the omega'*x' and inc'^2 corrections */
	accCommon1 := vel[2]*incDot - omDot*xDot +
		y*incAcc*math.Sin(inc) - yAcc*math.Cos(inc) +
		incDot*yDot*math.Sin(inc)
	accCommon2 := xAcc + y*omDot*incDot*math.Sin(inc) -
		omDot*yDot*math.Cos(inc)
	acc[0] = -omDot*vel[1] + math.Sin(om)*accCommon1 + math.Cos(om)*accCommon2
	acc[1] = omDot*vel[0] - math.Cos(om)*accCommon1 + math.Sin(om)*accCommon2
	acc[2] = math.Sin(inc)*(-y*incDot*incDot+yAcc) +
		math.Cos(inc)*(y*incAcc+2*incDot*yDot)

	if SidToConstellation(e.Sid) == CONSTELLATION_BDS && BdsIsGeo(e.Sid) {
		rotateBdsGeo(OMGE_BDS*dt, pos, vel, acc)
	}

	*iode = uint8(k.Iode)

	return 0
}

/* sin/cos of the -5 degree inclination of the BDS GEO reference frame */
const (
	bdsGeoSinN5 = -0.0871557427476582
	bdsGeoCosN5 = 0.9961946980917455
)

// rotateBdsGeo transforms a BDS GEO satellite state from the broadcast
// reference frame to ECEF by Rz(theta)*Rx(-5 deg), with the Rz time
// derivatives carried into velocity and acceleration (ref [3] table 5-11).
func rotateBdsGeo(theta float64, pos, vel, acc []float64) {
	sinT := math.Sin(theta)
	cosT := math.Cos(theta)
	rot := func(v0, v1, v2 float64) (float64, float64, float64) {
		yp := v1*bdsGeoCosN5 + v2*bdsGeoSinN5
		zp := -v1*bdsGeoSinN5 + v2*bdsGeoCosN5
		return v0*cosT + yp*sinT, -v0*sinT + yp*cosT, zp
	}
	px, py, pz := rot(pos[0], pos[1], pos[2])
	vx, vy, vz := rot(vel[0], vel[1], vel[2])
	ax, ay, az := rot(acc[0], acc[1], acc[2])

	pos[0], pos[1], pos[2] = px, py, pz
	vel[0] = vx + OMGE_BDS*py
	vel[1] = vy - OMGE_BDS*px
	vel[2] = vz
	acc[0] = ax + 2.0*OMGE_BDS*vy - OMGE_BDS*OMGE_BDS*px
	acc[1] = ay - 2.0*OMGE_BDS*vx - OMGE_BDS*OMGE_BDS*py
	acc[2] = az
}

/* CalcSatState ----------------------------------------------------------------
* compute satellite position, velocity, acceleration and clock offset from
* broadcast ephemeris, after checking the ephemeris is valid at t
* args   : *Ephemeris e      I   broadcast ephemeris
*          GpsTime    t      I   GPS time to evaluate at
*          []float64  pos    O   satellite position (ecef) (m)
*          []float64  vel    O   satellite velocity (ecef) (m/s)
*          []float64  acc    O   satellite acceleration (ecef) (m/s^2)
*          *float64   clockErr     O  satellite clock error (s)
*          *float64   clockRateErr O  satellite clock error rate (s/s)
*          *uint16    iodc   O   issue of data clock
*          *uint8     iode   O   issue of data ephemeris
* return : status (0:ok,-1:invalid ephemeris)
*-----------------------------------------------------------------------------*/
func CalcSatState(e *Ephemeris, t GpsTime, pos, vel, acc []float64,
	clockErr, clockRateErr *float64, iodc *uint16, iode *uint8) int {
	if EphemerisValidDetailed(e, t) != EPH_VALID {
		return -1
	}
	return CalcSatStateN(e, t, pos, vel, acc, clockErr, clockRateErr, iodc, iode)
}

/* CalcSatStateN ---------------------------------------------------------------
* compute satellite state from broadcast ephemeris without the validity check,
* dispatching on the constellation of the signal
* args   : same as CalcSatState
* return : status (0:ok,-1:error)
*-----------------------------------------------------------------------------*/
func CalcSatStateN(e *Ephemeris, t GpsTime, pos, vel, acc []float64,
	clockErr, clockRateErr *float64, iodc *uint16, iode *uint8) int {
	switch SidToConstellation(e.Sid) {
	case CONSTELLATION_GPS, CONSTELLATION_BDS, CONSTELLATION_GAL, CONSTELLATION_QZS:
		return calcSatStateKepler(e, t, pos, vel, acc, clockErr, clockRateErr, iodc, iode)
	case CONSTELLATION_SBAS:
		return calcSatStateXyz(e, t, pos, vel, acc, clockErr, clockRateErr, iodc, iode)
	case CONSTELLATION_GLO:
		return calcSatStateGlo(e, t, pos, vel, acc, clockErr, clockRateErr, iodc, iode)
	default:
		Trace(2, "CalcSatStateN: unsupported constellation %d\n",
			SidToConstellation(e.Sid))
		return -1
	}
}

/* CalcSatAzEl -----------------------------------------------------------------
* compute the azimuth and elevation of a satellite as seen from a reference
* position
* args   : *Ephemeris e      I   broadcast ephemeris
*          GpsTime    t      I   GPS time to evaluate at
*          []float64  ref    I   reference position (ecef) (m)
*          *float64   az,el  O   azimuth/elevation angles (rad)
*          bool       checkE I   perform ephemeris validity check
* return : status (0:ok,-1:invalid ephemeris)
*-----------------------------------------------------------------------------*/
func CalcSatAzEl(e *Ephemeris, t GpsTime, ref []float64, az, el *float64,
	checkE bool) int {
	var (
		satPos, satVel, satAcc  [3]float64
		clockErr, clockRateErr  float64
		iodc                    uint16
		iode                    uint8
		ret                     int
	)
	if checkE {
		ret = CalcSatState(e, t, satPos[:], satVel[:], satAcc[:],
			&clockErr, &clockRateErr, &iodc, &iode)
	} else {
		ret = CalcSatStateN(e, t, satPos[:], satVel[:], satAcc[:],
			&clockErr, &clockRateErr, &iodc, &iode)
	}
	if ret != 0 {
		return ret
	}
	*az, *el = Ecef2AzEl(satPos[:], ref)
	return 0
}

/* CalcSatDoppler --------------------------------------------------------------
* compute the Doppler shift of a satellite observed at a reference position
* args   : *Ephemeris e       I   broadcast ephemeris
*          GpsTime    t       I   GPS time to evaluate at
*          []float64  refPos  I   receiver position (ecef) (m)
*          []float64  refVel  I   receiver velocity (ecef) (m/s)
*          *float64   doppler O   Doppler shift (Hz)
* return : status (0:ok,-1:invalid ephemeris)
*-----------------------------------------------------------------------------*/
func CalcSatDoppler(e *Ephemeris, t GpsTime, refPos, refVel []float64,
	doppler *float64) int {
	var (
		satPos, satVel, satAcc [3]float64
		clockErr, clockRateErr float64
		iodc                   uint16
		iode                   uint8
	)
	ret := CalcSatState(e, t, satPos[:], satVel[:], satAcc[:],
		&clockErr, &clockRateErr, &iodc, &iode)
	if ret != 0 {
		return ret
	}

	var vecRefSatPos, vecRefSatVel [3]float64
	for i := 0; i < 3; i++ {
		vecRefSatPos[i] = satPos[i] - refPos[i]
		vecRefSatVel[i] = satVel[i] + refVel[i]
	}

	/* satellite-receiver velocity projected on the line of sight */
	radialVel := Dot(vecRefSatPos[:], vecRefSatVel[:], 3) /
		Norm(vecRefSatPos[:], 3)

	*doppler = SidToCarrFreq(e.Sid) * radialVel / CLIGHT
	return 0
}

// fakeGpsWns fills in unknown week numbers so that the two times end up as
// close together as possible.
func fakeGpsWns(t1, t2 *GpsTime) {
	if t1.Wn != WN_UNKNOWN && t2.Wn != WN_UNKNOWN {
		return
	}
	if t1.Wn == WN_UNKNOWN && t2.Wn == WN_UNKNOWN {
		/* arbitrary, just needs to be above 1 */
		t1.Wn = 2
	}
	dt := t1.Tow - t2.Tow
	if dt > SECS_WEEK/2 {
		if t1.Wn == WN_UNKNOWN {
			t1.Wn = t2.Wn - 1
		} else {
			t2.Wn = t1.Wn + 1
		}
	} else if dt < -SECS_WEEK/2 {
		if t1.Wn == WN_UNKNOWN {
			t1.Wn = t2.Wn + 1
		} else {
			t2.Wn = t1.Wn - 1
		}
	} else if t1.Wn == WN_UNKNOWN {
		t1.Wn = t2.Wn
	} else {
		t2.Wn = t1.Wn
	}
}

/* GetEphemerisStatus ----------------------------------------------------------
* classify an ephemeris: nil, marked invalid, missing timestamp, zero fit
* interval, unhealthy or usable
* args   : *Ephemeris e      I   broadcast ephemeris (may be nil)
* return : EphemerisStatus
*-----------------------------------------------------------------------------*/
func GetEphemerisStatus(e *Ephemeris) EphemerisStatus {
	if e == nil {
		return EPH_NULL
	}
	if e.Valid == 0 {
		return EPH_INVALID
	}
	if e.Toe.Wn == 0 {
		/* ephemeris did not get timestamped when it was received */
		return EPH_WN_EQ_0
	}
	if e.FitInterval == 0 {
		return EPH_FIT_INTERVAL_EQ_0
	}
	if !EphemerisHealthy(e, e.Sid.Code) {
		return EPH_UNHEALTHY
	}
	return EPH_VALID
}

// ephemerisValidAtTime checks a structurally valid ephemeris against its fit
// interval at time t.
func ephemerisValidAtTime(e *Ephemeris, t GpsTime) bool {
	toe := e.Toe
	tm := t
	fakeGpsWns(&toe, &tm)

	bgn := toe
	end := toe

	var toc *GpsTime
	switch SidToConstellation(e.Sid) {
	case CONSTELLATION_GPS, CONSTELLATION_QZS:
		/* toe is the middle of the validity interval */
		bgn.Tow -= float64(e.FitInterval) / 2
		end.Tow += float64(e.FitInterval) / 2
		toc = &e.Kepler.Toc
	case CONSTELLATION_BDS, CONSTELLATION_GAL:
		/* toe is the beginning of the validity interval */
		end.Tow += float64(e.FitInterval)
		toc = &e.Kepler.Toc
	case CONSTELLATION_GLO, CONSTELLATION_SBAS:
		bgn.Tow -= float64(e.FitInterval) / 2
		end.Tow += float64(e.FitInterval) / 2
	default:
		return false
	}
	NormalizeGpsTime(&bgn)
	NormalizeGpsTime(&end)

	return EphemerisParamsValid(&bgn, &end, toc, &tm)
}

/* EphemerisValid --------------------------------------------------------------
* check whether an ephemeris is usable at time t
* args   : *Ephemeris e      I   broadcast ephemeris
*          GpsTime    t      I   GPS time
* return : true if the ephemeris is valid and not too old
*-----------------------------------------------------------------------------*/
func EphemerisValid(e *Ephemeris, t GpsTime) bool {
	if GetEphemerisStatus(e) != EPH_VALID {
		return false
	}
	return ephemerisValidAtTime(e, t)
}

/* EphemerisValidDetailed ------------------------------------------------------
* like EphemerisValid but returns the detailed status and logs unexpected
* conditions
* args   : *Ephemeris e      I   broadcast ephemeris
*          GpsTime    t      I   GPS time
* return : EphemerisStatus at time t
*-----------------------------------------------------------------------------*/
func EphemerisValidDetailed(e *Ephemeris, t GpsTime) EphemerisStatus {
	status := GetEphemerisStatus(e)

	switch status {
	case EPH_NULL:
		Trace(2, "ephemeris: null at [%d, %.0f]\n", t.Wn, t.Tow)
	case EPH_INVALID:
		Trace(3, "ephemeris %s: invalid (v:%d fi:%d toe:[%d, %.0f]) at [%d, %.0f]\n",
			e.Sid.String(), e.Valid, e.FitInterval, e.Toe.Wn, e.Toe.Tow, t.Wn, t.Tow)
	case EPH_WN_EQ_0:
		Trace(2, "ephemeris %s: wn == 0 (toe:[%d, %.0f]) at [%d, %.0f]\n",
			e.Sid.String(), e.Toe.Wn, e.Toe.Tow, t.Wn, t.Tow)
	case EPH_FIT_INTERVAL_EQ_0:
		Trace(2, "ephemeris %s: fit_interval == 0 (toe:[%d, %.0f]) at [%d, %.0f]\n",
			e.Sid.String(), e.Toe.Wn, e.Toe.Tow, t.Wn, t.Tow)
	case EPH_UNHEALTHY:
		Trace(3, "ephemeris %s: unhealthy (toe:[%d, %.0f]) at [%d, %.0f]\n",
			e.Sid.String(), e.Toe.Wn, e.Toe.Tow, t.Wn, t.Tow)
	}

	if status != EPH_VALID {
		return status
	}
	if !ephemerisValidAtTime(e, t) {
		status = EPH_TOO_OLD
	}
	return status
}

/* EphemerisParamsValid --------------------------------------------------------
* lean validity check on a precomputed fit interval
* args   : *GpsTime bgn,end  I   fit interval bounds
*          *GpsTime toc      I   clock reference time (nil if none)
*          *GpsTime t        I   GPS time
* return : true if t (and toc) fall inside the fit interval
*-----------------------------------------------------------------------------*/
func EphemerisParamsValid(bgn, end, toc, t *GpsTime) bool {
	if !GpsTimeInRange(bgn, end, t) {
		return false
	}
	if toc != nil {
		if toc.Wn == 0 {
			return false
		}
		if !GpsTimeInRange(bgn, end, toc) {
			return false
		}
	}
	return true
}

var gpsUraValues = [16]float32{
	2.0, 2.8, 4.0, 5.7, 8.0, 11.3, 16.0, 32.0,
	64.0, 128.0, 256.0, 512.0, 1024.0, 2048.0, 4096.0, 6144.0,
}

/* DecodeUraIndex --------------------------------------------------------------
* convert a GPS URA index into meters
* args   : uint8 index       I   URA index
* return : URA in meters, INVALID_URA_VALUE if the index is out of range
*-----------------------------------------------------------------------------*/
func DecodeUraIndex(index uint8) float32 {
	if int(index) >= len(gpsUraValues) {
		return INVALID_URA_VALUE
	}
	return gpsUraValues[index]
}

/* EncodeUra -------------------------------------------------------------------
* convert a GPS URA in meters into the smallest index covering it
* args   : float32 ura       I   URA (m)
* return : URA index, INVALID_GPS_URA_INDEX if unrepresentable
*-----------------------------------------------------------------------------*/
func EncodeUra(ura float32) uint8 {
	if ura < 0 {
		return INVALID_GPS_URA_INDEX
	}
	for i := 0; i < len(gpsUraValues); i++ {
		if gpsUraValues[i] >= ura {
			return uint8(i)
		}
	}
	return INVALID_GPS_URA_INDEX
}

// decodeFitInterval computes the GPS curve fit interval in seconds from the
// fit interval flag and IODC, IS-GPS-200H 20.3.3.4.3.1.
func decodeFitInterval(fitIntervalFlag uint8, iodc uint16) uint32 {
	fitInterval := uint32(4) /* hours */

	if fitIntervalFlag != 0 {
		fitInterval = 6

		switch {
		case iodc >= 240 && iodc <= 247:
			fitInterval = 8
		case (iodc >= 248 && iodc <= 255) || iodc == 496:
			fitInterval = 14
		case (iodc >= 497 && iodc <= 503) || (iodc >= 1021 && iodc <= 1023):
			fitInterval = 26
		case iodc >= 504 && iodc <= 510:
			fitInterval = 50
		case iodc == 511 || (iodc >= 752 && iodc <= 756):
			fitInterval = 74
		case iodc == 757:
			fitInterval = 98
		}
	}

	return fitInterval * 60 * 60
}

/* DecodeEphemeris -------------------------------------------------------------
* decode an ephemeris from GPS L1 C/A navigation message subframes 1-3.
* parity must have been checked before calling; frameWords carries words 3-10
* of each subframe in the 30 LSBs of each uint32
* args   : [3][8]uint32 frameWords I  words 3..10 of subframes 1..3
*          *Ephemeris   e          IO ephemeris with Sid set, filled in
*          float64      totTow     I  time of transmission (tow)
* return : none (e.Valid reflects decode success)
*-----------------------------------------------------------------------------*/
func DecodeEphemeris(frameWords *[3][8]uint32, e *Ephemeris, totTow float64) {
	if SidToConstellation(e.Sid) != CONSTELLATION_GPS {
		Trace(2, "DecodeEphemeris: not a GPS signal %s\n", e.Sid.String())
		return
	}
	k := &e.Kepler

	/* subframe 1: WN, URA, SV health, T_GD, IODC, t_oc, a_f2, a_f1, a_f0 */

	/* GPS week number (mod 1024): word 3, bits 1-10. The broadcast week is
	 * the week at the start of the data set transmission interval */
	wnRaw := uint16(frameWords[0][3-3] >> (30 - 10) & 0x3FF)
	e.Toe.Wn = int16(GpsAdjustWeekCycle(wnRaw, GPS_WEEK_REFERENCE))

	/* t_oe: word 10 of subframe 2, bits 1-16 */
	e.Toe.Tow = float64(frameWords[1][10-3]>>(30-16)&0xFFFF) * GPS_LNAV_EPH_SF_TOE

	toeValid := GpsTimeValid(&e.Toe)
	if toeValid {
		/* match the toe week number with the time of transmission, fixes
		 * the case near week rollover where next week's ephemeris still
		 * carries the current week number */
		tot := GpsTime{Tow: totTow, Wn: e.Toe.Wn}
		GpsTimeMatchWeeks(&e.Toe, &tot)
	} else {
		Trace(2, "DecodeEphemeris %s: faulty toe wn=%d tow=%.0f, invalidating\n",
			e.Sid.String(), e.Toe.Wn, e.Toe.Tow)
	}

	k.Toc.Wn = e.Toe.Wn

	/* URA: word 3, bits 13-16 (index 15 is unhealthy) */
	uraIndex := uint8(frameWords[0][3-3] >> (30 - 16) & 0xF)
	e.Ura = DecodeUraIndex(uraIndex)

	/* NAV data and signal health bits: word 3, bits 17-22 */
	e.HealthBits = uint8(frameWords[0][3-3] >> (30 - 22) & 0x3F)

	/* t_gd: word 7, bits 17-24. The L1/L5 TGD comes from CNAV */
	k.Tgd[0] = float32(float64(int8(frameWords[0][7-3]>>(30-24)&0xFF)) * GPS_LNAV_EPH_SF_TGD)
	k.Tgd[1] = 0.0

	/* iodc: word 3, bits 23-24 and word 8, bits 1-8 */
	k.Iodc = uint16((frameWords[0][3-3]>>(30-24)&0x3)<<8 |
		frameWords[0][8-3]>>(30-8)&0xFF)

	/* t_oc: word 8, bits 9-24 */
	k.Toc.Tow = float64(frameWords[0][8-3]>>(30-24)&0xFFFF) * GPS_LNAV_EPH_SF_TOC

	/* a_f2: word 9, bits 1-8 */
	k.Af2 = float64(int8(frameWords[0][9-3]>>(30-8)&0xFF)) * GPS_LNAV_EPH_SF_AF2

	/* a_f1: word 9, bits 9-24 */
	k.Af1 = float64(int16(frameWords[0][9-3]>>(30-24)&0xFFFF)) * GPS_LNAV_EPH_SF_AF1

	/* a_f0: word 10, bits 1-22 */
	k.Af0 = float64(signExtend22(frameWords[0][10-3]>>(30-22)&0x3FFFFF)) *
		GPS_LNAV_EPH_SF_AF0

	/* subframe 2: IODE, crs, dn, m0, cuc, ecc, cus, sqrta, toe, fit interval */

	/* iode: word 3, bits 1-8 */
	iodeSf2 := uint8(frameWords[1][3-3] >> (30 - 8) & 0xFF)

	/* crs: word 3, bits 9-24 */
	k.Crs = float64(int16(frameWords[1][3-3]>>(30-24)&0xFFFF)) * GPS_LNAV_EPH_SF_CRS

	/* dn: word 4, bits 1-16 */
	k.Dn = float64(int16(frameWords[1][4-3]>>(30-16)&0xFFFF)) *
		(GPS_LNAV_EPH_SF_DN * PI)

	/* m0: word 4, bits 17-24 and word 5, bits 1-24 */
	k.M0 = float64(int32(frameWords[1][4-3]>>(30-24)&0xFF<<24|
		frameWords[1][5-3]>>(30-24)&0xFFFFFF)) * (GPS_LNAV_EPH_SF_M0 * PI)

	/* cuc: word 6, bits 1-16 */
	k.Cuc = float64(int16(frameWords[1][6-3]>>(30-16)&0xFFFF)) * GPS_LNAV_EPH_SF_CUC

	/* ecc: word 6, bits 17-24 and word 7, bits 1-24 */
	k.Ecc = float64(uint32(frameWords[1][6-3]>>(30-24)&0xFF<<24|
		frameWords[1][7-3]>>(30-24)&0xFFFFFF)) * GPS_LNAV_EPH_SF_ECC

	/* cus: word 8, bits 1-16 */
	k.Cus = float64(int16(frameWords[1][8-3]>>(30-16)&0xFFFF)) * GPS_LNAV_EPH_SF_CUS

	/* sqrta: word 8, bits 17-24 and word 9, bits 1-24 */
	k.Sqrta = float64(uint32(frameWords[1][8-3]>>(30-24)&0xFF<<24|
		frameWords[1][9-3]>>(30-24)&0xFFFFFF)) * GPS_LNAV_EPH_SF_SQRTA

	/* fit interval flag: word 10, bit 17 */
	fitIntervalFlag := uint8(frameWords[1][10-3] >> (30 - 17) & 0x1)
	e.FitInterval = decodeFitInterval(fitIntervalFlag, k.Iodc)

	/* subframe 3: cic, omega0, cis, inc, crc, w, omegadot, IODE, inc_dot */

	/* cic: word 3, bits 1-16 */
	k.Cic = float64(int16(frameWords[2][3-3]>>(30-16)&0xFFFF)) * GPS_LNAV_EPH_SF_CIC

	/* omega0: word 3, bits 17-24 and word 4, bits 1-24 */
	k.Omega0 = float64(int32(frameWords[2][3-3]>>(30-24)&0xFF<<24|
		frameWords[2][4-3]>>(30-24)&0xFFFFFF)) * (GPS_LNAV_EPH_SF_OMEGA0 * PI)

	/* cis: word 5, bits 1-16 */
	k.Cis = float64(int16(frameWords[2][5-3]>>(30-16)&0xFFFF)) * GPS_LNAV_EPH_SF_CIS

	/* inc (i0): word 5, bits 17-24 and word 6, bits 1-24 */
	k.Inc = float64(int32(frameWords[2][5-3]>>(30-24)&0xFF<<24|
		frameWords[2][6-3]>>(30-24)&0xFFFFFF)) * (GPS_LNAV_EPH_SF_I0 * PI)

	/* crc: word 7, bits 1-16 */
	k.Crc = float64(int16(frameWords[2][7-3]>>(30-16)&0xFFFF)) * GPS_LNAV_EPH_SF_CRC

	/* w (omega): word 7, bits 17-24 and word 8, bits 1-24 */
	k.W = float64(int32(frameWords[2][7-3]>>(30-24)&0xFF<<24|
		frameWords[2][8-3]>>(30-24)&0xFFFFFF)) * (GPS_LNAV_EPH_SF_W * PI)

	/* omegadot: word 9, bits 1-24 */
	k.Omegadot = float64(signExtend24(frameWords[2][9-3]>>(30-24)&0xFFFFFF)) *
		(GPS_LNAV_EPH_SF_OMEGADOT * PI)

	/* iode: word 10, bits 1-8 */
	k.Iode = uint16(frameWords[2][10-3] >> (30 - 8) & 0xFF)

	/* inc_dot (IDOT): word 10, bits 9-22 */
	k.IncDot = float64(signExtend14(frameWords[2][10-3]>>(30-22)&0x3FFF)) *
		(GPS_LNAV_EPH_SF_IDOT * PI)

	/* both IODEs and the 8 LSBs of IODC must match */
	iodeValid := uint16(iodeSf2) == k.Iode && k.Iode == k.Iodc&0xFF
	if !iodeValid {
		Trace(2, "DecodeEphemeris %s: IODC/IODE mismatch, invalidating\n",
			e.Sid.String())
	}

	if iodeValid && toeValid {
		e.Valid = 1
	} else {
		e.Valid = 0
	}
}

/* EphemerisEqual --------------------------------------------------------------
* compare two ephemerides for equality
* args   : *Ephemeris a,b    I   ephemerides to compare
* return : true if they are identical
*-----------------------------------------------------------------------------*/
func EphemerisEqual(a, b *Ephemeris) bool {
	if !SidIsEqual(a.Sid, b.Sid) || a.Ura != b.Ura ||
		a.FitInterval != b.FitInterval || a.Valid != b.Valid ||
		a.HealthBits != b.HealthBits || a.Toe.Wn != b.Toe.Wn ||
		a.Toe.Tow != b.Toe.Tow {
		return false
	}

	switch SidToConstellation(a.Sid) {
	case CONSTELLATION_GPS, CONSTELLATION_QZS, CONSTELLATION_BDS, CONSTELLATION_GAL:
		return a.Kepler == b.Kepler
	case CONSTELLATION_SBAS:
		return a.Xyz == b.Xyz
	case CONSTELLATION_GLO:
		return a.Glo == b.Glo
	default:
		return false
	}
}

/* EphemerisHealthy ------------------------------------------------------------
* check the health of an ephemeris for a given signal. The code is passed
* separately since for example L2CM re-uses the L1CA ephemeris
* args   : *Ephemeris e      I   broadcast ephemeris
*          Code       code   I   signal to check
* return : true if the ephemeris is healthy
*-----------------------------------------------------------------------------*/
func EphemerisHealthy(e *Ephemeris, code Code) bool {
	if e.Valid == 0 {
		/* without an ephemeris assume the satellite is healthy, otherwise
		 * tracking would stop and we would never find out */
		return true
	}

	switch CodeToConstellation(code) {
	case CONSTELLATION_GPS:
		if EncodeUra(e.Ura) > MAX_ALLOWED_GPS_URA_IDX {
			return false
		}
		return Check6bitHealthWord(e.HealthBits, code)
	case CONSTELLATION_GLO, CONSTELLATION_BDS, CONSTELLATION_GAL:
		if e.Ura < 0 || e.Ura > URA_VALID_MAX {
			return false
		}
		return e.HealthBits == 0
	case CONSTELLATION_SBAS, CONSTELLATION_QZS:
		return e.HealthBits == 0
	default:
		Trace(2, "EphemerisHealthy: unsupported code %d\n", code)
		return false
	}
}

// getIodcrc computes a CRC over the BDS ephemeris parameters, used as a
// unique issue-of-data since BDS broadcasts none. Field packing follows the
// BNC broadcast encoder.
func getIodcrc(e *Ephemeris) uint32 {
	var buf [80]uint8
	k := &e.Kepler
	numbits := 0

	SetBits(buf[:], numbits, 14, int32(k.IncDot/PI*float64(int64(1)<<43)))
	numbits += 14
	SetBits(buf[:], numbits, 11, int32(k.Af2*float64(int64(1)<<33)*float64(int64(1)<<33)))
	numbits += 11
	SetBits(buf[:], numbits, 22, int32(k.Af1*float64(int64(1)<<50)))
	numbits += 22
	SetBits(buf[:], numbits, 24, int32(k.Af0*float64(int64(1)<<33)))
	numbits += 24
	SetBits(buf[:], numbits, 18, int32(k.Crs*float64(int64(1)<<6)))
	numbits += 18
	SetBits(buf[:], numbits, 16, int32(k.Dn/PI*float64(int64(1)<<43)))
	numbits += 16
	SetBits(buf[:], numbits, 32, int32(k.M0/PI*float64(int64(1)<<31)))
	numbits += 32
	SetBits(buf[:], numbits, 18, int32(k.Cuc*float64(int64(1)<<31)))
	numbits += 18
	SetBitU(buf[:], numbits, 32, uint32(k.Ecc*float64(int64(1)<<33)))
	numbits += 32
	SetBits(buf[:], numbits, 18, int32(k.Cus*float64(int64(1)<<31)))
	numbits += 18
	SetBitU(buf[:], numbits, 32, uint32(k.Sqrta*float64(int64(1)<<19)))
	numbits += 32
	SetBits(buf[:], numbits, 18, int32(k.Cic*float64(int64(1)<<31)))
	numbits += 18
	SetBits(buf[:], numbits, 32, int32(k.Omega0/PI*float64(int64(1)<<31)))
	numbits += 32
	SetBits(buf[:], numbits, 18, int32(k.Cis*float64(int64(1)<<31)))
	numbits += 18
	SetBits(buf[:], numbits, 32, int32(k.Inc/PI*float64(int64(1)<<31)))
	numbits += 32
	SetBits(buf[:], numbits, 18, int32(k.Crc*float64(int64(1)<<6)))
	numbits += 18
	SetBits(buf[:], numbits, 32, int32(k.W/PI*float64(int64(1)<<31)))
	numbits += 32
	SetBits(buf[:], numbits, 24, int32(k.Omegadot/PI*float64(int64(1)<<43)))
	numbits += 24
	SetBits(buf[:], numbits, 5, 0)
	numbits += 5

	return CRC24q(buf[:], numbits/8, 0)
}

/* GetEphemerisIodOrIodcrc -----------------------------------------------------
* get the issue of data for an ephemeris. For BDS this is a CRC uniquely
* identifying the parameter set, for the other constellations the IODE
* args   : *Ephemeris e      I   broadcast ephemeris
* return : issue of data
*-----------------------------------------------------------------------------*/
func GetEphemerisIodOrIodcrc(e *Ephemeris) uint32 {
	switch SidToConstellation(e.Sid) {
	case CONSTELLATION_BDS:
		return getIodcrc(e)
	case CONSTELLATION_GPS, CONSTELLATION_GAL, CONSTELLATION_QZS:
		return uint32(e.Kepler.Iode)
	case CONSTELLATION_GLO:
		return uint32(e.Glo.Iod)
	default:
		Trace(2, "GetEphemerisIodOrIodcrc: unsupported constellation %d\n",
			SidToConstellation(e.Sid))
		return 0
	}
}

/* GetTgdCorrection ------------------------------------------------------------
* get the group delay to apply to the satellite clock correction for a signal
* args   : *Ephemeris e      I   broadcast ephemeris
*          Sid        sid    I   signal to correct
* return : (group delay (s), true) or (0, false) if no tgd applies
*-----------------------------------------------------------------------------*/
func GetTgdCorrection(e *Ephemeris, sid Sid) (float32, bool) {
	switch SidToConstellation(sid) {
	case CONSTELLATION_GPS, CONSTELLATION_QZS:
		/* single frequency clock error = iono-free error - (f_L1/f)^2 tgd */
		frequency := SidToCarrFreq(sid)
		gamma := FREQ_GPS_L1 * FREQ_GPS_L1 / (frequency * frequency)
		if sid.Code == CODE_GPS_L5I || sid.Code == CODE_GPS_L5Q ||
			sid.Code == CODE_GPS_L5X || sid.Code == CODE_QZS_L5I ||
			sid.Code == CODE_QZS_L5Q || sid.Code == CODE_QZS_L5X {
			return float32(float64(e.Kepler.Tgd[1]) * gamma), true
		}
		return float32(float64(e.Kepler.Tgd[0]) * gamma), true
	case CONSTELLATION_BDS:
		if sid.Code == CODE_BDS2_B1 {
			return e.Kepler.Tgd[0], true
		}
		if sid.Code == CODE_BDS2_B2 {
			return e.Kepler.Tgd[1], true
		}
		return 0, false
	case CONSTELLATION_GLO:
		/* GLO ICD v5.1: d_tau = t_f2 - t_f1, applied with negative sign
		 * since the clock error is added to the pseudorange */
		if sid.Code == CODE_GLO_L1OF || sid.Code == CODE_GLO_L1P {
			return 0.0, true
		}
		if sid.Code == CODE_GLO_L2OF || sid.Code == CODE_GLO_L2P {
			return float32(e.Glo.DTau), true
		}
		return 0, false
	case CONSTELLATION_GAL:
		/* Galileo ICD chapter 5.1.5: INAV clock corrections are for the
		 * (E1,E5b) combination */
		frequency := SidToCarrFreq(sid)
		gamma := FREQ_GAL_E1 * FREQ_GAL_E1 / (frequency * frequency)
		switch sid.Code {
		case CODE_GAL_E5I, CODE_GAL_E5Q, CODE_GAL_E5X:
			return float32(gamma * float64(e.Kepler.Tgd[0])), true
		case CODE_GAL_E1B, CODE_GAL_E1C, CODE_GAL_E1X,
			CODE_GAL_E7I, CODE_GAL_E7Q, CODE_GAL_E7X:
			return float32(gamma * float64(e.Kepler.Tgd[1])), true
		}
		return 0, false
	default:
		Trace(2, "GetTgdCorrection: unsupported constellation %d\n",
			SidToConstellation(sid))
		return 0, false
	}
}
