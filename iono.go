/*------------------------------------------------------------------------------
* iono.go : Klobuchar ionospheric delay model
*
* references :
*     [1] IS-GPS-200H section 20.3.3.5.2.5, Klobuchar single frequency
*         ionospheric correction
*-----------------------------------------------------------------------------*/
package gnsscore

import "math"

/* Klobuchar model parameters from GPS LNAV subframe 4 page 18 */
type IonoParams struct {
	Toa            GpsTime /* reference time of the parameters */
	A0, A1, A2, A3 float64 /* amplitude polynomial (s, s/sc, s/sc^2, s/sc^3) */
	B0, B1, B2, B3 float64 /* period polynomial (s, s/sc, s/sc^2, s/sc^3) */
}

/* ionospheric delay by Klobuchar model -----------------------------------------
* args   : *GpsTime    tGps  I  gps time
*          float64     latU  I  user latitude (rad)
*          float64     lonU  I  user longitude (rad)
*          float64     a     I  satellite azimuth (rad)
*          float64     e     I  satellite elevation (rad)
*          *IonoParams p     I  broadcast alpha/beta coefficients
* return : L1 slant ionospheric delay (m). scale by (fL1/f)^2 for other bands
*-----------------------------------------------------------------------------*/
func CalcIonosphere(tGps *GpsTime, latU, lonU, a, e float64, p *IonoParams) float64 {
	/* all angles in semicircles below */

	/* earth centred angle between user and the pierce point */
	psi := 0.0137/(e/PI+0.11) - 0.022

	/* sub-ionospheric latitude, clamped to +/-75 deg */
	phi := latU/PI + psi*math.Cos(a)
	if phi > 0.416 {
		phi = 0.416
	} else if phi < -0.416 {
		phi = -0.416
	}

	/* sub-ionospheric longitude */
	lam := lonU/PI + psi*math.Sin(a)/math.Cos(phi*PI)

	/* geomagnetic latitude */
	phiM := phi + 0.064*math.Cos((lam-1.617)*PI)

	/* local time at the pierce point */
	t := 43200*lam + math.Mod(tGps.Tow, SECS_DAY)
	t = math.Mod(t, SECS_DAY)
	if t < 0 {
		t += SECS_DAY
	}

	amp := p.A0 + phiM*(p.A1+phiM*(p.A2+phiM*p.A3))
	per := p.B0 + phiM*(p.B1+phiM*(p.B2+phiM*p.B3))
	if amp < 0 {
		amp = 0
	}
	if per < 72000 {
		per = 72000
	}

	/* obliquity (slant) factor */
	f := 1.0 + 16.0*math.Pow(0.53-e/PI, 3)

	x := 2 * PI * (t - 50400) / per
	if math.Abs(x) < 1.57 {
		x2 := x * x
		return CLIGHT * f * (5e-9 + amp*(1.0-x2/2.0+x2*x2/24.0))
	}
	return CLIGHT * f * 5e-9
}

/* decode Klobuchar parameters from GPS LNAV subframe 4 page 18 --------------------
* args   : []uint32    words I  subframe words 3..10 (30 bits each, parity
*                               removed)
*          *IonoParams p     O  decoded parameters, Toa left unknown
* return : status (true:ok,false:wrong page)
* notes  : IS-GPS-200H section 20.3.3.5.1.7
*-----------------------------------------------------------------------------*/
func DecodeIonoParameters(words []uint32, p *IonoParams) bool {
	if len(words) < 3 {
		return false
	}
	*p = IonoParams{Toa: GPS_TIME_UNKNOWN}

	/* word 3 bits 1-2: data ID, bits 3-8: SV ID */
	dataID := uint8(words[3-3] >> (30 - 2) & 0x3)
	svID := uint8(words[3-3] >> (30 - 8) & 0x3F)

	if dataID != GPS_LNAV_ALM_DATA_ID_BLOCK_II || svID != GPS_LNAV_ALM_SVID_IONO {
		return false
	}

	/* word 3 bits 9-16 and 17-24: alpha 0 and 1 */
	p.A0 = float64(int8(words[3-3]>>(30-16)&0xFF)) * P2_30
	p.A1 = float64(int8(words[3-3]>>(30-24)&0xFF)) * P2_27
	/* word 4 bits 1-8, 9-16 and 17-24: alpha 2, alpha 3, beta 0 */
	p.A2 = float64(int8(words[4-3]>>(30-8)&0xFF)) * P2_24
	p.A3 = float64(int8(words[4-3]>>(30-16)&0xFF)) * P2_24
	p.B0 = float64(int8(words[4-3]>>(30-24)&0xFF)) * 2048
	/* word 5 bits 1-8, 9-16 and 17-24: beta 1, beta 2, beta 3 */
	p.B1 = float64(int8(words[5-3]>>(30-8)&0xFF)) * 16384
	p.B2 = float64(int8(words[5-3]>>(30-16)&0xFF)) * 65536
	p.B3 = float64(int8(words[5-3]>>(30-24)&0xFF)) * 65536

	return true
}
