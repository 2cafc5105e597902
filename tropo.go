/*------------------------------------------------------------------------------
* tropo.go : UNB3M neutral atmosphere delay model
*
* references :
*     [1] Leandro R.F., Santos M.C., Langley R.B., "UNB neutral atmosphere
*         models: development and performance", ION NTM 2006
*     [2] Niell A.E., "Global mapping functions for the atmosphere delay at
*         radio wavelengths", JGR vol.101 no.B2, 1996
*-----------------------------------------------------------------------------*/
package gnsscore

import "math"

const (
	/* top of the troposphere per the ICAO standard atmosphere (m) */
	MAX_TROPO_ALTITUDE = 11e3
	/* truncate satellite elevations near or below zero (deg) */
	MIN_SAT_ELEVATION = 0.1
)

/* latitude bands of the UNB3M and Niell tables (deg) */
var tropoLat = [5]float64{15.0, 30.0, 45.0, 60.0, 75.0}

/* UNB3M zonal parameters: mean and annual amplitude per latitude band */
var (
	pressureAvg = [5]float64{1013.25, 1017.25, 1015.75, 1011.75, 1013.00}
	pressureAmp = [5]float64{0.0, -3.75, -2.25, -1.75, -0.50}
	tempAvg     = [5]float64{299.65, 294.15, 283.15, 272.15, 263.65}
	tempAmp     = [5]float64{0.0, 7.0, 11.0, 15.0, 14.5}
	rhAvg       = [5]float64{75.0, 80.0, 76.0, 77.5, 82.5}
	rhAmp       = [5]float64{0.0, 0.0, -1.0, -2.5, 2.5}
	betaAvg     = [5]float64{6.30e-3, 6.05e-3, 5.58e-3, 5.39e-3, 4.53e-3}
	betaAmp     = [5]float64{0.0, 0.25e-3, 0.32e-3, 0.81e-3, 0.62e-3}
	lambdaAvg   = [5]float64{2.77, 3.15, 2.57, 1.81, 1.55}
	lambdaAmp   = [5]float64{0.0, 0.33, 0.46, 0.74, 0.30}
)

/* Niell hydrostatic mapping coefficients, mean and annual amplitude */
var (
	niellAhAvg = [5]float64{1.2769934e-3, 1.2683230e-3, 1.2465397e-3, 1.2196049e-3, 1.2045996e-3}
	niellBhAvg = [5]float64{2.9153695e-3, 2.9152299e-3, 2.9288445e-3, 2.9022565e-3, 2.9024912e-3}
	niellChAvg = [5]float64{62.610505e-3, 62.837393e-3, 63.721774e-3, 63.824265e-3, 64.258455e-3}
	niellAhAmp = [5]float64{0.0, 1.2709626e-5, 2.6523662e-5, 3.4000452e-5, 4.1202191e-5}
	niellBhAmp = [5]float64{0.0, 2.1414979e-5, 3.0160779e-5, 7.2562722e-5, 11.723375e-5}
	niellChAmp = [5]float64{0.0, 9.0128400e-5, 4.3497037e-5, 84.795348e-5, 170.37206e-5}
)

/* Niell wet mapping coefficients (no seasonal term) */
var (
	niellAw = [5]float64{5.8021897e-4, 5.6794847e-4, 5.8118019e-4, 5.9727542e-4, 6.1641693e-4}
	niellBw = [5]float64{1.4275268e-3, 1.5138625e-3, 1.4572752e-3, 1.5007428e-3, 1.7599082e-3}
	niellCw = [5]float64{4.3472961e-2, 4.6729510e-2, 4.3908931e-2, 4.4626982e-2, 5.4736038e-2}
)

/* Niell hydrostatic height correction coefficients */
const (
	niellAht = 2.53e-5
	niellBht = 5.49e-3
	niellCht = 1.14e-3
)

/* interpolate a banded parameter at an absolute latitude with its seasonal
   cosine already evaluated */
func tropoInterp(avg, amp *[5]float64, latAbsDeg, cosy float64) float64 {
	var i int
	var f float64
	switch {
	case latAbsDeg <= tropoLat[0]:
		i, f = 0, 0.0
	case latAbsDeg >= tropoLat[4]:
		i, f = 3, 1.0
	default:
		i = int((latAbsDeg - tropoLat[0]) / 15.0)
		f = (latAbsDeg - tropoLat[i]) / 15.0
	}
	a := avg[i] + (avg[i+1]-avg[i])*f
	m := amp[i] + (amp[i+1]-amp[i])*f
	return a - m*cosy
}

/* Niell normalized mapping function */
func niellMapf(el, a, b, c float64) float64 {
	s := math.Sin(el)
	topcon := 1.0 + a/(1.0+b/(1.0+c))
	return topcon / (s + a/(s+b/(s+c)))
}

/* tropospheric delay by UNB3M -----------------------------------------------------
* args   : float64 doy  I  day of year, fractional days allowed
*          float64 lat  I  user geodetic latitude (rad)
*          float64 h    I  user ellipsoidal height (m), clamped to 11 km
*          float64 el   I  satellite elevation (rad), truncated to 0.1 deg
* return : slant hydrostatic plus wet delay (m)
*-----------------------------------------------------------------------------*/
func CalcTroposphereDoy(doy, lat, h, el float64) float64 {
	latAbsDeg := math.Abs(lat * R2D)
	if h > MAX_TROPO_ALTITUDE {
		h = MAX_TROPO_ALTITUDE
	}
	if el < MIN_SAT_ELEVATION*D2R {
		el = MIN_SAT_ELEVATION * D2R
	}

	/* seasonal term peaks at day 28; shift by half a year down south */
	d := doy
	if lat < 0 {
		d += YEAR_DAYS_AVG / 2
	}
	cosy := math.Cos((d - 28.0) * 2 * PI / YEAR_DAYS_AVG)

	p0 := tropoInterp(&pressureAvg, &pressureAmp, latAbsDeg, cosy)
	t0 := tropoInterp(&tempAvg, &tempAmp, latAbsDeg, cosy)
	rh := tropoInterp(&rhAvg, &rhAmp, latAbsDeg, cosy)
	beta := tropoInterp(&betaAvg, &betaAmp, latAbsDeg, cosy)
	lambda := tropoInterp(&lambdaAvg, &lambdaAmp, latAbsDeg, cosy)

	/* surface water vapor pressure from relative humidity, IERS saturation
	 * pressure with the enhancement factor */
	es := 0.01 * math.Exp(1.2378847e-5*t0*t0-1.9121316e-2*t0+
		33.93711-6343.1645/t0)
	fw := 1.00062 + 3.14e-6*p0 + 5.6e-7*(t0-273.15)*(t0-273.15)
	e0 := (rh / 100.0) * es * fw

	const (
		g  = 9.80665
		rd = 287.054
	)
	ep := g / (rd * beta)

	/* scale the surface parameters to the station height */
	t := t0 - beta*h
	p := p0 * math.Pow(t/t0, ep)
	e := e0 * math.Pow(t/t0, ep*(lambda+1.0))

	/* gravity at the mass center of the atmospheric column */
	dgref := 1.0 - 2.66e-3*math.Cos(2.0*lat) - 2.8e-7*h
	gm := 9.784 * dgref
	tm := t * (1.0 - beta*rd/((lambda+1.0)*gm))

	/* zenith delays: Saastamoinen hydrostatic, Askne-Nordius wet */
	dhz := 2.2768e-3 * p / dgref
	k2p := 64.79 - 77.604*(18.0152/28.9644)
	const k3 = 377600.0
	dwz := 1e-6 * (k2p + k3/tm) * rd * e / ((lambda + 1.0) * gm)

	/* hydrostatic Niell mapping with its height correction */
	ah := tropoInterp(&niellAhAvg, &niellAhAmp, latAbsDeg, cosy)
	bh := tropoInterp(&niellBhAvg, &niellBhAmp, latAbsDeg, cosy)
	ch := tropoInterp(&niellChAvg, &niellChAmp, latAbsDeg, cosy)
	mh := niellMapf(el, ah, bh, ch)
	mh += (1.0/math.Sin(el) - niellMapf(el, niellAht, niellBht, niellCht)) * h / 1000.0

	/* wet Niell mapping */
	var zero [5]float64
	aw := tropoInterp(&niellAw, &zero, latAbsDeg, 0.0)
	bw := tropoInterp(&niellBw, &zero, latAbsDeg, 0.0)
	cw := tropoInterp(&niellCw, &zero, latAbsDeg, 0.0)
	mw := niellMapf(el, aw, bw, cw)

	return dhz*mh + dwz*mw
}

/* tropospheric delay at a gps time --------------------------------------------------*/
func CalcTroposphere(tGps *GpsTime, lat, h, el float64) float64 {
	return CalcTroposphereDoy(float64(Gps2Doy(tGps)), lat, h, el)
}
