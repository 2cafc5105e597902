/*------------------------------------------------------------------------------
* coord.go : coordinate transforms between geodetic, ECEF and local frames
*
* notes  : geodetic positions are WGS-84 {lat,lon,height} with angles in
*          radians. the local tangential frame is NED (north, east, down)
*-----------------------------------------------------------------------------*/
package gnsscore

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

/* inner product ---------------------------------------------------------------
* args   : []float64 a,b  I  vectors
*          int       n    I  size of vectors
* return : a ' b
*-----------------------------------------------------------------------------*/
func Dot(a, b []float64, n int) float64 {
	c := 0.0
	for n--; n >= 0; n-- {
		c += a[n] * b[n]
	}
	return c
}

/* euclid norm of vector ---------------------------------------------------------*/
func Norm(a []float64, n int) float64 {
	return math.Sqrt(Dot(a, a, n))
}

/* outer product of 3d vectors -----------------------------------------------------*/
func Cross3(a, b, c []float64) {
	c[0] = a[1]*b[2] - a[2]*b[1]
	c[1] = a[2]*b[0] - a[0]*b[2]
	c[2] = a[0]*b[1] - a[1]*b[0]
}

/* normalize 3d vector ----------------------------------------------------------------
* return : status (true:ok,false:zero vector)
*-----------------------------------------------------------------------------*/
func NormV3(a, b []float64) bool {
	r := Norm(a, 3)
	if r <= 0.0 {
		return false
	}
	b[0] = a[0] / r
	b[1] = a[1] / r
	b[2] = a[2] / r
	return true
}

/* geodetic angles rad to deg, height unchanged -------------------------------------------*/
func LlhRad2Deg(llh, out []float64) {
	out[0] = llh[0] * R2D
	out[1] = llh[1] * R2D
	out[2] = llh[2]
}

/* geodetic angles deg to rad, height unchanged --------------------------------------------*/
func LlhDeg2Rad(llh, out []float64) {
	out[0] = llh[0] * D2R
	out[1] = llh[1] * D2R
	out[2] = llh[2]
}

/* geodetic position to ecef -----------------------------------------------------------
* args   : []float64 llh   I  geodetic position {lat,lon,h} (rad,m)
*          []float64 ecef  O  ecef position {x,y,z} (m)
*-----------------------------------------------------------------------------*/
func Llh2Ecef(llh, ecef []float64) {
	sinp := math.Sin(llh[0])
	cosp := math.Cos(llh[0])
	sinl := math.Sin(llh[1])
	cosl := math.Cos(llh[1])
	e2 := FE_WGS84 * (2.0 - FE_WGS84)
	v := RE_WGS84 / math.Sqrt(1.0-e2*sinp*sinp)

	ecef[0] = (v + llh[2]) * cosp * cosl
	ecef[1] = (v + llh[2]) * cosp * sinl
	ecef[2] = (v*(1.0-e2) + llh[2]) * sinp
}

/* ecef position to geodetic -------------------------------------------------------------
* args   : []float64 ecef  I  ecef position {x,y,z} (m)
*          []float64 llh   O  geodetic position {lat,lon,h} (rad,m)
* notes  : Bowring's iteration, terminates when the height moves less than
*          1e-9 m and the latitude less than 1e-12 rad
*-----------------------------------------------------------------------------*/
func Ecef2Llh(ecef, llh []float64) {
	e2 := FE_WGS84 * (2.0 - FE_WGS84)
	b := RE_WGS84 * (1.0 - FE_WGS84)
	p := math.Sqrt(ecef[0]*ecef[0] + ecef[1]*ecef[1])

	if p < 1e-6 {
		/* on the polar axis */
		llh[1] = 0.0
		if ecef[2] >= 0.0 {
			llh[0] = PI / 2.0
			llh[2] = ecef[2] - b
		} else {
			llh[0] = -PI / 2.0
			llh[2] = -ecef[2] - b
		}
		return
	}

	llh[1] = math.Atan2(ecef[1], ecef[0])

	lat := math.Atan2(ecef[2], p*(1.0-e2))
	h := 0.0
	for i := 0; i < MAX_ITER_LLH; i++ {
		sinp := math.Sin(lat)
		v := RE_WGS84 / math.Sqrt(1.0-e2*sinp*sinp)
		hPrev := h
		latPrev := lat
		h = p/math.Cos(lat) - v
		lat = math.Atan2(ecef[2], p*(1.0-e2*v/(v+h)))
		if math.Abs(h-hPrev) < 1e-9 && math.Abs(lat-latPrev) < 1e-12 {
			break
		}
	}
	llh[0] = lat
	llh[2] = h
}

/* rotation matrix from ecef to the NED frame at a geodetic reference -----------------------
* args   : []float64 llh  I  geodetic reference {lat,lon} (rad)
* return : 3 x 3 rotation matrix
*-----------------------------------------------------------------------------*/
func Ecef2NedMatrix(llh []float64) *mat.Dense {
	sinp := math.Sin(llh[0])
	cosp := math.Cos(llh[0])
	sinl := math.Sin(llh[1])
	cosl := math.Cos(llh[1])

	return mat.NewDense(3, 3, []float64{
		-sinp * cosl, -sinp * sinl, cosp,
		-sinl, cosl, 0.0,
		-cosp * cosl, -cosp * sinl, -sinp,
	})
}

/* transform an ecef vector to NED at a geodetic reference -----------------------------------*/
func Ecef2Ned(ecef, refLlh, ned []float64) {
	m := Ecef2NedMatrix(refLlh)
	var v mat.VecDense
	v.MulVec(m, mat.NewVecDense(3, ecef))
	ned[0] = v.AtVec(0)
	ned[1] = v.AtVec(1)
	ned[2] = v.AtVec(2)
}

/* NED coordinates of a point relative to an ecef reference -----------------------------------
* args   : []float64 ecef     I  point in ecef (m)
*          []float64 refEcef  I  reference point in ecef (m)
*          []float64 ned      O  point in NED at the reference (m)
*-----------------------------------------------------------------------------*/
func Ecef2NedD(ecef, refEcef, ned []float64) {
	var refLlh, d [3]float64
	Ecef2Llh(refEcef, refLlh[:])
	for i := 0; i < 3; i++ {
		d[i] = ecef[i] - refEcef[i]
	}
	Ecef2Ned(d[:], refLlh[:], ned)
}

/* transform a NED vector to ecef at a geodetic reference --------------------------------------*/
func Ned2Ecef(ned, refLlh, ecef []float64) {
	m := Ecef2NedMatrix(refLlh)
	var v mat.VecDense
	v.MulVec(m.T(), mat.NewVecDense(3, ned))
	ecef[0] = v.AtVec(0)
	ecef[1] = v.AtVec(1)
	ecef[2] = v.AtVec(2)
}

/* ecef point from NED coordinates at an ecef reference -----------------------------------------*/
func Ned2EcefD(ned, refEcef, ecef []float64) {
	var refLlh [3]float64
	Ecef2Llh(refEcef, refLlh[:])
	Ned2Ecef(ned, refLlh[:], ecef)
	for i := 0; i < 3; i++ {
		ecef[i] += refEcef[i]
	}
}

/* satellite azimuth and elevation seen from a receiver -------------------------------------------
* args   : []float64 satEcef  I  satellite position in ecef (m)
*          []float64 refEcef  I  receiver position in ecef (m)
* return : azimuth [0,2*pi) and elevation [-pi/2,pi/2] (rad)
*-----------------------------------------------------------------------------*/
func Ecef2AzEl(satEcef, refEcef []float64) (az, el float64) {
	var ned [3]float64
	Ecef2NedD(satEcef, refEcef, ned[:])

	az = math.Atan2(ned[1], ned[0])
	if az < 0 {
		az += 2 * PI
	}
	el = math.Asin(-ned[2] / Norm(ned[:], 3))
	return az, el
}
