/*------------------------------------------------------------------------------
* geoid.go : geoid offset lookup with bicubic interpolation
*
* notes  : the embedded grid holds geoid heights above the WGS-84 ellipsoid
*          sampled on a regular lat/lon grid, longitude 0..360 inclusive,
*          latitude -90..90 inclusive, stored column-major as data[x*nLat+y]
*-----------------------------------------------------------------------------*/
package gnsscore

import "math"

type GeoidModel struct {
	Data       []float32
	LatSpacing float64 /* (deg) */
	LonSpacing float64 /* (deg) */
	NLat       int
	NLon       int
}

const (
	geoidMinLon = 0
	geoidMaxLon = 360
	geoidMinLat = -90
	geoidMaxLat = 90
)

/* grid value at (x,y), wrapping the longitude index ---------------------------*/
func (m *GeoidModel) val(x, y int) float64 {
	nx := int(float64(geoidMaxLon-geoidMinLon) / m.LonSpacing)
	if x >= nx {
		x -= nx
	} else if x < 0 {
		x += nx
	}
	return float64(m.Data[x*m.NLat+y])
}

/* bilinear interpolation within the cell whose southwest corner is (x,y),
   (fx,fy) is the fractional offset from that corner */
func (m *GeoidModel) bilinear(x, y int, fx, fy float64) float64 {
	southwest := m.val(x, y)
	southeast := m.val(x+1, y)
	northwest := m.val(x, y+1)
	northeast := m.val(x+1, y+1)

	return (1-fy)*((1-fx)*southwest+fx*southeast) +
		fy*((1-fx)*northwest+fx*northeast)
}

/* Catmull-Rom cubic through four samples, x is the offset within [p1,p2] -------*/
func cubicInterpolation(p [4]float64, x float64) float64 {
	return p[1] + 0.5*x*
		(p[2]-p[0]+
			x*(2*p[0]-5*p[1]+4*p[2]-p[3]+
				x*(3*(p[1]-p[2])+p[3]-p[0])))
}

/* geoid offset from a model -----------------------------------------------------
* args   : float64 latRad,lonRad  I  geodetic latitude and longitude (rad)
* return : geoid height above the ellipsoid (m), 0 for out of range inputs
*-----------------------------------------------------------------------------*/
func (m *GeoidModel) Offset(latRad, lonRad float64) float64 {
	latDeg := R2D * latRad
	if latDeg > geoidMaxLat || latDeg < geoidMinLat {
		Trace(2, "geoid: invalid latitude %f\n", latRad)
		return 0.0
	}

	lonDeg := R2D * lonRad
	if lonDeg < 0 {
		lonDeg += 360
	}
	if lonDeg > geoidMaxLon || lonDeg < geoidMinLon {
		Trace(2, "geoid: invalid longitude %f\n", lonRad)
		return 0.0
	}

	iyf, fy := math.Modf((latDeg - geoidMinLat) / m.LatSpacing)
	ixf, fx := math.Modf((lonDeg - geoidMinLon) / m.LonSpacing)
	ix := int(ixf)
	iy := int(iyf)

	nyCells := int(float64(geoidMaxLat-geoidMinLat) / m.LatSpacing)

	/* at lat +90 every x holds the same height, read it directly */
	if iy == nyCells {
		return float64(m.Data[ix*m.NLat+iy])
	}

	if iy > 0 && iy < nyCells-1 {
		/* bicubic over the 4x4 neighborhood around the cell. next to the
		 * north pole flip the row order and the fractional offset so the
		 * footprint stays on the grid */
		ys := [4]int{iy - 1, iy, iy + 1, iy + 2}
		if iy == nyCells-2 {
			ys = [4]int{iy + 2, iy + 1, iy, iy - 1}
			fy = 1 - fy
		}
		return m.bicubic(ix, ys, fx, fy)
	}

	/* first and last latitude rows: bilinear */
	return m.bilinear(ix, iy, fx, fy)
}

func (m *GeoidModel) bicubic(ix int, ys [4]int, fx, fy float64) float64 {
	var arr [4]float64
	for i, x := range [4]int{ix - 1, ix, ix + 1, ix + 2} {
		p := [4]float64{m.val(x, ys[0]), m.val(x, ys[1]), m.val(x, ys[2]), m.val(x, ys[3])}
		arr[i] = cubicInterpolation(p, fy)
	}
	return cubicInterpolation(arr, fx)
}

/* geoid offset from the embedded 1 degree grid -------------------------------------*/
func GetGeoidOffset(latRad, lonRad float64) float64 {
	return geoidModel1Degree.Offset(latRad, lonRad)
}
