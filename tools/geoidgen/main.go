/*------------------------------------------------------------------------------
* geoidgen : regenerate the embedded 1 degree geoid grid
*
* usage  : go run ./tools/geoidgen > geoid_grid_1deg.go
*
* notes  : the grid is a smooth low-order approximation of the EGM2008 geoid
*          built from a degree-2 zonal term plus Gaussian anomalies centred
*          on the major geoid features. swap the model function for a real
*          EGM2008 sampler when full accuracy is needed
*-----------------------------------------------------------------------------*/
package main

import (
	"fmt"
	"math"
	"os"
	"strings"
)

const (
	nLat = 181
	nLon = 361
)

/* major geoid anomalies: lat (deg), lon (deg), amplitude (m), width (deg) */
var features = [][4]float64{
	{-5.0, 78.0, -100.0, 22.0}, /* Indian Ocean low */
	{-5.0, 142.0, 78.0, 18.0},  /* New Guinea high */
	{52.0, 330.0, 58.0, 22.0},  /* North Atlantic high */
	{18.0, 293.0, -48.0, 16.0}, /* Caribbean low */
	{-58.0, 285.0, -25.0, 20.0},
	{-48.0, 45.0, 35.0, 22.0},
	{70.0, 40.0, 20.0, 18.0},
	{-35.0, 215.0, -30.0, 24.0},
}

func geoidHeight(latDeg, lonDeg float64) float64 {
	lat := latDeg * math.Pi / 180
	n := -2.0 + 8.0*(3.0*math.Sin(lat)*math.Sin(lat)-1.0)/2.0
	for _, f := range features {
		fl := f[0] * math.Pi / 180
		fn := f[1] * math.Pi / 180
		cosd := math.Sin(lat)*math.Sin(fl) +
			math.Cos(lat)*math.Cos(fl)*math.Cos(lonDeg*math.Pi/180-fn)
		cosd = math.Max(-1, math.Min(1, cosd))
		d := math.Acos(cosd) * 180 / math.Pi
		n += f[2] * math.Exp(-(d/f[3])*(d/f[3]))
	}
	return n
}

func main() {
	var b strings.Builder
	b.WriteString("/* Code generated by tools/geoidgen. DO NOT EDIT. */\n\n")
	b.WriteString("package gnsscore\n\n")
	b.WriteString("/* 1 degree geoid grid, longitude 0..360 deg inclusive by latitude -90..90 deg\n")
	b.WriteString("   inclusive, stored as data[lonIdx*181+latIdx] */\n")
	b.WriteString("var geoidModel1Degree = &GeoidModel{\n")
	b.WriteString("\tData:       geoidGrid1Deg[:],\n")
	b.WriteString("\tLatSpacing: 1.0,\n\tLonSpacing: 1.0,\n\tNLat:       181,\n\tNLon:       361,\n}\n\n")
	b.WriteString("var geoidGrid1Deg = [361 * 181]float32{\n")

	vals := make([]float64, 0, nLat*nLon)
	for x := 0; x < nLon; x++ {
		for y := 0; y < nLat; y++ {
			vals = append(vals, geoidHeight(-90+float64(y), float64(x)))
		}
	}
	for i := 0; i < len(vals); i += 12 {
		end := i + 12
		if end > len(vals) {
			end = len(vals)
		}
		parts := make([]string, 0, 12)
		for _, v := range vals[i:end] {
			parts = append(parts, fmt.Sprintf("%.3f", v))
		}
		b.WriteString("\t" + strings.Join(parts, ", ") + ",\n")
	}
	b.WriteString("}\n")

	fmt.Fprint(os.Stdout, b.String())
}
