/*------------------------------------------------------------------------------
* gnsscore unit test driver : Galileo I/NAV ephemeris decoding
*-----------------------------------------------------------------------------*/

package gnsscore_test

import (
	"math"
	"testing"

	"gnsscore"

	"github.com/stretchr/testify/assert"
)

const (
	galTestIodNav  = 67
	galTestSvid    = 11
	galTestToe     = 14400.0
	galTestGalWeek = 1161
)

/* plausible broadcast elements quantized onto the I/NAV grid */
var galEphIn = struct {
	m0, ecc, sqrta         float64
	omega0, inc, w, incDot float64
	omegadot, dn           float64
	cuc, cus, crc, crs     float64
	cic, cis               float64
	af0, af1, af2          float64
	bgdE5a, bgdE5b         float64
}{
	m0:       -1.8718497964,
	ecc:      2.7016e-4,
	sqrta:    5440.6021,
	omega0:   0.9554274437,
	inc:      0.9897261126,
	w:        0.3851529784,
	incDot:   -4.1075e-10,
	omegadot: -5.62e-9,
	dn:       3.05e-9,
	cuc:      -8.8103e-7,
	cus:      5.1029e-6,
	crc:      255.3125,
	crs:      -18.5,
	cic:      3.9115e-8,
	cis:      -2.4214e-8,
	af0:      -1.8021e-4,
	af1:      -7.958e-12,
	af2:      0.0,
	bgdE5a:   -3.026e-9,
	bgdE5b:   -3.249e-9,
}

func quantize(v, scale float64) int32 {
	return int32(math.Round(v / scale))
}

/* build word types 1..5 with the fixture elements */
func makeGalPages() [5][gnsscore.GAL_INAV_CONTENT_BYTE]uint8 {
	var page [5][gnsscore.GAL_INAV_CONTENT_BYTE]uint8
	in := &galEphIn

	p2_31pi := gnsscore.P2_31 * gnsscore.PI
	p2_43pi := gnsscore.P2_43 * gnsscore.PI

	w := page[0][:]
	gnsscore.SetBitU(w, 0, 6, 1)
	gnsscore.SetBitU(w, 6, 10, galTestIodNav)
	gnsscore.SetBitU(w, 16, 14, uint32(galTestToe/60.0))
	gnsscore.SetBits(w, 30, 32, quantize(in.m0, p2_31pi))
	gnsscore.SetBitU(w, 62, 32, uint32(quantize(in.ecc, gnsscore.P2_33)))
	gnsscore.SetBitU(w, 94, 32, uint32(math.Round(in.sqrta/gnsscore.P2_19)))

	w = page[1][:]
	gnsscore.SetBitU(w, 0, 6, 2)
	gnsscore.SetBitU(w, 6, 10, galTestIodNav)
	gnsscore.SetBits(w, 16, 32, quantize(in.omega0, p2_31pi))
	gnsscore.SetBits(w, 48, 32, quantize(in.inc, p2_31pi))
	gnsscore.SetBits(w, 80, 32, quantize(in.w, p2_31pi))
	gnsscore.SetBits(w, 112, 14, quantize(in.incDot, p2_43pi))

	w = page[2][:]
	gnsscore.SetBitU(w, 0, 6, 3)
	gnsscore.SetBitU(w, 6, 10, galTestIodNav)
	gnsscore.SetBits(w, 16, 24, quantize(in.omegadot, p2_43pi))
	gnsscore.SetBits(w, 40, 16, quantize(in.dn, p2_43pi))
	gnsscore.SetBits(w, 56, 16, quantize(in.cuc, gnsscore.P2_29))
	gnsscore.SetBits(w, 72, 16, quantize(in.cus, gnsscore.P2_29))
	gnsscore.SetBits(w, 88, 16, quantize(in.crc, gnsscore.P2_5))
	gnsscore.SetBits(w, 104, 16, quantize(in.crs, gnsscore.P2_5))
	gnsscore.SetBitU(w, 120, 8, 107) /* SISA 3.12 m */

	w = page[3][:]
	gnsscore.SetBitU(w, 0, 6, 4)
	gnsscore.SetBitU(w, 6, 10, galTestIodNav)
	gnsscore.SetBitU(w, 16, 6, galTestSvid)
	gnsscore.SetBits(w, 22, 16, quantize(in.cic, gnsscore.P2_29))
	gnsscore.SetBits(w, 38, 16, quantize(in.cis, gnsscore.P2_29))
	gnsscore.SetBitU(w, 54, 14, uint32(galTestToe/60.0))
	gnsscore.SetBits(w, 68, 31, quantize(in.af0, gnsscore.P2_34))
	gnsscore.SetBits(w, 99, 21, quantize(in.af1, gnsscore.P2_46))
	gnsscore.SetBits(w, 120, 6, quantize(in.af2, gnsscore.P2_59))

	w = page[4][:]
	gnsscore.SetBitU(w, 0, 6, 5)
	gnsscore.SetBits(w, 47, 10, quantize(in.bgdE5a, gnsscore.P2_32))
	gnsscore.SetBits(w, 57, 10, quantize(in.bgdE5b, gnsscore.P2_32))
	/* HS and DVS fields left zero: both signals healthy */
	gnsscore.SetBitU(w, 73, 12, galTestGalWeek)

	return page
}

func Test_decode_sisa_index(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(float32(0.0), gnsscore.DecodeSisaIndex(0))
	assert.InDelta(0.49, float64(gnsscore.DecodeSisaIndex(49)), 1e-6)
	assert.InDelta(0.5, float64(gnsscore.DecodeSisaIndex(50)), 1e-6)
	assert.InDelta(0.98, float64(gnsscore.DecodeSisaIndex(74)), 1e-6)
	assert.InDelta(1.0, float64(gnsscore.DecodeSisaIndex(75)), 1e-6)
	assert.InDelta(1.96, float64(gnsscore.DecodeSisaIndex(99)), 1e-6)
	assert.InDelta(2.0, float64(gnsscore.DecodeSisaIndex(100)), 1e-6)
	assert.InDelta(6.0, float64(gnsscore.DecodeSisaIndex(125)), 1e-6)
	assert.Equal(float32(gnsscore.INVALID_URA_VALUE), gnsscore.DecodeSisaIndex(126))
	assert.Equal(float32(gnsscore.INVALID_URA_VALUE), gnsscore.DecodeSisaIndex(255))
}

func Test_decode_gal_ephemeris(t *testing.T) {
	assert := assert.New(t)

	page := makeGalPages()
	var e gnsscore.Ephemeris
	assert.True(gnsscore.DecodeGalEphemeris(&page, &e))

	in := &galEphIn
	k := &e.Kepler
	p2_31pi := gnsscore.P2_31 * gnsscore.PI
	p2_43pi := gnsscore.P2_43 * gnsscore.PI

	assert.Equal(gnsscore.Sid{Sat: galTestSvid, Code: gnsscore.CODE_GAL_E1B}, e.Sid)
	assert.EqualValues(galTestIodNav, k.Iode)
	assert.EqualValues(galTestIodNav, k.Iodc)
	assert.Equal(galTestToe, e.Toe.Tow)
	assert.Equal(int16(galTestGalWeek+gnsscore.GAL_WEEK_TO_GPS_WEEK), e.Toe.Wn)
	assert.Equal(galTestToe, k.Toc.Tow)
	assert.Equal(e.Toe.Wn, k.Toc.Wn)

	/* orbital elements come back to within a quantization step */
	assert.InDelta(in.m0, k.M0, p2_31pi)
	assert.InDelta(in.ecc, k.Ecc, gnsscore.P2_33)
	assert.InDelta(in.sqrta, k.Sqrta, gnsscore.P2_19)
	assert.InDelta(in.omega0, k.Omega0, p2_31pi)
	assert.InDelta(in.inc, k.Inc, p2_31pi)
	assert.InDelta(in.w, k.W, p2_31pi)
	assert.InDelta(in.incDot, k.IncDot, p2_43pi)
	assert.InDelta(in.omegadot, k.Omegadot, p2_43pi)
	assert.InDelta(in.dn, k.Dn, p2_43pi)
	assert.InDelta(in.cuc, k.Cuc, gnsscore.P2_29)
	assert.InDelta(in.cus, k.Cus, gnsscore.P2_29)
	assert.InDelta(in.crc, k.Crc, gnsscore.P2_5)
	assert.InDelta(in.crs, k.Crs, gnsscore.P2_5)
	assert.InDelta(in.cic, k.Cic, gnsscore.P2_29)
	assert.InDelta(in.cis, k.Cis, gnsscore.P2_29)
	assert.InDelta(in.af0, k.Af0, gnsscore.P2_34)
	assert.InDelta(in.af1, k.Af1, gnsscore.P2_46)
	assert.InDelta(in.af2, k.Af2, gnsscore.P2_59)
	assert.InDelta(in.bgdE5a, float64(k.Tgd[0]), gnsscore.P2_32)
	assert.InDelta(in.bgdE5b, float64(k.Tgd[1]), gnsscore.P2_32)

	assert.InDelta(3.12, float64(e.Ura), 1e-6)
	assert.EqualValues(0, e.HealthBits)
	assert.EqualValues(gnsscore.GAL_FIT_INTERVAL_DEFAULT, e.FitInterval)
	assert.EqualValues(1, e.Valid)
}

func Test_decode_gal_ephemeris_wrong_word(t *testing.T) {
	assert := assert.New(t)

	page := makeGalPages()
	gnsscore.SetBitU(page[2][:], 0, 6, 6) /* word type 6 in slot 3 */

	var e gnsscore.Ephemeris
	assert.False(gnsscore.DecodeGalEphemeris(&page, &e))
}

func Test_decode_gal_ephemeris_iod_mismatch(t *testing.T) {
	assert := assert.New(t)

	page := makeGalPages()
	gnsscore.SetBitU(page[1][:], 6, 10, galTestIodNav+1)

	var e gnsscore.Ephemeris
	assert.False(gnsscore.DecodeGalEphemeris(&page, &e))
}

func Test_decode_gal_ephemeris_health(t *testing.T) {
	assert := assert.New(t)

	page := makeGalPages()
	/* E5b HS = 3, E1B DVS = working without guarantee */
	gnsscore.SetBitU(page[4][:], 67, 2, 3)
	gnsscore.SetBitU(page[4][:], 72, 1, 1)

	var e gnsscore.Ephemeris
	assert.True(gnsscore.DecodeGalEphemeris(&page, &e))
	assert.Equal(uint8(3<<6|1), e.HealthBits)
}
