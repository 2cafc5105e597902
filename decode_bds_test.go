/*------------------------------------------------------------------------------
* gnsscore unit test driver : BeiDou D1 ephemeris decoding
*-----------------------------------------------------------------------------*/

package gnsscore_test

import (
	"math"
	"testing"

	"gnsscore"

	"github.com/stretchr/testify/assert"
)

const (
	bdsTestSow  = 345600
	bdsTestToe  = 345600.0
	bdsTestWn   = 810
	bdsTestAodc = 4
	bdsTestAode = 6
)

/* plausible BDS MEO broadcast elements quantized onto the D1 grid */
var bdsEphIn = struct {
	m0, ecc, sqrta         float64
	omega0, inc, w, incDot float64
	omegadot, dn           float64
	cuc, cus, crc, crs     float64
	cic, cis               float64
	af0, af1, af2          float64
	tgd1, tgd2             float64
}{
	m0:       1.2714041657,
	ecc:      0.0113100581,
	sqrta:    5282.6234178,
	omega0:   -2.9612119750,
	inc:      0.9562345854,
	w:        -2.1635690033,
	incDot:   9.0074e-10,
	omegadot: -6.8003e-9,
	dn:       3.5001e-9,
	cuc:      -6.1998e-6,
	cus:      8.9002e-6,
	crc:      267.40625,
	crs:      -62.09375,
	cic:      2.7940e-8,
	cis:      -1.9092e-8,
	af0:      -2.5001e-5,
	af1:      1.0003e-12,
	af2:      0.0,
	tgd1:     -0.9e-9,
	tgd2:     -1.2e-9,
}

/* write a two-component split field (unsigned raw bits) */
func setBitU2(buff []uint8, p1, l1, p2, l2 int, data uint32) {
	gnsscore.SetBitU(buff, p1, l1, data>>l2)
	gnsscore.SetBitU(buff, p2, l2, data&(1<<l2-1))
}

func setBits2(buff []uint8, p1, l1, p2, l2 int, data int32) {
	setBitU2(buff, p1, l1, p2, l2, uint32(data))
}

func makeBdsD1Subframes() []uint8 {
	buff := make([]uint8, 3*gnsscore.BDS_D1_SUBFRAME_BYTE)
	in := &bdsEphIn

	p2_31pi := gnsscore.P2_31 * gnsscore.PI
	p2_43pi := gnsscore.P2_43 * gnsscore.PI
	toeCnt := uint32(bdsTestToe / 8.0)

	i := 8 * gnsscore.BDS_D1_SUBFRAME_BYTE * 0 /* subframe 1 */
	gnsscore.SetBitU(buff, i+15, 3, 1)
	setBitU2(buff, i+18, 8, i+30, 12, bdsTestSow)
	gnsscore.SetBitU(buff, i+42, 1, 0) /* SatH1 healthy */
	gnsscore.SetBitU(buff, i+43, 5, bdsTestAodc)
	gnsscore.SetBitU(buff, i+48, 4, 0) /* URA index 0: 2.0 m */
	gnsscore.SetBitU(buff, i+60, 13, bdsTestWn)
	setBitU2(buff, i+73, 9, i+90, 8, toeCnt)
	gnsscore.SetBits(buff, i+98, 10, quantize(in.tgd1, 0.1e-9))
	setBits2(buff, i+108, 4, i+120, 6, quantize(in.tgd2, 0.1e-9))
	gnsscore.SetBits(buff, i+214, 11, quantize(in.af2, gnsscore.P2_66))
	setBits2(buff, i+225, 7, i+240, 17, quantize(in.af0, gnsscore.P2_33))
	setBits2(buff, i+257, 5, i+270, 17, quantize(in.af1, gnsscore.P2_50))
	gnsscore.SetBitU(buff, i+287, 5, bdsTestAode)

	i = 8 * gnsscore.BDS_D1_SUBFRAME_BYTE * 1 /* subframe 2 */
	gnsscore.SetBitU(buff, i+15, 3, 2)
	setBitU2(buff, i+18, 8, i+30, 12, bdsTestSow+6)
	setBits2(buff, i+42, 10, i+60, 6, quantize(in.dn, p2_43pi))
	setBits2(buff, i+66, 16, i+90, 2, quantize(in.cuc, gnsscore.P2_31))
	setBits2(buff, i+92, 20, i+120, 12, quantize(in.m0, p2_31pi))
	setBitU2(buff, i+132, 10, i+150, 22, uint32(math.Round(in.ecc/gnsscore.P2_33)))
	gnsscore.SetBits(buff, i+180, 18, quantize(in.cus, gnsscore.P2_31))
	setBits2(buff, i+198, 4, i+210, 14, quantize(in.crc, gnsscore.P2_6))
	setBits2(buff, i+224, 8, i+240, 10, quantize(in.crs, gnsscore.P2_6))
	setBitU2(buff, i+250, 12, i+270, 20, uint32(math.Round(in.sqrta/gnsscore.P2_19)))
	gnsscore.SetBitU(buff, i+290, 2, toeCnt>>15)

	i = 8 * gnsscore.BDS_D1_SUBFRAME_BYTE * 2 /* subframe 3 */
	gnsscore.SetBitU(buff, i+15, 3, 3)
	setBitU2(buff, i+18, 8, i+30, 12, bdsTestSow+12)
	setBitU2(buff, i+42, 10, i+60, 5, toeCnt&0x7FFF)
	setBits2(buff, i+65, 17, i+90, 15, quantize(in.inc, p2_31pi))
	setBits2(buff, i+105, 7, i+120, 11, quantize(in.cic, gnsscore.P2_31))
	setBits2(buff, i+131, 11, i+150, 13, quantize(in.omegadot, p2_43pi))
	setBits2(buff, i+163, 9, i+180, 9, quantize(in.cis, gnsscore.P2_31))
	setBits2(buff, i+189, 13, i+210, 1, quantize(in.incDot, p2_43pi))
	setBits2(buff, i+211, 21, i+240, 11, quantize(in.omega0, p2_31pi))
	setBits2(buff, i+251, 11, i+270, 21, quantize(in.w, p2_31pi))

	return buff
}

func Test_decode_bds_d1_ephemeris(t *testing.T) {
	assert := assert.New(t)

	sid := gnsscore.Sid{Sat: 14, Code: gnsscore.CODE_BDS2_B1}
	buff := makeBdsD1Subframes()

	var e gnsscore.Ephemeris
	assert.True(gnsscore.DecodeBdsD1Ephemeris(buff, sid, &e))

	in := &bdsEphIn
	k := &e.Kepler
	p2_31pi := gnsscore.P2_31 * gnsscore.PI
	p2_43pi := gnsscore.P2_43 * gnsscore.PI

	assert.Equal(sid, e.Sid)
	assert.EqualValues(0, e.HealthBits)
	assert.Equal(float32(2.0), e.Ura)
	assert.EqualValues(bdsTestAodc, k.Iodc)
	assert.EqualValues(bdsTestAode, k.Iode)
	assert.EqualValues(gnsscore.BDS_FIT_INTERVAL_DEFAULT, e.FitInterval)
	assert.EqualValues(1, e.Valid)

	/* BDT to GPS time scale */
	assert.Equal(bdsTestToe+gnsscore.BDS_SECOND_TO_GPS_SECOND, e.Toe.Tow)
	assert.Equal(int16(bdsTestWn+gnsscore.BDS_WEEK_TO_GPS_WEEK), e.Toe.Wn)
	assert.Equal(e.Toe, k.Toc)

	assert.InDelta(in.m0, k.M0, p2_31pi)
	assert.InDelta(in.ecc, k.Ecc, gnsscore.P2_33)
	assert.InDelta(in.sqrta, k.Sqrta, gnsscore.P2_19)
	assert.InDelta(in.omega0, k.Omega0, p2_31pi)
	assert.InDelta(in.inc, k.Inc, p2_31pi)
	assert.InDelta(in.w, k.W, p2_31pi)
	assert.InDelta(in.incDot, k.IncDot, p2_43pi)
	assert.InDelta(in.omegadot, k.Omegadot, p2_43pi)
	assert.InDelta(in.dn, k.Dn, p2_43pi)
	assert.InDelta(in.cuc, k.Cuc, gnsscore.P2_31)
	assert.InDelta(in.cus, k.Cus, gnsscore.P2_31)
	assert.InDelta(in.crc, k.Crc, gnsscore.P2_6)
	assert.InDelta(in.crs, k.Crs, gnsscore.P2_6)
	assert.InDelta(in.cic, k.Cic, gnsscore.P2_31)
	assert.InDelta(in.cis, k.Cis, gnsscore.P2_31)
	assert.InDelta(in.af0, k.Af0, gnsscore.P2_33)
	assert.InDelta(in.af1, k.Af1, gnsscore.P2_50)
	assert.InDelta(in.af2, k.Af2, gnsscore.P2_66)
	assert.InDelta(in.tgd1, float64(k.Tgd[0]), 0.1e-9)
	assert.InDelta(in.tgd2, float64(k.Tgd[1]), 0.1e-9)
}

func Test_decode_bds_d1_ephemeris_rejects(t *testing.T) {
	assert := assert.New(t)

	var e gnsscore.Ephemeris

	/* not a BDS signal */
	buff := makeBdsD1Subframes()
	assert.False(gnsscore.DecodeBdsD1Ephemeris(buff,
		gnsscore.Sid{Sat: 14, Code: gnsscore.CODE_GPS_L1CA}, &e))

	sid := gnsscore.Sid{Sat: 14, Code: gnsscore.CODE_BDS2_B1}

	/* wrong subframe id */
	buff = makeBdsD1Subframes()
	gnsscore.SetBitU(buff, 8*gnsscore.BDS_D1_SUBFRAME_BYTE+15, 3, 4)
	assert.False(gnsscore.DecodeBdsD1Ephemeris(buff, sid, &e))

	/* subframes not consecutive */
	buff = makeBdsD1Subframes()
	i := 8 * gnsscore.BDS_D1_SUBFRAME_BYTE * 2
	setBitU2(buff, i+18, 8, i+30, 12, bdsTestSow+18)
	assert.False(gnsscore.DecodeBdsD1Ephemeris(buff, sid, &e))

	/* toc and toe from different data sets */
	buff = makeBdsD1Subframes()
	setBitU2(buff, 73, 9, 90, 8, uint32(bdsTestToe/8.0)+1)
	assert.False(gnsscore.DecodeBdsD1Ephemeris(buff, sid, &e))
}

func Test_decode_bds_d1_week_rollover(t *testing.T) {
	assert := assert.New(t)

	sid := gnsscore.Sid{Sat: 14, Code: gnsscore.CODE_BDS2_B1}

	/* toe just past the rollover, transmission still in the old week: the
	 * toe belongs to the next BDT week */
	buff := makeBdsD1Subframes()
	i := 0
	setBitU2(buff, i+18, 8, i+30, 12, 604782) /* subframe 1 SOW */
	i = 8 * gnsscore.BDS_D1_SUBFRAME_BYTE * 1
	setBitU2(buff, i+18, 8, i+30, 12, 604788)
	i = 8 * gnsscore.BDS_D1_SUBFRAME_BYTE * 2
	setBitU2(buff, i+18, 8, i+30, 12, 604794)

	/* toe = toc = 0 */
	setBitU2(buff, 73, 9, 90, 8, 0)
	gnsscore.SetBitU(buff, 8*gnsscore.BDS_D1_SUBFRAME_BYTE+290, 2, 0)
	i = 8 * gnsscore.BDS_D1_SUBFRAME_BYTE * 2
	setBitU2(buff, i+42, 10, i+60, 5, 0)

	var e gnsscore.Ephemeris
	assert.True(gnsscore.DecodeBdsD1Ephemeris(buff, sid, &e))
	assert.Equal(int16(bdsTestWn+1+gnsscore.BDS_WEEK_TO_GPS_WEEK), e.Toe.Wn)
	assert.Equal(0.0+gnsscore.BDS_SECOND_TO_GPS_SECOND, e.Toe.Tow)
}
