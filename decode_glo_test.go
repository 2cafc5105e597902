/*------------------------------------------------------------------------------
* gnsscore unit test driver : GLONASS navigation string decoder
*-----------------------------------------------------------------------------*/

package gnsscore_test

import (
	"testing"

	"gnsscore"

	"github.com/stretchr/testify/assert"
)

const gloDecodeTol = 1e-6

/* strings collected from a Novatel GLORAWFRAME log, slot 18, litera -3:
   01074396999b05c3a850b5 021760a5256204d9c15f66 0380269d60899a6d0e3123
   04865d1cc0000000344918 050d100000000340000895 */
var gloStringsIn = [5]gnsscore.GloString{
	{Word: [3]uint32{0xc3a850b5, 0x96999b05, 0x010743}},
	{Word: [3]uint32{0xd9c15f66, 0xa5256204, 0x021760}},
	{Word: [3]uint32{0x6d0e3123, 0x9d60899a, 0x038026}},
	{Word: [3]uint32{0x00344918, 0x1cc00000, 0x04865d}},
	{Word: [3]uint32{0x40000895, 0x3, 0x050d10}},
}

func Test_extract_glo_word(t *testing.T) {
	assert := assert.New(t)

	str := gnsscore.GloString{Word: [3]uint32{5, 5, 5}}
	assert.EqualValues(5, gnsscore.ExtractWordGlo(&str, 1, 32))
	assert.EqualValues(5, gnsscore.ExtractWordGlo(&str, 33, 3))
	assert.EqualValues(5, gnsscore.ExtractWordGlo(&str, 65, 3))

	str = gnsscore.GloString{Word: [3]uint32{0x12345678, 0xdeadbeef, 0x87654321}}
	assert.EqualValues(0x12345678, gnsscore.ExtractWordGlo(&str, 1, 32))
	assert.EqualValues(0xdeadbeef, gnsscore.ExtractWordGlo(&str, 33, 32))
	assert.EqualValues(0x87654321, gnsscore.ExtractWordGlo(&str, 65, 32))
	assert.EqualValues(0xd, gnsscore.ExtractWordGlo(&str, 49, 4))

	/* reads spanning word boundaries */
	str = gnsscore.GloString{Word: [3]uint32{0xbeef0000, 0x4321dead, 0x00008765}}
	assert.EqualValues(0xdeadbeef, gnsscore.ExtractWordGlo(&str, 17, 32))
	assert.EqualValues(0x87654321, gnsscore.ExtractWordGlo(&str, 49, 32))
	assert.EqualValues(0x4321, gnsscore.ExtractWordGlo(&str, 49, 16))
}

func Test_error_correction_glo(t *testing.T) {
	assert := assert.New(t)

	testCases := []struct {
		str gnsscore.GloString
		ret int
	}{
		/* a full GLO nav frame received from a Novatel receiver, all
		   strings must come back clean */
		{gnsscore.GloString{Word: [3]uint32{0xc90cfb3e, 0x9743a301, 0x010749}}, 0},
		{gnsscore.GloString{Word: [3]uint32{0xdd39f5fc, 0x24542d0c, 0x021760}}, 0},
		{gnsscore.GloString{Word: [3]uint32{0x653bc7e9, 0x1e8ead92, 0x038006}}, 0},
		{gnsscore.GloString{Word: [3]uint32{0x60342dfc, 0x41000002, 0x0481c7}}, 0},
		{gnsscore.GloString{Word: [3]uint32{0x40000895, 0x00000003, 0x050d10}}, 0},
		{gnsscore.GloString{Word: [3]uint32{0x530a7ecf, 0x059c4415, 0x06b082}}, 0},
		{gnsscore.GloString{Word: [3]uint32{0xfd94beb6, 0x7a577e97, 0x070f46}}, 0},
		{gnsscore.GloString{Word: [3]uint32{0xba02de6f, 0x988e6814, 0x08b101}}, 0},
		{gnsscore.GloString{Word: [3]uint32{0x12064831, 0x87767698, 0x09e1a6}}, 0},
		{gnsscore.GloString{Word: [3]uint32{0xaf870be5, 0x54ef2617, 0x0ab286}}, 0},
		{gnsscore.GloString{Word: [3]uint32{0x0f06ba41, 0x9a3f2698, 0x0b8f7c}}, 0},
		{gnsscore.GloString{Word: [3]uint32{0x2f012204, 0xf0c3c81a, 0x0cb309}}, 0},
		{gnsscore.GloString{Word: [3]uint32{0x1c858601, 0x10c47e98, 0x0da065}}, 0},
		{gnsscore.GloString{Word: [3]uint32{0x5205980b, 0xf49abc1a, 0x0eb40e}}, 0},
		{gnsscore.GloString{Word: [3]uint32{0x15454437, 0x2504e698, 0x0f8c09}}, 0},
		/* string 1 from another frame with single-bit errors introduced,
		   the return value points at the flipped bit */
		{gnsscore.GloString{Word: [3]uint32{0xc90cfb81, 0x9743a301, 0x010748}}, 0},
		{gnsscore.GloString{Word: [3]uint32{0xc90cfb81, 0x9743a301, 0x110748}}, 85},
		{gnsscore.GloString{Word: [3]uint32{0xc90cfb81, 0x1743a301, 0x010748}}, 64},
		{gnsscore.GloString{Word: [3]uint32{0x490cfb81, 0x9743a301, 0x010748}}, 32},
		{gnsscore.GloString{Word: [3]uint32{0xc90cfb81, 0x9743a300, 0x010748}}, 33},
		{gnsscore.GloString{Word: [3]uint32{0xc90cfb81, 0x9743a301, 0x010749}}, 65},
		{gnsscore.GloString{Word: [3]uint32{0xc90cfb81, 0x9743a301, 0x000748}}, 81},
		/* multiple errors are detected but not correctable */
		{gnsscore.GloString{Word: [3]uint32{0xc90c3b81, 0x9743a301, 0x010748}}, -1},
		{gnsscore.GloString{Word: [3]uint32{0xc90cfb81, 0x974fa301, 0x010748}}, -1},
		{gnsscore.GloString{Word: [3]uint32{0xc90cfb81, 0x9743a301, 0x01074b}}, -1},
		{gnsscore.GloString{Word: [3]uint32{0xc90cfb81, 0x9743a301, 0x010744}}, -1},
		{gnsscore.GloString{Word: [3]uint32{0xc90cfb81, 0x9aaaa301, 0x010748}}, -1},
		{gnsscore.GloString{Word: [3]uint32{0xc90cfb81, 0x9743a301, 0x010748}}, 0},
	}

	for i, tc := range testCases {
		assert.Equal(tc.ret, gnsscore.ErrorDetectionGlo(&tc.str), "case %d", i)
	}
}

func Test_decode_ephemeris_glo(t *testing.T) {
	assert := assert.New(t)

	var eph gnsscore.Ephemeris
	ok := gnsscore.DecodeGloEphemeris(&gloStringsIn, gnsscore.SID_UNKNOWN,
		nil, &eph)
	assert.True(ok)

	/* reference values from the matching Novatel GLOEPHEMERIS record */
	assert.InDelta(-1.4453039062500000e+07, eph.Glo.Pos[0], gloDecodeTol)
	assert.InDelta(-6.9681713867187500e+06, eph.Glo.Pos[1], gloDecodeTol)
	assert.InDelta(1.9873773925781250e+07, eph.Glo.Pos[2], gloDecodeTol)
	assert.InDelta(-1.4125013351440430e+03, eph.Glo.Vel[0], gloDecodeTol)
	assert.InDelta(-2.3216266632080078e+03, eph.Glo.Vel[1], gloDecodeTol)
	assert.InDelta(-1.8360681533813477e+03, eph.Glo.Vel[2], gloDecodeTol)
	assert.InDelta(0.0, eph.Glo.Acc[0], gloDecodeTol)
	assert.InDelta(0.0, eph.Glo.Acc[1], gloDecodeTol)
	assert.InDelta(-2.79396772384643555e-06, eph.Glo.Acc[2], gloDecodeTol)
	assert.InDelta(-9.71024855971336365e-05, eph.Glo.Tau, gloDecodeTol)
	assert.InDelta(1.81898940354585648e-12, eph.Glo.Gamma, gloDecodeTol)
	assert.InDelta(5.587935448e-09, eph.Glo.DTau, gloDecodeTol)

	assert.EqualValues(18, eph.Sid.Sat)
	assert.EqualValues(108, eph.Glo.Iod)
	assert.EqualValues(1, eph.Valid)
	assert.EqualValues(0, eph.HealthBits)
	assert.Equal(float32(1.0), eph.Ura)

	/* tb 53100 s on day 104 of cycle 6 is 2016-04-13 14:45:00 GLO time */
	assert.Equal(int16(1892), eph.Toe.Wn)
	assert.InDelta(301517.0, eph.Toe.Tow, gloDecodeTol)
}

func Test_decode_ephemeris_glo_bad_string(t *testing.T) {
	assert := assert.New(t)

	corrupted := gloStringsIn
	corrupted[2].Word[1] ^= 0x00010010

	var eph gnsscore.Ephemeris
	ok := gnsscore.DecodeGloEphemeris(&corrupted, gnsscore.SID_UNKNOWN,
		nil, &eph)
	assert.False(ok)
	assert.EqualValues(0, eph.Valid)
}
