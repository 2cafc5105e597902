/*------------------------------------------------------------------------------
* gnsscore unit test driver : GLONASS code-phase biases
*-----------------------------------------------------------------------------*/

package gnsscore_test

import (
	"testing"

	"gnsscore"

	"github.com/stretchr/testify/assert"
)

func Test_glo_biases_equal(t *testing.T) {
	assert := assert.New(t)

	a := gnsscore.GloBiases{
		Mask:     gnsscore.RTCM1230_MASK_L1OF | gnsscore.RTCM1230_MASK_L2OF,
		L1ofBias: 0.02,
		L2ofBias: -0.04,
	}
	b := a
	assert.True(gnsscore.GloBiasesAreEqual(a, b))

	b.L1ofBias += 0.5 * gnsscore.FLOAT_EQUALITY_EPS
	assert.True(gnsscore.GloBiasesAreEqual(a, b))

	b = a
	b.L1ofBias += 1e-3
	assert.False(gnsscore.GloBiasesAreEqual(a, b))

	b = a
	b.Mask |= gnsscore.RTCM1230_MASK_L1P
	assert.False(gnsscore.GloBiasesAreEqual(a, b))
}

func Test_bias_mask_flags(t *testing.T) {
	assert := assert.New(t)

	mask := gnsscore.RTCM1230_MASK_L1OF | gnsscore.RTCM1230_MASK_L2P
	assert.True(gnsscore.IsBiasMaskFlagSet(mask, gnsscore.RTCM1230_MASK_L1OF))
	assert.True(gnsscore.IsBiasMaskFlagSet(mask, gnsscore.RTCM1230_MASK_L2P))
	assert.False(gnsscore.IsBiasMaskFlagSet(mask, gnsscore.RTCM1230_MASK_L1P))
	assert.False(gnsscore.IsBiasMaskFlagSet(mask,
		gnsscore.RTCM1230_MASK_L1OF|gnsscore.RTCM1230_MASK_L1P))
}

func Test_get_glonass_bias(t *testing.T) {
	assert := assert.New(t)

	/* base broadcasts all four biases: the OF biases win */
	biases := gnsscore.GloBiases{
		Mask: gnsscore.RTCM1230_MASK_L1OF | gnsscore.RTCM1230_MASK_L1P |
			gnsscore.RTCM1230_MASK_L2OF | gnsscore.RTCM1230_MASK_L2P,
		L1ofBias: 0.12,
		L1pBias:  0.34,
		L2ofBias: -0.56,
		L2pBias:  -0.78,
	}
	assert.InDelta(-0.12, gnsscore.GetGlonassBias(gnsscore.CODE_GLO_L1OF, biases), 1e-12)
	assert.InDelta(0.56, gnsscore.GetGlonassBias(gnsscore.CODE_GLO_L2OF, biases), 1e-12)

	/* L1OF and L2P only, like a base mimicking the GPS signal table */
	biases.Mask = gnsscore.RTCM1230_MASK_L1OF | gnsscore.RTCM1230_MASK_L2P
	assert.InDelta(-0.12, gnsscore.GetGlonassBias(gnsscore.CODE_GLO_L1OF, biases), 1e-12)
	assert.InDelta(0.78, gnsscore.GetGlonassBias(gnsscore.CODE_GLO_L2OF, biases), 1e-12)

	/* P-code fallback on L1 as well */
	biases.Mask = gnsscore.RTCM1230_MASK_L1P | gnsscore.RTCM1230_MASK_L2OF
	assert.InDelta(-0.34, gnsscore.GetGlonassBias(gnsscore.CODE_GLO_L1OF, biases), 1e-12)
	assert.InDelta(0.56, gnsscore.GetGlonassBias(gnsscore.CODE_GLO_L2OF, biases), 1e-12)

	/* nothing broadcast: bias taken as zero */
	biases.Mask = 0
	assert.Equal(0.0, gnsscore.GetGlonassBias(gnsscore.CODE_GLO_L1OF, biases))
	assert.Equal(0.0, gnsscore.GetGlonassBias(gnsscore.CODE_GLO_L2OF, biases))

	/* non FDMA codes carry no GLONASS bias */
	assert.Equal(0.0, gnsscore.GetGlonassBias(gnsscore.CODE_GPS_L1CA, biases))
}
