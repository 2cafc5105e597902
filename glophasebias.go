/*------------------------------------------------------------------------------
* glophasebias.go : GLONASS code-phase biases from RTCM message 1230
*
* reference :
*     [1] RTCM Standard 10403.3, message type 1230 GLONASS L1 and L2
*         Code-Phase Biases
*-----------------------------------------------------------------------------*/
package gnsscore

import "math"

const (
	FLOAT_EQUALITY_EPS = 1e-12

	MSG_GLO_BIASES_MULTIPLIER = 50.0

	/* signal mask bits of RTCM message 1230 (ref [1]) */
	RTCM1230_MASK_L2P  uint8 = 1 << 0
	RTCM1230_MASK_L2OF uint8 = 1 << 1
	RTCM1230_MASK_L1P  uint8 = 1 << 2
	RTCM1230_MASK_L1OF uint8 = 1 << 3
)

// GloBiases holds the GLONASS FDMA code-phase biases of one receiver in
// meters, unquantized. Mask bits flag which biases are present.
type GloBiases struct {
	Mask     uint8
	L1ofBias float64
	L1pBias  float64
	L2ofBias float64
	L2pBias  float64
}

// receiverGloBiases is the bias set of the local receiver, all zero by
// calibration.
var receiverGloBiases = GloBiases{Mask: 255}

// GloBiasesAreEqual compares two bias sets with a fixed epsilon on the bias
// values and an exact match on the mask.
func GloBiasesAreEqual(a, b GloBiases) bool {
	if a.Mask != b.Mask {
		return false
	}
	if math.Abs(a.L1ofBias-b.L1ofBias) > FLOAT_EQUALITY_EPS {
		return false
	}
	if math.Abs(a.L2ofBias-b.L2ofBias) > FLOAT_EQUALITY_EPS {
		return false
	}
	if math.Abs(a.L1pBias-b.L1pBias) > FLOAT_EQUALITY_EPS {
		return false
	}
	if math.Abs(a.L2pBias-b.L2pBias) > FLOAT_EQUALITY_EPS {
		return false
	}
	return true
}

// IsBiasMaskFlagSet reports whether all bits of flag are set in msgFlags.
func IsBiasMaskFlagSet(msgFlags, flag uint8) bool {
	return msgFlags&flag == flag
}

/* GetGlonassBias ------------------------------------------------------------
* compute the single difference of the local receiver's GLONASS code-phase
* bias against a base receiver's broadcast biases for one code
* args   : Code      code   I   GLONASS code (L1OF or L2OF)
*          GloBiases biases I   base receiver biases from RTCM 1230
* return : differential bias (m), rover minus base
* notes  : prefers the OF bias for each frequency and falls back to the
*          P-code bias; some bases broadcast L1OF and L2P only, mimicking the
*          GPS signal table, and others leave mask bits unset entirely, in
*          which case the bias is taken as zero
*-----------------------------------------------------------------------------*/
func GetGlonassBias(code Code, biases GloBiases) float64 {
	if code == CODE_GLO_L1OF {
		if IsBiasMaskFlagSet(biases.Mask, RTCM1230_MASK_L1OF) {
			return receiverGloBiases.L1ofBias - biases.L1ofBias
		}
		if IsBiasMaskFlagSet(biases.Mask, RTCM1230_MASK_L1P) {
			return receiverGloBiases.L1ofBias - biases.L1pBias
		}
	}
	if code == CODE_GLO_L2OF {
		if IsBiasMaskFlagSet(biases.Mask, RTCM1230_MASK_L2OF) {
			return receiverGloBiases.L2ofBias - biases.L2ofBias
		}
		if IsBiasMaskFlagSet(biases.Mask, RTCM1230_MASK_L2P) {
			return receiverGloBiases.L2ofBias - biases.L2pBias
		}
	}
	return 0.0
}
