/*------------------------------------------------------------------------------
* signal.go : GNSS signal identifiers
*
* notes  : a signal is identified by the (code,sat) pair. sat is the PRN for
*          GPS/GAL/BDS/QZS/SBAS and the orbital slot 1..24 for GLONASS; the
*          GLONASS frequency channel number comes from the FCN map
*-----------------------------------------------------------------------------*/
package gnsscore

import "fmt"

/* constellations */
type Constellation int

const (
	CONSTELLATION_INVALID Constellation = iota - 1
	CONSTELLATION_GPS
	CONSTELLATION_SBAS
	CONSTELLATION_GLO
	CONSTELLATION_BDS
	CONSTELLATION_QZS
	CONSTELLATION_GAL
	CONSTELLATION_COUNT
)

/* signal codes */
type Code int

const (
	CODE_INVALID   Code = -1
	CODE_GPS_L1CA  Code = 0  /* GPS L1CA: BPSK(1) */
	CODE_GPS_L2CM  Code = 1  /* GPS L2C: 2 x BPSK(0.5) */
	CODE_SBAS_L1CA Code = 2  /* SBAS L1: BPSK(1) */
	CODE_GLO_L1OF  Code = 3  /* GLONASS L1OF: FDMA BPSK(0.5) */
	CODE_GLO_L2OF  Code = 4  /* GLONASS L2OF: FDMA BPSK(0.5) */
	CODE_GPS_L1P   Code = 5  /* GPS L1P(Y): encrypted BPSK(10) */
	CODE_GPS_L2P   Code = 6  /* GPS L2P(Y): encrypted BPSK(10) */
	CODE_GPS_L2CL  Code = 7
	CODE_GPS_L2CX  Code = 8
	CODE_GPS_L5I   Code = 9 /* GPS L5: QPSK(10) */
	CODE_GPS_L5Q   Code = 10
	CODE_GPS_L5X   Code = 11
	CODE_BDS2_B1   Code = 12 /* BDS2 B1I: BPSK(2) */
	CODE_BDS2_B2   Code = 13 /* BDS2 B2I: BPSK(2) */
	CODE_GAL_E1B   Code = 14 /* Galileo E1: CBOC(1,1) */
	CODE_GAL_E1C   Code = 15
	CODE_GAL_E1X   Code = 16
	CODE_GAL_E6B   Code = 17 /* Galileo E6: BPSK(5) */
	CODE_GAL_E6C   Code = 18
	CODE_GAL_E6X   Code = 19
	CODE_GAL_E7I   Code = 20 /* Galileo E5b: QPSK(10) */
	CODE_GAL_E7Q   Code = 21
	CODE_GAL_E7X   Code = 22
	CODE_GAL_E8I   Code = 23 /* Galileo E5 AltBOC(15,10) */
	CODE_GAL_E8Q   Code = 24
	CODE_GAL_E8X   Code = 25
	CODE_GAL_E5I   Code = 26 /* Galileo E5a: QPSK(10) */
	CODE_GAL_E5Q   Code = 27
	CODE_GAL_E5X   Code = 28
	CODE_GLO_L1P   Code = 29 /* GLONASS L1P: encrypted */
	CODE_GLO_L2P   Code = 30 /* GLONASS L2P: encrypted */
	CODE_QZS_L1CA  Code = 31 /* QZSS L1CA: BPSK(1) */
	CODE_QZS_L1CI  Code = 32 /* QZSS L1C: TM-BOC */
	CODE_QZS_L1CQ  Code = 33
	CODE_QZS_L1CX  Code = 34
	CODE_QZS_L2CM  Code = 35 /* QZSS L2C: 2 x BPSK(0.5) */
	CODE_QZS_L2CL  Code = 36
	CODE_QZS_L2CX  Code = 37
	CODE_QZS_L5I   Code = 38 /* QZSS L5: QPSK(10) */
	CODE_QZS_L5Q   Code = 39
	CODE_QZS_L5X   Code = 40
	CODE_SBAS_L5I  Code = 41 /* SBAS L5 */
	CODE_SBAS_L5Q  Code = 42
	CODE_SBAS_L5X  Code = 43
	CODE_BDS3_B1CI Code = 44 /* BDS3 B1C: TM-BOC */
	CODE_BDS3_B1CQ Code = 45
	CODE_BDS3_B1CX Code = 46
	CODE_BDS3_B5I  Code = 47 /* BDS3 B2a: QPSK(10) */
	CODE_BDS3_B5Q  Code = 48
	CODE_BDS3_B5X  Code = 49
	CODE_BDS3_B7I  Code = 50 /* BDS3 B2b: QPSK(10) */
	CODE_BDS3_B7Q  Code = 51
	CODE_BDS3_B7X  Code = 52
	CODE_BDS3_B3I  Code = 53 /* BDS3 B3I: QPSK(10) */
	CODE_BDS3_B3Q  Code = 54
	CODE_BDS3_B3X  Code = 55
	CODE_GPS_L1CI  Code = 56 /* GPS L1C: TM-BOC */
	CODE_GPS_L1CQ  Code = 57
	CODE_GPS_L1CX  Code = 58
	CODE_AUX_GPS   Code = 59 /* auxiliary antenna signals */
	CODE_AUX_SBAS  Code = 60
	CODE_AUX_GAL   Code = 61
	CODE_AUX_QZS   Code = 62
	CODE_AUX_BDS   Code = 63
	CODE_COUNT     Code = 64
)

/* satellite counts and first PRNs per constellation */
const (
	NUM_SATS_GPS  = 32
	NUM_SATS_SBAS = 19
	NUM_SATS_GLO  = 28
	NUM_SATS_BDS  = 37
	NUM_SATS_GAL  = 50
	NUM_SATS_QZS  = 10

	NUM_SATS = NUM_SATS_GPS + NUM_SATS_SBAS + NUM_SATS_GLO + NUM_SATS_BDS +
		NUM_SATS_QZS + NUM_SATS_GAL

	MAX_NUM_SATS = NUM_SATS_GAL /* largest per-constellation sat count */

	GPS_FIRST_PRN  = 1
	SBAS_FIRST_PRN = 120
	GLO_FIRST_PRN  = 1
	BDS_FIRST_PRN  = 1
	GAL_FIRST_PRN  = 1
	QZS_FIRST_PRN  = 193
)

/* GLONASS frequency channel numbers, stored shifted by GLO_FCN_OFFSET so that
   slot 1..14 maps FCN -7..+6 */
const (
	GLO_MAX_FCN     = 14
	GLO_MIN_FCN     = 1
	GLO_FCN_UNKNOWN = 0
	GLO_FCN_OFFSET  = 8

	NUM_GLO_ORBIT_SLOTS = 24 /* valid GLONASS orbital slots */
)

/* GNSS signal identifier */
type Sid struct {
	Sat  uint16
	Code Code
}

var SID_UNKNOWN = Sid{0, CODE_INVALID}

/* per-code signal properties */
type codeTableElement struct {
	constellation Constellation
	satCount      uint16
	satStart      uint16
	str           string
	carrFreq      float64
}

var code_table = [CODE_COUNT]codeTableElement{
	CODE_GPS_L1CA:  {CONSTELLATION_GPS, NUM_SATS_GPS, GPS_FIRST_PRN, "GPS L1CA", FREQ_GPS_L1},
	CODE_GPS_L2CM:  {CONSTELLATION_GPS, NUM_SATS_GPS, GPS_FIRST_PRN, "GPS L2CM", FREQ_GPS_L2},
	CODE_SBAS_L1CA: {CONSTELLATION_SBAS, NUM_SATS_SBAS, SBAS_FIRST_PRN, "SBAS L1", FREQ_SBAS_L1},
	CODE_GLO_L1OF:  {CONSTELLATION_GLO, NUM_SATS_GLO, GLO_FIRST_PRN, "GLO L1OF", FREQ_GLO_L1},
	CODE_GLO_L2OF:  {CONSTELLATION_GLO, NUM_SATS_GLO, GLO_FIRST_PRN, "GLO L2OF", FREQ_GLO_L2},
	CODE_GPS_L1P:   {CONSTELLATION_GPS, NUM_SATS_GPS, GPS_FIRST_PRN, "GPS L1P", FREQ_GPS_L1},
	CODE_GPS_L2P:   {CONSTELLATION_GPS, NUM_SATS_GPS, GPS_FIRST_PRN, "GPS L2P", FREQ_GPS_L2},
	CODE_GPS_L2CL:  {CONSTELLATION_GPS, NUM_SATS_GPS, GPS_FIRST_PRN, "GPS L2CL", FREQ_GPS_L2},
	CODE_GPS_L2CX:  {CONSTELLATION_GPS, NUM_SATS_GPS, GPS_FIRST_PRN, "GPS L2C", FREQ_GPS_L2},
	CODE_GPS_L5I:   {CONSTELLATION_GPS, NUM_SATS_GPS, GPS_FIRST_PRN, "GPS L5I", FREQ_GPS_L5},
	CODE_GPS_L5Q:   {CONSTELLATION_GPS, NUM_SATS_GPS, GPS_FIRST_PRN, "GPS L5Q", FREQ_GPS_L5},
	CODE_GPS_L5X:   {CONSTELLATION_GPS, NUM_SATS_GPS, GPS_FIRST_PRN, "GPS L5", FREQ_GPS_L5},
	CODE_BDS2_B1:   {CONSTELLATION_BDS, NUM_SATS_BDS, BDS_FIRST_PRN, "BDS B1", FREQ_BDS_B1},
	CODE_BDS2_B2:   {CONSTELLATION_BDS, NUM_SATS_BDS, BDS_FIRST_PRN, "BDS B2", FREQ_BDS_B2},
	CODE_GAL_E1B:   {CONSTELLATION_GAL, NUM_SATS_GAL, GAL_FIRST_PRN, "GAL E1B", FREQ_GAL_E1},
	CODE_GAL_E1C:   {CONSTELLATION_GAL, NUM_SATS_GAL, GAL_FIRST_PRN, "GAL E1C", FREQ_GAL_E1},
	CODE_GAL_E1X:   {CONSTELLATION_GAL, NUM_SATS_GAL, GAL_FIRST_PRN, "GAL E1", FREQ_GAL_E1},
	CODE_GAL_E6B:   {CONSTELLATION_GAL, NUM_SATS_GAL, GAL_FIRST_PRN, "GAL E6B", FREQ_GAL_E6},
	CODE_GAL_E6C:   {CONSTELLATION_GAL, NUM_SATS_GAL, GAL_FIRST_PRN, "GAL E6C", FREQ_GAL_E6},
	CODE_GAL_E6X:   {CONSTELLATION_GAL, NUM_SATS_GAL, GAL_FIRST_PRN, "GAL E6", FREQ_GAL_E6},
	CODE_GAL_E7I:   {CONSTELLATION_GAL, NUM_SATS_GAL, GAL_FIRST_PRN, "GAL E5bI", FREQ_GAL_E5B},
	CODE_GAL_E7Q:   {CONSTELLATION_GAL, NUM_SATS_GAL, GAL_FIRST_PRN, "GAL E5bQ", FREQ_GAL_E5B},
	CODE_GAL_E7X:   {CONSTELLATION_GAL, NUM_SATS_GAL, GAL_FIRST_PRN, "GAL E5b", FREQ_GAL_E5B},
	CODE_GAL_E8I:   {CONSTELLATION_GAL, NUM_SATS_GAL, GAL_FIRST_PRN, "GAL E8I", FREQ_GAL_E5X},
	CODE_GAL_E8Q:   {CONSTELLATION_GAL, NUM_SATS_GAL, GAL_FIRST_PRN, "GAL E8Q", FREQ_GAL_E5X},
	CODE_GAL_E8X:   {CONSTELLATION_GAL, NUM_SATS_GAL, GAL_FIRST_PRN, "GAL E8", FREQ_GAL_E5X},
	CODE_GAL_E5I:   {CONSTELLATION_GAL, NUM_SATS_GAL, GAL_FIRST_PRN, "GAL E5aI", FREQ_GAL_E5A},
	CODE_GAL_E5Q:   {CONSTELLATION_GAL, NUM_SATS_GAL, GAL_FIRST_PRN, "GAL E5aQ", FREQ_GAL_E5A},
	CODE_GAL_E5X:   {CONSTELLATION_GAL, NUM_SATS_GAL, GAL_FIRST_PRN, "GAL E5a", FREQ_GAL_E5A},
	CODE_GLO_L1P:   {CONSTELLATION_GLO, NUM_SATS_GLO, GLO_FIRST_PRN, "GLO L1P", FREQ_GLO_L1},
	CODE_GLO_L2P:   {CONSTELLATION_GLO, NUM_SATS_GLO, GLO_FIRST_PRN, "GLO L2P", FREQ_GLO_L2},
	CODE_QZS_L1CA:  {CONSTELLATION_QZS, NUM_SATS_QZS, QZS_FIRST_PRN, "QZS L1CA", FREQ_QZS_L1},
	CODE_QZS_L1CI:  {CONSTELLATION_QZS, NUM_SATS_QZS, QZS_FIRST_PRN, "QZS L1CI", FREQ_QZS_L1},
	CODE_QZS_L1CQ:  {CONSTELLATION_QZS, NUM_SATS_QZS, QZS_FIRST_PRN, "QZS L1CQ", FREQ_QZS_L1},
	CODE_QZS_L1CX:  {CONSTELLATION_QZS, NUM_SATS_QZS, QZS_FIRST_PRN, "QZS L1C", FREQ_QZS_L1},
	CODE_QZS_L2CM:  {CONSTELLATION_QZS, NUM_SATS_QZS, QZS_FIRST_PRN, "QZS L2CM", FREQ_QZS_L2},
	CODE_QZS_L2CL:  {CONSTELLATION_QZS, NUM_SATS_QZS, QZS_FIRST_PRN, "QZS L2CL", FREQ_QZS_L2},
	CODE_QZS_L2CX:  {CONSTELLATION_QZS, NUM_SATS_QZS, QZS_FIRST_PRN, "QZS L2C", FREQ_QZS_L2},
	CODE_QZS_L5I:   {CONSTELLATION_QZS, NUM_SATS_QZS, QZS_FIRST_PRN, "QZS L5I", FREQ_QZS_L5},
	CODE_QZS_L5Q:   {CONSTELLATION_QZS, NUM_SATS_QZS, QZS_FIRST_PRN, "QZS L5Q", FREQ_QZS_L5},
	CODE_QZS_L5X:   {CONSTELLATION_QZS, NUM_SATS_QZS, QZS_FIRST_PRN, "QZS L5", FREQ_QZS_L5},
	CODE_SBAS_L5I:  {CONSTELLATION_SBAS, NUM_SATS_SBAS, SBAS_FIRST_PRN, "SBAS L5I", FREQ_SBAS_L5},
	CODE_SBAS_L5Q:  {CONSTELLATION_SBAS, NUM_SATS_SBAS, SBAS_FIRST_PRN, "SBAS L5Q", FREQ_SBAS_L5},
	CODE_SBAS_L5X:  {CONSTELLATION_SBAS, NUM_SATS_SBAS, SBAS_FIRST_PRN, "SBAS L5", FREQ_SBAS_L5},
	CODE_BDS3_B1CI: {CONSTELLATION_BDS, NUM_SATS_BDS, BDS_FIRST_PRN, "BDS3 B1CI", FREQ_BDS_B1C},
	CODE_BDS3_B1CQ: {CONSTELLATION_BDS, NUM_SATS_BDS, BDS_FIRST_PRN, "BDS3 B1CQ", FREQ_BDS_B1C},
	CODE_BDS3_B1CX: {CONSTELLATION_BDS, NUM_SATS_BDS, BDS_FIRST_PRN, "BDS3 B1C", FREQ_BDS_B1C},
	CODE_BDS3_B5I:  {CONSTELLATION_BDS, NUM_SATS_BDS, BDS_FIRST_PRN, "BDS3 B5I", FREQ_BDS_B2A},
	CODE_BDS3_B5Q:  {CONSTELLATION_BDS, NUM_SATS_BDS, BDS_FIRST_PRN, "BDS3 B5Q", FREQ_BDS_B2A},
	CODE_BDS3_B5X:  {CONSTELLATION_BDS, NUM_SATS_BDS, BDS_FIRST_PRN, "BDS3 B5", FREQ_BDS_B2A},
	CODE_BDS3_B7I:  {CONSTELLATION_BDS, NUM_SATS_BDS, BDS_FIRST_PRN, "BDS3 B7I", FREQ_BDS_B2},
	CODE_BDS3_B7Q:  {CONSTELLATION_BDS, NUM_SATS_BDS, BDS_FIRST_PRN, "BDS3 B7Q", FREQ_BDS_B2},
	CODE_BDS3_B7X:  {CONSTELLATION_BDS, NUM_SATS_BDS, BDS_FIRST_PRN, "BDS3 B7", FREQ_BDS_B2},
	CODE_BDS3_B3I:  {CONSTELLATION_BDS, NUM_SATS_BDS, BDS_FIRST_PRN, "BDS3 B3I", FREQ_BDS_B3},
	CODE_BDS3_B3Q:  {CONSTELLATION_BDS, NUM_SATS_BDS, BDS_FIRST_PRN, "BDS3 B3Q", FREQ_BDS_B3},
	CODE_BDS3_B3X:  {CONSTELLATION_BDS, NUM_SATS_BDS, BDS_FIRST_PRN, "BDS3 B3", FREQ_BDS_B3},
	CODE_GPS_L1CI:  {CONSTELLATION_GPS, NUM_SATS_GPS, GPS_FIRST_PRN, "GPS L1CI", FREQ_GPS_L1},
	CODE_GPS_L1CQ:  {CONSTELLATION_GPS, NUM_SATS_GPS, GPS_FIRST_PRN, "GPS L1CQ", FREQ_GPS_L1},
	CODE_GPS_L1CX:  {CONSTELLATION_GPS, NUM_SATS_GPS, GPS_FIRST_PRN, "GPS L1C", FREQ_GPS_L1},
	CODE_AUX_GPS:   {CONSTELLATION_GPS, NUM_SATS_GPS, GPS_FIRST_PRN, "GPS AUX", FREQ_GPS_L1},
	CODE_AUX_SBAS:  {CONSTELLATION_SBAS, NUM_SATS_SBAS, SBAS_FIRST_PRN, "SBAS AUX", FREQ_SBAS_L1},
	CODE_AUX_GAL:   {CONSTELLATION_GAL, NUM_SATS_GAL, GAL_FIRST_PRN, "GAL AUX", FREQ_GAL_E1},
	CODE_AUX_QZS:   {CONSTELLATION_QZS, NUM_SATS_QZS, QZS_FIRST_PRN, "QZS AUX", FREQ_QZS_L1},
	CODE_AUX_BDS:   {CONSTELLATION_BDS, NUM_SATS_BDS, BDS_FIRST_PRN, "BDS AUX", FREQ_BDS_B1},
}

/* code validity ------------------------------------------------------------------*/
func CodeValid(code Code) bool {
	return code > CODE_INVALID && code < CODE_COUNT
}

func ConstellationValid(cons Constellation) bool {
	return cons > CONSTELLATION_INVALID && cons < CONSTELLATION_COUNT
}

/* sid validity: code valid and sat within the code's PRN range --------------------*/
func SidValid(sid Sid) bool {
	if !CodeValid(sid.Code) {
		return false
	}
	e := &code_table[sid.Code]
	return sid.Sat >= e.satStart && sid.Sat < e.satStart+e.satCount
}

/* map code to constellation --------------------------------------------------------*/
func CodeToConstellation(code Code) Constellation {
	if !CodeValid(code) {
		return CONSTELLATION_INVALID
	}
	return code_table[code].constellation
}

func SidToConstellation(sid Sid) Constellation {
	return CodeToConstellation(sid.Code)
}

/* number of satellites in a constellation -------------------------------------------*/
func ConstellationToSatCount(cons Constellation) uint16 {
	switch cons {
	case CONSTELLATION_GPS:
		return NUM_SATS_GPS
	case CONSTELLATION_SBAS:
		return NUM_SATS_SBAS
	case CONSTELLATION_GLO:
		return NUM_SATS_GLO
	case CONSTELLATION_BDS:
		return NUM_SATS_BDS
	case CONSTELLATION_QZS:
		return NUM_SATS_QZS
	case CONSTELLATION_GAL:
		return NUM_SATS_GAL
	}
	return 0
}

/* number of signals (satellites) for a code ------------------------------------------*/
func CodeToSigCount(code Code) uint16 {
	if !CodeValid(code) {
		return 0
	}
	return code_table[code].satCount
}

/* stable zero based satellite index within a code -------------------------------------
* return : index in [0, sat_count) or -1 for an invalid sid
*-----------------------------------------------------------------------------*/
func SidToCodeIndex(sid Sid) int {
	if !SidValid(sid) {
		return -1
	}
	return int(sid.Sat - code_table[sid.Code].satStart)
}

/* construct a sid from a code and a zero based satellite index -------------------------*/
func SidFromCodeIndex(code Code, index uint16) Sid {
	return Sid{code_table[code].satStart + index, code}
}

/* center carrier frequency of a signal ---------------------------------------------------
* notes  : GLONASS FDMA signals consult the default FCN map; an unknown FCN
*          yields the band center frequency
*-----------------------------------------------------------------------------*/
func SidToCarrFreq(sid Sid) float64 {
	if !CodeValid(sid.Code) {
		return 0
	}
	if sid.Code == CODE_GLO_L1OF || sid.Code == CODE_GLO_L2OF {
		fcn := DefaultGloMap.GetFcn(sid.Sat)
		if fcn == GLO_FCN_UNKNOWN {
			return code_table[sid.Code].carrFreq
		}
		if sid.Code == CODE_GLO_L1OF {
			return FREQ_GLO_L1 + float64(int(fcn)-GLO_FCN_OFFSET)*DFRQ_GLO_L1
		}
		return FREQ_GLO_L2 + float64(int(fcn)-GLO_FCN_OFFSET)*DFRQ_GLO_L2
	}
	return code_table[sid.Code].carrFreq
}

/* carrier wavelength in vacuum (m) ----------------------------------------------------*/
func SidToLambda(sid Sid) float64 {
	f := SidToCarrFreq(sid)
	if f == 0 {
		return 0
	}
	return CLIGHT / f
}

/* codes treated as equivalent for observation matching ---------------------------------*/
func CodeEquiv(a, b Code) bool {
	if a == b {
		return true
	}
	if (a == CODE_GPS_L2CM && b == CODE_GPS_L2P) || (a == CODE_GPS_L2P && b == CODE_GPS_L2CM) {
		return true
	}
	if (a == CODE_GPS_L1P && b == CODE_GPS_L1CA) || (a == CODE_GPS_L1CA && b == CODE_GPS_L1P) {
		return true
	}
	return false
}

/* sid ordering: by constellation, then code, then sat -----------------------------------*/
func SidCompare(a, b Sid) int {
	if SidToConstellation(a) != SidToConstellation(b) {
		return int(SidToConstellation(a)) - int(SidToConstellation(b))
	}
	if a.Code != b.Code {
		return int(a.Code) - int(b.Code)
	}
	return int(a.Sat) - int(b.Sat)
}

func SidIsEqual(a, b Sid) bool {
	return SidCompare(a, b) == 0
}

/* code and constellation labels -----------------------------------------------------------*/
func CodeToString(code Code) string {
	if !CodeValid(code) {
		return "?"
	}
	return code_table[code].str
}

func ConstellationToString(cons Constellation) string {
	switch cons {
	case CONSTELLATION_GPS:
		return "GPS"
	case CONSTELLATION_SBAS:
		return "SBAS"
	case CONSTELLATION_GLO:
		return "GLO"
	case CONSTELLATION_BDS:
		return "BDS"
	case CONSTELLATION_QZS:
		return "QZS"
	case CONSTELLATION_GAL:
		return "GAL"
	}
	return "?"
}

func (sid Sid) String() string {
	return fmt.Sprintf("%s %d", CodeToString(sid.Code), sid.Sat)
}

/* GLONASS slot and FCN validity -----------------------------------------------------------*/
func GloSlotIdIsValid(slot uint16) bool {
	return slot >= GLO_FIRST_PRN && slot <= NUM_GLO_ORBIT_SLOTS
}

func GloFcnIsValid(fcn uint16) bool {
	return fcn >= GLO_MIN_FCN && fcn <= GLO_MAX_FCN
}

/* per-constellation L1 frequency used for iono scaling --------------------------------------*/
func SidToL1Freq(sid Sid) float64 {
	switch SidToConstellation(sid) {
	case CONSTELLATION_BDS:
		return FREQ_BDS_B1
	case CONSTELLATION_GLO:
		return FREQ_GLO_L1
	default:
		return FREQ_GPS_L1
	}
}
