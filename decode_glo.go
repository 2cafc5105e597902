/*------------------------------------------------------------------------------
* decode_glo.go : GLONASS L1OF/L2OF navigation string decoder
*
* reference :
*     [1] ICD L1,L2 GLONASS edition 5.1, 2008, sections 4.5-4.7 and
*         Tables 4.3-4.13
*-----------------------------------------------------------------------------*/
package gnsscore

import "math"

const GLO_NAV_STR_BITS = 85 /* data bits per navigation string */

/* GLO fit intervals do not seem to overlap. P1 from string 1 defines a fit
   interval and tb from string 2 (the TOE) changes at its beginning. The
   previous interval ends at the start of the frame delivering the new tb,
   leaving a window where the old ephemeris is stale and the new one not yet
   decoded. The margin (halved on each side) covers that window. */
const gloFitIntervalMargin = 10 * SECS_MINUTE

const (
	gloSvModelGlonass  = 0
	gloSvModelGlonassM = 1
)

/* GLO parameter limits, ref [1] Table 4.5 */
const (
	gloPosMax    = 2.7e4 * 1e3   /* m */
	gloVelMax    = 4.3 * 1e3     /* m/s */
	gloAccMax    = 6.2e-9 * 1e3  /* m/s^2 */
	gloTkMaxHour = 23
	gloTkMaxMin  = 59
	gloTbMin     = 15 * SECS_MINUTE
	gloTbMax     = 1425 * SECS_MINUTE
	gloGammaMax  = P2_30
	gloTauMax    = 0.001953125 /* 2^-9 s */
	gloDTauMax   = 13.97e-9    /* s */
	gloNtMax     = 1461        /* days */

	gloTauGpsMax = 1.9e-3 /* s, ref [1] Table 4.9 */
)

// GloString is one 85-bit GLONASS navigation string. Bit 1 of the string is
// the LSB of Word[0], bit 85 bit 20 of Word[2].
type GloString struct {
	Word [3]uint32
}

/* word Ft (measurement accuracy), ref [1] Table 4.4 */
var gloFtValues = [16]float32{
	1.0, 2.0, 2.5, 4.0, 5.0, 7.0, 10.0, 12.0,
	14.0, 16.0, 32.0, 64.0, 128.0, 256.0, 512.0, INVALID_URA_VALUE,
}

/* word P1 (interval between adjacent tb values, min), ref [1] Table 4.3 */
var gloP1LookupMin = [4]uint32{0, 30, 45, 60}

/* check bit masks for data bits 9..85, ref [1] Table 4.13 */
var gloEMasks = [7][3]uint32{
	{0xaaad5b00, 0x55555556, 0x000aaaab},
	{0x33366d00, 0x9999999b, 0x000ccccd},
	{0xc3c78e00, 0xe1e1e1e3, 0x0010f0f1},
	{0xfc07f000, 0xfe01fe03, 0x0000ff01},
	{0xfff80000, 0xfffe0003, 0x001f0001},
	{0x00000000, 0xfffffffc, 0x00000001},
	{0x00000000, 0x00000000, 0x001ffffe},
}

/* ExtractWordGlo ---------------------------------------------------------------
* extract a word of up to 32 bits from a navigation string. bitIndex follows
* the 1-based LSB-first convention of ref [1] Tables 4.6 and 4.11
* args   : *GloString string   I   navigation string
*          int       bitIndex  I   first bit to extract [1..85]
*          int       nBits     I   number of bits [1..32]
* return : extracted word
*-----------------------------------------------------------------------------*/
func ExtractWordGlo(str *GloString, bitIndex, nBits int) uint32 {
	bitIndex--
	bixHi := bitIndex >> 5
	bixLo := bitIndex & 0x1F
	if bixLo+nBits <= 32 {
		word := str.Word[bixHi] >> bixLo
		return word & (0xFFFFFFFF >> (32 - nBits))
	}
	s := 32 - bixLo
	return ExtractWordGlo(str, bitIndex+1, s) |
		ExtractWordGlo(str, bitIndex+1+s, nBits-s)<<s
}

/* ErrorDetectionGlo ------------------------------------------------------------
* verify the Hamming code of a received navigation string, ref [1] section 4.7
* args   : *GloString string  I   navigation string
* return : -1 if the string is bad and should be dropped, 0 if it is good,
*          otherwise the number of the bit to invert, range [9..85]
*-----------------------------------------------------------------------------*/
func ErrorDetectionGlo(str *GloString) int {
	var c, bitSet, k uint8

	/* calculate C1..7 */
	for i := 0; i < 7; i++ {
		/* check bit of the Hamming code and masked data bits */
		beta := uint8(ExtractWordGlo(str, i+1, 1))
		data1 := ExtractWordGlo(str, 1, 32) & gloEMasks[i][0]
		data2 := ExtractWordGlo(str, 33, 32) & gloEMasks[i][1]
		data3 := ExtractWordGlo(str, 65, 32) & gloEMasks[i][2]
		p := beta ^ Parity32(data1) ^ Parity32(data2) ^ Parity32(data3)
		c |= p << i
		if p != 0 {
			bitSet++      /* how many checksums are set */
			k = uint8(i) + 1 /* most significant non-zero checksum */
		}
	}

	/* calculate the overall checksum */
	data1 := ExtractWordGlo(str, 1, 32) & 0xFFFFFF00
	data2 := ExtractWordGlo(str, 33, 32)
	data3 := ExtractWordGlo(str, 65, 32)
	p0 := Parity32(ExtractWordGlo(str, 1, 8))
	cSum := p0 ^ Parity32(data1) ^ Parity32(data2) ^ Parity32(data3) != 0

	/* case a) of ref [1]: the string is good */
	if (!cSum && bitSet == 0) || (bitSet == 1 && cSum) {
		return 0
	}

	/* case b): single correctable error */
	if bitSet > 1 && cSum {
		iCorr := int(c&0x7F) + 8 - int(k)
		if iCorr > GLO_NAV_STR_BITS {
			return -1 /* odd number of multiple errors */
		}
		return iCorr
	}

	/* case c): multiple errors */
	if (bitSet > 0 && !cSum) || (bitSet == 0 && cSum) {
		return -1
	}

	Trace(2, "ErrorDetectionGlo: unexpected case\n")
	return -1
}

// decodeGloPosition extracts a signed position component (x/y/z) in meters
// from string 1, 2 or 3.
func decodeGloPosition(str *GloString) float64 {
	pos := float64(ExtractWordGlo(str, 9, 26)) * P2_11 * 1000.0
	if ExtractWordGlo(str, 9+26, 1) != 0 {
		pos = -pos
	}
	return pos
}

// decodeGloVelocity extracts a signed velocity component in m/s.
func decodeGloVelocity(str *GloString) float64 {
	vel := float64(ExtractWordGlo(str, 41, 23)) * P2_20 * 1000.0
	if ExtractWordGlo(str, 41+23, 1) != 0 {
		vel = -vel
	}
	return vel
}

// decodeGloAcceleration extracts a signed acceleration component in m/s^2.
func decodeGloAcceleration(str *GloString) float64 {
	acc := float64(ExtractWordGlo(str, 36, 4)) * P2_30 * 1000.0
	if ExtractWordGlo(str, 36+4, 1) != 0 {
		acc = -acc
	}
	return acc
}

func computeGloFitInterval(eph *Ephemeris, p1 uint32) uint32 {
	fitInterval := SECS_MINUTE * gloP1LookupMin[p1]
	if fitInterval != 0 {
		return fitInterval + gloFitIntervalMargin
	}

	if eph.FitInterval == 0 {
		/* no fit interval decoded yet, default to the maximum possible
		 * (P1 = 60 min) plus the margin until a real P1 shows up */
		return SECS_MINUTE*60 + gloFitIntervalMargin
	}
	return eph.FitInterval
}

/* DecodeGloString1 -------------------------------------------------------------
* decode navigation string 1: x position, velocity and acceleration, tk and
* the P1 fit interval
* args   : *GloString string  I   navigation string
*          *Ephemeris eph     IO  ephemeris under construction
*          *GloTime   tk      O   time of the string within the GLO day
* return : true on success
*-----------------------------------------------------------------------------*/
func DecodeGloString1(str *GloString, eph *Ephemeris, tk *GloTime) bool {
	if ErrorDetectionGlo(str) != 0 {
		Trace(3, "DecodeGloString1 %s: checksum mismatch\n", eph.Sid.String())
		return false
	}
	if ExtractWordGlo(str, 81, 4) != 1 {
		return false
	}

	pos := decodeGloPosition(str)
	if pos < -gloPosMax || pos > gloPosMax {
		Trace(3, "DecodeGloString1 %s: pos_x=%f m\n", eph.Sid.String(), pos)
		return false
	}
	eph.Glo.Pos[0] = pos

	vel := decodeGloVelocity(str)
	if vel < -gloVelMax || vel > gloVelMax {
		Trace(3, "DecodeGloString1 %s: vel_x=%f m/s\n", eph.Sid.String(), vel)
		return false
	}
	eph.Glo.Vel[0] = vel

	acc := decodeGloAcceleration(str)
	if acc < -gloAccMax || acc > gloAccMax {
		Trace(3, "DecodeGloString1 %s: acc_x=%g m/s^2\n", eph.Sid.String(), acc)
		return false
	}
	eph.Glo.Acc[0] = acc

	/* tk */
	tk.H = uint8(ExtractWordGlo(str, 72, 5))
	if tk.H > gloTkMaxHour {
		Trace(3, "DecodeGloString1 %s: tk_h=%d\n", eph.Sid.String(), tk.H)
		return false
	}
	tk.M = uint8(ExtractWordGlo(str, 66, 6))
	if tk.M > gloTkMaxMin {
		Trace(3, "DecodeGloString1 %s: tk_m=%d\n", eph.Sid.String(), tk.M)
		return false
	}
	if ExtractWordGlo(str, 65, 1) != 0 {
		tk.S = SECS_MINUTE / 2
	} else {
		tk.S = 0.0
	}

	/* P1 */
	p1 := ExtractWordGlo(str, 77, 2)
	eph.FitInterval = computeGloFitInterval(eph, p1)

	return true
}

/* DecodeGloString2 -------------------------------------------------------------
* decode navigation string 2: y position, velocity and acceleration, the B
* health flag and tb (the TOE within the GLO day)
* args   : *GloString string  I   navigation string
*          *Ephemeris eph     IO  ephemeris under construction
*          *GloTime   toe     O   reference time within the GLO day
* return : true on success
*-----------------------------------------------------------------------------*/
func DecodeGloString2(str *GloString, eph *Ephemeris, toe *GloTime) bool {
	if ErrorDetectionGlo(str) != 0 {
		Trace(3, "DecodeGloString2 %s: checksum mismatch\n", eph.Sid.String())
		return false
	}
	if ExtractWordGlo(str, 81, 4) != 2 {
		return false
	}

	pos := decodeGloPosition(str)
	if pos < -gloPosMax || pos > gloPosMax {
		Trace(3, "DecodeGloString2 %s: pos_y=%f m\n", eph.Sid.String(), pos)
		return false
	}
	eph.Glo.Pos[1] = pos

	vel := decodeGloVelocity(str)
	if vel < -gloVelMax || vel > gloVelMax {
		Trace(3, "DecodeGloString2 %s: vel_y=%f m/s\n", eph.Sid.String(), vel)
		return false
	}
	eph.Glo.Vel[1] = vel

	acc := decodeGloAcceleration(str)
	if acc < -gloAccMax || acc > gloAccMax {
		Trace(3, "DecodeGloString2 %s: acc_y=%g m/s^2\n", eph.Sid.String(), acc)
		return false
	}
	eph.Glo.Acc[1] = acc

	/* MSB of B: zero means the SV is OK */
	eph.HealthBits |= uint8(ExtractWordGlo(str, 80, 1))

	tb := ExtractWordGlo(str, 70, 7) * 15 * SECS_MINUTE
	if tb < gloTbMin || tb > gloTbMax {
		Trace(3, "DecodeGloString2 %s: tb=%d s\n", eph.Sid.String(), tb)
		return false
	}
	toe.H = uint8(tb / SECS_HOUR)
	toe.M = uint8((tb - uint32(toe.H)*SECS_HOUR) / SECS_MINUTE)
	toe.S = float64(tb - uint32(toe.H)*SECS_HOUR - uint32(toe.M)*SECS_MINUTE)
	eph.Glo.Iod = uint8(tb & 0x7F) /* 7 LSBs of tb as IOD */

	return true
}

/* DecodeGloString3 -------------------------------------------------------------
* decode navigation string 3: z position, velocity and acceleration, gamma
* and the l health flag
* args   : *GloString string  I   navigation string
*          *Ephemeris eph     IO  ephemeris under construction
* return : true on success
*-----------------------------------------------------------------------------*/
func DecodeGloString3(str *GloString, eph *Ephemeris) bool {
	if ErrorDetectionGlo(str) != 0 {
		Trace(3, "DecodeGloString3 %s: checksum mismatch\n", eph.Sid.String())
		return false
	}
	if ExtractWordGlo(str, 81, 4) != 3 {
		return false
	}

	pos := decodeGloPosition(str)
	if pos < -gloPosMax || pos > gloPosMax {
		Trace(3, "DecodeGloString3 %s: pos_z=%f m\n", eph.Sid.String(), pos)
		return false
	}
	eph.Glo.Pos[2] = pos

	vel := decodeGloVelocity(str)
	if vel < -gloVelMax || vel > gloVelMax {
		Trace(3, "DecodeGloString3 %s: vel_z=%f m/s\n", eph.Sid.String(), vel)
		return false
	}
	eph.Glo.Vel[2] = vel

	acc := decodeGloAcceleration(str)
	if acc < -gloAccMax || acc > gloAccMax {
		Trace(3, "DecodeGloString3 %s: acc_z=%g m/s^2\n", eph.Sid.String(), acc)
		return false
	}
	eph.Glo.Acc[2] = acc

	gamma := float64(ExtractWordGlo(str, 69, 10)) * P2_40
	if ExtractWordGlo(str, 69+10, 1) != 0 {
		gamma = -gamma
	}
	if gamma < -gloGammaMax || gamma > gloGammaMax {
		Trace(3, "DecodeGloString3 %s: gamma=%g\n", eph.Sid.String(), gamma)
		return false
	}
	eph.Glo.Gamma = gamma

	/* l flag: zero means the SV is OK, OR it with B */
	eph.HealthBits |= uint8(ExtractWordGlo(str, 65, 1))

	return true
}

/* DecodeGloString4 -------------------------------------------------------------
* decode navigation string 4: tau, d_tau, the age of data, the orbit slot
* number, Ft (URA) and NT (day within the four-year cycle)
* args   : *GloString string  I   navigation string
*          *Ephemeris eph     IO  ephemeris under construction
*          *GloTime   tk,toe  IO  times to receive NT
*          *uint8     ageOfDataDays O  E_n age of data (days)
* return : true on success
*-----------------------------------------------------------------------------*/
func DecodeGloString4(str *GloString, eph *Ephemeris, tk, toe *GloTime,
	ageOfDataDays *uint8) bool {
	if ErrorDetectionGlo(str) != 0 {
		Trace(3, "DecodeGloString4 %s: checksum mismatch\n", eph.Sid.String())
		return false
	}
	if ExtractWordGlo(str, 81, 4) != 4 {
		return false
	}

	tau := float64(ExtractWordGlo(str, 59, 21)) * P2_30
	if ExtractWordGlo(str, 59+21, 1) != 0 {
		tau = -tau
	}
	if tau < -gloTauMax || tau > gloTauMax {
		Trace(3, "DecodeGloString4 %s: tau=%g s\n", eph.Sid.String(), tau)
		return false
	}
	eph.Glo.Tau = tau

	dTau := float64(ExtractWordGlo(str, 54, 4)) * P2_30
	if ExtractWordGlo(str, 54+4, 1) != 0 {
		dTau = -dTau
	}
	if dTau < -gloDTauMax || dTau > gloDTauMax {
		Trace(3, "DecodeGloString4 %s: d_tau=%g s\n", eph.Sid.String(), dTau)
		return false
	}
	eph.Glo.DTau = dTau

	/* E_n age of data */
	*ageOfDataDays = uint8(ExtractWordGlo(str, 49, 5))

	/* n, orbit slot number */
	gloSlotId := uint16(ExtractWordGlo(str, 11, 5))
	if !GloSlotIdIsValid(gloSlotId) {
		Trace(3, "DecodeGloString4 %s: slot_id=%d\n", eph.Sid.String(), gloSlotId)
		return false
	}
	eph.Sid.Sat = gloSlotId

	/* Ft (URA) */
	eph.Ura = gloFtValues[ExtractWordGlo(str, 30, 4)]

	/* NT */
	ntDays := uint16(ExtractWordGlo(str, 16, 11))
	if ntDays > gloNtMax {
		Trace(3, "DecodeGloString4 %s: nt=%d days\n", eph.Sid.String(), ntDays)
		return false
	}
	tk.Nt = ntDays
	toe.Nt = ntDays

	if ExtractWordGlo(str, 9, 2) == gloSvModelGlonass {
		/* all visible GLO satellites are assumed at least GLONASS-M */
		Trace(2, "DecodeGloString4 %s: non GLONASS-M SV detected\n",
			eph.Sid.String())
	}
	return true
}

/* DecodeGloEphemeris -----------------------------------------------------------
* decode a full GLO ephemeris from navigation strings 1-5 of one frame
* args   : *[5]GloString strings I   navigation strings 1..5
*          Sid        sid        I   signal the strings were received on
*          *UtcParams utcParams  I   UTC parameters for the GLO to GPS time
*                                    conversion (nil for factory defaults)
*          *Ephemeris eph        O   decoded ephemeris
* return : true on success. On failure eph is left with Valid = 0
*-----------------------------------------------------------------------------*/
func DecodeGloEphemeris(strings *[5]GloString, sid Sid, utcParams *UtcParams,
	eph *Ephemeris) bool {
	var tk, toe GloTime
	var tauGps float32
	var ageOfDataDays uint8

	*eph = Ephemeris{}
	eph.Sid = sid

	ok := DecodeGloString1(&strings[0], eph, &tk) &&
		DecodeGloString2(&strings[1], eph, &toe) &&
		DecodeGloString3(&strings[2], eph) &&
		DecodeGloString4(&strings[3], eph, &tk, &toe, &ageOfDataDays) &&
		DecodeGloString5(&strings[4], eph, &tk, &toe, &tauGps)
	if !ok {
		Trace(3, "DecodeGloEphemeris %s: decode failed\n", eph.Sid.String())
		eph.Valid = 0
		return false
	}

	eph.Toe = Glo2Gps(&toe, utcParams)
	eph.Valid = 1
	return true
}

/* DecodeGloString5 -------------------------------------------------------------
* decode navigation string 5: N4 (four-year cycle number) and tau_gps (the
* GLO to GPS time offset)
* args   : *GloString string  I   navigation string
*          *Ephemeris eph     I   ephemeris (for the sid in log output)
*          *GloTime   tk,toe  IO  times to receive N4
*          *float32   tauGps  O   correction to GPS time relative to GLO (s)
* return : true on success
*-----------------------------------------------------------------------------*/
func DecodeGloString5(str *GloString, eph *Ephemeris, tk, toe *GloTime,
	tauGps *float32) bool {
	if ErrorDetectionGlo(str) != 0 {
		Trace(3, "DecodeGloString5 %s: checksum mismatch\n", eph.Sid.String())
		return false
	}
	if ExtractWordGlo(str, 81, 4) != 5 {
		return false
	}

	/* N4 */
	n4 := uint8(ExtractWordGlo(str, 32, 5))
	if n4 == 0 {
		Trace(3, "DecodeGloString5 %s: n4=0\n", eph.Sid.String())
		return false
	}
	tk.N4 = n4
	toe.N4 = n4

	/* tau GPS */
	tauGpsS := float64(ExtractWordGlo(str, 10, 21)) * P2_30
	if ExtractWordGlo(str, 31, 1) != 0 {
		tauGpsS = -tauGpsS
	}
	if math.Abs(tauGpsS) > gloTauGpsMax {
		Trace(3, "DecodeGloString5 %s: tau_gps=%g s\n", eph.Sid.String(), tauGpsS)
		return false
	}
	*tauGps = float32(tauGpsS)

	return true
}
