/*------------------------------------------------------------------------------
* decode_gal.go : decode Galileo I/NAV ephemeris
*
* reference :
*     [1] Galileo OS Signal-in-Space Interface Control Document, issue 2.0,
*         January 2021, section 5.1.9
*-----------------------------------------------------------------------------*/
package gnsscore

const (
	/* one I/NAV word content (even/odd page pair already concatenated) */
	GAL_INAV_CONTENT_BIT  = 128
	GAL_INAV_CONTENT_BYTE = (GAL_INAV_CONTENT_BIT + 7) / 8
)

/* DecodeSisaIndex ---------------------------------------------------------------
* convert a Galileo SISA index to a signal-in-space accuracy in meters
* args   : uint8 sisa       I   SISA index (0..255)
* return : accuracy (m) (INVALID_URA_VALUE if no accuracy prediction available)
*-----------------------------------------------------------------------------*/
func DecodeSisaIndex(sisa uint8) float32 {
	switch {
	case sisa < 50:
		return float32(sisa) * 0.01
	case sisa < 75:
		return 0.5 + float32(sisa-50)*0.02
	case sisa < 100:
		return 1.0 + float32(sisa-75)*0.04
	case sisa <= 125:
		return 2.0 + float32(sisa-100)*0.16
	default:
		return INVALID_URA_VALUE
	}
}

/* DecodeGalEphemeris ------------------------------------------------------------
* decode ephemeris from Galileo I/NAV word types 1-5 (ref [1] table 39)
* args   : *[5][16]uint8 page I   word contents, page[i] holding word type i+1
*          *Ephemeris    e    O   decoded ephemeris
* return : status (true:ok,false:word type or IODnav mismatch)
* notes  : all five words must belong to the same batch, i.e. carry the same
*          IODnav, otherwise the elements are inconsistent and decoding fails
*-----------------------------------------------------------------------------*/
func DecodeGalEphemeris(page *[5][GAL_INAV_CONTENT_BYTE]uint8, e *Ephemeris) bool {
	for i := 0; i < 5; i++ {
		if wordType := GetBitU(page[i][:], 0, 6); wordType != uint32(i+1) {
			Trace(2, "DecodeGalEphemeris: unexpected word type %d at slot %d\n",
				wordType, i)
			return false
		}
	}

	iodNav := GetBitU(page[0][:], 6, 10)
	for i := 1; i < 4; i++ {
		if iod := GetBitU(page[i][:], 6, 10); iod != iodNav {
			Trace(2, "DecodeGalEphemeris: IODnav mismatch %d != %d\n",
				iod, iodNav)
			return false
		}
	}

	k := &e.Kepler
	k.Iode = uint16(iodNav)
	k.Iodc = uint16(iodNav)

	/* word type 1: toe, M0, e, sqrtA */
	e.Toe.Tow = float64(GetBitU(page[0][:], 16, 14)) * 60.0
	k.M0 = float64(GetBits(page[0][:], 30, 32)) * (P2_31 * PI)
	k.Ecc = float64(GetBitU(page[0][:], 62, 32)) * P2_33
	k.Sqrta = float64(GetBitU(page[0][:], 94, 32)) * P2_19

	/* word type 2: Omega0, i0, omega, idot */
	k.Omega0 = float64(GetBits(page[1][:], 16, 32)) * (P2_31 * PI)
	k.Inc = float64(GetBits(page[1][:], 48, 32)) * (P2_31 * PI)
	k.W = float64(GetBits(page[1][:], 80, 32)) * (P2_31 * PI)
	k.IncDot = float64(GetBits(page[1][:], 112, 14)) * (P2_43 * PI)

	/* word type 3: OmegaDot, deltaN, Cuc, Cus, Crc, Crs, SISA(E1,E5b) */
	k.Omegadot = float64(GetBits(page[2][:], 16, 24)) * (P2_43 * PI)
	k.Dn = float64(GetBits(page[2][:], 40, 16)) * (P2_43 * PI)
	k.Cuc = float64(GetBits(page[2][:], 56, 16)) * P2_29
	k.Cus = float64(GetBits(page[2][:], 72, 16)) * P2_29
	k.Crc = float64(GetBits(page[2][:], 88, 16)) * P2_5
	k.Crs = float64(GetBits(page[2][:], 104, 16)) * P2_5
	e.Ura = DecodeSisaIndex(uint8(GetBitU(page[2][:], 120, 8)))

	/* word type 4: SVID, Cic, Cis, toc, af0, af1, af2 */
	e.Sid = Sid{Sat: uint16(GetBitU(page[3][:], 16, 6)), Code: CODE_GAL_E1B}
	k.Cic = float64(GetBits(page[3][:], 22, 16)) * P2_29
	k.Cis = float64(GetBits(page[3][:], 38, 16)) * P2_29
	k.Toc.Tow = float64(GetBitU(page[3][:], 54, 14)) * 60.0
	k.Af0 = float64(GetBits(page[3][:], 68, 31)) * P2_34
	k.Af1 = float64(GetBits(page[3][:], 99, 21)) * P2_46
	k.Af2 = float64(GetBits(page[3][:], 120, 6)) * P2_59

	/* word type 5: BGDs, signal health, GST week and TOW */
	k.Tgd[0] = float32(float64(GetBits(page[4][:], 47, 10)) * P2_32)
	k.Tgd[1] = float32(float64(GetBits(page[4][:], 57, 10)) * P2_32)

	e5bHs := uint8(GetBitU(page[4][:], 67, 2))
	e1bHs := uint8(GetBitU(page[4][:], 69, 2))
	e5bDvs := uint8(GetBitU(page[4][:], 71, 1))
	e1bDvs := uint8(GetBitU(page[4][:], 72, 1))
	/* HS fields in bits 7-4, DVS flags in bits 1-0; zero means healthy */
	e.HealthBits = e5bHs<<6 | e1bHs<<4 | e5bDvs<<1 | e1bDvs

	/* GST week is offset from GPS week by the GST start epoch */
	wn := GetBitU(page[4][:], 73, 12)
	e.Toe.Wn = int16(wn) + GAL_WEEK_TO_GPS_WEEK
	k.Toc.Wn = e.Toe.Wn

	e.FitInterval = GAL_FIT_INTERVAL_DEFAULT
	e.Valid = 1

	if !GpsTimeValid(&e.Toe) || !GpsTimeValid(&k.Toc) {
		Trace(2, "DecodeGalEphemeris %s: faulty toe/toc, invalidating\n",
			e.Sid.String())
		e.Valid = 0
		return false
	}

	return true
}
