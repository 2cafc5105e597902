/*------------------------------------------------------------------------------
* decode_bds.go : decode BeiDou D1 navigation message ephemeris
*
* reference :
*     [1] BeiDou Navigation Satellite System Signal In Space Interface Control
*         Document, Open Service Signal B1I (Version 3.0), February 2019
*-----------------------------------------------------------------------------*/
package gnsscore

/* D1 subframes are carried as 10 30-bit words padded to whole bytes */
const BDS_D1_SUBFRAME_BYTE = 38

/* get two-component split fields (ref [1] section 5.2.4) ---------------------*/
func getBitU2(buff []uint8, p1, l1, p2, l2 int) uint32 {
	return GetBitU(buff, p1, l1)<<l2 | GetBitU(buff, p2, l2)
}
func getBits2(buff []uint8, p1, l1, p2, l2 int) int32 {
	if GetBitU(buff, p1, 1) > 0 {
		return GetBits(buff, p1, l1)<<l2 | int32(GetBitU(buff, p2, l2))
	}
	return int32(getBitU2(buff, p1, l1, p2, l2))
}

/* DecodeBdsD1Ephemeris ----------------------------------------------------------
* decode ephemeris from BeiDou D1 subframes 1-3 (ref [1] section 5.2.4)
* args   : []uint8    buff   I   subframes 1-3, 38 bytes each, parity removed
*                                from none of the words (raw 30-bit words)
*          Sid        sid    I   signal the subframes were collected from
*          *Ephemeris e      O   decoded ephemeris, times in GPS time scale
* return : status (true:ok,false:inconsistent subframes)
* notes  : toc and toe must match, the three subframes must be consecutive
*          (SOWs 6 s apart), otherwise the data set is mixed and decoding fails
*-----------------------------------------------------------------------------*/
func DecodeBdsD1Ephemeris(buff []uint8, sid Sid, e *Ephemeris) bool {
	if SidToConstellation(sid) != CONSTELLATION_BDS {
		Trace(2, "DecodeBdsD1Ephemeris: not a BDS signal %s\n", sid.String())
		return false
	}
	k := &e.Kepler

	i := 8 * BDS_D1_SUBFRAME_BYTE * 0 /* subframe 1 */
	frn1 := GetBitU(buff, i+15, 3)
	sow1 := getBitU2(buff, i+18, 8, i+30, 12)
	e.HealthBits = uint8(GetBitU(buff, i+42, 1)) /* SatH1 */
	aodc := uint16(GetBitU(buff, i+43, 5))
	e.Ura = DecodeUraIndex(uint8(GetBitU(buff, i+48, 4)))
	wnBds := GetBitU(buff, i+60, 13)
	tocBds := float64(getBitU2(buff, i+73, 9, i+90, 8)) * 8.0
	/* TGD1/TGD2 broadcast in units of 0.1 ns */
	k.Tgd[0] = float32(float64(GetBits(buff, i+98, 10)) * 0.1 * 1e-9)
	k.Tgd[1] = float32(float64(getBits2(buff, i+108, 4, i+120, 6)) * 0.1 * 1e-9)
	k.Af2 = float64(GetBits(buff, i+214, 11)) * P2_66
	k.Af0 = float64(getBits2(buff, i+225, 7, i+240, 17)) * P2_33
	k.Af1 = float64(getBits2(buff, i+257, 5, i+270, 17)) * P2_50
	aode := uint16(GetBitU(buff, i+287, 5))

	i = 8 * BDS_D1_SUBFRAME_BYTE * 1 /* subframe 2 */
	frn2 := GetBitU(buff, i+15, 3)
	sow2 := getBitU2(buff, i+18, 8, i+30, 12)
	k.Dn = float64(getBits2(buff, i+42, 10, i+60, 6)) * (P2_43 * PI)
	k.Cuc = float64(getBits2(buff, i+66, 16, i+90, 2)) * P2_31
	k.M0 = float64(getBits2(buff, i+92, 20, i+120, 12)) * (P2_31 * PI)
	k.Ecc = float64(getBitU2(buff, i+132, 10, i+150, 22)) * P2_33
	k.Cus = float64(GetBits(buff, i+180, 18)) * P2_31
	k.Crc = float64(getBits2(buff, i+198, 4, i+210, 14)) * P2_6
	k.Crs = float64(getBits2(buff, i+224, 8, i+240, 10)) * P2_6
	k.Sqrta = float64(getBitU2(buff, i+250, 12, i+270, 20)) * P2_19
	toeMsb := GetBitU(buff, i+290, 2)

	i = 8 * BDS_D1_SUBFRAME_BYTE * 2 /* subframe 3 */
	frn3 := GetBitU(buff, i+15, 3)
	sow3 := getBitU2(buff, i+18, 8, i+30, 12)
	toeLsb := getBitU2(buff, i+42, 10, i+60, 5)
	k.Inc = float64(getBits2(buff, i+65, 17, i+90, 15)) * (P2_31 * PI)
	k.Cic = float64(getBits2(buff, i+105, 7, i+120, 11)) * P2_31
	k.Omegadot = float64(getBits2(buff, i+131, 11, i+150, 13)) * (P2_43 * PI)
	k.Cis = float64(getBits2(buff, i+163, 9, i+180, 9)) * P2_31
	k.IncDot = float64(getBits2(buff, i+189, 13, i+210, 1)) * (P2_43 * PI)
	k.Omega0 = float64(getBits2(buff, i+211, 21, i+240, 11)) * (P2_31 * PI)
	k.W = float64(getBits2(buff, i+251, 11, i+270, 21)) * (P2_31 * PI)
	toeBds := float64(toeMsb<<15|toeLsb) * 8.0

	/* consistency of subframe ids, SOWs and toe/toc */
	if frn1 != 1 || frn2 != 2 || frn3 != 3 {
		Trace(2, "DecodeBdsD1Ephemeris %s: frn=%d %d %d\n",
			sid.String(), frn1, frn2, frn3)
		return false
	}
	if sow2 != sow1+6 || sow3 != sow2+6 {
		Trace(2, "DecodeBdsD1Ephemeris %s: sow=%d %d %d\n",
			sid.String(), sow1, sow2, sow3)
		return false
	}
	if tocBds != toeBds {
		Trace(2, "DecodeBdsD1Ephemeris %s: toe=%.0f toc=%.0f\n",
			sid.String(), toeBds, tocBds)
		return false
	}

	/* a toe far from the time of transmission belongs to the next or the
	 * previous BDT week */
	wn := int16(wnBds)
	if toeBds > float64(sow1)+SECS_WEEK/2 {
		wn--
	} else if toeBds < float64(sow1)-SECS_WEEK/2 {
		wn++
	}

	/* BDT to GPS time scale */
	e.Toe = GpsTime{Tow: toeBds + BDS_SECOND_TO_GPS_SECOND,
		Wn: wn + BDS_WEEK_TO_GPS_WEEK}
	NormalizeGpsTime(&e.Toe)
	k.Toc = GpsTime{Tow: tocBds + BDS_SECOND_TO_GPS_SECOND,
		Wn: wn + BDS_WEEK_TO_GPS_WEEK}
	NormalizeGpsTime(&k.Toc)

	k.Iodc = aodc
	k.Iode = aode

	e.Sid = sid
	e.FitInterval = BDS_FIT_INTERVAL_DEFAULT
	e.Valid = 1

	return true
}
