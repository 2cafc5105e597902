/*------------------------------------------------------------------------------
* capabilities.go : per-satellite constellation capability masks
*
* notes  : bit n of a mask refers to the satellite with PRN first_prn+n.
*          BDS GEO satellites are listed as inactive to prevent acquisition;
*          configuration per http://www.csno-tarc.cn/en/system/constellation
*-----------------------------------------------------------------------------*/
package gnsscore

const (
	GNSS_CAPB_BDS_ACTIVE uint64 = 0x1fbffcbfe0 /* operational BDS satellites */
	GNSS_CAPB_BDS_D2NAV  uint64 = 0x000000001f /* GEO satellites broadcasting D2 */
	GNSS_CAPB_BDS_B2     uint64 = 0x000000bfff /* BDS2 B2I capable */
	GNSS_CAPB_BDS_B2A    uint64 = 0x1fbffc0000 /* BDS3 B2a capable */
)

// BdsIsGeo reports whether sid is one of the BDS GEO satellites. GEO orbits
// need a reference-frame rotation when evaluated from Keplerian elements.
func BdsIsGeo(sid Sid) bool {
	if SidToConstellation(sid) != CONSTELLATION_BDS {
		return false
	}
	return (GNSS_CAPB_BDS_D2NAV>>(sid.Sat-BDS_FIRST_PRN))&1 == 1
}
