/*------------------------------------------------------------------------------
* sidset.go : set of GNSS signal identifiers
*
* notes  : one 64-bit satellite mask per code, so counting distinct satellites
*          folds the masks of all codes in a constellation together before
*          taking the population count
*-----------------------------------------------------------------------------*/
package gnsscore

import "math/bits"

// SidSet is a set of signals keyed by (code, satellite). The zero value is an
// empty set.
type SidSet struct {
	sats [CODE_COUNT]uint64
}

// Init empties the set.
func (s *SidSet) Init() {
	*s = SidSet{}
}

// Add inserts sid into the set. Invalid signals are ignored.
func (s *SidSet) Add(sid Sid) {
	if !SidValid(sid) {
		Trace(2, "SidSet.Add: invalid sid %s\n", sid.String())
		return
	}
	s.sats[sid.Code] |= uint64(1) << SidToCodeIndex(sid)
}

// Remove takes sid out of the set. Invalid signals are ignored.
func (s *SidSet) Remove(sid Sid) {
	if !SidValid(sid) {
		Trace(2, "SidSet.Remove: invalid sid %s\n", sid.String())
		return
	}
	s.sats[sid.Code] &^= uint64(1) << SidToCodeIndex(sid)
}

// Contains reports whether sid is in the set.
func (s *SidSet) Contains(sid Sid) bool {
	if !SidValid(sid) {
		return false
	}
	return s.sats[sid.Code]&(uint64(1)<<SidToCodeIndex(sid)) != 0
}

// SigCount returns the number of signals in the set.
func (s *SidSet) SigCount() uint32 {
	var count uint32
	for code := CODE_GPS_L1CA; code < CODE_COUNT; code++ {
		count += uint32(bits.OnesCount64(s.sats[code]))
	}
	return count
}

// SatCount returns the number of distinct satellites in the set. A satellite
// tracked on several codes counts once.
func (s *SidSet) SatCount() uint32 {
	var count uint32
	for cons := CONSTELLATION_GPS; cons < CONSTELLATION_COUNT; cons++ {
		var sats uint64
		for code := CODE_GPS_L1CA; code < CODE_COUNT; code++ {
			if CodeToConstellation(code) == cons {
				sats |= s.sats[code]
			}
		}
		count += uint32(bits.OnesCount64(sats))
	}
	return count
}
