/*------------------------------------------------------------------------------
* glomap.go : GLONASS orbital slot to frequency channel number map
*
* notes  : FCNs are stored shifted by GLO_FCN_OFFSET so that the table holds
*          values 1..14 for FCN -7..+6 and GLO_FCN_UNKNOWN (0) for unset
*          entries. the map takes an optional sync.Locker invoked around every
*          mutation and every multi-slot read; without one the map must be
*          used from a single goroutine
*-----------------------------------------------------------------------------*/
package gnsscore

import "sync"

/* slot id to FCN table, index 0 unused, index 1 -- SV 1, index 28 -- SV 28 */
type GloMap struct {
	fcn [NUM_SATS_GLO + 1]uint16
	mu  sync.Locker
}

/* package level map used when no per-instance map is supplied */
var DefaultGloMap = NewGloMap(nil)

/* new glo map ---------------------------------------------------------------
* args   : sync.Locker mu  I  mutual exclusion hooks (nil for single thread)
* return : empty map, all slots unknown
*-----------------------------------------------------------------------------*/
func NewGloMap(mu sync.Locker) *GloMap {
	return &GloMap{mu: mu}
}

func (m *GloMap) lock() {
	if m.mu != nil {
		m.mu.Lock()
	}
}

func (m *GloMap) unlock() {
	if m.mu != nil {
		m.mu.Unlock()
	}
}

/* map an orbital slot to an FCN ----------------------------------------------*/
func (m *GloMap) SetFcn(slot, fcn uint16) bool {
	if !GloSlotIdIsValid(slot) || !GloFcnIsValid(fcn) {
		Trace(2, "glomap: reject slot=%d fcn=%d\n", slot, fcn)
		return false
	}
	m.lock()
	m.fcn[slot] = fcn
	m.unlock()
	return true
}

/* FCN for an orbital slot, GLO_FCN_UNKNOWN when unset -------------------------*/
func (m *GloMap) GetFcn(slot uint16) uint16 {
	if slot == 0 || slot > NUM_SATS_GLO {
		return GLO_FCN_UNKNOWN
	}
	m.lock()
	fcn := m.fcn[slot]
	m.unlock()
	return fcn
}

/* mapping validity for a GLONASS signal ---------------------------------------*/
func (m *GloMap) Valid(sid Sid) bool {
	if SidToConstellation(sid) != CONSTELLATION_GLO {
		return false
	}
	return m.GetFcn(sid.Sat) != GLO_FCN_UNKNOWN
}

/* clear one slot ---------------------------------------------------------------*/
func (m *GloMap) ClearSlot(slot uint16) {
	if slot == 0 || slot > NUM_SATS_GLO {
		return
	}
	m.lock()
	m.fcn[slot] = GLO_FCN_UNKNOWN
	m.unlock()
}

/* clear the whole map ------------------------------------------------------------*/
func (m *GloMap) ClearAll() {
	m.lock()
	for i := range m.fcn {
		m.fcn[i] = GLO_FCN_UNKNOWN
	}
	m.unlock()
}

/* slots mapped to an FCN ----------------------------------------------------------
* args   : uint16 fcn      I  frequency channel number
* return : number of mapped slots (0..2) and up to two slot ids, unused
*          outputs are zero
*-----------------------------------------------------------------------------*/
func (m *GloMap) GetSlotIDs(fcn uint16) (n int, slot1, slot2 uint16) {
	m.lock()
	defer m.unlock()
	for i := uint16(GLO_FIRST_PRN); i <= NUM_SATS_GLO; i++ {
		if m.fcn[i] != fcn {
			continue
		}
		n++
		if n == 1 {
			slot1 = i
		} else {
			slot2 = i
			break
		}
	}
	return n, slot1, slot2
}

/* fill every slot with FCN 0 (stored value 8) so tests that need a complete
   map but not real wavelengths can run */
func (m *GloMap) FillDummyData() {
	m.lock()
	for i := GLO_FIRST_PRN; i <= NUM_SATS_GLO; i++ {
		m.fcn[i] = GLO_FCN_OFFSET
	}
	m.unlock()
}
