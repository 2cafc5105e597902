/*------------------------------------------------------------------------------
* gnsscore unit test driver : GLONASS slot to FCN map
*-----------------------------------------------------------------------------*/

package gnsscore_test

import (
	"sync"
	"testing"

	"gnsscore"

	"github.com/stretchr/testify/assert"
)

const glomapTestFcn = 14

func Test_glo_map(t *testing.T) {
	assert := assert.New(t)

	m := gnsscore.NewGloMap(nil)

	for slot := uint16(1); slot <= gnsscore.NUM_GLO_ORBIT_SLOTS; slot++ {
		sid := gnsscore.Sid{Sat: slot, Code: gnsscore.CODE_GLO_L1OF}
		assert.True(m.SetFcn(slot, glomapTestFcn))
		assert.True(m.Valid(sid), "mapping for slot %v should be valid", slot)
		assert.EqualValues(glomapTestFcn, m.GetFcn(slot))

		m.ClearSlot(slot)
		assert.False(m.Valid(sid), "mapping for slot %v should be invalid", slot)
		assert.EqualValues(gnsscore.GLO_FCN_UNKNOWN, m.GetFcn(slot))
	}
}

func Test_glo_map_slot_ids(t *testing.T) {
	assert := assert.New(t)

	m := gnsscore.NewGloMap(nil)

	n, slot1, slot2 := m.GetSlotIDs(glomapTestFcn)
	assert.Equal(0, n)
	assert.EqualValues(0, slot1)
	assert.EqualValues(0, slot2)

	assert.True(m.SetFcn(5, glomapTestFcn))
	n, slot1, slot2 = m.GetSlotIDs(glomapTestFcn)
	assert.Equal(1, n)
	assert.EqualValues(5, slot1)
	assert.EqualValues(0, slot2)

	assert.True(m.SetFcn(10, glomapTestFcn))
	n, slot1, slot2 = m.GetSlotIDs(glomapTestFcn)
	assert.Equal(2, n)
	assert.EqualValues(5, slot1)
	assert.EqualValues(10, slot2)

	/* only the first two mapped slots are reported */
	assert.True(m.SetFcn(11, glomapTestFcn))
	n, slot1, slot2 = m.GetSlotIDs(glomapTestFcn)
	assert.Equal(2, n)
	assert.EqualValues(5, slot1)
	assert.EqualValues(10, slot2)
}

func Test_glo_map_rejects(t *testing.T) {
	assert := assert.New(t)

	m := gnsscore.NewGloMap(nil)

	assert.False(m.SetFcn(0, glomapTestFcn))
	assert.False(m.SetFcn(gnsscore.NUM_GLO_ORBIT_SLOTS+1, glomapTestFcn))
	assert.False(m.SetFcn(5, gnsscore.GLO_MAX_FCN+1))
	assert.False(m.SetFcn(5, gnsscore.GLO_FCN_UNKNOWN))

	/* out of range reads come back unknown */
	assert.EqualValues(gnsscore.GLO_FCN_UNKNOWN, m.GetFcn(0))
	assert.EqualValues(gnsscore.GLO_FCN_UNKNOWN, m.GetFcn(gnsscore.NUM_SATS_GLO+1))

	/* non GLONASS signals never map */
	assert.False(m.Valid(gnsscore.Sid{Sat: 5, Code: gnsscore.CODE_GPS_L1CA}))
}

func Test_glo_map_locked(t *testing.T) {
	assert := assert.New(t)

	var mu sync.Mutex
	m := gnsscore.NewGloMap(&mu)
	m.FillDummyData()

	var wg sync.WaitGroup
	for w := 0; w < 4; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for slot := uint16(1); slot <= gnsscore.NUM_GLO_ORBIT_SLOTS; slot++ {
				m.SetFcn(slot, uint16(gnsscore.GLO_MIN_FCN+w))
				m.GetFcn(slot)
			}
		}(w)
	}
	wg.Wait()

	for slot := uint16(1); slot <= gnsscore.NUM_GLO_ORBIT_SLOTS; slot++ {
		fcn := m.GetFcn(slot)
		assert.True(fcn >= gnsscore.GLO_MIN_FCN && fcn <= gnsscore.GLO_MAX_FCN,
			"slot %v fcn %v", slot, fcn)
	}
	m.ClearAll()
	assert.EqualValues(gnsscore.GLO_FCN_UNKNOWN, m.GetFcn(1))
}
