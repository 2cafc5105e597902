/*------------------------------------------------------------------------------
* gnsscore unit test driver : signal ID sets
*-----------------------------------------------------------------------------*/

package gnsscore_test

import (
	"testing"

	"gnsscore"

	"github.com/stretchr/testify/assert"
)

func Test_sid_set_empty(t *testing.T) {
	assert := assert.New(t)

	var sidSet gnsscore.SidSet
	sidSet.Init()
	assert.EqualValues(0, sidSet.SatCount())
	assert.EqualValues(0, sidSet.SigCount())
}

func Test_sid_set(t *testing.T) {
	assert := assert.New(t)

	/* five signals from four distinct satellites */
	sids := []gnsscore.Sid{
		{Sat: 1, Code: gnsscore.CODE_GPS_L1CA},
		{Sat: 1, Code: gnsscore.CODE_GPS_L2CM},
		{Sat: 2, Code: gnsscore.CODE_GPS_L1CA},
		{Sat: 3, Code: gnsscore.CODE_GPS_L2CM},
		{Sat: 1, Code: gnsscore.CODE_GLO_L1OF},
	}

	var sidSet gnsscore.SidSet
	sidSet.Init()
	for i, sid := range sids {
		sidSet.Add(sid)
		assert.EqualValues(i+1, sidSet.SigCount())
	}
	assert.EqualValues(4, sidSet.SatCount())
}

func Test_sid_set_contains(t *testing.T) {
	assert := assert.New(t)

	sids := []gnsscore.Sid{
		{Sat: 1, Code: gnsscore.CODE_GPS_L1CA},
		{Sat: 1, Code: gnsscore.CODE_GPS_L2CM},
		{Sat: 2, Code: gnsscore.CODE_GPS_L1CA},
		{Sat: 3, Code: gnsscore.CODE_GPS_L2CM},
		{Sat: 1, Code: gnsscore.CODE_GLO_L1OF},
	}

	var sidSet gnsscore.SidSet
	sidSet.Init()

	for i, sid := range sids {
		assert.False(sidSet.Contains(sid), "add %d", i)
		sidSet.Add(sid)
		assert.True(sidSet.Contains(sid), "add %d", i)
	}
	for i, sid := range sids {
		assert.True(sidSet.Contains(sid), "remove %d", i)
		sidSet.Remove(sid)
		assert.False(sidSet.Contains(sid), "remove %d", i)
	}
}
