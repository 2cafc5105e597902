/*------------------------------------------------------------------------------
* gnsscore unit test driver : subsystem status report fan-out
*-----------------------------------------------------------------------------*/

package gnsscore_test

import (
	"testing"

	"gnsscore"

	"github.com/stretchr/testify/assert"
)

type statusRecord struct {
	component uint16
	generic   uint8
	specific  uint8
	context   any
	order     int
}

type statusTracker struct {
	counter int
	records map[string][]statusRecord
}

func newStatusTracker() *statusTracker {
	return &statusTracker{records: make(map[string][]statusRecord)}
}

func (tr *statusTracker) callback(name string) gnsscore.StatusReportCallback {
	return func(component uint16, generic, specific uint8, context any) {
		tr.records[name] = append(tr.records[name], statusRecord{
			component: component,
			generic:   generic,
			specific:  specific,
			context:   context,
			order:     tr.counter,
		})
		tr.counter++
	}
}

func Test_status_report_no_callbacks(t *testing.T) {
	assert := assert.New(t)

	var r gnsscore.StatusReporter
	r.Send(0, 1, 2)

	tr := newStatusTracker()
	assert.Empty(tr.records)
}

func Test_status_report_one_callback(t *testing.T) {
	assert := assert.New(t)

	var r gnsscore.StatusReporter
	tr := newStatusTracker()

	var node1 gnsscore.StatusReportNode
	r.Register(&node1, tr.callback("cb1"), 0xff)

	r.Send(0, 1, 2)

	assert.Len(tr.records["cb1"], 1)
	rec := tr.records["cb1"][0]
	assert.EqualValues(0, rec.component)
	assert.EqualValues(1, rec.generic)
	assert.EqualValues(2, rec.specific)
	assert.Equal(0xff, rec.context)
	assert.Equal(0, rec.order)
}

func Test_status_report_two_callbacks(t *testing.T) {
	assert := assert.New(t)

	var r gnsscore.StatusReporter
	tr := newStatusTracker()

	var node1, node2 gnsscore.StatusReportNode
	r.Register(&node1, tr.callback("cb1"), 0xff)
	r.Register(&node2, tr.callback("cb2"), 0xee)

	r.Send(3, 1, 2)

	/* delivery in registration order */
	assert.Len(tr.records["cb1"], 1)
	assert.Equal(0, tr.records["cb1"][0].order)
	assert.Equal(0xff, tr.records["cb1"][0].context)
	assert.EqualValues(3, tr.records["cb1"][0].component)

	assert.Len(tr.records["cb2"], 1)
	assert.Equal(1, tr.records["cb2"][0].order)
	assert.Equal(0xee, tr.records["cb2"][0].context)
}

func Test_status_report_deregister(t *testing.T) {
	assert := assert.New(t)

	var r gnsscore.StatusReporter
	tr := newStatusTracker()

	/* deregistering an unknown node is a no-op */
	var stray gnsscore.StatusReportNode
	r.Deregister(&stray)

	var node1, node2, node3 gnsscore.StatusReportNode
	r.Register(&node1, tr.callback("cb1"), nil)
	r.Register(&node2, tr.callback("cb2"), nil)
	r.Register(&node3, tr.callback("cb3"), nil)

	r.Deregister(&node2)
	r.Send(0, 1, 2)

	assert.Len(tr.records["cb1"], 1)
	assert.Empty(tr.records["cb2"])
	assert.Len(tr.records["cb3"], 1)

	/* remove the head, then the tail */
	r.Deregister(&node1)
	r.Deregister(&node3)
	r.Send(0, 1, 2)

	assert.Len(tr.records["cb1"], 1)
	assert.Len(tr.records["cb3"], 1)
}

func Test_status_report_reregister(t *testing.T) {
	assert := assert.New(t)

	var r gnsscore.StatusReporter
	tr := newStatusTracker()

	var node1 gnsscore.StatusReportNode
	r.Register(&node1, tr.callback("cb1"), nil)
	r.Deregister(&node1)
	r.Register(&node1, tr.callback("cb1"), nil)

	r.Send(0, 1, 2)
	assert.Len(tr.records["cb1"], 1)
}

func Test_status_report_reset(t *testing.T) {
	assert := assert.New(t)

	var r gnsscore.StatusReporter
	tr := newStatusTracker()

	var node1, node2 gnsscore.StatusReportNode
	r.Register(&node1, tr.callback("cb1"), nil)
	r.Register(&node2, tr.callback("cb2"), nil)

	r.Reset()
	r.Send(0, 1, 2)

	assert.Empty(tr.records["cb1"])
	assert.Empty(tr.records["cb2"])
}
