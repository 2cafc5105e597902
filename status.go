/*------------------------------------------------------------------------------
* status.go : subsystem status report fan-out
*
* notes  : callbacks live in caller-owned nodes chained into a singly-linked
*          list, so registration allocates nothing. Callers must not register
*          or deregister concurrently with Send.
*-----------------------------------------------------------------------------*/
package gnsscore

// StatusReportCallback receives one subsystem status report.
type StatusReportCallback func(component uint16, generic, specific uint8, context any)

// StatusReportNode is the caller-owned list node holding one callback.
type StatusReportNode struct {
	callback StatusReportCallback
	context  any
	next     *StatusReportNode
}

// StatusReporter dispatches status reports to registered callbacks in
// registration order. The zero value is ready to use.
type StatusReporter struct {
	root *StatusReportNode
}

// Register appends node to the callback list.
func (r *StatusReporter) Register(node *StatusReportNode,
	callback StatusReportCallback, context any) {
	node.callback = callback
	node.context = context
	node.next = nil

	var previous *StatusReportNode
	for current := r.root; current != nil; current = current.next {
		previous = current
	}
	if previous != nil {
		previous.next = node
	} else {
		r.root = node
	}
}

// Deregister unlinks node from the callback list. Unregistered nodes are
// ignored.
func (r *StatusReporter) Deregister(node *StatusReportNode) {
	var previous *StatusReportNode
	for current := r.root; current != nil; current = current.next {
		if current != node {
			previous = current
			continue
		}
		if previous != nil {
			previous.next = current.next
		} else {
			r.root = current.next
		}
	}
}

// Reset drops all registered callbacks.
func (r *StatusReporter) Reset() {
	r.root = nil
}

// Send delivers one status report to every registered callback.
func (r *StatusReporter) Send(component uint16, generic, specific uint8) {
	for node := r.root; node != nil; node = node.next {
		node.callback(component, generic, specific, node.context)
	}
}
