// Package module implements the dataflow graph: modules as vertices, gate
// pairs as edges. The graph may contain cycles; teardown always disconnects
// incident edges first, so no destruction path chases a cycle.
package module

import (
	"sync/atomic"

	"golang.org/x/sys/unix"

	"github.com/openbess/bessd/pkg/port"
	"github.com/openbess/bessd/pkg/sched"
)

// MaxGates bounds gate indexes on both directions.
const MaxGates = 8192

// AttrMode is the access a module declares on a metadata attribute.
type AttrMode int

const (
	AttrRead AttrMode = iota
	AttrWrite
	AttrUpdate
)

func (m AttrMode) String() string {
	switch m {
	case AttrRead:
		return "read"
	case AttrWrite:
		return "write"
	case AttrUpdate:
		return "update"
	default:
		return "unknown"
	}
}

// Attr is one declared per-packet metadata attribute. Offset is the byte
// position inside the module's metadata region, assigned at declaration.
type Attr struct {
	Name   string
	Size   int
	Mode   AttrMode
	Offset int
}

// OGate is an active output gate slot. Fan-out is one: a connected ogate has
// exactly one peer igate.
type OGate struct {
	owner     *Module
	idx       int
	peer      *Module
	peerIgate int

	cnt  atomic.Uint64
	pkts atomic.Uint64

	tap *Tap
}

// Owner returns the module the gate belongs to.
func (g *OGate) Owner() *Module { return g.owner }

// Idx returns the gate index.
func (g *OGate) Idx() int { return g.idx }

// Peer returns the downstream module and igate index.
func (g *OGate) Peer() (*Module, int) { return g.peer, g.peerIgate }

// Counters returns the batch and packet counts recorded on the gate.
func (g *OGate) Counters() (cnt, pkts uint64) {
	return g.cnt.Load(), g.pkts.Load()
}

// Record charges one batch of packets to the gate and feeds the tap if one
// is bound.
func (g *OGate) Record(pkts uint64, payload []byte) {
	g.cnt.Add(1)
	g.pkts.Add(pkts)
	if t := g.tap; t != nil {
		t.write(payload)
	}
}

// IGate is an active input gate slot carrying the fan-in list of upstream
// producer ogates. The list is traversed for info dumps, never for dispatch.
type IGate struct {
	idx      int
	upstream []*OGate
}

// Idx returns the gate index.
func (g *IGate) Idx() int { return g.idx }

// Upstream returns the producer ogates feeding this gate.
func (g *IGate) Upstream() []*OGate { return g.upstream }

// Module is one vertex of the dataflow graph.
type Module struct {
	name  string
	class *Class
	desc  string

	igates []*IGate
	ogates []*OGate
	attrs  []Attr
	tasks  []*Task

	// ports referenced by this module; released on destroy so port teardown
	// can refuse while the reference lives.
	ports []*port.Port

	// priv holds mclass per-instance state.
	priv interface{}
}

// New instantiates a module of class c. The constructor argument is the
// decoded driver-specific variant from the create request.
func New(c *Class, name string, arg interface{}) (*Module, error) {
	m := &Module{name: name, class: c}
	for tid := 0; tid < c.NumTasks && tid < MaxTasksPerModule; tid++ {
		m.tasks = append(m.tasks, &Task{m: m, tid: tid})
	}
	if c.Init != nil {
		if err := c.Init(m, arg); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// Name returns the module's registered name.
func (m *Module) Name() string { return m.name }

// Class returns the module's mclass.
func (m *Module) Class() *Class { return m.class }

// Desc returns the instance description set by the constructor.
func (m *Module) Desc() string { return m.desc }

// SetDesc is called from mclass constructors.
func (m *Module) SetDesc(desc string) { m.desc = desc }

// Priv returns the mclass per-instance state.
func (m *Module) Priv() interface{} { return m.priv }

// SetPriv is called from mclass constructors.
func (m *Module) SetPriv(priv interface{}) { m.priv = priv }

// Attrs returns the declared metadata attributes.
func (m *Module) Attrs() []Attr { return m.attrs }

// AddAttr declares a metadata attribute, assigning its byte offset within
// the module's metadata region.
func (m *Module) AddAttr(name string, size int, mode AttrMode) {
	offset := 0
	for _, a := range m.attrs {
		offset += a.Size
	}
	m.attrs = append(m.attrs, Attr{Name: name, Size: size, Mode: mode, Offset: offset})
}

// AcquirePort records a reference on p for the module's lifetime.
func (m *Module) AcquirePort(p *port.Port) {
	p.AcquireRef()
	m.ports = append(m.ports, p)
}

// Task returns the task in slot tid, or nil when the slot is out of range or
// empty.
func (m *Module) Task(tid int) *Task {
	if tid < 0 || tid >= len(m.tasks) {
		return nil
	}
	return m.tasks[tid]
}

// NumTasks returns the number of materialized task slots.
func (m *Module) NumTasks() int { return len(m.tasks) }

// IGates returns the input gate array; nil cells are inactive slots.
func (m *Module) IGates() []*IGate { return m.igates }

// OGates returns the output gate array; nil cells are inactive slots.
func (m *Module) OGates() []*OGate { return m.ogates }

// OGate returns the active output gate at idx, or nil.
func (m *Module) OGate(idx int) *OGate {
	if idx < 0 || idx >= len(m.ogates) {
		return nil
	}
	return m.ogates[idx]
}

// NumOGateSlots returns the current size of the output gate array. Gate
// indexes at or beyond it have never been allocated.
func (m *Module) NumOGateSlots() int { return len(m.ogates) }

// Connect wires m's output gate to dst's input gate. Both endpoints carry the
// link when it returns. Errors are errno values for the RPC layer.
func Connect(m *Module, ogate int, dst *Module, igate int) error {
	if ogate < 0 || ogate >= MaxGates || igate < 0 || igate >= MaxGates {
		return unix.EINVAL
	}
	if ogate >= m.class.NumOGates || igate >= dst.class.NumIGates {
		return unix.EINVAL
	}
	if ogate < len(m.ogates) && m.ogates[ogate] != nil {
		return unix.EBUSY
	}

	for len(m.ogates) <= ogate {
		m.ogates = append(m.ogates, nil)
	}
	for len(dst.igates) <= igate {
		dst.igates = append(dst.igates, nil)
	}

	og := &OGate{owner: m, idx: ogate, peer: dst, peerIgate: igate}
	m.ogates[ogate] = og

	ig := dst.igates[igate]
	if ig == nil {
		ig = &IGate{idx: igate}
		dst.igates[igate] = ig
	}
	ig.upstream = append(ig.upstream, og)
	return nil
}

// Disconnect removes the link on m's output gate, updating both endpoints.
// Disconnecting an unconnected gate is an error.
func Disconnect(m *Module, ogate int) error {
	if ogate < 0 || ogate >= MaxGates {
		return unix.EINVAL
	}
	if ogate >= len(m.ogates) || m.ogates[ogate] == nil {
		return unix.ENOENT
	}
	og := m.ogates[ogate]
	m.ogates[ogate] = nil

	ig := og.peer.igates[og.peerIgate]
	for i, cand := range ig.upstream {
		if cand == og {
			ig.upstream = append(ig.upstream[:i], ig.upstream[i+1:]...)
			break
		}
	}
	// The last producer deactivates the gate.
	if len(ig.upstream) == 0 {
		og.peer.igates[og.peerIgate] = nil
	}
	return nil
}

// Destroy tears down every incident edge, detaches tasks, and releases port
// references. It returns the traffic classes whose last reference was a
// detached task; the caller owns their namespace removal.
func (m *Module) Destroy() []*sched.Class {
	for idx, og := range m.ogates {
		if og != nil {
			_ = Disconnect(m, idx)
		}
	}
	for _, ig := range m.igates {
		if ig == nil {
			continue
		}
		for _, og := range append([]*OGate(nil), ig.upstream...) {
			_ = Disconnect(og.owner, og.idx)
		}
	}

	var dead []*sched.Class
	for _, t := range m.tasks {
		if c, died := t.Detach(); died {
			dead = append(dead, c)
		}
	}

	for _, p := range m.ports {
		p.ReleaseRef()
	}
	m.ports = nil
	return dead
}
