// Package port manages named packet I/O endpoints. Each port is produced by
// a driver and carries per-direction queue configuration and statistics.
package port

import (
	"fmt"
	"net"
	"sync/atomic"

	"golang.org/x/sys/unix"
)

// Packet directions, indexing queue configuration and statistics.
const (
	DirInc = iota
	DirOut

	NumDirections = 2
)

// Stats is a snapshot of one direction's counters.
type Stats struct {
	Packets uint64
	Dropped uint64
	Bytes   uint64
}

type counters struct {
	packets atomic.Uint64
	dropped atomic.Uint64
	bytes   atomic.Uint64
}

// QueueConfig holds per-direction queue counts and sizes.
type QueueConfig struct {
	NumQ  [NumDirections]int
	SizeQ [NumDirections]int
}

// Port is one named I/O endpoint. Structure is control-thread-owned; the
// stats counters are written by workers and read with relaxed atomics.
type Port struct {
	name   string
	driver *Driver
	queues QueueConfig
	mac    net.HardwareAddr

	stats  [NumDirections]counters
	refcnt atomic.Int32

	// priv holds the driver's per-port state.
	priv interface{}
}

// Name returns the port's registered name.
func (p *Port) Name() string { return p.name }

// Driver returns the driver that produced the port.
func (p *Port) Driver() *Driver { return p.driver }

// Queues returns the port's queue configuration.
func (p *Port) Queues() QueueConfig { return p.queues }

// MAC returns the port's hardware address, nil when unset.
func (p *Port) MAC() net.HardwareAddr { return p.mac }

// Stats snapshots one direction's counters.
func (p *Port) Stats(dir int) Stats {
	c := &p.stats[dir]
	return Stats{
		Packets: c.packets.Load(),
		Dropped: c.dropped.Load(),
		Bytes:   c.bytes.Load(),
	}
}

// Record charges packets and bytes to one direction. Called from the
// dispatch path.
func (p *Port) Record(dir int, packets, bytes uint64) {
	p.stats[dir].packets.Add(packets)
	p.stats[dir].bytes.Add(bytes)
}

// RecordDrops charges dropped packets to one direction.
func (p *Port) RecordDrops(dir int, packets uint64) {
	p.stats[dir].dropped.Add(packets)
}

// AcquireRef marks the port as referenced by a module.
func (p *Port) AcquireRef() { p.refcnt.Add(1) }

// ReleaseRef drops a module reference.
func (p *Port) ReleaseRef() { p.refcnt.Add(-1) }

// Refcnt returns the number of modules referencing the port.
func (p *Port) Refcnt() int { return int(p.refcnt.Load()) }

// Priv returns the driver's per-port state.
func (p *Port) Priv() interface{} { return p.priv }

// Driver produces and tears down ports of one kind. InitPort receives the
// driver-specific argument decoded from the create request.
type Driver struct {
	Name string
	Help string

	InitPort   func(p *Port, arg interface{}) error
	DeinitPort func(p *Port) error
}

// Registry is the process-wide port driver directory, iterated in
// registration order for the paged driver listing.
type Registry struct {
	byName map[string]*Driver
	order  []*Driver
}

func NewRegistry() *Registry {
	return &Registry{byName: make(map[string]*Driver)}
}

// Register adds a driver; duplicate names panic since registration happens
// once at startup.
func (r *Registry) Register(d *Driver) {
	if _, ok := r.byName[d.Name]; ok {
		panic(fmt.Sprintf("port driver %q registered twice", d.Name))
	}
	r.byName[d.Name] = d
	r.order = append(r.order, d)
}

// Find returns the named driver, or nil.
func (r *Registry) Find(name string) *Driver {
	return r.byName[name]
}

// List copies up to max drivers starting at offset, in registration order.
func (r *Registry) List(offset, max int) []*Driver {
	if offset >= len(r.order) || max <= 0 {
		return nil
	}
	end := offset + max
	if end > len(r.order) {
		end = len(r.order)
	}
	return r.order[offset:end]
}

// Create builds a port through its driver. The caller validates the name and
// inserts the result into the namespace.
func Create(d *Driver, name string, queues QueueConfig, macAddr string, arg interface{}) (*Port, error) {
	p := &Port{
		name:   name,
		driver: d,
		queues: queues,
	}
	if macAddr != "" {
		mac, err := net.ParseMAC(macAddr)
		if err != nil {
			return nil, fmt.Errorf("invalid 'mac_addr': %w", unix.EINVAL)
		}
		p.mac = mac
	}
	if d.InitPort != nil {
		if err := d.InitPort(p, arg); err != nil {
			return nil, err
		}
	}
	return p, nil
}

// Destroy tears a port down through its driver. A port still referenced by a
// module refuses with EBUSY; the caller removes the name on success.
func Destroy(p *Port) error {
	if p.Refcnt() > 0 {
		return unix.EBUSY
	}
	if p.driver.DeinitPort != nil {
		return p.driver.DeinitPort(p)
	}
	return nil
}
