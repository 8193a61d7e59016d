// Package manager wires the process-wide registries together: the shared
// namespace, the worker set, and the mclass and port driver directories. RPC
// handlers receive a single Manager instead of globals so tests stay
// hermetic.
package manager

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/openbess/bessd/pkg/log"
	"github.com/openbess/bessd/pkg/module"
	"github.com/openbess/bessd/pkg/namespace"
	"github.com/openbess/bessd/pkg/port"
	"github.com/openbess/bessd/pkg/sched"
	"github.com/openbess/bessd/pkg/worker"
)

// Config holds manager construction parameters.
type Config struct {
	// DefaultCore hosts worker 0 when AddTc auto-launches it.
	DefaultCore int
}

// Manager is the control-plane state root.
type Manager struct {
	instanceID  string
	defaultCore int

	ns       *namespace.Registry
	workers  *worker.Set
	mclasses *module.Registry
	drivers  *port.Registry

	logger zerolog.Logger
}

// New builds a manager with the built-in mclasses and port drivers
// registered.
func New(cfg Config) *Manager {
	m := &Manager{
		instanceID:  uuid.New().String(),
		defaultCore: cfg.DefaultCore,
		ns:          namespace.NewRegistry(),
		workers:     worker.NewSet(),
		mclasses:    module.NewRegistry(),
		drivers:     port.NewRegistry(),
		logger:      log.WithComponent("manager"),
	}
	module.RegisterBuiltins(m.mclasses, m.FindPort)
	port.RegisterBuiltins(m.drivers)
	m.logger.Info().Str("instance_id", m.instanceID).Msg("Manager initialized")
	return m
}

// InstanceID identifies this process incarnation; state is ephemeral, so the
// id changes on every start.
func (m *Manager) InstanceID() string { return m.instanceID }

// DefaultCore returns the core used for the auto-launched worker 0.
func (m *Manager) DefaultCore() int { return m.defaultCore }

// Namespace returns the shared name registry.
func (m *Manager) Namespace() *namespace.Registry { return m.ns }

// Workers returns the worker slot array.
func (m *Manager) Workers() *worker.Set { return m.workers }

// MClasses returns the module class directory.
func (m *Manager) MClasses() *module.Registry { return m.mclasses }

// Drivers returns the port driver directory.
func (m *Manager) Drivers() *port.Registry { return m.drivers }

// FindModule resolves a module by name, nil when absent.
func (m *Manager) FindModule(name string) *module.Module {
	obj := m.ns.Lookup(namespace.KindModule, name)
	if obj == nil {
		return nil
	}
	return obj.(*module.Module)
}

// FindPort resolves a port by name, nil when absent.
func (m *Manager) FindPort(name string) *port.Port {
	obj := m.ns.Lookup(namespace.KindPort, name)
	if obj == nil {
		return nil
	}
	return obj.(*port.Port)
}

// FindTC resolves a traffic class by name, nil when absent.
func (m *Manager) FindTC(name string) *sched.Class {
	obj := m.ns.Lookup(namespace.KindTC, name)
	if obj == nil {
		return nil
	}
	return obj.(*sched.Class)
}

// GenerateName derives an unused name from a class or driver name, e.g.
// "source0" for the first anonymous Source module.
func (m *Manager) GenerateName(template string) string {
	base := strings.ToLower(template)
	for i := 0; ; i++ {
		name := fmt.Sprintf("%s%d", base, i)
		if !m.ns.Exists(name) {
			return name
		}
	}
}

// UnderPause runs fn with exclusive access to worker-visible state. When a
// client has already paused the world the scope reuses it and does not
// resume on exit.
func (m *Manager) UnderPause(fn func()) {
	b := m.workers.Barrier()
	if b.Paused() {
		fn()
		return
	}
	b.Pause()
	defer b.Resume()
	fn()
}

func defaultClassName(wid int) string {
	return fmt.Sprintf("_default_%d", wid)
}

// LaunchWorker occupies worker slot wid pinned to core, materializing the
// worker's scheduler and default traffic class. The caller has validated the
// slot and core.
func (m *Manager) LaunchWorker(wid, core int) error {
	name := defaultClassName(wid)
	c := sched.NewClass(sched.Params{
		Name:          name,
		Priority:      sched.DefaultPriority,
		Share:         1,
		ShareResource: sched.ResourceCount,
		AutoFree:      true,
	})
	if err := m.ns.Insert(namespace.KindTC, name, c); err != nil {
		return err
	}
	m.workers.Launch(wid, core, c)
	return nil
}

// DestroyAllWorkers joins every worker and releases the default classes they
// own. Traffic classes added by clients survive in the namespace but are no
// longer reachable from any worker.
func (m *Manager) DestroyAllWorkers() {
	var defaults []*sched.Class
	for wid := 0; wid < worker.MaxWorkers; wid++ {
		if w := m.workers.Get(wid); w != nil {
			defaults = append(defaults, w.DefaultClass())
		}
	}

	m.workers.DestroyAll()

	for _, c := range defaults {
		c.Leave()
		if c.DecRef() {
			_ = m.ns.Remove(namespace.KindTC, c.Settings.Name)
		}
	}
}

// WorkerFor returns the active worker whose scheduler hosts c, or -1.
func (m *Manager) WorkerFor(c *sched.Class) int {
	for wid := 0; wid < worker.MaxWorkers; wid++ {
		w := m.workers.Get(wid)
		if w != nil && w.Scheduler() == c.Scheduler() {
			return wid
		}
	}
	return -1
}
