package module

import "fmt"

// MaxTasksPerModule bounds the task slot array of every module.
const MaxTasksPerModule = 32

// Class describes one module kind: its gate and task declaration plus the
// constructor invoked with the driver-specific argument from the create
// request.
type Class struct {
	Name string
	Help string

	// Gate caps. A connect beyond the cap is rejected before any slot is
	// allocated.
	NumIGates int
	NumOGates int

	// NumTasks is the number of task slots materialized at instantiation.
	NumTasks int

	// Init validates the argument and sets up per-instance state. A non-nil
	// error aborts instantiation.
	Init func(m *Module, arg interface{}) error

	// Run performs one dispatch batch for the module's tasks. Nil means the
	// module has no work of its own.
	Run func(m *Module) (packets, bits uint64)
}

// Registry is the process-wide mclass directory, iterated in registration
// order.
type Registry struct {
	byName map[string]*Class
	order  []*Class
}

func NewRegistry() *Registry {
	return &Registry{byName: make(map[string]*Class)}
}

// Register adds an mclass; duplicate names panic since registration happens
// once at startup.
func (r *Registry) Register(c *Class) {
	if _, ok := r.byName[c.Name]; ok {
		panic(fmt.Sprintf("mclass %q registered twice", c.Name))
	}
	r.byName[c.Name] = c
	r.order = append(r.order, c)
}

// Find returns the named mclass, or nil.
func (r *Registry) Find(name string) *Class {
	return r.byName[name]
}

// List copies up to max mclasses starting at offset.
func (r *Registry) List(offset, max int) []*Class {
	if offset >= len(r.order) || max <= 0 {
		return nil
	}
	end := offset + max
	if end > len(r.order) {
		end = len(r.order)
	}
	return r.order[offset:end]
}
