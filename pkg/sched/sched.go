// Package sched holds the per-worker traffic class tree. The control plane
// builds and mutates the tree; workers walk it to dispatch tasks. This package
// guarantees the tree's shape and that class parameters reach it. Dispatch
// (RunOnce) runs every attached task once per round; priority, share, limit,
// and max_burst are stored on each class but do not affect dispatch.
package sched

import (
	"fmt"
	"math"
	"sync/atomic"
	"time"
)

// Resource enumerates the dimensions a traffic class can be measured and
// limited on.
type Resource int

const (
	ResourceCount Resource = iota // schedule invocations
	ResourceCycle
	ResourcePacket
	ResourceBit

	NumResources = 4
)

func (r Resource) String() string {
	switch r {
	case ResourceCount:
		return "schedules"
	case ResourceCycle:
		return "cycles"
	case ResourcePacket:
		return "packets"
	case ResourceBit:
		return "bits"
	default:
		return fmt.Sprintf("resource(%d)", int(r))
	}
}

// DefaultPriority is reserved for the per-worker default class created at
// worker launch. AddTc rejects it for user-supplied classes.
const DefaultPriority = uint32(math.MaxUint32)

// Params carries the client-visible settings of a traffic class.
type Params struct {
	Name          string
	Priority      uint32
	Share         uint32
	ShareResource Resource
	Limit         [NumResources]int64
	MaxBurst      [NumResources]int64
	AutoFree      bool
}

// Runner is one schedulable unit of work attached to a class. Module tasks
// implement it.
type Runner interface {
	// RunTask performs one batch and reports packets and bits processed.
	RunTask() (packets, bits uint64)
}

// Class is a node in a worker's scheduling tree. Structural fields are
// mutated only by the control thread under the pause barrier; usage counters
// are written by the worker and read by the control thread.
type Class struct {
	Settings Params

	sched    *Scheduler
	parent   *Class
	children []*Class
	tasks    []Runner

	refcnt int32
	usage  [NumResources]atomic.Uint64
}

// NewClass creates a detached class with a refcount of one.
func NewClass(p Params) *Class {
	return &Class{Settings: p, refcnt: 1}
}

// Scheduler is one worker's tree of traffic classes, rooted at the worker's
// default class.
type Scheduler struct {
	root       *Class
	numClasses int
}

// NewScheduler wraps root, which becomes the fallback parent for every class
// joined without an explicit parent.
func NewScheduler(root *Class) *Scheduler {
	s := &Scheduler{root: root, numClasses: 1}
	root.sched = s
	return s
}

// Root returns the worker's default class.
func (s *Scheduler) Root() *Class { return s.root }

// NumClasses returns the number of classes in the tree, the default included.
func (s *Scheduler) NumClasses() int { return s.numClasses }

// Join inserts c into the tree under parent, or under the root when parent is
// nil.
func (s *Scheduler) Join(c *Class, parent *Class) {
	if parent == nil {
		parent = s.root
	}
	c.sched = s
	c.parent = parent
	parent.children = append(parent.children, c)
	s.numClasses++
}

// Leave detaches c from its parent and scheduler. Attached tasks keep their
// pointer to c; callers must detach them first if that matters.
func (c *Class) Leave() {
	if c.parent != nil {
		sib := c.parent.children
		for i, cand := range sib {
			if cand == c {
				c.parent.children = append(sib[:i], sib[i+1:]...)
				break
			}
		}
		c.parent = nil
	}
	if c.sched != nil {
		c.sched.numClasses--
		c.sched = nil
	}
}

// IncRef takes a reference on c.
func (c *Class) IncRef() { c.refcnt++ }

// DecRef drops a reference and reports whether the class is now dead. The
// caller owns removal from the namespace once this returns true.
func (c *Class) DecRef() bool {
	c.refcnt--
	return c.refcnt <= 0
}

// Scheduler returns the tree hosting c, or nil while detached.
func (c *Class) Scheduler() *Scheduler { return c.sched }

// Parent returns the parent class, nil for a root or detached class.
func (c *Class) Parent() *Class { return c.parent }

// NumTasks returns the number of attached tasks.
func (c *Class) NumTasks() int { return len(c.tasks) }

// AttachTask adds r to the class and takes a reference for it.
func (c *Class) AttachTask(r Runner) {
	c.tasks = append(c.tasks, r)
	c.IncRef()
}

// DetachTask removes r and reports whether the dropped reference killed the
// class.
func (c *Class) DetachTask(r Runner) bool {
	for i, cand := range c.tasks {
		if cand == r {
			c.tasks = append(c.tasks[:i], c.tasks[i+1:]...)
			break
		}
	}
	return c.DecRef()
}

// Usage returns a snapshot of the accumulated usage counters. Worker writes
// race benignly with this read; each counter is individually consistent.
func (c *Class) Usage() [NumResources]uint64 {
	var u [NumResources]uint64
	for i := range u {
		u[i] = c.usage[i].Load()
	}
	return u
}

// RunOnce walks the tree and runs every attached task once, charging usage to
// the owning class. It returns the number of tasks dispatched so the worker
// loop can back off an idle tree. It is invoked between pause checks.
func (s *Scheduler) RunOnce() int {
	return s.root.runOnce()
}

func (c *Class) runOnce() int {
	n := len(c.tasks)
	for _, t := range c.tasks {
		start := time.Now()
		pkts, bits := t.RunTask()
		elapsed := time.Since(start)

		c.usage[ResourceCount].Add(1)
		c.usage[ResourceCycle].Add(uint64(elapsed.Nanoseconds()))
		c.usage[ResourcePacket].Add(pkts)
		c.usage[ResourceBit].Add(bits)
	}
	for _, child := range c.children {
		n += child.runOnce()
	}
	return n
}
