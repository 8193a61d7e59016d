package module

import "github.com/openbess/bessd/pkg/sched"

// Task is one schedulable slot of a module. Tasks are materialized when the
// module is instantiated and live until it is destroyed; attachment to a
// traffic class is what makes them runnable.
type Task struct {
	m   *Module
	tid int
	tc  *sched.Class
}

// Module returns the owning module.
func (t *Task) Module() *Module { return t.m }

// Tid returns the task's slot index.
func (t *Task) Tid() int { return t.tid }

// TC returns the attached traffic class, nil while detached.
func (t *Task) TC() *sched.Class { return t.tc }

// Attached reports whether the task is bound to a traffic class.
func (t *Task) Attached() bool { return t.tc != nil }

// Attach binds the task to c, taking a class reference.
func (t *Task) Attach(c *sched.Class) {
	c.AttachTask(t)
	t.tc = c
}

// Detach unbinds the task. It returns the former class and whether dropping
// the task's reference killed it; the caller owns namespace removal for a
// dead class. Detaching a detached task returns (nil, false).
func (t *Task) Detach() (*sched.Class, bool) {
	if t.tc == nil {
		return nil, false
	}
	c := t.tc
	t.tc = nil
	dead := c.DetachTask(t)
	return c, dead
}

// RunTask implements sched.Runner by delegating to the mclass run hook.
func (t *Task) RunTask() (packets, bits uint64) {
	if t.m.class.Run == nil {
		return 0, 0
	}
	return t.m.class.Run(t.m)
}
