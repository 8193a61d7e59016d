package sched

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRunner struct {
	packets uint64
	bits    uint64
	runs    int
}

func (f *fakeRunner) RunTask() (uint64, uint64) {
	f.runs++
	return f.packets, f.bits
}

func newTestScheduler() (*Scheduler, *Class) {
	root := NewClass(Params{
		Name:          "_default_0",
		Priority:      DefaultPriority,
		Share:         1,
		ShareResource: ResourceCount,
		AutoFree:      true,
	})
	return NewScheduler(root), root
}

func TestResourceString(t *testing.T) {
	assert.Equal(t, "schedules", ResourceCount.String())
	assert.Equal(t, "cycles", ResourceCycle.String())
	assert.Equal(t, "packets", ResourcePacket.String())
	assert.Equal(t, "bits", ResourceBit.String())
}

func TestJoinLeave(t *testing.T) {
	s, root := newTestScheduler()
	assert.Equal(t, 1, s.NumClasses())
	assert.Same(t, root, s.Root())

	c := NewClass(Params{Name: "bulk", Priority: 5})
	s.Join(c, nil)
	assert.Equal(t, 2, s.NumClasses())
	assert.Same(t, root, c.Parent())
	assert.Same(t, s, c.Scheduler())

	child := NewClass(Params{Name: "inner", Priority: 1})
	s.Join(child, c)
	assert.Equal(t, 3, s.NumClasses())
	assert.Same(t, c, child.Parent())

	child.Leave()
	assert.Equal(t, 2, s.NumClasses())
	assert.Nil(t, child.Parent())
	assert.Nil(t, child.Scheduler())

	c.Leave()
	assert.Equal(t, 1, s.NumClasses())
}

func TestRefcount(t *testing.T) {
	c := NewClass(Params{Name: "bulk"})
	c.IncRef()
	assert.False(t, c.DecRef())
	assert.True(t, c.DecRef(), "creation reference dropped last")
}

func TestTaskAttachDetach(t *testing.T) {
	c := NewClass(Params{Name: "bulk"})
	r1 := &fakeRunner{}
	r2 := &fakeRunner{}

	c.AttachTask(r1)
	c.AttachTask(r2)
	assert.Equal(t, 2, c.NumTasks())

	assert.False(t, c.DetachTask(r1))
	assert.Equal(t, 1, c.NumTasks())

	// Dropping the creation reference leaves the task reference holding the
	// class alive.
	assert.False(t, c.DecRef())
	assert.True(t, c.DetachTask(r2), "last reference was the task's")
	assert.Zero(t, c.NumTasks())
}

func TestRunOnceAccountsUsage(t *testing.T) {
	s, root := newTestScheduler()
	c := NewClass(Params{Name: "bulk", Priority: 5})
	s.Join(c, nil)

	r := &fakeRunner{packets: 32, bits: 32 * 60 * 8}
	c.AttachTask(r)

	require.Equal(t, 1, s.RunOnce())

	usage := c.Usage()
	assert.Equal(t, uint64(1), usage[ResourceCount])
	assert.Equal(t, uint64(32), usage[ResourcePacket])
	assert.Equal(t, uint64(32*60*8), usage[ResourceBit])
	assert.Equal(t, 1, r.runs)

	rootUsage := root.Usage()
	assert.Zero(t, rootUsage[ResourceCount], "no task attached to the default class")
}

func TestRunOnceIdleTree(t *testing.T) {
	s, _ := newTestScheduler()
	assert.Zero(t, s.RunOnce())
}
