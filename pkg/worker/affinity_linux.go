//go:build linux

package worker

import "golang.org/x/sys/unix"

// pinToCore binds the calling thread to a single CPU. The caller holds
// runtime.LockOSThread for the lifetime of the pin.
func pinToCore(core int) error {
	var set unix.CPUSet
	set.Zero()
	set.Set(core)
	return unix.SchedSetaffinity(0, &set)
}
