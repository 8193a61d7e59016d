package module

import (
	"os"

	"golang.org/x/sys/unix"
)

// Tap copies traffic transiting an output gate into a FIFO for an external
// capture reader. The dispatch path feeds it; the control plane only toggles
// it.
type Tap struct {
	f *os.File
}

func (t *Tap) write(payload []byte) {
	if len(payload) == 0 {
		return
	}
	// Non-blocking FIFO: a slow or absent reader drops the copy.
	_, _ = t.f.Write(payload)
}

// EnableTap binds a capture tap on m's output gate. The caller has validated
// the gate index against the current gate array size.
func EnableTap(m *Module, ogate int, fifo string) error {
	og := m.OGate(ogate)
	if og == nil {
		return unix.ENODEV
	}
	if og.tap != nil {
		return unix.EBUSY
	}
	f, err := os.OpenFile(fifo, os.O_WRONLY|unix.O_NONBLOCK, 0)
	if err != nil {
		return err
	}
	og.tap = &Tap{f: f}
	return nil
}

// DisableTap removes the capture tap from m's output gate.
func DisableTap(m *Module, ogate int) error {
	og := m.OGate(ogate)
	if og == nil {
		return unix.ENODEV
	}
	if og.tap == nil {
		return unix.ENOENT
	}
	err := og.tap.f.Close()
	og.tap = nil
	return err
}
