//go:build !linux

package worker

// Affinity is best effort off Linux; the worker still runs, just unpinned.
func pinToCore(core int) error {
	return nil
}
