package port

import (
	"fmt"

	"golang.org/x/sys/unix"
)

// Driver-specific arguments, decoded from the create request's one-of by the
// control service before dispatch.

type NullConfig struct{}

type LoopbackConfig struct{}

type SocketConfig struct {
	Path string
}

type PcapConfig struct {
	Dev string
}

type socketState struct {
	path string
}

type pcapState struct {
	dev string
}

// RegisterBuiltins installs the built-in port drivers.
func RegisterBuiltins(r *Registry) {
	r.Register(&Driver{
		Name: "Null",
		Help: "discards transmitted packets and never receives",
		InitPort: func(p *Port, arg interface{}) error {
			if _, ok := arg.(*NullConfig); !ok {
				return fmt.Errorf("expected Null argument: %w", unix.EINVAL)
			}
			return nil
		},
	})

	r.Register(&Driver{
		Name: "Loopback",
		Help: "reflects transmitted packets back into the receive queue",
		InitPort: func(p *Port, arg interface{}) error {
			if _, ok := arg.(*LoopbackConfig); !ok {
				return fmt.Errorf("expected Loopback argument: %w", unix.EINVAL)
			}
			return nil
		},
	})

	r.Register(&Driver{
		Name: "Socket",
		Help: "exchanges packets over a unix domain socket",
		InitPort: func(p *Port, arg interface{}) error {
			cfg, ok := arg.(*SocketConfig)
			if !ok {
				return fmt.Errorf("expected Socket argument: %w", unix.EINVAL)
			}
			if cfg.Path == "" {
				return fmt.Errorf("missing 'path': %w", unix.EINVAL)
			}
			p.priv = &socketState{path: cfg.Path}
			return nil
		},
	})

	r.Register(&Driver{
		Name: "PCAP",
		Help: "sends and receives packets on a host interface via libpcap",
		InitPort: func(p *Port, arg interface{}) error {
			cfg, ok := arg.(*PcapConfig)
			if !ok {
				return fmt.Errorf("expected PCAP argument: %w", unix.EINVAL)
			}
			if cfg.Dev == "" {
				return fmt.Errorf("missing 'dev': %w", unix.EINVAL)
			}
			p.priv = &pcapState{dev: cfg.Dev}
			return nil
		},
	})
}
