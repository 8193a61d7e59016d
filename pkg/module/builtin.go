package module

import (
	"fmt"

	"golang.org/x/sys/unix"

	"github.com/openbess/bessd/pkg/port"
)

// Driver-specific arguments, decoded from the create request's one-of by the
// control service before dispatch.

type SourceConfig struct {
	PktSize uint64
	Burst   uint64
}

type SinkConfig struct{}

type QueueConfig struct {
	Size     uint64
	Prefetch bool
}

type BufferConfig struct{}

type BypassConfig struct{}

type MergeConfig struct{}

type SplitConfig struct {
	Size      uint64
	Attribute string
	Offset    int64
}

type NoopConfig struct{}

type PortIncConfig struct {
	Port     string
	Prefetch bool
}

type PortOutConfig struct {
	Port string
}

type sourceState struct {
	pktSize uint64
	burst   uint64
}

type queueState struct {
	size     uint64
	prefetch bool
}

type splitState struct {
	size   uint64
	offset int64
}

type portIncState struct {
	p        *port.Port
	prefetch bool
}

type portOutState struct {
	p *port.Port
}

const (
	defaultSourcePktSize = 60
	defaultSourceBurst   = 32
	defaultQueueSize     = 1024
)

// RegisterBuiltins installs the built-in module classes. lookupPort resolves
// a port name against the namespace for the port-bound classes.
func RegisterBuiltins(r *Registry, lookupPort func(name string) *port.Port) {
	r.Register(&Class{
		Name:      "Source",
		Help:      "infinitely generates packets of a fixed size",
		NumIGates: 0,
		NumOGates: 1,
		NumTasks:  1,
		Init: func(m *Module, arg interface{}) error {
			cfg, ok := arg.(*SourceConfig)
			if !ok {
				return fmt.Errorf("expected Source argument: %w", unix.EINVAL)
			}
			st := &sourceState{pktSize: cfg.PktSize, burst: cfg.Burst}
			if st.pktSize == 0 {
				st.pktSize = defaultSourcePktSize
			}
			if st.burst == 0 {
				st.burst = defaultSourceBurst
			}
			m.SetPriv(st)
			return nil
		},
		Run: func(m *Module) (uint64, uint64) {
			st := m.Priv().(*sourceState)
			if og := m.OGate(0); og != nil {
				og.Record(st.burst, nil)
			}
			return st.burst, st.burst * st.pktSize * 8
		},
	})

	r.Register(&Class{
		Name:      "Sink",
		Help:      "discards every received packet",
		NumIGates: 1,
		NumOGates: 0,
		Init: func(m *Module, arg interface{}) error {
			if _, ok := arg.(*SinkConfig); !ok {
				return fmt.Errorf("expected Sink argument: %w", unix.EINVAL)
			}
			return nil
		},
	})

	r.Register(&Class{
		Name:      "Queue",
		Help:      "buffers packets in a bounded ring, drained by its task",
		NumIGates: 1,
		NumOGates: 1,
		NumTasks:  1,
		Init: func(m *Module, arg interface{}) error {
			cfg, ok := arg.(*QueueConfig)
			if !ok {
				return fmt.Errorf("expected Queue argument: %w", unix.EINVAL)
			}
			st := &queueState{size: cfg.Size, prefetch: cfg.Prefetch}
			if st.size == 0 {
				st.size = defaultQueueSize
			}
			if st.size&(st.size-1) != 0 {
				return fmt.Errorf("'size' must be a power of 2: %w", unix.EINVAL)
			}
			m.SetPriv(st)
			return nil
		},
	})

	r.Register(&Class{
		Name:      "Buffer",
		Help:      "accumulates sub-batch arrivals into full batches",
		NumIGates: 1,
		NumOGates: 1,
		Init: func(m *Module, arg interface{}) error {
			if _, ok := arg.(*BufferConfig); !ok {
				return fmt.Errorf("expected Buffer argument: %w", unix.EINVAL)
			}
			return nil
		},
	})

	r.Register(&Class{
		Name:      "Bypass",
		Help:      "forwards packets untouched",
		NumIGates: 1,
		NumOGates: 1,
		Init: func(m *Module, arg interface{}) error {
			if _, ok := arg.(*BypassConfig); !ok {
				return fmt.Errorf("expected Bypass argument: %w", unix.EINVAL)
			}
			return nil
		},
	})

	r.Register(&Class{
		Name:      "Merge",
		Help:      "funnels any number of input gates into one output",
		NumIGates: MaxGates,
		NumOGates: 1,
		Init: func(m *Module, arg interface{}) error {
			if _, ok := arg.(*MergeConfig); !ok {
				return fmt.Errorf("expected Merge argument: %w", unix.EINVAL)
			}
			return nil
		},
	})

	r.Register(&Class{
		Name:      "Split",
		Help:      "steers packets to output gates by a packet field or attribute",
		NumIGates: 1,
		NumOGates: MaxGates,
		Init: func(m *Module, arg interface{}) error {
			cfg, ok := arg.(*SplitConfig)
			if !ok {
				return fmt.Errorf("expected Split argument: %w", unix.EINVAL)
			}
			if cfg.Size == 0 || cfg.Size > 8 {
				return fmt.Errorf("'size' must be 1-8: %w", unix.EINVAL)
			}
			if cfg.Attribute != "" {
				m.AddAttr(cfg.Attribute, int(cfg.Size), AttrRead)
			}
			m.SetPriv(&splitState{size: cfg.Size, offset: cfg.Offset})
			return nil
		},
	})

	r.Register(&Class{
		Name:     "NoOP",
		Help:     "does nothing, placeholder task owner",
		NumTasks: 1,
		Init: func(m *Module, arg interface{}) error {
			if _, ok := arg.(*NoopConfig); !ok {
				return fmt.Errorf("expected NoOP argument: %w", unix.EINVAL)
			}
			return nil
		},
	})

	r.Register(&Class{
		Name:      "PortInc",
		Help:      "receives packets from a port's inbound queues",
		NumIGates: 0,
		NumOGates: 1,
		NumTasks:  1,
		Init: func(m *Module, arg interface{}) error {
			cfg, ok := arg.(*PortIncConfig)
			if !ok {
				return fmt.Errorf("expected PortInc argument: %w", unix.EINVAL)
			}
			if cfg.Port == "" {
				return fmt.Errorf("missing 'port': %w", unix.EINVAL)
			}
			p := lookupPort(cfg.Port)
			if p == nil {
				return fmt.Errorf("no port %q found: %w", cfg.Port, unix.ENOENT)
			}
			m.AcquirePort(p)
			m.SetPriv(&portIncState{p: p, prefetch: cfg.Prefetch})
			m.SetDesc(p.Name())
			return nil
		},
	})

	r.Register(&Class{
		Name:      "PortOut",
		Help:      "transmits packets on a port's outbound queues",
		NumIGates: 1,
		NumOGates: 0,
		Init: func(m *Module, arg interface{}) error {
			cfg, ok := arg.(*PortOutConfig)
			if !ok {
				return fmt.Errorf("expected PortOut argument: %w", unix.EINVAL)
			}
			if cfg.Port == "" {
				return fmt.Errorf("missing 'port': %w", unix.EINVAL)
			}
			p := lookupPort(cfg.Port)
			if p == nil {
				return fmt.Errorf("no port %q found: %w", cfg.Port, unix.ENOENT)
			}
			m.AcquirePort(p)
			m.SetPriv(&portOutState{p: p})
			m.SetDesc(p.Name())
			return nil
		},
	})
}
