package client

import (
	"context"
	"fmt"

	"gopkg.in/yaml.v3"

	pb "github.com/openbess/bessd/api/proto"
)

// Manifest is a declarative pipeline description replayed through the RPC
// surface: workers first, then classes, ports, modules, and finally the
// connections between them.
type Manifest struct {
	Workers     []WorkerSpec     `yaml:"workers"`
	Tcs         []TcSpec         `yaml:"tcs"`
	Ports       []PortSpec       `yaml:"ports"`
	Modules     []ModuleSpec     `yaml:"modules"`
	Connections []ConnectionSpec `yaml:"connections"`
}

type WorkerSpec struct {
	Wid  uint64 `yaml:"wid"`
	Core uint64 `yaml:"core"`
}

type ResourceSpec struct {
	Schedules int64 `yaml:"schedules"`
	Cycles    int64 `yaml:"cycles"`
	Packets   int64 `yaml:"packets"`
	Bits      int64 `yaml:"bits"`
}

type TcSpec struct {
	Name     string        `yaml:"name"`
	Wid      int64         `yaml:"wid"`
	Priority uint32        `yaml:"priority"`
	Limit    *ResourceSpec `yaml:"limit"`
	MaxBurst *ResourceSpec `yaml:"max_burst"`
}

type PortSpec struct {
	Name     string `yaml:"name"`
	Driver   string `yaml:"driver"`
	NumIncQ  uint64 `yaml:"num_inc_q"`
	NumOutQ  uint64 `yaml:"num_out_q"`
	SizeIncQ uint64 `yaml:"size_inc_q"`
	SizeOutQ uint64 `yaml:"size_out_q"`
	MacAddr  string `yaml:"mac_addr"`

	// Driver-specific fields.
	Path string `yaml:"path"`
	Dev  string `yaml:"dev"`
}

type ModuleSpec struct {
	Name   string `yaml:"name"`
	Mclass string `yaml:"mclass"`

	// Mclass-specific fields.
	PktSize   uint64 `yaml:"pkt_size"`
	Burst     uint64 `yaml:"burst"`
	Size      uint64 `yaml:"size"`
	Prefetch  bool   `yaml:"prefetch"`
	Attribute string `yaml:"attribute"`
	Offset    int64  `yaml:"offset"`
	Port      string `yaml:"port"`
}

type ConnectionSpec struct {
	M1    string `yaml:"m1"`
	Ogate uint64 `yaml:"ogate"`
	M2    string `yaml:"m2"`
	Igate uint64 `yaml:"igate"`
}

// ParseManifest decodes a YAML pipeline manifest.
func ParseManifest(data []byte) (*Manifest, error) {
	m := &Manifest{}
	if err := yaml.Unmarshal(data, m); err != nil {
		return nil, fmt.Errorf("failed to parse manifest: %w", err)
	}
	return m, nil
}

func resourceArg(r *ResourceSpec) *pb.TrafficClass_Resource {
	if r == nil {
		return nil
	}
	return &pb.TrafficClass_Resource{
		Schedules: r.Schedules,
		Cycles:    r.Cycles,
		Packets:   r.Packets,
		Bits:      r.Bits,
	}
}

func portRequest(spec PortSpec) (*pb.CreatePortRequest, error) {
	req := &pb.CreatePortRequest{
		Port:     &pb.Port{Name: spec.Name, Driver: spec.Driver},
		NumIncQ:  spec.NumIncQ,
		NumOutQ:  spec.NumOutQ,
		SizeIncQ: spec.SizeIncQ,
		SizeOutQ: spec.SizeOutQ,
		MacAddr:  spec.MacAddr,
	}
	switch spec.Driver {
	case "Null":
		req.Arg = &pb.CreatePortRequest_NullArg{NullArg: &pb.NullPortArg{}}
	case "Loopback":
		req.Arg = &pb.CreatePortRequest_LoopbackArg{LoopbackArg: &pb.LoopbackPortArg{}}
	case "Socket":
		req.Arg = &pb.CreatePortRequest_SocketArg{SocketArg: &pb.SocketPortArg{Path: spec.Path}}
	case "PCAP":
		req.Arg = &pb.CreatePortRequest_PcapArg{PcapArg: &pb.PcapPortArg{Dev: spec.Dev}}
	default:
		return nil, fmt.Errorf("unknown port driver %q", spec.Driver)
	}
	return req, nil
}

func moduleRequest(spec ModuleSpec) (*pb.CreateModuleRequest, error) {
	req := &pb.CreateModuleRequest{
		Name:   spec.Name,
		Mclass: spec.Mclass,
	}
	switch spec.Mclass {
	case "Source":
		req.Arg = &pb.CreateModuleRequest_SourceArg{SourceArg: &pb.SourceArg{
			PktSize: spec.PktSize,
			Burst:   spec.Burst,
		}}
	case "Sink":
		req.Arg = &pb.CreateModuleRequest_SinkArg{SinkArg: &pb.SinkArg{}}
	case "Queue":
		req.Arg = &pb.CreateModuleRequest_QueueArg{QueueArg: &pb.QueueArg{
			Size:     spec.Size,
			Prefetch: spec.Prefetch,
		}}
	case "Buffer":
		req.Arg = &pb.CreateModuleRequest_BufferArg{BufferArg: &pb.BufferArg{}}
	case "Bypass":
		req.Arg = &pb.CreateModuleRequest_BypassArg{BypassArg: &pb.BypassArg{}}
	case "Merge":
		req.Arg = &pb.CreateModuleRequest_MergeArg{MergeArg: &pb.MergeArg{}}
	case "Split":
		req.Arg = &pb.CreateModuleRequest_SplitArg{SplitArg: &pb.SplitArg{
			Size:      spec.Size,
			Attribute: spec.Attribute,
			Offset:    spec.Offset,
		}}
	case "NoOP":
		req.Arg = &pb.CreateModuleRequest_NoopArg{NoopArg: &pb.NoopArg{}}
	case "PortInc":
		req.Arg = &pb.CreateModuleRequest_PortIncArg{PortIncArg: &pb.PortIncArg{
			Port:     spec.Port,
			Prefetch: spec.Prefetch,
		}}
	case "PortOut":
		req.Arg = &pb.CreateModuleRequest_PortOutArg{PortOutArg: &pb.PortOutArg{
			Port: spec.Port,
		}}
	default:
		return nil, fmt.Errorf("unknown mclass %q", spec.Mclass)
	}
	return req, nil
}

// Apply replays the manifest against the daemon in dependency order, pausing
// the workers around the whole batch so the pipeline comes up atomically.
func (c *Client) Apply(ctx context.Context, m *Manifest) error {
	pauseResp, err := c.PauseAll(ctx, &pb.EmptyRequest{})
	if err != nil {
		return err
	}
	if err := CheckResponse(pauseResp); err != nil {
		return fmt.Errorf("pause failed: %w", err)
	}
	defer func() {
		// Best effort; the daemon stays paused only if resume itself fails.
		_, _ = c.ResumeAll(ctx, &pb.EmptyRequest{})
	}()

	for _, spec := range m.Workers {
		resp, err := c.AddWorker(ctx, &pb.AddWorkerRequest{Wid: spec.Wid, Core: spec.Core})
		if err != nil {
			return err
		}
		if err := CheckResponse(resp); err != nil {
			return fmt.Errorf("worker %d: %w", spec.Wid, err)
		}
	}

	for _, spec := range m.Tcs {
		resp, err := c.AddTc(ctx, &pb.AddTcRequest{Class: &pb.TrafficClass{
			Name:     spec.Name,
			Wid:      spec.Wid,
			Priority: spec.Priority,
			Limit:    resourceArg(spec.Limit),
			MaxBurst: resourceArg(spec.MaxBurst),
		}})
		if err != nil {
			return err
		}
		if err := CheckResponse(resp); err != nil {
			return fmt.Errorf("tc %q: %w", spec.Name, err)
		}
	}

	for _, spec := range m.Ports {
		req, err := portRequest(spec)
		if err != nil {
			return err
		}
		resp, err := c.CreatePort(ctx, req)
		if err != nil {
			return err
		}
		if err := CheckResponse(resp); err != nil {
			return fmt.Errorf("port %q: %w", spec.Name, err)
		}
	}

	for _, spec := range m.Modules {
		req, err := moduleRequest(spec)
		if err != nil {
			return err
		}
		resp, err := c.CreateModule(ctx, req)
		if err != nil {
			return err
		}
		if err := CheckResponse(resp); err != nil {
			return fmt.Errorf("module %q: %w", spec.Name, err)
		}
	}

	for _, spec := range m.Connections {
		resp, err := c.ConnectModules(ctx, &pb.ConnectModulesRequest{
			M1:    spec.M1,
			M2:    spec.M2,
			Ogate: spec.Ogate,
			Igate: spec.Igate,
		})
		if err != nil {
			return err
		}
		if err := CheckResponse(resp); err != nil {
			return fmt.Errorf("connection %s:%d -> %d:%s: %w",
				spec.M1, spec.Ogate, spec.Igate, spec.M2, err)
		}
	}

	return nil
}
