package api

import (
	"context"
	"time"

	"golang.org/x/sys/unix"

	pb "github.com/openbess/bessd/api/proto"
	"github.com/openbess/bessd/pkg/module"
	"github.com/openbess/bessd/pkg/namespace"
	"github.com/openbess/bessd/pkg/port"
	"github.com/openbess/bessd/pkg/sched"
	"github.com/openbess/bessd/pkg/worker"
)

// listBlockSize is the paging block for the List* handlers.
const listBlockSize = 16

func epochTime() float64 {
	return float64(time.Now().UnixNano()) / 1e9
}

func ok() *pb.EmptyResponse {
	return &pb.EmptyResponse{}
}

func fail(e *pb.Error) *pb.EmptyResponse {
	return &pb.EmptyResponse{Error: e}
}

// ResetAll empties the graph, the port table, the TC trees, and the worker
// set, in that order, stopping at the first failing step.
func (s *Server) ResetAll(ctx context.Context, req *pb.EmptyRequest) (*pb.EmptyResponse, error) {
	resp, _ := s.ResetModules(ctx, req)
	if resp.GetError().GetErr() != 0 {
		return resp, nil
	}
	resp, _ = s.ResetPorts(ctx, req)
	if resp.GetError().GetErr() != 0 {
		return resp, nil
	}
	resp, _ = s.ResetTcs(ctx, req)
	if resp.GetError().GetErr() != 0 {
		return resp, nil
	}
	resp, _ = s.ResetWorkers(ctx, req)
	return resp, nil
}

func (s *Server) PauseAll(ctx context.Context, req *pb.EmptyRequest) (*pb.EmptyResponse, error) {
	s.mgr.Workers().Barrier().Pause()
	s.logger.Info().Msg("*** All workers have been paused ***")
	return ok(), nil
}

func (s *Server) ResumeAll(ctx context.Context, req *pb.EmptyRequest) (*pb.EmptyResponse, error) {
	s.logger.Info().Msg("*** Resuming ***")
	s.mgr.Workers().Barrier().Resume()
	return ok(), nil
}

func (s *Server) KillBess(ctx context.Context, req *pb.EmptyRequest) (*pb.EmptyResponse, error) {
	s.logger.Info().Msg("Halt requested by a client")
	s.kill()
	return ok(), nil
}

func (s *Server) ResetWorkers(ctx context.Context, req *pb.EmptyRequest) (*pb.EmptyResponse, error) {
	s.mgr.DestroyAllWorkers()
	s.logger.Info().Msg("*** All workers have been destroyed ***")
	return ok(), nil
}

func (s *Server) ListWorkers(ctx context.Context, req *pb.EmptyRequest) (*pb.ListWorkersResponse, error) {
	resp := &pb.ListWorkersResponse{}
	for wid := 0; wid < worker.MaxWorkers; wid++ {
		w := s.mgr.Workers().Get(wid)
		if w == nil {
			continue
		}
		resp.WorkersStatus = append(resp.WorkersStatus, &pb.ListWorkersResponse_WorkerStatus{
			Wid:         int64(wid),
			Running:     w.Running(),
			Core:        int64(w.Core()),
			NumTcs:      int64(w.Scheduler().NumClasses()),
			SilentDrops: int64(w.SilentDrops()),
		})
	}
	return resp, nil
}

func (s *Server) AddWorker(ctx context.Context, req *pb.AddWorkerRequest) (*pb.EmptyResponse, error) {
	wid := req.GetWid()
	if wid >= worker.MaxWorkers {
		return fail(errorf(unix.EINVAL, "Missing 'wid' field")), nil
	}
	core := req.GetCore()
	if !worker.IsCPUPresent(int(core)) {
		return fail(errorf(unix.EINVAL, "Invalid core %d", core)), nil
	}
	if s.mgr.Workers().IsActive(int(wid)) {
		return fail(errorf(unix.EEXIST, "worker:%d is already active", wid)), nil
	}
	if err := s.mgr.LaunchWorker(int(wid), int(core)); err != nil {
		return fail(driverError(err, "launching worker:%d failed", wid)), nil
	}
	return ok(), nil
}

func (s *Server) ResetTcs(ctx context.Context, req *pb.EmptyRequest) (*pb.EmptyResponse, error) {
	// Snapshot first: destruction below mutates the registry.
	var classes []*sched.Class
	it := s.mgr.Namespace().NewIter(namespace.KindTC)
	for {
		obj := it.Next()
		if obj == nil {
			break
		}
		classes = append(classes, obj.(*sched.Class))
	}
	it.Release()

	var failure *pb.Error
	s.mgr.UnderPause(func() {
		for _, c := range classes {
			if n := c.NumTasks(); n > 0 {
				failure = errorf(unix.EBUSY, "TC %s still has %d tasks", c.Settings.Name, n)
				return
			}
			if c.Settings.AutoFree {
				continue
			}
			c.Leave()
			if c.DecRef() {
				_ = s.mgr.Namespace().Remove(namespace.KindTC, c.Settings.Name)
			}
		}
	})
	if failure != nil {
		return fail(failure), nil
	}
	return ok(), nil
}

func resourceMsg(vals [sched.NumResources]int64) *pb.TrafficClass_Resource {
	return &pb.TrafficClass_Resource{
		Schedules: vals[sched.ResourceCount],
		Cycles:    vals[sched.ResourceCycle],
		Packets:   vals[sched.ResourcePacket],
		Bits:      vals[sched.ResourceBit],
	}
}

func (s *Server) ListTcs(ctx context.Context, req *pb.ListTcsRequest) (*pb.ListTcsResponse, error) {
	resp := &pb.ListTcsResponse{}

	widFilter := req.GetWid()
	if widFilter >= 0 {
		if widFilter >= worker.MaxWorkers {
			resp.Error = errorf(unix.EINVAL, "'wid' must be between 0 and %d", worker.MaxWorkers-1)
			return resp, nil
		}
		if !s.mgr.Workers().IsActive(int(widFilter)) {
			resp.Error = errorf(unix.EINVAL, "worker:%d does not exist", widFilter)
			return resp, nil
		}
	}

	it := s.mgr.Namespace().NewIter(namespace.KindTC)
	defer it.Release()
	for {
		obj := it.Next()
		if obj == nil {
			break
		}
		c := obj.(*sched.Class)

		var wid int
		if widFilter >= 0 {
			w := s.mgr.Workers().Get(int(widFilter))
			if c.Scheduler() != w.Scheduler() {
				continue
			}
			wid = int(widFilter)
		} else {
			wid = s.mgr.WorkerFor(c)
		}

		parent := ""
		if p := c.Parent(); p != nil {
			parent = p.Settings.Name
		}

		resp.ClassesStatus = append(resp.ClassesStatus, &pb.ListTcsResponse_TrafficClassStatus{
			Parent: parent,
			Tasks:  int64(c.NumTasks()),
			Class: &pb.TrafficClass{
				Name:     c.Settings.Name,
				Wid:      int64(wid),
				Priority: c.Settings.Priority,
				Limit:    resourceMsg(c.Settings.Limit),
				MaxBurst: resourceMsg(c.Settings.MaxBurst),
			},
		})
	}

	return resp, nil
}

func (s *Server) AddTc(ctx context.Context, req *pb.AddTcRequest) (*pb.EmptyResponse, error) {
	class := req.GetClass()
	name := class.GetName()
	if name == "" {
		return fail(errorf(unix.EINVAL, "Missing 'name' field")), nil
	}
	if !namespace.IsValidName(name) {
		return fail(errorf(unix.EINVAL, "'%s' is an invalid name", name)), nil
	}
	if s.mgr.Namespace().Exists(name) {
		return fail(errorf(unix.EINVAL, "Name '%s' already exists", name)), nil
	}

	wid := class.GetWid()
	if wid < 0 || wid >= worker.MaxWorkers {
		return fail(errorf(unix.EINVAL, "'wid' must be between 0 and %d", worker.MaxWorkers-1)), nil
	}
	if !s.mgr.Workers().IsActive(int(wid)) {
		if s.mgr.Workers().NumWorkers() == 0 && wid == 0 {
			if err := s.mgr.LaunchWorker(0, s.mgr.DefaultCore()); err != nil {
				return fail(driverError(err, "launching worker:0 failed")), nil
			}
		} else {
			return fail(errorf(unix.EINVAL, "worker:%d does not exist", wid)), nil
		}
	}

	if class.GetPriority() == sched.DefaultPriority {
		return fail(errorf(unix.EINVAL, "Priority %d is reserved", sched.DefaultPriority)), nil
	}

	params := sched.Params{
		Name:          name,
		Priority:      class.GetPriority(),
		Share:         1,
		ShareResource: sched.ResourceCount,
	}
	if limit := class.GetLimit(); limit != nil {
		params.Limit[sched.ResourceCount] = limit.GetSchedules()
		params.Limit[sched.ResourceCycle] = limit.GetCycles()
		params.Limit[sched.ResourcePacket] = limit.GetPackets()
		params.Limit[sched.ResourceBit] = limit.GetBits()
	}
	if burst := class.GetMaxBurst(); burst != nil {
		params.MaxBurst[sched.ResourceCount] = burst.GetSchedules()
		params.MaxBurst[sched.ResourceCycle] = burst.GetCycles()
		params.MaxBurst[sched.ResourcePacket] = burst.GetPackets()
		params.MaxBurst[sched.ResourceBit] = burst.GetBits()
	}

	c := sched.NewClass(params)
	if err := s.mgr.Namespace().Insert(namespace.KindTC, name, c); err != nil {
		return fail(driverError(err, "registering TC '%s' failed", name)), nil
	}

	w := s.mgr.Workers().Get(int(wid))
	s.mgr.UnderPause(func() {
		w.Scheduler().Join(c, nil)
	})

	return ok(), nil
}

func (s *Server) GetTcStats(ctx context.Context, req *pb.GetTcStatsRequest) (*pb.GetTcStatsResponse, error) {
	resp := &pb.GetTcStatsResponse{}

	name := req.GetName()
	if name == "" {
		resp.Error = errorf(unix.EINVAL, "Argument must be a name in str")
		return resp, nil
	}
	c := s.mgr.FindTC(name)
	if c == nil {
		resp.Error = errorf(unix.ENOENT, "No TC '%s' found", name)
		return resp, nil
	}

	usage := c.Usage()
	resp.Timestamp = epochTime()
	resp.Count = usage[sched.ResourceCount]
	resp.Cycles = usage[sched.ResourceCycle]
	resp.Packets = usage[sched.ResourcePacket]
	resp.Bits = usage[sched.ResourceBit]
	return resp, nil
}

func (s *Server) ListDrivers(ctx context.Context, req *pb.EmptyRequest) (*pb.ListDriversResponse, error) {
	resp := &pb.ListDriversResponse{}
	for offset := 0; ; {
		drivers := s.mgr.Drivers().List(offset, listBlockSize)
		if len(drivers) == 0 {
			break
		}
		for _, d := range drivers {
			resp.DriverNames = append(resp.DriverNames, d.Name)
		}
		offset += len(drivers)
	}
	return resp, nil
}

func (s *Server) GetDriverInfo(ctx context.Context, req *pb.GetDriverInfoRequest) (*pb.GetDriverInfoResponse, error) {
	resp := &pb.GetDriverInfoResponse{}

	name := req.GetDriverName()
	if name == "" {
		resp.Error = errorf(unix.EINVAL, "Argument must be a name in str")
		return resp, nil
	}
	d := s.mgr.Drivers().Find(name)
	if d == nil {
		resp.Error = errorf(unix.ENOENT, "No port driver '%s' found", name)
		return resp, nil
	}

	resp.Name = d.Name
	resp.Help = d.Help
	return resp, nil
}

// destroyPort tears down p and unregisters its name.
func (s *Server) destroyPort(p *port.Port) error {
	if err := port.Destroy(p); err != nil {
		return err
	}
	return s.mgr.Namespace().Remove(namespace.KindPort, p.Name())
}

func (s *Server) ResetPorts(ctx context.Context, req *pb.EmptyRequest) (*pb.EmptyResponse, error) {
	var failure *pb.Error
	s.mgr.UnderPause(func() {
		for {
			objs := s.mgr.Namespace().List(namespace.KindPort, 0, 1)
			if len(objs) == 0 {
				return
			}
			p := objs[0].(*port.Port)
			if err := s.destroyPort(p); err != nil {
				failure = driverError(err, "destroying port '%s' failed", p.Name())
				return
			}
		}
	})
	if failure != nil {
		return fail(failure), nil
	}
	s.logger.Info().Msg("*** All ports have been destroyed ***")
	return ok(), nil
}

func (s *Server) ListPorts(ctx context.Context, req *pb.EmptyRequest) (*pb.ListPortsResponse, error) {
	resp := &pb.ListPortsResponse{}
	for offset := 0; ; {
		objs := s.mgr.Namespace().List(namespace.KindPort, offset, listBlockSize)
		if len(objs) == 0 {
			break
		}
		for _, obj := range objs {
			p := obj.(*port.Port)
			resp.Ports = append(resp.Ports, &pb.Port{
				Name:   p.Name(),
				Driver: p.Driver().Name,
			})
		}
		offset += len(objs)
	}
	return resp, nil
}

// portArg maps the request one-of to the driver argument.
func portArg(req *pb.CreatePortRequest) interface{} {
	switch arg := req.GetArg().(type) {
	case *pb.CreatePortRequest_NullArg:
		return &port.NullConfig{}
	case *pb.CreatePortRequest_LoopbackArg:
		return &port.LoopbackConfig{}
	case *pb.CreatePortRequest_SocketArg:
		return &port.SocketConfig{Path: arg.SocketArg.GetPath()}
	case *pb.CreatePortRequest_PcapArg:
		return &port.PcapConfig{Dev: arg.PcapArg.GetDev()}
	default:
		return nil
	}
}

func (s *Server) CreatePort(ctx context.Context, req *pb.CreatePortRequest) (*pb.CreatePortResponse, error) {
	resp := &pb.CreatePortResponse{}

	driverName := req.GetPort().GetDriver()
	if driverName == "" {
		resp.Error = errorf(unix.EINVAL, "Missing 'driver' field")
		return resp, nil
	}
	d := s.mgr.Drivers().Find(driverName)
	if d == nil {
		resp.Error = errorf(unix.ENOENT, "No port driver '%s' found", driverName)
		return resp, nil
	}

	arg := portArg(req)
	if arg == nil {
		resp.Error = errorf(unix.EINVAL, "Missing argument")
		return resp, nil
	}

	name := req.GetPort().GetName()
	if name == "" {
		name = s.mgr.GenerateName(d.Name)
	} else {
		if !namespace.IsValidName(name) {
			resp.Error = errorf(unix.EINVAL, "'%s' is an invalid name", name)
			return resp, nil
		}
		if s.mgr.Namespace().Exists(name) {
			resp.Error = errorf(unix.EEXIST, "Name '%s' already exists", name)
			return resp, nil
		}
	}

	queues := port.QueueConfig{}
	queues.NumQ[port.DirInc] = int(req.GetNumIncQ())
	queues.NumQ[port.DirOut] = int(req.GetNumOutQ())
	queues.SizeQ[port.DirInc] = int(req.GetSizeIncQ())
	queues.SizeQ[port.DirOut] = int(req.GetSizeOutQ())
	if queues.NumQ[port.DirInc] == 0 {
		queues.NumQ[port.DirInc] = 1
	}
	if queues.NumQ[port.DirOut] == 0 {
		queues.NumQ[port.DirOut] = 1
	}

	var p *port.Port
	var failure *pb.Error
	s.mgr.UnderPause(func() {
		var err error
		p, err = port.Create(d, name, queues, req.GetMacAddr(), arg)
		if err != nil {
			failure = driverError(err, "%v", err)
			return
		}
		if err := s.mgr.Namespace().Insert(namespace.KindPort, name, p); err != nil {
			failure = driverError(err, "registering port '%s' failed", name)
		}
	})
	if failure != nil {
		resp.Error = failure
		return resp, nil
	}

	resp.Name = p.Name()
	return resp, nil
}

func (s *Server) DestroyPort(ctx context.Context, req *pb.DestroyPortRequest) (*pb.EmptyResponse, error) {
	name := req.GetName()
	if name == "" {
		return fail(errorf(unix.EINVAL, "Argument must be a name in str")), nil
	}
	p := s.mgr.FindPort(name)
	if p == nil {
		return fail(errorf(unix.ENOENT, "No port `%s' found", name)), nil
	}

	var failure *pb.Error
	s.mgr.UnderPause(func() {
		if err := s.destroyPort(p); err != nil {
			failure = driverError(err, "destroying port '%s' failed", name)
		}
	})
	if failure != nil {
		return fail(failure), nil
	}
	return ok(), nil
}

func (s *Server) GetPortStats(ctx context.Context, req *pb.GetPortStatsRequest) (*pb.GetPortStatsResponse, error) {
	resp := &pb.GetPortStatsResponse{}

	name := req.GetName()
	if name == "" {
		resp.Error = errorf(unix.EINVAL, "Argument must be a name in str")
		return resp, nil
	}
	p := s.mgr.FindPort(name)
	if p == nil {
		resp.Error = errorf(unix.ENOENT, "No port '%s' found", name)
		return resp, nil
	}

	inc := p.Stats(port.DirInc)
	out := p.Stats(port.DirOut)
	resp.Inc = &pb.GetPortStatsResponse_Stat{
		Packets: inc.Packets,
		Dropped: inc.Dropped,
		Bytes:   inc.Bytes,
	}
	resp.Out = &pb.GetPortStatsResponse_Stat{
		Packets: out.Packets,
		Dropped: out.Dropped,
		Bytes:   out.Bytes,
	}
	resp.Timestamp = epochTime()
	return resp, nil
}

// destroyModule tears down m's edges and tasks and unregisters every name
// that dies with it.
func (s *Server) destroyModule(m *module.Module) {
	dead := m.Destroy()
	_ = s.mgr.Namespace().Remove(namespace.KindModule, m.Name())
	for _, c := range dead {
		_ = s.mgr.Namespace().Remove(namespace.KindTC, c.Settings.Name)
	}
}

func (s *Server) ResetModules(ctx context.Context, req *pb.EmptyRequest) (*pb.EmptyResponse, error) {
	s.mgr.UnderPause(func() {
		for {
			objs := s.mgr.Namespace().List(namespace.KindModule, 0, 1)
			if len(objs) == 0 {
				return
			}
			s.destroyModule(objs[0].(*module.Module))
		}
	})
	s.logger.Info().Msg("*** All modules have been destroyed ***")
	return ok(), nil
}

func (s *Server) ListModules(ctx context.Context, req *pb.EmptyRequest) (*pb.ListModulesResponse, error) {
	resp := &pb.ListModulesResponse{}
	for offset := 0; ; {
		objs := s.mgr.Namespace().List(namespace.KindModule, offset, listBlockSize)
		if len(objs) == 0 {
			break
		}
		for _, obj := range objs {
			m := obj.(*module.Module)
			resp.Modules = append(resp.Modules, &pb.ListModulesResponse_Module{
				Name:   m.Name(),
				Mclass: m.Class().Name,
				Desc:   m.Desc(),
			})
		}
		offset += len(objs)
	}
	return resp, nil
}

// moduleArg maps the request one-of to the mclass argument.
func moduleArg(req *pb.CreateModuleRequest) interface{} {
	switch arg := req.GetArg().(type) {
	case *pb.CreateModuleRequest_SourceArg:
		return &module.SourceConfig{
			PktSize: arg.SourceArg.GetPktSize(),
			Burst:   arg.SourceArg.GetBurst(),
		}
	case *pb.CreateModuleRequest_SinkArg:
		return &module.SinkConfig{}
	case *pb.CreateModuleRequest_QueueArg:
		return &module.QueueConfig{
			Size:     arg.QueueArg.GetSize(),
			Prefetch: arg.QueueArg.GetPrefetch(),
		}
	case *pb.CreateModuleRequest_BufferArg:
		return &module.BufferConfig{}
	case *pb.CreateModuleRequest_BypassArg:
		return &module.BypassConfig{}
	case *pb.CreateModuleRequest_MergeArg:
		return &module.MergeConfig{}
	case *pb.CreateModuleRequest_SplitArg:
		return &module.SplitConfig{
			Size:      arg.SplitArg.GetSize(),
			Attribute: arg.SplitArg.GetAttribute(),
			Offset:    arg.SplitArg.GetOffset(),
		}
	case *pb.CreateModuleRequest_NoopArg:
		return &module.NoopConfig{}
	case *pb.CreateModuleRequest_PortIncArg:
		return &module.PortIncConfig{
			Port:     arg.PortIncArg.GetPort(),
			Prefetch: arg.PortIncArg.GetPrefetch(),
		}
	case *pb.CreateModuleRequest_PortOutArg:
		return &module.PortOutConfig{Port: arg.PortOutArg.GetPort()}
	default:
		return nil
	}
}

func (s *Server) CreateModule(ctx context.Context, req *pb.CreateModuleRequest) (*pb.CreateModuleResponse, error) {
	resp := &pb.CreateModuleResponse{}

	mclassName := req.GetMclass()
	if mclassName == "" {
		resp.Error = errorf(unix.EINVAL, "Missing 'mclass' field")
		return resp, nil
	}
	mclass := s.mgr.MClasses().Find(mclassName)
	if mclass == nil {
		resp.Error = errorf(unix.ENOENT, "No mclass '%s' found", mclassName)
		return resp, nil
	}

	arg := moduleArg(req)
	if arg == nil {
		resp.Error = errorf(unix.EINVAL, "Missing argument")
		return resp, nil
	}

	name := req.GetName()
	if name == "" {
		name = s.mgr.GenerateName(mclass.Name)
	} else {
		if !namespace.IsValidName(name) {
			resp.Error = errorf(unix.EINVAL, "'%s' is an invalid name", name)
			return resp, nil
		}
		if s.mgr.Namespace().Exists(name) {
			resp.Error = errorf(unix.EEXIST, "Name '%s' already exists", name)
			return resp, nil
		}
	}

	var m *module.Module
	var failure *pb.Error
	s.mgr.UnderPause(func() {
		var err error
		m, err = module.New(mclass, name, arg)
		if err != nil {
			failure = driverError(err, "%v", err)
			return
		}
		if err := s.mgr.Namespace().Insert(namespace.KindModule, name, m); err != nil {
			failure = driverError(err, "registering module '%s' failed", name)
		}
	})
	if failure != nil {
		resp.Error = failure
		return resp, nil
	}

	resp.Name = m.Name()
	return resp, nil
}

func (s *Server) DestroyModule(ctx context.Context, req *pb.DestroyModuleRequest) (*pb.EmptyResponse, error) {
	name := req.GetName()
	if name == "" {
		return fail(errorf(unix.EINVAL, "Argument must be a name in str")), nil
	}
	m := s.mgr.FindModule(name)
	if m == nil {
		return fail(errorf(unix.ENOENT, "No module '%s' found", name)), nil
	}

	s.mgr.UnderPause(func() {
		s.destroyModule(m)
	})
	return ok(), nil
}

func (s *Server) GetModuleInfo(ctx context.Context, req *pb.GetModuleInfoRequest) (*pb.GetModuleInfoResponse, error) {
	resp := &pb.GetModuleInfoResponse{}

	name := req.GetName()
	if name == "" {
		resp.Error = errorf(unix.EINVAL, "Argument must be a name in str")
		return resp, nil
	}
	m := s.mgr.FindModule(name)
	if m == nil {
		resp.Error = errorf(unix.ENOENT, "No module '%s' found", name)
		return resp, nil
	}

	resp.Name = m.Name()
	resp.Mclass = m.Class().Name
	resp.Desc = m.Desc()

	s.collectIGates(m, resp)
	s.collectOGates(m, resp)
	s.collectMetadata(m, resp)
	return resp, nil
}

func (s *Server) collectIGates(m *module.Module, resp *pb.GetModuleInfoResponse) {
	for _, ig := range m.IGates() {
		if ig == nil {
			continue
		}
		igate := &pb.GetModuleInfoResponse_IGate{Igate: uint64(ig.Idx())}
		for _, og := range ig.Upstream() {
			igate.Ogates = append(igate.Ogates, &pb.GetModuleInfoResponse_IGate_OGate{
				Ogate: uint64(og.Idx()),
				Name:  og.Owner().Name(),
			})
		}
		resp.Igates = append(resp.Igates, igate)
	}
}

func (s *Server) collectOGates(m *module.Module, resp *pb.GetModuleInfoResponse) {
	for _, og := range m.OGates() {
		if og == nil {
			continue
		}
		peer, peerIgate := og.Peer()
		ogate := &pb.GetModuleInfoResponse_OGate{
			Ogate: uint64(og.Idx()),
			Name:  peer.Name(),
			Igate: uint64(peerIgate),
		}
		if s.trackGates {
			cnt, pkts := og.Counters()
			ogate.Cnt = cnt
			ogate.Pkts = pkts
			ogate.Timestamp = epochTime()
		}
		resp.Ogates = append(resp.Ogates, ogate)
	}
}

func (s *Server) collectMetadata(m *module.Module, resp *pb.GetModuleInfoResponse) {
	for _, a := range m.Attrs() {
		resp.Metadata = append(resp.Metadata, &pb.GetModuleInfoResponse_Attribute{
			Name:   a.Name,
			Size:   uint64(a.Size),
			Mode:   a.Mode.String(),
			Offset: int64(a.Offset),
		})
	}
}

func (s *Server) ConnectModules(ctx context.Context, req *pb.ConnectModulesRequest) (*pb.EmptyResponse, error) {
	m1Name := req.GetM1()
	m2Name := req.GetM2()
	ogate := req.GetOgate()
	igate := req.GetIgate()

	if m1Name == "" || m2Name == "" {
		return fail(errorf(unix.EINVAL, "Missing 'm1' or 'm2' field")), nil
	}
	m1 := s.mgr.FindModule(m1Name)
	if m1 == nil {
		return fail(errorf(unix.ENOENT, "No module '%s' found", m1Name)), nil
	}
	m2 := s.mgr.FindModule(m2Name)
	if m2 == nil {
		return fail(errorf(unix.ENOENT, "No module '%s' found", m2Name)), nil
	}

	var failure *pb.Error
	s.mgr.UnderPause(func() {
		if err := module.Connect(m1, int(ogate), m2, int(igate)); err != nil {
			failure = driverError(err, "Connection %s:%d->%d:%s failed", m1Name, ogate, igate, m2Name)
		}
	})
	if failure != nil {
		return fail(failure), nil
	}
	return ok(), nil
}

func (s *Server) DisconnectModules(ctx context.Context, req *pb.DisconnectModulesRequest) (*pb.EmptyResponse, error) {
	name := req.GetName()
	ogate := req.GetOgate()

	if name == "" {
		return fail(errorf(unix.EINVAL, "Missing 'name' field")), nil
	}
	m := s.mgr.FindModule(name)
	if m == nil {
		return fail(errorf(unix.ENOENT, "No module '%s' found", name)), nil
	}

	var failure *pb.Error
	s.mgr.UnderPause(func() {
		if err := module.Disconnect(m, int(ogate)); err != nil {
			failure = driverError(err, "Disconnection %s:%d failed", name, ogate)
		}
	})
	if failure != nil {
		return fail(failure), nil
	}
	return ok(), nil
}

func (s *Server) AttachTask(ctx context.Context, req *pb.AttachTaskRequest) (*pb.EmptyResponse, error) {
	name := req.GetName()
	if name == "" {
		return fail(errorf(unix.EINVAL, "Missing 'name' field")), nil
	}
	m := s.mgr.FindModule(name)
	if m == nil {
		return fail(errorf(unix.ENOENT, "No module '%s' found", name)), nil
	}

	tid := req.GetTaskid()
	if tid >= module.MaxTasksPerModule {
		return fail(errorf(unix.EINVAL, "'taskid' must be between 0 and %d", module.MaxTasksPerModule-1)), nil
	}
	t := m.Task(int(tid))
	if t == nil {
		return fail(errorf(unix.ENOENT, "Task %s:%d does not exist", name, tid)), nil
	}

	if t.Attached() {
		return fail(errorf(unix.EBUSY, "Task %s:%d is already attached to a TC", name, tid)), nil
	}

	var c *sched.Class
	if tcName := req.GetTc(); tcName != "" {
		c = s.mgr.FindTC(tcName)
		if c == nil {
			return fail(errorf(unix.ENOENT, "No TC '%s' found", tcName)), nil
		}
	} else {
		wid := req.GetWid()
		if wid >= worker.MaxWorkers {
			return fail(errorf(unix.EINVAL, "'wid' must be between 0 and %d", worker.MaxWorkers-1)), nil
		}
		if !s.mgr.Workers().IsActive(int(wid)) {
			return fail(errorf(unix.EINVAL, "Worker %d does not exist", wid)), nil
		}
		c = s.mgr.Workers().Get(int(wid)).DefaultClass()
	}

	s.mgr.UnderPause(func() {
		t.Attach(c)
	})
	return ok(), nil
}

func (s *Server) EnableTcpdump(ctx context.Context, req *pb.EnableTcpdumpRequest) (*pb.EmptyResponse, error) {
	name := req.GetName()
	ogate := req.GetOgate()

	if name == "" {
		return fail(errorf(unix.EINVAL, "Missing 'name' field")), nil
	}
	m := s.mgr.FindModule(name)
	if m == nil {
		return fail(errorf(unix.ENOENT, "No module '%s' found", name)), nil
	}
	if int(ogate) >= m.NumOGateSlots() {
		return fail(errorf(unix.EINVAL, "Output gate '%d' does not exist", ogate)), nil
	}

	var failure *pb.Error
	s.mgr.UnderPause(func() {
		if err := module.EnableTap(m, int(ogate), req.GetFifo()); err != nil {
			failure = driverError(err, "Enabling tcpdump %s:%d failed", name, ogate)
		}
	})
	if failure != nil {
		return fail(failure), nil
	}
	return ok(), nil
}

func (s *Server) DisableTcpdump(ctx context.Context, req *pb.DisableTcpdumpRequest) (*pb.EmptyResponse, error) {
	name := req.GetName()
	ogate := req.GetOgate()

	if name == "" {
		return fail(errorf(unix.EINVAL, "Missing 'name' field")), nil
	}
	m := s.mgr.FindModule(name)
	if m == nil {
		return fail(errorf(unix.ENOENT, "No module '%s' found", name)), nil
	}
	if int(ogate) >= m.NumOGateSlots() {
		return fail(errorf(unix.EINVAL, "Output gate '%d' does not exist", ogate)), nil
	}

	var failure *pb.Error
	s.mgr.UnderPause(func() {
		if err := module.DisableTap(m, int(ogate)); err != nil {
			failure = driverError(err, "Disabling tcpdump %s:%d failed", name, ogate)
		}
	})
	if failure != nil {
		return fail(failure), nil
	}
	return ok(), nil
}
