package api

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sys/unix"

	pb "github.com/openbess/bessd/api/proto"
	"github.com/openbess/bessd/pkg/log"
	"github.com/openbess/bessd/pkg/manager"
)

func TestMain(m *testing.M) {
	log.Init(log.Config{Level: log.ErrorLevel})
	os.Exit(m.Run())
}

func newTestServer(t *testing.T) *Server {
	t.Helper()
	mgr := manager.New(manager.Config{DefaultCore: 0})
	s := NewServer(mgr, Options{TrackGates: true})
	t.Cleanup(func() {
		mgr.Workers().Barrier().Resume()
		mgr.DestroyAllWorkers()
	})
	return s
}

func requireOK(t *testing.T, e *pb.Error) {
	t.Helper()
	require.Zero(t, e.GetErr(), "unexpected error: %s", e.GetErrmsg())
}

func requireErr(t *testing.T, e *pb.Error, errno unix.Errno, msg string) {
	t.Helper()
	require.NotNil(t, e)
	assert.Equal(t, int64(errno), e.GetErr())
	if msg != "" {
		assert.Equal(t, msg, e.GetErrmsg())
	}
}

func addWorker(t *testing.T, s *Server, wid, core uint64) {
	t.Helper()
	resp, err := s.AddWorker(context.Background(), &pb.AddWorkerRequest{Wid: wid, Core: core})
	require.NoError(t, err)
	requireOK(t, resp.GetError())
}

func createModule(t *testing.T, s *Server, req *pb.CreateModuleRequest) string {
	t.Helper()
	resp, err := s.CreateModule(context.Background(), req)
	require.NoError(t, err)
	requireOK(t, resp.GetError())
	return resp.GetName()
}

func sourceReq(name string) *pb.CreateModuleRequest {
	return &pb.CreateModuleRequest{
		Name:   name,
		Mclass: "Source",
		Arg:    &pb.CreateModuleRequest_SourceArg{SourceArg: &pb.SourceArg{}},
	}
}

func sinkReq(name string) *pb.CreateModuleRequest {
	return &pb.CreateModuleRequest{
		Name:   name,
		Mclass: "Sink",
		Arg:    &pb.CreateModuleRequest_SinkArg{SinkArg: &pb.SinkArg{}},
	}
}

func nullPortReq(name string) *pb.CreatePortRequest {
	return &pb.CreatePortRequest{
		Port: &pb.Port{Name: name, Driver: "Null"},
		Arg:  &pb.CreatePortRequest_NullArg{NullArg: &pb.NullPortArg{}},
	}
}

func TestAddWorkerAndListWorkers(t *testing.T) {
	s := newTestServer(t)
	ctx := context.Background()

	addWorker(t, s, 0, 0)

	require.Eventually(t, func() bool {
		resp, err := s.ListWorkers(ctx, &pb.EmptyRequest{})
		require.NoError(t, err)
		return len(resp.GetWorkersStatus()) == 1 && resp.GetWorkersStatus()[0].GetRunning()
	}, time.Second, time.Millisecond)

	resp, err := s.ListWorkers(ctx, &pb.EmptyRequest{})
	require.NoError(t, err)
	require.Len(t, resp.GetWorkersStatus(), 1)
	ws := resp.GetWorkersStatus()[0]
	assert.Equal(t, int64(0), ws.GetWid())
	assert.True(t, ws.GetRunning())
	assert.Equal(t, int64(0), ws.GetCore())
	assert.Equal(t, int64(1), ws.GetNumTcs())
	assert.Equal(t, int64(0), ws.GetSilentDrops())
}

func TestAddWorkerValidation(t *testing.T) {
	s := newTestServer(t)
	ctx := context.Background()

	resp, err := s.AddWorker(ctx, &pb.AddWorkerRequest{Wid: 9999, Core: 0})
	require.NoError(t, err)
	requireErr(t, resp.GetError(), unix.EINVAL, "Missing 'wid' field")

	resp, err = s.AddWorker(ctx, &pb.AddWorkerRequest{Wid: 0, Core: 100000})
	require.NoError(t, err)
	requireErr(t, resp.GetError(), unix.EINVAL, "Invalid core 100000")

	addWorker(t, s, 0, 0)
	resp, err = s.AddWorker(ctx, &pb.AddWorkerRequest{Wid: 0, Core: 0})
	require.NoError(t, err)
	requireErr(t, resp.GetError(), unix.EEXIST, "worker:0 is already active")
}

func TestResetWorkers(t *testing.T) {
	s := newTestServer(t)
	ctx := context.Background()

	addWorker(t, s, 0, 0)
	resp, err := s.ResetWorkers(ctx, &pb.EmptyRequest{})
	require.NoError(t, err)
	requireOK(t, resp.GetError())

	list, err := s.ListWorkers(ctx, &pb.EmptyRequest{})
	require.NoError(t, err)
	assert.Empty(t, list.GetWorkersStatus())

	// The default class died with its worker.
	tcs, err := s.ListTcs(ctx, &pb.ListTcsRequest{Wid: -1})
	require.NoError(t, err)
	assert.Empty(t, tcs.GetClassesStatus())
}

func TestAddTc(t *testing.T) {
	s := newTestServer(t)
	ctx := context.Background()

	addWorker(t, s, 0, 0)

	resp, err := s.AddTc(ctx, &pb.AddTcRequest{Class: &pb.TrafficClass{
		Name:     "bulk",
		Wid:      0,
		Priority: 5,
		Limit:    &pb.TrafficClass_Resource{Packets: 1000000},
	}})
	require.NoError(t, err)
	requireOK(t, resp.GetError())

	tcs, err := s.ListTcs(ctx, &pb.ListTcsRequest{Wid: 0})
	require.NoError(t, err)

	var found *pb.ListTcsResponse_TrafficClassStatus
	for _, st := range tcs.GetClassesStatus() {
		if st.GetClass().GetName() == "bulk" {
			found = st
		}
	}
	require.NotNil(t, found, "bulk missing from ListTcs")
	assert.Equal(t, "_default_0", found.GetParent())
	assert.Equal(t, int64(0), found.GetTasks())
	assert.Equal(t, int64(0), found.GetClass().GetWid())
	assert.Equal(t, uint32(5), found.GetClass().GetPriority())
	assert.Equal(t, int64(1000000), found.GetClass().GetLimit().GetPackets())
	assert.Zero(t, found.GetClass().GetLimit().GetCycles())
}

func TestAddTcDuplicateName(t *testing.T) {
	s := newTestServer(t)
	ctx := context.Background()

	addWorker(t, s, 0, 0)
	req := &pb.AddTcRequest{Class: &pb.TrafficClass{Name: "bulk", Wid: 0, Priority: 5}}

	resp, err := s.AddTc(ctx, req)
	require.NoError(t, err)
	requireOK(t, resp.GetError())

	resp, err = s.AddTc(ctx, req)
	require.NoError(t, err)
	requireErr(t, resp.GetError(), unix.EINVAL, "Name 'bulk' already exists")
}

func TestAddTcAutoLaunchesWorkerZero(t *testing.T) {
	s := newTestServer(t)
	ctx := context.Background()

	resp, err := s.AddTc(ctx, &pb.AddTcRequest{Class: &pb.TrafficClass{
		Name: "bulk", Wid: 0, Priority: 5,
	}})
	require.NoError(t, err)
	requireOK(t, resp.GetError())

	list, err := s.ListWorkers(ctx, &pb.EmptyRequest{})
	require.NoError(t, err)
	require.Len(t, list.GetWorkersStatus(), 1)
	assert.Equal(t, int64(2), list.GetWorkersStatus()[0].GetNumTcs())
}

func TestAddTcValidation(t *testing.T) {
	s := newTestServer(t)
	ctx := context.Background()
	addWorker(t, s, 0, 0)

	tests := []struct {
		name  string
		class *pb.TrafficClass
		errno unix.Errno
		msg   string
	}{
		{"missing name", &pb.TrafficClass{Wid: 0, Priority: 5},
			unix.EINVAL, "Missing 'name' field"},
		{"invalid name", &pb.TrafficClass{Name: "no-dash", Wid: 0, Priority: 5},
			unix.EINVAL, "'no-dash' is an invalid name"},
		{"wid out of range", &pb.TrafficClass{Name: "c1", Wid: 64, Priority: 5},
			unix.EINVAL, "'wid' must be between 0 and 63"},
		{"inactive worker", &pb.TrafficClass{Name: "c1", Wid: 3, Priority: 5},
			unix.EINVAL, "worker:3 does not exist"},
		{"reserved priority", &pb.TrafficClass{Name: "c1", Wid: 0, Priority: 4294967295},
			unix.EINVAL, "Priority 4294967295 is reserved"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := s.AddTc(ctx, &pb.AddTcRequest{Class: tt.class})
			require.NoError(t, err)
			requireErr(t, resp.GetError(), tt.errno, tt.msg)
		})
	}
}

func TestGetTcStats(t *testing.T) {
	s := newTestServer(t)
	ctx := context.Background()

	resp, err := s.GetTcStats(ctx, &pb.GetTcStatsRequest{})
	require.NoError(t, err)
	requireErr(t, resp.GetError(), unix.EINVAL, "Argument must be a name in str")

	resp, err = s.GetTcStats(ctx, &pb.GetTcStatsRequest{Name: "nope"})
	require.NoError(t, err)
	requireErr(t, resp.GetError(), unix.ENOENT, "No TC 'nope' found")

	addWorker(t, s, 0, 0)
	tcResp, err := s.AddTc(ctx, &pb.AddTcRequest{Class: &pb.TrafficClass{Name: "bulk", Wid: 0, Priority: 5}})
	require.NoError(t, err)
	requireOK(t, tcResp.GetError())

	resp, err = s.GetTcStats(ctx, &pb.GetTcStatsRequest{Name: "bulk"})
	require.NoError(t, err)
	requireOK(t, resp.GetError())
	assert.Positive(t, resp.GetTimestamp())
	assert.Zero(t, resp.GetPackets(), "no tasks attached yet")
}

func TestTcStatsAccumulateFromDispatch(t *testing.T) {
	s := newTestServer(t)
	ctx := context.Background()

	addWorker(t, s, 0, 0)
	tcResp, err := s.AddTc(ctx, &pb.AddTcRequest{Class: &pb.TrafficClass{Name: "bulk", Wid: 0, Priority: 5}})
	require.NoError(t, err)
	requireOK(t, tcResp.GetError())

	createModule(t, s, sourceReq("src"))
	att, err := s.AttachTask(ctx, &pb.AttachTaskRequest{Name: "src", Taskid: 0, Tc: "bulk"})
	require.NoError(t, err)
	requireOK(t, att.GetError())

	require.Eventually(t, func() bool {
		resp, err := s.GetTcStats(ctx, &pb.GetTcStatsRequest{Name: "bulk"})
		require.NoError(t, err)
		return resp.GetCount() > 0 && resp.GetPackets() > 0
	}, 2*time.Second, 5*time.Millisecond, "worker never charged usage to the class")
}

func TestResetTcs(t *testing.T) {
	s := newTestServer(t)
	ctx := context.Background()

	addWorker(t, s, 0, 0)
	tcResp, err := s.AddTc(ctx, &pb.AddTcRequest{Class: &pb.TrafficClass{Name: "bulk", Wid: 0, Priority: 5}})
	require.NoError(t, err)
	requireOK(t, tcResp.GetError())

	resp, err := s.ResetTcs(ctx, &pb.EmptyRequest{})
	require.NoError(t, err)
	requireOK(t, resp.GetError())

	// The user class is gone; the auto-free default survives.
	tcs, err := s.ListTcs(ctx, &pb.ListTcsRequest{Wid: -1})
	require.NoError(t, err)
	require.Len(t, tcs.GetClassesStatus(), 1)
	assert.Equal(t, "_default_0", tcs.GetClassesStatus()[0].GetClass().GetName())
}

func TestResetTcsRefusesBusyClass(t *testing.T) {
	s := newTestServer(t)
	ctx := context.Background()

	addWorker(t, s, 0, 0)
	tcResp, err := s.AddTc(ctx, &pb.AddTcRequest{Class: &pb.TrafficClass{Name: "bulk", Wid: 0, Priority: 5}})
	require.NoError(t, err)
	requireOK(t, tcResp.GetError())

	createModule(t, s, sourceReq("src"))
	att, err := s.AttachTask(ctx, &pb.AttachTaskRequest{Name: "src", Taskid: 0, Tc: "bulk"})
	require.NoError(t, err)
	requireOK(t, att.GetError())

	resp, err := s.ResetTcs(ctx, &pb.EmptyRequest{})
	require.NoError(t, err)
	requireErr(t, resp.GetError(), unix.EBUSY, "TC bulk still has 1 tasks")

	// Destroying the module detaches its tasks; the reset then succeeds.
	destroy, err := s.DestroyModule(ctx, &pb.DestroyModuleRequest{Name: "src"})
	require.NoError(t, err)
	requireOK(t, destroy.GetError())

	resp, err = s.ResetTcs(ctx, &pb.EmptyRequest{})
	require.NoError(t, err)
	requireOK(t, resp.GetError())
}

func TestListTcsValidation(t *testing.T) {
	s := newTestServer(t)
	ctx := context.Background()

	resp, err := s.ListTcs(ctx, &pb.ListTcsRequest{Wid: 64})
	require.NoError(t, err)
	requireErr(t, resp.GetError(), unix.EINVAL, "'wid' must be between 0 and 63")

	resp, err = s.ListTcs(ctx, &pb.ListTcsRequest{Wid: 5})
	require.NoError(t, err)
	requireErr(t, resp.GetError(), unix.EINVAL, "worker:5 does not exist")
}

func TestConnectModulesAndModuleInfo(t *testing.T) {
	s := newTestServer(t)
	ctx := context.Background()

	createModule(t, s, sourceReq("src"))
	createModule(t, s, sinkReq("snk"))

	conn, err := s.ConnectModules(ctx, &pb.ConnectModulesRequest{M1: "src", Ogate: 0, M2: "snk", Igate: 0})
	require.NoError(t, err)
	requireOK(t, conn.GetError())

	info, err := s.GetModuleInfo(ctx, &pb.GetModuleInfoRequest{Name: "src"})
	require.NoError(t, err)
	requireOK(t, info.GetError())
	assert.Equal(t, "src", info.GetName())
	assert.Equal(t, "Source", info.GetMclass())
	require.Len(t, info.GetOgates(), 1)
	og := info.GetOgates()[0]
	assert.Equal(t, uint64(0), og.GetOgate())
	assert.Equal(t, "snk", og.GetName())
	assert.Equal(t, uint64(0), og.GetIgate())
	assert.Empty(t, info.GetIgates())

	info, err = s.GetModuleInfo(ctx, &pb.GetModuleInfoRequest{Name: "snk"})
	require.NoError(t, err)
	requireOK(t, info.GetError())
	require.Len(t, info.GetIgates(), 1)
	ig := info.GetIgates()[0]
	assert.Equal(t, uint64(0), ig.GetIgate())
	require.Len(t, ig.GetOgates(), 1)
	assert.Equal(t, "src", ig.GetOgates()[0].GetName())
	assert.Equal(t, uint64(0), ig.GetOgates()[0].GetOgate())
}

func TestDestroyModuleTearsDownUpstreamLinks(t *testing.T) {
	s := newTestServer(t)
	ctx := context.Background()

	createModule(t, s, sourceReq("src"))
	createModule(t, s, sinkReq("snk"))

	conn, err := s.ConnectModules(ctx, &pb.ConnectModulesRequest{M1: "src", Ogate: 0, M2: "snk", Igate: 0})
	require.NoError(t, err)
	requireOK(t, conn.GetError())

	destroy, err := s.DestroyModule(ctx, &pb.DestroyModuleRequest{Name: "src"})
	require.NoError(t, err)
	requireOK(t, destroy.GetError())

	info, err := s.GetModuleInfo(ctx, &pb.GetModuleInfoRequest{Name: "snk"})
	require.NoError(t, err)
	requireOK(t, info.GetError())
	assert.Empty(t, info.GetIgates(), "upstream link must be torn down")
}

func TestConnectModulesValidation(t *testing.T) {
	s := newTestServer(t)
	ctx := context.Background()

	resp, err := s.ConnectModules(ctx, &pb.ConnectModulesRequest{M1: "", M2: "snk"})
	require.NoError(t, err)
	requireErr(t, resp.GetError(), unix.EINVAL, "Missing 'm1' or 'm2' field")

	resp, err = s.ConnectModules(ctx, &pb.ConnectModulesRequest{M1: "ghost", M2: "snk"})
	require.NoError(t, err)
	requireErr(t, resp.GetError(), unix.ENOENT, "No module 'ghost' found")

	createModule(t, s, sourceReq("src"))
	createModule(t, s, sinkReq("snk"))

	resp, err = s.ConnectModules(ctx, &pb.ConnectModulesRequest{M1: "src", Ogate: 0, M2: "snk", Igate: 0})
	require.NoError(t, err)
	requireOK(t, resp.GetError())

	// Fan-out on an ogate is one.
	resp, err = s.ConnectModules(ctx, &pb.ConnectModulesRequest{M1: "src", Ogate: 0, M2: "snk", Igate: 0})
	require.NoError(t, err)
	assert.Equal(t, int64(unix.EBUSY), resp.GetError().GetErr())
	assert.Equal(t, "Connection src:0->0:snk failed", resp.GetError().GetErrmsg())
}

func TestDisconnectModules(t *testing.T) {
	s := newTestServer(t)
	ctx := context.Background()

	createModule(t, s, sourceReq("src"))
	createModule(t, s, sinkReq("snk"))

	// Disconnecting an unconnected ogate is not idempotent.
	resp, err := s.DisconnectModules(ctx, &pb.DisconnectModulesRequest{Name: "src", Ogate: 0})
	require.NoError(t, err)
	assert.Equal(t, int64(unix.ENOENT), resp.GetError().GetErr())

	conn, err := s.ConnectModules(ctx, &pb.ConnectModulesRequest{M1: "src", Ogate: 0, M2: "snk", Igate: 0})
	require.NoError(t, err)
	requireOK(t, conn.GetError())

	resp, err = s.DisconnectModules(ctx, &pb.DisconnectModulesRequest{Name: "src", Ogate: 0})
	require.NoError(t, err)
	requireOK(t, resp.GetError())

	// Both gates are inactive again.
	info, err := s.GetModuleInfo(ctx, &pb.GetModuleInfoRequest{Name: "src"})
	require.NoError(t, err)
	assert.Empty(t, info.GetOgates())
	info, err = s.GetModuleInfo(ctx, &pb.GetModuleInfoRequest{Name: "snk"})
	require.NoError(t, err)
	assert.Empty(t, info.GetIgates())
}

func TestCreateModuleValidation(t *testing.T) {
	s := newTestServer(t)
	ctx := context.Background()

	resp, err := s.CreateModule(ctx, &pb.CreateModuleRequest{})
	require.NoError(t, err)
	requireErr(t, resp.GetError(), unix.EINVAL, "Missing 'mclass' field")
	assert.Empty(t, resp.GetName())

	resp, err = s.CreateModule(ctx, &pb.CreateModuleRequest{Mclass: "Ghost"})
	require.NoError(t, err)
	requireErr(t, resp.GetError(), unix.ENOENT, "No mclass 'Ghost' found")

	resp, err = s.CreateModule(ctx, &pb.CreateModuleRequest{Mclass: "Source"})
	require.NoError(t, err)
	requireErr(t, resp.GetError(), unix.EINVAL, "Missing argument")

	resp, err = s.CreateModule(ctx, &pb.CreateModuleRequest{Name: "bad name", Mclass: "Source",
		Arg: &pb.CreateModuleRequest_SourceArg{SourceArg: &pb.SourceArg{}}})
	require.NoError(t, err)
	requireErr(t, resp.GetError(), unix.EINVAL, "'bad name' is an invalid name")

	createModule(t, s, sourceReq("src"))
	resp, err = s.CreateModule(ctx, sourceReq("src"))
	require.NoError(t, err)
	requireErr(t, resp.GetError(), unix.EEXIST, "Name 'src' already exists")
	assert.Empty(t, resp.GetName())

	// Argument variant must match the mclass.
	resp, err = s.CreateModule(ctx, &pb.CreateModuleRequest{Name: "m", Mclass: "Source",
		Arg: &pb.CreateModuleRequest_SinkArg{SinkArg: &pb.SinkArg{}}})
	require.NoError(t, err)
	assert.Equal(t, int64(unix.EINVAL), resp.GetError().GetErr())
	assert.Empty(t, resp.GetName())
}

func TestCreateModuleGeneratesName(t *testing.T) {
	s := newTestServer(t)

	assert.Equal(t, "source0", createModule(t, s, sourceReq("")))
	assert.Equal(t, "source1", createModule(t, s, sourceReq("")))
}

func TestCreateDestroyRoundTrip(t *testing.T) {
	s := newTestServer(t)
	ctx := context.Background()

	before, err := s.ListModules(ctx, &pb.EmptyRequest{})
	require.NoError(t, err)

	createModule(t, s, sourceReq("src"))
	destroy, err := s.DestroyModule(ctx, &pb.DestroyModuleRequest{Name: "src"})
	require.NoError(t, err)
	requireOK(t, destroy.GetError())

	after, err := s.ListModules(ctx, &pb.EmptyRequest{})
	require.NoError(t, err)
	assert.Len(t, after.GetModules(), len(before.GetModules()))

	info, err := s.GetModuleInfo(ctx, &pb.GetModuleInfoRequest{Name: "src"})
	require.NoError(t, err)
	requireErr(t, info.GetError(), unix.ENOENT, "No module 'src' found")

	// The name is reusable.
	createModule(t, s, sourceReq("src"))
}

func TestListModulesBeyondOnePage(t *testing.T) {
	s := newTestServer(t)
	ctx := context.Background()

	for i := 0; i < 20; i++ {
		createModule(t, s, &pb.CreateModuleRequest{
			Mclass: "Bypass",
			Arg:    &pb.CreateModuleRequest_BypassArg{BypassArg: &pb.BypassArg{}},
		})
	}

	resp, err := s.ListModules(ctx, &pb.EmptyRequest{})
	require.NoError(t, err)
	assert.Len(t, resp.GetModules(), 20)
	assert.Equal(t, "Bypass", resp.GetModules()[0].GetMclass())
}

func TestGetModuleInfoMetadata(t *testing.T) {
	s := newTestServer(t)
	ctx := context.Background()

	createModule(t, s, &pb.CreateModuleRequest{
		Name:   "spl",
		Mclass: "Split",
		Arg: &pb.CreateModuleRequest_SplitArg{SplitArg: &pb.SplitArg{
			Size:      4,
			Attribute: "flow_id",
		}},
	})

	info, err := s.GetModuleInfo(ctx, &pb.GetModuleInfoRequest{Name: "spl"})
	require.NoError(t, err)
	requireOK(t, info.GetError())
	require.Len(t, info.GetMetadata(), 1)
	attr := info.GetMetadata()[0]
	assert.Equal(t, "flow_id", attr.GetName())
	assert.Equal(t, uint64(4), attr.GetSize())
	assert.Equal(t, "read", attr.GetMode())
	assert.Equal(t, int64(0), attr.GetOffset())
}

func TestAttachTask(t *testing.T) {
	s := newTestServer(t)
	ctx := context.Background()

	addWorker(t, s, 0, 0)
	tcResp, err := s.AddTc(ctx, &pb.AddTcRequest{Class: &pb.TrafficClass{Name: "bulk", Wid: 0, Priority: 5}})
	require.NoError(t, err)
	requireOK(t, tcResp.GetError())

	createModule(t, s, sourceReq("src"))

	resp, err := s.AttachTask(ctx, &pb.AttachTaskRequest{Name: "src", Taskid: 0, Tc: "bulk"})
	require.NoError(t, err)
	requireOK(t, resp.GetError())

	tcs, err := s.ListTcs(ctx, &pb.ListTcsRequest{Wid: 0})
	require.NoError(t, err)
	for _, st := range tcs.GetClassesStatus() {
		if st.GetClass().GetName() == "bulk" {
			assert.Equal(t, int64(1), st.GetTasks())
		}
	}

	// Re-attach requires an explicit detach first.
	resp, err = s.AttachTask(ctx, &pb.AttachTaskRequest{Name: "src", Taskid: 0, Tc: "bulk"})
	require.NoError(t, err)
	requireErr(t, resp.GetError(), unix.EBUSY, "Task src:0 is already attached to a TC")
}

func TestAttachTaskToWorkerDefault(t *testing.T) {
	s := newTestServer(t)
	ctx := context.Background()

	addWorker(t, s, 0, 0)
	createModule(t, s, sourceReq("src"))

	resp, err := s.AttachTask(ctx, &pb.AttachTaskRequest{Name: "src", Taskid: 0, Wid: 0})
	require.NoError(t, err)
	requireOK(t, resp.GetError())

	tcs, err := s.ListTcs(ctx, &pb.ListTcsRequest{Wid: 0})
	require.NoError(t, err)
	require.Len(t, tcs.GetClassesStatus(), 1)
	assert.Equal(t, int64(1), tcs.GetClassesStatus()[0].GetTasks())
}

func TestAttachTaskValidation(t *testing.T) {
	s := newTestServer(t)
	ctx := context.Background()

	resp, err := s.AttachTask(ctx, &pb.AttachTaskRequest{})
	require.NoError(t, err)
	requireErr(t, resp.GetError(), unix.EINVAL, "Missing 'name' field")

	resp, err = s.AttachTask(ctx, &pb.AttachTaskRequest{Name: "ghost"})
	require.NoError(t, err)
	requireErr(t, resp.GetError(), unix.ENOENT, "No module 'ghost' found")

	createModule(t, s, sourceReq("src"))
	createModule(t, s, sinkReq("snk"))

	resp, err = s.AttachTask(ctx, &pb.AttachTaskRequest{Name: "src", Taskid: 32})
	require.NoError(t, err)
	requireErr(t, resp.GetError(), unix.EINVAL, "'taskid' must be between 0 and 31")

	resp, err = s.AttachTask(ctx, &pb.AttachTaskRequest{Name: "snk", Taskid: 0})
	require.NoError(t, err)
	requireErr(t, resp.GetError(), unix.ENOENT, "Task snk:0 does not exist")

	resp, err = s.AttachTask(ctx, &pb.AttachTaskRequest{Name: "src", Taskid: 0, Tc: "ghost"})
	require.NoError(t, err)
	requireErr(t, resp.GetError(), unix.ENOENT, "No TC 'ghost' found")

	resp, err = s.AttachTask(ctx, &pb.AttachTaskRequest{Name: "src", Taskid: 0, Wid: 64})
	require.NoError(t, err)
	requireErr(t, resp.GetError(), unix.EINVAL, "'wid' must be between 0 and 63")

	resp, err = s.AttachTask(ctx, &pb.AttachTaskRequest{Name: "src", Taskid: 0, Wid: 2})
	require.NoError(t, err)
	requireErr(t, resp.GetError(), unix.EINVAL, "Worker 2 does not exist")
}

func TestPorts(t *testing.T) {
	s := newTestServer(t)
	ctx := context.Background()

	create, err := s.CreatePort(ctx, nullPortReq("p0"))
	require.NoError(t, err)
	requireOK(t, create.GetError())
	assert.Equal(t, "p0", create.GetName())

	list, err := s.ListPorts(ctx, &pb.EmptyRequest{})
	require.NoError(t, err)
	require.Len(t, list.GetPorts(), 1)
	assert.Equal(t, "p0", list.GetPorts()[0].GetName())
	assert.Equal(t, "Null", list.GetPorts()[0].GetDriver())

	stats, err := s.GetPortStats(ctx, &pb.GetPortStatsRequest{Name: "p0"})
	require.NoError(t, err)
	requireOK(t, stats.GetError())
	assert.Zero(t, stats.GetInc().GetPackets())
	assert.Zero(t, stats.GetOut().GetPackets())
	assert.Positive(t, stats.GetTimestamp())

	destroy, err := s.DestroyPort(ctx, &pb.DestroyPortRequest{Name: "p0"})
	require.NoError(t, err)
	requireOK(t, destroy.GetError())

	list, err = s.ListPorts(ctx, &pb.EmptyRequest{})
	require.NoError(t, err)
	assert.Empty(t, list.GetPorts())
}

func TestCreatePortValidation(t *testing.T) {
	s := newTestServer(t)
	ctx := context.Background()

	resp, err := s.CreatePort(ctx, &pb.CreatePortRequest{Port: &pb.Port{Name: "p0"}})
	require.NoError(t, err)
	requireErr(t, resp.GetError(), unix.EINVAL, "Missing 'driver' field")

	resp, err = s.CreatePort(ctx, &pb.CreatePortRequest{Port: &pb.Port{Name: "p0", Driver: "PMD"}})
	require.NoError(t, err)
	requireErr(t, resp.GetError(), unix.ENOENT, "No port driver 'PMD' found")

	resp, err = s.CreatePort(ctx, &pb.CreatePortRequest{Port: &pb.Port{Name: "p0", Driver: "Null"}})
	require.NoError(t, err)
	requireErr(t, resp.GetError(), unix.EINVAL, "Missing argument")

	good := nullPortReq("p0")
	resp, err = s.CreatePort(ctx, good)
	require.NoError(t, err)
	requireOK(t, resp.GetError())

	resp, err = s.CreatePort(ctx, good)
	require.NoError(t, err)
	requireErr(t, resp.GetError(), unix.EEXIST, "Name 'p0' already exists")
	assert.Empty(t, resp.GetName())

	// Driver validation failure reports the driver's errno with an empty name.
	resp, err = s.CreatePort(ctx, &pb.CreatePortRequest{
		Port: &pb.Port{Name: "s0", Driver: "Socket"},
		Arg:  &pb.CreatePortRequest_SocketArg{SocketArg: &pb.SocketPortArg{}},
	})
	require.NoError(t, err)
	assert.Equal(t, int64(unix.EINVAL), resp.GetError().GetErr())
	assert.Empty(t, resp.GetName())
}

func TestDestroyPortValidation(t *testing.T) {
	s := newTestServer(t)
	ctx := context.Background()

	resp, err := s.DestroyPort(ctx, &pb.DestroyPortRequest{})
	require.NoError(t, err)
	requireErr(t, resp.GetError(), unix.EINVAL, "Argument must be a name in str")

	resp, err = s.DestroyPort(ctx, &pb.DestroyPortRequest{Name: "ghost"})
	require.NoError(t, err)
	requireErr(t, resp.GetError(), unix.ENOENT, "No port `ghost' found")
}

func TestPortBusyWhileReferenced(t *testing.T) {
	s := newTestServer(t)
	ctx := context.Background()

	create, err := s.CreatePort(ctx, nullPortReq("p0"))
	require.NoError(t, err)
	requireOK(t, create.GetError())

	createModule(t, s, &pb.CreateModuleRequest{
		Name:   "pinc",
		Mclass: "PortInc",
		Arg:    &pb.CreateModuleRequest_PortIncArg{PortIncArg: &pb.PortIncArg{Port: "p0"}},
	})

	destroy, err := s.DestroyPort(ctx, &pb.DestroyPortRequest{Name: "p0"})
	require.NoError(t, err)
	assert.Equal(t, int64(unix.EBUSY), destroy.GetError().GetErr())

	reset, err := s.ResetPorts(ctx, &pb.EmptyRequest{})
	require.NoError(t, err)
	assert.Equal(t, int64(unix.EBUSY), reset.GetError().GetErr())

	// Destroying the module releases the reference.
	dm, err := s.DestroyModule(ctx, &pb.DestroyModuleRequest{Name: "pinc"})
	require.NoError(t, err)
	requireOK(t, dm.GetError())

	destroy, err = s.DestroyPort(ctx, &pb.DestroyPortRequest{Name: "p0"})
	require.NoError(t, err)
	requireOK(t, destroy.GetError())
}

func TestListDriversAndGetDriverInfo(t *testing.T) {
	s := newTestServer(t)
	ctx := context.Background()

	list, err := s.ListDrivers(ctx, &pb.EmptyRequest{})
	require.NoError(t, err)
	assert.Contains(t, list.GetDriverNames(), "Null")
	assert.Contains(t, list.GetDriverNames(), "Socket")

	info, err := s.GetDriverInfo(ctx, &pb.GetDriverInfoRequest{DriverName: "Null"})
	require.NoError(t, err)
	requireOK(t, info.GetError())
	assert.Equal(t, "Null", info.GetName())
	assert.NotEmpty(t, info.GetHelp())

	info, err = s.GetDriverInfo(ctx, &pb.GetDriverInfoRequest{DriverName: "PMD"})
	require.NoError(t, err)
	requireErr(t, info.GetError(), unix.ENOENT, "No port driver 'PMD' found")

	info, err = s.GetDriverInfo(ctx, &pb.GetDriverInfoRequest{})
	require.NoError(t, err)
	requireErr(t, info.GetError(), unix.EINVAL, "Argument must be a name in str")
}

func TestPauseResume(t *testing.T) {
	s := newTestServer(t)
	ctx := context.Background()

	addWorker(t, s, 0, 0)

	resp, err := s.PauseAll(ctx, &pb.EmptyRequest{})
	require.NoError(t, err)
	requireOK(t, resp.GetError())
	assert.True(t, s.mgr.Workers().Barrier().Paused())

	// Mutations run fine inside a client-held pause and do not resume it.
	createModule(t, s, sourceReq("src"))
	assert.True(t, s.mgr.Workers().Barrier().Paused())

	resp, err = s.ResumeAll(ctx, &pb.EmptyRequest{})
	require.NoError(t, err)
	requireOK(t, resp.GetError())
	assert.False(t, s.mgr.Workers().Barrier().Paused())
}

func TestTcpdump(t *testing.T) {
	s := newTestServer(t)
	ctx := context.Background()

	createModule(t, s, sourceReq("src"))
	createModule(t, s, sinkReq("snk"))

	resp, err := s.EnableTcpdump(ctx, &pb.EnableTcpdumpRequest{Name: "ghost", Ogate: 0, Fifo: "/tmp/f"})
	require.NoError(t, err)
	requireErr(t, resp.GetError(), unix.ENOENT, "No module 'ghost' found")

	// The gate array has not grown yet.
	resp, err = s.EnableTcpdump(ctx, &pb.EnableTcpdumpRequest{Name: "src", Ogate: 0, Fifo: "/tmp/f"})
	require.NoError(t, err)
	requireErr(t, resp.GetError(), unix.EINVAL, "Output gate '0' does not exist")

	conn, err := s.ConnectModules(ctx, &pb.ConnectModulesRequest{M1: "src", Ogate: 0, M2: "snk", Igate: 0})
	require.NoError(t, err)
	requireOK(t, conn.GetError())

	fifo := filepath.Join(t.TempDir(), "tap.pcap")
	require.NoError(t, unix.Mkfifo(fifo, 0o600))
	reader, err := os.OpenFile(fifo, os.O_RDONLY|unix.O_NONBLOCK, 0)
	require.NoError(t, err)
	defer reader.Close()

	resp, err = s.EnableTcpdump(ctx, &pb.EnableTcpdumpRequest{Name: "src", Ogate: 0, Fifo: fifo})
	require.NoError(t, err)
	requireOK(t, resp.GetError())

	// A second tap on the same gate is refused.
	resp, err = s.EnableTcpdump(ctx, &pb.EnableTcpdumpRequest{Name: "src", Ogate: 0, Fifo: fifo})
	require.NoError(t, err)
	assert.Equal(t, int64(unix.EBUSY), resp.GetError().GetErr())

	off, err := s.DisableTcpdump(ctx, &pb.DisableTcpdumpRequest{Name: "src", Ogate: 0})
	require.NoError(t, err)
	requireOK(t, off.GetError())

	off, err = s.DisableTcpdump(ctx, &pb.DisableTcpdumpRequest{Name: "src", Ogate: 0})
	require.NoError(t, err)
	assert.Equal(t, int64(unix.ENOENT), off.GetError().GetErr())
}

func TestResetAll(t *testing.T) {
	s := newTestServer(t)
	ctx := context.Background()

	addWorker(t, s, 0, 0)
	tcResp, err := s.AddTc(ctx, &pb.AddTcRequest{Class: &pb.TrafficClass{Name: "bulk", Wid: 0, Priority: 5}})
	require.NoError(t, err)
	requireOK(t, tcResp.GetError())

	create, err := s.CreatePort(ctx, nullPortReq("p0"))
	require.NoError(t, err)
	requireOK(t, create.GetError())

	createModule(t, s, sourceReq("src"))
	createModule(t, s, sinkReq("snk"))
	conn, err := s.ConnectModules(ctx, &pb.ConnectModulesRequest{M1: "src", Ogate: 0, M2: "snk", Igate: 0})
	require.NoError(t, err)
	requireOK(t, conn.GetError())

	att, err := s.AttachTask(ctx, &pb.AttachTaskRequest{Name: "src", Taskid: 0, Tc: "bulk"})
	require.NoError(t, err)
	requireOK(t, att.GetError())

	resp, err := s.ResetAll(ctx, &pb.EmptyRequest{})
	require.NoError(t, err)
	requireOK(t, resp.GetError())

	modules, err := s.ListModules(ctx, &pb.EmptyRequest{})
	require.NoError(t, err)
	assert.Empty(t, modules.GetModules())

	ports, err := s.ListPorts(ctx, &pb.EmptyRequest{})
	require.NoError(t, err)
	assert.Empty(t, ports.GetPorts())

	tcs, err := s.ListTcs(ctx, &pb.ListTcsRequest{Wid: -1})
	require.NoError(t, err)
	assert.Empty(t, tcs.GetClassesStatus())

	workers, err := s.ListWorkers(ctx, &pb.EmptyRequest{})
	require.NoError(t, err)
	assert.Empty(t, workers.GetWorkersStatus())
}

func TestKillBess(t *testing.T) {
	s := newTestServer(t)

	var killed bool
	s.kill = func() { killed = true }

	resp, err := s.KillBess(context.Background(), &pb.EmptyRequest{})
	require.NoError(t, err)
	requireOK(t, resp.GetError())
	assert.True(t, killed)
}
