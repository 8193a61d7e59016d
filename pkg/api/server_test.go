package api

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/test/bufconn"

	pb "github.com/openbess/bessd/api/proto"
)

// dialTestServer serves s over an in-memory listener and returns a connected
// stub, exercising the real transport and codec path.
func dialTestServer(t *testing.T, s *Server) pb.BESSControlClient {
	t.Helper()

	lis := bufconn.Listen(1 << 20)
	pb.RegisterBESSControlServer(s.grpc, s)
	go func() {
		_ = s.grpc.Serve(lis)
	}()
	t.Cleanup(s.grpc.Stop)

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, addr string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	return pb.NewBESSControlClient(conn)
}

func TestEndToEndOverGRPC(t *testing.T) {
	s := newTestServer(t)
	c := dialTestServer(t, s)
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	resp, err := c.AddWorker(ctx, &pb.AddWorkerRequest{Wid: 0, Core: 0})
	require.NoError(t, err)
	requireOK(t, resp.GetError())

	list, err := c.ListWorkers(ctx, &pb.EmptyRequest{})
	require.NoError(t, err)
	require.Len(t, list.GetWorkersStatus(), 1)
	assert.Equal(t, int64(0), list.GetWorkersStatus()[0].GetWid())

	create, err := c.CreateModule(ctx, &pb.CreateModuleRequest{
		Name:   "src",
		Mclass: "Source",
		Arg:    &pb.CreateModuleRequest_SourceArg{SourceArg: &pb.SourceArg{PktSize: 100}},
	})
	require.NoError(t, err)
	requireOK(t, create.GetError())
	assert.Equal(t, "src", create.GetName())

	snk, err := c.CreateModule(ctx, &pb.CreateModuleRequest{
		Name:   "snk",
		Mclass: "Sink",
		Arg:    &pb.CreateModuleRequest_SinkArg{SinkArg: &pb.SinkArg{}},
	})
	require.NoError(t, err)
	requireOK(t, snk.GetError())

	conn, err := c.ConnectModules(ctx, &pb.ConnectModulesRequest{M1: "src", Ogate: 0, M2: "snk", Igate: 0})
	require.NoError(t, err)
	requireOK(t, conn.GetError())

	info, err := c.GetModuleInfo(ctx, &pb.GetModuleInfoRequest{Name: "src"})
	require.NoError(t, err)
	requireOK(t, info.GetError())
	require.Len(t, info.GetOgates(), 1)
	assert.Equal(t, "snk", info.GetOgates()[0].GetName())

	// A domain failure rides inside the response; the call itself succeeds.
	missing, err := c.GetModuleInfo(ctx, &pb.GetModuleInfoRequest{Name: "ghost"})
	require.NoError(t, err)
	assert.NotZero(t, missing.GetError().GetErr())

	reset, err := c.ResetAll(ctx, &pb.EmptyRequest{})
	require.NoError(t, err)
	requireOK(t, reset.GetError())
}
