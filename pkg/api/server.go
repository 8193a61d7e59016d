package api

import (
	"fmt"
	"net"
	"os"
	"sync"

	"github.com/rs/zerolog"
	"google.golang.org/grpc"

	pb "github.com/openbess/bessd/api/proto"
	"github.com/openbess/bessd/pkg/log"
	"github.com/openbess/bessd/pkg/manager"
)

// Server implements the BESSControl gRPC service. It holds no graph state of
// its own; everything lives in the manager.
type Server struct {
	pb.UnimplementedBESSControlServer

	mgr  *manager.Manager
	grpc *grpc.Server

	// mu serializes handler execution: the graph has a single writer. The
	// metrics collector shares it to take consistent snapshots.
	mu sync.Mutex

	trackGates bool
	kill       func()
	logger     zerolog.Logger
}

// Options tunes server behavior.
type Options struct {
	// TrackGates includes per-gate batch and packet counters in module info
	// dumps.
	TrackGates bool
}

// NewServer creates the control service facade over mgr.
func NewServer(mgr *manager.Manager, opts Options) *Server {
	s := &Server{
		mgr:        mgr,
		trackGates: opts.TrackGates,
		kill:       func() { os.Exit(0) },
		logger:     log.WithComponent("api"),
	}
	s.grpc = grpc.NewServer(grpc.ChainUnaryInterceptor(
		loggingInterceptor(s.logger),
		serializeInterceptor(&s.mu),
	))
	return s
}

// Locker exposes the handler serialization lock for the metrics collector.
func (s *Server) Locker() sync.Locker { return &s.mu }

// Start listens on addr and serves until Stop.
func (s *Server) Start(addr string) error {
	lis, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("failed to listen: %w", err)
	}

	pb.RegisterBESSControlServer(s.grpc, s)

	s.logger.Info().Str("addr", addr).Msg("Control API listening")
	return s.grpc.Serve(lis)
}

// Stop gracefully stops the gRPC server.
func (s *Server) Stop() {
	if s.grpc != nil {
		s.grpc.GracefulStop()
	}
}
