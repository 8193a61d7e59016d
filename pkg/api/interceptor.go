package api

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"google.golang.org/grpc"
)

// serializeInterceptor runs handlers one at a time. The control plane is a
// single writer over the graph; gRPC would otherwise dispatch handlers
// concurrently.
func serializeInterceptor(mu *sync.Mutex) grpc.UnaryServerInterceptor {
	return func(
		ctx context.Context,
		req interface{},
		info *grpc.UnaryServerInfo,
		handler grpc.UnaryHandler,
	) (interface{}, error) {
		mu.Lock()
		defer mu.Unlock()
		return handler(ctx, req)
	}
}

// loggingInterceptor emits a debug line per RPC with its latency.
func loggingInterceptor(logger zerolog.Logger) grpc.UnaryServerInterceptor {
	return func(
		ctx context.Context,
		req interface{},
		info *grpc.UnaryServerInfo,
		handler grpc.UnaryHandler,
	) (interface{}, error) {
		start := time.Now()
		resp, err := handler(ctx, req)
		logger.Debug().
			Str("method", info.FullMethod).
			Dur("duration", time.Since(start)).
			Err(err).
			Msg("RPC handled")
		return resp, err
	}
}
