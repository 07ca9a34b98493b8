package worker

import (
	"context"
	"fmt"
	"net"
	"strings"

	"github.com/rs/zerolog"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"strategy-worker/internal/monitor"
	"strategy-worker/pkg/license"
	pb "strategy-worker/proto"
)

// Options controls how the gRPC server is assembled.
type Options struct {
	// Concurrency caps the number of in-flight streams per connection.
	Concurrency int

	// RequireAuth rejects calls without a valid license token when set.
	RequireAuth bool
	Licenses    *license.Manager

	Log zerolog.Logger
}

// NewServer builds the gRPC server and registers the strategy service on it.
func NewServer(svc *Service, opts Options) *grpc.Server {
	if opts.Concurrency < 1 {
		opts.Concurrency = 1
	}
	serverOpts := []grpc.ServerOption{
		grpc.MaxConcurrentStreams(uint32(opts.Concurrency)),
	}
	if opts.RequireAuth {
		serverOpts = append(serverOpts, grpc.UnaryInterceptor(authUnaryInterceptor(opts.Licenses, opts.Log)))
	}

	srv := grpc.NewServer(serverOpts...)
	pb.RegisterStrategyServiceServer(srv, svc)
	return srv
}

// Serve listens on addr and serves until the server is stopped.
func Serve(srv *grpc.Server, addr string) error {
	lis, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", addr, err)
	}
	return srv.Serve(lis)
}

// authUnaryInterceptor rejects calls that do not carry a license token valid
// for this machine.
func authUnaryInterceptor(mgr *license.Manager, log zerolog.Logger) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		token, err := bearerToken(ctx)
		if err == nil {
			err = mgr.Validate(token)
		}
		if err != nil {
			monitor.AuthRejectedTotal.Inc()
			log.Warn().Err(err).Str("method", info.FullMethod).Msg("rejected unauthenticated call")
			return nil, status.Error(codes.Unauthenticated, "valid license token required")
		}
		return handler(ctx, req)
	}
}

// bearerToken pulls the token out of the authorization metadata.
func bearerToken(ctx context.Context) (string, error) {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return "", fmt.Errorf("missing metadata")
	}
	vals := md.Get("authorization")
	if len(vals) == 0 {
		return "", fmt.Errorf("missing authorization header")
	}
	const prefix = "Bearer "
	if !strings.HasPrefix(vals[0], prefix) {
		return "", fmt.Errorf("authorization is not a bearer token")
	}
	return strings.TrimSpace(strings.TrimPrefix(vals[0], prefix)), nil
}
