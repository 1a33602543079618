// Package grpcx exposes the catalog's liveness over the standard gRPC
// health protocol.
package grpcx

import (
	"log"
	"net"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

const ServiceName = "catalog"

// NewServer returns a gRPC server whose health service reports SERVING for
// both the catalog and the server as a whole.
func NewServer() (*grpc.Server, *health.Server) {
	srv := grpc.NewServer()
	hs := health.NewServer()
	hs.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	hs.SetServingStatus(ServiceName, healthpb.HealthCheckResponse_SERVING)
	healthpb.RegisterHealthServer(srv, hs)
	return srv, hs
}

// Serve blocks serving srv on addr.
func Serve(srv *grpc.Server, addr string) error {
	l, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}
	log.Printf("[grpc] health listening on %s", l.Addr())
	return srv.Serve(l)
}
