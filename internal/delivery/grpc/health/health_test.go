package grpc_health

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/ozontech/allure-go/pkg/framework/provider"
	"github.com/ozontech/allure-go/pkg/framework/suite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	grpc_health_v1 "google.golang.org/grpc/health/grpc_health_v1"
)

type HealthSuite struct {
	suite.Suite
}

type resources struct {
	server *Server
	client grpc_health_v1.HealthClient
	stop   func()
}

func initResources(t provider.T) *resources {
	lis, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	server := New()
	done := make(chan error, 1)
	go func() { done <- server.Serve(ctx, lis) }()

	conn, err := grpc.NewClient(lis.Addr().String(), grpc.WithTransportCredentials(insecure.NewCredentials()))
	require.NoError(t, err)

	return &resources{
		server: server,
		client: grpc_health_v1.NewHealthClient(conn),
		stop: func() {
			conn.Close()
			cancel()
			<-done
		},
	}
}

func (r *resources) status(t provider.T, service string) grpc_health_v1.HealthCheckResponse_ServingStatus {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	resp, err := r.client.Check(ctx, &grpc_health_v1.HealthCheckRequest{Service: service})
	require.NoError(t, err)
	return resp.GetStatus()
}

func (s *HealthSuite) TestStatus(t provider.T) {
	t.Run("Should start not serving", func(t provider.T) {
		r := initResources(t)
		defer r.stop()

		assert.Equal(t, grpc_health_v1.HealthCheckResponse_NOT_SERVING, r.status(t, ""))
		assert.Equal(t, grpc_health_v1.HealthCheckResponse_NOT_SERVING, r.status(t, ServiceName))
	})

	t.Run("Should serve once the bot is connected", func(t provider.T) {
		r := initResources(t)
		defer r.stop()

		r.server.SetServing(true)

		assert.Equal(t, grpc_health_v1.HealthCheckResponse_SERVING, r.status(t, ""))
		assert.Equal(t, grpc_health_v1.HealthCheckResponse_SERVING, r.status(t, ServiceName))
	})

	t.Run("Should return once the context is cancelled", func(t provider.T) {
		r := initResources(t)

		finished := make(chan struct{})
		go func() {
			r.stop()
			close(finished)
		}()

		select {
		case <-finished:
		case <-time.After(2 * time.Second):
			t.Fatalf("server did not stop")
		}
	})
}

func TestHealthSuite(t *testing.T) {
	suite.RunSuite(t, new(HealthSuite))
}
