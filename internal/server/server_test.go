package server

import (
	"context"
	"io"
	"net"
	"net/http"
	"sync/atomic"
	"testing"
	"time"

	"github.com/MKhiriev/go-story-nook/internal/config"
	"github.com/MKhiriev/go-story-nook/internal/handler"
	myGRPC "github.com/MKhiriev/go-story-nook/internal/handler/grpc"
	"github.com/MKhiriev/go-story-nook/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

type recordingRunner struct {
	started atomic.Bool
	stopped atomic.Bool
}

func (r *recordingRunner) Run(ctx context.Context) {
	r.started.Store(true)
	<-ctx.Done()
	r.stopped.Store(true)
}

func localListener(t *testing.T) net.Listener {
	t.Helper()
	lis, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	return lis
}

func TestNewServer_NothingToRun(t *testing.T) {
	_, err := NewServer(&handler.Handlers{}, nil, config.Server{HTTPAddress: ":8080"}, logger.Nop())

	assert.ErrorIs(t, err, errNoServersAreCreated)
}

func TestNewServer_DefaultShutdownTimeout(t *testing.T) {
	h := &handler.Handlers{GRPC: myGRPC.NewHandler(nil, logger.Nop())}

	srv, err := NewServer(h, nil, config.Server{GRPCAddress: "127.0.0.1:0"}, logger.Nop())

	require.NoError(t, err)
	assert.Equal(t, defaultShutdownTimeout, srv.(*server).shutdownTimeout)
}

func TestServe_HTTPUntilCancelled(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/ping", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("pong"))
	})

	runner := &recordingRunner{}
	s := &server{
		httpServer:      newHTTPServer(mux, config.Server{}, logger.Nop()),
		workers:         runner,
		shutdownTimeout: time.Second,
		logger:          logger.Nop(),
	}

	lis := localListener(t)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.serve(ctx, lis, nil) }()

	var body string
	require.Eventually(t, func() bool {
		resp, err := http.Get("http://" + lis.Addr().String() + "/ping")
		if err != nil {
			return false
		}
		defer resp.Body.Close()
		data, _ := io.ReadAll(resp.Body)
		body = string(data)
		return resp.StatusCode == http.StatusOK
	}, 2*time.Second, 10*time.Millisecond)
	assert.Equal(t, "pong", body)
	assert.True(t, runner.started.Load())

	cancel()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(3 * time.Second):
		t.Fatal("server did not stop")
	}
	assert.True(t, runner.stopped.Load(), "workers should be stopped after the servers")

	_, err := net.DialTimeout("tcp", lis.Addr().String(), 100*time.Millisecond)
	assert.Error(t, err, "listener should be closed")
}

func TestServe_GRPCHealth(t *testing.T) {
	grpcHandler := myGRPC.NewHandler(nil, logger.Nop())
	s := &server{
		gRPCServer:      newGRPCServer(grpcHandler, config.Server{}, logger.Nop()),
		shutdownTimeout: time.Second,
		logger:          logger.Nop(),
	}

	lis := localListener(t)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.serve(ctx, nil, lis) }()

	conn, err := grpc.NewClient(lis.Addr().String(), grpc.WithTransportCredentials(insecure.NewCredentials()))
	require.NoError(t, err)
	defer conn.Close()

	client := healthpb.NewHealthClient(conn)
	checkCtx, checkCancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer checkCancel()

	resp, err := client.Check(checkCtx, &healthpb.HealthCheckRequest{Service: myGRPC.ServiceName}, grpc.WaitForReady(true))
	require.NoError(t, err)
	assert.Equal(t, healthpb.HealthCheckResponse_SERVING, resp.GetStatus())

	cancel()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(3 * time.Second):
		t.Fatal("server did not stop")
	}
}

func TestRun_ListenFailure(t *testing.T) {
	taken := localListener(t)
	defer taken.Close()

	s := &server{
		httpServer:      newHTTPServer(http.NotFoundHandler(), config.Server{HTTPAddress: taken.Addr().String()}, logger.Nop()),
		shutdownTimeout: time.Second,
		logger:          logger.Nop(),
	}

	err := s.run(context.Background())

	assert.ErrorContains(t, err, "HTTP server listen")
}
