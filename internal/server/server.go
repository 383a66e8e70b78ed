package server

import (
	"context"
	"errors"
	"net"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/MKhiriev/go-story-nook/internal/config"
	"github.com/MKhiriev/go-story-nook/internal/handler"
	"github.com/MKhiriev/go-story-nook/internal/logger"
	"golang.org/x/sync/errgroup"
)

const (
	readHeaderTimeout      = 10 * time.Second
	defaultShutdownTimeout = 10 * time.Second
)

type server struct {
	httpServer *httpServer
	gRPCServer *grpcServer

	// workers run for as long as the servers do; nil means none.
	workers Runner

	shutdownTimeout time.Duration
	logger          *logger.Logger
}

func NewServer(handlers *handler.Handlers, workers Runner, cfg config.Server, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")
	servers := &server{
		workers:         workers,
		shutdownTimeout: cfg.ShutdownTimeout,
		logger:          logger,
	}
	if servers.shutdownTimeout <= 0 {
		servers.shutdownTimeout = defaultShutdownTimeout
	}

	if cfg.HTTPAddress != "" && handlers.HTTP != nil {
		servers.httpServer = newHTTPServer(handlers.HTTP.Init(), cfg, logger)
	}
	if cfg.GRPCAddress != "" && handlers.GRPC != nil {
		servers.gRPCServer = newGRPCServer(handlers.GRPC, cfg, logger)
	}

	if servers.httpServer == nil && servers.gRPCServer == nil {
		return nil, errNoServersAreCreated
	}

	return servers, nil
}

// RunServer serves until ctx is done, SIGTERM/SIGINT/SIGQUIT arrives or a
// server fails. Servers are drained first, workers are stopped last.
func (s *server) RunServer(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	defer stop()

	return s.run(ctx)
}

func (s *server) run(ctx context.Context) error {
	if s.httpServer == nil && s.gRPCServer == nil {
		return errNoServersAreCreated
	}

	// bind every listener before anything runs so a taken port fails fast
	var httpLis, grpcLis net.Listener
	var err error
	if s.httpServer != nil {
		if httpLis, err = s.httpServer.listen(); err != nil {
			return err
		}
	}
	if s.gRPCServer != nil {
		if grpcLis, err = s.gRPCServer.listen(); err != nil {
			if httpLis != nil {
				httpLis.Close()
			}
			return err
		}
	}

	return s.serve(ctx, httpLis, grpcLis)
}

func (s *server) serve(ctx context.Context, httpLis, grpcLis net.Listener) error {
	workersCtx, stopWorkers := context.WithCancel(context.WithoutCancel(ctx))
	var workersDone sync.WaitGroup
	if s.workers != nil {
		workersDone.Add(1)
		go func() {
			defer workersDone.Done()
			s.workers.Run(workersCtx)
		}()
	}

	g, gctx := errgroup.WithContext(ctx)
	if s.httpServer != nil {
		s.logger.Info().Msg("Launching HTTP server")
		g.Go(func() error { return s.httpServer.serve(httpLis) })
	}
	if s.gRPCServer != nil {
		s.logger.Info().Msg("Launching GRPC server")
		g.Go(func() error { return s.gRPCServer.serve(grpcLis) })
	}
	g.Go(func() error {
		<-gctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.shutdownTimeout)
		defer cancel()
		return s.Shutdown(shutdownCtx)
	})

	err := g.Wait()

	stopWorkers()
	workersDone.Wait()

	if err != nil {
		s.logger.Err(err).Msg("server stopped with error")
		return err
	}
	s.logger.Info().Msg("server Shutdown gracefully")
	return nil
}

func (s *server) Shutdown(ctx context.Context) error {
	var errs []error

	if s.httpServer != nil {
		errs = append(errs, s.httpServer.Shutdown(ctx))
	}
	if s.gRPCServer != nil {
		errs = append(errs, s.gRPCServer.Shutdown(ctx))
	}

	return errors.Join(errs...)
}
