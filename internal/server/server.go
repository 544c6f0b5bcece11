package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	grpcapi "notes-api/internal/api/grpc"
	httpapi "notes-api/internal/api/http"
	"notes-api/internal/api/swagger"
	"notes-api/internal/config"
	"notes-api/internal/repository"
	"notes-api/internal/repository/memory"
	notesService "notes-api/internal/service/notes"
	notesv1 "notes-api/pkg/api/notes/v1"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
)

// Server представляет сервер приложения: REST API и gRPC health
type Server struct {
	// HTTP компоненты
	HTTPServer   *http.Server
	HTTPListener net.Listener

	// gRPC компоненты, nil если server.port_grpc = 0
	GRPCServer   *grpc.Server
	GRPCListener net.Listener
	Health       *health.Server

	Repository repository.NoteRepository
	Config     *config.Config
	logger     *slog.Logger
}

// New создает сервер: открывает listeners и собирает Repository → Service → Handler
func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Server, error) {
	noteRepo := memory.NewRepository()
	logger.Info("initialized in-memory repository")

	if cfg.Storage.SeedSampleData {
		added, err := noteRepo.Seed(ctx)
		if err != nil {
			return nil, fmt.Errorf("noteRepo.Seed: %w", err)
		}
		logger.Info("seeded sample notes", "count", added)
	}

	noteSvc := notesService.NewNoteService(noteRepo)
	noteHandler := httpapi.NewHandler(noteSvc)

	mux := http.NewServeMux()
	noteHandler.Register(mux)
	if cfg.Swagger.Enabled {
		if err := swagger.ServeSpec(mux, notesv1.SwaggerSpecs, notesv1.SpecFile); err != nil {
			return nil, fmt.Errorf("swagger.ServeSpec: %w", err)
		}
	}

	httpAddr := net.JoinHostPort("0.0.0.0", strconv.Itoa(cfg.Server.PortHTTP))
	httpListener, err := net.Listen("tcp", httpAddr)
	if err != nil {
		return nil, fmt.Errorf("failed to listen on %s: %w", httpAddr, err)
	}

	s := &Server{
		HTTPServer: &http.Server{
			Handler:           httpapi.WithMiddleware(mux, cfg.Gateway, logger),
			ReadTimeout:       seconds(cfg.Server.HTTPReadTimeout),
			WriteTimeout:      seconds(cfg.Server.HTTPWriteTimeout),
			IdleTimeout:       seconds(cfg.Server.HTTPIdleTimeout),
			ReadHeaderTimeout: seconds(cfg.Server.HTTPReadHeaderTimeout),
			ErrorLog:          slog.NewLogLogger(logger.Handler(), slog.LevelWarn),
		},
		HTTPListener: httpListener,
		Repository:   noteRepo,
		Config:       cfg,
		logger:       logger,
	}

	if cfg.Server.PortGRPC == 0 {
		logger.Info("grpc health server disabled")
		return s, nil
	}

	grpcAddr := net.JoinHostPort("0.0.0.0", strconv.Itoa(cfg.Server.PortGRPC))
	grpcListener, err := net.Listen("tcp", grpcAddr)
	if err != nil {
		httpListener.Close()
		return nil, fmt.Errorf("failed to listen on %s: %w", grpcAddr, err)
	}
	s.Health = grpcapi.NewHealthServer()
	s.GRPCServer = grpcapi.NewServer(s.Health, cfg.Server.UseReflection)
	s.GRPCListener = grpcListener

	return s, nil
}

// Start запускает HTTP и gRPC серверы в горутинах
// Возвращает канал ошибок для отслеживания ошибок серверов
func (s *Server) Start() <-chan error {
	errChan := make(chan error, 2)

	go func() {
		s.logger.Info("http server listening", "addr", s.HTTPListener.Addr().String())
		if err := s.HTTPServer.Serve(s.HTTPListener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- fmt.Errorf("HTTP server error: %w", err)
		}
	}()

	if s.GRPCServer != nil {
		go func() {
			s.logger.Info("grpc health server listening", "addr", s.GRPCListener.Addr().String())
			if err := s.GRPCServer.Serve(s.GRPCListener); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
				errChan <- fmt.Errorf("gRPC server error: %w", err)
			}
		}()
	}

	return errChan
}

// Shutdown выполняет graceful shutdown обоих серверов в пределах graceful_shutdown_timeout
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("starting graceful shutdown")

	timeout := seconds(s.Config.Server.GracefulShutdownTimeout)
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	// Health переключается первым, чтобы балансировщик перестал слать трафик
	if s.Health != nil {
		s.Health.Shutdown()
	}

	var errs []error
	if err := s.HTTPServer.Shutdown(ctx); err != nil {
		errs = append(errs, fmt.Errorf("HTTPServer.Shutdown: %w", err))
	}

	if s.GRPCServer != nil {
		stopped := make(chan struct{})
		go func() {
			s.GRPCServer.GracefulStop()
			close(stopped)
		}()

		select {
		case <-stopped:
			s.logger.Info("grpc server stopped gracefully")
		case <-ctx.Done():
			s.logger.Warn("graceful shutdown timeout, forcing grpc stop")
			s.GRPCServer.Stop()
			errs = append(errs, ctx.Err())
		}
	}

	return errors.Join(errs...)
}

func seconds(n int) time.Duration {
	return time.Duration(n) * time.Second
}
