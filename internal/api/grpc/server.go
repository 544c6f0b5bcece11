package grpc

import (
	"log/slog"
	"time"

	"notes-api/internal/api/grpc/interceptors"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/keepalive"
	"google.golang.org/grpc/reflection"
)

// ServiceName имя сервиса, под которым публикуется статус здоровья
const ServiceName = "notes.v1.NotesService"

// NewHealthServer создает health сервер со статусом SERVING для сервиса заметок
func NewHealthServer() *health.Server {
	healthSrv := health.NewServer()
	healthSrv.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	healthSrv.SetServingStatus(ServiceName, healthpb.HealthCheckResponse_SERVING)
	return healthSrv
}

// NewServer создает gRPC сервер с health сервисом, интерцепторами и keepalive
func NewServer(healthSrv *health.Server, useReflection bool) *grpc.Server {
	grpcServer := grpc.NewServer(
		grpc.MaxConcurrentStreams(25),
		// KeepAlive параметры для защиты от зависших соединений
		grpc.KeepaliveParams(keepalive.ServerParameters{
			MaxConnectionIdle:     30 * time.Minute,
			MaxConnectionAge:      1 * time.Hour,
			MaxConnectionAgeGrace: 5 * time.Second,
			Time:                  10 * time.Minute,
			Timeout:               20 * time.Second,
		}),
		grpc.ChainUnaryInterceptor(
			interceptors.LoggerUnaryInterceptor,
		),
	)

	healthpb.RegisterHealthServer(grpcServer, healthSrv)
	slog.Debug("registered grpc health service", "service", ServiceName)

	// Настройка reflection (для grpcurl/grpcui)
	if useReflection {
		reflection.Register(grpcServer)
		slog.Debug("enabled grpc reflection")
	}

	return grpcServer
}
