package interceptors

import (
	"context"
	"log/slog"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/status"
)

// LoggerUnaryInterceptor логирует метод, код ответа и время выполнения
func LoggerUnaryInterceptor(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	start := time.Now()

	resp, err := handler(ctx, req)

	st, _ := status.FromError(err)
	attrs := []slog.Attr{
		slog.String("method", info.FullMethod),
		slog.String("code", st.Code().String()),
		slog.Duration("duration", time.Since(start)),
	}
	if err != nil {
		attrs = append(attrs, slog.String("err", st.Message()))
		slog.LogAttrs(ctx, slog.LevelWarn, "grpc request failed", attrs...)
	} else {
		slog.LogAttrs(ctx, slog.LevelDebug, "grpc request", attrs...)
	}

	return resp, err
}
