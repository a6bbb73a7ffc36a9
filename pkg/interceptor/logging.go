package interceptor

import (
	"context"
	"log/slog"
	"time"

	"github.com/dwikikusuma/storefront/pkg/metrics"
	"google.golang.org/grpc"
	"google.golang.org/grpc/status"
)

// UnaryLogging logs every unary call with its status code and latency and,
// when m is non-nil, records it in the request metrics.
func UnaryLogging(log *slog.Logger, m *metrics.ServerMetrics) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		start := time.Now()
		resp, err := handler(ctx, req)
		code := status.Code(err)
		elapsed := time.Since(start)

		attrs := []any{
			slog.String("method", info.FullMethod),
			slog.String("code", code.String()),
			slog.Int64("duration_ms", elapsed.Milliseconds()),
		}
		if err != nil {
			log.WarnContext(ctx, "grpc call failed", append(attrs, slog.Any("err", err))...)
		} else {
			log.DebugContext(ctx, "grpc call", attrs...)
		}

		if m != nil {
			m.Requests.WithLabelValues(info.FullMethod, code.String()).Inc()
			m.LatencyMS.WithLabelValues(info.FullMethod).Observe(float64(elapsed.Milliseconds()))
		}
		return resp, err
	}
}
