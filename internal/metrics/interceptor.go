package metrics

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// UnaryServerInterceptor records per-method request counts and latencies.
func UnaryServerInterceptor() grpc.UnaryServerInterceptor {
	return func(
		ctx context.Context,
		req any,
		info *grpc.UnaryServerInfo,
		handler grpc.UnaryHandler,
	) (any, error) {
		start := time.Now()

		resp, err := handler(ctx, req)

		service, method := splitFullMethod(info.FullMethod)
		code := status.Code(err)

		GRPCRequestsTotal.WithLabelValues(service, method, code.String()).Inc()
		GRPCRequestDuration.WithLabelValues(service, method).Observe(time.Since(start).Seconds())

		// Stale-epoch and not-master rejections surface as FailedPrecondition;
		// they spike around failovers and are the first thing to look for.
		if code == codes.FailedPrecondition {
			slog.Debug("request rejected",
				"service", service, "method", method, "error", err)
		}

		return resp, err
	}
}

func splitFullMethod(full string) (service, method string) {
	service, method, ok := strings.Cut(strings.TrimPrefix(full, "/"), "/")
	if !ok {
		return "unknown", service
	}
	return service, method
}
