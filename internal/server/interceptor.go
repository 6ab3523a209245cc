package server

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"github.com/esdguide/ruletracker/internal/common"
)

// UnaryLoggingInterceptor tags every unary RPC with a request id,
// lifts the caller identity from metadata, and logs the outcome with
// its latency.
func UnaryLoggingInterceptor(logger *zap.Logger) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		start := time.Now()
		requestID := uuid.New().String()
		ctx = common.WithRequestID(ctx, requestID)

		if md, ok := metadata.FromIncomingContext(ctx); ok {
			if vals := md.Get("x-reviewer"); len(vals) > 0 && vals[0] != "" {
				ctx = common.WithReviewer(ctx, vals[0])
			}
		}

		resp, err := handler(ctx, req)

		code := status.Code(err)
		fields := []zap.Field{
			zap.String("request_id", requestID),
			zap.String("method", info.FullMethod),
			zap.String("code", code.String()),
			zap.Int64("elapsed_ms", time.Since(start).Milliseconds()),
		}
		if err != nil {
			fields = append(fields, zap.Error(err))
			logger.Warn("rpc", fields...)
		} else {
			logger.Info("rpc", fields...)
		}
		return resp, err
	}
}
