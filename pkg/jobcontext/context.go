package jobcontext

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type KeyContext string

var (
	keyJobID        KeyContext = "job_id"
	keyFlow         KeyContext = "flow"
	keyStage        KeyContext = "stage"
	keyJobStartTime KeyContext = "job_start_time"
)

// DefaultTimeout bounds a pipeline run when the caller passes none
const DefaultTimeout = 5 * time.Minute

// JobBegin derives a pipeline context carrying a fresh job ID, the flow name and a timeout.
// A non-positive timeout falls back to DefaultTimeout.
func JobBegin(parentCtx context.Context, flow string, timeout time.Duration) (context.Context, context.CancelFunc) {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	ctx, cancel := context.WithTimeout(parentCtx, timeout)

	ctx = context.WithValue(ctx, keyJobID, uuid.New())
	ctx = context.WithValue(ctx, keyFlow, flow)
	ctx = context.WithValue(ctx, keyJobStartTime, time.Now())

	return ctx, cancel
}

// WithStage tags the context with the stage currently running
func WithStage(ctx context.Context, stage string) context.Context {
	return context.WithValue(ctx, keyStage, stage)
}

// GetJobID extracts job ID from context
func GetJobID(ctx context.Context) (uuid.UUID, bool) {
	jobID, ok := ctx.Value(keyJobID).(uuid.UUID)
	return jobID, ok
}

// GetFlow extracts the flow name from context
func GetFlow(ctx context.Context) (string, bool) {
	flow, ok := ctx.Value(keyFlow).(string)
	return flow, ok
}

// GetStage extracts the current stage from context
func GetStage(ctx context.Context) (string, bool) {
	stage, ok := ctx.Value(keyStage).(string)
	return stage, ok
}

// GetJobStartTime extracts job start time from context
func GetJobStartTime(ctx context.Context) (time.Time, bool) {
	startTime, ok := ctx.Value(keyJobStartTime).(time.Time)
	return startTime, ok
}

// Fields returns the job metadata as zap fields; empty when ctx carries no job
func Fields(ctx context.Context) []zap.Field {
	jobID, ok := GetJobID(ctx)
	if !ok {
		return nil
	}
	fields := []zap.Field{zap.String("job_id", jobID.String())}
	if flow, ok := GetFlow(ctx); ok {
		fields = append(fields, zap.String("flow", flow))
	}
	if stage, ok := GetStage(ctx); ok {
		fields = append(fields, zap.String("stage", stage))
	}
	if start, ok := GetJobStartTime(ctx); ok {
		fields = append(fields, zap.Duration("elapsed", time.Since(start)))
	}
	return fields
}

// IsTransientError reports whether err looks like a temporary connectivity failure.
// Used to decide whether startup dependency checks are worth another attempt.
func IsTransientError(err error) bool {
	if err == nil {
		return false
	}

	errStr := strings.ToLower(err.Error())

	// Context errors (timeout, cancelled)
	if strings.Contains(errStr, "context deadline exceeded") ||
		strings.Contains(errStr, "i/o timeout") {
		return true
	}

	// Network errors
	if strings.Contains(errStr, "connection refused") ||
		strings.Contains(errStr, "connection reset") ||
		strings.Contains(errStr, "network unreachable") ||
		strings.Contains(errStr, "no such host") ||
		strings.Contains(errStr, "eof") {
		return true
	}

	// Server is starting up or overloaded
	if strings.Contains(errStr, "loading") ||
		strings.Contains(errStr, "service unavailable") ||
		strings.Contains(errStr, "try again") {
		return true
	}

	return false
}
