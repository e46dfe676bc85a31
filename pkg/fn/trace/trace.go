package trace

import (
	"context"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/ib-77/fn3/pkg/fn"
)

// Observer emits structured logs for Maybe transitions. It never touches
// stdout, so pipelines that print results keep their output contract.
type Observer struct {
	logger *zap.Logger
}

func New(logger *zap.Logger) *Observer {
	return &Observer{logger: logger}
}

// NewDevelopment builds an Observer over a console-encoded zap logger
// locked to stderr at debug level.
func NewDevelopment() *Observer {
	consoleCore := zapcore.NewCore(
		zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()),
		zapcore.Lock(os.Stderr),
		zap.DebugLevel,
	)
	return New(zap.New(consoleCore))
}

// Sync flushes buffered log entries.
func (o *Observer) Sync() {
	if err := o.logger.Sync(); err != nil {
		o.logger.Warn("failed to sync logger", zap.Error(err))
	}
}

// Observe logs the state of m under the given step name and returns m
// unchanged, so it slots between any two pipeline stages.
func Observe[T any](ctx context.Context, o *Observer, step string, m fn.Maybe[T]) fn.Maybe[T] {
	switch {
	case m.HasValue():
		o.logger.Debug("present",
			zap.String("step", step),
			zap.Stringer("id", m.Id()),
			zap.Time("created_at", m.CreatedAt()),
			zap.Any("value", m.Value()),
		)
	case m.IsNothing():
		o.logger.Debug("absent",
			zap.String("step", step),
			zap.Stringer("id", m.Id()),
			zap.Time("created_at", m.CreatedAt()),
		)
	default:
		o.logger.Debug("pending", zap.String("step", step))
	}
	return m
}

// OnPresent adapts the Observer to chain.Ensure and solo.DoubleTee: the
// returned side effect logs the present value under the step name.
func OnPresent[T any](o *Observer, step string) func(ctx context.Context, r T) {
	return func(_ context.Context, r T) {
		o.logger.Debug("present",
			zap.String("step", step),
			zap.Any("value", r),
		)
	}
}

// OnAbsent adapts the Observer to solo.DoubleTee's absent branch.
func OnAbsent(o *Observer, step string) func(ctx context.Context) {
	return func(_ context.Context) {
		o.logger.Debug("absent", zap.String("step", step))
	}
}
