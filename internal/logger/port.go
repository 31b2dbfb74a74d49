package logger

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/alexisbeaulieu97/tablestyles/internal/ports"
)

// portLogger adapts Logger to ports.Logger so application services can log
// through zerolog when machine-readable output is requested.
type portLogger struct {
	base zerolog.Logger
}

// Port returns a ports.Logger writing through l. Key/value pairs become
// zerolog fields and the context correlation id is attached when present.
func (l *Logger) Port() ports.Logger {
	if l == nil {
		return nil
	}
	return &portLogger{base: l.base}
}

func (p *portLogger) Debug(ctx context.Context, msg string, fields ...interface{}) {
	p.write(ctx, p.base.Debug(), msg, fields)
}

func (p *portLogger) Info(ctx context.Context, msg string, fields ...interface{}) {
	p.write(ctx, p.base.Info(), msg, fields)
}

func (p *portLogger) Warn(ctx context.Context, msg string, fields ...interface{}) {
	p.write(ctx, p.base.Warn(), msg, fields)
}

func (p *portLogger) Error(ctx context.Context, msg string, fields ...interface{}) {
	p.write(ctx, p.base.Error(), msg, fields)
}

func (p *portLogger) With(fields ...interface{}) ports.Logger {
	builder := p.base.With()
	for i := 0; i+1 < len(fields); i += 2 {
		builder = builder.Interface(fieldKey(fields[i]), fields[i+1])
	}
	return &portLogger{base: builder.Logger()}
}

func (p *portLogger) write(ctx context.Context, event *zerolog.Event, msg string, fields []interface{}) {
	if event == nil {
		return
	}
	for i := 0; i+1 < len(fields); i += 2 {
		key := fieldKey(fields[i])
		if err, ok := fields[i+1].(error); ok {
			event = event.AnErr(key, err)
			continue
		}
		event = event.Interface(key, fields[i+1])
	}
	if id := ports.GetCorrelationID(ctx); id != "" {
		event = event.Str("correlation_id", id)
	}
	event.Msg(msg)
}

func fieldKey(key interface{}) string {
	if s, ok := key.(string); ok {
		return s
	}
	return fmt.Sprint(key)
}
