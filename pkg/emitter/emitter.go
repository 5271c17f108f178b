// Package emitter writes formatted warnings to an output stream. The
// formatting strategy is injected rather than picked up from ambient state,
// so callers decide explicitly which formatter a given emitter uses.
package emitter

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/baditaflorin/go_warning_normalizer/pkg/format"
)

// Formatter is the formatting capability an Emitter writes through.
// *format.Normalizer satisfies it.
type Formatter interface {
	Format(ctx context.Context, w format.Warning) (string, error)
}

// Emitter formats warnings and writes the resulting text to a writer.
type Emitter struct {
	formatter Formatter
	out       io.Writer
}

// EmitterOption defines a functional option for configuring an Emitter.
type EmitterOption func(*Emitter)

// WithWriter sets the output stream. The default is stderr.
func WithWriter(w io.Writer) EmitterOption {
	return func(e *Emitter) {
		e.out = w
	}
}

// New creates an Emitter writing through the given formatter.
func New(f Formatter, opts ...EmitterOption) *Emitter {
	e := &Emitter{
		formatter: f,
		out:       os.Stderr,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Emit formats w and writes the text to the configured output stream.
func (e *Emitter) Emit(ctx context.Context, w format.Warning) error {
	text, err := e.formatter.Format(ctx, w)
	if err != nil {
		return err
	}
	if _, err := io.WriteString(e.out, text); err != nil {
		return fmt.Errorf("write warning: %w", err)
	}
	return nil
}

// Warnf is a convenience wrapper that builds and emits a warning in one call.
func (e *Emitter) Warnf(ctx context.Context, severity, file string, line int, msgFormat string, args ...interface{}) error {
	return e.Emit(ctx, format.Warning{
		Severity: severity,
		Message:  fmt.Sprintf(msgFormat, args...),
		File:     file,
		Line:     line,
	})
}
