// warning_normalizer.go
// Package warningnormalizer normalizes formatted warning text before it is
// written to an output stream. It wraps an externally supplied "raw"
// formatter whose result may be either text or an encoded byte sequence:
// text passes through untouched, byte sequences are decoded under the
// configured encoding (UTF-8 unless told otherwise), and any other result
// type is rejected with an error naming the unexpected type.
//
// This works around environments where a formatter hands back raw bytes
// instead of text, which then get written to stderr undecoded.
//
// This version uses the functional options pattern to allow configuration of
// the encoding, the wrapped formatter, and logging.
package warningnormalizer

import (
	"fmt"
	"strings"

	"github.com/baditaflorin/l"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/encoding/unicode"
)

// Warning holds one warning occurrence to be rendered.
type Warning struct {
	// Severity is the warning category, e.g. "DeprecationWarning".
	Severity string
	// Message describes the issue.
	Message string
	// File is the source file the warning points at.
	File string
	// Line is the line number within File.
	Line int
	// SourceLine is the offending source line, if available.
	SourceLine string
}

// RawFormatter is the pre-existing formatting capability being wrapped. Its
// result may be text, an encoded byte sequence, or anything else; only the
// first two are accepted.
type RawFormatter func(w Warning) interface{}

// Config holds configuration options for the warning normalizer.
type Config struct {
	// Encoding names the charset assumed for encoded byte results.
	Encoding string
	// Raw is the wrapped formatter. Nil selects the built-in rendering.
	Raw RawFormatter
	// Logger for tracing normalization steps.
	Logger l.Logger
}

// Option defines a functional option for configuring the normalizer.
type Option func(*Config)

// WithEncoding sets the charset assumed for encoded byte results.
func WithEncoding(name string) Option {
	return func(cfg *Config) {
		cfg.Encoding = name
	}
}

// WithRawFormatter sets the formatter being wrapped.
func WithRawFormatter(raw RawFormatter) Option {
	return func(cfg *Config) {
		cfg.Raw = raw
	}
}

// WithLogger sets a custom logger.
func WithLogger(logger l.Logger) Option {
	return func(cfg *Config) {
		cfg.Logger = logger
	}
}

// DefaultEncoding is the charset assumed when none is configured.
const DefaultEncoding = "utf-8"

// WarningNormalizer formats warnings and guarantees the result is text.
type WarningNormalizer struct {
	config Config
	enc    encoding.Encoding
}

// New creates a new WarningNormalizer with the provided functional options.
// If no logger is provided, a default logger is created.
func New(opts ...Option) (*WarningNormalizer, error) {
	cfg := Config{
		Encoding: DefaultEncoding,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	// If no logger is set, create a default logger.
	if cfg.Logger == nil {
		logger, err := createDefaultLogger()
		if err != nil {
			return nil, err
		}
		cfg.Logger = logger
	}

	var enc encoding.Encoding = unicode.UTF8
	if cfg.Encoding != DefaultEncoding {
		var err error
		enc, err = htmlindex.Get(cfg.Encoding)
		if err != nil {
			return nil, fmt.Errorf("unknown encoding %q: %w", cfg.Encoding, err)
		}
	}

	if cfg.Raw == nil {
		cfg.Raw = renderWarning
	}

	return &WarningNormalizer{config: cfg, enc: enc}, nil
}

// Format runs the wrapped formatter for w and coerces its result to text.
func (wn *WarningNormalizer) Format(w Warning) (string, error) {
	result := wn.config.Raw(w)

	switch r := result.(type) {
	case string:
		return r, nil
	case []byte:
		decoded, err := wn.enc.NewDecoder().Bytes(r)
		if err != nil {
			wn.config.Logger.Error("Failed to decode formatted warning",
				"encoding", wn.config.Encoding,
				"error", err,
			)
			return "", err
		}
		wn.config.Logger.Debug("Decoded formatted warning",
			"encoding", wn.config.Encoding,
			"bytes", len(r),
		)
		return string(decoded), nil
	default:
		err := fmt.Errorf("not expecting type '%T'", result)
		wn.config.Logger.Error("Raw formatter returned unsupported type", "error", err)
		return "", err
	}
}

// FormatWithDefaults formats w using a normalizer with default settings.
func FormatWithDefaults(w Warning) (string, error) {
	wn, err := New()
	if err != nil {
		return "", err
	}
	return wn.Format(w)
}

// renderWarning is the built-in rendering used when no formatter is wrapped.
func renderWarning(w Warning) interface{} {
	var sb strings.Builder
	sb.WriteString(w.File)
	sb.WriteByte(':')
	fmt.Fprintf(&sb, "%d", w.Line)
	sb.WriteString(": ")
	if w.Severity != "" {
		sb.WriteString(w.Severity)
		sb.WriteString(": ")
	}
	sb.WriteString(w.Message)
	sb.WriteByte('\n')
	if line := strings.TrimSpace(w.SourceLine); line != "" {
		sb.WriteString("  ")
		sb.WriteString(line)
		sb.WriteByte('\n')
	}
	return sb.String()
}
