// Package format provides the normalizing warning formatter: a wrapper
// around an arbitrary raw formatter that guarantees its output is text.
package format

import (
	"context"

	"github.com/baditaflorin/go_warning_normalizer/internal/adapters/decoder"
	"github.com/baditaflorin/go_warning_normalizer/internal/adapters/formatter"
	"github.com/baditaflorin/go_warning_normalizer/internal/adapters/logger"
	"github.com/baditaflorin/go_warning_normalizer/internal/core/domain"
	"github.com/baditaflorin/go_warning_normalizer/internal/core/normalize"
	"github.com/baditaflorin/go_warning_normalizer/internal/ports"
	"github.com/baditaflorin/go_warning_normalizer/internal/warmup"
	"github.com/baditaflorin/l"
)

// Warning describes one warning occurrence.
type Warning struct {
	// Severity is the warning category (e.g. "DeprecationWarning").
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

func (w Warning) toDomain() domain.Warning {
	return domain.Warning{
		Severity:   domain.Severity(w.Severity),
		Message:    w.Message,
		File:       w.File,
		Line:       w.Line,
		SourceLine: w.SourceLine,
	}
}

// Normalizer formats warnings and guarantees the result is text.
type Normalizer struct {
	formatter ports.Formatter
	decoder   ports.Decoder
	logger    ports.Logger
	warmed    bool
}

// Option defines a functional option for configuring the Normalizer.
type Option func(*config)

type config struct {
	Logger       ports.Logger
	Decoder      ports.Decoder
	Encoding     string
	Raw          ports.RawFormatter
	WarmUp       bool
	WarmUpConfig warmup.WarmupConfig
}

// WithLogger sets a custom logger.
func WithLogger(lg l.Logger) Option {
	return func(cfg *config) {
		cfg.Logger = logger.FromExisting(lg)
	}
}

// WithEncoding sets the charset assumed when the raw formatter returns an
// encoded byte sequence. Names are resolved against the WHATWG encoding
// index; the default is UTF-8.
func WithEncoding(name string) Option {
	return func(cfg *config) {
		cfg.Encoding = name
	}
}

// WithDecoder sets a custom decoder, overriding WithEncoding.
func WithDecoder(d ports.Decoder) Option {
	return func(cfg *config) {
		cfg.Decoder = d
	}
}

// WithRawFormatter wraps an existing formatting capability instead of the
// built-in source formatter.
func WithRawFormatter(raw ports.RawFormatter) Option {
	return func(cfg *config) {
		cfg.Raw = raw
	}
}

// WithRawFunc wraps a plain function as the raw formatter. The function may
// return text, an encoded byte sequence, or anything else; only the first two
// survive normalization.
func WithRawFunc(fn func(w Warning) interface{}) Option {
	return func(cfg *config) {
		cfg.Raw = formatter.Func(func(w domain.Warning) interface{} {
			return fn(Warning{
				Severity:   string(w.Severity),
				Message:    w.Message,
				File:       w.File,
				Line:       w.Line,
				SourceLine: w.SourceLine,
			})
		})
	}
}

// WithWarmUp enables system warm-up on initialization.
func WithWarmUp(enable bool) Option {
	return func(cfg *config) {
		cfg.WarmUp = enable
	}
}

// WithWarmUpConfig sets a custom warm-up configuration.
func WithWarmUpConfig(wc warmup.WarmupConfig) Option {
	return func(cfg *config) {
		cfg.WarmUpConfig = wc
		cfg.WarmUp = true
	}
}

// New creates a new Normalizer instance.
func New(opts ...Option) (*Normalizer, error) {
	cfg := &config{
		WarmUp:       false,
		WarmUpConfig: warmup.DefaultWarmupConfig(),
	}

	for _, opt := range opts {
		opt(cfg)
	}

	if cfg.Logger == nil {
		var err error
		cfg.Logger, err = logger.NewStdLogger()
		if err != nil {
			return nil, err
		}
	}

	if cfg.Decoder == nil {
		if cfg.Encoding != "" {
			d, err := decoder.NewForName(cfg.Encoding)
			if err != nil {
				return nil, err
			}
			cfg.Decoder = d
		} else {
			cfg.Decoder = decoder.NewUTF8()
		}
	}

	if cfg.Raw == nil {
		cfg.Raw = formatter.NewDefaultSourceFormatter()
	}

	core, err := normalize.NewNormalizer(cfg.Raw, cfg.Decoder, cfg.Logger)
	if err != nil {
		return nil, err
	}

	n := &Normalizer{
		formatter: core,
		decoder:   cfg.Decoder,
		logger:    cfg.Logger,
		warmed:    false,
	}

	if cfg.WarmUp {
		n.WarmUp(context.Background(), cfg.WarmUpConfig)
	}

	return n, nil
}

// Format renders w through the wrapped raw formatter and returns the result
// as text, regardless of whether the raw formatter produced text or an
// encoded byte sequence.
func (n *Normalizer) Format(ctx context.Context, w Warning) (string, error) {
	return n.formatter.Format(ctx, w.toDomain())
}

// Encoding reports the charset assumed for encoded byte results.
func (n *Normalizer) Encoding() string {
	return n.decoder.Name()
}

// WarmUp performs system warm-up to optimize formatting latency.
func (n *Normalizer) WarmUp(ctx context.Context, wc warmup.WarmupConfig) {
	if n.warmed {
		n.logger.Debug("System already warmed up, skipping")
		return
	}

	warmupMgr := warmup.NewManager(n.logger, wc)
	warmupMgr.RegisterFormatter(n.formatter)
	warmupMgr.RegisterDecoder(n.decoder)

	warmupMgr.WarmUp(ctx)
	n.warmed = true
}
