package warmup

import (
	"context"
	"fmt"
	"runtime"
	"sync"
	"time"

	"github.com/baditaflorin/go_warning_normalizer/internal/core/domain"
	"github.com/baditaflorin/go_warning_normalizer/internal/ports"
)

// WarmupConfig defines configuration for warming up the system
type WarmupConfig struct {
	// Number of concurrent warmup routines to run
	Concurrency int
	// Number of iterations per routine
	Iterations int
	// Warmup duration (0 means no time limit)
	Duration time.Duration
	// Whether to perform GC after warmup
	ForceGC bool
}

// DefaultWarmupConfig returns the default warmup configuration
func DefaultWarmupConfig() WarmupConfig {
	return WarmupConfig{
		Concurrency: runtime.NumCPU(),
		Iterations:  1000,
		Duration:    5 * time.Second,
		ForceGC:     true,
	}
}

// Manager pre-runs formatters and decoders so builder pools and decoder
// state are hot before the first real warning is emitted.
type Manager struct {
	logger     ports.Logger
	formatters []ports.Formatter
	decoders   []ports.Decoder
	config     WarmupConfig
}

// NewManager creates a new warmup manager
func NewManager(logger ports.Logger, config WarmupConfig) *Manager {
	return &Manager{
		logger: logger,
		config: config,
	}
}

// RegisterFormatter adds a formatter to be warmed up
func (wm *Manager) RegisterFormatter(f ports.Formatter) {
	wm.formatters = append(wm.formatters, f)
}

// RegisterDecoder adds a decoder to be warmed up
func (wm *Manager) RegisterDecoder(d ports.Decoder) {
	wm.decoders = append(wm.decoders, d)
}

// WarmUp runs the warmup process for all registered components
func (wm *Manager) WarmUp(ctx context.Context) {
	startTime := time.Now()
	wm.logger.Info("Starting system warmup",
		"components", len(wm.formatters)+len(wm.decoders),
		"concurrency", wm.config.Concurrency,
		"iterations", wm.config.Iterations,
	)

	warmupCtx := ctx
	if wm.config.Duration > 0 {
		var cancel context.CancelFunc
		warmupCtx, cancel = context.WithTimeout(ctx, wm.config.Duration)
		defer cancel()
	}

	wm.warmUpFormatters(warmupCtx)
	wm.warmUpDecoders(warmupCtx)

	if wm.config.ForceGC {
		wm.logger.Debug("Forcing garbage collection after warmup")
		runtime.GC()
	}

	wm.logger.Info("System warmup completed",
		"duration", time.Since(startTime),
	)
}

// warmUpFormatters runs warmup for all registered formatters
func (wm *Manager) warmUpFormatters(ctx context.Context) {
	if len(wm.formatters) == 0 {
		return
	}

	wm.logger.Debug("Warming up formatters", "count", len(wm.formatters))

	samples := sampleWarnings()

	var wg sync.WaitGroup
	for i := 0; i < wm.config.Concurrency; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			for j := 0; j < wm.config.Iterations; j++ {
				select {
				case <-ctx.Done():
					return
				default:
					// continue
				}

				w := samples[j%len(samples)]
				for _, f := range wm.formatters {
					_, _ = f.Format(ctx, w)
				}
			}
		}()
	}

	wg.Wait()
}

// warmUpDecoders runs warmup for all registered decoders
func (wm *Manager) warmUpDecoders(ctx context.Context) {
	if len(wm.decoders) == 0 {
		return
	}

	wm.logger.Debug("Warming up decoders", "count", len(wm.decoders))

	sample := []byte(sampleWarnings()[0].Message)

	var wg sync.WaitGroup
	for i := 0; i < wm.config.Concurrency; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			for j := 0; j < wm.config.Iterations; j++ {
				select {
				case <-ctx.Done():
					return
				default:
					// continue
				}

				for _, d := range wm.decoders {
					_, _ = d.Decode(sample)
				}
			}
		}()
	}

	wg.Wait()
}

// sampleWarnings generates representative warnings for warmup runs
func sampleWarnings() []domain.Warning {
	messages := []string{
		"call to deprecated function",
		"slow path taken while formatting",
		"implicit conversion loses precision",
		"unused import detected during load",
	}

	severities := []domain.Severity{
		domain.SeverityDeprecation,
		domain.SeverityRuntime,
		domain.SeverityUser,
		domain.SeveritySyntax,
	}

	warnings := make([]domain.Warning, 0, len(messages))
	for i, msg := range messages {
		warnings = append(warnings, domain.Warning{
			Severity:   severities[i%len(severities)],
			Message:    msg,
			File:       fmt.Sprintf("sample_%d.go", i),
			Line:       10*i + 1,
			SourceLine: "value := compute()",
		})
	}
	return warnings
}
