package emitter

import (
	"context"
	"sync"

	"github.com/baditaflorin/go_warning_normalizer/pkg/format"
)

// The process-wide emitter. Rebinding it is a one-time operation: the first
// Install wins and later calls are inert, so repeated installation can never
// stack normalizers on top of each other. There is no uninstall.
var (
	defaultMu      sync.Mutex
	defaultEmitter *Emitter
	installed      bool
)

// Default returns the process-wide emitter, creating one with default
// settings on first use.
func Default() *Emitter {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	return defaultLocked()
}

func defaultLocked() *Emitter {
	if defaultEmitter == nil {
		f, err := format.New()
		if err != nil {
			panic(err)
		}
		defaultEmitter = New(f)
	}
	return defaultEmitter
}

// Install rebinds the process-wide emitter's formatter. Only the first call
// takes effect; subsequent calls are behaviorally inert.
func Install(f Formatter, opts ...EmitterOption) {
	defaultMu.Lock()
	defer defaultMu.Unlock()

	if installed {
		return
	}
	defaultEmitter = New(f, opts...)
	installed = true
}

// Installed reports whether Install has already taken effect.
func Installed() bool {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	return installed
}

// Emit formats w and writes it through the process-wide emitter.
func Emit(ctx context.Context, w format.Warning) error {
	return Default().Emit(ctx, w)
}
