package ports

import (
	"context"

	"github.com/baditaflorin/go_warning_normalizer/internal/core/domain"
)

// RawFormatter is the pre-existing formatting capability this module wraps.
// It is opaque: the result may be text, an encoded byte sequence, or anything
// else, and only the first two are accepted downstream. Concurrent use is
// safe only if the implementation itself is.
type RawFormatter interface {
	Format(w domain.Warning) interface{}
}

// Formatter is the exposed formatting capability. Implementations guarantee
// the returned value is text.
type Formatter interface {
	Format(ctx context.Context, w domain.Warning) (string, error)
}
