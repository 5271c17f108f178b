package normalize

import (
	"context"
	"errors"

	"github.com/baditaflorin/go_warning_normalizer/internal/core/domain"
	"github.com/baditaflorin/go_warning_normalizer/internal/ports"
)

// Normalizer guarantees that formatted warnings come back as text. It runs
// the wrapped raw formatter, passes text results through untouched, decodes
// encoded byte sequences under the configured charset, and rejects anything
// else with an UnsupportedResultTypeError.
//
// A Normalizer is stateless after construction and safe for concurrent use
// as long as the wrapped raw formatter is.
type Normalizer struct {
	raw     ports.RawFormatter
	decoder ports.Decoder
	logger  ports.Logger
}

// NewNormalizer creates a normalizer around the given raw formatter.
func NewNormalizer(raw ports.RawFormatter, decoder ports.Decoder, logger ports.Logger) (*Normalizer, error) {
	if raw == nil {
		return nil, errors.New("raw formatter must not be nil")
	}
	if decoder == nil {
		return nil, errors.New("decoder must not be nil")
	}
	if logger == nil {
		return nil, errors.New("logger must not be nil")
	}

	return &Normalizer{
		raw:     raw,
		decoder: decoder,
		logger:  logger,
	}, nil
}

// Format renders w through the wrapped raw formatter and returns the result
// as text.
func (n *Normalizer) Format(ctx context.Context, w domain.Warning) (string, error) {
	n.logger.Debug("Formatting warning",
		"severity", w.Severity,
		"file", w.File,
		"line", w.Line,
	)

	// Check for context cancellation.
	select {
	case <-ctx.Done():
		n.logger.Error("Formatting cancelled", "error", ctx.Err())
		return "", ctx.Err()
	default:
		// continue
	}

	result := n.raw.Format(w)

	payload, err := domain.Classify(result)
	if err != nil {
		n.logger.Error("Raw formatter returned unsupported type", "error", err)
		return "", err
	}

	if payload.Kind == domain.KindText {
		return payload.Text, nil
	}

	text, err := n.decoder.Decode(payload.Bytes)
	if err != nil {
		n.logger.Error("Failed to decode formatted warning",
			"encoding", n.decoder.Name(),
			"error", err,
		)
		return "", err
	}

	n.logger.Debug("Decoded formatted warning",
		"encoding", n.decoder.Name(),
		"bytes", len(payload.Bytes),
	)

	return text, nil
}
