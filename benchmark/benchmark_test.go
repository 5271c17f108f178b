package benchmark

import (
	"context"
	"strings"
	"testing"

	"github.com/baditaflorin/go_warning_normalizer/internal/adapters/decoder"
	"github.com/baditaflorin/go_warning_normalizer/pkg/format"
)

// generateMessage creates a warning message of the specified size
func generateMessage(size int) string {
	if size <= 0 {
		return ""
	}

	sample := "call to deprecated function detected during request handling "
	var sb strings.Builder
	sb.Grow(size)

	for sb.Len() < size {
		sb.WriteString(sample)
	}

	return sb.String()[:size]
}

func newNormalizer(b *testing.B, opts ...format.Option) *format.Normalizer {
	b.Helper()
	n, err := format.New(opts...)
	if err != nil {
		b.Fatalf("failed to create normalizer: %v", err)
	}
	return n
}

func BenchmarkFormatText(b *testing.B) {
	n := newNormalizer(b)
	w := format.Warning{
		Severity:   "DeprecationWarning",
		Message:    generateMessage(120),
		File:       "handler/request.go",
		Line:       88,
		SourceLine: "resp := legacyHandler(req)",
	}
	ctx := context.Background()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := n.Format(ctx, w); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkFormatBytes(b *testing.B) {
	payload := []byte(generateMessage(120) + "\n")
	n := newNormalizer(b, format.WithRawFunc(func(w format.Warning) interface{} {
		return payload
	}))
	ctx := context.Background()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := n.Format(ctx, format.Warning{}); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkDecodeUTF8(b *testing.B) {
	sizes := []struct {
		name string
		size int
	}{
		{name: "Small", size: 64},
		{name: "Medium", size: 1024},
		{name: "Large", size: 16 * 1024},
	}

	for _, tc := range sizes {
		b.Run(tc.name, func(b *testing.B) {
			d := decoder.NewUTF8()
			payload := []byte(generateMessage(tc.size))

			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				if _, err := d.Decode(payload); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
