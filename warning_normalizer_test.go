// warning_normalizer_test.go
package warningnormalizer

import (
	"strings"
	"testing"
)

func TestFormatWithDefaults(t *testing.T) {
	tests := []struct {
		name     string
		warning  Warning
		expected string
	}{
		{
			name: "Full warning with source line",
			warning: Warning{
				Severity:   "DeprecationWarning",
				Message:    "parseConfig is deprecated",
				File:       "config/loader.go",
				Line:       42,
				SourceLine: "  cfg := parseConfig(path)\n",
			},
			expected: "config/loader.go:42: DeprecationWarning: parseConfig is deprecated\n  cfg := parseConfig(path)\n",
		},
		{
			name: "Warning without source line",
			warning: Warning{
				Severity: "RuntimeWarning",
				Message:  "slow path",
				File:     "worker/dispatch.go",
				Line:     128,
			},
			expected: "worker/dispatch.go:128: RuntimeWarning: slow path\n",
		},
		{
			name: "Warning without severity",
			warning: Warning{
				Message: "something odd",
				File:    "main.go",
				Line:    1,
			},
			expected: "main.go:1: something odd\n",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := FormatWithDefaults(tc.warning)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tc.expected {
				t.Errorf("expected %q, got %q", tc.expected, got)
			}
		})
	}
}

func TestFormatTextPassthrough(t *testing.T) {
	const text = "RuntimeWarning: slow path\n"

	wn, err := New(WithRawFormatter(func(w Warning) interface{} {
		return text
	}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, err := wn.Format(Warning{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != text {
		t.Errorf("expected text unchanged, got %q", got)
	}
}

func TestFormatDecodesBytes(t *testing.T) {
	wn, err := New(WithRawFormatter(func(w Warning) interface{} {
		return []byte("UserWarning: deprecated\n")
	}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, err := wn.Format(Warning{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "UserWarning: deprecated\n" {
		t.Errorf("expected decoded text, got %q", got)
	}
}

func TestFormatRejectsUnsupportedTypes(t *testing.T) {
	tests := []struct {
		name   string
		result interface{}
	}{
		{name: "Numeric result", result: 42},
		{name: "Structured result", result: struct{ Msg string }{Msg: "boom"}},
		{name: "Nil result", result: nil},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			wn, err := New(WithRawFormatter(func(w Warning) interface{} {
				return tc.result
			}))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if _, err := wn.Format(Warning{}); err == nil {
				t.Fatal("expected an error for unsupported result type")
			} else if !strings.Contains(err.Error(), "not expecting type") {
				t.Errorf("unexpected error message: %v", err)
			}
		})
	}
}

func TestFormatCustomEncoding(t *testing.T) {
	// "café: deprecated\n" in latin-1.
	payload := []byte{'c', 'a', 'f', 0xE9, ':', ' ', 'd', 'e', 'p', 'r', 'e', 'c', 'a', 't', 'e', 'd', '\n'}

	wn, err := New(
		WithEncoding("latin1"),
		WithRawFormatter(func(w Warning) interface{} {
			return payload
		}),
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, err := wn.Format(Warning{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "café: deprecated\n" {
		t.Errorf("expected latin-1 decode, got %q", got)
	}
}

func TestNewRejectsUnknownEncoding(t *testing.T) {
	if _, err := New(WithEncoding("no-such-charset")); err == nil {
		t.Fatal("expected an error for an unknown encoding name")
	}
}
