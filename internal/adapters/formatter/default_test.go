package formatter

import (
	"testing"

	"github.com/baditaflorin/go_warning_normalizer/internal/core/domain"
)

func TestDefaultSourceFormatter(t *testing.T) {
	tests := []struct {
		name     string
		warning  domain.Warning
		expected string
	}{
		{
			name: "With source line",
			warning: domain.Warning{
				Severity:   domain.SeverityDeprecation,
				Message:    "old API",
				File:       "api.go",
				Line:       7,
				SourceLine: "\tuseOldAPI()\n",
			},
			expected: "api.go:7: DeprecationWarning: old API\n  useOldAPI()\n",
		},
		{
			name: "Without source line",
			warning: domain.Warning{
				Severity: domain.SeverityRuntime,
				Message:  "slow path",
				File:     "dispatch.go",
				Line:     128,
			},
			expected: "dispatch.go:128: RuntimeWarning: slow path\n",
		},
		{
			name: "Without severity",
			warning: domain.Warning{
				Message: "something odd",
				File:    "main.go",
				Line:    1,
			},
			expected: "main.go:1: something odd\n",
		},
	}

	f := NewDefaultSourceFormatter()
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := f.Format(tc.warning)
			text, ok := result.(string)
			if !ok {
				t.Fatalf("expected a string result, got %T", result)
			}
			if text != tc.expected {
				t.Errorf("expected %q, got %q", tc.expected, text)
			}
		})
	}
}

func TestFuncAdapter(t *testing.T) {
	raw := Func(func(w domain.Warning) interface{} {
		return []byte(w.Message)
	})

	result := raw.Format(domain.Warning{Message: "deprecated"})
	if b, ok := result.([]byte); !ok || string(b) != "deprecated" {
		t.Errorf("expected wrapped function result, got %v", result)
	}
}
