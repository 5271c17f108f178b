package emitter

import (
	"context"
	"strings"
	"testing"

	"github.com/baditaflorin/go_warning_normalizer/pkg/format"
)

func newFormatter(t *testing.T, opts ...format.Option) *format.Normalizer {
	t.Helper()
	n, err := format.New(opts...)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return n
}

func TestEmitWritesFormattedText(t *testing.T) {
	out := NewCollector()
	e := New(newFormatter(t), WithWriter(out))

	err := e.Emit(context.Background(), format.Warning{
		Severity: "RuntimeWarning",
		Message:  "slow path",
		File:     "dispatch.go",
		Line:     128,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got, want := out.String(), "dispatch.go:128: RuntimeWarning: slow path\n"; got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestEmitPropagatesFormattingErrors(t *testing.T) {
	out := NewCollector()
	f := newFormatter(t, format.WithRawFunc(func(w format.Warning) interface{} {
		return 42
	}))
	e := New(f, WithWriter(out))

	err := e.Emit(context.Background(), format.Warning{Message: "boom"})
	if err == nil {
		t.Fatal("expected an error")
	}
	if !strings.Contains(err.Error(), "not expecting type") {
		t.Errorf("unexpected error message: %v", err)
	}
	if out.String() != "" {
		t.Errorf("nothing should be written on failure, got %q", out.String())
	}
}

func TestWarnf(t *testing.T) {
	out := NewCollector()
	e := New(newFormatter(t), WithWriter(out))

	if err := e.Warnf(context.Background(), "UserWarning", "legacy.go", 3, "call %d is deprecated", 7); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	lines := out.Lines()
	if len(lines) != 1 {
		t.Fatalf("expected one line, got %v", lines)
	}
	if lines[0] != "legacy.go:3: UserWarning: call 7 is deprecated" {
		t.Errorf("unexpected line: %q", lines[0])
	}
}

func TestInstallIsIdempotent(t *testing.T) {
	first := NewCollector()
	second := NewCollector()

	firstFormatter := newFormatter(t, format.WithRawFunc(func(w format.Warning) interface{} {
		return "first: " + w.Message + "\n"
	}))
	secondFormatter := newFormatter(t, format.WithRawFunc(func(w format.Warning) interface{} {
		return "second: " + w.Message + "\n"
	}))

	Install(firstFormatter, WithWriter(first))
	if !Installed() {
		t.Fatal("expected Install to take effect")
	}

	// A repeat install must be behaviorally inert.
	Install(secondFormatter, WithWriter(second))

	if err := Emit(context.Background(), format.Warning{Message: "deprecated"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got, want := first.String(), "first: deprecated\n"; got != want {
		t.Errorf("expected the first install to stay bound, got %q", got)
	}
	if second.String() != "" {
		t.Errorf("the second install must be inert, got %q", second.String())
	}
}

func TestCollectorLines(t *testing.T) {
	c := NewCollector()
	if _, err := c.Write([]byte("one\ntwo\n")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	lines := c.Lines()
	if len(lines) != 2 || lines[0] != "one" || lines[1] != "two" {
		t.Errorf("unexpected lines: %v", lines)
	}

	c.Reset()
	if c.String() != "" {
		t.Errorf("expected empty collector after reset, got %q", c.String())
	}
}
