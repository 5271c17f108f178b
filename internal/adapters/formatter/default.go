package formatter

import (
	"strconv"
	"strings"

	"github.com/baditaflorin/go_warning_normalizer/internal/core/domain"
	"github.com/baditaflorin/go_warning_normalizer/internal/pool"
	"github.com/baditaflorin/go_warning_normalizer/internal/ports"
)

// DefaultSourceFormatter renders a warning as
//
//	file:line: severity: message
//	  source line
//
// the conventional one-warning-per-emission layout. The second line is
// omitted when no source line is attached.
type DefaultSourceFormatter struct {
	builders *pool.StringBuilderPool
}

// NewDefaultSourceFormatter creates the default raw formatter.
func NewDefaultSourceFormatter() ports.RawFormatter {
	return &DefaultSourceFormatter{
		builders: pool.NewStringBuilderPool(),
	}
}

// Format renders w to text. It always returns a string; the dynamic result
// type exists only to satisfy the RawFormatter contract.
func (f *DefaultSourceFormatter) Format(w domain.Warning) interface{} {
	sb := f.builders.Get()
	defer f.builders.Put(sb)

	sb.WriteString(w.File)
	sb.WriteByte(':')
	sb.WriteString(strconv.Itoa(w.Line))
	sb.WriteString(": ")
	if w.Severity != "" {
		sb.WriteString(string(w.Severity))
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
