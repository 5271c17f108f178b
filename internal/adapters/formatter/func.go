package formatter

import (
	"github.com/baditaflorin/go_warning_normalizer/internal/core/domain"
)

// Func adapts a plain function into a ports.RawFormatter, so an externally
// supplied formatter can be wrapped without declaring a named type.
type Func func(w domain.Warning) interface{}

// Format invokes the wrapped function.
func (f Func) Format(w domain.Warning) interface{} {
	return f(w)
}
