package domain

import "fmt"

// UnsupportedResultTypeError reports a raw formatter result that is neither
// text nor an encoded byte sequence. There is no safe rendering to fall back
// to, so the error propagates to whoever asked for the warning.
type UnsupportedResultTypeError struct {
	Value interface{}
}

func (e *UnsupportedResultTypeError) Error() string {
	return fmt.Sprintf("not expecting type '%T'", e.Value)
}
