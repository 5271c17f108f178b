package domain

// Severity identifies the category of a warning occurrence.
type Severity string

// Common warning categories.
const (
	SeverityDeprecation Severity = "DeprecationWarning"
	SeverityRuntime     Severity = "RuntimeWarning"
	SeverityUser        Severity = "UserWarning"
	SeveritySyntax      Severity = "SyntaxWarning"
)

// Warning holds one warning occurrence to be rendered. A value is produced
// fresh for every emission and never outlives the formatting call.
type Warning struct {
	Severity   Severity
	Message    string
	File       string
	Line       int
	SourceLine string
}

// PayloadKind tags the accepted runtime shapes of a raw formatter result.
type PayloadKind int

const (
	// KindText is a result with encoding already resolved.
	KindText PayloadKind = iota
	// KindEncodedBytes is a result still encoded under some charset.
	KindEncodedBytes
)

// Payload is the two-case union of values a raw formatter may legally return.
type Payload struct {
	Kind  PayloadKind
	Text  string
	Bytes []byte
}

// Classify sorts a raw formatter result into one of the two accepted cases.
// Anything else yields an UnsupportedResultTypeError; this is the only place
// the module inspects a runtime type.
func Classify(v interface{}) (Payload, error) {
	switch r := v.(type) {
	case string:
		return Payload{Kind: KindText, Text: r}, nil
	case []byte:
		return Payload{Kind: KindEncodedBytes, Bytes: r}, nil
	default:
		return Payload{}, &UnsupportedResultTypeError{Value: v}
	}
}
