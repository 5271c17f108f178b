package ports

// Decoder converts an encoded byte sequence into text.
type Decoder interface {
	Decode(b []byte) (string, error)
	// Name reports the charset this decoder assumes, for logging.
	Name() string
}
