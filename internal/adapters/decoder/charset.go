package decoder

import (
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/encoding/unicode"

	"github.com/baditaflorin/go_warning_normalizer/internal/ports"
)

// Charset decodes byte sequences under a fixed character encoding.
type Charset struct {
	name string
	enc  encoding.Encoding
}

// NewUTF8 creates the default decoder. UTF-8 is assumed whenever the
// environment does not say otherwise.
func NewUTF8() ports.Decoder {
	return &Charset{name: "utf-8", enc: unicode.UTF8}
}

// NewForName creates a decoder for the named encoding, resolved against the
// WHATWG encoding index (e.g. "utf-8", "latin1", "windows-1252").
func NewForName(name string) (ports.Decoder, error) {
	enc, err := htmlindex.Get(name)
	if err != nil {
		return nil, err
	}
	if canonical, err := htmlindex.Name(enc); err == nil {
		name = canonical
	}
	return &Charset{name: name, enc: enc}, nil
}

// Decode converts b to text. Bytes that are invalid under the charset decode
// to the replacement character rather than failing.
func (c *Charset) Decode(b []byte) (string, error) {
	if len(b) == 0 {
		return "", nil
	}
	out, err := c.enc.NewDecoder().Bytes(b)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// Name reports the canonical charset name.
func (c *Charset) Name() string {
	return c.name
}
