package filesystem

import (
	"fmt"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/ianaindex"
	"golang.org/x/text/encoding/unicode"
)

const DefaultEncoding = "utf-8"

var encodings = map[string]encoding.Encoding{
	"utf-8":      unicode.UTF8,
	"utf8":       unicode.UTF8,
	"latin1":     charmap.ISO8859_1,
	"latin-1":    charmap.ISO8859_1,
	"iso-8859-1": charmap.ISO8859_1,
}

// Encodings returns the names accepted by LookupEncoding besides the IANA
// registry.
func Encodings() []string {
	return []string{"utf-8", "latin1"}
}

// LookupEncoding returns the text encoding named name. Besides the short
// names of Encodings, any IANA name with a known implementation is accepted.
func LookupEncoding(name string) (encoding.Encoding, error) {
	if name == "" {
		name = DefaultEncoding
	}

	if e, ok := encodings[strings.ToLower(name)]; ok {
		return e, nil
	}

	e, err := ianaindex.IANA.Encoding(name)
	if err != nil {
		return nil, fmt.Errorf("unknown encoding %q: %w", name, err)
	}
	if e == nil {
		return nil, fmt.Errorf("unsupported encoding %q", name)
	}
	return e, nil
}
