package crypto

import (
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/ianaindex"
	"golang.org/x/text/encoding/unicode"

	bosherr "github.com/cloudfoundry/bosh-saltedhash/errors"
)

const DefaultTextEncoding = "UTF-8"

var ErrUnknownEncoding = bosherr.Error("Unknown text encoding")

// EncodeText converts text to the byte form of the named IANA charset.
// Runes the charset cannot represent are an error rather than being replaced.
func EncodeText(text, name string) ([]byte, error) {
	enc, err := lookupEncoding(name)
	if err != nil {
		return nil, err
	}

	if enc == unicode.UTF8 {
		return []byte(text), nil
	}

	encoded, err := enc.NewEncoder().Bytes([]byte(text))
	if err != nil {
		return nil, bosherr.WrapErrorf(err, "Encoding text as '%s'", name)
	}

	return encoded, nil
}

func lookupEncoding(name string) (encoding.Encoding, error) {
	if name == "" {
		return unicode.UTF8, nil
	}

	enc, err := ianaindex.IANA.Encoding(name)
	if err != nil || enc == nil {
		return nil, bosherr.WrapComplexError(bosherr.Errorf("'%s'", name), ErrUnknownEncoding)
	}

	return enc, nil
}
