// Package blobencoding renders stored hash blobs as text for columns,
// config files and command lines that cannot hold raw bytes.
package blobencoding

import (
	"encoding/base64"
	"encoding/hex"
	"strings"

	"github.com/multiformats/go-multibase"

	bosherr "github.com/cloudfoundry/bosh-saltedhash/errors"
)

const (
	Hex       = "hex"
	Base64    = "base64"
	Base64URL = "base64url"

	multibasePrefix = "multibase-"
)

var ErrUnknownEncoding = bosherr.Error("Unknown blob encoding")

type Encoding interface {
	Name() string
	Encode([]byte) (string, error)
	Decode(string) ([]byte, error)
}

// EncodingFromName accepts hex, base64, base64url, or "multibase-" followed
// by a multibase name such as base58btc or base32.
func EncodingFromName(name string) (Encoding, error) {
	switch strings.ToLower(name) {
	case Hex, "":
		return hexEncoding{}, nil
	case Base64:
		return base64Encoding{name: Base64, encoding: base64.StdEncoding}, nil
	case Base64URL:
		return base64Encoding{name: Base64URL, encoding: base64.RawURLEncoding}, nil
	}

	if strings.HasPrefix(name, multibasePrefix) {
		base, found := multibase.Encodings[strings.TrimPrefix(name, multibasePrefix)]
		if found {
			return multibaseEncoding{base: base}, nil
		}
	}

	return nil, bosherr.WrapComplexError(bosherr.Errorf("'%s'", name), ErrUnknownEncoding)
}

type hexEncoding struct{}

func (hexEncoding) Name() string { return Hex }

func (hexEncoding) Encode(blob []byte) (string, error) {
	return hex.EncodeToString(blob), nil
}

func (hexEncoding) Decode(s string) ([]byte, error) {
	blob, err := hex.DecodeString(strings.TrimSpace(s))
	if err != nil {
		return nil, bosherr.WrapError(err, "Decoding hex blob")
	}
	return blob, nil
}

type base64Encoding struct {
	name     string
	encoding *base64.Encoding
}

func (e base64Encoding) Name() string { return e.name }

func (e base64Encoding) Encode(blob []byte) (string, error) {
	return e.encoding.EncodeToString(blob), nil
}

func (e base64Encoding) Decode(s string) ([]byte, error) {
	blob, err := e.encoding.DecodeString(strings.TrimSpace(s))
	if err != nil {
		return nil, bosherr.WrapErrorf(err, "Decoding %s blob", e.name)
	}
	return blob, nil
}

// multibaseEncoding writes with its own base but reads any multibase string,
// since the prefix identifies the base.
type multibaseEncoding struct {
	base multibase.Encoding
}

func (e multibaseEncoding) Name() string {
	return multibasePrefix + multibase.EncodingToStr[e.base]
}

func (e multibaseEncoding) Encode(blob []byte) (string, error) {
	s, err := multibase.Encode(e.base, blob)
	if err != nil {
		return "", bosherr.WrapErrorf(err, "Encoding %s blob", e.Name())
	}
	return s, nil
}

func (e multibaseEncoding) Decode(s string) ([]byte, error) {
	return DecodeMultibase(s)
}

func DecodeMultibase(s string) ([]byte, error) {
	_, blob, err := multibase.Decode(strings.TrimSpace(s))
	if err != nil {
		return nil, bosherr.WrapError(err, "Decoding multibase blob")
	}
	return blob, nil
}
