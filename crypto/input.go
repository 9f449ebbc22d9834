package crypto

import (
	"bytes"
	"io"
	"os"
	"strings"

	bosherr "github.com/cloudfoundry/bosh-saltedhash/errors"
	boshsys "github.com/cloudfoundry/bosh-saltedhash/system"
)

type bytesInput struct {
	data []byte
}

// BytesInput copies data at construction.
func BytesInput(data []byte) Input {
	return bytesInput{data: append([]byte(nil), data...)}
}

func (i bytesInput) Open() (io.ReadCloser, error) {
	return io.NopCloser(bytes.NewReader(i.data)), nil
}

type textInput struct {
	text     string
	encoding string
}

// TextInput encodes text with the named charset when opened. An empty
// encoding means DefaultTextEncoding.
func TextInput(text, encoding string) Input {
	return textInput{text: text, encoding: encoding}
}

func (i textInput) Open() (io.ReadCloser, error) {
	encoded, err := EncodeText(i.text, i.encoding)
	if err != nil {
		return nil, err
	}
	return io.NopCloser(bytes.NewReader(encoded)), nil
}

type streamInput struct {
	reader io.Reader
}

// StreamInput is drained by the first Open and yields nothing afterwards.
// The reader stays open; closing it is up to the caller.
func StreamInput(reader io.Reader) Input {
	return &streamInput{reader: reader}
}

func (i *streamInput) Open() (io.ReadCloser, error) {
	if i.reader == nil {
		return io.NopCloser(strings.NewReader("")), nil
	}
	r := i.reader
	i.reader = nil
	return io.NopCloser(r), nil
}

type fileInput struct {
	path string
	fs   boshsys.FileSystem
}

func FileInput(path string, fs boshsys.FileSystem) Input {
	return fileInput{path: path, fs: fs}
}

func (i fileInput) Open() (io.ReadCloser, error) {
	file, err := i.fs.OpenFile(i.path, os.O_RDONLY, 0)
	if err != nil {
		return nil, bosherr.WrapComplexError(
			bosherr.WrapErrorf(err, "Opening file '%s' for digest calculation", i.path),
			ErrIO,
		)
	}
	return file, nil
}
