package crypto

import (
	"hash"
	"io"
)

//go:generate counterfeiter -o cryptofakes/fake_algorithm.go . Algorithm

type Algorithm interface {
	Name() string
	// Size is the digest length in bytes. It is never zero for a resolvable algorithm.
	Size() (int, error)
	New() (hash.Hash, error)
	CreateDigest(io.Reader) (Digest, error)
}

type Digest interface {
	Algorithm() Algorithm
	Bytes() []byte
	String() string
	Verify(io.Reader) error
}

// Input is a source of bytes to digest. Each call to Open starts a new read.
// Closing the returned reader only releases what Open itself acquired.
type Input interface {
	Open() (io.ReadCloser, error)
}

var _ Digest = digestImpl{}

var _ Algorithm = &algorithmImpl{}
var _ Algorithm = unknownAlgorithmImpl{}
