package crypto

import (
	"crypto/md5"
	"crypto/sha1"
	"crypto/sha256"
	"crypto/sha512"
	"hash"
	"io"
	"strings"

	"github.com/zeebo/blake3"
	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/blake2s"
	"golang.org/x/crypto/md4"       //nolint:staticcheck
	"golang.org/x/crypto/ripemd160" //nolint:staticcheck
	"golang.org/x/crypto/sha3"

	bosherr "github.com/cloudfoundry/bosh-saltedhash/errors"
)

var (
	ErrUnknownAlgorithm = bosherr.Error("Unknown digest algorithm")
	ErrIO               = bosherr.Error("Reading input for digest calculation")
)

var (
	DigestAlgorithmMD4        Algorithm = newAlgorithm("MD4", md4.New)
	DigestAlgorithmMD5        Algorithm = newAlgorithm("MD5", md5.New)
	DigestAlgorithmSHA1       Algorithm = newAlgorithm("SHA-1", sha1.New)
	DigestAlgorithmSHA224     Algorithm = newAlgorithm("SHA-224", sha256.New224)
	DigestAlgorithmSHA256     Algorithm = newAlgorithm("SHA-256", sha256.New)
	DigestAlgorithmSHA384     Algorithm = newAlgorithm("SHA-384", sha512.New384)
	DigestAlgorithmSHA512     Algorithm = newAlgorithm("SHA-512", sha512.New)
	DigestAlgorithmSHA512_224 Algorithm = newAlgorithm("SHA-512/224", sha512.New512_224)
	DigestAlgorithmSHA512_256 Algorithm = newAlgorithm("SHA-512/256", sha512.New512_256)
	DigestAlgorithmSHA3_224   Algorithm = newAlgorithm("SHA3-224", sha3.New224)
	DigestAlgorithmSHA3_256   Algorithm = newAlgorithm("SHA3-256", sha3.New256)
	DigestAlgorithmSHA3_384   Algorithm = newAlgorithm("SHA3-384", sha3.New384)
	DigestAlgorithmSHA3_512   Algorithm = newAlgorithm("SHA3-512", sha3.New512)
	DigestAlgorithmBLAKE2b256 Algorithm = newKeyedAlgorithm("BLAKE2b-256", blake2b.New256)
	DigestAlgorithmBLAKE2b384 Algorithm = newKeyedAlgorithm("BLAKE2b-384", blake2b.New384)
	DigestAlgorithmBLAKE2b512 Algorithm = newKeyedAlgorithm("BLAKE2b-512", blake2b.New512)
	DigestAlgorithmBLAKE2s256 Algorithm = newKeyedAlgorithm("BLAKE2s-256", blake2s.New256)
	DigestAlgorithmBLAKE3     Algorithm = newAlgorithm("BLAKE3", func() hash.Hash { return blake3.New() })
	DigestAlgorithmRIPEMD160  Algorithm = newAlgorithm("RIPEMD-160", ripemd160.New)
)

// DefaultAlgorithm is the legacy digest used when a caller names none.
var DefaultAlgorithm = DigestAlgorithmMD5

var knownAlgorithms = []Algorithm{
	DigestAlgorithmMD4,
	DigestAlgorithmMD5,
	DigestAlgorithmSHA1,
	DigestAlgorithmSHA224,
	DigestAlgorithmSHA256,
	DigestAlgorithmSHA384,
	DigestAlgorithmSHA512,
	DigestAlgorithmSHA512_224,
	DigestAlgorithmSHA512_256,
	DigestAlgorithmSHA3_224,
	DigestAlgorithmSHA3_256,
	DigestAlgorithmSHA3_384,
	DigestAlgorithmSHA3_512,
	DigestAlgorithmBLAKE2b256,
	DigestAlgorithmBLAKE2b384,
	DigestAlgorithmBLAKE2b512,
	DigestAlgorithmBLAKE2s256,
	DigestAlgorithmBLAKE3,
	DigestAlgorithmRIPEMD160,
}

var algorithmsByName = func() map[string]Algorithm {
	byName := make(map[string]Algorithm, len(knownAlgorithms))
	for _, a := range knownAlgorithms {
		byName[normalizeName(a.Name())] = a
	}
	return byName
}()

// AlgorithmFromName never fails. Names that do not resolve produce an
// Algorithm whose operations return ErrUnknownAlgorithm, so a bad name
// surfaces when a digest is first computed.
func AlgorithmFromName(name string) Algorithm {
	if name == "" {
		return DefaultAlgorithm
	}

	if a, found := algorithmsByName[normalizeName(name)]; found {
		return a
	}

	return NewUnknownAlgorithm(name)
}

func KnownAlgorithmNames() []string {
	names := make([]string, 0, len(knownAlgorithms))
	for _, a := range knownAlgorithms {
		names = append(names, a.Name())
	}
	return names
}

// normalizeName folds "SHA-256", "sha256" and "Sha_256" to the same key.
func normalizeName(name string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case '-', '_', '/', ' ':
			return -1
		}
		return r
	}, strings.ToLower(strings.TrimSpace(name)))
}

type algorithmImpl struct {
	name     string
	hashFunc func() (hash.Hash, error)
}

func newAlgorithm(name string, hashFunc func() hash.Hash) *algorithmImpl {
	return &algorithmImpl{
		name: name,
		hashFunc: func() (hash.Hash, error) {
			return hashFunc(), nil
		},
	}
}

func newKeyedAlgorithm(name string, hashFunc func(key []byte) (hash.Hash, error)) *algorithmImpl {
	return &algorithmImpl{
		name: name,
		hashFunc: func() (hash.Hash, error) {
			return hashFunc(nil)
		},
	}
}

func (a *algorithmImpl) Name() string { return a.name }

func (a *algorithmImpl) Size() (int, error) {
	h, err := a.New()
	if err != nil {
		return 0, err
	}
	return h.Size(), nil
}

func (a *algorithmImpl) New() (hash.Hash, error) {
	h, err := a.hashFunc()
	if err != nil {
		return nil, bosherr.WrapErrorf(err, "Creating %s hash", a.name)
	}
	return h, nil
}

func (a *algorithmImpl) CreateDigest(reader io.Reader) (Digest, error) {
	h, err := a.New()
	if err != nil {
		return nil, err
	}

	_, err = io.Copy(h, reader)
	if err != nil {
		return nil, bosherr.WrapComplexError(err, ErrIO)
	}

	return NewDigest(a, h.Sum(nil)), nil
}

type unknownAlgorithmImpl struct {
	name string
}

func NewUnknownAlgorithm(name string) Algorithm {
	return unknownAlgorithmImpl{name: name}
}

func (c unknownAlgorithmImpl) Name() string { return c.name }

func (c unknownAlgorithmImpl) Size() (int, error) {
	return 0, c.err()
}

func (c unknownAlgorithmImpl) New() (hash.Hash, error) {
	return nil, c.err()
}

func (c unknownAlgorithmImpl) CreateDigest(io.Reader) (Digest, error) {
	return nil, c.err()
}

func (c unknownAlgorithmImpl) err() error {
	return bosherr.WrapComplexError(bosherr.Errorf("'%s'", c.name), ErrUnknownAlgorithm)
}
