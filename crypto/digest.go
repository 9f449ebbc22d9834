package crypto

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"io"
	"strings"

	bosherr "github.com/cloudfoundry/bosh-saltedhash/errors"
)

type digestImpl struct {
	algorithm Algorithm
	digest    []byte
}

// NewDigest copies sum; later changes to the caller's slice do not leak in.
func NewDigest(algorithm Algorithm, sum []byte) Digest {
	return digestImpl{
		algorithm: algorithm,
		digest:    append([]byte(nil), sum...),
	}
}

func (c digestImpl) Algorithm() Algorithm {
	return c.algorithm
}

func (c digestImpl) Bytes() []byte {
	return append([]byte(nil), c.digest...)
}

func (c digestImpl) String() string {
	return fmt.Sprintf("%s:%s", strings.ToLower(c.algorithm.Name()), hex.EncodeToString(c.digest))
}

func (c digestImpl) Verify(reader io.Reader) error {
	actual, err := c.algorithm.CreateDigest(reader)
	if err != nil {
		return bosherr.WrapError(err, "Calculating digest")
	}

	if !bytes.Equal(c.digest, actual.Bytes()) {
		return bosherr.Errorf(`Expected %s digest "%x" but received "%x"`, c.algorithm.Name(), c.digest, actual.Bytes())
	}

	return nil
}

// Compute opens input and digests everything it yields.
func Compute(input Input, algorithm Algorithm) (Digest, error) {
	reader, err := input.Open()
	if err != nil {
		return nil, err
	}

	defer func() {
		_ = reader.Close()
	}()

	return algorithm.CreateDigest(reader)
}

// ParseDigestString reads the "name:hex" form produced by Digest.String. A
// string without a prefix is taken as a DefaultAlgorithm digest.
func ParseDigestString(digest string) (Digest, error) {
	pieces := strings.SplitN(digest, ":", 2)
	if len(pieces) == 1 {
		pieces = []string{DefaultAlgorithm.Name(), pieces[0]}
	}

	algorithm := AlgorithmFromName(pieces[0])
	size, err := algorithm.Size()
	if err != nil {
		return nil, bosherr.WrapErrorf(err, "Parsing digest '%s'", digest)
	}

	sum, err := hex.DecodeString(pieces[1])
	if err != nil {
		return nil, bosherr.WrapErrorf(err, "Parsing digest '%s'", digest)
	}

	if len(sum) != size {
		return nil, bosherr.Errorf("Parsing digest '%s': expected %d bytes for %s but got %d", digest, size, algorithm.Name(), len(sum))
	}

	return NewDigest(algorithm, sum), nil
}
