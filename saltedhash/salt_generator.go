package saltedhash

import (
	"crypto/rand"
	"io"

	bosherr "github.com/cloudfoundry/bosh-saltedhash/errors"
)

//go:generate counterfeiter -o saltedhashfakes/fake_salt_generator.go . SaltGenerator

type SaltGenerator interface {
	Generate(length int) ([]byte, error)
}

type randomSaltGenerator struct {
	reader io.Reader
}

func NewRandomSaltGenerator() SaltGenerator {
	return randomSaltGenerator{reader: rand.Reader}
}

func (g randomSaltGenerator) Generate(length int) ([]byte, error) {
	if length < 0 {
		return nil, bosherr.WrapComplexError(bosherr.Errorf("salt length %d", length), ErrInvalidArgument)
	}

	salt := make([]byte, length)
	if _, err := io.ReadFull(g.reader, salt); err != nil {
		return nil, bosherr.WrapError(err, "Generating random salt")
	}

	return salt, nil
}

func GenerateSalt(length int) ([]byte, error) {
	return NewRandomSaltGenerator().Generate(length)
}
