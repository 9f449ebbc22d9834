package saltedhash

import (
	"github.com/cloudfoundry/bosh-saltedhash/crypto"
	bosherr "github.com/cloudfoundry/bosh-saltedhash/errors"
)

// Mix folds salt into digest by hashing digest‖salt with algorithm. An empty
// salt leaves the digest unchanged.
func Mix(algorithm crypto.Algorithm, digest, salt []byte) ([]byte, error) {
	if len(salt) == 0 {
		return clone(digest), nil
	}

	h, err := algorithm.New()
	if err != nil {
		return nil, err
	}

	_, _ = h.Write(digest)
	_, _ = h.Write(salt)

	return h.Sum(nil), nil
}

// CombineSalts concatenates the two salts in the given order. Either may be empty.
func CombineSalts(storedSalt, fixedSalt []byte, order SaltOrder) ([]byte, error) {
	combined := make([]byte, 0, len(storedSalt)+len(fixedSalt))

	switch order {
	case StoredSaltFirst:
		combined = append(append(combined, storedSalt...), fixedSalt...)
	case FixedSaltFirst:
		combined = append(append(combined, fixedSalt...), storedSalt...)
	default:
		return nil, bosherr.WrapComplexError(bosherr.Errorf("salt order %d", int(order)), ErrInvalidArgument)
	}

	return combined, nil
}
