package saltedhash

import (
	bosherr "github.com/cloudfoundry/bosh-saltedhash/errors"
)

// Encode lays digest and salt out for storage. The result never aliases its inputs.
func Encode(digest, salt []byte, policy SaltStorePolicy) ([]byte, error) {
	blob := make([]byte, 0, len(digest)+len(salt))

	switch policy {
	case DoNotStore:
		blob = append(blob, digest...)
	case StoreBeforeDigest:
		blob = append(append(blob, salt...), digest...)
	case StoreAfterDigest:
		blob = append(append(blob, digest...), salt...)
	default:
		return nil, bosherr.WrapComplexError(bosherr.Errorf("salt store policy %d", int(policy)), ErrInvalidArgument)
	}

	return blob, nil
}

// Decode splits a stored blob into its digest and salt portions. Both
// returned slices are copies.
func Decode(blob []byte, policy SaltStorePolicy, digestLength int) (digestPart, saltPart []byte, err error) {
	if blob == nil {
		return nil, nil, bosherr.WrapComplexError(bosherr.Error("stored hash"), ErrNullArgument)
	}

	if digestLength <= 0 {
		return nil, nil, bosherr.WrapComplexError(bosherr.Errorf("digest length %d", digestLength), ErrInvalidArgument)
	}

	switch policy {
	case DoNotStore:
		if len(blob) != digestLength {
			return nil, nil, layoutError(blob, policy, digestLength)
		}
		return clone(blob), []byte{}, nil

	case StoreBeforeDigest:
		if len(blob) < digestLength {
			return nil, nil, layoutError(blob, policy, digestLength)
		}
		boundary := len(blob) - digestLength
		return clone(blob[boundary:]), clone(blob[:boundary]), nil

	case StoreAfterDigest:
		if len(blob) < digestLength {
			return nil, nil, layoutError(blob, policy, digestLength)
		}
		return clone(blob[:digestLength]), clone(blob[digestLength:]), nil
	}

	return nil, nil, bosherr.WrapComplexError(bosherr.Errorf("salt store policy %d", int(policy)), ErrInvalidArgument)
}

func layoutError(blob []byte, policy SaltStorePolicy, digestLength int) error {
	return bosherr.WrapComplexError(
		bosherr.Errorf("%d byte blob cannot hold a %d byte digest under '%s'", len(blob), digestLength, policy),
		ErrInvalidLayout,
	)
}

// clone keeps nil distinct from empty: nil means "not supplied".
func clone(b []byte) []byte {
	if b == nil {
		return nil
	}
	return append([]byte{}, b...)
}
