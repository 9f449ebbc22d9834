package saltedhash

import (
	bosherr "github.com/cloudfoundry/bosh-saltedhash/errors"
)

// SaltStorePolicy decides whether and where the salt is embedded in the stored blob.
type SaltStorePolicy int

const (
	DoNotStore SaltStorePolicy = iota
	StoreBeforeDigest
	StoreAfterDigest
)

var saltStorePolicyNames = map[SaltStorePolicy]string{
	DoNotStore:        "do-not-store",
	StoreBeforeDigest: "store-before",
	StoreAfterDigest:  "store-after",
}

func (p SaltStorePolicy) String() string {
	if name, found := saltStorePolicyNames[p]; found {
		return name
	}
	return "unknown"
}

func (p SaltStorePolicy) Stores() bool {
	return p == StoreBeforeDigest || p == StoreAfterDigest
}

func ParseSaltStorePolicy(name string) (SaltStorePolicy, error) {
	for policy, policyName := range saltStorePolicyNames {
		if policyName == name {
			return policy, nil
		}
	}
	return DoNotStore, bosherr.WrapComplexError(bosherr.Errorf("salt store policy '%s'", name), ErrInvalidArgument)
}

// SaltOrder is the concatenation order of the stored and fixed salts. Changing
// it changes every produced hash.
type SaltOrder int

const (
	StoredSaltFirst SaltOrder = iota
	FixedSaltFirst
)

func (o SaltOrder) String() string {
	switch o {
	case StoredSaltFirst:
		return "stored-first"
	case FixedSaltFirst:
		return "fixed-first"
	default:
		return "unknown"
	}
}

func ParseSaltOrder(name string) (SaltOrder, error) {
	switch name {
	case "stored-first":
		return StoredSaltFirst, nil
	case "fixed-first":
		return FixedSaltFirst, nil
	}
	return StoredSaltFirst, bosherr.WrapComplexError(bosherr.Errorf("salt order '%s'", name), ErrInvalidArgument)
}
