package saltedhash

import (
	bosherr "github.com/cloudfoundry/bosh-saltedhash/errors"
)

// SaltConfig is one of NoSalt, SingleSalt or DualSalt.
//
// A nil salt slice means the salt has not been supplied yet; an empty
// non-nil slice is a deliberately empty salt.
type SaltConfig interface {
	Policy() SaltStorePolicy

	// storedSalt is the salt that the policy may embed in the blob.
	storedSalt() []byte
	withStoredSalt([]byte) SaltConfig
	mixSalt() ([]byte, error)
	needsStoredSalt() bool
	clone() SaltConfig
}

// NoSalt produces the raw digest.
type NoSalt struct{}

func (NoSalt) Policy() SaltStorePolicy            { return DoNotStore }
func (NoSalt) storedSalt() []byte                 { return nil }
func (c NoSalt) withStoredSalt([]byte) SaltConfig { return c }
func (NoSalt) mixSalt() ([]byte, error)           { return nil, nil }
func (NoSalt) needsStoredSalt() bool              { return false }
func (c NoSalt) clone() SaltConfig                { return c }

// SingleSalt mixes one salt into the digest and, depending on StorePolicy,
// embeds it in the stored blob.
type SingleSalt struct {
	Salt        []byte
	StorePolicy SaltStorePolicy
}

func (c SingleSalt) Policy() SaltStorePolicy { return c.StorePolicy }
func (c SingleSalt) storedSalt() []byte      { return c.Salt }
func (c SingleSalt) needsStoredSalt() bool   { return true }

func (c SingleSalt) withStoredSalt(salt []byte) SaltConfig {
	return SingleSalt{Salt: clone(salt), StorePolicy: c.StorePolicy}
}

func (c SingleSalt) mixSalt() ([]byte, error) {
	if c.Salt == nil {
		return nil, bosherr.WrapComplexError(bosherr.Error("salt"), ErrNullArgument)
	}
	return clone(c.Salt), nil
}

func (c SingleSalt) clone() SaltConfig {
	return c.withStoredSalt(c.Salt)
}

// DualSalt mixes a per-record StoredSalt together with an application-wide
// FixedSalt (pepper). Only StoredSalt is ever embedded in the blob.
type DualSalt struct {
	StoredSalt  []byte
	FixedSalt   []byte
	Order       SaltOrder
	StorePolicy SaltStorePolicy
}

func (c DualSalt) Policy() SaltStorePolicy { return c.StorePolicy }
func (c DualSalt) storedSalt() []byte      { return c.StoredSalt }
func (c DualSalt) needsStoredSalt() bool   { return true }

func (c DualSalt) withStoredSalt(salt []byte) SaltConfig {
	return DualSalt{
		StoredSalt:  clone(salt),
		FixedSalt:   clone(c.FixedSalt),
		Order:       c.Order,
		StorePolicy: c.StorePolicy,
	}
}

func (c DualSalt) mixSalt() ([]byte, error) {
	if c.StoredSalt == nil {
		return nil, bosherr.WrapComplexError(bosherr.Error("stored salt"), ErrNullArgument)
	}
	return CombineSalts(c.StoredSalt, c.FixedSalt, c.Order)
}

func (c DualSalt) clone() SaltConfig {
	return c.withStoredSalt(c.StoredSalt)
}
