package config

import (
	"strings"

	"gopkg.in/yaml.v2"

	"github.com/cloudfoundry/bosh-saltedhash/blobencoding"
	"github.com/cloudfoundry/bosh-saltedhash/crypto"
	bosherr "github.com/cloudfoundry/bosh-saltedhash/errors"
	"github.com/cloudfoundry/bosh-saltedhash/saltedhash"
	boshsys "github.com/cloudfoundry/bosh-saltedhash/system"
)

// Profile is a hashing configuration shared by every record of a deployment.
// FixedSalt is a multibase string so its base travels with it.
type Profile struct {
	Algorithm    string `yaml:"algorithm"`
	TextEncoding string `yaml:"text_encoding"`
	SaltPolicy   string `yaml:"salt_policy"`
	SaltOrder    string `yaml:"salt_order"`
	SaltLength   int    `yaml:"salt_length"`
	FixedSalt    string `yaml:"fixed_salt"`
	Output       string `yaml:"output"`
}

func DefaultProfile() Profile {
	return Profile{
		Algorithm:    crypto.DefaultAlgorithm.Name(),
		TextEncoding: crypto.DefaultTextEncoding,
		SaltPolicy:   saltedhash.DoNotStore.String(),
		SaltOrder:    saltedhash.StoredSaltFirst.String(),
		Output:       blobencoding.Hex,
	}
}

// Load overlays the YAML at path on DefaultProfile.
func Load(fs boshsys.FileSystem, path string) (Profile, error) {
	profile := DefaultProfile()

	if !fs.FileExists(path) {
		return Profile{}, bosherr.Errorf("Hashing profile '%s' does not exist", path)
	}

	contents, err := fs.ReadFile(path)
	if err != nil {
		return Profile{}, bosherr.WrapErrorf(err, "Reading hashing profile '%s'", path)
	}

	err = yaml.UnmarshalStrict(contents, &profile)
	if err != nil {
		return Profile{}, bosherr.WrapErrorf(err, "Parsing hashing profile '%s'", path)
	}

	return profile, nil
}

func (p Profile) Validate() error {
	var errs []error

	if _, err := crypto.AlgorithmFromName(p.Algorithm).Size(); err != nil {
		errs = append(errs, bosherr.WrapErrorf(err, "Algorithm must be one of %s", strings.Join(crypto.KnownAlgorithmNames(), ", ")))
	}

	if _, err := saltedhash.ParseSaltStorePolicy(p.SaltPolicy); err != nil {
		errs = append(errs, err)
	}

	if _, err := saltedhash.ParseSaltOrder(p.SaltOrder); err != nil {
		errs = append(errs, err)
	}

	if _, err := blobencoding.EncodingFromName(p.Output); err != nil {
		errs = append(errs, err)
	}

	if _, err := p.fixedSalt(); err != nil {
		errs = append(errs, err)
	}

	if p.SaltLength < 0 {
		errs = append(errs, bosherr.Errorf("Salt length must not be negative, got %d", p.SaltLength))
	}

	if len(errs) > 0 {
		return bosherr.WrapError(bosherr.NewMultiError(errs...), "Validating hashing profile")
	}

	return nil
}

func (p Profile) OutputEncoding() (blobencoding.Encoding, error) {
	return blobencoding.EncodingFromName(p.Output)
}

// Request applies the profile to base. A fixed salt selects the two-salt
// configuration; otherwise a single stored salt is used, or none at all
// when the profile neither stores nor generates a salt.
func (p Profile) Request(base saltedhash.Request, storedSalt []byte) (saltedhash.Request, error) {
	err := p.Validate()
	if err != nil {
		return saltedhash.Request{}, err
	}

	policy, _ := saltedhash.ParseSaltStorePolicy(p.SaltPolicy)
	order, _ := saltedhash.ParseSaltOrder(p.SaltOrder)
	fixedSalt, _ := p.fixedSalt()

	request := base.
		WithAlgorithmName(p.Algorithm).
		WithTextEncoding(p.TextEncoding).
		WithRandomSalt(p.SaltLength)

	switch {
	case fixedSalt != nil:
		request = request.WithStoredAndFixedSalt(storedSalt, fixedSalt, order, policy)
	case storedSalt != nil || p.SaltLength > 0 || policy.Stores():
		request = request.WithSalt(storedSalt, policy)
	default:
		request = request.WithSalts(saltedhash.NoSalt{})
	}

	return request, nil
}

func (p Profile) fixedSalt() ([]byte, error) {
	if p.FixedSalt == "" {
		return nil, nil
	}

	salt, err := blobencoding.DecodeMultibase(p.FixedSalt)
	if err != nil {
		return nil, bosherr.WrapError(err, "Decoding fixed salt")
	}

	return salt, nil
}
