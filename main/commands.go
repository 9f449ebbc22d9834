package main

import (
	"errors"
	"fmt"

	"github.com/cloudfoundry/bosh-saltedhash/blobencoding"
	"github.com/cloudfoundry/bosh-saltedhash/config"
	"github.com/cloudfoundry/bosh-saltedhash/crypto"
	bosherr "github.com/cloudfoundry/bosh-saltedhash/errors"
	"github.com/cloudfoundry/bosh-saltedhash/saltedhash"
)

var errInvalidHash = bosherr.Error("Stored hash does not match input")

func (c *ProduceCmd) Execute(_ []string) error {
	request, encoding, err := buildRequest(c.deps, c.ProfileOpts, c.InputOpts, c.Salt)
	if err != nil {
		return err
	}

	blob, salt, err := request.ProduceWithSalt()
	if err != nil {
		return bosherr.WrapError(err, "Producing hash")
	}

	encoded, err := encoding.Encode(blob)
	if err != nil {
		return err
	}
	fmt.Fprintln(c.deps.stdout, encoded)

	// A generated salt that the blob does not carry is lost unless printed.
	if c.Salt == "" && salt != nil && !request.Salts().Policy().Stores() {
		encodedSalt, err := encoding.Encode(salt)
		if err != nil {
			return err
		}
		fmt.Fprintf(c.deps.stdout, "salt %s\n", encodedSalt)
	}

	return nil
}

func (c *ValidateCmd) Execute(_ []string) error {
	request, encoding, err := buildRequest(c.deps, c.ProfileOpts, c.InputOpts, c.Salt)
	if err != nil {
		return err
	}

	stored, err := encoding.Decode(c.Stored)
	if err != nil {
		return bosherr.WrapError(err, "Reading stored hash")
	}

	valid, err := request.WithStored(stored).Validate()
	if err != nil {
		return bosherr.WrapError(err, "Validating hash")
	}

	if !valid {
		fmt.Fprintln(c.deps.stdout, "invalid")
		return errInvalidHash
	}

	fmt.Fprintln(c.deps.stdout, "valid")
	return nil
}

func (c *DigestCmd) Execute(_ []string) error {
	if c.Expected == "" {
		digest, err := crypto.Compute(c.input(), crypto.AlgorithmFromName(c.Algorithm))
		if err != nil {
			return bosherr.WrapError(err, "Computing digest")
		}

		fmt.Fprintln(c.deps.stdout, digest.String())
		return nil
	}

	expected, err := crypto.ParseDigestString(c.Expected)
	if err != nil {
		return err
	}

	reader, err := c.input().Open()
	if err != nil {
		return bosherr.WrapError(err, "Computing digest")
	}
	defer func() {
		_ = reader.Close()
	}()

	err = expected.Verify(reader)
	if errors.Is(err, crypto.ErrIO) {
		return bosherr.WrapError(err, "Computing digest")
	}
	if err != nil {
		c.deps.logger.Debug(mainLogTag, "%s", err.Error())
		fmt.Fprintln(c.deps.stdout, "invalid")
		return errInvalidHash
	}

	fmt.Fprintln(c.deps.stdout, "valid")
	return nil
}

func (c *DigestCmd) input() crypto.Input {
	switch {
	case c.Text != nil:
		return crypto.TextInput(*c.Text, c.TextEncoding)
	case c.File != "":
		return crypto.FileInput(c.File, c.deps.fs)
	default:
		return crypto.StreamInput(c.deps.stdin)
	}
}

func buildRequest(d deps, profileOpts ProfileOpts, inputOpts InputOpts, encodedSalt string) (saltedhash.Request, blobencoding.Encoding, error) {
	profile, err := loadProfile(d, profileOpts)
	if err != nil {
		return saltedhash.Request{}, nil, err
	}

	d.logger.DebugWithDetails(mainLogTag, "Using hashing profile", fmt.Sprintf("algorithm=%s policy=%s order=%s output=%s",
		profile.Algorithm, profile.SaltPolicy, profile.SaltOrder, profile.Output))

	encoding, err := profile.OutputEncoding()
	if err != nil {
		return saltedhash.Request{}, nil, err
	}

	var salt []byte
	if encodedSalt != "" {
		salt, err = encoding.Decode(encodedSalt)
		if err != nil {
			return saltedhash.Request{}, nil, bosherr.WrapError(err, "Reading salt")
		}
	}

	var base saltedhash.Request
	switch {
	case inputOpts.Text != nil:
		base = saltedhash.ForText(*inputOpts.Text)
	case inputOpts.File != "":
		base = saltedhash.ForFile(inputOpts.File, d.fs)
	default:
		base = saltedhash.ForStream(d.stdin)
	}

	request, err := profile.Request(base.WithLogger(d.logger), salt)
	if err != nil {
		return saltedhash.Request{}, nil, err
	}

	return request, encoding, nil
}

func loadProfile(d deps, opts ProfileOpts) (config.Profile, error) {
	profile := config.DefaultProfile()

	if opts.Config != "" {
		var err error
		profile, err = config.Load(d.fs, opts.Config)
		if err != nil {
			return config.Profile{}, err
		}
	}

	overrides := []struct {
		value  string
		target *string
	}{
		{opts.Algorithm, &profile.Algorithm},
		{opts.TextEncoding, &profile.TextEncoding},
		{opts.Policy, &profile.SaltPolicy},
		{opts.Order, &profile.SaltOrder},
		{opts.FixedSalt, &profile.FixedSalt},
		{opts.Output, &profile.Output},
	}
	for _, o := range overrides {
		if o.value != "" {
			*o.target = o.value
		}
	}

	if opts.SaltLength > 0 {
		profile.SaltLength = opts.SaltLength
	}

	return profile, nil
}
