package saltedhash

import (
	"bytes"
	"io"

	"github.com/cloudfoundry/bosh-saltedhash/crypto"
	bosherr "github.com/cloudfoundry/bosh-saltedhash/errors"
	boshlog "github.com/cloudfoundry/bosh-saltedhash/logger"
	boshsys "github.com/cloudfoundry/bosh-saltedhash/system"
)

const logTag = "saltedhash"

// Request binds an input to an algorithm, a salt configuration and, for
// validation, a previously stored blob. Every With* method returns a
// modified copy, and byte slices are copied on the way in and out.
//
// A Request built over a stream can only be evaluated once since the stream
// is drained by the first Produce or Validate.
type Request struct {
	input        func(textEncoding string) crypto.Input
	algorithm    crypto.Algorithm
	textEncoding string
	salts        SaltConfig
	stored       []byte

	randomSaltLength int
	saltGenerator    SaltGenerator

	logger boshlog.Logger
}

func NewRequest(input crypto.Input) Request {
	return newRequest(func(string) crypto.Input { return input })
}

func ForBytes(data []byte) Request {
	return NewRequest(crypto.BytesInput(data))
}

// ForText encodes text with the request's text encoding, UTF-8 unless
// WithTextEncoding says otherwise.
func ForText(text string) Request {
	return newRequest(func(textEncoding string) crypto.Input {
		return crypto.TextInput(text, textEncoding)
	})
}

func ForStream(reader io.Reader) Request {
	return NewRequest(crypto.StreamInput(reader))
}

func ForFile(path string, fs boshsys.FileSystem) Request {
	return NewRequest(crypto.FileInput(path, fs))
}

func newRequest(input func(string) crypto.Input) Request {
	return Request{
		input:         input,
		algorithm:     crypto.DefaultAlgorithm,
		textEncoding:  crypto.DefaultTextEncoding,
		salts:         NoSalt{},
		saltGenerator: NewRandomSaltGenerator(),
		logger:        boshlog.NewLogger(boshlog.LevelNone),
	}
}

func (r Request) WithAlgorithm(algorithm crypto.Algorithm) Request {
	r.algorithm = algorithm
	return r
}

// WithAlgorithmName does not validate name; an unknown name fails on Produce or Validate.
func (r Request) WithAlgorithmName(name string) Request {
	return r.WithAlgorithm(crypto.AlgorithmFromName(name))
}

func (r Request) WithTextEncoding(name string) Request {
	r.textEncoding = name
	return r
}

func (r Request) WithSalts(salts SaltConfig) Request {
	if salts == nil {
		salts = NoSalt{}
	}
	r.salts = salts.clone()
	return r
}

func (r Request) WithSalt(salt []byte, policy SaltStorePolicy) Request {
	return r.WithSalts(SingleSalt{Salt: salt, StorePolicy: policy})
}

func (r Request) WithStoredAndFixedSalt(storedSalt, fixedSalt []byte, order SaltOrder, policy SaltStorePolicy) Request {
	return r.WithSalts(DualSalt{
		StoredSalt:  storedSalt,
		FixedSalt:   fixedSalt,
		Order:       order,
		StorePolicy: policy,
	})
}

// WithRandomSalt makes Produce draw a stored salt of length bytes when none
// has been set.
func (r Request) WithRandomSalt(length int) Request {
	r.randomSaltLength = length
	return r
}

func (r Request) WithSaltGenerator(generator SaltGenerator) Request {
	r.saltGenerator = generator
	return r
}

func (r Request) WithStored(blob []byte) Request {
	r.stored = clone(blob)
	return r
}

func (r Request) WithLogger(logger boshlog.Logger) Request {
	r.logger = logger
	return r
}

func (r Request) Algorithm() crypto.Algorithm { return r.algorithm }

func (r Request) TextEncoding() string { return r.textEncoding }

func (r Request) Salts() SaltConfig { return r.salts.clone() }

func (r Request) Stored() []byte { return clone(r.stored) }

// Produce returns the blob to persist.
func (r Request) Produce() ([]byte, error) {
	blob, _, err := r.ProduceWithSalt()
	return blob, err
}

// ProduceWithSalt also returns the stored salt that went into the blob, which
// matters under DoNotStore when the salt was generated.
func (r Request) ProduceWithSalt() ([]byte, []byte, error) {
	salts, err := r.resolveStoredSalt()
	if err != nil {
		return nil, nil, err
	}

	r.logger.Debug(logTag, "Producing %s hash with salt policy '%s'", r.algorithm.Name(), salts.Policy())

	blob, err := r.storable(salts)
	if err != nil {
		return nil, nil, err
	}

	r.logger.Debug(logTag, "Produced %d byte hash", len(blob))

	return blob, clone(salts.storedSalt()), nil
}

// Validate recomputes the blob for the configured input and compares it with
// the stored one byte for byte. Under a storing policy the salt is recovered
// from the stored blob and any configured stored salt is ignored.
//
// The comparison uses bytes.Equal and is not constant time.
func (r Request) Validate() (bool, error) {
	if r.stored == nil {
		return false, ErrMissingStoredValue
	}

	salts := r.salts
	policy := salts.Policy()

	if policy.Stores() {
		size, err := r.algorithm.Size()
		if err != nil {
			return false, err
		}

		_, saltPart, err := Decode(r.stored, policy, size)
		if err != nil {
			return false, err
		}

		salts = salts.withStoredSalt(saltPart)
	}

	r.logger.Debug(logTag, "Validating %d byte %s hash with salt policy '%s'", len(r.stored), r.algorithm.Name(), policy)

	blob, err := r.storable(salts)
	if err != nil {
		return false, err
	}

	valid := bytes.Equal(blob, r.stored)
	r.logger.Debug(logTag, "Stored hash valid: %t", valid)

	return valid, nil
}

// RecoverSalt returns the salt portion of blob under the configured storing policy.
func (r Request) RecoverSalt(blob []byte) ([]byte, error) {
	policy := r.salts.Policy()
	if !policy.Stores() {
		return nil, bosherr.WrapComplexError(
			bosherr.Errorf("salt is not recoverable under '%s'", policy),
			ErrInvalidArgument,
		)
	}

	size, err := r.algorithm.Size()
	if err != nil {
		return nil, err
	}

	_, saltPart, err := Decode(blob, policy, size)
	return saltPart, err
}

func (r Request) resolveStoredSalt() (SaltConfig, error) {
	salts := r.salts
	if !salts.needsStoredSalt() || salts.storedSalt() != nil || r.randomSaltLength <= 0 {
		return salts, nil
	}

	salt, err := r.saltGenerator.Generate(r.randomSaltLength)
	if err != nil {
		return nil, bosherr.WrapError(err, "Generating stored salt")
	}

	return salts.withStoredSalt(salt), nil
}

func (r Request) storable(salts SaltConfig) ([]byte, error) {
	mixSalt, err := salts.mixSalt()
	if err != nil {
		return nil, err
	}

	digest, err := crypto.Compute(r.input(r.textEncoding), r.algorithm)
	if err != nil {
		return nil, err
	}

	mixed, err := Mix(r.algorithm, digest.Bytes(), mixSalt)
	if err != nil {
		return nil, err
	}

	return Encode(mixed, salts.storedSalt(), salts.Policy())
}
