package saltedhash

import (
	bosherr "github.com/cloudfoundry/bosh-saltedhash/errors"
)

var (
	ErrInvalidLayout      = bosherr.Error("Invalid stored hash layout")
	ErrMissingStoredValue = bosherr.Error("Missing stored hash to validate against")
	ErrNullArgument       = bosherr.Error("Required value is missing")
	ErrInvalidArgument    = bosherr.Error("Invalid argument")
)
