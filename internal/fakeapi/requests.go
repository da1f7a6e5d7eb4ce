package fakeapi

import (
	"github.com/garrettladley/safequake/internal/client/quake"
	"github.com/garrettladley/safequake/internal/validator"
)

type loginRequest quake.Credentials

var _ validator.Validator = loginRequest{}

func (r loginRequest) Validate() map[string]string {
	var errs map[string]string
	errs = validator.Required(errs, "email", r.Email)
	errs = validator.Required(errs, "password", r.Password)
	return errs
}

type registerRequest quake.Registration

var _ validator.Validator = registerRequest{}

func (r registerRequest) Validate() map[string]string {
	var errs map[string]string
	errs = validator.Required(errs, "name", r.Name)
	errs = validator.Required(errs, "email", r.Email)
	errs = validator.Required(errs, "password", r.Password)
	return errs
}

type manualRequest quake.ManualEarthquake

var _ validator.Validator = manualRequest{}

func (r manualRequest) Validate() map[string]string {
	return validator.Required(nil, "timestamp", r.Timestamp)
}
