package validator

import (
	"strings"

	"github.com/garrettladley/safequake/internal/xerrors"
)

type Validator interface {
	// Validate validates the fields of the struct and returns a map of errors.
	// returns nil if no errors are found
	Validate() map[string]string
}

func Validate(v Validator) *xerrors.Error {
	if err := v.Validate(); err != nil {
		return xerrors.Validation(err)
	}
	return nil
}

// Required records a message for field when value is blank.
func Required(errs map[string]string, field, value string) map[string]string {
	if strings.TrimSpace(value) != "" {
		return errs
	}
	if errs == nil {
		errs = make(map[string]string)
	}
	errs[field] = field + " is required"
	return errs
}
