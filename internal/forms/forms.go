// Package forms validates and parses the text a user types into requests.
package forms

import (
	"maps"
	"math"
	"slices"
	"strconv"
	"strings"

	"github.com/garrettladley/safequake/internal/client/quake"
	"github.com/garrettladley/safequake/internal/validator"
)

// Errors maps a field name to its message.
type Errors map[string]string

func (e Errors) Error() string {
	keys := slices.Sorted(maps.Keys(e))
	msgs := make([]string, 0, len(keys))
	for _, k := range keys {
		msgs = append(msgs, e[k])
	}
	return strings.Join(msgs, "; ")
}

// First returns the message of the first field in order that failed.
func (e Errors) First(order ...string) string {
	for _, f := range order {
		if msg, ok := e[f]; ok {
			return msg
		}
	}
	return e.Error()
}

func check(v validator.Validator) error {
	if verr := validator.Validate(v); verr != nil {
		return Errors(verr.Validation.Fields)
	}
	return nil
}

func parseFloat(errs Errors, field, value string) float64 {
	f, err := strconv.ParseFloat(strings.TrimSpace(strings.ReplaceAll(value, ",", ".")), 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		errs[field] = field + " must be a number"
		return 0
	}
	return f
}

type Login struct {
	Email    string
	Password string
}

func (f Login) Validate() map[string]string {
	var errs map[string]string
	errs = validator.Required(errs, "email", f.Email)
	errs = validator.Required(errs, "password", f.Password)
	return errs
}

func (f Login) Parse() (quake.Credentials, error) {
	if err := check(f); err != nil {
		return quake.Credentials{}, err
	}
	return quake.Credentials{Email: strings.TrimSpace(f.Email), Password: f.Password}, nil
}

type Register struct {
	Name      string
	Email     string
	Password  string
	Latitude  string
	Longitude string
}

func (f Register) Validate() map[string]string {
	var errs map[string]string
	errs = validator.Required(errs, "name", f.Name)
	errs = validator.Required(errs, "email", f.Email)
	errs = validator.Required(errs, "password", f.Password)
	errs = validator.Required(errs, "latitude", f.Latitude)
	errs = validator.Required(errs, "longitude", f.Longitude)
	return errs
}

func (f Register) Parse() (quake.Registration, error) {
	if err := check(f); err != nil {
		return quake.Registration{}, err
	}
	errs := Errors{}
	reg := quake.Registration{
		Name:      strings.TrimSpace(f.Name),
		Email:     strings.TrimSpace(f.Email),
		Password:  f.Password,
		Latitude:  parseFloat(errs, "latitude", f.Latitude),
		Longitude: parseFloat(errs, "longitude", f.Longitude),
	}
	if len(errs) > 0 {
		return quake.Registration{}, errs
	}
	return reg, nil
}

type Manual struct {
	Timestamp string
	Magnitude string
	Latitude  string
	Longitude string
}

func (f Manual) Validate() map[string]string {
	var errs map[string]string
	errs = validator.Required(errs, "timestamp", f.Timestamp)
	errs = validator.Required(errs, "magnitude", f.Magnitude)
	errs = validator.Required(errs, "latitude", f.Latitude)
	errs = validator.Required(errs, "longitude", f.Longitude)
	return errs
}

func (f Manual) Parse() (quake.ManualEarthquake, error) {
	if err := check(f); err != nil {
		return quake.ManualEarthquake{}, err
	}
	errs := Errors{}
	in := quake.ManualEarthquake{
		Timestamp: strings.TrimSpace(f.Timestamp),
		Magnitude: parseFloat(errs, "magnitude", f.Magnitude),
		Latitude:  parseFloat(errs, "latitude", f.Latitude),
		Longitude: parseFloat(errs, "longitude", f.Longitude),
	}
	if len(errs) > 0 {
		return quake.ManualEarthquake{}, errs
	}
	return in, nil
}

// Magnitude is the single-field edit form.
type Magnitude struct {
	Value string
}

func (f Magnitude) Validate() map[string]string {
	return validator.Required(nil, "magnitude", f.Value)
}

// Parse builds the update for e, keeping its timestamp and nivel.
func (f Magnitude) Parse(e quake.Earthquake) (quake.EarthquakeUpdate, error) {
	if err := check(f); err != nil {
		return quake.EarthquakeUpdate{}, err
	}
	errs := Errors{}
	m := parseFloat(errs, "magnitude", f.Value)
	if len(errs) > 0 {
		return quake.EarthquakeUpdate{}, errs
	}
	return quake.UpdateFrom(e, m), nil
}
