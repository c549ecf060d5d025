// Package validator wraps go-playground/validator with a shared instance,
// wallet-specific tags and uniform error formatting.
//
// Besides the stock tags it registers:
//
//	lnaddress  a Lightning address (LUD-16), e.g. "satoshi@getalby.com"
//	wsurl      a ws:// or wss:// relay URL
package validator

import (
	"errors"
	"fmt"
	"net/url"
	"regexp"

	gvalidator "github.com/go-playground/validator/v10"
)

// ErrValidationFailed is the first error of the chain returned by Validate
// when at least one field rule is violated.
var ErrValidationFailed = errors.New("struct validation failed")

var validator *gvalidator.Validate

// Example: "'Address': value 'nope' does not meet the requirements for the 'lnaddress' validation"
const errStringFormat = "'%s': value '%v' does not meet the requirements for the '%s' validation"

// LUD-16 restricts the username to lowercase alphanumerics and -_.
var lnAddressPattern = regexp.MustCompile(`^[a-z0-9\-_.]+@[a-zA-Z0-9\-]+(\.[a-zA-Z0-9\-]+)+$`)

func init() {
	validator = gvalidator.New(gvalidator.WithRequiredStructEnabled())

	mustRegister("lnaddress", func(fl gvalidator.FieldLevel) bool {
		return lnAddressPattern.MatchString(fl.Field().String())
	})
	mustRegister("wsurl", func(fl gvalidator.FieldLevel) bool {
		u, err := url.Parse(fl.Field().String())
		if err != nil {
			return false
		}
		return (u.Scheme == "ws" || u.Scheme == "wss") && u.Host != ""
	})
}

func mustRegister(tag string, fn gvalidator.Func) {
	if err := validator.RegisterValidation(tag, fn); err != nil {
		panic(fmt.Sprintf("validator: register %q: %v", tag, err))
	}
}

// formatError turns validator.ValidationErrors into ErrValidationFailed
// joined with one message per field. Other errors pass through unchanged.
func formatError(err error) error {
	var validationErrors gvalidator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return err
	}

	errs := []error{ErrValidationFailed}
	for _, validationErr := range validationErrors {
		errs = append(errs, fmt.Errorf(errStringFormat,
			validationErr.Field(),
			validationErr.Value(),
			validationErr.Tag(),
		))
	}

	return errors.Join(errs...)
}

// Validate checks v against its `validate` struct tags.
//
//	if err := validator.Validate(cfg); errors.Is(err, validator.ErrValidationFailed) {
//	    // report err
//	}
func Validate(v any) error {
	if err := validator.Struct(v); err != nil {
		return formatError(err)
	}

	return nil
}
