// Package validator wraps go-playground/validator with the module's error
// format and the custom tags used by configuration structs.
//
// Custom tags:
//
//	pubkey  the field is a base58 encoded 32-byte Solana public key
package validator

import (
	"errors"
	"fmt"

	"github.com/gagliardetto/solana-go"
	gvalidator "github.com/go-playground/validator/v10"
)

// ErrValidationFailed leads the joined error returned by Validate, so callers
// can detect validation failures with errors.Is.
var ErrValidationFailed = errors.New("struct validation failed")

var validator *gvalidator.Validate

// Example: "'ProgramID': value 'abc' does not meet the requirements for the 'pubkey' validation"
const errStringFormat = "'%s': value '%v' does not meet the requirements for the '%s' validation"

func init() {
	validator = gvalidator.New(gvalidator.WithRequiredStructEnabled())

	if err := validator.RegisterValidation("pubkey", isPublicKey); err != nil {
		panic(err)
	}
}

// isPublicKey accepts strings that decode to a Solana public key. Empty
// strings pass so that the tag composes with omitempty and required.
func isPublicKey(fl gvalidator.FieldLevel) bool {
	s := fl.Field().String()
	if s == "" {
		return true
	}

	_, err := solana.PublicKeyFromBase58(s)
	return err == nil
}

func formatError(err error) error {
	var validationErrors gvalidator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return err
	}

	errs := []error{ErrValidationFailed}
	for _, validationErr := range validationErrors {
		errs = append(errs, fmt.Errorf(errStringFormat,
			validationErr.Namespace(),
			validationErr.Value(),
			validationErr.Tag(),
		))
	}

	return errors.Join(errs...)
}

// Validate checks v against its `validate` struct tags. On failure the
// returned error joins ErrValidationFailed with one message per field.
func Validate(v any) error {
	if err := validator.Struct(v); err != nil {
		return formatError(err)
	}

	return nil
}
