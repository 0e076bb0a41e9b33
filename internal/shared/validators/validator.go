package validators

import (
	"net/url"

	"github.com/go-playground/validator/v10"
)

// TagRemoteURL validates a log source reachable over the network: an absolute http or https URL.
const TagRemoteURL = "remote_url"

// Validate is a type alias for validator.Validate.
type Validate = validator.Validate

// ValidationErrors is a type alias for validator.ValidationErrors.
type ValidationErrors = validator.ValidationErrors

// FieldError is a type alias for validator.FieldError.
type FieldError = validator.FieldError

// New creates a new validator instance with the project's custom tags registered.
func New() *Validate {
	v := validator.New()
	_ = v.RegisterValidation(TagRemoteURL, isRemoteURL)
	return v
}

func isRemoteURL(fl validator.FieldLevel) bool {
	u, err := url.Parse(fl.Field().String())
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}
