package utils

import (
	"html"
	"sync"
	"unicode"

	"github.com/go-playground/validator/v10"
	"github.com/microcosm-cc/bluemonday"
)

// Validator bundles the struct validator and the HTML policy used for request paths and markup checks.
// Request bodies are validated, never rewritten, so stored text is exactly what the client sent.
type Validator struct {
	Validate *validator.Validate
	policy   *bluemonday.Policy
}

var (
	instance *Validator
	once     sync.Once
)

// GetValidator returns the process-wide validator, registering the custom rules on first use.
func GetValidator() *Validator {
	once.Do(func() {
		instance = &Validator{
			Validate: validator.New(validator.WithRequiredStructEnabled()),
			policy:   bluemonday.StrictPolicy(),
		}

		registerCustomValidators(instance.Validate, instance.policy)
	})

	return instance
}

// Sanitize strips any HTML from s.
func (v *Validator) Sanitize(s string) string {
	return v.policy.Sanitize(s)
}

func registerCustomValidators(v *validator.Validate, policy *bluemonday.Policy) {
	err := v.RegisterValidation("username_validation", usernameValidation)
	if err != nil {
		return
	}
	err = v.RegisterValidation("no_markup", noMarkupValidation(policy))
	if err != nil {
		return
	}
}

// usernameValidation accepts printable usernames without whitespace.
func usernameValidation(fl validator.FieldLevel) bool {
	username := fl.Field().String()
	if username == "" {
		return false
	}

	for _, r := range username {
		if unicode.IsSpace(r) || !unicode.IsPrint(r) {
			return false
		}
	}

	return true
}

// noMarkupValidation rejects values containing HTML elements. Plain text with entity
// characters such as & or ' passes, since the policy only escapes it.
func noMarkupValidation(policy *bluemonday.Policy) validator.Func {
	return func(fl validator.FieldLevel) bool {
		value := fl.Field().String()
		return html.UnescapeString(policy.Sanitize(value)) == html.UnescapeString(value)
	}
}
