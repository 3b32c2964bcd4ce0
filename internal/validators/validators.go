package validators

import (
	"regexp"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

var phonePattern = regexp.MustCompile(`^\+?[0-9 ().-]{7,20}$`)

// New returns a validator with the project's custom rules registered.
func New() *validator.Validate {
	v := validator.New()
	Register(v)
	return v
}

func Register(v *validator.Validate) {
	_ = v.RegisterValidation("phone", IsPhone)
	_ = v.RegisterValidation("rfc3339", IsRFC3339)
}

// IsPhone accepts loosely formatted phone numbers with at least seven digits.
func IsPhone(fl validator.FieldLevel) bool {
	s := strings.TrimSpace(fl.Field().String())
	if !phonePattern.MatchString(s) {
		return false
	}

	digits := 0
	for _, r := range s {
		if r >= '0' && r <= '9' {
			digits++
		}
	}
	return digits >= 7
}

// IsRFC3339 requires an explicit offset or Z.
func IsRFC3339(fl validator.FieldLevel) bool {
	_, err := time.Parse(time.RFC3339, fl.Field().String())
	return err == nil
}
