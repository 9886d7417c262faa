package request

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"bookit/internal/domain/booking"

	"github.com/go-playground/validator/v10"
)

// Messages maps a JSON field name to the message reported when any rule on it fails.
type Messages map[string]string

type Validator struct {
	validate *validator.Validate
}

func NewValidator() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	// The stdlib-style "email" tag is stricter than the address pattern bookings accept.
	if err := v.RegisterValidation("address", func(fl validator.FieldLevel) bool {
		return booking.EmailPattern.MatchString(fl.Field().String())
	}); err != nil {
		panic(fmt.Sprintf("register address validation: %v", err))
	}
	return &Validator{validate: v}
}

// Violations returns one message per failing field, in struct order, so callers can
// report every broken rule at once.
func (v *Validator) Violations(s any, msgs Messages) []string {
	err := v.validate.Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []string{err.Error()}
	}

	out := make([]string, 0, len(verrs))
	seen := make(map[string]struct{}, len(verrs))
	for _, fe := range verrs {
		field := fe.Field()
		if _, dup := seen[field]; dup {
			continue
		}
		seen[field] = struct{}{}

		if m, ok := msgs[field]; ok {
			out = append(out, m)
			continue
		}
		out = append(out, field+" is invalid")
	}
	return out
}
