package validation

import (
	"errors"

	"github.com/go-playground/validator/v10"
)

type Validator struct {
	v *validator.Validate
}

func New() *Validator {
	return &Validator{v: validator.New()}
}

func (v *Validator) Validate(i interface{}) error {
	return v.v.Struct(i)
}

// Fields flattens a validator error into field -> failed-rule pairs so
// clients see exactly which fields were rejected.
func Fields(err error) map[string]string {
	out := map[string]string{}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		for _, fe := range verrs {
			out[fe.Field()] = fe.Tag()
		}
	}
	return out
}
