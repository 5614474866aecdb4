// Package validator plugs go-playground/validator into Echo.
package validator

import (
	"reflect"

	"campwatch/internal/domain/entity"
	domainerrors "campwatch/internal/domain/errors"

	"github.com/go-playground/validator/v10"
)

// CustomValidator implements echo.Validator.
type CustomValidator struct {
	validate *validator.Validate
}

// New builds a validator that treats entity.Date as time.Time, so tags such as
// required and gtfield work on calendar dates. Optional fields validate their held
// value and count as empty when unset or null.
func New() *CustomValidator {
	validate := validator.New(validator.WithRequiredStructEnabled())
	validate.RegisterCustomTypeFunc(func(field reflect.Value) any {
		if date, ok := field.Interface().(entity.Date); ok {
			return date.Time
		}

		return nil
	}, entity.Date{})
	validate.RegisterCustomTypeFunc(func(field reflect.Value) any {
		if opt, ok := field.Interface().(interface{ Any() any }); ok {
			return opt.Any()
		}

		return nil
	}, entity.Optional[int64]{}, entity.Optional[string]{}, entity.Optional[bool]{}, entity.Optional[entity.Date]{})

	return &CustomValidator{validate: validate}
}

// Validate reports failures as ErrValidationFailed with the offending fields as details.
func (cv *CustomValidator) Validate(i any) error {
	if err := cv.validate.Struct(i); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	return nil
}
