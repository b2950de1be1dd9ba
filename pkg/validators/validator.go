package validators

import "github.com/go-playground/validator/v10"

// CustomValidator adapts go-playground/validator to echo's Validator
// interface. Validation failures flow to the HTTP error handler as
// validator.ValidationErrors.
type CustomValidator struct {
	validator *validator.Validate
}

// NewValidator creates a validator ready to assign to echo.Echo.Validator
func NewValidator() *CustomValidator {
	return &CustomValidator{validator: validator.New()}
}

// Validate validates the given struct against its validate tags
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
