package usecase

import (
	"strings"

	"github.com/jhoicas/restaurante-mis/internal/domain"
	"github.com/jhoicas/restaurante-mis/pkg/validator"
)

// ValidationError lista los campos que bloquean un envío.
// errors.Is la reconoce como domain.ErrRequiredField o domain.ErrInvalidInput según el caso.
type ValidationError struct {
	Fields []validator.FieldError
}

// NewValidationError devuelve nil si no hay campos con error.
func NewValidationError(fields []validator.FieldError) error {
	if len(fields) == 0 {
		return nil
	}
	return &ValidationError{Fields: fields}
}

func (e *ValidationError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		names = append(names, f.Field+":"+f.Tag)
	}
	return "validación: " + strings.Join(names, ", ")
}

func (e *ValidationError) Unwrap() error {
	for _, f := range e.Fields {
		if f.Tag != "required" {
			return domain.ErrInvalidInput
		}
	}
	return domain.ErrRequiredField
}

func required(field string) validator.FieldError {
	return validator.FieldError{Field: field, Tag: "required"}
}
