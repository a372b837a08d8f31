package pets

import (
	"errors"
	"fmt"
)

// ErrNotFound lo devuelven las implementaciones de Repository cuando el
// id no existe. El Service lo traduce a *NotFoundError con mensaje.
var ErrNotFound = errors.New("pet not found")

// ValidationError reporta input malformado o fuera de rango.
// Details lleva información estructurada opcional (p. ej. los valores
// válidos del enum kind).
type ValidationError struct {
	Message string
	Details any
}

func (e *ValidationError) Error() string { return e.Message }

// NotFoundError reporta un id bien formado pero ausente del store.
type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string { return e.Message }

func newValidationError(msg string) error {
	return &ValidationError{Message: msg}
}

func newNotFoundError(id string) error {
	return &NotFoundError{Message: fmt.Sprintf("Pet com ID '%s' não foi encontrado", id)}
}
