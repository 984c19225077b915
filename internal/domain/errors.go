package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrUsernameTaken      = errors.New("el username ya está registrado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")
	ErrConflict           = errors.New("conflicto con el estado actual")
	ErrInsufficientStock  = errors.New("stock insuficiente")
)

// ValidationError agrupa los mensajes por campo producidos por el validador.
// Envuelve ErrInvalidInput para que errors.Is(err, ErrInvalidInput) siga funcionando.
type ValidationError struct {
	Messages []string
}

// NewValidationError construye el error con uno o más mensajes.
func NewValidationError(messages ...string) *ValidationError {
	return &ValidationError{Messages: messages}
}

// Error implementa error.
func (e *ValidationError) Error() string {
	return "validación: " + strings.Join(e.Messages, "; ")
}

// Unwrap permite mapear el error a ErrInvalidInput en las capas superiores.
func (e *ValidationError) Unwrap() error {
	return ErrInvalidInput
}

// NotFoundError es un 404 que nombra la referencia ausente (ej. la FK de un
// payload). Envuelve ErrNotFound para que errors.Is siga funcionando.
type NotFoundError struct {
	Message string
}

// NewNotFoundError construye el error con el mensaje formateado.
func NewNotFoundError(format string, args ...any) *NotFoundError {
	return &NotFoundError{Message: fmt.Sprintf(format, args...)}
}

// Error implementa error.
func (e *NotFoundError) Error() string {
	return e.Message
}

// Unwrap permite mapear el error a ErrNotFound en las capas superiores.
func (e *NotFoundError) Unwrap() error {
	return ErrNotFound
}
