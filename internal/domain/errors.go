package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")
	ErrConflict           = errors.New("conflicto con el estado actual")
	ErrOutOfStock         = errors.New("stock insuficiente para la orden")
	ErrTooManyAttempts    = errors.New("demasiados intentos de login")
	ErrLedgerInconsistent = errors.New("los libros de inventario no concuerdan")
)
