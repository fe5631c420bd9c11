package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")
	ErrConflict           = errors.New("conflicto con el estado actual")

	// Reglas de negocio de admisiones y camas.
	ErrNoCapacity     = errors.New("sin capacidad disponible")
	ErrInvalidBed     = errors.New("la cama no pertenece al pabellón")
	ErrBedUnavailable = errors.New("la cama no está disponible")

	// Reglas de negocio de farmacia.
	ErrInsufficientStock = errors.New("stock de farmacia insuficiente")
	ErrAlreadyProcessed  = errors.New("la solicitud ya fue procesada")
)
