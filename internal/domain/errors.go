// Package domain define los errores centinela que los use cases devuelven
// y que la capa HTTP traduce a códigos de estado. Las capas internas los
// comparan con errors.Is; nunca inspeccionan mensajes.
package domain

import "errors"

var (
	// ErrNotFound el recurso pedido no existe (404).
	ErrNotFound = errors.New("recurso no encontrado")

	// ErrInvalidInput la petición no pasa las validaciones de negocio (400).
	ErrInvalidInput = errors.New("entrada inválida")

	// ErrDuplicate ya existe un recurso con la misma clave natural, por
	// ejemplo el código de un componente (409).
	ErrDuplicate = errors.New("recurso duplicado")

	// ErrConflict la operación es válida pero choca con el estado actual:
	// transición de plan fuera de orden, borrado con referencias vivas (409).
	ErrConflict = errors.New("conflicto con el estado actual")

	// ErrUnauthorized credenciales ausentes o incorrectas (401).
	ErrUnauthorized = errors.New("no autorizado")

	// ErrForbidden autenticado pero sin el rol necesario (403).
	ErrForbidden = errors.New("acceso denegado")
)

// Variantes de registro de usuarios: mismas respuestas 409 que ErrDuplicate
// pero con mensaje propio para el formulario de alta.
var (
	ErrUsernameTaken      = errors.New("el username ya está registrado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
)
