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
	ErrCuentaNoEncontrada = errors.New("la cuenta del token no existe o está inactiva")
	ErrPedidosAsociados   = errors.New("el producto tiene pedidos asociados")
	ErrTransicionInvalida = errors.New("transición de estado inválida")
)
