package domain

import "errors"

// Errores de dominio (sin dependencias externas).
// El motor de costeo no devuelve errores por datos incompletos: los degrada a cero.
// Estos errores quedan para entradas que el llamador debe corregir.
var (
	ErrInvalidInput  = errors.New("entrada inválida")
	ErrUnknownPreset = errors.New("período predefinido desconocido")
	ErrInvalidRange  = errors.New("la fecha inicial no puede ser posterior a la final")
)
