package domain

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// Errores de dominio (sin dependencias de infraestructura).
var (
	ErrNotFound          = errors.New("recurso no encontrado")
	ErrInvalidInput      = errors.New("entrada inválida")
	ErrDuplicate         = errors.New("recurso duplicado")
	ErrUnauthorized      = errors.New("no autorizado")
	ErrForbidden         = errors.New("acceso denegado")
	ErrInsufficientStock = errors.New("stock insuficiente")
)

// StockShortageError detalla un rechazo por stock insuficiente: qué ítem,
// cuánto se pidió y cuánto hay disponible. errors.Is(err, ErrInsufficientStock)
// sigue funcionando para el mapeo a HTTP.
type StockShortageError struct {
	ItemID    string
	Requested decimal.Decimal
	Available decimal.Decimal
}

func (e *StockShortageError) Error() string {
	return fmt.Sprintf("stock insuficiente para el ítem %s: solicitado %s, disponible %s",
		e.ItemID, e.Requested.String(), e.Available.String())
}

func (e *StockShortageError) Is(target error) bool {
	return target == ErrInsufficientStock
}
