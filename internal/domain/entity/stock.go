package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Stock representa la cantidad disponible actual de un ítem de inventario o
// de una herramienta (fila 1:1 con el ítem). Solo el motor del libro de
// inventario la muta; el invariante quantity_available >= 0 se mantiene
// después de cada transacción confirmada.
type Stock struct {
	ItemID            string
	QuantityAvailable decimal.Decimal
	UpdatedAt         time.Time
}
