package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de transacción del libro de inventario.
const (
	TransactionTypeIN  = "IN"  // devolución al inventario (crédito)
	TransactionTypeOUT = "OUT" // salida del inventario (débito)
)

// ValidTransactionType reporta si t es un tipo cerrado conocido.
// Cualquier otro valor se rechaza en el borde con ErrInvalidInput.
func ValidTransactionType(t string) bool {
	return t == TransactionTypeIN || t == TransactionTypeOUT
}

// Issuance representa una transacción del libro: un movimiento IN u OUT de una
// cantidad de un ítem (material o herramienta), opcionalmente ligado a un
// evento. Quantity es siempre positiva; el signo del efecto lo da Type.
type Issuance struct {
	ID        string
	ItemID    string
	Type      string // IN | OUT
	Quantity  decimal.Decimal
	EventID   *string // nil para transacciones sin contexto de evento
	Notes     string
	CreatedAt time.Time
}
