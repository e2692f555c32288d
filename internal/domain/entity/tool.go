package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tool es una herramienta de trabajo (escaleras, taladros, pistolas de
// silicona...). Su stock vive en tool_inventory y se mueve por el mismo motor
// de libro que los materiales.
type Tool struct {
	ID        string
	Name      string
	ImageURL  string
	Notes     string
	CreatedAt time.Time
}

// ToolInventory es la vista completa de la fila de stock de una herramienta,
// incluyendo su condición física. El motor del libro solo ve la cantidad
// (como entity.Stock); la condición se administra por el CRUD de herramientas.
type ToolInventory struct {
	ToolID            string
	QuantityAvailable decimal.Decimal
	Condition         string // Good, Fair, Needs repair...
	UpdatedAt         time.Time
}
