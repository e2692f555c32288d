package ledger

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Eventos-api/internal/domain/entity"
)

// InventoryService fachada para descontar stock de una sola vez, sin fila
// propia en el log del libro (ajustes rápidos, consumos sin evento). La
// aritmética no se duplica: ambas operaciones delegan en la primitiva apply
// del motor.
type InventoryService struct {
	materials *Engine
	tools     *Engine
}

// NewInventoryService construye la fachada sobre los dos motores.
func NewInventoryService(materials, tools *Engine) *InventoryService {
	return &InventoryService{materials: materials, tools: tools}
}

// DeductMaterialStock descuenta qty del stock del material. Falla con
// ErrInsufficientStock si el saldo quedaría negativo.
func (s *InventoryService) DeductMaterialStock(ctx context.Context, itemID string, qty decimal.Decimal) (*entity.Stock, error) {
	return s.materials.Deduct(ctx, itemID, qty)
}

// DeductToolStock descuenta qty del stock de la herramienta.
func (s *InventoryService) DeductToolStock(ctx context.Context, toolID string, qty decimal.Decimal) (*entity.Stock, error) {
	return s.tools.Deduct(ctx, toolID, qty)
}
