package repository

import "github.com/jhoicas/Eventos-api/internal/domain/entity"

// StockRepository define el puerto para consultar/actualizar la fila de stock
// de un ítem. Get y GetForUpdate devuelven (nil, nil) si la fila no existe;
// el motor del libro mapea esa ausencia a ErrNotFound.
type StockRepository interface {
	Get(itemID string) (*entity.Stock, error)
	// GetForUpdate bloquea la fila para update (SELECT FOR UPDATE). Usar solo
	// dentro de una transacción; el lock se mantiene hasta el Commit/Rollback.
	GetForUpdate(itemID string) (*entity.Stock, error)
	Create(stock *entity.Stock) error
	Update(stock *entity.Stock) error
}

// StockView fila de stock aumentada con datos del ítem para listados.
type StockView struct {
	Stock        entity.Stock
	ItemName     string
	Unit         string
	CategoryName string
}

// StockReader puerto de solo lectura para listados de stock (sin bloqueo).
type StockReader interface {
	ListWithItems() ([]*StockView, error)
}
