package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Eventos-api/internal/domain/entity"
	"github.com/jhoicas/Eventos-api/internal/domain/repository"
)

var _ repository.StockRepository = (*ToolStockRepo)(nil)

// ToolStockRepo implementación de StockRepository sobre tool_inventory. El
// motor del libro solo ve la cantidad; la condición física la administra
// ToolRepo.
type ToolStockRepo struct {
	q Querier
}

// NewToolStockRepository construye el adaptador de stock de herramientas. Pasar pool o tx (Querier).
func NewToolStockRepository(q Querier) *ToolStockRepo {
	return &ToolStockRepo{q: q}
}

// Get obtiene la fila de stock de una herramienta.
func (r *ToolStockRepo) Get(toolID string) (*entity.Stock, error) {
	query := `
		SELECT tool_id, quantity_available, updated_at
		FROM tool_inventory WHERE tool_id = $1`
	var s entity.Stock
	err := r.q.QueryRow(context.Background(), query, toolID).Scan(
		&s.ItemID, &s.QuantityAvailable, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get tool stock: %w", err)
	}
	return &s, nil
}

// GetForUpdate obtiene la fila y la bloquea para update (SELECT FOR UPDATE).
func (r *ToolStockRepo) GetForUpdate(toolID string) (*entity.Stock, error) {
	query := `
		SELECT tool_id, quantity_available, updated_at
		FROM tool_inventory WHERE tool_id = $1
		FOR UPDATE`
	var s entity.Stock
	err := r.q.QueryRow(context.Background(), query, toolID).Scan(
		&s.ItemID, &s.QuantityAvailable, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get tool stock for update: %w", err)
	}
	return &s, nil
}

// Create inserta la fila de inventario de una herramienta con condición por defecto.
func (r *ToolStockRepo) Create(stock *entity.Stock) error {
	query := `
		INSERT INTO tool_inventory (tool_id, quantity_available, condition, updated_at)
		VALUES ($1, $2, 'Good', now())`
	_, err := r.q.Exec(context.Background(), query, stock.ItemID, stock.QuantityAvailable)
	if err != nil {
		return fmt.Errorf("create tool stock: %w", err)
	}
	return nil
}

// Update persiste la nueva cantidad disponible sin tocar la condición.
func (r *ToolStockRepo) Update(stock *entity.Stock) error {
	query := `
		UPDATE tool_inventory SET quantity_available = $2, updated_at = now()
		WHERE tool_id = $1`
	tag, err := r.q.Exec(context.Background(), query, stock.ItemID, stock.QuantityAvailable)
	if err != nil {
		return fmt.Errorf("update tool stock: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("update tool stock: fila de %s no existe", stock.ItemID)
	}
	return nil
}
