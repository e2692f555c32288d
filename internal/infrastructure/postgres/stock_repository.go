package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Eventos-api/internal/domain/entity"
	"github.com/jhoicas/Eventos-api/internal/domain/repository"
)

var _ repository.StockRepository = (*StockRepo)(nil)
var _ repository.StockReader = (*StockRepo)(nil)

// StockRepo implementación de StockRepository sobre inventory_stock (usable
// con pool o tx). La ausencia de fila se devuelve como (nil, nil): el motor
// del libro decide cómo tratarla.
type StockRepo struct {
	q Querier
}

// NewStockRepository construye el adaptador de stock de materiales. Pasar pool o tx (Querier).
func NewStockRepository(q Querier) *StockRepo {
	return &StockRepo{q: q}
}

// Get obtiene la fila de stock de un ítem.
func (r *StockRepo) Get(itemID string) (*entity.Stock, error) {
	query := `
		SELECT item_id, quantity_available, updated_at
		FROM inventory_stock WHERE item_id = $1`
	var s entity.Stock
	err := r.q.QueryRow(context.Background(), query, itemID).Scan(
		&s.ItemID, &s.QuantityAvailable, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get stock: %w", err)
	}
	return &s, nil
}

// GetForUpdate obtiene la fila de stock y la bloquea para update (SELECT FOR UPDATE).
func (r *StockRepo) GetForUpdate(itemID string) (*entity.Stock, error) {
	query := `
		SELECT item_id, quantity_available, updated_at
		FROM inventory_stock WHERE item_id = $1
		FOR UPDATE`
	var s entity.Stock
	err := r.q.QueryRow(context.Background(), query, itemID).Scan(
		&s.ItemID, &s.QuantityAvailable, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get stock for update: %w", err)
	}
	return &s, nil
}

// Create inserta la fila de stock de un ítem (1:1 con el ítem).
func (r *StockRepo) Create(stock *entity.Stock) error {
	query := `
		INSERT INTO inventory_stock (item_id, quantity_available, updated_at)
		VALUES ($1, $2, now())`
	_, err := r.q.Exec(context.Background(), query, stock.ItemID, stock.QuantityAvailable)
	if err != nil {
		return fmt.Errorf("create stock: %w", err)
	}
	return nil
}

// Update persiste la nueva cantidad disponible.
func (r *StockRepo) Update(stock *entity.Stock) error {
	query := `
		UPDATE inventory_stock SET quantity_available = $2, updated_at = now()
		WHERE item_id = $1`
	tag, err := r.q.Exec(context.Background(), query, stock.ItemID, stock.QuantityAvailable)
	if err != nil {
		return fmt.Errorf("update stock: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("update stock: fila de %s no existe", stock.ItemID)
	}
	return nil
}

// ListWithItems lista el stock de todos los ítems con nombre, unidad y categoría.
func (r *StockRepo) ListWithItems() ([]*repository.StockView, error) {
	query := `
		SELECT s.item_id, s.quantity_available, s.updated_at, i.name, i.unit, COALESCE(c.name, '')
		FROM inventory_stock s
		JOIN inventory_items i ON i.id = s.item_id
		LEFT JOIN categories c ON c.id = i.category_id
		ORDER BY i.name`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list stock: %w", err)
	}
	defer rows.Close()
	var list []*repository.StockView
	for rows.Next() {
		var v repository.StockView
		if err := rows.Scan(&v.Stock.ItemID, &v.Stock.QuantityAvailable, &v.Stock.UpdatedAt,
			&v.ItemName, &v.Unit, &v.CategoryName); err != nil {
			return nil, fmt.Errorf("scan stock: %w", err)
		}
		list = append(list, &v)
	}
	return list, rows.Err()
}
