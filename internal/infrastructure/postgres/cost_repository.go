package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Eventos-api/internal/domain"
	"github.com/jhoicas/Eventos-api/internal/domain/entity"
	"github.com/jhoicas/Eventos-api/internal/domain/repository"
)

var _ repository.CostRepository = (*CostRepo)(nil)

// CostRepo implementación de CostRepository sobre event_costs.
type CostRepo struct {
	q Querier
}

// NewCostRepository construye el adaptador de rubros de costo. Pasar pool o tx (Querier).
func NewCostRepository(q Querier) *CostRepo {
	return &CostRepo{q: q}
}

// Create persiste un rubro de costo.
func (r *CostRepo) Create(c *entity.CostItem) error {
	query := `
		INSERT INTO event_costs (id, event_id, description, amount, document_url, document_type, uploaded_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		c.ID, c.EventID, c.Description, c.Amount, c.DocumentURL, c.DocumentType, c.UploadedAt,
	)
	if err != nil {
		return fmt.Errorf("create cost: %w", err)
	}
	return nil
}

// GetByID obtiene un rubro por ID.
func (r *CostRepo) GetByID(id string) (*entity.CostItem, error) {
	query := `
		SELECT id, event_id, description, amount, COALESCE(document_url, ''), COALESCE(document_type, ''), uploaded_at
		FROM event_costs WHERE id = $1`
	var c entity.CostItem
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&c.ID, &c.EventID, &c.Description, &c.Amount, &c.DocumentURL, &c.DocumentType, &c.UploadedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get cost: %w", err)
	}
	return &c, nil
}

// ListByEvent lista los rubros de un evento por fecha de carga.
func (r *CostRepo) ListByEvent(eventID string) ([]*entity.CostItem, error) {
	query := `
		SELECT id, event_id, description, amount, COALESCE(document_url, ''), COALESCE(document_type, ''), uploaded_at
		FROM event_costs WHERE event_id = $1 ORDER BY uploaded_at`
	rows, err := r.q.Query(context.Background(), query, eventID)
	if err != nil {
		return nil, fmt.Errorf("list costs: %w", err)
	}
	defer rows.Close()
	var list []*entity.CostItem
	for rows.Next() {
		var c entity.CostItem
		if err := rows.Scan(&c.ID, &c.EventID, &c.Description, &c.Amount,
			&c.DocumentURL, &c.DocumentType, &c.UploadedAt); err != nil {
			return nil, fmt.Errorf("scan cost: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

// TotalByEvent suma los rubros del evento (cero si no hay filas).
func (r *CostRepo) TotalByEvent(eventID string) (decimal.Decimal, error) {
	query := `SELECT COALESCE(SUM(amount), 0) FROM event_costs WHERE event_id = $1`
	var total decimal.Decimal
	if err := r.q.QueryRow(context.Background(), query, eventID).Scan(&total); err != nil {
		return decimal.Zero, fmt.Errorf("total costs: %w", err)
	}
	return total, nil
}

// Update modifica un rubro de costo.
func (r *CostRepo) Update(c *entity.CostItem) error {
	query := `
		UPDATE event_costs
		SET description = $2, amount = $3, document_url = $4, document_type = $5
		WHERE id = $1`
	tag, err := r.q.Exec(context.Background(), query, c.ID, c.Description, c.Amount, c.DocumentURL, c.DocumentType)
	if err != nil {
		return fmt.Errorf("update cost: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina un rubro de costo.
func (r *CostRepo) Delete(id string) error {
	if _, err := r.q.Exec(context.Background(), `DELETE FROM event_costs WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete cost: %w", err)
	}
	return nil
}
