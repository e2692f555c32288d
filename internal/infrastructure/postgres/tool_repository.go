package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Eventos-api/internal/domain"
	"github.com/jhoicas/Eventos-api/internal/domain/entity"
	"github.com/jhoicas/Eventos-api/internal/domain/repository"
)

var _ repository.ToolRepository = (*ToolRepo)(nil)

// ToolRepo implementación de ToolRepository sobre PostgreSQL.
type ToolRepo struct {
	q Querier
}

// NewToolRepository construye el adaptador de herramientas. Pasar pool o tx (Querier).
func NewToolRepository(q Querier) *ToolRepo {
	return &ToolRepo{q: q}
}

// Create persiste una herramienta.
func (r *ToolRepo) Create(t *entity.Tool) error {
	query := `
		INSERT INTO tools (id, name, image_url, notes, created_at)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(context.Background(), query, t.ID, t.Name, t.ImageURL, t.Notes, t.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("create tool: %w", err)
	}
	return nil
}

// GetByID obtiene una herramienta por ID.
func (r *ToolRepo) GetByID(id string) (*entity.Tool, error) {
	query := `
		SELECT id, name, COALESCE(image_url, ''), COALESCE(notes, ''), created_at
		FROM tools WHERE id = $1`
	var t entity.Tool
	err := r.q.QueryRow(context.Background(), query, id).Scan(&t.ID, &t.Name, &t.ImageURL, &t.Notes, &t.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get tool: %w", err)
	}
	return &t, nil
}

// List lista herramientas con su fila de inventario (si existe).
func (r *ToolRepo) List() ([]*repository.ToolView, error) {
	query := `
		SELECT t.id, t.name, COALESCE(t.image_url, ''), COALESCE(t.notes, ''), t.created_at,
		       i.tool_id, i.quantity_available, i.condition, i.updated_at
		FROM tools t
		LEFT JOIN tool_inventory i ON i.tool_id = t.id
		ORDER BY t.name`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list tools: %w", err)
	}
	defer rows.Close()
	var list []*repository.ToolView
	for rows.Next() {
		var v repository.ToolView
		var inv entity.ToolInventory
		var toolID, condition *string
		if err := rows.Scan(&v.Tool.ID, &v.Tool.Name, &v.Tool.ImageURL, &v.Tool.Notes, &v.Tool.CreatedAt,
			&toolID, &inv.QuantityAvailable, &condition, &inv.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan tool: %w", err)
		}
		if toolID != nil {
			inv.ToolID = *toolID
			if condition != nil {
				inv.Condition = *condition
			}
			v.Inventory = &inv
		}
		list = append(list, &v)
	}
	return list, rows.Err()
}

// Update modifica los campos descriptivos de la herramienta.
func (r *ToolRepo) Update(t *entity.Tool) error {
	query := `UPDATE tools SET name = $2, image_url = $3, notes = $4 WHERE id = $1`
	tag, err := r.q.Exec(context.Background(), query, t.ID, t.Name, t.ImageURL, t.Notes)
	if err != nil {
		return fmt.Errorf("update tool: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina la herramienta; su inventario y su log caen por cascada.
func (r *ToolRepo) Delete(id string) error {
	if _, err := r.q.Exec(context.Background(), `DELETE FROM tools WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete tool: %w", err)
	}
	return nil
}

// GetInventory obtiene la fila de inventario completa de una herramienta.
func (r *ToolRepo) GetInventory(toolID string) (*entity.ToolInventory, error) {
	query := `
		SELECT tool_id, quantity_available, condition, updated_at
		FROM tool_inventory WHERE tool_id = $1`
	var inv entity.ToolInventory
	err := r.q.QueryRow(context.Background(), query, toolID).Scan(
		&inv.ToolID, &inv.QuantityAvailable, &inv.Condition, &inv.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get tool inventory: %w", err)
	}
	return &inv, nil
}

// UpdateCondition cambia la condición física reportada (no toca la cantidad).
func (r *ToolRepo) UpdateCondition(toolID, condition string) error {
	query := `UPDATE tool_inventory SET condition = $2, updated_at = now() WHERE tool_id = $1`
	tag, err := r.q.Exec(context.Background(), query, toolID, condition)
	if err != nil {
		return fmt.Errorf("update tool condition: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
