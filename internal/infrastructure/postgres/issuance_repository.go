package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Eventos-api/internal/domain/entity"
	"github.com/jhoicas/Eventos-api/internal/domain/repository"
)

var _ repository.IssuanceRepository = (*IssuanceRepo)(nil)

// IssuanceRepo implementación del log de transacciones del libro sobre
// PostgreSQL (usable con pool o tx). Los libros de materiales y herramientas
// son tablas gemelas; el repo se parametriza por tabla y columna del ítem.
type IssuanceRepo struct {
	q       Querier
	table   string
	itemCol string
}

// NewMaterialIssuanceRepository repo sobre material_issuances. Pasar pool o tx (Querier).
func NewMaterialIssuanceRepository(q Querier) *IssuanceRepo {
	return &IssuanceRepo{q: q, table: "material_issuances", itemCol: "item_id"}
}

// NewToolIssuanceRepository repo sobre tool_issuances. Pasar pool o tx (Querier).
func NewToolIssuanceRepository(q Querier) *IssuanceRepo {
	return &IssuanceRepo{q: q, table: "tool_issuances", itemCol: "tool_id"}
}

// Create persiste una transacción del libro.
func (r *IssuanceRepo) Create(iss *entity.Issuance) error {
	if iss.ID == "" {
		iss.ID = uuid.New().String()
	}
	query := fmt.Sprintf(`
		INSERT INTO %s (id, %s, transaction_type, quantity_issued, event_id, notes, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`, r.table, r.itemCol)
	_, err := r.q.Exec(context.Background(), query,
		iss.ID, iss.ItemID, iss.Type, iss.Quantity, iss.EventID, iss.Notes, iss.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("create issuance: %w", err)
	}
	return nil
}

// GetByID obtiene una transacción por ID.
func (r *IssuanceRepo) GetByID(id string) (*entity.Issuance, error) {
	query := fmt.Sprintf(`
		SELECT id, %s, transaction_type, quantity_issued, event_id, COALESCE(notes, ''), created_at
		FROM %s WHERE id = $1`, r.itemCol, r.table)
	var iss entity.Issuance
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&iss.ID, &iss.ItemID, &iss.Type, &iss.Quantity, &iss.EventID, &iss.Notes, &iss.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get issuance: %w", err)
	}
	return &iss, nil
}

// Update reescribe los campos editables de la transacción.
func (r *IssuanceRepo) Update(iss *entity.Issuance) error {
	query := fmt.Sprintf(`
		UPDATE %s SET %s = $2, transaction_type = $3, quantity_issued = $4, event_id = $5, notes = $6
		WHERE id = $1`, r.table, r.itemCol)
	tag, err := r.q.Exec(context.Background(), query,
		iss.ID, iss.ItemID, iss.Type, iss.Quantity, iss.EventID, iss.Notes,
	)
	if err != nil {
		return fmt.Errorf("update issuance: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("update issuance: %s no existe", iss.ID)
	}
	return nil
}

// Delete elimina la transacción del log.
func (r *IssuanceRepo) Delete(id string) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE id = $1`, r.table)
	if _, err := r.q.Exec(context.Background(), query, id); err != nil {
		return fmt.Errorf("delete issuance: %w", err)
	}
	return nil
}

// List lista transacciones (más recientes primero), opcionalmente por evento.
func (r *IssuanceRepo) List(filter repository.IssuanceFilter) ([]*entity.Issuance, error) {
	query := fmt.Sprintf(`
		SELECT id, %s, transaction_type, quantity_issued, event_id, COALESCE(notes, ''), created_at
		FROM %s`, r.itemCol, r.table)
	args := []any{}
	pos := 1
	if filter.EventID != nil {
		query += fmt.Sprintf(" WHERE event_id = $%d", pos)
		args = append(args, *filter.EventID)
		pos++
	}
	query += " ORDER BY created_at DESC"
	if filter.Limit > 0 {
		query += fmt.Sprintf(" LIMIT $%d OFFSET $%d", pos, pos+1)
		args = append(args, filter.Limit, filter.Offset)
	}

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list issuances: %w", err)
	}
	defer rows.Close()
	var list []*entity.Issuance
	for rows.Next() {
		var iss entity.Issuance
		if err := rows.Scan(&iss.ID, &iss.ItemID, &iss.Type, &iss.Quantity,
			&iss.EventID, &iss.Notes, &iss.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan issuance: %w", err)
		}
		list = append(list, &iss)
	}
	return list, rows.Err()
}
