package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Eventos-api/internal/domain"
	"github.com/jhoicas/Eventos-api/internal/domain/entity"
	"github.com/jhoicas/Eventos-api/internal/domain/repository"
)

var _ repository.TemplateRepository = (*TemplateRepo)(nil)
var _ repository.YearRepository = (*YearRepo)(nil)

// lookupRepo base compartida de las tablas de consulta (id, name, created_at).
// event_templates y years son tablas gemelas con nombre único sin mayúsculas.
type lookupRepo struct {
	q     Querier
	table string
}

func (r *lookupRepo) create(id, name string, createdAt time.Time) error {
	query := fmt.Sprintf(`INSERT INTO %s (id, name, created_at) VALUES ($1, $2, $3)`, r.table)
	if _, err := r.q.Exec(context.Background(), query, id, name, createdAt); err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("create %s: %w", r.table, err)
	}
	return nil
}

func (r *lookupRepo) getByID(id string) (string, time.Time, bool, error) {
	query := fmt.Sprintf(`SELECT name, created_at FROM %s WHERE id = $1`, r.table)
	var name string
	var createdAt time.Time
	err := r.q.QueryRow(context.Background(), query, id).Scan(&name, &createdAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", time.Time{}, false, nil
		}
		return "", time.Time{}, false, fmt.Errorf("get %s: %w", r.table, err)
	}
	return name, createdAt, true, nil
}

type lookupRow struct {
	ID        string
	Name      string
	CreatedAt time.Time
}

func (r *lookupRepo) list() ([]lookupRow, error) {
	query := fmt.Sprintf(`SELECT id, name, created_at FROM %s ORDER BY name`, r.table)
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", r.table, err)
	}
	defer rows.Close()
	var out []lookupRow
	for rows.Next() {
		var row lookupRow
		if err := rows.Scan(&row.ID, &row.Name, &row.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan %s: %w", r.table, err)
		}
		out = append(out, row)
	}
	return out, rows.Err()
}

func (r *lookupRepo) update(id, name string) error {
	query := fmt.Sprintf(`UPDATE %s SET name = $2 WHERE id = $1`, r.table)
	tag, err := r.q.Exec(context.Background(), query, id, name)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update %s: %w", r.table, err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *lookupRepo) delete(id string) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE id = $1`, r.table)
	if _, err := r.q.Exec(context.Background(), query, id); err != nil {
		return fmt.Errorf("delete %s: %w", r.table, err)
	}
	return nil
}

func (r *lookupRepo) existsByName(name, excludeID string) (bool, error) {
	query := fmt.Sprintf(`SELECT EXISTS(SELECT 1 FROM %s WHERE lower(name) = lower($1) AND id <> $2)`, r.table)
	var exists bool
	if err := r.q.QueryRow(context.Background(), query, name, excludeID).Scan(&exists); err != nil {
		return false, fmt.Errorf("exists %s: %w", r.table, err)
	}
	return exists, nil
}

// TemplateRepo implementación de TemplateRepository sobre event_templates.
type TemplateRepo struct {
	lookupRepo
}

// NewTemplateRepository construye el adaptador de plantillas. Pasar pool o tx (Querier).
func NewTemplateRepository(q Querier) *TemplateRepo {
	return &TemplateRepo{lookupRepo{q: q, table: "event_templates"}}
}

func (r *TemplateRepo) Create(t *entity.EventTemplate) error {
	return r.create(t.ID, t.Name, t.CreatedAt)
}

func (r *TemplateRepo) GetByID(id string) (*entity.EventTemplate, error) {
	name, createdAt, ok, err := r.getByID(id)
	if err != nil || !ok {
		return nil, err
	}
	return &entity.EventTemplate{ID: id, Name: name, CreatedAt: createdAt}, nil
}

func (r *TemplateRepo) List() ([]*entity.EventTemplate, error) {
	rows, err := r.list()
	if err != nil {
		return nil, err
	}
	out := make([]*entity.EventTemplate, 0, len(rows))
	for _, row := range rows {
		out = append(out, &entity.EventTemplate{ID: row.ID, Name: row.Name, CreatedAt: row.CreatedAt})
	}
	return out, nil
}

func (r *TemplateRepo) Update(t *entity.EventTemplate) error {
	return r.update(t.ID, t.Name)
}

func (r *TemplateRepo) Delete(id string) error {
	return r.delete(id)
}

func (r *TemplateRepo) ExistsByName(name, excludeID string) (bool, error) {
	return r.existsByName(name, excludeID)
}

// YearRepo implementación de YearRepository sobre years.
type YearRepo struct {
	lookupRepo
}

// NewYearRepository construye el adaptador de años. Pasar pool o tx (Querier).
func NewYearRepository(q Querier) *YearRepo {
	return &YearRepo{lookupRepo{q: q, table: "years"}}
}

func (r *YearRepo) Create(y *entity.Year) error {
	return r.create(y.ID, y.Name, y.CreatedAt)
}

func (r *YearRepo) GetByID(id string) (*entity.Year, error) {
	name, createdAt, ok, err := r.getByID(id)
	if err != nil || !ok {
		return nil, err
	}
	return &entity.Year{ID: id, Name: name, CreatedAt: createdAt}, nil
}

func (r *YearRepo) List() ([]*entity.Year, error) {
	rows, err := r.list()
	if err != nil {
		return nil, err
	}
	out := make([]*entity.Year, 0, len(rows))
	for _, row := range rows {
		out = append(out, &entity.Year{ID: row.ID, Name: row.Name, CreatedAt: row.CreatedAt})
	}
	return out, nil
}

func (r *YearRepo) Update(y *entity.Year) error {
	return r.update(y.ID, y.Name)
}

func (r *YearRepo) Delete(id string) error {
	return r.delete(id)
}

func (r *YearRepo) ExistsByName(name, excludeID string) (bool, error) {
	return r.existsByName(name, excludeID)
}
