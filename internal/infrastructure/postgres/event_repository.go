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

var _ repository.EventRepository = (*EventRepo)(nil)

// EventRepo implementación de EventRepository sobre PostgreSQL.
type EventRepo struct {
	q Querier
}

// NewEventRepository construye el adaptador de eventos. Pasar pool o tx (Querier).
func NewEventRepository(q Querier) *EventRepo {
	return &EventRepo{q: q}
}

// Create persiste un evento.
func (r *EventRepo) Create(e *entity.Event) error {
	query := `
		INSERT INTO events (id, template_id, year_id, date, location, description, cover_image, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		e.ID, e.TemplateID, e.YearID, e.Date, e.Location, e.Description, e.CoverImage, e.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("create event: %w", err)
	}
	return nil
}

// GetByID obtiene un evento por ID.
func (r *EventRepo) GetByID(id string) (*entity.Event, error) {
	query := `
		SELECT id, template_id, year_id, date, COALESCE(location, ''),
		       COALESCE(description, ''), COALESCE(cover_image, ''), created_at
		FROM events WHERE id = $1`
	var e entity.Event
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&e.ID, &e.TemplateID, &e.YearID, &e.Date, &e.Location, &e.Description, &e.CoverImage, &e.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get event: %w", err)
	}
	return &e, nil
}

// List lista los eventos (más recientes primero).
func (r *EventRepo) List() ([]*entity.Event, error) {
	query := `
		SELECT id, template_id, year_id, date, COALESCE(location, ''),
		       COALESCE(description, ''), COALESCE(cover_image, ''), created_at
		FROM events ORDER BY date DESC`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	defer rows.Close()
	var list []*entity.Event
	for rows.Next() {
		var e entity.Event
		if err := rows.Scan(&e.ID, &e.TemplateID, &e.YearID, &e.Date,
			&e.Location, &e.Description, &e.CoverImage, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}
		list = append(list, &e)
	}
	return list, rows.Err()
}

// Update modifica el evento.
func (r *EventRepo) Update(e *entity.Event) error {
	query := `
		UPDATE events
		SET template_id = $2, year_id = $3, date = $4, location = $5, description = $6, cover_image = $7
		WHERE id = $1`
	tag, err := r.q.Exec(context.Background(), query,
		e.ID, e.TemplateID, e.YearID, e.Date, e.Location, e.Description, e.CoverImage,
	)
	if err != nil {
		return fmt.Errorf("update event: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina el evento. El log del libro no tiene FK hacia events: el
// historial conserva el event_id aunque el evento ya no exista.
func (r *EventRepo) Delete(id string) error {
	if _, err := r.q.Exec(context.Background(), `DELETE FROM events WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete event: %w", err)
	}
	return nil
}
