package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/Eventos-api/internal/domain/entity"
	"github.com/jhoicas/Eventos-api/internal/domain/repository"
)

var _ repository.GalleryRepository = (*GalleryRepo)(nil)

// GalleryRepo implementación de GalleryRepository sobre design_images y
// final_decoration_images.
type GalleryRepo struct {
	q Querier
}

// NewGalleryRepository construye el adaptador de galerías. Pasar pool o tx (Querier).
func NewGalleryRepository(q Querier) *GalleryRepo {
	return &GalleryRepo{q: q}
}

// AddDesignImage registra un boceto/diseño del evento.
func (r *GalleryRepo) AddDesignImage(img *entity.DesignImage) error {
	query := `
		INSERT INTO design_images (id, event_id, image_url, notes, uploaded_at)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(context.Background(), query, img.ID, img.EventID, img.ImageURL, img.Notes, img.UploadedAt)
	if err != nil {
		return fmt.Errorf("add design image: %w", err)
	}
	return nil
}

// AddFinalImage registra una fotografía de la decoración terminada.
func (r *GalleryRepo) AddFinalImage(img *entity.FinalImage) error {
	query := `
		INSERT INTO final_decoration_images (id, event_id, image_url, description, uploaded_at)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(context.Background(), query, img.ID, img.EventID, img.ImageURL, img.Description, img.UploadedAt)
	if err != nil {
		return fmt.Errorf("add final image: %w", err)
	}
	return nil
}

// ListByEvent devuelve ambas galerías del evento, por fecha de carga.
func (r *GalleryRepo) ListByEvent(eventID string) ([]*entity.DesignImage, []*entity.FinalImage, error) {
	ctx := context.Background()

	rows, err := r.q.Query(ctx, `
		SELECT id, event_id, image_url, COALESCE(notes, ''), uploaded_at
		FROM design_images WHERE event_id = $1 ORDER BY uploaded_at`, eventID)
	if err != nil {
		return nil, nil, fmt.Errorf("list design images: %w", err)
	}
	var designs []*entity.DesignImage
	for rows.Next() {
		var img entity.DesignImage
		if err := rows.Scan(&img.ID, &img.EventID, &img.ImageURL, &img.Notes, &img.UploadedAt); err != nil {
			rows.Close()
			return nil, nil, fmt.Errorf("scan design image: %w", err)
		}
		designs = append(designs, &img)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, nil, err
	}

	rows, err = r.q.Query(ctx, `
		SELECT id, event_id, image_url, COALESCE(description, ''), uploaded_at
		FROM final_decoration_images WHERE event_id = $1 ORDER BY uploaded_at`, eventID)
	if err != nil {
		return nil, nil, fmt.Errorf("list final images: %w", err)
	}
	defer rows.Close()
	var finals []*entity.FinalImage
	for rows.Next() {
		var img entity.FinalImage
		if err := rows.Scan(&img.ID, &img.EventID, &img.ImageURL, &img.Description, &img.UploadedAt); err != nil {
			return nil, nil, fmt.Errorf("scan final image: %w", err)
		}
		finals = append(finals, &img)
	}
	return designs, finals, rows.Err()
}
