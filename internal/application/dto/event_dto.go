package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateEventRequest body para POST /api/events.
type CreateEventRequest struct {
	TemplateID  string    `json:"template_id"`
	YearID      string    `json:"year_id"`
	Date        time.Time `json:"date"`
	Location    string    `json:"location"`
	Description string    `json:"description,omitempty"`
	CoverImage  string    `json:"cover_image,omitempty"`
}

// UpdateEventRequest body para PUT /api/events/:id.
type UpdateEventRequest = CreateEventRequest

// CostItemRequest body para crear/actualizar un rubro de costo.
type CostItemRequest struct {
	Description  string          `json:"description"`
	Amount       decimal.Decimal `json:"amount"`
	DocumentURL  string          `json:"document_url,omitempty"`
	DocumentType string          `json:"document_type,omitempty"`
}

// GalleryImageRequest body para registrar una imagen de galería de un evento.
type GalleryImageRequest struct {
	ImageURL    string `json:"image_url"`
	Notes       string `json:"notes,omitempty"`       // imágenes de diseño
	Description string `json:"description,omitempty"` // imágenes finales
}

// IssueToEventRequest body para emitir material o herramienta a un evento.
type IssueToEventRequest struct {
	ItemID   string          `json:"item_id"`
	Quantity decimal.Decimal `json:"quantity"`
	Notes    string          `json:"notes,omitempty"`
}

// NameRequest body genérico de las tablas de consulta (plantillas, años, categorías).
type NameRequest struct {
	Name string `json:"name"`
	Kind string `json:"kind,omitempty"` // solo categorías
}
