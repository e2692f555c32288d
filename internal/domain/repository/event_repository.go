package repository

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Eventos-api/internal/domain/entity"
)

// EventRepository puerto de persistencia de eventos. GetByID devuelve (nil, nil) si no existe.
type EventRepository interface {
	Create(e *entity.Event) error
	GetByID(id string) (*entity.Event, error)
	// List devuelve eventos ordenados por fecha DESC.
	List() ([]*entity.Event, error)
	Update(e *entity.Event) error
	Delete(id string) error
}

// TemplateRepository puerto de la tabla de consulta de plantillas de evento.
type TemplateRepository interface {
	Create(t *entity.EventTemplate) error
	GetByID(id string) (*entity.EventTemplate, error)
	List() ([]*entity.EventTemplate, error)
	Update(t *entity.EventTemplate) error
	Delete(id string) error
	// ExistsByName ignora mayúsculas; excludeID omite una fila (para updates).
	ExistsByName(name, excludeID string) (bool, error)
}

// YearRepository puerto de la tabla de consulta de años.
type YearRepository interface {
	Create(y *entity.Year) error
	GetByID(id string) (*entity.Year, error)
	List() ([]*entity.Year, error)
	Update(y *entity.Year) error
	Delete(id string) error
	ExistsByName(name, excludeID string) (bool, error)
}

// CostRepository puerto de rubros de costo por evento.
type CostRepository interface {
	Create(c *entity.CostItem) error
	GetByID(id string) (*entity.CostItem, error)
	ListByEvent(eventID string) ([]*entity.CostItem, error)
	// TotalByEvent devuelve SUM(amount) del evento (cero si no hay rubros).
	TotalByEvent(eventID string) (decimal.Decimal, error)
	Update(c *entity.CostItem) error
	Delete(id string) error
}

// GalleryRepository puerto de las galerías de imágenes de un evento.
type GalleryRepository interface {
	AddDesignImage(img *entity.DesignImage) error
	AddFinalImage(img *entity.FinalImage) error
	ListByEvent(eventID string) ([]*entity.DesignImage, []*entity.FinalImage, error)
}
