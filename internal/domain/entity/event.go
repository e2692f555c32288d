package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Event es un evento de decoración: una plantilla (tipo de evento) en un año,
// con fecha, lugar y descripción.
type Event struct {
	ID          string
	TemplateID  string
	YearID      string
	Date        time.Time
	Location    string
	Description string
	CoverImage  string
	CreatedAt   time.Time
}

// EventTemplate tabla de consulta de tipos de evento (boda, ganesh chaturthi...).
type EventTemplate struct {
	ID        string
	Name      string
	CreatedAt time.Time
}

// Year tabla de consulta de años/temporadas.
type Year struct {
	ID        string
	Name      string
	CreatedAt time.Time
}

// CostItem es un rubro de costo de un evento, con documento de soporte opcional.
type CostItem struct {
	ID           string
	EventID      string
	Description  string
	Amount       decimal.Decimal
	DocumentURL  string
	DocumentType string
	UploadedAt   time.Time
}
