package dto

import "github.com/shopspring/decimal"

// CreateToolRequest body para POST /api/tools. Crea también su fila de
// inventario (cantidad inicial opcional, condición "Good" por defecto).
type CreateToolRequest struct {
	Name              string           `json:"name"`
	ImageURL          string           `json:"image_url,omitempty"`
	Notes             string           `json:"notes,omitempty"`
	QuantityAvailable *decimal.Decimal `json:"quantity_available,omitempty"`
	Condition         string           `json:"condition,omitempty"`
}

// UpdateToolRequest body para PUT /api/tools/:id.
type UpdateToolRequest struct {
	Name     string `json:"name"`
	ImageURL string `json:"image_url,omitempty"`
	Notes    string `json:"notes,omitempty"`
}

// UpdateToolConditionRequest body para PATCH /api/tools/:id/condition.
type UpdateToolConditionRequest struct {
	Condition string `json:"condition"`
}
