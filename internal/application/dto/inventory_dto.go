package dto

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Eventos-api/internal/domain/entity"
)

// CreateStockRequest body para POST /api/inventory/stock.
type CreateStockRequest struct {
	ItemID            string          `json:"item_id"`
	QuantityAvailable decimal.Decimal `json:"quantity_available"`
}

// StockResponse fila de stock en respuestas.
type StockResponse struct {
	ItemID            string          `json:"item_id"`
	QuantityAvailable decimal.Decimal `json:"quantity_available"`
}

// CreateTransactionRequest body para POST /api/inventory/transactions.
type CreateTransactionRequest struct {
	ItemID   string          `json:"item_id"`
	Type     string          `json:"transaction_type"` // IN | OUT
	Quantity decimal.Decimal `json:"quantity"`
	EventID  *string         `json:"event_id,omitempty"`
	Notes    string          `json:"notes,omitempty"`
}

// NullableString distingue tres casos en un body JSON: campo omitido
// (Set=false), null explícito (Set=true, Value=nil) y valor (Set=true,
// Value no nil). Un *string plano no puede separar omitido de null.
type NullableString struct {
	Set   bool
	Value *string
}

// UnmarshalJSON solo se invoca cuando el campo está presente en el body.
func (n *NullableString) UnmarshalJSON(b []byte) error {
	n.Set = true
	if string(b) == "null" {
		n.Value = nil
		return nil
	}
	return json.Unmarshal(b, &n.Value)
}

// UpdateTransactionRequest body para PUT /api/inventory/transactions/:id.
// Los campos omitidos dejan el valor original; event_id en null desasocia la
// transacción de su evento.
type UpdateTransactionRequest struct {
	ItemID   *string          `json:"item_id,omitempty"`
	Type     *string          `json:"transaction_type,omitempty"`
	Quantity *decimal.Decimal `json:"quantity,omitempty"`
	EventID  NullableString   `json:"event_id"`
	Notes    *string          `json:"notes,omitempty"`
}

// TransactionResponse transacción del libro en respuestas.
type TransactionResponse struct {
	ID        string          `json:"id"`
	ItemID    string          `json:"item_id"`
	Type      string          `json:"transaction_type"`
	Quantity  decimal.Decimal `json:"quantity"`
	EventID   *string         `json:"event_id,omitempty"`
	Notes     string          `json:"notes,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
}

// StockUpdateInfo foto del stock antes y después de aplicar una transacción.
type StockUpdateInfo struct {
	PreviousQuantity decimal.Decimal `json:"previous_quantity"`
	NewQuantity      decimal.Decimal `json:"new_quantity"`
	Change           decimal.Decimal `json:"change"`
}

// TransactionWithStock respuesta de las operaciones mutadoras del libro.
type TransactionWithStock struct {
	Transaction TransactionResponse `json:"transaction"`
	StockUpdate StockUpdateInfo     `json:"stock_update"`
}

// DeductRequest body para la deducción directa de la fachada de inventario.
type DeductRequest struct {
	ItemID   string          `json:"item_id"`
	Quantity decimal.Decimal `json:"qty"`
}

// ToTransactionResponse convierte la entidad al DTO de respuesta.
func ToTransactionResponse(iss *entity.Issuance) TransactionResponse {
	return TransactionResponse{
		ID:        iss.ID,
		ItemID:    iss.ItemID,
		Type:      iss.Type,
		Quantity:  iss.Quantity,
		EventID:   iss.EventID,
		Notes:     iss.Notes,
		CreatedAt: iss.CreatedAt,
	}
}
