package repository

import "github.com/jhoicas/Eventos-api/internal/domain/entity"

// ToolView herramienta con su fila de inventario (para listados).
type ToolView struct {
	Tool      entity.Tool
	Inventory *entity.ToolInventory // nil si aún no tiene fila de stock
}

// ToolRepository puerto de persistencia de herramientas y de la parte del
// inventario de herramientas que el motor del libro no administra (condición).
type ToolRepository interface {
	Create(t *entity.Tool) error
	GetByID(id string) (*entity.Tool, error)
	List() ([]*ToolView, error)
	Update(t *entity.Tool) error
	Delete(id string) error

	// GetInventory devuelve (nil, nil) si la herramienta no tiene fila de stock.
	GetInventory(toolID string) (*entity.ToolInventory, error)
	UpdateCondition(toolID, condition string) error
}
