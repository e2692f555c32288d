package repository

import "github.com/jhoicas/Eventos-api/internal/domain/entity"

// ItemView ítem con el nombre de su categoría resuelto (para listados).
type ItemView struct {
	Item         entity.InventoryItem
	CategoryName string
	CategoryKind string
}

// ItemRepository define el puerto de persistencia de ítems de inventario y de
// sus detalles por categoría. GetByID devuelve (nil, nil) si no existe.
type ItemRepository interface {
	Create(item *entity.InventoryItem) error
	GetByID(id string) (*entity.InventoryItem, error)
	List() ([]*ItemView, error)
	Update(item *entity.InventoryItem) error
	Delete(id string) error

	// SaveDetails inserta o actualiza el registro de detalles del kind indicado.
	SaveDetails(itemID string, details *entity.CategoryDetails) error
	// GetDetails devuelve (nil, nil) si el ítem no tiene detalles para ese kind.
	GetDetails(itemID, kind string) (*entity.CategoryDetails, error)
}
