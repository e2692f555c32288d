package repository

import "github.com/jhoicas/Eventos-api/internal/domain/entity"

// IssuanceFilter filtros para listar transacciones del libro.
type IssuanceFilter struct {
	EventID *string
	Limit   int
	Offset  int
}

// IssuanceRepository define el puerto de persistencia del log de transacciones
// (material_issuances o tool_issuances). GetByID devuelve (nil, nil) si no existe.
type IssuanceRepository interface {
	Create(iss *entity.Issuance) error
	GetByID(id string) (*entity.Issuance, error)
	Update(iss *entity.Issuance) error
	Delete(id string) error
	// List devuelve transacciones ordenadas por created_at DESC (más recientes primero).
	List(filter IssuanceFilter) ([]*entity.Issuance, error)
}
