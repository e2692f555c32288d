package repository

import "github.com/jhoicas/Eventos-api/internal/domain/entity"

// UserRepository puerto de persistencia de usuarios.
// GetByUsername y GetByID devuelven (nil, nil) si no existe.
type UserRepository interface {
	Create(u *entity.User) error
	GetByUsername(username string) (*entity.User, error)
	GetByID(id string) (*entity.User, error)
	List() ([]*entity.User, error)
	Update(u *entity.User) error
	Delete(id string) error
}
