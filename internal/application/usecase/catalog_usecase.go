package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Eventos-api/internal/application/dto"
	"github.com/jhoicas/Eventos-api/internal/domain"
	"github.com/jhoicas/Eventos-api/internal/domain/entity"
	"github.com/jhoicas/Eventos-api/internal/domain/repository"
)

// TemplateUseCase administra la tabla de consulta de plantillas de evento.
// Los nombres son únicos sin distinguir mayúsculas.
type TemplateUseCase struct {
	repo repository.TemplateRepository
}

func NewTemplateUseCase(repo repository.TemplateRepository) *TemplateUseCase {
	return &TemplateUseCase{repo: repo}
}

func (uc *TemplateUseCase) Create(ctx context.Context, name string) (*entity.EventTemplate, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: name es requerido", domain.ErrInvalidInput)
	}
	exists, err := uc.repo.ExistsByName(name, "")
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.ErrDuplicate
	}
	t := &entity.EventTemplate{ID: uuid.New().String(), Name: name, CreatedAt: time.Now()}
	if err := uc.repo.Create(t); err != nil {
		return nil, err
	}
	return t, nil
}

func (uc *TemplateUseCase) List(ctx context.Context) ([]*entity.EventTemplate, error) {
	return uc.repo.List()
}

func (uc *TemplateUseCase) Update(ctx context.Context, id, name string) (*entity.EventTemplate, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: name es requerido", domain.ErrInvalidInput)
	}
	t, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, domain.ErrNotFound
	}
	exists, err := uc.repo.ExistsByName(name, id)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.ErrDuplicate
	}
	t.Name = name
	if err := uc.repo.Update(t); err != nil {
		return nil, err
	}
	return t, nil
}

func (uc *TemplateUseCase) Delete(ctx context.Context, id string) error {
	t, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if t == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

// YearUseCase administra la tabla de consulta de años/temporadas. Mismas
// reglas de unicidad que las plantillas.
type YearUseCase struct {
	repo repository.YearRepository
}

func NewYearUseCase(repo repository.YearRepository) *YearUseCase {
	return &YearUseCase{repo: repo}
}

func (uc *YearUseCase) Create(ctx context.Context, name string) (*entity.Year, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: name es requerido", domain.ErrInvalidInput)
	}
	exists, err := uc.repo.ExistsByName(name, "")
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.ErrDuplicate
	}
	y := &entity.Year{ID: uuid.New().String(), Name: name, CreatedAt: time.Now()}
	if err := uc.repo.Create(y); err != nil {
		return nil, err
	}
	return y, nil
}

func (uc *YearUseCase) List(ctx context.Context) ([]*entity.Year, error) {
	return uc.repo.List()
}

func (uc *YearUseCase) Update(ctx context.Context, id, name string) (*entity.Year, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: name es requerido", domain.ErrInvalidInput)
	}
	y, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if y == nil {
		return nil, domain.ErrNotFound
	}
	exists, err := uc.repo.ExistsByName(name, id)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.ErrDuplicate
	}
	y.Name = name
	if err := uc.repo.Update(y); err != nil {
		return nil, err
	}
	return y, nil
}

func (uc *YearUseCase) Delete(ctx context.Context, id string) error {
	y, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if y == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

// CategoryUseCase administra categorías de inventario. El kind determina qué
// tabla de detalles aplica a los ítems de la categoría y es cerrado.
type CategoryUseCase struct {
	repo repository.CategoryRepository
}

func NewCategoryUseCase(repo repository.CategoryRepository) *CategoryUseCase {
	return &CategoryUseCase{repo: repo}
}

func (uc *CategoryUseCase) Create(ctx context.Context, in dto.NameRequest) (*entity.Category, error) {
	if in.Name == "" {
		return nil, fmt.Errorf("%w: name es requerido", domain.ErrInvalidInput)
	}
	if !entity.ValidCategoryKind(in.Kind) {
		return nil, fmt.Errorf("%w: kind desconocido %q", domain.ErrInvalidInput, in.Kind)
	}
	c := &entity.Category{ID: uuid.New().String(), Name: in.Name, Kind: in.Kind, CreatedAt: time.Now()}
	if err := uc.repo.Create(c); err != nil {
		return nil, err
	}
	return c, nil
}

func (uc *CategoryUseCase) List(ctx context.Context) ([]*entity.Category, error) {
	return uc.repo.List()
}

// Update renombra la categoría. El kind es inmutable: cambiarlo dejaría los
// detalles ya guardados de sus ítems apuntando a la tabla equivocada.
func (uc *CategoryUseCase) Update(ctx context.Context, id, name string) (*entity.Category, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: name es requerido", domain.ErrInvalidInput)
	}
	c, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrNotFound
	}
	c.Name = name
	if err := uc.repo.Update(c); err != nil {
		return nil, err
	}
	return c, nil
}

func (uc *CategoryUseCase) Delete(ctx context.Context, id string) error {
	c, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if c == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}
