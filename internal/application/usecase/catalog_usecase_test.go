package usecase

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Eventos-api/internal/application/dto"
	"github.com/jhoicas/Eventos-api/internal/domain"
	"github.com/jhoicas/Eventos-api/internal/domain/entity"
)

func categoryReq(name, kind string) dto.NameRequest {
	return dto.NameRequest{Name: name, Kind: kind}
}

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type fakeTemplateRepo struct {
	templates map[string]*entity.EventTemplate
}

func newFakeTemplateRepo() *fakeTemplateRepo {
	return &fakeTemplateRepo{templates: make(map[string]*entity.EventTemplate)}
}

func (f *fakeTemplateRepo) Create(t *entity.EventTemplate) error {
	f.templates[t.ID] = t
	return nil
}

func (f *fakeTemplateRepo) GetByID(id string) (*entity.EventTemplate, error) {
	t, ok := f.templates[id]
	if !ok {
		return nil, nil
	}
	cp := *t
	return &cp, nil
}

func (f *fakeTemplateRepo) List() ([]*entity.EventTemplate, error) {
	out := make([]*entity.EventTemplate, 0, len(f.templates))
	for _, t := range f.templates {
		cp := *t
		out = append(out, &cp)
	}
	return out, nil
}

func (f *fakeTemplateRepo) Update(t *entity.EventTemplate) error {
	f.templates[t.ID] = t
	return nil
}

func (f *fakeTemplateRepo) Delete(id string) error {
	delete(f.templates, id)
	return nil
}

func (f *fakeTemplateRepo) ExistsByName(name, excludeID string) (bool, error) {
	for id, t := range f.templates {
		if id != excludeID && strings.EqualFold(t.Name, name) {
			return true, nil
		}
	}
	return false, nil
}

type fakeCategoryRepo struct {
	categories map[string]*entity.Category
}

func newFakeCategoryRepo() *fakeCategoryRepo {
	return &fakeCategoryRepo{categories: make(map[string]*entity.Category)}
}

func (f *fakeCategoryRepo) Create(c *entity.Category) error {
	f.categories[c.ID] = c
	return nil
}

func (f *fakeCategoryRepo) GetByID(id string) (*entity.Category, error) {
	c, ok := f.categories[id]
	if !ok {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (f *fakeCategoryRepo) List() ([]*entity.Category, error) {
	out := make([]*entity.Category, 0, len(f.categories))
	for _, c := range f.categories {
		cp := *c
		out = append(out, &cp)
	}
	return out, nil
}

func (f *fakeCategoryRepo) Update(c *entity.Category) error {
	f.categories[c.ID] = c
	return nil
}

func (f *fakeCategoryRepo) Delete(id string) error {
	delete(f.categories, id)
	return nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests de plantillas — unicidad de nombre sin distinguir mayúsculas
// ──────────────────────────────────────────────────────────────────────────────

func TestTemplateCreate_NombreDuplicado_RetornaErrDuplicate(t *testing.T) {
	uc := NewTemplateUseCase(newFakeTemplateRepo())
	ctx := context.Background()

	_, err := uc.Create(ctx, "Boda")
	require.NoError(t, err)

	// Mismo nombre con otra capitalización: debe rechazarse
	_, err = uc.Create(ctx, "BODA")
	assert.ErrorIs(t, err, domain.ErrDuplicate,
		"el nombre de plantilla es único sin distinguir mayúsculas")
}

func TestTemplateUpdate_RenombrarASuPropioNombre_Permitido(t *testing.T) {
	uc := NewTemplateUseCase(newFakeTemplateRepo())
	ctx := context.Background()

	tpl, err := uc.Create(ctx, "Ganesh Chaturthi")
	require.NoError(t, err)

	// Renombrar a sí misma (mismo nombre) no debe contar como duplicado
	updated, err := uc.Update(ctx, tpl.ID, "Ganesh Chaturthi")
	require.NoError(t, err)
	assert.Equal(t, "Ganesh Chaturthi", updated.Name)
}

func TestTemplateUpdate_NombreDeOtraPlantilla_RetornaErrDuplicate(t *testing.T) {
	uc := NewTemplateUseCase(newFakeTemplateRepo())
	ctx := context.Background()

	_, err := uc.Create(ctx, "Boda")
	require.NoError(t, err)
	tpl, err := uc.Create(ctx, "Navratri")
	require.NoError(t, err)

	_, err = uc.Update(ctx, tpl.ID, "boda")
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestTemplateCreate_NombreVacio_RetornaErrInvalidInput(t *testing.T) {
	uc := NewTemplateUseCase(newFakeTemplateRepo())

	_, err := uc.Create(context.Background(), "")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestTemplateDelete_NoExiste_RetornaErrNotFound(t *testing.T) {
	uc := NewTemplateUseCase(newFakeTemplateRepo())

	err := uc.Delete(context.Background(), "no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests de categorías — kind cerrado e inmutable
// ──────────────────────────────────────────────────────────────────────────────

func TestCategoryCreate_KindValido(t *testing.T) {
	repo := newFakeCategoryRepo()
	uc := NewCategoryUseCase(repo)

	cat, err := uc.Create(context.Background(), categoryReq("Telas", entity.CategoryKindFabric))
	require.NoError(t, err)
	assert.Equal(t, entity.CategoryKindFabric, cat.Kind)
	assert.Len(t, repo.categories, 1)
}

func TestCategoryCreate_KindDesconocido_RetornaErrInvalidInput(t *testing.T) {
	uc := NewCategoryUseCase(newFakeCategoryRepo())

	_, err := uc.Create(context.Background(), categoryReq("Vidrio", "glass"))
	assert.ErrorIs(t, err, domain.ErrInvalidInput,
		"los kinds de categoría son un conjunto cerrado")
}

func TestCategoryUpdate_SoloRenombra_KindIntacto(t *testing.T) {
	repo := newFakeCategoryRepo()
	uc := NewCategoryUseCase(repo)
	ctx := context.Background()

	cat, err := uc.Create(ctx, categoryReq("Mobiliario", entity.CategoryKindFurniture))
	require.NoError(t, err)

	updated, err := uc.Update(ctx, cat.ID, "Muebles y mobiliario")
	require.NoError(t, err)
	assert.Equal(t, "Muebles y mobiliario", updated.Name)
	assert.Equal(t, entity.CategoryKindFurniture, updated.Kind,
		"renombrar no debe cambiar el kind")
}
