package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Eventos-api/internal/application/dto"
	"github.com/jhoicas/Eventos-api/internal/application/usecase"
)

// CatalogHandler maneja las tablas de consulta: plantillas de evento, años y
// categorías de inventario (protegido).
type CatalogHandler struct {
	templates  *usecase.TemplateUseCase
	years      *usecase.YearUseCase
	categories *usecase.CategoryUseCase
}

// NewCatalogHandler construye el handler.
func NewCatalogHandler(templates *usecase.TemplateUseCase, years *usecase.YearUseCase, categories *usecase.CategoryUseCase) *CatalogHandler {
	return &CatalogHandler{templates: templates, years: years, categories: categories}
}

// ── Plantillas ────────────────────────────────────────────────────────────────

// CreateTemplate godoc
// @Summary      Crear plantilla de evento
// @Tags         catalog
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.NameRequest  true  "name"
// @Success      201   {object}  dto.Envelope
// @Failure      409   {object}  dto.Envelope
// @Router       /api/event-templates [post]
func (h *CatalogHandler) CreateTemplate(c *fiber.Ctx) error {
	var in dto.NameRequest
	if err := c.BodyParser(&in); err != nil {
		return respondBadBody(c)
	}
	t, err := h.templates.Create(c.Context(), in.Name)
	if err != nil {
		return respondError(c, err)
	}
	return respondCreated(c, "plantilla creada", t)
}

// ListTemplates godoc
// @Summary      Listar plantillas de evento
// @Tags         catalog
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.Envelope
// @Router       /api/event-templates [get]
func (h *CatalogHandler) ListTemplates(c *fiber.Ctx) error {
	list, err := h.templates.List(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, "", list)
}

// UpdateTemplate godoc
// @Summary      Renombrar plantilla de evento
// @Tags         catalog
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string           true  "ID de la plantilla"
// @Param        body  body  dto.NameRequest  true  "name"
// @Success      200   {object}  dto.Envelope
// @Failure      404   {object}  dto.Envelope
// @Failure      409   {object}  dto.Envelope
// @Router       /api/event-templates/{id} [put]
func (h *CatalogHandler) UpdateTemplate(c *fiber.Ctx) error {
	var in dto.NameRequest
	if err := c.BodyParser(&in); err != nil {
		return respondBadBody(c)
	}
	t, err := h.templates.Update(c.Context(), c.Params("id"), in.Name)
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, "plantilla actualizada", t)
}

// DeleteTemplate godoc
// @Summary      Eliminar plantilla de evento
// @Tags         catalog
// @Security     Bearer
// @Param        id  path  string  true  "ID de la plantilla"
// @Success      200  {object}  dto.Envelope
// @Failure      404  {object}  dto.Envelope
// @Router       /api/event-templates/{id} [delete]
func (h *CatalogHandler) DeleteTemplate(c *fiber.Ctx) error {
	if err := h.templates.Delete(c.Context(), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return respondOK(c, "plantilla eliminada", nil)
}

// ── Años ──────────────────────────────────────────────────────────────────────

// CreateYear godoc
// @Summary      Crear año/temporada
// @Tags         catalog
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.NameRequest  true  "name"
// @Success      201   {object}  dto.Envelope
// @Failure      409   {object}  dto.Envelope
// @Router       /api/years [post]
func (h *CatalogHandler) CreateYear(c *fiber.Ctx) error {
	var in dto.NameRequest
	if err := c.BodyParser(&in); err != nil {
		return respondBadBody(c)
	}
	y, err := h.years.Create(c.Context(), in.Name)
	if err != nil {
		return respondError(c, err)
	}
	return respondCreated(c, "año creado", y)
}

// ListYears godoc
// @Summary      Listar años
// @Tags         catalog
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.Envelope
// @Router       /api/years [get]
func (h *CatalogHandler) ListYears(c *fiber.Ctx) error {
	list, err := h.years.List(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, "", list)
}

// UpdateYear godoc
// @Summary      Renombrar año
// @Tags         catalog
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string           true  "ID del año"
// @Param        body  body  dto.NameRequest  true  "name"
// @Success      200   {object}  dto.Envelope
// @Failure      404   {object}  dto.Envelope
// @Failure      409   {object}  dto.Envelope
// @Router       /api/years/{id} [put]
func (h *CatalogHandler) UpdateYear(c *fiber.Ctx) error {
	var in dto.NameRequest
	if err := c.BodyParser(&in); err != nil {
		return respondBadBody(c)
	}
	y, err := h.years.Update(c.Context(), c.Params("id"), in.Name)
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, "año actualizado", y)
}

// DeleteYear godoc
// @Summary      Eliminar año
// @Tags         catalog
// @Security     Bearer
// @Param        id  path  string  true  "ID del año"
// @Success      200  {object}  dto.Envelope
// @Failure      404  {object}  dto.Envelope
// @Router       /api/years/{id} [delete]
func (h *CatalogHandler) DeleteYear(c *fiber.Ctx) error {
	if err := h.years.Delete(c.Context(), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return respondOK(c, "año eliminado", nil)
}

// ── Categorías ────────────────────────────────────────────────────────────────

// CreateCategory godoc
// @Summary      Crear categoría de inventario
// @Tags         catalog
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.NameRequest  true  "name, kind"
// @Success      201   {object}  dto.Envelope
// @Failure      400   {object}  dto.Envelope
// @Router       /api/categories [post]
func (h *CatalogHandler) CreateCategory(c *fiber.Ctx) error {
	var in dto.NameRequest
	if err := c.BodyParser(&in); err != nil {
		return respondBadBody(c)
	}
	cat, err := h.categories.Create(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return respondCreated(c, "categoría creada", cat)
}

// ListCategories godoc
// @Summary      Listar categorías
// @Tags         catalog
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.Envelope
// @Router       /api/categories [get]
func (h *CatalogHandler) ListCategories(c *fiber.Ctx) error {
	list, err := h.categories.List(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, "", list)
}

// UpdateCategory godoc
// @Summary      Renombrar categoría (el kind es inmutable)
// @Tags         catalog
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string           true  "ID de la categoría"
// @Param        body  body  dto.NameRequest  true  "name"
// @Success      200   {object}  dto.Envelope
// @Failure      404   {object}  dto.Envelope
// @Router       /api/categories/{id} [put]
func (h *CatalogHandler) UpdateCategory(c *fiber.Ctx) error {
	var in dto.NameRequest
	if err := c.BodyParser(&in); err != nil {
		return respondBadBody(c)
	}
	cat, err := h.categories.Update(c.Context(), c.Params("id"), in.Name)
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, "categoría actualizada", cat)
}

// DeleteCategory godoc
// @Summary      Eliminar categoría
// @Tags         catalog
// @Security     Bearer
// @Param        id  path  string  true  "ID de la categoría"
// @Success      200  {object}  dto.Envelope
// @Failure      404  {object}  dto.Envelope
// @Router       /api/categories/{id} [delete]
func (h *CatalogHandler) DeleteCategory(c *fiber.Ctx) error {
	if err := h.categories.Delete(c.Context(), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return respondOK(c, "categoría eliminada", nil)
}
