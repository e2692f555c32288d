package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Eventos-api/internal/application/dto"
	"github.com/jhoicas/Eventos-api/internal/application/usecase"
)

// EventHandler maneja eventos, costos, galerías, emisiones y el reporte PDF
// (protegido).
type EventHandler struct {
	events  *usecase.EventUseCase
	reports *usecase.ReportUseCase
}

// NewEventHandler construye el handler.
func NewEventHandler(events *usecase.EventUseCase, reports *usecase.ReportUseCase) *EventHandler {
	return &EventHandler{events: events, reports: reports}
}

// Create godoc
// @Summary      Crear evento
// @Tags         events
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateEventRequest  true  "template_id, year_id, date, location"
// @Success      201   {object}  dto.Envelope
// @Failure      400   {object}  dto.Envelope
// @Failure      404   {object}  dto.Envelope
// @Router       /api/events [post]
func (h *EventHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateEventRequest
	if err := c.BodyParser(&in); err != nil {
		return respondBadBody(c)
	}
	event, err := h.events.Create(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return respondCreated(c, "evento creado", event)
}

// GetDetail godoc
// @Summary      Detalle del evento (costos, galerías, nombres resueltos)
// @Tags         events
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID del evento"
// @Success      200  {object}  dto.Envelope
// @Failure      404  {object}  dto.Envelope
// @Router       /api/events/{id} [get]
func (h *EventHandler) GetDetail(c *fiber.Ctx) error {
	detail, err := h.events.GetDetail(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, "", detail)
}

// List godoc
// @Summary      Listar eventos (más recientes primero)
// @Tags         events
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.Envelope
// @Router       /api/events [get]
func (h *EventHandler) List(c *fiber.Ctx) error {
	events, err := h.events.List(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, "", events)
}

// Update godoc
// @Summary      Actualizar evento
// @Tags         events
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                  true  "ID del evento"
// @Param        body  body  dto.UpdateEventRequest  true  "campos editables"
// @Success      200   {object}  dto.Envelope
// @Failure      404   {object}  dto.Envelope
// @Router       /api/events/{id} [put]
func (h *EventHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateEventRequest
	if err := c.BodyParser(&in); err != nil {
		return respondBadBody(c)
	}
	event, err := h.events.Update(c.Context(), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, "evento actualizado", event)
}

// Delete godoc
// @Summary      Eliminar evento
// @Tags         events
// @Security     Bearer
// @Param        id  path  string  true  "ID del evento"
// @Success      200  {object}  dto.Envelope
// @Failure      404  {object}  dto.Envelope
// @Router       /api/events/{id} [delete]
func (h *EventHandler) Delete(c *fiber.Ctx) error {
	if err := h.events.Delete(c.Context(), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return respondOK(c, "evento eliminado", nil)
}

// ── Costos ────────────────────────────────────────────────────────────────────

// AddCost godoc
// @Summary      Agregar rubro de costo al evento
// @Tags         events
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string               true  "ID del evento"
// @Param        body  body  dto.CostItemRequest  true  "description, amount"
// @Success      201   {object}  dto.Envelope
// @Failure      404   {object}  dto.Envelope
// @Router       /api/events/{id}/costs [post]
func (h *EventHandler) AddCost(c *fiber.Ctx) error {
	var in dto.CostItemRequest
	if err := c.BodyParser(&in); err != nil {
		return respondBadBody(c)
	}
	cost, err := h.events.AddCost(c.Context(), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return respondCreated(c, "rubro agregado", cost)
}

// UpdateCost godoc
// @Summary      Actualizar rubro de costo
// @Tags         events
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        costId  path  string               true  "ID del rubro"
// @Param        body    body  dto.CostItemRequest  true  "description, amount"
// @Success      200     {object}  dto.Envelope
// @Failure      404     {object}  dto.Envelope
// @Router       /api/events/costs/{costId} [put]
func (h *EventHandler) UpdateCost(c *fiber.Ctx) error {
	var in dto.CostItemRequest
	if err := c.BodyParser(&in); err != nil {
		return respondBadBody(c)
	}
	cost, err := h.events.UpdateCost(c.Context(), c.Params("costId"), in)
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, "rubro actualizado", cost)
}

// DeleteCost godoc
// @Summary      Eliminar rubro de costo
// @Tags         events
// @Security     Bearer
// @Param        costId  path  string  true  "ID del rubro"
// @Success      200     {object}  dto.Envelope
// @Failure      404     {object}  dto.Envelope
// @Router       /api/events/costs/{costId} [delete]
func (h *EventHandler) DeleteCost(c *fiber.Ctx) error {
	if err := h.events.DeleteCost(c.Context(), c.Params("costId")); err != nil {
		return respondError(c, err)
	}
	return respondOK(c, "rubro eliminado", nil)
}

// ── Galerías ──────────────────────────────────────────────────────────────────

// AddDesignImage godoc
// @Summary      Registrar imagen de diseño del evento
// @Tags         events
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                   true  "ID del evento"
// @Param        body  body  dto.GalleryImageRequest  true  "image_url, notes"
// @Success      201   {object}  dto.Envelope
// @Failure      404   {object}  dto.Envelope
// @Router       /api/events/{id}/design-images [post]
func (h *EventHandler) AddDesignImage(c *fiber.Ctx) error {
	var in dto.GalleryImageRequest
	if err := c.BodyParser(&in); err != nil {
		return respondBadBody(c)
	}
	img, err := h.events.AddDesignImage(c.Context(), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return respondCreated(c, "imagen registrada", img)
}

// AddFinalImage godoc
// @Summary      Registrar fotografía final del evento
// @Tags         events
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                   true  "ID del evento"
// @Param        body  body  dto.GalleryImageRequest  true  "image_url, description"
// @Success      201   {object}  dto.Envelope
// @Failure      404   {object}  dto.Envelope
// @Router       /api/events/{id}/final-images [post]
func (h *EventHandler) AddFinalImage(c *fiber.Ctx) error {
	var in dto.GalleryImageRequest
	if err := c.BodyParser(&in); err != nil {
		return respondBadBody(c)
	}
	img, err := h.events.AddFinalImage(c.Context(), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return respondCreated(c, "imagen registrada", img)
}

// ── Emisiones ─────────────────────────────────────────────────────────────────

// IssueMaterial godoc
// @Summary      Emitir material hacia el evento (transacción OUT)
// @Tags         events
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                  true  "ID del evento"
// @Param        body  body  dto.IssueToEventRequest  true  "item_id, quantity"
// @Success      201   {object}  dto.Envelope
// @Failure      404   {object}  dto.Envelope
// @Failure      409   {object}  dto.Envelope
// @Router       /api/events/{id}/issue-material [post]
func (h *EventHandler) IssueMaterial(c *fiber.Ctx) error {
	var in dto.IssueToEventRequest
	if err := c.BodyParser(&in); err != nil {
		return respondBadBody(c)
	}
	res, err := h.events.IssueMaterial(c.Context(), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return respondCreated(c, "material emitido", toTransactionWithStock(res))
}

// IssueTool godoc
// @Summary      Emitir herramienta hacia el evento (transacción OUT)
// @Tags         events
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                  true  "ID del evento"
// @Param        body  body  dto.IssueToEventRequest  true  "item_id (tool), quantity"
// @Success      201   {object}  dto.Envelope
// @Failure      404   {object}  dto.Envelope
// @Failure      409   {object}  dto.Envelope
// @Router       /api/events/{id}/issue-tool [post]
func (h *EventHandler) IssueTool(c *fiber.Ctx) error {
	var in dto.IssueToEventRequest
	if err := c.BodyParser(&in); err != nil {
		return respondBadBody(c)
	}
	res, err := h.events.IssueTool(c.Context(), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return respondCreated(c, "herramienta emitida", toTransactionWithStock(res))
}

// ListIssuances godoc
// @Summary      Listar emisiones del evento (materiales y herramientas)
// @Tags         events
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID del evento"
// @Success      200  {object}  dto.Envelope
// @Failure      404  {object}  dto.Envelope
// @Router       /api/events/{id}/issuances [get]
func (h *EventHandler) ListIssuances(c *fiber.Ctx) error {
	eventID := c.Params("id")
	materials, err := h.events.MaterialIssuances(c.Context(), eventID)
	if err != nil {
		return respondError(c, err)
	}
	tools, err := h.events.ToolIssuances(c.Context(), eventID)
	if err != nil {
		return respondError(c, err)
	}
	matOut := make([]dto.TransactionResponse, 0, len(materials))
	for _, iss := range materials {
		matOut = append(matOut, dto.ToTransactionResponse(iss))
	}
	toolOut := make([]dto.TransactionResponse, 0, len(tools))
	for _, iss := range tools {
		toolOut = append(toolOut, dto.ToTransactionResponse(iss))
	}
	return respondOK(c, "", fiber.Map{"materials": matOut, "tools": toolOut})
}

// Report godoc
// @Summary      Reporte PDF de cierre del evento
// @Tags         events
// @Security     Bearer
// @Produce      application/pdf
// @Param        id  path  string  true  "ID del evento"
// @Success      200  {file}    file
// @Failure      404  {object}  dto.Envelope
// @Router       /api/events/{id}/report [get]
func (h *EventHandler) Report(c *fiber.Ctx) error {
	pdfBytes, err := h.reports.GenerateEventReport(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	c.Set("Content-Type", "application/pdf")
	c.Set("Content-Disposition", `attachment; filename="reporte-evento.pdf"`)
	return c.Send(pdfBytes)
}
