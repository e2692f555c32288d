package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Eventos-api/internal/application/dto"
	"github.com/jhoicas/Eventos-api/internal/application/ledger"
	"github.com/jhoicas/Eventos-api/internal/application/usecase"
	"github.com/jhoicas/Eventos-api/internal/domain/repository"
)

// ToolHandler maneja herramientas y su libro de transacciones (protegido).
type ToolHandler struct {
	tools  *usecase.ToolUseCase
	engine *ledger.Engine
}

// NewToolHandler construye el handler.
func NewToolHandler(tools *usecase.ToolUseCase, engine *ledger.Engine) *ToolHandler {
	return &ToolHandler{tools: tools, engine: engine}
}

func toToolResponse(v *repository.ToolView) fiber.Map {
	out := fiber.Map{
		"id":         v.Tool.ID,
		"name":       v.Tool.Name,
		"image_url":  v.Tool.ImageURL,
		"notes":      v.Tool.Notes,
		"created_at": v.Tool.CreatedAt,
	}
	if v.Inventory != nil {
		out["quantity_available"] = v.Inventory.QuantityAvailable
		out["condition"] = v.Inventory.Condition
	}
	return out
}

// Create godoc
// @Summary      Crear herramienta (con inventario inicial)
// @Tags         tools
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateToolRequest  true  "name, quantity_available, condition"
// @Success      201   {object}  dto.Envelope
// @Failure      400   {object}  dto.Envelope
// @Router       /api/tools [post]
func (h *ToolHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateToolRequest
	if err := c.BodyParser(&in); err != nil {
		return respondBadBody(c)
	}
	view, err := h.tools.Create(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return respondCreated(c, "herramienta creada", toToolResponse(view))
}

// GetByID godoc
// @Summary      Obtener herramienta por ID
// @Tags         tools
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID de la herramienta"
// @Success      200  {object}  dto.Envelope
// @Failure      404  {object}  dto.Envelope
// @Router       /api/tools/{id} [get]
func (h *ToolHandler) GetByID(c *fiber.Ctx) error {
	view, err := h.tools.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, "", toToolResponse(view))
}

// List godoc
// @Summary      Listar herramientas con inventario
// @Tags         tools
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.Envelope
// @Router       /api/tools [get]
func (h *ToolHandler) List(c *fiber.Ctx) error {
	views, err := h.tools.List(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	out := make([]fiber.Map, 0, len(views))
	for _, v := range views {
		out = append(out, toToolResponse(v))
	}
	return respondOK(c, "", out)
}

// Update godoc
// @Summary      Actualizar herramienta
// @Tags         tools
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                 true  "ID de la herramienta"
// @Param        body  body  dto.UpdateToolRequest  true  "campos editables"
// @Success      200   {object}  dto.Envelope
// @Failure      404   {object}  dto.Envelope
// @Router       /api/tools/{id} [put]
func (h *ToolHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateToolRequest
	if err := c.BodyParser(&in); err != nil {
		return respondBadBody(c)
	}
	view, err := h.tools.Update(c.Context(), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, "herramienta actualizada", toToolResponse(view))
}

// UpdateCondition godoc
// @Summary      Cambiar condición física de la herramienta
// @Tags         tools
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                          true  "ID de la herramienta"
// @Param        body  body  dto.UpdateToolConditionRequest  true  "condition"
// @Success      200   {object}  dto.Envelope
// @Failure      404   {object}  dto.Envelope
// @Router       /api/tools/{id}/condition [patch]
func (h *ToolHandler) UpdateCondition(c *fiber.Ctx) error {
	var in dto.UpdateToolConditionRequest
	if err := c.BodyParser(&in); err != nil {
		return respondBadBody(c)
	}
	if err := h.tools.UpdateCondition(c.Context(), c.Params("id"), in.Condition); err != nil {
		return respondError(c, err)
	}
	return respondOK(c, "condición actualizada", nil)
}

// Delete godoc
// @Summary      Eliminar herramienta
// @Tags         tools
// @Security     Bearer
// @Param        id  path  string  true  "ID de la herramienta"
// @Success      200  {object}  dto.Envelope
// @Failure      404  {object}  dto.Envelope
// @Router       /api/tools/{id} [delete]
func (h *ToolHandler) Delete(c *fiber.Ctx) error {
	if err := h.tools.Delete(c.Context(), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return respondOK(c, "herramienta eliminada", nil)
}

// ── Libro de herramientas ─────────────────────────────────────────────────────

// CreateTransaction godoc
// @Summary      Registrar transacción del libro de herramientas (IN/OUT)
// @Tags         tools
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateTransactionRequest  true  "item_id (tool), transaction_type, quantity"
// @Success      201   {object}  dto.Envelope
// @Failure      409   {object}  dto.Envelope
// @Router       /api/tools/transactions [post]
func (h *ToolHandler) CreateTransaction(c *fiber.Ctx) error {
	var in dto.CreateTransactionRequest
	if err := c.BodyParser(&in); err != nil {
		return respondBadBody(c)
	}
	res, err := h.engine.CreateTransaction(c.Context(), ledger.TransactionInput{
		ItemID:   in.ItemID,
		Type:     in.Type,
		Quantity: in.Quantity,
		EventID:  in.EventID,
		Notes:    in.Notes,
	})
	if err != nil {
		return respondError(c, err)
	}
	return respondCreated(c, "transacción registrada", toTransactionWithStock(res))
}

// UpdateTransaction godoc
// @Summary      Corregir transacción del libro de herramientas
// @Tags         tools
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                        true  "ID de la transacción"
// @Param        body  body  dto.UpdateTransactionRequest  true  "campos a corregir"
// @Success      200   {object}  dto.Envelope
// @Failure      404   {object}  dto.Envelope
// @Router       /api/tools/transactions/{id} [put]
func (h *ToolHandler) UpdateTransaction(c *fiber.Ctx) error {
	var in dto.UpdateTransactionRequest
	if err := c.BodyParser(&in); err != nil {
		return respondBadBody(c)
	}
	res, err := h.engine.UpdateTransaction(c.Context(), ledger.UpdateInput{
		ID:         c.Params("id"),
		ItemID:     in.ItemID,
		Type:       in.Type,
		Quantity:   in.Quantity,
		EventID:    in.EventID.Value,
		SetEventID: in.EventID.Set,
		Notes:      in.Notes,
	})
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, "transacción corregida", toTransactionWithStock(res))
}

// DeleteTransaction godoc
// @Summary      Eliminar transacción del libro de herramientas
// @Tags         tools
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID de la transacción"
// @Success      200  {object}  dto.Envelope
// @Failure      404  {object}  dto.Envelope
// @Router       /api/tools/transactions/{id} [delete]
func (h *ToolHandler) DeleteTransaction(c *fiber.Ctx) error {
	res, err := h.engine.DeleteTransaction(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, "transacción eliminada", toTransactionWithStock(res))
}

// ListTransactions godoc
// @Summary      Listar transacciones del libro de herramientas
// @Tags         tools
// @Security     Bearer
// @Produce      json
// @Param        event_id  query  string  false  "Filtrar por evento"
// @Param        limit     query  int     false  "Máximo de filas (50 por defecto)"
// @Param        offset    query  int     false  "Desplazamiento"
// @Success      200  {object}  dto.Envelope
// @Router       /api/tools/transactions [get]
func (h *ToolHandler) ListTransactions(c *fiber.Ctx) error {
	filter := repository.IssuanceFilter{
		Limit:  c.QueryInt("limit", 50),
		Offset: c.QueryInt("offset"),
	}
	if eventID := c.Query("event_id"); eventID != "" {
		filter.EventID = &eventID
	}
	list, err := h.engine.ListTransactions(c.Context(), filter)
	if err != nil {
		return respondError(c, err)
	}
	out := make([]dto.TransactionResponse, 0, len(list))
	for _, iss := range list {
		out = append(out, dto.ToTransactionResponse(iss))
	}
	return respondOK(c, "", out)
}
