package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Eventos-api/internal/application/dto"
	"github.com/jhoicas/Eventos-api/internal/application/ledger"
	"github.com/jhoicas/Eventos-api/internal/application/usecase"
	"github.com/jhoicas/Eventos-api/internal/domain/repository"
)

// InventoryHandler maneja ítems, stock y el libro de transacciones de
// materiales (protegido).
type InventoryHandler struct {
	items   *usecase.ItemUseCase
	engine  *ledger.Engine
	stocks  repository.StockReader
	service *ledger.InventoryService
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(items *usecase.ItemUseCase, engine *ledger.Engine, stocks repository.StockReader, service *ledger.InventoryService) *InventoryHandler {
	return &InventoryHandler{items: items, engine: engine, stocks: stocks, service: service}
}

// toTransactionWithStock arma la respuesta de las operaciones mutadoras del libro.
func toTransactionWithStock(res *ledger.TransactionResult) dto.TransactionWithStock {
	return dto.TransactionWithStock{
		Transaction: dto.ToTransactionResponse(res.Issuance),
		StockUpdate: dto.StockUpdateInfo{
			PreviousQuantity: res.StockBefore,
			NewQuantity:      res.StockAfter,
			Change:           res.StockAfter.Sub(res.StockBefore),
		},
	}
}

// ── Ítems ─────────────────────────────────────────────────────────────────────

// CreateItem godoc
// @Summary      Crear ítem de inventario (con detalles y stock inicial)
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateItemRequest  true  "name, category_id, unit, category_details, quantity_available"
// @Success      201   {object}  dto.Envelope
// @Failure      400   {object}  dto.Envelope
// @Failure      404   {object}  dto.Envelope
// @Router       /api/inventory/items [post]
func (h *InventoryHandler) CreateItem(c *fiber.Ctx) error {
	var in dto.CreateItemRequest
	if err := c.BodyParser(&in); err != nil {
		return respondBadBody(c)
	}
	item, err := h.items.Create(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return respondCreated(c, "ítem creado", item)
}

// GetItem godoc
// @Summary      Obtener ítem por ID
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID del ítem"
// @Success      200  {object}  dto.Envelope
// @Failure      404  {object}  dto.Envelope
// @Router       /api/inventory/items/{id} [get]
func (h *InventoryHandler) GetItem(c *fiber.Ctx) error {
	item, err := h.items.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, "", item)
}

// ListItems godoc
// @Summary      Listar ítems
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.Envelope
// @Router       /api/inventory/items [get]
func (h *InventoryHandler) ListItems(c *fiber.Ctx) error {
	items, err := h.items.List(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, "", items)
}

// UpdateItem godoc
// @Summary      Actualizar ítem
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                 true  "ID del ítem"
// @Param        body  body  dto.UpdateItemRequest  true  "campos editables"
// @Success      200   {object}  dto.Envelope
// @Failure      404   {object}  dto.Envelope
// @Router       /api/inventory/items/{id} [put]
func (h *InventoryHandler) UpdateItem(c *fiber.Ctx) error {
	var in dto.UpdateItemRequest
	if err := c.BodyParser(&in); err != nil {
		return respondBadBody(c)
	}
	item, err := h.items.Update(c.Context(), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, "ítem actualizado", item)
}

// DeleteItem godoc
// @Summary      Eliminar ítem
// @Tags         inventory
// @Security     Bearer
// @Param        id  path  string  true  "ID del ítem"
// @Success      200  {object}  dto.Envelope
// @Failure      404  {object}  dto.Envelope
// @Router       /api/inventory/items/{id} [delete]
func (h *InventoryHandler) DeleteItem(c *fiber.Ctx) error {
	if err := h.items.Delete(c.Context(), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return respondOK(c, "ítem eliminado", nil)
}

// ── Stock ─────────────────────────────────────────────────────────────────────

// ListStock godoc
// @Summary      Listar stock de todos los ítems
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.Envelope
// @Router       /api/inventory/stock [get]
func (h *InventoryHandler) ListStock(c *fiber.Ctx) error {
	list, err := h.stocks.ListWithItems()
	if err != nil {
		return respondError(c, err)
	}
	type stockRow struct {
		ItemID            string `json:"item_id"`
		ItemName          string `json:"item_name"`
		Unit              string `json:"unit"`
		CategoryName      string `json:"category_name,omitempty"`
		QuantityAvailable string `json:"quantity_available"`
	}
	out := make([]stockRow, 0, len(list))
	for _, v := range list {
		out = append(out, stockRow{
			ItemID:            v.Stock.ItemID,
			ItemName:          v.ItemName,
			Unit:              v.Unit,
			CategoryName:      v.CategoryName,
			QuantityAvailable: v.Stock.QuantityAvailable.String(),
		})
	}
	return respondOK(c, "", out)
}

// GetStock godoc
// @Summary      Consultar stock de un ítem
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        itemId  path  string  true  "ID del ítem"
// @Success      200  {object}  dto.Envelope
// @Failure      404  {object}  dto.Envelope
// @Router       /api/inventory/stock/{itemId} [get]
func (h *InventoryHandler) GetStock(c *fiber.Ctx) error {
	stock, err := h.engine.GetStock(c.Context(), c.Params("itemId"))
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, "", dto.StockResponse{ItemID: stock.ItemID, QuantityAvailable: stock.QuantityAvailable})
}

// CreateStock godoc
// @Summary      Crear fila de stock para un ítem existente
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateStockRequest  true  "item_id, quantity_available"
// @Success      201   {object}  dto.Envelope
// @Failure      400   {object}  dto.Envelope
// @Router       /api/inventory/stock [post]
func (h *InventoryHandler) CreateStock(c *fiber.Ctx) error {
	var in dto.CreateStockRequest
	if err := c.BodyParser(&in); err != nil {
		return respondBadBody(c)
	}
	stock, err := h.engine.CreateStock(c.Context(), in.ItemID, in.QuantityAvailable)
	if err != nil {
		return respondError(c, err)
	}
	return respondCreated(c, "stock creado", dto.StockResponse{ItemID: stock.ItemID, QuantityAvailable: stock.QuantityAvailable})
}

// ── Transacciones del libro ───────────────────────────────────────────────────

// CreateTransaction godoc
// @Summary      Registrar transacción de inventario (IN/OUT)
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateTransactionRequest  true  "item_id, transaction_type (IN|OUT), quantity"
// @Success      201   {object}  dto.Envelope
// @Failure      400   {object}  dto.Envelope
// @Failure      404   {object}  dto.Envelope
// @Failure      409   {object}  dto.Envelope
// @Router       /api/inventory/transactions [post]
func (h *InventoryHandler) CreateTransaction(c *fiber.Ctx) error {
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
// @Summary      Corregir transacción (revierte el efecto original y aplica el nuevo)
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                        true  "ID de la transacción"
// @Param        body  body  dto.UpdateTransactionRequest  true  "campos a corregir"
// @Success      200   {object}  dto.Envelope
// @Failure      404   {object}  dto.Envelope
// @Failure      409   {object}  dto.Envelope
// @Router       /api/inventory/transactions/{id} [put]
func (h *InventoryHandler) UpdateTransaction(c *fiber.Ctx) error {
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
// @Summary      Eliminar transacción (revierte su efecto sobre el stock)
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID de la transacción"
// @Success      200  {object}  dto.Envelope
// @Failure      404  {object}  dto.Envelope
// @Failure      409  {object}  dto.Envelope
// @Router       /api/inventory/transactions/{id} [delete]
func (h *InventoryHandler) DeleteTransaction(c *fiber.Ctx) error {
	res, err := h.engine.DeleteTransaction(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, "transacción eliminada", toTransactionWithStock(res))
}

// ListTransactions godoc
// @Summary      Listar transacciones del libro (más recientes primero)
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        event_id  query  string  false  "Filtrar por evento"
// @Param        limit     query  int     false  "Máximo de filas (50 por defecto)"
// @Param        offset    query  int     false  "Desplazamiento"
// @Success      200  {object}  dto.Envelope
// @Router       /api/inventory/transactions [get]
func (h *InventoryHandler) ListTransactions(c *fiber.Ctx) error {
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

// ── Deducción directa (fachada) ───────────────────────────────────────────────

// DeductMaterial godoc
// @Summary      Deducir stock de material sin registrar transacción
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.DeductRequest  true  "item_id, qty"
// @Success      200   {object}  dto.Envelope
// @Failure      409   {object}  dto.Envelope
// @Router       /api/inventory/deduct-material [post]
func (h *InventoryHandler) DeductMaterial(c *fiber.Ctx) error {
	var in dto.DeductRequest
	if err := c.BodyParser(&in); err != nil {
		return respondBadBody(c)
	}
	stock, err := h.service.DeductMaterialStock(c.Context(), in.ItemID, in.Quantity)
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, "stock deducido", dto.StockResponse{ItemID: stock.ItemID, QuantityAvailable: stock.QuantityAvailable})
}

// DeductTool godoc
// @Summary      Deducir stock de herramienta sin registrar transacción
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.DeductRequest  true  "item_id, qty"
// @Success      200   {object}  dto.Envelope
// @Failure      409   {object}  dto.Envelope
// @Router       /api/inventory/deduct-tool [post]
func (h *InventoryHandler) DeductTool(c *fiber.Ctx) error {
	var in dto.DeductRequest
	if err := c.BodyParser(&in); err != nil {
		return respondBadBody(c)
	}
	stock, err := h.service.DeductToolStock(c.Context(), in.ItemID, in.Quantity)
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, "stock deducido", dto.StockResponse{ItemID: stock.ItemID, QuantityAvailable: stock.QuantityAvailable})
}
