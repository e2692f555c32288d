package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Eventos-api/internal/application/dto"
	"github.com/jhoicas/Eventos-api/internal/domain"
	"github.com/jhoicas/Eventos-api/internal/domain/entity"
	"github.com/jhoicas/Eventos-api/internal/domain/repository"
)

// ToolUseCase casos de uso de herramientas de trabajo. La cantidad disponible
// se mueve por el motor del libro; aquí se administra el resto (CRUD y
// condición física).
type ToolUseCase struct {
	tools  repository.ToolRepository
	stocks repository.StockRepository // fila de tool_inventory
}

// NewToolUseCase construye el caso de uso de herramientas.
func NewToolUseCase(tools repository.ToolRepository, stocks repository.StockRepository) *ToolUseCase {
	return &ToolUseCase{tools: tools, stocks: stocks}
}

// Create registra la herramienta y su fila de inventario (cantidad inicial
// opcional, condición "Good" por defecto).
func (uc *ToolUseCase) Create(ctx context.Context, in dto.CreateToolRequest) (*repository.ToolView, error) {
	if in.Name == "" {
		return nil, fmt.Errorf("%w: name es requerido", domain.ErrInvalidInput)
	}
	initial := decimal.Zero
	if in.QuantityAvailable != nil {
		if in.QuantityAvailable.IsNegative() {
			return nil, fmt.Errorf("%w: la cantidad inicial no puede ser negativa", domain.ErrInvalidInput)
		}
		initial = *in.QuantityAvailable
	}
	tool := &entity.Tool{
		ID:        uuid.New().String(),
		Name:      in.Name,
		ImageURL:  in.ImageURL,
		Notes:     in.Notes,
		CreatedAt: time.Now(),
	}
	if err := uc.tools.Create(tool); err != nil {
		return nil, err
	}
	if err := uc.stocks.Create(&entity.Stock{ItemID: tool.ID, QuantityAvailable: initial, UpdatedAt: time.Now()}); err != nil {
		return nil, err
	}
	if in.Condition != "" {
		if err := uc.tools.UpdateCondition(tool.ID, in.Condition); err != nil {
			return nil, err
		}
	}
	inv, err := uc.tools.GetInventory(tool.ID)
	if err != nil {
		return nil, err
	}
	return &repository.ToolView{Tool: *tool, Inventory: inv}, nil
}

// GetByID devuelve la herramienta con su fila de inventario.
func (uc *ToolUseCase) GetByID(ctx context.Context, id string) (*repository.ToolView, error) {
	tool, err := uc.tools.GetByID(id)
	if err != nil {
		return nil, err
	}
	if tool == nil {
		return nil, domain.ErrNotFound
	}
	inv, err := uc.tools.GetInventory(id)
	if err != nil {
		return nil, err
	}
	return &repository.ToolView{Tool: *tool, Inventory: inv}, nil
}

// List lista herramientas con inventario.
func (uc *ToolUseCase) List(ctx context.Context) ([]*repository.ToolView, error) {
	return uc.tools.List()
}

// Update modifica los campos descriptivos de la herramienta.
func (uc *ToolUseCase) Update(ctx context.Context, id string, in dto.UpdateToolRequest) (*repository.ToolView, error) {
	if in.Name == "" {
		return nil, fmt.Errorf("%w: name es requerido", domain.ErrInvalidInput)
	}
	tool, err := uc.tools.GetByID(id)
	if err != nil {
		return nil, err
	}
	if tool == nil {
		return nil, domain.ErrNotFound
	}
	tool.Name = in.Name
	tool.ImageURL = in.ImageURL
	tool.Notes = in.Notes
	if err := uc.tools.Update(tool); err != nil {
		return nil, err
	}
	inv, err := uc.tools.GetInventory(id)
	if err != nil {
		return nil, err
	}
	return &repository.ToolView{Tool: *tool, Inventory: inv}, nil
}

// UpdateCondition cambia la condición física reportada de la herramienta.
func (uc *ToolUseCase) UpdateCondition(ctx context.Context, id, condition string) error {
	if condition == "" {
		return fmt.Errorf("%w: condition es requerida", domain.ErrInvalidInput)
	}
	tool, err := uc.tools.GetByID(id)
	if err != nil {
		return err
	}
	if tool == nil {
		return domain.ErrNotFound
	}
	return uc.tools.UpdateCondition(id, condition)
}

// Delete elimina la herramienta; su fila de inventario cae por cascada.
func (uc *ToolUseCase) Delete(ctx context.Context, id string) error {
	tool, err := uc.tools.GetByID(id)
	if err != nil {
		return err
	}
	if tool == nil {
		return domain.ErrNotFound
	}
	return uc.tools.Delete(id)
}
