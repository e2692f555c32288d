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

// CatalogTxRunner ejecuta fn dentro de una transacción de base de datos con
// repositorios de ítems y stock ligados a esa transacción. Si fn devuelve
// error se hace rollback completo.
type CatalogTxRunner interface {
	Run(ctx context.Context, fn func(items repository.ItemRepository, stocks repository.StockRepository) error) error
}

// ItemUseCase casos de uso de ítems de inventario: la creación de un ítem, sus
// detalles por categoría y su fila de stock es una sola operación atómica.
type ItemUseCase struct {
	tx         CatalogTxRunner
	items      repository.ItemRepository
	categories repository.CategoryRepository
	stocks     repository.StockRepository
}

// NewItemUseCase construye el caso de uso de ítems.
func NewItemUseCase(tx CatalogTxRunner, items repository.ItemRepository, categories repository.CategoryRepository, stocks repository.StockRepository) *ItemUseCase {
	return &ItemUseCase{tx: tx, items: items, categories: categories, stocks: stocks}
}

// Create registra un ítem nuevo junto con sus detalles de categoría y su fila
// de stock inicial (cero si no se indica cantidad), todo en una transacción.
func (uc *ItemUseCase) Create(ctx context.Context, in dto.CreateItemRequest) (*dto.ItemResponse, error) {
	if in.Name == "" || in.CategoryID == "" || in.Unit == "" {
		return nil, fmt.Errorf("%w: name, category_id y unit son requeridos", domain.ErrInvalidInput)
	}
	category, err := uc.categories.GetByID(in.CategoryID)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, fmt.Errorf("%w: categoría %s", domain.ErrNotFound, in.CategoryID)
	}
	initial := decimal.Zero
	if in.QuantityAvailable != nil {
		if in.QuantityAvailable.IsNegative() {
			return nil, fmt.Errorf("%w: la cantidad inicial no puede ser negativa", domain.ErrInvalidInput)
		}
		initial = *in.QuantityAvailable
	}

	item := &entity.InventoryItem{
		ID:              uuid.New().String(),
		Name:            in.Name,
		CategoryID:      in.CategoryID,
		Unit:            in.Unit,
		StorageLocation: in.StorageLocation,
		Notes:           in.Notes,
		ItemImage:       in.ItemImage,
		CreatedAt:       time.Now(),
	}
	details := in.Details.DetailsToEntity(category.Kind)

	err = uc.tx.Run(ctx, func(items repository.ItemRepository, stocks repository.StockRepository) error {
		if err := items.Create(item); err != nil {
			return err
		}
		if details != nil {
			if err := items.SaveDetails(item.ID, details); err != nil {
				return err
			}
		}
		return stocks.Create(&entity.Stock{
			ItemID:            item.ID,
			QuantityAvailable: initial,
			UpdatedAt:         time.Now(),
		})
	})
	if err != nil {
		return nil, err
	}
	return uc.toResponse(item, category, details), nil
}

// GetByID devuelve el ítem con su categoría y detalles resueltos.
func (uc *ItemUseCase) GetByID(ctx context.Context, id string) (*dto.ItemResponse, error) {
	item, err := uc.items.GetByID(id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}
	category, err := uc.categories.GetByID(item.CategoryID)
	if err != nil {
		return nil, err
	}
	var details *entity.CategoryDetails
	if category != nil {
		details, err = uc.items.GetDetails(item.ID, category.Kind)
		if err != nil {
			return nil, err
		}
	}
	return uc.toResponse(item, category, details), nil
}

// List lista los ítems con el nombre de su categoría.
func (uc *ItemUseCase) List(ctx context.Context) ([]*dto.ItemResponse, error) {
	views, err := uc.items.List()
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ItemResponse, 0, len(views))
	for _, v := range views {
		out = append(out, &dto.ItemResponse{
			ID:              v.Item.ID,
			Name:            v.Item.Name,
			CategoryID:      v.Item.CategoryID,
			CategoryName:    v.CategoryName,
			Unit:            v.Item.Unit,
			StorageLocation: v.Item.StorageLocation,
			Notes:           v.Item.Notes,
			ItemImage:       v.Item.ItemImage,
		})
	}
	return out, nil
}

// Update modifica los campos editables del ítem y reemplaza sus detalles. La
// categoría es inmutable desde la creación.
func (uc *ItemUseCase) Update(ctx context.Context, id string, in dto.UpdateItemRequest) (*dto.ItemResponse, error) {
	if in.Name == "" || in.Unit == "" {
		return nil, fmt.Errorf("%w: name y unit son requeridos", domain.ErrInvalidInput)
	}
	item, err := uc.items.GetByID(id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}
	category, err := uc.categories.GetByID(item.CategoryID)
	if err != nil {
		return nil, err
	}
	item.Name = in.Name
	item.Unit = in.Unit
	item.StorageLocation = in.StorageLocation
	item.Notes = in.Notes
	item.ItemImage = in.ItemImage

	var details *entity.CategoryDetails
	if category != nil {
		details = in.Details.DetailsToEntity(category.Kind)
	}
	if err := uc.items.Update(item); err != nil {
		return nil, err
	}
	if details != nil {
		if err := uc.items.SaveDetails(item.ID, details); err != nil {
			return nil, err
		}
	} else if category != nil {
		details, err = uc.items.GetDetails(item.ID, category.Kind)
		if err != nil {
			return nil, err
		}
	}
	return uc.toResponse(item, category, details), nil
}

// Delete elimina el ítem. Los detalles y la fila de stock caen por cascada.
func (uc *ItemUseCase) Delete(ctx context.Context, id string) error {
	item, err := uc.items.GetByID(id)
	if err != nil {
		return err
	}
	if item == nil {
		return domain.ErrNotFound
	}
	return uc.items.Delete(id)
}

func (uc *ItemUseCase) toResponse(item *entity.InventoryItem, category *entity.Category, details *entity.CategoryDetails) *dto.ItemResponse {
	resp := &dto.ItemResponse{
		ID:              item.ID,
		Name:            item.Name,
		CategoryID:      item.CategoryID,
		Unit:            item.Unit,
		StorageLocation: item.StorageLocation,
		Notes:           item.Notes,
		ItemImage:       item.ItemImage,
	}
	if category != nil {
		resp.CategoryName = category.Name
	}
	if details != nil {
		resp.Details = dto.DetailsFromEntity(details)
	}
	return resp
}
