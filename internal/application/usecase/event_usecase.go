package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Eventos-api/internal/application/dto"
	"github.com/jhoicas/Eventos-api/internal/application/ledger"
	"github.com/jhoicas/Eventos-api/internal/domain"
	"github.com/jhoicas/Eventos-api/internal/domain/entity"
	"github.com/jhoicas/Eventos-api/internal/domain/repository"
)

// EventDetail evento con sus referencias resueltas y agregados.
type EventDetail struct {
	Event        entity.Event
	TemplateName string
	YearName     string
	TotalCost    decimal.Decimal
	Costs        []*entity.CostItem
	DesignImages []*entity.DesignImage
	FinalImages  []*entity.FinalImage
}

// EventUseCase casos de uso de eventos de decoración: CRUD, rubros de costo,
// galerías y emisión de materiales/herramientas hacia el evento. Las
// emisiones son transacciones OUT del libro de inventario ligadas al evento.
type EventUseCase struct {
	events    repository.EventRepository
	templates repository.TemplateRepository
	years     repository.YearRepository
	costs     repository.CostRepository
	gallery   repository.GalleryRepository
	materials *ledger.Engine
	tools     *ledger.Engine
}

// NewEventUseCase construye el caso de uso de eventos.
func NewEventUseCase(
	events repository.EventRepository,
	templates repository.TemplateRepository,
	years repository.YearRepository,
	costs repository.CostRepository,
	gallery repository.GalleryRepository,
	materials, tools *ledger.Engine,
) *EventUseCase {
	return &EventUseCase{
		events:    events,
		templates: templates,
		years:     years,
		costs:     costs,
		gallery:   gallery,
		materials: materials,
		tools:     tools,
	}
}

// Create registra un evento validando que su plantilla y su año existan.
func (uc *EventUseCase) Create(ctx context.Context, in dto.CreateEventRequest) (*entity.Event, error) {
	if in.TemplateID == "" || in.YearID == "" || in.Date.IsZero() {
		return nil, fmt.Errorf("%w: template_id, year_id y date son requeridos", domain.ErrInvalidInput)
	}
	if err := uc.checkRefs(in.TemplateID, in.YearID); err != nil {
		return nil, err
	}
	e := &entity.Event{
		ID:          uuid.New().String(),
		TemplateID:  in.TemplateID,
		YearID:      in.YearID,
		Date:        in.Date,
		Location:    in.Location,
		Description: in.Description,
		CoverImage:  in.CoverImage,
		CreatedAt:   time.Now(),
	}
	if err := uc.events.Create(e); err != nil {
		return nil, err
	}
	return e, nil
}

// GetDetail devuelve el evento con nombres resueltos, rubros de costo con su
// total y ambas galerías.
func (uc *EventUseCase) GetDetail(ctx context.Context, id string) (*EventDetail, error) {
	e, err := uc.events.GetByID(id)
	if err != nil {
		return nil, err
	}
	if e == nil {
		return nil, domain.ErrNotFound
	}
	detail := &EventDetail{Event: *e}
	if t, err := uc.templates.GetByID(e.TemplateID); err != nil {
		return nil, err
	} else if t != nil {
		detail.TemplateName = t.Name
	}
	if y, err := uc.years.GetByID(e.YearID); err != nil {
		return nil, err
	} else if y != nil {
		detail.YearName = y.Name
	}
	if detail.Costs, err = uc.costs.ListByEvent(id); err != nil {
		return nil, err
	}
	if detail.TotalCost, err = uc.costs.TotalByEvent(id); err != nil {
		return nil, err
	}
	if detail.DesignImages, detail.FinalImages, err = uc.gallery.ListByEvent(id); err != nil {
		return nil, err
	}
	return detail, nil
}

// List lista los eventos por fecha descendente.
func (uc *EventUseCase) List(ctx context.Context) ([]*entity.Event, error) {
	return uc.events.List()
}

// Update modifica el evento revalidando sus referencias.
func (uc *EventUseCase) Update(ctx context.Context, id string, in dto.UpdateEventRequest) (*entity.Event, error) {
	e, err := uc.events.GetByID(id)
	if err != nil {
		return nil, err
	}
	if e == nil {
		return nil, domain.ErrNotFound
	}
	if in.TemplateID == "" || in.YearID == "" || in.Date.IsZero() {
		return nil, fmt.Errorf("%w: template_id, year_id y date son requeridos", domain.ErrInvalidInput)
	}
	if err := uc.checkRefs(in.TemplateID, in.YearID); err != nil {
		return nil, err
	}
	e.TemplateID = in.TemplateID
	e.YearID = in.YearID
	e.Date = in.Date
	e.Location = in.Location
	e.Description = in.Description
	e.CoverImage = in.CoverImage
	if err := uc.events.Update(e); err != nil {
		return nil, err
	}
	return e, nil
}

// Delete elimina el evento. El historial del libro conserva el event_id.
func (uc *EventUseCase) Delete(ctx context.Context, id string) error {
	e, err := uc.events.GetByID(id)
	if err != nil {
		return err
	}
	if e == nil {
		return domain.ErrNotFound
	}
	return uc.events.Delete(id)
}

// AddCost agrega un rubro de costo al evento.
func (uc *EventUseCase) AddCost(ctx context.Context, eventID string, in dto.CostItemRequest) (*entity.CostItem, error) {
	if in.Description == "" || in.Amount.IsNegative() {
		return nil, fmt.Errorf("%w: description requerida y amount no negativo", domain.ErrInvalidInput)
	}
	if err := uc.mustExist(eventID); err != nil {
		return nil, err
	}
	c := &entity.CostItem{
		ID:           uuid.New().String(),
		EventID:      eventID,
		Description:  in.Description,
		Amount:       in.Amount,
		DocumentURL:  in.DocumentURL,
		DocumentType: in.DocumentType,
		UploadedAt:   time.Now(),
	}
	if err := uc.costs.Create(c); err != nil {
		return nil, err
	}
	return c, nil
}

// UpdateCost modifica un rubro de costo existente.
func (uc *EventUseCase) UpdateCost(ctx context.Context, costID string, in dto.CostItemRequest) (*entity.CostItem, error) {
	if in.Description == "" || in.Amount.IsNegative() {
		return nil, fmt.Errorf("%w: description requerida y amount no negativo", domain.ErrInvalidInput)
	}
	c, err := uc.costs.GetByID(costID)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrNotFound
	}
	c.Description = in.Description
	c.Amount = in.Amount
	c.DocumentURL = in.DocumentURL
	c.DocumentType = in.DocumentType
	if err := uc.costs.Update(c); err != nil {
		return nil, err
	}
	return c, nil
}

// DeleteCost elimina un rubro de costo.
func (uc *EventUseCase) DeleteCost(ctx context.Context, costID string) error {
	c, err := uc.costs.GetByID(costID)
	if err != nil {
		return err
	}
	if c == nil {
		return domain.ErrNotFound
	}
	return uc.costs.Delete(costID)
}

// AddDesignImage registra un boceto/diseño del evento.
func (uc *EventUseCase) AddDesignImage(ctx context.Context, eventID string, in dto.GalleryImageRequest) (*entity.DesignImage, error) {
	if in.ImageURL == "" {
		return nil, fmt.Errorf("%w: image_url es requerida", domain.ErrInvalidInput)
	}
	if err := uc.mustExist(eventID); err != nil {
		return nil, err
	}
	img := &entity.DesignImage{
		ID:         uuid.New().String(),
		EventID:    eventID,
		ImageURL:   in.ImageURL,
		Notes:      in.Notes,
		UploadedAt: time.Now(),
	}
	if err := uc.gallery.AddDesignImage(img); err != nil {
		return nil, err
	}
	return img, nil
}

// AddFinalImage registra una fotografía de la decoración terminada.
func (uc *EventUseCase) AddFinalImage(ctx context.Context, eventID string, in dto.GalleryImageRequest) (*entity.FinalImage, error) {
	if in.ImageURL == "" {
		return nil, fmt.Errorf("%w: image_url es requerida", domain.ErrInvalidInput)
	}
	if err := uc.mustExist(eventID); err != nil {
		return nil, err
	}
	img := &entity.FinalImage{
		ID:          uuid.New().String(),
		EventID:     eventID,
		ImageURL:    in.ImageURL,
		Description: in.Description,
		UploadedAt:  time.Now(),
	}
	if err := uc.gallery.AddFinalImage(img); err != nil {
		return nil, err
	}
	return img, nil
}

// IssueMaterial emite material del inventario hacia el evento: transacción
// OUT en el libro de materiales, atómica contra el stock.
func (uc *EventUseCase) IssueMaterial(ctx context.Context, eventID string, in dto.IssueToEventRequest) (*ledger.TransactionResult, error) {
	if err := uc.mustExist(eventID); err != nil {
		return nil, err
	}
	return uc.materials.CreateTransaction(ctx, ledger.TransactionInput{
		ItemID:   in.ItemID,
		Type:     entity.TransactionTypeOUT,
		Quantity: in.Quantity,
		EventID:  &eventID,
		Notes:    in.Notes,
	})
}

// IssueTool emite una herramienta hacia el evento: transacción OUT en el
// libro de herramientas.
func (uc *EventUseCase) IssueTool(ctx context.Context, eventID string, in dto.IssueToEventRequest) (*ledger.TransactionResult, error) {
	if err := uc.mustExist(eventID); err != nil {
		return nil, err
	}
	return uc.tools.CreateTransaction(ctx, ledger.TransactionInput{
		ItemID:   in.ItemID,
		Type:     entity.TransactionTypeOUT,
		Quantity: in.Quantity,
		EventID:  &eventID,
		Notes:    in.Notes,
	})
}

// MaterialIssuances lista las emisiones de material del evento.
func (uc *EventUseCase) MaterialIssuances(ctx context.Context, eventID string) ([]*entity.Issuance, error) {
	if err := uc.mustExist(eventID); err != nil {
		return nil, err
	}
	return uc.materials.ListTransactions(ctx, repository.IssuanceFilter{EventID: &eventID})
}

// ToolIssuances lista las emisiones de herramientas del evento.
func (uc *EventUseCase) ToolIssuances(ctx context.Context, eventID string) ([]*entity.Issuance, error) {
	if err := uc.mustExist(eventID); err != nil {
		return nil, err
	}
	return uc.tools.ListTransactions(ctx, repository.IssuanceFilter{EventID: &eventID})
}

func (uc *EventUseCase) mustExist(eventID string) error {
	e, err := uc.events.GetByID(eventID)
	if err != nil {
		return err
	}
	if e == nil {
		return domain.ErrNotFound
	}
	return nil
}

func (uc *EventUseCase) checkRefs(templateID, yearID string) error {
	t, err := uc.templates.GetByID(templateID)
	if err != nil {
		return err
	}
	if t == nil {
		return fmt.Errorf("%w: plantilla %s", domain.ErrNotFound, templateID)
	}
	y, err := uc.years.GetByID(yearID)
	if err != nil {
		return err
	}
	if y == nil {
		return fmt.Errorf("%w: año %s", domain.ErrNotFound, yearID)
	}
	return nil
}
