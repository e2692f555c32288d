package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Eventos-api/internal/domain/entity"
	"github.com/jhoicas/Eventos-api/internal/domain/repository"
)

// ReportLine una emisión de inventario resuelta a nombre legible.
type ReportLine struct {
	Name     string
	Type     string
	Quantity decimal.Decimal
	Date     time.Time
	Notes    string
}

// EventReport datos consolidados de un evento para el PDF de cierre.
type EventReport struct {
	Title        string
	TemplateName string
	YearName     string
	Date         time.Time
	Location     string
	Materials    []ReportLine
	Tools        []ReportLine
	Costs        []*entity.CostItem
	TotalCost    decimal.Decimal
}

// EventReportGenerator puerto del generador de documentos (PDF).
type EventReportGenerator interface {
	Generate(report *EventReport) ([]byte, error)
}

// ReportUseCase arma el reporte consolidado de un evento: materiales y
// herramientas emitidos, rubros de costo y total.
type ReportUseCase struct {
	events *EventUseCase
	items  repository.ItemRepository
	tools  repository.ToolRepository
	gen    EventReportGenerator
}

// NewReportUseCase construye el caso de uso de reportes.
func NewReportUseCase(events *EventUseCase, items repository.ItemRepository, tools repository.ToolRepository, gen EventReportGenerator) *ReportUseCase {
	return &ReportUseCase{events: events, items: items, tools: tools, gen: gen}
}

// GenerateEventReport consolida el evento y devuelve el PDF renderizado.
func (uc *ReportUseCase) GenerateEventReport(ctx context.Context, eventID string) ([]byte, error) {
	detail, err := uc.events.GetDetail(ctx, eventID)
	if err != nil {
		return nil, err
	}
	report := &EventReport{
		Title:        detail.TemplateName + " " + detail.YearName,
		TemplateName: detail.TemplateName,
		YearName:     detail.YearName,
		Date:         detail.Event.Date,
		Location:     detail.Event.Location,
		Costs:        detail.Costs,
		TotalCost:    detail.TotalCost,
	}

	materials, err := uc.events.MaterialIssuances(ctx, eventID)
	if err != nil {
		return nil, err
	}
	for _, iss := range materials {
		name := iss.ItemID
		if item, err := uc.items.GetByID(iss.ItemID); err == nil && item != nil {
			name = item.Name
		}
		report.Materials = append(report.Materials, ReportLine{
			Name:     name,
			Type:     iss.Type,
			Quantity: iss.Quantity,
			Date:     iss.CreatedAt,
			Notes:    iss.Notes,
		})
	}

	toolIssuances, err := uc.events.ToolIssuances(ctx, eventID)
	if err != nil {
		return nil, err
	}
	for _, iss := range toolIssuances {
		name := iss.ItemID
		if tool, err := uc.tools.GetByID(iss.ItemID); err == nil && tool != nil {
			name = tool.Name
		}
		report.Tools = append(report.Tools, ReportLine{
			Name:     name,
			Type:     iss.Type,
			Quantity: iss.Quantity,
			Date:     iss.CreatedAt,
			Notes:    iss.Notes,
		})
	}

	return uc.gen.Generate(report)
}
