package dto

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Eventos-api/internal/domain/entity"
)

// CategoryDetailsDTO detalles por categoría de un ítem. Solo el bloque del
// kind de la categoría del ítem debe venir poblado.
type CategoryDetailsDTO struct {
	Furniture      *FurnitureDetailsDTO      `json:"furniture,omitempty"`
	Fabric         *FabricDetailsDTO         `json:"fabric,omitempty"`
	FrameStructure *FrameStructureDetailsDTO `json:"frame_structure,omitempty"`
	Carpet         *CarpetDetailsDTO         `json:"carpet,omitempty"`
	Thermocol      *ThermocolDetailsDTO      `json:"thermocol,omitempty"`
	Stationery     *StationeryDetailsDTO     `json:"stationery,omitempty"`
	MurtiSet       *MurtiSetDetailsDTO       `json:"murti_set,omitempty"`
}

type FurnitureDetailsDTO struct {
	Material   string `json:"material"`
	Dimensions string `json:"dimensions"`
}

type FabricDetailsDTO struct {
	FabricType string          `json:"fabric_type"`
	Pattern    string          `json:"pattern"`
	Width      decimal.Decimal `json:"width"`
	Length     decimal.Decimal `json:"length"`
	Color      string          `json:"color"`
}

type FrameStructureDetailsDTO struct {
	FrameType  string `json:"frame_type"`
	Material   string `json:"material"`
	Dimensions string `json:"dimensions"`
}

type CarpetDetailsDTO struct {
	CarpetType string `json:"carpet_type"`
	Material   string `json:"material"`
	Size       string `json:"size"`
}

type ThermocolDetailsDTO struct {
	ThermocolType string `json:"thermocol_type"`
	Dimensions    string `json:"dimensions"`
	Density       string `json:"density"`
}

type StationeryDetailsDTO struct {
	Specifications string `json:"specifications"`
}

type MurtiSetDetailsDTO struct {
	SetNumber  int    `json:"set_number"`
	Material   string `json:"material"`
	Dimensions string `json:"dimensions"`
}

// CreateItemRequest body para POST /api/inventory/items. La fila de stock se
// crea junto con el ítem (cantidad inicial opcional, cero por defecto).
type CreateItemRequest struct {
	Name              string              `json:"name"`
	CategoryID        string              `json:"category_id"`
	Unit              string              `json:"unit"`
	StorageLocation   string              `json:"storage_location,omitempty"`
	Notes             string              `json:"notes,omitempty"`
	ItemImage         string              `json:"item_image,omitempty"`
	QuantityAvailable *decimal.Decimal    `json:"quantity_available,omitempty"`
	Details           *CategoryDetailsDTO `json:"category_details,omitempty"`
}

// UpdateItemRequest body para PUT /api/inventory/items/:id. La categoría es
// fija desde la creación y no aparece aquí.
type UpdateItemRequest struct {
	Name            string              `json:"name"`
	Unit            string              `json:"unit"`
	StorageLocation string              `json:"storage_location,omitempty"`
	Notes           string              `json:"notes,omitempty"`
	ItemImage       string              `json:"item_image,omitempty"`
	Details         *CategoryDetailsDTO `json:"category_details,omitempty"`
}

// ItemResponse ítem con su categoría y detalles resueltos.
type ItemResponse struct {
	ID              string              `json:"id"`
	Name            string              `json:"name"`
	CategoryID      string              `json:"category_id"`
	CategoryName    string              `json:"category_name,omitempty"`
	Unit            string              `json:"unit"`
	StorageLocation string              `json:"storage_location,omitempty"`
	Notes           string              `json:"notes,omitempty"`
	ItemImage       string              `json:"item_image,omitempty"`
	Details         *CategoryDetailsDTO `json:"category_details,omitempty"`
}

// DetailsToEntity convierte el DTO de detalles a la unión del dominio para el
// kind dado; devuelve nil si el bloque correspondiente no viene poblado.
func (d *CategoryDetailsDTO) DetailsToEntity(kind string) *entity.CategoryDetails {
	if d == nil {
		return nil
	}
	out := &entity.CategoryDetails{Kind: kind}
	switch kind {
	case entity.CategoryKindFurniture:
		if d.Furniture == nil {
			return nil
		}
		out.Furniture = &entity.FurnitureDetails{Material: d.Furniture.Material, Dimensions: d.Furniture.Dimensions}
	case entity.CategoryKindFabric:
		if d.Fabric == nil {
			return nil
		}
		out.Fabric = &entity.FabricDetails{
			FabricType: d.Fabric.FabricType,
			Pattern:    d.Fabric.Pattern,
			Width:      d.Fabric.Width,
			Length:     d.Fabric.Length,
			Color:      d.Fabric.Color,
		}
	case entity.CategoryKindFrameStructure:
		if d.FrameStructure == nil {
			return nil
		}
		out.FrameStructure = &entity.FrameStructureDetails{
			FrameType:  d.FrameStructure.FrameType,
			Material:   d.FrameStructure.Material,
			Dimensions: d.FrameStructure.Dimensions,
		}
	case entity.CategoryKindCarpet:
		if d.Carpet == nil {
			return nil
		}
		out.Carpet = &entity.CarpetDetails{CarpetType: d.Carpet.CarpetType, Material: d.Carpet.Material, Size: d.Carpet.Size}
	case entity.CategoryKindThermocol:
		if d.Thermocol == nil {
			return nil
		}
		out.Thermocol = &entity.ThermocolDetails{
			ThermocolType: d.Thermocol.ThermocolType,
			Dimensions:    d.Thermocol.Dimensions,
			Density:       d.Thermocol.Density,
		}
	case entity.CategoryKindStationery:
		if d.Stationery == nil {
			return nil
		}
		out.Stationery = &entity.StationeryDetails{Specifications: d.Stationery.Specifications}
	case entity.CategoryKindMurtiSet:
		if d.MurtiSet == nil {
			return nil
		}
		out.MurtiSet = &entity.MurtiSetDetails{
			SetNumber:  d.MurtiSet.SetNumber,
			Material:   d.MurtiSet.Material,
			Dimensions: d.MurtiSet.Dimensions,
		}
	default:
		return nil
	}
	return out
}

// DetailsFromEntity convierte la unión del dominio al DTO de detalles.
func DetailsFromEntity(det *entity.CategoryDetails) *CategoryDetailsDTO {
	if det == nil {
		return nil
	}
	out := &CategoryDetailsDTO{}
	switch det.Kind {
	case entity.CategoryKindFurniture:
		if det.Furniture != nil {
			out.Furniture = &FurnitureDetailsDTO{Material: det.Furniture.Material, Dimensions: det.Furniture.Dimensions}
		}
	case entity.CategoryKindFabric:
		if det.Fabric != nil {
			out.Fabric = &FabricDetailsDTO{
				FabricType: det.Fabric.FabricType,
				Pattern:    det.Fabric.Pattern,
				Width:      det.Fabric.Width,
				Length:     det.Fabric.Length,
				Color:      det.Fabric.Color,
			}
		}
	case entity.CategoryKindFrameStructure:
		if det.FrameStructure != nil {
			out.FrameStructure = &FrameStructureDetailsDTO{
				FrameType:  det.FrameStructure.FrameType,
				Material:   det.FrameStructure.Material,
				Dimensions: det.FrameStructure.Dimensions,
			}
		}
	case entity.CategoryKindCarpet:
		if det.Carpet != nil {
			out.Carpet = &CarpetDetailsDTO{CarpetType: det.Carpet.CarpetType, Material: det.Carpet.Material, Size: det.Carpet.Size}
		}
	case entity.CategoryKindThermocol:
		if det.Thermocol != nil {
			out.Thermocol = &ThermocolDetailsDTO{
				ThermocolType: det.Thermocol.ThermocolType,
				Dimensions:    det.Thermocol.Dimensions,
				Density:       det.Thermocol.Density,
			}
		}
	case entity.CategoryKindStationery:
		if det.Stationery != nil {
			out.Stationery = &StationeryDetailsDTO{Specifications: det.Stationery.Specifications}
		}
	case entity.CategoryKindMurtiSet:
		if det.MurtiSet != nil {
			out.MurtiSet = &MurtiSetDetailsDTO{
				SetNumber:  det.MurtiSet.SetNumber,
				Material:   det.MurtiSet.Material,
				Dimensions: det.MurtiSet.Dimensions,
			}
		}
	}
	return out
}
