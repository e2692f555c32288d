package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Kinds de categoría conocidos. Los detalles por categoría se resuelven por
// este identificador estable, nunca por coincidencia del nombre en minúsculas.
const (
	CategoryKindFurniture      = "furniture"
	CategoryKindFabric         = "fabric"
	CategoryKindFrameStructure = "frame_structure"
	CategoryKindCarpet         = "carpet"
	CategoryKindThermocol      = "thermocol"
	CategoryKindStationery     = "stationery"
	CategoryKindMurtiSet       = "murti_set"
)

// ValidCategoryKind reporta si kind es uno de los kinds cerrados conocidos.
func ValidCategoryKind(kind string) bool {
	switch kind {
	case CategoryKindFurniture, CategoryKindFabric, CategoryKindFrameStructure,
		CategoryKindCarpet, CategoryKindThermocol, CategoryKindStationery,
		CategoryKindMurtiSet:
		return true
	}
	return false
}

// Category clasifica ítems de inventario. Kind determina qué tabla de
// detalles aplica al ítem.
type Category struct {
	ID        string
	Name      string
	Kind      string
	CreatedAt time.Time
}

// CategoryDetails es la unión etiquetada de los detalles por categoría de un
// ítem: Kind indica cuál de los punteros está poblado.
type CategoryDetails struct {
	Kind           string
	Furniture      *FurnitureDetails
	Fabric         *FabricDetails
	FrameStructure *FrameStructureDetails
	Carpet         *CarpetDetails
	Thermocol      *ThermocolDetails
	Stationery     *StationeryDetails
	MurtiSet       *MurtiSetDetails
}

// FurnitureDetails detalles de mobiliario.
type FurnitureDetails struct {
	Material   string
	Dimensions string
}

// FabricDetails detalles de telas.
type FabricDetails struct {
	FabricType string
	Pattern    string
	Width      decimal.Decimal
	Length     decimal.Decimal
	Color      string
}

// FrameStructureDetails detalles de estructuras/marcos.
type FrameStructureDetails struct {
	FrameType  string
	Material   string
	Dimensions string
}

// CarpetDetails detalles de alfombras.
type CarpetDetails struct {
	CarpetType string
	Material   string
	Size       string
}

// ThermocolDetails detalles de materiales de termocol.
type ThermocolDetails struct {
	ThermocolType string
	Dimensions    string
	Density       string
}

// StationeryDetails detalles de papelería.
type StationeryDetails struct {
	Specifications string
}

// MurtiSetDetails detalles de sets de murti.
type MurtiSetDetails struct {
	SetNumber  int
	Material   string
	Dimensions string
}
