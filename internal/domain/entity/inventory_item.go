package entity

import "time"

// InventoryItem es un material del inventario de decoración. La identidad es
// inmutable y la categoría queda fijada en la creación.
type InventoryItem struct {
	ID              string
	Name            string
	CategoryID      string
	Unit            string // unidad de medida: metros, piezas, kg...
	StorageLocation string
	Notes           string
	ItemImage       string // ruta/URL de la imagen; el almacenamiento físico es externo
	CreatedAt       time.Time
}
