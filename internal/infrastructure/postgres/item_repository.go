package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Eventos-api/internal/domain"
	"github.com/jhoicas/Eventos-api/internal/domain/entity"
	"github.com/jhoicas/Eventos-api/internal/domain/repository"
)

var _ repository.ItemRepository = (*ItemRepo)(nil)

// ItemRepo implementación de ItemRepository sobre PostgreSQL (usable con pool
// o tx). Los detalles por categoría viven en tablas separadas, una por kind,
// con upsert por item_id.
type ItemRepo struct {
	q Querier
}

// NewItemRepository construye el adaptador de ítems. Pasar pool o tx (Querier).
func NewItemRepository(q Querier) *ItemRepo {
	return &ItemRepo{q: q}
}

// Create persiste un ítem de inventario.
func (r *ItemRepo) Create(item *entity.InventoryItem) error {
	query := `
		INSERT INTO inventory_items (id, name, category_id, unit, storage_location, notes, item_image, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		item.ID, item.Name, item.CategoryID, item.Unit,
		item.StorageLocation, item.Notes, item.ItemImage, item.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("create item: %w", err)
	}
	return nil
}

// GetByID obtiene un ítem por ID.
func (r *ItemRepo) GetByID(id string) (*entity.InventoryItem, error) {
	query := `
		SELECT id, name, category_id, unit, COALESCE(storage_location, ''),
		       COALESCE(notes, ''), COALESCE(item_image, ''), created_at
		FROM inventory_items WHERE id = $1`
	var item entity.InventoryItem
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&item.ID, &item.Name, &item.CategoryID, &item.Unit,
		&item.StorageLocation, &item.Notes, &item.ItemImage, &item.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get item: %w", err)
	}
	return &item, nil
}

// List lista los ítems con el nombre y kind de su categoría.
func (r *ItemRepo) List() ([]*repository.ItemView, error) {
	query := `
		SELECT i.id, i.name, i.category_id, i.unit, COALESCE(i.storage_location, ''),
		       COALESCE(i.notes, ''), COALESCE(i.item_image, ''), i.created_at,
		       COALESCE(c.name, ''), COALESCE(c.kind, '')
		FROM inventory_items i
		LEFT JOIN categories c ON c.id = i.category_id
		ORDER BY i.name`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	defer rows.Close()
	var list []*repository.ItemView
	for rows.Next() {
		var v repository.ItemView
		if err := rows.Scan(&v.Item.ID, &v.Item.Name, &v.Item.CategoryID, &v.Item.Unit,
			&v.Item.StorageLocation, &v.Item.Notes, &v.Item.ItemImage, &v.Item.CreatedAt,
			&v.CategoryName, &v.CategoryKind); err != nil {
			return nil, fmt.Errorf("scan item: %w", err)
		}
		list = append(list, &v)
	}
	return list, rows.Err()
}

// Update modifica los campos editables del ítem (la categoría no cambia).
func (r *ItemRepo) Update(item *entity.InventoryItem) error {
	query := `
		UPDATE inventory_items
		SET name = $2, unit = $3, storage_location = $4, notes = $5, item_image = $6
		WHERE id = $1`
	tag, err := r.q.Exec(context.Background(), query,
		item.ID, item.Name, item.Unit, item.StorageLocation, item.Notes, item.ItemImage,
	)
	if err != nil {
		return fmt.Errorf("update item: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina el ítem. Detalles, stock y el stock del log caen por las FK en cascada.
func (r *ItemRepo) Delete(id string) error {
	if _, err := r.q.Exec(context.Background(), `DELETE FROM inventory_items WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete item: %w", err)
	}
	return nil
}

// SaveDetails inserta o actualiza el registro de detalles del kind del ítem.
func (r *ItemRepo) SaveDetails(itemID string, details *entity.CategoryDetails) error {
	ctx := context.Background()
	var err error
	switch details.Kind {
	case entity.CategoryKindFurniture:
		_, err = r.q.Exec(ctx, `
			INSERT INTO furniture_details (item_id, material, dimensions)
			VALUES ($1, $2, $3)
			ON CONFLICT (item_id) DO UPDATE SET material = EXCLUDED.material, dimensions = EXCLUDED.dimensions`,
			itemID, details.Furniture.Material, details.Furniture.Dimensions)
	case entity.CategoryKindFabric:
		_, err = r.q.Exec(ctx, `
			INSERT INTO fabric_details (item_id, fabric_type, pattern, width, length, color)
			VALUES ($1, $2, $3, $4, $5, $6)
			ON CONFLICT (item_id) DO UPDATE SET fabric_type = EXCLUDED.fabric_type, pattern = EXCLUDED.pattern,
				width = EXCLUDED.width, length = EXCLUDED.length, color = EXCLUDED.color`,
			itemID, details.Fabric.FabricType, details.Fabric.Pattern,
			details.Fabric.Width, details.Fabric.Length, details.Fabric.Color)
	case entity.CategoryKindFrameStructure:
		_, err = r.q.Exec(ctx, `
			INSERT INTO frame_structure_details (item_id, frame_type, material, dimensions)
			VALUES ($1, $2, $3, $4)
			ON CONFLICT (item_id) DO UPDATE SET frame_type = EXCLUDED.frame_type, material = EXCLUDED.material,
				dimensions = EXCLUDED.dimensions`,
			itemID, details.FrameStructure.FrameType, details.FrameStructure.Material, details.FrameStructure.Dimensions)
	case entity.CategoryKindCarpet:
		_, err = r.q.Exec(ctx, `
			INSERT INTO carpet_details (item_id, carpet_type, material, size)
			VALUES ($1, $2, $3, $4)
			ON CONFLICT (item_id) DO UPDATE SET carpet_type = EXCLUDED.carpet_type, material = EXCLUDED.material,
				size = EXCLUDED.size`,
			itemID, details.Carpet.CarpetType, details.Carpet.Material, details.Carpet.Size)
	case entity.CategoryKindThermocol:
		_, err = r.q.Exec(ctx, `
			INSERT INTO thermocol_details (item_id, thermocol_type, dimensions, density)
			VALUES ($1, $2, $3, $4)
			ON CONFLICT (item_id) DO UPDATE SET thermocol_type = EXCLUDED.thermocol_type,
				dimensions = EXCLUDED.dimensions, density = EXCLUDED.density`,
			itemID, details.Thermocol.ThermocolType, details.Thermocol.Dimensions, details.Thermocol.Density)
	case entity.CategoryKindStationery:
		_, err = r.q.Exec(ctx, `
			INSERT INTO stationery_details (item_id, specifications)
			VALUES ($1, $2)
			ON CONFLICT (item_id) DO UPDATE SET specifications = EXCLUDED.specifications`,
			itemID, details.Stationery.Specifications)
	case entity.CategoryKindMurtiSet:
		_, err = r.q.Exec(ctx, `
			INSERT INTO murti_set_details (item_id, set_number, material, dimensions)
			VALUES ($1, $2, $3, $4)
			ON CONFLICT (item_id) DO UPDATE SET set_number = EXCLUDED.set_number, material = EXCLUDED.material,
				dimensions = EXCLUDED.dimensions`,
			itemID, details.MurtiSet.SetNumber, details.MurtiSet.Material, details.MurtiSet.Dimensions)
	default:
		return fmt.Errorf("%w: kind de detalles desconocido %q", domain.ErrInvalidInput, details.Kind)
	}
	if err != nil {
		return fmt.Errorf("save details (%s): %w", details.Kind, err)
	}
	return nil
}

// GetDetails obtiene los detalles del ítem para el kind dado; (nil, nil) si no hay fila.
func (r *ItemRepo) GetDetails(itemID, kind string) (*entity.CategoryDetails, error) {
	ctx := context.Background()
	out := &entity.CategoryDetails{Kind: kind}
	var err error
	switch kind {
	case entity.CategoryKindFurniture:
		d := &entity.FurnitureDetails{}
		err = r.q.QueryRow(ctx, `
			SELECT COALESCE(material, ''), COALESCE(dimensions, '')
			FROM furniture_details WHERE item_id = $1`, itemID).Scan(&d.Material, &d.Dimensions)
		out.Furniture = d
	case entity.CategoryKindFabric:
		d := &entity.FabricDetails{}
		err = r.q.QueryRow(ctx, `
			SELECT COALESCE(fabric_type, ''), COALESCE(pattern, ''), COALESCE(width, 0),
			       COALESCE(length, 0), COALESCE(color, '')
			FROM fabric_details WHERE item_id = $1`, itemID).Scan(
			&d.FabricType, &d.Pattern, &d.Width, &d.Length, &d.Color)
		out.Fabric = d
	case entity.CategoryKindFrameStructure:
		d := &entity.FrameStructureDetails{}
		err = r.q.QueryRow(ctx, `
			SELECT COALESCE(frame_type, ''), COALESCE(material, ''), COALESCE(dimensions, '')
			FROM frame_structure_details WHERE item_id = $1`, itemID).Scan(
			&d.FrameType, &d.Material, &d.Dimensions)
		out.FrameStructure = d
	case entity.CategoryKindCarpet:
		d := &entity.CarpetDetails{}
		err = r.q.QueryRow(ctx, `
			SELECT COALESCE(carpet_type, ''), COALESCE(material, ''), COALESCE(size, '')
			FROM carpet_details WHERE item_id = $1`, itemID).Scan(&d.CarpetType, &d.Material, &d.Size)
		out.Carpet = d
	case entity.CategoryKindThermocol:
		d := &entity.ThermocolDetails{}
		err = r.q.QueryRow(ctx, `
			SELECT COALESCE(thermocol_type, ''), COALESCE(dimensions, ''), COALESCE(density, '')
			FROM thermocol_details WHERE item_id = $1`, itemID).Scan(
			&d.ThermocolType, &d.Dimensions, &d.Density)
		out.Thermocol = d
	case entity.CategoryKindStationery:
		d := &entity.StationeryDetails{}
		err = r.q.QueryRow(ctx, `
			SELECT COALESCE(specifications, '')
			FROM stationery_details WHERE item_id = $1`, itemID).Scan(&d.Specifications)
		out.Stationery = d
	case entity.CategoryKindMurtiSet:
		d := &entity.MurtiSetDetails{}
		err = r.q.QueryRow(ctx, `
			SELECT COALESCE(set_number, 0), COALESCE(material, ''), COALESCE(dimensions, '')
			FROM murti_set_details WHERE item_id = $1`, itemID).Scan(
			&d.SetNumber, &d.Material, &d.Dimensions)
		out.MurtiSet = d
	default:
		return nil, nil
	}
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get details (%s): %w", kind, err)
	}
	return out, nil
}
