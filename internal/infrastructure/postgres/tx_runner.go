package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/Eventos-api/internal/application/ledger"
	"github.com/jhoicas/Eventos-api/internal/application/usecase"
	"github.com/jhoicas/Eventos-api/internal/domain/repository"
)

var _ ledger.TxRunner = (*MaterialTxRunner)(nil)
var _ ledger.TxRunner = (*ToolTxRunner)(nil)
var _ usecase.CatalogTxRunner = (*CatalogTxRunner)(nil)

// MaterialTxRunner ejecuta callbacks del libro de materiales dentro de una
// transacción PostgreSQL, con repos atados a la tx (material_issuances +
// inventory_stock).
type MaterialTxRunner struct {
	pool *pgxpool.Pool
}

// NewMaterialTxRunner construye el runner con el pool.
func NewMaterialTxRunner(pool *pgxpool.Pool) *MaterialTxRunner {
	return &MaterialTxRunner{pool: pool}
}

// Run inicia una transacción, ejecuta fn con repos atados a la tx y hace Commit o Rollback.
func (r *MaterialTxRunner) Run(ctx context.Context, fn func(
	issuances repository.IssuanceRepository,
	stocks repository.StockRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(NewMaterialIssuanceRepository(tx), NewStockRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// ToolTxRunner igual que MaterialTxRunner pero sobre el libro de herramientas
// (tool_issuances + tool_inventory).
type ToolTxRunner struct {
	pool *pgxpool.Pool
}

// NewToolTxRunner construye el runner con el pool.
func NewToolTxRunner(pool *pgxpool.Pool) *ToolTxRunner {
	return &ToolTxRunner{pool: pool}
}

// Run inicia una transacción, ejecuta fn con repos atados a la tx y hace Commit o Rollback.
func (r *ToolTxRunner) Run(ctx context.Context, fn func(
	issuances repository.IssuanceRepository,
	stocks repository.StockRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(NewToolIssuanceRepository(tx), NewToolStockRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// CatalogTxRunner transacciones para la creación atómica de un ítem con sus
// detalles y su fila de stock.
type CatalogTxRunner struct {
	pool *pgxpool.Pool
}

// NewCatalogTxRunner construye el runner con el pool.
func NewCatalogTxRunner(pool *pgxpool.Pool) *CatalogTxRunner {
	return &CatalogTxRunner{pool: pool}
}

// Run inicia una transacción, ejecuta fn con repos atados a la tx y hace Commit o Rollback.
func (r *CatalogTxRunner) Run(ctx context.Context, fn func(
	items repository.ItemRepository,
	stocks repository.StockRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(NewItemRepository(tx), NewStockRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
