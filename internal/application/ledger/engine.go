// Package ledger implementa el motor del libro de inventario: la única
// autoridad que mantiene quantity_available consistente con la suma de los
// efectos de las transacciones confirmadas de cada ítem.
//
// Cada operación mutadora corre dentro de una transacción de BD (TxRunner)
// y bloquea la fila de stock con SELECT FOR UPDATE antes de calcular el nuevo
// saldo, de modo que dos salidas concurrentes del mismo ítem nunca lean la
// misma cantidad previa. Ítems distintos no se bloquean entre sí.
package ledger

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Eventos-api/internal/domain"
	"github.com/jhoicas/Eventos-api/internal/domain/entity"
	"github.com/jhoicas/Eventos-api/internal/domain/repository"
)

// Engine aplica transacciones IN/OUT al stock de forma atómica. Se instancia
// una vez para materiales y una vez para herramientas, con runners y
// repositorios atados a sus tablas respectivas.
type Engine struct {
	tx        TxRunner
	stocks    repository.StockRepository   // lecturas fuera de transacción
	issuances repository.IssuanceRepository
}

// NewEngine construye el motor.
func NewEngine(tx TxRunner, stocks repository.StockRepository, issuances repository.IssuanceRepository) *Engine {
	return &Engine{tx: tx, stocks: stocks, issuances: issuances}
}

// TransactionInput entrada para CreateTransaction.
type TransactionInput struct {
	ItemID   string
	Type     string // IN | OUT
	Quantity decimal.Decimal
	EventID  *string
	Notes    string
}

// UpdateInput entrada para UpdateTransaction. Los punteros nil dejan el campo
// original sin cambio. EventID solo se escribe cuando SetEventID es true;
// así un EventID nil con SetEventID desasocia la transacción de su evento.
type UpdateInput struct {
	ID         string
	ItemID     *string
	Type       *string
	Quantity   *decimal.Decimal
	EventID    *string
	SetEventID bool
	Notes      *string
}

// TransactionResult transacción persistida más la foto del stock afectado.
// StockBefore/StockAfter corresponden al ítem destino del efecto aplicado.
type TransactionResult struct {
	Issuance    *entity.Issuance
	StockBefore decimal.Decimal
	StockAfter  decimal.Decimal
}

// GetStock devuelve la fila de stock de un ítem o ErrNotFound.
func (e *Engine) GetStock(ctx context.Context, itemID string) (*entity.Stock, error) {
	if itemID == "" {
		return nil, fmt.Errorf("%w: item_id requerido", domain.ErrInvalidInput)
	}
	stock, err := e.stocks.Get(itemID)
	if err != nil {
		return nil, err
	}
	if stock == nil {
		return nil, fmt.Errorf("%w: stock del ítem %s", domain.ErrNotFound, itemID)
	}
	return stock, nil
}

// CreateStock crea la fila de stock de un ítem con la cantidad inicial dada
// (cero si initial es zero value). Falla con ErrDuplicate si ya existe.
func (e *Engine) CreateStock(ctx context.Context, itemID string, initial decimal.Decimal) (*entity.Stock, error) {
	if itemID == "" {
		return nil, fmt.Errorf("%w: item_id requerido", domain.ErrInvalidInput)
	}
	if initial.IsNegative() {
		return nil, fmt.Errorf("%w: la cantidad inicial no puede ser negativa", domain.ErrInvalidInput)
	}
	stock := &entity.Stock{
		ItemID:            itemID,
		QuantityAvailable: initial,
		UpdatedAt:         time.Now(),
	}
	if err := e.stocks.Create(stock); err != nil {
		return nil, err
	}
	return stock, nil
}

// CreateTransaction valida, inserta la transacción en el log y aplica su
// efecto al stock, todo dentro de una transacción de BD. Para OUT la
// disponibilidad se pre-verifica y se re-valida con la fila bloqueada dentro
// de applyEffect, de modo que dos OUT concurrentes no puedan sobre-emitir.
func (e *Engine) CreateTransaction(ctx context.Context, in TransactionInput) (*TransactionResult, error) {
	if err := validateInput(in.ItemID, in.Type, in.Quantity); err != nil {
		return nil, err
	}

	// Pre-chequeo fuera de la tx: falla rápido con mensaje preciso. La
	// verificación autoritativa ocurre igualmente sobre la fila bloqueada.
	current, err := e.GetStock(ctx, in.ItemID)
	if err != nil {
		return nil, err
	}
	if in.Type == entity.TransactionTypeOUT && current.QuantityAvailable.LessThan(in.Quantity) {
		return nil, &domain.StockShortageError{
			ItemID:    in.ItemID,
			Requested: in.Quantity,
			Available: current.QuantityAvailable,
		}
	}

	iss := &entity.Issuance{
		ID:        uuid.New().String(),
		ItemID:    in.ItemID,
		Type:      in.Type,
		Quantity:  in.Quantity,
		EventID:   in.EventID,
		Notes:     in.Notes,
		CreatedAt: time.Now(),
	}

	var result TransactionResult
	err = e.tx.Run(ctx, func(issuances repository.IssuanceRepository, stocks repository.StockRepository) error {
		if err := issuances.Create(iss); err != nil {
			return err
		}
		before, after, err := applyEffect(stocks, in.ItemID, in.Type, in.Quantity)
		if err != nil {
			return err
		}
		result = TransactionResult{Issuance: iss, StockBefore: before, StockAfter: after}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// UpdateTransaction corrige una transacción en sitio. Primero aplica el
// inverso del efecto original sobre el ítem original (restaura el stock como
// si la transacción nunca hubiera ocurrido) y luego aplica el efecto nuevo,
// que puede apuntar a otro ítem. Ambos pasos ocurren sobre filas bloqueadas en
// la misma transacción de BD. Si el efecto nuevo dejaría el stock negativo,
// todo (incluida la reversión ya aplicada) se revierte.
//
// Caso especial: si la corrección ES la reversión lógica del original (mismo
// ítem, cantidad igual, tipo opuesto — p.ej. OUT 50 corregido a IN 50, "el
// material volvió"), aplicar reversión y efecto nuevo como dos deltas
// independientes abonaría la cantidad dos veces. En ese caso el motor aplica
// la reversión una sola vez y el stock queda exactamente en su valor
// pre-transacción (ley de conservación de cantidad).
func (e *Engine) UpdateTransaction(ctx context.Context, in UpdateInput) (*TransactionResult, error) {
	if in.ID == "" {
		return nil, fmt.Errorf("%w: id requerido", domain.ErrInvalidInput)
	}

	var result TransactionResult
	err := e.tx.Run(ctx, func(issuances repository.IssuanceRepository, stocks repository.StockRepository) error {
		original, err := issuances.GetByID(in.ID)
		if err != nil {
			return err
		}
		if original == nil {
			return fmt.Errorf("%w: transacción %s", domain.ErrNotFound, in.ID)
		}

		updated := *original
		if in.ItemID != nil {
			updated.ItemID = *in.ItemID
		}
		if in.Type != nil {
			updated.Type = *in.Type
		}
		if in.Quantity != nil {
			updated.Quantity = *in.Quantity
		}
		if in.SetEventID {
			updated.EventID = in.EventID
		}
		if in.Notes != nil {
			updated.Notes = *in.Notes
		}
		if err := validateInput(updated.ItemID, updated.Type, updated.Quantity); err != nil {
			return err
		}

		var before, after decimal.Decimal
		if isLogicalReversal(original, &updated) {
			// La corrección deshace el original: una sola reversión, sin
			// reaplicar, para no contar el efecto dos veces.
			before, after, err = applyEffect(stocks, original.ItemID, inverseType(original.Type), original.Quantity)
			if err != nil {
				return err
			}
		} else {
			// Revertir el efecto original sobre el ítem original.
			if _, _, err := applyEffect(stocks, original.ItemID, inverseType(original.Type), original.Quantity); err != nil {
				return err
			}
			// Aplicar el efecto nuevo (posiblemente sobre otro ítem).
			before, after, err = applyEffect(stocks, updated.ItemID, updated.Type, updated.Quantity)
			if err != nil {
				return err
			}
		}

		if err := issuances.Update(&updated); err != nil {
			return err
		}
		result = TransactionResult{Issuance: &updated, StockBefore: before, StockAfter: after}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// DeleteTransaction revierte el efecto de la transacción sobre su stock y
// elimina la fila del log; ambos confirman o revierten juntos.
func (e *Engine) DeleteTransaction(ctx context.Context, id string) (*TransactionResult, error) {
	if id == "" {
		return nil, fmt.Errorf("%w: id requerido", domain.ErrInvalidInput)
	}

	var result TransactionResult
	err := e.tx.Run(ctx, func(issuances repository.IssuanceRepository, stocks repository.StockRepository) error {
		iss, err := issuances.GetByID(id)
		if err != nil {
			return err
		}
		if iss == nil {
			return fmt.Errorf("%w: transacción %s", domain.ErrNotFound, id)
		}
		before, after, err := applyEffect(stocks, iss.ItemID, inverseType(iss.Type), iss.Quantity)
		if err != nil {
			return err
		}
		if err := issuances.Delete(id); err != nil {
			return err
		}
		result = TransactionResult{Issuance: iss, StockBefore: before, StockAfter: after}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// Deduct descuenta qty del stock del ítem sin escribir en el log de
// transacciones (camino del flujo de emisión a eventos, que lleva su propio
// registro). Misma aritmética y mismos bloqueos que CreateTransaction.
func (e *Engine) Deduct(ctx context.Context, itemID string, qty decimal.Decimal) (*entity.Stock, error) {
	if itemID == "" {
		return nil, fmt.Errorf("%w: item_id requerido", domain.ErrInvalidInput)
	}
	if !qty.GreaterThan(decimal.Zero) {
		return nil, fmt.Errorf("%w: la cantidad debe ser un número positivo", domain.ErrInvalidInput)
	}

	var after decimal.Decimal
	err := e.tx.Run(ctx, func(_ repository.IssuanceRepository, stocks repository.StockRepository) error {
		_, a, err := applyEffect(stocks, itemID, entity.TransactionTypeOUT, qty)
		after = a
		return err
	})
	if err != nil {
		return nil, err
	}
	return &entity.Stock{ItemID: itemID, QuantityAvailable: after, UpdatedAt: time.Now()}, nil
}

// ListTransactions lista transacciones (más recientes primero), opcionalmente
// filtradas por evento. Limit <= 0 devuelve la secuencia completa; la
// paginación la decide el borde HTTP. Lectura sin bloqueo.
func (e *Engine) ListTransactions(ctx context.Context, filter repository.IssuanceFilter) ([]*entity.Issuance, error) {
	return e.issuances.List(filter)
}

// applyEffect es la primitiva apply: lee la fila de stock bloqueada, calcula
// el nuevo saldo según el tipo y lo persiste. OUT resta; IN suma. Nunca deja
// un saldo negativo: el rechazo llega como StockShortageError y la fila queda
// intacta (la tx del caller hace el rollback).
func applyEffect(stocks repository.StockRepository, itemID, txType string, qty decimal.Decimal) (before, after decimal.Decimal, err error) {
	if qty.IsNegative() {
		return decimal.Zero, decimal.Zero, fmt.Errorf("%w: cantidad negativa", domain.ErrInvalidInput)
	}
	stock, err := stocks.GetForUpdate(itemID)
	if err != nil {
		return decimal.Zero, decimal.Zero, err
	}
	if stock == nil {
		return decimal.Zero, decimal.Zero, fmt.Errorf("%w: stock del ítem %s", domain.ErrNotFound, itemID)
	}

	before = stock.QuantityAvailable
	switch txType {
	case entity.TransactionTypeOUT:
		after = before.Sub(qty)
		if after.IsNegative() {
			return decimal.Zero, decimal.Zero, &domain.StockShortageError{
				ItemID:    itemID,
				Requested: qty,
				Available: before,
			}
		}
	case entity.TransactionTypeIN:
		after = before.Add(qty)
	default:
		return decimal.Zero, decimal.Zero, fmt.Errorf("%w: tipo de transacción %q", domain.ErrInvalidInput, txType)
	}

	stock.QuantityAvailable = after
	stock.UpdatedAt = time.Now()
	if err := stocks.Update(stock); err != nil {
		return decimal.Zero, decimal.Zero, err
	}
	return before, after, nil
}

// isLogicalReversal reporta si la corrección equivale a deshacer el original:
// mismo ítem, misma cantidad y tipo opuesto.
func isLogicalReversal(original, updated *entity.Issuance) bool {
	return original.ItemID == updated.ItemID &&
		original.Quantity.Equal(updated.Quantity) &&
		updated.Type == inverseType(original.Type)
}

// inverseType devuelve el tipo que deshace el efecto de t.
func inverseType(t string) string {
	if t == entity.TransactionTypeOUT {
		return entity.TransactionTypeIN
	}
	return entity.TransactionTypeOUT
}

func validateInput(itemID, txType string, qty decimal.Decimal) error {
	if itemID == "" {
		return fmt.Errorf("%w: item_id requerido", domain.ErrInvalidInput)
	}
	if !entity.ValidTransactionType(txType) {
		return fmt.Errorf("%w: el tipo debe ser IN u OUT", domain.ErrInvalidInput)
	}
	if !qty.GreaterThan(decimal.Zero) {
		return fmt.Errorf("%w: la cantidad debe ser un número positivo", domain.ErrInvalidInput)
	}
	return nil
}
