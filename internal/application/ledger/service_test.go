package ledger_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Eventos-api/internal/application/ledger"
	"github.com/jhoicas/Eventos-api/internal/domain"
)

func newTestService(t *testing.T) (*ledger.InventoryService, *fakeStore, *fakeStore) {
	t.Helper()
	materiales := newFakeStore()
	herramientas := newFakeStore()
	mEngine := ledger.NewEngine(&fakeTxRunner{materiales}, &fakeStockRepo{materiales}, &fakeIssuanceRepo{materiales})
	tEngine := ledger.NewEngine(&fakeTxRunner{herramientas}, &fakeStockRepo{herramientas}, &fakeIssuanceRepo{herramientas})
	return ledger.NewInventoryService(mEngine, tEngine), materiales, herramientas
}

func TestDeductMaterialStock_Descuenta(t *testing.T) {
	svc, materiales, _ := newTestService(t)
	seedStock(materiales, "tela", 40)

	stock, err := svc.DeductMaterialStock(context.Background(), "tela", dec(15))
	require.NoError(t, err)

	assert.True(t, stock.QuantityAvailable.Equal(dec(25)))
	assert.True(t, materiales.stockOf(t, "tela").Equal(dec(25)), "la deducción debe persistir")
	_, iss := materiales.snapshot()
	assert.Empty(t, iss, "la fachada no escribe en el log de transacciones")
}

func TestDeductMaterialStock_Insuficiente(t *testing.T) {
	svc, materiales, _ := newTestService(t)
	seedStock(materiales, "tela", 10)

	_, err := svc.DeductMaterialStock(context.Background(), "tela", dec(11))
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.True(t, materiales.stockOf(t, "tela").Equal(dec(10)), "el stock no debe cambiar tras el rechazo")
}

func TestDeductToolStock_UsaElMotorDeHerramientas(t *testing.T) {
	svc, materiales, herramientas := newTestService(t)
	seedStock(herramientas, "taladro", 5)
	seedStock(materiales, "taladro", 99) // homónimo en materiales: no debe tocarse

	stock, err := svc.DeductToolStock(context.Background(), "taladro", dec(2))
	require.NoError(t, err)

	assert.True(t, stock.QuantityAvailable.Equal(dec(3)))
	assert.True(t, herramientas.stockOf(t, "taladro").Equal(dec(3)))
	assert.True(t, materiales.stockOf(t, "taladro").Equal(dec(99)), "el libro de materiales queda intacto")
}

func TestDeductToolStock_CantidadInvalida(t *testing.T) {
	svc, _, herramientas := newTestService(t)
	seedStock(herramientas, "escalera", 4)

	_, err := svc.DeductToolStock(context.Background(), "escalera", dec(0))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	_, err = svc.DeductToolStock(context.Background(), "escalera", dec(-3))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
