package inventory_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/almacen-api/internal/domain"
)

// ──────────────────────────────────────────────────────────────────────────────
// Tests del ledger de stock: consultar, fijar y ajustar cantidades. La
// ausencia de fila equivale a cantidad cero y nunca se permite una cantidad
// negativa.
// ──────────────────────────────────────────────────────────────────────────────

func TestGetQuantity_SinFilaEsCero(t *testing.T) {
	f := newFixture()
	seedBasics(f)

	qty, err := f.ledgerUC.GetQuantity(context.Background(), prodID, whMain)
	require.NoError(t, err, "consultar un par sin fila no es un error")
	assert.Equal(t, int64(0), qty, "la ausencia de fila significa cero stock")
}

func TestSetQuantity_CreaYActualiza(t *testing.T) {
	f := newFixture()
	seedBasics(f)
	ctx := context.Background()

	require.NoError(t, f.ledgerUC.SetQuantity(ctx, prodID, whMain, 40),
		"el primer set crea la fila")
	assert.Equal(t, int64(40), f.store.quantity(prodID, whMain))

	require.NoError(t, f.ledgerUC.SetQuantity(ctx, prodID, whMain, 15),
		"el segundo set actualiza en sitio")
	assert.Equal(t, int64(15), f.store.quantity(prodID, whMain))
}

func TestSetQuantity_CeroEsValido(t *testing.T) {
	f := newFixture()
	seedBasics(f)
	f.store.setStock(prodID, whMain, 50)

	require.NoError(t, f.ledgerUC.SetQuantity(context.Background(), prodID, whMain, 0))
	assert.Equal(t, int64(0), f.store.quantity(prodID, whMain))
}

func TestSetQuantity_NegativaRechazada(t *testing.T) {
	f := newFixture()
	seedBasics(f)
	f.store.setStock(prodID, whMain, 50)

	err := f.ledgerUC.SetQuantity(context.Background(), prodID, whMain, -1)
	assert.ErrorIs(t, err, domain.ErrInvalidQuantity)
	assert.Equal(t, int64(50), f.store.quantity(prodID, whMain), "la fila queda intacta")
}

func TestSetQuantity_ReferenciasInexistentes(t *testing.T) {
	f := newFixture()
	seedBasics(f)

	err := f.ledgerUC.SetQuantity(context.Background(), "no-existe", whMain, 10)
	assert.ErrorIs(t, err, domain.ErrNotFound, "producto inexistente debe rechazarse")

	err = f.ledgerUC.SetQuantity(context.Background(), prodID, "no-existe", 10)
	assert.ErrorIs(t, err, domain.ErrNotFound, "bodega inexistente debe rechazarse")
}

// ── Ajustes por delta ─────────────────────────────────────────────────────────

func TestAdjust_PositivoYNegativo(t *testing.T) {
	f := newFixture()
	seedBasics(f)
	f.store.setStock(prodID, whMain, 10)
	ctx := context.Background()

	qty, err := f.ledgerUC.Adjust(ctx, prodID, whMain, 15)
	require.NoError(t, err)
	assert.Equal(t, int64(25), qty)

	qty, err = f.ledgerUC.Adjust(ctx, prodID, whMain, -25)
	require.NoError(t, err)
	assert.Equal(t, int64(0), qty, "ajustar exactamente a cero es válido")
}

func TestAdjust_SinFilaParteDeCero(t *testing.T) {
	f := newFixture()
	seedBasics(f)

	qty, err := f.ledgerUC.Adjust(context.Background(), prodID, whMain, 7)
	require.NoError(t, err, "ajustar sin fila previa parte de cero y la crea")
	assert.Equal(t, int64(7), qty)
}

func TestAdjust_ResultadoNegativoRechazado(t *testing.T) {
	f := newFixture()
	seedBasics(f)
	f.store.setStock(prodID, whMain, 10)

	_, err := f.ledgerUC.Adjust(context.Background(), prodID, whMain, -11)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	var insufficient *domain.InsufficientStockError
	require.ErrorAs(t, err, &insufficient)
	assert.Equal(t, int64(10), insufficient.Available, "el error reporta lo disponible")

	assert.Equal(t, int64(10), f.store.quantity(prodID, whMain),
		"el rechazo es total: la fila no cambia")
}
