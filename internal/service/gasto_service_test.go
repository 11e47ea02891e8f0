package service

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathanEDR/gestorappb/internal/dto"
	"github.com/jonathanEDR/gestorappb/internal/ledger"
	"github.com/jonathanEDR/gestorappb/internal/model"
)

func gastoSvc() GastoService {
	return NewGastoService(newStubGastoRepo())
}

func TestCrearGastoCalculaMontoTotal(t *testing.T) {
	svc := gastoSvc()

	resp, err := svc.Crear(context.Background(), testUserID, dto.CrearGastoRequest{
		TipoDeGasto: model.GastoMateriaPrima,
		Area:        model.DepartamentoProduccion,
		Descripcion: "Harina",
		CostoUnidad: decimal.NewFromInt(35),
		Cantidad:    4,
	})
	require.NoError(t, err)
	assert.True(t, resp.MontoTotal.Equal(decimal.NewFromInt(140)))
	assert.Equal(t, model.GastoMateriaPrima, resp.TipoDeGasto)
}

func TestCrearGastoCostoNegativo(t *testing.T) {
	svc := gastoSvc()

	_, err := svc.Crear(context.Background(), testUserID, dto.CrearGastoRequest{
		TipoDeGasto: model.GastoOtros,
		Area:        model.DepartamentoVentas,
		Descripcion: "Ajuste",
		CostoUnidad: decimal.NewFromInt(-5),
		Cantidad:    1,
	})
	require.Error(t, err)
	assert.Equal(t, ledger.KindValidation, ledger.KindOf(err))
}

func TestListarGastosSoloDelUsuario(t *testing.T) {
	repo := newStubGastoRepo()
	svc := NewGastoService(repo)

	_, err := svc.Crear(context.Background(), testUserID, dto.CrearGastoRequest{
		TipoDeGasto: model.GastoOtros,
		Area:        model.DepartamentoVentas,
		Descripcion: "Pasajes",
		CostoUnidad: decimal.NewFromInt(10),
		Cantidad:    2,
	})
	require.NoError(t, err)
	_, err = svc.Crear(context.Background(), "otro-usuario", dto.CrearGastoRequest{
		TipoDeGasto: model.GastoOtros,
		Area:        model.DepartamentoVentas,
		Descripcion: "Pasajes",
		CostoUnidad: decimal.NewFromInt(10),
		Cantidad:    1,
	})
	require.NoError(t, err)

	gastos, err := svc.Listar(context.Background(), testUserID)
	require.NoError(t, err)
	assert.Len(t, gastos, 1)
}
