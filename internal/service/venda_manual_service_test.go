package service_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/silvioaquino/pdv-netlify/internal/dto"
	"github.com/silvioaquino/pdv-netlify/internal/model"
	"github.com/silvioaquino/pdv-netlify/internal/service"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newVendaManualSvc() (service.VendaManualService, *fakeCaixaRepo, *fakeVendaManualRepo) {
	caixaRepo := newFakeCaixaRepo()
	manualRepo := &fakeVendaManualRepo{}
	return service.NewVendaManualService(manualRepo, caixaRepo), caixaRepo, manualRepo
}

func TestRegistrarVendaManual(t *testing.T) {
	svc, caixaRepo, manualRepo := newVendaManualSvc()
	caixa := abrirCaixaDeTeste(t, caixaRepo)

	descricao := "venda balcão"
	venda, err := svc.Registrar(context.Background(), dto.RegistrarVendaManualRequest{
		TipoPagamento:   model.PagamentoDinheiro,
		Valor:           decimal.NewFromFloat(30.00),
		Descricao:       &descricao,
		CaixaAberturaID: caixa.ID.String(),
	})

	require.NoError(t, err)
	assert.Equal(t, caixa.ID, venda.CaixaAberturaID)
	assert.Equal(t, "30", venda.Valor.String())
	assert.Len(t, manualRepo.vendas, 1)
}

func TestRegistrarVendaManualCaixaInexistente(t *testing.T) {
	svc, _, manualRepo := newVendaManualSvc()

	_, err := svc.Registrar(context.Background(), dto.RegistrarVendaManualRequest{
		TipoPagamento:   model.PagamentoDinheiro,
		Valor:           decimal.NewFromFloat(10),
		CaixaAberturaID: uuid.NewString(),
	})

	assertStatus(t, err, http.StatusBadRequest)
	assert.ErrorContains(t, err, "não está aberto")
	assert.Empty(t, manualRepo.vendas)
}

func TestRegistrarVendaManualCaixaFechado(t *testing.T) {
	svc, caixaRepo, manualRepo := newVendaManualSvc()

	caixa := &model.Caixa{
		DataAbertura: time.Now(),
		ValorInicial: decimal.NewFromFloat(100),
		Status:       model.CaixaFechado,
	}
	require.NoError(t, caixaRepo.Create(context.Background(), caixa))

	_, err := svc.Registrar(context.Background(), dto.RegistrarVendaManualRequest{
		TipoPagamento:   model.PagamentoDinheiro,
		Valor:           decimal.NewFromFloat(10),
		CaixaAberturaID: caixa.ID.String(),
	})

	assertStatus(t, err, http.StatusBadRequest)
	assert.Empty(t, manualRepo.vendas)
}

func TestExcluirVendaManual(t *testing.T) {
	svc, caixaRepo, manualRepo := newVendaManualSvc()
	caixa := abrirCaixaDeTeste(t, caixaRepo)

	criada, err := svc.Registrar(context.Background(), dto.RegistrarVendaManualRequest{
		TipoPagamento:   model.PagamentoDinheiro,
		Valor:           decimal.NewFromFloat(15.50),
		CaixaAberturaID: caixa.ID.String(),
	})
	require.NoError(t, err)

	excluida, err := svc.Excluir(context.Background(), criada.ID)
	require.NoError(t, err)

	// Devolve o registro como era antes da exclusão.
	assert.Equal(t, criada.ID, excluida.ID)
	assert.Equal(t, "15.5", excluida.Valor.String())
	assert.Empty(t, manualRepo.vendas)
}

func TestExcluirVendaManualInexistente(t *testing.T) {
	svc, _, _ := newVendaManualSvc()

	_, err := svc.Excluir(context.Background(), uuid.New())
	assertStatus(t, err, http.StatusNotFound)
}

func TestListarVendasManuaisPorCaixa(t *testing.T) {
	svc, caixaRepo, _ := newVendaManualSvc()
	caixa := abrirCaixaDeTeste(t, caixaRepo)

	_, err := svc.Registrar(context.Background(), dto.RegistrarVendaManualRequest{
		TipoPagamento:   model.PagamentoCartao,
		Valor:           decimal.NewFromFloat(25),
		CaixaAberturaID: caixa.ID.String(),
	})
	require.NoError(t, err)

	vendas, err := svc.ListarPorCaixa(context.Background(), caixa.ID)
	require.NoError(t, err)
	assert.Len(t, vendas, 1)

	vazio, err := svc.ListarPorCaixa(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.NotNil(t, vazio)
	assert.Empty(t, vazio)
}
