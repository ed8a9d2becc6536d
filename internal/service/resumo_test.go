package service_test

import (
	"testing"

	"github.com/silvioaquino/pdv-netlify/internal/model"
	"github.com/silvioaquino/pdv-netlify/internal/service"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestCalcularResumoVazio(t *testing.T) {
	resumo := service.CalcularResumo(dec("100.00"), nil, nil, nil)

	assert.True(t, resumo.TotalVendas.IsZero())
	assert.True(t, resumo.TotalDinheiro.IsZero())
	assert.True(t, resumo.TotalRetiradas.IsZero())
	assert.Equal(t, "100", resumo.SaldoFinal.String())
}

func TestCalcularResumoCenarioBasico(t *testing.T) {
	// Abre com 100, vende 30 em dinheiro no balcão, retira 20.
	manuais := []model.VendaManual{
		{TipoPagamento: model.PagamentoDinheiro, Valor: dec("30.00")},
	}
	retiradas := []model.Retirada{
		{Valor: dec("20.00")},
	}

	resumo := service.CalcularResumo(dec("100.00"), nil, manuais, retiradas)

	assert.Equal(t, "30", resumo.TotalDinheiro.String())
	assert.Equal(t, "20", resumo.TotalRetiradas.String())
	assert.Equal(t, "110", resumo.SaldoFinal.String())
}

func TestCalcularResumoSomenteDinheiroEntraNoSaldo(t *testing.T) {
	vendas := []model.Venda{
		{TipoPagamento: model.PagamentoDinheiro, ValorTotal: dec("52.50")},
		{TipoPagamento: model.PagamentoCartao, ValorTotal: dec("80.00")},
		{TipoPagamento: model.PagamentoPendente, ValorTotal: dec("12.25")},
	}
	manuais := []model.VendaManual{
		{TipoPagamento: model.PagamentoDinheiro, Valor: dec("10.00")},
		{TipoPagamento: "pix", Valor: dec("25.00")},
	}
	retiradas := []model.Retirada{
		{Valor: dec("15.00")},
		{Valor: dec("5.50")},
	}

	resumo := service.CalcularResumo(dec("200.00"), vendas, manuais, retiradas)

	assert.Equal(t, "144.75", resumo.TotalVendasSistema.String())
	assert.Equal(t, "35", resumo.TotalVendasManuais.String())
	assert.Equal(t, "179.75", resumo.TotalVendas.String())
	assert.Equal(t, "52.5", resumo.DinheiroSistema.String())
	assert.Equal(t, "10", resumo.DinheiroManuais.String())
	assert.Equal(t, "62.5", resumo.TotalDinheiro.String())
	assert.Equal(t, "20.5", resumo.TotalRetiradas.String())
	// 200 + 62.50 - 20.50
	assert.Equal(t, "242", resumo.SaldoFinal.String())
}

func TestCalcularResumoSemDerivaDecimal(t *testing.T) {
	// Centavos repetidos que em float64 acumulam erro de arredondamento.
	var manuais []model.VendaManual
	for i := 0; i < 1000; i++ {
		manuais = append(manuais, model.VendaManual{
			TipoPagamento: model.PagamentoDinheiro,
			Valor:         dec("0.10"),
		})
	}

	resumo := service.CalcularResumo(dec("0.00"), nil, manuais, nil)

	assert.Equal(t, "100", resumo.TotalDinheiro.String())
	assert.Equal(t, "100", resumo.SaldoFinal.String())
}

func TestCalcularResumoInvarianteSaldo(t *testing.T) {
	vendas := []model.Venda{
		{TipoPagamento: model.PagamentoDinheiro, ValorTotal: dec("33.33")},
		{TipoPagamento: model.PagamentoCartao, ValorTotal: dec("66.67")},
	}
	retiradas := []model.Retirada{{Valor: dec("12.34")}}

	resumo := service.CalcularResumo(dec("55.55"), vendas, nil, retiradas)

	esperado := dec("55.55").Add(resumo.TotalDinheiro).Sub(resumo.TotalRetiradas)
	assert.True(t, resumo.SaldoFinal.Equal(esperado))
}
