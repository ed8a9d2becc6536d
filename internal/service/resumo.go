package service

import (
	"github.com/silvioaquino/pdv-netlify/internal/dto"
	"github.com/silvioaquino/pdv-netlify/internal/model"

	"github.com/shopspring/decimal"
)

// CalcularResumo reconciles one caixa from its movements. Only sales paid in
// "dinheiro" touch the drawer; card and pending sales count toward the sales
// totals but not the cash balance.
//
//	saldo_final = valor_inicial + total_dinheiro - total_retiradas
//
// Deterministic, no side effects.
func CalcularResumo(valorInicial decimal.Decimal, vendas []model.Venda, manuais []model.VendaManual, retiradas []model.Retirada) dto.ResumoCaixa {
	resumo := dto.ResumoCaixa{
		TotalVendasSistema: decimal.Zero,
		TotalVendasManuais: decimal.Zero,
		DinheiroSistema:    decimal.Zero,
		DinheiroManuais:    decimal.Zero,
		TotalRetiradas:     decimal.Zero,
	}

	for _, v := range vendas {
		resumo.TotalVendasSistema = resumo.TotalVendasSistema.Add(v.ValorTotal)
		if v.TipoPagamento == model.PagamentoDinheiro {
			resumo.DinheiroSistema = resumo.DinheiroSistema.Add(v.ValorTotal)
		}
	}
	for _, vm := range manuais {
		resumo.TotalVendasManuais = resumo.TotalVendasManuais.Add(vm.Valor)
		if vm.TipoPagamento == model.PagamentoDinheiro {
			resumo.DinheiroManuais = resumo.DinheiroManuais.Add(vm.Valor)
		}
	}
	for _, rt := range retiradas {
		resumo.TotalRetiradas = resumo.TotalRetiradas.Add(rt.Valor)
	}

	resumo.TotalVendas = resumo.TotalVendasSistema.Add(resumo.TotalVendasManuais)
	resumo.TotalDinheiro = resumo.DinheiroSistema.Add(resumo.DinheiroManuais)
	resumo.SaldoFinal = valorInicial.Add(resumo.TotalDinheiro).Sub(resumo.TotalRetiradas)
	return resumo
}
