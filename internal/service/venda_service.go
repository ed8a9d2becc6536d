package service

import (
	"context"
	"encoding/json"
	"errors"
	"sort"
	"time"

	"github.com/silvioaquino/pdv-netlify/internal/apierror"
	"github.com/silvioaquino/pdv-netlify/internal/dto"
	"github.com/silvioaquino/pdv-netlify/internal/model"
	"github.com/silvioaquino/pdv-netlify/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type VendaService interface {
	IngerirPedido(ctx context.Context, req dto.WebhookPedidoRequest) (*model.Venda, error)
	AtualizarPagamento(ctx context.Context, id uuid.UUID, tipoPagamento string) (*model.Venda, error)
	ListarTodas(ctx context.Context) ([]dto.VendaComCaixa, error)
	ListarPorData(ctx context.Context, data string) ([]dto.MovimentoDiaResponse, error)
}

type vendaService struct {
	repo       repository.VendaRepository
	manualRepo repository.VendaManualRepository
	caixaRepo  repository.CaixaRepository
}

func NewVendaService(
	repo repository.VendaRepository,
	manualRepo repository.VendaManualRepository,
	caixaRepo repository.CaixaRepository,
) VendaService {
	return &vendaService{repo: repo, manualRepo: manualRepo, caixaRepo: caixaRepo}
}

// ── IngerirPedido ─────────────────────────────────────────────────────────────
// Webhook entry point. Validates the minimum (a positive total and at least
// one product), normalizes the rest with defaults, and records the sale under
// the currently open caixa. Payment starts "pendente" until the register
// confirms how the customer paid.

func (s *vendaService) IngerirPedido(ctx context.Context, req dto.WebhookPedidoRequest) (*model.Venda, error) {
	if req.ValorTotal.LessThanOrEqual(decimal.Zero) {
		return nil, apierror.Validation("valor_total é obrigatório e deve ser maior que zero")
	}
	if len(req.Produtos) == 0 {
		return nil, apierror.Validation("produtos não pode ser vazio")
	}

	caixa, err := s.caixaRepo.FindAberto(ctx)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierror.Conflict("Caixa fechado. Não é possível registrar a venda")
		}
		return nil, apierror.Internal(err)
	}

	pedido := normalizarPedido(req)
	payload, err := json.Marshal(pedido)
	if err != nil {
		return nil, apierror.Internal(err)
	}

	tipoPagamento := req.TipoPagamento
	if tipoPagamento == "" {
		tipoPagamento = model.PagamentoPendente
	}

	venda := &model.Venda{
		DataVenda:       time.Now(),
		Pedido:          datatypes.JSON(payload),
		TipoPagamento:   tipoPagamento,
		ValorTotal:      req.ValorTotal,
		CaixaAberturaID: caixa.ID,
	}
	if err := s.repo.Create(ctx, venda); err != nil {
		return nil, apierror.Internal(err)
	}
	return venda, nil
}

// normalizarPedido fills the defaults of an incoming order so the stored
// payload always has the same shape regardless of what the platform sent.
func normalizarPedido(req dto.WebhookPedidoRequest) model.Pedido {
	tipo := req.TipoPedido
	if tipo == "" {
		tipo = model.PedidoOutro
	}

	dataPedido := time.Now()
	if req.DataPedido != nil {
		dataPedido = *req.DataPedido
	}

	endereco := ""
	if req.Endereco != nil {
		endereco = *req.Endereco
	}

	produtos := make([]model.ItemPedido, 0, len(req.Produtos))
	for _, p := range req.Produtos {
		item := model.ItemPedido{
			NomeProduto:  p.NomeProduto,
			Quantidade:   p.Quantidade,
			Valor:        p.Valor,
			Adicionais:   p.Adicionais,
			Complementos: p.Complementos,
		}
		if item.Adicionais == nil {
			item.Adicionais = []string{}
		}
		if item.Complementos == nil {
			item.Complementos = []string{}
		}
		produtos = append(produtos, item)
	}

	return model.Pedido{
		NomeCliente:     req.NomeCliente,
		TelefoneCliente: req.TelefoneCliente,
		TipoPedido:      tipo,
		Endereco:        endereco,
		DataPedido:      dataPedido,
		ValorTotal:      req.ValorTotal,
		Produtos:        produtos,
	}
}

// ── AtualizarPagamento ────────────────────────────────────────────────────────

func (s *vendaService) AtualizarPagamento(ctx context.Context, id uuid.UUID, tipoPagamento string) (*model.Venda, error) {
	venda, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierror.NotFound("Venda não encontrada")
		}
		return nil, apierror.Internal(err)
	}

	venda.TipoPagamento = tipoPagamento
	if err := s.repo.Update(ctx, venda); err != nil {
		return nil, apierror.Internal(err)
	}
	return venda, nil
}

// ── Listagens ─────────────────────────────────────────────────────────────────

func (s *vendaService) ListarTodas(ctx context.Context) ([]dto.VendaComCaixa, error) {
	vendas, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, apierror.Internal(err)
	}

	out := make([]dto.VendaComCaixa, 0, len(vendas))
	for _, v := range vendas {
		item := dto.VendaComCaixa{Venda: v}
		if v.Caixa != nil {
			item.CaixaDataAbertura = v.Caixa.DataAbertura
			item.CaixaValorInicial = v.Caixa.ValorInicial
		}
		out = append(out, item)
	}
	return out, nil
}

// ListarPorData merges webhook and manual sales of one day, newest first.
func (s *vendaService) ListarPorData(ctx context.Context, data string) ([]dto.MovimentoDiaResponse, error) {
	vendas, err := s.repo.ListByData(ctx, data)
	if err != nil {
		return nil, apierror.Internal(err)
	}
	manuais, err := s.manualRepo.ListByData(ctx, data)
	if err != nil {
		return nil, apierror.Internal(err)
	}

	movs := make([]dto.MovimentoDiaResponse, 0, len(vendas)+len(manuais))
	for _, v := range vendas {
		movs = append(movs, dto.MovimentoDiaResponse{
			ID:            v.ID.String(),
			Origem:        "sistema",
			DataVenda:     v.DataVenda,
			TipoPagamento: v.TipoPagamento,
			Valor:         v.ValorTotal,
			Pedido:        v.Pedido,
		})
	}
	for _, vm := range manuais {
		movs = append(movs, dto.MovimentoDiaResponse{
			ID:            vm.ID.String(),
			Origem:        "manual",
			DataVenda:     vm.DataVenda,
			TipoPagamento: vm.TipoPagamento,
			Valor:         vm.Valor,
			Descricao:     vm.Descricao,
		})
	}

	sort.Slice(movs, func(i, j int) bool { return movs[i].DataVenda.After(movs[j].DataVenda) })
	return movs, nil
}
