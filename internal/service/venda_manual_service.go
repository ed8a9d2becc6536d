package service

import (
	"context"
	"errors"
	"time"

	"github.com/silvioaquino/pdv-netlify/internal/apierror"
	"github.com/silvioaquino/pdv-netlify/internal/dto"
	"github.com/silvioaquino/pdv-netlify/internal/model"
	"github.com/silvioaquino/pdv-netlify/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type VendaManualService interface {
	Registrar(ctx context.Context, req dto.RegistrarVendaManualRequest) (*model.VendaManual, error)
	Excluir(ctx context.Context, id uuid.UUID) (*model.VendaManual, error)
	ListarPorCaixa(ctx context.Context, caixaID uuid.UUID) ([]model.VendaManual, error)
}

type vendaManualService struct {
	repo      repository.VendaManualRepository
	caixaRepo repository.CaixaRepository
}

func NewVendaManualService(repo repository.VendaManualRepository, caixaRepo repository.CaixaRepository) VendaManualService {
	return &vendaManualService{repo: repo, caixaRepo: caixaRepo}
}

// Registrar records a sale typed in at the register. Unlike retiradas, manual
// sales demand that the referenced caixa exists and is still open.
func (s *vendaManualService) Registrar(ctx context.Context, req dto.RegistrarVendaManualRequest) (*model.VendaManual, error) {
	caixaID, err := uuid.Parse(req.CaixaAberturaID)
	if err != nil {
		return nil, apierror.Validation("caixa_abertura_id inválido")
	}

	caixa, err := s.caixaRepo.FindByID(ctx, caixaID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierror.Conflict("Caixa não está aberto")
		}
		return nil, apierror.Internal(err)
	}
	if caixa.Status != model.CaixaAberto {
		return nil, apierror.Conflict("Caixa não está aberto")
	}

	venda := &model.VendaManual{
		DataVenda:       time.Now(),
		TipoPagamento:   req.TipoPagamento,
		Valor:           req.Valor,
		Descricao:       req.Descricao,
		CaixaAberturaID: caixaID,
	}
	if err := s.repo.Create(ctx, venda); err != nil {
		return nil, apierror.Internal(err)
	}
	return venda, nil
}

// Excluir removes a manual sale and returns the record as it was.
func (s *vendaManualService) Excluir(ctx context.Context, id uuid.UUID) (*model.VendaManual, error) {
	venda, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierror.NotFound("Venda manual não encontrada")
		}
		return nil, apierror.Internal(err)
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return nil, apierror.Internal(err)
	}
	return venda, nil
}

func (s *vendaManualService) ListarPorCaixa(ctx context.Context, caixaID uuid.UUID) ([]model.VendaManual, error) {
	vendas, err := s.repo.ListByCaixa(ctx, caixaID)
	if err != nil {
		return nil, apierror.Internal(err)
	}
	if vendas == nil {
		vendas = []model.VendaManual{}
	}
	return vendas, nil
}
