package service

import (
	"context"
	"time"

	"github.com/silvioaquino/pdv-netlify/internal/apierror"
	"github.com/silvioaquino/pdv-netlify/internal/dto"
	"github.com/silvioaquino/pdv-netlify/internal/model"
	"github.com/silvioaquino/pdv-netlify/internal/repository"

	"github.com/google/uuid"
)

type RetiradaService interface {
	Registrar(ctx context.Context, req dto.RegistrarRetiradaRequest) (*model.Retirada, error)
	ListarPorCaixa(ctx context.Context, caixaID uuid.UUID) ([]model.Retirada, error)
	ListarPorData(ctx context.Context, data string) ([]model.Retirada, error)
}

type retiradaService struct {
	repo repository.RetiradaRepository
}

func NewRetiradaService(repo repository.RetiradaRepository) RetiradaService {
	return &retiradaService{repo: repo}
}

// Registrar inserts the withdrawal as-is. There is deliberately no check that
// the caixa is open; the register allows taking cash out at any moment and a
// withdrawal against an unknown caixa fails on the foreign key.
func (s *retiradaService) Registrar(ctx context.Context, req dto.RegistrarRetiradaRequest) (*model.Retirada, error) {
	caixaID, err := uuid.Parse(req.CaixaAberturaID)
	if err != nil {
		return nil, apierror.Validation("caixa_abertura_id inválido")
	}

	retirada := &model.Retirada{
		DataRetirada:    time.Now(),
		Valor:           req.Valor,
		Observacao:      req.Observacao,
		CaixaAberturaID: caixaID,
	}
	if err := s.repo.Create(ctx, retirada); err != nil {
		return nil, apierror.Internal(err)
	}
	return retirada, nil
}

func (s *retiradaService) ListarPorCaixa(ctx context.Context, caixaID uuid.UUID) ([]model.Retirada, error) {
	retiradas, err := s.repo.ListByCaixa(ctx, caixaID)
	if err != nil {
		return nil, apierror.Internal(err)
	}
	if retiradas == nil {
		retiradas = []model.Retirada{}
	}
	return retiradas, nil
}

func (s *retiradaService) ListarPorData(ctx context.Context, data string) ([]model.Retirada, error) {
	retiradas, err := s.repo.ListByData(ctx, data)
	if err != nil {
		return nil, apierror.Internal(err)
	}
	if retiradas == nil {
		retiradas = []model.Retirada{}
	}
	return retiradas, nil
}
