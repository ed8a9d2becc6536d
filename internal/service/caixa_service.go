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

type CaixaService interface {
	Abrir(ctx context.Context, req dto.AbrirCaixaRequest) (*model.Caixa, error)
	Status(ctx context.Context) (*dto.StatusCaixaResponse, error)
	Fechar(ctx context.Context, req dto.FecharCaixaRequest) (*dto.FecharCaixaResponse, error)
	ListarPorData(ctx context.Context, data string) ([]model.Caixa, error)
}

type caixaService struct {
	repo         repository.CaixaRepository
	vendaRepo    repository.VendaRepository
	manualRepo   repository.VendaManualRepository
	retiradaRepo repository.RetiradaRepository
}

func NewCaixaService(
	repo repository.CaixaRepository,
	vendaRepo repository.VendaRepository,
	manualRepo repository.VendaManualRepository,
	retiradaRepo repository.RetiradaRepository,
) CaixaService {
	return &caixaService{
		repo:         repo,
		vendaRepo:    vendaRepo,
		manualRepo:   manualRepo,
		retiradaRepo: retiradaRepo,
	}
}

// runTx executes fn inside a GORM transaction when db is available,
// or calls fn(nil) directly when db is nil (unit test mode).
func runTx(ctx context.Context, db *gorm.DB, fn func(tx *gorm.DB) error) error {
	if db == nil {
		return fn(nil)
	}
	return db.WithContext(ctx).Transaction(fn)
}

// ── Abrir ─────────────────────────────────────────────────────────────────────

func (s *caixaService) Abrir(ctx context.Context, req dto.AbrirCaixaRequest) (*model.Caixa, error) {
	if req.ValorInicial.IsNegative() {
		return nil, apierror.Validation("valor_inicial não pode ser negativo")
	}

	// Guard: only one caixa may be open at a time. The partial unique index on
	// caixa_abertura backstops the race between the check and the insert.
	if _, err := s.repo.FindAberto(ctx); err == nil {
		return nil, apierror.Conflict("Já existe um caixa aberto")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apierror.Internal(err)
	}

	caixa := &model.Caixa{
		DataAbertura: time.Now(),
		ValorInicial: req.ValorInicial,
		Observacao:   req.Observacao,
		Status:       model.CaixaAberto,
	}
	if err := s.repo.Create(ctx, caixa); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apierror.Conflict("Já existe um caixa aberto")
		}
		return nil, apierror.Internal(err)
	}
	return caixa, nil
}

// ── Status ────────────────────────────────────────────────────────────────────

func (s *caixaService) Status(ctx context.Context) (*dto.StatusCaixaResponse, error) {
	caixa, err := s.repo.FindAberto(ctx)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &dto.StatusCaixaResponse{CaixaAberto: false}, nil
		}
		return nil, apierror.Internal(err)
	}
	return &dto.StatusCaixaResponse{CaixaAberto: true, CaixaAtual: caixa}, nil
}

// ── Fechar ────────────────────────────────────────────────────────────────────
// Reconciles and closes a caixa. Fetching the movements, writing the
// fechamento and flipping the status happen in ONE transaction so a failure
// leaves the caixa untouched and re-closable.

func (s *caixaService) Fechar(ctx context.Context, req dto.FecharCaixaRequest) (*dto.FecharCaixaResponse, error) {
	caixaID, err := uuid.Parse(req.CaixaAberturaID)
	if err != nil {
		return nil, apierror.Validation("caixa_abertura_id inválido")
	}

	var (
		fechamento model.FechamentoCaixa
		resumo     dto.ResumoCaixa
	)
	txErr := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		// Row lock on the caixa: a concurrent Fechar blocks here and sees the
		// flipped status instead of racing into a duplicate fechamento.
		caixa, err := s.repo.FindByIDForUpdateTx(tx, caixaID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apierror.NotFound("Caixa não encontrado")
			}
			return err
		}
		if caixa.Status != model.CaixaAberto {
			return apierror.Conflict("Caixa já está fechado")
		}

		vendas, err := s.vendaRepo.ListByCaixaTx(tx, caixaID)
		if err != nil {
			return err
		}
		manuais, err := s.manualRepo.ListByCaixaTx(tx, caixaID)
		if err != nil {
			return err
		}
		retiradas, err := s.retiradaRepo.ListByCaixaTx(tx, caixaID)
		if err != nil {
			return err
		}

		resumo = CalcularResumo(caixa.ValorInicial, vendas, manuais, retiradas)

		fechamento = model.FechamentoCaixa{
			DataFechamento:  time.Now(),
			ValorInicial:    caixa.ValorInicial,
			TotalVendas:     resumo.TotalVendas,
			TotalRetiradas:  resumo.TotalRetiradas,
			SaldoFinal:      resumo.SaldoFinal,
			Observacoes:     req.Observacoes,
			CaixaAberturaID: caixaID,
		}
		if err := s.repo.CreateFechamentoTx(tx, &fechamento); err != nil {
			return err
		}
		return s.repo.UpdateStatusTx(tx, caixaID, model.CaixaFechado)
	})
	if txErr != nil {
		// Typed errors (not found, already closed) pass through; anything else
		// means the rollback fired and surfaces as 500.
		return nil, apierror.From(txErr)
	}

	return &dto.FecharCaixaResponse{Fechamento: fechamento, Resumo: resumo}, nil
}

// ── ListarPorData ─────────────────────────────────────────────────────────────

func (s *caixaService) ListarPorData(ctx context.Context, data string) ([]model.Caixa, error) {
	caixas, err := s.repo.ListByData(ctx, data)
	if err != nil {
		return nil, apierror.Internal(err)
	}
	if caixas == nil {
		caixas = []model.Caixa{}
	}
	return caixas, nil
}
