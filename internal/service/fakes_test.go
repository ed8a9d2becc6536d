package service_test

import (
	"context"
	"sort"
	"time"

	"github.com/silvioaquino/pdv-netlify/internal/model"
	"github.com/silvioaquino/pdv-netlify/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ── In-memory repositories ────────────────────────────────────────────────────
// The services only reach the database through the repository interfaces, so
// the suites run against these map/slice-backed fakes. DB() returning nil
// makes runTx execute the closure without a real transaction.

type fakeCaixaRepo struct {
	caixas      map[uuid.UUID]*model.Caixa
	fechamentos []model.FechamentoCaixa

	// beforeFindForUpdate, when set, runs before the locked fetch — lets a
	// test interleave a concurrent writer at the lock acquisition point.
	beforeFindForUpdate func()
}

func newFakeCaixaRepo() *fakeCaixaRepo {
	return &fakeCaixaRepo{caixas: make(map[uuid.UUID]*model.Caixa)}
}

func (r *fakeCaixaRepo) Create(_ context.Context, c *model.Caixa) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	c.CreatedAt = time.Now()
	c.UpdatedAt = c.CreatedAt
	r.caixas[c.ID] = c
	return nil
}

func (r *fakeCaixaRepo) FindAberto(_ context.Context) (*model.Caixa, error) {
	var latest *model.Caixa
	for _, c := range r.caixas {
		if c.Status != model.CaixaAberto {
			continue
		}
		if latest == nil || c.DataAbertura.After(latest.DataAbertura) {
			latest = c
		}
	}
	if latest == nil {
		return nil, gorm.ErrRecordNotFound
	}
	return latest, nil
}

func (r *fakeCaixaRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Caixa, error) {
	c, ok := r.caixas[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return c, nil
}

func (r *fakeCaixaRepo) ListByData(_ context.Context, data string) ([]model.Caixa, error) {
	var out []model.Caixa
	for _, c := range r.caixas {
		if c.DataAbertura.Format("2006-01-02") == data {
			out = append(out, *c)
		}
	}
	return out, nil
}

func (r *fakeCaixaRepo) FindByIDForUpdateTx(_ *gorm.DB, id uuid.UUID) (*model.Caixa, error) {
	if r.beforeFindForUpdate != nil {
		r.beforeFindForUpdate()
	}
	return r.FindByID(context.Background(), id)
}

func (r *fakeCaixaRepo) UpdateStatusTx(_ *gorm.DB, id uuid.UUID, status string) error {
	c, ok := r.caixas[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	c.Status = status
	c.UpdatedAt = time.Now()
	return nil
}

func (r *fakeCaixaRepo) CreateFechamentoTx(_ *gorm.DB, f *model.FechamentoCaixa) error {
	if f.ID == uuid.Nil {
		f.ID = uuid.New()
	}
	f.CreatedAt = time.Now()
	r.fechamentos = append(r.fechamentos, *f)
	return nil
}

func (r *fakeCaixaRepo) DB() *gorm.DB { return nil }

var _ repository.CaixaRepository = (*fakeCaixaRepo)(nil)

type fakeVendaRepo struct {
	vendas map[uuid.UUID]*model.Venda
	// when set, ListAll fills Venda.Caixa the way Preload("Caixa") would
	caixaRepo *fakeCaixaRepo
}

func newFakeVendaRepo() *fakeVendaRepo {
	return &fakeVendaRepo{vendas: make(map[uuid.UUID]*model.Venda)}
}

func (r *fakeVendaRepo) Create(_ context.Context, v *model.Venda) error {
	if v.ID == uuid.Nil {
		v.ID = uuid.New()
	}
	v.CreatedAt = time.Now()
	v.UpdatedAt = v.CreatedAt
	r.vendas[v.ID] = v
	return nil
}

func (r *fakeVendaRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Venda, error) {
	v, ok := r.vendas[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return v, nil
}

func (r *fakeVendaRepo) Update(_ context.Context, v *model.Venda) error {
	if _, ok := r.vendas[v.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	v.UpdatedAt = time.Now()
	r.vendas[v.ID] = v
	return nil
}

func (r *fakeVendaRepo) ListAll(_ context.Context) ([]model.Venda, error) {
	out := make([]model.Venda, 0, len(r.vendas))
	for _, v := range r.vendas {
		venda := *v
		if r.caixaRepo != nil {
			if c, ok := r.caixaRepo.caixas[v.CaixaAberturaID]; ok {
				venda.Caixa = c
			}
		}
		out = append(out, venda)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].DataVenda.After(out[j].DataVenda) })
	return out, nil
}

func (r *fakeVendaRepo) ListByData(_ context.Context, data string) ([]model.Venda, error) {
	var out []model.Venda
	for _, v := range r.vendas {
		if v.DataVenda.Format("2006-01-02") == data {
			out = append(out, *v)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].DataVenda.After(out[j].DataVenda) })
	return out, nil
}

func (r *fakeVendaRepo) ListByCaixaTx(_ *gorm.DB, caixaID uuid.UUID) ([]model.Venda, error) {
	var out []model.Venda
	for _, v := range r.vendas {
		if v.CaixaAberturaID == caixaID {
			out = append(out, *v)
		}
	}
	return out, nil
}

var _ repository.VendaRepository = (*fakeVendaRepo)(nil)

type fakeVendaManualRepo struct {
	vendas []model.VendaManual
}

func (r *fakeVendaManualRepo) Create(_ context.Context, vm *model.VendaManual) error {
	if vm.ID == uuid.Nil {
		vm.ID = uuid.New()
	}
	vm.CreatedAt = time.Now()
	r.vendas = append(r.vendas, *vm)
	return nil
}

func (r *fakeVendaManualRepo) FindByID(_ context.Context, id uuid.UUID) (*model.VendaManual, error) {
	for i := range r.vendas {
		if r.vendas[i].ID == id {
			vm := r.vendas[i]
			return &vm, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeVendaManualRepo) Delete(_ context.Context, id uuid.UUID) error {
	kept := r.vendas[:0]
	for _, vm := range r.vendas {
		if vm.ID != id {
			kept = append(kept, vm)
		}
	}
	r.vendas = kept
	return nil
}

func (r *fakeVendaManualRepo) ListByCaixa(_ context.Context, caixaID uuid.UUID) ([]model.VendaManual, error) {
	var out []model.VendaManual
	for _, vm := range r.vendas {
		if vm.CaixaAberturaID == caixaID {
			out = append(out, vm)
		}
	}
	return out, nil
}

func (r *fakeVendaManualRepo) ListByData(_ context.Context, data string) ([]model.VendaManual, error) {
	var out []model.VendaManual
	for _, vm := range r.vendas {
		if vm.DataVenda.Format("2006-01-02") == data {
			out = append(out, vm)
		}
	}
	return out, nil
}

func (r *fakeVendaManualRepo) ListByCaixaTx(_ *gorm.DB, caixaID uuid.UUID) ([]model.VendaManual, error) {
	return r.ListByCaixa(context.Background(), caixaID)
}

var _ repository.VendaManualRepository = (*fakeVendaManualRepo)(nil)

type fakeRetiradaRepo struct {
	retiradas []model.Retirada
}

func (r *fakeRetiradaRepo) Create(_ context.Context, rt *model.Retirada) error {
	if rt.ID == uuid.Nil {
		rt.ID = uuid.New()
	}
	rt.CreatedAt = time.Now()
	r.retiradas = append(r.retiradas, *rt)
	return nil
}

func (r *fakeRetiradaRepo) ListByCaixa(_ context.Context, caixaID uuid.UUID) ([]model.Retirada, error) {
	var out []model.Retirada
	for _, rt := range r.retiradas {
		if rt.CaixaAberturaID == caixaID {
			out = append(out, rt)
		}
	}
	return out, nil
}

func (r *fakeRetiradaRepo) ListByData(_ context.Context, data string) ([]model.Retirada, error) {
	var out []model.Retirada
	for _, rt := range r.retiradas {
		if rt.DataRetirada.Format("2006-01-02") == data {
			out = append(out, rt)
		}
	}
	return out, nil
}

func (r *fakeRetiradaRepo) ListByCaixaTx(_ *gorm.DB, caixaID uuid.UUID) ([]model.Retirada, error) {
	return r.ListByCaixa(context.Background(), caixaID)
}

var _ repository.RetiradaRepository = (*fakeRetiradaRepo)(nil)
