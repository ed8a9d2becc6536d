package handler

import (
	"net/http"

	"github.com/silvioaquino/pdv-netlify/internal/apierror"
	"github.com/silvioaquino/pdv-netlify/internal/dto"
	"github.com/silvioaquino/pdv-netlify/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

type VendasHandler struct {
	svc service.VendaService
	rdb *redis.Client
}

func NewVendasHandler(svc service.VendaService, rdb *redis.Client) *VendasHandler {
	return &VendasHandler{svc: svc, rdb: rdb}
}

// ListarTodas godoc
// @Summary Lista todas as vendas com os dados de abertura do caixa
// @Tags vendas
// @Produce json
// @Success 200 {object} apierror.Response{data=[]dto.VendaComCaixa}
// @Router /vendas [get]
func (h *VendasHandler) ListarTodas(c *gin.Context) {
	vendas, err := h.svc.ListarTodas(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, apierror.OK(vendas))
}

// AtualizarPagamento godoc
// @Summary Atualiza a forma de pagamento de uma venda
// @Tags vendas
// @Accept json
// @Produce json
// @Param id path string true "ID da venda"
// @Param body body dto.AtualizarPagamentoRequest true "Nova forma de pagamento"
// @Success 200 {object} apierror.Response{data=model.Venda}
// @Failure 400 {object} apierror.Response
// @Failure 404 {object} apierror.Response
// @Router /vendas/{id} [put]
func (h *VendasHandler) AtualizarPagamento(c *gin.Context) {
	id, okParam := parseID(c, "id")
	if !okParam {
		return
	}
	var req dto.AtualizarPagamentoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	venda, err := h.svc.AtualizarPagamento(c.Request.Context(), id, req.TipoPagamento)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, apierror.OK(venda))
}

// ListarPorData godoc
// @Summary Lista as vendas de um dia, webhook e manuais mescladas
// @Tags vendas
// @Produce json
// @Param data path string true "Dia no formato YYYY-MM-DD"
// @Success 200 {object} apierror.Response{data=[]dto.MovimentoDiaResponse}
// @Failure 400 {object} apierror.Response
// @Router /vendas/data/{data} [get]
func (h *VendasHandler) ListarPorData(c *gin.Context) {
	data, okParam := parseData(c)
	if !okParam {
		return
	}
	ctx := c.Request.Context()
	cacheKey := "vendas:data:" + data

	var cached []dto.MovimentoDiaResponse
	if cacheGetJSON(ctx, h.rdb, cacheKey, &cached) {
		c.JSON(http.StatusOK, apierror.OK(cached))
		return
	}

	movs, err := h.svc.ListarPorData(ctx, data)
	if err != nil {
		fail(c, err)
		return
	}
	cacheSetJSON(h.rdb, cacheKey, movs, reportCacheTTL)
	c.JSON(http.StatusOK, apierror.OK(movs))
}
