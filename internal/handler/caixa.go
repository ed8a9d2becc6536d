package handler

import (
	"net/http"

	"github.com/silvioaquino/pdv-netlify/internal/apierror"
	"github.com/silvioaquino/pdv-netlify/internal/dto"
	"github.com/silvioaquino/pdv-netlify/internal/model"
	"github.com/silvioaquino/pdv-netlify/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

type CaixaHandler struct {
	svc service.CaixaService
	rdb *redis.Client
}

func NewCaixaHandler(svc service.CaixaService, rdb *redis.Client) *CaixaHandler {
	return &CaixaHandler{svc: svc, rdb: rdb}
}

// Status godoc
// @Summary Informa se existe um caixa aberto
// @Tags caixa
// @Produce json
// @Success 200 {object} apierror.Response{data=dto.StatusCaixaResponse}
// @Router /caixa/status [get]
func (h *CaixaHandler) Status(c *gin.Context) {
	resp, err := h.svc.Status(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, apierror.OK(resp))
}

// Abrir godoc
// @Summary Abre um novo caixa
// @Tags caixa
// @Accept json
// @Produce json
// @Param body body dto.AbrirCaixaRequest true "Dados de abertura"
// @Success 201 {object} apierror.Response{data=model.Caixa}
// @Failure 400 {object} apierror.Response
// @Router /caixa/abrir [post]
func (h *CaixaHandler) Abrir(c *gin.Context) {
	var req dto.AbrirCaixaRequest
	if !bindAndValidate(c, &req) {
		return
	}
	caixa, err := h.svc.Abrir(c.Request.Context(), req)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, apierror.OK(caixa))
}

// Fechar godoc
// @Summary Fecha o caixa e devolve o resumo de conferência
// @Tags caixa
// @Accept json
// @Produce json
// @Param body body dto.FecharCaixaRequest true "Dados de fechamento"
// @Success 200 {object} apierror.Response{data=dto.FecharCaixaResponse}
// @Failure 400 {object} apierror.Response
// @Failure 404 {object} apierror.Response
// @Router /caixa/fechar [post]
func (h *CaixaHandler) Fechar(c *gin.Context) {
	var req dto.FecharCaixaRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Fechar(c.Request.Context(), req)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, apierror.OK(resp))
}

// ListarPorData returns the caixas opened on a calendar day.
func (h *CaixaHandler) ListarPorData(c *gin.Context) {
	data, okParam := parseData(c)
	if !okParam {
		return
	}
	ctx := c.Request.Context()
	cacheKey := "caixas:data:" + data

	var cached []model.Caixa
	if cacheGetJSON(ctx, h.rdb, cacheKey, &cached) {
		c.JSON(http.StatusOK, apierror.OK(cached))
		return
	}

	caixas, err := h.svc.ListarPorData(ctx, data)
	if err != nil {
		fail(c, err)
		return
	}
	cacheSetJSON(h.rdb, cacheKey, caixas, reportCacheTTL)
	c.JSON(http.StatusOK, apierror.OK(caixas))
}
