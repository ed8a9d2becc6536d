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

type RetiradasHandler struct {
	svc service.RetiradaService
	rdb *redis.Client
}

func NewRetiradasHandler(svc service.RetiradaService, rdb *redis.Client) *RetiradasHandler {
	return &RetiradasHandler{svc: svc, rdb: rdb}
}

// Registrar godoc
// @Summary Registra uma retirada de dinheiro do caixa
// @Tags retiradas
// @Accept json
// @Produce json
// @Param body body dto.RegistrarRetiradaRequest true "Dados da retirada"
// @Success 201 {object} apierror.Response{data=model.Retirada}
// @Failure 400 {object} apierror.Response
// @Router /retiradas [post]
func (h *RetiradasHandler) Registrar(c *gin.Context) {
	var req dto.RegistrarRetiradaRequest
	if !bindAndValidate(c, &req) {
		return
	}
	retirada, err := h.svc.Registrar(c.Request.Context(), req)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, apierror.OK(retirada))
}

// ListarPorCaixa returns the withdrawals of one caixa, newest first.
func (h *RetiradasHandler) ListarPorCaixa(c *gin.Context) {
	id, okParam := parseID(c, "id")
	if !okParam {
		return
	}
	retiradas, err := h.svc.ListarPorCaixa(c.Request.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, apierror.OK(retiradas))
}

// ListarPorData returns the withdrawals of a calendar day.
func (h *RetiradasHandler) ListarPorData(c *gin.Context) {
	data, okParam := parseData(c)
	if !okParam {
		return
	}
	ctx := c.Request.Context()
	cacheKey := "retiradas:data:" + data

	var cached []model.Retirada
	if cacheGetJSON(ctx, h.rdb, cacheKey, &cached) {
		c.JSON(http.StatusOK, apierror.OK(cached))
		return
	}

	retiradas, err := h.svc.ListarPorData(ctx, data)
	if err != nil {
		fail(c, err)
		return
	}
	cacheSetJSON(h.rdb, cacheKey, retiradas, reportCacheTTL)
	c.JSON(http.StatusOK, apierror.OK(retiradas))
}
