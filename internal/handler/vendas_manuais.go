package handler

import (
	"net/http"

	"github.com/silvioaquino/pdv-netlify/internal/apierror"
	"github.com/silvioaquino/pdv-netlify/internal/dto"
	"github.com/silvioaquino/pdv-netlify/internal/service"

	"github.com/gin-gonic/gin"
)

type VendasManuaisHandler struct{ svc service.VendaManualService }

func NewVendasManuaisHandler(svc service.VendaManualService) *VendasManuaisHandler {
	return &VendasManuaisHandler{svc: svc}
}

// Registrar godoc
// @Summary Registra uma venda digitada no balcão
// @Tags vendas-manuais
// @Accept json
// @Produce json
// @Param body body dto.RegistrarVendaManualRequest true "Dados da venda"
// @Success 201 {object} apierror.Response{data=model.VendaManual}
// @Failure 400 {object} apierror.Response
// @Router /vendas/manuais [post]
func (h *VendasManuaisHandler) Registrar(c *gin.Context) {
	var req dto.RegistrarVendaManualRequest
	if !bindAndValidate(c, &req) {
		return
	}
	venda, err := h.svc.Registrar(c.Request.Context(), req)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, apierror.OK(venda))
}

// ListarPorCaixa returns the manual sales of one caixa, newest first.
func (h *VendasManuaisHandler) ListarPorCaixa(c *gin.Context) {
	id, okParam := parseID(c, "id")
	if !okParam {
		return
	}
	vendas, err := h.svc.ListarPorCaixa(c.Request.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, apierror.OK(vendas))
}

// Excluir godoc
// @Summary Remove uma venda manual e devolve o registro removido
// @Tags vendas-manuais
// @Produce json
// @Param id path string true "ID da venda manual"
// @Success 200 {object} apierror.Response{data=model.VendaManual}
// @Failure 404 {object} apierror.Response
// @Router /vendas/manuais/{id} [delete]
func (h *VendasManuaisHandler) Excluir(c *gin.Context) {
	id, okParam := parseID(c, "id")
	if !okParam {
		return
	}
	venda, err := h.svc.Excluir(c.Request.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, apierror.OK(venda))
}
