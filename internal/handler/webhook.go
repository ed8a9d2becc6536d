package handler

import (
	"net/http"

	"github.com/silvioaquino/pdv-netlify/internal/apierror"
	"github.com/silvioaquino/pdv-netlify/internal/dto"
	"github.com/silvioaquino/pdv-netlify/internal/service"

	"github.com/gin-gonic/gin"
)

// WebhookHandler receives orders pushed by the ordering platform.
type WebhookHandler struct{ svc service.VendaService }

func NewWebhookHandler(svc service.VendaService) *WebhookHandler {
	return &WebhookHandler{svc: svc}
}

// ReceberPedido godoc
// @Summary Recebe um pedido da plataforma e registra a venda
// @Tags webhook
// @Accept json
// @Produce json
// @Param body body dto.WebhookPedidoRequest true "Pedido recebido"
// @Success 201 {object} apierror.Response{data=dto.WebhookVendaResponse}
// @Failure 400 {object} apierror.Response
// @Router /webhook/vendas [post]
func (h *WebhookHandler) ReceberPedido(c *gin.Context) {
	var req dto.WebhookPedidoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	venda, err := h.svc.IngerirPedido(c.Request.Context(), req)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, apierror.OK(dto.WebhookVendaResponse{VendaID: venda.ID.String()}))
}
