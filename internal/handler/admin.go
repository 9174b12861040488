package handler

import (
	"net/http"

	"github.com/jsaerys/boodfood/internal/service"

	"github.com/gin-gonic/gin"
)

// AdminHandler serves the dashboard snapshot used by the admin panel.
type AdminHandler struct{ svc service.ResumenService }

func NewAdminHandler(svc service.ResumenService) *AdminHandler {
	return &AdminHandler{svc: svc}
}

func (h *AdminHandler) Resumen(c *gin.Context) {
	resp, err := h.svc.Obtener(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
