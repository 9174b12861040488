package handler

import (
	"net/http"

	"github.com/jsaerys/boodfood/internal/apierror"
	"github.com/jsaerys/boodfood/internal/dto"
	"github.com/jsaerys/boodfood/internal/service"
	"github.com/jsaerys/boodfood/internal/upload"

	"github.com/gin-gonic/gin"
)

type MenuHandler struct {
	svc      service.MenuService
	catSvc   service.CategoriaService
	uploader upload.Uploader
}

func NewMenuHandler(svc service.MenuService, catSvc service.CategoriaService, up upload.Uploader) *MenuHandler {
	return &MenuHandler{svc: svc, catSvc: catSvc, uploader: up}
}

func (h *MenuHandler) ListarItems(c *gin.Context) {
	resp, err := h.svc.ListarItems(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *MenuHandler) Crear(c *gin.Context) {
	var req dto.CrearMenuItemRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Crear(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *MenuHandler) Actualizar(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req dto.ActualizarMenuItemRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Actualizar(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *MenuHandler) Eliminar(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := h.svc.Eliminar(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Item eliminado correctamente"})
}

func (h *MenuHandler) ListarCategorias(c *gin.Context) {
	resp, err := h.catSvc.Listar(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *MenuHandler) SubirImagen(c *gin.Context) {
	file, err := c.FormFile("imagen")
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("No se envió ninguna imagen"))
		return
	}
	if file.Filename == "" {
		c.JSON(http.StatusBadRequest, apierror.New("Nombre de archivo vacío"))
		return
	}
	url, err := h.uploader.Guardar(file)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.SubirImagenResponse{Success: true, URL: url})
}
