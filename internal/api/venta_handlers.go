package api

import (
	"net/http"
	"strings"

	"github.com/badgers-labs/club-service/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ListVentas obtiene el historial completo de ventas
func (api *API) ListVentas(c *gin.Context) {
	ventas, err := api.ventaService.List()
	if err != nil {
		api.logger.WithError(err).Error("Error listing ventas")
		c.JSON(http.StatusInternalServerError, models.NewInternalError("Error al obtener las ventas"))
		return
	}

	if ventas == nil {
		ventas = []models.Venta{}
	}

	c.JSON(http.StatusOK, ventas)
}

// GetVenta obtiene una venta por su ID
func (api *API) GetVenta(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.NewValidationError("ID de venta inválido", []models.ErrorDetail{
			{Field: "id", Issue: "must be a valid UUID"},
		}))
		return
	}

	venta, err := api.ventaService.GetByID(id)
	if err != nil {
		if strings.Contains(err.Error(), "not found") {
			c.JSON(http.StatusNotFound, models.NewNotFoundError("Venta no encontrada"))
			return
		}
		api.logger.WithError(err).Error("Error getting venta")
		c.JSON(http.StatusInternalServerError, models.NewInternalError("Error al obtener la venta"))
		return
	}

	c.JSON(http.StatusOK, venta)
}

// CreateVenta registra una nueva venta
func (api *API) CreateVenta(c *gin.Context) {
	var req models.VentaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		api.logger.WithError(err).Error("Error binding create venta request")
		c.JSON(http.StatusBadRequest, models.NewValidationError("Formato de request inválido", []models.ErrorDetail{
			{Field: "body", Issue: err.Error()},
		}))
		return
	}

	venta, err := api.ventaService.Create(&req)
	if err != nil {
		api.logger.WithError(err).Error("Error creating venta")
		c.JSON(http.StatusInternalServerError, models.NewInternalError("Error al registrar la venta"))
		return
	}

	c.JSON(http.StatusCreated, venta)
}

// DeleteVenta elimina una venta por su ID
func (api *API) DeleteVenta(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.NewValidationError("ID de venta inválido", []models.ErrorDetail{
			{Field: "id", Issue: "must be a valid UUID"},
		}))
		return
	}

	if err := api.ventaService.Delete(id); err != nil {
		if strings.Contains(err.Error(), "not found") {
			c.JSON(http.StatusNotFound, models.NewNotFoundError("Venta no encontrada"))
			return
		}
		api.logger.WithError(err).Error("Error deleting venta")
		c.JSON(http.StatusInternalServerError, models.NewInternalError("Error al eliminar la venta"))
		return
	}

	c.Status(http.StatusNoContent)
}
