package api

import (
	"net/http"
	"strings"

	"github.com/badgers-labs/club-service/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ListGastos obtiene el historial completo de gastos
func (api *API) ListGastos(c *gin.Context) {
	gastos, err := api.gastoService.List()
	if err != nil {
		api.logger.WithError(err).Error("Error listing gastos")
		c.JSON(http.StatusInternalServerError, models.NewInternalError("Error al obtener los gastos"))
		return
	}

	if gastos == nil {
		gastos = []models.Gasto{}
	}

	c.JSON(http.StatusOK, gastos)
}

// GetGasto obtiene un gasto por su ID
func (api *API) GetGasto(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.NewValidationError("ID de gasto inválido", []models.ErrorDetail{
			{Field: "id", Issue: "must be a valid UUID"},
		}))
		return
	}

	gasto, err := api.gastoService.GetByID(id)
	if err != nil {
		if strings.Contains(err.Error(), "not found") {
			c.JSON(http.StatusNotFound, models.NewNotFoundError("Gasto no encontrado"))
			return
		}
		api.logger.WithError(err).Error("Error getting gasto")
		c.JSON(http.StatusInternalServerError, models.NewInternalError("Error al obtener el gasto"))
		return
	}

	c.JSON(http.StatusOK, gasto)
}

// CreateGasto registra un nuevo gasto
func (api *API) CreateGasto(c *gin.Context) {
	var req models.GastoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		api.logger.WithError(err).Error("Error binding create gasto request")
		c.JSON(http.StatusBadRequest, models.NewValidationError("Formato de request inválido", []models.ErrorDetail{
			{Field: "body", Issue: err.Error()},
		}))
		return
	}

	gasto, err := api.gastoService.Create(&req)
	if err != nil {
		api.logger.WithError(err).Error("Error creating gasto")
		c.JSON(http.StatusInternalServerError, models.NewInternalError("Error al registrar el gasto"))
		return
	}

	c.JSON(http.StatusCreated, gasto)
}

// DeleteGasto elimina un gasto por su ID
func (api *API) DeleteGasto(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.NewValidationError("ID de gasto inválido", []models.ErrorDetail{
			{Field: "id", Issue: "must be a valid UUID"},
		}))
		return
	}

	if err := api.gastoService.Delete(id); err != nil {
		if strings.Contains(err.Error(), "not found") {
			c.JSON(http.StatusNotFound, models.NewNotFoundError("Gasto no encontrado"))
			return
		}
		api.logger.WithError(err).Error("Error deleting gasto")
		c.JSON(http.StatusInternalServerError, models.NewInternalError("Error al eliminar el gasto"))
		return
	}

	c.Status(http.StatusNoContent)
}
