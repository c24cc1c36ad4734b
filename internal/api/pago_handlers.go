package api

import (
	"net/http"
	"strings"

	"github.com/badgers-labs/club-service/internal/models"
	"github.com/gin-gonic/gin"
)

// ListPagos obtiene todos los pagos
func (api *API) ListPagos(c *gin.Context) {
	pagos, err := api.pagoService.List()
	if err != nil {
		api.logger.WithError(err).Error("Error listing pagos")
		c.JSON(http.StatusInternalServerError, models.NewInternalError("Error al obtener los pagos"))
		return
	}

	if pagos == nil {
		pagos = []models.Pago{}
	}

	c.JSON(http.StatusOK, pagos)
}

// GetPago obtiene un pago por su id derivado
func (api *API) GetPago(c *gin.Context) {
	id := c.Param("id")

	pago, err := api.pagoService.GetByID(id)
	if err != nil {
		if strings.Contains(err.Error(), "not found") {
			c.JSON(http.StatusNotFound, models.NewNotFoundError("Pago no encontrado"))
			return
		}
		api.logger.WithError(err).Error("Error getting pago")
		c.JSON(http.StatusInternalServerError, models.NewInternalError("Error al obtener el pago"))
		return
	}

	c.JSON(http.StatusOK, pago)
}

// CreatePago registra el pago de un socio para un mes/año. La identidad se
// deriva de los datos, por lo que repetir la combinación sobrescribe el
// registro anterior en lugar de duplicarlo.
func (api *API) CreatePago(c *gin.Context) {
	var req models.PagoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		api.logger.WithError(err).Error("Error binding create pago request")
		c.JSON(http.StatusBadRequest, models.NewValidationError("Formato de request inválido", []models.ErrorDetail{
			{Field: "body", Issue: err.Error()},
		}))
		return
	}

	pago, err := api.pagoService.Upsert(&req)
	if err != nil {
		api.logger.WithError(err).Error("Error registering pago")
		c.JSON(http.StatusInternalServerError, models.NewInternalError("Error al registrar el pago"))
		return
	}

	c.JSON(http.StatusCreated, pago)
}

// UpdatePago reemplaza los campos de un pago existente
func (api *API) UpdatePago(c *gin.Context) {
	id := c.Param("id")

	// El pago debe existir bajo el id de la ruta
	if _, err := api.pagoService.GetByID(id); err != nil {
		if strings.Contains(err.Error(), "not found") {
			c.JSON(http.StatusNotFound, models.NewNotFoundError("Pago no encontrado"))
			return
		}
		api.logger.WithError(err).Error("Error getting pago")
		c.JSON(http.StatusInternalServerError, models.NewInternalError("Error al obtener el pago"))
		return
	}

	var req models.PagoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		api.logger.WithError(err).Error("Error binding update pago request")
		c.JSON(http.StatusBadRequest, models.NewValidationError("Formato de request inválido", []models.ErrorDetail{
			{Field: "body", Issue: err.Error()},
		}))
		return
	}

	pago, err := api.pagoService.Upsert(&req)
	if err != nil {
		api.logger.WithError(err).Error("Error updating pago")
		c.JSON(http.StatusInternalServerError, models.NewInternalError("Error al actualizar el pago"))
		return
	}

	c.JSON(http.StatusOK, pago)
}

// DeletePago elimina un pago por su id
func (api *API) DeletePago(c *gin.Context) {
	id := c.Param("id")

	if err := api.pagoService.Delete(id); err != nil {
		if strings.Contains(err.Error(), "not found") {
			c.JSON(http.StatusNotFound, models.NewNotFoundError("Pago no encontrado"))
			return
		}
		api.logger.WithError(err).Error("Error deleting pago")
		c.JSON(http.StatusInternalServerError, models.NewInternalError("Error al eliminar el pago"))
		return
	}

	c.Status(http.StatusNoContent)
}

// ImportPagos importa pagos desde un CSV con reporte por fila
func (api *API) ImportPagos(c *gin.Context) {
	file, ok := api.uploadedFile(c)
	if !ok {
		return
	}
	defer file.Close()

	report, err := api.pagoService.ImportCSV(file)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.NewValidationError("No se pudo procesar el archivo CSV", []models.ErrorDetail{
			{Field: "file", Issue: err.Error()},
		}))
		return
	}

	c.JSON(http.StatusOK, models.ImportResponse{
		Message: report.Message("pagos"),
		Errors:  report.Errors,
	})
}
