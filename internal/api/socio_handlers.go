package api

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/badgers-labs/club-service/internal/models"
	"github.com/gin-gonic/gin"
)

// ListSocios obtiene los socios, opcionalmente filtrados con ?search=
func (api *API) ListSocios(c *gin.Context) {
	socios, err := api.socioService.List(c.Query("search"))
	if err != nil {
		api.logger.WithError(err).Error("Error listing socios")
		c.JSON(http.StatusInternalServerError, models.NewInternalError("Error al obtener los socios"))
		return
	}

	if socios == nil {
		socios = []models.Socio{}
	}

	c.JSON(http.StatusOK, socios)
}

// GetSocio obtiene un socio por su CI. El CI es la clave natural de la
// ruta y puede contener puntos y guiones.
func (api *API) GetSocio(c *gin.Context) {
	ci := c.Param("ci")

	socio, err := api.socioService.GetByCI(ci)
	if err != nil {
		if strings.Contains(err.Error(), "not found") {
			c.JSON(http.StatusNotFound, models.NewNotFoundError("Socio no encontrado"))
			return
		}
		api.logger.WithError(err).Error("Error getting socio")
		c.JSON(http.StatusInternalServerError, models.NewInternalError("Error al obtener el socio"))
		return
	}

	c.JSON(http.StatusOK, socio)
}

// CreateSocio crea un nuevo socio
func (api *API) CreateSocio(c *gin.Context) {
	var req models.SocioRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		api.logger.WithError(err).Error("Error binding create socio request")
		c.JSON(http.StatusBadRequest, models.NewValidationError("Formato de request inválido", []models.ErrorDetail{
			{Field: "body", Issue: err.Error()},
		}))
		return
	}

	socio, err := api.socioService.Create(&req)
	if err != nil {
		if strings.Contains(err.Error(), "already exists") {
			c.JSON(http.StatusConflict, models.NewConflictError("Ya existe un socio con ese CI"))
			return
		}
		api.logger.WithError(err).Error("Error creating socio")
		c.JSON(http.StatusInternalServerError, models.NewInternalError("Error al crear el socio"))
		return
	}

	c.JSON(http.StatusCreated, socio)
}

// UpdateSocio actualiza un socio. Si el CI del payload difiere del de la
// ruta se trata de un renombre de clave: falla con conflicto si el CI nuevo
// ya está en uso.
func (api *API) UpdateSocio(c *gin.Context) {
	ci := c.Param("ci")

	var req models.SocioRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		api.logger.WithError(err).Error("Error binding update socio request")
		c.JSON(http.StatusBadRequest, models.NewValidationError("Formato de request inválido", []models.ErrorDetail{
			{Field: "body", Issue: err.Error()},
		}))
		return
	}

	socio, err := api.socioService.Update(ci, &req)
	if err != nil {
		if strings.Contains(err.Error(), "already in use") {
			c.JSON(http.StatusConflict, models.NewConflictError("El CI ya está en uso"))
			return
		}
		if strings.Contains(err.Error(), "not found") {
			c.JSON(http.StatusNotFound, models.NewNotFoundError("Socio no encontrado"))
			return
		}
		api.logger.WithError(err).Error("Error updating socio")
		c.JSON(http.StatusInternalServerError, models.NewInternalError("Error al actualizar el socio"))
		return
	}

	c.JSON(http.StatusOK, socio)
}

// DeleteSocio elimina un socio por su CI
func (api *API) DeleteSocio(c *gin.Context) {
	ci := c.Param("ci")

	if err := api.socioService.Delete(ci); err != nil {
		if strings.Contains(err.Error(), "not found") {
			c.JSON(http.StatusNotFound, models.NewNotFoundError("Socio no encontrado"))
			return
		}
		api.logger.WithError(err).Error("Error deleting socio")
		c.JSON(http.StatusInternalServerError, models.NewInternalError("Error al eliminar el socio"))
		return
	}

	c.Status(http.StatusNoContent)
}

// CleanupSocios elimina todos los socios sin CI (nulo o vacío)
func (api *API) CleanupSocios(c *gin.Context) {
	removed, err := api.socioService.Cleanup()
	if err != nil {
		api.logger.WithError(err).Error("Error cleaning up socios")
		c.JSON(http.StatusInternalServerError, models.NewInternalError("Error al limpiar los socios"))
		return
	}

	c.JSON(http.StatusOK, models.MessageResponse{
		Message: fmt.Sprintf("Se eliminaron %d socios sin CI.", removed),
	})
}

// ImportSocios importa socios desde un CSV con reporte por fila
func (api *API) ImportSocios(c *gin.Context) {
	file, ok := api.uploadedFile(c)
	if !ok {
		return
	}
	defer file.Close()

	report, err := api.socioService.ImportCSV(file)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.NewValidationError("No se pudo procesar el archivo CSV", []models.ErrorDetail{
			{Field: "file", Issue: err.Error()},
		}))
		return
	}

	c.JSON(http.StatusOK, models.ImportResponse{
		Message: report.Message("socios"),
		Errors:  report.Errors,
	})
}
