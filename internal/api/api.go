package api

import (
	"mime/multipart"
	"net/http"

	"github.com/badgers-labs/club-service/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/badgers-labs/club-service/internal/services"
)

// API maneja todos los endpoints de la API
type API struct {
	socioService     *services.SocioService
	pagoService      *services.PagoService
	productoService  *services.ProductoService
	ventaService     *services.VentaService
	gastoService     *services.GastoService
	dashboardService *services.DashboardService
	logger           *logrus.Logger
}

// NewAPI crea una nueva instancia de la API
func NewAPI(
	socioService *services.SocioService,
	pagoService *services.PagoService,
	productoService *services.ProductoService,
	ventaService *services.VentaService,
	gastoService *services.GastoService,
	dashboardService *services.DashboardService,
	logger *logrus.Logger,
) *API {
	return &API{
		socioService:     socioService,
		pagoService:      pagoService,
		productoService:  productoService,
		ventaService:     ventaService,
		gastoService:     gastoService,
		dashboardService: dashboardService,
		logger:           logger,
	}
}

// GetDashboardStats obtiene las estadísticas del dashboard
func (api *API) GetDashboardStats(c *gin.Context) {
	stats, err := api.dashboardService.GetStats()
	if err != nil {
		api.logger.WithError(err).Error("Error getting dashboard stats")
		c.JSON(http.StatusInternalServerError, models.NewInternalError("Error al obtener las estadísticas"))
		return
	}

	c.JSON(http.StatusOK, stats)
}

// uploadedFile abre el archivo del campo multipart "file". Sin archivo
// adjunto la importación falla antes de procesar fila alguna.
func (api *API) uploadedFile(c *gin.Context) (multipart.File, bool) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, models.NewValidationError("No se proporcionó ningún archivo", []models.ErrorDetail{
			{Field: "file", Issue: "Se requiere un archivo CSV en el campo 'file'"},
		}))
		return nil, false
	}

	file, err := fileHeader.Open()
	if err != nil {
		api.logger.WithError(err).Error("Error opening uploaded file")
		c.JSON(http.StatusBadRequest, models.NewValidationError("No se pudo leer el archivo", []models.ErrorDetail{
			{Field: "file", Issue: err.Error()},
		}))
		return nil, false
	}

	return file, true
}
