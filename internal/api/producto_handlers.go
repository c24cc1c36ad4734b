package api

import (
	"net/http"
	"strings"

	"github.com/badgers-labs/club-service/internal/models"
	"github.com/gin-gonic/gin"
)

// ListProductos obtiene todos los productos del inventario
func (api *API) ListProductos(c *gin.Context) {
	productos, err := api.productoService.List()
	if err != nil {
		api.logger.WithError(err).Error("Error listing productos")
		c.JSON(http.StatusInternalServerError, models.NewInternalError("Error al obtener los productos"))
		return
	}

	if productos == nil {
		productos = []models.Producto{}
	}

	c.JSON(http.StatusOK, productos)
}

// GetProducto obtiene un producto por su nombre
func (api *API) GetProducto(c *gin.Context) {
	nombre := c.Param("nombre")

	producto, err := api.productoService.GetByNombre(nombre)
	if err != nil {
		if strings.Contains(err.Error(), "not found") {
			c.JSON(http.StatusNotFound, models.NewNotFoundError("Producto no encontrado"))
			return
		}
		api.logger.WithError(err).Error("Error getting producto")
		c.JSON(http.StatusInternalServerError, models.NewInternalError("Error al obtener el producto"))
		return
	}

	c.JSON(http.StatusOK, producto)
}

// CreateProducto crea un nuevo producto
func (api *API) CreateProducto(c *gin.Context) {
	var req models.ProductoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		api.logger.WithError(err).Error("Error binding create producto request")
		c.JSON(http.StatusBadRequest, models.NewValidationError("Formato de request inválido", []models.ErrorDetail{
			{Field: "body", Issue: err.Error()},
		}))
		return
	}

	producto, err := api.productoService.Create(&req)
	if err != nil {
		if strings.Contains(err.Error(), "already exists") {
			c.JSON(http.StatusConflict, models.NewConflictError("Ya existe un producto con ese nombre"))
			return
		}
		api.logger.WithError(err).Error("Error creating producto")
		c.JSON(http.StatusInternalServerError, models.NewInternalError("Error al crear el producto"))
		return
	}

	c.JSON(http.StatusCreated, producto)
}

// UpdateProducto actualiza los campos de un producto existente
func (api *API) UpdateProducto(c *gin.Context) {
	nombre := c.Param("nombre")

	var req models.ProductoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		api.logger.WithError(err).Error("Error binding update producto request")
		c.JSON(http.StatusBadRequest, models.NewValidationError("Formato de request inválido", []models.ErrorDetail{
			{Field: "body", Issue: err.Error()},
		}))
		return
	}

	producto, err := api.productoService.Update(nombre, &req)
	if err != nil {
		if strings.Contains(err.Error(), "not found") {
			c.JSON(http.StatusNotFound, models.NewNotFoundError("Producto no encontrado"))
			return
		}
		api.logger.WithError(err).Error("Error updating producto")
		c.JSON(http.StatusInternalServerError, models.NewInternalError("Error al actualizar el producto"))
		return
	}

	c.JSON(http.StatusOK, producto)
}

// DeleteProducto elimina un producto por su nombre
func (api *API) DeleteProducto(c *gin.Context) {
	nombre := c.Param("nombre")

	if err := api.productoService.Delete(nombre); err != nil {
		if strings.Contains(err.Error(), "not found") {
			c.JSON(http.StatusNotFound, models.NewNotFoundError("Producto no encontrado"))
			return
		}
		api.logger.WithError(err).Error("Error deleting producto")
		c.JSON(http.StatusInternalServerError, models.NewInternalError("Error al eliminar el producto"))
		return
	}

	c.Status(http.StatusNoContent)
}

// ImportProductos importa el inventario desde un CSV con reporte por fila
func (api *API) ImportProductos(c *gin.Context) {
	file, ok := api.uploadedFile(c)
	if !ok {
		return
	}
	defer file.Close()

	report, err := api.productoService.ImportCSV(file)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.NewValidationError("No se pudo procesar el archivo CSV", []models.ErrorDetail{
			{Field: "file", Issue: err.Error()},
		}))
		return
	}

	c.JSON(http.StatusOK, models.ImportResponse{
		Message: report.Message("productos"),
		Errors:  report.Errors,
	})
}
