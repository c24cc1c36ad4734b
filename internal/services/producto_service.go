package services

import (
	"fmt"
	"io"
	"strconv"

	"github.com/badgers-labs/club-service/internal/database"
	"github.com/badgers-labs/club-service/internal/importer"
	"github.com/badgers-labs/club-service/internal/models"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

// ProductoService maneja la lógica de negocio para Producto
type ProductoService struct {
	productoRepo *database.ProductoRepository
	logger       *logrus.Logger
}

// NewProductoService crea una nueva instancia del servicio
func NewProductoService(db *database.DB, logger *logrus.Logger) *ProductoService {
	return &ProductoService{
		productoRepo: database.NewProductoRepository(db, logger),
		logger:       logger,
	}
}

// Create crea un nuevo producto
func (s *ProductoService) Create(req *models.ProductoRequest) (*models.Producto, error) {
	exists, err := s.productoRepo.ExistsByNombre(req.Nombre)
	if err != nil {
		return nil, fmt.Errorf("error checking producto: %w", err)
	}
	if exists {
		return nil, fmt.Errorf("producto %s already exists", req.Nombre)
	}

	producto := &models.Producto{
		Nombre:      req.Nombre,
		PrecioVenta: req.PrecioVenta,
		PrecioCosto: req.PrecioCosto,
		Stock:       req.Stock,
	}

	if err := s.productoRepo.Create(producto); err != nil {
		return nil, fmt.Errorf("error creating producto: %w", err)
	}

	s.logger.WithField("nombre", producto.Nombre).Info("Producto created successfully")

	return producto, nil
}

// GetByNombre obtiene un producto por su nombre
func (s *ProductoService) GetByNombre(nombre string) (*models.Producto, error) {
	producto, err := s.productoRepo.GetByNombre(nombre)
	if err != nil {
		return nil, fmt.Errorf("error getting producto: %w", err)
	}

	return producto, nil
}

// List obtiene todos los productos
func (s *ProductoService) List() ([]models.Producto, error) {
	productos, err := s.productoRepo.List()
	if err != nil {
		return nil, fmt.Errorf("error getting productos: %w", err)
	}

	return productos, nil
}

// Update reemplaza los campos de un producto existente; el nombre no cambia
func (s *ProductoService) Update(nombre string, req *models.ProductoRequest) (*models.Producto, error) {
	producto := &models.Producto{
		Nombre:      nombre,
		PrecioVenta: req.PrecioVenta,
		PrecioCosto: req.PrecioCosto,
		Stock:       req.Stock,
	}

	if err := s.productoRepo.Update(producto); err != nil {
		return nil, fmt.Errorf("error updating producto: %w", err)
	}

	return producto, nil
}

// Delete elimina un producto por su nombre
func (s *ProductoService) Delete(nombre string) error {
	if err := s.productoRepo.Delete(nombre); err != nil {
		return fmt.Errorf("error deleting producto: %w", err)
	}

	return nil
}

// ImportCSV procesa un CSV de inventario fila por fila, con el nombre del
// producto como clave. Los campos numéricos con columna ausente valen cero;
// un valor presente que no parsea es un error de fila.
func (s *ProductoService) ImportCSV(r io.Reader) (*importer.Report, error) {
	rows, err := importer.ReadRows(r)
	if err != nil {
		return nil, err
	}

	report := importer.NewReport()
	for _, row := range rows {
		nombre := row.GetOr("nombre", "N/A")
		if err := s.importRow(row, nombre); err != nil {
			report.AddError("Producto", nombre, err)
			continue
		}
		report.AddSuccess()
	}

	s.logger.WithFields(logrus.Fields{
		"success": report.SuccessCount,
		"errors":  report.ErrorCount,
	}).Info("Producto import completed")

	return report, nil
}

func (s *ProductoService) importRow(row importer.Row, nombre string) error {
	if nombre == "N/A" {
		return fmt.Errorf("columna nombre no presente en el archivo")
	}

	precioVenta, err := decimal.NewFromString(row.GetOr("precio_venta", "0"))
	if err != nil {
		return fmt.Errorf("precio_venta inválido: %q", row.Get("precio_venta"))
	}

	precioCosto, err := decimal.NewFromString(row.GetOr("precio_costo", "0"))
	if err != nil {
		return fmt.Errorf("precio_costo inválido: %q", row.Get("precio_costo"))
	}

	stock, err := strconv.Atoi(row.GetOr("stock", "0"))
	if err != nil {
		return fmt.Errorf("stock inválido: %q", row.Get("stock"))
	}

	producto := &models.Producto{
		Nombre:      nombre,
		PrecioVenta: precioVenta,
		PrecioCosto: precioCosto,
		Stock:       stock,
	}

	exists, err := s.productoRepo.ExistsByNombre(nombre)
	if err != nil {
		return err
	}

	if exists {
		return s.productoRepo.Update(producto)
	}
	return s.productoRepo.Create(producto)
}
