package services

import (
	"fmt"
	"time"

	"github.com/badgers-labs/club-service/internal/database"
	"github.com/badgers-labs/club-service/internal/importer"
	"github.com/badgers-labs/club-service/internal/models"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// VentaService maneja la lógica de negocio para Venta
type VentaService struct {
	ventaRepo *database.VentaRepository
	logger    *logrus.Logger
}

// NewVentaService crea una nueva instancia del servicio
func NewVentaService(db *database.DB, logger *logrus.Logger) *VentaService {
	return &VentaService{
		ventaRepo: database.NewVentaRepository(db, logger),
		logger:    logger,
	}
}

// Create registra una nueva venta. Sin fecha explícita se usa la fecha
// actual.
func (s *VentaService) Create(req *models.VentaRequest) (*models.Venta, error) {
	fecha := time.Now().Truncate(24 * time.Hour)
	if parsed := importer.ParseDate(req.FechaVenta); parsed != nil {
		fecha = *parsed
	}

	venta := &models.Venta{
		ID:             uuid.New(),
		ProductoNombre: req.ProductoNombre,
		Cantidad:       req.Cantidad,
		Monto:          req.Monto,
		FechaVenta:     fecha,
	}

	if err := s.ventaRepo.Create(venta); err != nil {
		return nil, fmt.Errorf("error creating venta: %w", err)
	}

	s.logger.WithFields(logrus.Fields{
		"venta_id": venta.ID,
		"producto": venta.ProductoNombre,
	}).Info("Venta registered successfully")

	return venta, nil
}

// GetByID obtiene una venta por su ID
func (s *VentaService) GetByID(id uuid.UUID) (*models.Venta, error) {
	venta, err := s.ventaRepo.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("error getting venta: %w", err)
	}

	return venta, nil
}

// List obtiene todas las ventas
func (s *VentaService) List() ([]models.Venta, error) {
	ventas, err := s.ventaRepo.List()
	if err != nil {
		return nil, fmt.Errorf("error getting ventas: %w", err)
	}

	return ventas, nil
}

// Delete elimina una venta por su ID
func (s *VentaService) Delete(id uuid.UUID) error {
	if err := s.ventaRepo.Delete(id); err != nil {
		return fmt.Errorf("error deleting venta: %w", err)
	}

	return nil
}
