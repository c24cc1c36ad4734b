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

// GastoService maneja la lógica de negocio para Gasto
type GastoService struct {
	gastoRepo *database.GastoRepository
	logger    *logrus.Logger
}

// NewGastoService crea una nueva instancia del servicio
func NewGastoService(db *database.DB, logger *logrus.Logger) *GastoService {
	return &GastoService{
		gastoRepo: database.NewGastoRepository(db, logger),
		logger:    logger,
	}
}

// Create registra un nuevo gasto. Sin fecha explícita se usa la fecha
// actual.
func (s *GastoService) Create(req *models.GastoRequest) (*models.Gasto, error) {
	fecha := time.Now().Truncate(24 * time.Hour)
	if parsed := importer.ParseDate(req.Fecha); parsed != nil {
		fecha = *parsed
	}

	gasto := &models.Gasto{
		ID:       uuid.New(),
		Concepto: req.Concepto,
		Monto:    req.Monto,
		Fecha:    fecha,
	}

	if err := s.gastoRepo.Create(gasto); err != nil {
		return nil, fmt.Errorf("error creating gasto: %w", err)
	}

	s.logger.WithFields(logrus.Fields{
		"gasto_id": gasto.ID,
		"concepto": gasto.Concepto,
	}).Info("Gasto registered successfully")

	return gasto, nil
}

// GetByID obtiene un gasto por su ID
func (s *GastoService) GetByID(id uuid.UUID) (*models.Gasto, error) {
	gasto, err := s.gastoRepo.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("error getting gasto: %w", err)
	}

	return gasto, nil
}

// List obtiene todos los gastos
func (s *GastoService) List() ([]models.Gasto, error) {
	gastos, err := s.gastoRepo.List()
	if err != nil {
		return nil, fmt.Errorf("error getting gastos: %w", err)
	}

	return gastos, nil
}

// Delete elimina un gasto por su ID
func (s *GastoService) Delete(id uuid.UUID) error {
	if err := s.gastoRepo.Delete(id); err != nil {
		return fmt.Errorf("error deleting gasto: %w", err)
	}

	return nil
}
