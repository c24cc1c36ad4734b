package services

import (
	"errors"
	"fmt"
	"io"

	"github.com/badgers-labs/club-service/internal/database"
	"github.com/badgers-labs/club-service/internal/importer"
	"github.com/badgers-labs/club-service/internal/models"
	"github.com/lib/pq"
	"github.com/sirupsen/logrus"
)

// SocioService maneja la lógica de negocio para Socio
type SocioService struct {
	socioRepo *database.SocioRepository
	logger    *logrus.Logger
}

// NewSocioService crea una nueva instancia del servicio
func NewSocioService(db *database.DB, logger *logrus.Logger) *SocioService {
	return &SocioService{
		socioRepo: database.NewSocioRepository(db, logger),
		logger:    logger,
	}
}

// fromRequest construye el socio a partir del request. La fecha de
// nacimiento se interpreta con los formatos flexibles de la importación; un
// texto no reconocido queda como fecha ausente.
func socioFromRequest(req *models.SocioRequest) *models.Socio {
	activo := true
	if req.Activo != nil {
		activo = *req.Activo
	}

	return &models.Socio{
		CI:                 req.CI,
		Nombre:             req.Nombre,
		Celular:            req.Celular,
		ContactoEmergencia: req.ContactoEmergencia,
		EmergenciaMovil:    req.EmergenciaMovil,
		FechaNacimiento:    importer.ParseDate(req.FechaNacimiento),
		TipoCuota:          req.TipoCuota,
		Enfermedades:       req.Enfermedades,
		Comentarios:        req.Comentarios,
		Activo:             activo,
		Foto:               req.Foto,
	}
}

// Create crea un nuevo socio
func (s *SocioService) Create(req *models.SocioRequest) (*models.Socio, error) {
	exists, err := s.socioRepo.ExistsByCI(req.CI)
	if err != nil {
		return nil, fmt.Errorf("error checking socio: %w", err)
	}
	if exists {
		return nil, fmt.Errorf("socio with CI %s already exists", req.CI)
	}

	socio := socioFromRequest(req)
	if err := s.socioRepo.Create(socio); err != nil {
		return nil, fmt.Errorf("error creating socio: %w", err)
	}

	s.logger.WithFields(logrus.Fields{
		"ci":     socio.CI,
		"nombre": socio.Nombre,
	}).Info("Socio created successfully")

	return socio, nil
}

// GetByCI obtiene un socio por su CI
func (s *SocioService) GetByCI(ci string) (*models.Socio, error) {
	socio, err := s.socioRepo.GetByCI(ci)
	if err != nil {
		return nil, fmt.Errorf("error getting socio: %w", err)
	}

	return socio, nil
}

// List obtiene los socios, opcionalmente filtrados por nombre o CI
func (s *SocioService) List(search string) ([]models.Socio, error) {
	socios, err := s.socioRepo.List(search)
	if err != nil {
		return nil, fmt.Errorf("error getting socios: %w", err)
	}

	return socios, nil
}

// Update actualiza un socio. Si el CI del payload difiere del CI de la ruta
// el cambio es un renombre estructural: se verifica que el CI nuevo esté
// libre y se reemplaza el registro (delete + insert) en una transacción. Un
// renombre concurrente al mismo CI pierde por la violación de unicidad y se
// reporta como el mismo conflicto.
func (s *SocioService) Update(ci string, req *models.SocioRequest) (*models.Socio, error) {
	socio := socioFromRequest(req)

	if req.CI == ci {
		if err := s.socioRepo.Update(socio); err != nil {
			return nil, fmt.Errorf("error updating socio: %w", err)
		}
		return socio, nil
	}

	exists, err := s.socioRepo.ExistsByCI(req.CI)
	if err != nil {
		return nil, fmt.Errorf("error checking socio: %w", err)
	}
	if exists {
		return nil, fmt.Errorf("CI %s already in use", req.CI)
	}

	if err := s.socioRepo.Rename(ci, socio); err != nil {
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("CI %s already in use", req.CI)
		}
		return nil, fmt.Errorf("error renaming socio: %w", err)
	}

	s.logger.WithFields(logrus.Fields{
		"ci_anterior": ci,
		"ci_nuevo":    socio.CI,
	}).Info("Socio renamed successfully")

	return socio, nil
}

// Delete elimina un socio por su CI. Los pagos del socio se conservan como
// registro histórico.
func (s *SocioService) Delete(ci string) error {
	if err := s.socioRepo.Delete(ci); err != nil {
		return fmt.Errorf("error deleting socio: %w", err)
	}

	s.logger.WithField("ci", ci).Info("Socio deleted")

	return nil
}

// Cleanup elimina todos los socios cuyo CI es nulo o vacío y retorna la
// cantidad eliminada
func (s *SocioService) Cleanup() (int64, error) {
	removed, err := s.socioRepo.DeleteSinCI()
	if err != nil {
		return 0, fmt.Errorf("error cleaning up socios: %w", err)
	}

	s.logger.WithField("removed", removed).Info("Socios without CI removed")

	return removed, nil
}

// ImportCSV procesa un CSV de socios fila por fila: busca el socio por CI y
// reemplaza sus campos, o lo crea si no existe. Cada fila es independiente;
// un fallo se cuenta y se reporta con el CI de la fila sin abortar el batch.
func (s *SocioService) ImportCSV(r io.Reader) (*importer.Report, error) {
	rows, err := importer.ReadRows(r)
	if err != nil {
		return nil, err
	}

	report := importer.NewReport()
	for _, row := range rows {
		ci := row.GetOr("ci", "N/A")
		if err := s.importRow(row, ci); err != nil {
			report.AddError("CI", ci, err)
			continue
		}
		report.AddSuccess()
	}

	s.logger.WithFields(logrus.Fields{
		"success": report.SuccessCount,
		"errors":  report.ErrorCount,
	}).Info("Socio import completed")

	return report, nil
}

func (s *SocioService) importRow(row importer.Row, ci string) error {
	if ci == "N/A" {
		return fmt.Errorf("columna ci no presente en el archivo")
	}

	socio := &models.Socio{
		CI:                 ci,
		Nombre:             row.Get("nombre"),
		Celular:            row.Get("celular"),
		ContactoEmergencia: row.Get("contacto_emergencia"),
		EmergenciaMovil:    row.Get("emergencia_movil"),
		FechaNacimiento:    importer.ParseDate(row.Get("fecha_nacimiento")),
		TipoCuota:          row.Get("tipo_cuota"),
		Enfermedades:       row.Get("enfermedades"),
		Comentarios:        row.Get("comentarios"),
		Activo:             true,
	}

	existing, err := s.socioRepo.FindByCI(ci)
	if err != nil {
		return err
	}

	if existing != nil {
		// El flag activo y la foto no se importan desde CSV
		socio.Activo = existing.Activo
		socio.Foto = existing.Foto
		return s.socioRepo.Update(socio)
	}
	return s.socioRepo.Create(socio)
}

// isUniqueViolation detecta la violación de unicidad de PostgreSQL (23505)
func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == "23505"
	}
	return false
}
