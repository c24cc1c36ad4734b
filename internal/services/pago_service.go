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

// PagoService maneja la lógica de negocio para Pago
type PagoService struct {
	pagoRepo *database.PagoRepository
	logger   *logrus.Logger
}

// NewPagoService crea una nueva instancia del servicio
func NewPagoService(db *database.DB, logger *logrus.Logger) *PagoService {
	return &PagoService{
		pagoRepo: database.NewPagoRepository(db, logger),
		logger:   logger,
	}
}

// pagoFromRequest construye el pago con su id derivado de los datos
func pagoFromRequest(req *models.PagoRequest) *models.Pago {
	return &models.Pago{
		ID:         models.PagoID(req.SocioCI, strconv.Itoa(req.Mes), strconv.Itoa(req.Anio)),
		SocioCI:    req.SocioCI,
		Mes:        req.Mes,
		Anio:       req.Anio,
		Monto:      req.Monto,
		FechaPago:  importer.ParseDate(req.FechaPago),
		MetodoPago: req.MetodoPago,
	}
}

// Upsert crea el pago del socio para el mes/año, o lo sobrescribe si ya
// existe: a lo sumo un pago por combinación
func (s *PagoService) Upsert(req *models.PagoRequest) (*models.Pago, error) {
	pago := pagoFromRequest(req)

	exists, err := s.pagoRepo.ExistsByID(pago.ID)
	if err != nil {
		return nil, fmt.Errorf("error checking pago: %w", err)
	}

	if exists {
		if err := s.pagoRepo.Update(pago); err != nil {
			return nil, fmt.Errorf("error updating pago: %w", err)
		}
	} else {
		if err := s.pagoRepo.Create(pago); err != nil {
			return nil, fmt.Errorf("error creating pago: %w", err)
		}
	}

	s.logger.WithFields(logrus.Fields{
		"pago_id": pago.ID,
		"monto":   pago.Monto,
	}).Info("Pago registered successfully")

	return pago, nil
}

// GetByID obtiene un pago por su id derivado
func (s *PagoService) GetByID(id string) (*models.Pago, error) {
	pago, err := s.pagoRepo.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("error getting pago: %w", err)
	}

	return pago, nil
}

// List obtiene todos los pagos
func (s *PagoService) List() ([]models.Pago, error) {
	pagos, err := s.pagoRepo.List()
	if err != nil {
		return nil, fmt.Errorf("error getting pagos: %w", err)
	}

	return pagos, nil
}

// Delete elimina un pago por su id
func (s *PagoService) Delete(id string) error {
	if err := s.pagoRepo.Delete(id); err != nil {
		return fmt.Errorf("error deleting pago: %w", err)
	}

	return nil
}

// ImportCSV procesa un CSV de pagos fila por fila. El id se deriva de los
// valores crudos de ci/mes/año antes de validar, para que una fila
// malformada igual se reporte con su clave calculada. Mes y año deben ser
// enteros y el monto numérico; un fallo de coerción es un error de fila, no
// del batch.
func (s *PagoService) ImportCSV(r io.Reader) (*importer.Report, error) {
	rows, err := importer.ReadRows(r)
	if err != nil {
		return nil, err
	}

	report := importer.NewReport()
	for _, row := range rows {
		ci := row.Get("ci")
		mes := row.Get("mes")
		anio := row.Get("año")
		if anio == "" {
			anio = row.Get("anio")
		}

		// La clave se calcula antes de cualquier validación
		pagoID := models.PagoID(ci, mes, anio)

		if err := s.importRow(pagoID, ci, mes, anio, row); err != nil {
			report.AddError("ID", pagoID, err)
			continue
		}
		report.AddSuccess()
	}

	s.logger.WithFields(logrus.Fields{
		"success": report.SuccessCount,
		"errors":  report.ErrorCount,
	}).Info("Pago import completed")

	return report, nil
}

func (s *PagoService) importRow(pagoID, ci, mes, anio string, row importer.Row) error {
	if ci == "" {
		return fmt.Errorf("ci vacío")
	}

	mesInt, err := strconv.Atoi(mes)
	if err != nil {
		return fmt.Errorf("mes inválido: %q", mes)
	}

	anioInt, err := strconv.Atoi(anio)
	if err != nil {
		return fmt.Errorf("año inválido: %q", anio)
	}

	monto, err := decimal.NewFromString(row.Get("monto"))
	if err != nil {
		return fmt.Errorf("monto inválido: %q", row.Get("monto"))
	}

	pago := &models.Pago{
		ID:         pagoID,
		SocioCI:    ci,
		Mes:        mesInt,
		Anio:       anioInt,
		Monto:      monto,
		FechaPago:  importer.ParseDate(row.Get("fecha_pago")),
		MetodoPago: row.Get("metodo_pago"),
	}

	exists, err := s.pagoRepo.ExistsByID(pagoID)
	if err != nil {
		return err
	}

	if exists {
		return s.pagoRepo.Update(pago)
	}
	return s.pagoRepo.Create(pago)
}
