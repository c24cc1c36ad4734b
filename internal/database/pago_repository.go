package database

import (
	"database/sql"
	"fmt"

	"github.com/badgers-labs/club-service/internal/models"
	"github.com/sirupsen/logrus"
)

// PagoRepository maneja las operaciones de base de datos para Pago.
// La identidad es el id derivado "{ci}_{mes}_{anio}", así que existe a lo
// sumo un pago por socio/mes/año. No hay FK hacia socios: eliminar un socio
// conserva sus pagos como registro histórico.
type PagoRepository struct {
	db     *DB
	logger *logrus.Logger
}

// NewPagoRepository crea una nueva instancia del repositorio
func NewPagoRepository(db *DB, logger *logrus.Logger) *PagoRepository {
	return &PagoRepository{
		db:     db,
		logger: logger,
	}
}

const pagoColumns = `id, socio_ci, mes, anio, monto, fecha_pago, metodo_pago`

// scanPago escanea una fila de pagos manejando la fecha anulable
func scanPago(scan func(...interface{}) error) (*models.Pago, error) {
	var pago models.Pago
	var fechaPago sql.NullTime

	err := scan(
		&pago.ID, &pago.SocioCI, &pago.Mes, &pago.Anio,
		&pago.Monto, &fechaPago, &pago.MetodoPago,
	)
	if err != nil {
		return nil, err
	}

	if fechaPago.Valid {
		t := fechaPago.Time
		pago.FechaPago = &t
	}

	return &pago, nil
}

// Create crea un nuevo pago
func (r *PagoRepository) Create(pago *models.Pago) error {
	query := `
		INSERT INTO pagos (` + pagoColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.db.ExecWithTimeout(query,
		pago.ID, pago.SocioCI, pago.Mes, pago.Anio,
		pago.Monto, nullTime(pago.FechaPago), pago.MetodoPago,
	)

	if err != nil {
		return fmt.Errorf("error creating pago: %w", err)
	}

	return nil
}

// GetByID obtiene un pago por su id derivado
func (r *PagoRepository) GetByID(id string) (*models.Pago, error) {
	query := `
		SELECT ` + pagoColumns + `
		FROM pagos
		WHERE id = $1
	`

	row := r.db.QueryRowWithTimeout(query, id)
	pago, err := scanPago(row.Scan)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("pago not found: %s", id)
		}
		return nil, fmt.Errorf("error querying pago: %w", err)
	}

	return pago, nil
}

// ExistsByID verifica si existe un pago con el id dado
func (r *PagoRepository) ExistsByID(id string) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM pagos WHERE id = $1)`

	var exists bool
	if err := r.db.QueryRowWithTimeout(query, id).Scan(&exists); err != nil {
		return false, fmt.Errorf("error checking pago existence: %w", err)
	}

	return exists, nil
}

// List obtiene todos los pagos ordenados por fecha de pago descendente
func (r *PagoRepository) List() ([]models.Pago, error) {
	query := `
		SELECT ` + pagoColumns + `
		FROM pagos
		ORDER BY fecha_pago DESC NULLS LAST
	`

	rows, err := r.db.QueryWithTimeout(query)
	if err != nil {
		return nil, fmt.Errorf("error querying pagos: %w", err)
	}
	defer rows.Close()

	var pagos []models.Pago
	for rows.Next() {
		pago, err := scanPago(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("error scanning pago: %w", err)
		}
		pagos = append(pagos, *pago)
	}

	return pagos, nil
}

// Update reemplaza los campos mutables de un pago existente
func (r *PagoRepository) Update(pago *models.Pago) error {
	query := `
		UPDATE pagos
		SET socio_ci = $1, mes = $2, anio = $3, monto = $4,
		    fecha_pago = $5, metodo_pago = $6
		WHERE id = $7
	`

	result, err := r.db.ExecWithTimeout(query,
		pago.SocioCI, pago.Mes, pago.Anio, pago.Monto,
		nullTime(pago.FechaPago), pago.MetodoPago, pago.ID,
	)

	if err != nil {
		return fmt.Errorf("error updating pago: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("error getting rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("pago not found: %s", pago.ID)
	}

	return nil
}

// Delete elimina un pago por su id
func (r *PagoRepository) Delete(id string) error {
	result, err := r.db.ExecWithTimeout(`DELETE FROM pagos WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting pago: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("error getting rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("pago not found: %s", id)
	}

	return nil
}
