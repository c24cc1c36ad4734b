package database

import (
	"database/sql"
	"fmt"

	"github.com/badgers-labs/club-service/internal/models"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// VentaRepository maneja las operaciones de base de datos para Venta
type VentaRepository struct {
	db     *DB
	logger *logrus.Logger
}

// NewVentaRepository crea una nueva instancia del repositorio
func NewVentaRepository(db *DB, logger *logrus.Logger) *VentaRepository {
	return &VentaRepository{
		db:     db,
		logger: logger,
	}
}

// Create crea una nueva venta
func (r *VentaRepository) Create(venta *models.Venta) error {
	query := `
		INSERT INTO ventas (id, producto_nombre, cantidad, monto, fecha_venta)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := r.db.ExecWithTimeout(query,
		venta.ID, venta.ProductoNombre, venta.Cantidad, venta.Monto, venta.FechaVenta,
	)

	if err != nil {
		return fmt.Errorf("error creating venta: %w", err)
	}

	return nil
}

// GetByID obtiene una venta por su ID
func (r *VentaRepository) GetByID(id uuid.UUID) (*models.Venta, error) {
	query := `
		SELECT id, producto_nombre, cantidad, monto, fecha_venta
		FROM ventas
		WHERE id = $1
	`

	var venta models.Venta
	err := r.db.QueryRowWithTimeout(query, id).Scan(
		&venta.ID, &venta.ProductoNombre, &venta.Cantidad, &venta.Monto, &venta.FechaVenta,
	)

	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("venta not found: %s", id)
		}
		return nil, fmt.Errorf("error querying venta: %w", err)
	}

	return &venta, nil
}

// List obtiene todas las ventas ordenadas por fecha descendente
func (r *VentaRepository) List() ([]models.Venta, error) {
	query := `
		SELECT id, producto_nombre, cantidad, monto, fecha_venta
		FROM ventas
		ORDER BY fecha_venta DESC
	`

	rows, err := r.db.QueryWithTimeout(query)
	if err != nil {
		return nil, fmt.Errorf("error querying ventas: %w", err)
	}
	defer rows.Close()

	var ventas []models.Venta
	for rows.Next() {
		var venta models.Venta
		err := rows.Scan(
			&venta.ID, &venta.ProductoNombre, &venta.Cantidad, &venta.Monto, &venta.FechaVenta,
		)
		if err != nil {
			return nil, fmt.Errorf("error scanning venta: %w", err)
		}
		ventas = append(ventas, venta)
	}

	return ventas, nil
}

// Delete elimina una venta por su ID
func (r *VentaRepository) Delete(id uuid.UUID) error {
	result, err := r.db.ExecWithTimeout(`DELETE FROM ventas WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting venta: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("error getting rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("venta not found: %s", id)
	}

	return nil
}
