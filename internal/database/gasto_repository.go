package database

import (
	"database/sql"
	"fmt"

	"github.com/badgers-labs/club-service/internal/models"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// GastoRepository maneja las operaciones de base de datos para Gasto
type GastoRepository struct {
	db     *DB
	logger *logrus.Logger
}

// NewGastoRepository crea una nueva instancia del repositorio
func NewGastoRepository(db *DB, logger *logrus.Logger) *GastoRepository {
	return &GastoRepository{
		db:     db,
		logger: logger,
	}
}

// Create crea un nuevo gasto
func (r *GastoRepository) Create(gasto *models.Gasto) error {
	query := `
		INSERT INTO gastos (id, concepto, monto, fecha)
		VALUES ($1, $2, $3, $4)
	`

	_, err := r.db.ExecWithTimeout(query,
		gasto.ID, gasto.Concepto, gasto.Monto, gasto.Fecha,
	)

	if err != nil {
		return fmt.Errorf("error creating gasto: %w", err)
	}

	return nil
}

// GetByID obtiene un gasto por su ID
func (r *GastoRepository) GetByID(id uuid.UUID) (*models.Gasto, error) {
	query := `
		SELECT id, concepto, monto, fecha
		FROM gastos
		WHERE id = $1
	`

	var gasto models.Gasto
	err := r.db.QueryRowWithTimeout(query, id).Scan(
		&gasto.ID, &gasto.Concepto, &gasto.Monto, &gasto.Fecha,
	)

	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("gasto not found: %s", id)
		}
		return nil, fmt.Errorf("error querying gasto: %w", err)
	}

	return &gasto, nil
}

// List obtiene todos los gastos ordenados por fecha descendente
func (r *GastoRepository) List() ([]models.Gasto, error) {
	query := `
		SELECT id, concepto, monto, fecha
		FROM gastos
		ORDER BY fecha DESC
	`

	rows, err := r.db.QueryWithTimeout(query)
	if err != nil {
		return nil, fmt.Errorf("error querying gastos: %w", err)
	}
	defer rows.Close()

	var gastos []models.Gasto
	for rows.Next() {
		var gasto models.Gasto
		err := rows.Scan(&gasto.ID, &gasto.Concepto, &gasto.Monto, &gasto.Fecha)
		if err != nil {
			return nil, fmt.Errorf("error scanning gasto: %w", err)
		}
		gastos = append(gastos, gasto)
	}

	return gastos, nil
}

// Delete elimina un gasto por su ID
func (r *GastoRepository) Delete(id uuid.UUID) error {
	result, err := r.db.ExecWithTimeout(`DELETE FROM gastos WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting gasto: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("error getting rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("gasto not found: %s", id)
	}

	return nil
}
