package database

import (
	"database/sql"
	"fmt"

	"github.com/badgers-labs/club-service/internal/models"
	"github.com/sirupsen/logrus"
)

// SocioRepository maneja las operaciones de base de datos para Socio.
// La identidad de almacenamiento es el CI (clave natural), no un id numérico.
type SocioRepository struct {
	db     *DB
	logger *logrus.Logger
}

// NewSocioRepository crea una nueva instancia del repositorio
func NewSocioRepository(db *DB, logger *logrus.Logger) *SocioRepository {
	return &SocioRepository{
		db:     db,
		logger: logger,
	}
}

const socioColumns = `ci, nombre, celular, contacto_emergencia, emergencia_movil,
	fecha_nacimiento, tipo_cuota, enfermedades, comentarios, activo, foto`

// scanSocio escanea una fila de socios manejando las columnas anulables
func scanSocio(scan func(...interface{}) error) (*models.Socio, error) {
	var socio models.Socio
	var ci sql.NullString
	var fechaNacimiento sql.NullTime
	var foto sql.NullString

	err := scan(
		&ci, &socio.Nombre, &socio.Celular, &socio.ContactoEmergencia,
		&socio.EmergenciaMovil, &fechaNacimiento, &socio.TipoCuota,
		&socio.Enfermedades, &socio.Comentarios, &socio.Activo, &foto,
	)
	if err != nil {
		return nil, err
	}

	socio.CI = ci.String
	if fechaNacimiento.Valid {
		t := fechaNacimiento.Time
		socio.FechaNacimiento = &t
	}
	if foto.Valid {
		socio.Foto = &foto.String
	}

	return &socio, nil
}

// Create crea un nuevo socio
func (r *SocioRepository) Create(socio *models.Socio) error {
	query := `
		INSERT INTO socios (` + socioColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`

	_, err := r.db.ExecWithTimeout(query,
		socio.CI, socio.Nombre, socio.Celular, socio.ContactoEmergencia,
		socio.EmergenciaMovil, nullTime(socio.FechaNacimiento), socio.TipoCuota,
		socio.Enfermedades, socio.Comentarios, socio.Activo, nullString(socio.Foto),
	)

	if err != nil {
		return fmt.Errorf("error creating socio: %w", err)
	}

	return nil
}

// GetByCI obtiene un socio por su CI
func (r *SocioRepository) GetByCI(ci string) (*models.Socio, error) {
	query := `
		SELECT ` + socioColumns + `
		FROM socios
		WHERE ci = $1
	`

	row := r.db.QueryRowWithTimeout(query, ci)
	socio, err := scanSocio(row.Scan)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("socio not found: %s", ci)
		}
		return nil, fmt.Errorf("error querying socio: %w", err)
	}

	return socio, nil
}

// FindByCI busca un socio por su CI; retorna nil sin error cuando no existe
func (r *SocioRepository) FindByCI(ci string) (*models.Socio, error) {
	query := `
		SELECT ` + socioColumns + `
		FROM socios
		WHERE ci = $1
	`

	row := r.db.QueryRowWithTimeout(query, ci)
	socio, err := scanSocio(row.Scan)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("error querying socio: %w", err)
	}

	return socio, nil
}

// ExistsByCI verifica si existe un socio con el CI dado
func (r *SocioRepository) ExistsByCI(ci string) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM socios WHERE ci = $1)`

	var exists bool
	if err := r.db.QueryRowWithTimeout(query, ci).Scan(&exists); err != nil {
		return false, fmt.Errorf("error checking socio existence: %w", err)
	}

	return exists, nil
}

// List obtiene todos los socios ordenados por nombre. Si search no es vacío
// filtra por coincidencia parcial en nombre o CI.
func (r *SocioRepository) List(search string) ([]models.Socio, error) {
	query := `
		SELECT ` + socioColumns + `
		FROM socios
	`
	var args []interface{}
	if search != "" {
		query += ` WHERE nombre ILIKE $1 OR ci ILIKE $1`
		args = append(args, "%"+search+"%")
	}
	query += ` ORDER BY nombre`

	rows, err := r.db.QueryWithTimeout(query, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying socios: %w", err)
	}
	defer rows.Close()

	var socios []models.Socio
	for rows.Next() {
		socio, err := scanSocio(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("error scanning socio: %w", err)
		}
		socios = append(socios, *socio)
	}

	return socios, nil
}

// Update actualiza los campos mutables de un socio existente, sin tocar su CI
func (r *SocioRepository) Update(socio *models.Socio) error {
	query := `
		UPDATE socios
		SET nombre = $1, celular = $2, contacto_emergencia = $3,
		    emergencia_movil = $4, fecha_nacimiento = $5, tipo_cuota = $6,
		    enfermedades = $7, comentarios = $8, activo = $9, foto = $10
		WHERE ci = $11
	`

	result, err := r.db.ExecWithTimeout(query,
		socio.Nombre, socio.Celular, socio.ContactoEmergencia,
		socio.EmergenciaMovil, nullTime(socio.FechaNacimiento), socio.TipoCuota,
		socio.Enfermedades, socio.Comentarios, socio.Activo, nullString(socio.Foto),
		socio.CI,
	)

	if err != nil {
		return fmt.Errorf("error updating socio: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("error getting rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("socio not found: %s", socio.CI)
	}

	return nil
}

// Rename reemplaza un socio bajo un CI nuevo. Como el CI es la identidad de
// almacenamiento, el cambio es un delete + insert dentro de una transacción;
// el índice único de ci arbitra renombres concurrentes al mismo CI.
func (r *SocioRepository) Rename(oldCI string, socio *models.Socio) error {
	return r.db.WithTransaction(func(tx *sql.Tx) error {
		result, err := tx.Exec(`DELETE FROM socios WHERE ci = $1`, oldCI)
		if err != nil {
			return fmt.Errorf("error deleting socio %s: %w", oldCI, err)
		}

		rowsAffected, err := result.RowsAffected()
		if err != nil {
			return fmt.Errorf("error getting rows affected: %w", err)
		}
		if rowsAffected == 0 {
			return fmt.Errorf("socio not found: %s", oldCI)
		}

		_, err = tx.Exec(`
			INSERT INTO socios (`+socioColumns+`)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
			socio.CI, socio.Nombre, socio.Celular, socio.ContactoEmergencia,
			socio.EmergenciaMovil, nullTime(socio.FechaNacimiento), socio.TipoCuota,
			socio.Enfermedades, socio.Comentarios, socio.Activo, nullString(socio.Foto),
		)
		if err != nil {
			return fmt.Errorf("error recreating socio as %s: %w", socio.CI, err)
		}

		return nil
	})
}

// Delete elimina un socio por su CI
func (r *SocioRepository) Delete(ci string) error {
	result, err := r.db.ExecWithTimeout(`DELETE FROM socios WHERE ci = $1`, ci)
	if err != nil {
		return fmt.Errorf("error deleting socio: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("error getting rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("socio not found: %s", ci)
	}

	return nil
}

// DeleteSinCI elimina todos los socios sin CI (nulo o vacío) y retorna la
// cantidad eliminada. Irreversible, sin modo de prueba.
func (r *SocioRepository) DeleteSinCI() (int64, error) {
	result, err := r.db.ExecWithTimeout(`DELETE FROM socios WHERE ci IS NULL OR ci = ''`)
	if err != nil {
		return 0, fmt.Errorf("error deleting socios without CI: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("error getting rows affected: %w", err)
	}

	return rowsAffected, nil
}

// CountActivos cuenta los socios con el flag activo
func (r *SocioRepository) CountActivos() (int, error) {
	var count int
	err := r.db.QueryRowWithTimeout(`SELECT COUNT(*) FROM socios WHERE activo = true`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error counting active socios: %w", err)
	}

	return count, nil
}
