package database

import (
	"database/sql"
	"fmt"

	"github.com/badgers-labs/club-service/internal/models"
	"github.com/sirupsen/logrus"
)

// ProductoRepository maneja las operaciones de base de datos para Producto.
// La identidad de almacenamiento es el nombre del producto.
type ProductoRepository struct {
	db     *DB
	logger *logrus.Logger
}

// NewProductoRepository crea una nueva instancia del repositorio
func NewProductoRepository(db *DB, logger *logrus.Logger) *ProductoRepository {
	return &ProductoRepository{
		db:     db,
		logger: logger,
	}
}

// Create crea un nuevo producto
func (r *ProductoRepository) Create(producto *models.Producto) error {
	query := `
		INSERT INTO productos (nombre, precio_venta, precio_costo, stock)
		VALUES ($1, $2, $3, $4)
	`

	_, err := r.db.ExecWithTimeout(query,
		producto.Nombre, producto.PrecioVenta, producto.PrecioCosto, producto.Stock,
	)

	if err != nil {
		return fmt.Errorf("error creating producto: %w", err)
	}

	return nil
}

// GetByNombre obtiene un producto por su nombre
func (r *ProductoRepository) GetByNombre(nombre string) (*models.Producto, error) {
	query := `
		SELECT nombre, precio_venta, precio_costo, stock
		FROM productos
		WHERE nombre = $1
	`

	var producto models.Producto
	err := r.db.QueryRowWithTimeout(query, nombre).Scan(
		&producto.Nombre, &producto.PrecioVenta, &producto.PrecioCosto, &producto.Stock,
	)

	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("producto not found: %s", nombre)
		}
		return nil, fmt.Errorf("error querying producto: %w", err)
	}

	return &producto, nil
}

// ExistsByNombre verifica si existe un producto con el nombre dado
func (r *ProductoRepository) ExistsByNombre(nombre string) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM productos WHERE nombre = $1)`

	var exists bool
	if err := r.db.QueryRowWithTimeout(query, nombre).Scan(&exists); err != nil {
		return false, fmt.Errorf("error checking producto existence: %w", err)
	}

	return exists, nil
}

// List obtiene todos los productos ordenados por nombre
func (r *ProductoRepository) List() ([]models.Producto, error) {
	query := `
		SELECT nombre, precio_venta, precio_costo, stock
		FROM productos
		ORDER BY nombre
	`

	rows, err := r.db.QueryWithTimeout(query)
	if err != nil {
		return nil, fmt.Errorf("error querying productos: %w", err)
	}
	defer rows.Close()

	var productos []models.Producto
	for rows.Next() {
		var producto models.Producto
		err := rows.Scan(
			&producto.Nombre, &producto.PrecioVenta, &producto.PrecioCosto, &producto.Stock,
		)
		if err != nil {
			return nil, fmt.Errorf("error scanning producto: %w", err)
		}
		productos = append(productos, producto)
	}

	return productos, nil
}

// Update reemplaza los campos mutables de un producto existente
func (r *ProductoRepository) Update(producto *models.Producto) error {
	query := `
		UPDATE productos
		SET precio_venta = $1, precio_costo = $2, stock = $3
		WHERE nombre = $4
	`

	result, err := r.db.ExecWithTimeout(query,
		producto.PrecioVenta, producto.PrecioCosto, producto.Stock, producto.Nombre,
	)

	if err != nil {
		return fmt.Errorf("error updating producto: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("error getting rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("producto not found: %s", producto.Nombre)
	}

	return nil
}

// Delete elimina un producto por su nombre
func (r *ProductoRepository) Delete(nombre string) error {
	result, err := r.db.ExecWithTimeout(`DELETE FROM productos WHERE nombre = $1`, nombre)
	if err != nil {
		return fmt.Errorf("error deleting producto: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("error getting rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("producto not found: %s", nombre)
	}

	return nil
}

// Count cuenta todos los productos del inventario
func (r *ProductoRepository) Count() (int, error) {
	var count int
	err := r.db.QueryRowWithTimeout(`SELECT COUNT(*) FROM productos`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error counting productos: %w", err)
	}

	return count, nil
}
