package services

import (
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/badgers-labs/club-service/internal/database"
	"github.com/badgers-labs/club-service/internal/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newProductoServiceTest(t *testing.T) (*ProductoService, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return NewProductoService(database.NewFromSQL(db), testLogger()), mock
}

func TestProductoService_Create(t *testing.T) {
	service, mock := newProductoServiceTest(t)

	mock.ExpectQuery("SELECT EXISTS").
		WithArgs("Camiseta").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))
	mock.ExpectExec("INSERT INTO productos").
		WillReturnResult(sqlmock.NewResult(0, 1))

	producto, err := service.Create(&models.ProductoRequest{
		Nombre:      "Camiseta",
		PrecioVenta: decimal.NewFromInt(250),
		PrecioCosto: decimal.NewFromInt(100),
		Stock:       10,
	})

	require.NoError(t, err)
	assert.Equal(t, "Camiseta", producto.Nombre)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProductoService_Create_NombreDuplicado(t *testing.T) {
	service, mock := newProductoServiceTest(t)

	mock.ExpectQuery("SELECT EXISTS").
		WithArgs("Camiseta").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	_, err := service.Create(&models.ProductoRequest{Nombre: "Camiseta"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProductoService_ImportCSV(t *testing.T) {
	service, mock := newProductoServiceTest(t)

	// fila 1: producto nuevo
	mock.ExpectQuery("SELECT EXISTS").
		WithArgs("Camiseta").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))
	mock.ExpectExec("INSERT INTO productos").
		WillReturnResult(sqlmock.NewResult(0, 1))

	// fila 2: producto existente, se sobrescribe
	mock.ExpectQuery("SELECT EXISTS").
		WithArgs("Gorra").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))
	mock.ExpectExec("UPDATE productos SET").
		WillReturnResult(sqlmock.NewResult(0, 1))

	csv := "nombre,precio_venta,precio_costo,stock\n" +
		"Camiseta,250.00,100.00,10\n" +
		"Gorra,120,60,5\n"
	report, err := service.ImportCSV(strings.NewReader(csv))

	require.NoError(t, err)
	assert.Equal(t, 2, report.SuccessCount)
	assert.Equal(t, 0, report.ErrorCount)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProductoService_ImportCSV_ColumnasNumericasAusentes(t *testing.T) {
	service, mock := newProductoServiceTest(t)

	// sin columnas numéricas en el encabezado, todo vale cero
	mock.ExpectQuery("SELECT EXISTS").
		WithArgs("Camiseta").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))
	mock.ExpectExec("INSERT INTO productos").
		WithArgs("Camiseta", decimal.Zero, decimal.Zero, 0).
		WillReturnResult(sqlmock.NewResult(0, 1))

	report, err := service.ImportCSV(strings.NewReader("nombre\nCamiseta\n"))

	require.NoError(t, err)
	assert.Equal(t, 1, report.SuccessCount)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProductoService_ImportCSV_ValorPresenteVacio(t *testing.T) {
	service, _ := newProductoServiceTest(t)

	// una columna presente pero vacía no toma el valor por defecto
	csv := "nombre,stock\nCamiseta,\n"
	report, err := service.ImportCSV(strings.NewReader(csv))

	require.NoError(t, err)
	assert.Equal(t, 0, report.SuccessCount)
	assert.Equal(t, 1, report.ErrorCount)
	assert.Equal(t, `Fila con Producto Camiseta: stock inválido: ""`, report.Errors[0])
}

func TestProductoService_ImportCSV_SinColumnaNombre(t *testing.T) {
	service, _ := newProductoServiceTest(t)

	report, err := service.ImportCSV(strings.NewReader("stock\n10\n"))

	require.NoError(t, err)
	assert.Equal(t, 1, report.ErrorCount)
	assert.Equal(t, "Fila con Producto N/A: columna nombre no presente en el archivo", report.Errors[0])
}
