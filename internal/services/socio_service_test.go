package services

import (
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/badgers-labs/club-service/internal/database"
	"github.com/badgers-labs/club-service/internal/models"
	"github.com/lib/pq"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func newSocioServiceTest(t *testing.T) (*SocioService, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return NewSocioService(database.NewFromSQL(db), testLogger()), mock
}

var socioRows = []string{
	"ci", "nombre", "celular", "contacto_emergencia", "emergencia_movil",
	"fecha_nacimiento", "tipo_cuota", "enfermedades", "comentarios", "activo", "foto",
}

func TestSocioService_Create(t *testing.T) {
	service, mock := newSocioServiceTest(t)

	mock.ExpectQuery("SELECT EXISTS").
		WithArgs("12345678").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))
	mock.ExpectExec("INSERT INTO socios").
		WillReturnResult(sqlmock.NewResult(0, 1))

	socio, err := service.Create(&models.SocioRequest{
		CI:              "12345678",
		Nombre:          "Juan Pérez",
		FechaNacimiento: "15/05/1990",
	})

	require.NoError(t, err)
	assert.Equal(t, "12345678", socio.CI)
	assert.True(t, socio.Activo, "activo por defecto")
	require.NotNil(t, socio.FechaNacimiento)
	assert.Equal(t, 1990, socio.FechaNacimiento.Year())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSocioService_Create_CIDuplicado(t *testing.T) {
	service, mock := newSocioServiceTest(t)

	mock.ExpectQuery("SELECT EXISTS").
		WithArgs("12345678").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	_, err := service.Create(&models.SocioRequest{CI: "12345678", Nombre: "Juan"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSocioService_Update_MismoCI(t *testing.T) {
	service, mock := newSocioServiceTest(t)

	mock.ExpectExec("UPDATE socios SET").
		WillReturnResult(sqlmock.NewResult(0, 1))

	socio, err := service.Update("111", &models.SocioRequest{CI: "111", Nombre: "Juan"})

	require.NoError(t, err)
	assert.Equal(t, "111", socio.CI)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSocioService_Update_Renombre(t *testing.T) {
	service, mock := newSocioServiceTest(t)

	mock.ExpectQuery("SELECT EXISTS").
		WithArgs("222").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))
	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM socios WHERE ci =").
		WithArgs("111").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO socios").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	socio, err := service.Update("111", &models.SocioRequest{CI: "222", Nombre: "Juan"})

	require.NoError(t, err)
	assert.Equal(t, "222", socio.CI)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSocioService_Update_RenombreCIOcupado(t *testing.T) {
	service, mock := newSocioServiceTest(t)

	mock.ExpectQuery("SELECT EXISTS").
		WithArgs("222").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	_, err := service.Update("111", &models.SocioRequest{CI: "222", Nombre: "Juan"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "already in use")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSocioService_Update_RenombreConcurrente(t *testing.T) {
	service, mock := newSocioServiceTest(t)

	// el chequeo pasa pero otro renombre al mismo CI gana la carrera: el
	// índice único corta el insert y la transacción se revierte
	mock.ExpectQuery("SELECT EXISTS").
		WithArgs("222").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))
	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM socios WHERE ci =").
		WithArgs("111").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO socios").
		WillReturnError(&pq.Error{Code: "23505"})
	mock.ExpectRollback()

	_, err := service.Update("111", &models.SocioRequest{CI: "222", Nombre: "Juan"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "already in use")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSocioService_Cleanup(t *testing.T) {
	service, mock := newSocioServiceTest(t)

	mock.ExpectExec("DELETE FROM socios WHERE ci IS NULL").
		WillReturnResult(sqlmock.NewResult(0, 2))

	removed, err := service.Cleanup()

	require.NoError(t, err)
	assert.Equal(t, int64(2), removed)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSocioService_ImportCSV_NuevoYExistente(t *testing.T) {
	service, mock := newSocioServiceTest(t)

	// fila 1: socio nuevo
	mock.ExpectQuery("SELECT (.+) FROM socios WHERE ci").
		WithArgs("111").
		WillReturnRows(sqlmock.NewRows(socioRows))
	mock.ExpectExec("INSERT INTO socios").
		WillReturnResult(sqlmock.NewResult(0, 1))

	// fila 2: socio existente, inactivo y con foto; ambos se conservan
	mock.ExpectQuery("SELECT (.+) FROM socios WHERE ci").
		WithArgs("222").
		WillReturnRows(sqlmock.NewRows(socioRows).
			AddRow("222", "Ana", "", "", "", nil, "mensual", "", "", false, "ana.jpg"))
	mock.ExpectExec("UPDATE socios SET").
		WithArgs("Ana López", sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(),
			sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(),
			false, "ana.jpg", "222").
		WillReturnResult(sqlmock.NewResult(0, 1))

	csv := "ci,nombre\n111,Juan Pérez\n222,Ana López\n"
	report, err := service.ImportCSV(strings.NewReader(csv))

	require.NoError(t, err)
	assert.Equal(t, 2, report.SuccessCount)
	assert.Equal(t, 0, report.ErrorCount)
	assert.Equal(t, "Importación completada. 2 socios importados/actualizados, 0 errores.",
		report.Message("socios"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSocioService_ImportCSV_SinColumnaCI(t *testing.T) {
	service, _ := newSocioServiceTest(t)

	csv := "nombre\nJuan\nAna\n"
	report, err := service.ImportCSV(strings.NewReader(csv))

	require.NoError(t, err)
	assert.Equal(t, 0, report.SuccessCount)
	assert.Equal(t, 2, report.ErrorCount)
	require.Len(t, report.Errors, 2)
	assert.Equal(t, "Fila con CI N/A: columna ci no presente en el archivo", report.Errors[0])
}

func TestSocioService_ImportCSV_ArchivoVacio(t *testing.T) {
	service, _ := newSocioServiceTest(t)

	_, err := service.ImportCSV(strings.NewReader(""))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "vacío")
}

func TestSocioService_ImportCSV_FallaUnaSigueElResto(t *testing.T) {
	service, mock := newSocioServiceTest(t)

	mock.ExpectQuery("SELECT (.+) FROM socios WHERE ci").
		WithArgs("111").
		WillReturnError(errors.New("connection reset"))

	mock.ExpectQuery("SELECT (.+) FROM socios WHERE ci").
		WithArgs("222").
		WillReturnRows(sqlmock.NewRows(socioRows))
	mock.ExpectExec("INSERT INTO socios").
		WillReturnResult(sqlmock.NewResult(0, 1))

	csv := "ci,nombre\n111,Juan\n222,Ana\n"
	report, err := service.ImportCSV(strings.NewReader(csv))

	require.NoError(t, err)
	assert.Equal(t, 1, report.SuccessCount)
	assert.Equal(t, 1, report.ErrorCount)
	assert.Contains(t, report.Errors[0], "Fila con CI 111:")
	assert.NoError(t, mock.ExpectationsWereMet())
}
