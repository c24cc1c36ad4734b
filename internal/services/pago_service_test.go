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

func newPagoServiceTest(t *testing.T) (*PagoService, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return NewPagoService(database.NewFromSQL(db), testLogger()), mock
}

func TestPagoID(t *testing.T) {
	assert.Equal(t, "12345678_3_2024", models.PagoID("12345678", "3", "2024"))
	// la clave se deriva de los valores crudos, válidos o no
	assert.Equal(t, "_abc_", models.PagoID("", "abc", ""))
}

func TestPagoService_Upsert_Nuevo(t *testing.T) {
	service, mock := newPagoServiceTest(t)

	mock.ExpectQuery("SELECT EXISTS").
		WithArgs("111_3_2024").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))
	mock.ExpectExec("INSERT INTO pagos").
		WillReturnResult(sqlmock.NewResult(0, 1))

	pago, err := service.Upsert(&models.PagoRequest{
		SocioCI: "111",
		Mes:     3,
		Anio:    2024,
		Monto:   decimal.NewFromInt(1500),
	})

	require.NoError(t, err)
	assert.Equal(t, "111_3_2024", pago.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPagoService_Upsert_Sobrescribe(t *testing.T) {
	service, mock := newPagoServiceTest(t)

	mock.ExpectQuery("SELECT EXISTS").
		WithArgs("111_3_2024").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))
	mock.ExpectExec("UPDATE pagos SET").
		WillReturnResult(sqlmock.NewResult(0, 1))

	pago, err := service.Upsert(&models.PagoRequest{
		SocioCI: "111",
		Mes:     3,
		Anio:    2024,
		Monto:   decimal.NewFromInt(1800),
	})

	require.NoError(t, err)
	assert.Equal(t, "111_3_2024", pago.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPagoService_ImportCSV(t *testing.T) {
	service, mock := newPagoServiceTest(t)

	// fila 1: pago nuevo
	mock.ExpectQuery("SELECT EXISTS").
		WithArgs("111_3_2024").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))
	mock.ExpectExec("INSERT INTO pagos").
		WillReturnResult(sqlmock.NewResult(0, 1))

	// fila 2 falla antes de tocar la base de datos

	// fila 3: reimportación, se sobrescribe
	mock.ExpectQuery("SELECT EXISTS").
		WithArgs("333_1_2024").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))
	mock.ExpectExec("UPDATE pagos SET").
		WillReturnResult(sqlmock.NewResult(0, 1))

	csv := "ci,mes,año,monto\n" +
		"111,3,2024,1500\n" +
		"222,2,2024,abc\n" +
		"333,1,2024,1200.50\n"
	report, err := service.ImportCSV(strings.NewReader(csv))

	require.NoError(t, err)
	assert.Equal(t, 2, report.SuccessCount)
	assert.Equal(t, 1, report.ErrorCount)
	require.Len(t, report.Errors, 1)
	// la fila fallida se identifica por su clave calculada
	assert.Equal(t, `Fila con ID 222_2_2024: monto inválido: "abc"`, report.Errors[0])
	assert.Equal(t, "Importación completada. 2 pagos importados/actualizados, 1 errores.",
		report.Message("pagos"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPagoService_ImportCSV_ColumnaAnioSinTilde(t *testing.T) {
	service, mock := newPagoServiceTest(t)

	mock.ExpectQuery("SELECT EXISTS").
		WithArgs("111_3_2024").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))
	mock.ExpectExec("INSERT INTO pagos").
		WillReturnResult(sqlmock.NewResult(0, 1))

	csv := "ci,mes,anio,monto\n111,3,2024,1500\n"
	report, err := service.ImportCSV(strings.NewReader(csv))

	require.NoError(t, err)
	assert.Equal(t, 1, report.SuccessCount)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPagoService_ImportCSV_FilasInvalidas(t *testing.T) {
	service, _ := newPagoServiceTest(t)

	csv := "ci,mes,año,monto\n" +
		",3,2024,1500\n" +
		"111,marzo,2024,1500\n" +
		"111,3,,1500\n"
	report, err := service.ImportCSV(strings.NewReader(csv))

	require.NoError(t, err)
	assert.Equal(t, 0, report.SuccessCount)
	assert.Equal(t, 3, report.ErrorCount)
	assert.Equal(t, "Fila con ID _3_2024: ci vacío", report.Errors[0])
	assert.Equal(t, `Fila con ID 111_marzo_2024: mes inválido: "marzo"`, report.Errors[1])
	assert.Equal(t, `Fila con ID 111_3_: año inválido: ""`, report.Errors[2])
}
