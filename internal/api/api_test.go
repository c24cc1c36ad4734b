package api

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/badgers-labs/club-service/internal/database"
	"github.com/badgers-labs/club-service/internal/models"
	"github.com/badgers-labs/club-service/internal/services"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter(t *testing.T) (*gin.Engine, sqlmock.Sqlmock) {
	gin.SetMode(gin.TestMode)

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	logger := logrus.New()
	logger.SetOutput(io.Discard)

	wrapped := database.NewFromSQL(db)
	apiHandler := NewAPI(
		services.NewSocioService(wrapped, logger),
		services.NewPagoService(wrapped, logger),
		services.NewProductoService(wrapped, logger),
		services.NewVentaService(wrapped, logger),
		services.NewGastoService(wrapped, logger),
		services.NewDashboardService(wrapped, nil, 30*time.Second, logger),
		logger,
	)

	router := gin.New()
	v1 := router.Group("/v1")
	{
		socios := v1.Group("/socios")
		{
			socios.GET("", apiHandler.ListSocios)
			socios.POST("", apiHandler.CreateSocio)
			socios.POST("/import", apiHandler.ImportSocios)
			socios.DELETE("/cleanup", apiHandler.CleanupSocios)
			socios.GET("/:ci", apiHandler.GetSocio)
			socios.PUT("/:ci", apiHandler.UpdateSocio)
			socios.DELETE("/:ci", apiHandler.DeleteSocio)
		}
		v1.GET("/dashboard/stats", apiHandler.GetDashboardStats)
	}

	return router, mock
}

// multipartCSV arma un body multipart con el CSV en el campo "file"
func multipartCSV(t *testing.T, csv string) (*bytes.Buffer, string) {
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile("file", "datos.csv")
	require.NoError(t, err)
	_, err = part.Write([]byte(csv))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	return &body, writer.FormDataContentType()
}

func TestImportSocios_SinArchivo(t *testing.T) {
	router, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/v1/socios/import", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusBadRequest, resp.Code)

	var errResp models.ErrorResponse
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &errResp))
	assert.Equal(t, "INVALID_REQUEST", errResp.Error.Code)
	assert.Equal(t, "No se proporcionó ningún archivo", errResp.Error.Message)
}

func TestImportSocios_ReporteParcial(t *testing.T) {
	router, mock := newTestRouter(t)

	mock.ExpectQuery("SELECT (.+) FROM socios WHERE ci").
		WithArgs("111").
		WillReturnRows(sqlmock.NewRows([]string{
			"ci", "nombre", "celular", "contacto_emergencia", "emergencia_movil",
			"fecha_nacimiento", "tipo_cuota", "enfermedades", "comentarios", "activo", "foto",
		}))
	mock.ExpectExec("INSERT INTO socios").
		WillReturnResult(sqlmock.NewResult(0, 1))

	body, contentType := multipartCSV(t, "ci,nombre\n111,Juan Pérez\n")
	req := httptest.NewRequest(http.MethodPost, "/v1/socios/import", body)
	req.Header.Set("Content-Type", contentType)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	require.Equal(t, http.StatusOK, resp.Code)

	var importResp models.ImportResponse
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &importResp))
	assert.Equal(t, "Importación completada. 1 socios importados/actualizados, 0 errores.", importResp.Message)
	assert.NotNil(t, importResp.Errors)
	assert.Empty(t, importResp.Errors)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestImportSocios_ArchivoVacio(t *testing.T) {
	router, _ := newTestRouter(t)

	body, contentType := multipartCSV(t, "")
	req := httptest.NewRequest(http.MethodPost, "/v1/socios/import", body)
	req.Header.Set("Content-Type", contentType)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusBadRequest, resp.Code)
	assert.Contains(t, resp.Body.String(), "No se pudo procesar el archivo CSV")
}

func TestGetSocio_NoEncontrado(t *testing.T) {
	router, mock := newTestRouter(t)

	mock.ExpectQuery("SELECT (.+) FROM socios WHERE ci").
		WithArgs("999").
		WillReturnRows(sqlmock.NewRows([]string{
			"ci", "nombre", "celular", "contacto_emergencia", "emergencia_movil",
			"fecha_nacimiento", "tipo_cuota", "enfermedades", "comentarios", "activo", "foto",
		}))

	req := httptest.NewRequest(http.MethodGet, "/v1/socios/999", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusNotFound, resp.Code)
	assert.Contains(t, resp.Body.String(), "Socio no encontrado")
}

func TestCreateSocio_Conflicto(t *testing.T) {
	router, mock := newTestRouter(t)

	mock.ExpectQuery("SELECT EXISTS").
		WithArgs("111").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	payload := strings.NewReader(`{"ci":"111","nombre":"Juan"}`)
	req := httptest.NewRequest(http.MethodPost, "/v1/socios", payload)
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusConflict, resp.Code)

	var errResp models.ErrorResponse
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &errResp))
	assert.Equal(t, "CONFLICT", errResp.Error.Code)
}

func TestCreateSocio_SinCI(t *testing.T) {
	router, _ := newTestRouter(t)

	payload := strings.NewReader(`{"nombre":"Juan"}`)
	req := httptest.NewRequest(http.MethodPost, "/v1/socios", payload)
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusBadRequest, resp.Code)
}

func TestCleanupSocios(t *testing.T) {
	router, mock := newTestRouter(t)

	mock.ExpectExec("DELETE FROM socios WHERE ci IS NULL").
		WillReturnResult(sqlmock.NewResult(0, 3))

	req := httptest.NewRequest(http.MethodDelete, "/v1/socios/cleanup", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	require.Equal(t, http.StatusOK, resp.Code)

	var msg models.MessageResponse
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &msg))
	assert.Equal(t, "Se eliminaron 3 socios sin CI.", msg.Message)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListSocios_Vacio(t *testing.T) {
	router, mock := newTestRouter(t)

	mock.ExpectQuery("SELECT (.+) FROM socios").
		WillReturnRows(sqlmock.NewRows([]string{
			"ci", "nombre", "celular", "contacto_emergencia", "emergencia_movil",
			"fecha_nacimiento", "tipo_cuota", "enfermedades", "comentarios", "activo", "foto",
		}))

	req := httptest.NewRequest(http.MethodGet, "/v1/socios", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	require.Equal(t, http.StatusOK, resp.Code)
	// lista vacía serializa como [] y no como null
	assert.Equal(t, "[]", strings.TrimSpace(resp.Body.String()))
}

func TestGetDashboardStats(t *testing.T) {
	router, mock := newTestRouter(t)

	mock.ExpectQuery("SELECT COUNT(.+) FROM socios WHERE activo").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(5))
	mock.ExpectQuery("SELECT COUNT(.+) FROM productos").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(9))

	req := httptest.NewRequest(http.MethodGet, "/v1/dashboard/stats", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	require.Equal(t, http.StatusOK, resp.Code)

	var stats map[string]int
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &stats))
	assert.Equal(t, map[string]int{
		"socios_activos":          5,
		"productos_en_inventario": 9,
	}, stats)
	assert.NoError(t, mock.ExpectationsWereMet())
}
