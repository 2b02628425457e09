package handler

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/jvaler-dev/sga-console-api/internal/service"
)

func seedOneStudent(t *testing.T, app *testApp, token string) {
	t.Helper()
	w := app.request(t, http.MethodPost, "/api/v1/estudiantes", token, jsonObject{
		"nombres": "Ana", "apellidos": "Lopez", "dni": "12345678",
	})
	require.Equal(t, http.StatusCreated, w.Code)
}

func TestExportCollectionCSV(t *testing.T) {
	app := newTestApp(t)
	token := app.adminToken(t)
	seedOneStudent(t, app, token)

	w := app.request(t, http.MethodGet, "/api/v1/reportes/estudiantes?format=csv", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Header().Get("Content-Disposition"), "estudiantes.csv")
	require.Contains(t, w.Body.String(), `"Ana","Lopez"`)
}

func TestExportCollectionDefaultsToCSV(t *testing.T) {
	app := newTestApp(t)
	token := app.adminToken(t)

	w := app.request(t, http.MethodGet, "/api/v1/reportes/cursos", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Header().Get("Content-Disposition"), "cursos.csv")
}

func TestExportCollectionUnknownFormat(t *testing.T) {
	app := newTestApp(t)
	token := app.adminToken(t)

	w := app.request(t, http.MethodGet, "/api/v1/reportes/estudiantes?format=xml", token, nil)
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestExportCollectionUnknownCollection(t *testing.T) {
	app := newTestApp(t)
	token := app.adminToken(t)

	w := app.request(t, http.MethodGet, "/api/v1/reportes/inventario", token, nil)
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestExportAllJSON(t *testing.T) {
	app := newTestApp(t)
	token := app.adminToken(t)
	seedOneStudent(t, app, token)

	w := app.request(t, http.MethodPost, "/api/v1/reportes/todo?format=json", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Header().Get("Content-Disposition"), "datos_completos.json")

	var bundle map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &bundle))
	require.Contains(t, bundle, "estudiantes")
	require.Contains(t, bundle, "asistencias")
}

func TestExportAllCSVSchedulesDownloads(t *testing.T) {
	app := newTestApp(t)
	token := app.adminToken(t)
	seedOneStudent(t, app, token)

	w := app.request(t, http.MethodPost, "/api/v1/reportes/todo?format=csv", token, nil)
	require.Equal(t, http.StatusAccepted, w.Code)

	data := decodeData[struct {
		Files []service.ExportFile `json:"files"`
	}](t, w)
	require.Len(t, data.Files, 5)

	// signed links become live as the queue renders the files
	require.Eventually(t, func() bool {
		dl := app.request(t, http.MethodGet, data.Files[0].URL, "", nil)
		return dl.Code == http.StatusOK
	}, 5*time.Second, 50*time.Millisecond)

	dl := app.request(t, http.MethodGet, data.Files[0].URL, "", nil)
	require.Equal(t, http.StatusOK, dl.Code)
	require.Contains(t, dl.Body.String(), `"Ana","Lopez"`)
}

func TestExportRequiresAdmin(t *testing.T) {
	app := newTestApp(t)
	teacher := app.teacherToken(t)

	w := app.request(t, http.MethodGet, "/api/v1/reportes/estudiantes", teacher, nil)
	require.Equal(t, http.StatusForbidden, w.Code)

	w = app.request(t, http.MethodPost, "/api/v1/reportes/todo", teacher, nil)
	require.Equal(t, http.StatusForbidden, w.Code)
}

func TestDownloadRejectsInvalidToken(t *testing.T) {
	app := newTestApp(t)

	w := app.request(t, http.MethodGet, "/api/v1/reportes/descargas/bogus", "", nil)
	require.Equal(t, http.StatusUnauthorized, w.Code)
}
