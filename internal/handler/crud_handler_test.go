package handler

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jvaler-dev/sga-console-api/internal/models"
)

func TestStudentsCrudFlow(t *testing.T) {
	app := newTestApp(t)
	token := app.adminToken(t)

	w := app.request(t, http.MethodPost, "/api/v1/estudiantes", token, jsonObject{
		"nombres": "Ana", "apellidos": "Lopez", "dni": "12345678", "grado": "3ro", "seccion": "A",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	created := decodeData[models.Student](t, w)
	require.NotZero(t, created.ID)

	w = app.request(t, http.MethodGet, "/api/v1/estudiantes", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Len(t, decodeData[[]models.Student](t, w), 1)

	w = app.request(t, http.MethodGet, "/api/v1/estudiantes?buscar=lopez", token, nil)
	require.Len(t, decodeData[[]models.Student](t, w), 1)

	w = app.request(t, http.MethodGet, "/api/v1/estudiantes?buscar=garcia", token, nil)
	require.Empty(t, decodeData[[]models.Student](t, w))

	w = app.request(t, http.MethodPut, fmt.Sprintf("/api/v1/estudiantes/%d", created.ID), token, jsonObject{
		"nombres": "Ana María", "apellidos": "Lopez", "dni": "12345678",
	})
	require.Equal(t, http.StatusOK, w.Code)
	updated := decodeData[models.Student](t, w)
	require.Equal(t, created.ID, updated.ID)
	require.Equal(t, "Ana María", updated.Nombres)

	w = app.request(t, http.MethodDelete, fmt.Sprintf("/api/v1/estudiantes/%d", created.ID), token, nil)
	require.Equal(t, http.StatusNoContent, w.Code)

	w = app.request(t, http.MethodGet, "/api/v1/estudiantes", token, nil)
	require.Empty(t, decodeData[[]models.Student](t, w))
}

func TestCrudRequiresAuthentication(t *testing.T) {
	app := newTestApp(t)

	w := app.request(t, http.MethodGet, "/api/v1/estudiantes", "", nil)
	require.Equal(t, http.StatusUnauthorized, w.Code)

	w = app.request(t, http.MethodGet, "/api/v1/estudiantes", "garbage-token", nil)
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestCrudRoleBoundaries(t *testing.T) {
	app := newTestApp(t)
	teacher := app.teacherToken(t)
	student := app.studentToken(t)

	// docente reads estudiantes and cursos but cannot write them
	w := app.request(t, http.MethodGet, "/api/v1/estudiantes", teacher, nil)
	require.Equal(t, http.StatusOK, w.Code)
	w = app.request(t, http.MethodGet, "/api/v1/cursos", teacher, nil)
	require.Equal(t, http.StatusOK, w.Code)
	w = app.request(t, http.MethodPost, "/api/v1/estudiantes", teacher, jsonObject{"nombres": "X"})
	require.Equal(t, http.StatusForbidden, w.Code)

	// docente owns calificaciones
	w = app.request(t, http.MethodPost, "/api/v1/calificaciones", teacher, jsonObject{
		"estudiante": "Ana Lopez", "curso": "Matemática", "trimestre": "1er Trimestre", "nota": 15.5,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	// admin-only collections stay closed to docente
	w = app.request(t, http.MethodGet, "/api/v1/roles", teacher, nil)
	require.Equal(t, http.StatusForbidden, w.Code)

	// estudiante reaches nothing behind the gate
	w = app.request(t, http.MethodGet, "/api/v1/estudiantes", student, nil)
	require.Equal(t, http.StatusForbidden, w.Code)
	w = app.request(t, http.MethodGet, "/api/v1/calificaciones", student, nil)
	require.Equal(t, http.StatusForbidden, w.Code)
}

func TestUpdateMissingRecord(t *testing.T) {
	app := newTestApp(t)
	token := app.adminToken(t)

	w := app.request(t, http.MethodPut, "/api/v1/docentes/999", token, jsonObject{"nombres": "X"})
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestUpdateInvalidID(t *testing.T) {
	app := newTestApp(t)
	token := app.adminToken(t)

	w := app.request(t, http.MethodPut, "/api/v1/docentes/abc", token, jsonObject{"nombres": "X"})
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateGradeClampsScore(t *testing.T) {
	app := newTestApp(t)
	token := app.adminToken(t)

	w := app.request(t, http.MethodPost, "/api/v1/calificaciones", token, jsonObject{
		"estudiante": "Ana", "curso": "Arte", "trimestre": "1er Trimestre", "nota": 25,
	})
	require.Equal(t, http.StatusCreated, w.Code)
	require.Equal(t, float64(20), decodeData[models.Grade](t, w).Nota)
}

func TestHealthEndpointIsPublic(t *testing.T) {
	app := newTestApp(t)
	w := app.request(t, http.MethodGet, "/api/v1/salud", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), `"status":"ok"`)
}
