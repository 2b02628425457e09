package handler

import (
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jvaler-dev/sga-console-api/internal/service"
	appErrors "github.com/jvaler-dev/sga-console-api/pkg/errors"
	"github.com/jvaler-dev/sga-console-api/pkg/response"
)

// ExportHandler serves report downloads.
type ExportHandler struct {
	exports *service.ExportService
	metrics *service.MetricsService
}

// NewExportHandler creates a new handler. metrics may be nil.
func NewExportHandler(exports *service.ExportService, metrics *service.MetricsService) *ExportHandler {
	return &ExportHandler{exports: exports, metrics: metrics}
}

// Export godoc
// @Summary Export one collection
// @Description Renders a collection as CSV, JSON or PDF and streams it back
// @Tags Reports
// @Produce octet-stream
// @Param collection path string true "Collection name"
// @Param format query string false "csv, json or pdf" default(csv)
// @Success 200 {file} file
// @Failure 400 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /reportes/{collection} [get]
func (h *ExportHandler) Export(c *gin.Context) {
	collection := c.Param("collection")
	format := c.DefaultQuery("format", service.FormatCSV)

	payload, filename, contentType, err := h.exports.Render(c.Request.Context(), collection, format)
	if err != nil {
		response.Error(c, err)
		return
	}
	if h.metrics != nil {
		h.metrics.IncExport(collection, format)
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, contentType, payload)
}

// ExportAll godoc
// @Summary Export every collection
// @Description JSON returns a single bundled download; CSV schedules one file per collection and returns signed download links
// @Tags Reports
// @Produce json
// @Param format query string false "csv or json" default(json)
// @Success 200 {object} response.Envelope
// @Success 202 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /reportes/todo [post]
func (h *ExportHandler) ExportAll(c *gin.Context) {
	format := c.DefaultQuery("format", service.FormatJSON)

	switch format {
	case service.FormatJSON:
		payload, filename, err := h.exports.RenderBundleJSON(c.Request.Context())
		if err != nil {
			response.Error(c, err)
			return
		}
		if h.metrics != nil {
			h.metrics.IncExport("todo", format)
		}
		c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
		c.Data(http.StatusOK, "application/json", payload)

	case service.FormatCSV:
		files, err := h.exports.ScheduleBundleCSV(c.Request.Context())
		if err != nil {
			response.Error(c, err)
			return
		}
		if h.metrics != nil {
			h.metrics.IncExport("todo", format)
		}
		response.JSON(c, http.StatusAccepted, gin.H{"files": files})

	default:
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("formato no soportado: %s", format)))
	}
}

// Download godoc
// @Summary Download a scheduled export file
// @Tags Reports
// @Produce octet-stream
// @Param token path string true "Signed download token"
// @Success 200 {file} file
// @Failure 401 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /reportes/descargas/{token} [get]
func (h *ExportHandler) Download(c *gin.Context) {
	file, filename, err := h.exports.OpenDownload(c.Param("token"))
	if err != nil {
		response.Error(c, err)
		return
	}
	defer file.Close()

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Status(http.StatusOK)
	if _, err := io.Copy(c.Writer, file); err != nil {
		_ = c.Error(err)
	}
}
