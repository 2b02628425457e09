package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/jvaler-dev/sga-console-api/internal/service"
	appErrors "github.com/jvaler-dev/sga-console-api/pkg/errors"
	"github.com/jvaler-dev/sga-console-api/pkg/response"
)

// CrudHandler exposes one entity collection over HTTP. All seven screens
// share this handler; only the bound service differs.
type CrudHandler[T any] struct {
	svc *service.CollectionService[T]
}

// NewCrudHandler constructs a handler for one collection service.
func NewCrudHandler[T any](svc *service.CollectionService[T]) *CrudHandler[T] {
	return &CrudHandler[T]{svc: svc}
}

// List returns all records, filtered by the optional search query.
func (h *CrudHandler[T]) List(c *gin.Context) {
	search := strings.TrimSpace(c.Query("buscar"))
	records := h.svc.List(c.Request.Context(), search)
	response.JSON(c, http.StatusOK, records)
}

// Create appends a new record.
func (h *CrudHandler[T]) Create(c *gin.Context) {
	var record T
	if err := c.ShouldBindJSON(&record); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	created, err := h.svc.Create(c.Request.Context(), record)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, created)
}

// Update replaces the record with the given ID.
func (h *CrudHandler[T]) Update(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	var record T
	if err := c.ShouldBindJSON(&record); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	updated, err := h.svc.Update(c.Request.Context(), id, record)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, updated)
}

// Delete removes the record with the given ID.
func (h *CrudHandler[T]) Delete(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

func parseID(c *gin.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return 0, appErrors.Clone(appErrors.ErrValidation, "invalid record id")
	}
	return id, nil
}
