package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jvaler-dev/sga-console-api/internal/models"
	"github.com/jvaler-dev/sga-console-api/internal/service"
	appErrors "github.com/jvaler-dev/sga-console-api/pkg/errors"
	"github.com/jvaler-dev/sga-console-api/pkg/response"
)

// AuthHandler wires HTTP endpoints to the auth and account services.
type AuthHandler struct {
	auth     *service.AuthService
	accounts *service.AccountService
}

// NewAuthHandler creates a new handler.
func NewAuthHandler(auth *service.AuthService, accounts *service.AccountService) *AuthHandler {
	return &AuthHandler{auth: auth, accounts: accounts}
}

// Login godoc
// @Summary Authenticate user
// @Description Authenticate by role, username and password
// @Tags Authentication
// @Accept json
// @Produce json
// @Param payload body models.LoginRequest true "Login payload"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 401 {object} response.Envelope
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid login payload"))
		return
	}

	res, err := h.auth.Login(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.JSON(c, http.StatusOK, res)
}

// CreateAccount godoc
// @Summary Create administrator account
// @Tags Authentication
// @Accept json
// @Produce json
// @Param payload body service.CreateAccountRequest true "Account payload"
// @Success 201 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 409 {object} response.Envelope
// @Router /auth/cuentas [post]
func (h *AuthHandler) CreateAccount(c *gin.Context) {
	var req service.CreateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid account payload"))
		return
	}

	admin, err := h.accounts.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, admin)
}
