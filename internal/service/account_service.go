package service

import (
	"context"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/jvaler-dev/sga-console-api/internal/models"
	"github.com/jvaler-dev/sga-console-api/internal/repository"
	appErrors "github.com/jvaler-dev/sga-console-api/pkg/errors"
)

// CreateAccountRequest is the account-creation form payload.
type CreateAccountRequest struct {
	Nombres             string `json:"nombres" validate:"required"`
	Apellidos           string `json:"apellidos" validate:"required"`
	DNI                 string `json:"dni" validate:"required"`
	Email               string `json:"email" validate:"required,email"`
	Telefono            string `json:"telefono" validate:"required"`
	Usuario             string `json:"usuario" validate:"required"`
	Contrasena          string `json:"contraseña" validate:"required"`
	ConfirmarContrasena string `json:"confirmarContraseña" validate:"required"`
}

// AccountService creates administrator accounts. Accounts created here are
// valid logins alongside the fixed demo pair.
type AccountService struct {
	admins    *repository.Collection[models.Admin]
	validator *validator.Validate
	logger    *zap.Logger
}

// NewAccountService constructs an AccountService.
func NewAccountService(admins *repository.Collection[models.Admin], validate *validator.Validate, logger *zap.Logger) *AccountService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if validate == nil {
		validate = validator.New()
	}
	return &AccountService{admins: admins, validator: validate, logger: logger}
}

// Create validates and persists a new administrator account. The three
// checks run in a fixed order and the first failure is the only one
// reported: password mismatch, then password length, then duplicate
// identity (usuario, DNI or email already taken).
func (s *AccountService) Create(ctx context.Context, req CreateAccountRequest) (*models.Admin, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid account payload")
	}

	if req.Contrasena != req.ConfirmarContrasena {
		return nil, appErrors.ErrPasswordMismatch
	}
	if len(req.Contrasena) < 6 {
		return nil, appErrors.ErrPasswordTooShort
	}

	admins := s.admins.Load(ctx)
	for i := range admins {
		a := &admins[i]
		if a.Usuario == req.Usuario || a.DNI == req.DNI || a.Email == req.Email {
			return nil, appErrors.ErrDuplicateIdentity
		}
	}

	ids := make([]int64, 0, len(admins))
	for i := range admins {
		ids = append(ids, admins[i].ID)
	}

	admin := models.Admin{
		ID:         repository.NextID(ids),
		Nombres:    req.Nombres,
		Apellidos:  req.Apellidos,
		DNI:        req.DNI,
		Email:      req.Email,
		Telefono:   req.Telefono,
		Usuario:    req.Usuario,
		Contrasena: req.Contrasena,
	}

	admins = append(admins, admin)
	if err := s.admins.Save(ctx, admins); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to persist account")
	}

	s.logger.Info("administrator account created", zap.String("usuario", admin.Usuario))
	return &admin, nil
}
