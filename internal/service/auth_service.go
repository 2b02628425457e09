package service

import (
	"context"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"

	"github.com/jvaler-dev/sga-console-api/internal/models"
	"github.com/jvaler-dev/sga-console-api/internal/repository"
	appErrors "github.com/jvaler-dev/sga-console-api/pkg/errors"
)

// CredentialProvider answers whether a username/password pair is valid for
// one source of credentials.
type CredentialProvider interface {
	Name() string
	Match(ctx context.Context, usuario, contrasena string) bool
}

// CollectionCredentials matches against the records of a persisted
// collection. Matching is exact equality on the stored usuario and
// contraseña fields.
func CollectionCredentials[T any](name string, coll *repository.Collection[T], creds func(*T) (string, string)) CredentialProvider {
	return &collectionProvider[T]{name: name, coll: coll, creds: creds}
}

type collectionProvider[T any] struct {
	name  string
	coll  *repository.Collection[T]
	creds func(*T) (string, string)
}

func (p *collectionProvider[T]) Name() string { return p.name }

func (p *collectionProvider[T]) Match(ctx context.Context, usuario, contrasena string) bool {
	records := p.coll.Load(ctx)
	for i := range records {
		u, c := p.creds(&records[i])
		if u == usuario && c == contrasena {
			return true
		}
	}
	return false
}

// StaticCredentials matches a single fixed pair.
func StaticCredentials(name string, cred models.DemoCredential) CredentialProvider {
	return &staticProvider{name: name, cred: cred}
}

type staticProvider struct {
	name string
	cred models.DemoCredential
}

func (p *staticProvider) Name() string { return p.name }

func (p *staticProvider) Match(_ context.Context, usuario, contrasena string) bool {
	return usuario == p.cred.Usuario && contrasena == p.cred.Contrasena
}

// AuthConfig defines configuration for token issuance.
type AuthConfig struct {
	Secret     string
	Expiration time.Duration
	Issuer     string
}

// AuthService decides logins. Per role it tries an ordered list of
// credential providers; dynamically created records come first and the
// fixed demonstration pair last, so both stay valid side by side. Any
// failure collapses into one generic rejection.
type AuthService struct {
	providers map[models.UserRole][]CredentialProvider
	validator *validator.Validate
	logger    *zap.Logger
	config    AuthConfig
}

// NewAuthService wires the provider chains for the three roles.
func NewAuthService(
	admins *repository.Collection[models.Admin],
	teachers *repository.Collection[models.Teacher],
	students *repository.Collection[models.Student],
	validate *validator.Validate,
	logger *zap.Logger,
	config AuthConfig,
) *AuthService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if validate == nil {
		validate = validator.New()
	}

	providers := map[models.UserRole][]CredentialProvider{
		models.RoleAdmin: {
			CollectionCredentials(models.CollectionAdmins, admins, func(a *models.Admin) (string, string) {
				return a.Usuario, a.Contrasena
			}),
			StaticCredentials("demo:administrativo", models.DemoCredentials[models.RoleAdmin]),
		},
		models.RoleTeacher: {
			CollectionCredentials(models.CollectionTeachers, teachers, func(t *models.Teacher) (string, string) {
				return t.Usuario, t.Contrasena
			}),
			StaticCredentials("demo:docente", models.DemoCredentials[models.RoleTeacher]),
		},
		models.RoleStudent: {
			CollectionCredentials(models.CollectionStudents, students, func(s *models.Student) (string, string) {
				return s.Usuario, s.Contrasena
			}),
			StaticCredentials("demo:estudiante", models.DemoCredentials[models.RoleStudent]),
		},
	}

	return &AuthService{providers: providers, validator: validate, logger: logger, config: config}
}

// Authenticate runs the provider chain for the requested role. First match
// wins. The rejection message never distinguishes an unknown user from a
// wrong password.
func (s *AuthService) Authenticate(ctx context.Context, req models.LoginRequest) (models.UserRole, error) {
	if err := s.validator.Struct(req); err != nil {
		return "", appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid login payload")
	}
	if !req.Role.Valid() {
		return "", appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("rol desconocido: %s", req.Role))
	}

	for _, provider := range s.providers[req.Role] {
		if provider.Match(ctx, req.Usuario, req.Contrasena) {
			s.logger.Info("login accepted",
				zap.String("role", string(req.Role)),
				zap.String("provider", provider.Name()))
			return req.Role, nil
		}
	}

	s.logger.Info("login rejected", zap.String("role", string(req.Role)))
	return "", appErrors.ErrInvalidCredentials
}

// Login authenticates and, on success, issues an access token for the HTTP
// surface. The gate itself stays a one-shot decision.
func (s *AuthService) Login(ctx context.Context, req models.LoginRequest) (*models.LoginResponse, error) {
	role, err := s.Authenticate(ctx, req)
	if err != nil {
		return nil, err
	}

	token, issuedAt, err := s.generateAccessToken(req.Usuario, role)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create access token")
	}

	return &models.LoginResponse{
		AccessToken: token,
		ExpiresIn:   int64(s.config.Expiration.Seconds()),
		IssuedAt:    issuedAt,
		Usuario:     req.Usuario,
		Role:        role,
	}, nil
}

// ValidateToken parses and validates an access token returning the claims.
func (s *AuthService) ValidateToken(tokenString string) (*models.JWTClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &models.JWTClaims{}, func(token *jwt.Token) (interface{}, error) {
		if token.Method != jwt.SigningMethodHS256 {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.config.Secret), nil
	})
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrUnauthorized.Code, appErrors.ErrUnauthorized.Status, "invalid token")
	}

	claims, ok := token.Claims.(*models.JWTClaims)
	if !ok || !token.Valid {
		return nil, appErrors.Clone(appErrors.ErrUnauthorized, "invalid token claims")
	}

	return claims, nil
}

func (s *AuthService) generateAccessToken(usuario string, role models.UserRole) (string, time.Time, error) {
	issuedAt := time.Now().UTC()
	expiresAt := issuedAt.Add(s.config.Expiration)
	claims := &models.JWTClaims{
		Usuario: usuario,
		Role:    role,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    s.config.Issuer,
			Subject:   usuario,
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			NotBefore: jwt.NewNumericDate(issuedAt),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.config.Secret))
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, issuedAt, nil
}
