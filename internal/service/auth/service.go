package auth

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/inaaqc/clinical-api/internal/model"
	"github.com/inaaqc/clinical-api/internal/repository"
	"github.com/inaaqc/clinical-api/pkg/auth"
	"github.com/inaaqc/clinical-api/pkg/errors"
	"github.com/inaaqc/clinical-api/pkg/security"
)

// greetings maps a role name to the login welcome message. A role outside
// this map is a deployment defect and fails the login outright.
var greetings = map[string]string{
	"ti":         "Hola TI!!",
	"doctor":     "Hola Doctor!!",
	"analista":   "Hola Analista!!",
	"superadmin": "Hola Superadmin!!",
}

type Service struct {
	users  repository.UserRepository
	jwt    auth.JWTService
	hasher security.PasswordHasher
}

func NewService(users repository.UserRepository, jwt auth.JWTService, hasher security.PasswordHasher) *Service {
	return &Service{users: users, jwt: jwt, hasher: hasher}
}

// Login authenticates by email and password. Unknown email and wrong password
// are indistinguishable to the caller; an inactive account is reported as such.
func (s *Service) Login(ctx context.Context, req *model.LoginRequest) (*model.TokenResponse, error) {
	user, err := s.users.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.IsCode(err, errors.ErrNotFound) {
			return nil, errors.Unauthorized("incorrect email or password", err)
		}
		return nil, err
	}

	if user.Estado != model.LifecycleActive {
		return nil, errors.Forbidden("user account is inactive", nil)
	}

	if err := s.hasher.Compare(user.PasswordHash, req.Password); err != nil {
		return nil, errors.Unauthorized("incorrect email or password", err)
	}

	roleName, err := s.users.RoleName(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	greeting, ok := greetings[roleName]
	if !ok {
		log.Error().Str("rol", roleName).Msg("login for role without greeting")
		return nil, errors.Internal("role is not configured for login", nil)
	}

	token, err := s.jwt.GenerateAccessToken(user.ID, roleName)
	if err != nil {
		return nil, errors.Internal("failed to issue access token", err)
	}

	return &model.TokenResponse{
		AccessToken: token,
		TokenType:   "bearer",
		Greeting:    greeting,
		User: &model.UserWithRole{
			ID:       user.ID,
			Username: user.Username,
			FullName: user.FullName,
			Email:    user.Email,
			Estado:   user.Estado,
			Role:     roleName,
		},
	}, nil
}

// CurrentUser resolves the bearer of a token back to a live user record. The
// user is re-read on every call so revoked or deactivated accounts lose access
// as soon as their state changes.
func (s *Service) CurrentUser(ctx context.Context, token string) (*model.UserWithRole, error) {
	claims, err := s.jwt.ValidateToken(token)
	if err != nil {
		return nil, errors.Unauthorized("could not validate credentials", err)
	}

	user, err := s.users.GetWithRole(ctx, claims.UserID)
	if err != nil {
		if errors.IsCode(err, errors.ErrNotFound) {
			return nil, errors.Unauthorized("could not validate credentials", err)
		}
		return nil, err
	}

	if user.Estado != model.LifecycleActive {
		return nil, errors.Forbidden("user account is inactive", nil)
	}

	return user, nil
}
