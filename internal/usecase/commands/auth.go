package commands

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"pupperazi-api/internal/domain/user"
	reqdto "pupperazi-api/internal/handler/dto/request"
	"pupperazi-api/internal/infra"
	"pupperazi-api/internal/pkg/errs"
	"pupperazi-api/internal/pkg/jwt"
	"pupperazi-api/internal/pkg/password"
	"pupperazi-api/internal/usecase/queries"
)

var (
	ErrInvalidCredentials   = errs.New("invalid credentials")
	ErrUserInactive         = errs.New("user inactive")
	ErrAuthenticationFailed = errs.New("authentication failed")
	ErrTokenGeneration      = errs.New("token generation failed")
)

type LoginResult struct {
	UserID    uuid.UUID
	TokenPair *TokenPair
}

type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

type UserRepository interface {
	UpdateLastLogin(ctx context.Context, userID uuid.UUID) error
}

type AuthCommands interface {
	Login(ctx context.Context, req reqdto.LoginRequest) (*LoginResult, error)
	RefreshToken(ctx context.Context, refreshToken string) (*TokenPair, error)
}

type authCommandsImpl struct {
	userRepo   UserRepository
	readStore  queries.UserReadStore
	jwtService *jwt.Service
}

func NewAuthCommands(userRepo UserRepository, readStore queries.UserReadStore, jwtService *jwt.Service) AuthCommands {
	return &authCommandsImpl{
		userRepo:   userRepo,
		readStore:  readStore,
		jwtService: jwtService,
	}
}

func (a *authCommandsImpl) Login(ctx context.Context, req reqdto.LoginRequest) (*LoginResult, error) {
	credentials, err := req.ToDomain()
	if err != nil {
		return nil, errs.Mark(err, ErrAuthenticationFailed)
	}

	view, hash, err := a.readStore.FindByEmail(ctx, credentials.Email.Value())
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, errs.Mark(err, ErrAuthenticationFailed)
	}

	if !view.IsActive {
		return nil, ErrUserInactive
	}

	if err := password.ComparePassword(hash, credentials.Password.Value()); err != nil {
		return nil, ErrInvalidCredentials
	}

	role, err := user.NewRole(view.Role)
	if err != nil {
		return nil, errs.Mark(err, ErrAuthenticationFailed)
	}

	pair, err := a.generatePair(view.ID, role)
	if err != nil {
		return nil, err
	}

	if err := a.userRepo.UpdateLastLogin(ctx, view.ID); err != nil {
		// Not critical; login already succeeded.
		slog.Warn("failed to update last login", "user_id", view.ID, "error", err.Error())
	}

	return &LoginResult{
		UserID:    view.ID,
		TokenPair: pair,
	}, nil
}

func (a *authCommandsImpl) RefreshToken(ctx context.Context, refreshToken string) (*TokenPair, error) {
	claims, err := a.jwtService.ValidateRefreshToken(refreshToken)
	if err != nil {
		return nil, errs.Mark(err, ErrAuthenticationFailed)
	}

	view, err := a.readStore.FindByID(ctx, claims.UserID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, errs.Mark(err, ErrAuthenticationFailed)
	}
	if !view.IsActive {
		return nil, ErrUserInactive
	}

	role, err := user.NewRole(view.Role)
	if err != nil {
		return nil, errs.Mark(err, ErrAuthenticationFailed)
	}

	return a.generatePair(view.ID, role)
}

func (a *authCommandsImpl) generatePair(userID uuid.UUID, role user.Role) (*TokenPair, error) {
	accessToken, err := a.jwtService.GenerateAccessToken(userID, role)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}
	refreshToken, err := a.jwtService.GenerateRefreshToken(userID, role)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}
	return &TokenPair{AccessToken: accessToken, RefreshToken: refreshToken}, nil
}
