package service

import (
	"context"
	"errors"
	"time"

	"github.com/pospoint/terminal-api/internal/domain/entity"
	"github.com/pospoint/terminal-api/internal/domain/repository"
	"github.com/pospoint/terminal-api/pkg/apperror"
	"github.com/pospoint/terminal-api/pkg/utils"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// AuthAPI is the slice of the backend the login flow needs. Login must return
// apperror.ErrInvalidCredentials when the backend rejects the credentials;
// any other error is treated as the backend being unreachable.
type AuthAPI interface {
	Login(ctx context.Context, username, password string) (*entity.Operator, error)
}

// AuthService signs operators into the terminal. Logins go to the backend
// first; on success the operator record and a bcrypt hash of the password are
// cached locally so the same operator can still sign in when the backend is
// down. The terminal issues its own session token either way.
type AuthService struct {
	backend    AuthAPI
	operators  repository.OperatorRepository
	jwtManager *utils.JWTManager
	logger     *zap.Logger
}

// NewAuthService creates a new auth service
func NewAuthService(backend AuthAPI, operators repository.OperatorRepository, jwtManager *utils.JWTManager, logger *zap.Logger) *AuthService {
	return &AuthService{
		backend:    backend,
		operators:  operators,
		jwtManager: jwtManager,
		logger:     logger,
	}
}

// LoginResult is what a successful login returns to the UI.
type LoginResult struct {
	Token    string           `json:"token"`
	Operator *entity.Operator `json:"operator"`
	// Offline is true when the login was verified against the local cache
	// because the backend was unreachable.
	Offline bool `json:"offline"`
}

// Login authenticates an operator and issues a terminal session token.
func (s *AuthService) Login(ctx context.Context, username, password string) (*LoginResult, error) {
	if username == "" || password == "" {
		return nil, apperror.ErrInvalidCredentials
	}

	operator, err := s.backend.Login(ctx, username, password)
	if err != nil {
		if errors.Is(err, apperror.ErrInvalidCredentials) {
			return nil, apperror.ErrInvalidCredentials
		}
		s.logger.Warn("backend login unavailable, trying local cache",
			zap.String("username", username), zap.Error(err))
		return s.loginOffline(ctx, username, password)
	}

	if cacheErr := s.cacheOperator(ctx, operator, password); cacheErr != nil {
		s.logger.Warn("operator cache update failed",
			zap.String("username", username), zap.Error(cacheErr))
	}

	token, err := s.jwtManager.GenerateToken(operator.ID, operator.Username, operator.Role)
	if err != nil {
		return nil, apperror.ErrInternalServer
	}
	return &LoginResult{Token: token, Operator: operator}, nil
}

// loginOffline verifies credentials against the locally cached operator.
func (s *AuthService) loginOffline(ctx context.Context, username, password string) (*LoginResult, error) {
	operator, err := s.operators.GetByUsername(ctx, username)
	if err != nil || operator == nil || operator.PasswordHash == "" {
		return nil, apperror.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(operator.PasswordHash), []byte(password)); err != nil {
		return nil, apperror.ErrInvalidCredentials
	}

	token, err := s.jwtManager.GenerateToken(operator.ID, operator.Username, operator.Role)
	if err != nil {
		return nil, apperror.ErrInternalServer
	}
	return &LoginResult{Token: token, Operator: operator, Offline: true}, nil
}

// cacheOperator stores the operator record with a fresh bcrypt hash so
// offline logins keep working with the latest password.
func (s *AuthService) cacheOperator(ctx context.Context, operator *entity.Operator, password string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	now := time.Now()
	operator.PasswordHash = string(hash)
	operator.LastLoginAt = &now
	return s.operators.Upsert(ctx, operator)
}

// ValidateToken checks a terminal session token and returns its claims.
func (s *AuthService) ValidateToken(token string) (*utils.JWTClaims, error) {
	claims, err := s.jwtManager.ValidateToken(token)
	if err != nil {
		return nil, apperror.ErrInvalidToken
	}
	return claims, nil
}
