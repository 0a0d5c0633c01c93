package auth

import (
	"context"

	xerrors "catalog-service/internal/pkg/errors"
	"catalog-service/internal/pkg/token"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// AuthService exchanges the configured admin credentials for a bearer
// token. There is no user store; the single admin identity comes from
// configuration.
type AuthService struct {
	adminEmail   string
	passwordHash string
	tokens       *token.Manager
	logger       *zap.Logger
}

func NewAuthService(adminEmail, passwordHash string, tokens *token.Manager, logger *zap.Logger) *AuthService {
	return &AuthService{
		adminEmail:   adminEmail,
		passwordHash: passwordHash,
		tokens:       tokens,
		logger:       logger,
	}
}

// Login verifies the credentials and issues a token.
func (s *AuthService) Login(_ context.Context, email, password string) (string, error) {
	if email != s.adminEmail {
		return "", xerrors.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(s.passwordHash), []byte(password)); err != nil {
		s.logger.Warn("failed login attempt", zap.String("email", email))
		return "", xerrors.ErrUnauthorized
	}

	signed, jti, err := s.tokens.Issue(email)
	if err != nil {
		s.logger.Error("failed to issue token", zap.Error(err))
		return "", xerrors.Wrap(err, "failed to issue token")
	}

	s.logger.Info("admin token issued", zap.String("jti", jti))
	return signed, nil
}

// ValidateToken returns the token subject when the token is valid.
func (s *AuthService) ValidateToken(tokenString string) (string, error) {
	subject, err := s.tokens.Verify(tokenString)
	if err != nil {
		return "", xerrors.ErrUnauthorized
	}
	return subject, nil
}

// TokenTTLSeconds exposes the token lifetime for the login response.
func (s *AuthService) TokenTTLSeconds() int64 {
	return int64(s.tokens.TTL().Seconds())
}
