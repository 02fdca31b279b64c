package service

import (
	"context"
	"crypto/subtle"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/ghost-console/ghost/internal/api/metrics"
	"github.com/ghost-console/ghost/internal/core/domain"
	"github.com/ghost-console/ghost/internal/core/ports"
)

const defaultTokenTTL = 7 * 24 * time.Hour

// AuthService implements login and token validation against the config
// store. The clock is injected so expiry behaviour is testable.
type AuthService struct {
	store     ports.ConfigStore
	jwtSecret string
	tokenTTL  time.Duration
	logger    zerolog.Logger
	now       func() time.Time
}

func NewAuthService(store ports.ConfigStore, jwtSecret string, tokenTTL time.Duration, logger zerolog.Logger) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = defaultTokenTTL
	}
	return &AuthService{
		store:     store,
		jwtSecret: jwtSecret,
		tokenTTL:  tokenTTL,
		logger:    logger,
		now:       time.Now,
	}
}

// Login checks the credentials and returns a signed session token.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, *domain.User, error) {
	cfg, err := s.store.Load(ctx)
	if err != nil {
		return "", nil, err
	}

	user := cfg.FindUser(username)
	if user == nil || !passwordMatches(user.Password, password) {
		metrics.LoginAttemptsTotal.WithLabelValues("failure").Inc()
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := s.generateToken(user.Username)
	if err != nil {
		return "", nil, fmt.Errorf("sign token: %w", err)
	}

	metrics.LoginAttemptsTotal.WithLabelValues("success").Inc()
	s.logger.Info().Str("username", user.Username).Str("role", user.Role).Msg("user logged in")

	out := *user
	return token, &out, nil
}

// Authenticate verifies the token signature and expiry, then re-resolves
// the subject against the live store. All failure modes collapse into
// domain.ErrTokenInvalid.
func (s *AuthService) Authenticate(ctx context.Context, tokenString string) (*domain.User, error) {
	claims := &jwt.RegisteredClaims{}
	tkn, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return []byte(s.jwtSecret), nil
	}, jwt.WithTimeFunc(s.now))
	if err != nil || !tkn.Valid || claims.Subject == "" {
		return nil, domain.ErrTokenInvalid
	}

	cfg, err := s.store.Load(ctx)
	if err != nil {
		return nil, err
	}
	user := cfg.FindUser(claims.Subject)
	if user == nil {
		return nil, domain.ErrTokenInvalid
	}

	out := *user
	return &out, nil
}

func (s *AuthService) generateToken(username string) (string, error) {
	now := s.now()
	claims := jwt.RegisteredClaims{
		Subject:   username,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.jwtSecret))
}

// passwordMatches compares a stored credential with the supplied
// password. Stored values that look like bcrypt hashes are verified with
// bcrypt; anything else is treated as a legacy cleartext value from a
// hand-edited config file and compared in constant time.
func passwordMatches(stored, supplied string) bool {
	if isBcryptHash(stored) {
		return bcrypt.CompareHashAndPassword([]byte(stored), []byte(supplied)) == nil
	}
	return subtle.ConstantTimeCompare([]byte(stored), []byte(supplied)) == 1
}

func isBcryptHash(s string) bool {
	return strings.HasPrefix(s, "$2a$") || strings.HasPrefix(s, "$2b$") || strings.HasPrefix(s, "$2y$")
}
