package auth

import (
	"testing"
	"time"

	"github.com/cribnosh/nosh-backend/pkg/config"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func signToken(t *testing.T, secret string, claims AccessTokenClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func baseClaims(userID uuid.UUID) AccessTokenClaims {
	return AccessTokenClaims{
		UserID: userID,
		Name:   "Sadia",
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "cribnosh-identity",
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(15 * time.Minute)),
		},
	}
}

func TestParseAccessToken(t *testing.T) {
	cfg := config.JWTConfig{Secret: "test-secret", Issuer: "cribnosh-identity"}
	userID := uuid.New()
	signed := signToken(t, cfg.Secret, baseClaims(userID))

	claims, err := ParseAccessToken(cfg, signed)
	require.NoError(t, err)
	require.Equal(t, userID, claims.UserID)
	require.Equal(t, "Sadia", claims.Name)
}

func TestParseAccessTokenRejectsWrongIssuer(t *testing.T) {
	cfg := config.JWTConfig{Secret: "test-secret", Issuer: "cribnosh-identity"}
	claims := baseClaims(uuid.New())
	claims.Issuer = "someone-else"
	signed := signToken(t, cfg.Secret, claims)

	_, err := ParseAccessToken(cfg, signed)
	require.Error(t, err)
}

func TestParseAccessTokenRejectsExpired(t *testing.T) {
	cfg := config.JWTConfig{Secret: "test-secret", Issuer: "cribnosh-identity"}
	claims := baseClaims(uuid.New())
	claims.ExpiresAt = jwt.NewNumericDate(time.Now().Add(-time.Minute))
	signed := signToken(t, cfg.Secret, claims)

	_, err := ParseAccessToken(cfg, signed)
	require.Error(t, err)
}

func TestParseAccessTokenRejectsWrongSecret(t *testing.T) {
	cfg := config.JWTConfig{Secret: "test-secret", Issuer: "cribnosh-identity"}
	signed := signToken(t, "other-secret", baseClaims(uuid.New()))

	_, err := ParseAccessToken(cfg, signed)
	require.Error(t, err)
}

func TestParseAccessTokenRequiresUserID(t *testing.T) {
	cfg := config.JWTConfig{Secret: "test-secret", Issuer: "cribnosh-identity"}
	signed := signToken(t, cfg.Secret, baseClaims(uuid.Nil))

	_, err := ParseAccessToken(cfg, signed)
	require.Error(t, err)
	require.Contains(t, err.Error(), "user_id")
}
