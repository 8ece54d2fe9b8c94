package jwt

import (
	"testing"
	"time"

	"cycle-booking-service/config"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndValidate(t *testing.T) {
	svc := NewJWTService(config.JWTConfig{Secret: "s3cret", AccessExpiry: time.Minute})
	userID := uuid.New()

	token, tokenID, err := svc.GenerateAccessToken(userID, "a@example.com", 3)
	require.NoError(t, err)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, "a@example.com", claims.Email)
	assert.Equal(t, 3, claims.RoleID)
	assert.Equal(t, AccessToken, claims.TokenType)
	assert.Equal(t, tokenID, claims.TokenID)
}

func TestValidateRejectsForeignSecret(t *testing.T) {
	issuer := NewJWTService(config.JWTConfig{Secret: "one", AccessExpiry: time.Minute})
	verifier := NewJWTService(config.JWTConfig{Secret: "two", AccessExpiry: time.Minute})

	token, _, err := issuer.GenerateAccessToken(uuid.New(), "a@example.com", 1)
	require.NoError(t, err)

	_, err = verifier.ValidateToken(token)
	assert.Error(t, err)
}

func TestValidateRejectsExpired(t *testing.T) {
	svc := NewJWTService(config.JWTConfig{Secret: "s3cret", AccessExpiry: -time.Minute})

	token, _, err := svc.GenerateAccessToken(uuid.New(), "a@example.com", 1)
	require.NoError(t, err)

	_, err = svc.ValidateToken(token)
	assert.Error(t, err)
}

func TestValidateRejectsOtherAlgorithmsAndMissingExpiry(t *testing.T) {
	svc := NewJWTService(config.JWTConfig{Secret: "s3cret", AccessExpiry: time.Minute})
	sign := func(method jwt.SigningMethod, claims Claims) string {
		token, err := jwt.NewWithClaims(method, claims).SignedString([]byte("s3cret"))
		require.NoError(t, err)
		return token
	}
	valid := jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Minute))}

	_, err := svc.ValidateToken(sign(jwt.SigningMethodHS512, Claims{UserID: uuid.New(), TokenType: AccessToken, RegisteredClaims: valid}))
	assert.Error(t, err)

	_, err = svc.ValidateToken(sign(jwt.SigningMethodHS256, Claims{UserID: uuid.New(), TokenType: AccessToken}))
	assert.Error(t, err)

	_, err = svc.ValidateToken(sign(jwt.SigningMethodHS256, Claims{TokenType: AccessToken, RegisteredClaims: valid}))
	assert.Error(t, err)
}
