package middleware

import (
	"context"
	"net/http"
	"strings"

	"cycle-booking-service/pkg/jwt"
	"cycle-booking-service/pkg/response"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

type principalKey struct{}

// Principal is the authenticated caller carried through request contexts.
type Principal struct {
	UserID uuid.UUID
	Email  string
	RoleID int
}

// AccessTokenKey is the Redis key an issuer sets for each live access token.
// Deleting it revokes the token before expiry.
func AccessTokenKey(userID uuid.UUID, tokenID string) string {
	return "access_token:" + userID.String() + ":" + tokenID
}

type AuthMiddleware struct {
	jwtService  *jwt.JWTService
	redisClient *redis.Client
}

func NewAuthMiddleware(jwtService *jwt.JWTService, redisClient *redis.Client) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService:  jwtService,
		redisClient: redisClient,
	}
}

func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			response.Unauthorized(w, "Authorization header is required")
			return
		}

		scheme, tokenString, found := strings.Cut(authHeader, " ")
		if !found || !strings.EqualFold(scheme, "Bearer") || strings.TrimSpace(tokenString) == "" {
			response.Unauthorized(w, "Invalid authorization header format")
			return
		}

		claims, err := m.jwtService.ValidateToken(strings.TrimSpace(tokenString))
		if err != nil {
			response.Unauthorized(w, "Invalid or expired token")
			return
		}
		if claims.TokenType != jwt.AccessToken {
			response.Unauthorized(w, "Invalid token type")
			return
		}

		// revocation is checked against Redis; an unreachable Redis fails closed
		exists, err := m.redisClient.Exists(r.Context(), AccessTokenKey(claims.UserID, claims.TokenID)).Result()
		if err != nil {
			response.InternalServerError(w, "Failed to validate token")
			return
		}
		if exists == 0 {
			response.Unauthorized(w, "Token has been revoked")
			return
		}

		ctx := WithPrincipal(r.Context(), claims.UserID, claims.Email, claims.RoleID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func WithPrincipal(ctx context.Context, userID uuid.UUID, email string, roleID int) context.Context {
	return context.WithValue(ctx, principalKey{}, Principal{UserID: userID, Email: email, RoleID: roleID})
}

func PrincipalFromContext(ctx context.Context) (Principal, bool) {
	p, ok := ctx.Value(principalKey{}).(Principal)
	return p, ok
}

func GetUserIDFromContext(ctx context.Context) (uuid.UUID, bool) {
	p, ok := PrincipalFromContext(ctx)
	return p.UserID, ok
}

func GetRoleIDFromContext(ctx context.Context) (int, bool) {
	p, ok := PrincipalFromContext(ctx)
	return p.RoleID, ok
}
