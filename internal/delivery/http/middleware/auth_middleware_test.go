package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"cycle-booking-service/config"
	"cycle-booking-service/internal/domain/entity"
	"cycle-booking-service/pkg/jwt"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type authFixture struct {
	jwt        *jwt.JWTService
	redis      *miniredis.Miniredis
	middleware *AuthMiddleware
}

func newAuthFixture(t *testing.T) *authFixture {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	jwtService := jwt.NewJWTService(config.JWTConfig{Secret: "test-secret", AccessExpiry: time.Minute})
	return &authFixture{jwt: jwtService, redis: mr, middleware: NewAuthMiddleware(jwtService, client)}
}

func (f *authFixture) issue(t *testing.T, userID uuid.UUID, roleID int, register bool) string {
	t.Helper()
	token, tokenID, err := f.jwt.GenerateAccessToken(userID, "user@example.com", roleID)
	require.NoError(t, err)
	if register {
		require.NoError(t, f.redis.Set(AccessTokenKey(userID, tokenID), "1"))
	}
	return token
}

func principalEcho(t *testing.T, wantUser uuid.UUID, wantRole int) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, ok := GetUserIDFromContext(r.Context())
		assert.True(t, ok)
		assert.Equal(t, wantUser, userID)
		roleID, ok := GetRoleIDFromContext(r.Context())
		assert.True(t, ok)
		assert.Equal(t, wantRole, roleID)
		w.WriteHeader(http.StatusNoContent)
	})
}

func TestAuthenticateAcceptsRegisteredToken(t *testing.T) {
	f := newAuthFixture(t)
	userID := uuid.New()
	token := f.issue(t, userID, entity.RoleIDPatient, true)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()

	f.middleware.Authenticate(principalEcho(t, userID, entity.RoleIDPatient)).ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestAuthenticateRejects(t *testing.T) {
	f := newAuthFixture(t)
	revoked := f.issue(t, uuid.New(), entity.RoleIDPatient, false)

	cases := map[string]string{
		"missing header": "",
		"wrong scheme":   "Token abc",
		"garbage token":  "Bearer not-a-jwt",
		"revoked token":  "Bearer " + revoked,
	}
	for name, header := range cases {
		t.Run(name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if header != "" {
				req.Header.Set("Authorization", header)
			}
			rec := httptest.NewRecorder()

			f.middleware.Authenticate(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				t.Fatal("handler must not run")
			})).ServeHTTP(rec, req)
			assert.Equal(t, http.StatusUnauthorized, rec.Code)
		})
	}
}

func TestRequireRole(t *testing.T) {
	ok := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusNoContent) })

	run := func(ctx context.Context, h http.Handler) int {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil).WithContext(ctx))
		return rec.Code
	}

	doctor := WithPrincipal(context.Background(), uuid.New(), "d@example.com", entity.RoleIDDoctor)
	patient := WithPrincipal(context.Background(), uuid.New(), "p@example.com", entity.RoleIDPatient)

	assert.Equal(t, http.StatusNoContent, run(doctor, RequireAdminOrDoctor(ok)))
	assert.Equal(t, http.StatusForbidden, run(patient, RequireAdminOrDoctor(ok)))
	assert.Equal(t, http.StatusForbidden, run(doctor, RequireAdmin(ok)))
	assert.Equal(t, http.StatusUnauthorized, run(context.Background(), RequireDoctor(ok)))
}

func TestAuthenticateSchemeIsCaseInsensitive(t *testing.T) {
	f := newAuthFixture(t)
	userID := uuid.New()
	token := f.issue(t, userID, entity.RoleIDDoctor, true)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "bearer "+token)
	rec := httptest.NewRecorder()

	f.middleware.Authenticate(principalEcho(t, userID, entity.RoleIDDoctor)).ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestAuthenticateFailsClosedWithoutRedis(t *testing.T) {
	f := newAuthFixture(t)
	token := f.issue(t, uuid.New(), entity.RoleIDPatient, true)
	f.redis.Close()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()

	f.middleware.Authenticate(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not run")
	})).ServeHTTP(rec, req)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestPrincipalFromContext(t *testing.T) {
	userID := uuid.New()
	ctx := WithPrincipal(context.Background(), userID, "a@example.com", entity.RoleIDAdmin)

	p, ok := PrincipalFromContext(ctx)
	require.True(t, ok)
	assert.Equal(t, Principal{UserID: userID, Email: "a@example.com", RoleID: entity.RoleIDAdmin}, p)

	_, ok = PrincipalFromContext(context.Background())
	assert.False(t, ok)
}
