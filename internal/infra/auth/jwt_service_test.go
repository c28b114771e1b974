package auth

import (
	"context"
	"testing"
	"time"

	"showmyshop/config"
	"showmyshop/internal/domain/entity"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestJWTService(t *testing.T) *JWTService {
	t.Helper()

	svc, err := NewJWTService(&config.AuthConfig{
		JWTSecret: "test_secret_key_very_long_for_testing",
		JWTTTL:    time.Hour,
	})
	require.NoError(t, err)

	return svc
}

func TestJWTService_IssueAndVerify(t *testing.T) {
	t.Parallel()

	svc := newTestJWTService(t)
	token, err := svc.Issue(&entity.Caller{
		UID:         "uid-1",
		Email:       "vendor@example.com",
		DisplayName: "Vendor",
		PhotoURL:    "https://example.com/p.png",
	})
	require.NoError(t, err)

	caller, err := svc.Verify(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, "uid-1", caller.UID)
	assert.Equal(t, "vendor@example.com", caller.Email)
	assert.Equal(t, "Vendor", caller.DisplayName)
	assert.Equal(t, "https://example.com/p.png", caller.PhotoURL)
	assert.False(t, caller.Admin)
}

func TestJWTService_SubjectDefaultsToEmail(t *testing.T) {
	t.Parallel()

	svc := newTestJWTService(t)
	token, err := svc.Issue(&entity.Caller{Email: "user@example.com"})
	require.NoError(t, err)

	caller, err := svc.Verify(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, "user@example.com", caller.UID)
}

func TestJWTService_Rejects(t *testing.T) {
	t.Parallel()

	svc := newTestJWTService(t)

	other, err := NewJWTService(&config.AuthConfig{JWTSecret: "another_secret", JWTTTL: time.Hour})
	require.NoError(t, err)
	foreign, err := other.Issue(&entity.Caller{Email: "x@example.com"})
	require.NoError(t, err)

	expiredSvc := newTestJWTService(t)
	expiredSvc.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
	expired, err := expiredSvc.Issue(&entity.Caller{Email: "x@example.com"})
	require.NoError(t, err)

	noEmail, err := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}).SignedString(svc.secret)
	require.NoError(t, err)

	noneAlg, err := jwt.NewWithClaims(jwt.SigningMethodNone, Claims{
		Email: "x@example.com",
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	tests := map[string]string{
		"garbage":        "not-a-token",
		"wrong secret":   foreign,
		"expired":        expired,
		"missing email":  noEmail,
		"none algorithm": noneAlg,
	}

	for name, token := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			caller, err := svc.Verify(context.Background(), token)
			assert.Error(t, err)
			assert.Nil(t, caller)
		})
	}
}

func TestJWTService_IssueRequiresEmail(t *testing.T) {
	t.Parallel()

	_, err := newTestJWTService(t).Issue(&entity.Caller{UID: "x"})
	assert.Error(t, err)
}

func TestNewJWTService_RequiresSecret(t *testing.T) {
	t.Parallel()

	_, err := NewJWTService(&config.AuthConfig{})
	assert.Error(t, err)
}

func TestWithAdmins(t *testing.T) {
	t.Parallel()

	svc := newTestJWTService(t)
	verifier := WithAdmins(svc, []string{"admin@localhunt.com"})

	adminToken, err := svc.Issue(&entity.Caller{Email: "admin@localhunt.com"})
	require.NoError(t, err)
	userToken, err := svc.Issue(&entity.Caller{Email: "Admin@localhunt.com"})
	require.NoError(t, err)

	admin, err := verifier.Verify(context.Background(), adminToken)
	require.NoError(t, err)
	assert.True(t, admin.Admin)

	user, err := verifier.Verify(context.Background(), userToken)
	require.NoError(t, err)
	assert.False(t, user.Admin)

	_, err = verifier.Verify(context.Background(), "bad")
	assert.Error(t, err)
}

func TestCallerFromClaims(t *testing.T) {
	t.Parallel()

	caller, err := callerFromClaims("uid", map[string]any{
		"email":   "a@b.c",
		"name":    "A",
		"picture": 42,
	})
	require.NoError(t, err)
	assert.Equal(t, &entity.Caller{UID: "uid", Email: "a@b.c", DisplayName: "A"}, caller)

	_, err = callerFromClaims("uid", map[string]any{})
	assert.Error(t, err)
}
