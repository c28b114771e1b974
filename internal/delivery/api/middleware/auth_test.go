package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	deliverycontext "showmyshop/internal/delivery/context"
	"showmyshop/internal/domain/entity"
	domainerrors "showmyshop/internal/domain/errors"
	mockService "showmyshop/internal/mocks/service"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newAuthTestContext(authHeader string) echo.Context {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if authHeader != "" {
		req.Header.Set(echo.HeaderAuthorization, authHeader)
	}

	return echo.New().NewContext(req, httptest.NewRecorder())
}

func newAuthTestMiddleware(t *testing.T) (*AuthMiddleware, *mockService.MockIdentityVerifier) {
	verifier := mockService.NewMockIdentityVerifier(t)

	return NewAuthMiddleware(verifier, slog.New(slog.NewTextHandler(io.Discard, nil))), verifier
}

func TestAuthenticate(t *testing.T) {
	caller := &entity.Caller{UID: "u1", Email: "vendor@example.com"}

	tests := []struct {
		name       string
		header     string
		setupMocks func(verifier *mockService.MockIdentityVerifier)
		wantErr    error
	}{
		{
			name:    "missing header",
			wantErr: domainerrors.ErrUnauthorized,
		},
		{
			name:    "wrong scheme",
			header:  "Basic dXNlcjpwYXNz",
			wantErr: domainerrors.ErrInvalidToken,
		},
		{
			name:    "empty token",
			header:  "Bearer ",
			wantErr: domainerrors.ErrInvalidToken,
		},
		{
			name:   "verification fails",
			header: "Bearer expired",
			setupMocks: func(verifier *mockService.MockIdentityVerifier) {
				verifier.EXPECT().Verify(mock.Anything, "expired").Return(nil, errors.New("token expired"))
			},
			wantErr: domainerrors.ErrInvalidToken,
		},
		{
			name:   "valid token",
			header: "bearer good-token",
			setupMocks: func(verifier *mockService.MockIdentityVerifier) {
				verifier.EXPECT().Verify(mock.Anything, "good-token").Return(caller, nil)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, verifier := newAuthTestMiddleware(t)
			if tt.setupMocks != nil {
				tt.setupMocks(verifier)
			}

			c := newAuthTestContext(tt.header)
			called := false
			err := m.Authenticate(func(c echo.Context) error {
				called = true
				got, ok := deliverycontext.GetCaller(c)
				require.True(t, ok)
				assert.Equal(t, caller, got)

				return nil
			})(c)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.False(t, called)

				return
			}

			require.NoError(t, err)
			assert.True(t, called)
		})
	}
}

func TestRequireAdmin(t *testing.T) {
	m, _ := newAuthTestMiddleware(t)
	next := func(c echo.Context) error { return c.NoContent(http.StatusNoContent) }

	c := newAuthTestContext("")
	assert.ErrorIs(t, m.RequireAdmin(next)(c), domainerrors.ErrUnauthorized)

	c = newAuthTestContext("")
	deliverycontext.SetCaller(c, &entity.Caller{Email: "vendor@example.com"})
	assert.ErrorIs(t, m.RequireAdmin(next)(c), domainerrors.ErrForbidden)

	c = newAuthTestContext("")
	deliverycontext.SetCaller(c, &entity.Caller{Email: "admin@localhunt.com", Admin: true})
	assert.NoError(t, m.RequireAdmin(next)(c))
}
