package response

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	deliverycontext "showmyshop/internal/delivery/context"
	domainerrors "showmyshop/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newContext() (echo.Context, *httptest.ResponseRecorder) {
	rec := httptest.NewRecorder()
	c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
	deliverycontext.SetRequestID(c, "req-1")

	return c, rec
}

func TestSuccess(t *testing.T) {
	c, rec := newContext()

	require.NoError(t, Success(c, http.StatusCreated, map[string]int{"n": 1}))

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.JSONEq(t, `{"data":{"n":1},"meta":{"request_id":"req-1"}}`, rec.Body.String())
}

func TestError_DropsDetailsForAuthAndServerErrors(t *testing.T) {
	tests := []struct {
		status      int
		wantDetails bool
	}{
		{status: http.StatusBadRequest, wantDetails: true},
		{status: http.StatusUnauthorized},
		{status: http.StatusForbidden},
		{status: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(http.StatusText(tt.status), func(t *testing.T) {
			c, rec := newContext()

			require.NoError(t, Error(c, tt.status, "CODE", "message", []string{"name (required)"}))

			var body ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.wantDetails, body.Error.Details != nil)
		})
	}
}

func TestHandleAppError(t *testing.T) {
	c, rec := newContext()

	require.NoError(t, HandleAppError(c, errors.Wrap(domainerrors.ErrShopNotFound, "lookup")))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), `"code":"SHOP_NOT_FOUND"`)

	c, _ = newContext()
	err := HandleAppError(c, errors.New("boom"))
	assert.EqualError(t, err, "boom")
}

func TestPNG(t *testing.T) {
	c, rec := newContext()

	require.NoError(t, PNG(c, []byte{0x89, 'P', 'N', 'G'}))
	assert.Equal(t, "image/png", rec.Header().Get(echo.HeaderContentType))
}
