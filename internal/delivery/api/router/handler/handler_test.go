package handler

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	apimiddleware "showmyshop/internal/delivery/api/middleware"
	"showmyshop/internal/delivery/api/validator"
	deliverycontext "showmyshop/internal/delivery/context"
	"showmyshop/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

var (
	vendor = &entity.Caller{UID: "v1", Email: "vendor@example.com"}
	admin  = &entity.Caller{UID: "a1", Email: "admin@localhunt.com", Admin: true}
)

type envelope struct {
	Data  json.RawMessage `json:"data"`
	Error *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
		Details any    `json:"details"`
	} `json:"error"`
}

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestEcho() *echo.Echo {
	e := echo.New()
	e.Validator = validator.New()
	e.HTTPErrorHandler = apimiddleware.NewErrorMiddleware(newDiscardLogger()).HandleHTTPError

	return e
}

// request describes one handler invocation.
type request struct {
	method string
	target string
	body   string
	params map[string]string
	caller *entity.Caller
}

// serve runs h the way echo would, including the central error handler.
func serve(t *testing.T, h echo.HandlerFunc, r request) *httptest.ResponseRecorder {
	t.Helper()

	e := newTestEcho()

	var body io.Reader
	if r.body != "" {
		body = strings.NewReader(r.body)
	}
	req := httptest.NewRequest(r.method, r.target, body)
	if r.body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if len(r.params) > 0 {
		names := make([]string, 0, len(r.params))
		values := make([]string, 0, len(r.params))
		for name, value := range r.params {
			names = append(names, name)
			values = append(values, value)
		}
		c.SetParamNames(names...)
		c.SetParamValues(values...)
	}
	if r.caller != nil {
		deliverycontext.SetCaller(c, r.caller)
	}

	if err := h(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}

	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))

	return env
}

func TestHealthCheck(t *testing.T) {
	rec := serve(t, HealthCheck, request{method: http.MethodGet, target: "/health"})

	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{"status":"ok"}`, string(decode(t, rec).Data))
}
