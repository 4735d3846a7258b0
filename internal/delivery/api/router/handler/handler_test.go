package handler

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http/httptest"
	"strings"
	"testing"

	"yelocar/internal/delivery/api/response"
	"yelocar/internal/delivery/api/validator"
	deliverycontext "yelocar/internal/delivery/context"
	"yelocar/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

type testEnvelope struct {
	Data    json.RawMessage     `json:"data"`
	Notices []entity.Notice     `json:"notices"`
	Error   *response.ErrorInfo `json:"error"`
}

func newTestContext(method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = validator.New(nil)

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func signedIn(c echo.Context) entity.Identity {
	identity := entity.Identity{UID: "u1", Email: "asha@example.com"}
	deliverycontext.SetIdentity(c, identity)

	return identity
}

func decode(t *testing.T, rec *httptest.ResponseRecorder, data any) testEnvelope {
	t.Helper()

	var env testEnvelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	if data != nil && env.Data != nil {
		require.NoError(t, json.Unmarshal(env.Data, data))
	}

	return env
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
