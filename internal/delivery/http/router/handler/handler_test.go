package handler_test

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http/httptest"
	"strings"
	"testing"

	"campwatch/config"
	deliveryhttp "campwatch/internal/delivery/http"
	"campwatch/internal/delivery/http/middleware"
	"campwatch/internal/delivery/http/router"
	"campwatch/internal/delivery/http/router/handler"
	domainerrors "campwatch/internal/domain/errors"
	servicemocks "campwatch/internal/mocks/service"
	usecasemocks "campwatch/internal/mocks/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

const testDefaultUserID uint = 1

type testServer struct {
	echo           *echo.Echo
	authUC         *usecasemocks.MockAuthUsecase
	notificationUC *usecasemocks.MockNotificationUsecase
	searchUC       *usecasemocks.MockSearchUsecase
	tokenSvc       *servicemocks.MockTokenService
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	cfg := &config.Config{Auth: &config.AuthConfig{DefaultUserID: testDefaultUserID}}
	cfg.HTTP.MaxRequestBodySize = "1M"
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	ts := &testServer{
		authUC:         usecasemocks.NewMockAuthUsecase(t),
		notificationUC: usecasemocks.NewMockNotificationUsecase(t),
		searchUC:       usecasemocks.NewMockSearchUsecase(t),
		tokenSvc:       servicemocks.NewMockTokenService(t),
	}

	ts.echo = deliveryhttp.NewEcho(cfg, logger)
	router.NewRouter(router.RouterParams{
		AuthHandler:         handler.NewAuthHandler(ts.authUC, logger),
		NotificationHandler: handler.NewNotificationHandler(ts.notificationUC, logger),
		SearchHandler:       handler.NewSearchHandler(ts.searchUC),
		IdentityMiddleware:  middleware.NewIdentityMiddleware(ts.tokenSvc, cfg),
	}).RegisterRoutes(ts.echo)

	return ts
}

func (ts *testServer) do(method, target, body string, headers ...string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}

	rec := httptest.NewRecorder()
	ts.echo.ServeHTTP(rec, req)

	return rec
}

type envelope struct {
	Success bool            `json:"success"`
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Code    string `json:"code"`
		Details string `json:"details"`
	} `json:"error"`
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env), rec.Body.String())

	return env
}

func decodeData[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()

	var data T
	require.NoError(t, json.Unmarshal(decode(t, rec).Data, &data), rec.Body.String())

	return data
}

func requireErrorCode(t *testing.T, rec *httptest.ResponseRecorder, status int, code string) envelope {
	t.Helper()

	require.Equal(t, status, rec.Code, rec.Body.String())
	env := decode(t, rec)
	require.False(t, env.Success)
	require.NotNil(t, env.Error)
	require.Equal(t, code, env.Error.Code)

	return env
}

var errStoreDown = domainerrors.ErrTransactionFailed.WrapMessage("store down")
