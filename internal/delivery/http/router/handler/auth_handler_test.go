package handler_test

import (
	"net/http"
	"testing"

	"campwatch/internal/delivery/http/router/handler"
	"campwatch/internal/domain/entity"
	domainerrors "campwatch/internal/domain/errors"
	"campwatch/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestRootAndHealth(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(http.MethodGet, "/", "")
	require.Equal(t, http.StatusOK, rec.Code)
	banner := decodeData[map[string]string](t, rec)
	assert.Equal(t, "Welcome to Camply Web Interface", banner["message"])
	assert.Equal(t, "0.1.0", banner["version"])

	rec = ts.do(http.MethodGet, "/health", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "healthy", decodeData[map[string]string](t, rec)["status"])
}

func TestAuthHandler_Register(t *testing.T) {
	phone := "+15555550100"

	t.Run("registers user and returns token header", func(t *testing.T) {
		ts := newTestServer(t)
		ts.authUC.EXPECT().
			RegisterUser(mock.Anything, &usecase.CreateUserInput{Email: "camper@example.com", PhoneNumber: &phone}).
			Return(&usecase.RegisterOutput{
				User:        &entity.User{ID: 7, Email: "camper@example.com", PhoneNumber: &phone},
				AccessToken: "signed-token",
			}, nil).Once()

		rec := ts.do(http.MethodPost, "/api/auth/register", `{"email":"camper@example.com","phone_number":"+15555550100"}`)

		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		assert.Equal(t, "signed-token", rec.Header().Get(handler.HeaderAccessToken))
		user := decodeData[entity.User](t, rec)
		assert.Equal(t, uint(7), user.ID)
		assert.Equal(t, "camper@example.com", user.Email)
	})

	t.Run("duplicate email is a bad request", func(t *testing.T) {
		ts := newTestServer(t)
		ts.authUC.EXPECT().RegisterUser(mock.Anything, mock.Anything).
			Return(nil, domainerrors.ErrUserAlreadyExists).Once()

		rec := ts.do(http.MethodPost, "/api/auth/register", `{"email":"camper@example.com"}`)

		requireErrorCode(t, rec, http.StatusBadRequest, "USER_ALREADY_EXISTS")
	})

	t.Run("invalid email fails validation", func(t *testing.T) {
		ts := newTestServer(t)

		rec := ts.do(http.MethodPost, "/api/auth/register", `{"email":"not-an-email"}`)

		env := requireErrorCode(t, rec, http.StatusBadRequest, "VALIDATION_FAILED")
		assert.Contains(t, env.Error.Details, "Email")
	})

	t.Run("malformed body", func(t *testing.T) {
		ts := newTestServer(t)

		rec := ts.do(http.MethodPost, "/api/auth/register", `{"email":`)

		requireErrorCode(t, rec, http.StatusBadRequest, "INVALID_INPUT")
	})

	t.Run("store failure is opaque", func(t *testing.T) {
		ts := newTestServer(t)
		ts.authUC.EXPECT().RegisterUser(mock.Anything, mock.Anything).
			Return(nil, domainerrors.ErrUserCreationFailed.WrapMessage("insert failed")).Once()

		rec := ts.do(http.MethodPost, "/api/auth/register", `{"email":"camper@example.com"}`)

		env := requireErrorCode(t, rec, http.StatusInternalServerError, "USER_CREATION_FAILED")
		assert.Empty(t, env.Error.Details)
	})
}

func TestAuthHandler_Me(t *testing.T) {
	for _, authorization := range []string{"", "Bearer stale", "Basic abc"} {
		t.Run("authorization "+authorization, func(t *testing.T) {
			ts := newTestServer(t)

			rec := ts.do(http.MethodGet, "/api/auth/me", "", echo.HeaderAuthorization, authorization)

			requireErrorCode(t, rec, http.StatusNotImplemented, "NOT_IMPLEMENTED")
		})
	}
}

func TestAuthHandler_RegisterIgnoresStaleToken(t *testing.T) {
	ts := newTestServer(t)
	ts.authUC.EXPECT().
		RegisterUser(mock.Anything, &usecase.CreateUserInput{Email: "camper@example.com"}).
		Return(&usecase.RegisterOutput{
			User:        &entity.User{ID: 8, Email: "camper@example.com"},
			AccessToken: "fresh-token",
		}, nil).Once()

	rec := ts.do(http.MethodPost, "/api/auth/register", `{"email":"camper@example.com"}`,
		echo.HeaderAuthorization, "Bearer stale")

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "fresh-token", rec.Header().Get(handler.HeaderAccessToken))
}
