package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	httpmiddleware "authstarter/internal/delivery/http/middleware"
	"authstarter/internal/delivery/http/validator"
	"authstarter/internal/domain/entity"
	domainerrors "authstarter/internal/domain/errors"
	"authstarter/internal/domain/service"
	mockUsecase "authstarter/internal/mocks/usecase"
	"authstarter/internal/usecase"
)

// newTestServer builds an Echo instance with the same validator and error
// handling used by the real server.
func newTestServer(uc usecase.AuthUsecase) *echo.Echo {
	e := echo.New()
	e.Validator = validator.New()
	e.HTTPErrorHandler = httpmiddleware.NewErrorMiddleware(slog.Default()).HandleHTTPError

	h := NewAuthHandler(uc, slog.Default())
	e.POST("/api/auth/signup", h.Signup)
	e.POST("/api/auth/login", h.Login)
	e.GET("/health", HealthCheck)

	return e
}

func doJSON(e *echo.Echo, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec
}

func TestAuthHandler_Signup_Created(t *testing.T) {
	uc := new(mockUsecase.MockAuthUsecase)
	uc.On("Register", mock.Anything, &usecase.RegisterInput{
		Username: "john",
		Email:    "john@example.com",
		Password: "secret1",
	}).Return(&usecase.RegisterOutput{
		Account: &entity.Account{
			ID:           7,
			Username:     "john",
			Email:        "john@example.com",
			PasswordHash: "$2a$10$hashed",
		},
	}, nil)

	e := newTestServer(uc)
	rec := doJSON(e, http.MethodPost, "/api/auth/signup",
		`{"username":"john","email":"john@example.com","password":"secret1"}`)

	assert.Equal(t, http.StatusCreated, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, float64(7), body["userId"])
	assert.Equal(t, "john", body["username"])
	assert.Equal(t, "john@example.com", body["email"])
	// No credential material may leak into the response.
	assert.NotContains(t, rec.Body.String(), "password")
	assert.NotContains(t, rec.Body.String(), "$2a$10$hashed")
	uc.AssertExpectations(t)
}

func TestAuthHandler_Signup_DuplicateEmail(t *testing.T) {
	uc := new(mockUsecase.MockAuthUsecase)
	uc.On("Register", mock.Anything, mock.Anything).
		Return(nil, errors.Wrap(domainerrors.ErrEmailAlreadyExists, "email already registered"))

	e := newTestServer(uc)
	rec := doJSON(e, http.MethodPost, "/api/auth/signup",
		`{"username":"jane","email":"john@example.com","password":"secret2"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "EMAIL_ALREADY_EXISTS")
}

func TestAuthHandler_Signup_ValidationFailure(t *testing.T) {
	uc := new(mockUsecase.MockAuthUsecase)

	e := newTestServer(uc)
	rec := doJSON(e, http.MethodPost, "/api/auth/signup",
		`{"username":"","email":"not-an-email","password":""}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "VALIDATION_FAILED")
	assert.Contains(t, rec.Body.String(), "details")
	uc.AssertNotCalled(t, "Register", mock.Anything, mock.Anything)
}

func TestAuthHandler_Signup_WhitespacePasswordRejected(t *testing.T) {
	uc := new(mockUsecase.MockAuthUsecase)

	e := newTestServer(uc)
	rec := doJSON(e, http.MethodPost, "/api/auth/signup",
		`{"username":"john","email":"john@example.com","password":"   "}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "VALIDATION_FAILED")
	uc.AssertNotCalled(t, "Register", mock.Anything, mock.Anything)
}

func TestAuthHandler_Login_WhitespacePasswordRejected(t *testing.T) {
	uc := new(mockUsecase.MockAuthUsecase)

	e := newTestServer(uc)
	rec := doJSON(e, http.MethodPost, "/api/auth/login",
		`{"email":"john@example.com","password":"   "}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "VALIDATION_FAILED")
	uc.AssertNotCalled(t, "Login", mock.Anything, mock.Anything)
}

func TestAuthHandler_Signup_UnexpectedErrorIsOpaque(t *testing.T) {
	uc := new(mockUsecase.MockAuthUsecase)
	uc.On("Register", mock.Anything, mock.Anything).
		Return(nil, errors.New("connection refused: db:5432"))

	e := newTestServer(uc)
	rec := doJSON(e, http.MethodPost, "/api/auth/signup",
		`{"username":"john","email":"john@example.com","password":"secret1"}`)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "INTERNAL_ERROR")
	// Internal failure detail must not reach the client.
	assert.NotContains(t, rec.Body.String(), "connection refused")
}

func TestAuthHandler_Login_Success(t *testing.T) {
	uc := new(mockUsecase.MockAuthUsecase)
	uc.On("Login", mock.Anything, &usecase.LoginInput{
		Email:    "john@example.com",
		Password: "secret1",
	}).Return(&usecase.LoginOutput{
		TokenType:   service.TokenTypeBearer,
		AccessToken: "signed.jwt.token",
		Principal:   &entity.Principal{AccountID: 7},
	}, nil)

	e := newTestServer(uc)
	rec := doJSON(e, http.MethodPost, "/api/auth/login",
		`{"email":"john@example.com","password":"secret1"}`)

	assert.Equal(t, http.StatusOK, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Bearer", body["tokenType"])
	assert.Equal(t, "signed.jwt.token", body["accessToken"])
}

func TestAuthHandler_Login_InvalidCredentials(t *testing.T) {
	uc := new(mockUsecase.MockAuthUsecase)
	uc.On("Login", mock.Anything, mock.Anything).
		Return(nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "password mismatch"))

	e := newTestServer(uc)
	rec := doJSON(e, http.MethodPost, "/api/auth/login",
		`{"email":"john@example.com","password":"wrongpass"}`)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "INVALID_CREDENTIALS")
	// The response must not reveal whether the email exists.
	assert.NotContains(t, rec.Body.String(), "mismatch")
}

func TestAuthHandler_Login_UnknownEmailLooksLikeWrongPassword(t *testing.T) {
	wrongPassword := new(mockUsecase.MockAuthUsecase)
	wrongPassword.On("Login", mock.Anything, mock.Anything).
		Return(nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "password mismatch"))

	unknownEmail := new(mockUsecase.MockAuthUsecase)
	unknownEmail.On("Login", mock.Anything, mock.Anything).
		Return(nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "account not found"))

	recWrong := doJSON(newTestServer(wrongPassword), http.MethodPost, "/api/auth/login",
		`{"email":"john@example.com","password":"wrongpass"}`)
	recUnknown := doJSON(newTestServer(unknownEmail), http.MethodPost, "/api/auth/login",
		`{"email":"ghost@example.com","password":"secret1"}`)

	assert.Equal(t, http.StatusUnauthorized, recWrong.Code)
	assert.Equal(t, http.StatusUnauthorized, recUnknown.Code)

	// The error payload must be indistinguishable; only the request id may differ.
	var wrongBody, unknownBody map[string]any
	require.NoError(t, json.Unmarshal(recWrong.Body.Bytes(), &wrongBody))
	require.NoError(t, json.Unmarshal(recUnknown.Body.Bytes(), &unknownBody))
	assert.Equal(t, wrongBody["error"], unknownBody["error"])
}

func TestAuthHandler_Login_ValidationFailure(t *testing.T) {
	uc := new(mockUsecase.MockAuthUsecase)

	e := newTestServer(uc)
	rec := doJSON(e, http.MethodPost, "/api/auth/login", `{"email":"","password":""}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "VALIDATION_FAILED")
	uc.AssertNotCalled(t, "Login", mock.Anything, mock.Anything)
}

func TestHealthCheck(t *testing.T) {
	e := newTestServer(new(mockUsecase.MockAuthUsecase))

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"ok"`)
}
