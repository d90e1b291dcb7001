package handler

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	deliverycontext "hivefund/internal/delivery/context"
	"hivefund/internal/delivery/http/validator"
	"hivefund/internal/domain/entity"
	"hivefund/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockUserUsecase struct {
	mock.Mock
}

func (m *mockUserUsecase) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.RegisterOutput, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*usecase.RegisterOutput), args.Error(1)
}

func (m *mockUserUsecase) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*usecase.LoginOutput), args.Error(1)
}

func (m *mockUserUsecase) GetUser(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *mockUserUsecase) ListUsers(ctx context.Context) ([]*entity.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.User), args.Error(1)
}

func newTestEcho() *echo.Echo {
	e := echo.New()
	e.Validator = validator.New()

	return e
}

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newJSONContext(e *echo.Echo, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func TestUserHandler_Register_Success(t *testing.T) {
	e := newTestEcho()
	uc := new(mockUserUsecase)
	h := NewUserHandler(uc, newTestLogger())

	user := &entity.User{
		ID:       uuid.New(),
		FullName: "Alice Smith",
		Email:    "alice@example.com",
	}
	uc.On("Register", mock.Anything, mock.MatchedBy(func(in *usecase.RegisterInput) bool {
		return in.Email == "alice@example.com" && in.Password == "s3cret-password"
	})).Return(&usecase.RegisterOutput{User: user}, nil)

	body := `{"full_name":"Alice Smith","email":"alice@example.com","password":"s3cret-password","address":"1 Main St","post_code":"12345","country":"Sweden"}`
	c, rec := newJSONContext(e, http.MethodPost, "/register", body)

	require.NoError(t, h.Register(c))
	assert.Equal(t, http.StatusCreated, rec.Code)

	var payload map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
	data, ok := payload["data"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "alice@example.com", data["email"])
	// Hash must never appear in the response.
	assert.NotContains(t, rec.Body.String(), "password")
}

func TestUserHandler_Register_MalformedBody(t *testing.T) {
	e := newTestEcho()
	uc := new(mockUserUsecase)
	h := NewUserHandler(uc, newTestLogger())

	c, rec := newJSONContext(e, http.MethodPost, "/register", `{"full_name":`)

	require.NoError(t, h.Register(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "INVALID_INPUT")

	uc.AssertNotCalled(t, "Register", mock.Anything, mock.Anything)
}

func TestUserHandler_Register_MissingFields(t *testing.T) {
	e := newTestEcho()
	uc := new(mockUserUsecase)
	h := NewUserHandler(uc, newTestLogger())

	c, _ := newJSONContext(e, http.MethodPost, "/register", `{"email":"not-an-email"}`)

	err := h.Register(c)
	require.Error(t, err)

	uc.AssertNotCalled(t, "Register", mock.Anything, mock.Anything)
}

func TestUserHandler_Login_Success(t *testing.T) {
	e := newTestEcho()
	uc := new(mockUserUsecase)
	h := NewUserHandler(uc, newTestLogger())

	user := &entity.User{ID: uuid.New(), Email: "alice@example.com"}
	uc.On("Login", mock.Anything, mock.MatchedBy(func(in *usecase.LoginInput) bool {
		return in.Email == "alice@example.com"
	})).Return(&usecase.LoginOutput{AccessToken: "signed-token", User: user}, nil)

	c, rec := newJSONContext(e, http.MethodPost, "/login", `{"email":"alice@example.com","password":"pw1234567"}`)

	require.NoError(t, h.Login(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var payload map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
	data, ok := payload["data"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "signed-token", data["access_token"])
	assert.Equal(t, "bearer", data["token_type"])
}

func TestUserHandler_ListUsers(t *testing.T) {
	e := newTestEcho()
	uc := new(mockUserUsecase)
	h := NewUserHandler(uc, newTestLogger())

	users := []*entity.User{
		{ID: uuid.New(), Email: "a@example.com", PasswordHash: "secret-hash"},
		{ID: uuid.New(), Email: "b@example.com", PasswordHash: "secret-hash"},
	}
	uc.On("ListUsers", mock.Anything).Return(users, nil)

	c, rec := newJSONContext(e, http.MethodGet, "/users", "")

	require.NoError(t, h.ListUsers(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotContains(t, rec.Body.String(), "secret-hash")
}

func TestUserHandler_Me(t *testing.T) {
	e := newTestEcho()
	uc := new(mockUserUsecase)
	h := NewUserHandler(uc, newTestLogger())

	userID := uuid.New()
	user := &entity.User{ID: userID, Email: "alice@example.com"}
	uc.On("GetUser", mock.Anything, userID).Return(user, nil)

	c, rec := newJSONContext(e, http.MethodGet, "/users/me", "")
	deliverycontext.SetUserID(c, userID)

	require.NoError(t, h.Me(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var payload map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
	data, ok := payload["data"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, userID.String(), data["id"])
}

func TestUserHandler_Me_MissingUserID(t *testing.T) {
	e := newTestEcho()
	uc := new(mockUserUsecase)
	h := NewUserHandler(uc, newTestLogger())

	c, rec := newJSONContext(e, http.MethodGet, "/users/me", "")

	require.NoError(t, h.Me(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
