package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"stashed/internal/apperrors"
	"stashed/internal/dto"
	"stashed/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) Register(email, password, displayName string) (*dto.UserGetDTO, error) {
	args := m.Called(email, password, displayName)
	if user, ok := args.Get(0).(*dto.UserGetDTO); ok {
		return user, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockUserService) Authenticate(email, password string) (*models.User, error) {
	args := m.Called(email, password)
	if user, ok := args.Get(0).(*models.User); ok {
		return user, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockUserService) GetByID(id uint) (*dto.UserGetDTO, error) {
	args := m.Called(id)
	if user, ok := args.Get(0).(*dto.UserGetDTO); ok {
		return user, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockUserService) Update(id uint, patch dto.UserPatch) (*dto.UserGetDTO, error) {
	args := m.Called(id, patch)
	if user, ok := args.Get(0).(*dto.UserGetDTO); ok {
		return user, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockUserService) Destroy(id uint) (*dto.CascadeReport, error) {
	args := m.Called(id)
	if report, ok := args.Get(0).(*dto.CascadeReport); ok {
		return report, args.Error(1)
	}
	return nil, args.Error(1)
}

type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Login(email, password string) (string, *models.User, error) {
	args := m.Called(email, password)
	if user, ok := args.Get(1).(*models.User); ok {
		return args.String(0), user, args.Error(2)
	}
	return args.String(0), nil, args.Error(2)
}

func (m *MockAuthService) Logout(token string) error {
	args := m.Called(token)
	return args.Error(0)
}

func (m *MockAuthService) Resolve(token string) (*models.User, error) {
	args := m.Called(token)
	if user, ok := args.Get(0).(*models.User); ok {
		return user, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockAuthService) PurgeExpired() (int64, error) {
	args := m.Called()
	return args.Get(0).(int64), args.Error(1)
}

func newUserTestApp(userService *MockUserService, authService *MockAuthService) *fiber.App {
	handler := NewUserHandler(userService, authService)
	app := fiber.New()
	app.Post("/users/register", handler.Register)
	app.Post("/users/login", handler.Login)
	app.Use(func(c *fiber.Ctx) error {
		c.Locals(userLocalKey, &models.User{BaseModel: models.BaseModel{ID: 7}, Email: "me@example.com"})
		return c.Next()
	})
	app.Get("/users/me", handler.Me)
	app.Patch("/users/me", handler.UpdateMe)
	app.Delete("/users/me", handler.DeleteMe)
	return app
}

func TestUserHandler_Register(t *testing.T) {
	mockUsers := new(MockUserService)
	mockAuth := new(MockAuthService)
	app := newUserTestApp(mockUsers, mockAuth)

	created := &dto.UserGetDTO{ID: 1, Email: "new@example.com", DisplayName: "New"}
	mockUsers.On("Register", "new@example.com", "Sup3rSecret", "New").Return(created, nil)

	body, _ := json.Marshal(map[string]interface{}{
		"email":        "new@example.com",
		"password":     "Sup3rSecret",
		"display_name": "New",
	})
	req := httptest.NewRequest(http.MethodPost, "/users/register", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	var decoded dto.UserGetDTO
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&decoded))
	assert.Equal(t, "new@example.com", decoded.Email)
	mockUsers.AssertExpectations(t)
}

func TestUserHandler_RegisterWeakPassword(t *testing.T) {
	mockUsers := new(MockUserService)
	mockAuth := new(MockAuthService)
	app := newUserTestApp(mockUsers, mockAuth)

	mockUsers.On("Register", "new@example.com", "short", "").
		Return(nil, apperrors.New(apperrors.KindWeakPassword, "password must be at least 8 characters long"))

	body, _ := json.Marshal(map[string]interface{}{"email": "new@example.com", "password": "short"})
	req := httptest.NewRequest(http.MethodPost, "/users/register", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestUserHandler_LoginReturnsToken(t *testing.T) {
	mockUsers := new(MockUserService)
	mockAuth := new(MockAuthService)
	app := newUserTestApp(mockUsers, mockAuth)

	user := &models.User{BaseModel: models.BaseModel{ID: 7}, Email: "me@example.com"}
	mockAuth.On("Login", "me@example.com", "Sup3rSecret").Return("token-abc", user, nil)

	body, _ := json.Marshal(map[string]interface{}{"email": "me@example.com", "password": "Sup3rSecret"})
	req := httptest.NewRequest(http.MethodPost, "/users/login", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var decoded map[string]interface{}
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&decoded))
	assert.Equal(t, "token-abc", decoded["token"])
	mockAuth.AssertExpectations(t)
}

func TestUserHandler_LoginBadCredentials(t *testing.T) {
	mockUsers := new(MockUserService)
	mockAuth := new(MockAuthService)
	app := newUserTestApp(mockUsers, mockAuth)

	mockAuth.On("Login", "me@example.com", "wrong").
		Return("", nil, apperrors.New(apperrors.KindInvalidCredentials, "invalid email or password"))

	body, _ := json.Marshal(map[string]interface{}{"email": "me@example.com", "password": "wrong"})
	req := httptest.NewRequest(http.MethodPost, "/users/login", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestUserHandler_MeOmitsPasswordHash(t *testing.T) {
	mockUsers := new(MockUserService)
	mockAuth := new(MockAuthService)
	app := newUserTestApp(mockUsers, mockAuth)

	req := httptest.NewRequest(http.MethodGet, "/users/me", nil)
	resp, err := app.Test(req)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var decoded map[string]interface{}
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&decoded))
	assert.Equal(t, "me@example.com", decoded["email"])
	assert.NotContains(t, decoded, "password_hash")
}

func TestUserHandler_DeleteMeReturnsCascadeReport(t *testing.T) {
	mockUsers := new(MockUserService)
	mockAuth := new(MockAuthService)
	app := newUserTestApp(mockUsers, mockAuth)

	report := &dto.CascadeReport{
		Items: []models.Item{{BaseModel: models.BaseModel{ID: 2}, UserID: 7, Name: "Drill"}},
	}
	mockUsers.On("Destroy", uint(7)).Return(report, nil)

	req := httptest.NewRequest(http.MethodDelete, "/users/me", nil)
	resp, err := app.Test(req)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var decoded dto.CascadeReport
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&decoded))
	assert.Len(t, decoded.Items, 1)
	mockUsers.AssertExpectations(t)
}
