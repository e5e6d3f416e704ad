package services

import (
	"testing"

	"stashed/internal/apperrors"
	"stashed/internal/dto"
	"stashed/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
)

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(user *models.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUserRepository) FindByID(id uint) (*models.User, error) {
	args := m.Called(id)
	if user, ok := args.Get(0).(*models.User); ok {
		return user, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockUserRepository) FindAll() ([]models.User, error) {
	args := m.Called()
	return args.Get(0).([]models.User), args.Error(1)
}

func (m *MockUserRepository) Update(user *models.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUserRepository) Delete(id uint) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockUserRepository) FindByEmail(email string) (*models.User, error) {
	args := m.Called(email)
	if user, ok := args.Get(0).(*models.User); ok {
		return user, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockUserRepository) DestroyData(userID uint) (*dto.CascadeReport, error) {
	args := m.Called(userID)
	if report, ok := args.Get(0).(*dto.CascadeReport); ok {
		return report, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockUserRepository) DestroyCascade(userID uint) (*dto.CascadeReport, error) {
	args := m.Called(userID)
	if report, ok := args.Get(0).(*dto.CascadeReport); ok {
		return report, args.Error(1)
	}
	return nil, args.Error(1)
}

type MockCascadeService struct {
	mock.Mock
}

func (m *MockCascadeService) DestroyUserData(userID uint) (*dto.CascadeReport, error) {
	args := m.Called(userID)
	if report, ok := args.Get(0).(*dto.CascadeReport); ok {
		return report, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockCascadeService) DestroyUser(userID uint) (*dto.CascadeReport, error) {
	args := m.Called(userID)
	if report, ok := args.Get(0).(*dto.CascadeReport); ok {
		return report, args.Error(1)
	}
	return nil, args.Error(1)
}

func TestUserService_RegisterRejectsWeakPasswords(t *testing.T) {
	mockRepo := new(MockUserRepository)
	service := NewUserService(mockRepo, new(MockCascadeService))

	tests := []struct {
		name     string
		password string
	}{
		{"too short", "Ab1"},
		{"no lowercase", "PASSWORD1"},
		{"no uppercase", "password1"},
		{"no digit", "Passwords"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := service.Register("user@example.com", tt.password, "Test User")
			assert.Error(t, err)
			assert.Equal(t, apperrors.KindWeakPassword, apperrors.KindOf(err))
		})
	}
	mockRepo.AssertNotCalled(t, "Create", mock.Anything)
}

func TestUserService_RegisterRejectsInvalidEmail(t *testing.T) {
	service := NewUserService(new(MockUserRepository), new(MockCascadeService))

	_, err := service.Register("not-an-email", "Password1", "Test User")

	assert.Error(t, err)
	assert.Equal(t, apperrors.KindInvalidEmailFormat, apperrors.KindOf(err))
}

func TestUserService_RegisterNormalizesEmail(t *testing.T) {
	mockRepo := new(MockUserRepository)
	service := NewUserService(mockRepo, new(MockCascadeService))

	mockRepo.On("FindByEmail", "user@example.com").Return(nil, nil)
	mockRepo.On("Create", mock.AnythingOfType("*models.User")).Return(nil)

	user, err := service.Register("User@Example.COM", "Password1", "Test User")

	assert.NoError(t, err)
	assert.Equal(t, "user@example.com", user.Email)
	mockRepo.AssertExpectations(t)
}

func TestUserService_RegisterRejectsDuplicateEmail(t *testing.T) {
	mockRepo := new(MockUserRepository)
	service := NewUserService(mockRepo, new(MockCascadeService))

	existing := &models.User{Email: "taken@example.com"}
	mockRepo.On("FindByEmail", "taken@example.com").Return(existing, nil)

	_, err := service.Register("taken@example.com", "Password1", "Test User")

	assert.Error(t, err)
	assert.Equal(t, apperrors.KindDuplicateEmail, apperrors.KindOf(err))
	mockRepo.AssertNotCalled(t, "Create", mock.Anything)
}

func TestUserService_AuthenticateDoesNotRevealWhichFieldWasWrong(t *testing.T) {
	mockRepo := new(MockUserRepository)
	service := NewUserService(mockRepo, new(MockCascadeService))

	hash, _ := bcrypt.GenerateFromPassword([]byte("Password1"), bcrypt.MinCost)
	known := &models.User{Email: "known@example.com", PasswordHash: string(hash)}
	mockRepo.On("FindByEmail", "known@example.com").Return(known, nil)
	mockRepo.On("FindByEmail", "unknown@example.com").Return(nil, nil)

	_, unknownErr := service.Authenticate("unknown@example.com", "Password1")
	_, wrongErr := service.Authenticate("known@example.com", "WrongPass1")

	assert.Error(t, unknownErr)
	assert.Error(t, wrongErr)
	assert.Equal(t, apperrors.KindInvalidCredentials, apperrors.KindOf(unknownErr))
	assert.Equal(t, apperrors.KindInvalidCredentials, apperrors.KindOf(wrongErr))
	assert.Equal(t, unknownErr.Error(), wrongErr.Error())
}

func TestUserService_AuthenticateSuccess(t *testing.T) {
	mockRepo := new(MockUserRepository)
	service := NewUserService(mockRepo, new(MockCascadeService))

	hash, _ := bcrypt.GenerateFromPassword([]byte("Password1"), bcrypt.MinCost)
	known := &models.User{Email: "known@example.com", PasswordHash: string(hash), DisplayName: "Known"}
	mockRepo.On("FindByEmail", "known@example.com").Return(known, nil)

	user, err := service.Authenticate("Known@Example.com", "Password1")

	assert.NoError(t, err)
	assert.Equal(t, "Known", user.DisplayName)
}

func TestUserService_UpdateEmptyPatchChangesNothing(t *testing.T) {
	mockRepo := new(MockUserRepository)
	service := NewUserService(mockRepo, new(MockCascadeService))

	user := &models.User{BaseModel: models.BaseModel{ID: 1}, Email: "user@example.com", DisplayName: "Before"}
	mockRepo.On("FindByID", uint(1)).Return(user, nil)

	updated, err := service.Update(1, dto.UserPatch{})

	assert.NoError(t, err)
	assert.Equal(t, "Before", updated.DisplayName)
	mockRepo.AssertNotCalled(t, "Update", mock.Anything)
}

func TestUserService_UpdateDoesNotRehashUnchangedPassword(t *testing.T) {
	mockRepo := new(MockUserRepository)
	service := NewUserService(mockRepo, new(MockCascadeService))

	user := &models.User{BaseModel: models.BaseModel{ID: 1}, Email: "user@example.com", PasswordHash: "original-hash"}
	mockRepo.On("FindByID", uint(1)).Return(user, nil)
	mockRepo.On("Update", mock.AnythingOfType("*models.User")).Return(nil)

	name := "After"
	_, err := service.Update(1, dto.UserPatch{DisplayName: &name})

	assert.NoError(t, err)
	assert.Equal(t, "original-hash", user.PasswordHash)
	mockRepo.AssertExpectations(t)
}

func TestUserService_UpdateRevalidatesChangedPassword(t *testing.T) {
	mockRepo := new(MockUserRepository)
	service := NewUserService(mockRepo, new(MockCascadeService))

	user := &models.User{BaseModel: models.BaseModel{ID: 1}, Email: "user@example.com"}
	mockRepo.On("FindByID", uint(1)).Return(user, nil)

	weak := "short"
	_, err := service.Update(1, dto.UserPatch{Password: &weak})

	assert.Error(t, err)
	assert.Equal(t, apperrors.KindWeakPassword, apperrors.KindOf(err))
	mockRepo.AssertNotCalled(t, "Update", mock.Anything)
}

func TestUserService_DestroyDelegatesToCascade(t *testing.T) {
	mockCascade := new(MockCascadeService)
	service := NewUserService(new(MockUserRepository), mockCascade)

	report := &dto.CascadeReport{}
	mockCascade.On("DestroyUser", uint(7)).Return(report, nil)

	got, err := service.Destroy(7)

	assert.NoError(t, err)
	assert.Same(t, report, got)
	mockCascade.AssertExpectations(t)
}
