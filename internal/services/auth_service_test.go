package services_test

import (
	"fmt"
	"testing"

	"gudang/internal/models"
	"gudang/internal/repositories"
	"gudang/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
)

// MockUserRepository is a mock implementation of repositories.UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(user *models.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUserRepository) GetByUsername(username string) (*models.User, error) {
	args := m.Called(username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetByEmail(email string) (*models.User, error) {
	args := m.Called(email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetByID(id string) (*models.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func notFoundErr(what string) error {
	return fmt.Errorf("%s: %w", what, repositories.ErrNotFound)
}

func TestAuthService_RegisterUser(t *testing.T) {
	mockRepo := new(MockUserRepository)
	service := services.NewAuthService(mockRepo, "test_secret")

	user := &models.User{Username: "testuser", Email: "test@example.com", Password: "password123"}

	mockRepo.On("GetByUsername", "testuser").Return(nil, notFoundErr("user")).Once()
	mockRepo.On("GetByEmail", "test@example.com").Return(nil, notFoundErr("user")).Once()
	mockRepo.On("Create", mock.AnythingOfType("*models.User")).Return(nil).Once()

	err := service.RegisterUser(user)
	assert.NoError(t, err)
	// Password must be stored as a bcrypt hash, never in plain text
	assert.NotEqual(t, "password123", user.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("password123")))
	mockRepo.AssertExpectations(t)
}

func TestAuthService_RegisterUser_DuplicateUsername(t *testing.T) {
	mockRepo := new(MockUserRepository)
	service := services.NewAuthService(mockRepo, "test_secret")

	existing := &models.User{Username: "testuser"}
	mockRepo.On("GetByUsername", "testuser").Return(existing, nil).Once()

	err := service.RegisterUser(&models.User{Username: "testuser", Email: "new@example.com", Password: "password123"})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "already taken")
	mockRepo.AssertNotCalled(t, "Create", mock.Anything)
}

func TestAuthService_LoginAndValidateToken(t *testing.T) {
	mockRepo := new(MockUserRepository)
	service := services.NewAuthService(mockRepo, "test_secret")

	hashed, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	assert.NoError(t, err)
	user := &models.User{ID: "user-1", Username: "testuser", Password: string(hashed)}

	mockRepo.On("GetByUsername", "testuser").Return(user, nil).Twice()

	token, err := service.LoginUser("testuser", "password123")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := service.ValidateToken(token)
	assert.NoError(t, err)
	assert.Equal(t, "user-1", claims["user_id"])
	assert.Equal(t, "testuser", claims["username"])

	// Wrong password is rejected
	_, err = service.LoginUser("testuser", "wrong_password")
	assert.Error(t, err)
	mockRepo.AssertExpectations(t)
}

func TestAuthService_ValidateToken_Invalid(t *testing.T) {
	mockRepo := new(MockUserRepository)
	service := services.NewAuthService(mockRepo, "test_secret")

	_, err := service.ValidateToken("not.a.token")
	assert.Error(t, err)

	// A token signed with a different secret must not validate
	other := services.NewAuthService(mockRepo, "other_secret")
	hashed, _ := bcrypt.GenerateFromPassword([]byte("pass123"), bcrypt.DefaultCost)
	mockRepo.On("GetByUsername", "testuser").Return(
		&models.User{ID: "user-1", Username: "testuser", Password: string(hashed)}, nil).Once()
	foreignToken, err := other.LoginUser("testuser", "pass123")
	assert.NoError(t, err)

	_, err = service.ValidateToken(foreignToken)
	assert.Error(t, err)
}
