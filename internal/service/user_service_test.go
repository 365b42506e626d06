package service

import (
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/yourusername/opcode-quiz-api/internal/domain/entity"
	apperrors "github.com/yourusername/opcode-quiz-api/internal/pkg/errors"
)

// Моки MockUserRepository определены в submission_service_test.go.

func TestUserService_UpsertUser_ReturnsFreshRow(t *testing.T) {
	// Arrange
	mockUserRepo := new(MockUserRepository)
	stored := &entity.User{ID: uuid.New(), Fid: 42, Username: "alice"}

	mockUserRepo.On("Upsert", mock.AnythingOfType("*entity.User")).Return(nil)
	mockUserRepo.On("GetByFid", int64(42)).Return(stored, nil)

	svc := NewUserService(mockUserRepo)

	// Act
	user, err := svc.UpsertUser(42, "alice", "Alice", "https://example.com/pfp.png")

	// Assert: возвращается актуальная строка с настоящим ID
	require.NoError(t, err)
	assert.Equal(t, stored.ID, user.ID)
	mockUserRepo.AssertExpectations(t)
}

func TestUserService_UpsertUser_InvalidFid(t *testing.T) {
	// Arrange
	mockUserRepo := new(MockUserRepository)
	svc := NewUserService(mockUserRepo)

	// Act
	user, err := svc.UpsertUser(0, "alice", "", "")

	// Assert
	assert.Nil(t, user)
	assert.ErrorIs(t, err, apperrors.ErrValidation)
	mockUserRepo.AssertNotCalled(t, "Upsert")
}

func TestUserService_UpsertUser_RepositoryFailure(t *testing.T) {
	// Arrange
	mockUserRepo := new(MockUserRepository)
	mockUserRepo.On("Upsert", mock.AnythingOfType("*entity.User")).Return(errors.New("connection refused"))

	svc := NewUserService(mockUserRepo)

	// Act
	user, err := svc.UpsertUser(42, "alice", "", "")

	// Assert
	assert.Nil(t, user)
	assert.ErrorIs(t, err, apperrors.ErrDependency)
}
