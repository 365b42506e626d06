package service

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/yourusername/opcode-quiz-api/internal/domain/entity"
	"github.com/yourusername/opcode-quiz-api/internal/domain/repository"
	apperrors "github.com/yourusername/opcode-quiz-api/internal/pkg/errors"
)

// ============================================================================
// Моки для SubmissionService. MockQuizRepository определён в
// quiz_service_test.go.
// ============================================================================

// MockUserRepository реализует repository.UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) GetByFid(fid int64) (*entity.User, error) {
	args := m.Called(fid)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockUserRepository) Upsert(user *entity.User) error {
	args := m.Called(user)
	return args.Error(0)
}

// MockAttemptRepository реализует repository.AttemptRepository
type MockAttemptRepository struct {
	mock.Mock
}

func (m *MockAttemptRepository) Create(attempt *entity.Attempt) error {
	args := m.Called(attempt)
	return args.Error(0)
}

func (m *MockAttemptRepository) GetLeaderboard(quizID uuid.UUID, allowedFids []int64) ([]repository.LeaderboardRow, error) {
	args := m.Called(quizID, allowedFids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]repository.LeaderboardRow), args.Error(1)
}

// ============================================================================
// Вспомогательные конструкторы
// ============================================================================

// testToday - закреплённое "сегодня" для детерминированных тестов
const testToday = "2026-08-31"

func fixedNow() time.Time {
	return time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)
}

func newTestSubmissionService(
	quizRepo repository.QuizRepository,
	userRepo repository.UserRepository,
	attemptRepo repository.AttemptRepository,
) *SubmissionService {
	svc := NewSubmissionService(quizRepo, userRepo, attemptRepo)
	svc.now = fixedNow
	return svc
}

// newScorableQuiz собирает сегодняшнюю викторину с известными ответами
func newScorableQuiz() *entity.DailyQuiz {
	quizID := uuid.New()
	questions := []entity.QuizQuestion{
		{
			ID:            uuid.New(),
			QuizID:        quizID,
			Position:      0,
			Kind:          entity.KindHex,
			Text:          "What is the hexadecimal value of the ADD opcode?",
			Options:       entity.StringArray{"0x01", "0x02", "0x03", "0x04"},
			CorrectAnswer: "0x01",
			Explanation:   "ADD (0x01): Addition operation.",
			OpcodeName:    "ADD",
			Category:      entity.CategoryArithmetic,
			Difficulty:    entity.DifficultyEasy,
		},
		{
			ID:            uuid.New(),
			QuizID:        quizID,
			Position:      1,
			Kind:          entity.KindGas,
			Text:          "How much gas does the MUL opcode consume?",
			Options:       entity.StringArray{"3", "5", "8", "2"},
			CorrectAnswer: "5",
			Explanation:   "MUL (0x02): Multiplication operation.",
			OpcodeName:    "MUL",
			Category:      entity.CategoryArithmetic,
			Difficulty:    entity.DifficultyEasy,
		},
		{
			ID:            uuid.New(),
			QuizID:        quizID,
			Position:      2,
			Kind:          entity.KindValue,
			Text:          "What is the decimal value of the STOP opcode?",
			Options:       entity.StringArray{"0", "1", "2", "3"},
			CorrectAnswer: "0",
			Explanation:   "STOP (0x00): Halts execution.",
			OpcodeName:    "STOP",
			Category:      entity.CategorySystem,
			Difficulty:    entity.DifficultyHard,
		},
	}
	return &entity.DailyQuiz{
		ID:        quizID,
		QuizDate:  testToday,
		Seed:      testToday,
		Questions: questions,
	}
}

// ============================================================================
// Тесты для SubmissionService
// ============================================================================

func TestSubmissionService_ScoreSubmission_AllCorrect(t *testing.T) {
	// Arrange
	mockQuizRepo := new(MockQuizRepository)
	mockUserRepo := new(MockUserRepository)
	mockAttemptRepo := new(MockAttemptRepository)

	quiz := newScorableQuiz()
	user := &entity.User{ID: uuid.New(), Fid: 42}

	mockQuizRepo.On("GetByDate", testToday).Return(quiz, nil)
	mockUserRepo.On("GetByFid", int64(42)).Return(user, nil)
	mockAttemptRepo.On("Create", mock.AnythingOfType("*entity.Attempt")).Return(nil)

	svc := newTestSubmissionService(mockQuizRepo, mockUserRepo, mockAttemptRepo)

	// Act
	result, err := svc.ScoreSubmission(quiz.ID, []string{"0x01", "5", "0"}, 42, 77)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, 3, result.Score, "Все правильные ответы должны давать полный счёт")
	assert.Equal(t, 3, result.TotalQuestions)
	assert.Equal(t, 77, result.CompletionTime)
	require.Len(t, result.Results, 3)
	for i, r := range result.Results {
		assert.True(t, r.IsCorrect, "Ответ %d должен быть засчитан", i)
		assert.NotEmpty(t, r.Explanation, "Разбор должен содержать пояснение")
	}
	mockAttemptRepo.AssertExpectations(t)
}

func TestSubmissionService_ScoreSubmission_AllWrong(t *testing.T) {
	// Arrange
	mockQuizRepo := new(MockQuizRepository)
	mockUserRepo := new(MockUserRepository)
	mockAttemptRepo := new(MockAttemptRepository)

	quiz := newScorableQuiz()
	user := &entity.User{ID: uuid.New(), Fid: 42}

	mockQuizRepo.On("GetByDate", testToday).Return(quiz, nil)
	mockUserRepo.On("GetByFid", int64(42)).Return(user, nil)
	mockAttemptRepo.On("Create", mock.AnythingOfType("*entity.Attempt")).Return(nil)

	svc := newTestSubmissionService(mockQuizRepo, mockUserRepo, mockAttemptRepo)

	// Act
	result, err := svc.ScoreSubmission(quiz.ID, []string{"0x04", "2", "3"}, 42, 50)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, 0, result.Score, "Неправильные ответы не должны давать очков")
	for _, r := range result.Results {
		assert.False(t, r.IsCorrect)
		assert.NotEmpty(t, r.CorrectAnswer, "Разбор должен раскрывать правильный ответ после сабмита")
	}
}

func TestSubmissionService_ScoreSubmission_MissingAnswersCountedWrong(t *testing.T) {
	// Arrange
	mockQuizRepo := new(MockQuizRepository)
	mockUserRepo := new(MockUserRepository)
	mockAttemptRepo := new(MockAttemptRepository)

	quiz := newScorableQuiz()
	user := &entity.User{ID: uuid.New(), Fid: 42}

	mockQuizRepo.On("GetByDate", testToday).Return(quiz, nil)
	mockUserRepo.On("GetByFid", int64(42)).Return(user, nil)
	mockAttemptRepo.On("Create", mock.AnythingOfType("*entity.Attempt")).Return(nil)

	svc := newTestSubmissionService(mockQuizRepo, mockUserRepo, mockAttemptRepo)

	// Act: ответ только на первый вопрос
	result, err := svc.ScoreSubmission(quiz.ID, []string{"0x01"}, 42, 30)

	// Assert: отсутствующие ответы считаются неправильными, разбор полный
	require.NoError(t, err)
	assert.Equal(t, 1, result.Score)
	require.Len(t, result.Results, 3, "Разбор должен покрывать все вопросы викторины")
	assert.True(t, result.Results[0].IsCorrect)
	assert.False(t, result.Results[1].IsCorrect)
	assert.False(t, result.Results[2].IsCorrect)
	assert.Equal(t, "", result.Results[1].UserAnswer)
}

func TestSubmissionService_ScoreSubmission_EmptyAnswersScoredZero(t *testing.T) {
	// Arrange: присланный пустой список ответов, в отличие от отсутствующего
	// поля, валиден
	mockQuizRepo := new(MockQuizRepository)
	mockUserRepo := new(MockUserRepository)
	mockAttemptRepo := new(MockAttemptRepository)

	quiz := newScorableQuiz()
	user := &entity.User{ID: uuid.New(), Fid: 42}

	var saved *entity.Attempt
	mockQuizRepo.On("GetByDate", testToday).Return(quiz, nil)
	mockUserRepo.On("GetByFid", int64(42)).Return(user, nil)
	mockAttemptRepo.On("Create", mock.AnythingOfType("*entity.Attempt")).
		Run(func(args mock.Arguments) {
			saved = args.Get(0).(*entity.Attempt)
		}).
		Return(nil)

	svc := newTestSubmissionService(mockQuizRepo, mockUserRepo, mockAttemptRepo)

	// Act
	result, err := svc.ScoreSubmission(quiz.ID, []string{}, 42, 30)

	// Assert: нулевой счёт, полный разбор и зафиксированная попытка
	require.NoError(t, err, "Пустой список ответов должен оцениваться, а не отклоняться")
	assert.Equal(t, 0, result.Score)
	assert.Equal(t, 3, result.TotalQuestions)
	require.Len(t, result.Results, 3)
	for _, r := range result.Results {
		assert.False(t, r.IsCorrect)
		assert.Equal(t, "", r.UserAnswer)
	}
	require.NotNil(t, saved, "Попытка с нулевым счётом должна быть сохранена")
	assert.Equal(t, 0, saved.Score)
	assert.Equal(t, entity.StringArray{}, saved.Answers)
}

func TestSubmissionService_ScoreSubmission_ExtraAnswersIgnored(t *testing.T) {
	// Arrange
	mockQuizRepo := new(MockQuizRepository)
	mockUserRepo := new(MockUserRepository)
	mockAttemptRepo := new(MockAttemptRepository)

	quiz := newScorableQuiz()
	user := &entity.User{ID: uuid.New(), Fid: 42}

	mockQuizRepo.On("GetByDate", testToday).Return(quiz, nil)
	mockUserRepo.On("GetByFid", int64(42)).Return(user, nil)
	mockAttemptRepo.On("Create", mock.AnythingOfType("*entity.Attempt")).Return(nil)

	svc := newTestSubmissionService(mockQuizRepo, mockUserRepo, mockAttemptRepo)

	// Act: ответов больше, чем вопросов
	result, err := svc.ScoreSubmission(quiz.ID, []string{"0x01", "5", "0", "лишний", "ещё"}, 42, 30)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, 3, result.Score, "Лишние ответы не должны влиять на счёт")
	assert.Len(t, result.Results, 3)
}

func TestSubmissionService_ScoreSubmission_StaleQuizRejected(t *testing.T) {
	// Arrange: присланный id не совпадает с сегодняшней викториной
	mockQuizRepo := new(MockQuizRepository)
	mockUserRepo := new(MockUserRepository)
	mockAttemptRepo := new(MockAttemptRepository)

	quiz := newScorableQuiz()
	mockQuizRepo.On("GetByDate", testToday).Return(quiz, nil)

	svc := newTestSubmissionService(mockQuizRepo, mockUserRepo, mockAttemptRepo)

	// Act: сабмит против вчерашнего id
	result, err := svc.ScoreSubmission(uuid.New(), []string{"0x01"}, 42, 30)

	// Assert
	assert.Nil(t, result)
	assert.ErrorIs(t, err, apperrors.ErrConflict, "Сабмит против неактивной викторины должен отклоняться")
	mockAttemptRepo.AssertNotCalled(t, "Create")
}

func TestSubmissionService_ScoreSubmission_NoQuizToday(t *testing.T) {
	// Arrange
	mockQuizRepo := new(MockQuizRepository)
	mockUserRepo := new(MockUserRepository)
	mockAttemptRepo := new(MockAttemptRepository)

	mockQuizRepo.On("GetByDate", testToday).Return(nil, apperrors.ErrNotFound)

	svc := newTestSubmissionService(mockQuizRepo, mockUserRepo, mockAttemptRepo)

	// Act
	result, err := svc.ScoreSubmission(uuid.New(), []string{"0x01"}, 42, 30)

	// Assert: без сегодняшней викторины любой id не является активным
	assert.Nil(t, result)
	assert.ErrorIs(t, err, apperrors.ErrConflict)
	mockAttemptRepo.AssertNotCalled(t, "Create")
}

func TestSubmissionService_ScoreSubmission_UnknownUser(t *testing.T) {
	// Arrange
	mockQuizRepo := new(MockQuizRepository)
	mockUserRepo := new(MockUserRepository)
	mockAttemptRepo := new(MockAttemptRepository)

	quiz := newScorableQuiz()
	mockQuizRepo.On("GetByDate", testToday).Return(quiz, nil)
	mockUserRepo.On("GetByFid", int64(42)).Return(nil, apperrors.ErrNotFound)

	svc := newTestSubmissionService(mockQuizRepo, mockUserRepo, mockAttemptRepo)

	// Act
	result, err := svc.ScoreSubmission(quiz.ID, []string{"0x01"}, 42, 30)

	// Assert
	assert.Nil(t, result)
	assert.ErrorIs(t, err, apperrors.ErrNotFound, "Незарегистрированный fid должен давать not found")
	mockAttemptRepo.AssertNotCalled(t, "Create")
}

func TestSubmissionService_ScoreSubmission_PersistFailureHidesScore(t *testing.T) {
	// Arrange: запись попытки падает
	mockQuizRepo := new(MockQuizRepository)
	mockUserRepo := new(MockUserRepository)
	mockAttemptRepo := new(MockAttemptRepository)

	quiz := newScorableQuiz()
	user := &entity.User{ID: uuid.New(), Fid: 42}

	mockQuizRepo.On("GetByDate", testToday).Return(quiz, nil)
	mockUserRepo.On("GetByFid", int64(42)).Return(user, nil)
	mockAttemptRepo.On("Create", mock.AnythingOfType("*entity.Attempt")).Return(errors.New("disk full"))

	svc := newTestSubmissionService(mockQuizRepo, mockUserRepo, mockAttemptRepo)

	// Act
	result, err := svc.ScoreSubmission(quiz.ID, []string{"0x01", "5", "0"}, 42, 30)

	// Assert: счёт не возвращается, если попытка не зафиксирована
	assert.Nil(t, result, "Незафиксированный счёт не должен отдаваться клиенту")
	assert.ErrorIs(t, err, apperrors.ErrDependency)
}

func TestSubmissionService_ScoreSubmission_PersistedAttemptFields(t *testing.T) {
	// Arrange
	mockQuizRepo := new(MockQuizRepository)
	mockUserRepo := new(MockUserRepository)
	mockAttemptRepo := new(MockAttemptRepository)

	quiz := newScorableQuiz()
	user := &entity.User{ID: uuid.New(), Fid: 42}

	var saved *entity.Attempt
	mockQuizRepo.On("GetByDate", testToday).Return(quiz, nil)
	mockUserRepo.On("GetByFid", int64(42)).Return(user, nil)
	mockAttemptRepo.On("Create", mock.AnythingOfType("*entity.Attempt")).
		Run(func(args mock.Arguments) {
			saved = args.Get(0).(*entity.Attempt)
		}).
		Return(nil)

	svc := newTestSubmissionService(mockQuizRepo, mockUserRepo, mockAttemptRepo)

	// Act
	_, err := svc.ScoreSubmission(quiz.ID, []string{"0x01", "2", "0"}, 42, 88)

	// Assert: попытка хранит серверный счёт и исходные ответы
	require.NoError(t, err)
	require.NotNil(t, saved)
	assert.Equal(t, user.ID, saved.UserID)
	assert.Equal(t, quiz.ID, saved.QuizID)
	assert.Equal(t, 2, saved.Score, "Счёт попытки должен быть пересчитан сервером")
	assert.Equal(t, entity.StringArray{"0x01", "2", "0"}, saved.Answers)
	assert.Equal(t, 88, saved.CompletionTimeSeconds)
	assert.Equal(t, fixedNow(), saved.SubmittedAt)
}

func TestSubmissionService_ScoreSubmission_Validation(t *testing.T) {
	// Arrange
	svc := newTestSubmissionService(new(MockQuizRepository), new(MockUserRepository), new(MockAttemptRepository))
	validID := uuid.New()

	testCases := []struct {
		name           string
		quizID         uuid.UUID
		answers        []string
		fid            int64
		completionTime int
	}{
		{"нулевой quizID", uuid.Nil, []string{"a"}, 42, 30},
		{"отсутствующие ответы", validID, nil, 42, 30},
		{"нулевой fid", validID, []string{"a"}, 0, 30},
		{"отрицательный fid", validID, []string{"a"}, -5, 30},
		{"нулевое время", validID, []string{"a"}, 42, 0},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// Act
			result, err := svc.ScoreSubmission(tc.quizID, tc.answers, tc.fid, tc.completionTime)

			// Assert
			assert.Nil(t, result)
			assert.ErrorIs(t, err, apperrors.ErrValidation)
		})
	}
}
