package service

import (
	"errors"
	"fmt"
	"log"

	"github.com/google/uuid"
	"github.com/yourusername/opcode-quiz-api/internal/domain/repository"
	apperrors "github.com/yourusername/opcode-quiz-api/internal/pkg/errors"
)

// LeaderboardService строит рейтинг попыток одной викторины
type LeaderboardService struct {
	attemptRepo repository.AttemptRepository
	quizRepo    repository.QuizRepository
}

// NewLeaderboardService создает новый сервис лидерборда
func NewLeaderboardService(attemptRepo repository.AttemptRepository, quizRepo repository.QuizRepository) *LeaderboardService {
	return &LeaderboardService{attemptRepo: attemptRepo, quizRepo: quizRepo}
}

// Rank возвращает попытки викторины по убыванию счёта, затем по возрастанию
// времени прохождения. Ранжируются ВСЕ попытки (append-only журнал);
// дедупликация по пользователю на этом слое не выполняется.
// Пустой allowedFids означает "без ограничения". Несуществующая викторина -
// ошибка not found; существующая без попыток - пустой список.
func (s *LeaderboardService) Rank(quizID uuid.UUID, allowedFids []int64) ([]repository.LeaderboardRow, error) {
	if quizID == uuid.Nil {
		return nil, fmt.Errorf("%w: quiz id is required", apperrors.ErrValidation)
	}

	if _, err := s.quizRepo.GetByID(quizID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: quiz %s", apperrors.ErrNotFound, quizID)
		}
		log.Printf("[LeaderboardService] Ошибка чтения викторины %s: %v", quizID, err)
		return nil, fmt.Errorf("%w: get quiz %s", apperrors.ErrDependency, quizID)
	}

	rows, err := s.attemptRepo.GetLeaderboard(quizID, allowedFids)
	if err != nil {
		log.Printf("[LeaderboardService] Ошибка чтения лидерборда quiz=%s: %v", quizID, err)
		return nil, fmt.Errorf("%w: get leaderboard for quiz %s", apperrors.ErrDependency, quizID)
	}
	return rows, nil
}
