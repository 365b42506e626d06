package service

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/yourusername/opcode-quiz-api/internal/domain/entity"
	"github.com/yourusername/opcode-quiz-api/internal/domain/repository"
	"github.com/yourusername/opcode-quiz-api/internal/handler/dto"
	apperrors "github.com/yourusername/opcode-quiz-api/internal/pkg/errors"
)

// SubmissionService валидирует и оценивает сабмиты дневной викторины.
// Счёт всегда пересчитывается на сервере по сохранённым правильным ответам
// и никогда не принимается от клиента.
type SubmissionService struct {
	quizRepo    repository.QuizRepository
	userRepo    repository.UserRepository
	attemptRepo repository.AttemptRepository
	// now переопределяется в тестах для детерминированного "сегодня"
	now func() time.Time
}

// NewSubmissionService создает новый сервис сабмитов
func NewSubmissionService(
	quizRepo repository.QuizRepository,
	userRepo repository.UserRepository,
	attemptRepo repository.AttemptRepository,
) *SubmissionService {
	return &SubmissionService{
		quizRepo:    quizRepo,
		userRepo:    userRepo,
		attemptRepo: attemptRepo,
		now:         time.Now,
	}
}

// ScoreSubmission оценивает сабмит и сохраняет неизменяемую попытку.
// Счёт возвращается клиенту только после успешной записи: клиент должен
// иметь возможность доверять тому, что возвращённый счёт зафиксирован.
func (s *SubmissionService) ScoreSubmission(quizID uuid.UUID, answers []string, fid int64, completionTimeSeconds int) (*dto.SubmitQuizResponse, error) {
	if quizID == uuid.Nil {
		return nil, fmt.Errorf("%w: quizId is required", apperrors.ErrValidation)
	}
	// Отсутствующее поле answers - ошибка валидации, но присланный пустой
	// список валиден: он оценивается в 0 и фиксируется как попытка
	if answers == nil {
		return nil, fmt.Errorf("%w: answers are required", apperrors.ErrValidation)
	}
	if fid <= 0 {
		return nil, fmt.Errorf("%w: userFid is required", apperrors.ErrValidation)
	}
	if completionTimeSeconds <= 0 {
		return nil, fmt.Errorf("%w: completionTimeSeconds is required", apperrors.ErrValidation)
	}

	// Закрепляем "сегодня" один раз на запрос, чтобы исключить расхождение
	// часов между двумя чтениями в течение жизни запроса
	today := s.now().UTC().Format(entity.QuizDateLayout)

	quiz, err := s.quizRepo.GetByDate(today)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			// Сегодняшней викторины нет, значит присланный id заведомо не её
			return nil, fmt.Errorf("%w: quiz %s is not the active daily quiz", apperrors.ErrConflict, quizID)
		}
		log.Printf("[SubmissionService] Ошибка чтения викторины за %s: %v", today, err)
		return nil, fmt.Errorf("%w: get quiz for %s", apperrors.ErrDependency, today)
	}

	// Сабмиты против устаревших или будущих викторин отклоняются
	if quiz.ID != quizID {
		return nil, fmt.Errorf("%w: quiz %s is not the active daily quiz", apperrors.ErrConflict, quizID)
	}

	user, err := s.userRepo.GetByFid(fid)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: user with fid %d", apperrors.ErrNotFound, fid)
		}
		log.Printf("[SubmissionService] Ошибка чтения пользователя fid=%d: %v", fid, err)
		return nil, fmt.Errorf("%w: get user by fid %d", apperrors.ErrDependency, fid)
	}

	// Позиционное сопоставление ответов с вопросами: отсутствующие
	// индексы считаются неправильными, лишние игнорируются
	score := 0
	results := make([]dto.AnswerResult, len(quiz.Questions))
	for i, question := range quiz.Questions {
		answer := ""
		if i < len(answers) {
			answer = answers[i]
		}

		isCorrect := question.IsCorrect(answer)
		if isCorrect {
			score++
		}

		results[i] = dto.AnswerResult{
			QuestionID:    question.ID,
			UserAnswer:    answer,
			CorrectAnswer: question.CorrectAnswer,
			IsCorrect:     isCorrect,
			Explanation:   question.Explanation,
			OpcodeInfo: dto.OpcodeInfo{
				Name:     question.OpcodeName,
				Category: string(question.Category),
			},
		}
	}

	attempt := &entity.Attempt{
		UserID:                user.ID,
		QuizID:                quiz.ID,
		Answers:               entity.StringArray(answers),
		Score:                 score,
		CompletionTimeSeconds: completionTimeSeconds,
		SubmittedAt:           s.now(),
	}

	if err := s.attemptRepo.Create(attempt); err != nil {
		log.Printf("[SubmissionService] Ошибка сохранения попытки: fid=%d quiz=%s: %v", fid, quiz.ID, err)
		return nil, fmt.Errorf("%w: save attempt for fid %d, quiz %s", apperrors.ErrDependency, fid, quiz.ID)
	}

	return &dto.SubmitQuizResponse{
		Score:          score,
		TotalQuestions: len(quiz.Questions),
		CompletionTime: completionTimeSeconds,
		Results:        results,
	}, nil
}
