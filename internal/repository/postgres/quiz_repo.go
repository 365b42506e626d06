package postgres

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
	"github.com/yourusername/opcode-quiz-api/internal/domain/entity"
	"github.com/yourusername/opcode-quiz-api/internal/domain/repository"
	apperrors "github.com/yourusername/opcode-quiz-api/internal/pkg/errors"
)

// QuizRepo реализует repository.QuizRepository
type QuizRepo struct {
	db *gorm.DB
}

// NewQuizRepo создает новый репозиторий викторин
func NewQuizRepo(db *gorm.DB) *QuizRepo {
	return &QuizRepo{db: db}
}

// Create сохраняет викторину и её вопросы в одной транзакции.
// Уникальный индекс по quiz_date сериализует конкурентные первые запросы:
// - 23505 (unique violation) → repository.ErrQuizDateTaken
// - Другая DB ошибка → возвращается как есть
func (r *QuizRepo) Create(quiz *entity.DailyQuiz) error {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		return tx.Create(quiz).Error
	})
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: %s", repository.ErrQuizDateTaken, quiz.QuizDate)
		}
		return err
	}
	return nil
}

// GetByID возвращает викторину по ID вместе с вопросами
func (r *QuizRepo) GetByID(id uuid.UUID) (*entity.DailyQuiz, error) {
	var quiz entity.DailyQuiz
	err := r.db.Preload("Questions", func(db *gorm.DB) *gorm.DB {
		return db.Order("quiz_questions.position ASC")
	}).First(&quiz, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &quiz, nil
}

// GetByDate возвращает викторину календарной даты вместе с вопросами
func (r *QuizRepo) GetByDate(date string) (*entity.DailyQuiz, error) {
	var quiz entity.DailyQuiz
	err := r.db.Preload("Questions", func(db *gorm.DB) *gorm.DB {
		return db.Order("quiz_questions.position ASC")
	}).Where("quiz_date = ?", date).First(&quiz).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &quiz, nil
}

// isUniqueViolation проверяет Postgres unique violation (23505) для pgconn и lib/pq драйверов
func isUniqueViolation(err error) bool {
	// pgx/v5 driver (pgconn.PgError)
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return true
	}
	// lib/pq driver
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == "23505" {
		return true
	}
	return false
}
