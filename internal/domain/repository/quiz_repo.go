package repository

import (
	"github.com/google/uuid"
	"github.com/yourusername/opcode-quiz-api/internal/domain/entity"
)

// QuizRepository определяет методы для работы с дневными викторинами
type QuizRepository interface {
	// Create сохраняет викторину вместе с вопросами в одной транзакции.
	// Уникальный индекс по quiz_date - единственная точка сериализации:
	// при конкурентной вставке на ту же дату возвращается ErrQuizDateTaken,
	// и вызывающий обязан перечитать уже существующую строку.
	Create(quiz *entity.DailyQuiz) error
	// GetByID возвращает викторину с вопросами, упорядоченными по position.
	GetByID(id uuid.UUID) (*entity.DailyQuiz, error)
	// GetByDate возвращает викторину даты с вопросами, упорядоченными по position.
	GetByDate(date string) (*entity.DailyQuiz, error)
}
