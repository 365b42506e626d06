package repository

import (
	"time"

	"github.com/google/uuid"
	"github.com/yourusername/opcode-quiz-api/internal/domain/entity"
)

// LeaderboardRow - проекция попытки с профильными полями пользователя.
// Не хранится в БД, строится join-ом при чтении.
type LeaderboardRow struct {
	Fid                   int64     `json:"fid"`
	Username              string    `json:"username"`
	DisplayName           string    `json:"display_name"`
	PfpURL                string    `json:"pfp_url"`
	Score                 int       `json:"score"`
	CompletionTimeSeconds int       `json:"completion_time"`
	SubmittedAt           time.Time `json:"submitted_at"`
}

// AttemptRepository определяет методы для работы с попытками
type AttemptRepository interface {
	// Create сохраняет неизменяемую попытку (append-only).
	Create(attempt *entity.Attempt) error
	// GetLeaderboard возвращает попытки викторины, соединённые с профилями,
	// упорядоченные сервером: score DESC, completion_time ASC, затем
	// submitted_at ASC и id ASC как стабильные tie-break ключи.
	// Пустой allowedFids означает "без ограничения".
	GetLeaderboard(quizID uuid.UUID, allowedFids []int64) ([]LeaderboardRow, error)
}
