package postgres

import (
	"gorm.io/gorm"

	"github.com/google/uuid"
	"github.com/yourusername/opcode-quiz-api/internal/domain/entity"
	"github.com/yourusername/opcode-quiz-api/internal/domain/repository"
)

// AttemptRepo реализует repository.AttemptRepository
type AttemptRepo struct {
	db *gorm.DB
}

// NewAttemptRepo создает новый репозиторий попыток
func NewAttemptRepo(db *gorm.DB) *AttemptRepo {
	return &AttemptRepo{db: db}
}

// Create сохраняет попытку. Попытки append-only и независимы:
// координация между вставками не нужна сверх атомарности INSERT.
func (r *AttemptRepo) Create(attempt *entity.Attempt) error {
	return r.db.Create(attempt).Error
}

// GetLeaderboard возвращает попытки викторины, соединённые с профилями.
// Сортировка выполняется на сервере БД; submitted_at и id - стабильные
// tie-break ключи, чтобы равные пары (score, time) сохраняли порядок
// между повторными вызовами. Пустой слайс - валидный результат.
func (r *AttemptRepo) GetLeaderboard(quizID uuid.UUID, allowedFids []int64) ([]repository.LeaderboardRow, error) {
	var rows []repository.LeaderboardRow

	query := r.db.Table("attempts").
		Select("users.fid, users.username, users.display_name, users.pfp_url, attempts.score, attempts.completion_time_seconds, attempts.submitted_at").
		Joins("JOIN users ON users.id = attempts.user_id").
		Where("attempts.quiz_id = ?", quizID)

	if len(allowedFids) > 0 {
		query = query.Where("users.fid IN ?", allowedFids)
	}

	err := query.
		Order("attempts.score DESC, attempts.completion_time_seconds ASC, attempts.submitted_at ASC, attempts.id ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
