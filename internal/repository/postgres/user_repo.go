package postgres

import (
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/yourusername/opcode-quiz-api/internal/domain/entity"
	apperrors "github.com/yourusername/opcode-quiz-api/internal/pkg/errors"
)

// UserRepo реализует repository.UserRepository
type UserRepo struct {
	db *gorm.DB
}

// NewUserRepo создает новый репозиторий пользователей
func NewUserRepo(db *gorm.DB) *UserRepo {
	return &UserRepo{db: db}
}

// GetByFid возвращает пользователя по внешнему числовому хендлу
func (r *UserRepo) GetByFid(fid int64) (*entity.User, error) {
	var user entity.User
	err := r.db.Where("fid = ?", fid).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

// Upsert вставляет пользователя или обновляет профильные поля по конфликту
// на fid. Атомарный INSERT ... ON CONFLICT гарантирует отсутствие
// дубликатов на один хендл.
func (r *UserRepo) Upsert(user *entity.User) error {
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "fid"}},
		DoUpdates: clause.AssignmentColumns([]string{"username", "display_name", "pfp_url", "updated_at"}),
	}).Create(user).Error
}
