package repository

import (
	"github.com/yourusername/opcode-quiz-api/internal/domain/entity"
)

// UserRepository определяет методы для работы с пользователями.
// Создание идентичности - ответственность внешнего провайдера; здесь
// хранится только кеш профиля, ключом служит fid.
type UserRepository interface {
	GetByFid(fid int64) (*entity.User, error)
	// Upsert вставляет или обновляет пользователя по fid.
	// Дубликаты пользователей на один fid невозможны.
	Upsert(user *entity.User) error
}
