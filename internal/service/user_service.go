package service

import (
	"fmt"
	"log"

	"github.com/yourusername/opcode-quiz-api/internal/domain/entity"
	"github.com/yourusername/opcode-quiz-api/internal/domain/repository"
	apperrors "github.com/yourusername/opcode-quiz-api/internal/pkg/errors"
)

// UserService предоставляет методы для работы с кешем профилей.
// Выпуск идентичности - ответственность внешнего провайдера: здесь только
// insert-or-update копий профильных полей по fid.
type UserService struct {
	userRepo repository.UserRepository
}

// NewUserService создает новый сервис пользователей
func NewUserService(userRepo repository.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

// UpsertUser вставляет или обновляет пользователя по fid и возвращает
// актуальную строку
func (s *UserService) UpsertUser(fid int64, username, displayName, pfpURL string) (*entity.User, error) {
	if fid <= 0 {
		return nil, fmt.Errorf("%w: fid is required", apperrors.ErrValidation)
	}

	user := &entity.User{
		Fid:         fid,
		Username:    username,
		DisplayName: displayName,
		PfpURL:      pfpURL,
	}
	if err := s.userRepo.Upsert(user); err != nil {
		log.Printf("[UserService] Ошибка upsert пользователя fid=%d: %v", fid, err)
		return nil, fmt.Errorf("%w: upsert user fid %d", apperrors.ErrDependency, fid)
	}

	// Перечитываем по fid: при конфликте insert не возвращает существующий ID
	return s.userRepo.GetByFid(fid)
}

// GetByFid возвращает пользователя по внешнему числовому хендлу
func (s *UserService) GetByFid(fid int64) (*entity.User, error) {
	return s.userRepo.GetByFid(fid)
}
