package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Attempt представляет одну попытку пользователя для одной викторины.
// Запись append-only: после создания не изменяется. Score всегда
// пересчитывается на сервере и никогда не берётся от клиента.
// Уникальность "пользователь-викторина" на этом слое не накладывается:
// пользователь может иметь несколько попыток.
type Attempt struct {
	ID                    uuid.UUID   `gorm:"type:uuid;primaryKey" json:"id"`
	UserID                uuid.UUID   `gorm:"type:uuid;not null;index" json:"user_id"`
	QuizID                uuid.UUID   `gorm:"type:uuid;not null;index" json:"quiz_id"`
	Answers               StringArray `gorm:"type:jsonb;not null" json:"answers"`
	Score                 int         `gorm:"not null;default:0" json:"score"`
	CompletionTimeSeconds int         `gorm:"not null" json:"completion_time_seconds"`
	SubmittedAt           time.Time   `gorm:"not null;index" json:"submitted_at"`
}

// TableName определяет имя таблицы для GORM
func (Attempt) TableName() string {
	return "attempts"
}

// BeforeCreate присваивает UUID и время сабмита, если они не были заданы
func (a *Attempt) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	if a.SubmittedAt.IsZero() {
		a.SubmittedAt = time.Now()
	}
	return nil
}
