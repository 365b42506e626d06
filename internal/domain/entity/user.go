package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User представляет пользователя в системе. Идентичность задаётся внешним
// числовым хендлом (fid) провайдера идентичности; профильные поля -
// кешированные копии, обновляемые при upsert.
type User struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Fid         int64     `gorm:"not null;uniqueIndex" json:"fid"`
	Username    string    `gorm:"size:50;not null;default:''" json:"username"`
	DisplayName string    `gorm:"size:100;not null;default:''" json:"display_name"`
	PfpURL      string    `gorm:"size:255;not null;default:''" json:"pfp_url"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// TableName определяет имя таблицы для GORM
func (User) TableName() string {
	return "users"
}

// BeforeCreate присваивает UUID, если он не был задан
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}
