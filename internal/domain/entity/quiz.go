package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// QuizDateLayout - формат календарной даты викторины (ключ уникальности)
const QuizDateLayout = "2006-01-02"

// DailyQuiz представляет дневную викторину: неизменяемый, привязанный к дате
// упорядоченный набор вопросов. На одну дату существует ровно одна викторина;
// повторная генерация для той же даты не происходит (идемпотентность по дате).
type DailyQuiz struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	QuizDate string    `gorm:"size:10;not null;uniqueIndex" json:"quiz_date"`
	// Seed - зерно генерации, хранится как атрибут первого класса:
	// по нему оператор может проверить, что "что было бы сгенерировано"
	// совпадает с тем, что было отдано клиентам.
	Seed                  string         `gorm:"size:64;not null" json:"seed"`
	DifficultyProgression StringArray    `gorm:"type:jsonb;not null" json:"difficulty_progression"`
	Questions             []QuizQuestion `gorm:"foreignKey:QuizID" json:"questions,omitempty"`
	CreatedAt             time.Time      `json:"created_at"`
}

// TableName определяет имя таблицы для GORM
func (DailyQuiz) TableName() string {
	return "daily_quizzes"
}

// BeforeCreate присваивает UUID, если он не был задан
func (q *DailyQuiz) BeforeCreate(tx *gorm.DB) error {
	if q.ID == uuid.Nil {
		q.ID = uuid.New()
	}
	return nil
}

// QuestionCount возвращает количество вопросов викторины
func (q *DailyQuiz) QuestionCount() int {
	return len(q.Questions)
}
