package entity

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Константы типов вопросов. Закрытое множество: произвольные строки
// отклоняются на этапе разбора.
type QuestionKind string

const (
	KindValue       QuestionKind = "value"
	KindHex         QuestionKind = "hex"
	KindDescription QuestionKind = "description"
	KindGas         QuestionKind = "gas"
)

// QuestionKinds перечисляет все допустимые типы вопросов.
var QuestionKinds = []QuestionKind{KindValue, KindHex, KindDescription, KindGas}

// ParseQuestionKind валидирует строковое представление типа вопроса.
func ParseQuestionKind(s string) (QuestionKind, error) {
	for _, k := range QuestionKinds {
		if string(k) == s {
			return k, nil
		}
	}
	return "", fmt.Errorf("unknown question kind: %q", s)
}

// StringArray - пользовательский тип для работы с JSONB
type StringArray []string

// Scan реализует интерфейс sql.Scanner для StringArray
// Используется GORM для чтения JSONB данных из базы
func (o *StringArray) Scan(value interface{}) error {
	// Обработка NULL значений из базы данных
	if value == nil {
		*o = StringArray{}
		return nil
	}

	bytes, ok := value.([]byte)
	if !ok {
		return errors.New("failed to unmarshal JSONB value: expected []byte")
	}

	// Обработка пустого массива байтов
	if len(bytes) == 0 {
		*o = StringArray{}
		return nil
	}

	return json.Unmarshal(bytes, o)
}

// Value реализует интерфейс driver.Valuer для StringArray
// Используется GORM для записи StringArray в JSONB в базе
func (o StringArray) Value() (driver.Value, error) {
	if len(o) == 0 {
		return []byte("[]"), nil // Возвращаем пустой JSON массив вместо null
	}
	return json.Marshal(o)
}

// QuizQuestion представляет один вопрос дневной викторины.
// Выводится из одной инструкции каталога и одного типа вопроса.
// После сохранения викторины вопрос неизменяем: порядок вариантов
// фиксирован и стабилен между повторными чтениями.
type QuizQuestion struct {
	ID            uuid.UUID    `gorm:"type:uuid;primaryKey" json:"id"`
	QuizID        uuid.UUID    `gorm:"type:uuid;not null;index" json:"quiz_id"`
	Position      int          `gorm:"not null" json:"position"`
	Kind          QuestionKind `gorm:"size:20;not null" json:"kind"`
	Text          string       `gorm:"size:500;not null" json:"text"`
	Options       StringArray  `gorm:"type:jsonb;not null" json:"options"`
	CorrectAnswer string       `gorm:"size:500;not null" json:"-"` // Скрыто от клиента
	Explanation   string       `gorm:"size:500;not null" json:"-"` // Скрыто от клиента
	OpcodeName    string       `gorm:"size:20;not null" json:"opcode_name"`
	Category      Category     `gorm:"size:20;not null" json:"category"`
	Difficulty    Difficulty   `gorm:"size:10;not null" json:"difficulty"`
	CreatedAt     time.Time    `json:"created_at"`
}

// TableName определяет имя таблицы для GORM
func (QuizQuestion) TableName() string {
	return "quiz_questions"
}

// BeforeCreate присваивает UUID, если он не был задан
func (q *QuizQuestion) BeforeCreate(tx *gorm.DB) error {
	if q.ID == uuid.Nil {
		q.ID = uuid.New()
	}
	return nil
}

// IsCorrect проверяет ответ строгим строковым сравнением.
// Регистр и пробелы значимы: нормализация изменила бы результаты скоринга.
func (q *QuizQuestion) IsCorrect(answer string) bool {
	return answer == q.CorrectAnswer
}

// HasOption проверяет, присутствует ли вариант среди опций вопроса
func (q *QuizQuestion) HasOption(option string) bool {
	for _, o := range q.Options {
		if o == option {
			return true
		}
	}
	return false
}
