package entity

import "fmt"

// Category представляет категорию EVM-инструкции. Закрытое перечисление:
// произвольные строки отклоняются на этапе разбора, а не при рендеринге.
type Category string

const (
	CategoryArithmetic  Category = "arithmetic"
	CategoryBitwise     Category = "bitwise"
	CategoryComparison  Category = "comparison"
	CategorySha3        Category = "sha3"
	CategoryEnvironment Category = "environment"
	CategoryBlockInfo   Category = "blockinfo"
	CategoryStack       Category = "stack"
	CategoryMemory      Category = "memory"
	CategoryStorage     Category = "storage"
	CategoryFlow        Category = "flow"
	CategorySystem      Category = "system"
	CategoryLogging     Category = "logging"
	CategoryCreate      Category = "create"
)

// Categories перечисляет все допустимые категории.
var Categories = []Category{
	CategoryArithmetic, CategoryBitwise, CategoryComparison, CategorySha3,
	CategoryEnvironment, CategoryBlockInfo, CategoryStack, CategoryMemory,
	CategoryStorage, CategoryFlow, CategorySystem, CategoryLogging, CategoryCreate,
}

// ParseCategory валидирует строковое представление категории.
func ParseCategory(s string) (Category, error) {
	for _, c := range Categories {
		if string(c) == s {
			return c, nil
		}
	}
	return "", fmt.Errorf("unknown opcode category: %q", s)
}

// Difficulty представляет уровень сложности вопроса.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// ParseDifficulty валидирует строковое представление сложности.
func ParseDifficulty(s string) (Difficulty, error) {
	switch Difficulty(s) {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return Difficulty(s), nil
	}
	return "", fmt.Errorf("unknown difficulty: %q", s)
}

// Opcode представляет одну EVM-инструкцию из статического каталога.
// Никогда не мутируется в рантайме.
type Opcode struct {
	Name        string   `json:"name"`
	Value       string   `json:"value"` // десятичное значение, как строка
	Hex         string   `json:"hex"`
	Gas         int      `json:"gas"`
	Description string   `json:"description"`
	Category    Category `json:"category"`
	Inputs      int      `json:"inputs"`
	Outputs     int      `json:"outputs"`
}

// Answer возвращает поле инструкции, являющееся правильным ответом
// для заданного типа вопроса.
func (o *Opcode) Answer(kind QuestionKind) string {
	switch kind {
	case KindValue:
		return o.Value
	case KindHex:
		return o.Hex
	case KindDescription:
		return o.Description
	case KindGas:
		return fmt.Sprintf("%d", o.Gas)
	}
	return ""
}
