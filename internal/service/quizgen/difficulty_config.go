package quizgen

import "github.com/yourusername/opcode-quiz-api/internal/domain/entity"

// Config содержит настройки генерации дневной викторины
type Config struct {
	// QuestionCount - количество вопросов в викторине
	QuestionCount int

	// OptionsPerQuestion - количество вариантов ответа (1 правильный + дистракторы)
	OptionsPerQuestion int

	// TimeLimitSec - бюджет времени на вопрос. Соблюдается клиентом,
	// для сервера носит информационный характер.
	TimeLimitSec int

	// Progression - уровень сложности для каждого вопроса (индекс 0 = вопрос 1)
	Progression []entity.Difficulty
}

// DefaultConfig возвращает настройки по умолчанию: 10 вопросов,
// прогрессия от лёгких к сложным
func DefaultConfig() *Config {
	return &Config{
		QuestionCount:      10,
		OptionsPerQuestion: 4,
		TimeLimitSec:       30,
		Progression: []entity.Difficulty{
			entity.DifficultyEasy,   // Q1
			entity.DifficultyEasy,   // Q2
			entity.DifficultyEasy,   // Q3
			entity.DifficultyMedium, // Q4
			entity.DifficultyMedium, // Q5
			entity.DifficultyMedium, // Q6
			entity.DifficultyMedium, // Q7
			entity.DifficultyHard,   // Q8
			entity.DifficultyHard,   // Q9
			entity.DifficultyHard,   // Q10
		},
	}
}

// DifficultyFor возвращает уровень сложности для вопроса на позиции pos
// (0-indexed). Для позиций за пределами прогрессии возвращает medium.
func (c *Config) DifficultyFor(pos int) entity.Difficulty {
	if pos < 0 || pos >= len(c.Progression) {
		return entity.DifficultyMedium
	}
	return c.Progression[pos]
}

// difficultyBands - категории инструкций по уровням сложности.
// Выборка для вопроса идёт из категорий его уровня; при нехватке
// инструкций генератор откатывается на весь каталог.
var difficultyBands = map[entity.Difficulty][]entity.Category{
	entity.DifficultyEasy: {
		entity.CategoryArithmetic,
		entity.CategoryComparison,
		entity.CategoryStack,
	},
	entity.DifficultyMedium: {
		entity.CategoryBitwise,
		entity.CategoryMemory,
		entity.CategoryStorage,
		entity.CategoryFlow,
		entity.CategoryEnvironment,
		entity.CategoryBlockInfo,
		entity.CategoryLogging,
		entity.CategorySha3,
	},
	entity.DifficultyHard: {
		entity.CategorySystem,
		entity.CategoryCreate,
	},
}

// CategoriesFor возвращает категории инструкций уровня сложности d
func CategoriesFor(d entity.Difficulty) []entity.Category {
	return difficultyBands[d]
}
