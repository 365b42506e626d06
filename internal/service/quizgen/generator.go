package quizgen

import (
	"errors"
	"fmt"
	"hash/fnv"
	"math/rand"
	"time"

	"github.com/yourusername/opcode-quiz-api/internal/domain/entity"
	"github.com/yourusername/opcode-quiz-api/internal/opcodes"
	apperrors "github.com/yourusername/opcode-quiz-api/internal/pkg/errors"
)

// Generator детерминированно собирает дневную викторину из банка вопросов.
// Зерно выводится из календарной даты: повторная генерация для той же даты
// даёт тот же набор вопросов, те же дистракторы и тот же порядок вариантов.
type Generator struct {
	bank   *opcodes.Bank
	config *Config
}

// NewGenerator создает новый генератор викторин
func NewGenerator(bank *opcodes.Bank, config *Config) *Generator {
	if config == nil {
		config = DefaultConfig()
	}
	return &Generator{bank: bank, config: config}
}

// Config возвращает конфигурацию генератора
func (g *Generator) Config() *Config {
	return g.config
}

// Generate собирает викторину для календарной даты (формат YYYY-MM-DD).
// Генерация всегда успешна при непустом каталоге; сохранение - забота
// вызывающего.
func (g *Generator) Generate(date string) (*entity.DailyQuiz, error) {
	if _, err := time.Parse(entity.QuizDateLayout, date); err != nil {
		return nil, fmt.Errorf("%w: invalid quiz date %q", apperrors.ErrValidation, date)
	}

	rng := rand.New(rand.NewSource(seedFromDate(date)))

	progression := make(entity.StringArray, 0, g.config.QuestionCount)
	questions := make([]entity.QuizQuestion, 0, g.config.QuestionCount)

	for i := 0; i < g.config.QuestionCount; i++ {
		difficulty := g.config.DifficultyFor(i)
		progression = append(progression, string(difficulty))

		sampled, err := g.bank.Sample(rng, g.config.OptionsPerQuestion, CategoriesFor(difficulty)...)
		if errors.Is(err, opcodes.ErrInsufficientCatalogue) {
			// В полосе сложности меньше инструкций, чем вариантов ответа:
			// берём из всего каталога
			sampled, err = g.bank.Sample(rng, g.config.OptionsPerQuestion)
		}
		if err != nil {
			return nil, fmt.Errorf("sample question #%d: %w", i+1, err)
		}

		// Первая выбранная инструкция - предмет вопроса, остальные дают дистракторы
		subject := sampled[0]
		kind := entity.QuestionKinds[rng.Intn(len(entity.QuestionKinds))]

		options := make(entity.StringArray, len(sampled))
		for j := range sampled {
			options[j] = sampled[j].Answer(kind)
		}
		rng.Shuffle(len(options), func(a, b int) {
			options[a], options[b] = options[b], options[a]
		})

		questions = append(questions, entity.QuizQuestion{
			Position:      i,
			Kind:          kind,
			Text:          questionText(kind, subject.Name),
			Options:       options,
			CorrectAnswer: subject.Answer(kind),
			Explanation:   explanationText(&subject),
			OpcodeName:    subject.Name,
			Category:      subject.Category,
			Difficulty:    difficulty,
		})
	}

	return &entity.DailyQuiz{
		QuizDate:              date,
		Seed:                  date,
		DifficultyProgression: progression,
		Questions:             questions,
	}, nil
}

// seedFromDate сворачивает календарную строку в зерно ГПСЧ (FNV-1a 64)
func seedFromDate(date string) int64 {
	h := fnv.New64a()
	h.Write([]byte(date))
	return int64(h.Sum64())
}

// questionText рендерит текст вопроса по шаблону его типа
func questionText(kind entity.QuestionKind, opcodeName string) string {
	switch kind {
	case entity.KindValue:
		return fmt.Sprintf("What is the decimal value of the %s opcode?", opcodeName)
	case entity.KindHex:
		return fmt.Sprintf("What is the hexadecimal value of the %s opcode?", opcodeName)
	case entity.KindDescription:
		return fmt.Sprintf("What does the %s opcode do?", opcodeName)
	case entity.KindGas:
		return fmt.Sprintf("How much gas does the %s opcode consume?", opcodeName)
	}
	return ""
}

// explanationText строит пояснение из фактов об инструкции
func explanationText(op *entity.Opcode) string {
	return fmt.Sprintf("%s (%s): %s. Decimal value %s, gas cost %d, takes %d input(s) and produces %d output(s).",
		op.Name, op.Hex, op.Description, op.Value, op.Gas, op.Inputs, op.Outputs)
}
