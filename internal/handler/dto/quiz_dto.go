package dto

import (
	"github.com/google/uuid"
	"github.com/yourusername/opcode-quiz-api/internal/domain/entity"
)

// QuestionMetadata представляет метаданные вопроса для клиента
type QuestionMetadata struct {
	Category   string `json:"category"`
	Difficulty string `json:"difficulty"`
	OpcodeName string `json:"opcodeName"`
}

// DailyQuizQuestion представляет вопрос в формате для ответа клиенту.
// Правильный ответ и пояснение намеренно отсутствуют в типе: клиент
// не должен их видеть до сабмита.
type DailyQuizQuestion struct {
	ID           uuid.UUID        `json:"id"`
	QuestionText string           `json:"questionText"`
	Options      []string         `json:"options"`
	Metadata     QuestionMetadata `json:"metadata"`
}

// DailyQuizResponse представляет дневную викторину в формате для ответа клиенту
type DailyQuizResponse struct {
	QuizID    uuid.UUID           `json:"quizId"`
	Date      string              `json:"date"`
	Questions []DailyQuizQuestion `json:"questions"`
	TimeLimit int                 `json:"timeLimit"`
}

// NewDailyQuizResponse создает DTO викторины без правильных ответов
func NewDailyQuizResponse(quiz *entity.DailyQuiz, timeLimitSec int) *DailyQuizResponse {
	if quiz == nil {
		return nil
	}

	questions := make([]DailyQuizQuestion, len(quiz.Questions))
	for i, q := range quiz.Questions {
		questions[i] = DailyQuizQuestion{
			ID:           q.ID,
			QuestionText: q.Text,
			Options:      q.Options,
			Metadata: QuestionMetadata{
				Category:   string(q.Category),
				Difficulty: string(q.Difficulty),
				OpcodeName: q.OpcodeName,
			},
		}
	}

	return &DailyQuizResponse{
		QuizID:    quiz.ID,
		Date:      quiz.QuizDate,
		Questions: questions,
		TimeLimit: timeLimitSec,
	}
}

// OpcodeInfo представляет сведения об инструкции в разборе ответа
type OpcodeInfo struct {
	Name     string `json:"name"`
	Category string `json:"category"`
	Hex      string `json:"hex,omitempty"`
	Gas      int    `json:"gas,omitempty"`
}

// AnswerResult представляет разбор одного ответа после скоринга
type AnswerResult struct {
	QuestionID    uuid.UUID  `json:"questionId"`
	UserAnswer    string     `json:"userAnswer"`
	CorrectAnswer string     `json:"correctAnswer"`
	IsCorrect     bool       `json:"isCorrect"`
	Explanation   string     `json:"explanation"`
	OpcodeInfo    OpcodeInfo `json:"opcodeInfo"`
}

// SubmitQuizResponse представляет результат скоринга сабмита
type SubmitQuizResponse struct {
	Score          int            `json:"score"`
	TotalQuestions int            `json:"totalQuestions"`
	CompletionTime int            `json:"completionTime"`
	Results        []AnswerResult `json:"results"`
}
