package handler

import (
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/yourusername/opcode-quiz-api/internal/domain/entity"
	"github.com/yourusername/opcode-quiz-api/internal/handler/dto"
	apperrors "github.com/yourusername/opcode-quiz-api/internal/pkg/errors"
	"github.com/yourusername/opcode-quiz-api/internal/service"
)

// QuizHandler обрабатывает запросы, связанные с дневной викториной
type QuizHandler struct {
	quizService       *service.QuizService
	submissionService *service.SubmissionService
}

// NewQuizHandler создает новый обработчик викторин
func NewQuizHandler(
	quizService *service.QuizService,
	submissionService *service.SubmissionService,
) *QuizHandler {
	return &QuizHandler{
		quizService:       quizService,
		submissionService: submissionService,
	}
}

// GetDailyQuiz возвращает викторину даты без правильных ответов.
// GET /api/daily-quiz?date=YYYY-MM-DD (date по умолчанию - сегодня).
// Викторина сегодняшней даты создаётся при первом запросе; для остальных
// дат выполняется только чтение.
func (h *QuizHandler) GetDailyQuiz(c *gin.Context) {
	today := time.Now().UTC().Format(entity.QuizDateLayout)

	date := c.DefaultQuery("date", today)
	if _, err := time.Parse(entity.QuizDateLayout, date); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date, expected YYYY-MM-DD"})
		return
	}

	var quiz *entity.DailyQuiz
	var err error
	if date == today {
		quiz, err = h.quizService.GetOrCreateDailyQuiz(date)
	} else {
		quiz, err = h.quizService.GetQuizByDate(date)
	}
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "No quiz available for this date"})
			return
		}
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewDailyQuizResponse(quiz, h.quizService.Config().TimeLimitSec))
}

// SubmitQuizRequest представляет сабмит ответов на дневную викторину
type SubmitQuizRequest struct {
	QuizID                uuid.UUID `json:"quizId" binding:"required"`
	Answers               []string  `json:"answers" binding:"required"`
	CompletionTimeSeconds int       `json:"completionTimeSeconds" binding:"required,min=1"`
	UserFid               int64     `json:"userFid" binding:"required,min=1"`
}

// SubmitQuiz обрабатывает сабмит ответов.
// POST /api/submit-quiz
func (h *QuizHandler) SubmitQuiz(c *gin.Context) {
	var req SubmitQuizRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields"})
		return
	}

	result, err := h.submissionService.ScoreSubmission(req.QuizID, req.Answers, req.UserFid, req.CompletionTimeSeconds)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// respondError отображает ошибки сервисного слоя на HTTP статусы.
// Ошибки зависимостей отдаются наружу непрозрачно.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperrors.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrConflict):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	default:
		log.Printf("[Handler] Внутренняя ошибка: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
