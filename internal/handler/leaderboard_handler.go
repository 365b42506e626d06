package handler

import (
	"encoding/csv"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"
	"github.com/yourusername/opcode-quiz-api/internal/domain/repository"
	"github.com/yourusername/opcode-quiz-api/internal/handler/dto"
	"github.com/yourusername/opcode-quiz-api/internal/service"
)

// LeaderboardHandler обрабатывает запросы лидерборда
type LeaderboardHandler struct {
	leaderboardService *service.LeaderboardService
}

// NewLeaderboardHandler создает новый обработчик лидерборда
func NewLeaderboardHandler(leaderboardService *service.LeaderboardService) *LeaderboardHandler {
	return &LeaderboardHandler{leaderboardService: leaderboardService}
}

// GetLeaderboard возвращает рейтинг попыток викторины.
// GET /api/quizzes/:id/leaderboard?fids=1,2,3 (fids - опциональный allow-list)
func (h *LeaderboardHandler) GetLeaderboard(c *gin.Context) {
	quizID := c.MustGet("quizID").(uuid.UUID) // Получаем из контекста

	fids, err := parseFids(c.Query("fids"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid fids, expected comma-separated numbers"})
		return
	}

	rows, err := h.leaderboardService.Rank(quizID, fids)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewLeaderboardResponse(quizID, rows))
}

// ExportLeaderboard экспортирует лидерборд викторины в CSV или Excel формате
// GET /api/quizzes/:id/leaderboard/export?format=csv|xlsx
func (h *LeaderboardHandler) ExportLeaderboard(c *gin.Context) {
	quizID := c.MustGet("quizID").(uuid.UUID)
	format := c.DefaultQuery("format", "csv")

	rows, err := h.leaderboardService.Rank(quizID, nil)
	if err != nil {
		respondError(c, err)
		return
	}

	filename := fmt.Sprintf("quiz_%s_leaderboard_%s", quizID, time.Now().Format("2006-01-02"))

	switch format {
	case "xlsx":
		h.exportXLSX(c, rows, filename)
	default:
		h.exportCSV(c, rows, filename)
	}
}

// exportCSV экспортирует лидерборд в CSV с правильным экранированием спецсимволов
func (h *LeaderboardHandler) exportCSV(c *gin.Context, rows []repository.LeaderboardRow, filename string) {
	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"%s.csv\"", filename))

	// BOM для корректного отображения UTF-8 в Excel
	c.Writer.Write([]byte{0xEF, 0xBB, 0xBF})

	// Используем encoding/csv для правильного экранирования запятых/кавычек
	writer := csv.NewWriter(c.Writer)
	defer writer.Flush()

	writer.Write([]string{"Rank", "Fid", "Username", "Display Name", "Score", "Completion Time (s)", "Submitted At"})

	for i, row := range rows {
		writer.Write([]string{
			strconv.Itoa(i + 1),
			strconv.FormatInt(row.Fid, 10),
			sanitizeForExcel(row.Username),
			sanitizeForExcel(row.DisplayName),
			strconv.Itoa(row.Score),
			strconv.Itoa(row.CompletionTimeSeconds),
			row.SubmittedAt.UTC().Format(time.RFC3339),
		})
	}
}

// exportXLSX экспортирует лидерборд в Excel с использованием StreamWriter
func (h *LeaderboardHandler) exportXLSX(c *gin.Context, rows []repository.LeaderboardRow, filename string) {
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"%s.xlsx\"", filename))

	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Leaderboard"
	f.SetSheetName("Sheet1", sheetName)

	sw, err := f.NewStreamWriter(sheetName)
	if err != nil {
		log.Printf("[LeaderboardHandler] Ошибка создания StreamWriter: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create Excel file"})
		return
	}

	headers := []interface{}{"Rank", "Fid", "Username", "Display Name", "Score", "Completion Time (s)", "Submitted At"}
	if err := sw.SetRow("A1", headers); err != nil {
		log.Printf("[LeaderboardHandler] Ошибка записи заголовков: %v", err)
	}

	for i, row := range rows {
		cell := fmt.Sprintf("A%d", i+2) // Начинаем с 2 строки (1 - заголовки)
		values := []interface{}{
			i + 1,
			row.Fid,
			sanitizeForExcel(row.Username),
			sanitizeForExcel(row.DisplayName),
			row.Score,
			row.CompletionTimeSeconds,
			row.SubmittedAt.UTC().Format(time.RFC3339),
		}
		if err := sw.SetRow(cell, values); err != nil {
			log.Printf("[LeaderboardHandler] Ошибка записи строки %d: %v", i+2, err)
		}
	}

	if err := sw.Flush(); err != nil {
		log.Printf("[LeaderboardHandler] Ошибка при Flush: %v", err)
	}

	if err := f.Write(c.Writer); err != nil {
		log.Printf("[LeaderboardHandler] Ошибка записи Excel в response: %v", err)
	}
}

// sanitizeForExcel экранирует данные для защиты от formula injection в Excel/CSV
func sanitizeForExcel(s string) string {
	if len(s) == 0 {
		return s
	}
	// Символы, начинающие формулу в Excel/LibreOffice: = + - @ \t \r
	if s[0] == '=' || s[0] == '+' || s[0] == '-' || s[0] == '@' || s[0] == '\t' || s[0] == '\r' {
		return "'" + s
	}
	return s
}

// parseFids разбирает allow-list хендлов из query-параметра "1,2,3".
// Пустая строка означает отсутствие ограничения.
func parseFids(raw string) ([]int64, error) {
	if raw == "" {
		return nil, nil
	}
	parts := strings.Split(raw, ",")
	fids := make([]int64, 0, len(parts))
	for _, p := range parts {
		fid, err := strconv.ParseInt(strings.TrimSpace(p), 10, 64)
		if err != nil {
			return nil, err
		}
		fids = append(fids, fid)
	}
	return fids, nil
}
