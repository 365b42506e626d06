package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/yourusername/opcode-quiz-api/internal/domain/repository"
)

// LeaderboardEntryDTO представляет одну строку лидерборда
type LeaderboardEntryDTO struct {
	Rank           int       `json:"rank"`
	Fid            int64     `json:"fid"`
	Username       string    `json:"username"`
	DisplayName    string    `json:"display_name"`
	PfpURL         string    `json:"pfp_url"`
	Score          int       `json:"score"`
	CompletionTime int       `json:"completion_time"`
	SubmittedAt    time.Time `json:"submitted_at"`
}

// LeaderboardResponse представляет лидерборд викторины
type LeaderboardResponse struct {
	QuizID  uuid.UUID             `json:"quiz_id"`
	Total   int                   `json:"total"`
	Entries []LeaderboardEntryDTO `json:"entries"`
}

// NewLeaderboardResponse создает DTO лидерборда. Ранг рассчитывается по
// позиции строки в уже отсортированной выборке.
func NewLeaderboardResponse(quizID uuid.UUID, rows []repository.LeaderboardRow) *LeaderboardResponse {
	entries := make([]LeaderboardEntryDTO, len(rows))
	for i, row := range rows {
		entries[i] = LeaderboardEntryDTO{
			Rank:           i + 1,
			Fid:            row.Fid,
			Username:       row.Username,
			DisplayName:    row.DisplayName,
			PfpURL:         row.PfpURL,
			Score:          row.Score,
			CompletionTime: row.CompletionTimeSeconds,
			SubmittedAt:    row.SubmittedAt,
		}
	}
	return &LeaderboardResponse{
		QuizID:  quizID,
		Total:   len(entries),
		Entries: entries,
	}
}
