package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/yourusername/opcode-quiz-api/internal/service"
)

// UserHandler обрабатывает запросы, связанные с пользователями
type UserHandler struct {
	userService *service.UserService
}

// NewUserHandler создает новый обработчик пользователей
func NewUserHandler(userService *service.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// UpsertUserRequest представляет запрос на обновление кеша профиля
type UpsertUserRequest struct {
	Fid         int64  `json:"fid" binding:"required,min=1"`
	Username    string `json:"username" binding:"omitempty,max=50"`
	DisplayName string `json:"display_name" binding:"omitempty,max=100"`
	PfpURL      string `json:"pfp_url" binding:"omitempty,max=255"`
}

// UpsertUser вставляет или обновляет пользователя по fid.
// POST /api/users
func (h *UserHandler) UpsertUser(c *gin.Context) {
	var req UpsertUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.userService.UpsertUser(req.Fid, req.Username, req.DisplayName, req.PfpURL)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

// GetUser возвращает пользователя по внешнему числовому хендлу.
// GET /api/users/:fid
func (h *UserHandler) GetUser(c *gin.Context) {
	fid, err := strconv.ParseInt(c.Param("fid"), 10, 64)
	if err != nil || fid <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid fid"})
		return
	}

	user, err := h.userService.GetByFid(fid)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}
