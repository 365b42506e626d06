package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yourusername/opcode-quiz-api/internal/domain/entity"
	"github.com/yourusername/opcode-quiz-api/internal/opcodes"
)

// OpcodeHandler обрабатывает запросы к статическому каталогу инструкций.
// Каталог публичный: ответы тут не раскрываются, вопросы строятся из него
// на сервере.
type OpcodeHandler struct {
	bank *opcodes.Bank
}

// NewOpcodeHandler создает новый обработчик каталога
func NewOpcodeHandler(bank *opcodes.Bank) *OpcodeHandler {
	return &OpcodeHandler{bank: bank}
}

// ListOpcodes возвращает каталог инструкций, опционально по категории.
// GET /api/opcodes?category=arithmetic
func (h *OpcodeHandler) ListOpcodes(c *gin.Context) {
	raw := c.Query("category")
	if raw == "" {
		c.JSON(http.StatusOK, gin.H{"opcodes": h.bank.All(), "total": h.bank.Size()})
		return
	}

	category, err := entity.ParseCategory(raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	filtered := h.bank.ByCategory(category)
	c.JSON(http.StatusOK, gin.H{"opcodes": filtered, "total": len(filtered)})
}
