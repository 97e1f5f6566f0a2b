package handler

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	apperrors "github.com/yourusername/hunt-api/internal/pkg/errors"
	"github.com/yourusername/hunt-api/internal/service"
)

// PlayHandler обрабатывает запросы игрового цикла: получение загадки дня
// и проверку ответов
type PlayHandler struct {
	gameService *service.GameService
}

// NewPlayHandler создает новый игровой обработчик
func NewPlayHandler(gameService *service.GameService) *PlayHandler {
	return &PlayHandler{gameService: gameService}
}

// SubmitRequest представляет запрос на проверку ответа
type SubmitRequest struct {
	Day    int    `json:"day" binding:"required,min=1"`
	Answer string `json:"answer" binding:"required"`
}

// GetDailyQuestion возвращает загадку дня вместе с состоянием доступа.
// Без query-параметра day возвращается текущий день кампании.
func (h *PlayHandler) GetDailyQuestion(c *gin.Context) {
	userID := c.MustGet("user_id").(uint)

	day := 0 // 0 означает текущий день
	if dayStr := c.Query("day"); dayStr != "" {
		parsed, err := strconv.Atoi(dayStr)
		if err != nil || parsed < 1 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid day parameter"})
			return
		}
		day = parsed
	}

	resp, err := h.gameService.GetDailyQuestion(userID, day)
	if err != nil {
		h.handleGameError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// SubmitAnswer проверяет ответ пользователя на загадку дня
func (h *PlayHandler) SubmitAnswer(c *gin.Context) {
	userID := c.MustGet("user_id").(uint)

	var req SubmitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resp, err := h.gameService.SubmitAnswer(userID, req.Day, req.Answer)
	if err != nil {
		h.handleGameError(c, err)
		return
	}

	if resp.Correct {
		log.Printf("[PlayHandler] Пользователь ID=%d решил день %d", userID, req.Day)
	}

	c.JSON(http.StatusOK, resp)
}

// handleGameError преобразует ошибки игрового сервиса в HTTP-ответы
func (h *PlayHandler) handleGameError(c *gin.Context, err error) {
	if errors.Is(err, apperrors.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	} else if errors.Is(err, apperrors.ErrValidation) {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	} else if errors.Is(err, apperrors.ErrForbidden) {
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	} else if errors.Is(err, apperrors.ErrDataIntegrity) {
		log.Printf("ERROR: Data integrity violation in PlayHandler: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	} else {
		log.Printf("ERROR: Internal server error in PlayHandler: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
