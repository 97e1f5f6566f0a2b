package middleware

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// ExtractDayParam создает middleware для извлечения и валидации номера дня из URL.
// Значение должно быть целым числом в диапазоне [1, totalDays], иначе 400.
// Результат сохраняется в контексте Gin под ключом "day".
func ExtractDayParam(paramName string, totalDays int) gin.HandlerFunc {
	return func(c *gin.Context) {
		dayStr := c.Param(paramName)
		day, err := strconv.Atoi(dayStr)
		if err != nil || day < 1 || day > totalDays {
			c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("Invalid %s: must be an integer between 1 and %d", paramName, totalDays)})
			c.Abort()
			return
		}
		c.Set("day", day)
		c.Next()
	}
}
