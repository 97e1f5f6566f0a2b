package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestExtractDayParam(t *testing.T) {
	testCases := []struct {
		name       string
		param      string
		wantStatus int
		wantDay    int
	}{
		{"Первый день", "1", http.StatusOK, 1},
		{"Последний день", "10", http.StatusOK, 10},
		{"День ноль", "0", http.StatusBadRequest, 0},
		{"День за пределами кампании", "11", http.StatusBadRequest, 0},
		{"Отрицательный день", "-1", http.StatusBadRequest, 0},
		{"Нечисловое значение", "abc", http.StatusBadRequest, 0},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			router := gin.New()

			var gotDay int
			router.GET("/leaderboard/:day", ExtractDayParam("day", 10), func(c *gin.Context) {
				gotDay = c.MustGet("day").(int)
				c.Status(http.StatusOK)
			})

			w := httptest.NewRecorder()
			req, err := http.NewRequest(http.MethodGet, "/leaderboard/"+tc.param, nil)
			require.NoError(t, err)
			router.ServeHTTP(w, req)

			assert.Equal(t, tc.wantStatus, w.Code)
			if tc.wantStatus == http.StatusOK {
				assert.Equal(t, tc.wantDay, gotDay, "День должен быть сохранён в контексте")
			}
		})
	}
}
