package handler

import (
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	gorillaws "github.com/gorilla/websocket"
	"github.com/yourusername/hunt-api/internal/websocket"
	"github.com/yourusername/hunt-api/pkg/auth"
)

// WSHandler обрабатывает WebSocket соединения для live-ленты лидерборда
type WSHandler struct {
	wsHub      *websocket.Hub
	jwtService *auth.JWTService
	totalDays  int
}

// NewWSHandler создает новый обработчик WebSocket
func NewWSHandler(wsHub *websocket.Hub, jwtService *auth.JWTService, totalDays int) *WSHandler {
	return &WSHandler{
		wsHub:      wsHub,
		jwtService: jwtService,
		totalDays:  totalDays,
	}
}

var upgrader = gorillaws.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		origin := r.Header.Get("Origin")

		// Пустой Origin — не браузерный клиент (мобильное приложение, curl и т.д.)
		if origin == "" {
			return true
		}

		// Список разрешенных origin (синхронизирован с CORS в main.go)
		allowedOrigins := []string{
			"http://localhost:5173",
			"http://localhost:3000",
		}

		for _, allowed := range allowedOrigins {
			if origin == allowed {
				return true
			}
		}

		log.Printf("WebSocket: rejected unauthorized origin: %s", origin)
		return false
	},
	EnableCompression: true,
}

// HandleConnection устанавливает WebSocket соединение и подписывает клиента
// на события завершений выбранного дня.
// GET /ws?day=N&token=<JWT>
func (h *WSHandler) HandleConnection(c *gin.Context) {
	// Браузерный WebSocket API не поддерживает заголовки,
	// поэтому токен передается query-параметром
	tokenString := c.Query("token")
	if tokenString == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Missing token"})
		return
	}

	claims, err := h.jwtService.ParseToken(tokenString)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
		return
	}

	day, err := strconv.Atoi(c.Query("day"))
	if err != nil || day < 1 || day > h.totalDays {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid day parameter"})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("[WSHandler] Ошибка апгрейда соединения для пользователя ID=%d: %v", claims.UserID, err)
		return
	}

	log.Printf("[WSHandler] Пользователь ID=%d подписался на события дня %d", claims.UserID, day)

	client := websocket.NewClient(h.wsHub, conn, day)
	client.Start()
}
