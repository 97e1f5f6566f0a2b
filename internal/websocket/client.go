package websocket

import (
	"log"
	"time"

	"github.com/gorilla/websocket"
)

const (
	// Максимальное время на запись сообщения клиенту
	writeWait = 10 * time.Second

	// Максимальное время ожидания pong от клиента
	pongWait = 60 * time.Second

	// Интервал пингов; должен быть меньше pongWait
	pingPeriod = (pongWait * 9) / 10

	// Входящие сообщения не используются, лимит минимальный
	maxMessageSize = 512
)

// Client представляет одно WebSocket-подключение, подписанное на день кампании
type Client struct {
	hub  *Hub
	conn *websocket.Conn
	send chan []byte
	day  int
}

// NewClient создает клиента и регистрирует его в хабе
func NewClient(hub *Hub, conn *websocket.Conn, day int) *Client {
	client := &Client{
		hub:  hub,
		conn: conn,
		send: make(chan []byte, 16),
		day:  day,
	}
	hub.register <- client
	return client
}

// Start запускает насосы чтения и записи
func (c *Client) Start() {
	go c.writePump()
	go c.readPump()
}

// readPump вычитывает входящие фреймы ради обработки close/pong.
// Клиентские сообщения игнорируются: канал односторонний.
func (c *Client) readPump() {
	defer func() {
		c.hub.unregister <- c
		c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMessageSize)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("[WSClient] Неожиданное закрытие соединения: %v", err)
			}
			return
		}
	}
}

// writePump пишет события из канала send и поддерживает соединение пингами
func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case message, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				// Хаб закрыл канал
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
				return
			}

		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
