package websocket

import (
	"context"
	"encoding/json"
	"log"
	"time"
)

// CompletionEvent — событие "день решён", рассылаемое подписчикам лидерборда дня
type CompletionEvent struct {
	Type        string    `json:"type"` // всегда "day_completed"
	Day         int       `json:"day"`
	UserID      uint      `json:"user_id"`
	Username    string    `json:"username"`
	CompletedAt time.Time `json:"completed_at"`
}

// Hub управляет подписчиками живого лидерборда.
// Клиенты подписываются на конкретный день; события решений этого дня
// рассылаются всем его подписчикам.
type Hub struct {
	// Подписчики по дням
	clients map[int]map[*Client]bool

	register   chan *Client
	unregister chan *Client
	broadcast  chan CompletionEvent
}

// NewHub создает новый хаб
func NewHub() *Hub {
	return &Hub{
		clients:    make(map[int]map[*Client]bool),
		register:   make(chan *Client, 64),
		unregister: make(chan *Client, 64),
		broadcast:  make(chan CompletionEvent, 256),
	}
}

// Run запускает цикл обработки хаба. Завершается по отмене контекста.
func (h *Hub) Run(ctx context.Context) {
	for {
		select {
		case client := <-h.register:
			if h.clients[client.day] == nil {
				h.clients[client.day] = make(map[*Client]bool)
			}
			h.clients[client.day][client] = true

		case client := <-h.unregister:
			if subs, ok := h.clients[client.day]; ok {
				if _, ok := subs[client]; ok {
					delete(subs, client)
					close(client.send)
					if len(subs) == 0 {
						delete(h.clients, client.day)
					}
				}
			}

		case event := <-h.broadcast:
			subs := h.clients[event.Day]
			if len(subs) == 0 {
				continue
			}
			data, err := json.Marshal(event)
			if err != nil {
				log.Printf("[Hub] Ошибка сериализации события: %v", err)
				continue
			}
			for client := range subs {
				select {
				case client.send <- data:
				default:
					// Медленный клиент: отключаем, чтобы не блокировать рассылку
					delete(subs, client)
					close(client.send)
				}
			}

		case <-ctx.Done():
			log.Println("[Hub] Завершение работы хаба")
			for _, subs := range h.clients {
				for client := range subs {
					close(client.send)
				}
			}
			h.clients = make(map[int]map[*Client]bool)
			return
		}
	}
}

// BroadcastCompletion реализует service.CompletionBroadcaster.
// Не блокирует вызывающий код: при переполненном буфере событие отбрасывается.
func (h *Hub) BroadcastCompletion(day int, userID uint, username string, completedAt time.Time) {
	event := CompletionEvent{
		Type:        "day_completed",
		Day:         day,
		UserID:      userID,
		Username:    username,
		CompletedAt: completedAt,
	}
	select {
	case h.broadcast <- event:
	default:
		log.Printf("[Hub] Буфер рассылки переполнен, событие day=%d user=%d отброшено", day, userID)
	}
}
