package dto

import (
	"time"

	"github.com/yourusername/hunt-api/internal/domain/entity"
)

// UserDTO представляет пользователя в формате для ответа клиенту
type UserDTO struct {
	ID            uint      `json:"id"`
	Username      string    `json:"username"`
	Email         string    `json:"email"`
	DaysCompleted int       `json:"days_completed"`
	CreatedAt     time.Time `json:"created_at"`
}

// NewUserDTO создает DTO для пользователя
func NewUserDTO(user *entity.User) *UserDTO {
	if user == nil {
		return nil
	}
	return &UserDTO{
		ID:            user.ID,
		Username:      user.Username,
		Email:         user.Email,
		DaysCompleted: user.DaysCompleted,
		CreatedAt:     user.CreatedAt,
	}
}

// CompletionDTO представляет решённый день в карте прогресса
type CompletionDTO struct {
	Done        bool      `json:"done"`
	CompletedAt time.Time `json:"completed_at"`
}

// ProgressResponse представляет прогресс пользователя по кампании.
// Ключи карты Completed имеют вид "day<N>".
type ProgressResponse struct {
	User       *UserDTO                 `json:"user"`
	CurrentDay int                      `json:"current_day"`
	TotalDays  int                      `json:"total_days"`
	Completed  map[string]CompletionDTO `json:"completed"`
}

// AuthResponse представляет ответ на регистрацию/вход
type AuthResponse struct {
	User        *UserDTO `json:"user"`
	AccessToken string   `json:"access_token"`
}
