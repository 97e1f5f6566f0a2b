package repository

import (
	"time"

	"github.com/yourusername/hunt-api/internal/domain/entity"
)

// LeaderboardRow представляет одну строку выборки лидерборда дня:
// запись о решении, объединённая с данными пользователя.
type LeaderboardRow struct {
	UserID      uint      `json:"user_id"`
	Username    string    `json:"username"`
	Email       string    `json:"email"`
	CompletedAt time.Time `json:"completed_at"`
}

// ProgressRepository определяет методы для работы с прогрессом пользователей:
// записями о решениях и счетчиками попыток/кулдаунов.
type ProgressRepository interface {
	// GetCompletion возвращает запись о решении дня или apperrors.ErrNotFound
	GetCompletion(userID uint, day int) (*entity.DayCompletion, error)

	// GetCompletions возвращает все решения пользователя
	GetCompletions(userID uint) ([]entity.DayCompletion, error)

	// CreateCompletion вставляет запись о решении. При конфликте по (user_id, day)
	// вставка игнорируется и возвращается created=false: timestamp первого
	// решения никогда не перезаписывается.
	CreateCompletion(completion *entity.DayCompletion) (created bool, err error)

	// GetAttempt возвращает счетчик попыток по дню или apperrors.ErrNotFound
	GetAttempt(userID uint, day int) (*entity.DayAttempt, error)

	// IncrementAttempts атомарно увеличивает счетчик попыток (создавая запись
	// при необходимости) и возвращает новое значение счетчика.
	IncrementAttempts(userID uint, day int) (int, error)

	// OpenCooldown устанавливает момент окончания кулдауна
	OpenCooldown(userID uint, day int, until time.Time) error

	// ResetAttempts обнуляет счетчик и снимает кулдаун. Идемпотентна.
	ResetAttempts(userID uint, day int) error

	// GetDayLeaderboard возвращает решивших день пользователей,
	// отсортированных по времени решения по возрастанию.
	GetDayLeaderboard(day int, limit int) ([]LeaderboardRow, error)
}
