package entity

import (
	"time"
)

// DayCompletion фиксирует решение загадки дня пользователем.
// Пара (user_id, day) уникальна: запись создаётся не более одного раза,
// и её timestamp определяет место в лидерборде.
type DayCompletion struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	UserID      uint      `gorm:"not null;index;uniqueIndex:idx_user_day_completion" json:"user_id"`
	Day         int       `gorm:"not null;index;uniqueIndex:idx_user_day_completion" json:"day"`
	CompletedAt time.Time `gorm:"not null;index" json:"completed_at"`
	CreatedAt   time.Time `json:"created_at"`
}

// TableName определяет имя таблицы для GORM
func (DayCompletion) TableName() string {
	return "day_completions"
}
