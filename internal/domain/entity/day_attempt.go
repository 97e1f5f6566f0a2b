package entity

import (
	"time"
)

// DayAttempt хранит счётчик попыток пользователя по загадке дня
// и момент окончания кулдауна, если он открыт.
type DayAttempt struct {
	ID               uint       `gorm:"primaryKey" json:"id"`
	UserID           uint       `gorm:"not null;index;uniqueIndex:idx_user_day_attempt" json:"user_id"`
	Day              int        `gorm:"not null;uniqueIndex:idx_user_day_attempt" json:"day"`
	AttemptsInPeriod int        `gorm:"not null;default:0" json:"attempts_in_period"`
	CooldownUntil    *time.Time `gorm:"type:timestamp" json:"cooldown_until,omitempty"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
}

// TableName определяет имя таблицы для GORM
func (DayAttempt) TableName() string {
	return "day_attempts"
}
