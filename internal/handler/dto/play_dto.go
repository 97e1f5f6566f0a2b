package dto

import (
	"time"
)

// PlayResponse представляет загадку дня вместе с состоянием доступа
// и кулдауна запрашивающего пользователя. Ответ загадки никогда не включается.
type PlayResponse struct {
	ID                     uint       `json:"id"`
	Day                    int        `json:"day"`
	Question               string     `json:"question"`
	Hint                   string     `json:"hint"`
	Difficulty             int        `json:"difficulty"`
	Image                  string     `json:"image,omitempty"`
	AttemptsBeforeCooldown int        `json:"attempts_before_cooldown"`
	AttemptsInPeriod       int        `json:"attempts_in_period"`
	CooldownSeconds        int        `json:"cooldown_seconds"`
	IsUnlocked             bool       `json:"is_unlocked"`
	IsCatchUp              bool       `json:"is_catch_up"`
	IsCompleted            bool       `json:"is_completed"`
	LockReason             string     `json:"lock_reason"`
	DateLockedUntil        *time.Time `json:"date_locked_until,omitempty"`
}

// SubmitResponse представляет результат сабмита ответа
type SubmitResponse struct {
	Result                 string `json:"result"`
	Correct                bool   `json:"correct"`
	CooldownSeconds        int    `json:"cooldown_seconds,omitempty"`
	AttemptsBeforeCooldown int    `json:"attempts_before_cooldown,omitempty"`
	AttemptsInPeriod       int    `json:"attempts_in_period,omitempty"`
}
