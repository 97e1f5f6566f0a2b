package gamerules

import (
	"time"
)

// Config содержит параметры игровых правил кампании
type Config struct {
	// TotalDays — длительность кампании в днях
	TotalDays int

	// StartDate — полночь первого дня кампании (локальная зона сервера)
	StartDate time.Time

	// AttemptsBeforeCooldown — сколько попыток разрешено до открытия кулдауна
	AttemptsBeforeCooldown int

	// CooldownDuration — длительность кулдауна
	CooldownDuration time.Duration
}

// DefaultConfig возвращает конфигурацию правил по умолчанию.
// StartDate заполняется из конфигурации приложения при старте.
func DefaultConfig() *Config {
	return &Config{
		TotalDays:              10,
		AttemptsBeforeCooldown: 10,
		CooldownDuration:       30 * time.Second,
	}
}

// UnlockDate возвращает дату, когда открывается загадка указанного дня
func (c *Config) UnlockDate(day int) time.Time {
	return c.StartDate.AddDate(0, 0, day-1)
}

// CurrentDay возвращает текущий день кампании: количество полных суток
// с даты старта плюс один, ограниченное диапазоном [1, TotalDays].
// До старта кампании текущим считается день 1.
func (c *Config) CurrentDay(now time.Time) int {
	day := int(now.Sub(c.StartDate).Hours()/24) + 1
	if day < 1 {
		day = 1
	}
	if day > c.TotalDays {
		day = c.TotalDays
	}
	return day
}
