package dto

import (
	"time"
)

// LeaderboardEntryDTO представляет одного пользователя в лидерборде дня
type LeaderboardEntryDTO struct {
	ID          uint      `json:"id"`           // ID пользователя
	Name        string    `json:"name"`         // Имя пользователя
	Email       string    `json:"email"`        // Email пользователя
	CompletedAt time.Time `json:"completed_at"` // Время решения (определяет место)
	Rank        int       `json:"rank"`         // Место, начиная с 1
}

// LeaderboardResponse представляет лидерборд одного дня
type LeaderboardResponse struct {
	Leaderboard []*LeaderboardEntryDTO `json:"leaderboard"`
	Day         int                    `json:"day"`
}
