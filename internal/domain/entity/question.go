package entity

import (
	"strings"
	"time"
)

// Question представляет загадку одного дня кампании.
// Справочные данные: создаются инструментом cmd/seed и не меняются в рантайме.
type Question struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	Day        int       `gorm:"not null;uniqueIndex" json:"day"`
	Text       string    `gorm:"size:1000;not null" json:"text"`
	Hint       string    `gorm:"size:500;not null;default:''" json:"hint"`
	Answer     string    `gorm:"size:255;not null" json:"-"` // Скрыто от клиента
	Difficulty int       `gorm:"not null;default:1" json:"difficulty"` // 1-5
	ImageURL   string    `gorm:"size:255;not null;default:''" json:"image_url,omitempty"`
	UnlocksAt  time.Time `gorm:"not null" json:"unlocks_at"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// TableName определяет имя таблицы для GORM
func (Question) TableName() string {
	return "questions"
}

// HasAnswer проверяет целостность записи: у каждого вопроса должен быть сохранён ответ
func (q *Question) HasAnswer() bool {
	return strings.TrimSpace(q.Answer) != ""
}
