package postgres

import (
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/yourusername/hunt-api/internal/domain/entity"
	"github.com/yourusername/hunt-api/internal/domain/repository"
	apperrors "github.com/yourusername/hunt-api/internal/pkg/errors"
)

// ProgressRepo реализует repository.ProgressRepository
type ProgressRepo struct {
	db *gorm.DB
}

// NewProgressRepo создает новый репозиторий прогресса
func NewProgressRepo(db *gorm.DB) *ProgressRepo {
	return &ProgressRepo{db: db}
}

// GetCompletion возвращает запись о решении дня
func (r *ProgressRepo) GetCompletion(userID uint, day int) (*entity.DayCompletion, error) {
	var completion entity.DayCompletion
	err := r.db.Where("user_id = ? AND day = ?", userID, day).First(&completion).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &completion, nil
}

// GetCompletions возвращает все решения пользователя в порядке дней
func (r *ProgressRepo) GetCompletions(userID uint) ([]entity.DayCompletion, error) {
	var completions []entity.DayCompletion
	err := r.db.Where("user_id = ?", userID).Order("day").Find(&completions).Error
	if err != nil {
		return nil, err
	}
	return completions, nil
}

// CreateCompletion вставляет запись о решении дня.
// Уникальный индекс (user_id, day) плюс DO NOTHING гарантируют, что timestamp
// первого решения не перезаписывается при конкурентных или повторных сабмитах:
// "ровно одно засчитанное решение" обеспечивает хранилище, а не код сервиса.
func (r *ProgressRepo) CreateCompletion(completion *entity.DayCompletion) (bool, error) {
	result := r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "day"}},
		DoNothing: true,
	}).Create(completion)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// GetAttempt возвращает счетчик попыток по дню
func (r *ProgressRepo) GetAttempt(userID uint, day int) (*entity.DayAttempt, error) {
	var attempt entity.DayAttempt
	err := r.db.Where("user_id = ? AND day = ?", userID, day).First(&attempt).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &attempt, nil
}

// IncrementAttempts атомарно увеличивает счетчик попыток и возвращает новое значение.
// Upsert одним запросом: запись создается при первой попытке.
func (r *ProgressRepo) IncrementAttempts(userID uint, day int) (int, error) {
	var count int
	err := r.db.Raw(`
		INSERT INTO day_attempts (user_id, day, attempts_in_period, created_at, updated_at)
		VALUES (?, ?, 1, NOW(), NOW())
		ON CONFLICT (user_id, day)
		DO UPDATE SET attempts_in_period = day_attempts.attempts_in_period + 1, updated_at = NOW()
		RETURNING attempts_in_period
	`, userID, day).Scan(&count).Error
	if err != nil {
		return 0, err
	}
	return count, nil
}

// OpenCooldown устанавливает момент окончания кулдауна для дня
func (r *ProgressRepo) OpenCooldown(userID uint, day int, until time.Time) error {
	return r.db.Model(&entity.DayAttempt{}).
		Where("user_id = ? AND day = ?", userID, day).
		Updates(map[string]interface{}{
			"cooldown_until": until,
			"updated_at":     time.Now(),
		}).Error
}

// ResetAttempts обнуляет счетчик попыток и снимает кулдаун.
// Повторный вызов после сброса ничего не меняет.
func (r *ProgressRepo) ResetAttempts(userID uint, day int) error {
	return r.db.Model(&entity.DayAttempt{}).
		Where("user_id = ? AND day = ?", userID, day).
		Updates(map[string]interface{}{
			"attempts_in_period": 0,
			"cooldown_until":     nil,
			"updated_at":         time.Now(),
		}).Error
}

// GetDayLeaderboard возвращает решивших день пользователей, отсортированных
// по времени решения. ID решения используется как стабильный tiebreak.
func (r *ProgressRepo) GetDayLeaderboard(day int, limit int) ([]repository.LeaderboardRow, error) {
	var rows []repository.LeaderboardRow
	err := r.db.Table("day_completions").
		Select("day_completions.user_id, users.username, users.email, day_completions.completed_at").
		Joins("JOIN users ON users.id = day_completions.user_id").
		Where("day_completions.day = ?", day).
		Order("day_completions.completed_at ASC, day_completions.id ASC").
		Limit(limit).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
