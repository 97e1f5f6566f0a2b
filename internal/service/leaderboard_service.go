package service

import (
	"fmt"
	"log"
	"time"

	"github.com/yourusername/hunt-api/internal/domain/repository"
	"github.com/yourusername/hunt-api/internal/handler/dto"
)

const (
	leaderboardCacheTTL = 30 * time.Second

	// maxLeaderboardLimit — максимум записей в публичном лидерборде
	maxLeaderboardLimit = 100

	// exportLimit ограничивает выгрузку лидерборда для админки
	exportLimit = 10000
)

// LeaderboardService предоставляет методы для работы с лидербордами дней
type LeaderboardService struct {
	progressRepo repository.ProgressRepository
	cacheRepo    repository.CacheRepository
}

// NewLeaderboardService создает новый сервис лидербордов
func NewLeaderboardService(progressRepo repository.ProgressRepository, cacheRepo repository.CacheRepository) *LeaderboardService {
	return &LeaderboardService{
		progressRepo: progressRepo,
		cacheRepo:    cacheRepo,
	}
}

// GetDayLeaderboard возвращает лидерборд дня: решившие пользователи,
// отсортированные по времени решения, с местами начиная с 1.
func (s *LeaderboardService) GetDayLeaderboard(day, limit int) (*dto.LeaderboardResponse, error) {
	if limit < 1 {
		limit = 50 // Значение по умолчанию
	} else if limit > maxLeaderboardLimit {
		limit = maxLeaderboardLimit
	}

	// Кешируется полная выборка (до максимального лимита) под одним ключом,
	// чтобы инвалидация при новом решении касалась одного ключа
	cacheKey := leaderboardCacheKey(day)
	if s.cacheRepo != nil {
		var cached dto.LeaderboardResponse
		if err := s.cacheRepo.GetJSON(cacheKey, &cached); err == nil && cached.Day == day {
			return truncateLeaderboard(&cached, limit), nil
		}
	}

	rows, err := s.progressRepo.GetDayLeaderboard(day, maxLeaderboardLimit)
	if err != nil {
		log.Printf("[LeaderboardService] Ошибка при получении лидерборда day=%d: %v", day, err)
		return nil, err
	}

	entries := make([]*dto.LeaderboardEntryDTO, len(rows))
	for i, row := range rows {
		entries[i] = &dto.LeaderboardEntryDTO{
			ID:          row.UserID,
			Name:        row.Username,
			Email:       row.Email,
			CompletedAt: row.CompletedAt,
			Rank:        i + 1, // Место определяется позицией в отсортированной выборке
		}
	}

	response := &dto.LeaderboardResponse{
		Leaderboard: entries,
		Day:         day,
	}

	if s.cacheRepo != nil {
		if err := s.cacheRepo.SetJSON(cacheKey, response, leaderboardCacheTTL); err != nil {
			log.Printf("[LeaderboardService] Не удалось закешировать лидерборд day=%d: %v", day, err)
		}
	}

	return truncateLeaderboard(response, limit), nil
}

// truncateLeaderboard обрезает полную выборку до запрошенного лимита
func truncateLeaderboard(full *dto.LeaderboardResponse, limit int) *dto.LeaderboardResponse {
	if len(full.Leaderboard) <= limit {
		return full
	}
	return &dto.LeaderboardResponse{
		Leaderboard: full.Leaderboard[:limit],
		Day:         full.Day,
	}
}

// ExportDayLeaderboard возвращает полный лидерборд дня для выгрузки админкой
func (s *LeaderboardService) ExportDayLeaderboard(day int) ([]repository.LeaderboardRow, error) {
	return s.progressRepo.GetDayLeaderboard(day, exportLimit)
}

// leaderboardCacheKey — ключ кеша лидерборда дня.
// Удаляется при каждом новом решении дня, иначе истекает по TTL.
func leaderboardCacheKey(day int) string {
	return fmt.Sprintf("leaderboard:day:%d", day)
}
