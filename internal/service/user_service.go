package service

import (
	"fmt"
	"log"
	"time"

	"github.com/yourusername/hunt-api/internal/domain/repository"
	"github.com/yourusername/hunt-api/internal/handler/dto"
	"github.com/yourusername/hunt-api/internal/service/gamerules"
)

// UserService предоставляет методы для работы с пользователями
type UserService struct {
	userRepo     repository.UserRepository
	progressRepo repository.ProgressRepository
	rules        *gamerules.Config

	// now подменяется в тестах
	now func() time.Time
}

// NewUserService создает новый сервис пользователей
func NewUserService(userRepo repository.UserRepository, progressRepo repository.ProgressRepository, rules *gamerules.Config) *UserService {
	return &UserService{
		userRepo:     userRepo,
		progressRepo: progressRepo,
		rules:        rules,
		now:          time.Now,
	}
}

// GetProfile возвращает профиль пользователя
func (s *UserService) GetProfile(userID uint) (*dto.UserDTO, error) {
	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		return nil, err
	}
	return dto.NewUserDTO(user), nil
}

// GetProgress возвращает прогресс пользователя: текущий день кампании
// и карту решённых дней с ключами вида "day<N>".
func (s *UserService) GetProgress(userID uint) (*dto.ProgressResponse, error) {
	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		return nil, err
	}

	completions, err := s.progressRepo.GetCompletions(userID)
	if err != nil {
		log.Printf("[UserService] Ошибка при получении решений user=%d: %v", userID, err)
		return nil, err
	}

	completed := make(map[string]dto.CompletionDTO, len(completions))
	for _, c := range completions {
		completed[fmt.Sprintf("day%d", c.Day)] = dto.CompletionDTO{
			Done:        true,
			CompletedAt: c.CompletedAt,
		}
	}

	return &dto.ProgressResponse{
		User:       dto.NewUserDTO(user),
		CurrentDay: s.rules.CurrentDay(s.now()),
		TotalDays:  s.rules.TotalDays,
		Completed:  completed,
	}, nil
}
