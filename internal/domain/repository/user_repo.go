package repository

import (
	"github.com/yourusername/hunt-api/internal/domain/entity"
)

// UserRepository определяет методы для работы с пользователями
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id uint) (*entity.User, error)
	GetByEmail(email string) (*entity.User, error)
	GetByUsername(username string) (*entity.User, error)
	Update(user *entity.User) error
	// IncrementDaysCompleted атомарно увеличивает счетчик решённых дней
	IncrementDaysCompleted(userID uint) error
	List(limit, offset int) ([]entity.User, error)
}
