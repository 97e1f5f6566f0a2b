package repository

import (
	"github.com/yourusername/hunt-api/internal/domain/entity"
)

// QuestionRepository определяет методы для работы с загадками дней
type QuestionRepository interface {
	Create(question *entity.Question) error
	CreateBatch(questions []entity.Question) error
	GetByDay(day int) (*entity.Question, error)
	List() ([]entity.Question, error)
}
