package postgres

import (
	"errors"

	"gorm.io/gorm"

	"github.com/yourusername/hunt-api/internal/domain/entity"
	apperrors "github.com/yourusername/hunt-api/internal/pkg/errors"
)

// QuestionRepo реализует repository.QuestionRepository
type QuestionRepo struct {
	db *gorm.DB
}

// NewQuestionRepo создает новый репозиторий загадок
func NewQuestionRepo(db *gorm.DB) *QuestionRepo {
	return &QuestionRepo{db: db}
}

// Create создает новую загадку
func (r *QuestionRepo) Create(question *entity.Question) error {
	return r.db.Create(question).Error
}

// CreateBatch создает пакет загадок
func (r *QuestionRepo) CreateBatch(questions []entity.Question) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		// Устанавливаем кодировку UTF-8 внутри транзакции
		if err := tx.Exec("SET CLIENT_ENCODING TO 'UTF8'").Error; err != nil {
			return err
		}
		return tx.Create(&questions).Error
	})
}

// GetByDay возвращает загадку по номеру дня
func (r *QuestionRepo) GetByDay(day int) (*entity.Question, error) {
	var question entity.Question
	err := r.db.Where("day = ?", day).First(&question).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &question, nil
}

// List возвращает все загадки кампании в порядке дней
func (r *QuestionRepo) List() ([]entity.Question, error) {
	var questions []entity.Question
	err := r.db.Order("day").Find(&questions).Error
	if err != nil {
		return nil, err
	}
	return questions, nil
}
