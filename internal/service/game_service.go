package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/yourusername/hunt-api/internal/domain/entity"
	"github.com/yourusername/hunt-api/internal/domain/repository"
	"github.com/yourusername/hunt-api/internal/handler/dto"
	apperrors "github.com/yourusername/hunt-api/internal/pkg/errors"
	"github.com/yourusername/hunt-api/internal/service/gamerules"
)

// CompletionBroadcaster уведомляет подписчиков о новом решении дня.
// Реализуется WebSocket-хабом; может быть nil.
type CompletionBroadcaster interface {
	BroadcastCompletion(day int, userID uint, username string, completedAt time.Time)
}

const questionCacheTTL = 10 * time.Minute

// GameService реализует игровой цикл: выдачу загадки дня и приём ответов
type GameService struct {
	questionRepo repository.QuestionRepository
	progressRepo repository.ProgressRepository
	userRepo     repository.UserRepository
	cacheRepo    repository.CacheRepository
	rules        *gamerules.Config
	broadcaster  CompletionBroadcaster
	emailService EmailService

	// now подменяется в тестах
	now func() time.Time
}

// NewGameService создает новый игровой сервис
func NewGameService(
	questionRepo repository.QuestionRepository,
	progressRepo repository.ProgressRepository,
	userRepo repository.UserRepository,
	cacheRepo repository.CacheRepository,
	rules *gamerules.Config,
	broadcaster CompletionBroadcaster,
	emailService EmailService,
) *GameService {
	if emailService == nil {
		emailService = &NoopEmailService{}
	}
	return &GameService{
		questionRepo: questionRepo,
		progressRepo: progressRepo,
		userRepo:     userRepo,
		cacheRepo:    cacheRepo,
		rules:        rules,
		broadcaster:  broadcaster,
		emailService: emailService,
		now:          time.Now,
	}
}

// GetDailyQuestion возвращает загадку дня вместе с состоянием доступа и кулдауна.
// day == 0 означает текущий день кампании.
func (s *GameService) GetDailyQuestion(userID uint, day int) (*dto.PlayResponse, error) {
	now := s.now()
	currentDay := s.rules.CurrentDay(now)
	if day == 0 {
		day = currentDay
	}
	if day < 1 || day > s.rules.TotalDays {
		return nil, fmt.Errorf("%w: day must be between 1 and %d", apperrors.ErrValidation, s.rules.TotalDays)
	}

	question, err := s.loadQuestion(day)
	if err != nil {
		return nil, err
	}

	prevCompleted, err := s.isCompleted(userID, day-1)
	if err != nil {
		return nil, err
	}
	access := s.rules.EvaluateAccess(day, currentDay, prevCompleted)

	attempts, cooldownUntil, err := s.loadAttemptState(userID, day)
	if err != nil {
		return nil, err
	}
	cooldown := s.rules.EvaluateCooldown(attempts, cooldownUntil, now)
	if cooldown.NeedsReset {
		// Ленивый сброс: при ошибке записи следующий запрос повторит его
		if err := s.progressRepo.ResetAttempts(userID, day); err != nil {
			log.Printf("[GameService] Не удалось сбросить счетчик попыток user=%d day=%d: %v", userID, day, err)
		}
	}

	completed, err := s.isCompleted(userID, day)
	if err != nil {
		return nil, err
	}

	resp := &dto.PlayResponse{
		ID:                     question.ID,
		Day:                    question.Day,
		Question:               question.Text,
		Hint:                   question.Hint,
		Difficulty:             question.Difficulty,
		Image:                  question.ImageURL,
		AttemptsBeforeCooldown: s.rules.AttemptsBeforeCooldown,
		AttemptsInPeriod:       cooldown.Attempts,
		CooldownSeconds:        cooldown.RemainingSeconds,
		IsUnlocked:             access.Unlocked,
		IsCatchUp:              access.CatchUp,
		IsCompleted:            completed,
		LockReason:             access.Reason,
		DateLockedUntil:        access.LockedUntil,
	}

	// Текст загадки не выдается по заблокированному дню
	if !access.Unlocked {
		resp.Question = ""
		resp.Hint = ""
		resp.Image = ""
	}

	return resp, nil
}

// SubmitAnswer принимает ответ пользователя на загадку дня.
// Переходы состояния: в кулдауне — отказ без проверки ответа; уже решён —
// идемпотентный успех без записи; иначе счетчик попыток увеличивается,
// при достижении порога открывается кулдаун, при верном ответе день
// фиксируется как решённый с серверным timestamp.
func (s *GameService) SubmitAnswer(userID uint, day int, answer string) (*dto.SubmitResponse, error) {
	now := s.now()
	currentDay := s.rules.CurrentDay(now)
	if day < 1 || day > s.rules.TotalDays {
		return nil, fmt.Errorf("%w: day must be between 1 and %d", apperrors.ErrValidation, s.rules.TotalDays)
	}

	question, err := s.loadQuestion(day)
	if err != nil {
		return nil, err
	}
	if !question.HasAnswer() {
		// Нарушение целостности справочных данных
		return nil, fmt.Errorf("%w: question for day %d has no stored answer", apperrors.ErrDataIntegrity, day)
	}

	prevCompleted, err := s.isCompleted(userID, day-1)
	if err != nil {
		return nil, err
	}
	access := s.rules.EvaluateAccess(day, currentDay, prevCompleted)
	if !access.Unlocked {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrForbidden, access.Reason)
	}

	// Кулдаун проверяется до ответа: внутри окна ответ не проверяется вовсе
	attempts, cooldownUntil, err := s.loadAttemptState(userID, day)
	if err != nil {
		return nil, err
	}
	cooldown := s.rules.EvaluateCooldown(attempts, cooldownUntil, now)
	if cooldown.Active {
		return &dto.SubmitResponse{
			Result:                 fmt.Sprintf("Too many attempts. Try again in %d seconds.", cooldown.RemainingSeconds),
			Correct:                false,
			CooldownSeconds:        cooldown.RemainingSeconds,
			AttemptsBeforeCooldown: s.rules.AttemptsBeforeCooldown,
			AttemptsInPeriod:       cooldown.Attempts,
		}, nil
	}
	if cooldown.NeedsReset {
		if err := s.progressRepo.ResetAttempts(userID, day); err != nil {
			return nil, err
		}
	}

	// Повторный сабмит по решённому дню не трогает сохранённый timestamp
	alreadyCompleted, err := s.isCompleted(userID, day)
	if err != nil {
		return nil, err
	}
	if alreadyCompleted {
		return &dto.SubmitResponse{
			Result:  "Day already completed.",
			Correct: true,
		}, nil
	}

	newCount, err := s.progressRepo.IncrementAttempts(userID, day)
	if err != nil {
		return nil, err
	}

	cooldownOpened := 0
	if newCount >= s.rules.AttemptsBeforeCooldown {
		until := now.Add(s.rules.CooldownDuration)
		if err := s.progressRepo.OpenCooldown(userID, day, until); err != nil {
			return nil, err
		}
		cooldownOpened = int(s.rules.CooldownDuration / time.Second)
	}

	if !gamerules.CheckAnswer(answer, question.Answer) {
		return &dto.SubmitResponse{
			Result:                 "Wrong answer, try again.",
			Correct:                false,
			CooldownSeconds:        cooldownOpened,
			AttemptsBeforeCooldown: s.rules.AttemptsBeforeCooldown,
			AttemptsInPeriod:       newCount,
		}, nil
	}

	if err := s.recordCompletion(userID, day, now); err != nil {
		return nil, err
	}

	return &dto.SubmitResponse{
		Result:                 "Correct!",
		Correct:                true,
		CooldownSeconds:        cooldownOpened,
		AttemptsBeforeCooldown: s.rules.AttemptsBeforeCooldown,
		AttemptsInPeriod:       newCount,
	}, nil
}

// recordCompletion фиксирует решение дня и выполняет побочные эффекты
// (счетчик пользователя, инвалидация кеша, уведомление, письмо за финальный день).
func (s *GameService) recordCompletion(userID uint, day int, completedAt time.Time) error {
	created, err := s.progressRepo.CreateCompletion(&entity.DayCompletion{
		UserID:      userID,
		Day:         day,
		CompletedAt: completedAt,
	})
	if err != nil {
		return err
	}
	if !created {
		// Конкурентный сабмит успел первым; timestamp первого решения сохранён
		return nil
	}

	if err := s.userRepo.IncrementDaysCompleted(userID); err != nil {
		log.Printf("[GameService] Не удалось обновить счетчик решённых дней user=%d: %v", userID, err)
	}

	if s.cacheRepo != nil {
		if err := s.cacheRepo.Delete(leaderboardCacheKey(day)); err != nil {
			log.Printf("[GameService] Не удалось инвалидировать кеш лидерборда day=%d: %v", day, err)
		}
	}

	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		log.Printf("[GameService] Не удалось загрузить пользователя %d после решения: %v", userID, err)
		return nil
	}

	if s.broadcaster != nil {
		s.broadcaster.BroadcastCompletion(day, user.ID, user.Username, completedAt)
	}

	if day == s.rules.TotalDays {
		go func(email, username string) {
			if err := s.emailService.SendCampaignComplete(context.Background(), email, username); err != nil {
				log.Printf("[GameService] Не удалось отправить поздравительное письмо to=%s: %v", email, err)
			}
		}(user.Email, user.Username)
	}

	return nil
}

// cachedQuestion дублирует entity.Question с сериализуемым ответом:
// json-тег entity скрывает ответ от клиента, но кеш обязан его сохранять.
type cachedQuestion struct {
	ID         uint      `json:"id"`
	Day        int       `json:"day"`
	Text       string    `json:"text"`
	Hint       string    `json:"hint"`
	Answer     string    `json:"answer"`
	Difficulty int       `json:"difficulty"`
	ImageURL   string    `json:"image_url"`
	UnlocksAt  time.Time `json:"unlocks_at"`
}

// loadQuestion возвращает загадку дня, используя кеш при наличии
func (s *GameService) loadQuestion(day int) (*entity.Question, error) {
	key := questionCacheKey(day)
	if s.cacheRepo != nil {
		var cached cachedQuestion
		if err := s.cacheRepo.GetJSON(key, &cached); err == nil && cached.ID != 0 {
			return &entity.Question{
				ID:         cached.ID,
				Day:        cached.Day,
				Text:       cached.Text,
				Hint:       cached.Hint,
				Answer:     cached.Answer,
				Difficulty: cached.Difficulty,
				ImageURL:   cached.ImageURL,
				UnlocksAt:  cached.UnlocksAt,
			}, nil
		}
	}

	question, err := s.questionRepo.GetByDay(day)
	if err != nil {
		return nil, err
	}

	if s.cacheRepo != nil {
		toCache := cachedQuestion{
			ID:         question.ID,
			Day:        question.Day,
			Text:       question.Text,
			Hint:       question.Hint,
			Answer:     question.Answer,
			Difficulty: question.Difficulty,
			ImageURL:   question.ImageURL,
			UnlocksAt:  question.UnlocksAt,
		}
		if err := s.cacheRepo.SetJSON(key, toCache, questionCacheTTL); err != nil {
			log.Printf("[GameService] Не удалось закешировать загадку day=%d: %v", day, err)
		}
	}
	return question, nil
}

// isCompleted проверяет, решён ли день пользователем. Для day < 1 всегда true.
func (s *GameService) isCompleted(userID uint, day int) (bool, error) {
	if day < 1 {
		return true, nil
	}
	_, err := s.progressRepo.GetCompletion(userID, day)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// loadAttemptState возвращает сохранённые поля счетчика попыток (нули, если записи нет)
func (s *GameService) loadAttemptState(userID uint, day int) (int, *time.Time, error) {
	attempt, err := s.progressRepo.GetAttempt(userID, day)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return 0, nil, nil
		}
		return 0, nil, err
	}
	return attempt.AttemptsInPeriod, attempt.CooldownUntil, nil
}

func questionCacheKey(day int) string {
	return fmt.Sprintf("question:day:%d", day)
}
