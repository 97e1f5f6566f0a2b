package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/yourusername/hunt-api/internal/domain/entity"
	"github.com/yourusername/hunt-api/internal/domain/repository"
	apperrors "github.com/yourusername/hunt-api/internal/pkg/errors"
	"github.com/yourusername/hunt-api/internal/service/gamerules"
)

// ============================================================================
// Моки для тестирования GameService
// ============================================================================

// MockUserRepository реализует repository.UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(user *entity.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUserRepository) GetByID(id uint) (*entity.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockUserRepository) GetByEmail(email string) (*entity.User, error) {
	args := m.Called(email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockUserRepository) GetByUsername(username string) (*entity.User, error) {
	args := m.Called(username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockUserRepository) Update(user *entity.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUserRepository) IncrementDaysCompleted(userID uint) error {
	args := m.Called(userID)
	return args.Error(0)
}

func (m *MockUserRepository) List(limit, offset int) ([]entity.User, error) {
	args := m.Called(limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.User), args.Error(1)
}

// MockQuestionRepository реализует repository.QuestionRepository
type MockQuestionRepository struct {
	mock.Mock
}

func (m *MockQuestionRepository) Create(question *entity.Question) error {
	args := m.Called(question)
	return args.Error(0)
}

func (m *MockQuestionRepository) CreateBatch(questions []entity.Question) error {
	args := m.Called(questions)
	return args.Error(0)
}

func (m *MockQuestionRepository) GetByDay(day int) (*entity.Question, error) {
	args := m.Called(day)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Question), args.Error(1)
}

func (m *MockQuestionRepository) List() ([]entity.Question, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Question), args.Error(1)
}

// MockProgressRepository реализует repository.ProgressRepository
type MockProgressRepository struct {
	mock.Mock
}

func (m *MockProgressRepository) GetCompletion(userID uint, day int) (*entity.DayCompletion, error) {
	args := m.Called(userID, day)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.DayCompletion), args.Error(1)
}

func (m *MockProgressRepository) GetCompletions(userID uint) ([]entity.DayCompletion, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.DayCompletion), args.Error(1)
}

func (m *MockProgressRepository) CreateCompletion(completion *entity.DayCompletion) (bool, error) {
	args := m.Called(completion)
	return args.Bool(0), args.Error(1)
}

func (m *MockProgressRepository) GetAttempt(userID uint, day int) (*entity.DayAttempt, error) {
	args := m.Called(userID, day)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.DayAttempt), args.Error(1)
}

func (m *MockProgressRepository) IncrementAttempts(userID uint, day int) (int, error) {
	args := m.Called(userID, day)
	return args.Int(0), args.Error(1)
}

func (m *MockProgressRepository) OpenCooldown(userID uint, day int, until time.Time) error {
	args := m.Called(userID, day, until)
	return args.Error(0)
}

func (m *MockProgressRepository) ResetAttempts(userID uint, day int) error {
	args := m.Called(userID, day)
	return args.Error(0)
}

func (m *MockProgressRepository) GetDayLeaderboard(day int, limit int) ([]repository.LeaderboardRow, error) {
	args := m.Called(day, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]repository.LeaderboardRow), args.Error(1)
}

// MockCacheRepository реализует repository.CacheRepository
type MockCacheRepository struct {
	mock.Mock
}

func (m *MockCacheRepository) Set(key string, value interface{}, expiration time.Duration) error {
	args := m.Called(key, value, expiration)
	return args.Error(0)
}

func (m *MockCacheRepository) Get(key string) (string, error) {
	args := m.Called(key)
	return args.String(0), args.Error(1)
}

func (m *MockCacheRepository) Delete(key string) error {
	args := m.Called(key)
	return args.Error(0)
}

func (m *MockCacheRepository) SetJSON(key string, value interface{}, expiration time.Duration) error {
	args := m.Called(key, value, expiration)
	return args.Error(0)
}

func (m *MockCacheRepository) GetJSON(key string, dest interface{}) error {
	args := m.Called(key, dest)
	return args.Error(0)
}

func (m *MockCacheRepository) Exists(key string) (bool, error) {
	args := m.Called(key)
	return args.Bool(0), args.Error(1)
}

// MockBroadcaster реализует CompletionBroadcaster
type MockBroadcaster struct {
	mock.Mock
}

func (m *MockBroadcaster) BroadcastCompletion(day int, userID uint, username string, completedAt time.Time) {
	m.Called(day, userID, username, completedAt)
}

// ============================================================================
// createTestGameService создаёт GameService для тестирования с моками
// ============================================================================

// Фиксированное "сейчас": пятый день кампании
var (
	testStartDate = time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	testNow       = testStartDate.AddDate(0, 0, 4).Add(12 * time.Hour)
)

func testRules() *gamerules.Config {
	return &gamerules.Config{
		TotalDays:              10,
		StartDate:              testStartDate,
		AttemptsBeforeCooldown: 10,
		CooldownDuration:       30 * time.Second,
	}
}

func createTestGameService(
	questionRepo *MockQuestionRepository,
	progressRepo *MockProgressRepository,
	userRepo *MockUserRepository,
	cacheRepo repository.CacheRepository,
	broadcaster CompletionBroadcaster,
) *GameService {
	return &GameService{
		questionRepo: questionRepo,
		progressRepo: progressRepo,
		userRepo:     userRepo,
		cacheRepo:    cacheRepo,
		rules:        testRules(),
		broadcaster:  broadcaster,
		emailService: &NoopEmailService{},
		now:          func() time.Time { return testNow },
	}
}

func testQuestion(day int) *entity.Question {
	return &entity.Question{
		ID:         uint(day),
		Day:        day,
		Text:       "Город огней ждёт вас у реки.",
		Hint:       "Французская столица",
		Answer:     "Париж",
		Difficulty: 2,
		UnlocksAt:  testStartDate.AddDate(0, 0, day-1),
	}
}

// ============================================================================
// Тесты для SubmitAnswer
// ============================================================================

func TestGameService_SubmitAnswer_CorrectAnswerNormalized(t *testing.T) {
	// Arrange
	mockQuestionRepo := new(MockQuestionRepository)
	mockProgressRepo := new(MockProgressRepository)
	mockUserRepo := new(MockUserRepository)
	mockBroadcaster := new(MockBroadcaster)

	mockQuestionRepo.On("GetByDay", 1).Return(testQuestion(1), nil)
	mockProgressRepo.On("GetAttempt", uint(7), 1).Return(nil, apperrors.ErrNotFound)
	mockProgressRepo.On("GetCompletion", uint(7), 1).Return(nil, apperrors.ErrNotFound)
	mockProgressRepo.On("IncrementAttempts", uint(7), 1).Return(1, nil)
	mockProgressRepo.On("CreateCompletion", mock.AnythingOfType("*entity.DayCompletion")).Return(true, nil)
	mockUserRepo.On("IncrementDaysCompleted", uint(7)).Return(nil)
	mockUserRepo.On("GetByID", uint(7)).Return(&entity.User{ID: 7, Username: "hunter", Email: "hunter@example.com"}, nil)
	mockBroadcaster.On("BroadcastCompletion", 1, uint(7), "hunter", testNow).Return()

	gameService := createTestGameService(mockQuestionRepo, mockProgressRepo, mockUserRepo, nil, mockBroadcaster)

	// Act: ответ с пробелами и другим регистром должен совпасть
	resp, err := gameService.SubmitAnswer(7, 1, "  пАрИж  ")

	// Assert
	require.NoError(t, err)
	assert.True(t, resp.Correct, "Нормализованный ответ должен быть принят")
	assert.Equal(t, "Correct!", resp.Result)
	assert.Equal(t, 1, resp.AttemptsInPeriod)
	assert.Zero(t, resp.CooldownSeconds, "Кулдаун не должен открыться на первой попытке")
	mockProgressRepo.AssertExpectations(t)
	mockBroadcaster.AssertExpectations(t)
}

func TestGameService_SubmitAnswer_WrongAnswerIncrementsCounter(t *testing.T) {
	// Arrange
	mockQuestionRepo := new(MockQuestionRepository)
	mockProgressRepo := new(MockProgressRepository)
	mockUserRepo := new(MockUserRepository)

	mockQuestionRepo.On("GetByDay", 1).Return(testQuestion(1), nil)
	mockProgressRepo.On("GetAttempt", uint(7), 1).Return(nil, apperrors.ErrNotFound)
	mockProgressRepo.On("GetCompletion", uint(7), 1).Return(nil, apperrors.ErrNotFound)
	mockProgressRepo.On("IncrementAttempts", uint(7), 1).Return(3, nil)

	gameService := createTestGameService(mockQuestionRepo, mockProgressRepo, mockUserRepo, nil, nil)

	// Act
	resp, err := gameService.SubmitAnswer(7, 1, "Лондон")

	// Assert
	require.NoError(t, err)
	assert.False(t, resp.Correct)
	assert.Equal(t, "Wrong answer, try again.", resp.Result)
	assert.Equal(t, 3, resp.AttemptsInPeriod)
	mockProgressRepo.AssertNotCalled(t, "CreateCompletion", mock.Anything)
	mockProgressRepo.AssertNotCalled(t, "OpenCooldown", mock.Anything, mock.Anything, mock.Anything)
	mockProgressRepo.AssertExpectations(t)
}

func TestGameService_SubmitAnswer_ThresholdOpensCooldown(t *testing.T) {
	// Arrange
	mockQuestionRepo := new(MockQuestionRepository)
	mockProgressRepo := new(MockProgressRepository)
	mockUserRepo := new(MockUserRepository)

	mockQuestionRepo.On("GetByDay", 1).Return(testQuestion(1), nil)
	mockProgressRepo.On("GetAttempt", uint(7), 1).
		Return(&entity.DayAttempt{UserID: 7, Day: 1, AttemptsInPeriod: 9}, nil)
	mockProgressRepo.On("GetCompletion", uint(7), 1).Return(nil, apperrors.ErrNotFound)
	mockProgressRepo.On("IncrementAttempts", uint(7), 1).Return(10, nil)
	mockProgressRepo.On("OpenCooldown", uint(7), 1, testNow.Add(30*time.Second)).Return(nil)

	gameService := createTestGameService(mockQuestionRepo, mockProgressRepo, mockUserRepo, nil, nil)

	// Act: десятая попытка включает кулдаун
	resp, err := gameService.SubmitAnswer(7, 1, "Лондон")

	// Assert
	require.NoError(t, err)
	assert.False(t, resp.Correct)
	assert.Equal(t, 30, resp.CooldownSeconds, "Десятая попытка должна открыть 30-секундный кулдаун")
	assert.Equal(t, 10, resp.AttemptsInPeriod)
	mockProgressRepo.AssertExpectations(t)
}

func TestGameService_SubmitAnswer_CooldownRejectsWithoutCheck(t *testing.T) {
	// Arrange
	mockQuestionRepo := new(MockQuestionRepository)
	mockProgressRepo := new(MockProgressRepository)
	mockUserRepo := new(MockUserRepository)

	until := testNow.Add(20 * time.Second)
	mockQuestionRepo.On("GetByDay", 1).Return(testQuestion(1), nil)
	mockProgressRepo.On("GetAttempt", uint(7), 1).
		Return(&entity.DayAttempt{UserID: 7, Day: 1, AttemptsInPeriod: 10, CooldownUntil: &until}, nil)

	gameService := createTestGameService(mockQuestionRepo, mockProgressRepo, mockUserRepo, nil, nil)

	// Act: верный ответ внутри кулдауна всё равно отклоняется
	resp, err := gameService.SubmitAnswer(7, 1, "Париж")

	// Assert
	require.NoError(t, err)
	assert.False(t, resp.Correct, "Внутри кулдауна ответ не проверяется")
	assert.Equal(t, 20, resp.CooldownSeconds)
	assert.Contains(t, resp.Result, "Too many attempts")
	mockProgressRepo.AssertNotCalled(t, "IncrementAttempts", mock.Anything, mock.Anything)
	mockProgressRepo.AssertNotCalled(t, "CreateCompletion", mock.Anything)
	mockProgressRepo.AssertExpectations(t)
}

func TestGameService_SubmitAnswer_ExpiredCooldownResetsCounter(t *testing.T) {
	// Arrange
	mockQuestionRepo := new(MockQuestionRepository)
	mockProgressRepo := new(MockProgressRepository)
	mockUserRepo := new(MockUserRepository)

	expired := testNow.Add(-1 * time.Second)
	mockQuestionRepo.On("GetByDay", 1).Return(testQuestion(1), nil)
	mockProgressRepo.On("GetAttempt", uint(7), 1).
		Return(&entity.DayAttempt{UserID: 7, Day: 1, AttemptsInPeriod: 10, CooldownUntil: &expired}, nil)
	mockProgressRepo.On("ResetAttempts", uint(7), 1).Return(nil)
	mockProgressRepo.On("GetCompletion", uint(7), 1).Return(nil, apperrors.ErrNotFound)
	mockProgressRepo.On("IncrementAttempts", uint(7), 1).Return(1, nil)

	gameService := createTestGameService(mockQuestionRepo, mockProgressRepo, mockUserRepo, nil, nil)

	// Act: после истечения кулдауна счетчик обнуляется и попытки продолжаются
	resp, err := gameService.SubmitAnswer(7, 1, "Лондон")

	// Assert
	require.NoError(t, err)
	assert.False(t, resp.Correct)
	assert.Equal(t, 1, resp.AttemptsInPeriod, "Счетчик должен начаться заново после сброса")
	mockProgressRepo.AssertExpectations(t)
}

func TestGameService_SubmitAnswer_AlreadyCompletedIsIdempotent(t *testing.T) {
	// Arrange
	mockQuestionRepo := new(MockQuestionRepository)
	mockProgressRepo := new(MockProgressRepository)
	mockUserRepo := new(MockUserRepository)

	mockQuestionRepo.On("GetByDay", 1).Return(testQuestion(1), nil)
	mockProgressRepo.On("GetAttempt", uint(7), 1).Return(nil, apperrors.ErrNotFound)
	mockProgressRepo.On("GetCompletion", uint(7), 1).
		Return(&entity.DayCompletion{UserID: 7, Day: 1, CompletedAt: testNow.Add(-1 * time.Hour)}, nil)

	gameService := createTestGameService(mockQuestionRepo, mockProgressRepo, mockUserRepo, nil, nil)

	// Act
	resp, err := gameService.SubmitAnswer(7, 1, "что угодно")

	// Assert
	require.NoError(t, err)
	assert.True(t, resp.Correct)
	assert.Equal(t, "Day already completed.", resp.Result)
	mockProgressRepo.AssertNotCalled(t, "IncrementAttempts", mock.Anything, mock.Anything)
	mockProgressRepo.AssertNotCalled(t, "CreateCompletion", mock.Anything)
	mockProgressRepo.AssertExpectations(t)
}

func TestGameService_SubmitAnswer_FutureDayForbidden(t *testing.T) {
	// Arrange: текущий день кампании — пятый
	mockQuestionRepo := new(MockQuestionRepository)
	mockProgressRepo := new(MockProgressRepository)
	mockUserRepo := new(MockUserRepository)

	mockQuestionRepo.On("GetByDay", 6).Return(testQuestion(6), nil)
	mockProgressRepo.On("GetCompletion", uint(7), 5).Return(nil, apperrors.ErrNotFound)

	gameService := createTestGameService(mockQuestionRepo, mockProgressRepo, mockUserRepo, nil, nil)

	// Act
	resp, err := gameService.SubmitAnswer(7, 6, "Париж")

	// Assert
	require.Error(t, err)
	assert.Nil(t, resp)
	assert.ErrorIs(t, err, apperrors.ErrForbidden)
	mockProgressRepo.AssertNotCalled(t, "IncrementAttempts", mock.Anything, mock.Anything)
}

func TestGameService_SubmitAnswer_DayOutOfRange(t *testing.T) {
	gameService := createTestGameService(new(MockQuestionRepository), new(MockProgressRepository), new(MockUserRepository), nil, nil)

	testCases := []struct {
		name string
		day  int
	}{
		{"День ноль", 0},
		{"Отрицательный день", -1},
		{"День за пределами кампании", 11},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			resp, err := gameService.SubmitAnswer(7, tc.day, "Париж")
			require.Error(t, err)
			assert.Nil(t, resp)
			assert.ErrorIs(t, err, apperrors.ErrValidation)
		})
	}
}

func TestGameService_SubmitAnswer_MissingAnswerIsIntegrityError(t *testing.T) {
	// Arrange: загадка без сохранённого ответа
	mockQuestionRepo := new(MockQuestionRepository)
	broken := testQuestion(1)
	broken.Answer = "   "
	mockQuestionRepo.On("GetByDay", 1).Return(broken, nil)

	gameService := createTestGameService(mockQuestionRepo, new(MockProgressRepository), new(MockUserRepository), nil, nil)

	// Act
	resp, err := gameService.SubmitAnswer(7, 1, "Париж")

	// Assert
	require.Error(t, err)
	assert.Nil(t, resp)
	assert.ErrorIs(t, err, apperrors.ErrDataIntegrity)
}

func TestGameService_SubmitAnswer_ConcurrentDuplicateKeepsFirstTimestamp(t *testing.T) {
	// Arrange: конкурентный сабмит успел вставить запись первым
	mockQuestionRepo := new(MockQuestionRepository)
	mockProgressRepo := new(MockProgressRepository)
	mockUserRepo := new(MockUserRepository)
	mockBroadcaster := new(MockBroadcaster)

	mockQuestionRepo.On("GetByDay", 1).Return(testQuestion(1), nil)
	mockProgressRepo.On("GetAttempt", uint(7), 1).Return(nil, apperrors.ErrNotFound)
	mockProgressRepo.On("GetCompletion", uint(7), 1).Return(nil, apperrors.ErrNotFound)
	mockProgressRepo.On("IncrementAttempts", uint(7), 1).Return(1, nil)
	mockProgressRepo.On("CreateCompletion", mock.AnythingOfType("*entity.DayCompletion")).Return(false, nil)

	gameService := createTestGameService(mockQuestionRepo, mockProgressRepo, mockUserRepo, nil, mockBroadcaster)

	// Act
	resp, err := gameService.SubmitAnswer(7, 1, "Париж")

	// Assert: ответ успешный, но побочные эффекты не повторяются
	require.NoError(t, err)
	assert.True(t, resp.Correct)
	mockUserRepo.AssertNotCalled(t, "IncrementDaysCompleted", mock.Anything)
	mockBroadcaster.AssertNotCalled(t, "BroadcastCompletion", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	mockProgressRepo.AssertExpectations(t)
}

func TestGameService_SubmitAnswer_CompletionInvalidatesLeaderboardCache(t *testing.T) {
	// Arrange
	mockQuestionRepo := new(MockQuestionRepository)
	mockProgressRepo := new(MockProgressRepository)
	mockUserRepo := new(MockUserRepository)
	mockCacheRepo := new(MockCacheRepository)

	mockCacheRepo.On("GetJSON", "question:day:1", mock.Anything).Return(apperrors.ErrNotFound)
	mockCacheRepo.On("SetJSON", "question:day:1", mock.Anything, questionCacheTTL).Return(nil)
	mockCacheRepo.On("Delete", "leaderboard:day:1").Return(nil)
	mockQuestionRepo.On("GetByDay", 1).Return(testQuestion(1), nil)
	mockProgressRepo.On("GetAttempt", uint(7), 1).Return(nil, apperrors.ErrNotFound)
	mockProgressRepo.On("GetCompletion", uint(7), 1).Return(nil, apperrors.ErrNotFound)
	mockProgressRepo.On("IncrementAttempts", uint(7), 1).Return(1, nil)
	mockProgressRepo.On("CreateCompletion", mock.AnythingOfType("*entity.DayCompletion")).Return(true, nil)
	mockUserRepo.On("IncrementDaysCompleted", uint(7)).Return(nil)
	mockUserRepo.On("GetByID", uint(7)).Return(&entity.User{ID: 7, Username: "hunter"}, nil)

	gameService := createTestGameService(mockQuestionRepo, mockProgressRepo, mockUserRepo, mockCacheRepo, nil)

	// Act
	resp, err := gameService.SubmitAnswer(7, 1, "Париж")

	// Assert
	require.NoError(t, err)
	assert.True(t, resp.Correct)
	mockCacheRepo.AssertCalled(t, "Delete", "leaderboard:day:1")
	mockCacheRepo.AssertExpectations(t)
}

// ============================================================================
// Тесты для GetDailyQuestion
// ============================================================================

func TestGameService_GetDailyQuestion_DefaultsToCurrentDay(t *testing.T) {
	// Arrange: текущий день — пятый, предыдущий решён
	mockQuestionRepo := new(MockQuestionRepository)
	mockProgressRepo := new(MockProgressRepository)
	mockUserRepo := new(MockUserRepository)

	mockQuestionRepo.On("GetByDay", 5).Return(testQuestion(5), nil)
	mockProgressRepo.On("GetCompletion", uint(7), 4).
		Return(&entity.DayCompletion{UserID: 7, Day: 4, CompletedAt: testNow.Add(-24 * time.Hour)}, nil)
	mockProgressRepo.On("GetAttempt", uint(7), 5).Return(nil, apperrors.ErrNotFound)
	mockProgressRepo.On("GetCompletion", uint(7), 5).Return(nil, apperrors.ErrNotFound)

	gameService := createTestGameService(mockQuestionRepo, mockProgressRepo, mockUserRepo, nil, nil)

	// Act: day == 0 означает текущий день
	resp, err := gameService.GetDailyQuestion(7, 0)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, 5, resp.Day)
	assert.True(t, resp.IsUnlocked)
	assert.False(t, resp.IsCatchUp)
	assert.NotEmpty(t, resp.Question)
	assert.Equal(t, 10, resp.AttemptsBeforeCooldown)
}

func TestGameService_GetDailyQuestion_CatchUpForSkippedDay(t *testing.T) {
	// Arrange: день 2 не решён, но текущий день — пятый
	mockQuestionRepo := new(MockQuestionRepository)
	mockProgressRepo := new(MockProgressRepository)
	mockUserRepo := new(MockUserRepository)

	mockQuestionRepo.On("GetByDay", 2).Return(testQuestion(2), nil)
	mockProgressRepo.On("GetCompletion", uint(7), 1).Return(nil, apperrors.ErrNotFound)
	mockProgressRepo.On("GetAttempt", uint(7), 2).Return(nil, apperrors.ErrNotFound)
	mockProgressRepo.On("GetCompletion", uint(7), 2).Return(nil, apperrors.ErrNotFound)

	gameService := createTestGameService(mockQuestionRepo, mockProgressRepo, mockUserRepo, nil, nil)

	// Act
	resp, err := gameService.GetDailyQuestion(7, 2)

	// Assert: прошедший день доступен в режиме догона
	require.NoError(t, err)
	assert.True(t, resp.IsUnlocked)
	assert.True(t, resp.IsCatchUp, "Пропущенный прошедший день открывается в режиме догона")
	assert.NotEmpty(t, resp.Question)
	assert.NotEmpty(t, resp.LockReason)
}

func TestGameService_GetDailyQuestion_FutureDayHidesText(t *testing.T) {
	// Arrange: седьмой день ещё не наступил
	mockQuestionRepo := new(MockQuestionRepository)
	mockProgressRepo := new(MockProgressRepository)
	mockUserRepo := new(MockUserRepository)

	mockQuestionRepo.On("GetByDay", 7).Return(testQuestion(7), nil)
	mockProgressRepo.On("GetCompletion", uint(7), 6).Return(nil, apperrors.ErrNotFound)
	mockProgressRepo.On("GetAttempt", uint(7), 7).Return(nil, apperrors.ErrNotFound)
	mockProgressRepo.On("GetCompletion", uint(7), 7).Return(nil, apperrors.ErrNotFound)

	gameService := createTestGameService(mockQuestionRepo, mockProgressRepo, mockUserRepo, nil, nil)

	// Act
	resp, err := gameService.GetDailyQuestion(7, 7)

	// Assert: текст будущей загадки не выдается
	require.NoError(t, err)
	assert.False(t, resp.IsUnlocked)
	assert.Empty(t, resp.Question, "Текст заблокированной загадки должен быть скрыт")
	assert.Empty(t, resp.Hint)
	assert.NotNil(t, resp.DateLockedUntil)
	assert.NotEmpty(t, resp.LockReason)
}

func TestGameService_GetDailyQuestion_CompletedDayFlag(t *testing.T) {
	// Arrange
	mockQuestionRepo := new(MockQuestionRepository)
	mockProgressRepo := new(MockProgressRepository)
	mockUserRepo := new(MockUserRepository)

	mockQuestionRepo.On("GetByDay", 3).Return(testQuestion(3), nil)
	mockProgressRepo.On("GetCompletion", uint(7), 2).
		Return(&entity.DayCompletion{UserID: 7, Day: 2}, nil)
	mockProgressRepo.On("GetAttempt", uint(7), 3).Return(nil, apperrors.ErrNotFound)
	mockProgressRepo.On("GetCompletion", uint(7), 3).
		Return(&entity.DayCompletion{UserID: 7, Day: 3, CompletedAt: testNow.Add(-2 * time.Hour)}, nil)

	gameService := createTestGameService(mockQuestionRepo, mockProgressRepo, mockUserRepo, nil, nil)

	// Act
	resp, err := gameService.GetDailyQuestion(7, 3)

	// Assert
	require.NoError(t, err)
	assert.True(t, resp.IsUnlocked)
	assert.True(t, resp.IsCompleted)
}
