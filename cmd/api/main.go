package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/yourusername/hunt-api/internal/config"
	"github.com/yourusername/hunt-api/internal/handler"
	"github.com/yourusername/hunt-api/internal/middleware"
	pgRepo "github.com/yourusername/hunt-api/internal/repository/postgres"
	redisRepo "github.com/yourusername/hunt-api/internal/repository/redis"
	"github.com/yourusername/hunt-api/internal/service"
	"github.com/yourusername/hunt-api/internal/service/gamerules"
	ws "github.com/yourusername/hunt-api/internal/websocket"
	"github.com/yourusername/hunt-api/pkg/auth"
	"github.com/yourusername/hunt-api/pkg/database"
)

func main() {
	// Загружаем конфигурацию
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config/config.yaml"
	}
	log.Printf("Загрузка конфигурации из %s", configPath)

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Printf("Failed to load config: %v", err)
		os.Exit(1)
	}

	// Инициализируем подключение к PostgreSQL
	db, err := database.NewPostgresDB(cfg.Database.PostgresConnectionString())
	if err != nil {
		log.Printf("Failed to connect to database: %v", err)
		os.Exit(1)
	}

	// Применяем миграции
	if err := database.MigrateDB(db); err != nil {
		log.Printf("Failed to migrate database: %v", err)
		os.Exit(1)
	}

	// Инициализируем подключение к Redis с использованием унифицированной конфигурации
	redisClient, err := database.NewUniversalRedisClient(cfg.Redis)
	if err != nil {
		log.Printf("Failed to connect to Redis: %v", err)
		os.Exit(1)
	}
	log.Println("Successfully connected to Redis")

	// Инициализируем репозитории
	userRepo := pgRepo.NewUserRepo(db)
	questionRepo := pgRepo.NewQuestionRepo(db)
	progressRepo := pgRepo.NewProgressRepo(db)

	cacheRepo, err := redisRepo.NewCacheRepo(redisClient)
	if err != nil {
		log.Printf("Failed to initialize CacheRepo: %v", err)
		os.Exit(1)
	}

	// --- Инициализация игровых правил ---
	rules := gamerules.DefaultConfig()
	startDate, err := cfg.Game.CampaignStart()
	if err != nil {
		log.Printf("Failed to parse campaign start date: %v", err)
		os.Exit(1)
	}
	rules.StartDate = startDate
	if cfg.Game.TotalDays > 0 {
		rules.TotalDays = cfg.Game.TotalDays
	}
	if cfg.Game.AttemptsBeforeCooldown > 0 {
		rules.AttemptsBeforeCooldown = cfg.Game.AttemptsBeforeCooldown
	}
	if cfg.Game.CooldownSeconds > 0 {
		rules.CooldownDuration = time.Duration(cfg.Game.CooldownSeconds) * time.Second
	}
	log.Printf("Кампания: старт %s, дней %d, попыток до кулдауна %d, кулдаун %s",
		rules.StartDate.Format("2006-01-02"), rules.TotalDays, rules.AttemptsBeforeCooldown, rules.CooldownDuration)

	// --- Инициализация JWTService ---
	jwtService, err := auth.NewJWTService(cfg.JWT.Secret, cfg.JWT.ExpirationHrs)
	if err != nil {
		log.Printf("Failed to initialize JWTService: %v", err)
		os.Exit(1)
	}

	// --- Инициализация email-сервиса ---
	var emailService service.EmailService = &service.NoopEmailService{}
	if cfg.Email.Enabled {
		resendService, errEmail := service.NewResendEmailService(cfg.Email.APIKey, cfg.Email.From)
		if errEmail != nil {
			log.Printf("Failed to initialize email service: %v. Письма отправляться не будут.", errEmail)
		} else {
			log.Println("Email-сервис инициализирован")
			emailService = resendService
		}
	}

	// Создаем контекст с отменой для корректного завершения работы горутин
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Инициализация WebSocket Hub
	wsHub := ws.NewHub()
	go wsHub.Run(ctx)

	// Инициализируем сервисы
	authService, err := service.NewAuthService(userRepo, jwtService, emailService)
	if err != nil {
		log.Printf("Failed to initialize AuthService: %v", err)
		os.Exit(1)
	}
	gameService := service.NewGameService(questionRepo, progressRepo, userRepo, cacheRepo, rules, wsHub, emailService)
	leaderboardService := service.NewLeaderboardService(progressRepo, cacheRepo)
	userService := service.NewUserService(userRepo, progressRepo, rules)

	// Инициализируем обработчики
	authHandler := handler.NewAuthHandler(authService)
	playHandler := handler.NewPlayHandler(gameService)
	leaderboardHandler := handler.NewLeaderboardHandler(leaderboardService)
	userHandler := handler.NewUserHandler(userService)
	wsHandler := handler.NewWSHandler(wsHub, jwtService, rules.TotalDays)

	// Инициализируем middleware
	authMiddleware := middleware.NewAuthMiddleware(jwtService)
	rateLimiter := middleware.NewRateLimiter(redisClient)

	isProduction := gin.Mode() == gin.ReleaseMode

	// Инициализируем роутер Gin
	router := gin.Default()

	// Настройка доверенных прокси для корректной работы c.ClientIP()
	if isProduction {
		// Production: не доверять прокси-заголовкам
		// Если используете load balancer, замените nil на []string{"IP_БАЛАНСИРОВЩИКА"}
		if err := router.SetTrustedProxies(nil); err != nil {
			log.Printf("Warning: failed to set trusted proxies: %v", err)
		}
	} else {
		// Development: доверяем localhost
		if err := router.SetTrustedProxies([]string{"127.0.0.1", "::1"}); err != nil {
			log.Printf("Warning: failed to set trusted proxies: %v", err)
		}
	}

	// Настройка CORS
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:5173", "http://localhost:3000"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Настраиваем маршруты API
	api := router.Group("/api")
	{
		// Аутентификация
		authGroup := api.Group("/auth")
		authGroup.Use(rateLimiter.Limit(middleware.StrictAuthRateLimitConfig()))
		{
			authGroup.POST("/register", authHandler.Register)
			authGroup.POST("/login", authHandler.Login)
		}

		// Игровой цикл
		play := api.Group("/play")
		play.Use(authMiddleware.RequireAuth())
		{
			play.GET("", playHandler.GetDailyQuestion)
			play.POST("/submit", playHandler.SubmitAnswer)
		}

		// Пользователи
		users := api.Group("/users")
		users.Use(authMiddleware.RequireAuth())
		{
			users.GET("/me", userHandler.GetMe)
			users.GET("/progress", userHandler.GetProgress)
		}

		// Лидерборд
		leaderboard := api.Group("/leaderboard")
		{
			dayGroup := leaderboard.Group("/:day")
			dayGroup.Use(middleware.ExtractDayParam("day", rules.TotalDays))
			{
				dayGroup.GET("", leaderboardHandler.GetDayLeaderboard)

				// Экспорт только для администраторов
				adminExport := dayGroup.Group("")
				adminExport.Use(authMiddleware.RequireAuth(), authMiddleware.AdminOnly())
				{
					adminExport.GET("/export", leaderboardHandler.ExportDayLeaderboard)
				}
			}
		}
	}

	// WebSocket маршрут
	router.GET("/ws", wsHandler.HandleConnection)

	// Настраиваем HTTP сервер с тайм-аутами для защиты от slow client attacks
	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
	}

	// Запускаем сервер в горутине
	go func() {
		log.Printf("Starting server on port %s", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Printf("Failed to start server: %v", err)
		}
	}()

	log.Printf("Server started on port %s", cfg.Server.Port)

	// После получения сигнала SIGINT или SIGTERM вызываем cancel() для завершения горутин
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	// Отправляем сигнал завершения для всех горутин
	cancel()

	// Создаем контекст с таймаутом для graceful shutdown сервера
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("Server forced to shutdown: %v", err)
	}

	if err := redisClient.Close(); err != nil {
		log.Printf("Error closing Redis client: %v", err)
	}

	log.Println("Server exited")
}
