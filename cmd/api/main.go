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

	"github.com/yourusername/opcode-quiz-api/internal/config"
	"github.com/yourusername/opcode-quiz-api/internal/handler"
	"github.com/yourusername/opcode-quiz-api/internal/middleware"
	"github.com/yourusername/opcode-quiz-api/internal/opcodes"
	pgRepo "github.com/yourusername/opcode-quiz-api/internal/repository/postgres"
	redisRepo "github.com/yourusername/opcode-quiz-api/internal/repository/redis"
	"github.com/yourusername/opcode-quiz-api/internal/service"
	"github.com/yourusername/opcode-quiz-api/internal/service/quizgen"
	"github.com/yourusername/opcode-quiz-api/pkg/database"
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
	quizRepo := pgRepo.NewQuizRepo(db)
	attemptRepo := pgRepo.NewAttemptRepo(db)

	cacheRepo, err := redisRepo.NewCacheRepo(redisClient)
	if err != nil {
		log.Printf("Failed to initialize CacheRepo: %v", err)
		os.Exit(1)
	}

	// Каталог опкодов и конфигурация генерации
	bank := opcodes.NewBank()

	genConfig := quizgen.DefaultConfig()
	genConfig.QuestionCount = cfg.Quiz.QuestionCount
	genConfig.OptionsPerQuestion = cfg.Quiz.OptionsPerQuestion
	genConfig.TimeLimitSec = cfg.Quiz.TimeLimitSec

	generator := quizgen.NewGenerator(bank, genConfig)

	// Инициализируем сервисы
	quizService := service.NewQuizService(quizRepo, cacheRepo, generator)
	submissionService := service.NewSubmissionService(quizRepo, userRepo, attemptRepo)
	leaderboardService := service.NewLeaderboardService(attemptRepo, quizRepo)
	userService := service.NewUserService(userRepo)

	// Инициализируем обработчики
	quizHandler := handler.NewQuizHandler(quizService, submissionService)
	leaderboardHandler := handler.NewLeaderboardHandler(leaderboardService)
	userHandler := handler.NewUserHandler(userService)
	opcodeHandler := handler.NewOpcodeHandler(bank)

	// Инициализируем middleware
	rateLimiter := middleware.NewRateLimiter(redisClient)

	// Инициализируем роутер Gin
	router := gin.Default()

	isProduction := gin.Mode() == gin.ReleaseMode

	// Настройка доверенных прокси для корректной работы c.ClientIP()
	// В production (GIN_MODE=release): не доверяем прокси (защита от IP spoofing)
	// При деплое за load balancer замените nil на []string{"IP_БАЛАНСИРОВЩИКА"}
	if isProduction {
		if err := router.SetTrustedProxies(nil); err != nil {
			log.Printf("Warning: failed to set trusted proxies: %v", err)
		}
	} else {
		if err := router.SetTrustedProxies([]string{"127.0.0.1", "::1"}); err != nil {
			log.Printf("Warning: failed to set trusted proxies: %v", err)
		}
	}

	// Настройка CORS
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:5173", "http://localhost:3000"},
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Настраиваем маршруты API
	api := router.Group("/api")
	{
		// Дневная викторина
		api.GET("/daily-quiz", quizHandler.GetDailyQuiz)

		// Сабмит ответов (ограничен по IP, попытки append-only)
		api.POST("/submit-quiz",
			rateLimiter.LimitByIP(middleware.DefaultSubmitRateLimitConfig()),
			quizHandler.SubmitQuiz,
		)

		// Пользователи
		users := api.Group("/users")
		{
			users.POST("", userHandler.UpsertUser)
			users.GET("/:fid", userHandler.GetUser)
		}

		// Справочник опкодов
		api.GET("/opcodes", opcodeHandler.ListOpcodes)

		// Лидерборды по викторине
		quizzes := api.Group("/quizzes")
		{
			quizWithID := quizzes.Group("/:id")
			quizWithID.Use(middleware.ExtractUUIDParam("id", "quizID"))
			{
				quizWithID.GET("/leaderboard", leaderboardHandler.GetLeaderboard)
				quizWithID.GET("/leaderboard/export", leaderboardHandler.ExportLeaderboard)
			}
		}
	}

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

	// Ожидаем сигнал остановки
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	// Контекст с таймаутом для graceful shutdown сервера
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("Server forced to shutdown: %v", err)
		os.Exit(1)
	}

	if err := redisClient.Close(); err != nil {
		log.Printf("Error closing Redis client: %v", err)
	}

	log.Println("Server exited properly")
}
