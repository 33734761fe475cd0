package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"swea-cms.backend/internal/config"
	"swea-cms.backend/internal/domain/entities"
	"swea-cms.backend/internal/infrastructure/queue"
	"swea-cms.backend/internal/infrastructure/repositories"
	"swea-cms.backend/internal/infrastructure/storage"
	"swea-cms.backend/internal/interfaces/http/handlers"
	"swea-cms.backend/internal/interfaces/http/middleware"
	"swea-cms.backend/internal/usecases"
	"swea-cms.backend/pkg/jwt"
	"swea-cms.backend/pkg/logger"
	"swea-cms.backend/pkg/redis"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := config.Load()
	logger.Init(cfg.Server.Env)
	logger.Info(context.Background(), "Logger initialized", zap.String("env", cfg.Server.Env))

	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	if err := redis.Init(cfg.Redis.URL, cfg.Redis.Password); err != nil {
		return fmt.Errorf("failed to initialize redis: %w", err)
	}
	redisClient := redis.GetClient()

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  cfg.Database.URL(),
		PreferSimpleProtocol: true,
	}), &gorm.Config{})
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get generic database object: %w", err)
	}
	defer sqlDB.Close()

	store, err := storage.FromConfig(cfg.Storage)
	if err != nil {
		return fmt.Errorf("failed to initialize file storage: %w", err)
	}

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiry, cfg.JWT.RefreshExpiry)
	taskQueue := queue.New(redisClient, cfg.Queue.Name, cfg.Queue.MaxRetries, cfg.Queue.Workers)
	cache := redis.NewCache(redisClient, cfg.Cache.Prefix, cfg.Cache.TTL)

	// repositories
	newsRepo := repositories.NewRepository[entities.News](db)
	projectRepo := repositories.NewRepository[entities.Project](db)
	researchRepo := repositories.NewRepository[entities.Research](db)
	courseRepo := repositories.NewCourseRepository(db)
	podcastRepo := repositories.NewPodcastRepository(db)
	memberRepo := repositories.NewMemberRepository(db)
	teamRepo := repositories.NewTeamRepository(db)
	subscriberRepo := repositories.NewRepository[entities.Subscriber](db)
	contactRepo := repositories.NewRepository[entities.Contact](db)
	userRepo := repositories.NewRepository[entities.User](db)

	// services
	newsService := usecases.NewNewsService(newsRepo, store)
	projectService := usecases.NewProjectService(projectRepo, store)
	researchService := usecases.NewResearchService(researchRepo, store)
	courseService := usecases.NewCourseService(courseRepo, store)
	podcastService := usecases.NewPodcastService(podcastRepo, store)
	memberService := usecases.NewMemberService(memberRepo, store)
	teamService := usecases.NewTeamService(teamRepo, store)
	subscriberService := usecases.NewSubscriberService(subscriberRepo, taskQueue)
	contactService := usecases.NewContactService(contactRepo, taskQueue, cfg.SMTP.ContactInbox)
	authService := usecases.NewAuthService(userRepo, jwtService)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestIDMiddleware())
	r.Use(middleware.LoggerMiddleware())
	applyCORSMiddleware(r)

	if cfg.Storage.Backend == "local" || cfg.Storage.Backend == "" {
		r.Static(cfg.Storage.LocalBaseURL, cfg.Storage.LocalRoot)
	}

	registerRoutes(r, routeDeps{
		news:        handlers.NewNewsHandler(newsService),
		projects:    handlers.NewProjectHandler(projectService),
		research:    handlers.NewResearchHandler(researchService),
		courses:     handlers.NewCourseHandler(courseService),
		podcasts:    handlers.NewPodcastHandler(podcastService),
		members:     handlers.NewMemberHandler(memberService),
		team:        handlers.NewTeamHandler(teamService),
		subscribers: handlers.NewSubscriberHandler(subscriberService),
		contacts:    handlers.NewContactHandler(contactService),
		auth:        handlers.NewAuthHandler(authService),
		uploads:     handlers.NewUploadHandler(store),
		health:      handlers.NewHealthHandler(db, redisClient),
		authRequired: middleware.AuthMiddleware(jwtService),
		adminOnly:    middleware.RequireRole(usecases.RoleAdmin),
		rateLimit:    middleware.NewRateLimiter(10, 20).Middleware(),
		cache:        cache,
	})

	srv := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: r,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.Info(ctx, "Server starting", zap.String("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error(ctx, "Server failed", zap.Error(err))
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info(context.Background(), "Shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}
	return nil
}
