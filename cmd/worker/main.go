package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"swea-cms.backend/internal/config"
	"swea-cms.backend/internal/infrastructure/queue"
	"swea-cms.backend/pkg/logger"
	"swea-cms.backend/pkg/mailer"
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

	if err := redis.Init(cfg.Redis.URL, cfg.Redis.Password); err != nil {
		return fmt.Errorf("failed to initialize redis: %w", err)
	}

	mail, err := mailer.New(
		cfg.SMTP.Host, cfg.SMTP.Port,
		cfg.SMTP.User, cfg.SMTP.Password,
		cfg.SMTP.SenderName, cfg.SMTP.TemplateDir,
	)
	if err != nil {
		return fmt.Errorf("failed to initialize mailer: %w", err)
	}

	q := queue.New(redis.GetClient(), cfg.Queue.Name, cfg.Queue.MaxRetries, cfg.Queue.Workers)
	q.RegisterHandler(queue.TaskSendEmail, sendEmailHandler(mail))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Worker starting",
		zap.String("queue", cfg.Queue.Name),
		zap.Int("workers", cfg.Queue.Workers),
	)
	q.Run(ctx)

	if !q.Wait(30 * time.Second) {
		logger.Warn(context.Background(), "Timed out waiting for in-flight tasks")
	}
	logger.Info(context.Background(), "Worker stopped")
	return nil
}

// sendEmailHandler delivers one queued email. A failed delivery reports
// false so the queue retries it.
func sendEmailHandler(mail *mailer.Mailer) queue.Handler {
	return func(ctx context.Context, payload json.RawMessage) bool {
		var email queue.EmailPayload
		if err := json.Unmarshal(payload, &email); err != nil {
			logger.Error(ctx, "Malformed email payload", zap.Error(err))
			return true // retrying cannot fix a bad payload
		}

		if err := mail.Send(ctx, email.Recipient, email.Subject, email.Template, email.Data); err != nil {
			logger.Error(ctx, "Failed to send email",
				zap.String("to", email.Recipient),
				zap.String("template", email.Template),
				zap.Error(err),
			)
			return false
		}
		return true
	}
}
