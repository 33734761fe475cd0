package usecases

import (
	"context"

	"swea-cms.backend/internal/domain/entities"
	"swea-cms.backend/internal/infrastructure/queue"
	"swea-cms.backend/internal/infrastructure/repositories"
)

// ContactInput is the public contact form payload.
type ContactInput struct {
	Name    string `json:"name" validate:"required,max=255"`
	Email   string `json:"email" validate:"required,email"`
	Content string `json:"content" validate:"required"`
}

// ContactService stores contact form messages and notifies the site inbox
// through the task queue.
type ContactService struct {
	*Service[entities.Contact]
	repo        *repositories.Repository[entities.Contact]
	queue       *queue.Queue
	notifyEmail string
}

func NewContactService(repo *repositories.Repository[entities.Contact], q *queue.Queue, notifyEmail string) *ContactService {
	return &ContactService{
		Service:     NewService(repo, defaultPageSize, "", "created_at DESC"),
		repo:        repo,
		queue:       q,
		notifyEmail: notifyEmail,
	}
}

// Create stores the message and queues a notification email when a site
// inbox is configured.
func (s *ContactService) Create(ctx context.Context, input ContactInput) (*entities.Contact, error) {
	if err := checkInput(input); err != nil {
		return nil, err
	}

	contact := &entities.Contact{
		Name:    input.Name,
		Email:   input.Email,
		Content: input.Content,
	}
	if err := s.repo.Create(ctx, contact); err != nil {
		return nil, translateWriteError(err)
	}

	if s.notifyEmail != "" {
		s.queue.Enqueue(ctx, queue.TaskSendEmail, queue.EmailPayload{
			Recipient: s.notifyEmail,
			Subject:   "New contact form message",
			Template:  "contact_notification.html",
			Data: map[string]interface{}{
				"name":    contact.Name,
				"email":   contact.Email,
				"content": contact.Content,
			},
		})
	}
	return contact, nil
}
