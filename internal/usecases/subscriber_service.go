package usecases

import (
	"context"

	"swea-cms.backend/internal/domain/entities"
	domainerrors "swea-cms.backend/internal/domain/errors"
	"swea-cms.backend/internal/infrastructure/queue"
	"swea-cms.backend/internal/infrastructure/repositories"
)

// SubscribeInput is the newsletter signup payload.
type SubscribeInput struct {
	Email string `json:"email" validate:"required,email"`
}

// BroadcastInput is a newsletter send to every subscriber.
type BroadcastInput struct {
	Subject string `json:"subject" validate:"required"`
	Body    string `json:"body" validate:"required"`
}

// broadcastBatchSize is how many subscribers are loaded per page while
// fanning out a newsletter.
const broadcastBatchSize = 200

// SubscriberService handles newsletter subscriptions. Email delivery is
// queued, never done inline.
type SubscriberService struct {
	*Service[entities.Subscriber]
	repo  *repositories.Repository[entities.Subscriber]
	queue *queue.Queue
}

func NewSubscriberService(repo *repositories.Repository[entities.Subscriber], q *queue.Queue) *SubscriberService {
	return &SubscriberService{
		Service: NewService(repo, defaultPageSize, "", "created_at DESC"),
		repo:    repo,
		queue:   q,
	}
}

// Subscribe registers an email address and queues the welcome email.
// Duplicate signups come back as a conflict.
func (s *SubscriberService) Subscribe(ctx context.Context, input SubscribeInput) (*entities.Subscriber, error) {
	if err := checkInput(input); err != nil {
		return nil, err
	}

	sub := &entities.Subscriber{Email: input.Email}
	if err := s.repo.Create(ctx, sub); err != nil {
		return nil, translateWriteError(err)
	}

	s.queue.Enqueue(ctx, queue.TaskSendEmail, queue.EmailPayload{
		Recipient: sub.Email,
		Subject:   "Welcome to the SWEA newsletter",
		Template:  "welcome.html",
	})
	return sub, nil
}

// Unsubscribe permanently removes a subscriber by email address.
func (s *SubscriberService) Unsubscribe(ctx context.Context, email string) error {
	sub, err := s.repo.GetBy(ctx, map[string]interface{}{"email": email})
	if err != nil {
		return domainerrors.InternalError(err)
	}
	if sub == nil {
		return domainerrors.NotFound("subscriber not found")
	}
	if _, err := s.repo.Delete(ctx, sub.ID, true); err != nil {
		return domainerrors.InternalError(err)
	}
	return nil
}

// Broadcast queues one email per active subscriber and returns how many were
// queued.
func (s *SubscriberService) Broadcast(ctx context.Context, input BroadcastInput) (int, error) {
	if err := checkInput(input); err != nil {
		return 0, err
	}

	queued := 0
	for page := 1; ; page++ {
		result, err := s.repo.List(ctx, repositories.ListOptions{
			Page:     page,
			PageSize: broadcastBatchSize,
			Sort:     "created_at ASC",
		})
		if err != nil {
			return queued, domainerrors.InternalError(err)
		}
		for _, sub := range result.Data {
			s.queue.Enqueue(ctx, queue.TaskSendEmail, queue.EmailPayload{
				Recipient: sub.Email,
				Subject:   input.Subject,
				Template:  "newsletter.html",
				Data:      map[string]interface{}{"body": input.Body},
			})
			queued++
		}
		if result.NextPage == nil {
			return queued, nil
		}
	}
}
