package usecases

import (
	"context"
	"mime/multipart"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"

	"swea-cms.backend/internal/domain/entities"
	domainerrors "swea-cms.backend/internal/domain/errors"
	"swea-cms.backend/internal/domain/i18n"
	"swea-cms.backend/internal/infrastructure/repositories"
	"swea-cms.backend/internal/infrastructure/storage"
)

// PodcastInput is the create/update payload for podcast episodes. MemberIDs
// replaces the linked member set wholesale on every write.
type PodcastInput struct {
	Title       i18n.Text   `json:"title" validate:"required,multilang"`
	PodcastName i18n.Text   `json:"podcastName" validate:"required,multilang"`
	Description i18n.Text   `json:"description" validate:"required,multilang"`
	Date        null.Time   `json:"date"`
	URL         null.String `json:"url"`
	Tags        i18n.Tags   `json:"tags"`
	MemberIDs   []uuid.UUID `json:"memberIds"`
}

// PodcastService handles podcast business logic.
type PodcastService struct {
	*Service[entities.Podcast]
	podcastRepo *repositories.PodcastRepository
	store       storage.Storage
}

func NewPodcastService(repo *repositories.PodcastRepository, store storage.Storage) *PodcastService {
	return &PodcastService{
		Service:     NewService(repo.Repository, defaultPageSize, "title", "date DESC"),
		podcastRepo: repo,
		store:       store,
	}
}

func (s *PodcastService) Create(ctx context.Context, input PodcastInput, image *multipart.FileHeader) (*entities.Podcast, error) {
	if err := checkInput(input); err != nil {
		return nil, err
	}

	imagePath, err := saveImage(ctx, s.store, image, "podcasts")
	if err != nil {
		return nil, err
	}

	podcast := &entities.Podcast{
		Title:       input.Title.Normalize(),
		PodcastName: input.PodcastName.Normalize(),
		Description: input.Description.Normalize(),
		Date:        input.Date,
		URL:         input.URL,
		Tags:        input.Tags.Normalize(),
		Image:       imagePath,
	}
	if err := s.podcastRepo.Create(ctx, podcast); err != nil {
		return nil, translateWriteError(err)
	}

	if len(input.MemberIDs) > 0 {
		if err := s.setMembers(ctx, podcast.ID, input.MemberIDs); err != nil {
			return nil, err
		}
	}
	return s.GetByID(ctx, podcast.ID)
}

func (s *PodcastService) Update(ctx context.Context, id uuid.UUID, input PodcastInput, image *multipart.FileHeader) (*entities.Podcast, error) {
	if err := checkInput(input); err != nil {
		return nil, err
	}

	podcast, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	podcast.Image, err = replaceImage(ctx, s.store, image, "podcasts", podcast.Image)
	if err != nil {
		return nil, err
	}

	podcast.Title = input.Title.Normalize()
	podcast.PodcastName = input.PodcastName.Normalize()
	podcast.Description = input.Description.Normalize()
	podcast.Date = input.Date
	podcast.URL = input.URL
	podcast.Tags = input.Tags.Normalize()
	podcast.Members = nil

	if err := s.podcastRepo.Update(ctx, podcast); err != nil {
		return nil, translateWriteError(err)
	}
	if err := s.setMembers(ctx, podcast.ID, input.MemberIDs); err != nil {
		return nil, err
	}
	return s.GetByID(ctx, id)
}

func (s *PodcastService) setMembers(ctx context.Context, id uuid.UUID, memberIDs []uuid.UUID) error {
	found, err := s.podcastRepo.ReplaceMembers(ctx, id, memberIDs)
	if err != nil {
		return domainerrors.InternalError(err)
	}
	if !found {
		return domainerrors.NotFound("podcast not found")
	}
	return nil
}
