package usecases

import (
	"context"
	"mime/multipart"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"

	"swea-cms.backend/internal/domain/entities"
	"swea-cms.backend/internal/domain/i18n"
	"swea-cms.backend/internal/infrastructure/repositories"
	"swea-cms.backend/internal/infrastructure/storage"
)

// defaultPageSize is the page size every dashboard listing uses.
const defaultPageSize = 10

// NewsInput is the create/update payload for news items. On update, zero
// multilang fields keep their stored value.
type NewsInput struct {
	Title       i18n.Text   `json:"title" validate:"required,multilang"`
	Description i18n.Text   `json:"description" validate:"required,multilang"`
	Date        null.Time   `json:"date"`
	URLRedirect null.String `json:"urlRedirect"`
}

// NewsService handles news business logic.
type NewsService struct {
	*Service[entities.News]
	store storage.Storage
}

func NewNewsService(repo *repositories.Repository[entities.News], store storage.Storage) *NewsService {
	return &NewsService{
		Service: NewService(repo, defaultPageSize, "title", "date DESC"),
		store:   store,
	}
}

// Create validates the input, stores the optional image and inserts the
// record.
func (s *NewsService) Create(ctx context.Context, input NewsInput, image *multipart.FileHeader) (*entities.News, error) {
	if err := checkInput(input); err != nil {
		return nil, err
	}

	imagePath, err := saveImage(ctx, s.store, image, "news")
	if err != nil {
		return nil, err
	}

	news := &entities.News{
		Title:       input.Title.Normalize(),
		Description: input.Description.Normalize(),
		Date:        input.Date,
		URLRedirect: input.URLRedirect,
		Image:       imagePath,
	}
	if err := s.repo.Create(ctx, news); err != nil {
		return nil, translateWriteError(err)
	}
	return news, nil
}

// Update overwrites the record's fields with the input. A new image replaces
// and removes the stored one.
func (s *NewsService) Update(ctx context.Context, id uuid.UUID, input NewsInput, image *multipart.FileHeader) (*entities.News, error) {
	if err := checkInput(input); err != nil {
		return nil, err
	}

	news, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	news.Image, err = replaceImage(ctx, s.store, image, "news", news.Image)
	if err != nil {
		return nil, err
	}

	news.Title = input.Title.Normalize()
	news.Description = input.Description.Normalize()
	news.Date = input.Date
	news.URLRedirect = input.URLRedirect

	if err := s.repo.Update(ctx, news); err != nil {
		return nil, translateWriteError(err)
	}
	return news, nil
}
