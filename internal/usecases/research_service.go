package usecases

import (
	"context"
	"mime/multipart"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"gorm.io/datatypes"

	"swea-cms.backend/internal/domain/entities"
	"swea-cms.backend/internal/domain/i18n"
	"swea-cms.backend/internal/infrastructure/repositories"
	"swea-cms.backend/internal/infrastructure/storage"
)

// ResearchInput is the create/update payload for research items.
type ResearchInput struct {
	Title            i18n.Text      `json:"title" validate:"required,multilang"`
	Author           i18n.Text      `json:"author" validate:"required,multilang"`
	DateOfCompletion null.Time      `json:"dateOfCompletion"`
	Content          datatypes.JSON `json:"content"`
	Tags             i18n.Tags      `json:"tags"`
	Images           datatypes.JSON `json:"images"`
	Testimonials     datatypes.JSON `json:"testimonials"`
}

// ResearchService handles research business logic.
type ResearchService struct {
	*Service[entities.Research]
	store storage.Storage
}

func NewResearchService(repo *repositories.Repository[entities.Research], store storage.Storage) *ResearchService {
	return &ResearchService{
		Service: NewService(repo, defaultPageSize, "title", "created_at DESC"),
		store:   store,
	}
}

func (s *ResearchService) Create(ctx context.Context, input ResearchInput, heroImage *multipart.FileHeader) (*entities.Research, error) {
	if err := checkInput(input); err != nil {
		return nil, err
	}

	imagePath, err := saveImage(ctx, s.store, heroImage, "research")
	if err != nil {
		return nil, err
	}

	research := &entities.Research{
		Title:            input.Title.Normalize(),
		Author:           input.Author.Normalize(),
		DateOfCompletion: input.DateOfCompletion,
		Content:          input.Content,
		Tags:             input.Tags.Normalize(),
		Images:           input.Images,
		Testimonials:     input.Testimonials,
		HeroImage:        imagePath,
	}
	if err := s.repo.Create(ctx, research); err != nil {
		return nil, translateWriteError(err)
	}
	return research, nil
}

func (s *ResearchService) Update(ctx context.Context, id uuid.UUID, input ResearchInput, heroImage *multipart.FileHeader) (*entities.Research, error) {
	if err := checkInput(input); err != nil {
		return nil, err
	}

	research, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	research.HeroImage, err = replaceImage(ctx, s.store, heroImage, "research", research.HeroImage)
	if err != nil {
		return nil, err
	}

	research.Title = input.Title.Normalize()
	research.Author = input.Author.Normalize()
	research.DateOfCompletion = input.DateOfCompletion
	research.Content = input.Content
	research.Tags = input.Tags.Normalize()
	research.Images = input.Images
	research.Testimonials = input.Testimonials

	if err := s.repo.Update(ctx, research); err != nil {
		return nil, translateWriteError(err)
	}
	return research, nil
}
