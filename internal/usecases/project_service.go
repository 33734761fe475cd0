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

// ProjectInput is the create/update payload for projects. Content, Images
// and Testimonials are dashboard-owned JSON documents stored as given.
type ProjectInput struct {
	Title            i18n.Text      `json:"title" validate:"required,multilang"`
	Author           i18n.Text      `json:"author" validate:"required,multilang"`
	DateOfCompletion null.Time      `json:"dateOfCompletion"`
	Status           string         `json:"status" validate:"required,oneof=ongoing completed"`
	Content          datatypes.JSON `json:"content"`
	Tags             i18n.Tags      `json:"tags"`
	Images           datatypes.JSON `json:"images"`
	Testimonials     datatypes.JSON `json:"testimonials"`
}

// ProjectService handles project business logic.
type ProjectService struct {
	*Service[entities.Project]
	store storage.Storage
}

func NewProjectService(repo *repositories.Repository[entities.Project], store storage.Storage) *ProjectService {
	return &ProjectService{
		Service: NewService(repo, defaultPageSize, "title", "created_at DESC"),
		store:   store,
	}
}

func (s *ProjectService) Create(ctx context.Context, input ProjectInput, heroImage *multipart.FileHeader) (*entities.Project, error) {
	if err := checkInput(input); err != nil {
		return nil, err
	}

	imagePath, err := saveImage(ctx, s.store, heroImage, "projects")
	if err != nil {
		return nil, err
	}

	project := &entities.Project{
		Title:            input.Title.Normalize(),
		Author:           input.Author.Normalize(),
		DateOfCompletion: input.DateOfCompletion,
		Status:           input.Status,
		Content:          input.Content,
		Tags:             input.Tags.Normalize(),
		Images:           input.Images,
		Testimonials:     input.Testimonials,
		HeroImage:        imagePath,
	}
	if err := s.repo.Create(ctx, project); err != nil {
		return nil, translateWriteError(err)
	}
	return project, nil
}

func (s *ProjectService) Update(ctx context.Context, id uuid.UUID, input ProjectInput, heroImage *multipart.FileHeader) (*entities.Project, error) {
	if err := checkInput(input); err != nil {
		return nil, err
	}

	project, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	project.HeroImage, err = replaceImage(ctx, s.store, heroImage, "projects", project.HeroImage)
	if err != nil {
		return nil, err
	}

	project.Title = input.Title.Normalize()
	project.Author = input.Author.Normalize()
	project.DateOfCompletion = input.DateOfCompletion
	project.Status = input.Status
	project.Content = input.Content
	project.Tags = input.Tags.Normalize()
	project.Images = input.Images
	project.Testimonials = input.Testimonials

	if err := s.repo.Update(ctx, project); err != nil {
		return nil, translateWriteError(err)
	}
	return project, nil
}
