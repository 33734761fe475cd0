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

// CourseInput is the create/update payload for courses. MemberIDs replaces
// the linked member set wholesale on every write.
type CourseInput struct {
	Title       i18n.Text   `json:"title" validate:"required,multilang"`
	CourseName  i18n.Text   `json:"courseName" validate:"required,multilang"`
	Description i18n.Text   `json:"description" validate:"required,multilang"`
	Date        null.Time   `json:"date"`
	URL         null.String `json:"url"`
	Tags        i18n.Tags   `json:"tags"`
	MemberIDs   []uuid.UUID `json:"memberIds"`
}

// CourseService handles course business logic.
type CourseService struct {
	*Service[entities.Course]
	courseRepo *repositories.CourseRepository
	store      storage.Storage
}

func NewCourseService(repo *repositories.CourseRepository, store storage.Storage) *CourseService {
	return &CourseService{
		Service:    NewService(repo.Repository, defaultPageSize, "title", "date DESC"),
		courseRepo: repo,
		store:      store,
	}
}

func (s *CourseService) Create(ctx context.Context, input CourseInput, image *multipart.FileHeader) (*entities.Course, error) {
	if err := checkInput(input); err != nil {
		return nil, err
	}

	imagePath, err := saveImage(ctx, s.store, image, "courses")
	if err != nil {
		return nil, err
	}

	course := &entities.Course{
		Title:       input.Title.Normalize(),
		CourseName:  input.CourseName.Normalize(),
		Description: input.Description.Normalize(),
		Date:        input.Date,
		URL:         input.URL,
		Tags:        input.Tags.Normalize(),
		Image:       imagePath,
	}
	if err := s.courseRepo.Create(ctx, course); err != nil {
		return nil, translateWriteError(err)
	}

	if len(input.MemberIDs) > 0 {
		if err := s.setMembers(ctx, course.ID, input.MemberIDs); err != nil {
			return nil, err
		}
	}
	return s.GetByID(ctx, course.ID)
}

func (s *CourseService) Update(ctx context.Context, id uuid.UUID, input CourseInput, image *multipart.FileHeader) (*entities.Course, error) {
	if err := checkInput(input); err != nil {
		return nil, err
	}

	course, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	course.Image, err = replaceImage(ctx, s.store, image, "courses", course.Image)
	if err != nil {
		return nil, err
	}

	course.Title = input.Title.Normalize()
	course.CourseName = input.CourseName.Normalize()
	course.Description = input.Description.Normalize()
	course.Date = input.Date
	course.URL = input.URL
	course.Tags = input.Tags.Normalize()
	course.Members = nil

	if err := s.courseRepo.Update(ctx, course); err != nil {
		return nil, translateWriteError(err)
	}
	if err := s.setMembers(ctx, course.ID, input.MemberIDs); err != nil {
		return nil, err
	}
	return s.GetByID(ctx, id)
}

func (s *CourseService) setMembers(ctx context.Context, id uuid.UUID, memberIDs []uuid.UUID) error {
	found, err := s.courseRepo.ReplaceMembers(ctx, id, memberIDs)
	if err != nil {
		return domainerrors.InternalError(err)
	}
	if !found {
		return domainerrors.NotFound("course not found")
	}
	return nil
}
