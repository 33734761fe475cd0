package usecases

import (
	"context"
	"mime/multipart"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"gorm.io/datatypes"

	"swea-cms.backend/internal/domain/entities"
	domainerrors "swea-cms.backend/internal/domain/errors"
	"swea-cms.backend/internal/domain/i18n"
	"swea-cms.backend/internal/infrastructure/repositories"
	"swea-cms.backend/internal/infrastructure/storage"
)

// TeamInput is the create/update payload for team members. Order is the
// requested display position; out-of-range values are clamped into the
// active sequence.
type TeamInput struct {
	Name    i18n.Text         `json:"name" validate:"required,multilang"`
	Role    i18n.Text         `json:"role" validate:"required,multilang"`
	Bio     i18n.Text         `json:"bio" validate:"required,multilang"`
	Order   int               `json:"order"`
	Socials datatypes.JSONMap `json:"socials"`
	Email   null.String       `json:"email"`
}

// TeamService handles team business logic. All writes go through the ordered
// repository operations so the display sequence stays dense.
type TeamService struct {
	*Service[entities.Team]
	teamRepo *repositories.TeamRepository
	store    storage.Storage
}

func NewTeamService(repo *repositories.TeamRepository, store storage.Storage) *TeamService {
	return &TeamService{
		Service:  NewService(repo.Repository, defaultPageSize, "name", `"order" ASC`),
		teamRepo: repo,
		store:    store,
	}
}

// Create inserts at the requested position, shifting later members up.
func (s *TeamService) Create(ctx context.Context, input TeamInput, image *multipart.FileHeader) (*entities.Team, error) {
	if err := checkInput(input); err != nil {
		return nil, err
	}

	imagePath, err := saveImage(ctx, s.store, image, "team")
	if err != nil {
		return nil, err
	}

	member := &entities.Team{
		Name:    input.Name.Normalize(),
		Role:    input.Role.Normalize(),
		Bio:     input.Bio.Normalize(),
		Order:   input.Order,
		Socials: input.Socials,
		Email:   input.Email,
		Image:   imagePath,
	}
	if err := s.teamRepo.CreateOrdered(ctx, member); err != nil {
		return nil, translateWriteError(err)
	}
	return member, nil
}

// Update rewrites the member's fields and moves it to the requested
// position, cascading the shift over the records in between.
func (s *TeamService) Update(ctx context.Context, id uuid.UUID, input TeamInput, image *multipart.FileHeader) (*entities.Team, error) {
	if err := checkInput(input); err != nil {
		return nil, err
	}

	member, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	member.Image, err = replaceImage(ctx, s.store, image, "team", member.Image)
	if err != nil {
		return nil, err
	}

	member.Name = input.Name.Normalize()
	member.Role = input.Role.Normalize()
	member.Bio = input.Bio.Normalize()
	member.Socials = input.Socials
	member.Email = input.Email

	if err := s.teamRepo.UpdateOrdered(ctx, member, input.Order); err != nil {
		return nil, translateWriteError(err)
	}
	return member, nil
}

// Delete removes the member and closes the gap in the display sequence.
func (s *TeamService) Delete(ctx context.Context, id uuid.UUID, permanent bool) error {
	deleted, err := s.teamRepo.DeleteOrdered(ctx, id, permanent)
	if err != nil {
		return domainerrors.InternalError(err)
	}
	if !deleted {
		return domainerrors.NotFound("team member not found")
	}
	return nil
}

// Restore brings a soft-deleted member back at the end of the sequence.
func (s *TeamService) Restore(ctx context.Context, id uuid.UUID) (*entities.Team, error) {
	member, err := s.teamRepo.RestoreOrdered(ctx, id)
	if err != nil {
		return nil, domainerrors.InternalError(err)
	}
	if member == nil {
		return nil, domainerrors.NotFound("no soft-deleted team member to restore")
	}
	return member, nil
}
