package usecases

import (
	"context"
	"mime/multipart"

	"github.com/google/uuid"

	"swea-cms.backend/internal/domain/entities"
	domainerrors "swea-cms.backend/internal/domain/errors"
	"swea-cms.backend/internal/domain/i18n"
	"swea-cms.backend/internal/infrastructure/repositories"
	"swea-cms.backend/internal/infrastructure/storage"
)

// MemberInput is the create/update payload for organization members.
type MemberInput struct {
	Name                 i18n.Text `json:"name" validate:"required,multilang"`
	Email                string    `json:"email" validate:"required,email"`
	UniversityDepartment i18n.Text `json:"universityDepartment"`
}

// MemberService handles member business logic.
type MemberService struct {
	*Service[entities.Member]
	memberRepo *repositories.MemberRepository
	store      storage.Storage
}

func NewMemberService(repo *repositories.MemberRepository, store storage.Storage) *MemberService {
	return &MemberService{
		Service:    NewService(repo.Repository, defaultPageSize, "name", "created_at DESC"),
		memberRepo: repo,
		store:      store,
	}
}

func (s *MemberService) Create(ctx context.Context, input MemberInput, image *multipart.FileHeader) (*entities.Member, error) {
	if err := checkInput(input); err != nil {
		return nil, err
	}

	imagePath, err := saveImage(ctx, s.store, image, "members")
	if err != nil {
		return nil, err
	}

	member := &entities.Member{
		Name:                 input.Name.Normalize(),
		Email:                input.Email,
		UniversityDepartment: input.UniversityDepartment.Normalize(),
		Image:                imagePath,
	}
	if err := s.memberRepo.Create(ctx, member); err != nil {
		return nil, translateWriteError(err)
	}
	return member, nil
}

func (s *MemberService) Update(ctx context.Context, id uuid.UUID, input MemberInput, image *multipart.FileHeader) (*entities.Member, error) {
	if err := checkInput(input); err != nil {
		return nil, err
	}

	member, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	member.Image, err = replaceImage(ctx, s.store, image, "members", member.Image)
	if err != nil {
		return nil, err
	}

	member.Name = input.Name.Normalize()
	member.Email = input.Email
	member.UniversityDepartment = input.UniversityDepartment.Normalize()

	if err := s.memberRepo.Update(ctx, member); err != nil {
		return nil, translateWriteError(err)
	}
	return member, nil
}

// Delete goes through the member repository so a permanent delete also clears
// course and podcast links.
func (s *MemberService) Delete(ctx context.Context, id uuid.UUID, permanent bool) error {
	deleted, err := s.memberRepo.Delete(ctx, id, permanent)
	if err != nil {
		return domainerrors.InternalError(err)
	}
	if !deleted {
		return domainerrors.NotFound("member not found")
	}
	return nil
}
