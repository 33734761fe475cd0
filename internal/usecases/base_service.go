package usecases

import (
	"context"
	"errors"

	"github.com/google/uuid"

	domainerrors "swea-cms.backend/internal/domain/errors"
	"swea-cms.backend/internal/infrastructure/repositories"
	"swea-cms.backend/pkg/utils"
)

// ListParams is what list endpoints accept: a page number and an optional
// search term matched against one multilang field. Search results are not
// paginated.
type ListParams struct {
	Page   int
	Search string
}

// Service carries the operations every content type shares. Entity-specific
// services embed it and add their own Create/Update.
type Service[M any] struct {
	repo        *repositories.Repository[M]
	pageSize    int
	searchField string
	sort        string
}

func NewService[M any](repo *repositories.Repository[M], pageSize int, searchField, sort string) *Service[M] {
	return &Service[M]{repo: repo, pageSize: pageSize, searchField: searchField, sort: sort}
}

// translateWriteError maps repository write failures onto API errors. Unique
// violations become conflicts; anything else is a store fault.
func translateWriteError(err error) error {
	if errors.Is(err, domainerrors.ErrAlreadyExists) {
		return domainerrors.Conflict("a record with this value already exists")
	}
	return domainerrors.InternalError(err)
}

// GetByID returns the record or a not found error.
func (s *Service[M]) GetByID(ctx context.Context, id uuid.UUID) (*M, error) {
	m, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, domainerrors.InternalError(err)
	}
	if m == nil {
		return nil, domainerrors.NotFound("record not found")
	}
	return m, nil
}

// List returns one page of records, or the full match set when a search term
// is given.
func (s *Service[M]) List(ctx context.Context, params ListParams) (*utils.PageResult[M], error) {
	if params.Search != "" && s.searchField != "" {
		result, err := s.repo.SearchMultilang(ctx, s.searchField, params.Search)
		if err != nil {
			return nil, domainerrors.InternalError(err)
		}
		return result, nil
	}

	result, err := s.repo.List(ctx, repositories.ListOptions{
		Page:     params.Page,
		PageSize: s.pageSize,
		Sort:     s.sort,
	})
	if err != nil {
		return nil, domainerrors.InternalError(err)
	}
	return result, nil
}

// Delete soft deletes by default; permanent removes the row entirely, even
// when it was already soft deleted.
func (s *Service[M]) Delete(ctx context.Context, id uuid.UUID, permanent bool) error {
	deleted, err := s.repo.Delete(ctx, id, permanent)
	if err != nil {
		return domainerrors.InternalError(err)
	}
	if !deleted {
		return domainerrors.NotFound("record not found")
	}
	return nil
}

// Restore clears the soft delete flag and returns the restored record.
func (s *Service[M]) Restore(ctx context.Context, id uuid.UUID) (*M, error) {
	m, err := s.repo.Restore(ctx, id)
	if err != nil {
		return nil, domainerrors.InternalError(err)
	}
	if m == nil {
		return nil, domainerrors.NotFound("no soft-deleted record to restore")
	}
	return m, nil
}
