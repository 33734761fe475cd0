package usecases

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainerrors "swea-cms.backend/internal/domain/errors"
	"swea-cms.backend/internal/domain/i18n"
	"swea-cms.backend/internal/infrastructure/repositories"
)

func newTeamService(t *testing.T) *TeamService {
	t.Helper()
	db := newTestDB(t)
	createTeamTable(t, db)
	return NewTeamService(repositories.NewTeamRepository(db), newTestStorage(t))
}

func teamInput(name string, order int) TeamInput {
	return TeamInput{
		Name:  i18n.Text{"en": name},
		Role:  i18n.Text{"en": "member"},
		Bio:   i18n.Text{"en": "bio"},
		Order: order,
	}
}

func activeOrders(t *testing.T, ctx context.Context, s *TeamService) map[string]int {
	t.Helper()
	page, err := s.List(ctx, ListParams{Page: 1})
	require.NoError(t, err)
	orders := make(map[string]int, len(page.Data))
	for _, m := range page.Data {
		orders[m.Name["en"]] = m.Order
	}
	return orders
}

func TestTeamService_CreateShiftsSequence(t *testing.T) {
	s := newTeamService(t)
	ctx := context.Background()

	for i, name := range []string{"a", "b", "c"} {
		_, err := s.Create(ctx, teamInput(name, i+1), nil)
		require.NoError(t, err)
	}

	inserted, err := s.Create(ctx, teamInput("d", 2), nil)
	require.NoError(t, err)
	assert.Equal(t, 2, inserted.Order)

	orders := activeOrders(t, ctx, s)
	assert.Equal(t, map[string]int{"a": 1, "d": 2, "b": 3, "c": 4}, orders)
}

func TestTeamService_CreateClampsOrder(t *testing.T) {
	s := newTeamService(t)
	ctx := context.Background()

	first, err := s.Create(ctx, teamInput("a", 99), nil)
	require.NoError(t, err)
	assert.Equal(t, 1, first.Order, "first member lands at 1 whatever was asked")

	second, err := s.Create(ctx, teamInput("b", -5), nil)
	require.NoError(t, err)
	assert.Equal(t, 1, second.Order, "non-positive order clamps to the front")
}

func TestTeamService_UpdateMovesMember(t *testing.T) {
	s := newTeamService(t)
	ctx := context.Background()

	var ids []uuid.UUID
	for i, name := range []string{"a", "b", "c"} {
		m, err := s.Create(ctx, teamInput(name, i+1), nil)
		require.NoError(t, err)
		ids = append(ids, m.ID)
	}

	moved, err := s.Update(ctx, ids[0], teamInput("a", 3), nil)
	require.NoError(t, err)
	assert.Equal(t, 3, moved.Order)

	orders := activeOrders(t, ctx, s)
	assert.Equal(t, map[string]int{"b": 1, "c": 2, "a": 3}, orders)
}

func TestTeamService_DeleteClosesGap(t *testing.T) {
	s := newTeamService(t)
	ctx := context.Background()

	var ids []uuid.UUID
	for i, name := range []string{"a", "b", "c"} {
		m, err := s.Create(ctx, teamInput(name, i+1), nil)
		require.NoError(t, err)
		ids = append(ids, m.ID)
	}

	require.NoError(t, s.Delete(ctx, ids[1], false))

	orders := activeOrders(t, ctx, s)
	assert.Equal(t, map[string]int{"a": 1, "c": 2}, orders)

	err := s.Delete(ctx, uuid.New(), false)
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestTeamService_RestoreAppendsAtEnd(t *testing.T) {
	s := newTeamService(t)
	ctx := context.Background()

	var ids []uuid.UUID
	for i, name := range []string{"a", "b", "c"} {
		m, err := s.Create(ctx, teamInput(name, i+1), nil)
		require.NoError(t, err)
		ids = append(ids, m.ID)
	}

	require.NoError(t, s.Delete(ctx, ids[0], false))

	restored, err := s.Restore(ctx, ids[0])
	require.NoError(t, err)
	assert.Equal(t, 3, restored.Order, "restored member joins at the tail")

	orders := activeOrders(t, ctx, s)
	assert.Equal(t, map[string]int{"b": 1, "c": 2, "a": 3}, orders)
}

func TestTeamService_CreateRejectsMissingName(t *testing.T) {
	s := newTeamService(t)

	_, err := s.Create(context.Background(), TeamInput{
		Role: i18n.Text{"en": "member"},
		Bio:  i18n.Text{"en": "bio"},
	}, nil)

	var verr *domainerrors.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.NotEmpty(t, verr.Fields["name"])
}
