package repositories

import (
	"context"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"swea-cms.backend/internal/domain/entities"
	"swea-cms.backend/internal/domain/i18n"
)

func newTeamMember(name string, order int) *entities.Team {
	return &entities.Team{
		Name:  i18n.Text{"en": name},
		Order: order,
		Role:  i18n.Text{"en": "role"},
		Bio:   i18n.Text{"en": "bio"},
	}
}

func activeOrders(t *testing.T, repo *TeamRepository) []int {
	t.Helper()
	res, err := repo.List(context.Background(), ListOptions{PageSize: 100, Sort: `"order" ASC`})
	require.NoError(t, err)
	orders := make([]int, 0, len(res.Data))
	for _, m := range res.Data {
		orders = append(orders, m.Order)
	}
	return orders
}

func assertDense(t *testing.T, repo *TeamRepository) {
	t.Helper()
	orders := activeOrders(t, repo)
	sorted := append([]int(nil), orders...)
	sort.Ints(sorted)
	for i, o := range sorted {
		require.Equal(t, i+1, o, "orders must be exactly 1..N, got %v", orders)
	}
}

func TestTeamRepository_InsertShiftsUp(t *testing.T) {
	db := newTestDB(t)
	createTeamTable(t, db)
	repo := NewTeamRepository(db)

	a := newTeamMember("a", 1)
	b := newTeamMember("b", 2)
	c := newTeamMember("c", 3)
	for _, m := range []*entities.Team{a, b, c} {
		require.NoError(t, repo.CreateOrdered(context.Background(), m))
	}

	// insert at order 2: old 2 and 3 shift to 3 and 4
	d := newTeamMember("d", 2)
	require.NoError(t, repo.CreateOrdered(context.Background(), d))

	assert.Equal(t, 2, d.Order)
	got, err := repo.GetByID(context.Background(), b.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, got.Order)
	got, err = repo.GetByID(context.Background(), c.ID)
	require.NoError(t, err)
	assert.Equal(t, 4, got.Order)
	assertDense(t, repo)
}

func TestTeamRepository_InsertClampsOrder(t *testing.T) {
	db := newTestDB(t)
	createTeamTable(t, db)
	repo := NewTeamRepository(db)

	a := newTeamMember("a", 99)
	require.NoError(t, repo.CreateOrdered(context.Background(), a))
	assert.Equal(t, 1, a.Order, "first member lands at 1 regardless of requested order")

	b := newTeamMember("b", -5)
	require.NoError(t, repo.CreateOrdered(context.Background(), b))
	assert.Equal(t, 1, b.Order)
	assertDense(t, repo)
}

func TestTeamRepository_DeleteClosesGap(t *testing.T) {
	db := newTestDB(t)
	createTeamTable(t, db)
	repo := NewTeamRepository(db)

	members := make([]*entities.Team, 4)
	for i := range members {
		members[i] = newTeamMember(string(rune('a'+i)), i+1)
		require.NoError(t, repo.CreateOrdered(context.Background(), members[i]))
	}

	ok, err := repo.DeleteOrdered(context.Background(), members[0].ID, false)
	require.NoError(t, err)
	assert.True(t, ok)

	orders := activeOrders(t, repo)
	assert.Equal(t, []int{1, 2, 3}, orders)
	assertDense(t, repo)
}

func TestTeamRepository_DeleteMissingReturnsFalse(t *testing.T) {
	db := newTestDB(t)
	createTeamTable(t, db)
	repo := NewTeamRepository(db)

	a := newTeamMember("a", 1)
	require.NoError(t, repo.CreateOrdered(context.Background(), a))

	ok, err := repo.DeleteOrdered(context.Background(), a.ID, false)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = repo.DeleteOrdered(context.Background(), a.ID, false)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestTeamRepository_MoveDown(t *testing.T) {
	db := newTestDB(t)
	createTeamTable(t, db)
	repo := NewTeamRepository(db)

	a := newTeamMember("a", 1)
	b := newTeamMember("b", 2)
	c := newTeamMember("c", 3)
	for _, m := range []*entities.Team{a, b, c} {
		require.NoError(t, repo.CreateOrdered(context.Background(), m))
	}

	// move a from 1 to 3: b and c shift down to 1 and 2
	require.NoError(t, repo.UpdateOrdered(context.Background(), a, 3))

	assert.Equal(t, 3, a.Order)
	got, _ := repo.GetByID(context.Background(), b.ID)
	assert.Equal(t, 1, got.Order)
	got, _ = repo.GetByID(context.Background(), c.ID)
	assert.Equal(t, 2, got.Order)
	assertDense(t, repo)
}

func TestTeamRepository_MoveUp(t *testing.T) {
	db := newTestDB(t)
	createTeamTable(t, db)
	repo := NewTeamRepository(db)

	a := newTeamMember("a", 1)
	b := newTeamMember("b", 2)
	c := newTeamMember("c", 3)
	for _, m := range []*entities.Team{a, b, c} {
		require.NoError(t, repo.CreateOrdered(context.Background(), m))
	}

	require.NoError(t, repo.UpdateOrdered(context.Background(), c, 1))

	assert.Equal(t, 1, c.Order)
	got, _ := repo.GetByID(context.Background(), a.ID)
	assert.Equal(t, 2, got.Order)
	got, _ = repo.GetByID(context.Background(), b.ID)
	assert.Equal(t, 3, got.Order)
	assertDense(t, repo)
}

func TestTeamRepository_InsertThenDeleteScenario(t *testing.T) {
	db := newTestDB(t)
	createTeamTable(t, db)
	repo := NewTeamRepository(db)

	// start with orders [1,2,3]
	a := newTeamMember("a", 1)
	b := newTeamMember("b", 2)
	c := newTeamMember("c", 3)
	for _, m := range []*entities.Team{a, b, c} {
		require.NoError(t, repo.CreateOrdered(context.Background(), m))
	}

	// insert new member at 2: orders become [1,2,3,4]
	d := newTeamMember("d", 2)
	require.NoError(t, repo.CreateOrdered(context.Background(), d))
	assert.Equal(t, []int{1, 2, 3, 4}, activeOrders(t, repo))

	// delete the member at 1: remaining three renumber to [1,2,3]
	ok, err := repo.DeleteOrdered(context.Background(), a.ID, false)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, []int{1, 2, 3}, activeOrders(t, repo))

	got, _ := repo.GetByID(context.Background(), d.ID)
	assert.Equal(t, 1, got.Order)
}

func TestTeamRepository_RestoreAppendsAtEnd(t *testing.T) {
	db := newTestDB(t)
	createTeamTable(t, db)
	repo := NewTeamRepository(db)

	a := newTeamMember("a", 1)
	b := newTeamMember("b", 2)
	for _, m := range []*entities.Team{a, b} {
		require.NoError(t, repo.CreateOrdered(context.Background(), m))
	}

	ok, err := repo.DeleteOrdered(context.Background(), a.ID, false)
	require.NoError(t, err)
	require.True(t, ok)

	restored, err := repo.RestoreOrdered(context.Background(), a.ID)
	require.NoError(t, err)
	require.NotNil(t, restored)
	assert.Equal(t, 2, restored.Order)
	assertDense(t, repo)
}
