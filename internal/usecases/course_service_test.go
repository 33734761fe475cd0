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

func newCourseFixture(t *testing.T) (*CourseService, *MemberService) {
	t.Helper()
	db := newTestDB(t)
	createCourseTables(t, db)
	store := newTestStorage(t)
	return NewCourseService(repositories.NewCourseRepository(db), store),
		NewMemberService(repositories.NewMemberRepository(db), store)
}

func courseInput(title string, memberIDs ...uuid.UUID) CourseInput {
	return CourseInput{
		Title:       i18n.Text{"en": title},
		CourseName:  i18n.Text{"en": "Go 101"},
		Description: i18n.Text{"en": "intro"},
		MemberIDs:   memberIDs,
	}
}

func TestCourseService_CreateLinksMembers(t *testing.T) {
	courses, members := newCourseFixture(t)
	ctx := context.Background()

	m1, err := members.Create(ctx, MemberInput{Name: i18n.Text{"en": "Sara"}, Email: "sara@swea.org"}, nil)
	require.NoError(t, err)
	m2, err := members.Create(ctx, MemberInput{Name: i18n.Text{"en": "Lina"}, Email: "lina@swea.org"}, nil)
	require.NoError(t, err)

	course, err := courses.Create(ctx, courseInput("Workshop", m1.ID, m2.ID), nil)
	require.NoError(t, err)
	assert.Len(t, course.Members, 2)
}

func TestCourseService_UpdateReplacesMemberSet(t *testing.T) {
	courses, members := newCourseFixture(t)
	ctx := context.Background()

	m1, err := members.Create(ctx, MemberInput{Name: i18n.Text{"en": "Sara"}, Email: "sara@swea.org"}, nil)
	require.NoError(t, err)
	m2, err := members.Create(ctx, MemberInput{Name: i18n.Text{"en": "Lina"}, Email: "lina@swea.org"}, nil)
	require.NoError(t, err)

	course, err := courses.Create(ctx, courseInput("Workshop", m1.ID), nil)
	require.NoError(t, err)

	updated, err := courses.Update(ctx, course.ID, courseInput("Workshop", m2.ID), nil)
	require.NoError(t, err)
	require.Len(t, updated.Members, 1)
	assert.Equal(t, m2.ID, updated.Members[0].ID, "old set is replaced, not merged")

	cleared, err := courses.Update(ctx, course.ID, courseInput("Workshop"), nil)
	require.NoError(t, err)
	assert.Empty(t, cleared.Members, "empty id list clears the set")
}

func TestCourseService_CreateValidatesMultilang(t *testing.T) {
	courses, _ := newCourseFixture(t)

	_, err := courses.Create(context.Background(), CourseInput{
		Title: i18n.Text{"en": "only title"},
	}, nil)

	var verr *domainerrors.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.NotEmpty(t, verr.Fields["courseName"])
	assert.NotEmpty(t, verr.Fields["description"])
}

func TestMemberService_PermanentDeleteUnlinksCourses(t *testing.T) {
	courses, members := newCourseFixture(t)
	ctx := context.Background()

	m, err := members.Create(ctx, MemberInput{Name: i18n.Text{"en": "Sara"}, Email: "sara@swea.org"}, nil)
	require.NoError(t, err)
	course, err := courses.Create(ctx, courseInput("Workshop", m.ID), nil)
	require.NoError(t, err)

	require.NoError(t, members.Delete(ctx, m.ID, true))

	got, err := courses.GetByID(ctx, course.ID)
	require.NoError(t, err)
	assert.Empty(t, got.Members)
}
