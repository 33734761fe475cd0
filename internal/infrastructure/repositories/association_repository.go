package repositories

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"swea-cms.backend/internal/domain/entities"
)

// CourseRepository adds member-association handling on top of the generic
// repository. The association set is replaced wholesale on every change,
// never diffed.
type CourseRepository struct {
	*Repository[entities.Course]
}

func NewCourseRepository(db *gorm.DB) *CourseRepository {
	return &CourseRepository{Repository: NewRepository[entities.Course](db, "Members")}
}

// ReplaceMembers swaps the course's member set for the given ids. Returns
// false when the course does not exist.
func (r *CourseRepository) ReplaceMembers(ctx context.Context, courseID uuid.UUID, memberIDs []uuid.UUID) (bool, error) {
	course, err := r.GetByID(ctx, courseID)
	if err != nil || course == nil {
		return false, err
	}

	members := make([]entities.Member, len(memberIDs))
	for i, id := range memberIDs {
		members[i] = entities.Member{Base: entities.Base{ID: id}}
	}

	err = r.DB().WithContext(ctx).Model(course).Association("Members").Replace(members)
	if err != nil {
		return false, err
	}
	return true, nil
}

// PodcastRepository mirrors CourseRepository for podcast episodes.
type PodcastRepository struct {
	*Repository[entities.Podcast]
}

func NewPodcastRepository(db *gorm.DB) *PodcastRepository {
	return &PodcastRepository{Repository: NewRepository[entities.Podcast](db, "Members")}
}

// ReplaceMembers swaps the podcast's member set for the given ids.
func (r *PodcastRepository) ReplaceMembers(ctx context.Context, podcastID uuid.UUID, memberIDs []uuid.UUID) (bool, error) {
	podcast, err := r.GetByID(ctx, podcastID)
	if err != nil || podcast == nil {
		return false, err
	}

	members := make([]entities.Member, len(memberIDs))
	for i, id := range memberIDs {
		members[i] = entities.Member{Base: entities.Base{ID: id}}
	}

	err = r.DB().WithContext(ctx).Model(podcast).Association("Members").Replace(members)
	if err != nil {
		return false, err
	}
	return true, nil
}

// MemberRepository removes association rows alongside a permanent member
// delete, covering stores where the schema-level cascade is not available.
type MemberRepository struct {
	*Repository[entities.Member]
}

func NewMemberRepository(db *gorm.DB) *MemberRepository {
	return &MemberRepository{Repository: NewRepository[entities.Member](db)}
}

// Delete behaves like the generic delete but clears course and podcast
// memberships when the removal is permanent.
func (r *MemberRepository) Delete(ctx context.Context, id uuid.UUID, permanent bool) (bool, error) {
	if !permanent {
		return r.Repository.Delete(ctx, id, false)
	}

	deleted := false
	err := r.DB().WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("DELETE FROM course_members WHERE member_id = ?", id).Error; err != nil {
			return err
		}
		if err := tx.Exec("DELETE FROM podcast_members WHERE member_id = ?", id).Error; err != nil {
			return err
		}
		result := tx.Unscoped().Where("id = ?", id).Delete(&entities.Member{})
		if result.Error != nil {
			return result.Error
		}
		deleted = result.RowsAffected > 0
		return nil
	})
	return deleted, err
}
