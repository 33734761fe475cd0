package repositories

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"

	domainerrors "swea-cms.backend/internal/domain/errors"
	"swea-cms.backend/internal/domain/i18n"
	"swea-cms.backend/pkg/utils"
)

const defaultPageSize = 10

// ListOptions controls a paginated listing. Filters are equality conditions
// on column names; Sort is a trusted column expression (callers pass
// constants, never user input). Soft-deleted rows are excluded unless
// IncludeDeleted is set.
type ListOptions struct {
	Page           int
	PageSize       int
	Filters        map[string]interface{}
	Sort           string
	IncludeDeleted bool
}

// Repository is the generic persistence facade shared by every entity type.
// Absence is reported as a nil/false result, not an error; errors always mean
// a store fault.
type Repository[M any] struct {
	db       *gorm.DB
	preloads []string
}

// NewRepository creates a repository for M. preloads name associations to
// load on reads (e.g. "Members").
func NewRepository[M any](db *gorm.DB, preloads ...string) *Repository[M] {
	return &Repository[M]{db: db, preloads: preloads}
}

// DB exposes the underlying handle for entity-specific repositories.
func (r *Repository[M]) DB() *gorm.DB {
	return r.db
}

func (r *Repository[M]) withPreloads(tx *gorm.DB) *gorm.DB {
	for _, p := range r.preloads {
		tx = tx.Preload(p)
	}
	return tx
}

// Create inserts a record. Unique violations are translated to
// ErrAlreadyExists so callers can surface a conflict instead of a fault.
func (r *Repository[M]) Create(ctx context.Context, m *M) error {
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		if isUniqueViolation(err) {
			return domainerrors.ErrAlreadyExists
		}
		return err
	}
	return nil
}

// Update saves all fields of the record (partial field replacement is the
// caller's job: unchanged multilang fields must be resupplied).
func (r *Repository[M]) Update(ctx context.Context, m *M) error {
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		if isUniqueViolation(err) {
			return domainerrors.ErrAlreadyExists
		}
		return err
	}
	return nil
}

// GetByID returns the active record with the given id, or nil when it does
// not exist or is soft-deleted.
func (r *Repository[M]) GetByID(ctx context.Context, id uuid.UUID) (*M, error) {
	var m M
	err := r.withPreloads(r.db.WithContext(ctx)).Where("id = ?", id).First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &m, nil
}

// GetBy returns the first active record matching the equality filters, or nil.
func (r *Repository[M]) GetBy(ctx context.Context, filters map[string]interface{}) (*M, error) {
	var m M
	err := r.withPreloads(r.db.WithContext(ctx)).Where(filters).First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &m, nil
}

// List returns one page of records. Page and page size below 1 are clamped;
// totalPages is ceil(total/pageSize) and 0 for an empty result set.
func (r *Repository[M]) List(ctx context.Context, opts ListOptions) (*utils.PageResult[M], error) {
	page, pageSize := utils.ClampPage(opts.Page, opts.PageSize, defaultPageSize)

	var m M
	query := r.db.WithContext(ctx).Model(&m)
	if opts.IncludeDeleted {
		query = query.Unscoped()
	}
	if len(opts.Filters) > 0 {
		query = query.Where(opts.Filters)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, err
	}

	if opts.Sort != "" {
		query = query.Order(opts.Sort)
	}

	var items []M
	err := r.withPreloads(query).
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&items).Error
	if err != nil {
		return nil, err
	}

	return utils.NewPageResult(items, page, pageSize, total), nil
}

// SearchMultilang returns every active record whose multilang JSON column
// contains term (case-insensitive) in any configured language. The result is
// a single unpaginated page: totalPages is 1 and nextPage is nil. field must
// be a trusted column name.
func (r *Repository[M]) SearchMultilang(ctx context.Context, field, term string) (*utils.PageResult[M], error) {
	pattern := "%" + escapeLike(strings.ToLower(term)) + "%"

	clauses := make([]string, 0, len(i18n.Languages))
	args := make([]interface{}, 0, len(i18n.Languages))
	for _, lang := range i18n.Languages {
		clauses = append(clauses, fmt.Sprintf(`LOWER(%s) LIKE ? ESCAPE '\'`, r.jsonField(field, lang)))
		args = append(args, pattern)
	}

	var m M
	var items []M
	err := r.withPreloads(r.db.WithContext(ctx).Model(&m)).
		Where(strings.Join(clauses, " OR "), args...).
		Find(&items).Error
	if err != nil {
		return nil, err
	}

	if items == nil {
		items = []M{}
	}
	return &utils.PageResult[M]{
		Data:       items,
		Page:       1,
		TotalPages: 1,
		TotalItems: int64(len(items)),
	}, nil
}

// Delete removes a record, softly by default. Returns false when no active
// record exists. A permanent delete of an already soft-deleted record also
// succeeds, so purging the trash works.
func (r *Repository[M]) Delete(ctx context.Context, id uuid.UUID, permanent bool) (bool, error) {
	var m M
	query := r.db.WithContext(ctx)
	if permanent {
		query = query.Unscoped()
	}
	result := query.Where("id = ?", id).Delete(&m)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// Restore clears the soft-delete flag and returns the restored record. It is
// a no-op returning nil when the record is missing or not soft-deleted.
func (r *Repository[M]) Restore(ctx context.Context, id uuid.UUID) (*M, error) {
	var m M
	result := r.db.WithContext(ctx).Unscoped().Model(&m).
		Where("id = ? AND deleted_at IS NOT NULL", id).
		Update("deleted_at", nil)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, nil
	}
	return r.GetByID(ctx, id)
}

// jsonField builds a dialect-appropriate expression extracting one language
// value out of a JSON column.
func (r *Repository[M]) jsonField(field, lang string) string {
	if r.db.Dialector.Name() == "postgres" {
		return fmt.Sprintf("%s->>'%s'", field, lang)
	}
	return fmt.Sprintf("json_extract(%s, '$.%s')", field, lang)
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// escapeLike neutralizes LIKE wildcards in a user-supplied search term.
func escapeLike(term string) string {
	return likeEscaper.Replace(term)
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == "23505" {
		return true
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	// sqlite (tests) reports unique violations as plain errors
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}
