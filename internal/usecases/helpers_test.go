package usecases

import (
	"fmt"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"swea-cms.backend/internal/infrastructure/queue"
	"swea-cms.backend/internal/infrastructure/storage"
	"swea-cms.backend/pkg/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	logger.Init("development")
	dsn := fmt.Sprintf("file:%s_%d?mode=memory&cache=shared", t.Name(), time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err, "open sqlite")
	return db
}

func mustExec(t *testing.T, db *gorm.DB, q string) {
	t.Helper()
	require.NoError(t, db.Exec(q).Error, "exec failed: query=%s", q)
}

func newTestStorage(t *testing.T) storage.Storage {
	t.Helper()
	return storage.NewLocalStorage(t.TempDir(), "/static", 0)
}

// newTestQueue returns a queue plus the raw redis client so tests can
// inspect what was enqueued without running workers.
func newTestQueue(t *testing.T) (*queue.Queue, *goredis.Client) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return queue.New(client, "test_queue", 3, 1), client
}

func createNewsTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE news (
		id TEXT PRIMARY KEY,
		title TEXT NOT NULL,
		date DATETIME,
		image TEXT,
		description TEXT NOT NULL,
		url_redirect TEXT,
		created_at DATETIME,
		updated_at DATETIME,
		deleted_at DATETIME
	);`)
}

func createTeamTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE teams (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		"order" INTEGER NOT NULL DEFAULT 1,
		role TEXT NOT NULL,
		bio TEXT NOT NULL,
		socials TEXT,
		image TEXT,
		email TEXT,
		created_at DATETIME,
		updated_at DATETIME,
		deleted_at DATETIME
	);`)
}

func createCourseTables(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE members (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		email TEXT NOT NULL UNIQUE,
		image TEXT,
		university_department TEXT,
		created_at DATETIME,
		updated_at DATETIME,
		deleted_at DATETIME
	);`)
	mustExec(t, db, `CREATE TABLE courses (
		id TEXT PRIMARY KEY,
		title TEXT NOT NULL,
		course_name TEXT NOT NULL,
		date DATETIME,
		description TEXT NOT NULL,
		url TEXT,
		tags TEXT NOT NULL,
		image TEXT,
		created_at DATETIME,
		updated_at DATETIME,
		deleted_at DATETIME
	);`)
	mustExec(t, db, `CREATE TABLE course_members (
		course_id TEXT NOT NULL,
		member_id TEXT NOT NULL,
		PRIMARY KEY (course_id, member_id)
	);`)
	// member deletes touch podcast links too
	mustExec(t, db, `CREATE TABLE podcast_members (
		podcast_id TEXT NOT NULL,
		member_id TEXT NOT NULL,
		PRIMARY KEY (podcast_id, member_id)
	);`)
}

func createSubscriberTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE subscribers (
		id TEXT PRIMARY KEY,
		email TEXT NOT NULL UNIQUE,
		created_at DATETIME,
		updated_at DATETIME,
		deleted_at DATETIME
	);`)
}

func createContactTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE contacts (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		email TEXT NOT NULL,
		content TEXT NOT NULL,
		created_at DATETIME,
		updated_at DATETIME,
		deleted_at DATETIME
	);`)
}

func createUserTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE users (
		id TEXT PRIMARY KEY,
		email TEXT NOT NULL UNIQUE,
		password_hash TEXT NOT NULL,
		role TEXT NOT NULL DEFAULT 'editor',
		created_at DATETIME,
		updated_at DATETIME,
		deleted_at DATETIME
	);`)
}
