package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"swea-cms.backend/internal/infrastructure/storage"
	"swea-cms.backend/pkg/logger"
)

func init() {
	gin.SetMode(gin.TestMode)
}

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

// multipartRequest builds a multipart form request from flat field values.
func multipartRequest(t *testing.T, method, url string, fields map[string]string) *http.Request {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for k, v := range fields {
		require.NoError(t, w.WriteField(k, v))
	}
	require.NoError(t, w.Close())

	req := httptest.NewRequest(method, url, &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	return req
}

func doRequest(router *gin.Engine, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
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
