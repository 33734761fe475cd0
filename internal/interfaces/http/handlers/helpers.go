package handlers

import (
	"encoding/json"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"gorm.io/datatypes"

	domainerrors "swea-cms.backend/internal/domain/errors"
	"swea-cms.backend/internal/domain/i18n"
	"swea-cms.backend/internal/usecases"
)

// The dashboard submits multilang fields as flattened bracket keys
// (title[en], title[ar], tags[en]). These helpers fold them back into the
// typed shapes the services take, so nothing past this package ever looks at
// key patterns.

func formText(c *gin.Context, field string) i18n.Text {
	text := i18n.Text{}
	for _, lang := range i18n.Languages {
		if v, ok := c.GetPostForm(field + "[" + lang + "]"); ok {
			text[lang] = v
		}
	}
	return text
}

// formTags reads tags[lang] as a comma-separated list per language.
func formTags(c *gin.Context, field string) i18n.Tags {
	tags := i18n.Tags{}
	for _, lang := range i18n.Languages {
		raw, ok := c.GetPostForm(field + "[" + lang + "]")
		if !ok || strings.TrimSpace(raw) == "" {
			continue
		}
		var list []string
		for _, part := range strings.Split(raw, ",") {
			if part = strings.TrimSpace(part); part != "" {
				list = append(list, part)
			}
		}
		tags[lang] = list
	}
	return tags
}

func formDate(c *gin.Context, field string) (null.Time, error) {
	raw := strings.TrimSpace(c.PostForm(field))
	if raw == "" {
		return null.Time{}, nil
	}
	parsed, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return null.Time{}, domainerrors.BadRequest(field + " must be a YYYY-MM-DD date")
	}
	return null.TimeFrom(parsed), nil
}

func formNullString(c *gin.Context, field string) null.String {
	if v, ok := c.GetPostForm(field); ok && strings.TrimSpace(v) != "" {
		return null.StringFrom(strings.TrimSpace(v))
	}
	return null.String{}
}

// formJSON passes a dashboard-owned JSON document through untouched, only
// checking that it parses.
func formJSON(c *gin.Context, field string) (datatypes.JSON, error) {
	raw := strings.TrimSpace(c.PostForm(field))
	if raw == "" {
		return nil, nil
	}
	if !json.Valid([]byte(raw)) {
		return nil, domainerrors.BadRequest(field + " must be valid JSON")
	}
	return datatypes.JSON(raw), nil
}

func formJSONMap(c *gin.Context, field string) (datatypes.JSONMap, error) {
	raw := strings.TrimSpace(c.PostForm(field))
	if raw == "" {
		return nil, nil
	}
	m := datatypes.JSONMap{}
	if err := json.Unmarshal([]byte(raw), &m); err != nil {
		return nil, domainerrors.BadRequest(field + " must be a JSON object")
	}
	return m, nil
}

// formUUIDs accepts repeated keys and comma-separated values.
func formUUIDs(c *gin.Context, field string) ([]uuid.UUID, error) {
	values := c.PostFormArray(field)
	var ids []uuid.UUID
	for _, v := range values {
		for _, part := range strings.Split(v, ",") {
			part = strings.TrimSpace(part)
			if part == "" {
				continue
			}
			id, err := uuid.Parse(part)
			if err != nil {
				return nil, domainerrors.BadRequest(field + " contains an invalid id")
			}
			ids = append(ids, id)
		}
	}
	return ids, nil
}

func formFile(c *gin.Context, field string) (*multipart.FileHeader, error) {
	file, err := c.FormFile(field)
	if err != nil {
		if err == http.ErrMissingFile {
			return nil, nil
		}
		return nil, domainerrors.BadRequest("invalid file upload")
	}
	return file, nil
}

func formInt(c *gin.Context, field string) int {
	v, _ := strconv.Atoi(c.PostForm(field))
	return v
}

func pathID(c *gin.Context) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, domainerrors.BadRequest("invalid id")
	}
	return id, nil
}

// listParams reads ?page= and ?search= for listing endpoints.
func listParams(c *gin.Context) usecases.ListParams {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	return usecases.ListParams{
		Page:   page,
		Search: c.Query("search"),
	}
}

// permanentFlag reads ?permanent=true on delete endpoints.
func permanentFlag(c *gin.Context) bool {
	return c.Query("permanent") == "true"
}
