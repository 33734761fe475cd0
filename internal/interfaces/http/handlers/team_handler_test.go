package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"swea-cms.backend/internal/infrastructure/repositories"
	"swea-cms.backend/internal/usecases"
)

func newTeamRouter(t *testing.T) *gin.Engine {
	t.Helper()
	db := newTestDB(t)
	createTeamTable(t, db)

	service := usecases.NewTeamService(repositories.NewTeamRepository(db), newTestStorage(t))
	h := NewTeamHandler(service)

	router := gin.New()
	router.GET("/team", h.List)
	router.POST("/team", h.Create)
	router.PUT("/team/:id", h.Update)
	router.DELETE("/team/:id", h.Delete)
	router.POST("/team/:id/restore", h.Restore)
	return router
}

func createTeamMember(t *testing.T, router *gin.Engine, name, order string) string {
	t.Helper()
	rec := doRequest(router, multipartRequest(t, http.MethodPost, "/team", map[string]string{
		"name[en]": name,
		"role[en]": "member",
		"bio[en]":  "bio",
		"order":    order,
		"socials":  `{"github":"https://github.com/swea"}`,
	}))
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	return decodeBody(t, rec)["id"].(string)
}

func listedOrders(t *testing.T, router *gin.Engine) map[string]int {
	t.Helper()
	rec := doRequest(router, httptest.NewRequest(http.MethodGet, "/team", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	orders := map[string]int{}
	for _, item := range decodeBody(t, rec)["data"].([]interface{}) {
		m := item.(map[string]interface{})
		name := m["name"].(map[string]interface{})["en"].(string)
		orders[name] = int(m["order"].(float64))
	}
	return orders
}

func TestTeamHandler_OrderCascadeOverHTTP(t *testing.T) {
	router := newTeamRouter(t)

	createTeamMember(t, router, "a", "1")
	createTeamMember(t, router, "b", "2")
	createTeamMember(t, router, "c", "3")
	createTeamMember(t, router, "d", "2")

	assert.Equal(t, map[string]int{"a": 1, "d": 2, "b": 3, "c": 4}, listedOrders(t, router))
}

func TestTeamHandler_DeleteClosesGap(t *testing.T) {
	router := newTeamRouter(t)

	createTeamMember(t, router, "a", "1")
	id := createTeamMember(t, router, "b", "2")
	createTeamMember(t, router, "c", "3")

	rec := doRequest(router, httptest.NewRequest(http.MethodDelete, "/team/"+id, nil))
	require.Equal(t, http.StatusOK, rec.Code)

	assert.Equal(t, map[string]int{"a": 1, "c": 2}, listedOrders(t, router))
}

func TestTeamHandler_UpdateMovesMember(t *testing.T) {
	router := newTeamRouter(t)

	id := createTeamMember(t, router, "a", "1")
	createTeamMember(t, router, "b", "2")
	createTeamMember(t, router, "c", "3")

	rec := doRequest(router, multipartRequest(t, http.MethodPut, "/team/"+id, map[string]string{
		"name[en]": "a",
		"role[en]": "member",
		"bio[en]":  "bio",
		"order":    "3",
	}))
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	assert.Equal(t, map[string]int{"b": 1, "c": 2, "a": 3}, listedOrders(t, router))
}

func TestTeamHandler_BadSocialsJSONIsRejected(t *testing.T) {
	router := newTeamRouter(t)

	rec := doRequest(router, multipartRequest(t, http.MethodPost, "/team", map[string]string{
		"name[en]": "a",
		"role[en]": "member",
		"bio[en]":  "bio",
		"socials":  "{not json",
	}))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
