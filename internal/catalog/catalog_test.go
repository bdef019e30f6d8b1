package catalog

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestList_ValuesAndContains(t *testing.T) {
	assert.Equal(t, []string{"upcoming", "past", "all"}, EventPeriods.Values())
	assert.True(t, HelpAreas.Contains("Workplace challenges"))
	assert.False(t, HelpAreas.Contains("workplace challenges"))
	assert.Len(t, HelpAreas, 11)
	assert.Len(t, MentorSpecialties, 12)
	assert.Len(t, Interests, 14)
}

func TestHandler_GetCatalog(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	NewHandler(NewService()).RegisterRoutes(router.Group("/api/v1"))

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/catalog", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Data Catalog `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, ResourceCategories, body.Data.Resources.Categories)
	assert.Equal(t, "study_circle", body.Data.Events.Types[0].Value)
}
