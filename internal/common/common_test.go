package common

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithDetails_DoesNotMutateSentinel(t *testing.T) {
	err := ErrNotFound.WithDetails("post missing")

	assert.Equal(t, "post missing", err.Details)
	assert.Nil(t, ErrNotFound.Details)
	assert.True(t, errors.Is(err, ErrNotFound))
	assert.False(t, errors.Is(err, ErrConflict))
}

func TestSortKey_OrderClause(t *testing.T) {
	columns := map[string]string{"created_date": "created_at", "date": "date"}

	clause, err := SortKey("-created_date").OrderClause(columns)
	require.NoError(t, err)
	assert.Equal(t, "created_at DESC", clause)

	clause, err = SortKey("date").OrderClause(columns)
	require.NoError(t, err)
	assert.Equal(t, "date ASC", clause)

	clause, err = SortKey("").OrderClause(columns)
	require.NoError(t, err)
	assert.Empty(t, clause)

	_, err = SortKey("-password").OrderClause(columns)
	assert.True(t, errors.Is(err, ErrBadRequest))
}

func TestNewBindingAPIError(t *testing.T) {
	type payload struct {
		Title string `validate:"required"`
	}
	verr := validator.New().Struct(payload{})
	apiErr := NewBindingAPIError(verr)
	assert.Equal(t, http.StatusUnprocessableEntity, apiErr.StatusCode)
	assert.Equal(t, map[string]string{"Title": "The title field is required."}, apiErr.Details)

	apiErr = NewBindingAPIError(errors.New("unexpected EOF"))
	assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
}

func TestGetBearerToken(t *testing.T) {
	gin.SetMode(gin.TestMode)
	cases := map[string]string{
		"":               "",
		"Bearer abc":     "abc",
		"bearer   xyz":   "xyz",
		"Basic dXNlcg==": "",
		"Bearer a b":     "",
	}
	for header, want := range cases {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
		if header != "" {
			c.Request.Header.Set(AuthorizationHeader, header)
		}
		assert.Equal(t, want, GetBearerToken(c), header)
	}
}

func TestNormalizeTags(t *testing.T) {
	assert.Equal(t, "ramadan_tips", NormalizeTag("  Ramadan Tips "))
	assert.Equal(t, "conversion_story", NormalizeTag("conversion_story"))
	assert.Equal(t,
		[]string{"prayer", "new_muslim", "family"},
		NormalizeTags([]string{"Prayer", "new muslim", "", "prayer", "Family", "  "}),
	)
}
