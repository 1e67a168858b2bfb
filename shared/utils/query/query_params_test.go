package query

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testContext(t *testing.T, rawQuery string) *gin.Context {
	t.Helper()
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", "/?"+rawQuery, nil)
	return c
}

func TestParseListParamsDefaults(t *testing.T) {
	c := testContext(t, "")
	params := ParseListParams(c, 0, "createdAt", "desc")

	assert.Equal(t, 1, params.Page)
	assert.Equal(t, 0, params.Limit)
	assert.Equal(t, "createdAt", params.SortBy)
	assert.Equal(t, "desc", params.SortOrder)
}

func TestParseListParamsExplicit(t *testing.T) {
	c := testContext(t, "page=3&limit=25&sortBy=name&sortOrder=ASC")
	params := ParseListParams(c, 10, "createdAt", "desc")

	assert.Equal(t, 3, params.Page)
	assert.Equal(t, 25, params.Limit)
	assert.Equal(t, "name", params.SortBy)
	assert.Equal(t, "asc", params.SortOrder)
}

func TestParseListParamsClampsBadInput(t *testing.T) {
	c := testContext(t, "page=-2&limit=5000&sortOrder=sideways")
	params := ParseListParams(c, 10, "createdAt", "desc")

	assert.Equal(t, 1, params.Page)
	assert.Equal(t, 100, params.Limit)
	assert.Equal(t, "desc", params.SortOrder)
}

func TestBoolFlag(t *testing.T) {
	c := testContext(t, "featured=true")
	flag := BoolFlag(c, "featured")
	require.NotNil(t, flag)
	assert.True(t, *flag)

	assert.Nil(t, BoolFlag(c, "missing"))

	c = testContext(t, "featured=false")
	flag = BoolFlag(c, "featured")
	require.NotNil(t, flag)
	assert.False(t, *flag)
}

func TestActiveFlag(t *testing.T) {
	// defaults to active-only
	flag := ActiveFlag(testContext(t, ""))
	require.NotNil(t, flag)
	assert.True(t, *flag)

	// "all" disables the filter
	assert.Nil(t, ActiveFlag(testContext(t, "active=all")))

	flag = ActiveFlag(testContext(t, "active=false"))
	require.NotNil(t, flag)
	assert.False(t, *flag)
}

func TestBuildPaginationUnpaged(t *testing.T) {
	assert.Nil(t, BuildPagination(ListParams{Page: 1, Limit: 0}, 42))
}

func TestBuildPagination(t *testing.T) {
	p := BuildPagination(ListParams{Page: 2, Limit: 10}, 25)
	require.NotNil(t, p)
	assert.Equal(t, 2, p.Current)
	assert.Equal(t, int64(3), p.Total)
	assert.Equal(t, int64(25), p.Count)
	assert.True(t, p.HasNext)
	assert.True(t, p.HasPrev)

	last := BuildPagination(ListParams{Page: 3, Limit: 10}, 25)
	require.NotNil(t, last)
	assert.False(t, last.HasNext)
	assert.True(t, last.HasPrev)

	first := BuildPagination(ListParams{Page: 1, Limit: 10}, 25)
	require.NotNil(t, first)
	assert.True(t, first.HasNext)
	assert.False(t, first.HasPrev)
}
