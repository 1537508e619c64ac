package http

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/baladia/fuel-service/internal/repository"
)

func testContext(t *testing.T, url string) *gin.Context {
	t.Helper()
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", url, nil)
	return c
}

func TestPagingDefaults(t *testing.T) {
	c := testContext(t, "/api/vehicles")
	page, pageSize := paging(c)
	require.Equal(t, 1, page)
	require.Equal(t, repository.DefaultPageSize, pageSize)
}

func TestPagingExplicit(t *testing.T) {
	c := testContext(t, "/api/vehicles?page=3&per_page=50")
	page, pageSize := paging(c)
	require.Equal(t, 3, page)
	require.Equal(t, 50, pageSize)
}

func TestPagingIgnoresOutOfRange(t *testing.T) {
	c := testContext(t, "/api/vehicles?page=-1&per_page=0")
	page, pageSize := paging(c)
	require.Equal(t, 1, page)
	require.Equal(t, repository.DefaultPageSize, pageSize)
}

func TestPagingCapsPageSize(t *testing.T) {
	c := testContext(t, "/api/vehicles?per_page=9999")
	_, pageSize := paging(c)
	require.Equal(t, maxPageSize, pageSize)
}

func TestQueryInt64(t *testing.T) {
	c := testContext(t, "/api/vehicles?status_oid=7")
	value, err := queryInt64(c, "status_oid")
	require.NoError(t, err)
	require.EqualValues(t, 7, *value)

	value, err = queryInt64(c, "absent")
	require.NoError(t, err)
	require.Nil(t, value)

	c = testContext(t, "/api/vehicles?status_oid=abc")
	_, err = queryInt64(c, "status_oid")
	require.Error(t, err)
}

func TestQueryDateLayouts(t *testing.T) {
	c := testContext(t, "/api/fuel-logs?date_from=2025-05-01")
	value, err := queryDate(c, "date_from")
	require.NoError(t, err)
	require.Equal(t, 2025, value.Year())

	c = testContext(t, "/api/fuel-logs?date_from=2025-05-01T10:30:00")
	value, err = queryDate(c, "date_from")
	require.NoError(t, err)
	require.Equal(t, 10, value.Hour())

	c = testContext(t, "/api/fuel-logs?date_from=not-a-date")
	_, err = queryDate(c, "date_from")
	require.Error(t, err)
}
