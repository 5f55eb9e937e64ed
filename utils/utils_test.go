package utils

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParsePaginationDefaults(t *testing.T) {
	req := httptest.NewRequest("GET", "/reviews", nil)

	skip, limit := ParsePagination(req, 20, 100)

	assert.Equal(t, int64(0), skip)
	assert.Equal(t, int64(20), limit)
}

func TestParsePaginationPageAndClamp(t *testing.T) {
	req := httptest.NewRequest("GET", "/reviews?page=3&limit=50", nil)
	skip, limit := ParsePagination(req, 20, 100)
	assert.Equal(t, int64(100), skip)
	assert.Equal(t, int64(50), limit)

	req = httptest.NewRequest("GET", "/reviews?limit=9999", nil)
	_, limit = ParsePagination(req, 20, 100)
	assert.Equal(t, int64(100), limit)

	req = httptest.NewRequest("GET", "/reviews?page=-2&limit=-1", nil)
	skip, limit = ParsePagination(req, 20, 100)
	assert.Equal(t, int64(0), skip)
	assert.Equal(t, int64(20), limit)
}

func TestGenerateRandomString(t *testing.T) {
	s := GenerateRandomString(16)
	assert.Len(t, s, 16)
	assert.NotEqual(t, s, GenerateRandomString(16))
}

func TestGetUUID(t *testing.T) {
	a, b := GetUUID(), GetUUID()
	assert.NotEmpty(t, a)
	assert.NotEqual(t, a, b)
}

func TestRespondWithError(t *testing.T) {
	rec := httptest.NewRecorder()
	RespondWithError(rec, 404, "Tool not found")

	assert.Equal(t, 404, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"error":"Tool not found"}`, rec.Body.String())
}
