package utils

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func decode(t *testing.T, rec *httptest.ResponseRecorder) Response {
	t.Helper()
	var resp Response
	assert.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	return resp
}

func TestRespondWithJSON(t *testing.T) {
	rec := httptest.NewRecorder()
	RespondWithJSON(rec, http.StatusOK, map[string]string{"id": "op-1"})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	resp := decode(t, rec)
	assert.True(t, resp.Success)
	assert.NotNil(t, resp.Data)
	assert.Empty(t, resp.Error)
}

func TestRespondWithPagination(t *testing.T) {
	rec := httptest.NewRecorder()
	RespondWithPagination(rec, http.StatusOK, []string{"a"}, Pagination{Page: 1, Limit: 10, Total: 25, TotalPages: 3})

	resp := decode(t, rec)
	assert.True(t, resp.Success)
	assert.NotNil(t, resp.Pagination)
	assert.Equal(t, 3, resp.Pagination.TotalPages)
}

func TestRespondWithError(t *testing.T) {
	t.Run("verbose mode includes the detail", func(t *testing.T) {
		SetVerboseErrors(true)
		rec := httptest.NewRecorder()
		RespondWithError(rec, http.StatusInternalServerError, "Internal server error", "pq: relation lost")

		resp := decode(t, rec)
		assert.False(t, resp.Success)
		assert.Equal(t, "Internal server error", resp.Message)
		assert.Equal(t, "pq: relation lost", resp.Error)
	})

	t.Run("production mode hides the detail", func(t *testing.T) {
		SetVerboseErrors(false)
		defer SetVerboseErrors(true)

		rec := httptest.NewRecorder()
		RespondWithError(rec, http.StatusInternalServerError, "Internal server error", "pq: relation lost")

		resp := decode(t, rec)
		assert.Equal(t, "Internal server error", resp.Message)
		assert.Empty(t, resp.Error)
	})
}

func TestValidateStruct(t *testing.T) {
	type req struct {
		Target string `validate:"required"`
		Code   string `validate:"required"`
	}

	assert.NoError(t, ValidateStruct(req{Target: "a", Code: "b"}))

	err := ValidateStruct(req{})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "Target")
	assert.Contains(t, err.Error(), "Code")
}

func TestParsePagination(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/operations?page=3&limit=50", nil)
	page, limit := ParsePagination(req)
	assert.Equal(t, 3, page)
	assert.Equal(t, 50, limit)

	req = httptest.NewRequest(http.MethodGet, "/api/operations?page=abc", nil)
	page, limit = ParsePagination(req)
	assert.Equal(t, 0, page)
	assert.Equal(t, 0, limit)
}
