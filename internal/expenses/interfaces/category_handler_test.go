package interfaces

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wise/expenses-tracker/internal/expenses/domain"
)

func TestGetCategories(t *testing.T) {
	mock := &MockCategoryService{categories: []domain.Category{
		{ID: 1, Name: "food"},
		{ID: 2, Name: "travel"},
	}}
	handler := NewCategoryHandler(mock, respondJSON, respondError)

	rec := httptest.NewRecorder()
	handler.GetCategories(rec, httptest.NewRequest(http.MethodGet, "/api/categories", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	categories := body["categories"].([]interface{})
	require.Len(t, categories, 2)
	first := categories[0].(map[string]interface{})
	assert.Equal(t, "food", first["category_name"])
}

func TestGetCategory(t *testing.T) {
	mock := &MockCategoryService{categories: []domain.Category{{ID: 1, Name: "food"}}}
	handler := NewCategoryHandler(mock, respondJSON, respondError)

	req := httptest.NewRequest(http.MethodGet, "/api/categories/1", nil)
	req.SetPathValue("id", "1")
	rec := httptest.NewRecorder()
	handler.GetCategory(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	category := body["category"].(map[string]interface{})
	assert.Equal(t, "food", category["category_name"])
}

func TestGetCategory_NotFound(t *testing.T) {
	handler := NewCategoryHandler(&MockCategoryService{}, respondJSON, respondError)

	req := httptest.NewRequest(http.MethodGet, "/api/categories/9", nil)
	req.SetPathValue("id", "9")
	rec := httptest.NewRecorder()
	handler.GetCategory(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCreateCategory(t *testing.T) {
	handler := NewCategoryHandler(&MockCategoryService{}, respondJSON, respondError)

	req := httptest.NewRequest(http.MethodPost, "/api/categories",
		bytes.NewBufferString(`{"category_name":"food"}`))
	rec := httptest.NewRecorder()
	handler.CreateCategory(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	body := decodeBody(t, rec)
	category := body["category"].(map[string]interface{})
	assert.Equal(t, "food", category["category_name"])
}

func TestCreateCategory_BlankName(t *testing.T) {
	handler := NewCategoryHandler(&MockCategoryService{}, respondJSON, respondError)

	for _, payload := range []string{`{"category_name":""}`, `{}`, `{broken`} {
		req := httptest.NewRequest(http.MethodPost, "/api/categories", bytes.NewBufferString(payload))
		rec := httptest.NewRecorder()
		handler.CreateCategory(rec, req)

		require.Equal(t, http.StatusBadRequest, rec.Code, payload)
		body := decodeBody(t, rec)
		assert.Equal(t, "Category name cannot be blank", body["message"])
	}
}

func TestUpdateCategory(t *testing.T) {
	mock := &MockCategoryService{categories: []domain.Category{{ID: 1, Name: "food"}}}
	handler := NewCategoryHandler(mock, respondJSON, respondError)

	req := httptest.NewRequest(http.MethodPut, "/api/categories/1",
		bytes.NewBufferString(`{"category_name":"groceries"}`))
	req.SetPathValue("id", "1")
	rec := httptest.NewRecorder()
	handler.UpdateCategory(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	category := body["category"].(map[string]interface{})
	assert.Equal(t, "groceries", category["category_name"])
}

func TestUpdateCategory_NotFound(t *testing.T) {
	handler := NewCategoryHandler(&MockCategoryService{}, respondJSON, respondError)

	req := httptest.NewRequest(http.MethodPut, "/api/categories/9",
		bytes.NewBufferString(`{"category_name":"groceries"}`))
	req.SetPathValue("id", "9")
	rec := httptest.NewRecorder()
	handler.UpdateCategory(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDeleteCategory(t *testing.T) {
	mock := &MockCategoryService{categories: []domain.Category{{ID: 1, Name: "food"}}}
	handler := NewCategoryHandler(mock, respondJSON, respondError)

	req := httptest.NewRequest(http.MethodDelete, "/api/categories/1", nil)
	req.SetPathValue("id", "1")
	rec := httptest.NewRecorder()
	handler.DeleteCategory(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	category := body["category"].(map[string]interface{})
	assert.Equal(t, "food", category["category_name"])
}

func TestDeleteCategory_InvalidID(t *testing.T) {
	handler := NewCategoryHandler(&MockCategoryService{}, respondJSON, respondError)

	req := httptest.NewRequest(http.MethodDelete, "/api/categories/abc", nil)
	req.SetPathValue("id", "abc")
	rec := httptest.NewRecorder()
	handler.DeleteCategory(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
