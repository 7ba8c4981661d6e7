package interfaces

import (
	"errors"

	"github.com/wise/expenses-tracker/internal/expenses/domain"
	finErrors "github.com/wise/expenses-tracker/internal/expenses/errors"
)

type MockCategoryService struct {
	categories []domain.Category
	shouldFail bool
}

func (m *MockCategoryService) GetAllCategories() ([]domain.Category, error) {
	if m.shouldFail {
		return nil, errors.New("service error")
	}
	return m.categories, nil
}

func (m *MockCategoryService) GetCategoryByID(id int64) (*domain.Category, error) {
	if m.shouldFail {
		return nil, errors.New("service error")
	}
	for i := range m.categories {
		if m.categories[i].ID == id {
			return &m.categories[i], nil
		}
	}
	return nil, finErrors.ErrCategoryNotFound
}

func (m *MockCategoryService) CreateCategory(name string) (*domain.Category, error) {
	if m.shouldFail {
		return nil, errors.New("service error")
	}
	category := domain.Category{ID: int64(len(m.categories) + 1), Name: name}
	m.categories = append(m.categories, category)
	return &category, nil
}

func (m *MockCategoryService) UpdateCategory(id int64, name string) (*domain.Category, error) {
	if m.shouldFail {
		return nil, errors.New("service error")
	}
	category, err := m.GetCategoryByID(id)
	if err != nil {
		return nil, err
	}
	category.Name = name
	return category, nil
}

func (m *MockCategoryService) DeleteCategory(id int64) (*domain.Category, error) {
	if m.shouldFail {
		return nil, errors.New("service error")
	}
	category, err := m.GetCategoryByID(id)
	if err != nil {
		return nil, err
	}
	deleted := *category
	return &deleted, nil
}
