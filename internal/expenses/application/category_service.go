package application

import (
	"github.com/wise/expenses-tracker/internal/expenses/domain"
)

type CategoryService struct {
	repo domain.CategoryRepository
}

func NewCategoryService(repo domain.CategoryRepository) *CategoryService {
	return &CategoryService{repo: repo}
}

func (s *CategoryService) GetAllCategories() ([]domain.Category, error) {
	return s.repo.FindAll()
}

func (s *CategoryService) GetCategoryByID(id int64) (*domain.Category, error) {
	return s.repo.FindByID(id)
}

func (s *CategoryService) GetCategoryByName(name string) (*domain.Category, error) {
	return s.repo.FindByName(name)
}

func (s *CategoryService) CreateCategory(name string) (*domain.Category, error) {
	category := &domain.Category{Name: name}
	if err := s.repo.Save(category); err != nil {
		return nil, err
	}
	return category, nil
}

func (s *CategoryService) UpdateCategory(id int64, name string) (*domain.Category, error) {
	category, err := s.repo.FindByID(id)
	if err != nil {
		return nil, err
	}

	category.Name = name
	if err := s.repo.Update(category); err != nil {
		return nil, err
	}
	return category, nil
}

// DeleteCategory removes the category and returns the removed record.
func (s *CategoryService) DeleteCategory(id int64) (*domain.Category, error) {
	category, err := s.repo.FindByID(id)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Delete(id); err != nil {
		return nil, err
	}
	return category, nil
}
