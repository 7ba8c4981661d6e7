package application

import (
	"errors"

	"github.com/wise/expenses-tracker/internal/expenses/domain"
	finErrors "github.com/wise/expenses-tracker/internal/expenses/errors"
)

type MockExpenseRepository struct {
	expenses   []domain.Expense
	nextID     int64
	shouldFail bool
}

func (m *MockExpenseRepository) FindAllByUser(userID string) ([]domain.Expense, error) {
	if m.shouldFail {
		return nil, errors.New("repository error")
	}
	var owned []domain.Expense
	for _, expense := range m.expenses {
		if expense.UserID == userID {
			owned = append(owned, expense)
		}
	}
	return owned, nil
}

func (m *MockExpenseRepository) FindByIDAndUser(id int64, userID string) (*domain.Expense, error) {
	if m.shouldFail {
		return nil, errors.New("repository error")
	}
	for i := range m.expenses {
		if m.expenses[i].ID == id && m.expenses[i].UserID == userID {
			found := m.expenses[i]
			return &found, nil
		}
	}
	return nil, finErrors.ErrExpenseNotFound
}

func (m *MockExpenseRepository) Save(expense *domain.Expense) error {
	if m.shouldFail {
		return errors.New("repository error")
	}
	m.nextID++
	expense.ID = m.nextID
	m.expenses = append(m.expenses, *expense)
	return nil
}

func (m *MockExpenseRepository) Update(expense *domain.Expense) error {
	if m.shouldFail {
		return errors.New("repository error")
	}
	for i := range m.expenses {
		if m.expenses[i].ID == expense.ID && m.expenses[i].UserID == expense.UserID {
			m.expenses[i] = *expense
			return nil
		}
	}
	return finErrors.ErrExpenseNotFound
}

func (m *MockExpenseRepository) Delete(id int64, userID string) error {
	if m.shouldFail {
		return errors.New("repository error")
	}
	for i := range m.expenses {
		if m.expenses[i].ID == id && m.expenses[i].UserID == userID {
			m.expenses = append(m.expenses[:i], m.expenses[i+1:]...)
			return nil
		}
	}
	return finErrors.ErrExpenseNotFound
}

func (m *MockExpenseRepository) FindCategoryNamesByUser(userID string) ([]string, error) {
	if m.shouldFail {
		return nil, errors.New("repository error")
	}
	seen := make(map[string]struct{})
	var names []string
	for _, expense := range m.expenses {
		if expense.UserID != userID {
			continue
		}
		if _, ok := seen[expense.Category.Name]; ok {
			continue
		}
		seen[expense.Category.Name] = struct{}{}
		names = append(names, expense.Category.Name)
	}
	return names, nil
}

func (m *MockExpenseRepository) SumByCategoryAndUser(categoryName, userID string) (float64, error) {
	if m.shouldFail {
		return 0, errors.New("repository error")
	}
	var total float64
	for _, expense := range m.expenses {
		if expense.UserID == userID && expense.Category.Name == categoryName {
			total += expense.Amount
		}
	}
	return total, nil
}

type MockCategoryRepository struct {
	categories []domain.Category
	nextID     int64
	shouldFail bool
}

func (m *MockCategoryRepository) FindAll() ([]domain.Category, error) {
	if m.shouldFail {
		return nil, errors.New("repository error")
	}
	return m.categories, nil
}

func (m *MockCategoryRepository) FindByID(id int64) (*domain.Category, error) {
	if m.shouldFail {
		return nil, errors.New("repository error")
	}
	for i := range m.categories {
		if m.categories[i].ID == id {
			found := m.categories[i]
			return &found, nil
		}
	}
	return nil, finErrors.ErrCategoryNotFound
}

func (m *MockCategoryRepository) FindByName(name string) (*domain.Category, error) {
	if m.shouldFail {
		return nil, errors.New("repository error")
	}
	for i := range m.categories {
		if m.categories[i].Name == name {
			found := m.categories[i]
			return &found, nil
		}
	}
	return nil, finErrors.ErrCategoryNotFound
}

func (m *MockCategoryRepository) Save(category *domain.Category) error {
	if m.shouldFail {
		return errors.New("repository error")
	}
	m.nextID++
	category.ID = m.nextID
	m.categories = append(m.categories, *category)
	return nil
}

func (m *MockCategoryRepository) Update(category *domain.Category) error {
	if m.shouldFail {
		return errors.New("repository error")
	}
	for i := range m.categories {
		if m.categories[i].ID == category.ID {
			m.categories[i] = *category
			return nil
		}
	}
	return finErrors.ErrCategoryNotFound
}

func (m *MockCategoryRepository) Delete(id int64) error {
	if m.shouldFail {
		return errors.New("repository error")
	}
	for i := range m.categories {
		if m.categories[i].ID == id {
			m.categories = append(m.categories[:i], m.categories[i+1:]...)
			return nil
		}
	}
	return finErrors.ErrCategoryNotFound
}
