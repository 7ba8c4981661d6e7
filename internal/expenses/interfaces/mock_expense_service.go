package interfaces

import (
	"errors"

	"github.com/wise/expenses-tracker/internal/expenses/domain"
	finErrors "github.com/wise/expenses-tracker/internal/expenses/errors"
)

type MockExpenseService struct {
	expenses   []domain.Expense
	summary    map[string]float64
	shouldFail bool
}

func (m *MockExpenseService) find(id int64, userID string) (*domain.Expense, error) {
	for i := range m.expenses {
		if m.expenses[i].ID == id && m.expenses[i].UserID == userID {
			return &m.expenses[i], nil
		}
	}
	return nil, finErrors.ErrExpenseNotFound
}

func (m *MockExpenseService) GetAllExpenses(userID string) ([]domain.Expense, error) {
	if m.shouldFail {
		return nil, errors.New("service error")
	}
	var owned []domain.Expense
	for _, expense := range m.expenses {
		if expense.UserID == userID {
			owned = append(owned, expense)
		}
	}
	return owned, nil
}

func (m *MockExpenseService) GetExpenseByID(id int64, userID string) (*domain.Expense, error) {
	if m.shouldFail {
		return nil, errors.New("service error")
	}
	return m.find(id, userID)
}

func (m *MockExpenseService) CreateExpense(userID string, expense domain.Expense) (*domain.Expense, error) {
	if m.shouldFail {
		return nil, errors.New("service error")
	}
	if expense.Category.Name == "" {
		return nil, finErrors.ErrCategoryRequired
	}
	expense.ID = int64(len(m.expenses) + 1)
	expense.UserID = userID
	m.expenses = append(m.expenses, expense)
	return &expense, nil
}

func (m *MockExpenseService) UpdateExpense(id int64, userID string, expense domain.Expense) (*domain.Expense, error) {
	if m.shouldFail {
		return nil, errors.New("service error")
	}
	existing, err := m.find(id, userID)
	if err != nil {
		return nil, err
	}
	expense.ID = existing.ID
	expense.UserID = userID
	*existing = expense
	return existing, nil
}

func (m *MockExpenseService) DeleteExpense(id int64, userID string) (*domain.Expense, error) {
	if m.shouldFail {
		return nil, errors.New("service error")
	}
	existing, err := m.find(id, userID)
	if err != nil {
		return nil, err
	}
	deleted := *existing
	return &deleted, nil
}

func (m *MockExpenseService) GetCategoryExpenses(userID string) (map[string]float64, error) {
	if m.shouldFail {
		return nil, errors.New("service error")
	}
	return m.summary, nil
}
