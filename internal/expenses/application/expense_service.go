package application

import (
	"errors"

	"github.com/wise/expenses-tracker/internal/expenses/domain"
	finErrors "github.com/wise/expenses-tracker/internal/expenses/errors"
)

// CategoryServiceInterface is the slice of the category service the expense
// service needs for category assignment.
type CategoryServiceInterface interface {
	GetCategoryByName(name string) (*domain.Category, error)
	CreateCategory(name string) (*domain.Category, error)
}

type ExpenseService struct {
	repo            domain.ExpenseRepository
	categoryService CategoryServiceInterface
}

func NewExpenseService(repo domain.ExpenseRepository, categoryService CategoryServiceInterface) *ExpenseService {
	return &ExpenseService{
		repo:            repo,
		categoryService: categoryService,
	}
}

// GetAllExpenses returns only the expenses belonging to the given user.
func (s *ExpenseService) GetAllExpenses(userID string) ([]domain.Expense, error) {
	return s.repo.FindAllByUser(userID)
}

func (s *ExpenseService) GetExpenseByID(id int64, userID string) (*domain.Expense, error) {
	return s.repo.FindByIDAndUser(id, userID)
}

func (s *ExpenseService) CreateExpense(userID string, expense domain.Expense) (*domain.Expense, error) {
	if err := validateExpense(&expense); err != nil {
		return nil, err
	}

	category, err := s.assignCategory(expense.Category.Name)
	if err != nil {
		return nil, err
	}

	expense.UserID = userID
	expense.Category = *category
	if err := s.repo.Save(&expense); err != nil {
		return nil, err
	}
	return &expense, nil
}

func (s *ExpenseService) UpdateExpense(id int64, userID string, expense domain.Expense) (*domain.Expense, error) {
	existing, err := s.repo.FindByIDAndUser(id, userID)
	if err != nil {
		return nil, err
	}

	if err := validateExpense(&expense); err != nil {
		return nil, err
	}

	category, err := s.assignCategory(expense.Category.Name)
	if err != nil {
		return nil, err
	}

	expense.ID = existing.ID
	expense.UserID = userID
	expense.Category = *category
	if err := s.repo.Update(&expense); err != nil {
		return nil, err
	}
	return &expense, nil
}

// DeleteExpense removes the expense and returns the removed record, so the
// handler can echo what was deleted.
func (s *ExpenseService) DeleteExpense(id int64, userID string) (*domain.Expense, error) {
	existing, err := s.repo.FindByIDAndUser(id, userID)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Delete(id, userID); err != nil {
		return nil, err
	}
	return existing, nil
}

// GetCategoryExpenses sums the user's expenses per category name.
func (s *ExpenseService) GetCategoryExpenses(userID string) (map[string]float64, error) {
	names, err := s.repo.FindCategoryNamesByUser(userID)
	if err != nil {
		return nil, err
	}

	summary := make(map[string]float64, len(names))
	for _, name := range names {
		total, err := s.repo.SumByCategoryAndUser(name, userID)
		if err != nil {
			return nil, err
		}
		summary[name] = total
	}
	return summary, nil
}

// assignCategory resolves a category by name, creating it on first use.
func (s *ExpenseService) assignCategory(name string) (*domain.Category, error) {
	if name == "" {
		return nil, finErrors.ErrCategoryRequired
	}

	category, err := s.categoryService.GetCategoryByName(name)
	if err == nil {
		return category, nil
	}
	if !errors.Is(err, finErrors.ErrCategoryNotFound) {
		return nil, err
	}

	return s.categoryService.CreateCategory(name)
}

func validateExpense(expense *domain.Expense) error {
	if expense.Title == "" {
		return finErrors.ErrTitleRequired
	}
	if expense.Date.IsZero() {
		return finErrors.ErrDateRequired
	}
	if expense.PayBy == "" {
		return finErrors.ErrPayByRequired
	}
	if expense.Amount <= 0 {
		return finErrors.ErrInvalidAmount
	}
	return nil
}
