package domain

import "time"

type Expense struct {
	ID          int64
	Title       string
	Date        time.Time
	PayBy       string
	Amount      float64
	Description string
	AddToReport bool
	UserID      string // user UUID
	Category    Category
}

type ExpenseRepository interface {
	FindAllByUser(userID string) ([]Expense, error)
	FindByIDAndUser(id int64, userID string) (*Expense, error)
	Save(expense *Expense) error
	Update(expense *Expense) error
	Delete(id int64, userID string) error
	FindCategoryNamesByUser(userID string) ([]string, error)
	SumByCategoryAndUser(categoryName, userID string) (float64, error)
}
