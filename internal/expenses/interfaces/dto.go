package interfaces

import (
	"time"

	"github.com/wise/expenses-tracker/internal/expenses/domain"
)

type CategoryDTO struct {
	ID   int64  `json:"category_id"`
	Name string `json:"category_name"`
}

type ExpenseDTO struct {
	ID          int64        `json:"id"`
	Title       string       `json:"title"`
	Date        time.Time    `json:"date"`
	PayBy       string       `json:"payBy"`
	Amount      float64      `json:"amount"`
	Description string       `json:"description"`
	AddToReport bool         `json:"add_to_report"`
	Category    *CategoryDTO `json:"category"`
}

func toCategoryDTO(category domain.Category) *CategoryDTO {
	return &CategoryDTO{ID: category.ID, Name: category.Name}
}

func toExpenseDTO(expense domain.Expense) ExpenseDTO {
	return ExpenseDTO{
		ID:          expense.ID,
		Title:       expense.Title,
		Date:        expense.Date,
		PayBy:       expense.PayBy,
		Amount:      expense.Amount,
		Description: expense.Description,
		AddToReport: expense.AddToReport,
		Category:    toCategoryDTO(expense.Category),
	}
}

func toExpenseDTOs(expenses []domain.Expense) []ExpenseDTO {
	dtos := make([]ExpenseDTO, 0, len(expenses))
	for _, expense := range expenses {
		dtos = append(dtos, toExpenseDTO(expense))
	}
	return dtos
}

func (dto ExpenseDTO) toDomain() domain.Expense {
	expense := domain.Expense{
		ID:          dto.ID,
		Title:       dto.Title,
		Date:        dto.Date,
		PayBy:       dto.PayBy,
		Amount:      dto.Amount,
		Description: dto.Description,
		AddToReport: dto.AddToReport,
	}
	if dto.Category != nil {
		expense.Category = domain.Category{ID: dto.Category.ID, Name: dto.Category.Name}
	}
	return expense
}
