package infrastructure

import (
	"database/sql"
	"errors"

	"github.com/wise/expenses-tracker/internal/expenses/domain"
	finErrors "github.com/wise/expenses-tracker/internal/expenses/errors"
)

type ExpenseRepository struct {
	db *sql.DB
}

func NewExpenseRepository(db *sql.DB) *ExpenseRepository {
	return &ExpenseRepository{db: db}
}

const expenseColumns = `
	e.id, e.title, e.date, e.pay_by, e.amount, e.description, e.add_to_report,
	e.user_id, c.id, c.name
`

func scanExpense(row interface{ Scan(...interface{}) error }) (*domain.Expense, error) {
	var expense domain.Expense
	err := row.Scan(
		&expense.ID, &expense.Title, &expense.Date, &expense.PayBy, &expense.Amount,
		&expense.Description, &expense.AddToReport, &expense.UserID,
		&expense.Category.ID, &expense.Category.Name,
	)
	if err != nil {
		return nil, err
	}
	return &expense, nil
}

func (r *ExpenseRepository) FindAllByUser(userID string) ([]domain.Expense, error) {
	query := `
		SELECT ` + expenseColumns + `
		FROM expenses e
		JOIN categories c ON c.id = e.category_id
		WHERE e.user_id = $1
		ORDER BY e.date DESC
	`
	rows, err := r.db.Query(query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var expenses []domain.Expense
	for rows.Next() {
		expense, err := scanExpense(rows)
		if err != nil {
			return nil, err
		}
		expenses = append(expenses, *expense)
	}
	return expenses, rows.Err()
}

func (r *ExpenseRepository) FindByIDAndUser(id int64, userID string) (*domain.Expense, error) {
	query := `
		SELECT ` + expenseColumns + `
		FROM expenses e
		JOIN categories c ON c.id = e.category_id
		WHERE e.id = $1 AND e.user_id = $2
	`
	expense, err := scanExpense(r.db.QueryRow(query, id, userID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, finErrors.ErrExpenseNotFound
		}
		return nil, err
	}
	return expense, nil
}

func (r *ExpenseRepository) Save(expense *domain.Expense) error {
	query := `
		INSERT INTO expenses (title, date, pay_by, amount, description, add_to_report, user_id, category_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id
	`
	return r.db.QueryRow(query,
		expense.Title, expense.Date, expense.PayBy, expense.Amount,
		expense.Description, expense.AddToReport, expense.UserID, expense.Category.ID,
	).Scan(&expense.ID)
}

func (r *ExpenseRepository) Update(expense *domain.Expense) error {
	query := `
		UPDATE expenses
		SET title = $1, date = $2, pay_by = $3, amount = $4, description = $5,
		    add_to_report = $6, category_id = $7
		WHERE id = $8 AND user_id = $9
	`
	result, err := r.db.Exec(query,
		expense.Title, expense.Date, expense.PayBy, expense.Amount,
		expense.Description, expense.AddToReport, expense.Category.ID,
		expense.ID, expense.UserID,
	)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return finErrors.ErrExpenseNotFound
	}
	return nil
}

func (r *ExpenseRepository) Delete(id int64, userID string) error {
	result, err := r.db.Exec(`DELETE FROM expenses WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return finErrors.ErrExpenseNotFound
	}
	return nil
}

func (r *ExpenseRepository) FindCategoryNamesByUser(userID string) ([]string, error) {
	query := `
		SELECT DISTINCT c.name
		FROM expenses e
		JOIN categories c ON c.id = e.category_id
		WHERE e.user_id = $1
	`
	rows, err := r.db.Query(query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		names = append(names, name)
	}
	return names, rows.Err()
}

func (r *ExpenseRepository) SumByCategoryAndUser(categoryName, userID string) (float64, error) {
	query := `
		SELECT COALESCE(SUM(e.amount), 0.0)
		FROM expenses e
		JOIN categories c ON c.id = e.category_id
		WHERE c.name = $1 AND e.user_id = $2
	`
	var total float64
	err := r.db.QueryRow(query, categoryName, userID).Scan(&total)
	if err != nil {
		return 0, err
	}
	return total, nil
}
