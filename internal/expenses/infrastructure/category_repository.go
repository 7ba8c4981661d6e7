package infrastructure

import (
	"database/sql"
	"errors"

	"github.com/wise/expenses-tracker/internal/expenses/domain"
	finErrors "github.com/wise/expenses-tracker/internal/expenses/errors"
)

type CategoryRepository struct {
	db *sql.DB
}

func NewCategoryRepository(db *sql.DB) *CategoryRepository {
	return &CategoryRepository{db: db}
}

func (r *CategoryRepository) FindAll() ([]domain.Category, error) {
	rows, err := r.db.Query("SELECT id, name FROM categories ORDER BY id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var categories []domain.Category
	for rows.Next() {
		var category domain.Category
		if err := rows.Scan(&category.ID, &category.Name); err != nil {
			return nil, err
		}
		categories = append(categories, category)
	}
	return categories, rows.Err()
}

func (r *CategoryRepository) FindByID(id int64) (*domain.Category, error) {
	var category domain.Category
	err := r.db.QueryRow("SELECT id, name FROM categories WHERE id = $1", id).
		Scan(&category.ID, &category.Name)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, finErrors.ErrCategoryNotFound
		}
		return nil, err
	}
	return &category, nil
}

func (r *CategoryRepository) FindByName(name string) (*domain.Category, error) {
	var category domain.Category
	err := r.db.QueryRow("SELECT id, name FROM categories WHERE name = $1", name).
		Scan(&category.ID, &category.Name)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, finErrors.ErrCategoryNotFound
		}
		return nil, err
	}
	return &category, nil
}

func (r *CategoryRepository) Save(category *domain.Category) error {
	return r.db.QueryRow("INSERT INTO categories (name) VALUES ($1) RETURNING id", category.Name).
		Scan(&category.ID)
}

func (r *CategoryRepository) Update(category *domain.Category) error {
	result, err := r.db.Exec("UPDATE categories SET name = $1 WHERE id = $2", category.Name, category.ID)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return finErrors.ErrCategoryNotFound
	}
	return nil
}

func (r *CategoryRepository) Delete(id int64) error {
	result, err := r.db.Exec("DELETE FROM categories WHERE id = $1", id)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return finErrors.ErrCategoryNotFound
	}
	return nil
}
