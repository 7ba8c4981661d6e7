package domain

// Category is the shared expense category catalog. Travel, Food, Shopping, etc.
type Category struct {
	ID   int64
	Name string
}

type CategoryRepository interface {
	FindAll() ([]Category, error)
	FindByID(id int64) (*Category, error)
	FindByName(name string) (*Category, error)
	Save(category *Category) error
	Update(category *Category) error
	Delete(id int64) error
}
