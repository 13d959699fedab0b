package models

// DefaultCategoryColor is shown behind todos without a (known) category
const DefaultCategoryColor = "#f0f0f0"

// Collection names on the backend
const (
	TodosCollection      = "todos"
	CategoriesCollection = "categories"
)
