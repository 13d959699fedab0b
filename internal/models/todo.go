package models

// Todo is a single actionable item with completion state and an optional
// category tag. The JSON shape matches the backend's todos collection.
type Todo struct {
	ID         string `json:"id"`
	Text       string `json:"text"`
	Done       bool   `json:"done"`
	CategoryID string `json:"categoryId"`
}

// NewTodo is the POST body for creating a todo. The backend assigns the id.
type NewTodo struct {
	Text       string `json:"text"`
	Done       bool   `json:"done"`
	CategoryID string `json:"categoryId"`
}

// HasCategory reports whether the todo is tagged with a category
func (t Todo) HasCategory() bool {
	return t.CategoryID != ""
}

// GetID returns the todo's id
func (t Todo) GetID() string {
	return t.ID
}
