package models

// Category is a named, colored tag grouping todos.
// Color is generated once at creation and never changes.
type Category struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
}

// NewCategory is the POST body for creating a category
type NewCategory struct {
	Name  string `json:"name"`
	Color string `json:"color"`
}

// CategoryColor returns the color of the category with the given id.
// Empty or dangling references fall back to DefaultCategoryColor.
func CategoryColor(categories []Category, categoryID string) string {
	if categoryID == "" {
		return DefaultCategoryColor
	}
	for _, c := range categories {
		if c.ID == categoryID {
			if c.Color == "" {
				return DefaultCategoryColor
			}
			return c.Color
		}
	}
	return DefaultCategoryColor
}

// CategoryNames returns the names of the given categories in order
func CategoryNames(categories []Category) []string {
	names := make([]string, len(categories))
	for i, c := range categories {
		names[i] = c.Name
	}
	return names
}

// FindCategory returns the category with the given id, if any
func FindCategory(categories []Category, categoryID string) (Category, bool) {
	for _, c := range categories {
		if c.ID == categoryID {
			return c, true
		}
	}
	return Category{}, false
}

// GetID returns the category's id
func (c Category) GetID() string {
	return c.ID
}
