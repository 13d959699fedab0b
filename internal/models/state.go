package models

// LoadingState is the loading/error pair every store exposes.
// An empty Error means the last operation did not fail.
type LoadingState struct {
	IsLoading bool   `json:"isLoading"`
	Error     string `json:"error,omitempty"`
}

// TodoState is a point-in-time snapshot of the todo store
type TodoState struct {
	LoadingState
	Todos []Todo `json:"todos"`
}

// CategoryState is a point-in-time snapshot of the category store
type CategoryState struct {
	LoadingState
	Categories []Category `json:"categories"`
}

// Stats counts completed and pending todos
func (s TodoState) Stats() (done, pending int) {
	for _, t := range s.Todos {
		if t.Done {
			done++
		} else {
			pending++
		}
	}
	return done, pending
}
