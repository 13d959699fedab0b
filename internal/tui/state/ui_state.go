package state

// Mode represents the current interaction mode of the TUI.
// Each mode determines which keyboard shortcuts are active and what UI is displayed.
type Mode int

const (
	NormalMode        Mode = iota // Default navigation mode
	AddTodoMode                   // Typing a new todo
	AddCategoryMode               // Typing a new category name
	DeleteConfirmMode             // Confirming todo deletion
	HelpMode                      // Displaying help screen
)

// String returns the label shown in the status bar
func (m Mode) String() string {
	switch m {
	case AddTodoMode:
		return "ADD TODO"
	case AddCategoryMode:
		return "ADD CATEGORY"
	case DeleteConfirmMode:
		return "DELETE"
	case HelpMode:
		return "HELP"
	default:
		return "NORMAL"
	}
}

// UIState manages the user interface state: the selected row, the category
// filter, terminal dimensions and the current interaction mode.
type UIState struct {
	// selected is the index of the highlighted todo in the visible list
	selected int

	// filterCategoryID limits the list to one category when non-empty
	filterCategoryID string

	width  int
	height int

	mode Mode
}

// NewUIState creates a new UIState in normal mode with nothing selected
func NewUIState() *UIState {
	return &UIState{mode: NormalMode}
}

// Selected returns the index of the highlighted todo
func (s *UIState) Selected() int {
	return s.selected
}

// MoveUp moves the selection up one row. Returns false at the top.
func (s *UIState) MoveUp() bool {
	if s.selected == 0 {
		return false
	}
	s.selected--
	return true
}

// MoveDown moves the selection down one row within a list of count items.
// Returns false at the bottom.
func (s *UIState) MoveDown(count int) bool {
	if s.selected >= count-1 {
		return false
	}
	s.selected++
	return true
}

// Clamp keeps the selection inside a list of count items, e.g. after a delete
func (s *UIState) Clamp(count int) {
	if s.selected >= count {
		s.selected = count - 1
	}
	if s.selected < 0 {
		s.selected = 0
	}
}

// FilterCategoryID returns the category the list is limited to, or ""
func (s *UIState) FilterCategoryID() string {
	return s.filterCategoryID
}

// SetFilterCategoryID limits the list to one category and resets the selection
func (s *UIState) SetFilterCategoryID(id string) {
	s.filterCategoryID = id
	s.selected = 0
}

// Mode returns the current interaction mode
func (s *UIState) Mode() Mode {
	return s.mode
}

// SetMode switches the interaction mode
func (s *UIState) SetMode(mode Mode) {
	s.mode = mode
}

// SetSize records the terminal dimensions
func (s *UIState) SetSize(width, height int) {
	s.width = width
	s.height = height
}

// Width returns the terminal width
func (s *UIState) Width() int {
	return s.width
}

// Height returns the terminal height
func (s *UIState) Height() int {
	return s.height
}

// ListHeight is the number of todo rows that fit below the header and above
// the input and status lines. It is at least 1.
func (s *UIState) ListHeight() int {
	const chrome = 6
	if s.height-chrome < 1 {
		return 1
	}
	return s.height - chrome
}

// ScrollOffset returns the first visible row so the selection stays on screen
func (s *UIState) ScrollOffset() int {
	h := s.ListHeight()
	if s.selected < h {
		return 0
	}
	return s.selected - h + 1
}
