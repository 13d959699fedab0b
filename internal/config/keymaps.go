package config

// KeyMappings defines all configurable key bindings
type KeyMappings struct {
	// Todos
	AddTodo        string `yaml:"add_todo" toml:"add_todo"`
	ToggleTodo     string `yaml:"toggle_todo" toml:"toggle_todo"`
	CycleCategory  string `yaml:"cycle_category" toml:"cycle_category"`
	DeleteTodo     string `yaml:"delete_todo" toml:"delete_todo"`
	FilterCategory string `yaml:"filter_category" toml:"filter_category"`

	// Categories
	AddCategory string `yaml:"add_category" toml:"add_category"`

	// Navigation
	PrevTodo string `yaml:"prev_todo" toml:"prev_todo"`
	NextTodo string `yaml:"next_todo" toml:"next_todo"`

	// Other
	Refresh    string `yaml:"refresh" toml:"refresh"`
	ClearError string `yaml:"clear_error" toml:"clear_error"`
	ShowHelp   string `yaml:"show_help" toml:"show_help"`
	Quit       string `yaml:"quit" toml:"quit"`
}

// DefaultKeyMappings returns the default key mappings
func DefaultKeyMappings() KeyMappings {
	return KeyMappings{
		AddTodo:        "a",
		ToggleTodo:     " ",
		CycleCategory:  "c",
		DeleteTodo:     "d",
		FilterCategory: "f",

		AddCategory: "C",

		PrevTodo: "k",
		NextTodo: "j",

		Refresh:    "r",
		ClearError: "x",
		ShowHelp:   "?",
		Quit:       "q",
	}
}

// applyDefaults fills in any missing key mappings with defaults
func (k *KeyMappings) applyDefaults() {
	defaults := DefaultKeyMappings()

	if k.AddTodo == "" {
		k.AddTodo = defaults.AddTodo
	}
	if k.ToggleTodo == "" {
		k.ToggleTodo = defaults.ToggleTodo
	}
	if k.CycleCategory == "" {
		k.CycleCategory = defaults.CycleCategory
	}
	if k.DeleteTodo == "" {
		k.DeleteTodo = defaults.DeleteTodo
	}
	if k.FilterCategory == "" {
		k.FilterCategory = defaults.FilterCategory
	}
	if k.AddCategory == "" {
		k.AddCategory = defaults.AddCategory
	}
	if k.PrevTodo == "" {
		k.PrevTodo = defaults.PrevTodo
	}
	if k.NextTodo == "" {
		k.NextTodo = defaults.NextTodo
	}
	if k.Refresh == "" {
		k.Refresh = defaults.Refresh
	}
	if k.ClearError == "" {
		k.ClearError = defaults.ClearError
	}
	if k.ShowHelp == "" {
		k.ShowHelp = defaults.ShowHelp
	}
	if k.Quit == "" {
		k.Quit = defaults.Quit
	}
}
