package todo

import (
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thenoetrevino/pastel/internal/cli"
	"github.com/thenoetrevino/pastel/internal/models"
	clitest "github.com/thenoetrevino/pastel/internal/testutil/cli"
)

var seedCategories = []models.Category{
	{ID: "c1", Name: "Errands", Color: "#ffd1dc"},
	{ID: "c2", Name: "Work", Color: "#d1e8ff"},
}

func TestAddTodo_Positive(t *testing.T) {
	backend, app := clitest.SetupCLITest(t)
	backend.Seed(nil, seedCategories)

	t.Run("default output", func(t *testing.T) {
		output, err := clitest.ExecuteCLICommand(t, app, AddCmd(), []string{"Buy", "milk"})
		require.NoError(t, err)
		assert.Contains(t, output, "Added todo")
		assert.Contains(t, output, "Buy milk")
	})

	t.Run("quiet mode prints the id", func(t *testing.T) {
		output, err := clitest.ExecuteCLICommand(t, app, AddCmd(), []string{"Walk dog", "--quiet"})
		require.NoError(t, err)

		id := strings.TrimSpace(output)
		require.NotEmpty(t, id)
		todo, ok := app.Todos.Get(id)
		require.True(t, ok)
		assert.Equal(t, "Walk dog", todo.Text)
	})

	t.Run("json output with category by name", func(t *testing.T) {
		output, err := clitest.ExecuteCLICommand(t, app, AddCmd(), []string{"  Send report ", "--category=work", "--json"})
		require.NoError(t, err)

		result := clitest.ParseJSON(t, output)
		assert.Equal(t, true, result["success"])
		data := result["data"].(map[string]any)
		assert.Equal(t, "Send report", data["text"])
		assert.Equal(t, "c2", data["categoryId"])
		assert.Equal(t, false, data["done"])
		assert.Equal(t, "Work", data["category"].(map[string]any)["name"])
	})

	assert.Len(t, backend.Todos(), 3)
}

func TestAddTodo_Negative(t *testing.T) {
	backend, app := clitest.SetupCLITest(t)
	backend.Seed(nil, seedCategories)

	tests := []struct {
		name     string
		args     []string
		wantCode int
	}{
		{"whitespace text", []string{"   "}, cli.ExitValidation},
		{"text too long", []string{strings.Repeat("a", 201)}, cli.ExitValidation},
		{"unknown category", []string{"Buy milk", "--category=garden"}, cli.ExitNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := clitest.ExecuteCLICommand(t, app, AddCmd(), tt.args)
			require.Error(t, err)
			assert.Equal(t, tt.wantCode, cli.ExitCode(err))
		})
	}

	t.Run("missing text", func(t *testing.T) {
		_, err := clitest.ExecuteCLICommand(t, app, AddCmd(), nil)
		assert.Error(t, err)
	})

	assert.Empty(t, backend.Todos(), "nothing reached the backend")
}

func TestAddTodo_JSONError(t *testing.T) {
	_, app := clitest.SetupCLITest(t)

	output, err := clitest.ExecuteCLICommand(t, app, AddCmd(), []string{" ", "--json"})
	require.Error(t, err)

	result := clitest.ParseJSON(t, output)
	assert.Equal(t, false, result["success"])
	errData := result["error"].(map[string]any)
	assert.Equal(t, "VALIDATION_EmptyText", errData["code"])
	assert.Equal(t, "Todo text cannot be empty", errData["message"])
}

func TestListTodos(t *testing.T) {
	backend, app := clitest.SetupCLITest(t)
	backend.Seed([]models.Todo{
		{ID: "t1", Text: "Buy milk", CategoryID: "c1"},
		{ID: "t2", Text: "Send report", Done: true, CategoryID: "c2"},
		{ID: "t3", Text: "Call mom"},
	}, seedCategories)

	t.Run("default output", func(t *testing.T) {
		output, err := clitest.ExecuteCLICommand(t, app, ListCmd(), nil)
		require.NoError(t, err)
		assert.Contains(t, output, "Todos (1/3 done)")
		assert.Contains(t, output, "Buy milk")
		assert.Contains(t, output, "Errands")
		assert.Contains(t, output, "[x]")
	})

	t.Run("quiet mode", func(t *testing.T) {
		output, err := clitest.ExecuteCLICommand(t, app, ListCmd(), []string{"--quiet"})
		require.NoError(t, err)
		assert.Equal(t, "t1\nt2\nt3\n", output)
	})

	t.Run("pending filter", func(t *testing.T) {
		output, err := clitest.ExecuteCLICommand(t, app, ListCmd(), []string{"--pending", "--quiet"})
		require.NoError(t, err)
		assert.Equal(t, "t1\nt3\n", output)
	})

	t.Run("category filter json", func(t *testing.T) {
		output, err := clitest.ExecuteCLICommand(t, app, ListCmd(), []string{"--category=c2", "--json"})
		require.NoError(t, err)

		data := clitest.ParseJSON(t, output)["data"].(map[string]any)
		todos := data["todos"].([]any)
		require.Len(t, todos, 1)
		assert.Equal(t, "t2", todos[0].(map[string]any)["id"])
		assert.Equal(t, float64(1), data["completed"])
	})

	t.Run("conflicting filters", func(t *testing.T) {
		_, err := clitest.ExecuteCLICommand(t, app, ListCmd(), []string{"--done", "--pending"})
		require.Error(t, err)
		assert.Equal(t, cli.ExitUsage, cli.ExitCode(err))
	})
}

func TestListTodos_BackendDown(t *testing.T) {
	backend, app := clitest.SetupCLITest(t)
	backend.FailNext(http.MethodGet, "/todos", http.StatusInternalServerError)

	_, err := clitest.ExecuteCLICommand(t, app, ListCmd(), nil)
	require.Error(t, err)
	assert.Equal(t, cli.ExitError, cli.ExitCode(err))
	assert.Contains(t, err.Error(), "failed to fetch todos")
}

func TestToggleTodo(t *testing.T) {
	backend, app := clitest.SetupCLITest(t)
	backend.Seed([]models.Todo{{ID: "t1", Text: "Buy milk"}}, nil)

	output, err := clitest.ExecuteCLICommand(t, app, ToggleCmd(), []string{"t1"})
	require.NoError(t, err)
	assert.Contains(t, output, "Completed todo")
	assert.True(t, backend.Todos()[0].Done)

	output, err = clitest.ExecuteCLICommand(t, app, ToggleCmd(), []string{"t1", "--quiet"})
	require.NoError(t, err)
	assert.Equal(t, "t1\n", output)
	assert.False(t, backend.Todos()[0].Done)

	_, err = clitest.ExecuteCLICommand(t, app, ToggleCmd(), []string{"missing"})
	require.Error(t, err)
	assert.Equal(t, cli.ExitNotFound, cli.ExitCode(err))
}

func TestTodoCategory(t *testing.T) {
	backend, app := clitest.SetupCLITest(t)
	backend.Seed([]models.Todo{{ID: "t1", Text: "Buy milk"}}, seedCategories)

	output, err := clitest.ExecuteCLICommand(t, app, CategoryCmd(), []string{"t1", "Errands"})
	require.NoError(t, err)
	assert.Contains(t, output, "Errands")
	assert.Equal(t, "c1", backend.Todos()[0].CategoryID)

	_, err = clitest.ExecuteCLICommand(t, app, CategoryCmd(), []string{"t1", "--clear"})
	require.NoError(t, err)
	assert.Empty(t, backend.Todos()[0].CategoryID)

	tests := []struct {
		name     string
		args     []string
		wantCode int
	}{
		{"category and clear", []string{"t1", "c1", "--clear"}, cli.ExitUsage},
		{"no category", []string{"t1"}, cli.ExitUsage},
		{"unknown category", []string{"t1", "garden"}, cli.ExitNotFound},
		{"unknown todo", []string{"t9", "c1"}, cli.ExitNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := clitest.ExecuteCLICommand(t, app, CategoryCmd(), tt.args)
			require.Error(t, err)
			assert.Equal(t, tt.wantCode, cli.ExitCode(err))
		})
	}
}

func TestDeleteTodo(t *testing.T) {
	backend, app := clitest.SetupCLITest(t)
	backend.Seed([]models.Todo{{ID: "t1", Text: "Buy milk"}, {ID: "t2", Text: "Walk dog"}}, nil)

	output, err := clitest.ExecuteCLICommand(t, app, DeleteCmd(), []string{"t1"})
	require.NoError(t, err)
	assert.Contains(t, output, "Deleted todo 'Buy milk'")

	output, err = clitest.ExecuteCLICommand(t, app, DeleteCmd(), []string{"t2", "--json"})
	require.NoError(t, err)
	data := clitest.ParseJSON(t, output)["data"].(map[string]any)
	assert.Equal(t, "t2", data["id"])
	assert.Equal(t, true, data["deleted"])

	assert.Empty(t, backend.Todos())

	_, err = clitest.ExecuteCLICommand(t, app, DeleteCmd(), []string{"t1"})
	require.Error(t, err)
	assert.Equal(t, cli.ExitNotFound, cli.ExitCode(err))
}

func TestTodoCmdWiresSubcommands(t *testing.T) {
	names := make([]string, 0)
	for _, c := range TodoCmd().Commands() {
		names = append(names, c.Name())
	}
	assert.ElementsMatch(t, []string{"list", "add", "toggle", "category", "delete"}, names)
}
