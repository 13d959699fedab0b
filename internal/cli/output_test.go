package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"strings"
	"testing"

	"github.com/thenoetrevino/pastel/internal/models"
)

// ============================================================================
// Helpers
// ============================================================================

// captureStdout runs fn with os.Stdout redirected and returns what was written
func captureStdout(t *testing.T, fn func() error) (string, error) {
	t.Helper()

	oldStdout := os.Stdout
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("Failed to create pipe: %v", err)
	}
	os.Stdout = w

	fnErr := fn()

	// Close writer before reading output
	_ = w.Close()
	os.Stdout = oldStdout

	var buf bytes.Buffer
	_, _ = buf.ReadFrom(r)
	return buf.String(), fnErr
}

type mockDataWithoutID struct {
	Name  string
	Value int
}

type mockRenderer struct{}

func (mockRenderer) Render() string {
	return "rendered by type"
}

type mockIDList []string

func (l mockIDList) GetIDs() []string {
	return l
}

// ============================================================================
// Success Method Tests
// ============================================================================

func TestOutputFormatter_Success_JSON(t *testing.T) {
	formatter := &OutputFormatter{JSON: true}
	output, err := captureStdout(t, func() error {
		return formatter.Success(models.Todo{ID: "t1", Text: "Buy milk", CategoryID: "c1"})
	})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	var result map[string]any
	if err := json.Unmarshal([]byte(output), &result); err != nil {
		t.Fatalf("Failed to parse JSON output: %v\nOutput: %s", err, output)
	}
	if result["success"] != true {
		t.Error("Expected success to be true")
	}
	data := result["data"].(map[string]any)
	if data["text"] != "Buy milk" {
		t.Errorf("Expected data.text to be 'Buy milk', got %v", data["text"])
	}
	if data["categoryId"] != "c1" {
		t.Errorf("Expected data.categoryId to be 'c1', got %v", data["categoryId"])
	}
}

func TestOutputFormatter_Success_Quiet(t *testing.T) {
	tests := []struct {
		name       string
		data       any
		wantOutput string
	}{
		{
			name:       "todo prints id",
			data:       models.Todo{ID: "t1", Text: "Buy milk"},
			wantOutput: "t1",
		},
		{
			name:       "pointer to category prints id",
			data:       &models.Category{ID: "c9", Name: "Work"},
			wantOutput: "c9",
		},
		{
			name:       "id lists print one per line",
			data:       mockIDList{"a", "b"},
			wantOutput: "a\nb",
		},
		{
			name:       "no id falls through to human output",
			data:       mockDataWithoutID{Name: "Test", Value: 42},
			wantOutput: "{Name:Test Value:42}",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			formatter := &OutputFormatter{Quiet: true}
			output, err := captureStdout(t, func() error { return formatter.Success(tt.data) })
			if err != nil {
				t.Errorf("Expected no error, got %v", err)
			}
			if got := strings.TrimSpace(output); got != tt.wantOutput {
				t.Errorf("Expected output %q, got %q", tt.wantOutput, got)
			}
		})
	}
}

func TestOutputFormatter_Success_HumanReadable(t *testing.T) {
	formatter := &OutputFormatter{}

	output, err := captureStdout(t, func() error { return formatter.Success(mockRenderer{}) })
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if strings.TrimSpace(output) != "rendered by type" {
		t.Errorf("Expected Renderer output, got %q", output)
	}

	output, _ = captureStdout(t, func() error { return formatter.Success("plain string output") })
	if !strings.Contains(output, "plain string output") {
		t.Errorf("Expected plain output, got %q", output)
	}
}

// ============================================================================
// Error Method Tests
// ============================================================================

func TestOutputFormatter_Error_JSON(t *testing.T) {
	formatter := &OutputFormatter{JSON: true}
	output, err := captureStdout(t, func() error {
		return formatter.ErrorWithSuggestion("NOT_FOUND", "todo not found: t9", "Run 'pastel todo list' to see ids")
	})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	var result map[string]any
	if err := json.Unmarshal([]byte(output), &result); err != nil {
		t.Fatalf("Failed to parse JSON output: %v\nOutput: %s", err, output)
	}
	if result["success"] != false {
		t.Error("Expected success to be false")
	}
	errData := result["error"].(map[string]any)
	if errData["code"] != "NOT_FOUND" {
		t.Errorf("Expected code NOT_FOUND, got %v", errData["code"])
	}
	if errData["suggestion"] == nil {
		t.Error("Expected suggestion to be present")
	}
}

func TestOutputFormatter_Error_HumanWritesNothingToStdout(t *testing.T) {
	formatter := &OutputFormatter{}
	output, err := captureStdout(t, func() error { return formatter.Error("ERROR", "boom") })
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if output != "" {
		t.Errorf("Expected empty stdout, got %q", output)
	}
}
