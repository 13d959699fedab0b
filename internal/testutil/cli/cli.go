// Package cli holds helpers for testing cobra commands against an
// in-memory backend
package cli

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/pastel/internal/app"
	pastelcli "github.com/thenoetrevino/pastel/internal/cli"
	"github.com/thenoetrevino/pastel/internal/config"
	"github.com/thenoetrevino/pastel/internal/logging"
	"github.com/thenoetrevino/pastel/internal/mockapi"
	"github.com/thenoetrevino/pastel/internal/testutil"
)

// SetupCLITest starts an in-memory backend and returns it with an App
// pointed at it
func SetupCLITest(t *testing.T) (*mockapi.Server, *app.App) {
	t.Helper()

	backend, err := mockapi.NewServer()
	if err != nil {
		t.Fatalf("Failed to create mock backend: %v", err)
	}
	ts := httptest.NewServer(backend.Handler())
	t.Cleanup(ts.Close)

	cfg := config.Default()
	cfg.API.BaseURL = ts.URL

	appInstance, err := app.New(cfg,
		app.WithHTTPClient(ts.Client()),
		app.WithLogger(logging.Discard()),
	)
	if err != nil {
		t.Fatalf("Failed to create app: %v", err)
	}
	t.Cleanup(func() { _ = appInstance.Close() })

	return backend, appInstance
}

// ExecuteCLICommand executes a CLI command with a test app instance and
// returns what it wrote to stdout
func ExecuteCLICommand(t *testing.T, testApp *app.App, cmd *cobra.Command, args []string) (string, error) {
	t.Helper()

	if testApp == nil {
		t.Fatal("testApp cannot be nil - SetupCLITest must be called first")
	}

	cmd.SetArgs(args)

	ctx := pastelcli.WithApp(context.Background(), testApp)

	// Disable usage output on error for cleaner test output
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true

	var executeErr error
	output := testutil.CaptureOutput(t, func() {
		executeErr = cmd.ExecuteContext(ctx)
	})

	return output, executeErr
}

// ParseJSON parses JSON output from CLI commands
func ParseJSON(t *testing.T, output string) map[string]any {
	t.Helper()

	var result map[string]any
	if err := json.Unmarshal([]byte(output), &result); err != nil {
		t.Fatalf("Failed to parse JSON output: %v\nOutput: %s", err, output)
	}

	return result
}
