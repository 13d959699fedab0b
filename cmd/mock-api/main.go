// Command mock-api serves the todo REST API from memory for local development
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/pastel/internal/mockapi"
	"github.com/thenoetrevino/pastel/internal/models"
)

const shutdownTimeout = 5 * time.Second

func main() {
	var (
		addr string
		demo bool
	)

	rootCmd := &cobra.Command{
		Use:           "mock-api",
		Short:         "In-memory todo backend",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return serve(cmd.Context(), addr, demo)
		},
	}
	rootCmd.Flags().StringVar(&addr, "addr", ":3001", "listen address")
	rootCmd.Flags().BoolVar(&demo, "demo", false, "start with a few sample todos and categories")

	// Set up signal handling for graceful shutdown
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		slog.Error("mock-api error", "error", err)
		os.Exit(1)
	}
}

func serve(ctx context.Context, addr string, demo bool) error {
	backend, err := mockapi.NewServer()
	if err != nil {
		return err
	}
	if demo {
		backend.Seed(demoTodos, demoCategories)
	}

	server := &http.Server{
		Addr:              addr,
		Handler:           backend.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errC := make(chan error, 1)
	go func() {
		slog.Info("mock-api listening", "addr", addr, "demo", demo)
		errC <- server.ListenAndServe()
	}()

	select {
	case err := <-errC:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	slog.Info("mock-api shutting down gracefully")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}

var demoCategories = []models.Category{
	{ID: "errands", Name: "Errands", Color: "#ffd1dc"},
	{ID: "work", Name: "Work", Color: "#c1e1ff"},
	{ID: "home", Name: "Home", Color: "#c9f2d0"},
}

var demoTodos = []models.Todo{
	{ID: "1", Text: "Buy oat milk", CategoryID: "errands"},
	{ID: "2", Text: "Review pull requests", CategoryID: "work"},
	{ID: "3", Text: "Water the plants", Done: true, CategoryID: "home"},
	{ID: "4", Text: "Call the dentist"},
}
