package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/pastel/internal/app"
	"github.com/thenoetrevino/pastel/internal/cli"
	"github.com/thenoetrevino/pastel/internal/cli/category"
	"github.com/thenoetrevino/pastel/internal/cli/status"
	"github.com/thenoetrevino/pastel/internal/cli/styles"
	"github.com/thenoetrevino/pastel/internal/cli/todo"
	"github.com/thenoetrevino/pastel/internal/config"
	"github.com/thenoetrevino/pastel/internal/logging"
	"github.com/thenoetrevino/pastel/internal/tui"
)

// session holds what PersistentPreRunE builds so Execute can release it
type session struct {
	cfg     *config.Config
	app     *app.App
	logFile io.Closer

	apiURL   string
	logLevel string
}

func (s *session) close() {
	if s.app != nil {
		_ = s.app.Close()
	}
	if s.logFile != nil {
		_ = s.logFile.Close()
	}
}

func newRootCmd(s *session) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "pastel",
		Short: "pastel - categorized todos in your terminal",
		Long: `pastel manages a todo list kept by a REST backend.

Todos can be filed under categories, each drawn in its own pastel color.
Run without a subcommand to open the terminal UI.`,
		Args:              cobra.NoArgs,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: s.setup,
		RunE:              s.runTUI,
	}

	rootCmd.PersistentFlags().StringVar(&s.apiURL, "api-url", "", "backend base URL (overrides config and PASTEL_API_URL)")
	rootCmd.PersistentFlags().StringVar(&s.logLevel, "log-level", "", "log level: debug, info, warn or error")

	rootCmd.AddCommand(&cobra.Command{
		Use:   "tui",
		Short: "Open the terminal UI",
		Args:  cobra.NoArgs,
		RunE:  s.runTUI,
	})
	rootCmd.AddCommand(todo.TodoCmd())
	rootCmd.AddCommand(category.CategoryCmd())
	rootCmd.AddCommand(status.StatusCmd())

	return rootCmd
}

// setup loads config, starts logging and builds the App for every command.
// A context that already carries an App is left alone.
func (s *session) setup(cmd *cobra.Command, _ []string) error {
	if _, err := cli.GetCLIFromContext(cmd.Context()); err == nil {
		return nil
	}

	cfg, err := config.Load()
	if err != nil {
		return setupError("load config", err)
	}
	if s.apiURL != "" {
		cfg.API.BaseURL = s.apiURL
	}
	if s.logLevel != "" {
		cfg.Log.Level = s.logLevel
	}
	s.cfg = cfg

	logFile, err := logging.Init(cfg.Log.Level, cfg.Log.Dir)
	if err != nil {
		return setupError("initialize logging", err)
	}
	s.logFile = logFile

	styles.Init(cfg.Theme)

	a, err := app.New(cfg, app.WithLogger(logging.Logger))
	if err != nil {
		return setupError("initialize app", err)
	}
	s.app = a

	slog.Debug("pastel starting", "command", cmd.CommandPath(), "base_url", cfg.API.BaseURL)
	cmd.SetContext(cli.WithApp(cmd.Context(), a))
	return nil
}

func (s *session) runTUI(cmd *cobra.Command, _ []string) error {
	cliInstance, err := cli.GetCLIFromContext(cmd.Context())
	if err != nil {
		return err
	}
	cfg := s.cfg
	if cfg == nil {
		cfg = config.Default()
	}
	if err := tui.Run(cmd.Context(), cliInstance.App, cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return cli.WithExitCode(cli.ExitError, err)
	}
	return nil
}

// setupError prints a startup failure and marks it as a data error
func setupError(action string, err error) error {
	fmt.Fprintf(os.Stderr, "Error: failed to %s: %v\n", action, err)
	return cli.WithExitCode(cli.ExitDataErr, err)
}

// Execute runs the root command with os.Args and returns the process exit code
func Execute() int {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	return run(ctx, os.Args[1:])
}

func run(ctx context.Context, args []string) int {
	s := &session{}
	defer s.close()

	rootCmd := newRootCmd(s)
	rootCmd.SetArgs(args)

	err := rootCmd.ExecuteContext(ctx)
	if err == nil {
		return cli.ExitSuccess
	}

	// command handlers print their own failures
	var exitErr *cli.CodedError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}

	// cobra argument and flag errors
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	fmt.Fprintln(os.Stderr, "Run 'pastel --help' for usage.")
	return cli.ExitUsage
}
