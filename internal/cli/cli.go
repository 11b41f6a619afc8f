// Package cli is the studycare command line: every backend call as a
// subcommand, the page flows built on top of them, and the dashboard server.
package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/sethvargo/go-envconfig"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/studycare/studycare-client/internal/core/domain"
	"github.com/studycare/studycare-client/internal/pkg/config"
	"github.com/studycare/studycare-client/pkg/logger"
)

const closeTimeout = 5 * time.Second

type rootFlags struct {
	apiURL      string
	storage     string
	storagePath string
	logLevel    string
	logPretty   bool
	timeout     time.Duration
}

// CLI holds the I/O the commands write to and the app built for the current
// invocation.
type CLI struct {
	out    io.Writer
	errOut io.Writer

	// lookuper supplies environment variables; readPassword reads a secret
	// from the terminal without echo.
	lookuper     envconfig.Lookuper
	readPassword func(fd int) ([]byte, error)

	flags rootFlags
	app   *App
}

func New(out, errOut io.Writer) *CLI {
	return &CLI{
		out:          out,
		errOut:       errOut,
		lookuper:     envconfig.OsLookuper(),
		readPassword: term.ReadPassword,
	}
}

// Execute runs the command line with os.Args and returns the exit code.
func Execute(ctx context.Context) int {
	c := New(os.Stdout, os.Stderr)
	if err := c.Run(ctx, os.Args[1:]); err != nil {
		c.reportError(err)
		return 1
	}
	return 0
}

// Run executes the command line args and releases the app afterwards,
// whether or not the command failed.
func (c *CLI) Run(ctx context.Context, args []string) error {
	cmd := c.Command()
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(ctx)
	return errors.Join(err, c.teardown(ctx))
}

// Command builds the root command with every subcommand attached.
func (c *CLI) Command() *cobra.Command {
	root := &cobra.Command{
		Use:               "studycare",
		Short:             "StudyCare API client",
		Long:              `Command line client for the StudyCare study-assistance API and a local dashboard server.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: c.setup,
	}
	root.SetOut(c.out)
	root.SetErr(c.errOut)

	pf := root.PersistentFlags()
	pf.StringVar(&c.flags.apiURL, "api-url", "", "API base URL (overrides STUDYCARE_API_URL)")
	pf.StringVar(&c.flags.storage, "storage", "", "token storage driver: file, memory, redis or mongo (overrides STORAGE_DRIVER)")
	pf.StringVar(&c.flags.storagePath, "storage-path", "", "token file for the file driver (overrides STORAGE_PATH)")
	pf.StringVar(&c.flags.logLevel, "log-level", "", "log level (overrides LOG_LEVEL)")
	pf.BoolVar(&c.flags.logPretty, "log-pretty", false, "human readable logs (overrides LOG_PRETTY)")
	pf.DurationVar(&c.flags.timeout, "timeout", 0, "per-request timeout, 0 for none (overrides REQUEST_TIMEOUT)")

	root.AddCommand(c.authCommands()...)
	root.AddCommand(
		c.teacherCommand(),
		c.studentCommand(),
		c.chatCommand(),
		c.imageCommand(),
		c.voiceCommand(),
		c.podsCommand(),
		c.notesCommand(),
		c.symptomCommand(),
		c.caregiverCommand(),
		c.serveCommand(),
	)
	return root
}

// setup loads configuration, applies flag overrides and wires the app.
func (c *CLI) setup(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
		cmd.SetContext(ctx)
	}

	cfg, err := config.LoadWith(ctx, c.lookuper)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("api-url") {
		cfg.APIURL = c.flags.apiURL
	}
	if flags.Changed("storage") {
		cfg.Storage.Driver = c.flags.storage
	}
	if flags.Changed("storage-path") {
		cfg.Storage.Path = c.flags.storagePath
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = c.flags.logLevel
	}
	if flags.Changed("log-pretty") {
		cfg.LogPretty = c.flags.logPretty
	}
	if flags.Changed("timeout") {
		cfg.RequestTimeout = c.flags.timeout
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	log := logger.Init(logger.Options{Level: cfg.LogLevel, Pretty: cfg.LogPretty, Output: c.errOut})

	app, err := NewApp(ctx, cfg, log)
	if err != nil {
		return err
	}
	c.app = app
	return nil
}

func (c *CLI) teardown(ctx context.Context) error {
	if c.app == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), closeTimeout)
	defer cancel()

	err := c.app.Close(ctx)
	c.app = nil
	return err
}

func (c *CLI) logger() zerolog.Logger {
	if c.app == nil {
		return zerolog.Nop()
	}
	return c.app.Log
}

// print writes v as indented JSON.
func (c *CLI) print(v any) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode output: %w", err)
	}
	_, err = fmt.Fprintln(c.out, string(b))
	return err
}

// emit prints the payload of a successful response or returns its failure.
func emit[T any](c *CLI, res domain.Response[T]) error {
	if err := res.Err(); err != nil {
		return err
	}
	return c.print(res.Data)
}

// reportError prints err for the user, naming the right dashboard when a
// command was run with the wrong account type.
func (c *CLI) reportError(err error) {
	var redirect *domain.RedirectError
	if errors.As(err, &redirect) {
		fmt.Fprintf(c.errOut, "error: %v (try the %s commands)\n", err, redirect.Role)
		return
	}
	var apiErr *domain.APIError
	if errors.As(err, &apiErr) && apiErr.Status != 0 {
		fmt.Fprintf(c.errOut, "error: %v (HTTP %d)\n", err, apiErr.Status)
		return
	}
	fmt.Fprintf(c.errOut, "error: %v\n", err)
}

// guarded wraps run with the dashboard guard for role.
func (c *CLI) guarded(role domain.Role, run func(cmd *cobra.Command, args []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		if _, err := c.app.Session.Guard(cmd.Context(), role); err != nil {
			return err
		}
		return run(cmd, args)
	}
}
