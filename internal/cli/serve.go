package cli

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/studycare/studycare-client/internal/api"
	"github.com/studycare/studycare-client/internal/infrastructure/http/handlers"
)

const shutdownTimeout = 10 * time.Second

func (c *CLI) serveCommand() *cobra.Command {
	var port string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the local dashboard server",
		Long: `Serve the teacher, student and caregiver dashboards as a JSON API for a local
front end. The server signs in on behalf of a single local user and stores the
session token in the configured storage.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Flags().Changed("port") {
				c.app.Config.Port = port
			}
			return c.serve(cmd.Context())
		},
	}
	cmd.Flags().StringVar(&port, "port", "", "listen port (overrides PORT)")
	return cmd
}

func (c *CLI) serve(ctx context.Context) error {
	app := c.app
	log := app.Log.With().Str("component", "server").Logger()

	e := api.NewRouter(api.Deps{
		Session:   app.Session,
		Tokens:    app.Client,
		Teacher:   app.Teacher,
		Student:   app.Student,
		Caregiver: app.Caregiver,
		Checks: map[string]handlers.Pinger{
			"storage": app.Storage,
		},
		AllowedOrigins: app.Config.AllowedOrigins,
		Logger:         log,
	})

	addr := net.JoinHostPort("127.0.0.1", app.Config.Port)
	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", addr).Str("api_url", app.Client.BaseURL()).Msg("dashboard server listening")
		errCh <- e.Start(addr)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	log.Info().Msg("shutting down dashboard server")
	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		return err
	}
	log.Info().Msg("dashboard server shutdown complete")
	return nil
}
