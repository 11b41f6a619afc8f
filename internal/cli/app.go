package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/studycare/studycare-client/internal/api/metrics"
	"github.com/studycare/studycare-client/internal/core/ports"
	"github.com/studycare/studycare-client/internal/core/service"
	"github.com/studycare/studycare-client/internal/infrastructure/apiclient"
	"github.com/studycare/studycare-client/internal/infrastructure/db/file"
	"github.com/studycare/studycare-client/internal/infrastructure/db/memory"
	mongostore "github.com/studycare/studycare-client/internal/infrastructure/db/mongo"
	redisstore "github.com/studycare/studycare-client/internal/infrastructure/db/redis"
	"github.com/studycare/studycare-client/internal/infrastructure/facade"
	"github.com/studycare/studycare-client/internal/pkg/config"
)

// App is the wired client: token storage, API client, façades and page
// controllers, built once per command invocation.
type App struct {
	Config  *config.Config
	Log     zerolog.Logger
	Storage ports.Storage
	Client  *apiclient.Client
	API     *facade.Set

	Session   *service.SessionService
	Teacher   *service.TeacherDashboard
	Student   *service.StudentDashboard
	Caregiver *service.CaregiverDashboard

	closers []func(context.Context) error
}

// NewApp opens the configured storage and builds everything on top of it.
func NewApp(ctx context.Context, cfg *config.Config, log zerolog.Logger) (*App, error) {
	app := &App{Config: cfg, Log: log}

	storage, err := app.openStorage(ctx)
	if err != nil {
		return nil, err
	}
	app.Storage = storage

	app.Client = apiclient.New(ctx, apiclient.Options{
		BaseURL:    cfg.APIURL,
		HTTPClient: &http.Client{Timeout: cfg.RequestTimeout},
		Storage:    storage,
		Logger:     log.With().Str("component", "apiclient").Logger(),
		Observer:   metrics.ClientObserver{},
	})
	app.API = facade.NewSet(app.Client)

	app.Session = service.NewSessionService(app.API.Auth, app.Client, log.With().Str("component", "session").Logger())
	app.Teacher = service.NewTeacherDashboard(app.API.Teacher, log.With().Str("component", "teacher").Logger())
	app.Student = service.NewStudentDashboard(service.StudentBackends{
		Student: app.API.Student,
		Chat:    app.API.Chat,
		Image:   app.API.Image,
		Voice:   app.API.Voice,
		Pods:    app.API.Pods,
		Notes:   app.API.Notes,
		Symptom: app.API.Symptom,
	}, log.With().Str("component", "student").Logger())
	app.Caregiver = service.NewCaregiverDashboard(app.API.Caregiver, log.With().Str("component", "caregiver").Logger())

	return app, nil
}

func (a *App) openStorage(ctx context.Context) (ports.Storage, error) {
	cfg := a.Config
	switch cfg.Storage.Driver {
	case config.StorageMemory:
		return memory.NewStorage(), nil

	case config.StorageFile:
		path := cfg.Storage.Path
		if path == "" {
			p, err := file.DefaultPath()
			if err != nil {
				return nil, err
			}
			path = p
		}
		return file.Open(path)

	case config.StorageRedis:
		client, err := redisstore.Connect(ctx, redisstore.Config{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err != nil {
			return nil, err
		}
		storage := redisstore.NewStorage(client, cfg.Redis.Prefix)
		a.closers = append(a.closers, func(context.Context) error { return storage.Close() })
		return storage, nil

	case config.StorageMongo:
		client, db, err := mongostore.Connect(ctx, mongostore.Config{
			URI:      cfg.Mongo.URI,
			Database: cfg.Mongo.Database,
		})
		if err != nil {
			return nil, err
		}
		a.closers = append(a.closers, client.Disconnect)
		return mongostore.NewStorage(db), nil
	}
	return nil, fmt.Errorf("config: unknown storage driver %q", cfg.Storage.Driver)
}

// Close releases storage connections.
func (a *App) Close(ctx context.Context) error {
	var errs []error
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](ctx); err != nil {
			errs = append(errs, err)
		}
	}
	a.closers = nil
	return errors.Join(errs...)
}
