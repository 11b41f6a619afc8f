package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"

	"github.com/studycare/studycare-client/internal/api/handler"
	"github.com/studycare/studycare-client/internal/api/middleware"
	"github.com/studycare/studycare-client/internal/core/domain"
	"github.com/studycare/studycare-client/internal/core/ports"
	"github.com/studycare/studycare-client/internal/infrastructure/http/handlers"
	"github.com/studycare/studycare-client/internal/pkg/validation"
)

// Deps is everything the dashboard API serves from.
type Deps struct {
	Session   ports.SessionController
	Tokens    middleware.TokenSource
	Teacher   ports.TeacherController
	Student   ports.StudentController
	Caregiver ports.CaregiverController

	// Checks are pinged by the readiness probe, keyed by name.
	Checks map[string]handlers.Pinger

	// AllowedOrigins are the front ends, besides the server itself, that may
	// call the API from a browser.
	AllowedOrigins []string

	Logger zerolog.Logger

	// Registerer and Gatherer default to the global Prometheus registry.
	Registerer prometheus.Registerer
	Gatherer   prometheus.Gatherer
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Deps) *echo.Echo {
	if deps.Registerer == nil {
		deps.Registerer = prometheus.DefaultRegisterer
	}
	if deps.Gatherer == nil {
		deps.Gatherer = prometheus.DefaultGatherer
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = validation.Default()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Logger)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(requestLogger(deps.Logger))
	e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Namespace:  "studycare",
		Subsystem:  "http",
		Registerer: deps.Registerer,
	}))
	if len(deps.AllowedOrigins) > 0 {
		e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
			AllowOrigins: deps.AllowedOrigins,
			AllowHeaders: []string{echo.HeaderContentType},
		}))
	}
	e.Use(middleware.RequireTrustedOrigin(deps.AllowedOrigins))

	// --- Health probes and metrics (no session required) ---
	healthHandler := handlers.NewHealthHandler()
	healthDepsHandler := handlers.NewHealthDependenciesHandler(deps.Checks)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{Gatherer: deps.Gatherer}))

	// --- Session ---
	sessionHandler := handler.NewSessionHandler(deps.Session)
	requireSession := middleware.RequireSession(deps.Tokens)

	session := e.Group("/session")
	session.POST("/register", sessionHandler.Register)
	session.POST("/login", sessionHandler.Login)
	session.POST("/logout", sessionHandler.Logout)
	session.GET("/me", sessionHandler.Me, requireSession)
	session.GET("/claims", sessionHandler.Claims, requireSession)
	session.POST("/simplified-mode", sessionHandler.ToggleSimplifiedMode, requireSession)

	// --- Teacher dashboard ---
	teacherHandler := handler.NewTeacherHandler(deps.Teacher)
	teacher := e.Group("/teacher", requireSession, middleware.RequireRole(deps.Session, domain.RoleTeacher))
	teacher.GET("/classes", teacherHandler.ListClasses)
	teacher.POST("/classes", teacherHandler.CreateClass)
	teacher.GET("/classes/:id", teacherHandler.GetClass)

	// --- Student dashboard ---
	studentHandler := handler.NewStudentHandler(deps.Student)
	student := e.Group("/student", requireSession, middleware.RequireRole(deps.Session, domain.RoleStudent))
	student.GET("/overview", studentHandler.Overview)
	student.POST("/classes/join", studentHandler.JoinClass)
	student.POST("/chat/sessions", studentHandler.CreateChatSession)
	student.GET("/chat/sessions/:id", studentHandler.GetChatSession)
	student.POST("/chat/messages", studentHandler.SendChatMessage)
	student.POST("/pods", studentHandler.CreatePod)
	student.GET("/pods/:id/messages", studentHandler.PodMessages)
	student.POST("/pods/:id/messages", studentHandler.SendPodMessage)
	student.POST("/pods/:id/join", studentHandler.JoinPod)
	student.POST("/notes", studentHandler.CreateNote)
	student.GET("/notes/:id", studentHandler.GetNote)
	student.PUT("/notes/:id", studentHandler.UpdateNote)
	student.DELETE("/notes/:id", studentHandler.DeleteNote)
	student.POST("/notes/:id/:action", studentHandler.NoteAction)
	student.POST("/images", studentHandler.UploadImage)
	student.POST("/voice", studentHandler.VoiceChat)
	student.POST("/symptoms", studentHandler.CheckSymptoms)

	// --- Caregiver dashboard ---
	caregiverHandler := handler.NewCaregiverHandler(deps.Caregiver)
	caregiver := e.Group("/caregiver", requireSession, middleware.RequireRole(deps.Session, domain.RoleCaregiver))
	caregiver.GET("/children", caregiverHandler.ListChildren)
	caregiver.POST("/children", caregiverHandler.LinkChild)
	caregiver.GET("/children/:id/activity", caregiverHandler.Activity)
	caregiver.DELETE("/children/:id", caregiverHandler.UnlinkChild)

	return e
}

// requestLogger logs one line per request through zerolog.
func requestLogger(log zerolog.Logger) echo.MiddlewareFunc {
	return echomiddleware.RequestLoggerWithConfig(echomiddleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(_ echo.Context, v echomiddleware.RequestLoggerValues) error {
			event := log.Info()
			if v.Error != nil {
				event = log.Warn().Err(v.Error)
			}
			event.
				Str("method", v.Method).
				Str("uri", v.URI).
				Int("status", v.Status).
				Dur("latency", v.Latency).
				Str("request_id", v.RequestID).
				Msg("request")
			return nil
		},
	})
}
