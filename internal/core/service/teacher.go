package service

import (
	"context"
	"strings"
	"sync"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/studycare/studycare-client/internal/core/domain"
	"github.com/studycare/studycare-client/internal/core/ports"
	"github.com/studycare/studycare-client/internal/pkg/validation"
)

// TeacherDashboard drives the teacher page: the class list and the roster of
// the selected class.
type TeacherDashboard struct {
	api       ports.TeacherAPI
	validator *validation.Validator
	logger    zerolog.Logger

	mu       sync.Mutex
	classes  []domain.Class
	selected string
}

func NewTeacherDashboard(api ports.TeacherAPI, logger zerolog.Logger) *TeacherDashboard {
	return &TeacherDashboard{api: api, validator: validation.Default(), logger: logger}
}

func (d *TeacherDashboard) Load(ctx context.Context) ([]domain.Class, error) {
	classes, err := unwrap(d.api.Classes(ctx), "load classes")
	if err != nil {
		return nil, err
	}

	d.mu.Lock()
	d.classes = classes
	d.mu.Unlock()
	return classes, nil
}

// CreateClass adds a class. A blank subject is left out of the request.
func (d *TeacherDashboard) CreateClass(ctx context.Context, name, subject string) (*domain.Class, error) {
	req := domain.CreateClassRequest{
		Name:    strings.TrimSpace(name),
		Subject: strings.TrimSpace(subject),
	}
	if err := d.validator.Struct(req); err != nil {
		return nil, err
	}

	class, err := unwrap(d.api.CreateClass(ctx, req), "create class")
	if err != nil {
		return nil, err
	}

	d.mu.Lock()
	d.classes = append(d.classes, class)
	d.mu.Unlock()

	d.logger.Info().Str("class_id", class.ID).Str("class_code", class.ClassCode).Msg("class created")
	return &class, nil
}

// SelectClass fetches the students and activity stats of a class
// concurrently and returns once both have completed. A section that failed
// is left empty and named in Warnings; if both fail the call fails.
func (d *TeacherDashboard) SelectClass(ctx context.Context, classID string) (*domain.ClassDetails, error) {
	classID = strings.TrimSpace(classID)
	if classID == "" {
		return nil, domain.ErrNoSelection
	}

	var (
		g        errgroup.Group
		students domain.Response[[]domain.ClassStudent]
		stats    domain.Response[[]domain.StudentActivity]
	)
	g.Go(func() error {
		students = d.api.ClassStudents(ctx, classID)
		return nil
	})
	g.Go(func() error {
		stats = d.api.ClassStats(ctx, classID)
		return nil
	})
	_ = g.Wait()

	if !students.Success && !stats.Success {
		return nil, students.Err()
	}

	details := &domain.ClassDetails{
		Students: students.Data,
		Stats:    stats.Data,
		Warnings: domain.Warnings{},
	}
	details.Warnings.Add("students", students.Err())
	details.Warnings.Add("stats", stats.Err())
	if len(details.Warnings) > 0 {
		d.logger.Warn().Str("class_id", classID).Interface("warnings", details.Warnings).Msg("class details incomplete")
	}

	d.mu.Lock()
	d.selected = classID
	for i := range d.classes {
		if d.classes[i].ID == classID {
			class := d.classes[i]
			details.Class = &class
			break
		}
	}
	d.mu.Unlock()

	return details, nil
}

// Selected returns the id of the last selected class.
func (d *TeacherDashboard) Selected() string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.selected
}
