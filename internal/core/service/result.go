package service

import (
	"fmt"

	"github.com/studycare/studycare-client/internal/core/domain"
	"github.com/studycare/studycare-client/internal/core/ports"
)

// unwrap turns an envelope into a Go result. The backend failure stays
// reachable through errors.As(err, **domain.APIError).
func unwrap[T any](res domain.Response[T], action string) (T, error) {
	if !res.Success {
		var zero T
		return zero, fmt.Errorf("%s: %w", action, res.Err())
	}
	return res.Data, nil
}

var (
	_ ports.SessionController   = (*SessionService)(nil)
	_ ports.TeacherController   = (*TeacherDashboard)(nil)
	_ ports.StudentController   = (*StudentDashboard)(nil)
	_ ports.CaregiverController = (*CaregiverDashboard)(nil)
)
