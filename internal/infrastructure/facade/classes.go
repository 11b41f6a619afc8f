package facade

import (
	"context"

	"github.com/studycare/studycare-client/internal/core/domain"
	"github.com/studycare/studycare-client/internal/infrastructure/apiclient"
)

// Teacher covers class management for teacher accounts.
type Teacher struct {
	r apiclient.Requester
}

func (t *Teacher) CreateClass(ctx context.Context, req domain.CreateClassRequest) domain.Response[domain.Class] {
	return apiclient.Post[domain.Class](ctx, t.r, "/teacher/classes", req)
}

func (t *Teacher) Classes(ctx context.Context) domain.Response[[]domain.Class] {
	return apiclient.Get[[]domain.Class](ctx, t.r, "/teacher/classes")
}

func (t *Teacher) ClassStudents(ctx context.Context, classID string) domain.Response[[]domain.ClassStudent] {
	return apiclient.Get[[]domain.ClassStudent](ctx, t.r, path("/teacher/classes/%s/students", classID))
}

func (t *Teacher) ClassStats(ctx context.Context, classID string) domain.Response[[]domain.StudentActivity] {
	return apiclient.Get[[]domain.StudentActivity](ctx, t.r, path("/teacher/classes/%s/stats", classID))
}

// Student covers class membership for student accounts.
type Student struct {
	r apiclient.Requester
}

func (s *Student) JoinClass(ctx context.Context, classCode string) domain.Response[domain.StudentClass] {
	return apiclient.Post[domain.StudentClass](ctx, s.r, "/student/join-class", domain.JoinClassRequest{ClassCode: classCode})
}

func (s *Student) Classes(ctx context.Context) domain.Response[[]domain.StudentClass] {
	return apiclient.Get[[]domain.StudentClass](ctx, s.r, "/student/classes")
}
