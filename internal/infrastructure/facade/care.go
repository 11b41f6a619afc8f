package facade

import (
	"context"

	"github.com/studycare/studycare-client/internal/core/domain"
	"github.com/studycare/studycare-client/internal/infrastructure/apiclient"
)

type Symptom struct {
	r apiclient.Requester
}

func (s *Symptom) Check(ctx context.Context, req domain.SymptomCheckRequest) domain.Response[domain.SymptomGuidance] {
	return apiclient.Post[domain.SymptomGuidance](ctx, s.r, "/symptom/check", req)
}

func (s *Symptom) History(ctx context.Context) domain.Response[[]domain.SymptomCheck] {
	return apiclient.Get[[]domain.SymptomCheck](ctx, s.r, "/symptom/history")
}

// Caregiver links caregiver accounts to students and reads their activity.
type Caregiver struct {
	r apiclient.Requester
}

func (c *Caregiver) LinkChild(ctx context.Context, req domain.LinkChildRequest) domain.Response[domain.CaregiverChild] {
	return apiclient.Post[domain.CaregiverChild](ctx, c.r, "/caregiver/link-child", req)
}

func (c *Caregiver) Children(ctx context.Context) domain.Response[[]domain.CaregiverChild] {
	return apiclient.Get[[]domain.CaregiverChild](ctx, c.r, "/caregiver/children")
}

func (c *Caregiver) ChildActivity(ctx context.Context, childID string) domain.Response[domain.ChildActivity] {
	return apiclient.Get[domain.ChildActivity](ctx, c.r, path("/caregiver/child/%s/activity", childID))
}

func (c *Caregiver) UnlinkChild(ctx context.Context, childID string) domain.Response[domain.ActionResult] {
	return apiclient.Delete[domain.ActionResult](ctx, c.r, path("/caregiver/unlink/%s", childID))
}
