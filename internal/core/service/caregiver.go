package service

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"github.com/studycare/studycare-client/internal/core/domain"
	"github.com/studycare/studycare-client/internal/core/ports"
	"github.com/studycare/studycare-client/internal/pkg/validation"
)

// CaregiverDashboard drives the caregiver page.
type CaregiverDashboard struct {
	api       ports.CaregiverAPI
	validator *validation.Validator
	logger    zerolog.Logger
}

func NewCaregiverDashboard(api ports.CaregiverAPI, logger zerolog.Logger) *CaregiverDashboard {
	return &CaregiverDashboard{api: api, validator: validation.Default(), logger: logger}
}

func (d *CaregiverDashboard) Load(ctx context.Context) ([]domain.CaregiverChild, error) {
	return unwrap(d.api.Children(ctx), "load children")
}

func (d *CaregiverDashboard) LinkChild(ctx context.Context, email string) (*domain.CaregiverChild, error) {
	req := domain.LinkChildRequest{ChildEmail: strings.TrimSpace(email)}
	if err := d.validator.Struct(req); err != nil {
		return nil, err
	}

	link, err := unwrap(d.api.LinkChild(ctx, req), "link child")
	if err != nil {
		return nil, err
	}
	d.logger.Info().Str("child_id", link.ChildID).Msg("child linked")
	return &link, nil
}

// SelectChild loads the activity summary of a linked child.
func (d *CaregiverDashboard) SelectChild(ctx context.Context, childID string) (*domain.ChildActivity, error) {
	childID = strings.TrimSpace(childID)
	if childID == "" {
		return nil, domain.ErrNoSelection
	}
	activity, err := unwrap(d.api.ChildActivity(ctx, childID), "load child activity")
	if err != nil {
		return nil, err
	}
	return &activity, nil
}

func (d *CaregiverDashboard) UnlinkChild(ctx context.Context, childID string) (*domain.ActionResult, error) {
	childID = strings.TrimSpace(childID)
	if childID == "" {
		return nil, domain.ErrNoSelection
	}
	res, err := unwrap(d.api.UnlinkChild(ctx, childID), "unlink child")
	if err != nil {
		return nil, err
	}
	d.logger.Info().Str("child_id", childID).Msg("child unlinked")
	return &res, nil
}
