package facade

import (
	"context"
	"strconv"

	"github.com/studycare/studycare-client/internal/core/domain"
	"github.com/studycare/studycare-client/internal/infrastructure/apiclient"
)

// Pods is the study-pod (group chat) area.
type Pods struct {
	r apiclient.Requester
}

func (p *Pods) Create(ctx context.Context, req domain.CreatePodRequest) domain.Response[domain.StudyPod] {
	return apiclient.Post[domain.StudyPod](ctx, p.r, "/pods", req)
}

func (p *Pods) List(ctx context.Context) domain.Response[[]domain.StudyPod] {
	return apiclient.Get[[]domain.StudyPod](ctx, p.r, "/pods")
}

func (p *Pods) Get(ctx context.Context, podID string) domain.Response[domain.StudyPod] {
	return apiclient.Get[domain.StudyPod](ctx, p.r, path("/pods/%s", podID))
}

func (p *Pods) Join(ctx context.Context, podID string) domain.Response[domain.PodMember] {
	return apiclient.Post[domain.PodMember](ctx, p.r, path("/pods/%s/join", podID), empty)
}

func (p *Pods) Leave(ctx context.Context, podID string) domain.Response[domain.ActionResult] {
	return apiclient.Post[domain.ActionResult](ctx, p.r, path("/pods/%s/leave", podID), empty)
}

func (p *Pods) SendMessage(ctx context.Context, podID, content string) domain.Response[domain.PodMessage] {
	return apiclient.Post[domain.PodMessage](ctx, p.r, path("/pods/%s/messages", podID), domain.PodMessageRequest{Content: content})
}

// Messages lists a pod's messages. The limit query is only sent when limit > 0.
func (p *Pods) Messages(ctx context.Context, podID string, limit int) domain.Response[[]domain.PodMessage] {
	endpoint := path("/pods/%s/messages", podID)
	if limit > 0 {
		endpoint += "?limit=" + strconv.Itoa(limit)
	}
	return apiclient.Get[[]domain.PodMessage](ctx, p.r, endpoint)
}

func (p *Pods) Delete(ctx context.Context, podID string) domain.Response[domain.ActionResult] {
	return apiclient.Delete[domain.ActionResult](ctx, p.r, path("/pods/%s", podID))
}
