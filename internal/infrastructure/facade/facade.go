// Package facade maps each backend resource area onto apiclient calls. The
// types hold no state beyond the requester they were built with.
package facade

import (
	"fmt"
	"net/url"

	"github.com/studycare/studycare-client/internal/core/ports"
	"github.com/studycare/studycare-client/internal/infrastructure/apiclient"
)

// Set bundles one façade per resource area, all sharing a requester.
type Set struct {
	Auth      *Auth
	Teacher   *Teacher
	Student   *Student
	Chat      *Chat
	Image     *Image
	Voice     *Voice
	Pods      *Pods
	Notes     *Notes
	Symptom   *Symptom
	Caregiver *Caregiver
}

func NewSet(r apiclient.Requester) *Set {
	return &Set{
		Auth:      &Auth{r: r},
		Teacher:   &Teacher{r: r},
		Student:   &Student{r: r},
		Chat:      &Chat{r: r},
		Image:     &Image{r: r},
		Voice:     &Voice{r: r},
		Pods:      &Pods{r: r},
		Notes:     &Notes{r: r},
		Symptom:   &Symptom{r: r},
		Caregiver: &Caregiver{r: r},
	}
}

var (
	_ ports.AuthAPI      = (*Auth)(nil)
	_ ports.TeacherAPI   = (*Teacher)(nil)
	_ ports.StudentAPI   = (*Student)(nil)
	_ ports.ChatAPI      = (*Chat)(nil)
	_ ports.ImageAPI     = (*Image)(nil)
	_ ports.VoiceAPI     = (*Voice)(nil)
	_ ports.PodAPI       = (*Pods)(nil)
	_ ports.NoteAPI      = (*Notes)(nil)
	_ ports.SymptomAPI   = (*Symptom)(nil)
	_ ports.CaregiverAPI = (*Caregiver)(nil)
)

// path fills the %s verbs of format with path-escaped ids.
func path(format string, ids ...string) string {
	args := make([]any, len(ids))
	for i, id := range ids {
		args[i] = url.PathEscape(id)
	}
	return fmt.Sprintf(format, args...)
}

// empty is sent as the body of action endpoints that take no input.
var empty = struct{}{}
