package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	"github.com/studycare/studycare-client/internal/core/domain"
)

type formPart struct {
	name     string
	value    string
	filename string
	content  io.Reader
}

// FormData is an ordered multipart form, filled in before PostFormData.
type FormData struct {
	parts []formPart
}

func NewFormData() *FormData {
	return &FormData{}
}

// Append adds a plain text field.
func (f *FormData) Append(name, value string) *FormData {
	f.parts = append(f.parts, formPart{name: name, value: value})
	return f
}

// AppendFile adds a file field read from content when the form is encoded.
func (f *FormData) AppendFile(name, filename string, content io.Reader) *FormData {
	f.parts = append(f.parts, formPart{name: name, filename: filename, content: content})
	return f
}

// Names lists the field names in the order they were added.
func (f *FormData) Names() []string {
	names := make([]string, len(f.parts))
	for i, part := range f.parts {
		names[i] = part.name
	}
	return names
}

// encode writes the form and returns the body with its Content-Type,
// boundary included.
func (f *FormData) encode() (*bytes.Buffer, string, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	for _, part := range f.parts {
		if part.content == nil {
			if err := w.WriteField(part.name, part.value); err != nil {
				return nil, "", err
			}
			continue
		}

		fw, err := w.CreateFormFile(part.name, part.filename)
		if err != nil {
			return nil, "", err
		}
		if _, err := io.Copy(fw, part.content); err != nil {
			return nil, "", err
		}
	}

	if err := w.Close(); err != nil {
		return nil, "", err
	}
	return &buf, w.FormDataContentType(), nil
}

// PostFormData uploads form as multipart/form-data. The JSON content type is
// not set; the body's own boundary header is used instead. A response that
// does not declare JSON fails with its status and a short excerpt of the body.
func (c *Client) PostFormData(ctx context.Context, endpoint string, form *FormData, opts ...RequestOption) domain.Envelope {
	start := time.Now()

	env := c.doForm(ctx, endpoint, form, opts)

	c.observe(http.MethodPost, endpoint, env, time.Since(start))
	return env
}

func (c *Client) doForm(ctx context.Context, endpoint string, form *FormData, opts []RequestOption) domain.Envelope {
	if form == nil {
		form = NewFormData()
	}

	body, contentType, err := form.encode()
	if err != nil {
		return domain.Fail[json.RawMessage](err.Error())
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+endpoint, body)
	if err != nil {
		return transportFailure(err)
	}

	c.prepare(req, opts)
	req.Header.Set("Content-Type", contentType)

	res, err := c.httpClient.Do(req)
	if err != nil {
		return transportFailure(err)
	}
	defer res.Body.Close()

	if !strings.Contains(res.Header.Get("Content-Type"), "application/json") {
		text, err := io.ReadAll(res.Body)
		if err != nil {
			return transportFailure(err)
		}
		c.log.Warn().Int("status", res.StatusCode).Str("content_type", res.Header.Get("Content-Type")).Msg("upload response is not JSON")
		return nonJSONFailure(res.StatusCode, text)
	}

	return c.readEnvelope(res)
}
