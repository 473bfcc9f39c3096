package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"sort"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"

	"school-backend/internal/models"
	"school-backend/internal/store"
)

// fakeStore is an in-memory stand-in for the persistence gateway, mirroring
// its filtering, ordering and not-found behavior.
type fakeStore struct {
	enquiries []models.AdmissionEnquiry
	messages  []models.ContactMessage
	photos    []models.Photo
	events    []models.Event
	insertErr error
}

func (f *fakeStore) InsertEnquiry(_ context.Context, e models.AdmissionEnquiry) error {
	if f.insertErr != nil {
		return f.insertErr
	}
	f.enquiries = append(f.enquiries, e)
	return nil
}

func (f *fakeStore) ListEnquiries(_ context.Context) ([]models.AdmissionEnquiry, error) {
	return f.enquiries, nil
}

func (f *fakeStore) InsertMessage(_ context.Context, m models.ContactMessage) error {
	if f.insertErr != nil {
		return f.insertErr
	}
	f.messages = append(f.messages, m)
	return nil
}

func (f *fakeStore) ListMessages(_ context.Context) ([]models.ContactMessage, error) {
	return f.messages, nil
}

func (f *fakeStore) InsertPhoto(_ context.Context, p models.Photo) error {
	if f.insertErr != nil {
		return f.insertErr
	}
	f.photos = append(f.photos, p)
	return nil
}

func (f *fakeStore) ListPhotos(_ context.Context, category string) ([]models.Photo, error) {
	out := make([]models.Photo, 0)
	for _, p := range f.photos {
		if !p.IsActive {
			continue
		}
		if category != "" && p.Category != category {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

func (f *fakeStore) GetPhoto(_ context.Context, id string) (models.Photo, error) {
	for _, p := range f.photos {
		if p.ID == id && p.IsActive {
			return p, nil
		}
	}
	return models.Photo{}, store.ErrNotFound
}

func (f *fakeStore) SoftDeletePhoto(_ context.Context, id string) error {
	for i, p := range f.photos {
		if p.ID == id && p.IsActive {
			f.photos[i].IsActive = false
			return nil
		}
	}
	return store.ErrNotFound
}

func (f *fakeStore) InsertEvent(_ context.Context, e models.Event) error {
	if f.insertErr != nil {
		return f.insertErr
	}
	f.events = append(f.events, e)
	return nil
}

func (f *fakeStore) ListEvents(_ context.Context) ([]models.Event, error) {
	out := append(make([]models.Event, 0, len(f.events)), f.events...)
	sort.Slice(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out, nil
}

func (f *fakeStore) GetEvent(_ context.Context, id string) (models.Event, error) {
	for _, e := range f.events {
		if e.ID == id {
			return e, nil
		}
	}
	return models.Event{}, store.ErrNotFound
}

func (f *fakeStore) UpdateEvent(_ context.Context, id string, r models.CreateEventRequest) error {
	for i, e := range f.events {
		if e.ID == id {
			f.events[i].Title = r.Title
			f.events[i].Description = r.Description
			f.events[i].Date = r.Date
			f.events[i].Time = r.Time
			f.events[i].Category = r.Category
			return nil
		}
	}
	return store.ErrNotFound
}

func (f *fakeStore) DeleteEvent(_ context.Context, id string) error {
	for i, e := range f.events {
		if e.ID == id {
			f.events = append(f.events[:i], f.events[i+1:]...)
			return nil
		}
	}
	return store.ErrNotFound
}

type fakeNotifier struct {
	enquiries []models.AdmissionEnquiry
	messages  []models.ContactMessage
}

func (f *fakeNotifier) NotifyEnquiry(_ context.Context, e models.AdmissionEnquiry) bool {
	f.enquiries = append(f.enquiries, e)
	return true
}

func (f *fakeNotifier) NotifyMessage(_ context.Context, m models.ContactMessage) bool {
	f.messages = append(f.messages, m)
	return true
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newApp() *fiber.App {
	return fiber.New(fiber.Config{BodyLimit: 10 * 1024 * 1024})
}

func doJSON(t *testing.T, app *fiber.App, method, path, body string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

// multipartBody builds an upload form with a single file field plus text
// fields, letting the test set the file's declared content type.
func multipartBody(t *testing.T, filename, contentType string, data []byte, fields map[string]string) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="file"; filename=%q`, filename))
	h.Set("Content-Type", contentType)
	part, err := w.CreatePart(h)
	require.NoError(t, err)
	_, err = part.Write(data)
	require.NoError(t, err)

	for k, v := range fields {
		require.NoError(t, w.WriteField(k, v))
	}
	require.NoError(t, w.Close())
	return &buf, w.FormDataContentType()
}
