package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"school-backend/internal/config"
	"school-backend/internal/handlers"
	"school-backend/internal/models"
	"school-backend/internal/upload"
)

func newUploadApp(t *testing.T, st *fakeStore) (*fiber.App, string) {
	t.Helper()
	root := t.TempDir()
	dir := filepath.Join(root, "photos")
	saver, err := upload.NewSaver(dir, filepath.Join(root, "staging"), config.UploadPolicyAllowlist)
	require.NoError(t, err)

	app := newApp()
	app.Post("/api/photos/upload", handlers.UploadPhotoHandler(st, saver, testLogger()))
	return app, dir
}

func TestUploadPhoto(t *testing.T) {
	st := &fakeStore{}
	app, dir := newUploadApp(t, st)

	buf, contentType := multipartBody(t, "sports-day.jpg", "image/jpeg",
		[]byte("fake image bytes"),
		map[string]string{"title": "Sports Day", "category": "Sports"})

	req := httptest.NewRequest("POST", "/api/photos/upload", buf)
	req.Header.Set("Content-Type", contentType)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.Equal(t, true, body["success"])
	assert.NotEmpty(t, body["photo_id"])

	require.Len(t, st.photos, 1)
	p := st.photos[0]
	assert.Equal(t, "Sports Day", p.Title)
	assert.Equal(t, "Sports", p.Category)
	assert.Equal(t, "admin", p.UploadedBy)
	assert.True(t, p.IsActive)
	assert.Contains(t, p.FileURL, "/uploads/photos/")

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestUploadPhotoRejectsBadContentType(t *testing.T) {
	st := &fakeStore{}
	app, dir := newUploadApp(t, st)

	buf, contentType := multipartBody(t, "notes.pdf", "application/pdf",
		[]byte("%PDF-1.4"),
		map[string]string{"title": "Notes", "category": "Docs"})

	req := httptest.NewRequest("POST", "/api/photos/upload", buf)
	req.Header.Set("Content-Type", contentType)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	// rejected before anything touched disk
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
	assert.Empty(t, st.photos)
}

func TestUploadPhotoRejectsOversizedFile(t *testing.T) {
	st := &fakeStore{}
	app, dir := newUploadApp(t, st)

	buf, contentType := multipartBody(t, "huge.jpg", "image/jpeg",
		make([]byte, upload.MaxFileSize+1),
		map[string]string{"title": "Huge", "category": "Misc"})

	req := httptest.NewRequest("POST", "/api/photos/upload", buf)
	req.Header.Set("Content-Type", contentType)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries, "rejected upload must leave no files")
	assert.Empty(t, st.photos)
}

func TestUploadPhotoRequiresTitle(t *testing.T) {
	st := &fakeStore{}
	app, _ := newUploadApp(t, st)

	buf, contentType := multipartBody(t, "x.jpg", "image/jpeg", []byte("img"),
		map[string]string{"category": "Sports"})

	req := httptest.NewRequest("POST", "/api/photos/upload", buf)
	req.Header.Set("Content-Type", contentType)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Empty(t, st.photos)
}

func TestListPhotosFiltersCategoryAndActive(t *testing.T) {
	st := &fakeStore{photos: []models.Photo{
		{ID: "p1", Category: "Sports", IsActive: true},
		{ID: "p2", Category: "Cultural", IsActive: true},
		{ID: "p3", Category: "Sports", IsActive: false},
	}}
	app := newApp()
	app.Get("/api/photos", handlers.ListPhotosHandler(st, testLogger()))

	resp := doJSON(t, app, "GET", "/api/photos?category=Sports", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body := decodeBody(t, resp)
	photos, ok := body["photos"].([]any)
	require.True(t, ok)
	require.Len(t, photos, 1)
	first, ok := photos[0].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "p1", first["id"])
}

func TestGetPhoto(t *testing.T) {
	st := &fakeStore{photos: []models.Photo{
		{ID: "p1", Title: "Sports Day", IsActive: true},
		{ID: "p2", Title: "Old", IsActive: false},
	}}
	app := newApp()
	app.Get("/api/photos/:id", handlers.GetPhotoHandler(st, testLogger()))

	resp := doJSON(t, app, "GET", "/api/photos/p1", "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	// soft-deleted photo is invisible to single-fetch
	resp = doJSON(t, app, "GET", "/api/photos/p2", "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp = doJSON(t, app, "GET", "/api/photos/nope", "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestDeletePhotoTwice(t *testing.T) {
	st := &fakeStore{photos: []models.Photo{{ID: "p1", IsActive: true}}}
	app := newApp()
	app.Delete("/api/photos/:id", handlers.DeletePhotoHandler(st, testLogger()))
	app.Get("/api/photos", handlers.ListPhotosHandler(st, testLogger()))

	resp := doJSON(t, app, "DELETE", "/api/photos/p1", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body := decodeBody(t, resp)
	assert.Equal(t, "Photo deleted successfully", body["message"])

	// second delete of the same id reports not found
	resp = doJSON(t, app, "DELETE", "/api/photos/p1", "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	// and the photo is gone from listings
	resp = doJSON(t, app, "GET", "/api/photos", "")
	photos := decodeBody(t, resp)["photos"].([]any)
	assert.Empty(t, photos)
}
