package upload_test

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"school-backend/internal/config"
	"school-backend/internal/upload"
)

func newSaver(t *testing.T, policy string) (*upload.Saver, string) {
	t.Helper()
	root := t.TempDir()
	dir := filepath.Join(root, "photos")
	s, err := upload.NewSaver(dir, filepath.Join(root, "staging"), policy)
	require.NoError(t, err)
	return s, dir
}

func TestValidateTypeAllowlist(t *testing.T) {
	s, _ := newSaver(t, config.UploadPolicyAllowlist)

	assert.NoError(t, s.ValidateType("image/jpeg"))
	assert.NoError(t, s.ValidateType("image/png"))
	assert.NoError(t, s.ValidateType("image/webp"))

	assert.ErrorIs(t, s.ValidateType("application/pdf"), upload.ErrInvalidType)
	// gif is an image but not on the allow-list
	assert.ErrorIs(t, s.ValidateType("image/gif"), upload.ErrInvalidType)
}

func TestValidateTypeImagePrefix(t *testing.T) {
	s, _ := newSaver(t, config.UploadPolicyImagePrefix)

	assert.NoError(t, s.ValidateType("image/gif"))
	assert.ErrorIs(t, s.ValidateType("application/pdf"), upload.ErrInvalidType)
}

func TestSavePreservesExtension(t *testing.T) {
	s, dir := newSaver(t, config.UploadPolicyAllowlist)

	name, err := s.Save(strings.NewReader("fake image bytes"), "sports-day.PNG")
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(name, ".PNG"), "got %q", name)

	data, err := os.ReadFile(filepath.Join(dir, name))
	require.NoError(t, err)
	assert.Equal(t, "fake image bytes", string(data))
}

func TestSaveGeneratesUniqueNames(t *testing.T) {
	s, _ := newSaver(t, config.UploadPolicyAllowlist)

	a, err := s.Save(strings.NewReader("a"), "x.jpg")
	require.NoError(t, err)
	b, err := s.Save(strings.NewReader("b"), "x.jpg")
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}

func TestSaveAcceptsExactLimit(t *testing.T) {
	s, _ := newSaver(t, config.UploadPolicyAllowlist)

	_, err := s.Save(bytes.NewReader(make([]byte, upload.MaxFileSize)), "full.jpg")
	assert.NoError(t, err)
}

func TestSaveRejectsOversizedAndLeavesNoFiles(t *testing.T) {
	s, dir := newSaver(t, config.UploadPolicyAllowlist)

	_, err := s.Save(bytes.NewReader(make([]byte, upload.MaxFileSize+1)), "big.jpg")
	assert.ErrorIs(t, err, upload.ErrFileTooLarge)

	for _, d := range []string{dir, filepath.Join(filepath.Dir(dir), "staging")} {
		entries, err := os.ReadDir(d)
		require.NoError(t, err)
		assert.Empty(t, entries, "oversized upload must not leave files in %s", d)
	}
}

// observingReader runs a callback before every Read, letting a test inspect
// directory state while a save is still in flight.
type observingReader struct {
	r       io.Reader
	observe func()
}

func (o *observingReader) Read(p []byte) (int, error) {
	o.observe()
	return o.r.Read(p)
}

func TestSaveStagesOutsideServedDir(t *testing.T) {
	s, dir := newSaver(t, config.UploadPolicyAllowlist)

	r := &observingReader{
		r: bytes.NewReader(make([]byte, 3*1024*1024)),
		observe: func() {
			entries, err := os.ReadDir(dir)
			require.NoError(t, err)
			assert.Empty(t, entries, "in-flight upload must not be visible in the served directory")
		},
	}
	name, err := s.Save(r, "mid.jpg")
	require.NoError(t, err)

	_, err = os.Stat(filepath.Join(dir, name))
	assert.NoError(t, err)
}
