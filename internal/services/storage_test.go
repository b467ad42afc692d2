package services

import (
	"context"
	"os"
	"path/filepath"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSanitizeFilename(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"photo.jpg", "photo.jpg"},
		{"my photo (1).jpg", "myphoto1.jpg"},
		{"../../etc/passwd", "passwd"},
		{`..\..\windows\evil.png`, "evil.png"},
		{"", "upload.jpg"},
		{"....", "upload.jpg"},
		{"héllo wörld.png", "hllowrld.png"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, SanitizeFilename(tt.in), "input %q", tt.in)
	}
}

func TestLocalStore_Save(t *testing.T) {
	dir := t.TempDir()
	store, err := NewLocalStore(dir)
	require.NoError(t, err)

	ref, url, err := store.Save(context.Background(), "kudzu photo.jpg", []byte("jpeg-bytes"))
	require.NoError(t, err)

	// horodatage microsecondes + nom nettoyé
	assert.Regexp(t, regexp.MustCompile(`^\d{20}_kudzuphoto\.jpg$`), ref)
	assert.Equal(t, "/uploads/"+ref, url)

	data, err := os.ReadFile(filepath.Join(dir, ref))
	require.NoError(t, err)
	assert.Equal(t, []byte("jpeg-bytes"), data)
}

func TestLocalStore_SaveCollisionResistant(t *testing.T) {
	dir := t.TempDir()
	store, err := NewLocalStore(dir)
	require.NoError(t, err)

	ref1, _, err := store.Save(context.Background(), "same.jpg", []byte("a"))
	require.NoError(t, err)
	ref2, _, err := store.Save(context.Background(), "same.jpg", []byte("b"))
	require.NoError(t, err)

	assert.NotEqual(t, ref1, ref2)
}

func TestNewLocalStore_CreatesDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "uploads")

	_, err := NewLocalStore(dir)
	require.NoError(t, err)

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}
