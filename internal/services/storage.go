package services

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"

	"github.com/nirvaankohli/invasisee/internal/config"
)

// ImageStore persiste l'image d'un rapport et retourne la référence
// stockée plus l'URL résolvable servie aux clients
type ImageStore interface {
	Save(ctx context.Context, filename string, data []byte) (ref string, url string, err error)
}

// NewImageStore choisit Cloudinary si configuré, sinon le disque local
func NewImageStore(cfg *config.Config) (ImageStore, error) {
	if cfg.CloudinaryCloudName != "" && cfg.CloudinaryAPIKey != "" && cfg.CloudinaryAPISecret != "" {
		return NewCloudinaryStore(cfg)
	}
	return NewLocalStore(cfg.UploadDir)
}

// LocalStore écrit les images dans le dossier uploads, servi par le routeur
type LocalStore struct {
	dir string
}

func NewLocalStore(dir string) (*LocalStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("could not create upload dir: %w", err)
	}
	return &LocalStore{dir: dir}, nil
}

// Save écrit l'image sous un nom résistant aux collisions:
// horodatage microsecondes + nom d'origine nettoyé
func (s *LocalStore) Save(_ context.Context, filename string, data []byte) (string, string, error) {
	now := time.Now().UTC()
	ts := now.Format("20060102150405") + fmt.Sprintf("%06d", now.Nanosecond()/1000)
	name := ts + "_" + SanitizeFilename(filename)

	path := filepath.Join(s.dir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", "", fmt.Errorf("could not write image: %w", err)
	}

	return name, "/uploads/" + name, nil
}

// SanitizeFilename retire les séparateurs de chemin et les caractères
// douteux du nom de fichier envoyé par le client
func SanitizeFilename(filename string) string {
	base := filepath.Base(strings.ReplaceAll(filename, "\\", "/"))
	var b strings.Builder
	for _, r := range base {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '.' || r == '-' || r == '_':
			b.WriteRune(r)
		}
	}
	cleaned := strings.Trim(b.String(), ".")
	if cleaned == "" {
		return "upload.jpg"
	}
	return cleaned
}

// CloudinaryStore envoie les images de rapports sur Cloudinary
type CloudinaryStore struct {
	cld *cloudinary.Cloudinary
}

func NewCloudinaryStore(cfg *config.Config) (*CloudinaryStore, error) {
	cld, err := cloudinary.NewFromParams(
		cfg.CloudinaryCloudName,
		cfg.CloudinaryAPIKey,
		cfg.CloudinaryAPISecret,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize cloudinary: %w", err)
	}
	return &CloudinaryStore{cld: cld}, nil
}

func (s *CloudinaryStore) Save(ctx context.Context, filename string, data []byte) (string, string, error) {
	publicID := fmt.Sprintf("reports/%d_%s", time.Now().UnixMicro(), SanitizeFilename(filename))

	uploadResult, err := s.cld.Upload.Upload(ctx, bytes.NewReader(data), uploader.UploadParams{
		PublicID:     publicID,
		Folder:       "invasisee/reports",
		ResourceType: "image",
	})
	if err != nil {
		return "", "", fmt.Errorf("failed to upload to cloudinary: %w", err)
	}

	return uploadResult.PublicID, uploadResult.SecureURL, nil
}
