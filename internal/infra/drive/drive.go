package infra_drive

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"net/http"
	"regexp"
	"strings"

	"github.com/google/uuid"
	"google.golang.org/api/drive/v3"
	"google.golang.org/api/googleapi"

	"github.com/humanbelnik/movieshelf/core/internal/model"
)

// Storage keeps cover images in a Google Drive folder. Fallback backend
// when Cloudinary is not configured.
type Storage struct {
	svc      *drive.Service
	folderID string
}

func New(svc *drive.Service, folderID string) *Storage {
	return &Storage{
		svc:      svc,
		folderID: folderID,
	}
}

func (s *Storage) Upload(ctx context.Context, f model.CoverFile) (string, error) {
	if s.folderID == "" {
		return "", errors.New("drive folder id is not configured")
	}
	data, err := base64.StdEncoding.DecodeString(f.Base64)
	if err != nil {
		return "", fmt.Errorf("failed to decode cover payload: %w", err)
	}

	// Drive happily stores duplicate names in one folder; a short random
	// prefix keeps re-uploads of "cover.jpg" tellable apart.
	name := uuid.NewString()[:8] + "-" + f.FileName
	created, err := s.svc.Files.Create(&drive.File{
		Name:    name,
		Parents: []string{s.folderID},
	}).
		Media(bytes.NewReader(data), googleapi.ContentType(f.MimeType)).
		SupportsAllDrives(true).
		Fields("id").
		Context(ctx).Do()
	if err != nil {
		return "", fmt.Errorf("failed to upload cover: %w", err)
	}
	if created.Id == "" {
		return "", errors.New("drive upload returned no file id")
	}

	// Anyone with the link can read, so the stored URL renders without auth.
	_, err = s.svc.Permissions.Create(created.Id, &drive.Permission{
		Role: "reader",
		Type: "anyone",
	}).SupportsAllDrives(true).Context(ctx).Do()
	if err != nil {
		return "", fmt.Errorf("failed to share cover: %w", err)
	}

	// The canonical view URL redirects to an HTML page; the thumbnail URL
	// is directly embeddable in an <img>.
	return fmt.Sprintf("https://drive.google.com/thumbnail?id=%s&sz=w1000", created.Id), nil
}

// DeleteIfExists removes the Drive file behind coverURL. Non-Drive URLs,
// files already gone (404) and files we cannot touch (403, e.g. a file in
// someone's My Drive) all count as success; the caller logs and discards
// whatever comes back, cleanup never blocks a delete.
func (s *Storage) DeleteIfExists(ctx context.Context, coverURL string) error {
	fileID := FileIDFromURL(coverURL)
	if fileID == "" {
		return nil
	}
	err := s.svc.Files.Delete(fileID).SupportsAllDrives(true).Context(ctx).Do()
	if err != nil {
		var apiErr *googleapi.Error
		if errors.As(err, &apiErr) &&
			(apiErr.Code == http.StatusNotFound || apiErr.Code == http.StatusForbidden) {
			return nil
		}
		return fmt.Errorf("failed to delete cover %s: %w", fileID, err)
	}
	return nil
}

var (
	idParam  = regexp.MustCompile(`[?&]id=([^&]+)`)
	filePath = regexp.MustCompile(`/file/d/([a-zA-Z0-9_-]+)`)
)

// FileIDFromURL pulls the file id out of the Drive URL shapes the app has
// stored over time: ?id=xxx, /file/d/FILE_ID/view, /uc?export=...&id=xxx.
// Returns "" for non-Drive URLs.
func FileIDFromURL(rawURL string) string {
	if !strings.Contains(rawURL, "drive.google.com") {
		return ""
	}
	if m := idParam.FindStringSubmatch(rawURL); m != nil {
		return m[1]
	}
	if m := filePath.FindStringSubmatch(rawURL); m != nil {
		return m[1]
	}
	return ""
}

// ToImageURL rewrites any recognizable Drive URL into the embeddable
// thumbnail form; everything else passes through untouched.
func ToImageURL(rawURL string) string {
	if id := FileIDFromURL(rawURL); id != "" {
		return "https://drive.google.com/thumbnail?id=" + id + "&sz=w800"
	}
	return rawURL
}
