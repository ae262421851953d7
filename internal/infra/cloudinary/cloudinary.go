package infra_cloudinary

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/url"
	"regexp"
	"strings"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"

	"github.com/humanbelnik/movieshelf/core/internal/config"
	"github.com/humanbelnik/movieshelf/core/internal/model"
)

const coverFolder = "movielist/covers"

// Storage keeps cover images in Cloudinary. Preferred over Drive whenever
// the three credential fields are configured.
type Storage struct {
	cld *cloudinary.Cloudinary
}

func MustEstablishConn(cfg config.Cloudinary) *Storage {
	cld, err := cloudinary.NewFromParams(cfg.CloudName, cfg.APIKey, cfg.APISecret)
	if err != nil {
		log.Fatalf("failed to create cloudinary client: %v", err)
	}
	cld.Config.URL.Secure = true
	return &Storage{cld: cld}
}

func (s *Storage) Upload(ctx context.Context, f model.CoverFile) (string, error) {
	dataURI := fmt.Sprintf("data:%s;base64,%s", f.MimeType, f.Base64)
	res, err := s.cld.Upload.Upload(ctx, dataURI, uploader.UploadParams{
		Folder:           coverFolder,
		ResourceType:     "image",
		FilenameOverride: f.FileName,
		UseFilename:      api.Bool(true),
		UniqueFilename:   api.Bool(true),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload cover: %w", err)
	}
	if res.SecureURL == "" {
		return "", errors.New("cloudinary upload returned no url")
	}
	return res.SecureURL, nil
}

// DeleteIfExists removes the cover behind coverURL when it lives in this
// backend. A URL that is not a Cloudinary one is not an error; the caller
// logs and discards whatever comes back, cleanup never blocks a delete.
func (s *Storage) DeleteIfExists(ctx context.Context, coverURL string) error {
	publicID := PublicIDFromURL(coverURL)
	if publicID == "" {
		return nil
	}
	_, err := s.cld.Upload.Destroy(ctx, uploader.DestroyParams{
		PublicID:     publicID,
		ResourceType: "image",
	})
	if err != nil {
		return fmt.Errorf("failed to destroy cover %s: %w", publicID, err)
	}
	return nil
}

var versionSegment = regexp.MustCompile(`^v\d+$`)

// PublicIDFromURL extracts the public id from a Cloudinary delivery URL:
// https://res.cloudinary.com/xxx/image/upload/v123/movielist/covers/abc.jpg
// becomes movielist/covers/abc. Returns "" for anything else.
func PublicIDFromURL(rawURL string) string {
	if !strings.Contains(rawURL, "res.cloudinary.com") {
		return ""
	}
	u, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}
	parts := strings.Split(u.Path, "/")
	uploadIdx := -1
	for i, p := range parts {
		if p == "upload" {
			uploadIdx = i
			break
		}
	}
	if uploadIdx < 0 || uploadIdx >= len(parts)-1 {
		return ""
	}
	after := parts[uploadIdx+1:]
	if versionSegment.MatchString(after[0]) {
		after = after[1:]
	}
	if len(after) == 0 {
		return ""
	}
	last := after[len(after)-1]
	if dot := strings.LastIndex(last, "."); dot >= 0 {
		last = last[:dot]
	}
	after[len(after)-1] = last
	return strings.Join(after, "/")
}
