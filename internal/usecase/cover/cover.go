package usecase_cover

import (
	"context"
	"errors"
	"fmt"

	"github.com/humanbelnik/movieshelf/core/internal/model"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrInternal     = errors.New("internal error")
)

// Uploader stores a cover image and returns its public URL. Which backend
// sits behind it is decided at startup by configuration presence.
//
//go:generate mockery --name=Uploader --output=./mocks/cover/uploader --filename=uploader.go
type Uploader interface {
	Upload(ctx context.Context, f model.CoverFile) (string, error)
}

type Usecase struct {
	uploader Uploader
}

func New(uploader Uploader) *Usecase {
	return &Usecase{uploader: uploader}
}

func (u *Usecase) Store(ctx context.Context, f model.CoverFile) (string, error) {
	if f.Base64 == "" || f.MimeType == "" || f.FileName == "" {
		return "", fmt.Errorf("%w: base64, mimeType and fileName are required", ErrInvalidInput)
	}
	url, err := u.uploader.Upload(ctx, f)
	if err != nil {
		return "", errors.Join(ErrInternal, err)
	}
	return url, nil
}
