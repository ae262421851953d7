//go:build !integration
// +build !integration

package usecase_cover

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/humanbelnik/movieshelf/core/internal/model"

	uploader_mocks "github.com/humanbelnik/movieshelf/core/internal/usecase/cover/mocks/cover/uploader"

	"github.com/ozontech/allure-go/pkg/framework/provider"
	"github.com/ozontech/allure-go/pkg/framework/suite"
)

type UsecaseCoverUnitSuite struct {
	suite.Suite
}

func validCoverFile() model.CoverFile {
	return model.CoverFile{
		Base64:   "aGVsbG8=",
		MimeType: "image/jpeg",
		FileName: "cover.jpg",
	}
}

func (suite *UsecaseCoverUnitSuite) TestStore(t provider.T) {
	t.Parallel()

	testCases := []struct {
		name          string
		setupMocks    func(u *uploader_mocks.Uploader, ctx context.Context, f model.CoverFile)
		file          model.CoverFile
		expectError   bool
		expectedError error
		expectedURL   string
	}{
		{
			name: "Should store cover and return its URL",
			setupMocks: func(u *uploader_mocks.Uploader, ctx context.Context, f model.CoverFile) {
				u.On("Upload", ctx, f).Return("http://cdn.example.com/cover.jpg", nil).Once()
			},
			file:        validCoverFile(),
			expectedURL: "http://cdn.example.com/cover.jpg",
		},
		{
			name:       "Should reject a file without base64 payload",
			setupMocks: func(u *uploader_mocks.Uploader, ctx context.Context, f model.CoverFile) {},
			file: func() model.CoverFile {
				f := validCoverFile()
				f.Base64 = ""
				return f
			}(),
			expectError:   true,
			expectedError: ErrInvalidInput,
		},
		{
			name:       "Should reject a file without mime type",
			setupMocks: func(u *uploader_mocks.Uploader, ctx context.Context, f model.CoverFile) {},
			file: func() model.CoverFile {
				f := validCoverFile()
				f.MimeType = ""
				return f
			}(),
			expectError:   true,
			expectedError: ErrInvalidInput,
		},
		{
			name:       "Should reject a file without name",
			setupMocks: func(u *uploader_mocks.Uploader, ctx context.Context, f model.CoverFile) {},
			file: func() model.CoverFile {
				f := validCoverFile()
				f.FileName = ""
				return f
			}(),
			expectError:   true,
			expectedError: ErrInvalidInput,
		},
		{
			name: "Should return error when the backend upload fails",
			setupMocks: func(u *uploader_mocks.Uploader, ctx context.Context, f model.CoverFile) {
				u.On("Upload", ctx, f).Return("", errors.New("upload error")).Once()
			},
			file:          validCoverFile(),
			expectError:   true,
			expectedError: ErrInternal,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t provider.T) {
			t.Parallel()
			ctx := context.Background()
			uploader := uploader_mocks.NewUploader(t)
			usecase := New(uploader)
			tc.setupMocks(uploader, ctx, tc.file)

			url, err := usecase.Store(ctx, tc.file)

			if tc.expectError {
				assert.ErrorIs(t, err, tc.expectedError)
				assert.Empty(t, url)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tc.expectedURL, url)
			}
			uploader.AssertExpectations(t)
		})
	}
}

func TestUnitSuite(t *testing.T) {
	suite.RunSuite(t, new(UsecaseCoverUnitSuite))
}
