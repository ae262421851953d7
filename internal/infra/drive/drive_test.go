//go:build !integration
// +build !integration

package infra_drive

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFileIDFromURL(t *testing.T) {
	testCases := []struct {
		name     string
		url      string
		expected string
	}{
		{
			name:     "Should extract id from a thumbnail URL",
			url:      "https://drive.google.com/thumbnail?id=1AbC_dEf-9&sz=w1000",
			expected: "1AbC_dEf-9",
		},
		{
			name:     "Should extract id from a uc export URL",
			url:      "https://drive.google.com/uc?export=view&id=1AbC_dEf-9",
			expected: "1AbC_dEf-9",
		},
		{
			name:     "Should extract id from a file view URL",
			url:      "https://drive.google.com/file/d/1AbC_dEf-9/view?usp=sharing",
			expected: "1AbC_dEf-9",
		},
		{
			name:     "Should return empty for a non-Drive URL",
			url:      "https://res.cloudinary.com/demo/image/upload/abc.jpg",
			expected: "",
		},
		{
			name:     "Should return empty for a Drive URL without an id",
			url:      "https://drive.google.com/drive/folders",
			expected: "",
		},
		{
			name:     "Should return empty for an empty string",
			url:      "",
			expected: "",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, FileIDFromURL(tc.url))
		})
	}
}

func TestToImageURL(t *testing.T) {
	testCases := []struct {
		name     string
		url      string
		expected string
	}{
		{
			name:     "Should rewrite a file view URL into the thumbnail form",
			url:      "https://drive.google.com/file/d/1AbC_dEf-9/view",
			expected: "https://drive.google.com/thumbnail?id=1AbC_dEf-9&sz=w800",
		},
		{
			name:     "Should rewrite a uc export URL into the thumbnail form",
			url:      "https://drive.google.com/uc?export=view&id=1AbC_dEf-9",
			expected: "https://drive.google.com/thumbnail?id=1AbC_dEf-9&sz=w800",
		},
		{
			name:     "Should pass a foreign URL through untouched",
			url:      "https://res.cloudinary.com/demo/image/upload/abc.jpg",
			expected: "https://res.cloudinary.com/demo/image/upload/abc.jpg",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, ToImageURL(tc.url))
		})
	}
}
