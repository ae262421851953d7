package model

// CoverFile is a cover image as the browser sends it: the file content
// base64-encoded plus enough metadata to store it under a sensible name.
type CoverFile struct {
	Base64   string
	MimeType string
	FileName string
}
