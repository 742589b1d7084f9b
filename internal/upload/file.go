package upload

import (
	"fmt"
	"strings"

	"github.com/gabriel-vasile/mimetype"
)

// File is an in-memory file handle captured from a file picker or test
// fixture, not yet uploaded anywhere.
type File struct {
	Name        string
	ContentType string
	Data        []byte
}

func (f *File) Size() int64 {
	return int64(len(f.Data))
}

// Type returns the declared content type, sniffing the bytes when the
// picker did not supply one.
func (f *File) Type() string {
	if f.ContentType != "" {
		return f.ContentType
	}
	return mimetype.Detect(f.Data).String()
}

// Allowed MIME types per attachment kind.
var (
	ImageTypes    = []string{"image/jpeg", "image/png", "image/gif", "image/webp"}
	DownloadTypes = []string{"application/pdf"}
)

// Check validates a single file against an allow-list and a size ceiling,
// returning a human-readable rejection message or "" when the file passes.
func Check(f *File, allowed []string, maxSizeMB int) string {
	typeOK := false
	for _, t := range allowed {
		if f.Type() == t {
			typeOK = true
			break
		}
	}
	if !typeOK {
		return fmt.Sprintf("File type not allowed for %s. Allowed types: %s", f.Name, strings.Join(allowed, ", "))
	}
	if f.Size() > int64(maxSizeMB)*1024*1024 {
		return fmt.Sprintf("File %s exceeds %dMB limit", f.Name, maxSizeMB)
	}
	return ""
}
